package handler

import (
	"time"

	"github.com/scratchie/onboarding-flow/internal/core/domain"
)

type selectGoalRequest struct {
	Goal string `json:"goal" validate:"required,oneof=manager worker both"`
}

type selectCategoryRequest struct {
	Category string `json:"category" validate:"required,max=100"`
}

type selectSectorRequest struct {
	Sector string `json:"sector" validate:"required,max=100"`
}

type firstValueRequest struct {
	Type string `json:"type" validate:"required,max=64"`
}

// viewResponse is the renderer payload: the active screen plus, in debug
// mode, the event log for the diagnostic overlay.
type viewResponse struct {
	domain.ScreenView
	Events []domain.AnalyticsEvent `json:"events,omitempty"`
}

type actionResponse struct {
	Applied bool              `json:"applied"`
	View    domain.ScreenView `json:"view"`
}

type eventsResponse struct {
	Events []domain.AnalyticsEvent `json:"events"`
	Count  int                     `json:"count"`
}

type preferencesResponse struct {
	Found       bool                    `json:"found"`
	Preferences *domain.UserPreferences `json:"preferences,omitempty"`
}

type completedResponse struct {
	Completed  bool          `json:"completed"`
	LastScreen domain.Screen `json:"lastScreen"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type categoryListResponse struct {
	Categories []domain.CategorySummary `json:"categories"`
	Count      int                      `json:"count"`
}

type sectorListResponse struct {
	Sectors []domain.Sector `json:"sectors"`
	Count   int             `json:"count"`
}

type healthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

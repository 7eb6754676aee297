package domain

import "time"

// Analytics event names.
const (
	EventOnboardingStarted      = "onboarding_started"
	EventGoalSelected           = "goal_selected"
	EventSectorCategorySelected = "sector_category_selected"
	EventSectorSelected         = "sector_selected"
	EventSectorSkipped          = "sector_skipped"
	EventOnboardingCompleted    = "onboarding_completed"
	EventModeSwitched           = "mode_switched"
	EventProUpgradeClicked      = "pro_upgrade_clicked"
	EventFirstValueAction       = "first_value_action"
)

// AnalyticsEvent is one entry of the append-only event log.
type AnalyticsEvent struct {
	Event     string         `json:"event"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Screen    Screen         `json:"screen,omitempty"`
	SessionID string         `json:"sessionId,omitempty"`
}

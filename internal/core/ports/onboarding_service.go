package ports

import (
	"context"

	"github.com/scratchie/onboarding-flow/internal/core/domain"
)

// OpenSessionInput carries what the renderer knows when a flow is first shown.
type OpenSessionInput struct {
	Identity domain.Identity
	// InitialScreen is the externally supplied start screen, e.g. from the
	// route. A persisted snapshot takes precedence over it.
	InitialScreen domain.Screen
	// Debug turns on the recorder's trace output for this session.
	Debug bool
}

// OnboardingService hosts one state machine per device/session pair.
type OnboardingService interface {
	Open(ctx context.Context, in OpenSessionInput) (*domain.ScreenView, error)
	Dispatch(ctx context.Context, id domain.Identity, in domain.ActionInput) (*domain.ActionResult, error)
	Events(ctx context.Context, id domain.Identity) ([]domain.AnalyticsEvent, error)
	Preferences(ctx context.Context, id domain.Identity) (domain.UserPreferences, bool)
	HasCompleted(ctx context.Context, id domain.Identity) bool
	// LastScreen is the screen a returning visitor would resume on.
	LastScreen(ctx context.Context, id domain.Identity) domain.Screen
	// LiveSessions is the number of flows currently held in memory.
	LiveSessions() int
}

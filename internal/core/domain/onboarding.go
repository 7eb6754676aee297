package domain

import (
	"fmt"
	"time"
)

// UserGoal is the role the user declared on the goal screen.
type UserGoal string

const (
	GoalManager UserGoal = "manager"
	GoalWorker  UserGoal = "worker"
	GoalBoth    UserGoal = "both"
)

// ParseUserGoal validates a raw goal value.
func ParseUserGoal(s string) (UserGoal, error) {
	switch g := UserGoal(s); g {
	case GoalManager, GoalWorker, GoalBoth:
		return g, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidGoal, s)
}

// DefaultMode is the mode a freshly chosen goal starts in. "both" starts as a worker.
func (g UserGoal) DefaultMode() UserMode {
	if g == GoalManager {
		return ModeManager
	}
	return ModeWorker
}

// UserMode is the active role lens.
type UserMode string

const (
	ModeManager UserMode = "manager"
	ModeWorker  UserMode = "worker"
)

// ParseUserMode validates a raw mode value.
func ParseUserMode(s string) (UserMode, error) {
	switch m := UserMode(s); m {
	case ModeManager, ModeWorker:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Flip returns the opposite mode.
func (m UserMode) Flip() UserMode {
	if m == ModeManager {
		return ModeWorker
	}
	return ModeManager
}

// Identity keys the storage scopes of one onboarding flow. DeviceID outlives
// sessions and keys the durable scope; SessionID keys the session scope.
type Identity struct {
	DeviceID  string
	SessionID string
}

// Key is the registry key of a live flow.
func (id Identity) Key() string {
	return id.DeviceID + "/" + id.SessionID
}

// OnboardingState is the session aggregate persisted as the snapshot.
// Nil pointers mean "not chosen yet"; they serialise as JSON null so a
// shallow merge clears a previous choice. CompletedAt is omitted while unset.
type OnboardingState struct {
	CurrentScreen    Screen     `json:"currentScreen"`
	UserGoal         *UserGoal  `json:"userGoal"`
	SelectedCategory *string    `json:"selectedCategory"`
	SelectedSector   *string    `json:"selectedSector"`
	UserMode         UserMode   `json:"userMode"`
	StartedAt        time.Time  `json:"startedAt"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
}

// NewOnboardingState returns a fresh state on the given screen.
func NewOnboardingState(screen Screen, startedAt time.Time) OnboardingState {
	if !screen.Valid() {
		screen = ScreenWelcome
	}
	return OnboardingState{
		CurrentScreen: screen,
		UserMode:      ModeWorker,
		StartedAt:     startedAt,
	}
}

// IsPristine reports whether nothing has happened yet: still on welcome with
// no choice made. Pristine states are never persisted.
func (s OnboardingState) IsPristine() bool {
	return s.CurrentScreen == ScreenWelcome &&
		s.UserGoal == nil &&
		s.SelectedCategory == nil &&
		s.SelectedSector == nil
}

// Validate checks the enum fields of a state restored from storage.
func (s OnboardingState) Validate() error {
	if !s.CurrentScreen.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownScreen, s.CurrentScreen)
	}
	if s.UserGoal != nil {
		if _, err := ParseUserGoal(string(*s.UserGoal)); err != nil {
			return err
		}
	}
	if _, err := ParseUserMode(string(s.UserMode)); err != nil {
		return err
	}
	return nil
}

// Goal returns the chosen goal, if any.
func (s OnboardingState) Goal() (UserGoal, bool) {
	if s.UserGoal == nil {
		return "", false
	}
	return *s.UserGoal, true
}

// Category returns the selected category, if any.
func (s OnboardingState) Category() (string, bool) {
	if s.SelectedCategory == nil {
		return "", false
	}
	return *s.SelectedCategory, true
}

// Sector returns the selected sector, if any.
func (s OnboardingState) Sector() (string, bool) {
	if s.SelectedSector == nil {
		return "", false
	}
	return *s.SelectedSector, true
}

// Completed reports whether the flow reached a dashboard through a tips screen.
func (s OnboardingState) Completed() bool {
	return s.CompletedAt != nil
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

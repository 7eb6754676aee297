package domain

import "fmt"

// Screen identifies the active view of the onboarding flow.
type Screen string

const (
	ScreenWelcome          Screen = "welcome"
	ScreenGoal             Screen = "goal"
	ScreenSectorCategory   Screen = "sector-category"
	ScreenSectorSpecific   Screen = "sector-specific"
	ScreenWorkerTips       Screen = "worker-tips"
	ScreenManagerTips      Screen = "manager-tips"
	ScreenManagerDashboard Screen = "manager-dashboard"
	ScreenWorkerDashboard  Screen = "worker-dashboard"
)

// Screens lists every screen in flow order.
var Screens = []Screen{
	ScreenWelcome,
	ScreenGoal,
	ScreenSectorCategory,
	ScreenSectorSpecific,
	ScreenWorkerTips,
	ScreenManagerTips,
	ScreenManagerDashboard,
	ScreenWorkerDashboard,
}

// ParseScreen converts a route segment or stored value into a Screen.
func ParseScreen(s string) (Screen, error) {
	sc := Screen(s)
	if !sc.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownScreen, s)
	}
	return sc, nil
}

// Valid reports whether s belongs to the closed screen set.
func (s Screen) Valid() bool {
	switch s {
	case ScreenWelcome, ScreenGoal, ScreenSectorCategory, ScreenSectorSpecific,
		ScreenWorkerTips, ScreenManagerTips, ScreenManagerDashboard, ScreenWorkerDashboard:
		return true
	}
	return false
}

// Back returns the fixed back-navigation target of s. The second result is
// false for welcome, which has no back target.
//
// Both dashboards back to worker-tips regardless of the active mode. This
// mirrors the observed flow and is kept on purpose; see DESIGN.md.
func (s Screen) Back() (Screen, bool) {
	switch s {
	case ScreenGoal:
		return ScreenWelcome, true
	case ScreenSectorCategory:
		return ScreenGoal, true
	case ScreenSectorSpecific:
		return ScreenSectorCategory, true
	case ScreenWorkerTips, ScreenManagerTips:
		return ScreenSectorSpecific, true
	case ScreenManagerDashboard, ScreenWorkerDashboard:
		return ScreenWorkerTips, true
	case ScreenWelcome:
		return "", false
	}
	return "", false
}

// IsTips reports whether s is one of the role tips screens.
func (s Screen) IsTips() bool {
	return s == ScreenWorkerTips || s == ScreenManagerTips
}

// IsDashboard reports whether s is one of the role dashboards.
func (s Screen) IsDashboard() bool {
	return s == ScreenManagerDashboard || s == ScreenWorkerDashboard
}

// Location is the shareable route the screen is mirrored to.
func (s Screen) Location() string {
	return "/onboarding/" + string(s)
}

// TipsFor returns the tips screen shown to the given mode.
func TipsFor(mode UserMode) Screen {
	if mode == ModeManager {
		return ScreenManagerTips
	}
	return ScreenWorkerTips
}

// DashboardFor returns the dashboard shown to the given mode.
func DashboardFor(mode UserMode) Screen {
	if mode == ModeManager {
		return ScreenManagerDashboard
	}
	return ScreenWorkerDashboard
}

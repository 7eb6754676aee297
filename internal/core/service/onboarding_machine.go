package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/scratchie/onboarding-flow/internal/core/analytics"
	"github.com/scratchie/onboarding-flow/internal/core/domain"
	"github.com/scratchie/onboarding-flow/internal/core/ports"
)

// First-value action kinds accepted per dashboard. Worker card actions are
// open-ended: any "create_card_<type>" qualifies.
const (
	FirstValueSetupAward       = "setup_award"
	FirstValueInviteTeam       = "invite_team"
	FirstValueTakePhoto        = "take_photo"
	FirstValueCreateCardPrefix = "create_card_"
)

// MachineDeps are the collaborators of an OnboardingMachine.
type MachineDeps struct {
	Catalog  ports.SectorCatalog
	Store    SnapshotStore
	Recorder *analytics.Recorder
	Clock    func() time.Time
	Log      zerolog.Logger
}

// OnboardingMachine drives one onboarding flow. Operations whose precondition
// does not hold are no-ops and report false. Not safe for concurrent use.
type OnboardingMachine struct {
	state    domain.OnboardingState
	catalog  ports.SectorCatalog
	store    SnapshotStore
	recorder *analytics.Recorder
	now      func() time.Time
	log      zerolog.Logger
}

// NewOnboardingMachine returns a machine on a fresh welcome state. Call Open
// before dispatching operations so a stored snapshot can be resumed.
func NewOnboardingMachine(deps MachineDeps) *OnboardingMachine {
	now := deps.Clock
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	rec := deps.Recorder
	if rec == nil {
		rec = analytics.NewRecorder("")
	}
	return &OnboardingMachine{
		state:    domain.NewOnboardingState(domain.ScreenWelcome, now()),
		catalog:  deps.Catalog,
		store:    deps.Store,
		recorder: rec,
		now:      now,
		log:      deps.Log,
	}
}

// Open resumes the stored snapshot if there is one. Otherwise it starts a new
// flow on initial (welcome when empty or unknown) and records its start.
func (m *OnboardingMachine) Open(ctx context.Context, initial domain.Screen) {
	if snap, ok := m.store.LoadSnapshot(ctx); ok {
		m.state = snap
		m.log.Debug().Str("screen", string(snap.CurrentScreen)).Msg("onboarding resumed")
		m.RecoverCategory(ctx)
		return
	}

	m.state = domain.NewOnboardingState(initial, m.now())
	m.record(domain.EventOnboardingStarted, nil)
	m.RecoverCategory(ctx)
	m.persist(ctx)
}

// State returns a copy of the current state.
func (m *OnboardingMachine) State() domain.OnboardingState {
	return m.state
}

// Screen is the active screen.
func (m *OnboardingMachine) Screen() domain.Screen {
	return m.state.CurrentScreen
}

// Recorder exposes the event log owned by this flow.
func (m *OnboardingMachine) Recorder() *analytics.Recorder {
	return m.recorder
}

// Start leaves the welcome screen for goal selection.
func (m *OnboardingMachine) Start(ctx context.Context) bool {
	if m.state.CurrentScreen != domain.ScreenWelcome {
		return false
	}
	m.state.CurrentScreen = domain.ScreenGoal
	m.persist(ctx)
	return true
}

// SkipFromWelcome jumps straight to the worker tips.
func (m *OnboardingMachine) SkipFromWelcome(ctx context.Context) bool {
	if m.state.CurrentScreen != domain.ScreenWelcome {
		return false
	}
	m.record(domain.EventSectorSkipped, nil)
	m.state.CurrentScreen = domain.ScreenWorkerTips
	m.persist(ctx)
	return true
}

// SelectGoal stores the goal, derives the mode and moves to category browsing.
func (m *OnboardingMachine) SelectGoal(ctx context.Context, goal domain.UserGoal) bool {
	if m.state.CurrentScreen != domain.ScreenGoal {
		return false
	}
	if _, err := domain.ParseUserGoal(string(goal)); err != nil {
		return false
	}

	mode := goal.DefaultMode()
	m.state.UserGoal = domain.Ptr(goal)
	m.state.UserMode = mode
	m.record(domain.EventGoalSelected, map[string]any{"type": string(goal)})
	m.state.CurrentScreen = domain.ScreenSectorCategory

	m.store.SavePreferences(ctx, domain.UserPreferences{Goal: domain.Ptr(goal), Mode: domain.Ptr(mode)})
	m.persist(ctx)
	return true
}

// SelectCategory opens the sector list of category. Categories outside the
// catalog are accepted; the sector list is then empty.
func (m *OnboardingMachine) SelectCategory(ctx context.Context, category string) bool {
	if m.state.CurrentScreen != domain.ScreenSectorCategory || category == "" {
		return false
	}

	m.state.SelectedCategory = domain.Ptr(category)
	m.record(domain.EventSectorCategorySelected, map[string]any{"category": category})
	m.state.CurrentScreen = domain.ScreenSectorSpecific

	m.store.SavePreferences(ctx, domain.UserPreferences{Category: domain.Ptr(category)})
	m.persist(ctx)
	return true
}

// SelectSector picks a sector from the category path and moves to the tips
// matching the current mode.
func (m *OnboardingMachine) SelectSector(ctx context.Context, sector string) bool {
	switch m.state.CurrentScreen {
	case domain.ScreenSectorCategory, domain.ScreenSectorSpecific:
	default:
		return false
	}
	return m.chooseSector(ctx, sector, false)
}

// SelectSectorDirect picks a sector found by search. The category is cleared
// because the user never browsed one.
func (m *OnboardingMachine) SelectSectorDirect(ctx context.Context, sector string) bool {
	if m.state.CurrentScreen != domain.ScreenSectorCategory {
		return false
	}
	return m.chooseSector(ctx, sector, true)
}

func (m *OnboardingMachine) chooseSector(ctx context.Context, sector string, direct bool) bool {
	if _, ok := m.catalog.Lookup(sector); !ok {
		m.log.Debug().Str("sector", sector).Msg("ignoring unknown sector")
		return false
	}

	m.state.SelectedSector = domain.Ptr(sector)
	if direct {
		m.state.SelectedCategory = nil
	}
	m.record(domain.EventSectorSelected, map[string]any{"sector": sector})
	m.state.CurrentScreen = domain.TipsFor(m.state.UserMode)

	m.store.SavePreferences(ctx, domain.UserPreferences{Sector: domain.Ptr(sector)})
	m.persist(ctx)
	return true
}

// SkipSector moves on to the tips without choosing a sector.
func (m *OnboardingMachine) SkipSector(ctx context.Context) bool {
	if m.state.CurrentScreen != domain.ScreenSectorCategory {
		return false
	}
	m.record(domain.EventSectorSkipped, nil)
	m.state.CurrentScreen = domain.TipsFor(m.state.UserMode)
	m.persist(ctx)
	return true
}

// ContinueFromTips lands on the dashboard for the current mode. Completion is
// stamped and reported the first time only.
func (m *OnboardingMachine) ContinueFromTips(ctx context.Context) bool {
	if !m.state.CurrentScreen.IsTips() {
		return false
	}

	if !m.state.Completed() {
		now := m.now()
		m.state.CompletedAt = &now
		m.record(domain.EventOnboardingCompleted, map[string]any{
			"duration": now.Sub(m.state.StartedAt).Milliseconds(),
			"path":     m.completionPath(),
		})
	}
	m.state.CurrentScreen = domain.DashboardFor(m.state.UserMode)
	m.persist(ctx)
	return true
}

// completionPath is "<goal>-<sector>", with "none" and "no-sector" standing
// in for missing choices.
func (m *OnboardingMachine) completionPath() string {
	goal := "none"
	if g, ok := m.state.Goal(); ok {
		goal = string(g)
	}
	sector := "no-sector"
	if s, ok := m.state.Sector(); ok {
		sector = s
	}
	return goal + "-" + sector
}

// ToggleMode flips the role lens and shows its dashboard. Only a "both" goal
// may switch.
func (m *OnboardingMachine) ToggleMode(ctx context.Context) bool {
	if g, ok := m.state.Goal(); !ok || g != domain.GoalBoth {
		return false
	}

	from := m.state.UserMode
	to := from.Flip()
	m.record(domain.EventModeSwitched, map[string]any{"from": string(from), "to": string(to)})
	m.state.UserMode = to
	m.state.CurrentScreen = domain.DashboardFor(to)

	m.store.SavePreferences(ctx, domain.UserPreferences{Mode: domain.Ptr(to)})
	m.persist(ctx)
	return true
}

// GoBack follows the fixed back-map. Selections are kept.
func (m *OnboardingMachine) GoBack(ctx context.Context) bool {
	prev, ok := m.state.CurrentScreen.Back()
	if !ok {
		return false
	}
	m.state.CurrentScreen = prev
	m.RecoverCategory(ctx)
	m.persist(ctx)
	return true
}

// Reset forgets the flow: stored snapshot, event log and state. Preferences
// survive. The fresh state overwrites whatever a failed clear left behind so
// a reload resumes it.
func (m *OnboardingMachine) Reset(ctx context.Context) bool {
	m.store.ClearSnapshot(ctx)
	m.recorder.Clear()
	m.state = domain.NewOnboardingState(domain.ScreenWelcome, m.now())
	m.record(domain.EventOnboardingStarted, nil)
	m.store.ReplaceSnapshot(ctx, m.state)
	return true
}

// GoPro records interest in the paid tier from the manager tips.
func (m *OnboardingMachine) GoPro(context.Context) bool {
	if m.state.CurrentScreen != domain.ScreenManagerTips {
		return false
	}
	m.record(domain.EventProUpgradeClicked, map[string]any{"screen": string(m.state.CurrentScreen)})
	return true
}

// RecordFirstValueAction records the first meaningful action taken on a
// dashboard. kind must be one the current dashboard offers.
func (m *OnboardingMachine) RecordFirstValueAction(_ context.Context, kind string) bool {
	if !firstValueAllowed(m.state.CurrentScreen, kind) {
		return false
	}
	m.record(domain.EventFirstValueAction, map[string]any{
		"type":           kind,
		"time_to_action": m.now().Sub(m.state.StartedAt).Milliseconds(),
	})
	return true
}

func firstValueAllowed(screen domain.Screen, kind string) bool {
	switch screen {
	case domain.ScreenManagerDashboard:
		return kind == FirstValueSetupAward || kind == FirstValueInviteTeam
	case domain.ScreenWorkerDashboard:
		return kind == FirstValueTakePhoto ||
			(strings.HasPrefix(kind, FirstValueCreateCardPrefix) && len(kind) > len(FirstValueCreateCardPrefix))
	default:
		return false
	}
}

// RecoverCategory fills a missing category on sector-specific from the saved
// preferences. It reports whether the screen now has a category.
func (m *OnboardingMachine) RecoverCategory(ctx context.Context) bool {
	if m.state.CurrentScreen != domain.ScreenSectorSpecific {
		return false
	}
	if _, ok := m.state.Category(); ok {
		return true
	}

	prefs, ok := m.store.LoadPreferences(ctx)
	if !ok || prefs.Category == nil || *prefs.Category == "" {
		m.log.Debug().Msg("no category to recover for sector list")
		return false
	}

	m.state.SelectedCategory = domain.Ptr(*prefs.Category)
	m.log.Debug().Str("category", *prefs.Category).Msg("category recovered from preferences")
	m.persist(ctx)
	return true
}

// View is the read model for the active screen.
func (m *OnboardingMachine) View() domain.ScreenView {
	st := m.state
	v := domain.ScreenView{
		State:     st,
		Location:  st.CurrentScreen.Location(),
		CanGoBack: st.CurrentScreen != domain.ScreenWelcome,
	}
	if g, ok := st.Goal(); ok && g == domain.GoalBoth {
		v.CanToggle = true
	}

	if st.CurrentScreen == domain.ScreenSectorSpecific {
		if id, ok := st.Category(); ok {
			cat, found := m.catalog.Category(id)
			if !found {
				cat = domain.Category{ID: id, Label: id}
			}
			v.Sectors = m.catalog.SectorsIn(id)
			v.Category = &domain.CategorySummary{Category: cat, SectorCount: len(v.Sectors)}
		} else {
			v.MissingCategory = true
		}
	}

	if name, ok := st.Sector(); ok {
		if s, found := m.catalog.Lookup(name); found {
			v.SelectedSector = &s
		}
	}
	return v
}

func (m *OnboardingMachine) record(event string, data map[string]any) {
	m.recorder.RecordOn(event, data, m.state.CurrentScreen)
}

func (m *OnboardingMachine) persist(ctx context.Context) {
	if m.state.IsPristine() {
		return
	}
	m.store.SaveSnapshot(ctx, m.state)
}

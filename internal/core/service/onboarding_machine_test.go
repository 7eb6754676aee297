package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/scratchie/onboarding-flow/internal/core/analytics"
	"github.com/scratchie/onboarding-flow/internal/core/catalog"
	"github.com/scratchie/onboarding-flow/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type machineFixture struct {
	machine *OnboardingMachine
	store   *PersistenceStore
	durable *stubKV
	session *stubKV
	clock   *testClock
}

func newFixture(t *testing.T) *machineFixture {
	t.Helper()
	f := &machineFixture{
		durable: newStubKV(),
		session: newStubKV(),
		clock:   &testClock{t: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)},
	}
	f.store = newTestStore(f.durable, f.session)
	f.store.now = f.clock.now
	f.machine = f.newMachine()
	return f
}

func (f *machineFixture) newMachine() *OnboardingMachine {
	return NewOnboardingMachine(MachineDeps{
		Catalog:  catalog.Default(),
		Store:    f.store,
		Recorder: analytics.NewRecorder(testIdentity.SessionID, analytics.WithClock(f.clock.now)),
		Clock:    f.clock.now,
		Log:      zerolog.Nop(),
	})
}

// opened returns a fixture whose machine has been opened on welcome.
func opened(t *testing.T) *machineFixture {
	t.Helper()
	f := newFixture(t)
	f.machine.Open(context.Background(), domain.ScreenWelcome)
	return f
}

func eventNames(r *analytics.Recorder) []string {
	evs := r.All()
	out := make([]string, len(evs))
	for i, e := range evs {
		out[i] = e.Event
	}
	return out
}

func sameNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// driveTo walks a fresh machine to screen through the category path.
func driveTo(t *testing.T, m *OnboardingMachine, goal domain.UserGoal, screen domain.Screen) {
	t.Helper()
	ctx := context.Background()
	steps := []struct {
		at domain.Screen
		do func() bool
	}{
		{domain.ScreenWelcome, func() bool { return m.Start(ctx) }},
		{domain.ScreenGoal, func() bool { return m.SelectGoal(ctx, goal) }},
		{domain.ScreenSectorCategory, func() bool { return m.SelectCategory(ctx, "Core Industry") }},
		{domain.ScreenSectorSpecific, func() bool { return m.SelectSector(ctx, "Construction") }},
		{domain.TipsFor(goal.DefaultMode()), func() bool { return m.ContinueFromTips(ctx) }},
	}
	for _, s := range steps {
		if m.Screen() == screen {
			return
		}
		if m.Screen() != s.at {
			t.Fatalf("driveTo(%s): at %s, expected %s", screen, m.Screen(), s.at)
		}
		if !s.do() {
			t.Fatalf("driveTo(%s): step from %s not applied", screen, s.at)
		}
	}
	if m.Screen() != screen {
		t.Fatalf("driveTo(%s): ended on %s", screen, m.Screen())
	}
}

// ---------------------------------------------------------------------------
// Opening and resuming
// ---------------------------------------------------------------------------

func TestOpen_FreshFlowRecordsStartAndStaysUnpersisted(t *testing.T) {
	f := opened(t)

	if f.machine.Screen() != domain.ScreenWelcome {
		t.Errorf("screen = %s", f.machine.Screen())
	}
	if got := eventNames(f.machine.Recorder()); !sameNames(got, []string{domain.EventOnboardingStarted}) {
		t.Errorf("events = %v", got)
	}
	if len(f.durable.data) != 0 || len(f.session.data) != 0 {
		t.Error("pristine welcome state must not be persisted")
	}
}

func TestOpen_InitialScreenFromRoute(t *testing.T) {
	f := newFixture(t)
	f.machine.Open(context.Background(), domain.ScreenGoal)

	if f.machine.Screen() != domain.ScreenGoal {
		t.Errorf("screen = %s", f.machine.Screen())
	}
	if !f.durable.has("scratchie_onboarding:dev-1") {
		t.Error("non-welcome start should be persisted")
	}
}

func TestOpen_ResumesSnapshot(t *testing.T) {
	f := opened(t)
	driveTo(t, f.machine, domain.GoalManager, domain.ScreenManagerTips)

	next := f.newMachine()
	next.Open(context.Background(), domain.ScreenWelcome)

	st := next.State()
	if st.CurrentScreen != domain.ScreenManagerTips || st.UserMode != domain.ModeManager {
		t.Errorf("resume mismatch: %+v", st)
	}
	if s, _ := st.Sector(); s != "Construction" {
		t.Errorf("sector not restored: %q", s)
	}
	if next.Recorder().Len() != 0 {
		t.Errorf("resume must not record a new start, got %v", eventNames(next.Recorder()))
	}
}

// ---------------------------------------------------------------------------
// Transitions
// ---------------------------------------------------------------------------

func TestInvalidTransitionsAreNoOps(t *testing.T) {
	ctx := context.Background()
	type op struct {
		name string
		run  func(m *OnboardingMachine) bool
		ok   map[domain.Screen]bool
	}
	ops := []op{
		{"start", func(m *OnboardingMachine) bool { return m.Start(ctx) },
			map[domain.Screen]bool{domain.ScreenWelcome: true}},
		{"skipFromWelcome", func(m *OnboardingMachine) bool { return m.SkipFromWelcome(ctx) },
			map[domain.Screen]bool{domain.ScreenWelcome: true}},
		{"selectGoal", func(m *OnboardingMachine) bool { return m.SelectGoal(ctx, domain.GoalWorker) },
			map[domain.Screen]bool{domain.ScreenGoal: true}},
		{"selectCategory", func(m *OnboardingMachine) bool { return m.SelectCategory(ctx, "Healthcare") },
			map[domain.Screen]bool{domain.ScreenSectorCategory: true}},
		{"selectSector", func(m *OnboardingMachine) bool { return m.SelectSector(ctx, "Mining") },
			map[domain.Screen]bool{domain.ScreenSectorCategory: true, domain.ScreenSectorSpecific: true}},
		{"selectSectorDirect", func(m *OnboardingMachine) bool { return m.SelectSectorDirect(ctx, "Mining") },
			map[domain.Screen]bool{domain.ScreenSectorCategory: true}},
		{"skipSector", func(m *OnboardingMachine) bool { return m.SkipSector(ctx) },
			map[domain.Screen]bool{domain.ScreenSectorCategory: true}},
		{"continueFromTips", func(m *OnboardingMachine) bool { return m.ContinueFromTips(ctx) },
			map[domain.Screen]bool{domain.ScreenWorkerTips: true, domain.ScreenManagerTips: true}},
	}

	for _, o := range ops {
		for _, screen := range domain.Screens {
			if o.ok[screen] {
				continue
			}
			t.Run(o.name+"@"+string(screen), func(t *testing.T) {
				f := newFixture(t)
				f.machine.Open(ctx, screen)
				before := f.machine.State()
				events := f.machine.Recorder().Len()

				if o.run(f.machine) {
					t.Fatal("expected no-op")
				}
				if !statesEqual(before, f.machine.State()) {
					t.Errorf("state changed:\n before %+v\n after  %+v", before, f.machine.State())
				}
				if f.machine.Recorder().Len() != events {
					t.Errorf("event recorded on no-op: %v", eventNames(f.machine.Recorder()))
				}
			})
		}
	}
}

func TestSelectGoal_DerivesMode(t *testing.T) {
	cases := map[domain.UserGoal]domain.UserMode{
		domain.GoalBoth:    domain.ModeWorker,
		domain.GoalManager: domain.ModeManager,
		domain.GoalWorker:  domain.ModeWorker,
	}
	for goal, want := range cases {
		t.Run(string(goal), func(t *testing.T) {
			f := opened(t)
			ctx := context.Background()
			f.machine.Start(ctx)
			if !f.machine.SelectGoal(ctx, goal) {
				t.Fatal("selectGoal not applied")
			}
			st := f.machine.State()
			if st.UserMode != want {
				t.Errorf("mode = %s, want %s", st.UserMode, want)
			}
			if st.CurrentScreen != domain.ScreenSectorCategory {
				t.Errorf("screen = %s", st.CurrentScreen)
			}
			prefs, _ := f.store.LoadPreferences(ctx)
			if prefs.Goal == nil || *prefs.Goal != goal {
				t.Errorf("goal not saved to preferences: %+v", prefs)
			}
		})
	}
}

func TestSelectGoal_RejectsUnknownGoal(t *testing.T) {
	f := opened(t)
	ctx := context.Background()
	f.machine.Start(ctx)
	if f.machine.SelectGoal(ctx, domain.UserGoal("owner")) {
		t.Error("unknown goal applied")
	}
	if f.machine.Screen() != domain.ScreenGoal {
		t.Errorf("screen = %s", f.machine.Screen())
	}
}

func TestSectorSelection_BranchesOnMode(t *testing.T) {
	ctx := context.Background()
	for _, tc := range []struct {
		goal domain.UserGoal
		want domain.Screen
	}{
		{domain.GoalManager, domain.ScreenManagerTips},
		{domain.GoalWorker, domain.ScreenWorkerTips},
		{domain.GoalBoth, domain.ScreenWorkerTips},
	} {
		t.Run("category path/"+string(tc.goal), func(t *testing.T) {
			f := opened(t)
			driveTo(t, f.machine, tc.goal, domain.ScreenSectorSpecific)
			f.machine.SelectSector(ctx, "Mining")
			if f.machine.Screen() != tc.want {
				t.Errorf("screen = %s, want %s", f.machine.Screen(), tc.want)
			}
		})
		t.Run("search path/"+string(tc.goal), func(t *testing.T) {
			f := opened(t)
			driveTo(t, f.machine, tc.goal, domain.ScreenSectorCategory)
			if !f.machine.SelectSectorDirect(ctx, "Aviation") {
				t.Fatal("direct selection not applied")
			}
			st := f.machine.State()
			if st.CurrentScreen != tc.want {
				t.Errorf("screen = %s, want %s", st.CurrentScreen, tc.want)
			}
			if st.SelectedCategory != nil {
				t.Errorf("direct selection must clear category, got %q", *st.SelectedCategory)
			}
		})
		t.Run("skip/"+string(tc.goal), func(t *testing.T) {
			f := opened(t)
			driveTo(t, f.machine, tc.goal, domain.ScreenSectorCategory)
			f.machine.SkipSector(ctx)
			if f.machine.Screen() != tc.want {
				t.Errorf("screen = %s, want %s", f.machine.Screen(), tc.want)
			}
		})
	}
}

func TestSelectSector_UnknownSectorIgnored(t *testing.T) {
	f := opened(t)
	driveTo(t, f.machine, domain.GoalWorker, domain.ScreenSectorSpecific)
	if f.machine.SelectSector(context.Background(), "Space Tourism") {
		t.Error("unknown sector applied")
	}
	if f.machine.Screen() != domain.ScreenSectorSpecific {
		t.Errorf("screen = %s", f.machine.Screen())
	}
}

func TestSkipFromWelcome(t *testing.T) {
	f := opened(t)
	if !f.machine.SkipFromWelcome(context.Background()) {
		t.Fatal("skip not applied")
	}
	if f.machine.Screen() != domain.ScreenWorkerTips {
		t.Errorf("screen = %s", f.machine.Screen())
	}
	want := []string{domain.EventOnboardingStarted, domain.EventSectorSkipped}
	if got := eventNames(f.machine.Recorder()); !sameNames(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestContinueFromTips_CompletesOnce(t *testing.T) {
	ctx := context.Background()
	f := opened(t)
	driveTo(t, f.machine, domain.GoalWorker, domain.ScreenWorkerTips)

	f.clock.advance(2 * time.Minute)
	f.machine.ContinueFromTips(ctx)
	first := f.machine.State().CompletedAt
	if first == nil {
		t.Fatal("completedAt not set")
	}

	f.machine.GoBack(ctx)
	if f.machine.Screen() != domain.ScreenWorkerTips {
		t.Fatalf("back from dashboard landed on %s", f.machine.Screen())
	}
	f.clock.advance(time.Minute)
	if !f.machine.ContinueFromTips(ctx) {
		t.Fatal("second continue should still navigate")
	}

	if !f.machine.State().CompletedAt.Equal(*first) {
		t.Errorf("completedAt moved: %v -> %v", first, f.machine.State().CompletedAt)
	}
	completed := 0
	var payload map[string]any
	for _, e := range f.machine.Recorder().All() {
		if e.Event == domain.EventOnboardingCompleted {
			completed++
			payload = e.Data
		}
	}
	if completed != 1 {
		t.Errorf("onboarding_completed recorded %d times", completed)
	}
	if payload["path"] != "worker-Construction" {
		t.Errorf("path = %v", payload["path"])
	}
	if payload["duration"] != int64((2 * time.Minute).Milliseconds()) {
		t.Errorf("duration = %v", payload["duration"])
	}
}

func TestContinueFromTips_PathWithoutSector(t *testing.T) {
	f := opened(t)
	f.machine.SkipFromWelcome(context.Background())
	f.machine.ContinueFromTips(context.Background())

	evs := f.machine.Recorder().All()
	last := evs[len(evs)-1]
	if last.Event != domain.EventOnboardingCompleted || last.Data["path"] != "none-no-sector" {
		t.Errorf("unexpected completion event: %+v", last)
	}
	if f.machine.Screen() != domain.ScreenWorkerDashboard {
		t.Errorf("screen = %s", f.machine.Screen())
	}
}

func TestToggleMode_OnlyForBoth(t *testing.T) {
	ctx := context.Background()
	for _, goal := range []domain.UserGoal{domain.GoalManager, domain.GoalWorker} {
		f := opened(t)
		driveTo(t, f.machine, goal, domain.DashboardFor(goal.DefaultMode()))
		before := f.machine.State()
		if f.machine.ToggleMode(ctx) {
			t.Errorf("%s: toggle applied", goal)
		}
		if !statesEqual(before, f.machine.State()) {
			t.Errorf("%s: state changed", goal)
		}
	}

	f := opened(t)
	if f.machine.ToggleMode(ctx) {
		t.Error("toggle applied without a goal")
	}
}

func TestToggleMode_Both(t *testing.T) {
	ctx := context.Background()
	f := opened(t)
	driveTo(t, f.machine, domain.GoalBoth, domain.ScreenWorkerDashboard)

	if !f.machine.ToggleMode(ctx) {
		t.Fatal("toggle not applied")
	}
	st := f.machine.State()
	if st.UserMode != domain.ModeManager || st.CurrentScreen != domain.ScreenManagerDashboard {
		t.Errorf("after toggle: %+v", st)
	}
	evs := f.machine.Recorder().All()
	last := evs[len(evs)-1]
	if last.Event != domain.EventModeSwitched || last.Data["from"] != "worker" || last.Data["to"] != "manager" {
		t.Errorf("unexpected event: %+v", last)
	}
	prefs, _ := f.store.LoadPreferences(ctx)
	if prefs.Mode == nil || *prefs.Mode != domain.ModeManager {
		t.Errorf("mode not saved to preferences: %+v", prefs.Mode)
	}

	f.machine.ToggleMode(ctx)
	if f.machine.Screen() != domain.ScreenWorkerDashboard {
		t.Errorf("second toggle landed on %s", f.machine.Screen())
	}
}

func TestGoBack_FollowsBackMap(t *testing.T) {
	ctx := context.Background()
	for _, screen := range domain.Screens {
		t.Run(string(screen), func(t *testing.T) {
			f := newFixture(t)
			f.machine.Open(ctx, screen)
			want, ok := screen.Back()
			applied := f.machine.GoBack(ctx)
			if applied != ok {
				t.Fatalf("applied = %v, want %v", applied, ok)
			}
			if ok && f.machine.Screen() != want {
				t.Errorf("back from %s = %s, want %s", screen, f.machine.Screen(), want)
			}
		})
	}
}

func TestGoBack_KeepsSelectionsAndRecordsNothing(t *testing.T) {
	f := opened(t)
	driveTo(t, f.machine, domain.GoalManager, domain.ScreenManagerTips)
	events := f.machine.Recorder().Len()

	f.machine.GoBack(context.Background())
	st := f.machine.State()
	if st.CurrentScreen != domain.ScreenSectorSpecific {
		t.Fatalf("screen = %s", st.CurrentScreen)
	}
	if s, _ := st.Sector(); s != "Construction" {
		t.Errorf("sector lost: %q", s)
	}
	if g, _ := st.Goal(); g != domain.GoalManager {
		t.Errorf("goal lost: %q", g)
	}
	if f.machine.Recorder().Len() != events {
		t.Error("goBack recorded an event")
	}
}

// ---------------------------------------------------------------------------
// Category recovery and view
// ---------------------------------------------------------------------------

func TestGoBack_RecoversCategoryFromPreferences(t *testing.T) {
	ctx := context.Background()
	f := opened(t)
	f.store.SavePreferences(ctx, domain.UserPreferences{Category: domain.Ptr("Healthcare")})
	driveTo(t, f.machine, domain.GoalWorker, domain.ScreenSectorCategory)
	f.machine.SelectSectorDirect(ctx, "Aviation")

	f.machine.GoBack(ctx)
	st := f.machine.State()
	if st.CurrentScreen != domain.ScreenSectorSpecific {
		t.Fatalf("screen = %s", st.CurrentScreen)
	}
	if c, ok := st.Category(); !ok || c != "Healthcare" {
		t.Errorf("category = %q (ok=%v)", c, ok)
	}
	v := f.machine.View()
	if v.MissingCategory || v.Category == nil || len(v.Sectors) == 0 {
		t.Errorf("view should list the recovered category: %+v", v)
	}
}

func TestView_MissingCategoryIsTerminal(t *testing.T) {
	f := newFixture(t)
	f.machine.Open(context.Background(), domain.ScreenSectorSpecific)

	v := f.machine.View()
	if !v.MissingCategory {
		t.Error("expected the no-category sub-state")
	}
	if !v.CanGoBack || v.Category != nil || len(v.Sectors) != 0 {
		t.Errorf("unexpected view: %+v", v)
	}
}

func TestView_SectorSpecific(t *testing.T) {
	f := opened(t)
	driveTo(t, f.machine, domain.GoalBoth, domain.ScreenSectorSpecific)

	v := f.machine.View()
	if v.Location != "/onboarding/sector-specific" {
		t.Errorf("location = %s", v.Location)
	}
	if v.Category == nil || v.Category.ID != "Core Industry" || v.Category.SectorCount != len(v.Sectors) {
		t.Errorf("category summary = %+v", v.Category)
	}
	if !v.CanToggle {
		t.Error("both goal should allow toggling")
	}
}

func TestView_UnknownCategoryShowsEmptyList(t *testing.T) {
	f := opened(t)
	driveTo(t, f.machine, domain.GoalWorker, domain.ScreenSectorCategory)
	if !f.machine.SelectCategory(context.Background(), "Space") {
		t.Fatal("category not applied")
	}
	v := f.machine.View()
	if v.MissingCategory || v.Category == nil || v.Category.Label != "Space" || len(v.Sectors) != 0 {
		t.Errorf("unexpected view: %+v", v)
	}
}

// ---------------------------------------------------------------------------
// Reset, supplements and end to end
// ---------------------------------------------------------------------------

func TestReset_ClearsSessionButNotPreferences(t *testing.T) {
	ctx := context.Background()
	f := opened(t)
	driveTo(t, f.machine, domain.GoalBoth, domain.ScreenWorkerDashboard)
	prefsBefore, _ := f.store.LoadPreferences(ctx)

	f.clock.advance(time.Hour)
	f.machine.Reset(ctx)

	snap, ok := f.store.LoadSnapshot(ctx)
	if !ok {
		t.Fatal("expected the fresh state to be loadable")
	}
	fresh := domain.NewOnboardingState(domain.ScreenWelcome, f.clock.now())
	if !statesEqual(snap, fresh) {
		t.Errorf("snapshot after reset = %+v, want %+v", snap, fresh)
	}
	if f.store.HasCompleted(ctx) {
		t.Error("completion survived reset")
	}
	if got := eventNames(f.machine.Recorder()); !sameNames(got, []string{domain.EventOnboardingStarted}) {
		t.Errorf("events after reset = %v", got)
	}
	prefsAfter, _ := f.store.LoadPreferences(ctx)
	if !prefsAfter.UpdatedAt.Equal(prefsBefore.UpdatedAt) || *prefsAfter.Goal != *prefsBefore.Goal ||
		*prefsAfter.Sector != *prefsBefore.Sector || *prefsAfter.Category != *prefsBefore.Category {
		t.Errorf("preferences changed: %+v -> %+v", prefsBefore, prefsAfter)
	}
}

func TestReset_FailedClearDoesNotKeepCompletion(t *testing.T) {
	ctx := context.Background()
	f := opened(t)
	driveTo(t, f.machine, domain.GoalWorker, domain.ScreenWorkerDashboard)
	f.durable.delErr = errors.New("durable unavailable")
	f.session.delErr = errors.New("session unavailable")

	f.machine.Reset(ctx)

	snap, ok := f.store.LoadSnapshot(ctx)
	if !ok || snap.CurrentScreen != domain.ScreenWelcome {
		t.Fatalf("snapshot after reset = %+v (found %v)", snap, ok)
	}
	if snap.Completed() || f.store.HasCompleted(ctx) {
		t.Fatal("completion survived a reset whose clear failed")
	}

	// A resumed flow completes again and reports it.
	next := f.newMachine()
	next.Open(ctx, domain.ScreenWelcome)
	driveTo(t, next, domain.GoalWorker, domain.ScreenWorkerDashboard)
	want := []string{
		domain.EventGoalSelected, domain.EventSectorCategorySelected,
		domain.EventSectorSelected, domain.EventOnboardingCompleted,
	}
	if got := eventNames(next.Recorder()); !sameNames(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestGoPro(t *testing.T) {
	ctx := context.Background()
	f := opened(t)
	driveTo(t, f.machine, domain.GoalManager, domain.ScreenManagerTips)

	if !f.machine.GoPro(ctx) {
		t.Fatal("go pro not applied on manager tips")
	}
	evs := f.machine.Recorder().All()
	last := evs[len(evs)-1]
	if last.Event != domain.EventProUpgradeClicked || last.Data["screen"] != "manager-tips" {
		t.Errorf("unexpected event: %+v", last)
	}
	if f.machine.Screen() != domain.ScreenManagerTips {
		t.Errorf("go pro navigated to %s", f.machine.Screen())
	}

	f.machine.ContinueFromTips(ctx)
	if f.machine.GoPro(ctx) {
		t.Error("go pro applied on dashboard")
	}
}

func TestRecordFirstValueAction(t *testing.T) {
	ctx := context.Background()
	f := opened(t)
	driveTo(t, f.machine, domain.GoalBoth, domain.ScreenWorkerDashboard)

	if f.machine.RecordFirstValueAction(ctx, FirstValueSetupAward) {
		t.Error("manager action accepted on worker dashboard")
	}
	if f.machine.RecordFirstValueAction(ctx, FirstValueCreateCardPrefix) {
		t.Error("bare card prefix accepted")
	}
	f.clock.advance(30 * time.Second)
	if !f.machine.RecordFirstValueAction(ctx, "create_card_hazard") {
		t.Fatal("card action rejected")
	}
	evs := f.machine.Recorder().All()
	last := evs[len(evs)-1]
	if last.Data["type"] != "create_card_hazard" || last.Data["time_to_action"] != int64(30000) {
		t.Errorf("unexpected payload: %+v", last.Data)
	}

	f.machine.ToggleMode(ctx)
	if !f.machine.RecordFirstValueAction(ctx, FirstValueInviteTeam) {
		t.Error("manager action rejected on manager dashboard")
	}
}

func TestEndToEnd_BothCoreIndustryConstruction(t *testing.T) {
	ctx := context.Background()
	f := opened(t)
	m := f.machine

	m.Start(ctx)
	m.SelectGoal(ctx, domain.GoalBoth)
	m.SelectCategory(ctx, "Core Industry")
	m.SelectSector(ctx, "Construction")
	m.ContinueFromTips(ctx)

	st := m.State()
	if st.CurrentScreen != domain.ScreenWorkerDashboard {
		t.Errorf("screen = %s", st.CurrentScreen)
	}
	if st.UserMode != domain.ModeWorker {
		t.Errorf("mode = %s", st.UserMode)
	}
	if s, _ := st.Sector(); s != "Construction" {
		t.Errorf("sector = %q", s)
	}
	if st.CompletedAt == nil {
		t.Error("completedAt not set")
	}

	evs := m.Recorder().All()
	want := []string{
		domain.EventOnboardingStarted,
		domain.EventGoalSelected,
		domain.EventSectorCategorySelected,
		domain.EventSectorSelected,
		domain.EventOnboardingCompleted,
	}
	if got := eventNames(m.Recorder()); !sameNames(got, want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	if evs[1].Data["type"] != "both" {
		t.Errorf("goal payload = %+v", evs[1].Data)
	}
	if evs[2].Data["category"] != "Core Industry" {
		t.Errorf("category payload = %+v", evs[2].Data)
	}
	if evs[3].Data["sector"] != "Construction" {
		t.Errorf("sector payload = %+v", evs[3].Data)
	}
	if evs[4].Data["path"] != "both-Construction" {
		t.Errorf("completion payload = %+v", evs[4].Data)
	}

	if !f.store.HasCompleted(ctx) {
		t.Error("completion not persisted")
	}
}

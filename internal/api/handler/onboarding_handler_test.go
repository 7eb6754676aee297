package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/scratchie/onboarding-flow/internal/api/middleware"
	"github.com/scratchie/onboarding-flow/internal/core/domain"
	"github.com/scratchie/onboarding-flow/internal/core/ports"
)

// ---- Stubs ----

type stubOnboardingService struct {
	openFn     func(ctx context.Context, in ports.OpenSessionInput) (*domain.ScreenView, error)
	dispatchFn func(ctx context.Context, id domain.Identity, in domain.ActionInput) (*domain.ActionResult, error)
	events     []domain.AnalyticsEvent
	prefs      *domain.UserPreferences
	completed  bool
	lastScreen domain.Screen
}

func (s *stubOnboardingService) Open(ctx context.Context, in ports.OpenSessionInput) (*domain.ScreenView, error) {
	return s.openFn(ctx, in)
}

func (s *stubOnboardingService) Dispatch(ctx context.Context, id domain.Identity, in domain.ActionInput) (*domain.ActionResult, error) {
	return s.dispatchFn(ctx, id, in)
}

func (s *stubOnboardingService) Events(context.Context, domain.Identity) ([]domain.AnalyticsEvent, error) {
	return s.events, nil
}

func (s *stubOnboardingService) Preferences(context.Context, domain.Identity) (domain.UserPreferences, bool) {
	if s.prefs == nil {
		return domain.UserPreferences{}, false
	}
	return *s.prefs, true
}

func (s *stubOnboardingService) HasCompleted(context.Context, domain.Identity) bool {
	return s.completed
}

func (s *stubOnboardingService) LastScreen(context.Context, domain.Identity) domain.Screen {
	return s.lastScreen
}

func (s *stubOnboardingService) LiveSessions() int { return 1 }

func viewOn(screen domain.Screen) *domain.ScreenView {
	return &domain.ScreenView{
		State:    domain.OnboardingState{CurrentScreen: screen},
		Location: "/onboarding/" + string(screen),
	}
}

// serve runs h behind the Session middleware, the way the router mounts it.
func serve(t *testing.T, h echo.HandlerFunc, method, target, body string, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(params) == 2 {
		c.SetParamNames(params[0])
		c.SetParamValues(params[1])
	}

	if err := middleware.Session(middleware.SessionOptions{})(h)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

// ---- Tests ----

func TestOnboardingHandler_Screen_UsesRouteScreen(t *testing.T) {
	var got ports.OpenSessionInput
	svc := &stubOnboardingService{
		openFn: func(_ context.Context, in ports.OpenSessionInput) (*domain.ScreenView, error) {
			got = in
			return viewOn(in.InitialScreen), nil
		},
	}
	h := NewOnboardingHandler(svc, false)

	rec := serve(t, h.Screen, http.MethodGet, "/onboarding/goal", "", "screen", "goal")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got.InitialScreen != domain.ScreenGoal {
		t.Errorf("initial screen = %q", got.InitialScreen)
	}
	if got.Identity.DeviceID == "" || got.Identity.SessionID == "" {
		t.Errorf("identity not passed through: %+v", got.Identity)
	}
	if got.Debug {
		t.Error("debug should be off by default")
	}
}

func TestOnboardingHandler_Screen_UnknownScreenIsNotFound(t *testing.T) {
	svc := &stubOnboardingService{
		openFn: func(context.Context, ports.OpenSessionInput) (*domain.ScreenView, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	h := NewOnboardingHandler(svc, false)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/onboarding/settings", nil), httptest.NewRecorder())
	c.SetParamNames("screen")
	c.SetParamValues("settings")

	err := middleware.Session(middleware.SessionOptions{})(h.Screen)(c)
	if !errors.Is(err, domain.ErrUnknownScreen) {
		t.Fatalf("expected ErrUnknownScreen, got %v", err)
	}
}

func TestOnboardingHandler_Current_DebugIncludesEvents(t *testing.T) {
	svc := &stubOnboardingService{
		openFn: func(_ context.Context, in ports.OpenSessionInput) (*domain.ScreenView, error) {
			if !in.Debug {
				t.Error("debug flag not forwarded")
			}
			return viewOn(domain.ScreenWelcome), nil
		},
		events: []domain.AnalyticsEvent{{Event: domain.EventOnboardingStarted}},
	}
	h := NewOnboardingHandler(svc, false)

	rec := serve(t, h.Current, http.MethodGet, "/v1/onboarding?debug=true", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		State  domain.OnboardingState  `json:"state"`
		Events []domain.AnalyticsEvent `json:"events"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.State.CurrentScreen != domain.ScreenWelcome {
		t.Errorf("screen = %q", resp.State.CurrentScreen)
	}
	if len(resp.Events) != 1 || resp.Events[0].Event != domain.EventOnboardingStarted {
		t.Errorf("events = %+v", resp.Events)
	}
}

func TestOnboardingHandler_Current_BadScreenQuery(t *testing.T) {
	svc := &stubOnboardingService{}
	h := NewOnboardingHandler(svc, false)

	rec := serve(t, h.Current, http.MethodGet, "/v1/onboarding?screen=nope", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestOnboardingHandler_SelectGoal_Dispatches(t *testing.T) {
	var got domain.ActionInput
	svc := &stubOnboardingService{
		dispatchFn: func(_ context.Context, _ domain.Identity, in domain.ActionInput) (*domain.ActionResult, error) {
			got = in
			return &domain.ActionResult{Applied: true, View: *viewOn(domain.ScreenSectorCategory)}, nil
		},
	}
	h := NewOnboardingHandler(svc, false)

	rec := serve(t, h.SelectGoal, http.MethodPost, "/v1/onboarding/goal", `{"goal":"both"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got.Action != domain.ActionSelectGoal || got.Goal != "both" {
		t.Errorf("dispatched %+v", got)
	}
	var resp actionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Applied || resp.View.State.CurrentScreen != domain.ScreenSectorCategory {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestOnboardingHandler_SelectGoal_ValidationError(t *testing.T) {
	svc := &stubOnboardingService{
		dispatchFn: func(context.Context, domain.Identity, domain.ActionInput) (*domain.ActionResult, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	h := NewOnboardingHandler(svc, false)

	rec := serve(t, h.SelectGoal, http.MethodPost, "/v1/onboarding/goal", `{"goal":"owner"}`)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "goal must be one of") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestOnboardingHandler_SelectSector_BadPayload(t *testing.T) {
	svc := &stubOnboardingService{}
	h := NewOnboardingHandler(svc, false)

	rec := serve(t, h.SelectSector, http.MethodPost, "/v1/onboarding/sector", `{"sector":`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestOnboardingHandler_IgnoredActionIsOK(t *testing.T) {
	svc := &stubOnboardingService{
		dispatchFn: func(_ context.Context, _ domain.Identity, in domain.ActionInput) (*domain.ActionResult, error) {
			if in.Action != domain.ActionToggleMode {
				t.Errorf("action = %q", in.Action)
			}
			return &domain.ActionResult{Applied: false, View: *viewOn(domain.ScreenWelcome)}, nil
		},
	}
	h := NewOnboardingHandler(svc, false)

	rec := serve(t, h.ToggleMode, http.MethodPost, "/v1/onboarding/mode/toggle", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"applied":false`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestOnboardingHandler_FirstValue_PassesKind(t *testing.T) {
	var got domain.ActionInput
	svc := &stubOnboardingService{
		dispatchFn: func(_ context.Context, _ domain.Identity, in domain.ActionInput) (*domain.ActionResult, error) {
			got = in
			return &domain.ActionResult{Applied: true, View: *viewOn(domain.ScreenWorkerDashboard)}, nil
		},
	}
	h := NewOnboardingHandler(svc, false)

	serve(t, h.FirstValue, http.MethodPost, "/v1/onboarding/first-value", `{"type":"take_photo"}`)

	if got.Action != domain.ActionFirstValue || got.Kind != "take_photo" {
		t.Errorf("dispatched %+v", got)
	}
}

func TestOnboardingHandler_Preferences(t *testing.T) {
	goal := domain.GoalWorker
	svc := &stubOnboardingService{prefs: &domain.UserPreferences{Goal: &goal}}
	h := NewOnboardingHandler(svc, false)

	rec := serve(t, h.Preferences, http.MethodGet, "/v1/onboarding/preferences", "")

	var resp preferencesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Found || resp.Preferences.Goal == nil || *resp.Preferences.Goal != domain.GoalWorker {
		t.Errorf("unexpected response: %s", rec.Body.String())
	}
}

func TestOnboardingHandler_Completed(t *testing.T) {
	svc := &stubOnboardingService{completed: true, lastScreen: domain.ScreenManagerDashboard}
	h := NewOnboardingHandler(svc, false)

	rec := serve(t, h.Completed, http.MethodGet, "/v1/onboarding/completed", "")

	var resp completedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Completed || resp.LastScreen != domain.ScreenManagerDashboard {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

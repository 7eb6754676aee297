package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scratchie/onboarding-flow/internal/api/metrics"
	"github.com/scratchie/onboarding-flow/internal/api/middleware"
	"github.com/scratchie/onboarding-flow/internal/core/domain"
	"github.com/scratchie/onboarding-flow/internal/core/ports"
)

// OnboardingHandler is the renderer boundary: it serves the current view and
// forwards user intent to the session host.
type OnboardingHandler struct {
	service     ports.OnboardingService
	debugAlways bool
}

// NewOnboardingHandler creates an OnboardingHandler. debugAlways includes the
// event log in every view.
func NewOnboardingHandler(service ports.OnboardingService, debugAlways bool) *OnboardingHandler {
	return &OnboardingHandler{service: service, debugAlways: debugAlways}
}

// Screen handles GET /onboarding and GET /onboarding/:screen.
//
// The route screen is only the starting point of a new flow; a stored
// snapshot wins. Unknown screens are 404.
//
// @Summary      Open or resume the onboarding flow at a screen
// @Tags         onboarding
// @Produce      json
// @Param        screen  path      string  false  "Initial screen (welcome, goal, sector-category, ...)"
// @Param        debug   query     bool    false  "Include the analytics event log"
// @Success      200     {object}  viewResponse
// @Failure      404     {object}  errorResponse
// @Router       /onboarding/{screen} [get]
func (h *OnboardingHandler) Screen(c echo.Context) error {
	initial := domain.ScreenWelcome
	if raw := c.Param("screen"); raw != "" {
		s, err := domain.ParseScreen(raw)
		if err != nil {
			return err
		}
		initial = s
	}
	return h.open(c, initial)
}

// Current handles GET /v1/onboarding.
//
// @Summary      Get the current onboarding view
// @Tags         onboarding
// @Produce      json
// @Param        screen  query     string  false  "Initial screen for a new flow"
// @Param        debug   query     bool    false  "Include the analytics event log"
// @Success      200     {object}  viewResponse
// @Failure      400     {object}  errorResponse
// @Router       /v1/onboarding [get]
func (h *OnboardingHandler) Current(c echo.Context) error {
	var initial domain.Screen
	if raw := c.QueryParam("screen"); raw != "" {
		s, err := domain.ParseScreen(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		initial = s
	}
	return h.open(c, initial)
}

func (h *OnboardingHandler) open(c echo.Context, initial domain.Screen) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	debug := h.debugAlways || middleware.DebugRequested(c)

	view, err := h.service.Open(ctx, ports.OpenSessionInput{
		Identity:      id,
		InitialScreen: initial,
		Debug:         debug,
	})
	if err != nil {
		return err
	}
	metrics.ScreenViewsTotal.WithLabelValues(string(view.State.CurrentScreen)).Inc()
	metrics.LiveSessions.Set(float64(h.service.LiveSessions()))

	resp := viewResponse{ScreenView: *view}
	if debug {
		events, err := h.service.Events(ctx, id)
		if err != nil {
			return err
		}
		resp.Events = events
	}
	return c.JSON(http.StatusOK, resp)
}

// dispatch forwards one action and renders the result. Ignored actions are
// still 200 with applied=false.
func (h *OnboardingHandler) dispatch(c echo.Context, in domain.ActionInput) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	res, err := h.service.Dispatch(c.Request().Context(), id, in)
	if err != nil {
		return err
	}

	result := "ignored"
	if res.Applied {
		result = "applied"
		metrics.ScreenViewsTotal.WithLabelValues(string(res.View.State.CurrentScreen)).Inc()
	}
	metrics.ActionsTotal.WithLabelValues(string(in.Action), result).Inc()
	metrics.LiveSessions.Set(float64(h.service.LiveSessions()))

	return c.JSON(http.StatusOK, actionResponse{Applied: res.Applied, View: res.View})
}

// Start handles POST /v1/onboarding/start.
//
// @Summary      Leave the welcome screen
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  actionResponse
// @Router       /v1/onboarding/start [post]
func (h *OnboardingHandler) Start(c echo.Context) error {
	return h.dispatch(c, domain.ActionInput{Action: domain.ActionStart})
}

// SkipWelcome handles POST /v1/onboarding/skip.
//
// @Summary      Skip straight to the worker tips
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  actionResponse
// @Router       /v1/onboarding/skip [post]
func (h *OnboardingHandler) SkipWelcome(c echo.Context) error {
	return h.dispatch(c, domain.ActionInput{Action: domain.ActionSkipWelcome})
}

// SelectGoal handles POST /v1/onboarding/goal.
//
// @Summary      Choose the onboarding goal
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body      selectGoalRequest  true  "Goal"
// @Success      200   {object}  actionResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/onboarding/goal [post]
func (h *OnboardingHandler) SelectGoal(c echo.Context) error {
	var req selectGoalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.dispatch(c, domain.ActionInput{Action: domain.ActionSelectGoal, Goal: req.Goal})
}

// SelectCategory handles POST /v1/onboarding/category.
//
// @Summary      Browse a sector category
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body      selectCategoryRequest  true  "Category"
// @Success      200   {object}  actionResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/onboarding/category [post]
func (h *OnboardingHandler) SelectCategory(c echo.Context) error {
	var req selectCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.dispatch(c, domain.ActionInput{Action: domain.ActionSelectCategory, Category: req.Category})
}

// SelectSector handles POST /v1/onboarding/sector.
//
// @Summary      Choose a sector from the category list
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body      selectSectorRequest  true  "Sector"
// @Success      200   {object}  actionResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/onboarding/sector [post]
func (h *OnboardingHandler) SelectSector(c echo.Context) error {
	var req selectSectorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.dispatch(c, domain.ActionInput{Action: domain.ActionSelectSector, Sector: req.Sector})
}

// SelectSectorFromSearch handles POST /v1/onboarding/sector/search.
//
// @Summary      Choose a sector found by search
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body      selectSectorRequest  true  "Sector"
// @Success      200   {object}  actionResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/onboarding/sector/search [post]
func (h *OnboardingHandler) SelectSectorFromSearch(c echo.Context) error {
	var req selectSectorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.dispatch(c, domain.ActionInput{Action: domain.ActionSelectSectorDir, Sector: req.Sector})
}

// SkipSector handles POST /v1/onboarding/sector/skip.
//
// @Summary      Continue without a sector
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  actionResponse
// @Router       /v1/onboarding/sector/skip [post]
func (h *OnboardingHandler) SkipSector(c echo.Context) error {
	return h.dispatch(c, domain.ActionInput{Action: domain.ActionSkipSector})
}

// ContinueFromTips handles POST /v1/onboarding/tips/continue.
//
// @Summary      Finish the tips and open the dashboard
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  actionResponse
// @Router       /v1/onboarding/tips/continue [post]
func (h *OnboardingHandler) ContinueFromTips(c echo.Context) error {
	return h.dispatch(c, domain.ActionInput{Action: domain.ActionContinueFromTips})
}

// ToggleMode handles POST /v1/onboarding/mode/toggle.
//
// @Summary      Switch between manager and worker dashboards
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  actionResponse
// @Router       /v1/onboarding/mode/toggle [post]
func (h *OnboardingHandler) ToggleMode(c echo.Context) error {
	return h.dispatch(c, domain.ActionInput{Action: domain.ActionToggleMode})
}

// GoBack handles POST /v1/onboarding/back.
//
// @Summary      Go to the previous screen
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  actionResponse
// @Router       /v1/onboarding/back [post]
func (h *OnboardingHandler) GoBack(c echo.Context) error {
	return h.dispatch(c, domain.ActionInput{Action: domain.ActionGoBack})
}

// Reset handles POST /v1/onboarding/reset.
//
// @Summary      Forget the flow and start over
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  actionResponse
// @Router       /v1/onboarding/reset [post]
func (h *OnboardingHandler) Reset(c echo.Context) error {
	return h.dispatch(c, domain.ActionInput{Action: domain.ActionReset})
}

// GoPro handles POST /v1/onboarding/pro.
//
// @Summary      Register interest in the Pro tier
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  actionResponse
// @Router       /v1/onboarding/pro [post]
func (h *OnboardingHandler) GoPro(c echo.Context) error {
	return h.dispatch(c, domain.ActionInput{Action: domain.ActionGoPro})
}

// FirstValue handles POST /v1/onboarding/first-value.
//
// @Summary      Record the first action taken on a dashboard
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body      firstValueRequest  true  "Action type"
// @Success      200   {object}  actionResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/onboarding/first-value [post]
func (h *OnboardingHandler) FirstValue(c echo.Context) error {
	var req firstValueRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.dispatch(c, domain.ActionInput{Action: domain.ActionFirstValue, Kind: req.Type})
}

// Events handles GET /v1/onboarding/events.
//
// @Summary      Read the session's analytics event log
// @Tags         onboarding
// @Produce      json
// @Param        debug  query     bool  false  "Required unless debug mode is always on"
// @Success      200    {object}  eventsResponse
// @Failure      404    {object}  errorResponse
// @Router       /v1/onboarding/events [get]
func (h *OnboardingHandler) Events(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	events, err := h.service.Events(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, eventsResponse{Events: events, Count: len(events)})
}

// Preferences handles GET /v1/onboarding/preferences.
//
// @Summary      Read the device's saved preferences
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  preferencesResponse
// @Router       /v1/onboarding/preferences [get]
func (h *OnboardingHandler) Preferences(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	prefs, ok := h.service.Preferences(c.Request().Context(), id)
	if !ok {
		return c.JSON(http.StatusOK, preferencesResponse{Found: false})
	}
	return c.JSON(http.StatusOK, preferencesResponse{Found: true, Preferences: &prefs})
}

// Completed handles GET /v1/onboarding/completed.
//
// @Summary      Report whether this device finished onboarding and where it stopped
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  completedResponse
// @Router       /v1/onboarding/completed [get]
func (h *OnboardingHandler) Completed(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	return c.JSON(http.StatusOK, completedResponse{
		Completed:  h.service.HasCompleted(ctx, id),
		LastScreen: h.service.LastScreen(ctx, id),
	})
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}

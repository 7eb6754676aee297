package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/scratchie/onboarding-flow/internal/api/handler"
	"github.com/scratchie/onboarding-flow/internal/api/middleware"
	"github.com/scratchie/onboarding-flow/internal/core/ports"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Onboarding ports.OnboardingService
	Catalog    ports.SectorCatalog
	// Probes are checked by /health/ready, keyed by display name.
	Probes  map[string]handler.Pinger
	Session middleware.SessionOptions
	// DebugAlways exposes the event log without ?debug=true.
	DebugAlways bool
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Health probes, metrics and docs (no session) ---
	healthHandler := handler.NewHealthHandler(deps.Probes)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Catalog ---
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	cat := e.Group("/v1/catalog")
	cat.GET("/categories", catalogHandler.Categories)
	cat.GET("/categories/:category/sectors", catalogHandler.SectorsInCategory)
	cat.GET("/sectors", catalogHandler.Sectors)
	cat.GET("/sectors/:name", catalogHandler.Sector)

	// --- Onboarding flow ---
	session := middleware.Session(deps.Session)
	ob := handler.NewOnboardingHandler(deps.Onboarding, deps.DebugAlways)

	e.GET("/onboarding", ob.Screen, session)
	e.GET("/onboarding/:screen", ob.Screen, session)

	v1 := e.Group("/v1/onboarding", session)
	v1.GET("", ob.Current)
	v1.POST("/start", ob.Start)
	v1.POST("/skip", ob.SkipWelcome)
	v1.POST("/goal", ob.SelectGoal)
	v1.POST("/category", ob.SelectCategory)
	v1.POST("/sector", ob.SelectSector)
	v1.POST("/sector/search", ob.SelectSectorFromSearch)
	v1.POST("/sector/skip", ob.SkipSector)
	v1.POST("/tips/continue", ob.ContinueFromTips)
	v1.POST("/mode/toggle", ob.ToggleMode)
	v1.POST("/back", ob.GoBack)
	v1.POST("/reset", ob.Reset)
	v1.POST("/pro", ob.GoPro)
	v1.POST("/first-value", ob.FirstValue)
	v1.GET("/events", ob.Events, middleware.DebugOnly(deps.DebugAlways))
	v1.GET("/preferences", ob.Preferences)
	v1.GET("/completed", ob.Completed)

	return e
}

// Command server runs the onboarding flow HTTP API.
//
// @title        Onboarding Flow API
// @version      1.0
// @description  Guided onboarding navigation with dual-scope persistence and an analytics event log.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/scratchie/onboarding-flow/docs"
	"github.com/scratchie/onboarding-flow/internal/api"
	"github.com/scratchie/onboarding-flow/internal/api/handler"
	"github.com/scratchie/onboarding-flow/internal/api/metrics"
	"github.com/scratchie/onboarding-flow/internal/api/middleware"
	"github.com/scratchie/onboarding-flow/internal/core/catalog"
	"github.com/scratchie/onboarding-flow/internal/core/ports"
	"github.com/scratchie/onboarding-flow/internal/core/service"
	"github.com/scratchie/onboarding-flow/internal/infrastructure/config"
	"github.com/scratchie/onboarding-flow/internal/infrastructure/db/memory"
	mongostore "github.com/scratchie/onboarding-flow/internal/infrastructure/db/mongo"
	redisstore "github.com/scratchie/onboarding-flow/internal/infrastructure/db/redis"
	"github.com/scratchie/onboarding-flow/internal/infrastructure/queue"
	"github.com/scratchie/onboarding-flow/internal/infrastructure/resilience"
	"github.com/scratchie/onboarding-flow/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "onboarding-flow",
		Env:     cfg.Env,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

// backends is the storage wiring picked by STORAGE_DRIVER.
type backends struct {
	storage service.StorageDeps
	probes  map[string]handler.Pinger
	repo    ports.AnalyticsRepository
	close   func(context.Context)
}

func openBackends(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*backends, error) {
	if cfg.StorageDriver == config.StorageMemory {
		durable, session := memory.NewStore(0), memory.NewStore(cfg.Session.TTL)
		log.Warn().Msg("using in-memory storage; state is lost on restart")
		return &backends{
			storage: service.StorageDeps{Durable: durable, Session: session},
			probes:  map[string]handler.Pinger{"memory": durable},
			close:   func(context.Context) {},
		}, nil
	}

	mdb, err := mongostore.Open(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, err
	}
	rdb, err := redisstore.Open(ctx, redisstore.Config{
		Addr:       cfg.Redis.Addr,
		DB:         cfg.Redis.DB,
		SessionTTL: cfg.Session.TTL,
	})
	if err != nil {
		_ = mdb.Close(ctx)
		return nil, err
	}

	durable := resilience.Guard("durable", mdb.State,
		resilience.NewCircuitBreaker("mongo-state", log), metrics.ObserveStorageFailure)
	session := resilience.Guard("session", rdb,
		resilience.NewCircuitBreaker("redis-session", log), metrics.ObserveStorageFailure)

	return &backends{
		storage: service.StorageDeps{Durable: durable, Session: session},
		probes:  map[string]handler.Pinger{"mongodb": mdb.State, "redis": rdb},
		repo:    mdb.Analytics,
		close: func(ctx context.Context) {
			if err := rdb.Close(); err != nil {
				log.Error().Err(err).Msg("redis close")
			}
			if err := mdb.Close(ctx); err != nil {
				log.Error().Err(err).Msg("mongo disconnect")
			}
		},
	}, nil
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	// --- Storage ---
	b, err := openBackends(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		b.close(closeCtx)
	}()

	// --- Analytics forwarding ---
	var sink ports.AnalyticsSink
	if cfg.Analytics.Forward {
		d := queue.NewDispatcher(cfg.Analytics.Workers, b.repo, log)
		d.Start(ctx)
		sink = d
		log.Info().Int("workers", cfg.Analytics.Workers).Msg("analytics forwarding enabled")
	}

	// --- Core ---
	cat := catalog.Default()
	svc := service.NewSessionService(cat, b.storage, sink, service.SessionConfig{
		SessionTTL:        cfg.Session.TTL,
		MaxLiveSessions:   cfg.Session.MaxLive,
		Debug:             cfg.Analytics.Debug,
		AnalyticsDisabled: !cfg.Analytics.Enabled,
	}, log)

	// --- Router ---
	router := api.NewRouter(api.Deps{
		Onboarding: svc,
		Catalog:    cat,
		Probes:     b.probes,
		Session: middleware.SessionOptions{
			DeviceTTL: cfg.Session.DeviceCookieTTL,
			Secure:    cfg.IsProduction(),
		},
		DebugAlways: cfg.Analytics.Debug,
		Log:         log,
	})

	// --- Server ---
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("storage", cfg.StorageDriver).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("server shutting down")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}

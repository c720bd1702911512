// Copyright (c) 2026 Holospace. All rights reserved.

// Command api is the entry point for the Holospace HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect the selected key-value backend (Redis, PostgreSQL, or memory).
//  4. Run database migrations when on the PostgreSQL backend (idempotent).
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/holospace/holospace/internal/account"
	"github.com/holospace/holospace/internal/api"
	"github.com/holospace/holospace/internal/catalog"
	"github.com/holospace/holospace/internal/commerce"
	"github.com/holospace/holospace/internal/identity"
	"github.com/holospace/holospace/internal/platform/config"
	"github.com/holospace/holospace/internal/platform/constants"
	"github.com/holospace/holospace/internal/platform/kv"
	"github.com/holospace/holospace/internal/platform/migration"
	pgstore "github.com/holospace/holospace/internal/platform/postgres"
	redisstore "github.com/holospace/holospace/internal/platform/redis"
	"github.com/holospace/holospace/internal/platform/sec"
	"github.com/holospace/holospace/internal/social"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Holospace] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("kv_backend", cfg.KVBackend),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Key-Value Backend ──────────────────────────────────────────────
	var store kv.Store
	var checkStore func() error

	switch cfg.KVBackend {
	case config.BackendPostgres:
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		store = kv.NewPostgresStore(pool)
		checkStore = func() error {
			return pgstore.Ping(context.Background(), pool)
		}

	case config.BackendRedis:
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		store = kv.NewRedisStore(rdb)
		checkStore = func() error {
			return redisstore.Ping(context.Background(), rdb)
		}

	case config.BackendMemory:
		log.Warn("memory backend selected; all data is lost on restart")
		store = kv.NewMemoryStore()
	}

	// ── 4. Token Service ──────────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.AuthSecret, constants.AuthIssuer)
	must(log, err, "initialize token service")

	// ── 5. Health Handlers ────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckStore: checkStore,
		StoreName:  cfg.KVBackend,
	}, log)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	identityService := identity.NewService(identity.NewKVCredentialStore(store), tokenService)
	profileRepository := account.NewKVProfileRepository(store)

	accountService := account.NewService(profileRepository, identityService)
	catalogService := catalog.NewService(catalog.NewKVContentRepository(store))
	commerceService := commerce.NewService(commerce.NewKVPurchaseRepository(store))
	socialService := social.NewService(social.NewKVRepository(store), profileRepository, profileRepository)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Account:   account.NewHandler(accountService),
		Catalog:   catalog.NewHandler(catalogService),
		Commerce:  commerce.NewHandler(commerceService),
		Social:    social.NewHandler(socialService),
	}

	// Server context outlives startup; cancelling it stops the rate limiter
	// cleanup goroutine on shutdown.
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, identityService, handlers)

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}

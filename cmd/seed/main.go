// Copyright (c) 2026 Holospace. All rights reserved.

// Command seed loads the sample catalog and the demo account into the
// configured key-value backend.
//
// # Behavior
//
// Safe to run repeatedly: catalog records are only written when missing, and
// the demo account is skipped if its email is already registered. Run it once
// against a fresh environment, or after wiping a development store.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/holospace/holospace/internal/account"
	"github.com/holospace/holospace/internal/catalog"
	"github.com/holospace/holospace/internal/commerce"
	"github.com/holospace/holospace/internal/identity"
	"github.com/holospace/holospace/internal/platform/apperr"
	"github.com/holospace/holospace/internal/platform/config"
	"github.com/holospace/holospace/internal/platform/constants"
	"github.com/holospace/holospace/internal/platform/kv"
	"github.com/holospace/holospace/internal/platform/migration"
	pgstore "github.com/holospace/holospace/internal/platform/postgres"
	redisstore "github.com/holospace/holospace/internal/platform/redis"
	"github.com/holospace/holospace/internal/platform/sec"
)

// Demo account fixture. The level-5 profile and owned content give reviewers
// and app store testers something to look at without grinding.
const (
	demoEmail    = "demo@holospace.app"
	demoPassword = "demo123456"
	demoName     = "Demo User"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", constants.AppName+"-seed"))

	cfg, err := config.Load()
	must(log, err, "load configuration")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// ── 1. Key-Value Backend ──────────────────────────────────────────────
	var store kv.Store

	switch cfg.KVBackend {
	case config.BackendPostgres:
		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer pool.Close()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
		store = kv.NewPostgresStore(pool)

	case config.BackendRedis:
		rdb, err := redisstore.NewClient(ctx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer rdb.Close()

		store = kv.NewRedisStore(rdb)

	case config.BackendMemory:
		log.Error("seeding the memory backend is pointless; data dies with this process")
		os.Exit(1)
	}

	// ── 2. Catalog ────────────────────────────────────────────────────────
	catalogService := catalog.NewService(catalog.NewKVContentRepository(store))

	written, err := catalogService.Seed(ctx, catalog.SampleContent())
	must(log, err, "seed catalog")
	log.Info("catalog_seeded", slog.Int("records_written", written))

	// ── 3. Demo Account ───────────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.AuthSecret, constants.AuthIssuer)
	must(log, err, "initialize token service")

	identityService := identity.NewService(identity.NewKVCredentialStore(store), tokenService)
	profileRepository := account.NewKVProfileRepository(store)
	accountService := account.NewService(profileRepository, identityService)
	purchaseRepository := commerce.NewKVPurchaseRepository(store)

	profile, err := accountService.CreateAccount(ctx, demoEmail, demoPassword, demoName)
	if err != nil {
		if ae := apperr.As(err); ae != nil && ae.Code == "CONFLICT" {
			log.Info("demo_account_already_exists", slog.String("email", demoEmail))
			return
		}
		must(log, err, "create demo account")
	}

	// Dress the demo profile up past the newbie defaults.
	_, err = accountService.UpdateProfile(ctx, profile.ID, map[string]any{
		"level":             5,
		"experiencesPlayed": 12,
		"totalPlayTime":     24,
		"achievements":      []string{"Explorer", "Social Butterfly"},
	})
	must(log, err, "update demo profile")

	must(log, purchaseRepository.SaveOwned(ctx, profile.ID, []string{"1", "4"}), "grant demo purchases")

	log.Info("demo_account_seeded",
		slog.String("email", demoEmail),
		slog.String("user_id", profile.ID),
	)
}

// must logs a structured fatal error and terminates the process if err is non-nil.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("seed failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}

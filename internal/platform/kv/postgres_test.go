// Copyright (c) 2026 Holospace. All rights reserved.

package kv_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/holospace/holospace/internal/platform/kv"
	"github.com/holospace/holospace/internal/platform/kv/kvtest"
)

/*
TestPostgresStore_Contract runs the shared store contract suite against a live
PostgreSQL database. Skipped unless TEST_DATABASE_URL is set. The kv_store
table must exist (run the migrations in data/migrations first).
*/
func TestPostgresStore_Contract(t *testing.T) {
	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping Postgres contract test")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, databaseURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(ctx))

	kvtest.Run(t, kv.NewPostgresStore(pool))
}

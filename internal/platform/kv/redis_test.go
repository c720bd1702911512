// Copyright (c) 2026 Holospace. All rights reserved.

package kv_test

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/holospace/holospace/internal/platform/kv"
	"github.com/holospace/holospace/internal/platform/kv/kvtest"
)

/*
TestRedisStore_Contract runs the shared store contract suite against a live
Redis server. Skipped unless TEST_REDIS_URL is set, e.g.:

	TEST_REDIS_URL=redis://localhost:6379/15 go test ./internal/platform/kv/...
*/
func TestRedisStore_Contract(t *testing.T) {
	redisURL := os.Getenv("TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("TEST_REDIS_URL not set; skipping Redis contract test")
	}

	options, err := redis.ParseURL(redisURL)
	require.NoError(t, err)

	client := redis.NewClient(options)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Ping(context.Background()).Err())

	kvtest.Run(t, kv.NewRedisStore(client))
}

// Copyright (c) 2026 Holospace. All rights reserved.

// Package kvtest provides the behavioral contract suite every [kv.Store]
// implementation must pass.
//
// # Usage
//
//	func TestRedisStore_Contract(t *testing.T) {
//	    kvtest.Run(t, newRedisStore(t))
//	}
//
// The suite namespaces all keys under a random prefix so it can run against a
// live shared server without colliding with real data, and cleans up after
// itself.
package kvtest

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holospace/holospace/internal/platform/kv"
	"github.com/holospace/holospace/pkg/uuid"
)

// document is a representative JSON-shaped value.
type document struct {
	Name  string   `json:"name"`
	Level int      `json:"level"`
	Tags  []string `json:"tags"`
}

// Run executes the full [kv.Store] contract against the given implementation.
func Run(t *testing.T, store kv.Store) {
	t.Helper()

	ctx := context.Background()
	namespace := "kvtest:" + uuid.New() + ":"
	key := func(suffix string) string { return namespace + suffix }

	t.Cleanup(func() {
		for _, suffix := range []string{"doc", "doc2", "list", "scan:a", "scan:b", "scan:c", "other"} {
			_ = store.Delete(ctx, key(suffix))
		}
	})

	t.Run("get_missing_key", func(t *testing.T) {
		var dest document
		err := store.Get(ctx, key("absent"), &dest)
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("set_get_roundtrip", func(t *testing.T) {
		original := document{Name: "Explorer", Level: 3, Tags: []string{"vr", "social"}}
		require.NoError(t, store.Set(ctx, key("doc"), original))

		var loaded document
		require.NoError(t, store.Get(ctx, key("doc"), &loaded))
		assert.Equal(t, original, loaded)
	})

	t.Run("set_overwrites", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, key("doc2"), document{Name: "v1"}))
		require.NoError(t, store.Set(ctx, key("doc2"), document{Name: "v2", Level: 2}))

		var loaded document
		require.NoError(t, store.Get(ctx, key("doc2"), &loaded))
		assert.Equal(t, "v2", loaded.Name)
		assert.Equal(t, 2, loaded.Level)
	})

	t.Run("stores_non_object_values", func(t *testing.T) {
		// Lists are first-class values (purchased-sets, friend lists).
		require.NoError(t, store.Set(ctx, key("list"), []string{"1", "4"}))

		var loaded []string
		require.NoError(t, store.Get(ctx, key("list"), &loaded))
		assert.Equal(t, []string{"1", "4"}, loaded)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, key("doc"), document{Name: "gone"}))
		require.NoError(t, store.Delete(ctx, key("doc")))

		var dest document
		assert.ErrorIs(t, store.Get(ctx, key("doc"), &dest), kv.ErrNotFound)
	})

	t.Run("delete_missing_is_idempotent", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, key("never-existed")))
	})

	t.Run("prefix_scan", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, key("scan:a"), document{Name: "a"}))
		require.NoError(t, store.Set(ctx, key("scan:b"), document{Name: "b"}))
		require.NoError(t, store.Set(ctx, key("scan:c"), document{Name: "c"}))
		require.NoError(t, store.Set(ctx, key("other"), document{Name: "other"}))

		values, err := store.GetByPrefix(ctx, key("scan:"))
		require.NoError(t, err)
		require.Len(t, values, 3)

		// Ordering is unspecified; compare as a set.
		names := make(map[string]bool)
		for _, raw := range values {
			var loaded document
			require.NoError(t, json.Unmarshal(raw, &loaded))
			names[loaded.Name] = true
		}
		assert.Equal(t, map[string]bool{"a": true, "b": true, "c": true}, names)
	})

	t.Run("prefix_scan_no_matches", func(t *testing.T) {
		values, err := store.GetByPrefix(ctx, key("nothing-here:"))
		require.NoError(t, err)
		assert.Empty(t, values)
	})
}

// Copyright (c) 2026 Holospace. All rights reserved.

package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// scanBatchSize is the COUNT hint passed to Redis SCAN.
const scanBatchSize = 200

// RedisStore implements [Store] on top of a Redis server.
//
// Values are stored as JSON strings without TTL; prefix listing uses
// cursor-based SCAN so it never blocks the server the way KEYS would.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an already-connected Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get reads and unmarshals the value at key.
func (store *RedisStore) Get(ctx context.Context, key string, dest any) error {
	payload, err := store.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return fmt.Errorf("kv: redis get failed for %q: %w", key, err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("kv: redis decode failed for %q: %w", key, err)
	}
	return nil
}

// Set marshals value and overwrites the key.
func (store *RedisStore) Set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv: redis encode failed for %q: %w", key, err)
	}

	if err := store.client.Set(ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("kv: redis set failed for %q: %w", key, err)
	}
	return nil
}

// Delete removes the key. Absent keys are ignored (DEL is idempotent).
func (store *RedisStore) Delete(ctx context.Context, key string) error {
	if err := store.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("kv: redis delete failed for %q: %w", key, err)
	}
	return nil
}

// GetByPrefix returns the values of all keys starting with prefix.
func (store *RedisStore) GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error) {

	// 1. Collect matching keys with SCAN (glob metacharacters escaped).
	pattern := escapeMatchPattern(prefix) + "*"
	iterator := store.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()

	keys := make([]string, 0)
	for iterator.Next(ctx) {
		keys = append(keys, iterator.Val())
	}
	if err := iterator.Err(); err != nil {
		return nil, fmt.Errorf("kv: redis scan failed for prefix %q: %w", prefix, err)
	}

	if len(keys) == 0 {
		return []json.RawMessage{}, nil
	}

	// 2. Fetch all values in one round-trip.
	results, err := store.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("kv: redis mget failed for prefix %q: %w", prefix, err)
	}

	values := make([]json.RawMessage, 0, len(results))
	for _, result := range results {
		// A key deleted between SCAN and MGET comes back as nil; skip it.
		payload, ok := result.(string)
		if !ok {
			continue
		}
		values = append(values, json.RawMessage(payload))
	}

	return values, nil
}

// escapeMatchPattern escapes Redis glob metacharacters in a literal prefix.
func escapeMatchPattern(prefix string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`*`, `\*`,
		`?`, `\?`,
		`[`, `\[`,
		`]`, `\]`,
	)
	return replacer.Replace(prefix)
}

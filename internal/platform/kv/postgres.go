// Copyright (c) 2026 Holospace. All rights reserved.

package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements [Store] over a single table:
//
//	CREATE TABLE kv_store (key text PRIMARY KEY, value jsonb NOT NULL);
//
// The schema is managed by the migrations in data/migrations. This backend is
// the durable option: every write is a transactional upsert on the primary key.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an already-connected pgx pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Get reads and unmarshals the value at key.
func (store *PostgresStore) Get(ctx context.Context, key string, dest any) error {
	var payload []byte

	row := store.pool.QueryRow(ctx,
		`SELECT value FROM kv_store WHERE key = $1`, key)

	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("kv: postgres get failed for %q: %w", key, err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("kv: postgres decode failed for %q: %w", key, err)
	}
	return nil
}

// Set marshals value and upserts the key.
func (store *PostgresStore) Set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv: postgres encode failed for %q: %w", key, err)
	}

	_, err = store.pool.Exec(ctx,
		`INSERT INTO kv_store (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, payload)
	if err != nil {
		return fmt.Errorf("kv: postgres set failed for %q: %w", key, err)
	}
	return nil
}

// Delete removes the key. Absent keys are ignored.
func (store *PostgresStore) Delete(ctx context.Context, key string) error {
	_, err := store.pool.Exec(ctx,
		`DELETE FROM kv_store WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("kv: postgres delete failed for %q: %w", key, err)
	}
	return nil
}

// GetByPrefix returns the values of all keys starting with prefix.
func (store *PostgresStore) GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error) {
	rows, err := store.pool.Query(ctx,
		`SELECT value FROM kv_store WHERE key LIKE $1 ESCAPE '\'`,
		escapeLikePattern(prefix)+"%")
	if err != nil {
		return nil, fmt.Errorf("kv: postgres prefix query failed for %q: %w", prefix, err)
	}
	defer rows.Close()

	values := make([]json.RawMessage, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("kv: postgres prefix scan failed for %q: %w", prefix, err)
		}
		values = append(values, json.RawMessage(payload))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("kv: postgres prefix iteration failed for %q: %w", prefix, err)
	}

	return values, nil
}

// escapeLikePattern escapes LIKE metacharacters in a literal prefix.
func escapeLikePattern(prefix string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
	)
	return replacer.Replace(prefix)
}

// Copyright (c) 2026 Holospace. All rights reserved.

package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MemoryStore is a mutex-guarded in-process [Store].
//
// # Usage
//
// It backs unit tests and local development (KV_BACKEND=memory). Data does
// not survive a restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]json.RawMessage)}
}

// Get reads and unmarshals the value at key.
func (store *MemoryStore) Get(ctx context.Context, key string, dest any) error {
	store.mu.RLock()
	payload, found := store.data[key]
	store.mu.RUnlock()

	if !found {
		return ErrNotFound
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("kv: memory decode failed for %q: %w", key, err)
	}
	return nil
}

// Set marshals value and overwrites the key.
func (store *MemoryStore) Set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv: memory encode failed for %q: %w", key, err)
	}

	store.mu.Lock()
	store.data[key] = payload
	store.mu.Unlock()
	return nil
}

// Delete removes the key. Absent keys are ignored.
func (store *MemoryStore) Delete(ctx context.Context, key string) error {
	store.mu.Lock()
	delete(store.data, key)
	store.mu.Unlock()
	return nil
}

// GetByPrefix returns the values of all keys starting with prefix.
//
// Results are ordered by key for determinism, though the [Store] contract
// leaves ordering unspecified.
func (store *MemoryStore) GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error) {
	store.mu.RLock()
	matchingKeys := make([]string, 0)
	for key := range store.data {
		if strings.HasPrefix(key, prefix) {
			matchingKeys = append(matchingKeys, key)
		}
	}
	sort.Strings(matchingKeys)

	values := make([]json.RawMessage, 0, len(matchingKeys))
	for _, key := range matchingKeys {
		// Copy so later Sets cannot alias a returned value.
		payload := make(json.RawMessage, len(store.data[key]))
		copy(payload, store.data[key])
		values = append(values, payload)
	}
	store.mu.RUnlock()

	return values, nil
}

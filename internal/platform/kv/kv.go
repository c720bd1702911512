// Copyright (c) 2026 Holospace. All rights reserved.

/*
Package kv defines the key-value store abstraction every Holospace service
persists through, plus its Redis, PostgreSQL, and in-memory implementations.

Architecture:

  - Contract: Get / Set / Delete / GetByPrefix over JSON-serializable values.
  - Pluggability: Services depend on [Store] only; the engine behind it is a
    deployment decision (KV_BACKEND).
  - Invariants: The store enforces no schema. All domain invariants
    (idempotent purchases, symmetric friendships, bounded history) are the
    responsibility of the service layer.

Consistency: Set is atomic per key on every backend. Nothing stronger is
promised — multi-key operations in the services are sequences of single-key
writes with documented partial-failure behavior.
*/
package kv

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned by [Store.Get] when the key does not exist.
//
// Repositories translate it into a domain-appropriate outcome (apperr.NotFound,
// an empty list, a nil snapshot); it never reaches the HTTP edge directly.
var ErrNotFound = errors.New("kv: key not found")

// Store is the persistence contract shared by all Holospace services.
type Store interface {

	/*
		Get reads the value stored at key and unmarshals it into dest.

		Parameters:
		  - ctx: context.Context
		  - key: string
		  - dest: pointer to the destination value

		Returns:
		  - error: ErrNotFound when the key is absent, decode or I/O failures otherwise
	*/
	Get(ctx context.Context, key string, dest any) error

	/*
		Set marshals value as JSON and stores it at key, overwriting any
		previous value. The write is atomic for the single key.

		Parameters:
		  - ctx: context.Context
		  - key: string
		  - value: any JSON-serializable value

		Returns:
		  - error: encode or I/O failures
	*/
	Set(ctx context.Context, key string, value any) error

	/*
		Delete removes the key. Deleting an absent key is not an error.

		Parameters:
		  - ctx: context.Context
		  - key: string

		Returns:
		  - error: I/O failures
	*/
	Delete(ctx context.Context, key string) error

	/*
		GetByPrefix returns the raw JSON values of every key starting with
		prefix. The iteration order is backend-defined; callers must not rely
		on it. An empty result is a nil/empty slice, never an error.

		Parameters:
		  - ctx: context.Context
		  - prefix: string

		Returns:
		  - []json.RawMessage: matching values
		  - error: I/O failures
	*/
	GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error)
}

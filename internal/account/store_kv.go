// Copyright (c) 2026 Holospace. All rights reserved.

package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/holospace/holospace/internal/platform/apperr"
	"github.com/holospace/holospace/internal/platform/kv"
)

// userKeyPrefix namespaces all per-user state (profile, purchases, friends,
// activity) in the key-value store.
const userKeyPrefix = "user:"

// KVProfileRepository implements [ProfileRepository] and [Directory] on top of
// the key-value store.
type KVProfileRepository struct {
	store kv.Store
}

// NewKVProfileRepository constructs a profile repository backed by the given KV store.
func NewKVProfileRepository(store kv.Store) *KVProfileRepository {
	return &KVProfileRepository{store: store}
}

// Find returns the typed profile for the given user.
func (repository *KVProfileRepository) Find(ctx context.Context, userID string) (*Profile, error) {
	var profile Profile
	err := repository.store.Get(ctx, profileKey(userID), &profile)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, apperr.NotFound("Profile")
	}
	if err != nil {
		return nil, fmt.Errorf("account_store_find_failed: %w", err)
	}
	return &profile, nil
}

// Create persists a brand-new profile document.
func (repository *KVProfileRepository) Create(ctx context.Context, profile *Profile) error {
	if err := repository.store.Set(ctx, profileKey(profile.ID), profile); err != nil {
		return fmt.Errorf("account_store_create_failed: %w", err)
	}
	return nil
}

// FindDocument returns the raw profile document. Missing profiles yield an
// empty document.
func (repository *KVProfileRepository) FindDocument(ctx context.Context, userID string) (map[string]any, error) {
	document := make(map[string]any)
	err := repository.store.Get(ctx, profileKey(userID), &document)
	if errors.Is(err, kv.ErrNotFound) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("account_store_find_document_failed: %w", err)
	}
	return document, nil
}

// SaveDocument overwrites the raw profile document.
func (repository *KVProfileRepository) SaveDocument(ctx context.Context, userID string, document map[string]any) error {
	if err := repository.store.Set(ctx, profileKey(userID), document); err != nil {
		return fmt.Errorf("account_store_save_document_failed: %w", err)
	}
	return nil
}

// FindByEmail returns the profile registered under the given email.
//
// # Scaling
//
// This is a linear scan over every "user:" key. The prefix also covers
// purchase lists and activity snapshots, so values that do not decode into a
// profile are skipped. Acceptable at current user counts; a secondary
// email→id index is the upgrade path once this shows up in latency profiles.
func (repository *KVProfileRepository) FindByEmail(ctx context.Context, email string) (*Profile, error) {
	values, err := repository.store.GetByPrefix(ctx, userKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("account_store_scan_failed: %w", err)
	}

	for _, raw := range values {
		var profile Profile
		if err := json.Unmarshal(raw, &profile); err != nil {
			continue // not a profile document
		}
		if profile.ID == "" || profile.Email == "" {
			continue
		}
		if strings.EqualFold(profile.Email, email) {
			return &profile, nil
		}
	}

	return nil, apperr.NotFound("User")
}

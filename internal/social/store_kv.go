// Copyright (c) 2026 Holospace. All rights reserved.

package social

import (
	"context"
	"errors"
	"fmt"

	"github.com/holospace/holospace/internal/platform/kv"
)

// KVRepository implements [Repository] on top of the key-value store.
type KVRepository struct {
	store kv.Store
}

// NewKVRepository constructs a social repository backed by the given KV store.
func NewKVRepository(store kv.Store) *KVRepository {
	return &KVRepository{store: store}
}

// FindFriendIDs returns the user's friend list. Missing keys yield an empty slice.
func (repository *KVRepository) FindFriendIDs(ctx context.Context, userID string) ([]string, error) {
	var friendIDs []string
	err := repository.store.Get(ctx, friendsKey(userID), &friendIDs)
	if errors.Is(err, kv.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("social_store_find_friends_failed: %w", err)
	}
	if friendIDs == nil {
		friendIDs = []string{}
	}
	return friendIDs, nil
}

// SaveFriendIDs overwrites the user's friend list.
func (repository *KVRepository) SaveFriendIDs(ctx context.Context, userID string, friendIDs []string) error {
	if err := repository.store.Set(ctx, friendsKey(userID), friendIDs); err != nil {
		return fmt.Errorf("social_store_save_friends_failed: %w", err)
	}
	return nil
}

// FindActivity returns the user's live activity snapshot, or nil when absent.
func (repository *KVRepository) FindActivity(ctx context.Context, userID string) (*ActivitySnapshot, error) {
	var snapshot ActivitySnapshot
	err := repository.store.Get(ctx, activityKey(userID), &snapshot)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("social_store_find_activity_failed: %w", err)
	}
	return &snapshot, nil
}

// SaveActivity overwrites the user's live activity snapshot.
func (repository *KVRepository) SaveActivity(ctx context.Context, userID string, snapshot *ActivitySnapshot) error {
	if err := repository.store.Set(ctx, activityKey(userID), snapshot); err != nil {
		return fmt.Errorf("social_store_save_activity_failed: %w", err)
	}
	return nil
}

// FindHistory returns the user's activity history. Missing keys yield an empty slice.
func (repository *KVRepository) FindHistory(ctx context.Context, userID string) ([]ActivitySnapshot, error) {
	var history []ActivitySnapshot
	err := repository.store.Get(ctx, historyKey(userID), &history)
	if errors.Is(err, kv.ErrNotFound) {
		return []ActivitySnapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("social_store_find_history_failed: %w", err)
	}
	if history == nil {
		history = []ActivitySnapshot{}
	}
	return history, nil
}

// SaveHistory overwrites the user's activity history.
func (repository *KVRepository) SaveHistory(ctx context.Context, userID string, history []ActivitySnapshot) error {
	if err := repository.store.Set(ctx, historyKey(userID), history); err != nil {
		return fmt.Errorf("social_store_save_history_failed: %w", err)
	}
	return nil
}

// Copyright (c) 2026 Holospace. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/holospace/holospace/internal/platform/apperr"
	"github.com/holospace/holospace/internal/platform/kv"
)

// KVContentRepository implements [ContentRepository] on top of the key-value store.
type KVContentRepository struct {
	store kv.Store
}

// NewKVContentRepository constructs a content repository backed by the given KV store.
func NewKVContentRepository(store kv.Store) *KVContentRepository {
	return &KVContentRepository{store: store}
}

// FindAll returns every stored content record.
func (repository *KVContentRepository) FindAll(ctx context.Context) ([]ContentRecord, error) {
	values, err := repository.store.GetByPrefix(ctx, contentKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("catalog_store_scan_failed: %w", err)
	}

	records := make([]ContentRecord, 0, len(values))
	for _, raw := range values {
		var record ContentRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, fmt.Errorf("catalog_store_decode_failed: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}

// Find returns the record with the given ID.
func (repository *KVContentRepository) Find(ctx context.Context, contentID string) (*ContentRecord, error) {
	var record ContentRecord
	err := repository.store.Get(ctx, contentKey(contentID), &record)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, apperr.NotFound("Content")
	}
	if err != nil {
		return nil, fmt.Errorf("catalog_store_find_failed: %w", err)
	}
	return &record, nil
}

// Save persists a content record, overwriting any previous value.
func (repository *KVContentRepository) Save(ctx context.Context, record *ContentRecord) error {
	if err := repository.store.Set(ctx, contentKey(record.ID), record); err != nil {
		return fmt.Errorf("catalog_store_save_failed: %w", err)
	}
	return nil
}

// Copyright (c) 2026 Holospace. All rights reserved.

package commerce

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/holospace/holospace/internal/platform/kv"
)

// KVPurchaseRepository implements [PurchaseRepository] on top of the key-value store.
type KVPurchaseRepository struct {
	store kv.Store
}

// NewKVPurchaseRepository constructs a purchase repository backed by the given KV store.
func NewKVPurchaseRepository(store kv.Store) *KVPurchaseRepository {
	return &KVPurchaseRepository{store: store}
}

// FindOwned returns the user's purchased-set. Missing keys yield an empty slice.
func (repository *KVPurchaseRepository) FindOwned(ctx context.Context, userID string) ([]string, error) {
	var contentIDs []string
	err := repository.store.Get(ctx, purchasesKey(userID), &contentIDs)
	if errors.Is(err, kv.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("commerce_store_find_owned_failed: %w", err)
	}
	if contentIDs == nil {
		contentIDs = []string{}
	}
	return contentIDs, nil
}

// SaveOwned overwrites the user's purchased-set.
func (repository *KVPurchaseRepository) SaveOwned(ctx context.Context, userID string, contentIDs []string) error {
	if err := repository.store.Set(ctx, purchasesKey(userID), contentIDs); err != nil {
		return fmt.Errorf("commerce_store_save_owned_failed: %w", err)
	}
	return nil
}

// AppendLedger writes one immutable transaction record.
func (repository *KVPurchaseRepository) AppendLedger(ctx context.Context, entry *LedgerEntry, at time.Time) error {
	if err := repository.store.Set(ctx, ledgerKey(entry.UserID, entry.ContentID, at), entry); err != nil {
		return fmt.Errorf("commerce_store_append_ledger_failed: %w", err)
	}
	return nil
}

// LedgerHistory returns every transaction record for the user.
func (repository *KVPurchaseRepository) LedgerHistory(ctx context.Context, userID string) ([]LedgerEntry, error) {
	values, err := repository.store.GetByPrefix(ctx, userLedgerPrefix(userID))
	if err != nil {
		return nil, fmt.Errorf("commerce_store_ledger_scan_failed: %w", err)
	}

	entries := make([]LedgerEntry, 0, len(values))
	for _, raw := range values {
		var entry LedgerEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, fmt.Errorf("commerce_store_ledger_decode_failed: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Copyright (c) 2026 Holospace. All rights reserved.

/*
Package commerce implements content purchases for the Holospace store.

Ownership is tracked two ways:

  - Purchased-set: one list of content IDs per user ("user:<id>:purchases"),
    the authoritative answer to "does this user own this content".
  - Ledger: one append-only record per transaction
    ("purchase:<userID>:<contentID>:<unixMillis>") for audit and support.

The two writes are not atomic. The purchased-set is written first because it
gates idempotency; a lost ledger entry costs audit detail, never ownership.
*/
package commerce

import (
	"strconv"
	"time"
)

// LedgerEntry is the immutable audit record of one purchase.
type LedgerEntry struct {
	UserID    string    `json:"userId"`
	ContentID string    `json:"contentId"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// purchasesKey builds the storage key for a user's purchased-set.
func purchasesKey(userID string) string {
	return "user:" + userID + ":purchases"
}

// ledgerKeyPrefix scopes ledger entries; per-user entries share a sub-prefix.
const ledgerKeyPrefix = "purchase:"

// ledgerKey builds the storage key for one transaction record. The millisecond
// suffix keeps repeat purchases of re-granted content from colliding.
func ledgerKey(userID, contentID string, at time.Time) string {
	return ledgerKeyPrefix + userID + ":" + contentID + ":" + strconv.FormatInt(at.UnixMilli(), 10)
}

// userLedgerPrefix scopes a prefix scan to one user's transactions.
func userLedgerPrefix(userID string) string {
	return ledgerKeyPrefix + userID + ":"
}

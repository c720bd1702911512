// Copyright (c) 2026 Holospace. All rights reserved.

package commerce

import (
	"context"
	"time"
)

// # Purchase Data Access

// PurchaseRepository defines the data access contract for ownership state.
type PurchaseRepository interface {

	/*
		FindOwned returns the user's purchased-set.

		A user who has never purchased yields an empty slice, not an error.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []string: Owned content IDs, in purchase order
		  - error: Storage failures
	*/
	FindOwned(context context.Context, userID string) ([]string, error)

	/*
		SaveOwned overwrites the user's purchased-set.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - contentIDs: []string

		Returns:
		  - error: Persistence failures
	*/
	SaveOwned(context context.Context, userID string, contentIDs []string) error

	/*
		AppendLedger writes one immutable transaction record.

		Parameters:
		  - context: context.Context
		  - entry: *LedgerEntry
		  - at: time.Time (key timestamp component)

		Returns:
		  - error: Persistence failures
	*/
	AppendLedger(context context.Context, entry *LedgerEntry, at time.Time) error

	/*
		LedgerHistory returns every transaction record for the user.

		Ordering is unspecified.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []LedgerEntry: Decoded records
		  - error: Storage failures
	*/
	LedgerHistory(context context.Context, userID string) ([]LedgerEntry, error)
}

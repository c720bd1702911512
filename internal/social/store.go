// Copyright (c) 2026 Holospace. All rights reserved.

package social

import (
	"context"

	"github.com/holospace/holospace/internal/account"
)

// # Social Data Access

// Repository defines the data access contract for friend lists and activity.
type Repository interface {

	/*
		FindFriendIDs returns the user's friend list.

		A user with no friends yields an empty slice, not an error.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []string: Friend user IDs, in add order
		  - error: Storage failures
	*/
	FindFriendIDs(context context.Context, userID string) ([]string, error)

	/*
		SaveFriendIDs overwrites the user's friend list.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - friendIDs: []string

		Returns:
		  - error: Persistence failures
	*/
	SaveFriendIDs(context context.Context, userID string, friendIDs []string) error

	/*
		FindActivity returns the user's live activity snapshot.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - *ActivitySnapshot: Current snapshot, or nil when never reported
		  - error: Storage failures
	*/
	FindActivity(context context.Context, userID string) (*ActivitySnapshot, error)

	/*
		SaveActivity overwrites the user's live activity snapshot.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - snapshot: *ActivitySnapshot

		Returns:
		  - error: Persistence failures
	*/
	SaveActivity(context context.Context, userID string, snapshot *ActivitySnapshot) error

	/*
		FindHistory returns the user's activity history, most recent first.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []ActivitySnapshot: Bounded history (possibly empty)
		  - error: Storage failures
	*/
	FindHistory(context context.Context, userID string) ([]ActivitySnapshot, error)

	/*
		SaveHistory overwrites the user's activity history.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - history: []ActivitySnapshot

		Returns:
		  - error: Persistence failures
	*/
	SaveHistory(context context.Context, userID string, history []ActivitySnapshot) error
}

// ProfileFinder resolves a user ID to their profile document.
type ProfileFinder interface {
	Find(context context.Context, userID string) (*account.Profile, error)
}

// Directory resolves an email address to the profile that owns it.
type Directory interface {
	FindByEmail(context context.Context, email string) (*account.Profile, error)
}

// Copyright (c) 2026 Holospace. All rights reserved.

package account

import "context"

// # Profile Data Access

// ProfileRepository defines the data access contract for profile documents.
//
// The typed methods (Find/Create) serve reads and initial creation; the
// document methods (FindDocument/SaveDocument) serve the merge-update path,
// which must preserve fields the struct does not know about.
type ProfileRepository interface {

	/*
		Find returns the typed profile for the given user.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - *Profile: Hydrated entity
		  - error: apperr.NotFound("Profile") when absent, storage failures otherwise
	*/
	Find(context context.Context, userID string) (*Profile, error)

	/*
		Create persists a brand-new profile document.

		Parameters:
		  - context: context.Context
		  - profile: *Profile

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, profile *Profile) error

	/*
		FindDocument returns the raw profile document as a JSON object.

		A missing profile yields an empty document, not an error: the update
		path treats absence as "merge into nothing".

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - map[string]any: Document fields (possibly empty)
		  - error: Storage failures
	*/
	FindDocument(context context.Context, userID string) (map[string]any, error)

	/*
		SaveDocument overwrites the raw profile document.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - document: map[string]any

		Returns:
		  - error: Persistence failures
	*/
	SaveDocument(context context.Context, userID string, document map[string]any) error
}

// Directory resolves an email address to the profile that owns it.
//
// This is a separate capability from ProfileRepository so implementations can
// later swap the scan for a proper secondary index without touching callers.
type Directory interface {

	/*
		FindByEmail returns the profile registered under the given email.

		Matching is case-insensitive.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *Profile: Hydrated entity
		  - error: apperr.NotFound("User") when absent, storage failures otherwise
	*/
	FindByEmail(context context.Context, email string) (*Profile, error)
}

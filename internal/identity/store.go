// Copyright (c) 2026 Holospace. All rights reserved.

package identity

import "context"

// # Credential Data Access

// CredentialStore defines the data access contract for credential records.
type CredentialStore interface {

	/*
		Find returns the credential stored for the given email.

		Parameters:
		  - context: context.Context
		  - email: string (normalized via NormalizeEmail before lookup)

		Returns:
		  - *Credential: Hydrated record
		  - error: ErrNoCredential when absent, storage failures otherwise
	*/
	Find(context context.Context, email string) (*Credential, error)

	/*
		Save persists a credential record, overwriting any previous value.

		Parameters:
		  - context: context.Context
		  - credential: *Credential

		Returns:
		  - error: Persistence failures
	*/
	Save(context context.Context, credential *Credential) error
}

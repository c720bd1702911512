// Copyright (c) 2026 Holospace. All rights reserved.

package catalog

import "context"

// # Content Data Access

// ContentRepository defines the data access contract for catalog records.
type ContentRepository interface {

	/*
		FindAll returns every stored content record.

		Ordering is unspecified; an empty catalog yields an empty slice.

		Parameters:
		  - context: context.Context

		Returns:
		  - []ContentRecord: Decoded records
		  - error: Storage failures
	*/
	FindAll(context context.Context) ([]ContentRecord, error)

	/*
		Find returns the record with the given ID.

		Parameters:
		  - context: context.Context
		  - contentID: string

		Returns:
		  - *ContentRecord: Hydrated record
		  - error: apperr.NotFound("Content") when absent, storage failures otherwise
	*/
	Find(context context.Context, contentID string) (*ContentRecord, error)

	/*
		Save persists a content record, overwriting any previous value.

		Parameters:
		  - context: context.Context
		  - record: *ContentRecord

		Returns:
		  - error: Persistence failures
	*/
	Save(context context.Context, record *ContentRecord) error
}

// Copyright (c) 2026 Holospace. All rights reserved.

package catalog

import (
	"context"

	"github.com/holospace/holospace/internal/platform/apperr"
	"github.com/holospace/holospace/pkg/slug"
)

// Service implements catalog use cases.
type Service struct {
	contentRepository ContentRepository
}

// NewService constructs a new catalog [Service] with necessary dependencies.
func NewService(contentRepository ContentRepository) *Service {
	return &Service{contentRepository: contentRepository}
}

/*
ListContent returns every content record in the catalog.

Description: An empty catalog is a valid state and yields an empty slice,
never an error. Ordering is unspecified.

Parameters:
  - context: context.Context

Returns:
  - []ContentRecord: Catalog records
  - err: Storage errors
*/
func (service *Service) ListContent(context context.Context) ([]ContentRecord, error) {
	return service.contentRepository.FindAll(context)
}

/*
Seed writes the given records into the catalog without overwriting.

Description: Idempotent by construction — records whose ID already exists are
left untouched, so re-running the seeder against a live store is safe. Records
without an explicit ID get one derived from their title.

Parameters:
  - context: context.Context
  - records: []ContentRecord

Returns:
  - int: Number of records actually written
  - err: Storage errors
*/
func (service *Service) Seed(context context.Context, records []ContentRecord) (int, error) {
	written := 0

	for _, record := range records {
		if record.ID == "" {
			record.ID = slug.From(record.Title)
		}

		_, err := service.contentRepository.Find(context, record.ID)
		if err == nil {
			continue // already present
		}
		if !apperr.IsNotFound(err) {
			return written, err
		}

		if err := service.contentRepository.Save(context, &record); err != nil {
			return written, err
		}
		written++
	}

	return written, nil
}

// Copyright (c) 2026 Holospace. All rights reserved.

package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holospace/holospace/internal/catalog"
	"github.com/holospace/holospace/internal/platform/kv"
)

func newTestService() *catalog.Service {
	return catalog.NewService(catalog.NewKVContentRepository(kv.NewMemoryStore()))
}

/*
TestService_ListContent_Empty verifies an unseeded catalog yields an empty
slice, not an error.
*/
func TestService_ListContent_Empty(t *testing.T) {
	service := newTestService()

	records, err := service.ListContent(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records, "content must serialize as [], not null")
	assert.Empty(t, records)
}

/*
TestService_Seed covers seeding, idempotency, and slug-derived IDs.
*/
func TestService_Seed(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	written, err := service.Seed(ctx, catalog.SampleContent())
	require.NoError(t, err)
	assert.Equal(t, 4, written)

	records, err := service.ListContent(ctx)
	require.NoError(t, err)
	require.Len(t, records, 4)

	byID := make(map[string]catalog.ContentRecord, len(records))
	for _, record := range records {
		byID[record.ID] = record
	}

	cyberpunk := byID["1"]
	assert.Equal(t, "Cyberpunk City 2077", cyberpunk.Title)
	require.NotNil(t, cyberpunk.Price)
	assert.InDelta(t, 12.99, *cyberpunk.Price, 0.001)

	tutorial := byID["4"]
	assert.Equal(t, "VR Tutorial Island", tutorial.Title)
	assert.Nil(t, tutorial.Price, "free experiences have no price")

	t.Run("reseed_is_idempotent", func(t *testing.T) {
		written, err := service.Seed(ctx, catalog.SampleContent())
		require.NoError(t, err)
		assert.Zero(t, written)

		records, err := service.ListContent(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 4)
	})

	t.Run("seed_does_not_overwrite", func(t *testing.T) {
		modified := catalog.SampleContent()[:1]
		modified[0].Title = "Tampered Title"

		_, err := service.Seed(ctx, modified)
		require.NoError(t, err)

		records, err := service.ListContent(ctx)
		require.NoError(t, err)
		for _, record := range records {
			assert.NotEqual(t, "Tampered Title", record.Title)
		}
	})

	t.Run("missing_id_derived_from_title", func(t *testing.T) {
		written, err := service.Seed(ctx, []catalog.ContentRecord{
			{Title: "Deep Sea Odyssey", Category: "Adventure", Duration: "25 min", Rating: 4.1},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, written)

		records, err := service.ListContent(ctx)
		require.NoError(t, err)

		var found bool
		for _, record := range records {
			if record.ID == "deep-sea-odyssey" {
				found = true
			}
		}
		assert.True(t, found)
	})
}

// Copyright (c) 2026 Holospace. All rights reserved.

/*
Package catalog implements the VR experience catalog for the Holospace store tab.

Content records are reference data: written by seeding (or future admin
tooling), read by everyone. The catalog itself carries no ownership state —
that belongs to the commerce domain.
*/
package catalog

// ContentRecord describes one purchasable (or free) VR experience.
//
// JSON field names are part of the client contract and must not change.
type ContentRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	// Price is nil for free experiences; the clients render "Free" for null.
	Price     *float64 `json:"price,omitempty"`
	Duration  string   `json:"duration"`
	Rating    float64  `json:"rating"`
	Thumbnail string   `json:"thumbnail"`
}

// contentKeyPrefix namespaces all catalog records in the key-value store.
const contentKeyPrefix = "content:"

// contentKey builds the storage key for a content record.
func contentKey(contentID string) string {
	return contentKeyPrefix + contentID
}

// Copyright (c) 2026 Holospace. All rights reserved.

/*
Package account implements user profile management for the Holospace platform.

It owns the public profile document: the display data and progression counters
the companion app renders on the profile tab.

Architecture:

  - Service: Orchestrates signup, login, and profile reads/writes.
  - ProfileRepository: Abstracted key-value access for profile documents.
  - Directory: Email-to-profile lookup capability used by the social domain.

Profile updates are shallow JSON-document merges with last-write-wins
semantics; there is no optimistic concurrency control on the document.
*/
package account

import "time"

// Profile is the public account document stored under "user:<id>:profile".
//
// JSON field names are part of the client contract and must not change.
type Profile struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Level             int        `json:"level"`
	ExperiencesPlayed int        `json:"experiencesPlayed"`
	TotalPlayTime     int        `json:"totalPlayTime"`
	Achievements      []string   `json:"achievements"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty"`
}

// profileKey builds the storage key for a user's profile document.
func profileKey(userID string) string {
	return "user:" + userID + ":profile"
}

// Copyright (c) 2026 Holospace. All rights reserved.

/*
Package social implements the friend graph and presence for Holospace.

Two kinds of state live here:

  - Friend lists: one list of user IDs per user ("user:<id>:friends"),
    maintained symmetrically — adding a friend writes both sides.
  - Activity: a single "what I'm doing now" snapshot per user
    ("user:<id>:activity") plus a bounded most-recent-first history
    ("user:<id>:activity_history").

The two friend-list writes are independent, so a crash between them leaves a
one-sided edge. ListFriends tolerates that; a repair sweep is the eventual
fix if it ever matters in practice.
*/
package social

import (
	"time"

	"github.com/holospace/holospace/internal/account"
)

// activityHistoryLimit bounds the per-user activity history. Oldest entries
// fall off; the history never grows past this.
const activityHistoryLimit = 50

// ActivitySnapshot is one "currently doing X" record.
type ActivitySnapshot struct {
	Activity string `json:"activity"`
	// ContentID links the activity to a catalog item; null when free-roaming.
	ContentID *string   `json:"contentId"`
	Timestamp time.Time `json:"timestamp"`
}

// FriendView is a friend's profile decorated with their live activity.
//
// The profile fields marshal inline; CurrentActivity is null when the friend
// has never reported activity.
type FriendView struct {
	account.Profile
	CurrentActivity *ActivitySnapshot `json:"currentActivity"`
}

// friendsKey builds the storage key for a user's friend list.
func friendsKey(userID string) string {
	return "user:" + userID + ":friends"
}

// activityKey builds the storage key for a user's live activity snapshot.
func activityKey(userID string) string {
	return "user:" + userID + ":activity"
}

// historyKey builds the storage key for a user's activity history.
func historyKey(userID string) string {
	return "user:" + userID + ":activity_history"
}

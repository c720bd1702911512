// Copyright (c) 2026 Holospace. All rights reserved.

package social

import (
	"context"
	"fmt"
	"time"

	"github.com/holospace/holospace/internal/account"
	"github.com/holospace/holospace/internal/platform/apperr"
	"github.com/holospace/holospace/internal/platform/validate"
)

// Service implements friend graph and activity use cases.
type Service struct {
	repository    Repository
	profileFinder ProfileFinder
	directory     Directory
}

// NewService constructs a new social [Service] with necessary dependencies.
func NewService(repository Repository, profileFinder ProfileFinder, directory Directory) *Service {
	return &Service{
		repository:    repository,
		profileFinder: profileFinder,
		directory:     directory,
	}
}

// # Friend Graph

/*
AddFriend creates a symmetric friendship between the caller and the account
registered under friendEmail.

Description: Both friend lists are updated in two independent writes, caller's
side first. The friend's side is guarded by its own membership check, so
replaying a half-applied add converges instead of duplicating.

Parameters:
  - context: context.Context
  - userID: string
  - friendEmail: string

Returns:
  - *account.Profile: The new friend's profile
  - err: ValidationError (missing email / self-add), NotFound ("User not found"),
    Conflict ("Already friends"), or storage errors
*/
func (service *Service) AddFriend(context context.Context, userID, friendEmail string) (*account.Profile, error) {
	validator := &validate.Validator{}
	validator.Required("friendEmail", friendEmail)
	if err := validator.ErrMessage("Friend email is required"); err != nil {
		return nil, err
	}

	friend, err := service.directory.FindByEmail(context, friendEmail)
	if err != nil {
		return nil, err
	}

	if friend.ID == userID {
		return nil, apperr.ValidationError("You cannot add yourself as a friend")
	}

	ownFriends, err := service.repository.FindFriendIDs(context, userID)
	if err != nil {
		return nil, err
	}
	if contains(ownFriends, friend.ID) {
		return nil, apperr.Conflict("Already friends")
	}

	ownFriends = append(ownFriends, friend.ID)
	if err := service.repository.SaveFriendIDs(context, userID, ownFriends); err != nil {
		return nil, err
	}

	// Reverse edge. The membership guard keeps retries from duplicating it.
	theirFriends, err := service.repository.FindFriendIDs(context, friend.ID)
	if err != nil {
		return nil, fmt.Errorf("social_service_reverse_edge_failed: %w", err)
	}
	if !contains(theirFriends, userID) {
		theirFriends = append(theirFriends, userID)
		if err := service.repository.SaveFriendIDs(context, friend.ID, theirFriends); err != nil {
			return nil, fmt.Errorf("social_service_reverse_edge_failed: %w", err)
		}
	}

	return friend, nil
}

/*
ListFriends returns the caller's friends decorated with their live activity.

Description: Friend IDs whose profile no longer resolves are silently skipped
(deleted accounts, half-applied adds); any other storage failure aborts.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []FriendView: Friend profiles with currentActivity (null when unreported)
  - err: Storage errors
*/
func (service *Service) ListFriends(context context.Context, userID string) ([]FriendView, error) {
	friendIDs, err := service.repository.FindFriendIDs(context, userID)
	if err != nil {
		return nil, err
	}

	friends := make([]FriendView, 0, len(friendIDs))
	for _, friendID := range friendIDs {
		profile, err := service.profileFinder.Find(context, friendID)
		if apperr.IsNotFound(err) {
			continue // dangling friend reference
		}
		if err != nil {
			return nil, err
		}

		snapshot, err := service.repository.FindActivity(context, friendID)
		if err != nil {
			return nil, err
		}

		friends = append(friends, FriendView{
			Profile:         *profile,
			CurrentActivity: snapshot,
		})
	}

	return friends, nil
}

// # Activity

/*
RecordActivity overwrites the caller's live snapshot and prepends it to their
bounded history.

Parameters:
  - context: context.Context
  - userID: string
  - activity: string (required)
  - contentID: *string (optional catalog link)

Returns:
  - err: ValidationError ("Activity is required") or storage errors
*/
func (service *Service) RecordActivity(context context.Context, userID, activity string, contentID *string) error {
	validator := &validate.Validator{}
	validator.Required("activity", activity)
	if err := validator.ErrMessage("Activity is required"); err != nil {
		return err
	}

	snapshot := &ActivitySnapshot{
		Activity:  activity,
		ContentID: contentID,
		Timestamp: time.Now().UTC(),
	}

	if err := service.repository.SaveActivity(context, userID, snapshot); err != nil {
		return err
	}

	history, err := service.repository.FindHistory(context, userID)
	if err != nil {
		return err
	}

	// Most-recent-first, hard-capped.
	history = append([]ActivitySnapshot{*snapshot}, history...)
	if len(history) > activityHistoryLimit {
		history = history[:activityHistoryLimit]
	}

	return service.repository.SaveHistory(context, userID, history)
}

/*
ActivityHistory returns the caller's bounded activity history, most recent first.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []ActivitySnapshot: At most 50 entries
  - err: Storage errors
*/
func (service *Service) ActivityHistory(context context.Context, userID string) ([]ActivitySnapshot, error) {
	return service.repository.FindHistory(context, userID)
}

// contains reports whether the slice holds the given ID.
func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

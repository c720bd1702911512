// Copyright (c) 2026 Holospace. All rights reserved.

package account

import (
	"context"
	"fmt"
	"time"

	"github.com/holospace/holospace/internal/identity"
	"github.com/holospace/holospace/internal/platform/apperr"
	"github.com/holospace/holospace/internal/platform/validate"
)

// # Contracts & Types

// minPasswordLength mirrors the minimum the mobile clients enforce.
const minPasswordLength = 6

// IdentityProvider defines the identity operations the account domain needs.
type IdentityProvider interface {
	// Provision enrolls a new credential; Conflict if the email is taken.
	Provision(context context.Context, email, password, name string) (*identity.Credential, error)

	// Authenticate exchanges credentials for a bearer access token.
	Authenticate(context context.Context, email, password string) (*identity.Credential, *identity.Token, error)
}

// Service implements account lifecycle use cases.
type Service struct {
	profileRepository ProfileRepository
	identityProvider  IdentityProvider
}

// NewService constructs a new account [Service] with necessary dependencies.
func NewService(profileRepository ProfileRepository, identityProvider IdentityProvider) *Service {
	return &Service{
		profileRepository: profileRepository,
		identityProvider:  identityProvider,
	}
}

// # Signup Flow

/*
CreateAccount provisions a credential and writes the initial profile document.

Description: New accounts start at level 1 with zeroed progression counters
and an empty (non-null) achievements list.

The credential and profile writes are not atomic. If the profile write fails
after provisioning succeeded, the account exists without a profile; the next
UpdateProfile merges into an empty document and recreates it.

Parameters:
  - context: context.Context
  - email: string
  - password: string
  - name: string

Returns:
  - *Profile: Created profile
  - err: ValidationError, Conflict (duplicate email), or storage errors
*/
func (service *Service) CreateAccount(context context.Context, email, password, name string) (*Profile, error) {

	// All three fields are mandatory; the exact message is client contract.
	validator := &validate.Validator{}
	validator.Required("email", email).
		Required("password", password).
		Required("name", name)
	if err := validator.ErrMessage("Email, password, and name are required"); err != nil {
		return nil, err
	}

	passwordValidator := &validate.Validator{}
	passwordValidator.MinLen("password", password, minPasswordLength)
	if err := passwordValidator.Err(); err != nil {
		return nil, err
	}

	credential, err := service.identityProvider.Provision(context, email, password, name)
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		ID:                credential.UserID,
		Name:              credential.Name,
		Email:             credential.Email,
		Level:             1,
		ExperiencesPlayed: 0,
		TotalPlayTime:     0,
		Achievements:      []string{},
		CreatedAt:         credential.CreatedAt,
	}

	if err := service.profileRepository.Create(context, profile); err != nil {
		return nil, fmt.Errorf("account_service_create_profile_failed: %w", err)
	}

	return profile, nil
}

// # Login Flow

/*
Login authenticates credentials and returns the access token plus the profile.

Description: The profile may be nil when the account was provisioned but the
profile write was lost; callers must tolerate that.

Parameters:
  - context: context.Context
  - email: string
  - password: string

Returns:
  - *identity.Token: Bearer access token
  - *Profile: Owning profile, or nil when absent
  - err: ValidationError, Unauthorized, or storage errors
*/
func (service *Service) Login(context context.Context, email, password string) (*identity.Token, *Profile, error) {
	validator := &validate.Validator{}
	validator.Required("email", email).Required("password", password)
	if err := validator.ErrMessage("Email and password are required"); err != nil {
		return nil, nil, err
	}

	credential, token, err := service.identityProvider.Authenticate(context, email, password)
	if err != nil {
		return nil, nil, err
	}

	profile, err := service.profileRepository.Find(context, credential.UserID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return token, nil, nil
		}
		return nil, nil, err
	}

	return token, profile, nil
}

// # Profile Flow

/*
GetProfile returns the profile document for the given user.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *Profile: Hydrated entity
  - err: NotFound when the profile key is absent, storage errors otherwise
*/
func (service *Service) GetProfile(context context.Context, userID string) (*Profile, error) {
	return service.profileRepository.Find(context, userID)
}

/*
UpdateProfile shallow-merges the given fields into the stored profile document.

Description: Unknown fields are preserved, provided fields overwrite, and an
"updatedAt" timestamp is stamped on every write. A missing profile is treated
as an empty document, so the merge lazily recreates it (last-write-wins; no
optimistic concurrency).

Parameters:
  - context: context.Context
  - userID: string
  - updates: map[string]any (partial profile fields)

Returns:
  - map[string]any: The merged document as persisted
  - err: Storage errors
*/
func (service *Service) UpdateProfile(context context.Context, userID string, updates map[string]any) (map[string]any, error) {
	document, err := service.profileRepository.FindDocument(context, userID)
	if err != nil {
		return nil, err
	}

	for field, value := range updates {
		document[field] = value
	}
	document["updatedAt"] = time.Now().UTC().Format(time.RFC3339)

	if err := service.profileRepository.SaveDocument(context, userID, document); err != nil {
		return nil, err
	}

	return document, nil
}

// Copyright (c) 2026 Holospace. All rights reserved.

package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/holospace/holospace/internal/platform/apperr"
	"github.com/holospace/holospace/internal/platform/sec"
	"github.com/holospace/holospace/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating and verifying security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - email: The email of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	GenerateAccessToken(userID, email string, timeToLive time.Duration) (string, error)

	// VerifyToken checks the signature and validity of a JWT string.
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

// Service implements credential provisioning and authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, provisioning,
// or login logic must be reviewed carefully.
type Service struct {
	credentialStore CredentialStore
	tokenProvider   TokenProvider
}

// NewService constructs a new identity [Service] with necessary dependencies.
func NewService(credentialStore CredentialStore, tokenProvider TokenProvider) *Service {
	return &Service{
		credentialStore: credentialStore,
		tokenProvider:   tokenProvider,
	}
}

// # Provisioning Flow

/*
Provision validates, hashes, and persists a brand new credential record.

Description: Enrolls a new account identity. Profile creation is the account
domain's responsibility and happens after provisioning succeeds.

Parameters:
  - context: context.Context
  - email: string
  - password: string
  - name: string

Returns:
  - *Credential: Created record
  - err: Conflict (if the email is taken) or storage errors
*/
func (service *Service) Provision(context context.Context, email, password, name string) (*Credential, error) {
	normalizedEmail := NormalizeEmail(email)

	// Verify email uniqueness. Return a client-safe Conflict err.
	_, err := service.credentialStore.Find(context, normalizedEmail)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}
	if !errors.Is(err, ErrNoCredential) {
		return nil, fmt.Errorf("identity_service_lookup_failed: %w", err)
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during signup spikes.
	hashedPassword, err := sec.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("identity_service_hash_failed: %w", err)
	}

	// Construct the new credential. Time-sortable ID keys all per-user state.
	credential := &Credential{
		UserID:       uuid.New(),
		Email:        normalizedEmail,
		Name:         name,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	if err := service.credentialStore.Save(context, credential); err != nil {
		return nil, fmt.Errorf("identity_service_provision_failed: %w", err)
	}

	return credential, nil
}

// # Authentication Flow

/*
Authenticate validates credentials and issues a bearer access token.

Description: Verifies identity, performs constant-time password comparison,
and signs a short-lived access token.

Parameters:
  - context: context.Context
  - email: string
  - password: string

Returns:
  - *Credential: The authenticated record
  - *Token: Transport-ready access token
  - err: Unauthorized or internal failures
*/
func (service *Service) Authenticate(context context.Context, email, password string) (*Credential, *Token, error) {
	credential, err := service.credentialStore.Find(context, NormalizeEmail(email))

	// If (err != nil) the account does not exist. Generic message to prevent enumeration.
	if err != nil {
		return nil, nil, apperr.Unauthorized("Invalid login credentials")
	}

	// bcrypt comparison is constant-time, preventing timing attacks.
	if !sec.CheckPasswordHash(password, credential.PasswordHash) {
		return nil, nil, apperr.Unauthorized("Invalid login credentials")
	}

	accessToken, err := service.tokenProvider.GenerateAccessToken(credential.UserID, credential.Email, AccessTokenTTL)
	if err != nil {
		return nil, nil, fmt.Errorf("identity_service_token_generation_failed: %w", err)
	}

	return credential, &Token{
		AccessToken: accessToken,
		ExpiresIn:   int64(AccessTokenTTL.Seconds()),
	}, nil
}

/*
VerifyToken resolves a bearer token string into the claims it carries.

Parameters:
  - tokenString: string

Returns:
  - *sec.AuthClaims: Verified claims
  - err: Signature or expiry failures
*/
func (service *Service) VerifyToken(tokenString string) (*sec.AuthClaims, error) {
	return service.tokenProvider.VerifyToken(tokenString)
}

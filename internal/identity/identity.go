// Copyright (c) 2026 Holospace. All rights reserved.

/*
Package identity implements credential management and access-token issuance.

It is the authority every protected endpoint trusts: signup provisions a
credential record, login exchanges a password for a signed bearer token, and
the middleware verifies that token on each request.

Architecture:

  - Service: Orchestrates provisioning and authentication.
  - CredentialStore: Abstracted key-value access for credential records.
  - Security: bcrypt password hashing and HS256 JWTs via platform/sec.

Credential records are deliberately separate from profiles: the account domain
owns the public profile document, identity owns only what is needed to
authenticate.
*/
package identity

import (
	"errors"
	"strings"
	"time"
)

// AccessTokenTTL is the lifetime of an issued bearer token.
const AccessTokenTTL = 24 * time.Hour

// ErrNoCredential is returned by a [CredentialStore] when no credential record
// exists for the requested email.
var ErrNoCredential = errors.New("identity: credential not found")

// # Entities

// Credential is the stored authentication record for one account.
//
// It lives under "auth:credential:<email>" with the email lowercased, so
// lookups are case-insensitive by construction.
type Credential struct {
	UserID       string    `json:"userId"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Token is a successfully issued bearer access token.
type Token struct {
	AccessToken string `json:"accessToken"`
	// ExpiresIn is the token lifetime in seconds, mirroring OAuth conventions.
	ExpiresIn int64 `json:"expiresIn"`
}

// NormalizeEmail canonicalizes an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// credentialKey builds the storage key for a normalized email.
func credentialKey(normalizedEmail string) string {
	return "auth:credential:" + normalizedEmail
}

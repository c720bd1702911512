// Copyright (c) 2026 Holospace. All rights reserved.

package identity_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holospace/holospace/internal/identity"
	"github.com/holospace/holospace/internal/platform/apperr"
	"github.com/holospace/holospace/internal/platform/kv"
	"github.com/holospace/holospace/internal/platform/sec"
)

const testSecret = "test-secret-test-secret-test-secret!"

func newTestService(t *testing.T) *identity.Service {
	t.Helper()

	tokens, err := sec.NewTokenService(testSecret, "holospace.app")
	require.NoError(t, err)

	return identity.NewService(identity.NewKVCredentialStore(kv.NewMemoryStore()), tokens)
}

/*
TestService_Provision covers credential creation and the duplicate-email conflict.
*/
func TestService_Provision(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	credential, err := service.Provision(ctx, "Alex@Example.com", "secret123", "Alex")
	require.NoError(t, err)

	assert.NotEmpty(t, credential.UserID)
	assert.Equal(t, "alex@example.com", credential.Email, "email should be normalized")
	assert.Equal(t, "Alex", credential.Name)
	assert.NotEqual(t, "secret123", credential.PasswordHash, "password must never be stored as plain text")

	// Second provision for the same email (any casing) must conflict.
	_, err = service.Provision(ctx, "alex@example.COM", "other-pass", "Other")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, "Email is already registered", ae.Message)
	assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
}

/*
TestService_Authenticate covers the login happy path and both rejection cases.
*/
func TestService_Authenticate(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	provisioned, err := service.Provision(ctx, "alex@example.com", "secret123", "Alex")
	require.NoError(t, err)

	t.Run("valid_credentials", func(t *testing.T) {
		credential, token, err := service.Authenticate(ctx, "alex@example.com", "secret123")
		require.NoError(t, err)

		assert.Equal(t, provisioned.UserID, credential.UserID)
		assert.NotEmpty(t, token.AccessToken)
		assert.Equal(t, int64(identity.AccessTokenTTL.Seconds()), token.ExpiresIn)

		// The issued token must verify and carry the account identity.
		claims, err := service.VerifyToken(token.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, provisioned.UserID, claims.UserID)
		assert.Equal(t, "alex@example.com", claims.Email)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, _, err := service.Authenticate(ctx, "alex@example.com", "wrong")
		require.Error(t, err)
		assert.Equal(t, "Invalid login credentials", apperr.As(err).Message)
	})

	t.Run("unknown_email", func(t *testing.T) {
		_, _, err := service.Authenticate(ctx, "nobody@example.com", "secret123")
		require.Error(t, err)

		// Same generic message as wrong_password to prevent account enumeration.
		assert.Equal(t, "Invalid login credentials", apperr.As(err).Message)
	})
}

/*
TestService_VerifyToken_Invalid ensures garbage tokens are rejected.
*/
func TestService_VerifyToken_Invalid(t *testing.T) {
	service := newTestService(t)

	_, err := service.VerifyToken("not-a-jwt")
	assert.Error(t, err)
}

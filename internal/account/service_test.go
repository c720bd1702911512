// Copyright (c) 2026 Holospace. All rights reserved.

package account_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holospace/holospace/internal/account"
	"github.com/holospace/holospace/internal/identity"
	"github.com/holospace/holospace/internal/platform/apperr"
	"github.com/holospace/holospace/internal/platform/kv"
	"github.com/holospace/holospace/internal/platform/sec"
)

const testSecret = "test-secret-test-secret-test-secret!"

func newTestService(t *testing.T) *account.Service {
	t.Helper()

	tokens, err := sec.NewTokenService(testSecret, "holospace.app")
	require.NoError(t, err)

	store := kv.NewMemoryStore()
	identityService := identity.NewService(identity.NewKVCredentialStore(store), tokens)

	return account.NewService(account.NewKVProfileRepository(store), identityService)
}

/*
TestService_CreateAccount covers the signup happy path and the initial
profile shape.
*/
func TestService_CreateAccount(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	profile, err := service.CreateAccount(ctx, "alex@example.com", "secret123", "Alex")
	require.NoError(t, err)

	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, "Alex", profile.Name)
	assert.Equal(t, "alex@example.com", profile.Email)
	assert.Equal(t, 1, profile.Level)
	assert.Zero(t, profile.ExperiencesPlayed)
	assert.Zero(t, profile.TotalPlayTime)
	assert.NotNil(t, profile.Achievements, "achievements must serialize as [], not null")
	assert.Empty(t, profile.Achievements)
	assert.False(t, profile.CreatedAt.IsZero())
	assert.Nil(t, profile.UpdatedAt)
}

/*
TestService_CreateAccount_Validation covers the mandatory-field contract and
duplicate signups.
*/
func TestService_CreateAccount_Validation(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		userName string
		message  string
	}{
		{"missing_email", "", "secret123", "Alex", "Email, password, and name are required"},
		{"missing_password", "alex@example.com", "", "Alex", "Email, password, and name are required"},
		{"missing_name", "alex@example.com", "secret123", "", "Email, password, and name are required"},
		{"all_missing", "", "", "", "Email, password, and name are required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateAccount(ctx, tt.email, tt.password, tt.userName)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
			assert.Equal(t, tt.message, ae.Message)
		})
	}

	t.Run("short_password", func(t *testing.T) {
		_, err := service.CreateAccount(ctx, "alex@example.com", "abc", "Alex")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)
	})

	t.Run("duplicate_email", func(t *testing.T) {
		_, err := service.CreateAccount(ctx, "dupe@example.com", "secret123", "First")
		require.NoError(t, err)

		_, err = service.CreateAccount(ctx, "dupe@example.com", "secret123", "Second")
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "CONFLICT", ae.Code)
		assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus, "clients expect 400 on duplicate signup")
	})
}

/*
TestService_Login covers token issuance plus the nil-profile tolerance.
*/
func TestService_Login(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateAccount(ctx, "alex@example.com", "secret123", "Alex")
	require.NoError(t, err)

	t.Run("happy_path", func(t *testing.T) {
		token, profile, err := service.Login(ctx, "alex@example.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, token.AccessToken)
		require.NotNil(t, profile)
		assert.Equal(t, created.ID, profile.ID)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, _, err := service.Login(ctx, "alex@example.com", "nope")
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, apperr.As(err).HTTPStatus)
	})

	t.Run("missing_fields", func(t *testing.T) {
		_, _, err := service.Login(ctx, "", "")
		require.Error(t, err)
		assert.Equal(t, "Email and password are required", apperr.As(err).Message)
	})
}

/*
TestService_GetProfile_NotFound verifies the 404 taxonomy entry.
*/
func TestService_GetProfile_NotFound(t *testing.T) {
	service := newTestService(t)

	_, err := service.GetProfile(context.Background(), "no-such-user")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	assert.Equal(t, "Profile not found", ae.Message)
}

/*
TestService_UpdateProfile covers the shallow-merge semantics: provided fields
overwrite, unknown fields survive, and updatedAt is stamped.
*/
func TestService_UpdateProfile(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	profile, err := service.CreateAccount(ctx, "alex@example.com", "secret123", "Alex")
	require.NoError(t, err)

	// First update: bump a counter and attach a field the struct doesn't know.
	document, err := service.UpdateProfile(ctx, profile.ID, map[string]any{
		"level":         float64(2),
		"favoriteWorld": "neon-harbor",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(2), document["level"])
	assert.Equal(t, "neon-harbor", document["favoriteWorld"])
	assert.NotEmpty(t, document["updatedAt"])

	// Second update must preserve the unknown field.
	document, err = service.UpdateProfile(ctx, profile.ID, map[string]any{
		"totalPlayTime": float64(12),
	})
	require.NoError(t, err)
	assert.Equal(t, "neon-harbor", document["favoriteWorld"])
	assert.Equal(t, float64(2), document["level"])
	assert.Equal(t, float64(12), document["totalPlayTime"])
	assert.Equal(t, "Alex", document["name"])
}

/*
TestService_UpdateProfile_LazyCreate verifies that updating a missing profile
merges into an empty document instead of failing.
*/
func TestService_UpdateProfile_LazyCreate(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	document, err := service.UpdateProfile(ctx, "orphan-user", map[string]any{
		"name": "Recovered",
	})
	require.NoError(t, err)
	assert.Equal(t, "Recovered", document["name"])
	assert.NotEmpty(t, document["updatedAt"])

	// The document is now readable through the merge path.
	again, err := service.UpdateProfile(ctx, "orphan-user", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "Recovered", again["name"])
}

/*
TestKVProfileRepository_FindByEmail covers the directory scan, including its
tolerance for non-profile values sharing the "user:" prefix.
*/
func TestKVProfileRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repository := account.NewKVProfileRepository(store)

	tokens, err := sec.NewTokenService(testSecret, "holospace.app")
	require.NoError(t, err)
	service := account.NewService(repository, identity.NewService(identity.NewKVCredentialStore(store), tokens))

	created, err := service.CreateAccount(ctx, "alex@example.com", "secret123", "Alex")
	require.NoError(t, err)

	// Pollute the prefix with the other per-user value shapes.
	require.NoError(t, store.Set(ctx, "user:"+created.ID+":purchases", []string{"1", "4"}))
	require.NoError(t, store.Set(ctx, "user:"+created.ID+":activity", map[string]any{"activity": "Exploring"}))

	t.Run("case_insensitive_match", func(t *testing.T) {
		found, err := repository.FindByEmail(ctx, "ALEX@example.COM")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("unknown_email", func(t *testing.T) {
		_, err := repository.FindByEmail(ctx, "ghost@example.com")
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
		assert.Equal(t, "User not found", ae.Message)
	})
}

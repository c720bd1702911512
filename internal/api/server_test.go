// Copyright (c) 2026 Holospace. All rights reserved.

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holospace/holospace/internal/account"
	"github.com/holospace/holospace/internal/api"
	"github.com/holospace/holospace/internal/catalog"
	"github.com/holospace/holospace/internal/commerce"
	"github.com/holospace/holospace/internal/identity"
	"github.com/holospace/holospace/internal/platform/config"
	"github.com/holospace/holospace/internal/platform/constants"
	"github.com/holospace/holospace/internal/platform/kv"
	"github.com/holospace/holospace/internal/platform/sec"
	"github.com/holospace/holospace/internal/social"
)

const testSecret = "test-secret-test-secret-test-secret!"

// newTestServer composes the full HTTP stack on a memory store with the
// sample catalog pre-seeded — the same wiring as cmd/api, minus the sockets.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	cfg := &config.Config{
		ServerPort:  "0",
		Environment: "development",
		KVBackend:   config.BackendMemory,
		AuthSecret:  testSecret,
	}

	store := kv.NewMemoryStore()

	tokenService, err := sec.NewTokenService(cfg.AuthSecret, constants.AuthIssuer)
	require.NoError(t, err)

	identityService := identity.NewService(identity.NewKVCredentialStore(store), tokenService)
	profileRepository := account.NewKVProfileRepository(store)

	accountService := account.NewService(profileRepository, identityService)
	catalogService := catalog.NewService(catalog.NewKVContentRepository(store))
	commerceService := commerce.NewService(commerce.NewKVPurchaseRepository(store))
	socialService := social.NewService(social.NewKVRepository(store), profileRepository, profileRepository)

	_, err = catalogService.Seed(context.Background(), catalog.SampleContent())
	require.NoError(t, err)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{StoreName: "memory"}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := api.NewServer(ctx, cfg, logger, identityService, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Account:   account.NewHandler(accountService),
		Catalog:   catalog.NewHandler(catalogService),
		Commerce:  commerce.NewHandler(commerceService),
		Social:    social.NewHandler(socialService),
	})

	return server.Handler()
}

// doJSON performs one request and decodes the JSON response body.
func doJSON(t *testing.T, handler http.Handler, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	decoded := make(map[string]any)
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	}

	return recorder.Code, decoded
}

// signupAndLogin provisions an account and returns its bearer token and user ID.
func signupAndLogin(t *testing.T, handler http.Handler, email, name string) (token, userID string) {
	t.Helper()

	status, body := doJSON(t, handler, http.MethodPost, "/api/v1/signup", "", map[string]any{
		"email": email, "password": "secret123", "name": name,
	})
	require.Equal(t, http.StatusOK, status)

	user := body["user"].(map[string]any)

	status, body = doJSON(t, handler, http.MethodPost, "/api/v1/login", "", map[string]any{
		"email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, status)

	return body["accessToken"].(string), user["id"].(string)
}

/*
TestServer_Health covers the liveness contract at both mount points.
*/
func TestServer_Health(t *testing.T) {
	handler := newTestServer(t)

	for _, path := range []string{"/health", "/api/v1/health"} {
		status, body := doJSON(t, handler, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, status, path)
		assert.Equal(t, "healthy", body["status"], path)
		assert.NotEmpty(t, body["timestamp"], path)
	}
}

/*
TestServer_AuthGating verifies every protected route short-circuits with 401
before any service logic runs.
*/
func TestServer_AuthGating(t *testing.T) {
	handler := newTestServer(t)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/profile"},
		{http.MethodPut, "/api/v1/profile"},
		{http.MethodPost, "/api/v1/content/purchase"},
		{http.MethodGet, "/api/v1/purchases"},
		{http.MethodPost, "/api/v1/friends/add"},
		{http.MethodGet, "/api/v1/friends"},
		{http.MethodPost, "/api/v1/activity"},
		{http.MethodGet, "/api/v1/activity/history"},
	}

	for _, route := range protected {
		t.Run(route.method+"_"+route.path, func(t *testing.T) {
			status, body := doJSON(t, handler, route.method, route.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, "Authentication required", body["error"])

			// A syntactically valid but unsigned token must also fail.
			status, body = doJSON(t, handler, route.method, route.path, "garbage.token.here", nil)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, "Invalid or expired token", body["error"])
		})
	}
}

/*
TestServer_SignupFlow covers signup responses including the pinned validation
message and the duplicate-email 400.
*/
func TestServer_SignupFlow(t *testing.T) {
	handler := newTestServer(t)

	t.Run("missing_fields", func(t *testing.T) {
		status, body := doJSON(t, handler, http.MethodPost, "/api/v1/signup", "", map[string]any{
			"email": "alex@example.com",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Email, password, and name are required", body["error"])
	})

	t.Run("success_shape", func(t *testing.T) {
		status, body := doJSON(t, handler, http.MethodPost, "/api/v1/signup", "", map[string]any{
			"email": "alex@example.com", "password": "secret123", "name": "Alex",
		})
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "User created successfully", body["message"])

		user := body["user"].(map[string]any)
		assert.Equal(t, float64(1), user["level"])
		assert.Equal(t, "alex@example.com", user["email"])
		assert.NotNil(t, user["achievements"])
	})

	t.Run("duplicate_email", func(t *testing.T) {
		status, body := doJSON(t, handler, http.MethodPost, "/api/v1/signup", "", map[string]any{
			"email": "alex@example.com", "password": "secret123", "name": "Alex",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Email is already registered", body["error"])
	})
}

/*
TestServer_PurchaseFlow walks the store journey: browse the seeded catalog,
buy once, get rejected on the replay, and see the owned set.
*/
func TestServer_PurchaseFlow(t *testing.T) {
	handler := newTestServer(t)
	token, _ := signupAndLogin(t, handler, "buyer@example.com", "Buyer")

	t.Run("catalog_is_public", func(t *testing.T) {
		status, body := doJSON(t, handler, http.MethodGet, "/api/v1/content", "", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, body["content"].([]any), 4)
	})

	t.Run("first_purchase", func(t *testing.T) {
		status, body := doJSON(t, handler, http.MethodPost, "/api/v1/content/purchase", token, map[string]any{
			"contentId": "3", "price": 14.99,
		})
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Content purchased successfully", body["message"])
		assert.Equal(t, "3", body["contentId"])
	})

	t.Run("replay_is_rejected", func(t *testing.T) {
		status, body := doJSON(t, handler, http.MethodPost, "/api/v1/content/purchase", token, map[string]any{
			"contentId": "3", "price": 14.99,
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Content already purchased", body["error"])
	})

	t.Run("missing_price", func(t *testing.T) {
		status, body := doJSON(t, handler, http.MethodPost, "/api/v1/content/purchase", token, map[string]any{
			"contentId": "2",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Content ID and price are required", body["error"])
	})

	t.Run("owned_set", func(t *testing.T) {
		status, body := doJSON(t, handler, http.MethodGet, "/api/v1/purchases", token, nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, []any{"3"}, body["purchases"])
	})
}

/*
TestServer_ProfileFlow covers the read and merge-update surface.
*/
func TestServer_ProfileFlow(t *testing.T) {
	handler := newTestServer(t)
	token, _ := signupAndLogin(t, handler, "alex@example.com", "Alex")

	status, body := doJSON(t, handler, http.MethodGet, "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, status)
	profile := body["profile"].(map[string]any)
	assert.Equal(t, "Alex", profile["name"])

	status, body = doJSON(t, handler, http.MethodPut, "/api/v1/profile", token, map[string]any{
		"level": 7, "favoriteWorld": "neon-harbor",
	})
	require.Equal(t, http.StatusOK, status)
	merged := body["profile"].(map[string]any)
	assert.Equal(t, float64(7), merged["level"])
	assert.Equal(t, "neon-harbor", merged["favoriteWorld"])
	assert.Equal(t, "Alex", merged["name"], "unlisted fields must survive the merge")
	assert.NotEmpty(t, merged["updatedAt"])
}

/*
TestServer_FriendAndActivityFlow covers friendship symmetry and presence over
the wire.
*/
func TestServer_FriendAndActivityFlow(t *testing.T) {
	handler := newTestServer(t)

	aliceToken, aliceID := signupAndLogin(t, handler, "alice@example.com", "Alice")
	bobToken, bobID := signupAndLogin(t, handler, "bob@example.com", "Bob")

	t.Run("add_friend", func(t *testing.T) {
		status, body := doJSON(t, handler, http.MethodPost, "/api/v1/friends/add", aliceToken, map[string]any{
			"friendEmail": "bob@example.com",
		})
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Friend added successfully", body["message"])
		assert.Equal(t, bobID, body["friend"].(map[string]any)["id"])
	})

	t.Run("unknown_friend", func(t *testing.T) {
		status, body := doJSON(t, handler, http.MethodPost, "/api/v1/friends/add", aliceToken, map[string]any{
			"friendEmail": "ghost@example.com",
		})
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "User not found", body["error"])
	})

	t.Run("duplicate_add", func(t *testing.T) {
		status, body := doJSON(t, handler, http.MethodPost, "/api/v1/friends/add", aliceToken, map[string]any{
			"friendEmail": "bob@example.com",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Already friends", body["error"])
	})

	t.Run("symmetry_over_the_wire", func(t *testing.T) {
		status, body := doJSON(t, handler, http.MethodGet, "/api/v1/friends", aliceToken, nil)
		require.Equal(t, http.StatusOK, status)
		aliceFriends := body["friends"].([]any)
		require.Len(t, aliceFriends, 1)
		assert.Equal(t, bobID, aliceFriends[0].(map[string]any)["id"])

		status, body = doJSON(t, handler, http.MethodGet, "/api/v1/friends", bobToken, nil)
		require.Equal(t, http.StatusOK, status)
		bobFriends := body["friends"].([]any)
		require.Len(t, bobFriends, 1)
		assert.Equal(t, aliceID, bobFriends[0].(map[string]any)["id"])

		// Bob has not reported activity, so the field is an explicit null.
		_, hasField := bobFriends[0].(map[string]any)["currentActivity"]
		assert.True(t, hasField)
	})

	t.Run("activity_shows_up_for_friends", func(t *testing.T) {
		status, body := doJSON(t, handler, http.MethodPost, "/api/v1/activity", bobToken, map[string]any{
			"activity": "Exploring Ancient Rome", "contentId": "3",
		})
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Activity updated successfully", body["message"])

		status, body = doJSON(t, handler, http.MethodGet, "/api/v1/friends", aliceToken, nil)
		require.Equal(t, http.StatusOK, status)
		friend := body["friends"].([]any)[0].(map[string]any)
		activity := friend["currentActivity"].(map[string]any)
		assert.Equal(t, "Exploring Ancient Rome", activity["activity"])
		assert.Equal(t, "3", activity["contentId"])
	})

	t.Run("missing_activity_rejected", func(t *testing.T) {
		status, body := doJSON(t, handler, http.MethodPost, "/api/v1/activity", bobToken, map[string]any{})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Activity is required", body["error"])
	})

	t.Run("activity_history", func(t *testing.T) {
		status, body := doJSON(t, handler, http.MethodGet, "/api/v1/activity/history", bobToken, nil)
		require.Equal(t, http.StatusOK, status)
		history := body["history"].([]any)
		require.Len(t, history, 1)
		assert.Equal(t, "Exploring Ancient Rome", history[0].(map[string]any)["activity"])
	})
}

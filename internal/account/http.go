// Copyright (c) 2026 Holospace. All rights reserved.

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/holospace/holospace/internal/platform/middleware"
	requestutil "github.com/holospace/holospace/internal/platform/request"
	"github.com/holospace/holospace/internal/platform/respond"
)

// # Definitions & Constructors

// Handler implements account-related HTTP endpoints.
//
// # Scope
//
// This handler owns the signup/login entry points and the profile surface.
// It is strictly responsible for transport concerns (status codes, JSON).
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Register mounts the account routes onto the given router.
//
// # Endpoints
//   - POST /signup  : Creates a new account.
//   - POST /login   : Authenticates and returns a bearer token.
//   - GET  /profile : Returns the caller's profile.
//   - PUT  /profile : Merges partial fields into the caller's profile.
func (handler *Handler) Register(router chi.Router) {

	// Public endpoints
	router.Post("/signup", handler.signUp)
	router.Post("/login", handler.login)

	// Protected endpoints
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Get("/profile", handler.getProfile)
		protected.Put("/profile", handler.updateProfile)
	})
}

// # Request Payloads

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// # Response Payloads

type signUpResponse struct {
	User    *Profile `json:"user"`
	Message string   `json:"message"`
}

type loginResponse struct {
	AccessToken string   `json:"accessToken"`
	ExpiresIn   int64    `json:"expiresIn"`
	User        *Profile `json:"user"`
}

type profileResponse struct {
	Profile any `json:"profile"`
}

/*
signUp handles the creation of a new account.

POST /api/v1/signup

Response:
  - 200: {user, message}
  - 400: Missing fields, short password, or duplicate email
*/
func (handler *Handler) signUp(writer http.ResponseWriter, request *http.Request) {
	var input signUpRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.accountService.CreateAccount(request.Context(), input.Email, input.Password, input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, signUpResponse{
		User:    profile,
		Message: "User created successfully",
	})
}

/*
login exchanges credentials for a bearer access token.

POST /api/v1/login

Response:
  - 200: {accessToken, expiresIn, user} (user may be null)
  - 400: Missing fields
  - 401: Invalid credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, profile, err := handler.accountService.Login(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, loginResponse{
		AccessToken: token.AccessToken,
		ExpiresIn:   token.ExpiresIn,
		User:        profile,
	})
}

/*
getProfile returns the authenticated caller's profile.

GET /api/v1/profile

Response:
  - 200: {profile}
  - 401: Not authenticated
  - 404: Profile not found
*/
func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.accountService.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profileResponse{Profile: profile})
}

/*
updateProfile merges partial fields into the caller's profile document.

PUT /api/v1/profile

The body is an arbitrary JSON object; provided fields overwrite, everything
else is preserved.

Response:
  - 200: {profile} (the merged document)
  - 401: Not authenticated
*/
func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	updates := make(map[string]any)
	if err := requestutil.DecodeJSON(request, &updates); err != nil {
		respond.Error(writer, request, err)
		return
	}

	document, err := handler.accountService.UpdateProfile(request.Context(), userID, updates)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profileResponse{Profile: document})
}

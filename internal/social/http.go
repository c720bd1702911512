// Copyright (c) 2026 Holospace. All rights reserved.

package social

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/holospace/holospace/internal/account"
	"github.com/holospace/holospace/internal/platform/middleware"
	requestutil "github.com/holospace/holospace/internal/platform/request"
	"github.com/holospace/holospace/internal/platform/respond"
)

// Handler implements social HTTP endpoints.
type Handler struct {
	socialService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{socialService: service}
}

// Register mounts the social routes onto the given router.
//
// # Endpoints
//   - POST /friends/add      : Creates a symmetric friendship.
//   - GET  /friends          : Lists friends with live activity.
//   - POST /activity         : Records the caller's current activity.
//   - GET  /activity/history : Returns the bounded activity history.
func (handler *Handler) Register(router chi.Router) {
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/friends/add", handler.addFriend)
		protected.Get("/friends", handler.listFriends)
		protected.Post("/activity", handler.recordActivity)
		protected.Get("/activity/history", handler.activityHistory)
	})
}

// # Payloads

type addFriendRequest struct {
	FriendEmail string `json:"friendEmail"`
}

type addFriendResponse struct {
	Message string           `json:"message"`
	Friend  *account.Profile `json:"friend"`
}

type friendsResponse struct {
	Friends []FriendView `json:"friends"`
}

type recordActivityRequest struct {
	Activity  string  `json:"activity"`
	ContentID *string `json:"contentId"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type historyResponse struct {
	History []ActivitySnapshot `json:"history"`
}

/*
addFriend creates a symmetric friendship by email.

POST /api/v1/friends/add

Response:
  - 200: {message, friend}
  - 400: Missing email, self-add, or already friends
  - 401: Not authenticated
  - 404: No account under that email
*/
func (handler *Handler) addFriend(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input addFriendRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	friend, err := handler.socialService.AddFriend(request.Context(), userID, input.FriendEmail)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, addFriendResponse{
		Message: "Friend added successfully",
		Friend:  friend,
	})
}

/*
listFriends returns the caller's friends with their live activity.

GET /api/v1/friends

Response:
  - 200: {friends: [...]} (empty array when friendless)
  - 401: Not authenticated
*/
func (handler *Handler) listFriends(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	friends, err := handler.socialService.ListFriends(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, friendsResponse{Friends: friends})
}

/*
recordActivity overwrites the caller's live activity snapshot.

POST /api/v1/activity

Response:
  - 200: {message}
  - 400: Missing activity
  - 401: Not authenticated
*/
func (handler *Handler) recordActivity(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input recordActivityRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.socialService.RecordActivity(request.Context(), userID, input.Activity, input.ContentID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, messageResponse{Message: "Activity updated successfully"})
}

/*
activityHistory returns the caller's bounded activity history.

GET /api/v1/activity/history

Response:
  - 200: {history: [...]} (most recent first, at most 50)
  - 401: Not authenticated
*/
func (handler *Handler) activityHistory(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	history, err := handler.socialService.ActivityHistory(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, historyResponse{History: history})
}

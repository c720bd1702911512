// Copyright (c) 2026 Holospace. All rights reserved.

package commerce

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/holospace/holospace/internal/platform/middleware"
	requestutil "github.com/holospace/holospace/internal/platform/request"
	"github.com/holospace/holospace/internal/platform/respond"
)

// Handler implements purchase-related HTTP endpoints.
type Handler struct {
	commerceService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{commerceService: service}
}

// Register mounts the commerce routes onto the given router.
//
// # Endpoints
//   - POST /content/purchase : Purchases one content item.
//   - GET  /purchases        : Lists the caller's owned content IDs.
func (handler *Handler) Register(router chi.Router) {
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/content/purchase", handler.purchase)
		protected.Get("/purchases", handler.listPurchases)
	})
}

// # Payloads

type purchaseRequest struct {
	ContentID string   `json:"contentId"`
	Price     *float64 `json:"price"`
}

type purchaseResponse struct {
	Message   string `json:"message"`
	ContentID string `json:"contentId"`
}

type purchasesResponse struct {
	Purchases []string `json:"purchases"`
}

/*
purchase grants ownership of one content item.

POST /api/v1/content/purchase

Response:
  - 200: {message, contentId}
  - 400: Missing fields or already purchased
  - 401: Not authenticated
*/
func (handler *Handler) purchase(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input purchaseRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.commerceService.Purchase(request.Context(), userID, input.ContentID, input.Price); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, purchaseResponse{
		Message:   "Content purchased successfully",
		ContentID: input.ContentID,
	})
}

/*
listPurchases returns the caller's purchased-set.

GET /api/v1/purchases

Response:
  - 200: {purchases: [...]} (empty array for new users)
  - 401: Not authenticated
*/
func (handler *Handler) listPurchases(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	owned, err := handler.commerceService.ListPurchases(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, purchasesResponse{Purchases: owned})
}

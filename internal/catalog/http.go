// Copyright (c) 2026 Holospace. All rights reserved.

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/holospace/holospace/internal/platform/respond"
)

// Handler implements catalog-related HTTP endpoints.
type Handler struct {
	catalogService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{catalogService: service}
}

// Register mounts the catalog routes onto the given router.
//
// # Endpoints
//   - GET /content : Lists the full catalog (public).
func (handler *Handler) Register(router chi.Router) {
	router.Get("/content", handler.listContent)
}

type contentResponse struct {
	Content []ContentRecord `json:"content"`
}

/*
listContent returns every catalog record.

GET /api/v1/content

Response:
  - 200: {content: [...]} (empty array when the catalog is unseeded)
*/
func (handler *Handler) listContent(writer http.ResponseWriter, request *http.Request) {
	records, err := handler.catalogService.ListContent(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, contentResponse{Content: records})
}

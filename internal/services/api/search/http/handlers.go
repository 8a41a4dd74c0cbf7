// Package http provides http transport for search
package http

import (
	stdhttp "net/http"

	"searchgov/internal/modkit/httpkit"
	"searchgov/internal/services/api/search/domain"
	svc "searchgov/internal/services/api/search/service"
)

// Register mounts search endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.SearchInput](r, "/blended", h.blended)
}

type handlers struct{ svc svc.Service }

// @Summary Blended full-text search with temporal and facet filters
// @Tags Search
// @Accept json
// @Produce json
// @Param payload body domain.SearchInput true "Query"
// @Success 200 {object} domain.SearchResult "ok"
// @Failure 502 {object} httpkit.Envelope "backend returned a malformed response"
// @Failure 503 {object} httpkit.Envelope "backend unreachable or timed out"
// @Router /search/blended [post]
func (h *handlers) blended(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Blended(r.Context(), in)
}

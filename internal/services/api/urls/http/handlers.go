// Package http provides http transport for urls
package http

import (
	stdhttp "net/http"

	"searchgov/internal/modkit/httpkit"
	"searchgov/internal/services/api/urls/domain"
	svc "searchgov/internal/services/api/urls/service"
)

// Register mounts urls endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.BulkUploadInput](r, "/bulk", h.bulk)
}

type handlers struct{ svc svc.Service }

// @Summary Bulk upload URLs for indexing
// @Tags URLs
// @Accept json
// @Produce json
// @Param payload body domain.BulkUploadInput true "Batch"
// @Success 200 {object} domain.Receipt "ok"
// @Router /urls/bulk [post]
func (h *handlers) bulk(r *stdhttp.Request, in domain.BulkUploadInput) (any, error) {
	return h.svc.BulkUpload(r.Context(), in)
}

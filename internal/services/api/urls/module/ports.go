package module

import (
	"context"

	urlsdom "searchgov/internal/services/api/urls/domain"
	urlssvc "searchgov/internal/services/api/urls/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptURLsPort adapts the urls service to the domain port interface
type adaptURLsPort struct{ svc urlssvc.Service }

// BulkUpload implements the domain ServicePort interface
func (a adaptURLsPort) BulkUpload(ctx context.Context, in urlsdom.BulkUploadInput) (urlsdom.Receipt, error) {
	return a.svc.BulkUpload(ctx, in)
}

package module

import (
	"context"

	searchdom "searchgov/internal/services/api/search/domain"
	searchsvc "searchgov/internal/services/api/search/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptSearchPort adapts the search service to the domain port interface
type adaptSearchPort struct{ svc searchsvc.Service }

// Blended implements the domain ServicePort interface
func (a adaptSearchPort) Blended(ctx context.Context, in searchdom.SearchInput) (searchdom.SearchResult, error) {
	return a.svc.Blended(ctx, in)
}

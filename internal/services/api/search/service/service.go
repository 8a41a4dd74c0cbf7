// Package service contains search workflows
package service

import (
	"context"
	"time"

	"searchgov/internal/adapters/blended"
	"searchgov/internal/platform/logger"
	"searchgov/internal/platform/store"
	"searchgov/internal/services/api/search/domain"
)

// Service defines the service contract for search
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
// each call composes, executes, and adapts one request with no shared state
type Svc struct {
	backend blended.Searcher
	sink    store.Clickhouse // optional query analytics, nil disables
	log     logger.Logger
	now     func() time.Time
}

// New creates a new search service
func New(backend blended.Searcher, sink store.Clickhouse, log logger.Logger) *Svc {
	if backend == nil {
		panic("search.Service requires a non nil Searcher")
	}
	return &Svc{
		backend: backend,
		sink:    sink,
		log:     log,
		now:     time.Now,
	}
}

// Blended resolves filters, runs the query against the backend, and adapts the hits
// backend failures propagate as typed errors, they are never downgraded to
// an empty result
func (s *Svc) Blended(ctx context.Context, in domain.SearchInput) (domain.SearchResult, error) {
	var zero domain.SearchResult

	q, err := Compose(in, s.now())
	if err != nil {
		return zero, err
	}

	start := s.now()
	raw, err := s.backend.Search(ctx, q)
	if err != nil {
		s.record(ctx, in, q, zero, s.now().Sub(start), "error")
		return zero, err
	}
	res := Adapt(raw)

	s.record(ctx, in, q, res, s.now().Sub(start), "ok")
	return res, nil
}

// record writes one query analytics row, failures only log
func (s *Svc) record(
	ctx context.Context,
	in domain.SearchInput,
	q blended.Query,
	res domain.SearchResult,
	latency time.Duration,
	outcome string,
) {
	if s.sink == nil {
		return
	}
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()

	row := []any{
		s.now().UTC(),
		in.Query,
		in.Locale,
		in.TimeFilter,
		q.Since != nil,
		q.Until != nil,
		uint8(len(q.Facets)),
		uint32(in.Page),
		uint32(in.PerPage),
		uint64(res.Total),
		uint64(latency.Milliseconds()),
		outcome,
	}
	if err := s.sink.Insert(cctx, "search_queries", [][]any{row}); err != nil {
		s.log.Warn().Err(err).Msg("query analytics insert failed")
	}
}

package service

import (
	"context"
	"testing"

	"searchgov/internal/adapters/blended"
	perr "searchgov/internal/platform/errors"
	"searchgov/internal/platform/logger"
	"searchgov/internal/platform/store"
	"searchgov/internal/services/api/search/domain"
)

type fakeSearcher struct {
	lastQuery blended.Query
	calls     int
	result    blended.Result
	err       error
}

func (f *fakeSearcher) Search(_ context.Context, q blended.Query) (blended.Result, error) {
	f.calls++
	f.lastQuery = q
	return f.result, f.err
}

type fakeSink struct {
	table string
	rows  [][]any
	err   error
}

func (f *fakeSink) Insert(_ context.Context, table string, data any) error {
	f.table = table
	if rows, ok := data.([][]any); ok {
		f.rows = rows
	}
	return f.err
}

func (f *fakeSink) Query(_ context.Context, _ string, _ ...any) (store.Rows, error) {
	return nil, nil
}

func (f *fakeSink) Close() error { return nil }

func intp(n int) *int { return &n }

func testLog() logger.Logger { return logger.Logger{} }

func TestBlendedAdaptsOneHit(t *testing.T) {
	backend := &fakeSearcher{result: blended.Result{
		Total: intp(1),
		Results: []blended.Hit{
			{Title: "test result 1", UnescapedURL: "https://www.search.gov", Content: "result body"},
		},
	}}
	svc := New(backend, nil, testLog())

	got, err := svc.Blended(context.Background(), domain.SearchInput{Query: "test"})
	if err != nil {
		t.Fatalf("Blended: %v", err)
	}
	if got.Total != 1 || len(got.Results) != 1 {
		t.Fatalf("got %+v", got)
	}
	e := got.Results[0]
	if e.Title != "test result 1" || e.UnescapedURL != "https://www.search.gov" || e.Content != "result body" {
		t.Fatalf("entry fields mangled: %+v", e)
	}
	if got.Suggestion != nil {
		t.Fatalf("suggestion: got %v want nil", got.Suggestion)
	}
}

func TestBlendedPropagatesBackendFailure(t *testing.T) {
	backend := &fakeSearcher{err: perr.Unavailablef("backend down")}
	svc := New(backend, nil, testLog())

	_, err := svc.Blended(context.Background(), domain.SearchInput{Query: "test"})
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestBlendedRejectsBeforeBackendCall(t *testing.T) {
	backend := &fakeSearcher{}
	svc := New(backend, nil, testLog())

	_, err := svc.Blended(context.Background(), domain.SearchInput{Query: "x", PerPage: 500})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if backend.calls != 0 {
		t.Fatalf("backend must not be called on contract violation, got %d calls", backend.calls)
	}
}

func TestBlendedCarriesFiltersToBackend(t *testing.T) {
	backend := &fakeSearcher{result: blended.Result{Total: intp(0)}}
	svc := New(backend, nil, testLog())

	_, err := svc.Blended(context.Background(), domain.SearchInput{
		Query:       "forms",
		TimeFilter:  "w",
		ContentType: "article",
		Page:        2,
		PerPage:     10,
	})
	if err != nil {
		t.Fatalf("Blended: %v", err)
	}
	q := backend.lastQuery
	if q.Query != "forms" || q.Offset != 10 || q.Size != 10 {
		t.Fatalf("query mangled: %+v", q)
	}
	if q.Since == nil || q.Until != nil {
		t.Fatalf("tbs window should be open ended: %v %v", q.Since, q.Until)
	}
	if q.Facets["content_type"] != "article" {
		t.Fatalf("facets not carried: %v", q.Facets)
	}
}

func TestBlendedRecordsAnalytics(t *testing.T) {
	backend := &fakeSearcher{result: blended.Result{Total: intp(3)}}
	sink := &fakeSink{}
	svc := New(backend, sink, testLog())

	if _, err := svc.Blended(context.Background(), domain.SearchInput{Query: "forms"}); err != nil {
		t.Fatalf("Blended: %v", err)
	}
	if sink.table != "search_queries" {
		t.Fatalf("table: got %q", sink.table)
	}
	if len(sink.rows) != 1 {
		t.Fatalf("expected 1 analytics row, got %d", len(sink.rows))
	}
	row := sink.rows[0]
	if row[1] != "forms" || row[len(row)-1] != "ok" {
		t.Fatalf("row fields mangled: %v", row)
	}
}

func TestBlendedRecordsFailedQueries(t *testing.T) {
	backend := &fakeSearcher{err: perr.Upstreamf("search returned 500")}
	sink := &fakeSink{}
	svc := New(backend, sink, testLog())

	if _, err := svc.Blended(context.Background(), domain.SearchInput{Query: "forms"}); err == nil {
		t.Fatalf("expected backend error")
	}
	if len(sink.rows) != 1 {
		t.Fatalf("expected 1 analytics row, got %d", len(sink.rows))
	}
	if row := sink.rows[0]; row[len(row)-1] != "error" {
		t.Fatalf("outcome: got %v", row[len(row)-1])
	}
}

// a broken sink must never fail the search itself
func TestBlendedToleratesSinkFailure(t *testing.T) {
	backend := &fakeSearcher{result: blended.Result{Total: intp(0)}}
	sink := &fakeSink{err: perr.Unavailablef("ch down")}
	svc := New(backend, sink, testLog())

	if _, err := svc.Blended(context.Background(), domain.SearchInput{Query: "forms"}); err != nil {
		t.Fatalf("sink failure leaked: %v", err)
	}
}

func TestAdaptZeroHits(t *testing.T) {
	got := Adapt(blended.Result{Total: intp(0)})
	if got.Total != 0 || got.Results == nil || len(got.Results) != 0 {
		t.Fatalf("zero hits should adapt to an empty non-nil slice: %+v", got)
	}
}

func TestAdaptPreservesOrderAndSuggestion(t *testing.T) {
	sugg := "tax forms"
	got := Adapt(blended.Result{
		Total:      intp(2),
		Suggestion: &sugg,
		Results:    []blended.Hit{{Title: "a"}, {Title: "b"}},
	})
	if got.Suggestion == nil || *got.Suggestion != "tax forms" {
		t.Fatalf("suggestion: got %v", got.Suggestion)
	}
	if got.Results[0].Title != "a" || got.Results[1].Title != "b" {
		t.Fatalf("order broken: %+v", got.Results)
	}
}

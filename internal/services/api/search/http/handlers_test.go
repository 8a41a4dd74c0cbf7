package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"searchgov/internal/adapters/blended"
	perr "searchgov/internal/platform/errors"
	phttp "searchgov/internal/platform/net/http"
	searchsvc "searchgov/internal/services/api/search/service"
)

type stubSearcher struct {
	got  blended.Query
	res  blended.Result
	err  error
	hits int
}

func (s *stubSearcher) Search(_ context.Context, q blended.Query) (blended.Result, error) {
	s.got = q
	s.hits++
	return s.res, s.err
}

func intp(v int) *int { return &v }

func mount(t *testing.T, backend blended.Searcher) *chi.Mux {
	t.Helper()
	mux := chi.NewMux()
	r := phttp.AdaptChi(mux)
	Register(r, searchsvc.New(backend, nil, zerolog.Nop()))
	return mux
}

func TestBlendedEndToEnd(t *testing.T) {
	t.Parallel()

	backend := &stubSearcher{res: blended.Result{
		Total: intp(1),
		Results: []blended.Hit{
			{Title: "tax forms", UnescapedURL: "https://irs.example.gov/forms", Content: "all the forms"},
		},
	}}
	mux := mount(t, backend)

	body := `{"query":"tax forms","tbs":"w","audience":"everyone","page":2,"per_page":10}`
	req := httptest.NewRequest("POST", "/blended", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if backend.hits != 1 {
		t.Fatalf("backend called %d times, want 1", backend.hits)
	}
	if backend.got.Offset != 10 || backend.got.Size != 10 {
		t.Fatalf("pagination not forwarded: offset=%d size=%d", backend.got.Offset, backend.got.Size)
	}
	if backend.got.Facets["audience"] != "everyone" {
		t.Fatalf("facets not forwarded: %#v", backend.got.Facets)
	}
	if backend.got.Since == nil {
		t.Fatalf("tbs=w should resolve to a window floor")
	}

	var env struct {
		StatusCode int `json:"status_code"`
		Data       struct {
			Total   int `json:"total"`
			Results []struct {
				Title string `json:"title"`
			} `json:"results"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.StatusCode != 200 || env.Data.Total != 1 || len(env.Data.Results) != 1 {
		t.Fatalf("unexpected envelope: %s", rec.Body.String())
	}
	if env.Data.Results[0].Title != "tax forms" {
		t.Fatalf("title = %q", env.Data.Results[0].Title)
	}
}

func TestBlendedRejectsMissingQuery(t *testing.T) {
	t.Parallel()

	backend := &stubSearcher{}
	mux := mount(t, backend)

	req := httptest.NewRequest("POST", "/blended", strings.NewReader(`{"tbs":"w"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400, body %s", rec.Code, rec.Body.String())
	}
	if backend.hits != 0 {
		t.Fatalf("backend must not run for invalid input")
	}
}

func TestBlendedRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	mux := mount(t, &stubSearcher{})

	req := httptest.NewRequest("POST", "/blended", strings.NewReader(`{"query": `))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestBlendedMapsBackendFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unreachable", perr.Unavailablef("connect refused"), 503},
		{"malformed upstream", perr.Upstreamf("missing total"), 502},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			mux := mount(t, &stubSearcher{err: c.err})
			req := httptest.NewRequest("POST", "/blended", strings.NewReader(`{"query":"passports"}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != c.want {
				t.Fatalf("status = %d, want %d, body %s", rec.Code, c.want, rec.Body.String())
			}
			var env struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode envelope: %v", err)
			}
			if env.Error == "" {
				t.Fatalf("error message missing from envelope: %s", rec.Body.String())
			}
		})
	}
}

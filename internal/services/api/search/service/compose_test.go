package service

import (
	"reflect"
	"testing"
	"time"

	perr "searchgov/internal/platform/errors"
	"searchgov/internal/services/api/search/domain"
)

var composeNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func TestComposeDefaults(t *testing.T) {
	q, err := Compose(domain.SearchInput{Query: "taxes"}, composeNow)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if q.Query != "taxes" {
		t.Fatalf("query: got %q", q.Query)
	}
	if q.Offset != 0 || q.Size != 20 {
		t.Fatalf("pagination defaults: offset=%d size=%d", q.Offset, q.Size)
	}
	if q.Since != nil || q.Until != nil {
		t.Fatalf("no temporal input should leave the window open: %v %v", q.Since, q.Until)
	}
	if q.Facets != nil {
		t.Fatalf("no facets should stay absent, got %v", q.Facets)
	}
}

func TestComposePagination(t *testing.T) {
	q, err := Compose(domain.SearchInput{Query: "x", Page: 3, PerPage: 10}, composeNow)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if q.Offset != 20 || q.Size != 10 {
		t.Fatalf("got offset=%d size=%d", q.Offset, q.Size)
	}
}

func TestComposeContractViolations(t *testing.T) {
	cases := []domain.SearchInput{
		{Query: ""},
		{Query: "   "},
		{Query: "x", Page: -1},
		{Query: "x", PerPage: -5},
		{Query: "x", PerPage: 101},
	}
	for _, in := range cases {
		if _, err := Compose(in, composeNow); !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("input %+v: expected validation error, got %v", in, err)
		}
	}
}

func TestComposeResolvesWindow(t *testing.T) {
	q, err := Compose(domain.SearchInput{
		Query:     "x",
		SinceDate: "8/20/2012",
		UntilDate: "11/30/2014",
	}, composeNow)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	wantSince := time.Date(2012, 8, 20, 0, 0, 0, 0, time.UTC)
	wantUntil := time.Date(2014, 11, 30, 23, 59, 59, 999999999, time.UTC)
	if q.Since == nil || !q.Since.Equal(wantSince) {
		t.Fatalf("since: got %v want %v", q.Since, wantSince)
	}
	if q.Until == nil || !q.Until.Equal(wantUntil) {
		t.Fatalf("until: got %v want %v", q.Until, wantUntil)
	}
}

// malformed filter input degrades, it never errors
func TestComposeAbsorbsBadFilters(t *testing.T) {
	q, err := Compose(domain.SearchInput{
		Query:      "x",
		TimeFilter: "GGG",
		SinceDate:  "99/99/9999",
		UntilDate:  "not a date",
	}, composeNow)
	if err != nil {
		t.Fatalf("bad filters must not fail compose: %v", err)
	}
	if q.Since == nil || q.Until == nil {
		t.Fatalf("fallbacks expected: %v %v", q.Since, q.Until)
	}
}

func TestComposeFacetPassthrough(t *testing.T) {
	q, err := Compose(domain.SearchInput{
		Query:       "x",
		Audience:    "everyone",
		ContentType: "article",
		MimeType:    "",
		Tags:        "  ",
	}, composeNow)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	want := map[string]string{
		"audience":     "everyone",
		"content_type": "article",
	}
	if !reflect.DeepEqual(q.Facets, want) {
		t.Fatalf("facets: got %v want %v", q.Facets, want)
	}
}

func TestComposeDeterministic(t *testing.T) {
	in := domain.SearchInput{
		Query:       "determinism",
		SinceDate:   "8/20/2012",
		TimeFilter:  "zz",
		Audience:    "everyone",
		ContentType: "article",
		Page:        2,
		PerPage:     50,
	}
	a, err := Compose(in, composeNow)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	b, err := Compose(in, composeNow)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("compose not deterministic:\n%+v\n%+v", a, b)
	}
}

package service

import (
	"strings"
	"time"

	"searchgov/internal/adapters/blended"
	"searchgov/internal/core/facets"
	"searchgov/internal/core/temporal"
	perr "searchgov/internal/platform/errors"
	"searchgov/internal/services/api/search/domain"
)

const (
	defaultPage    = 1
	defaultPerPage = 20
	maxPerPage     = 100
)

// Compose turns a validated input into the self-describing backend query
// pure: identical inputs and now always produce an identical query.
// It fails only on caller contract violations, never on filter input,
// malformed filters degrade to defaults inside resolution
func Compose(in domain.SearchInput, now time.Time) (blended.Query, error) {
	var zero blended.Query

	if strings.TrimSpace(in.Query) == "" {
		return zero, perr.Validationf("query is required")
	}
	if in.Page < 0 || in.PerPage < 0 {
		return zero, perr.Validationf("pagination must not be negative")
	}
	if in.PerPage > maxPerPage {
		return zero, perr.Validationf("per_page must be at most %d", maxPerPage)
	}

	page := in.Page
	if page == 0 {
		page = defaultPage
	}
	size := in.PerPage
	if size == 0 {
		size = defaultPerPage
	}

	window := temporal.Resolve(temporal.Input{
		TimeFilter: in.TimeFilter,
		SinceDate:  in.SinceDate,
		UntilDate:  in.UntilDate,
		Locale:     in.Locale,
	}, now)

	fs := facets.Normalize(facets.Raw{
		Audience:    in.Audience,
		ContentType: in.ContentType,
		MimeType:    in.MimeType,
		Custom1:     in.Custom1,
		Custom2:     in.Custom2,
		Custom3:     in.Custom3,
		SortBy:      in.SortBy,
		Tags:        in.Tags,
	})

	q := blended.Query{
		Query:  in.Query,
		Since:  window.Since,
		Until:  window.Until,
		Offset: (page - 1) * size,
		Size:   size,
	}
	if len(fs) > 0 {
		q.Facets = map[string]string(fs)
	}
	return q, nil
}

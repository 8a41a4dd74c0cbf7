package service

import (
	"searchgov/internal/adapters/blended"
	"searchgov/internal/services/api/search/domain"
)

// Adapt maps the raw backend response to the stable result shape
// ordering, total, and suggestion are preserved verbatim, nothing is
// re-ranked, deduplicated, or truncated here
func Adapt(raw blended.Result) domain.SearchResult {
	out := domain.SearchResult{
		Suggestion: raw.Suggestion,
		Results:    make([]domain.Entry, 0, len(raw.Results)),
	}
	if raw.Total != nil {
		out.Total = *raw.Total
	}
	for _, h := range raw.Results {
		out.Results = append(out.Results, domain.Entry{
			Title:        h.Title,
			UnescapedURL: h.UnescapedURL,
			Content:      h.Content,
		})
	}
	return out
}

// Package domain holds DTOs for search http and service contracts
package domain

// SearchInput is the inbound search request
// all filter fields are optional and may be malformed, resolution degrades them
// to safe defaults instead of rejecting
type SearchInput struct {
	Query string `json:"query" validate:"required,min=1,max=400" example:"tax forms"`

	// temporal filters
	SinceDate  string `json:"since_date,omitempty" example:"8/20/2012"`
	UntilDate  string `json:"until_date,omitempty" example:"11/30/2014"`
	TimeFilter string `json:"tbs,omitempty" example:"w"`
	Locale     string `json:"locale,omitempty" validate:"omitempty,bcp47_language_tag" example:"es"`

	// facet filters, passed through verbatim when non-blank
	Audience    string `json:"audience,omitempty" example:"everyone"`
	ContentType string `json:"content_type,omitempty" example:"article"`
	MimeType    string `json:"mime_type,omitempty" example:"application/pdf"`
	Custom1     string `json:"searchgov_custom1,omitempty"`
	Custom2     string `json:"searchgov_custom2,omitempty"`
	Custom3     string `json:"searchgov_custom3,omitempty"`
	SortBy      string `json:"sort_by,omitempty" example:"date"`
	Tags        string `json:"tags,omitempty"`

	// pagination
	Page    int `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PerPage int `json:"per_page,omitempty" validate:"omitempty,min=1,max=100" example:"20"`
}

// Entry is one adapted search hit in backend relevance order
type Entry struct {
	Title        string `json:"title"`
	UnescapedURL string `json:"unescaped_url"`
	Content      string `json:"content"`
}

// SearchResult is the stable result shape handed to callers
// an empty Results with Total 0 is a valid zero-hit response, never an error
type SearchResult struct {
	Total      int     `json:"total"`
	Suggestion *string `json:"suggestion,omitempty"`
	Results    []Entry `json:"results"`
}

package blended

import "time"

// Query is the composed request sent to the blended search backend
// nil since/until mean unbounded on that side
type Query struct {
	Query  string            `json:"query"`
	Since  *time.Time        `json:"since,omitempty"`
	Until  *time.Time        `json:"until,omitempty"`
	Facets map[string]string `json:"facets,omitempty"`
	Offset int               `json:"offset"`
	Size   int               `json:"size"`
}

// Hit is one ranked document as the backend reports it
type Hit struct {
	Title        string `json:"title"`
	UnescapedURL string `json:"unescaped_url"`
	Content      string `json:"content"`
}

// Result is the raw backend response
// Total is a pointer so a missing field is distinguishable from zero
type Result struct {
	Total      *int    `json:"total"`
	Suggestion *string `json:"suggestion"`
	Results    []Hit   `json:"results"`
}

// Package facets normalizes optional categorical search filters
//
// Facet values are passed through verbatim, the backend owns the valid
// vocabularies. This layer only decides presence: blank or absent values
// never reach the composed query.
package facets

import "strings"

// Recognized facet keys
const (
	KeyAudience       = "audience"
	KeyContentType    = "content_type"
	KeyMimeType       = "mime_type"
	KeyCustom1        = "searchgov_custom1"
	KeyCustom2        = "searchgov_custom2"
	KeyCustom3        = "searchgov_custom3"
	KeySortBy         = "sort_by"
	KeyTags           = "tags"
)

// Raw is the untrusted facet portion of a search request
type Raw struct {
	Audience    string
	ContentType string
	MimeType    string
	Custom1     string
	Custom2     string
	Custom3     string
	SortBy      string
	Tags        string
}

// Set maps facet name to its normalized value
// only explicitly provided non-blank facets are present
type Set map[string]string

// Normalize builds a Set from raw input, dropping blank values
func Normalize(raw Raw) Set {
	s := Set{}
	// presence is judged ignoring whitespace but values pass through unchanged
	put := func(key, val string) {
		if strings.TrimSpace(val) != "" {
			s[key] = val
		}
	}
	put(KeyAudience, raw.Audience)
	put(KeyContentType, raw.ContentType)
	put(KeyMimeType, raw.MimeType)
	put(KeyCustom1, raw.Custom1)
	put(KeyCustom2, raw.Custom2)
	put(KeyCustom3, raw.Custom3)
	put(KeySortBy, raw.SortBy)
	put(KeyTags, raw.Tags)
	return s
}

// Get returns the value for key and whether it is present
func (s Set) Get(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

// Clone returns an independent copy so a composed query owns its facets
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

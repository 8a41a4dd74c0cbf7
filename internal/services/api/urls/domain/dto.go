// Package domain holds DTOs for urls http and service contracts
package domain

// BulkUploadInput is a batch of URLs to persist for later indexing
type BulkUploadInput struct {
	SourceFile string   `json:"source_file" validate:"required,min=1,max=255" example:"agency-urls.txt"`
	URLs       []string `json:"urls" validate:"required,min=1,max=10000,dive,max=2000"`
	Reindex    bool     `json:"reindex,omitempty"`
}

// Receipt summarizes one processed batch
// Inserted + Duplicate + Invalid always equals the submitted count
type Receipt struct {
	BatchID     string   `json:"batch_id"`
	SourceFile  string   `json:"source_file"`
	Submitted   int      `json:"submitted"`
	Inserted    int      `json:"inserted"`
	Duplicate   int      `json:"duplicate"`
	Invalid     int      `json:"invalid"`
	InvalidURLs []string `json:"invalid_urls,omitempty"`
	Reindex     bool     `json:"reindex"`
}

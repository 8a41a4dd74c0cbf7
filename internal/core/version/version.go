// Package version provides information about the build version of the service.
package version

// Service is the canonical service name reported in build info and logs.
const Service = "searchgov-api"

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'searchgov/internal/core/version.version=v0.0.1'
	// -X 'searchgov/internal/core/version.commit=abcd' -X 'searchgov/internal/core/version.date=2026-08-31'"
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Package blended provides an HTTP client for the blended full-text search backend
package blended

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "searchgov/internal/platform/errors"
	"searchgov/internal/platform/logger"
)

const (
	searchPath     = "/api/v1/search"
	defaultTimeout = 10 * time.Second
	defaultUA      = "searchgov-api"
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Searcher is the single-operation seam the search service depends on
// production uses Client, tests substitute fakes
type Searcher interface {
	Search(ctx context.Context, q Query) (Result, error)
}

// Client talks to the blended backend over its JSON contract
// failures map to typed errors so callers can tell an outage from bad data.
// The client never retries, retry policy belongs to the caller
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

var _ Searcher = (*Client)(nil)

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("blended"),
		now:  time.Now,
	}
}

// Search executes the composed query against the backend
// unreachable or overloaded backends surface as unavailable,
// responses the adapter cannot trust surface as upstream errors
func (c *Client) Search(ctx context.Context, q Query) (Result, error) {
	var zero Result

	body, err := json.Marshal(q)
	if err != nil {
		return zero, perr.Wrapf(err, perr.ErrorCodeUnknown, "blended encode query failed")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+searchPath, bytes.NewReader(body))
	if err != nil {
		return zero, perr.Wrapf(err, perr.ErrorCodeUnknown, "blended new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)

	if err != nil {
		// transport failure or timeout, the backend could not be reached
		return zero, perr.Wrapf(err, perr.ErrorCodeUnavailable, "blended backend unreachable")
	}
	defer func() { _ = drainAndClose(resp.Body) }()

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Str("query", q.Query).
		Msg("blended http response")

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		// any 5xx counts as an outage, not a contract violation
		return zero, perr.Unavailablef("blended backend overloaded: status %d", resp.StatusCode)
	default:
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return zero, perr.Upstreamf("blended unexpected status %d body %s", resp.StatusCode, string(tail))
	}

	var out Result
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return zero, perr.Wrapf(err, perr.ErrorCodeUpstream, "blended undecodable response")
	}
	if out.Total == nil {
		return zero, perr.Upstreamf("blended response missing total")
	}
	if *out.Total < 0 {
		return zero, perr.Upstreamf("blended response negative total %d", *out.Total)
	}
	for i, hit := range out.Results {
		if hit.Title == "" && hit.UnescapedURL == "" {
			return zero, perr.Upstreamf("blended response entry %d has neither title nor url", i)
		}
	}
	return out, nil
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 4096))
	return rc.Close()
}

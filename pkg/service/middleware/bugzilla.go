package middleware

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/crashstats/pkg/domain/interfaces"
)

// DefaultBugzillaURL is the public Bugzilla REST API
const DefaultBugzillaURL = "https://api-dev.bugzilla.mozilla.org/0.9"

// Bugzilla reads bug details from the Bugzilla REST API
type Bugzilla struct {
	*fetcher
}

var _ interfaces.Bugzilla = (*Bugzilla)(nil)

// NewBugzilla creates a Bugzilla client. An empty baseURL uses DefaultBugzillaURL.
func NewBugzilla(baseURL string, opts ...Option) (*Bugzilla, error) {
	if baseURL == "" {
		baseURL = DefaultBugzillaURL
	}
	f, err := newFetcher(baseURL, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create bugzilla client")
	}
	return &Bugzilla{fetcher: f}, nil
}

// BugInfo returns the requested fields of bugIDs exactly as Bugzilla sends them
func (b *Bugzilla) BugInfo(ctx context.Context, bugIDs []string, fields []string) (json.RawMessage, error) {
	query := "id=" + url.QueryEscape(strings.Join(bugIDs, ",")) +
		"&include_fields=" + url.QueryEscape(strings.Join(fields, ","))

	var resp json.RawMessage
	req := request{
		endpoint: "bugzilla_bug",
		path:     "/bug?" + query,
		headers: map[string]string{
			"Accept":       "application/json",
			"Content-Type": "application/json",
		},
	}
	if err := b.fetch(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Wait blocks until responses fetched so far are written to the cache
func (b *Bugzilla) Wait() {
	b.wait()
}

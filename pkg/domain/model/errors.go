package model

import "github.com/m-mizutani/goerr/v2"

// Error tags used to map failures onto HTTP responses
var (
	// ErrTagBadRequest marks malformed request parameters (HTTP 400)
	ErrTagBadRequest = goerr.NewTag("bad_request")
	// ErrTagNotFound marks unknown products, versions or crash reports (HTTP 404)
	ErrTagNotFound = goerr.NewTag("not_found")
	// ErrTagUpstream marks a non-200 answer from the middleware (HTTP 502)
	ErrTagUpstream = goerr.NewTag("upstream")
)

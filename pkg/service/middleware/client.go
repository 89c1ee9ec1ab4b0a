package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/crashstats/pkg/domain/interfaces"
	"github.com/secmon-lab/crashstats/pkg/domain/model"
	"github.com/secmon-lab/crashstats/pkg/repository"
	"github.com/secmon-lab/crashstats/pkg/utils/async"
	"github.com/secmon-lab/crashstats/pkg/utils/metrics"
)

const (
	// DefaultTimeout bounds a single middleware request
	DefaultTimeout = 30 * time.Second

	// maxResponseSize caps the body read from the middleware
	maxResponseSize = 64 << 20
)

// fetcher performs cached JSON requests against one base URL. It is shared by
// the middleware and the Bugzilla clients.
type fetcher struct {
	baseURL    string
	httpHost   string
	username   string
	password   string
	httpClient *http.Client
	cache      interfaces.Cache
	cacheTTL   time.Duration
	metrics    *metrics.Metrics
	dispatcher *async.Dispatcher
}

// Option configures a client
type Option func(*fetcher)

// WithHTTPHost overrides the Host header sent with every request
func WithHTTPHost(host string) Option {
	return func(f *fetcher) {
		f.httpHost = host
	}
}

// WithBasicAuth enables basic authentication. It is only used when both
// values are set.
func WithBasicAuth(username, password string) Option {
	return func(f *fetcher) {
		f.username = username
		f.password = password
	}
}

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(f *fetcher) {
		f.httpClient = client
	}
}

// WithTimeout sets the timeout of the default HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(f *fetcher) {
		f.httpClient = &http.Client{Timeout: timeout}
	}
}

// WithCache stores successful responses in cache for ttl
func WithCache(cache interfaces.Cache, ttl time.Duration) Option {
	return func(f *fetcher) {
		f.cache = cache
		f.cacheTTL = ttl
	}
}

// WithMetrics records request and cache metrics
func WithMetrics(m *metrics.Metrics) Option {
	return func(f *fetcher) {
		f.metrics = m
	}
}

func newFetcher(baseURL string, opts ...Option) (*fetcher, error) {
	if baseURL == "" {
		return nil, goerr.New("base URL is empty")
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, goerr.New("invalid base URL", goerr.V("url", baseURL))
	}

	f := &fetcher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		dispatcher: &async.Dispatcher{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// completeURL prefixes relative paths with the base URL
func (f *fetcher) completeURL(path string) string {
	if strings.HasPrefix(path, "/") {
		return f.baseURL + path
	}
	return path
}

type request struct {
	endpoint string
	method   string
	path     string
	form     url.Values
	headers  map[string]string
}

// fetch performs req and decodes the JSON body into out. Responses are read
// from and written to the cache when one is configured.
func (f *fetcher) fetch(ctx context.Context, req request, out any) error {
	body, err := f.fetchRaw(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return goerr.Wrap(err, "failed to decode response",
			goerr.V("endpoint", req.endpoint),
			goerr.V("url", f.completeURL(req.path)),
			goerr.T(model.ErrTagUpstream))
	}
	return nil
}

func (f *fetcher) fetchRaw(ctx context.Context, req request) ([]byte, error) {
	logger := ctxlog.From(ctx)
	method := req.method
	if method == "" {
		method = http.MethodGet
	}
	target := f.completeURL(req.path)

	var key string
	if f.cache != nil && f.cacheTTL > 0 {
		key = repository.CacheKey(method, target, req.form)
		body, ok, err := f.cache.Get(ctx, key)
		switch {
		case err != nil:
			f.metrics.CacheError()
			logger.Warn("cache lookup failed", "error", err, "url", target)
		case ok:
			f.metrics.CacheHit()
			logger.Debug("cache hit", "url", target)
			return body, nil
		default:
			f.metrics.CacheMiss()
		}
	}

	var payload io.Reader
	if method == http.MethodPost && req.form != nil {
		payload = strings.NewReader(req.form.Encode())
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request", goerr.V("url", target))
	}
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if f.httpHost != "" {
		httpReq.Host = f.httpHost
	}
	if f.username != "" && f.password != "" {
		httpReq.SetBasicAuth(f.username, f.password)
	}
	for k, v := range req.headers {
		httpReq.Header.Set(k, v)
	}

	logger.Debug("fetching", "method", method, "url", target)
	start := time.Now()
	resp, err := f.httpClient.Do(httpReq)
	if err != nil {
		f.metrics.ObserveMiddleware(req.endpoint, 0, time.Since(start))
		return nil, goerr.Wrap(err, "failed to send request",
			goerr.V("url", target),
			goerr.T(model.ErrTagUpstream))
	}
	defer safeClose(ctx, resp.Body)
	f.metrics.ObserveMiddleware(req.endpoint, resp.StatusCode, time.Since(start))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read response",
			goerr.V("url", target),
			goerr.T(model.ErrTagUpstream))
	}

	if resp.StatusCode != http.StatusOK {
		opts := []goerr.Option{
			goerr.V("status", resp.StatusCode),
			goerr.V("url", target),
			goerr.V("body", truncate(body, 256)),
			goerr.T(model.ErrTagUpstream),
		}
		if resp.StatusCode == http.StatusNotFound {
			opts = append(opts, goerr.T(model.ErrTagNotFound))
		}
		return nil, goerr.New("bad status code from middleware", opts...)
	}

	if key != "" {
		stored := bytes.Clone(body)
		f.dispatcher.Dispatch(ctx, func(ctx context.Context) error {
			if err := f.cache.Put(ctx, key, stored, f.cacheTTL); err != nil {
				return goerr.Wrap(err, "failed to store response", goerr.V("url", target))
			}
			return nil
		})
	}

	return body, nil
}

// wait blocks until pending cache writes finished
func (f *fetcher) wait() {
	f.dispatcher.Wait()
}

func truncate(body []byte, n int) string {
	if len(body) > n {
		return string(body[:n]) + "..."
	}
	return string(body)
}

func safeClose(ctx context.Context, c io.Closer) {
	if err := c.Close(); err != nil {
		ctxlog.From(ctx).Warn("failed to close response body", "error", err)
	}
}

// Client talks to the crash statistics middleware
type Client struct {
	*fetcher
}

var _ interfaces.Middleware = (*Client)(nil)

// New creates a middleware client for baseURL
func New(baseURL string, opts ...Option) (*Client, error) {
	f, err := newFetcher(baseURL, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create middleware client")
	}
	return &Client{fetcher: f}, nil
}

// Wait blocks until responses fetched so far are written to the cache
func (c *Client) Wait() {
	c.wait()
}

package http

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/crashstats/pkg/domain/model"
	"github.com/secmon-lab/crashstats/pkg/domain/types"
)

// BaseResolver resolves the product and versions named in a report URL
type BaseResolver interface {
	ResolveBase(ctx context.Context, product types.Product, versions string) (*model.BaseData, error)
}

// ErrorWriter answers a request that failed
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

type baseDataKey struct{}

func withBaseData(ctx context.Context, base *model.BaseData) context.Context {
	return context.WithValue(ctx, baseDataKey{}, base)
}

// baseDataFrom returns the base data resolved for the request, or nil
func baseDataFrom(ctx context.Context) *model.BaseData {
	base, _ := ctx.Value(baseDataKey{}).(*model.BaseData)
	return base
}

// BaseDataMiddleware resolves the {product} and {versions} URL parameters
// against the current versions and stores the result in the request context.
// Unknown products or versions are answered through onError.
func BaseDataMiddleware(resolver BaseResolver, onError ErrorWriter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			product := types.Product(urlParam(r, "product"))
			versions := urlParam(r, "versions")

			base, err := resolver.ResolveBase(r.Context(), product, versions)
			if err != nil {
				onError(w, r, err)
				return
			}

			ctxlog.From(r.Context()).Debug("base data resolved",
				"product", base.Product,
				"versions", base.Versions.String(),
			)
			next.ServeHTTP(w, r.WithContext(withBaseData(r.Context(), base)))
		})
	}
}

// urlParam returns the decoded value of a chi URL parameter. chi routes on
// RawPath when the request has one and no RoutePath was set, leaving those
// values escaped.
func urlParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value
	}
	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePath != "" {
		return value
	}
	if v, err := url.PathUnescape(value); err == nil {
		return v
	}
	return value
}

// LoggingMiddleware creates a chi-compatible logging middleware
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Embed logger from the initial context into request context
			r = r.WithContext(ctxlog.With(r.Context(), ctxlog.From(ctx)))

			logger := ctxlog.From(r.Context())
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.Query(),
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

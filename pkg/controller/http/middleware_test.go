package http_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	controller "github.com/secmon-lab/crashstats/pkg/controller/http"
	"github.com/secmon-lab/crashstats/pkg/domain/model"
	"github.com/secmon-lab/crashstats/pkg/domain/types"
)

type resolverFunc func(ctx context.Context, product types.Product, versions string) (*model.BaseData, error)

func (f resolverFunc) ResolveBase(ctx context.Context, product types.Product, versions string) (*model.BaseData, error) {
	return f(ctx, product, versions)
}

func TestBaseDataMiddleware(t *testing.T) {
	var gotProduct types.Product
	var gotVersions string
	resolver := resolverFunc(func(ctx context.Context, product types.Product, versions string) (*model.BaseData, error) {
		gotProduct, gotVersions = product, versions
		if product == "SeaMonkey" {
			return nil, goerr.New("Not a recognized product", goerr.T(model.ErrTagNotFound))
		}
		return &model.BaseData{Product: product, Versions: types.ParseVersions(versions)}, nil
	})

	var failed error
	onError := func(w http.ResponseWriter, r *http.Request, err error) {
		failed = err
		w.WriteHeader(http.StatusNotFound)
	}

	router := chi.NewRouter()
	router.With(controller.BaseDataMiddleware(resolver, onError)).
		Get("/products/{product}/versions/{versions}", func(w http.ResponseWriter, r *http.Request) {
			base := controller.BaseDataFrom(r.Context())
			gt.NotEqual(t, base, nil)
			_, _ = w.Write([]byte(base.Product.String() + "|" + base.Versions.String()))
		})

	t.Run("resolved base data is stored in the context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/products/Firefox/versions/15.0a1;14.0a2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		gt.Equal(t, w.Code, http.StatusOK)
		gt.Equal(t, w.Body.String(), "Firefox|15.0a1;14.0a2")
		gt.Equal(t, gotProduct, types.Product("Firefox"))
		gt.Equal(t, gotVersions, "15.0a1;14.0a2")
	})

	t.Run("escaped parameters are decoded", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/products/Fennec%20Android/versions/15.0a1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		gt.Equal(t, w.Code, http.StatusOK)
		gt.Equal(t, gotProduct, types.Product("Fennec Android"))
	})

	t.Run("escaped percent sign is decoded once", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/products/Fennec%2520Android/versions/15.0a1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		gt.Equal(t, w.Code, http.StatusOK)
		gt.Equal(t, gotProduct, types.Product("Fennec%20Android"))
	})

	t.Run("resolution errors go to the error writer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/products/SeaMonkey/versions/2.0", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		gt.Equal(t, w.Code, http.StatusNotFound)
		gt.True(t, goerr.HasTag(failed, model.ErrTagNotFound))
	})
}

func TestBaseDataFromEmptyContext(t *testing.T) {
	gt.Equal(t, controller.BaseDataFrom(context.Background()), nil)
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := ctxlog.With(context.Background(), logger)

	handler := controller.LoggingMiddleware(ctx)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/query?product=Firefox", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	gt.Equal(t, w.Code, http.StatusTeapot)
	gt.S(t, buf.String()).Contains(`"msg":"HTTP request"`)
	gt.S(t, buf.String()).Contains(`"path":"/query"`)
	gt.S(t, buf.String()).Contains(`"status":418`)
}

func TestReportPath(t *testing.T) {
	gt.Equal(t, controller.ReportPath("/topcrasher", "Firefox", nil), "/topcrasher/products/Firefox")
	gt.Equal(t, controller.ReportPath("/hangreport", "Firefox", types.Versions{"15.0a1", "14.0a2"}),
		"/hangreport/products/Firefox/versions/15.0a1;14.0a2")
	gt.Equal(t, controller.ReportPath("", "Fennec Android", types.Versions{"1.0/beta"}),
		"/products/Fennec%20Android/versions/1.0%2Fbeta")
}

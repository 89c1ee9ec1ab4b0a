package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/crashstats/frontend"
	"github.com/secmon-lab/crashstats/pkg/domain/model"
	"github.com/secmon-lab/crashstats/pkg/domain/types"
	"github.com/secmon-lab/crashstats/pkg/utils/apperr"
)

const (
	layoutTemplate = "layout.html"
	errorTemplate  = "error.html"
)

var pageTemplates = []string{
	"products.html",
	"topcrasher.html",
	"daily.html",
	"builds.html",
	"hangreport.html",
	"topchangers.html",
	"report_index.html",
	"report_list.html",
	"query.html",
	"error.html",
}

var templateFuncs = template.FuncMap{
	"json":          toJSON,
	"percent":       percent,
	"formatDate":    types.FormatDate,
	"add":           func(a, b int) int { return a + b },
	"join":          join,
	"crashTypes":    func() []types.CrashType { return types.CrashTypes },
	"hangTypes":     func() []types.ReportType { return types.HangTypes },
	"reportTypes":   func() []types.ReportType { return types.ReportTypes },
	"hasOS":         contains[types.OSName],
	"hasReportType": contains[types.ReportType],
}

// pageData is the root object every page template is executed with
type pageData struct {
	Report   string
	Base     *model.BaseData
	Products []types.Product
	Config   *model.DashboardConfig
	Today    string
	Page     any
}

// errorPage is the Page of error.html
type errorPage struct {
	Status     int
	StatusText string
	Message    string
}

// loadTemplates parses the layout and clones it once per page so each page
// can override the title and content blocks.
func loadTemplates() (map[string]*template.Template, error) {
	layout, err := template.New(layoutTemplate).Funcs(templateFuncs).ParseFS(frontend.Templates, "templates/"+layoutTemplate)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse layout template")
	}

	result := make(map[string]*template.Template, len(pageTemplates))
	for _, page := range pageTemplates {
		t, err := layout.Clone()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to clone layout", goerr.V("page", page))
		}
		if _, err := t.ParseFS(frontend.Templates, "templates/"+page); err != nil {
			return nil, goerr.Wrap(err, "failed to parse page template", goerr.V("page", page))
		}
		result[page] = t
	}

	return result, nil
}

// render executes the layout with the named page template
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name, report string, page any) {
	t, ok := s.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	base := baseDataFrom(r.Context())
	if base == nil {
		base = &model.BaseData{Product: s.reports.DefaultProduct()}
	}

	data := pageData{
		Report:   report,
		Base:     base,
		Products: base.CurrentVersions.Products(),
		Config:   s.reports.Config(),
		Today:    s.reports.Today(),
		Page:     page,
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutTemplate, data); err != nil {
		err = goerr.Wrap(err, "failed to render template", goerr.V("template", name))
		if name == errorTemplate {
			apperr.Handle(r.Context(), err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		ctxlog.From(r.Context()).Warn("failed to write response", "template", name, "error", err)
	}
}

// renderError answers an HTML page request that failed
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	apperr.Handle(r.Context(), err)
	status := apperr.StatusCode(err)
	s.render(w, r, status, errorTemplate, "", &errorPage{
		Status:     status,
		StatusText: http.StatusText(status),
		Message:    errorMessage(err),
	})
}

// errorMessage is the message shown to clients. Server side failures are not detailed.
func errorMessage(err error) string {
	if apperr.StatusCode(err) >= http.StatusInternalServerError {
		return http.StatusText(apperr.StatusCode(err))
	}
	if goErr := goerr.Unwrap(err); goErr != nil {
		return goErr.Error()
	}
	return err.Error()
}

func toJSON(v any) (template.JS, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", goerr.Wrap(err, "failed to marshal template data")
	}
	return template.JS(raw), nil
}

func percent(f float64) string {
	return fmt.Sprintf("%.2f%%", f*100)
}

func join(v any) string {
	switch x := v.(type) {
	case []types.OSName:
		return types.JoinOSNames(x)
	case []types.ReportType:
		return types.JoinReportTypes(x)
	case types.Versions:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

func contains[T comparable](items []T, v T) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}

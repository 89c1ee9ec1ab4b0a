package http

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/secmon-lab/crashstats/pkg/domain/types"
	"github.com/secmon-lab/crashstats/pkg/usecase"
)

// reportPath builds "<prefix>/products/<product>[/versions/<v1;v2>]"
func reportPath(prefix string, product types.Product, versions types.Versions) string {
	p := prefix + "/products/" + url.PathEscape(product.String())
	if len(versions) == 0 {
		return p
	}

	escaped := make([]string, len(versions))
	for i, v := range versions {
		escaped[i] = url.PathEscape(v.String())
	}
	return p + "/versions/" + strings.Join(escaped, ";")
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, reportPath("", s.reports.DefaultProduct(), nil), http.StatusFound)
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, err := s.reports.Products(ctx, baseDataFrom(ctx), r.URL.Query().Get("duration"))
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "products.html", "products", page)
}

func (s *Server) handleTopCrasher(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	base := baseDataFrom(ctx)

	if len(base.Versions) == 0 {
		version, err := s.reports.LatestFeaturedVersion(base)
		if err != nil {
			s.renderError(w, r, err)
			return
		}
		http.Redirect(w, r, reportPath("/topcrasher", base.Product, types.Versions{version}), http.StatusFound)
		return
	}

	page, err := s.reports.TopCrasher(ctx, base, usecase.TopCrasherInput{
		Days:      urlParam(r, "days"),
		CrashType: urlParam(r, "crash_type"),
		OSName:    urlParam(r, "os_name"),
	})
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "topcrasher.html", "topcrasher", page)
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	page, err := s.reports.Daily(ctx, baseDataFrom(ctx), usecase.DailyInput{
		FormSelection: q.Get("form_selection"),
		Product:       q.Get("p"),
		OSNames:       q["os[]"],
		HangType:      q.Get("hang_type"),
		ReportTypes:   q["report_type[]"],
		Throttle:      q["throttle[]"],
		Versions:      q["v[]"],
		DateStart:     q.Get("date_start"),
		DateEnd:       q.Get("date_end"),
	})
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "daily.html", "daily", page)
}

func (s *Server) handleBuilds(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	base := baseDataFrom(ctx)

	var version types.Version
	if len(base.Versions) > 0 {
		version = base.Versions[0]
	}

	page, err := s.reports.Builds(ctx, base, version)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "builds.html", "builds", page)
}

func (s *Server) handleHangReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	base := baseDataFrom(ctx)
	q := r.URL.Query()

	page, err := s.reports.HangReport(ctx, base, usecase.HangReportInput{
		Page:     q.Get("page"),
		Duration: q.Get("duration"),
	})
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	if page.PastLastPage() {
		target := reportPath("/hangreport", base.Product, base.Versions) + "?" + url.Values{
			"duration": {strconv.Itoa(page.Duration)},
			"page":     {strconv.Itoa(page.Report.TotalPages)},
		}.Encode()
		http.Redirect(w, r, target, http.StatusFound)
		return
	}

	s.render(w, r, http.StatusOK, "hangreport.html", "hangreport", page)
}

func (s *Server) handleTopChangers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	base := baseDataFrom(ctx)
	duration := urlParam(r, "duration")

	// old URLs carried the duration in the query string
	if legacy := r.URL.Query().Get("duration"); legacy != "" && duration == "" {
		target := reportPath("/topchangers", base.Product, base.Versions) + "/duration/" + url.PathEscape(legacy)
		http.Redirect(w, r, target, http.StatusFound)
		return
	}

	page, err := s.reports.TopChangers(ctx, base, duration)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "topchangers.html", "topchangers", page)
}

func (s *Server) handleReportIndex(w http.ResponseWriter, r *http.Request) {
	page, err := s.reports.ReportIndex(r.Context(), urlParam(r, "crash_id"))
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "report_index.html", "report_index", page)
}

func (s *Server) handleReportList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := s.reports.ReportList(r.Context(), usecase.ReportListInput{
		Signature:  q.Get("signature"),
		Version:    q.Get("version"),
		Date:       q.Get("date"),
		RangeValue: q.Get("range_value"),
	})
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "report_list.html", "report_list", page)
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	page, err := s.reports.Query(ctx, baseDataFrom(ctx), usecase.QueryInput{
		Product:   q.Get("product"),
		Versions:  q["version"],
		OSNames:   q["os"],
		DateStart: q.Get("date_start"),
		DateEnd:   q.Get("date_end"),
		Limit:     q.Get("limit"),
	})
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "query.html", "query", page)
}

func (s *Server) handlePlotSignature(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	graph, err := s.reports.PlotSignature(ctx, baseDataFrom(ctx),
		urlParam(r, "start_date"),
		urlParam(r, "end_date"),
		types.Signature(urlParam(r, "*")),
	)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, graph)
}

func (s *Server) handleBugInfo(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	info, err := s.reports.BugInfo(r.Context(), q.Get("bug_ids"), q.Get("include_fields"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, info)
}

func (s *Server) handleSignatureSummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	summary, err := s.reports.SignatureSummary(r.Context(), types.Signature(q.Get("signature")), q.Get("date"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, summary)
}

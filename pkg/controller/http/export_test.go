package http

import "net/http"

// Test-only accessors for unexported helpers
var (
	BaseDataFrom = baseDataFrom
	ReportPath   = reportPath
)

// Render executes the named page template with page as its data
func (s *Server) Render(w http.ResponseWriter, r *http.Request, name string, page any) {
	s.render(w, r, http.StatusOK, name, "", page)
}

package frontend

import (
	"embed"
	"io/fs"
	"net/http"
)

// Templates embeds the server-side page templates
//
//go:embed templates/*.html
var Templates embed.FS

// staticFiles embeds stylesheets and scripts served under /static/
//
//go:embed all:static
var staticFiles embed.FS

// GetStaticFS returns the embedded static assets for HTTP serving
func GetStaticFS() (http.FileSystem, error) {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, err
	}

	if !hasAssets(sub) {
		return nil, &fs.PathError{Op: "stat", Path: "css/crashstats.css", Err: fs.ErrNotExist}
	}

	return http.FS(sub), nil
}

// hasAssets checks for the stylesheet as a marker that assets are present
func hasAssets(fsys fs.FS) bool {
	_, err := fs.Stat(fsys, "css/crashstats.css")
	return err == nil
}

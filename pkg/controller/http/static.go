package http

import (
	"io"
	"net/http"
	"os"
	"path"
	"strings"
)

// StaticHandler serves the embedded stylesheets and scripts
type StaticHandler struct {
	fileSystem http.FileSystem
}

// NewStaticHandler creates a new static asset handler
func NewStaticHandler(filesystem http.FileSystem) *StaticHandler {
	return &StaticHandler{fileSystem: filesystem}
}

// ServeHTTP implements the http.Handler interface. Directories and missing
// files are answered with 404.
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Clean the path to prevent directory traversal attacks.
	cleanPath := path.Clean("/" + strings.TrimPrefix(r.URL.Path, "/"))

	file, err := h.fileSystem.Open(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if stat.IsDir() {
		http.NotFound(w, r)
		return
	}

	h.serveFile(w, file, cleanPath)
}

// serveFile serves a specific file with appropriate headers
func (h *StaticHandler) serveFile(w http.ResponseWriter, file http.File, filePath string) {
	if contentType := getContentType(filePath); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")

	if _, err := io.Copy(w, file); err != nil {
		http.Error(w, "Failed to serve file", http.StatusInternalServerError)
		return
	}
}

var mimeTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
	".json": "application/json; charset=utf-8",
	".png":  "image/png",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
}

// getContentType returns the content type for common file extensions
func getContentType(filePath string) string {
	ext := path.Ext(filePath)
	return mimeTypes[ext]
}

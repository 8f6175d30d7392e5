// Package web serves the single-page frontend: static assets when they exist,
// the entry document for every other path.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/sbilibin2017/agnostic-bookmarks/internal/logger"
)

const indexFile = "index.html"

//go:embed dist
var dist embed.FS

// FS returns the frontend files: staticDir when set, the embedded entry page otherwise.
func FS(staticDir string) (fs.FS, error) {
	if staticDir != "" {
		if _, err := os.Stat(staticDir); err != nil {
			return nil, err
		}
		return os.DirFS(staticDir), nil
	}
	return fs.Sub(dist, "dist")
}

// Handler serves files from fsys and answers any other path with index.html
// so that client-side routes resolve.
func Handler(fsys fs.FS) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")

		if name != "" && name != indexFile {
			if info, err := fs.Stat(fsys, name); err == nil && !info.IsDir() {
				http.ServeFileFS(w, r, fsys, name)
				return
			}
		}

		serveIndex(w, fsys)
	})
}

func serveIndex(w http.ResponseWriter, fsys fs.FS) {
	body, err := fs.ReadFile(fsys, indexFile)
	if err != nil {
		logger.Log.Errorw("failed to read entry document", "error", err)
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

package server

import (
	"net/http"
	"os"
	"path/filepath"
)

func serveScript(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(body))
}

func (s *site) sharedScriptHandler(w http.ResponseWriter, _ *http.Request) {
	serveScript(w, uiSharedJS)
}

func (s *site) pagesScriptHandler(w http.ResponseWriter, _ *http.Request) {
	serveScript(w, uiPagesJS)
}

// resolveAssetPath finds a bundled file next to the executable or, in
// development, in the working directory or one of its parents.
func resolveAssetPath(name string) (string, error) {
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for i := 0; i < 6; i++ {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func servePNGFile(w http.ResponseWriter, r *http.Request, name string) {
	path, err := resolveAssetPath(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	http.ServeFile(w, r, path)
}

func (s *site) logoHandler(w http.ResponseWriter, r *http.Request) {
	servePNGFile(w, r, "bantu-logo.png")
}

func (s *site) faviconHandler(w http.ResponseWriter, r *http.Request) {
	servePNGFile(w, r, "bantu-favicon.png")
}

package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// buildRouter registers the locally served pages and APIs. Everything
// else, including POSTs to page paths, falls through to the allowlisted
// upstream proxy.
func buildRouter(s *site) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(requestLogger)

	// Pages/static
	r.Get("/", s.feedPageHandler)
	r.Get("/post/new", s.composePageHandler)
	r.Get("/profile/update", s.profilePageHandler)
	r.Get("/ui/shared.js", s.sharedScriptHandler)
	r.Get("/ui/pages.js", s.pagesScriptHandler)
	r.Get("/bantu-logo.png", s.logoHandler)
	r.Get("/bantu-favicon.png", s.faviconHandler)
	r.Get("/favicon.ico", s.faviconHandler)

	// Health/info
	r.Get("/healthz", healthzHandler)
	r.Get("/api/v1/server-info", s.serverInfoHandler)

	// Update APIs
	r.Post("/api/v1/update/check", s.updateCheckHandler)
	r.Get("/api/v1/update/status", s.updateStatusHandler)

	// The upstream owns every path not claimed above. MethodNotAllowed
	// is routed too so a POST to a page path (form submits) proxies
	// instead of bouncing with a 405.
	r.NotFound(s.proxy.ServeHTTP)
	r.MethodNotAllowed(s.proxy.ServeHTTP)

	return r
}

package upstream

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Proxy forwards allowlisted paths to the backend. Everything the pages do
// not own (feed/like/comment APIs, search, uploads, auth pages, form POSTs)
// goes through here; paths outside the allowlist never leave this process.
type Proxy struct {
	allow []string
	rp    *httputil.ReverseProxy
}

func NewProxy(base *url.URL, allow []string) *Proxy {
	rp := httputil.NewSingleHostReverseProxy(base)
	director := rp.Director
	rp.Director = func(req *http.Request) {
		inboundHost := req.Host
		director(req)
		req.Host = base.Host
		if inboundHost != "" {
			req.Header.Set("X-Forwarded-Host", inboundHost)
		}
	}
	rp.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		slog.Error("upstream proxy request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}

	p := &Proxy{rp: rp}
	for _, pattern := range allow {
		if trimmed := strings.TrimSpace(pattern); trimmed != "" {
			p.allow = append(p.allow, trimmed)
		}
	}
	return p
}

func (p *Proxy) Allowed(path string) bool {
	for _, pattern := range p.allow {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !p.Allowed(r.URL.Path) {
		http.NotFound(w, r)
		return
	}
	p.rp.ServeHTTP(w, r)
}

package server

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mwasi01/bantuafrica/internal/server/httpx"
	"github.com/mwasi01/bantuafrica/internal/version"
)

const probeCacheTTL = 15 * time.Second

type serverInfoResponse struct {
	Name        string `json:"name"`
	APIVersion  int    `json:"api_version"`
	Version     string `json:"version"`
	Hostname    string `json:"hostname,omitempty"`
	UpstreamURL string `json:"upstream_url"`
	UpstreamOK  bool   `json:"upstream_ok"`
	StartedUTC  string `json:"started_utc"`
}

func healthzHandler(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *site) serverInfoHandler(w http.ResponseWriter, r *http.Request) {
	host, _ := os.Hostname()
	httpx.WriteJSON(w, http.StatusOK, serverInfoResponse{
		Name:        "bantu",
		APIVersion:  1,
		Version:     version.Current(),
		Hostname:    strings.TrimSpace(host),
		UpstreamURL: s.cfg.Upstream.URL,
		UpstreamOK:  s.upstreamOK(r),
		StartedUTC:  s.startedUTC.Format(time.RFC3339),
	})
}

// upstreamOK probes the backend at most once per probeCacheTTL; the
// info endpoint is polled by the GUI and must stay cheap.
func (s *site) upstreamOK(r *http.Request) bool {
	s.probeMu.Lock()
	defer s.probeMu.Unlock()

	if time.Since(s.probeChecked) < probeCacheTTL {
		return s.probeOK
	}
	s.probeOK = s.upstream.Probe(r.Context()) == nil
	s.probeChecked = time.Now()
	return s.probeOK
}

package server

import (
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"

	"github.com/mwasi01/bantuafrica/internal/server/httpx"
	"github.com/mwasi01/bantuafrica/internal/server/update"
	"github.com/mwasi01/bantuafrica/internal/version"
)

// updateState is both the check response and the cached status. The
// server only ever reports; installing a new build is an operator job.
type updateState struct {
	LastCheckedUTC  string `json:"last_checked_utc,omitempty"`
	CurrentVersion  string `json:"current_version"`
	LatestVersion   string `json:"latest_version,omitempty"`
	UpdateAvailable bool   `json:"update_available"`
	ReleaseURL      string `json:"release_url,omitempty"`
	Message         string `json:"message,omitempty"`
}

func (s *site) updateCheckHandler(w http.ResponseWriter, r *http.Request) {
	st := updateState{
		LastCheckedUTC: time.Now().UTC().Format(time.RFC3339Nano),
		CurrentVersion: version.Current(),
	}

	info, err := update.FetchLatestInfo(r.Context(), update.FetchInfoOptions{
		APIBase:   os.Getenv("BANTU_GH_API_BASE"),
		Repo:      envOrDefault("BANTU_UPDATE_REPO", s.cfg.Update.Repo),
		AuthToken: os.Getenv("BANTU_GH_TOKEN"),
	})
	if err != nil {
		st.Message = err.Error()
	} else {
		st.LatestVersion = info.TagName
		st.ReleaseURL = info.HTMLURL
		st.UpdateAvailable = isVersionNewer(info.TagName, st.CurrentVersion)
		if !st.UpdateAvailable {
			st.Message = "already up to date"
		}
	}

	s.updateMu.Lock()
	s.update = st
	s.updateMu.Unlock()

	httpx.WriteJSON(w, http.StatusOK, st)
}

func (s *site) updateStatusHandler(w http.ResponseWriter, _ *http.Request) {
	s.updateMu.Lock()
	st := s.update
	s.updateMu.Unlock()

	if st.CurrentVersion == "" {
		st.CurrentVersion = version.Current()
		st.Message = "no check performed yet"
	}
	httpx.WriteJSON(w, http.StatusOK, st)
}

// isVersionNewer compares release tags as semver, tolerating a missing
// v prefix. Anything unparseable (like "dev") never triggers an update.
func isVersionNewer(candidate, current string) bool {
	c := normalizeSemver(candidate)
	cur := normalizeSemver(current)
	if !semver.IsValid(c) || !semver.IsValid(cur) {
		return false
	}
	return semver.Compare(c, cur) > 0
}

func normalizeSemver(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

// Package update asks GitHub for the newest published release so the
// server can report whether a newer build exists. It never downloads
// or installs anything.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type LatestInfo struct {
	TagName     string
	HTMLURL     string
	PublishedAt string
}

type FetchInfoOptions struct {
	APIBase    string
	Repo       string
	AuthToken  string
	HTTPClient *http.Client
}

type githubLatestRelease struct {
	TagName     string `json:"tag_name"`
	HTMLURL     string `json:"html_url"`
	PublishedAt string `json:"published_at"`
}

func FetchLatestInfo(ctx context.Context, opts FetchInfoOptions) (LatestInfo, error) {
	apiBase := strings.TrimRight(strings.TrimSpace(opts.APIBase), "/")
	if apiBase == "" {
		apiBase = "https://api.github.com"
	}
	repo := strings.TrimSpace(opts.Repo)
	if repo == "" {
		return LatestInfo{}, fmt.Errorf("release repo is not configured")
	}

	url := apiBase + "/repos/" + repo + "/releases/latest"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return LatestInfo{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "bantu-update-check")
	applyGitHubAuthHeader(req, opts.AuthToken)

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return LatestInfo{}, fmt.Errorf("request latest release: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return LatestInfo{}, fmt.Errorf("latest release query failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var rel githubLatestRelease
	if err := json.Unmarshal(body, &rel); err != nil {
		return LatestInfo{}, fmt.Errorf("decode latest release: %w", err)
	}
	if strings.TrimSpace(rel.TagName) == "" {
		return LatestInfo{}, fmt.Errorf("latest release has no tag name")
	}

	return LatestInfo{
		TagName:     rel.TagName,
		HTMLURL:     rel.HTMLURL,
		PublishedAt: rel.PublishedAt,
	}, nil
}

func applyGitHubAuthHeader(req *http.Request, token string) {
	if req == nil {
		return
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

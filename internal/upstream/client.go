// Package upstream talks to the opaque Bantu backend: a JSON client for the
// feed API and an allowlisted reverse proxy for everything the pages hand
// through (auth, forms, uploads, search).
package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mwasi01/bantuafrica/internal/feed"
)

const maxErrorBodyBytes = 4 * 1024

type Client struct {
	baseURL *url.URL
	httpc   *http.Client
}

func New(rawURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("parse upstream url %q: %w", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("upstream url %q must be absolute", rawURL)
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: u,
		httpc:   &http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// FetchFeedPage GETs /api/feed?page=N. The inbound Cookie header is forwarded
// so the upstream session decides per-post liked flags; we never inspect it.
func (c *Client) FetchFeedPage(ctx context.Context, page int, fwd http.Header) (feed.Page, error) {
	if page < 1 {
		page = 1
	}
	u := c.endpoint("/api/feed")
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return feed.Page{}, fmt.Errorf("create feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if cookie := fwd.Get("Cookie"); cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return feed.Page{}, fmt.Errorf("fetch feed page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return feed.Page{}, fmt.Errorf("fetch feed page %d: status=%d body=%s",
			page, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return feed.DecodePage(resp.Body)
}

// Probe checks upstream reachability with a cheap feed request.
func (c *Client) Probe(ctx context.Context) error {
	u := c.endpoint("/api/feed")
	q := u.Query()
	q.Set("page", "1")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("create probe request: %w", err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("probe upstream: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodyBytes))

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("probe upstream: status=%d", resp.StatusCode)
	}
	return nil
}

func (c *Client) endpoint(path string) *url.URL {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	return &u
}

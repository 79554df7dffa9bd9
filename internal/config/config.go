package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

type File struct {
	Version  int      `yaml:"version" json:"version"`
	Site     Site     `yaml:"site" json:"site"`
	Server   Server   `yaml:"server" json:"server"`
	Upstream Upstream `yaml:"upstream" json:"upstream"`
	Behavior Behavior `yaml:"behavior" json:"behavior"`
	Update   Update   `yaml:"update" json:"update"`
	MDNS     MDNS     `yaml:"mdns" json:"mdns"`
}

type Site struct {
	Name    string `yaml:"name" json:"name"`
	Tagline string `yaml:"tagline,omitempty" json:"tagline,omitempty"`
}

type Server struct {
	Addr string `yaml:"addr" json:"addr"`
}

type Upstream struct {
	URL            string   `yaml:"url" json:"url"`
	TimeoutSeconds int      `yaml:"timeout_seconds" json:"timeout_seconds"`
	Allow          []string `yaml:"allow" json:"allow"`
}

// Behavior carries the page-script tuning knobs. They are injected into the
// inline boot call on every served page, so the scripts and the config can
// never disagree.
type Behavior struct {
	AlertDismissMs    int `yaml:"alert_dismiss_ms" json:"alert_dismiss_ms"`
	ScrollThresholdPx int `yaml:"scroll_threshold_px" json:"scroll_threshold_px"`
	SearchMinChars    int `yaml:"search_min_chars" json:"search_min_chars"`
	SearchDebounceMs  int `yaml:"search_debounce_ms" json:"search_debounce_ms"`
}

type Update struct {
	Repo string `yaml:"repo,omitempty" json:"repo,omitempty"`
}

type MDNS struct {
	Enable   bool   `yaml:"enable" json:"enable"`
	Instance string `yaml:"instance,omitempty" json:"instance,omitempty"`
}

func Default() File {
	return File{
		Version: 1,
		Site: Site{
			Name:    "Bantu",
			Tagline: "Connecting Africa, One Story at a Time",
		},
		Server: Server{Addr: ":8109"},
		Upstream: Upstream{
			URL:            "http://127.0.0.1:5000",
			TimeoutSeconds: 15,
			Allow: []string{
				"/api/feed",
				"/api/post/**",
				"/search",
				"/static/**",
				"/login",
				"/logout",
				"/register",
				"/post/**",
				"/profile/**",
				"/follow/**",
				"/unfollow/**",
			},
		},
		Behavior: Behavior{
			AlertDismissMs:    5000,
			ScrollThresholdPx: 500,
			SearchMinChars:    2,
			SearchDebounceMs:  500,
		},
		Update: Update{Repo: "mwasi01/bantuafrica"},
		MDNS:   MDNS{Enable: true},
	}
}

// Load reads the config at path. A missing file is not an error: local runs
// work on Default().
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return File{}, fmt.Errorf("read config file %q: %w", path, err)
	}

	return Parse(data, path)
}

// Parse decodes data over Default(), so omitted fields keep their defaults
// while unknown fields are rejected.
func Parse(data []byte, source string) (File, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse YAML in %q: %w", source, err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return cfg, fmt.Errorf("invalid config in %q: %s", source, strings.Join(errs, "; "))
	}
	return cfg, nil
}

func (cfg File) Validate() []string {
	var errs []string

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported config version %d", cfg.Version))
	}
	if strings.TrimSpace(cfg.Site.Name) == "" {
		errs = append(errs, "site.name is required")
	}
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		errs = append(errs, "server.addr is required")
	}

	rawURL := strings.TrimSpace(cfg.Upstream.URL)
	if rawURL == "" {
		errs = append(errs, "upstream.url is required")
	} else {
		u, err := url.Parse(rawURL)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("upstream.url invalid: %v", err))
		case u.Scheme != "http" && u.Scheme != "https":
			errs = append(errs, fmt.Sprintf("upstream.url must be http or https, got %q", u.Scheme))
		case u.Host == "":
			errs = append(errs, "upstream.url must include a host")
		}
	}
	if cfg.Upstream.TimeoutSeconds < 0 {
		errs = append(errs, "upstream.timeout_seconds must be >= 0")
	}
	for i, pattern := range cfg.Upstream.Allow {
		trimmed := strings.TrimSpace(pattern)
		if trimmed == "" {
			errs = append(errs, fmt.Sprintf("upstream.allow[%d] must not be empty", i))
			continue
		}
		if !strings.HasPrefix(trimmed, "/") {
			errs = append(errs, fmt.Sprintf("upstream.allow[%d] must start with /, got %q", i, trimmed))
		}
		if !doublestar.ValidatePattern(trimmed) {
			errs = append(errs, fmt.Sprintf("upstream.allow[%d] invalid pattern %q", i, trimmed))
		}
	}

	if cfg.Behavior.AlertDismissMs <= 0 {
		errs = append(errs, "behavior.alert_dismiss_ms must be > 0")
	}
	if cfg.Behavior.ScrollThresholdPx <= 0 {
		errs = append(errs, "behavior.scroll_threshold_px must be > 0")
	}
	if cfg.Behavior.SearchMinChars <= 0 {
		errs = append(errs, "behavior.search_min_chars must be > 0")
	}
	if cfg.Behavior.SearchDebounceMs <= 0 {
		errs = append(errs, "behavior.search_debounce_ms must be > 0")
	}

	if repo := strings.TrimSpace(cfg.Update.Repo); repo != "" {
		if strings.Count(repo, "/") != 1 || strings.HasPrefix(repo, "/") || strings.HasSuffix(repo, "/") {
			errs = append(errs, fmt.Sprintf("update.repo must look like owner/name, got %q", repo))
		}
	}

	return errs
}

func (cfg File) UpstreamTimeout() time.Duration {
	if cfg.Upstream.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second
}

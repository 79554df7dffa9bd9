// Package server serves the Bantu pages and scripts, renders the first
// feed page, and proxies everything else the pages need to the
// upstream backend.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/mwasi01/bantuafrica/internal/config"
	"github.com/mwasi01/bantuafrica/internal/upstream"
)

// site holds what every handler needs: the effective config, the feed
// client, and the allowlisted proxy.
type site struct {
	cfg      config.File
	upstream *upstream.Client
	proxy    *upstream.Proxy

	startedUTC time.Time

	probeMu      sync.Mutex
	probeOK      bool
	probeChecked time.Time

	updateMu sync.Mutex
	update   updateState
}

func newSite(cfg config.File) (*site, error) {
	client, err := upstream.New(cfg.Upstream.URL, cfg.UpstreamTimeout())
	if err != nil {
		return nil, fmt.Errorf("configure upstream client: %w", err)
	}
	return &site{
		cfg:        cfg,
		upstream:   client,
		proxy:      upstream.NewProxy(client.BaseURL(), cfg.Upstream.Allow),
		startedUTC: time.Now().UTC(),
	}, nil
}

// Run serves until ctx is cancelled. Environment variables override the
// listen address and upstream URL so a config file stays optional.
func Run(ctx context.Context, cfg config.File) error {
	cfg.Server.Addr = envOrDefault("BANTU_ADDR", cfg.Server.Addr)
	cfg.Upstream.URL = envOrDefault("BANTU_UPSTREAM_URL", cfg.Upstream.URL)

	s, err := newSite(cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           buildRouter(s),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopMDNS := s.startMDNSAdvertiser(cfg.Server.Addr)
	defer stopMDNS()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("bantu server started", "addr", cfg.Server.Addr, "upstream", cfg.Upstream.URL)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
		slog.Info("bantu server stopped")
		return nil
	case err := <-errCh:
		if err != nil {
			return err
		}
		slog.Info("bantu server stopped")
		return nil
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

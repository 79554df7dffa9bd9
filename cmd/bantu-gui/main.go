// bantu-gui is a small desktop monitor for a running bantu server. It
// polls the server-info endpoint and can discover servers over mDNS.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/hashicorp/mdns"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

type connectionPhase string

const (
	phaseDisconnected connectionPhase = "disconnected"
	phaseConnecting   connectionPhase = "connecting"
	phaseConnected    connectionPhase = "connected"
	phaseReconnecting connectionPhase = "reconnecting"
)

const (
	pollInterval   = 2 * time.Second
	requestTimeout = 6 * time.Second
	mdnsService    = "_bantu._tcp"
)

type serverInfo struct {
	Name        string `json:"name"`
	APIVersion  int    `json:"api_version"`
	Version     string `json:"version"`
	Hostname    string `json:"hostname"`
	UpstreamURL string `json:"upstream_url"`
	UpstreamOK  bool   `json:"upstream_ok"`
	StartedUTC  string `json:"started_utc"`
}

type watchUpdate struct {
	phase          connectionPhase
	statusText     string
	errText        string
	info           *serverInfo
	discoveredAddr string
}

type guiApp struct {
	theme *material.Theme
	ops   op.Ops

	addrEditor  widget.Editor
	connectBtn  widget.Clickable
	disconnBtn  widget.Clickable
	discoverBtn widget.Clickable

	window *app.Window

	watchMu     sync.Mutex
	watchCancel context.CancelFunc
	watching    bool

	updates chan watchUpdate

	phase       connectionPhase
	statusText  string
	lastError   string
	info        serverInfo
	lastSeenUTC string
}

func main() {
	go func() {
		w := new(app.Window)
		w.Option(
			app.Title("bantu-gui"),
			app.Size(unit.Dp(760), unit.Dp(520)),
		)
		if err := run(w); err != nil {
			log.Printf("bantu-gui: %v", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

func run(w *app.Window) error {
	model := &guiApp{
		theme:      material.NewTheme(),
		updates:    make(chan watchUpdate, 256),
		window:     w,
		phase:      phaseDisconnected,
		statusText: "Disconnected",
	}
	model.addrEditor.SingleLine = true
	model.addrEditor.Submit = true
	model.addrEditor.SetText(defaultServerAddr())
	model.startWatch()

	for {
		e := w.Event()
		switch e := e.(type) {
		case app.DestroyEvent:
			model.stopWatch("Disconnected")
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&model.ops, e)
			model.processUpdates()
			model.processActions(gtx)
			model.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func defaultServerAddr() string {
	if v := strings.TrimSpace(os.Getenv("BANTU_GUI_SERVER_ADDR")); v != "" {
		return normalizeServerAddr(v)
	}
	return "127.0.0.1:8109"
}

func normalizeServerAddr(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err == nil && strings.TrimSpace(u.Host) != "" {
			return strings.TrimSpace(u.Host)
		}
	}
	return raw
}

func (m *guiApp) processActions(gtx C) {
	for m.connectBtn.Clicked(gtx) {
		m.startWatch()
	}
	for m.disconnBtn.Clicked(gtx) {
		m.stopWatch("Disconnected")
	}
	for m.discoverBtn.Clicked(gtx) {
		m.discover()
	}
}

func (m *guiApp) startWatch() {
	addr := normalizeServerAddr(m.addrEditor.Text())
	if addr == "" {
		m.phase = phaseDisconnected
		m.statusText = "Enter a server address"
		m.lastError = "empty address"
		return
	}
	m.addrEditor.SetText(addr)

	m.watchMu.Lock()
	if m.watching {
		m.watchMu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.watchCancel = cancel
	m.watching = true
	m.watchMu.Unlock()

	m.phase = phaseConnecting
	m.statusText = "Connecting"
	m.lastError = ""
	if m.window != nil {
		m.window.Invalidate()
	}

	go m.watchLoop(ctx, addr)
}

func (m *guiApp) stopWatch(reason string) {
	m.watchMu.Lock()
	cancel := m.watchCancel
	m.watchCancel = nil
	m.watching = false
	m.watchMu.Unlock()
	if cancel != nil {
		cancel()
	}
	if strings.TrimSpace(reason) != "" {
		m.phase = phaseDisconnected
		m.statusText = reason
	}
	if m.window != nil {
		m.window.Invalidate()
	}
}

// watchLoop polls server-info until ctx is cancelled, backing off while
// the server is unreachable and resetting once a poll succeeds.
func (m *guiApp) watchLoop(ctx context.Context, addr string) {
	defer func() {
		m.enqueueUpdate(watchUpdate{phase: phaseDisconnected, statusText: "Disconnected"})
		m.watchMu.Lock()
		m.watchCancel = nil
		m.watching = false
		m.watchMu.Unlock()
	}()

	client := &http.Client{Timeout: requestTimeout}
	backoff := time.Second
	connected := false

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		info, err := fetchServerInfo(ctx, client, addr)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			phase := phaseConnecting
			if connected {
				phase = phaseReconnecting
			}
			connected = false
			m.enqueueUpdate(watchUpdate{phase: phase, statusText: "Connection failed", errText: err.Error()})
			if !sleepWithContext(ctx, backoff) {
				return
			}
			if backoff < 10*time.Second {
				backoff *= 2
			}
			continue
		}

		if !connected {
			m.enqueueUpdate(watchUpdate{phase: phaseConnected, statusText: fmt.Sprintf("Connected to %s", addr)})
			connected = true
		}
		backoff = time.Second
		m.enqueueUpdate(watchUpdate{info: info})

		if !sleepWithContext(ctx, pollInterval) {
			return
		}
	}
}

func fetchServerInfo(ctx context.Context, client *http.Client, addr string) (*serverInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+addr+"/api/v1/server-info", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("server-info: status=%d", resp.StatusCode)
	}
	var info serverInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode server-info: %w", err)
	}
	return &info, nil
}

// discover runs a short mDNS query and drops the first hit into the
// address editor. Connecting stays a user action.
func (m *guiApp) discover() {
	m.enqueueUpdate(watchUpdate{statusText: "Searching for bantu servers"})
	go func() {
		entries := make(chan *mdns.ServiceEntry, 8)
		var found *mdns.ServiceEntry
		done := make(chan struct{})
		go func() {
			for e := range entries {
				if found == nil {
					found = e
				}
			}
			close(done)
		}()

		params := mdns.DefaultParams(mdnsService)
		params.Entries = entries
		params.Timeout = 3 * time.Second
		params.DisableIPv6 = true
		err := mdns.Query(params)
		close(entries)
		<-done

		if err != nil {
			m.enqueueUpdate(watchUpdate{statusText: "Discovery failed", errText: err.Error()})
			return
		}
		if found == nil {
			m.enqueueUpdate(watchUpdate{statusText: "No bantu server found"})
			return
		}
		m.enqueueUpdate(watchUpdate{
			statusText:     "Discovered " + found.Name,
			discoveredAddr: net.JoinHostPort(entryHost(found), strconv.Itoa(found.Port)),
		})
	}()
}

func entryHost(e *mdns.ServiceEntry) string {
	if e.AddrV4 != nil {
		return e.AddrV4.String()
	}
	if e.AddrV6 != nil {
		return e.AddrV6.String()
	}
	return strings.TrimSuffix(e.Host, ".")
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (m *guiApp) enqueueUpdate(u watchUpdate) {
	select {
	case m.updates <- u:
	default:
		select {
		case <-m.updates:
		default:
		}
		select {
		case m.updates <- u:
		default:
		}
	}
	if m.window != nil {
		m.window.Invalidate()
	}
}

func (m *guiApp) processUpdates() {
	for {
		select {
		case u := <-m.updates:
			if u.phase != "" {
				m.phase = u.phase
			}
			if strings.TrimSpace(u.statusText) != "" {
				m.statusText = u.statusText
			}
			if strings.TrimSpace(u.errText) != "" {
				m.lastError = u.errText
			}
			if u.info != nil {
				m.info = *u.info
				m.lastSeenUTC = time.Now().UTC().Format(time.RFC3339)
			}
			if u.discoveredAddr != "" {
				m.addrEditor.SetText(u.discoveredAddr)
			}
		default:
			return
		}
	}
}

func (m *guiApp) layout(gtx C) D {
	in := layout.UniformInset(unit.Dp(16))
	return in.Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				label := material.H5(m.theme, "bantu-gui")
				return label.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx C) D {
				lbl := material.Body1(m.theme, "Monitors a bantu front-end server over its info API")
				return lbl.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(14)}.Layout),
			layout.Rigid(m.layoutConnectionRow),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(m.layoutStatusPanel),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(m.layoutInfoPanel),
		)
	})
}

func (m *guiApp) layoutConnectionRow(gtx C) D {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, func(gtx C) D {
			ed := material.Editor(m.theme, &m.addrEditor, "127.0.0.1:8109")
			return ed.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx C) D {
			btn := material.Button(m.theme, &m.connectBtn, "Connect")
			return btn.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx C) D {
			btn := material.Button(m.theme, &m.disconnBtn, "Disconnect")
			return btn.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx C) D {
			btn := material.Button(m.theme, &m.discoverBtn, "Discover")
			return btn.Layout(gtx)
		}),
	)
}

func (m *guiApp) layoutStatusPanel(gtx C) D {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			l := material.Body1(m.theme, "Status: "+string(m.phase)+" - "+m.statusText)
			return l.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
		layout.Rigid(func(gtx C) D {
			err := strings.TrimSpace(m.lastError)
			if err == "" {
				err = "none"
			}
			l := material.Body2(m.theme, "Last error: "+err)
			return l.Layout(gtx)
		}),
	)
}

func (m *guiApp) layoutInfoPanel(gtx C) D {
	info := m.info
	name := strings.TrimSpace(info.Name)
	if name == "" {
		name = "(unknown)"
	}
	upstream := "unreachable"
	if info.UpstreamOK {
		upstream = "ok"
	}
	seen := m.lastSeenUTC
	if seen == "" {
		seen = "(never)"
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			l := material.H6(m.theme, "Latest Server Info")
			return l.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
		layout.Rigid(func(gtx C) D {
			l := material.Body2(m.theme, fmt.Sprintf("server=%s version=%s host=%s", name, info.Version, info.Hostname))
			return l.Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			l := material.Body2(m.theme, fmt.Sprintf("upstream=%s url=%s", upstream, info.UpstreamURL))
			return l.Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			l := material.Body2(m.theme, fmt.Sprintf("started=%s last_poll=%s", info.StartedUTC, seen))
			return l.Layout(gtx)
		}),
	)
}

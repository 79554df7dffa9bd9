package server

import (
	"log/slog"
	"net"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/mdns"

	"github.com/mwasi01/bantuafrica/internal/version"
)

const mdnsService = "_bantu._tcp"

// startMDNSAdvertiser announces the server on the local network so the
// desktop app can find it without configuration. The returned closure
// stops the responder; it is a no-op when advertising never started.
func (s *site) startMDNSAdvertiser(serverAddr string) func() {
	enabled := s.cfg.MDNS.Enable
	switch strings.TrimSpace(os.Getenv("BANTU_MDNS_ENABLE")) {
	case "true":
		enabled = true
	case "false":
		enabled = false
	}
	if !enabled {
		return func() {}
	}

	port := listenPortFromAddr(serverAddr)
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return func() {}
	}

	host, _ := os.Hostname()
	if strings.TrimSpace(host) == "" {
		host = "bantu"
	}
	instance := strings.TrimSpace(envOrDefault("BANTU_MDNS_INSTANCE", s.cfg.MDNS.Instance))
	if instance == "" {
		instance = "bantu-" + host
	}

	meta := []string{
		"name=bantu",
		"api_version=1",
		"version=" + version.Current(),
	}
	ips := discoverAdvertiseIPs()
	service, err := mdns.NewMDNSService(instance, mdnsService, "", "", portNum, ips, meta)
	if err != nil {
		slog.Error("mdns advertise service setup failed", "error", err)
		return func() {}
	}
	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		slog.Error("mdns advertise start failed", "error", err)
		return func() {}
	}
	slog.Info("mdns advertising enabled", "service", mdnsService, "instance", instance, "port", port)

	return func() {
		server.Shutdown()
	}
}

func discoverAdvertiseIPs() []net.IP {
	ifAddrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil
	}
	return filterAdvertiseIPs(ifAddrs)
}

// filterAdvertiseIPs keeps the addresses worth announcing: no loopback,
// no link-local, no duplicates, IPv4 first.
func filterAdvertiseIPs(addrs []net.Addr) []net.IP {
	seen := map[string]struct{}{}
	out := make([]net.IP, 0, len(addrs))
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet == nil || ipNet.IP == nil {
			continue
		}
		ip := ipNet.IP
		if ip.IsLoopback() || ip.IsUnspecified() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
			continue
		}
		normalized := ip.To16()
		if normalized == nil {
			continue
		}
		key := normalized.String()
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, normalized)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Slice(out, func(i, j int) bool {
		vi, vj := out[i].To4() != nil, out[j].To4() != nil
		if vi != vj {
			return vi
		}
		return out[i].String() < out[j].String()
	})
	return out
}

func listenPortFromAddr(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "8109"
	}
	if strings.HasPrefix(addr, ":") {
		return strings.TrimPrefix(addr, ":")
	}
	if strings.Count(addr, ":") == 0 {
		return addr
	}
	_, p, err := net.SplitHostPort(addr)
	if err != nil {
		return ""
	}
	return p
}

package server

import (
	"net"
	"testing"
)

func mustCIDR(t *testing.T, s string) *net.IPNet {
	t.Helper()
	ip, ipNet, err := net.ParseCIDR(s)
	if err != nil {
		t.Fatalf("parse CIDR %q: %v", s, err)
	}
	ipNet.IP = ip
	return ipNet
}

func TestFilterAdvertiseIPs(t *testing.T) {
	addrs := []net.Addr{
		mustCIDR(t, "127.0.0.1/8"),        // loopback
		mustCIDR(t, "169.254.10.5/16"),    // link-local v4
		mustCIDR(t, "fe80::1/64"),         // link-local v6
		mustCIDR(t, "::1/128"),            // loopback v6
		mustCIDR(t, "192.168.1.10/24"),    // keep
		mustCIDR(t, "192.168.1.10/24"),    // duplicate
		mustCIDR(t, "2001:db8::5/64"),     // keep, sorts after v4
		&net.TCPAddr{IP: net.IPv4(8, 8, 8, 8), Port: 53}, // not an IPNet
	}

	got := filterAdvertiseIPs(addrs)
	if len(got) != 2 {
		t.Fatalf("expected 2 advertised IPs, got %v", got)
	}
	if got[0].String() != "192.168.1.10" {
		t.Fatalf("IPv4 must sort first, got %v", got)
	}
	if got[1].String() != "2001:db8::5" {
		t.Fatalf("unexpected second IP: %v", got)
	}
}

func TestFilterAdvertiseIPsEmpty(t *testing.T) {
	if got := filterAdvertiseIPs(nil); got != nil {
		t.Fatalf("expected nil for no addresses, got %v", got)
	}
	onlyLoopback := []net.Addr{mustCIDR(t, "127.0.0.1/8")}
	if got := filterAdvertiseIPs(onlyLoopback); got != nil {
		t.Fatalf("expected nil when everything is filtered, got %v", got)
	}
}

func TestListenPortFromAddr(t *testing.T) {
	cases := []struct {
		addr string
		want string
	}{
		{"", "8109"},
		{":8109", "8109"},
		{"9000", "9000"},
		{"127.0.0.1:9000", "9000"},
		{"[::1]:9000", "9000"},
		{"  :7000  ", "7000"},
	}
	for _, tc := range cases {
		if got := listenPortFromAddr(tc.addr); got != tc.want {
			t.Fatalf("listenPortFromAddr(%q) = %q, want %q", tc.addr, got, tc.want)
		}
	}
}

func TestMDNSAdvertiserDisabled(t *testing.T) {
	t.Setenv("BANTU_MDNS_ENABLE", "false")

	stub := &feedStub{body: emptyFeedJSON}
	_, s := newTestFrontend(t, stub)

	stop := s.startMDNSAdvertiser(":8109")
	stop() // must be a safe no-op closure
}

package version

import "testing"

func TestCurrentVersion(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = " v0.3.1 "
	if got := Current(); got != "v0.3.1" {
		t.Fatalf("expected trimmed version, got %q", got)
	}

	Version = "   "
	if got := Current(); got != "dev" {
		t.Fatalf("expected dev fallback, got %q", got)
	}
}

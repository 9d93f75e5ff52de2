package buildinfo

import (
	"strings"
	"testing"
)

func TestShortFallbacks(t *testing.T) {
	saveV, saveC := Version, Commit
	t.Cleanup(func() { Version, Commit = saveV, saveC })

	Version, Commit = "dev", "unknown"
	if got := Short(); got != "dev" {
		t.Fatalf("expected dev, got %q", got)
	}

	Commit = "abc123"
	if got := Short(); got != "abc123" {
		t.Fatalf("expected commit, got %q", got)
	}

	Version = "v1.0.0"
	if got := Short(); got != "v1.0.0" {
		t.Fatalf("expected version, got %q", got)
	}
	if got := Long(); !strings.HasPrefix(got, "quatcalc v1.0.0 (commit abc123") {
		t.Fatalf("unexpected long form %q", got)
	}
}

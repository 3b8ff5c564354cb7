package settings

import (
	"path/filepath"
	"testing"
)

// TestGetFallback verifies that an unset key answers with the caller's
// fallback.
func TestGetFallback(t *testing.T) {
	f, err := Open(filepath.Join(t.TempDir(), "settings.toml"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if got := f.Get("propertiesTab", "call"); got != "call" {
		t.Errorf("expected fallback 'call', got %q", got)
	}
}

// TestSetPersistsAcrossOpens verifies the write-through behavior: a
// value set in one session is visible after reopening the file.
func TestSetPersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	f.Set("propertiesTab", "network")
	f.Set("propertiesSidebarLocation", "right")

	g, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if got := g.Get("propertiesTab", "call"); got != "network" {
		t.Errorf("expected persisted 'network', got %q", got)
	}
	if got := g.Get("propertiesSidebarLocation", "bottom"); got != "right" {
		t.Errorf("expected persisted 'right', got %q", got)
	}
}

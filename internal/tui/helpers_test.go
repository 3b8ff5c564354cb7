package tui

import (
	"testing"

	"github.com/Jitera-Product/tracebench/internal/trace"
)

// TestTruncate verifies rune-safe truncation with ellipsis.
func TestTruncate(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Errorf("short string changed: %q", got)
	}
	if got := truncate("hello world", 8); got != "hello..." {
		t.Errorf("truncate = %q, want %q", got, "hello...")
	}
	if got := truncate("hello", 2); got != "he" {
		t.Errorf("tiny maxLen = %q, want %q", got, "he")
	}
	if got := truncate("hello", 0); got != "" {
		t.Errorf("zero maxLen = %q, want empty", got)
	}
}

// TestClamp verifies boundary clamping.
func TestClamp(t *testing.T) {
	if got := clamp(5, 0, 3); got != 3 {
		t.Errorf("clamp above = %d, want 3", got)
	}
	if got := clamp(-1, 0, 3); got != 0 {
		t.Errorf("clamp below = %d, want 0", got)
	}
	if got := clamp(2, 0, 3); got != 2 {
		t.Errorf("clamp inside = %d, want 2", got)
	}
}

// TestDisplayPath verifies root-dir stripping for source headers.
func TestDisplayPath(t *testing.T) {
	if got := displayPath("/repo/tests/login.spec.ts", "/repo"); got != "tests/login.spec.ts" {
		t.Errorf("displayPath = %q", got)
	}
	if got := displayPath("/other/file.ts", "/repo"); got != "/other/file.ts" {
		t.Errorf("non-matching root changed path: %q", got)
	}
	if got := displayPath("/repo/file.ts", ""); got != "/repo/file.ts" {
		t.Errorf("empty root changed path: %q", got)
	}
}

// TestDeriveLocator verifies locator extraction from action params.
func TestDeriveLocator(t *testing.T) {
	model := trace.NewModel(trace.Model{TestIDAttributeName: "data-qa"})

	a := &trace.Action{Params: `{"selector":"#submit","timeout":5000}`}
	if got := deriveLocator(a, model); got != "#submit" {
		t.Errorf("selector param = %q, want %q", got, "#submit")
	}

	a = &trace.Action{Params: `{"testId":"login-button"}`}
	if got := deriveLocator(a, model); got != `[data-qa="login-button"]` {
		t.Errorf("testId param = %q", got)
	}

	a = &trace.Action{Params: `{"timeout":5000}`}
	if got := deriveLocator(a, model); got != "" {
		t.Errorf("no selector-ish param should yield empty, got %q", got)
	}

	if got := deriveLocator(nil, model); got != "" {
		t.Errorf("nil action should yield empty, got %q", got)
	}
}

package ingest

import (
	"strings"
	"testing"

	"github.com/Jitera-Product/tracebench/internal/storage"
)

const sampleRecording = `{"type":"context","traceId":"t1","title":"login","startTime":0,"endTime":1000,"sdkLanguage":"javascript"}
{"type":"action","action":{"callId":"c1","apiName":"page.goto","startTime":0,"endTime":120}}
{"type":"action","action":{"apiName":"page.click","startTime":150,"endTime":180,"error":"not found"}}
{"type":"console","console":{"timestamp":10,"type":"log","text":"hi"}}
{"type":"network","network":{"timestamp":20,"method":"GET","url":"https://x/a.js","status":200}}
{"type":"error","error":{"message":"not found","actionCallId":"c1"}}
{"type":"source","source":{"path":"login.spec.ts","content":"test()"}}
{"type":"mystery","whatever":1}
`

// TestImportRecording verifies the full import path: NDJSON in, a
// loadable model out, with a CallID minted for the action that lacked
// one and unknown event kinds ignored.
func TestImportRecording(t *testing.T) {
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	defer store.Close()

	traceID, counts, err := Import(strings.NewReader(sampleRecording), store)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if traceID != "t1" {
		t.Errorf("expected trace id t1, got %q", traceID)
	}
	if counts.Actions != 2 || counts.Console != 1 || counts.Network != 1 || counts.Errors != 1 || counts.Sources != 1 {
		t.Errorf("unexpected counts: %+v", counts)
	}

	m, err := store.LoadModel(traceID)
	if err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}
	if len(m.Actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(m.Actions))
	}
	if m.Actions[1].CallID == "" {
		t.Error("expected minted CallID for action without one")
	}
	if failed := m.FailedAction(); failed == nil || failed.APIName != "page.click" {
		t.Errorf("expected failed click action, got %v", failed)
	}
	if m.Title != "login" {
		t.Errorf("expected title 'login', got %q", m.Title)
	}
}

// TestImportWithoutContext verifies that a recording missing its
// context event still imports under a minted trace id.
func TestImportWithoutContext(t *testing.T) {
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	defer store.Close()

	input := `{"type":"action","action":{"callId":"c1","apiName":"expect","startTime":5}}` + "\n"
	traceID, counts, err := Import(strings.NewReader(input), store)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if traceID == "" {
		t.Error("expected minted trace id")
	}
	if counts.Actions != 1 {
		t.Errorf("expected 1 action, got %d", counts.Actions)
	}
}

// TestImportMalformedLine verifies that a broken JSON line fails the
// import with its line number.
func TestImportMalformedLine(t *testing.T) {
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	defer store.Close()

	input := `{"type":"context","traceId":"t1"}` + "\n" + `{broken` + "\n"
	if _, _, err := Import(strings.NewReader(input), store); err == nil {
		t.Error("expected error for malformed line")
	} else if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected line number in error, got %v", err)
	}
}

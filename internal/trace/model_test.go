package trace

import "testing"

// TestNewModelDefaults verifies metadata defaults and the call-id index.
func TestNewModelDefaults(t *testing.T) {
	m := NewModel(Model{
		Actions: []*Action{
			{CallID: "a1", APIName: "page.goto", Timestamp: 100, EndTime: 250},
			{CallID: "a2", APIName: "page.click", Timestamp: 300, EndTime: 0, Error: "timeout"},
		},
	})

	if m.SdkLanguage != DefaultSdkLanguage {
		t.Errorf("SdkLanguage = %q, want default %q", m.SdkLanguage, DefaultSdkLanguage)
	}
	if m.TestIDAttributeName != DefaultTestIDAttributeName {
		t.Errorf("TestIDAttributeName = %q, want default %q", m.TestIDAttributeName, DefaultTestIDAttributeName)
	}
	if m.Sources == nil {
		t.Error("Sources map not initialized")
	}

	if a := m.ActionByCallID("a2"); a == nil || a.APIName != "page.click" {
		t.Errorf("ActionByCallID(a2) = %v", a)
	}
	if a := m.ActionByCallID("stale"); a != nil {
		t.Errorf("stale id resolved to %v, want nil", a)
	}
	if a := m.ActionByCallID(""); a != nil {
		t.Errorf("empty id resolved to %v, want nil", a)
	}
}

// TestNewModelKeepsExplicitMetadata verifies supplied values survive.
func TestNewModelKeepsExplicitMetadata(t *testing.T) {
	m := NewModel(Model{SdkLanguage: "python", TestIDAttributeName: "data-qa"})
	if m.SdkLanguage != "python" || m.TestIDAttributeName != "data-qa" {
		t.Errorf("explicit metadata overwritten: %q %q", m.SdkLanguage, m.TestIDAttributeName)
	}
}

// TestFailedAction verifies the first errored action wins.
func TestFailedAction(t *testing.T) {
	m := NewModel(Model{
		Actions: []*Action{
			{CallID: "a1", Timestamp: 1},
			{CallID: "a2", Timestamp: 2, Error: "first failure"},
			{CallID: "a3", Timestamp: 3, Error: "second failure"},
		},
	})
	if f := m.FailedAction(); f == nil || f.CallID != "a2" {
		t.Errorf("FailedAction = %v, want a2", f)
	}

	passed := NewModel(Model{Actions: []*Action{{CallID: "a1"}}})
	if f := passed.FailedAction(); f != nil {
		t.Errorf("passing run returned %v, want nil", f)
	}

	var nilModel *Model
	if f := nilModel.FailedAction(); f != nil {
		t.Errorf("nil model returned %v, want nil", f)
	}
}

// TestActionDuration verifies in-flight actions report zero elapsed.
func TestActionDuration(t *testing.T) {
	done := &Action{Timestamp: 100, EndTime: 350}
	if d := done.Duration(); d != 250 {
		t.Errorf("Duration = %v, want 250", d)
	}
	inflight := &Action{Timestamp: 100}
	if d := inflight.Duration(); d != 0 {
		t.Errorf("in-flight Duration = %v, want 0", d)
	}
}

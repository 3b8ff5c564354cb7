package workbench

import (
	"testing"

	"github.com/Jitera-Product/tracebench/internal/trace"
)

func modelWith(actions ...*trace.Action) *trace.Model {
	return trace.NewModel(trace.Model{Actions: actions})
}

func action(id, api string, ts float64) *trace.Action {
	return &trace.Action{CallID: id, APIName: api, Timestamp: ts}
}

func failedAction(id, api string, ts float64) *trace.Action {
	return &trace.Action{CallID: id, APIName: api, Timestamp: ts, Error: "boom"}
}

// TestResolveExplicitSelection verifies that a matching CallID wins
// regardless of failures or position.
func TestResolveExplicitSelection(t *testing.T) {
	m := modelWith(
		action("c1", "page.goto", 0),
		failedAction("c2", "page.click", 10),
		action("c3", "expect", 20),
	)
	got := ResolveSelectedAction(m, "c1")
	if got == nil || got.CallID != "c1" {
		t.Fatalf("expected c1, got %v", got)
	}
}

// TestResolveFailedAction verifies that with no explicit selection a
// failed action anywhere in the sequence is returned.
func TestResolveFailedAction(t *testing.T) {
	m := modelWith(
		action("c1", "page.goto", 0),
		failedAction("c2", "page.click", 10),
	)
	got := ResolveSelectedAction(m, "")
	if got == nil || got.CallID != "c2" {
		t.Fatalf("expected failed action c2, got %v", got)
	}
}

// TestResolveStaleSelection verifies that a stale id silently falls
// through to the next rule instead of erroring.
func TestResolveStaleSelection(t *testing.T) {
	m := modelWith(
		action("c1", "page.goto", 0),
		failedAction("c2", "page.click", 10),
	)
	got := ResolveSelectedAction(m, "gone")
	if got == nil || got.CallID != "c2" {
		t.Fatalf("expected fallthrough to c2, got %v", got)
	}
}

// TestResolveSkipsAfterHooks verifies the skip-to-before-hooks
// heuristic: a trailing "After Hooks" step is stepped over unless it is
// the only action.
func TestResolveSkipsAfterHooks(t *testing.T) {
	m := modelWith(
		action("c1", "page.goto", 0),
		action("c2", "expect", 5),
		action("c3", "After Hooks", 10),
	)
	got := ResolveSelectedAction(m, "")
	if got == nil || got.CallID != "c2" {
		t.Fatalf("expected second-to-last c2, got %v", got)
	}

	only := modelWith(action("c1", "After Hooks", 0))
	got = ResolveSelectedAction(only, "")
	if got == nil || got.CallID != "c1" {
		t.Fatalf("expected lone After Hooks action, got %v", got)
	}
}

// TestResolveLastAction verifies the default of the last action when
// nothing else applies, and nil for an empty or missing model.
func TestResolveLastAction(t *testing.T) {
	m := modelWith(action("c1", "page.goto", 0), action("c2", "expect", 5))
	got := ResolveSelectedAction(m, "")
	if got == nil || got.CallID != "c2" {
		t.Fatalf("expected last action c2, got %v", got)
	}

	if got := ResolveSelectedAction(modelWith(), ""); got != nil {
		t.Errorf("expected nil for empty model, got %v", got)
	}
	if got := ResolveSelectedAction(nil, "c1"); got != nil {
		t.Errorf("expected nil for missing model, got %v", got)
	}
}

// TestResolveActiveAction verifies that a hover preview overrides the
// persistent selection for the detail panes.
func TestResolveActiveAction(t *testing.T) {
	sel := action("sel", "page.goto", 0)
	hov := action("hov", "page.click", 1)

	if got := ResolveActiveAction(hov, sel); got != hov {
		t.Errorf("expected highlighted action to win, got %v", got)
	}
	if got := ResolveActiveAction(nil, sel); got != sel {
		t.Errorf("expected selected action as fallback, got %v", got)
	}
	if got := ResolveActiveAction(nil, nil); got != nil {
		t.Errorf("expected nil with nothing set, got %v", got)
	}
}

// TestResolveRevealedStack verifies that an explicit error reveal wins
// over the active action's stack.
func TestResolveRevealedStack(t *testing.T) {
	errStack := []trace.StackFrame{{SourceLocation: trace.SourceLocation{File: "spec.ts", Line: 7}}}
	actStack := []trace.StackFrame{{SourceLocation: trace.SourceLocation{File: "page.ts", Line: 3}}}

	revealed := &trace.TraceError{Message: "boom", Stack: errStack}
	active := &trace.Action{CallID: "c1", Stack: actStack}

	got := ResolveRevealedStack(revealed, active)
	if len(got) != 1 || got[0].File != "spec.ts" {
		t.Errorf("expected revealed error stack, got %v", got)
	}

	got = ResolveRevealedStack(nil, active)
	if len(got) != 1 || got[0].File != "page.ts" {
		t.Errorf("expected active action stack, got %v", got)
	}

	if got := ResolveRevealedStack(nil, nil); got != nil {
		t.Errorf("expected nil stack, got %v", got)
	}
}

package workbench

import "github.com/Jitera-Product/tracebench/internal/trace"

// afterHooksAPIName marks the synthetic teardown step appended to the
// end of a recording. Landing on it by default is never useful.
const afterHooksAPIName = "After Hooks"

// ResolveSelectedAction computes the effective selected action from the
// model and the stored CallID, in priority order:
//
//  1. an explicit selection that still resolves in the model
//  2. the first failed action
//  3. the last action, stepping back over a trailing "After Hooks"
//     step unless it is the only action
//
// A stale CallID silently falls through to the next rule.
func ResolveSelectedAction(m *trace.Model, selectedCallID string) *trace.Action {
	if m == nil {
		return nil
	}
	if a := m.ActionByCallID(selectedCallID); a != nil {
		return a
	}
	if a := m.FailedAction(); a != nil {
		return a
	}
	n := len(m.Actions)
	if n == 0 {
		return nil
	}
	if last := m.Actions[n-1]; last.APIName == afterHooksAPIName && n > 1 {
		return m.Actions[n-2]
	}
	return m.Actions[n-1]
}

// ResolveActiveAction returns the action shown in read-only detail
// panels: a transient hover wins over the persistent selection, and
// hover never mutates the selection itself.
func ResolveActiveAction(highlighted, selected *trace.Action) *trace.Action {
	if highlighted != nil {
		return highlighted
	}
	return selected
}

// ResolveRevealedStack picks the stack the source pane should show: an
// explicitly revealed error's stack takes priority over the active
// action's.
func ResolveRevealedStack(revealed *trace.TraceError, active *trace.Action) []trace.StackFrame {
	if revealed != nil {
		return revealed.Stack
	}
	if active != nil {
		return active.Stack
	}
	return nil
}

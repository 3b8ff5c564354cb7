package workbench

import "github.com/Jitera-Product/tracebench/internal/trace"

// ConsoleEntriesIn returns the console entries falling inside the
// window, or every entry when no range is selected. A nil model yields
// an empty slice. O(entries); cheap enough to rerun per event.
func ConsoleEntriesIn(m *trace.Model, tb *TimeBoundary) []*trace.ConsoleEntry {
	if m == nil {
		return nil
	}
	if tb == nil {
		return m.Console
	}
	var out []*trace.ConsoleEntry
	for _, e := range m.Console {
		if tb.Contains(e.Timestamp) {
			out = append(out, e)
		}
	}
	return out
}

// ResourcesIn returns the network resources falling inside the window,
// or every resource when no range is selected.
func ResourcesIn(m *trace.Model, tb *TimeBoundary) []*trace.Resource {
	if m == nil {
		return nil
	}
	if tb == nil {
		return m.Network
	}
	var out []*trace.Resource
	for _, r := range m.Network {
		if tb.Contains(r.Timestamp) {
			out = append(out, r)
		}
	}
	return out
}

// ActionsIn returns the actions whose start falls inside the window,
// or every action when no range is selected.
func ActionsIn(m *trace.Model, tb *TimeBoundary) []*trace.Action {
	if m == nil {
		return nil
	}
	if tb == nil {
		return m.Actions
	}
	var out []*trace.Action
	for _, a := range m.Actions {
		if tb.Contains(a.Timestamp) {
			out = append(out, a)
		}
	}
	return out
}

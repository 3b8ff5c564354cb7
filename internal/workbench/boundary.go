package workbench

import "github.com/Jitera-Product/tracebench/internal/trace"

// Fallback window applied when the model carries no usable time range.
const (
	defaultBoundaryMinimum = 0
	defaultBoundaryMaximum = 30000 // ms
)

// TimeBoundary is the {minimum, maximum} window used to scale the
// timeline display. Always derived from the model; the only user path
// to a narrower window is an explicit range selection on the store.
type TimeBoundary struct {
	Minimum float64 // ms
	Maximum float64 // ms
}

// Contains reports whether t falls inside the window.
func (tb TimeBoundary) Contains(t float64) bool {
	return t >= tb.Minimum && t <= tb.Maximum
}

// Duration returns the window width in ms.
func (tb TimeBoundary) Duration() float64 {
	return tb.Maximum - tb.Minimum
}

// ComputeBoundary derives the visual time window from the model.
//
// Missing times default to 0/30000. An inverted range (a malformed
// recording) is corrected to the default window rather than surfaced.
// The maximum then gets a 5% pad so the last action never sits on the
// right edge. Pure function; recompute whenever the model reference
// changes.
func ComputeBoundary(m *trace.Model) TimeBoundary {
	tb := TimeBoundary{Minimum: defaultBoundaryMinimum, Maximum: defaultBoundaryMaximum}
	if m != nil && (m.StartTime != 0 || m.EndTime != 0) {
		tb.Minimum = m.StartTime
		tb.Maximum = m.EndTime
	}
	if tb.Minimum > tb.Maximum {
		tb = TimeBoundary{Minimum: defaultBoundaryMinimum, Maximum: defaultBoundaryMaximum}
	}
	tb.Maximum += (tb.Maximum - tb.Minimum) / 20
	return tb
}

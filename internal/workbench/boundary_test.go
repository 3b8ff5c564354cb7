package workbench

import (
	"testing"

	"github.com/Jitera-Product/tracebench/internal/trace"
)

// TestComputeBoundaryDefaults verifies that a missing model falls back
// to the 0..30000 window plus the 5% pad.
func TestComputeBoundaryDefaults(t *testing.T) {
	tb := ComputeBoundary(nil)
	if tb.Minimum != 0 || tb.Maximum != 31500 {
		t.Errorf("expected {0, 31500}, got {%v, %v}", tb.Minimum, tb.Maximum)
	}
}

// TestComputeBoundaryInverted verifies that an inverted recording is
// corrected to the default window, never surfaced as an error.
func TestComputeBoundaryInverted(t *testing.T) {
	m := trace.NewModel(trace.Model{StartTime: 100, EndTime: 50})
	tb := ComputeBoundary(m)
	if tb.Minimum != 0 || tb.Maximum != 31500 {
		t.Errorf("expected {0, 31500} for inverted range, got {%v, %v}", tb.Minimum, tb.Maximum)
	}
}

// TestComputeBoundaryPad verifies the 5% right margin on a valid range.
func TestComputeBoundaryPad(t *testing.T) {
	cases := []struct {
		start, end float64
		wantMax    float64
	}{
		{0, 1000, 1050},
		{500, 2500, 2600},
		{100, 100, 100}, // zero-width window gets zero pad
	}
	for _, c := range cases {
		m := trace.NewModel(trace.Model{StartTime: c.start, EndTime: c.end})
		tb := ComputeBoundary(m)
		if tb.Minimum != c.start {
			t.Errorf("start %v: expected minimum %v, got %v", c.start, c.start, tb.Minimum)
		}
		if tb.Maximum != c.wantMax {
			t.Errorf("range %v..%v: expected maximum %v, got %v", c.start, c.end, c.wantMax, tb.Maximum)
		}
	}
}

// TestBoundaryContains checks window membership at the edges.
func TestBoundaryContains(t *testing.T) {
	tb := TimeBoundary{Minimum: 10, Maximum: 20}
	for _, v := range []float64{10, 15, 20} {
		if !tb.Contains(v) {
			t.Errorf("expected %v inside %v", v, tb)
		}
	}
	for _, v := range []float64{9.9, 20.1} {
		if tb.Contains(v) {
			t.Errorf("expected %v outside %v", v, tb)
		}
	}
}

package timeutil

import "testing"

// TestFormatDuration covers the unit breakpoints.
func TestFormatDuration(t *testing.T) {
	cases := []struct {
		ms   float64
		want string
	}{
		{450, "450ms"},
		{999, "999ms"},
		{1200, "1.2s"},
		{59_900, "59.9s"},
		{135_300, "2m 15.3s"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.ms); got != c.want {
			t.Errorf("FormatDuration(%v): expected %q, got %q", c.ms, c.want, got)
		}
	}
}

// TestFormatOffset covers timeline label formatting.
func TestFormatOffset(t *testing.T) {
	if got := FormatOffset(0); got != "0.00s" {
		t.Errorf("expected 0.00s, got %q", got)
	}
	if got := FormatOffset(1530); got != "1.53s" {
		t.Errorf("expected 1.53s, got %q", got)
	}
	if got := FormatOffset(72_500); got != "1m 12.5s" {
		t.Errorf("expected 1m 12.5s, got %q", got)
	}
}

// TestFormatWall checks the zero anchor placeholder.
func TestFormatWall(t *testing.T) {
	if got := FormatWall(0); got != "-" {
		t.Errorf("expected '-', got %q", got)
	}
}

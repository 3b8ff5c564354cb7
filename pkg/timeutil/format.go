// Package timeutil provides time formatting helpers for tracebench.
//
// Recorded timestamps are milliseconds (float64) on the recording's
// own clock; wall-clock anchors are milliseconds since the Unix epoch.
// This package handles conversion to human-readable forms for the TUI.
package timeutil

import (
	"fmt"
	"time"
)

// FromWallMs converts epoch milliseconds to time.Time.
func FromWallMs(ms float64) time.Time {
	return time.UnixMilli(int64(ms))
}

// FormatWall formats an epoch-millisecond anchor with date.
// Format: "2006-01-02 15:04:05"
func FormatWall(ms float64) string {
	if ms == 0 {
		return "-"
	}
	return FromWallMs(ms).Format("2006-01-02 15:04:05")
}

// FormatOffset formats a trace-relative timestamp for timeline labels.
// Examples: "0.00s", "1.53s", "1m 12.5s"
func FormatOffset(ms float64) string {
	seconds := ms / 1000.0
	if seconds < 60 {
		return fmt.Sprintf("%.2fs", seconds)
	}
	minutes := int(seconds / 60)
	return fmt.Sprintf("%dm %.1fs", minutes, seconds-float64(minutes*60))
}

// FormatDuration formats an elapsed time in ms.
// Examples: "450ms", "1.2s", "2m 15.3s"
func FormatDuration(ms float64) string {
	if ms < 1000 {
		return fmt.Sprintf("%.0fms", ms)
	}
	seconds := ms / 1000.0
	if seconds < 60 {
		return fmt.Sprintf("%.1fs", seconds)
	}
	minutes := int(seconds / 60)
	return fmt.Sprintf("%dm %.1fs", minutes, seconds-float64(minutes*60))
}

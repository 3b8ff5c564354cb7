package tui

import (
	"fmt"
	"strings"

	"github.com/Jitera-Product/tracebench/pkg/timeutil"
)

// renderTraceList draws the initial trace selector screen.
func (m Model) renderTraceList() string {
	height := max(4, m.height-2)
	if len(m.traces) == 0 {
		empty := emptyStateStyle.Render(
			"No traces yet.\n\nImport a recording with tracebench-import,\nthen press r to reload.")
		return padToHeight(empty, height)
	}

	var b strings.Builder
	for i, rec := range m.traces {
		title := rec.Title
		if title == "" {
			title = "(untitled)"
		}
		dur := timeutil.FormatDuration(rec.EndTime - rec.StartTime)
		line := fmt.Sprintf("%-8s  %-40s  %8s  %s",
			shortID(rec.TraceID, 8),
			truncate(title, 40),
			dur,
			traceDimStyle.Render(timeutil.FormatWall(rec.WallTime)),
		)
		if i == m.traceCursor {
			b.WriteString(traceSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(traceItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return padToHeight(b.String(), height)
}

// padToHeight pads content with blank lines so the footer stays pinned.
func padToHeight(content string, height int) string {
	lines := strings.Count(content, "\n") + 1
	if lines >= height {
		return content
	}
	return content + strings.Repeat("\n", height-lines)
}

package tui

import (
	"fmt"
	"strings"

	"github.com/Jitera-Product/tracebench/internal/trace"
	"github.com/Jitera-Product/tracebench/pkg/timeutil"
)

// renderMetadata draws the navigator's metadata view: recording
// identity, clocks and aggregate counts.
func (m Model) renderMetadata(width int) string {
	model := m.wb.Model()
	if model == nil {
		return emptyStateStyle.Render("no trace loaded")
	}
	sum := trace.Summarize(model)

	row := func(label, value string) string {
		return detailLabelStyle.Render(fmt.Sprintf("%-14s", label)) +
			detailValueStyle.Render(truncate(value, max(10, width-16)))
	}

	lines := []string{
		row("title", model.Title),
		row("started", timeutil.FormatWall(model.WallTime)),
		row("duration", timeutil.FormatDuration(model.EndTime-model.StartTime)),
		row("language", model.SdkLanguage),
		row("test id attr", model.TestIDAttributeName),
		"",
		row("actions", fmt.Sprintf("%d", sum.ActionCount)),
		row("errors", fmt.Sprintf("%d", sum.ErrorCount)),
		row("console", fmt.Sprintf("%d", sum.ConsoleCount)),
		row("network", fmt.Sprintf("%d", sum.NetworkCount)),
		row("attachments", fmt.Sprintf("%d", sum.AttachmentCount)),
		row("sources", fmt.Sprintf("%d", len(model.Sources))),
	}
	return strings.Join(lines, "\n")
}

package tui

import (
	"fmt"
	"strings"

	"github.com/Jitera-Product/tracebench/internal/workbench"
	"github.com/Jitera-Product/tracebench/pkg/jsonutil"
	"github.com/Jitera-Product/tracebench/pkg/timeutil"
)

// Every pane here renders the active action or a time-filtered event
// slice. "Active" means the hover preview when one exists, otherwise
// the persistent selection; the panes never distinguish the two.

// renderCall shows the active action's identity, timing and parameters.
func (m Model) renderCall(width int) string {
	a := m.wb.ActiveAction()
	if a == nil {
		return emptyStateStyle.Render("no action selected")
	}

	row := func(label, value string) string {
		return detailLabelStyle.Render(fmt.Sprintf("%-10s", label)) +
			detailValueStyle.Render(truncate(value, max(10, width-12)))
	}

	status := actionPassStyle.Render("passed")
	if !a.Passed() {
		status = actionFailStyle.Render("failed")
	}

	lines := []string{
		row("call", a.APIName),
		row("id", a.CallID),
		row("start", timeutil.FormatOffset(a.Timestamp)),
		row("duration", timeutil.FormatDuration(a.Duration())),
		detailLabelStyle.Render(fmt.Sprintf("%-10s", "status")) + status,
	}
	if !a.Passed() {
		lines = append(lines, row("error", a.Error))
	}
	if fields := jsonutil.Fields(a.Params); fields != nil {
		lines = append(lines, "", detailSectionStyle.Render("── params ──"))
		for _, kv := range fields {
			lines = append(lines, row(kv[0], kv[1]))
		}
	} else if a.Params != "" {
		lines = append(lines, "", detailSectionStyle.Render("── params ──"),
			detailValueStyle.Render(truncate(jsonutil.Pretty(a.Params), width*4)))
	}
	if len(a.Stack) > 0 {
		f := a.Stack[0]
		lines = append(lines, "",
			row("at", fmt.Sprintf("%s:%d:%d %s", f.File, f.Line, f.Column, f.Function)))
	}
	return strings.Join(lines, "\n")
}

// renderLog shows the active action's execution log.
func (m Model) renderLog(width, height int) string {
	a := m.wb.ActiveAction()
	if a == nil {
		return emptyStateStyle.Render("no action selected")
	}
	if len(a.Log) == 0 {
		return emptyStateStyle.Render("no log entries for this action")
	}

	start := clamp(m.logScroll, 0, max(0, len(a.Log)-1))
	var b strings.Builder
	for i := start; i < len(a.Log) && i < start+height; i++ {
		b.WriteString(logLineStyle.Render(truncate(a.Log[i], width)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderErrors lists every recorded error; enter reveals the cursored
// one in the source pane.
func (m Model) renderErrors(width, height int) string {
	model := m.wb.Model()
	if model == nil || len(model.Errors) == 0 {
		return emptyStateStyle.Render("no errors")
	}

	var b strings.Builder
	for i, e := range model.Errors {
		firstLine := e.Message
		if idx := strings.IndexByte(firstLine, '\n'); idx >= 0 {
			firstLine = firstLine[:idx]
		}
		origin := "test"
		if e.ActionCallID != "" {
			if a := model.ActionByCallID(e.ActionCallID); a != nil {
				origin = a.APIName
			}
		}
		line := consoleErrorStyle.Render("✗ ") +
			detailValueStyle.Render(truncate(firstLine, max(10, width-20))) +
			actionTimeStyle.Render("  "+origin)
		if i == m.errorCursor && m.focus == focusProperties {
			line = actionHoverStyle.Width(width - 2).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
		if i >= height-1 {
			break
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderConsole lists console messages inside the current time window.
// Moving the cursor publishes the entry as a hover for the timeline.
func (m Model) renderConsole(width, height int) string {
	entries := workbench.ConsoleEntriesIn(m.wb.Model(), m.wb.SelectedTime)
	if len(entries) == 0 {
		return emptyStateStyle.Render("no console output in range")
	}

	var b strings.Builder
	for i, e := range entries {
		var style = detailValueStyle
		tag := "log"
		switch e.MessageType {
		case "warning":
			style = consoleWarnStyle
			tag = "warn"
		case "error":
			style = consoleErrorStyle
			tag = "err"
		}
		line := actionTimeStyle.Render(fmt.Sprintf("%8s ", timeutil.FormatOffset(e.Timestamp))) +
			style.Render(fmt.Sprintf("%-5s", tag)) +
			detailValueStyle.Render(truncate(e.Text, max(10, width-18)))
		if i == m.consoleCursor && m.focus == focusProperties {
			line = actionHoverStyle.Width(width - 2).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
		if i >= height-1 {
			break
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderNetwork lists network requests inside the current time window.
func (m Model) renderNetwork(width, height int) string {
	resources := workbench.ResourcesIn(m.wb.Model(), m.wb.SelectedTime)
	if len(resources) == 0 {
		return emptyStateStyle.Render("no network activity in range")
	}

	var b strings.Builder
	for i, r := range resources {
		st := networkOkStyle
		if r.Status >= 400 || r.Status == 0 {
			st = networkFailStyle
		}
		line := actionTimeStyle.Render(fmt.Sprintf("%8s ", timeutil.FormatOffset(r.Timestamp))) +
			st.Render(fmt.Sprintf("%3d ", r.Status)) +
			detailLabelStyle.Render(fmt.Sprintf("%-6s", r.Method)) +
			detailValueStyle.Render(truncate(r.URL, max(10, width-30))) +
			actionDurationStyle.Render("  "+timeutil.FormatDuration(r.DurationMs))
		if i == m.networkCursor && m.focus == focusProperties {
			line = actionHoverStyle.Width(width - 2).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
		if i >= height-1 {
			break
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderAttachments lists all attachments across actions; a revealed
// attachment gets its detail block under the list.
func (m Model) renderAttachments(width, height int) string {
	atts := m.allAttachments()
	if len(atts) == 0 {
		return emptyStateStyle.Render("no attachments")
	}

	revealed := m.wb.RevealedAttachment
	var b strings.Builder
	for i, a := range atts {
		line := detailValueStyle.Render(truncate(a.Name, max(10, width-30))) +
			actionTimeStyle.Render("  "+a.ContentType)
		switch {
		case i == m.attachCursor && m.focus == focusProperties:
			line = actionHoverStyle.Width(width - 2).Render(line)
		case revealed == a:
			line = actionSelectedStyle.Width(width - 2).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
		if i >= height-4 {
			break
		}
	}

	if revealed != nil {
		b.WriteString(detailSectionStyle.Render("── attachment ──"))
		b.WriteString("\n")
		if revealed.Path != "" {
			b.WriteString(detailLabelStyle.Render("path ") + detailValueStyle.Render(revealed.Path))
		} else {
			b.WriteString(detailValueStyle.Render(truncate(revealed.Body, width*2)))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderAnnotations lists host-supplied annotations.
func (m Model) renderAnnotations(width int) string {
	if len(m.cfg.Annotations) == 0 {
		return emptyStateStyle.Render("no annotations")
	}
	var b strings.Builder
	for _, a := range m.cfg.Annotations {
		b.WriteString(detailLabelStyle.Render(a.Type))
		if a.Description != "" {
			b.WriteString(detailValueStyle.Render(": " + truncate(a.Description, max(10, width-len(a.Type)-4))))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

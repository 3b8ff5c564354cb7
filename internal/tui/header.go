package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Jitera-Product/tracebench/internal/trace"
	"github.com/Jitera-Product/tracebench/internal/workbench"
)

// renderHeader draws the top bar: brand, trace title, run status and
// aggregate counts.
func (m Model) renderHeader() string {
	brand := headerBrandStyle.Render("tracebench")
	sep := headerSepStyle.Render(" │ ")

	var meta string
	if m.showTraceList {
		meta = headerMetaStyle.Render("select a trace")
	} else {
		model := m.wb.Model()
		title := "untitled"
		if model != nil && model.Title != "" {
			title = model.Title
		}
		sum := trace.Summarize(model)
		status := renderRunStatus(m.cfg.Status)
		live := ""
		if m.cfg.IsLive {
			live = sep + statusRunningStyle.Render("● live")
		}
		meta = headerMetaStyle.Render(truncate(title, 40)) +
			sep + status +
			sep + headerMetaStyle.Render(fmt.Sprintf("%d actions", sum.ActionCount)) +
			live
	}

	bar := brand + sep + meta
	return headerBarStyle.Width(m.width).Render(truncate(bar, m.width))
}

// renderRunStatus maps a run status to its colored label.
func renderRunStatus(s workbench.RunStatus) string {
	switch s {
	case workbench.StatusPassed:
		return statusPassStyle.Render("✓ passed")
	case workbench.StatusFailed:
		return statusFailStyle.Render("✗ failed")
	case workbench.StatusRunning:
		return statusRunningStyle.Render("● running")
	case workbench.StatusScheduled:
		return traceDimStyle.Render("○ scheduled")
	case workbench.StatusSkipped:
		return traceDimStyle.Render("- skipped")
	default:
		return traceDimStyle.Render("·")
	}
}

// renderFooter draws the status line plus context-sensitive key hints.
func (m Model) renderFooter() string {
	var hints []string
	add := func(key, desc string) {
		hints = append(hints, hintKeyStyle.Render(key)+" "+hintDescStyle.Render(desc))
	}

	switch {
	case m.showTraceList:
		add("j/k", "move")
		add("enter", "open")
		add("r", "reload")
		add("q", "quit")
	case m.cfg.Inert:
		add("q", "quit")
	default:
		add("tab", "focus")
		add("j/k", "move")
		add("enter", "select")
		add("h/l", "tabs")
		add("i", "inspect")
		add("z/u", "zoom")
		add("d", "dock")
		add("esc", "back")
	}

	left := statusStyle.Render(truncate(m.statusMsg, m.width/2))
	right := strings.Join(hints, "  ")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

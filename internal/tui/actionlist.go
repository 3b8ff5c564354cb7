package tui

import (
	"fmt"
	"strings"

	"github.com/Jitera-Product/tracebench/internal/trace"
	"github.com/Jitera-Product/tracebench/internal/workbench"
	"github.com/Jitera-Product/tracebench/pkg/jsonutil"
	"github.com/Jitera-Product/tracebench/pkg/timeutil"
)

// renderActionList draws the navigator's action list: a run-status
// header followed by one row per visible action. The cursor row is the
// hover preview; the enter-selected row keeps its own style so both
// are visible at once.
func (m Model) renderActionList(width, height int) string {
	actions := m.visibleActions()
	model := m.wb.Model()

	var b strings.Builder
	b.WriteString(m.renderRunStatusLine(width))
	b.WriteString("\n")

	if len(actions) == 0 {
		b.WriteString(emptyStateStyle.Render("no actions in range"))
		return b.String()
	}

	selected := m.wb.SelectedAction()
	rows := max(1, height-2)
	start := 0
	if m.actionCursor >= rows {
		start = m.actionCursor - rows + 1
	}

	startTime := 0.0
	if model != nil {
		startTime = model.StartTime
	}
	for i := start; i < len(actions) && i < start+rows; i++ {
		a := actions[i]
		mark := actionPassStyle.Render("✓")
		if !a.Passed() {
			mark = actionFailStyle.Render("✗")
		}
		offset := actionTimeStyle.Render(
			fmt.Sprintf("%8s", timeutil.FormatOffset(a.Timestamp-startTime)))
		dur := actionDurationStyle.Render(
			fmt.Sprintf("%8s", timeutil.FormatDuration(a.Duration())))
		name := truncate(a.APIName, max(10, width-24))

		row := fmt.Sprintf("%s %s %s  %s", mark, offset, dur, name)
		if a.Params != "" && width >= 60 {
			row += actionTimeStyle.Render("  " + truncate(jsonutil.Compact(a.Params), 24))
		}
		switch {
		case i == m.actionCursor && m.focus == focusNavigator:
			row = actionHoverStyle.Width(width - 2).Render(row)
		case selected != nil && a.CallID == selected.CallID:
			row = actionSelectedStyle.Width(width - 2).Render(row)
		default:
			row = actionNormalStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderRunStatusLine summarizes the run at the top of the list. The
// status glyph only appears when the host supplied a run status.
func (m Model) renderRunStatusLine(width int) string {
	sum := trace.Summarize(m.wb.Model())
	line := headerMetaStyle.Render(fmt.Sprintf("%d actions, %s",
		sum.ActionCount, timeutil.FormatDuration(sum.DurationMs)))
	if m.cfg.Status != workbench.StatusNone {
		line = renderRunStatus(m.cfg.Status) + "  " + line
	}
	return truncate(line, width)
}

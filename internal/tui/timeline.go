package tui

import (
	"strings"

	"github.com/Jitera-Product/tracebench/pkg/timeutil"
)

// renderTimeline draws the horizontal band above the panels: one mark
// per action positioned by its start time within the current boundary,
// with offset labels underneath. Every panel that shows time scales
// against the same boundary, so the band, the action list and the
// detail panes always agree on what "now" means.
func (m Model) renderTimeline() string {
	model := m.wb.Model()
	tb := m.wb.Boundary()
	width := max(10, m.width-2)

	cells := make([]string, width)
	for i := range cells {
		cells[i] = timelineTickStyle.Render("·")
	}

	pos := func(t float64) int {
		if tb.Duration() <= 0 {
			return 0
		}
		return clamp(int((t-tb.Minimum)/tb.Duration()*float64(width-1)), 0, width-1)
	}

	if model != nil {
		active := m.wb.ActiveAction()
		for _, a := range model.Actions {
			if !tb.Contains(a.Timestamp) {
				continue
			}
			p := pos(a.Timestamp)
			switch {
			case a == active:
				cells[p] = timelineActiveStyle.Render("◆")
			case !a.Passed():
				cells[p] = timelineFailStyle.Render("✗")
			default:
				cells[p] = timelineMarkStyle.Render("•")
			}
		}
		// Hover rings from the console and network panes share the band.
		if e := m.wb.HoveredConsole; e != nil && tb.Contains(e.Timestamp) {
			cells[pos(e.Timestamp)] = timelineRangeStyle.Render("▲")
		}
		if r := m.wb.HoveredNetwork; r != nil && tb.Contains(r.Timestamp) {
			cells[pos(r.Timestamp)] = timelineRangeStyle.Render("▼")
		}
	}

	band := " " + strings.Join(cells, "")

	lo := timeutil.FormatOffset(tb.Minimum)
	hi := timeutil.FormatOffset(tb.Maximum)
	rangeTag := ""
	if m.wb.SelectedTime != nil {
		rangeTag = timelineRangeStyle.Render("  [range]")
	}
	gap := width - len(lo) - len(hi)
	if gap < 1 {
		gap = 1
	}
	labels := " " + timelineTickStyle.Render(lo) +
		strings.Repeat(" ", gap) +
		timelineTickStyle.Render(hi) + rangeTag

	return band + "\n" + labels
}

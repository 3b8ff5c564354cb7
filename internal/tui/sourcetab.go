package tui

import (
	"fmt"
	"strings"

	"github.com/Jitera-Product/tracebench/internal/trace"
)

// renderSource shows the file referenced by the revealed stack: a
// revealed error's stack when one is pending, otherwise the active
// action's. When neither yields a frame the configured fallback
// location is shown instead.
func (m Model) renderSource(width, height int) string {
	loc := m.revealedLocation()
	if loc == nil {
		return emptyStateStyle.Render("no source location")
	}

	model := m.wb.Model()
	var src *trace.Source
	if model != nil {
		src = model.Sources[loc.File]
	}

	header := detailLabelStyle.Render(truncate(displayPath(loc.File, m.cfg.RootDir), max(10, width-12))) +
		actionTimeStyle.Render(fmt.Sprintf(":%d", loc.Line))
	if m.cfg.OnOpenExternally != nil {
		header += hintDescStyle.Render("  (o opens externally)")
	}

	if src == nil {
		return header + "\n" + emptyStateStyle.Render("source not captured in this trace")
	}

	if !m.sourceReady {
		return header
	}
	view := m.sourceView
	view.Width = width
	view.Height = max(3, height-1)
	view.SetContent(renderSourceLines(src.Content, loc.Line, width))

	// Keep the hit line in view unless the user has scrolled away.
	if view.YOffset == 0 {
		view.SetYOffset(max(0, loc.Line-view.Height/2))
	}
	return header + "\n" + view.View()
}

// renderSourceLines numbers every line and highlights the hit line.
func renderSourceLines(content string, hitLine, width int) string {
	lines := strings.Split(content, "\n")
	var b strings.Builder
	for i, line := range lines {
		no := i + 1
		numbered := sourceLineNoStyle.Render(fmt.Sprintf("%5d │ ", no)) +
			truncate(strings.ReplaceAll(line, "\t", "    "), max(10, width-9))
		if no == hitLine {
			numbered = sourceHitStyle.Render(fmt.Sprintf("%5d ▶ %s", no,
				truncate(strings.ReplaceAll(line, "\t", "    "), max(10, width-9))))
		}
		b.WriteString(numbered)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// displayPath strips the configured root directory prefix.
func displayPath(path, rootDir string) string {
	if rootDir != "" {
		if rel := strings.TrimPrefix(path, rootDir); rel != path {
			return strings.TrimPrefix(rel, "/")
		}
	}
	return path
}

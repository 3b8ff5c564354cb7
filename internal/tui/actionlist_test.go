package tui

import (
	"strings"
	"testing"

	"github.com/Jitera-Product/tracebench/internal/trace"
	"github.com/Jitera-Product/tracebench/internal/workbench"
)

// TestRunStatusLineOmitsUnsetStatus verifies the list header carries a
// status glyph only when the host supplied a run status.
func TestRunStatusLineOmitsUnsetStatus(t *testing.T) {
	m := NewModel(nil, nil, workbench.Config{}, "")
	m.wb.SetModel(trace.NewModel(trace.Model{
		Actions: []*trace.Action{{CallID: "a1", Timestamp: 0, EndTime: 100}},
	}))

	line := m.renderRunStatusLine(80)
	if !strings.Contains(line, "1 actions") {
		t.Errorf("summary missing from header: %q", line)
	}
	if strings.Contains(line, "·") || strings.Contains(line, "passed") || strings.Contains(line, "failed") {
		t.Errorf("unset status rendered a glyph: %q", line)
	}

	m.cfg.Status = workbench.StatusFailed
	line = m.renderRunStatusLine(80)
	if !strings.Contains(line, "failed") {
		t.Errorf("supplied status missing from header: %q", line)
	}
}

// TestPanelTitlesFollowFocus verifies both panel titles render and the
// navigator carries its title while focused.
func TestPanelTitlesFollowFocus(t *testing.T) {
	m := NewModel(nil, nil, workbench.Config{}, "")
	m.width = 100
	m.height = 30

	if out := m.renderNavigator(60, 12); !strings.Contains(out, "Navigator") {
		t.Errorf("navigator title missing:\n%s", out)
	}
	if out := m.renderProperties(60, 12); !strings.Contains(out, "Properties") {
		t.Errorf("properties title missing:\n%s", out)
	}
}

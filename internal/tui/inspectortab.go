package tui

import (
	"fmt"
	"strings"

	"github.com/Jitera-Product/tracebench/internal/trace"
	"github.com/Jitera-Product/tracebench/pkg/jsonutil"
)

// renderInspector draws the locator tab: the picking-mode indicator,
// the currently highlighted locator and a hint derived from the active
// action. A terminal cannot host a DOM snapshot, so picking derives
// the locator from the action's recorded selector params instead.
func (m Model) renderInspector(width int) string {
	var lines []string

	if m.wb.IsInspecting {
		lines = append(lines, inspectorModeStyle.Render("● picking")+
			hintDescStyle.Render("  enter picks from the active action, c clears"))
	} else {
		lines = append(lines, hintDescStyle.Render("○ idle  (i toggles picking)"))
	}
	lines = append(lines, "")

	if m.wb.HighlightedLocator != "" {
		lines = append(lines,
			detailLabelStyle.Render("locator"),
			locatorStyle.Render(truncate(m.wb.HighlightedLocator, max(10, width-2))))
	} else {
		lines = append(lines, emptyStateStyle.Render("no locator picked"))
	}

	if model := m.wb.Model(); model != nil {
		lines = append(lines, "",
			detailLabelStyle.Render("test id attribute ")+
				detailValueStyle.Render(model.TestIDAttributeName),
			detailLabelStyle.Render("language          ")+
				detailValueStyle.Render(model.SdkLanguage))
	}

	if a := m.wb.ActiveAction(); a != nil {
		if hint := deriveLocator(a, m.wb.Model()); hint != "" {
			lines = append(lines, "",
				actionTimeStyle.Render("from "+a.APIName+":"),
				locatorStyle.Render(truncate(hint, max(10, width-2))))
		}
	}

	return strings.Join(lines, "\n")
}

// deriveLocator extracts a selector-ish string from the active action's
// params. Recognized keys in priority order: selector, locator, testId.
func deriveLocator(a *trace.Action, model *trace.Model) string {
	if a == nil {
		return ""
	}
	fields := jsonutil.Fields(a.Params)
	byKey := make(map[string]string, len(fields))
	for _, kv := range fields {
		byKey[kv[0]] = strings.Trim(kv[1], `"`)
	}
	if v := byKey["selector"]; v != "" {
		return v
	}
	if v := byKey["locator"]; v != "" {
		return v
	}
	if v := byKey["testId"]; v != "" {
		attr := trace.DefaultTestIDAttributeName
		if model != nil && model.TestIDAttributeName != "" {
			attr = model.TestIDAttributeName
		}
		return fmt.Sprintf("[%s=%q]", attr, v)
	}
	return ""
}

package tui

import (
	"fmt"
	"strings"

	"github.com/Jitera-Product/tracebench/internal/workbench"
)

// renderers binds every pane to its lazy render callback. Only the
// active tab's callback ever runs; assembling the set is free.
func (m Model) renderers() workbench.PaneRenderers {
	w := m.paneWidth()
	h := m.propertiesHeight() - 2
	return workbench.PaneRenderers{
		Inspector:   func() string { return m.renderInspector(w) },
		Call:        func() string { return m.renderCall(w) },
		Log:         func() string { return m.renderLog(w, h) },
		Errors:      func() string { return m.renderErrors(w, h) },
		Console:     func() string { return m.renderConsole(w, h) },
		Network:     func() string { return m.renderNetwork(w, h) },
		Attachments: func() string { return m.renderAttachments(w, h) },
		Source:      func() string { return m.renderSource(w, h) },
		Annotations: func() string { return m.renderAnnotations(w) },

		Actions:  func() string { return m.renderActionList(m.navigatorWidth(), m.navigatorHeight()) },
		Metadata: func() string { return m.renderMetadata(m.navigatorWidth()) },
	}
}

func (m Model) paneWidth() int {
	if m.wb.DockSide == workbench.DockRight {
		return max(20, m.width-m.width*2/5-2)
	}
	return max(20, m.width-2)
}

func (m Model) navigatorWidth() int {
	if m.wb.DockSide == workbench.DockRight {
		return max(20, m.width*2/5)
	}
	return max(20, m.width)
}

func (m Model) navigatorHeight() int {
	if m.wb.DockSide == workbench.DockRight {
		return m.bodyHeight()
	}
	return max(3, m.bodyHeight()-m.propertiesHeight())
}

// renderNavigator draws the navigator side: its title, two-tab strip
// and the active view.
func (m Model) renderNavigator(width, height int) string {
	tabs := workbench.NavigatorTabs(m.renderers())
	strip := m.renderTabStrip(tabs, m.wb.NavigatorTab, width)
	active := workbench.ActiveTab(tabs, m.wb.NavigatorTab)

	style := panelStyle
	title := panelTitleDimStyle.Render("Navigator")
	if m.focus == focusNavigator {
		style = panelActiveStyle
		title = panelTitleStyle.Render("Navigator")
	}
	body := ""
	if active.Render != nil {
		body = active.Render()
	}
	return style.Width(width - 2).Height(height - 1).Render(title + "  " + strip + "\n" + body)
}

// renderProperties draws the properties sidebar: its title, the
// assembled tab strip and, through the registry, only the active pane.
func (m Model) renderProperties(width, height int) string {
	tabs := workbench.PropertiesTabs(m.wb.Model(), m.wb, m.cfg, m.renderers())
	strip := m.renderTabStrip(tabs, m.wb.PropertiesTab, width)
	active := workbench.ActiveTab(tabs, m.wb.PropertiesTab)

	style := panelStyle
	title := panelTitleDimStyle.Render("Properties")
	if m.focus == focusProperties {
		style = panelActiveStyle
		title = panelTitleStyle.Render("Properties")
	}
	body := ""
	if active.Render != nil {
		body = active.Render()
	}
	return style.Width(width - 2).Height(height - 1).Render(title + "  " + strip + "\n" + body)
}

// renderTabStrip draws one row of tab titles with badge counts.
func (m Model) renderTabStrip(tabs []workbench.Tab, activeID string, width int) string {
	var parts []string
	for _, t := range tabs {
		label := t.Title
		if t.BadgeCount > 0 {
			label += tabBadgeStyle.Render(fmt.Sprintf(" %d", t.BadgeCount))
		}
		if t.ID == activeID {
			parts = append(parts, tabActiveStyle.Render(label))
		} else {
			parts = append(parts, tabInactiveStyle.Render(label))
		}
	}
	return truncate(strings.Join(parts, ""), width*4)
}

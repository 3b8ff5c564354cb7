package workbench

import "github.com/Jitera-Product/tracebench/internal/trace"

// Tab describes one detail tab: identity, title, a badge count for the
// strip, and a render callback the host invokes only when the tab is
// the active one. Descriptors are rebuilt fresh on every relevant state
// change and never persisted.
type Tab struct {
	ID         string
	Title      string
	BadgeCount int
	Render     func() string
}

// PaneRenderers supplies the lazy render callback for each pane. The
// registry never invokes them itself; inactive panes never materialize
// their view.
type PaneRenderers struct {
	Inspector   func() string
	Call        func() string
	Log         func() string
	Errors      func() string
	Console     func() string
	Network     func() string
	Attachments func() string
	Source      func() string
	Annotations func() string

	Actions  func() string
	Metadata func() string
}

// PropertiesTabs assembles the ordered properties-side tab list from
// current derived state.
//
// The base sequence is fixed: inspector, call, log, errors, console,
// network, attachments. Console and network badges honor the current
// time-range selection; error and attachment badges count the whole
// model. An annotations tab is appended only when the host supplied an
// annotations collection, and ShowSourcesFirst relocates the source tab
// to the second position.
func PropertiesTabs(m *trace.Model, st *Store, cfg Config, r PaneRenderers) []Tab {
	sum := trace.Summarize(m)
	tabs := []Tab{
		{ID: TabInspector, Title: "Locator", Render: r.Inspector},
		{ID: TabCall, Title: "Call", Render: r.Call},
		{ID: TabLog, Title: "Log", Render: r.Log},
		{ID: TabErrors, Title: "Errors", BadgeCount: sum.ErrorCount, Render: r.Errors},
		{ID: TabConsole, Title: "Console", BadgeCount: len(ConsoleEntriesIn(m, st.SelectedTime)), Render: r.Console},
		{ID: TabNetwork, Title: "Network", BadgeCount: len(ResourcesIn(m, st.SelectedTime)), Render: r.Network},
		{ID: TabAttachments, Title: "Attachments", BadgeCount: sum.AttachmentCount, Render: r.Attachments},
	}
	if cfg.Annotations != nil {
		tabs = append(tabs, Tab{
			ID:         TabAnnotations,
			Title:      "Annotations",
			BadgeCount: len(cfg.Annotations),
			Render:     r.Annotations,
		})
	}
	src := Tab{ID: TabSource, Title: "Source", Render: r.Source}
	switch {
	case cfg.ShowSourcesFirst:
		tabs = append(tabs, Tab{})
		copy(tabs[2:], tabs[1:])
		tabs[1] = src
	case st.RevealedError != nil || cfg.RevealSource:
		// A reveal selected the source tab; make sure it exists.
		tabs = append(tabs, src)
	}
	return tabs
}

// NavigatorTabs composes the navigator side: the actions list and the
// run metadata view. Always exactly these two.
func NavigatorTabs(r PaneRenderers) []Tab {
	return []Tab{
		{ID: NavigatorActions, Title: "Actions", Render: r.Actions},
		{ID: NavigatorMetadata, Title: "Metadata", Render: r.Metadata},
	}
}

// ActiveTab finds the descriptor matching id, falling back to the first
// tab when the id is absent from the current set (a persisted tab id
// can name a tab that this configuration does not assemble).
func ActiveTab(tabs []Tab, id string) Tab {
	for _, t := range tabs {
		if t.ID == id {
			return t
		}
	}
	if len(tabs) > 0 {
		return tabs[0]
	}
	return Tab{}
}

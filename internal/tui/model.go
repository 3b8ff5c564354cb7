package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/Jitera-Product/tracebench/internal/storage"
	"github.com/Jitera-Product/tracebench/internal/trace"
	"github.com/Jitera-Product/tracebench/internal/workbench"
)

// ────────────────────────────────────────────────────────────
// Focus
// ────────────────────────────────────────────────────────────

// paneFocus identifies which side of the workbench receives key input.
type paneFocus int

const (
	focusNavigator paneFocus = iota
	focusProperties
)

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

type tracesLoadedMsg struct {
	traces []*storage.TraceRecord
}

type modelLoadedMsg struct {
	traceID string
	model   *trace.Model
}

type errMsg struct {
	err error
}

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root bubbletea model. It owns the session store, the
// highlight router and all per-pane cursors; panes themselves are
// stateless render functions over this state.
type Model struct {
	store storage.Store
	cfg   workbench.Config

	wb     *workbench.Store
	router *workbench.Router

	// Trace selector (initial screen).
	showTraceList bool
	traces        []*storage.TraceRecord
	traceCursor   int
	initialTrace  string

	// Per-pane cursors. Each indexes the slice its pane renders.
	actionCursor  int
	errorCursor   int
	consoleCursor int
	networkCursor int
	attachCursor  int
	logScroll     int

	focus paneFocus

	sourceView  viewport.Model
	sourceReady bool

	width  int
	height int

	statusMsg string
	err       error
}

// NewModel creates the root model. If initialTraceID is non-empty the
// workbench opens straight into that trace, skipping the selector.
func NewModel(store storage.Store, settings workbench.Settings, cfg workbench.Config, initialTraceID string) Model {
	wb := workbench.NewStore(settings)
	if cfg.RevealSource {
		wb.SelectPropertiesTab(workbench.TabSource)
	}
	return Model{
		store:         store,
		cfg:           cfg,
		wb:            wb,
		router:        workbench.NewRouter(wb),
		showTraceList: true,
		initialTrace:  initialTraceID,
		statusMsg:     "loading traces...",
	}
}

// Init kicks off the first load.
func (m Model) Init() tea.Cmd {
	if m.initialTrace != "" {
		return m.loadModelCmd(m.initialTrace)
	}
	return m.loadTracesCmd()
}

// ────────────────────────────────────────────────────────────
// Commands
// ────────────────────────────────────────────────────────────

func (m Model) loadTracesCmd() tea.Cmd {
	return func() tea.Msg {
		traces, err := m.store.ListTraces(200)
		if err != nil {
			return errMsg{err}
		}
		return tracesLoadedMsg{traces}
	}
}

func (m Model) loadModelCmd(traceID string) tea.Cmd {
	return func() tea.Msg {
		tm, err := m.store.LoadModel(traceID)
		if err != nil {
			return errMsg{err}
		}
		return modelLoadedMsg{traceID: traceID, model: tm}
	}
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.sourceReady {
			m.sourceView = viewport.New(msg.Width, m.propertiesHeight()-2)
			m.sourceReady = true
		} else {
			m.sourceView.Width = msg.Width
			m.sourceView.Height = m.propertiesHeight() - 2
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tracesLoadedMsg:
		m.traces = msg.traces
		m.traceCursor = clamp(m.traceCursor, 0, max(0, len(m.traces)-1))
		if len(m.traces) == 0 {
			m.statusMsg = "no traces imported yet"
		} else {
			m.statusMsg = fmt.Sprintf("%d traces", len(m.traces))
		}
		return m, nil

	case modelLoadedMsg:
		m.wb.SetModel(msg.model)
		m.showTraceList = false
		m.resetCursors()
		if m.cfg.Status == workbench.StatusNone {
			if msg.model.FailedAction() != nil {
				m.cfg.Status = workbench.StatusFailed
			} else {
				m.cfg.Status = workbench.StatusPassed
			}
		}
		sum := trace.Summarize(msg.model)
		m.statusMsg = fmt.Sprintf("%s  %d actions, %d errors",
			shortID(msg.traceID, 8), sum.ActionCount, sum.ErrorCount)
		return m, nil

	case errMsg:
		m.err = msg.err
		m.statusMsg = msg.err.Error()
		return m, nil
	}

	return m, nil
}

func (m *Model) resetCursors() {
	m.actionCursor = 0
	m.errorCursor = 0
	m.consoleCursor = 0
	m.networkCursor = 0
	m.attachCursor = 0
	m.logScroll = 0
	if a := m.wb.SelectedAction(); a != nil {
		for i, act := range m.wb.Model().Actions {
			if act == a {
				m.actionCursor = i
				break
			}
		}
	}
}

// ────────────────────────────────────────────────────────────
// Key handling
// ────────────────────────────────────────────────────────────

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	// An inert workbench displays state but accepts no interaction
	// beyond quitting.
	if m.cfg.Inert {
		return m, nil
	}

	if m.showTraceList {
		return m.handleTraceListKey(key)
	}
	return m.handleWorkbenchKey(key)
}

func (m Model) handleTraceListKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		m.traceCursor = clamp(m.traceCursor+1, 0, max(0, len(m.traces)-1))
	case "k", "up":
		m.traceCursor = clamp(m.traceCursor-1, 0, max(0, len(m.traces)-1))
	case "r":
		m.statusMsg = "reloading..."
		return m, m.loadTracesCmd()
	case "enter":
		if m.traceCursor < len(m.traces) {
			rec := m.traces[m.traceCursor]
			m.statusMsg = "loading " + shortID(rec.TraceID, 8) + "..."
			return m, m.loadModelCmd(rec.TraceID)
		}
	}
	return m, nil
}

func (m Model) handleWorkbenchKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc":
		// Hover is transient; the first esc clears it, the second
		// returns to the trace selector.
		if m.wb.HighlightedAction() != nil || m.wb.HoveredConsole != nil || m.wb.HoveredNetwork != nil {
			m.router.HoverAction(nil)
			m.router.HoverConsole(nil)
			m.router.HoverNetwork(nil)
			return m, nil
		}
		m.showTraceList = true
		return m, m.loadTracesCmd()

	case "tab":
		if m.focus == focusNavigator {
			m.focus = focusProperties
		} else {
			m.focus = focusNavigator
		}
		return m, nil

	case "i":
		m.wb.SetIsInspecting(!m.wb.IsInspecting)
		m.focus = focusProperties
		return m, nil

	case "d":
		if m.wb.DockSide == workbench.DockBottom {
			m.wb.SetDockSide(workbench.DockRight)
		} else {
			m.wb.SetDockSide(workbench.DockBottom)
		}
		return m, nil

	case "z":
		// Zoom the timeline to the active action's span.
		if a := m.wb.ActiveAction(); a != nil {
			end := a.EndTime
			if end == 0 {
				end = a.Timestamp
			}
			m.wb.SelectTimeRange(workbench.TimeBoundary{Minimum: a.Timestamp, Maximum: end})
		}
		return m, nil

	case "u":
		m.wb.ClearTimeRange()
		return m, nil

	case "m":
		if m.wb.NavigatorTab == workbench.NavigatorActions {
			m.wb.SelectNavigatorTab(workbench.NavigatorMetadata)
		} else {
			m.wb.SelectNavigatorTab(workbench.NavigatorActions)
		}
		return m, nil

	case "h", "left":
		if m.focus == focusProperties {
			m.cyclePropertiesTab(-1)
		}
		return m, nil

	case "l", "right":
		if m.focus == focusProperties {
			m.cyclePropertiesTab(+1)
		}
		return m, nil
	}

	if m.focus == focusNavigator {
		return m.handleNavigatorKey(key)
	}
	return m.handlePropertiesKey(key)
}

// cyclePropertiesTab moves the active properties tab by delta within
// the currently assembled tab set.
func (m *Model) cyclePropertiesTab(delta int) {
	tabs := workbench.PropertiesTabs(m.wb.Model(), m.wb, m.cfg, m.renderers())
	if len(tabs) == 0 {
		return
	}
	cur := 0
	for i, t := range tabs {
		if t.ID == m.wb.PropertiesTab {
			cur = i
			break
		}
	}
	next := (cur + delta + len(tabs)) % len(tabs)
	m.wb.SelectPropertiesTab(tabs[next].ID)
}

func (m Model) handleNavigatorKey(key string) (tea.Model, tea.Cmd) {
	if m.wb.NavigatorTab != workbench.NavigatorActions {
		return m, nil
	}
	actions := m.visibleActions()
	switch key {
	case "j", "down":
		m.actionCursor = clamp(m.actionCursor+1, 0, max(0, len(actions)-1))
		m.hoverCursorAction(actions)
	case "k", "up":
		m.actionCursor = clamp(m.actionCursor-1, 0, max(0, len(actions)-1))
		m.hoverCursorAction(actions)
	case "g":
		m.actionCursor = 0
		m.hoverCursorAction(actions)
	case "G":
		m.actionCursor = max(0, len(actions)-1)
		m.hoverCursorAction(actions)
	case "enter":
		if m.actionCursor < len(actions) {
			m.wb.SetSelectedAction(actions[m.actionCursor])
			m.router.HoverAction(nil)
		}
	}
	return m, nil
}

func (m *Model) hoverCursorAction(actions []*trace.Action) {
	if m.actionCursor < len(actions) {
		m.router.HoverAction(actions[m.actionCursor])
	} else {
		m.router.HoverAction(nil)
	}
}

func (m Model) handlePropertiesKey(key string) (tea.Model, tea.Cmd) {
	switch m.wb.PropertiesTab {

	case workbench.TabErrors:
		model := m.wb.Model()
		n := 0
		if model != nil {
			n = len(model.Errors)
		}
		switch key {
		case "j", "down":
			m.errorCursor = clamp(m.errorCursor+1, 0, max(0, n-1))
		case "k", "up":
			m.errorCursor = clamp(m.errorCursor-1, 0, max(0, n-1))
		case "enter":
			if model != nil && m.errorCursor < n {
				m.wb.RevealError(model.Errors[m.errorCursor])
			}
		}

	case workbench.TabConsole:
		entries := workbench.ConsoleEntriesIn(m.wb.Model(), m.wb.SelectedTime)
		switch key {
		case "j", "down":
			m.consoleCursor = clamp(m.consoleCursor+1, 0, max(0, len(entries)-1))
		case "k", "up":
			m.consoleCursor = clamp(m.consoleCursor-1, 0, max(0, len(entries)-1))
		}
		if m.consoleCursor < len(entries) {
			m.router.HoverConsole(entries[m.consoleCursor])
		}

	case workbench.TabNetwork:
		resources := workbench.ResourcesIn(m.wb.Model(), m.wb.SelectedTime)
		switch key {
		case "j", "down":
			m.networkCursor = clamp(m.networkCursor+1, 0, max(0, len(resources)-1))
		case "k", "up":
			m.networkCursor = clamp(m.networkCursor-1, 0, max(0, len(resources)-1))
		}
		if m.networkCursor < len(resources) {
			m.router.HoverNetwork(resources[m.networkCursor])
		}

	case workbench.TabAttachments:
		atts := m.allAttachments()
		switch key {
		case "j", "down":
			m.attachCursor = clamp(m.attachCursor+1, 0, max(0, len(atts)-1))
		case "k", "up":
			m.attachCursor = clamp(m.attachCursor-1, 0, max(0, len(atts)-1))
		case "enter":
			if m.attachCursor < len(atts) {
				m.wb.RevealAttachment(atts[m.attachCursor])
			}
		}

	case workbench.TabLog:
		switch key {
		case "j", "down":
			m.logScroll++
		case "k", "up":
			m.logScroll = max(0, m.logScroll-1)
		}

	case workbench.TabSource:
		switch key {
		case "j", "down":
			m.sourceView.LineDown(1)
		case "k", "up":
			m.sourceView.LineUp(1)
		case "ctrl+d":
			m.sourceView.HalfViewDown()
		case "ctrl+u":
			m.sourceView.HalfViewUp()
		case "o":
			if m.cfg.OnOpenExternally != nil {
				if loc := m.revealedLocation(); loc != nil {
					m.cfg.OnOpenExternally(*loc)
				}
			}
		}

	case workbench.TabInspector:
		switch key {
		case "enter":
			// Picking on the snapshot stand-in derives a locator from
			// the active action's params.
			if loc := deriveLocator(m.wb.ActiveAction(), m.wb.Model()); loc != "" {
				m.wb.PickLocator(loc)
			}
		case "c":
			m.wb.PickLocator("")
		}
	}
	return m, nil
}

// ────────────────────────────────────────────────────────────
// Derived slices for cursored panes
// ────────────────────────────────────────────────────────────

// visibleActions is what the action list shows: all actions, or the
// range-filtered subset when a time window is selected.
func (m Model) visibleActions() []*trace.Action {
	return workbench.ActionsIn(m.wb.Model(), m.wb.SelectedTime)
}

// allAttachments flattens attachments across actions in model order.
func (m Model) allAttachments() []*trace.Attachment {
	model := m.wb.Model()
	if model == nil {
		return nil
	}
	var out []*trace.Attachment
	for _, a := range model.Actions {
		out = append(out, a.Attachments...)
	}
	return out
}

// revealedLocation is the top frame of the revealed stack, or the
// configured fallback.
func (m Model) revealedLocation() *trace.SourceLocation {
	if stack := m.wb.RevealedStack(); len(stack) > 0 {
		loc := stack[0].SourceLocation
		return &loc
	}
	return m.cfg.FallbackLocation
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "initializing..."
	}
	if m.showTraceList {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderHeader(),
			m.renderTraceList(),
			m.renderFooter(),
		)
	}

	sections := []string{m.renderHeader()}
	if !m.cfg.HideTimeline {
		sections = append(sections, m.renderTimeline())
	}
	sections = append(sections, m.renderBody(), m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderBody lays out the navigator and the properties sidebar
// according to the docked side.
func (m Model) renderBody() string {
	if m.wb.DockSide == workbench.DockRight {
		navW := m.width * 2 / 5
		propW := m.width - navW
		nav := m.renderNavigator(navW, m.bodyHeight())
		props := m.renderProperties(propW, m.bodyHeight())
		return lipgloss.JoinHorizontal(lipgloss.Top, nav, props)
	}
	navH := m.bodyHeight() - m.propertiesHeight()
	nav := m.renderNavigator(m.width, navH)
	props := m.renderProperties(m.width, m.propertiesHeight())
	return lipgloss.JoinVertical(lipgloss.Left, nav, props)
}

// bodyHeight is the vertical space left after header, timeline and
// footer.
func (m Model) bodyHeight() int {
	h := m.height - 2 // header + footer
	if !m.cfg.HideTimeline {
		h -= 2
	}
	return max(4, h)
}

// propertiesHeight is the sidebar's share of the body when docked at
// the bottom, or the full body height when docked right.
func (m Model) propertiesHeight() int {
	if m.wb.DockSide == workbench.DockRight {
		return m.bodyHeight()
	}
	return max(3, m.bodyHeight()*3/5)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package workbench

import "github.com/Jitera-Product/tracebench/internal/trace"

// Tab and navigator identifiers. Tab order is fixed by PropertiesTabs;
// these ids are the contract between the store, the registry and the
// renderers.
const (
	TabInspector   = "inspector"
	TabCall        = "call"
	TabLog         = "log"
	TabErrors      = "errors"
	TabConsole     = "console"
	TabNetwork     = "network"
	TabAttachments = "attachments"
	TabSource      = "source"
	TabAnnotations = "annotations"

	NavigatorActions  = "actions"
	NavigatorMetadata = "metadata"
)

// DockSide is where the properties sidebar sits.
type DockSide string

const (
	DockBottom DockSide = "bottom"
	DockRight  DockSide = "right"
)

// Persisted preference keys.
const (
	settingPropertiesTab   = "propertiesTab"
	settingSidebarLocation = "propertiesSidebarLocation"
)

// Settings is the injected key/value preference store. Values persist
// across sessions; the workbench only ever reads and writes the keys
// above.
type Settings interface {
	Get(key, fallback string) string
	Set(key, value string)
}

// NopSettings discards writes and always answers with the fallback.
type NopSettings struct{}

func (NopSettings) Get(_, fallback string) string { return fallback }
func (NopSettings) Set(_, _ string)               {}

// ────────────────────────────────────────────────────────────
// Store
// ────────────────────────────────────────────────────────────

// Store holds all user-controlled UI state for one workbench session.
// It is the single source of truth: panels read derived slices of it
// and mutate it only through the named operations below. All
// transitions are synchronous; last write wins per field.
type Store struct {
	model *trace.Model

	SelectedCallID     string
	HighlightedCallID  string
	SelectedTime       *TimeBoundary
	IsInspecting       bool
	HighlightedLocator string
	NavigatorTab       string
	PropertiesTab      string
	DockSide           DockSide
	RevealedError      *trace.TraceError
	RevealedAttachment *trace.Attachment

	// Latest hovered entry per kind, written via the highlight router.
	HoveredConsole *trace.ConsoleEntry
	HoveredNetwork *trace.Resource

	settings Settings
}

// NewStore creates a session store, restoring the persisted properties
// tab and dock side.
func NewStore(settings Settings) *Store {
	if settings == nil {
		settings = NopSettings{}
	}
	s := &Store{
		NavigatorTab:  NavigatorActions,
		PropertiesTab: settings.Get(settingPropertiesTab, TabCall),
		DockSide:      DockSide(settings.Get(settingSidebarLocation, string(DockBottom))),
		settings:      settings,
	}
	return s
}

// Model returns the current trace model, possibly nil.
func (s *Store) Model() *trace.Model { return s.model }

// SetModel replaces the trace model. The time-range selection and any
// pending reveal belong to the previous model's context and are
// discarded; a stale SelectedCallID is left in place and simply falls
// through the resolver chain.
func (s *Store) SetModel(m *trace.Model) {
	s.model = m
	s.SelectedTime = nil
	s.RevealedError = nil
	s.RevealedAttachment = nil
	s.HighlightedCallID = ""
	s.HoveredConsole = nil
	s.HoveredNetwork = nil
}

// SetSelectedAction records a persistent selection (nil clears it).
// Selecting an action supersedes any pending error reveal.
func (s *Store) SetSelectedAction(a *trace.Action) {
	if a == nil {
		s.SelectedCallID = ""
	} else {
		s.SelectedCallID = a.CallID
	}
	s.RevealedError = nil
}

// SetHighlightedAction records a transient hover preview. It never
// touches the persistent selection.
func (s *Store) SetHighlightedAction(a *trace.Action) {
	if a == nil {
		s.HighlightedCallID = ""
		return
	}
	s.HighlightedCallID = a.CallID
}

// SelectPropertiesTab activates a properties tab. Leaving the inspector
// tab always leaves inspecting mode, so IsInspecting can only be true
// while the inspector tab is active.
func (s *Store) SelectPropertiesTab(id string) {
	s.PropertiesTab = id
	if id != TabInspector {
		s.IsInspecting = false
	}
	s.settings.Set(settingPropertiesTab, id)
}

// SetIsInspecting toggles locator-picking mode. Turning it on first
// brings the inspector tab forward; turning it off leaves the tab
// alone.
func (s *Store) SetIsInspecting(v bool) {
	if v && !s.IsInspecting {
		s.SelectPropertiesTab(TabInspector)
	}
	s.IsInspecting = v
}

// RevealError brings the source tab forward for an error's stack.
func (s *Store) RevealError(e *trace.TraceError) {
	s.RevealedError = e
	s.SelectPropertiesTab(TabSource)
}

// RevealAttachment brings the attachments tab forward for one
// attachment.
func (s *Store) RevealAttachment(a *trace.Attachment) {
	s.RevealedAttachment = a
	s.SelectPropertiesTab(TabAttachments)
}

// PickLocator records a locator picked on the snapshot and brings the
// inspector tab forward.
func (s *Store) PickLocator(text string) {
	s.HighlightedLocator = text
	s.SelectPropertiesTab(TabInspector)
}

// SelectNavigatorTab activates a navigator-side tab.
func (s *Store) SelectNavigatorTab(id string) {
	s.NavigatorTab = id
}

// SetDockSide moves the properties sidebar and persists the choice.
func (s *Store) SetDockSide(side DockSide) {
	s.DockSide = side
	s.settings.Set(settingSidebarLocation, string(side))
}

// SelectTimeRange narrows the shared time window. This is the only
// user-driven path to SelectedTime.
func (s *Store) SelectTimeRange(tb TimeBoundary) {
	r := tb
	s.SelectedTime = &r
}

// ClearTimeRange restores the full window.
func (s *Store) ClearTimeRange() {
	s.SelectedTime = nil
}

// ────────────────────────────────────────────────────────────
// Derived accessors
// ────────────────────────────────────────────────────────────

// SelectedAction resolves the persistent selection via the priority
// chain in resolve.go.
func (s *Store) SelectedAction() *trace.Action {
	return ResolveSelectedAction(s.model, s.SelectedCallID)
}

// HighlightedAction resolves the hover preview, nil when the hovered id
// no longer exists in the model.
func (s *Store) HighlightedAction() *trace.Action {
	if s.model == nil {
		return nil
	}
	return s.model.ActionByCallID(s.HighlightedCallID)
}

// ActiveAction is what the read-only detail panes show: the hover
// preview when present, otherwise the selection.
func (s *Store) ActiveAction() *trace.Action {
	return ResolveActiveAction(s.HighlightedAction(), s.SelectedAction())
}

// RevealedStack is the stack the source pane renders.
func (s *Store) RevealedStack() []trace.StackFrame {
	return ResolveRevealedStack(s.RevealedError, s.ActiveAction())
}

// Boundary is the current timeline window: the explicit range selection
// when one exists, otherwise the model-derived window.
func (s *Store) Boundary() TimeBoundary {
	if s.SelectedTime != nil {
		return *s.SelectedTime
	}
	return ComputeBoundary(s.model)
}

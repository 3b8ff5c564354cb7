// Package trace defines the immutable in-memory representation of a
// recorded execution: an ordered sequence of timestamped actions plus
// the log, network, error and source collections recorded alongside
// them. The model is built once by a loader and never mutated by the
// workbench; every panel renders a slice of it.
package trace

// Default metadata values applied when a recording omits them.
const (
	DefaultSdkLanguage         = "javascript"
	DefaultTestIDAttributeName = "data-testid"
)

// ============================================================
// Entities
// ============================================================

// SourceLocation points into a source file referenced by a stack frame.
type SourceLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// StackFrame is one frame of a recorded call stack.
type StackFrame struct {
	SourceLocation
	Function string `json:"function,omitempty"`
}

// Attachment is a named artifact recorded by an action (screenshot,
// downloaded file, trace blob).
type Attachment struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Path        string `json:"path,omitempty"`
	Body        string `json:"body,omitempty"`
}

// Action is one recorded API call in the execution. Created when the
// model loads, immutable thereafter.
type Action struct {
	CallID      string        `json:"callId"`
	APIName     string        `json:"apiName"`
	Timestamp   float64       `json:"startTime"` // ms
	EndTime     float64       `json:"endTime"`   // ms, 0 while in flight
	Params      string        `json:"params,omitempty"`
	Log         []string      `json:"log,omitempty"`
	Stack       []StackFrame  `json:"stack,omitempty"`
	Error       string        `json:"error,omitempty"`
	Attachments []*Attachment `json:"attachments,omitempty"`
}

// Passed reports whether the action completed without an error.
func (a *Action) Passed() bool { return a.Error == "" }

// Duration returns the action's elapsed time in ms, 0 if still running.
func (a *Action) Duration() float64 {
	if a.EndTime == 0 {
		return 0
	}
	return a.EndTime - a.Timestamp
}

// TraceError is a recorded failure. It either references an action by
// CallID (a weak reference, resolved against the model on demand) or
// stands alone as a file/test-level error.
type TraceError struct {
	Message      string       `json:"message"`
	Stack        []StackFrame `json:"stack,omitempty"`
	ActionCallID string       `json:"actionCallId,omitempty"`
}

// ConsoleEntry is one console message captured during the run.
type ConsoleEntry struct {
	Timestamp   float64 `json:"timestamp"` // ms
	MessageType string  `json:"type"`      // "log", "warning", "error"
	Text        string  `json:"text"`
}

// Resource is one network request/response pair captured during the run.
type Resource struct {
	Timestamp   float64 `json:"timestamp"` // ms, request start
	Method      string  `json:"method"`
	URL         string  `json:"url"`
	Status      int     `json:"status"`
	ContentType string  `json:"contentType,omitempty"`
	DurationMs  float64 `json:"durationMs"`
}

// Source holds the content of one source file referenced by stacks.
type Source struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// ============================================================
// Model
// ============================================================

// Model is the complete recorded execution. All collections are ordered
// as recorded. The workbench holds a reference and never writes.
type Model struct {
	Title    string
	Actions  []*Action
	Sources  map[string]*Source
	Errors   []*TraceError
	Console  []*ConsoleEntry
	Network  []*Resource

	StartTime float64 // ms
	EndTime   float64 // ms
	WallTime  float64 // ms since epoch at StartTime

	SdkLanguage         string
	TestIDAttributeName string

	byCallID map[string]*Action
}

// NewModel indexes the actions by CallID and fills metadata defaults.
// The caller hands over ownership of all slices.
func NewModel(m Model) *Model {
	if m.SdkLanguage == "" {
		m.SdkLanguage = DefaultSdkLanguage
	}
	if m.TestIDAttributeName == "" {
		m.TestIDAttributeName = DefaultTestIDAttributeName
	}
	if m.Sources == nil {
		m.Sources = make(map[string]*Source)
	}
	m.byCallID = make(map[string]*Action, len(m.Actions))
	for _, a := range m.Actions {
		m.byCallID[a.CallID] = a
	}
	return &m
}

// ActionByCallID resolves a CallID against the model. Returns nil for
// unknown or stale ids; a stale id is not an error condition.
func (m *Model) ActionByCallID(id string) *Action {
	if m == nil || id == "" {
		return nil
	}
	return m.byCallID[id]
}

// FailedAction returns the first action in sequence that recorded an
// error, or nil when the run passed.
func (m *Model) FailedAction() *Action {
	if m == nil {
		return nil
	}
	for _, a := range m.Actions {
		if !a.Passed() {
			return a
		}
	}
	return nil
}

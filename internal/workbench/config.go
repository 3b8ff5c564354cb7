package workbench

import "github.com/Jitera-Product/tracebench/internal/trace"

// RunStatus is the overall state of the run being inspected, supplied
// by the host for live traces.
type RunStatus int

const (
	StatusNone RunStatus = iota
	StatusScheduled
	StatusRunning
	StatusPassed
	StatusFailed
	StatusSkipped
)

func (s RunStatus) String() string {
	switch s {
	case StatusScheduled:
		return "scheduled"
	case StatusRunning:
		return "running"
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return ""
	}
}

// Annotation is a host-supplied note attached to the run. A non-nil
// annotations slice, even an empty one, makes the annotations tab
// appear.
type Annotation struct {
	Type        string
	Description string
}

// Config carries host-controlled workbench options. The zero value is
// a fully interactive workbench with the default tab set.
type Config struct {
	ShowSourcesFirst bool
	IsLive           bool
	HideTimeline     bool
	Inert            bool // disables all interaction
	RevealSource     bool // forces the source tab on startup

	RootDir          string
	FallbackLocation *trace.SourceLocation // shown when no action is selected

	Status      RunStatus
	Annotations []Annotation

	// OnOpenExternally is invoked by the source pane when the user asks
	// to open a location outside the workbench. May be nil.
	OnOpenExternally func(loc trace.SourceLocation)
}

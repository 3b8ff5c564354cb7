package workbench

import (
	"testing"

	"github.com/Jitera-Product/tracebench/internal/trace"
)

// TestDeriveWithoutRange verifies that an absent range selection means
// "everything" and a missing model means empty collections.
func TestDeriveWithoutRange(t *testing.T) {
	m := trace.NewModel(trace.Model{
		Console: []*trace.ConsoleEntry{{Timestamp: 1}, {Timestamp: 2}},
		Network: []*trace.Resource{{Timestamp: 1}},
		Actions: []*trace.Action{{CallID: "c1", Timestamp: 1}},
	})
	if got := len(ConsoleEntriesIn(m, nil)); got != 2 {
		t.Errorf("expected 2 console entries, got %d", got)
	}
	if got := len(ResourcesIn(m, nil)); got != 1 {
		t.Errorf("expected 1 resource, got %d", got)
	}
	if got := len(ActionsIn(m, nil)); got != 1 {
		t.Errorf("expected 1 action, got %d", got)
	}

	if ConsoleEntriesIn(nil, nil) != nil || ResourcesIn(nil, nil) != nil || ActionsIn(nil, nil) != nil {
		t.Error("expected empty collections for missing model")
	}
}

// TestDeriveWithRange verifies inclusive window filtering across all
// three derived collections.
func TestDeriveWithRange(t *testing.T) {
	m := trace.NewModel(trace.Model{
		Console: []*trace.ConsoleEntry{{Timestamp: 5}, {Timestamp: 15}, {Timestamp: 25}},
		Network: []*trace.Resource{{Timestamp: 10}, {Timestamp: 30}},
		Actions: []*trace.Action{{CallID: "a", Timestamp: 9}, {CallID: "b", Timestamp: 21}},
	})
	tb := &TimeBoundary{Minimum: 5, Maximum: 20}

	if got := len(ConsoleEntriesIn(m, tb)); got != 2 {
		t.Errorf("expected 2 console entries in window, got %d", got)
	}
	if got := len(ResourcesIn(m, tb)); got != 1 {
		t.Errorf("expected 1 resource in window, got %d", got)
	}
	acts := ActionsIn(m, tb)
	if len(acts) != 1 || acts[0].CallID != "a" {
		t.Errorf("expected action a in window, got %v", acts)
	}
}

package workbench

import "github.com/Jitera-Product/tracebench/internal/trace"

// Router mediates hover events between independently rendered panels.
// The action list, network pane and console pane each publish the
// object under the cursor; the timeline and detail panes read the
// stored hover fields back off the Store. No panel ever calls into
// another panel, and hover never mutates the persistent selection.
type Router struct {
	store *Store
}

// NewRouter wires a router to the session store.
func NewRouter(store *Store) *Router {
	return &Router{store: store}
}

// HoverAction publishes the action under the cursor in the action
// list (nil on leave).
func (r *Router) HoverAction(a *trace.Action) {
	r.store.SetHighlightedAction(a)
}

// HoverConsole publishes the console entry under the cursor (nil on
// leave).
func (r *Router) HoverConsole(e *trace.ConsoleEntry) {
	r.store.HoveredConsole = e
}

// HoverNetwork publishes the network resource under the cursor (nil on
// leave).
func (r *Router) HoverNetwork(res *trace.Resource) {
	r.store.HoveredNetwork = res
}

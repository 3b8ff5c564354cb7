// Package tui implements the tracebench terminal workbench.
//
// Every pane is a dumb renderer over the workbench store: it reads a
// slice of derived state and publishes interactions back through the
// store's named operations or the highlight router. Panes never call
// into each other.
//
// Component architecture:
//
//	model.go        — root model, message routing, Init/Update
//	theme.go        — centralized color + style definitions
//	header.go       — top bar + status footer with keyboard hints
//	tracelist.go    — trace selector (initial screen)
//	timeline.go     — boundary-scaled action band with highlight marks
//	actionlist.go   — navigator: action list with run-status header
//	metadata.go     — navigator: recording metadata
//	properties.go   — tab strip + active properties pane dispatch
//	panes.go        — call/log/errors/console/network/attachments/
//	                  annotations pane renderers
//	sourcetab.go    — source pane over the revealed stack (viewport)
//	inspectortab.go — locator inspector + snapshot stand-in
//	helpers.go      — truncation, ids, clamping
package tui

// Package workbench implements the coordination core of the trace
// workbench: the state shared by every panel and the rules that keep
// the panels consistent with each other.
//
// Component architecture:
//
//	state.go     — selection state store, the single source of truth
//	resolve.go   — selected/active action resolution priority chain
//	boundary.go  — timeline window derivation and correction
//	tabs.go      — ordered, conditional tab descriptors with lazy render
//	highlight.go — hover routing between independently rendered panels
//	derive.go    — time-window filtered views of console/network entries
//	config.go    — workbench configuration supplied by the host
//
// Everything here is synchronous and allocation-light: derived values
// are pure functions of the model reference and the store fields, and
// may be recomputed on every hover event. Rendering lives elsewhere;
// no type in this package imports a UI library.
package workbench

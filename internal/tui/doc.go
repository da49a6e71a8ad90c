// Package tui implements the termwallet terminal user interface.
//
// The screen is a single Bubble Tea program with a three-region layout
// drawn with Lipgloss: a header titled "terminal wallet", a content area
// showing the active page, and a footer with the quit hint.
//
//	model.go    root model, poll tick, Init/Update/View
//	keys.go     key bindings
//	layout.go   region sizing and bordered boxes
//	theme.go    colors and styles
//	run.go      terminal acquisition and program lifecycle
//	helpers.go  line fitting
package tui

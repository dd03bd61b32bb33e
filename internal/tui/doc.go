// Package tui implements the chasecards terminal user interface.
//
// Built with Charmbracelet's BubbleTea, Lipgloss, and Bubbles.
//
// Component architecture:
//
//	model.go    — root model, message routing, Init/Update/View
//	gate.go     — startup gate (font load → ready)
//	config.go   — Config and defaults
//	theme.go    — centralized color + style definitions
//	keys.go     — key bindings
//	header.go   — top bar and footer hints
//	cardlist.go — scrollable card list and hit testing
//	carditem.go — card item description + rendering
//	detail.go   — detail screen (navigate variant)
//	art.go      — card image → half-block art
//	helpers.go  — truncation, clamping
package tui

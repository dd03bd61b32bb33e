package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/Mr-Dark-debug/chasecards/internal/selection"
)

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Press key.Binding
	Back  key.Binding
	Quit  key.Binding
}

func newKeyMap(variant selection.Policy) keyMap {
	pressDesc := "expand"
	backDesc := "collapse"
	if variant == selection.PolicyNavigate {
		pressDesc = "open"
		backDesc = "back"
	}

	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", pressDesc),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", backDesc),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// listHints are shown under the card list.
func (k keyMap) listHints() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Press, k.Back, k.Quit}
}

// detailHints are shown under the detail screen.
func (k keyMap) detailHints() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

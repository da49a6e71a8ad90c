package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Home    key.Binding
	Welcome key.Binding
}

// Only these three keys do anything. Every other key, ctrl+c included, is a no-op.
var keys = keyMap{
	Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Home:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "go home")),
	Welcome: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "welcome")),
}

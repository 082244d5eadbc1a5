package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("<arrow-up>", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("<arrow-down>", "move down"),
		),
		// ctrl+j is a bare line feed (10), enter a carriage return (13)
		Choose: key.NewBinding(
			key.WithKeys("enter", "ctrl+j"),
			key.WithHelp("<enter>", "choose"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "m", "M"),
			key.WithHelp("<esc>", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("<ctrl+c>", "quit"),
		),
	}
}

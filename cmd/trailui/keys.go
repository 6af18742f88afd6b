package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the demo's key bindings.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	Descend   key.Binding
	Up        key.Binding
	RateUp    key.Binding
	RateDown  key.Binding
	Precision key.Binding
	Variant   key.Binding
	Separator key.Binding
	Readonly  key.Binding
	Quit      key.Binding
}

var keys = KeyMap{
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h", "prev crumb"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l", "next crumb"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "go to crumb"),
	),
	Descend: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j", "descend"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k", "up a level"),
	),
	RateUp: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "value +0.5"),
	),
	RateDown: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "value -0.5"),
	),
	Precision: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "toggle precision"),
	),
	Variant: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "cycle variant"),
	),
	Separator: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "cycle separator"),
	),
	Readonly: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "toggle readonly"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

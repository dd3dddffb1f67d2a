package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the task list TUI.
type KeyMap struct {
	// Focus switching between the title input and the list.
	FocusToggle key.Binding

	// Title input.
	Submit key.Binding
	Cancel key.Binding // Clear the input.

	// List navigation.
	Up   key.Binding
	Down key.Binding

	// List mutations.
	Toggle         key.Binding
	Remove         key.Binding
	ClearCompleted key.Binding // Disabled while nothing is completed.

	Quit      key.Binding // List focus only; "q" is text in the input.
	Interrupt key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	FocusToggle: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "focus"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "add"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "toggle"),
	),
	Remove: key.NewBinding(
		key.WithKeys("d", "x", "delete"),
		key.WithHelp("d", "remove"),
	),
	ClearCompleted: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear completed"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	Interrupt: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

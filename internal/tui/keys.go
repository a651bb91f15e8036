package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the terminal frontend.
type keyMap struct {
	// Counter
	Increment    key.Binding
	Decrement    key.Binding
	ResetCounter key.Binding

	// Timer
	Toggle     key.Binding
	ResetTimer key.Binding
	Edit       key.Binding
	Preset     key.Binding

	// Editing
	Confirm key.Binding
	Cancel  key.Binding

	// Global
	CycleTheme key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Increment: key.NewBinding(
			key.WithKeys("=", "+"),
			key.WithHelp("+", "Increment"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "Decrement"),
		),
		ResetCounter: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Reset counter"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Start/stop"),
		),
		ResetTimer: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reset timer"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "Edit time"),
		),
		Preset: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Preset"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Edit, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increment, k.Decrement, k.ResetCounter},
		{k.Toggle, k.ResetTimer, k.Edit, k.Preset},
		{k.Confirm, k.Cancel},
		{k.CycleTheme, k.Help, k.Quit},
	}
}

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Input
	Submit key.Binding // Add the typed task (enter, or ctrl+enter which terminals send as ctrl+j)

	// Navigation
	Up    key.Binding
	Down  key.Binding
	Focus key.Binding // Switch between input and list

	// Task actions (list focus)
	Toggle key.Binding // Toggle completion
	Delete key.Binding // Remove task

	// General
	Help      key.Binding // Toggle full help
	Quit      key.Binding // Quit from the list
	ForceQuit key.Binding // Quit from anywhere
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter", "ctrl+j", "ctrl+s"),
			key.WithHelp("enter", "add"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "esc"),
			key.WithHelp("tab", "switch focus"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", "toggle"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete", "backspace"),
			key.WithHelp("d", "delete"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// inputKeyMap is the help.KeyMap shown while the input is focused.
type inputKeyMap KeyMap

// ShortHelp returns keybindings to show in the short help view.
func (k inputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Focus, k.ForceQuit}
}

// FullHelp returns keybindings for the expanded help view.
func (k inputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Delete, k.Focus, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus},       // Navigation
		{k.Toggle, k.Delete},          // Task actions
		{k.Submit},                    // Input
		{k.Help, k.Quit, k.ForceQuit}, // General
	}
}

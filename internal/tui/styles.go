package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color

	// Task text
	TextNormal   lipgloss.Color
	TextSelected lipgloss.Color
	TextDone     lipgloss.Color
	TextFading   lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green

	TextNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TextSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	TextDone:     lipgloss.Color("#636E72"), // Gray
	TextFading:   lipgloss.Color("#4B5457"), // Dark gray
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	Summary    lipgloss.Style

	// Input
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	InputPrompt  lipgloss.Style

	// Task rows
	Cursor       lipgloss.Style
	Checkbox     lipgloss.Style
	CheckboxDone lipgloss.Style
	Text         lipgloss.Style
	TextSelected lipgloss.Style
	TextDone     lipgloss.Style
	TextFading   lipgloss.Style
	Remove       lipgloss.Style
	Placeholder  lipgloss.Style

	// Footer
	Footer   lipgloss.Style
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	inputBorder := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Colors.Muted).
		Padding(0, 1)

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		Header: lipgloss.NewStyle().MarginBottom(1),
		HeaderText: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),
		Summary: lipgloss.NewStyle().Foreground(Colors.Muted),

		Input:        inputBorder,
		InputFocused: inputBorder.BorderForeground(Colors.Primary),
		InputPrompt:  lipgloss.NewStyle().Foreground(Colors.Secondary),

		Cursor:       lipgloss.NewStyle().Foreground(Colors.Primary).Bold(true),
		Checkbox:     lipgloss.NewStyle().Foreground(Colors.Secondary),
		CheckboxDone: lipgloss.NewStyle().Foreground(Colors.Success),
		Text:         lipgloss.NewStyle().Foreground(Colors.TextNormal),
		TextSelected: lipgloss.NewStyle().Foreground(Colors.TextSelected),
		TextDone: lipgloss.NewStyle().
			Foreground(Colors.TextDone).
			Strikethrough(true),
		TextFading: lipgloss.NewStyle().
			Foreground(Colors.TextFading).
			Faint(true),
		Remove:      lipgloss.NewStyle().Foreground(Colors.Error),
		Placeholder: lipgloss.NewStyle().Foreground(Colors.Muted).Italic(true),

		Footer:   lipgloss.NewStyle().MarginTop(1),
		ErrorMsg: lipgloss.NewStyle().Foreground(Colors.Error),
	}
}

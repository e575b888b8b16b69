// Package tui provides the terminal user interface for tasks.
package tui

// Focus identifies which component receives key input.
type Focus int

const (
	FocusInput Focus = iota // Text input for new tasks (startup focus)
	FocusList               // Task list navigation
)

// String returns the string representation of the focus.
func (f Focus) String() string {
	switch f {
	case FocusInput:
		return "input"
	case FocusList:
		return "list"
	default:
		return "unknown"
	}
}

// Next returns the other focus target.
func (f Focus) Next() Focus {
	if f == FocusInput {
		return FocusList
	}
	return FocusInput
}

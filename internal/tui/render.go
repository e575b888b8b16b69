package tui

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/runoshun/tasks/internal/domain"
)

// Placeholder is shown instead of the list when there are no tasks.
const Placeholder = "No tasks yet. Add one above!"

// Row layout widths: "> " cursor, "[x] " checkbox, " ×" remove affordance.
const (
	cursorWidth   = 2
	checkboxWidth = 4
	removeWidth   = 2
)

// RenderInput is everything Render needs to draw the list.
// Fields are ordered to minimize memory padding.
type RenderInput struct {
	Phase    func(id int64) domain.Phase // Nil means every task is active
	Tasks    []domain.Task
	Styles   Styles
	Cursor   int  // Index of the selected row
	Width    int  // Available columns; <= 0 disables truncation
	Selected bool // Whether the cursor is shown (list has focus)
}

// Render draws the task list, or the placeholder when it is empty.
// Every row is redrawn on each call.
func Render(in RenderInput) string {
	if len(in.Tasks) == 0 {
		return in.Styles.Placeholder.Render(Placeholder)
	}

	rows := make([]string, 0, len(in.Tasks))
	for i, task := range in.Tasks {
		phase := domain.PhaseActive
		if in.Phase != nil {
			phase = in.Phase(task.ID)
		}
		rows = append(rows, renderRow(in, task, phase, in.Selected && i == in.Cursor))
	}
	return strings.Join(rows, "\n")
}

func renderRow(in RenderInput, task domain.Task, phase domain.Phase, selected bool) string {
	s := in.Styles

	cursor := "  "
	if selected {
		cursor = s.Cursor.Render("> ")
	}

	checkbox := s.Checkbox.Render("[ ]")
	if task.Completed {
		checkbox = s.CheckboxDone.Render("[x]")
	}

	budget := 0
	if in.Width > 0 {
		budget = max(in.Width-cursorWidth-checkboxWidth-removeWidth, 1)
	}
	text := SingleLine(task.Text, budget)
	textStyle := s.Text
	switch {
	case phase == domain.PhasePendingRemoval:
		textStyle = s.TextFading
	case task.Completed:
		textStyle = s.TextDone
	case selected:
		textStyle = s.TextSelected
	}

	return cursor + checkbox + " " + textStyle.Render(text) + " " + s.Remove.Render("×")
}

// printable maps whitespace controls to a space and every other control
// character (ESC, BEL, C1 codes) to U+FFFD so stored text never reaches the
// terminal as an escape sequence.
func printable(r rune) rune {
	switch {
	case r == '\n', r == '\r', r == '\t':
		return ' '
	case unicode.IsControl(r):
		return unicode.ReplacementChar
	}
	return r
}

// SingleLine flattens line breaks to spaces, neutralizes control characters,
// and truncates to width columns with a trailing ellipsis.
// A width <= 0 disables truncation.
func SingleLine(text string, width int) string {
	text = strings.Map(printable, text)
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "…")
}

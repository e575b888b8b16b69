package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/tasks/internal/domain"
	"github.com/runoshun/tasks/internal/usecase"
)

// newInput creates the text input used to add tasks.
// CharLimit stays 0 so pasted text is never cut short.
func newInput(styles Styles) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.Prompt = "> "
	ti.PromptStyle = styles.InputPrompt
	ti.PlaceholderStyle = styles.Placeholder
	return ti
}

// submitInput adds the typed text as a new task.
// Blank input is ignored and left in place; on success the input is cleared
// and keeps focus.
func (m *Model) submitInput() {
	_, err := m.container.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{Text: m.input.Value()})
	if errors.Is(err, domain.ErrEmptyText) {
		return
	}
	if err != nil {
		m.err = err
		return
	}
	m.input.Reset()
	m.cursor = 0
	m.refresh()
}

// setFocus moves key input to f.
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	if f == FocusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// handleInputFocus handles keys while the text input is focused.
func (m *Model) handleInputFocus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		m.submitInput()
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		return m, m.setFocus(m.focus.Next())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

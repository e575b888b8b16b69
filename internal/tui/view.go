package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/runoshun/tasks/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewInput())
	b.WriteString("\n\n")

	b.WriteString(Render(RenderInput{
		Tasks:    m.tasks,
		Phase:    m.container.Tasks.Phase,
		Styles:   m.styles,
		Cursor:   m.cursor,
		Width:    m.contentWidth(),
		Selected: m.focus == FocusList,
	}))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n" + m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n")
	}

	if m.showHelp {
		b.WriteString(m.styles.Footer.Render(m.viewHelp()))
	}

	return m.styles.App.Render(b.String())
}

func (m *Model) viewHeader() string {
	summary := domain.NewTaskSummary(m.tasks)
	title := m.styles.HeaderText.Render("Tasks")
	counts := m.styles.Summary.Render(fmt.Sprintf("%d open · %d done", summary.Open, summary.Completed))
	return m.styles.Header.Render(title + "  " + counts)
}

func (m *Model) viewInput() string {
	style := m.styles.Input
	if m.focus == FocusInput {
		style = m.styles.InputFocused
	}
	return style.Render(m.input.View())
}

func (m *Model) viewHelp() string {
	var km help.KeyMap = m.keys
	if m.focus == FocusInput {
		km = inputKeyMap(m.keys)
	}
	return m.help.View(km)
}

// contentWidth is the width available inside the app padding.
func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	return max(m.width-m.styles.App.GetHorizontalFrameSize(), 1)
}

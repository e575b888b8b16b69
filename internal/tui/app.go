package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/tasks/internal/app"
	"github.com/runoshun/tasks/internal/domain"
	"github.com/runoshun/tasks/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// State
	tasks []domain.Task

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model
	input  textinput.Model

	// Numeric state (smaller types last)
	focus    Focus
	width    int
	height   int
	cursor   int
	showHelp bool
}

// New creates a new TUI Model with the given container.
// The persisted list is shown immediately and the input has focus.
func New(c *app.Container) *Model {
	styles := DefaultStyles()
	m := &Model{
		container: c,
		keys:      DefaultKeyMap(),
		styles:    styles,
		help:      help.New(),
		input:     newInput(styles),
		focus:     FocusInput,
		showHelp:  c.Settings.TUI.ShowHelp,
	}
	m.input.Focus()
	m.refresh()
	return m
}

// Run starts the TUI program and blocks until it exits.
func Run(c *app.Container) error {
	_, err := tea.NewProgram(New(c), tea.WithAltScreen()).Run()
	return err
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.configWarnings())
}

// configWarnings reports config load warnings inside the TUI, since the
// alternate screen hides anything printed to stderr before startup.
func (m *Model) configWarnings() tea.Cmd {
	warnings := m.container.Settings.Warnings
	if len(warnings) == 0 {
		return nil
	}
	err := fmt.Errorf("config: %s", strings.Join(warnings, "; "))
	return func() tea.Msg {
		return MsgError{Err: err}
	}
}

// Focus returns the component that currently receives keys.
func (m *Model) Focus() Focus {
	return m.focus
}

// Tasks returns the tasks currently displayed.
func (m *Model) Tasks() []domain.Task {
	return m.tasks
}

// Err returns the last error shown in the status area.
func (m *Model) Err() error {
	return m.err
}

// SelectedTask returns the task under the cursor.
func (m *Model) SelectedTask() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return domain.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// refresh reloads the displayed list from the store and clamps the cursor.
func (m *Model) refresh() {
	out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{})
	if err != nil {
		m.err = err
		return
	}
	m.tasks = out.Tasks
	m.cursor = min(m.cursor, max(len(m.tasks)-1, 0))
}

// toggleSelected toggles the task under the cursor.
func (m *Model) toggleSelected() {
	task, ok := m.SelectedTask()
	if !ok {
		return
	}
	_, err := m.container.ToggleTaskUseCase().Execute(context.Background(), usecase.ToggleTaskInput{TaskID: task.ID})
	if err != nil {
		m.err = err
	}
	m.refresh()
}

// removeSelected marks the task under the cursor as pending removal and
// returns a command that fires MsgRemovalDue once the delay has elapsed.
func (m *Model) removeSelected() tea.Cmd {
	task, ok := m.SelectedTask()
	if !ok {
		return nil
	}
	out, err := m.container.ScheduleRemovalUseCase().Execute(context.Background(), usecase.ScheduleRemovalInput{TaskID: task.ID})
	if err != nil {
		m.err = err
		return nil
	}
	if !out.Scheduled {
		return nil
	}
	return removalDue(task.ID, out.Delay)
}

func removalDue(id int64, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return MsgRemovalDue{TaskID: id} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return MsgRemovalDue{TaskID: id}
	})
}

// deleteTask removes a task whose removal delay has elapsed.
func (m *Model) deleteTask(id int64) {
	_, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{TaskID: id})
	if err != nil {
		m.err = err
	}
	m.refresh()
}

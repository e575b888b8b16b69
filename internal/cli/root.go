// Package cli provides the command-line interface for tasks.
package cli

import (
	"fmt"

	"github.com/runoshun/tasks/internal/app"
	"github.com/runoshun/tasks/internal/tui"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = tui.Run

// NewRootCommand creates the root command for tasks.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "tasks",
		Short: "A small to-do list for the terminal",
		Long: `tasks keeps a to-do list: add tasks, check them off, delete them.

Running tasks without a subcommand opens the interactive list. Inside a
git repository the list is stored in .git/tasks/storage.json; elsewhere it
lives in $XDG_DATA_HOME/tasks/storage.json. Set TASKS_STORAGE to use a
different file.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.Settings == nil {
				return
			}
			for _, w := range c.Settings.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Task management commands
	for _, cmd := range []*cobra.Command{
		newTUICommand(c),
		newAddCommand(c),
		newListCommand(c),
		newToggleCommand(c),
		newRmCommand(c),
	} {
		cmd.GroupID = groupTask
		root.AddCommand(cmd)
	}

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup
	root.AddCommand(configCmd)

	return root
}

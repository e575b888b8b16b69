package cli

import (
	"github.com/runoshun/tasks/internal/app"
	"github.com/spf13/cobra"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// This is the same as running `tasks` without arguments.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long: `Launch the interactive task list.

Keys:
  enter, ctrl+enter  add the typed task
  tab, esc           switch between the input and the list
  space, x           toggle the selected task
  d, delete          delete the selected task
  q, ctrl+c          quit`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}

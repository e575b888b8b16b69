package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/runoshun/tasks/internal/app"
	"github.com/runoshun/tasks/internal/domain"
	"github.com/runoshun/tasks/internal/tui"
	"github.com/runoshun/tasks/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats for list.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a task",
		Long: `Add a task to the top of the list.

All arguments are joined with spaces. Leading and trailing whitespace is
trimmed; blank text is rejected.

Examples:
  tasks add buy milk
  tasks add "call the plumber"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Text: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task #%d: %s\n", out.Task.ID, tui.SingleLine(out.Task.Text, 0))
			return nil
		},
	}
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Output string
		All    bool
		Done   bool
		Open   bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `List tasks, newest first.

Output formats (-o):
  table  columns ID, DONE, CREATED, TEXT (default)
  json   the stored JSON array
  yaml   the same records as YAML

Examples:
  tasks list
  tasks list --open
  tasks list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := usecase.ListAll
			switch {
			case opts.Open:
				filter = usecase.ListOpen
			case opts.Done:
				filter = usecase.ListDone
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{Filter: filter})
			if err != nil {
				return err
			}
			return printTasks(cmd.OutOrStdout(), opts.Output, out.Tasks)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", formatTable, "Output format: table, json, yaml")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Show all tasks (default)")
	cmd.Flags().BoolVar(&opts.Done, "done", false, "Show only completed tasks")
	cmd.Flags().BoolVar(&opts.Open, "open", false, "Show only open tasks")
	cmd.MarkFlagsMutuallyExclusive("all", "done", "open")

	return cmd
}

// printTasks writes tasks in the requested format.
func printTasks(w io.Writer, format string, tasks []domain.Task) error {
	switch format {
	case formatTable, "":
		printTaskTable(w, tasks)
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tasks); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q (want table, json or yaml)", domain.ErrInvalidOutputFormat, format)
	}
}

// printTaskTable prints tasks as an aligned table.
func printTaskTable(w io.Writer, tasks []domain.Task) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tDONE\tCREATED\tTEXT")
	for _, task := range tasks {
		done := "[ ]"
		if task.Completed {
			done = "[x]"
		}
		created := task.CreatedAt
		if created == "" {
			created = "-"
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", task.ID, done, created, tui.SingleLine(task.Text, 0))
	}
}

// newToggleCommand creates the toggle command.
func newToggleCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark a task done or open",
		Long: `Flip the completion state of a task.

Examples:
  tasks toggle 1735550000000
  tasks toggle "#1735550000000"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			out, err := c.ToggleTaskUseCase().Execute(cmd.Context(), usecase.ToggleTaskInput{TaskID: taskID})
			if err != nil {
				return err
			}
			if !out.Found {
				return fmt.Errorf("%w: #%d", domain.ErrTaskNotFound, taskID)
			}

			state := "open"
			if out.Task.Completed {
				state = "done"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Marked task #%d %s\n", taskID, state)
			return nil
		},
	}
}

// newRmCommand creates the rm command.
func newRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Long: `Delete a task from the list.

Examples:
  tasks rm 1735550000000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			out, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: taskID})
			if err != nil {
				return err
			}
			if !out.Found {
				return fmt.Errorf("%w: #%d", domain.ErrTaskNotFound, taskID)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", taskID)
			return nil
		},
	}
}

// parseTaskID parses a task ID, allowing a leading #.
func parseTaskID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(s, "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTaskID, s)
	}
	return id, nil
}

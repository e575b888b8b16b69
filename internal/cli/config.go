package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/runoshun/tasks/internal/app"
	"github.com/runoshun/tasks/internal/infra/config"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show effective configuration",
		Long: `Show the effective configuration after merging all sources.

Sources, later wins:
  built-in defaults
  $XDG_CONFIG_HOME/tasks/config.toml (global)
  <repo>/.git/tasks/config.toml (project)

Use --path to print the config and storage file locations instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if showPath {
				printPaths(w, c)
				return nil
			}

			if c.ConfigManager != nil {
				_, _ = fmt.Fprintln(w, "# Loaded from:")
				for _, info := range []config.Info{
					c.ConfigManager.GlobalConfigInfo(),
					c.ConfigManager.ProjectConfigInfo(),
				} {
					if info.Path == "" {
						continue
					}
					if info.Exists {
						_, _ = fmt.Fprintf(w, "#   %s\n", info.Path)
					} else {
						_, _ = fmt.Fprintf(w, "#   %s (not found)\n", info.Path)
					}
				}
				_, _ = fmt.Fprintln(w)
			}

			content, err := config.Render(c.Settings)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(w, content)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showPath, "path", false, "Print config and storage file paths")
	cmd.AddCommand(newConfigInitCommand(c))

	return cmd
}

// printPaths prints the files the container resolved.
func printPaths(w io.Writer, c *app.Container) {
	if c.ConfigManager != nil {
		if p := c.ConfigManager.GlobalConfigInfo().Path; p != "" {
			_, _ = fmt.Fprintf(w, "global config:  %s\n", p)
		}
		if p := c.ConfigManager.ProjectConfigInfo().Path; p != "" {
			_, _ = fmt.Fprintf(w, "project config: %s\n", p)
		}
	}
	if c.Config.GitDir != "" {
		_, _ = fmt.Fprintf(w, "git dir:        %s\n", c.Config.GitDir)
	}
	_, _ = fmt.Fprintf(w, "storage:        %s\n", c.Config.StoragePath)
	_, _ = fmt.Fprintf(w, "storage key:    %s\n", c.Settings.Storage.Key)
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write a config file containing the default settings.

Without --global the file is created for the current git repository.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.ConfigManager == nil {
				return errors.New("config manager not available")
			}

			var path string
			var err error
			if global {
				path, err = c.ConfigManager.InitGlobalConfig()
			} else {
				path, err = c.ConfigManager.InitProjectConfig()
			}
			if errors.Is(err, config.ErrConfigExists) {
				return fmt.Errorf("%w: %s", err, path)
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&global, "global", "g", false, "Write the global config instead of the project config")

	return cmd
}

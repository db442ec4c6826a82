// Package cli provides the command-line interface for todo.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/spf13/cobra"
)

var errDryRunWithoutSeed = errors.New("--dry-run requires --seed")

// NewRootCommand creates the root command for todo.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var configPath string
	var seedPath string
	var dryRun bool

	root := &cobra.Command{
		Use:   "todo",
		Short: "Personal task and note tracker",
		Long: `todo is a console tracker for tasks and notes.

After logging in, a menu lets you add tasks (due date, tags, priority,
reminder) and notes, mark items completed, delete them, view them by
status, sort them by priority or due date, and undo the last change.
Items live in memory for the current run only; --seed preloads them
from a YAML file.

Credentials come from the [auth] section of the config file:
  todo config init
  todo config hash-password`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dryRun {
				return checkSeed(cmd, c, seedPath)
			}
			if c.LoadErr != nil {
				return c.LoadErr
			}
			s := newSession(c, resolvePrompter(c, cmd), cmd.InOrStdin(), cmd.OutOrStdout())
			s.interactive = c.AppConfig.Display.Interactive && isTerminal(cmd.OutOrStdout())
			return s.run(cmd.Context(), seedPath)
		},
	}

	// --config is resolved by main before the container is built; it is
	// declared here so cobra accepts it and lists it in help.
	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file to use instead of the global and local files")
	root.Flags().StringVar(&seedPath, "seed", "", "YAML file of items to preload")
	root.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the --seed file and exit without logging in")

	root.AddCommand(newConfigCommand(c))

	return root
}

// checkSeed reads and validates the seed file without starting a session.
func checkSeed(cmd *cobra.Command, c *app.Container, seedPath string) error {
	if seedPath == "" {
		return errDryRunWithoutSeed
	}
	uc := c.ImportItemsUseCase(c.SeedFile(seedPath))
	out, err := uc.Execute(cmd.Context(), usecase.ImportItemsInput{DryRun: true})
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, it := range out.Items {
		_, _ = fmt.Fprintln(w, it.Display())
	}
	_, _ = fmt.Fprintf(w, "%s: %d items OK\n", seedPath, len(out.Items))
	return nil
}

// ConfigPathFromArgs returns the value of --config in args, if any.
// main needs it before cobra parses the command line.
func ConfigPathFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if v, ok := strings.CutPrefix(arg, "--config="); ok {
			return v
		}
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

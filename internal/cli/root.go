// Package cli implements the paperboard command-line interface.
//
// This package provides commands for validating diagram layout files,
// printing diagram statistics, rewriting layouts into canonical form, and
// interactively inspecting a diagram in the terminal. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - validate: Check a layout file for referential integrity
//   - stats: Print element, link, and routing statistics
//   - fmt: Rewrite a layout file into canonical form
//   - inspect: Browse and edit a diagram interactively
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/paperboard/paperboard/pkg/buildinfo"
)

// Execute runs the paperboard CLI and returns an error if any command
// fails. This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree.
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool
	var configPath string

	root := &cobra.Command{
		Use:          "paperboard",
		Short:        "Paperboard inspects and maintains diagram layout files",
		Long:         `Paperboard is a CLI companion for diagram layout files: it validates their referential integrity, reports statistics, rewrites them into canonical form, and opens them in an interactive terminal inspector with full undo support.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML configuration file")

	root.AddCommand(newValidateCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newFmtCmd())
	root.AddCommand(newInspectCmd(&configPath))

	return root.ExecuteContext(ctx)
}

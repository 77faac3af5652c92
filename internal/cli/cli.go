// Package cli implements the trellis command-line interface.
//
// This package provides commands for rendering graph files as ASCII
// diagrams or Graphviz output, inspecting graph structure, and browsing
// large diagrams interactively. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Draw a graph file as text, DOT, SVG, or PNG
//   - inspect: Summarize nodes, edges, sources, sinks, order, and components
//   - view: Browse a diagram in an interactive pager
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so every command shares one configured
// logger.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/trellis-dev/trellis/pkg/buildinfo"
)

// Execute runs the trellis CLI and returns an error if any command fails.
//
// Logging defaults to info level on stderr; --verbose (-v) switches to
// debug level. The logger is attached to the command context and retrieved
// by subcommands via loggerFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "trellis",
		Short:        "Trellis draws dependency graphs as text diagrams",
		Long:         `Trellis is a CLI tool for working with directed acyclic graphs: it renders them as compact ASCII diagrams, exports Graphviz output, and reports structural summaries.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.config/trellis.toml)")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newViewCmd())

	return root.ExecuteContext(ctx)
}

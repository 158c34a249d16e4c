package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/asp-curriculum/surveyfig/pkg/buildinfo"
)

// Execute runs the surveyfig CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The root command wires the render and stats subcommands and configures
// logging based on the --verbose flag:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "surveyfig",
		Short:        "surveyfig generates the AS survey manuscript figures",
		Long:         `surveyfig is a one-shot report generator: it loads the AS survey dataset, computes the descriptive aggregates, and renders the four publication figures (career funnel, satisfaction diverging bars, intervention dumbbell, barriers bar chart) to vector or raster files.`,
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

	root.AddCommand(newRenderCmd())
	root.AddCommand(newStatsCmd())

	return root.ExecuteContext(ctx)
}

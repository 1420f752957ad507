// Package cli wires the closenessd command tree: "run" replays an
// event script against the incremental engine and writes a score file;
// "bench" compares it against the reference engine and writes a
// benchmark CSV row.
//
// Grounded on the Cobra-based CLI layout used elsewhere in the
// retrieved corpus (github.com/spf13/cobra), with github.com/rs/zerolog
// for structured logging of skipped lines and the single summary line
// on failure.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var verbose bool

// Execute runs the closenessd root command against os.Args.
func Execute() error {
	root := newRootCmd()

	return root.Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "closenessd",
		Short:        "Incremental closeness centrality over an event script",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(level)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	root.AddCommand(newRunCmd())
	root.AddCommand(newBenchCmd())

	return root
}

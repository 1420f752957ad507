package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/closeness/closeness"
	"github.com/katalvlaran/closeness/eventscript"
	"github.com/katalvlaran/closeness/report"
)

func newRunCmd() *cobra.Command {
	var outPath string

	runCmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Replay an event script and write final closeness scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if outPath != "" {
				wf, err := os.Create(outPath)
				if err != nil {
					log.Error().Err(err).Str("out", outPath).Msg("cannot create score output")
					return fmt.Errorf("run: %w", err)
				}
				defer wf.Close()
				out = wf
			}

			return runRun(args[0], out)
		},
	}
	runCmd.Flags().StringVarP(&outPath, "out", "o", "", "score output path (default stdout)")

	return runCmd
}

func runRun(scriptPath string, out io.Writer) error {
	f, err := os.Open(scriptPath)
	if err != nil {
		log.Error().Err(err).Str("script", scriptPath).Msg("cannot open event script")
		return fmt.Errorf("run: %w", err)
	}
	defer f.Close()

	directives, parseErrs := eventscript.ReadAll(f)
	for _, pe := range parseErrs {
		log.Warn().Err(pe).Msg("skipped line")
	}

	e := closeness.New()
	for _, d := range directives {
		if err := eventscript.Apply(e, d); err != nil {
			log.Warn().Err(err).Interface("directive", d).Msg("skipped directive")
		}
	}

	if err := report.WriteScores(out, e.AllCloseness()); err != nil {
		log.Error().Err(err).Msg("cannot write scores")
		return fmt.Errorf("run: %w", err)
	}

	log.Info().
		Int("directives", len(directives)).
		Int("skipped_lines", len(parseErrs)).
		Int("vertices", e.Len()).
		Msg("run complete")

	return nil
}

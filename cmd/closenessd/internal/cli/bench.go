package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/closeness/bench"
	"github.com/katalvlaran/closeness/eventscript"
	"github.com/katalvlaran/closeness/report"
)

func newBenchCmd() *cobra.Command {
	var outPath string
	var tolerance float64

	benchCmd := &cobra.Command{
		Use:   "bench <script>",
		Short: "Compare the incremental and reference engines over an event script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(args[0], outPath, tolerance, cmd)
		},
	}
	benchCmd.Flags().StringVarP(&outPath, "out", "o", "", "benchmark CSV output path (default stdout)")
	benchCmd.Flags().Float64VarP(&tolerance, "tolerance", "t", 1e-5, "maximum allowed per-vertex score difference")

	return benchCmd
}

func runBench(scriptPath, outPath string, tolerance float64, cmd *cobra.Command) error {
	f, err := os.Open(scriptPath)
	if err != nil {
		log.Error().Err(err).Str("script", scriptPath).Msg("cannot open event script")
		return fmt.Errorf("bench: %w", err)
	}
	defer f.Close()

	directives, parseErrs := eventscript.ReadAll(f)
	for _, pe := range parseErrs {
		log.Warn().Err(pe).Msg("skipped line")
	}

	measurement, err := bench.Run(directives, tolerance)
	if err != nil {
		log.Error().Err(err).Msg("benchmark run failed")
		return fmt.Errorf("bench: %w", err)
	}
	if !measurement.Correct {
		log.Warn().Float64("max_diff", measurement.MaxDiff).Msg("incremental and reference scores disagree beyond tolerance")
	}

	out := cmd.OutOrStdout()
	if outPath != "" {
		wf, err := os.Create(outPath)
		if err != nil {
			log.Error().Err(err).Str("out", outPath).Msg("cannot create benchmark output")
			return fmt.Errorf("bench: %w", err)
		}
		defer wf.Close()
		out = wf
	}

	if err := report.WriteBenchmarkCSV(out, []report.Measurement{measurement}); err != nil {
		log.Error().Err(err).Msg("cannot write benchmark CSV")
		return fmt.Errorf("bench: %w", err)
	}

	log.Info().
		Float64("speedup", measurement.Speedup).
		Bool("correct", measurement.Correct).
		Msg("benchmark complete")

	return nil
}

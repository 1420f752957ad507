package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Measurement is one row of a benchmark comparison between the
// reference (classical) engine and the incremental engine over the
// same event sequence.
type Measurement struct {
	NNodes, M, NumActions          int
	TimeClassical, TimeIncremental float64
	Speedup                        float64
	Correct                        bool
	MaxDiff                        float64
}

var benchmarkHeader = []string{
	"n_nodes", "m", "num_actions",
	"time_classical", "time_incremental", "speedup",
	"correct", "max_diff",
}

// WriteBenchmarkCSV writes rows as comma-separated values with a fixed
// header, Correct rendered as the literal True/False.
func WriteBenchmarkCSV(w io.Writer, rows []Measurement) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(benchmarkHeader); err != nil {
		return fmt.Errorf("report: write benchmark header: %w", err)
	}

	for i, row := range rows {
		record := []string{
			strconv.Itoa(row.NNodes),
			strconv.Itoa(row.M),
			strconv.Itoa(row.NumActions),
			strconv.FormatFloat(row.TimeClassical, 'f', -1, 64),
			strconv.FormatFloat(row.TimeIncremental, 'f', -1, 64),
			strconv.FormatFloat(row.Speedup, 'f', -1, 64),
			boolLiteral(row.Correct),
			strconv.FormatFloat(row.MaxDiff, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("report: write benchmark row %d: %w", i, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

func boolLiteral(b bool) string {
	if b {
		return "True"
	}

	return "False"
}

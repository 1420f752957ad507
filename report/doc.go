// Package report writes the two output formats this module produces: a
// per-vertex closeness score file, and a benchmark comparison CSV.
//
// WriteScores is grounded on classical_closeness.py's
// save_closeness_to_file (one line per vertex id up to the maximum seen,
// gaps filled with 0.0). WriteBenchmarkCSV is grounded on
// benchmark_performance.py's csv.DictWriter usage, using encoding/csv —
// no third-party CSV library surfaced anywhere in the retrieved corpus,
// so this one writer is stdlib by necessity (see DESIGN.md).
package report

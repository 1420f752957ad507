// Package bench compares the reference (classical, full-recompute)
// engine against the incremental closeness.Engine over the same event
// sequence, timing each and checking they agree within a tolerance.
//
// Grounded on benchmark_performance.py's run_classical_benchmark /
// run_incremental_benchmark / verify_correctness trio: both engines
// replay the same actions, classical recomputes from scratch after
// every event, incremental updates in place, and the final per-vertex
// scores are diffed.
package bench

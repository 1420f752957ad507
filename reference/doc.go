// Package reference computes closeness centrality from scratch, with a
// single-source BFS per vertex, independently of the incremental engine
// in package closeness and of the rebuild helpers in package recompute.
// It exists to be the correctness oracle in tests and the baseline in
// benchmarks: if it shared code with the engine it is supposed to check,
// a shared bug would pass unnoticed.
package reference

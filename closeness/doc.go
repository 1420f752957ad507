// Package closeness maintains closeness centrality for every vertex of an
// undirected graph as it evolves through add/remove-vertex and
// add/remove-edge events, in time substantially better than recomputing
// from scratch after each event, while staying bit-for-bit equivalent
// (within a small numeric tolerance) to the from-scratch computation in
// package reference.
//
// Engine is the aggregate that owns a digraph.Graph and a distance.Table
// and exposes the four mutation events plus closeness queries. Internally
// it mirrors every undirected edge as two directed arcs and runs the
// incremental algorithms of Kas, Wachs, Carley & Carley (2013), built on
// Ramalingam & Reps (1996) dynamic shortest-path maintenance:
//
//   - insertEdgeGrowing / insertUpdateGrowing propagate shortened
//     distances from an inserted arc outward via an explicit-queue
//     relaxation seeded at the arc's head (insert.go).
//   - deleteEdgeShrinking / deleteUpdateShrinking identify sources whose
//     shortest path used a removed arc and refresh their row from
//     scratch via package recompute (delete.go).
//   - AddNode / RemoveNode handle vertex lifecycle, including the
//     (n-1)-denominator rebalance every closeness value needs whenever
//     |V| changes (lifecycle.go).
//   - normalize applies the Wasserman–Faust disconnected-graph formula
//     (normalize.go).
//
// Engine is not safe for concurrent use. Its scheduling model is
// strictly single-threaded cooperative: one mutation runs to completion
// before the next begins, and the contract for a multi-threaded caller
// is one Engine per goroutine with no shared mutable state — see
// DESIGN.md for the rationale.
package closeness

// Package recompute rebuilds distance rows from scratch via a min-heap
// Dijkstra search. It backs the incremental engine's safety net (the
// graph-joining fallback of the insert path, and the per-source refresh
// of the delete path); the engine does not call it on construction, since
// closeness.New starts empty. It is not itself the correctness oracle
// for testing; package reference fills that role with an intentionally
// separate implementation.
package recompute

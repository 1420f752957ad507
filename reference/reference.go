// Package reference: reference.go implements compute_all_closeness(G),
// the full-recompute oracle, using its own BFS and
// its own normalizer rather than calling into packages recompute or
// closeness.
package reference

import "github.com/katalvlaran/closeness/digraph"

// AllCloseness computes the Wasserman–Faust closeness centrality of
// every vertex in g from scratch: one BFS per source, then the
// reachable-fraction-scaled normalization.
//
// Complexity: O(V · (V + E)).
func AllCloseness(g *digraph.Graph) map[digraph.VertexID]float64 {
	n := g.Len()
	out := make(map[digraph.VertexID]float64, n)

	for _, s := range g.Vertices() {
		dist := bfsFrom(g, s)
		reachable := len(dist) - 1
		total := 0.0
		for _, d := range dist {
			total += d
		}
		out[s] = normalize(reachable, total, n)
	}

	return out
}

// Closeness computes the closeness centrality of a single vertex s from
// scratch. Returns 0 if s is absent from g.
func Closeness(g *digraph.Graph, s digraph.VertexID) float64 {
	if !g.HasVertex(s) {
		return 0
	}
	dist := bfsFrom(g, s)
	reachable := len(dist) - 1
	total := 0.0
	for _, d := range dist {
		total += d
	}

	return normalize(reachable, total, g.Len())
}

// bfsFrom computes the shortest-hop distance from source to every vertex
// reachable from it, via an explicit FIFO queue (no recursion, bounded
// stack use regardless of graph size).
func bfsFrom(g *digraph.Graph, source digraph.VertexID) map[digraph.VertexID]float64 {
	dist := map[digraph.VertexID]float64{source: 0}
	queue := []digraph.VertexID{source}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		du := dist[u]
		for _, v := range g.Successors(u) {
			if _, seen := dist[v]; !seen {
				dist[v] = du + 1
				queue = append(queue, v)
			}
		}
	}

	return dist
}

// normalize applies the Wasserman–Faust disconnected-graph formula:
//
//	C = 0                        if n ≤ 1 or r = 0 or T = 0
//	C = (r / T) · (r / (n − 1))  otherwise
func normalize(reachable int, total float64, n int) float64 {
	if n <= 1 || reachable == 0 || total == 0 {
		return 0
	}

	r := float64(reachable)

	return (r / total) * (r / float64(n-1))
}

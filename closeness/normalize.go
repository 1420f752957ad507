package closeness

import "github.com/katalvlaran/closeness/digraph"

// normalize applies the Wasserman–Faust disconnected-graph formula to a
// source with reachable count r (excluding the source itself), distance
// sum T, over a graph of n vertices:
//
//	C = 0                        if n ≤ 1 or r = 0 or T = 0
//	C = (r / T) · (r / (n − 1))  otherwise
//
// This is the only closeness formula this package implements; a
// related but incompatible self-distance-excluding 1/ΣD variant is
// deliberately not implemented anywhere in this module, to avoid mixing
// the two.
func normalize(reachable int, total float64, n int) float64 {
	if n <= 1 || reachable == 0 || total == 0 {
		return 0
	}

	r := float64(reachable)

	return (r / total) * (r / float64(n-1))
}

// recomputeCloseness recomputes C[s] for a single source from the
// current contents of e.d, given the current |V|.
func (e *Engine) recomputeCloseness(s digraph.VertexID) {
	reachable := e.d.Reachable(s) - 1
	e.c[s] = normalize(reachable, e.d.Sum(s), e.g.Len())
}

// recomputeAllCloseness recomputes C[s] for every currently present
// vertex, used whenever |V| changes (AddNode, RemoveNode).
func (e *Engine) recomputeAllCloseness() {
	for _, s := range e.g.Vertices() {
		e.recomputeCloseness(s)
	}
}

// Closeness returns the published closeness score of v, or 0 if v is not
// currently present (a non-error convenience for callers).
func (e *Engine) Closeness(v digraph.VertexID) float64 {
	return e.c[v]
}

// AllCloseness returns a copy of every currently published closeness
// score, safe for the caller to retain or mutate.
func (e *Engine) AllCloseness() map[digraph.VertexID]float64 {
	out := make(map[digraph.VertexID]float64, len(e.c))
	for v, c := range e.c {
		out[v] = c
	}

	return out
}

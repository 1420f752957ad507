// Package closeness: lifecycle.go implements component F, vertex
// lifecycle: AddNode (isolated insertion) and RemoveNode (drop all
// incident edges, then the vertex itself), both of which change |V| and
// therefore require every remaining vertex's closeness to be rebalanced.
package closeness

import "github.com/katalvlaran/closeness/digraph"

// AddNode inserts v as an isolated vertex. A no-op if v is already
// present. Because |V| has grown, every published closeness score is
// recomputed — the (n-1) denominator changed for all of them — though
// no other source's distance row is touched, since v starts unreachable
// from everything but itself.
//
// Re-adding an id that was previously removed is permitted and always
// starts the vertex isolated with C = 0, regardless of its history.
func (e *Engine) AddNode(v digraph.VertexID) {
	if e.g.HasVertex(v) {
		return
	}
	e.g.AddVertex(v)
	e.d.ReplaceRow(v, map[digraph.VertexID]float64{v: 0}, 0)
	e.c[v] = 0
	e.recomputeAllCloseness()
}

// RemoveNode removes v and every edge incident to it, then drops v from
// every remaining source's row. A no-op if v is absent. Every remaining
// vertex's closeness is recomputed, since |V| changed.
func (e *Engine) RemoveNode(v digraph.VertexID) {
	if !e.g.HasVertex(v) {
		return
	}

	for _, w := range e.g.Successors(v) {
		c, _ := e.g.ArcCost(v, w)
		e.deleteEdgeShrinking(v, w, c)
	}
	for _, w := range e.g.Vertices() {
		if w == v {
			continue
		}
		if c, ok := e.g.ArcCost(w, v); ok {
			e.deleteEdgeShrinking(w, v, c)
		}
	}

	e.g.RemoveVertex(v)
	e.d.DropSource(v)
	e.d.DropTargetEverywhere(v)
	delete(e.c, v)

	e.recomputeAllCloseness()
}

// Package closeness: insert.go implements the incremental insert engine
// (component D of the design): AddUndirectedEdge and its two directed
// halves, insertEdgeGrowing / insertUpdateGrowing, following Algorithms 1
// and 2 of Kas, Wachs, Carley & Carley (2013).
package closeness

import (
	"math"

	"github.com/katalvlaran/closeness/digraph"
	"github.com/katalvlaran/closeness/recompute"
)

// AddUndirectedEdge inserts the undirected edge {u, v} (unit cost),
// creating both mirrored arcs and propagating any resulting distance
// improvements. A no-op if the edge already exists with the same cost.
// Fails with ErrUnknownVertex if either endpoint is absent, leaving the
// engine unchanged.
func (e *Engine) AddUndirectedEdge(u, v digraph.VertexID) error {
	if !e.g.HasVertex(u) || !e.g.HasVertex(v) {
		return ErrUnknownVertex
	}
	e.insertEdgeGrowing(u, v, 1)
	e.insertEdgeGrowing(v, u, 1)

	return nil
}

// insertEdgeGrowing inserts arc u→v with cost c and repairs distance
// invariants. Both endpoints are assumed to already exist — callers
// validate that before reaching here.
func (e *Engine) insertEdgeGrowing(u, v digraph.VertexID, c float64) {
	_ = e.g.AddArc(u, v, c) // endpoints validated by the caller; error impossible here

	var affected []digraph.VertexID
	for _, s := range e.g.Vertices() {
		dsu, okU := e.d.Get(s, u)
		if !okU {
			continue // s cannot reach u: the new arc offers no shorter path from s
		}
		dsv, okV := e.d.Get(s, v)
		if !okV {
			dsv = math.Inf(1)
		}
		if dsu+c < dsv {
			affected = append(affected, s)
		}
	}

	for _, s := range affected {
		e.insertUpdateGrowing(u, v, s, c)
	}

	if len(affected) == 0 {
		e.recheckGraphJoin()
	}
}

// insertUpdateGrowing propagates the distance improvement that arc u→v
// brings to source z, via an explicit FIFO queue seeded at v — any
// shortest path that improves must now pass through the new arc and
// hence through v, so relaxing outward from v covers exactly the
// affected region.
func (e *Engine) insertUpdateGrowing(u, v, z digraph.VertexID, c float64) {
	dzu, _ := e.d.Get(z, u) // finite: z was flagged affected because of this
	e.d.Set(z, v, dzu+c)

	queue := []digraph.VertexID{v}
	visited := map[digraph.VertexID]bool{v: true}

	for len(queue) > 0 {
		y := queue[0]
		queue = queue[1:]

		dzy, _ := e.d.Get(z, y)
		for _, w := range e.g.Successors(y) {
			wyw, _ := e.g.ArcCost(y, w)
			cand := dzy + wyw

			old, ok := e.d.Get(z, w)
			if ok && cand >= old {
				continue
			}
			e.d.Set(z, w, cand)
			if !visited[w] {
				visited[w] = true
				queue = append(queue, w)
			}
		}
	}

	e.recomputeCloseness(z)
}

// recheckGraphJoin is the specified safety net for insertions that join
// two previously separate components without any source having flagged
// itself affected: if any source's reachable set is now smaller than
// |V|, a full recompute is triggered. In practice the affected-source
// pass above already flags every source for which a shorter path now
// exists, including sources that reach across a newly joined component.
// With unit-cost mirrored arcs no source is flagged only when u already
// has v at distance ≤ 1 (the edge was present, or u == v); the guard then
// recomputes everything whenever the graph is not connected.
func (e *Engine) recheckGraphJoin() {
	n := e.g.Len()
	for _, s := range e.g.Vertices() {
		if e.d.Reachable(s) < n {
			e.d = recompute.All(e.g)
			e.recomputeAllCloseness()

			return
		}
	}
}

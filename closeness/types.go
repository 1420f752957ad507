package closeness

import (
	"github.com/katalvlaran/closeness/digraph"
	"github.com/katalvlaran/closeness/distance"
)

// Engine is the incremental closeness-maintenance aggregate: it owns the
// directed mirror of the undirected graph, the per-source distance
// table, the running TotDist sums, and the published closeness scores.
//
// The zero value is not usable; construct with New.
type Engine struct {
	g *digraph.Graph
	d *distance.Table
	c map[digraph.VertexID]float64 // published closeness scores
}

// New returns an empty engine.
func New() *Engine {
	return &Engine{
		g: digraph.New(),
		d: distance.New(),
		c: make(map[digraph.VertexID]float64),
	}
}

// Len returns |V|.
func (e *Engine) Len() int {
	return e.g.Len()
}

// HasVertex reports whether v is currently present.
func (e *Engine) HasVertex(v digraph.VertexID) bool {
	return e.g.HasVertex(v)
}

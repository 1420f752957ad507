// Package recompute: recompute.go implements the from-scratch rebuild of
// a distance row (or every row) of a digraph.Graph, using a min-heap
// Dijkstra relaxation so it stays correct even though the undirected
// engine in package closeness only ever presents unit costs.
package recompute

import (
	"container/heap"

	"github.com/katalvlaran/closeness/digraph"
	"github.com/katalvlaran/closeness/distance"
)

// Row rebuilds the distance row for a single source s by running
// Dijkstra over g from s. It returns the row (including s itself at
// distance 0) and the row's sum, ready to hand to distance.Table.ReplaceRow.
//
// Complexity: O((V + E) log V).
func Row(g *digraph.Graph, s digraph.VertexID) (map[digraph.VertexID]float64, float64) {
	if !g.HasVertex(s) {
		return map[digraph.VertexID]float64{}, 0
	}

	dist := make(map[digraph.VertexID]float64)
	visited := make(map[digraph.VertexID]bool)

	pq := make(vertexPQ, 0, g.Len())
	heap.Push(&pq, &vertexItem{id: s, dist: 0})
	dist[s] = 0

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*vertexItem)
		if visited[cur.id] {
			continue
		}
		visited[cur.id] = true

		for _, w := range g.Successors(cur.id) {
			cost, _ := g.ArcCost(cur.id, w)
			cand := cur.dist + cost
			if old, ok := dist[w]; !ok || cand < old {
				dist[w] = cand
				heap.Push(&pq, &vertexItem{id: w, dist: cand})
			}
		}
	}

	sum := 0.0
	for _, d := range dist {
		sum += d
	}

	return dist, sum
}

// All rebuilds every row of g into a fresh distance.Table, one BFS/Dijkstra
// pass per source.
//
// Complexity: O(V · (V + E) log V).
func All(g *digraph.Graph) *distance.Table {
	tbl := distance.New()
	for _, s := range g.Vertices() {
		row, sum := Row(g, s)
		tbl.ReplaceRow(s, row, sum)
	}

	return tbl
}

// vertexItem is one entry of the min-heap used by Row.
type vertexItem struct {
	id   digraph.VertexID
	dist float64
}

// vertexPQ is a min-heap of *vertexItem ordered by dist ascending,
// mirroring the lazy-decrease-key heap used by package dijkstra.
type vertexPQ []*vertexItem

func (pq vertexPQ) Len() int            { return len(pq) }
func (pq vertexPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq vertexPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *vertexPQ) Push(x interface{}) { *pq = append(*pq, x.(*vertexItem)) }
func (pq *vertexPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

package closeness_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/closeness/closeness"
	"github.com/katalvlaran/closeness/digraph"
	"github.com/katalvlaran/closeness/reference"
)

// shadow replays the same mutations as an Engine against a plain
// digraph.Graph, so reference.AllCloseness can be compared against the
// engine's incrementally-maintained scores.
type shadow struct {
	g *digraph.Graph
}

func newShadow() *shadow {
	return &shadow{g: digraph.New()}
}

func (s *shadow) addNode(v digraph.VertexID) {
	s.g.AddVertex(v)
}

func (s *shadow) removeNode(v digraph.VertexID) {
	if !s.g.HasVertex(v) {
		return
	}
	for _, w := range s.g.Successors(v) {
		s.g.RemoveArc(v, w)
	}
	for _, w := range s.g.Vertices() {
		s.g.RemoveArc(w, v)
	}
	s.g.RemoveVertex(v)
}

func (s *shadow) addEdge(u, v digraph.VertexID) {
	if !s.g.HasVertex(u) || !s.g.HasVertex(v) {
		return
	}
	_ = s.g.AddArc(u, v, 1)
	_ = s.g.AddArc(v, u, 1)
}

func (s *shadow) removeEdge(u, v digraph.VertexID) {
	s.g.RemoveArc(u, v)
	s.g.RemoveArc(v, u)
}

const tolerance = 1e-5

// TestP1AgreementWithReference drives a random mixed event trace through
// both the incremental engine and a from-scratch reference recompute
// after every single event, and asserts the two never diverge beyond
// tolerance (property P1).
func TestP1AgreementWithReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	e := closeness.New()
	sh := newShadow()

	var liveIDs []digraph.VertexID
	nextID := digraph.VertexID(0)

	for step := 0; step < 500; step++ {
		switch {
		case len(liveIDs) < 2 || rng.Intn(4) == 0:
			v := nextID
			nextID++
			e.AddNode(v)
			sh.addNode(v)
			liveIDs = append(liveIDs, v)
		case rng.Intn(3) == 0:
			i := rng.Intn(len(liveIDs))
			v := liveIDs[i]
			e.RemoveNode(v)
			sh.removeNode(v)
			liveIDs = append(liveIDs[:i], liveIDs[i+1:]...)
		case rng.Intn(2) == 0:
			u := liveIDs[rng.Intn(len(liveIDs))]
			v := liveIDs[rng.Intn(len(liveIDs))]
			if u == v {
				continue
			}
			_ = e.AddUndirectedEdge(u, v)
			sh.addEdge(u, v)
		default:
			u := liveIDs[rng.Intn(len(liveIDs))]
			v := liveIDs[rng.Intn(len(liveIDs))]
			if u == v {
				continue
			}
			e.RemoveUndirectedEdge(u, v)
			sh.removeEdge(u, v)
		}

		want := reference.AllCloseness(sh.g)
		got := e.AllCloseness()
		require.Equal(t, len(want), len(got), "step %d: vertex count diverged", step)
		for v, wantC := range want {
			require.InDeltaf(t, wantC, got[v], tolerance, "step %d vertex %d: incremental=%v reference=%v", step, v, got[v], wantC)
		}
	}
}

// TestP2SymmetryAndP5TriangleInequality checks D[s][t] == D[t][s] and the
// triangle inequality on a small, hand-built shadow graph. The public
// Engine API only exposes closeness, so both checks run on the shadow
// graph's own BFS distances; no Engine is built in this test.
func TestP2SymmetryAndP5TriangleInequality(t *testing.T) {
	sh := newShadow()
	ids := []digraph.VertexID{0, 1, 2, 3, 4}
	for _, v := range ids {
		sh.addNode(v)
	}
	sh.addEdge(0, 1)
	sh.addEdge(1, 2)
	sh.addEdge(2, 3)
	sh.addEdge(3, 4)
	sh.addEdge(4, 0)
	sh.addEdge(0, 2)

	dist := func(s, t digraph.VertexID) float64 {
		return bfsDist(sh.g, s)[t]
	}

	for _, s := range ids {
		for _, t2 := range ids {
			require.Equal(t, dist(s, t2), dist(t2, s), "D[%d][%d] != D[%d][%d]", s, t2, t2, s)
		}
	}
	for _, s := range ids {
		for _, mid := range ids {
			for _, t2 := range ids {
				require.LessOrEqual(t, dist(s, t2), dist(s, mid)+dist(mid, t2))
			}
		}
	}
}

func bfsDist(g *digraph.Graph, source digraph.VertexID) map[digraph.VertexID]float64 {
	dist := map[digraph.VertexID]float64{source: 0}
	queue := []digraph.VertexID{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, w := range g.Successors(u) {
			if _, ok := dist[w]; !ok {
				dist[w] = dist[u] + 1
				queue = append(queue, w)
			}
		}
	}

	return dist
}

// TestP6IdempotenceReplay checks that replaying the same add/remove twice
// leaves the engine's published scores unchanged, and that add-then-remove
// of the same edge restores the prior state.
func TestP6IdempotenceReplay(t *testing.T) {
	e := buildLineOfFour(t)
	before := e.AllCloseness()

	// Replaying an already-present edge is a no-op.
	require.NoError(t, e.AddUndirectedEdge(0, 1))
	require.Equal(t, before, e.AllCloseness())

	// Add then remove of a brand new edge restores the prior state.
	require.NoError(t, e.AddUndirectedEdge(0, 3))
	e.RemoveUndirectedEdge(0, 3)
	require.Equal(t, before, e.AllCloseness())
}

// TestP7CommutingInsertsOrderInsensitive checks that two inserts of
// non-incident edges commute.
func TestP7CommutingInsertsOrderInsensitive(t *testing.T) {
	build := func(first, second [2]digraph.VertexID) map[digraph.VertexID]float64 {
		e := closeness.New()
		for _, v := range []digraph.VertexID{0, 1, 2, 3, 4, 5} {
			e.AddNode(v)
		}
		require.NoError(t, e.AddUndirectedEdge(first[0], first[1]))
		require.NoError(t, e.AddUndirectedEdge(second[0], second[1]))

		return e.AllCloseness()
	}

	edgeA := [2]digraph.VertexID{0, 1}
	edgeB := [2]digraph.VertexID{3, 4} // disjoint from edgeA

	a := build(edgeA, edgeB)
	b := build(edgeB, edgeA)
	if diff := cmp.Diff(a, b, cmpopts.EquateApprox(0, tolerance)); diff != "" {
		t.Errorf("commuting inserts produced different state (-first-order +second-order):\n%s", diff)
	}
}

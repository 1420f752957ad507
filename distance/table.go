// Package distance: table.go implements Table, the sparse per-source
// distance store D[s][t] and the scalar sums TotDist[s].
package distance

import "github.com/katalvlaran/closeness/digraph"

// Table stores one row per source vertex. Row s maps every vertex
// currently reachable from s (including s itself, at distance 0) to its
// shortest distance, and tracks the row's sum separately so callers
// never need to re-sum a row after a single-entry update.
type Table struct {
	rows map[digraph.VertexID]map[digraph.VertexID]float64
	sums map[digraph.VertexID]float64
}

// New returns an empty distance table.
func New() *Table {
	return &Table{
		rows: make(map[digraph.VertexID]map[digraph.VertexID]float64),
		sums: make(map[digraph.VertexID]float64),
	}
}

// Get returns D[s][v] and whether v is reachable from s. A missing
// source or missing target both report false; callers that need the
// "+∞" convention should treat a false return as infinite distance.
func (t *Table) Get(s, v digraph.VertexID) (float64, bool) {
	row, ok := t.rows[s]
	if !ok {
		return 0, false
	}
	d, ok := row[v]

	return d, ok
}

// Set records D[s][v] = d, adjusting TotDist[s] by the delta between the
// new value and whatever was previously stored (treating an absent
// previous entry as contributing zero before the update). Initializes
// row s if this is its first entry.
func (t *Table) Set(s, v digraph.VertexID, d float64) {
	row, ok := t.rows[s]
	if !ok {
		row = make(map[digraph.VertexID]float64)
		t.rows[s] = row
	}
	if old, ok := row[v]; ok {
		t.sums[s] += d - old
	} else {
		t.sums[s] += d
	}
	row[v] = d
}

// Erase removes D[s][v] if present, decrementing TotDist[s] by the
// removed value. A no-op if v was not reachable from s.
func (t *Table) Erase(s, v digraph.VertexID) {
	row, ok := t.rows[s]
	if !ok {
		return
	}
	old, ok := row[v]
	if !ok {
		return
	}
	delete(row, v)
	t.sums[s] -= old
}

// Sum returns TotDist[s].
func (t *Table) Sum(s digraph.VertexID) float64 {
	return t.sums[s]
}

// Reachable returns |dom(D[s])|, i.e. the count of vertices reachable
// from s including s itself.
func (t *Table) Reachable(s digraph.VertexID) int {
	return len(t.rows[s])
}

// ReplaceRow overwrites row s wholesale with row and sets TotDist[s] to
// sum directly, used by full single-source refreshes (component C/E).
func (t *Table) ReplaceRow(s digraph.VertexID, row map[digraph.VertexID]float64, sum float64) {
	t.rows[s] = row
	t.sums[s] = sum
}

// DropSource removes source s entirely: its row and its sum.
func (t *Table) DropSource(s digraph.VertexID) {
	delete(t.rows, s)
	delete(t.sums, s)
}

// DropTargetEverywhere removes v from every remaining row, decrementing
// each row's sum by the distance that was recorded for v. Returns the
// map of sources whose row actually contained v, together with the
// removed distance, so the caller can recompute closeness only for
// those sources if it chooses to.
func (t *Table) DropTargetEverywhere(v digraph.VertexID) map[digraph.VertexID]float64 {
	removed := make(map[digraph.VertexID]float64)
	for s, row := range t.rows {
		if d, ok := row[v]; ok {
			delete(row, v)
			t.sums[s] -= d
			removed[s] = d
		}
	}

	return removed
}

// Sources returns every source currently holding a row.
func (t *Table) Sources() []digraph.VertexID {
	out := make([]digraph.VertexID, 0, len(t.rows))
	for s := range t.rows {
		out = append(out, s)
	}

	return out
}

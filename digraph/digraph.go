package digraph

// AddVertex inserts v if absent. Idempotent: adding an existing vertex is
// a no-op. Reports whether v was newly added.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(v VertexID) bool {
	if _, ok := g.vertices[v]; ok {
		return false
	}
	g.vertices[v] = struct{}{}
	g.succ[v] = make(map[VertexID]float64)

	return true
}

// HasVertex reports whether v is currently present.
func (g *Graph) HasVertex(v VertexID) bool {
	_, ok := g.vertices[v]

	return ok
}

// RemoveVertex drops v and every arc incident to it, in either direction.
// Removing an absent vertex is a no-op. Reports whether v existed.
//
// Complexity: O(|V|). This graph only tracks successors, so dropping
// incoming arcs scans every vertex's successor row, not only v's former
// neighbors; removal is not O(deg(v)). See closeness.Engine.RemoveNode
// for how the engine walks both directions before calling this.
func (g *Graph) RemoveVertex(v VertexID) bool {
	if _, ok := g.vertices[v]; !ok {
		return false
	}
	delete(g.vertices, v)
	delete(g.succ, v)
	for _, row := range g.succ {
		delete(row, v)
	}

	return true
}

// AddArc inserts (or re-costs) the arc u→v with cost c. Both endpoints
// must already exist; otherwise ErrUnknownVertex is returned and the
// graph is left unchanged.
//
// Complexity: O(1) amortized.
func (g *Graph) AddArc(u, v VertexID, c float64) error {
	if _, ok := g.vertices[u]; !ok {
		return ErrUnknownVertex
	}
	if _, ok := g.vertices[v]; !ok {
		return ErrUnknownVertex
	}
	g.succ[u][v] = c

	return nil
}

// RemoveArc deletes the arc u→v if present; a no-op otherwise. Reports
// whether the arc existed.
func (g *Graph) RemoveArc(u, v VertexID) bool {
	row, ok := g.succ[u]
	if !ok {
		return false
	}
	if _, ok := row[v]; !ok {
		return false
	}
	delete(row, v)

	return true
}

// HasArc reports whether the arc u→v currently exists.
func (g *Graph) HasArc(u, v VertexID) bool {
	row, ok := g.succ[u]
	if !ok {
		return false
	}
	_, ok = row[v]

	return ok
}

// ArcCost returns the cost of arc u→v and whether it exists.
func (g *Graph) ArcCost(u, v VertexID) (float64, bool) {
	row, ok := g.succ[u]
	if !ok {
		return 0, false
	}
	c, ok := row[v]

	return c, ok
}

// Successors returns the direct successors of v. Returns nil if v is
// absent. Order is unspecified; callers that need determinism must sort.
func (g *Graph) Successors(v VertexID) []VertexID {
	row, ok := g.succ[v]
	if !ok {
		return nil
	}
	out := make([]VertexID, 0, len(row))
	for w := range row {
		out = append(out, w)
	}

	return out
}

// Vertices returns every vertex currently present. Order is unspecified.
func (g *Graph) Vertices() []VertexID {
	out := make([]VertexID, 0, len(g.vertices))
	for v := range g.vertices {
		out = append(out, v)
	}

	return out
}

// Len returns |V|.
func (g *Graph) Len() int {
	return len(g.vertices)
}

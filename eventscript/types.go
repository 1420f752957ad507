package eventscript

import "github.com/katalvlaran/closeness/digraph"

// Op names one of the four recognized directive kinds.
type Op int

const (
	// OpAddNode inserts a vertex.
	OpAddNode Op = iota
	// OpRemoveNode removes a vertex and its incident edges.
	OpRemoveNode
	// OpAddEdge inserts an undirected edge.
	OpAddEdge
	// OpRemoveEdge removes an undirected edge.
	OpRemoveEdge
)

// String renders the operation as the token that names it in a script.
func (op Op) String() string {
	switch op {
	case OpAddNode:
		return "addNode"
	case OpRemoveNode:
		return "removeNode"
	case OpAddEdge:
		return "addEdge"
	case OpRemoveEdge:
		return "removeEdge"
	default:
		return "unknown"
	}
}

// Directive is one parsed line of an event script. B is unused (zero)
// for the two single-vertex operations.
type Directive struct {
	Op   Op
	A, B digraph.VertexID
}

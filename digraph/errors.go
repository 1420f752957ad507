package digraph

import "errors"

// Sentinel errors for digraph operations.
var (
	// ErrUnknownVertex indicates an arc operation referenced an endpoint
	// that is not currently present in the graph.
	ErrUnknownVertex = errors.New("digraph: unknown vertex")
)

package closeness

import "errors"

// Sentinel errors for Engine operations.
var (
	// ErrUnknownVertex indicates an edge operation referenced an endpoint
	// that is not currently present in the graph.
	ErrUnknownVertex = errors.New("closeness: unknown vertex")
)

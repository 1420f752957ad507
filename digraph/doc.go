// Package digraph holds the directed, costed graph that backs the
// closeness engine. Every undirected edge the engine's callers create is
// stored here as two mirrored arcs, so the engine's distance propagation
// can walk successor lists without ever special-casing direction.
//
// Vertex identifiers are a single concrete type, VertexID, rather than
// a loosely-typed key.
//
// Graph is not safe for concurrent use: the engine that owns it runs one
// mutation to completion before starting the next, and the contract is one
// Graph per goroutine (see the closeness package for the full rationale).
package digraph

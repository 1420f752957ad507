// Package eventscript reads an event-script file into a sequence of
// Directive values and applies them to a closeness.Engine.
//
// The format is line-oriented: one directive per non-empty line,
// whitespace-separated tokens, arity dispatches to the operation (two
// tokens for addNode/removeNode, three for addEdge/removeEdge). This
// mirrors lecteur_graphe.py's whitespace-split, arity-dispatch parser,
// re-expressed as a typed scanner whose failures are ordinary error
// values instead of printed diagnostics.
//
// ReadAll never stops at the first bad line: a malformed line or an
// identifier that doesn't parse is skipped and reported back to the
// caller alongside the directives that did parse, so a single bad line
// in a long script can't halt the whole run.
package eventscript

package eventscript

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/closeness/closeness"
	"github.com/katalvlaran/closeness/digraph"
)

// ParseIdentifier decodes a vertex identifier token: either a bare
// non-negative decimal integer ("7") or the letter "n" followed by one
// ("n7", the "n"-prefix is stripped before parsing). Any other shape is
// ErrInvalidIdentifier.
func ParseIdentifier(tok string) (digraph.VertexID, error) {
	digits := tok
	if strings.HasPrefix(tok, "n") {
		digits = tok[1:]
	}
	if digits == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIdentifier, tok)
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIdentifier, tok)
	}

	return digraph.VertexID(n), nil
}

// ReadAll scans r for event-script directives, one per non-empty line.
// Blank lines are skipped silently. A line whose arity or operation
// name is not recognized, or whose identifier tokens don't parse, is
// skipped and its error appended to the returned slice — parsing
// continues with the next line rather than stopping.
func ReadAll(r io.Reader) ([]Directive, []error) {
	var directives []Directive
	var errs []error

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		d, err := parseLine(line)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", lineNo, err))
			continue
		}
		directives = append(directives, d)
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, fmt.Errorf("line %d: %w", lineNo+1, err))
	}

	return directives, errs
}

// parseLine dispatches on token count, mirroring lecteur_graphe.py's
// 2-arg (node) / 3-arg (edge) arity split.
func parseLine(line string) (Directive, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 2:
		a, err := ParseIdentifier(fields[1])
		if err != nil {
			return Directive{}, err
		}
		switch fields[0] {
		case "addNode":
			return Directive{Op: OpAddNode, A: a}, nil
		case "removeNode":
			return Directive{Op: OpRemoveNode, A: a}, nil
		default:
			return Directive{}, fmt.Errorf("%w: unrecognized op %q", ErrMalformedLine, fields[0])
		}
	case 3:
		a, err := ParseIdentifier(fields[1])
		if err != nil {
			return Directive{}, err
		}
		b, err := ParseIdentifier(fields[2])
		if err != nil {
			return Directive{}, err
		}
		switch fields[0] {
		case "addEdge":
			return Directive{Op: OpAddEdge, A: a, B: b}, nil
		case "removeEdge":
			return Directive{Op: OpRemoveEdge, A: a, B: b}, nil
		default:
			return Directive{}, fmt.Errorf("%w: unrecognized op %q", ErrMalformedLine, fields[0])
		}
	default:
		return Directive{}, fmt.Errorf("%w: expected 2 or 3 fields, got %d", ErrMalformedLine, len(fields))
	}
}

// Apply performs d against e. AddNode and RemoveNode never fail.
// AddEdge fails with closeness.ErrUnknownVertex if either endpoint is
// absent; RemoveEdge is always a no-op on an absent edge.
func Apply(e *closeness.Engine, d Directive) error {
	switch d.Op {
	case OpAddNode:
		e.AddNode(d.A)
		return nil
	case OpRemoveNode:
		e.RemoveNode(d.A)
		return nil
	case OpAddEdge:
		return e.AddUndirectedEdge(d.A, d.B)
	case OpRemoveEdge:
		e.RemoveUndirectedEdge(d.A, d.B)
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrUnknownOp, d.Op)
	}
}

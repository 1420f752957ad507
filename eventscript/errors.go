package eventscript

import "errors"

// Sentinel errors for event-script parsing and application.
var (
	// ErrMalformedLine indicates a non-blank line whose token count
	// matches no recognized directive arity, or whose first token names
	// no recognized operation.
	ErrMalformedLine = errors.New("eventscript: malformed line")

	// ErrInvalidIdentifier indicates a token that is neither a bare
	// non-negative decimal integer nor an "n"-prefixed one.
	ErrInvalidIdentifier = errors.New("eventscript: invalid identifier")

	// ErrUnknownOp indicates an Op value outside the recognized set,
	// surfaced by Apply when a Directive was built by hand rather than
	// by ReadAll.
	ErrUnknownOp = errors.New("eventscript: unknown op")
)

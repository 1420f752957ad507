package eventscript_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/closeness/closeness"
	"github.com/katalvlaran/closeness/digraph"
	"github.com/katalvlaran/closeness/eventscript"
)

func TestParseIdentifierBareInteger(t *testing.T) {
	id, err := eventscript.ParseIdentifier("7")
	require.NoError(t, err)
	require.Equal(t, digraph.VertexID(7), id)
}

func TestParseIdentifierNPrefixed(t *testing.T) {
	id, err := eventscript.ParseIdentifier("n7")
	require.NoError(t, err)
	require.Equal(t, digraph.VertexID(7), id)
}

func TestParseIdentifierRejectsGarbage(t *testing.T) {
	for _, tok := range []string{"", "n", "nabc", "-1", "abc", "n-1"} {
		_, err := eventscript.ParseIdentifier(tok)
		require.ErrorIs(t, err, eventscript.ErrInvalidIdentifier, "token %q", tok)
	}
}

func TestReadAllParsesAllFourDirectives(t *testing.T) {
	script := `
addNode 0
addNode n1
addEdge 0 n1
removeEdge 0 1
removeNode 1
`
	directives, errs := eventscript.ReadAll(strings.NewReader(script))
	require.Empty(t, errs)
	require.Equal(t, []eventscript.Directive{
		{Op: eventscript.OpAddNode, A: 0},
		{Op: eventscript.OpAddNode, A: 1},
		{Op: eventscript.OpAddEdge, A: 0, B: 1},
		{Op: eventscript.OpRemoveEdge, A: 0, B: 1},
		{Op: eventscript.OpRemoveNode, A: 1},
	}, directives)
}

func TestReadAllSkipsBlankLines(t *testing.T) {
	script := "addNode 0\n\n\naddNode 1\n"
	directives, errs := eventscript.ReadAll(strings.NewReader(script))
	require.Empty(t, errs)
	require.Len(t, directives, 2)
}

func TestReadAllSkipsMalformedLineWithWarning(t *testing.T) {
	script := "addNode 0\nthis line has way too many tokens in it\naddNode 1\n"
	directives, errs := eventscript.ReadAll(strings.NewReader(script))
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], eventscript.ErrMalformedLine)
	// The good lines on either side of the bad one still parse.
	require.Len(t, directives, 2)
}

func TestReadAllSkipsInvalidIdentifierWithWarning(t *testing.T) {
	script := "addNode 0\naddNode notanumber\naddNode 1\n"
	directives, errs := eventscript.ReadAll(strings.NewReader(script))
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], eventscript.ErrInvalidIdentifier)
	require.Len(t, directives, 2)
}

func TestReadAllRejectsUnrecognizedOpName(t *testing.T) {
	script := "frobnicate 0 1\n"
	directives, errs := eventscript.ReadAll(strings.NewReader(script))
	require.Empty(t, directives)
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], eventscript.ErrMalformedLine)
}

func TestApplyAddNodeAndAddEdge(t *testing.T) {
	e := closeness.New()
	require.NoError(t, eventscript.Apply(e, eventscript.Directive{Op: eventscript.OpAddNode, A: 0}))
	require.NoError(t, eventscript.Apply(e, eventscript.Directive{Op: eventscript.OpAddNode, A: 1}))
	require.NoError(t, eventscript.Apply(e, eventscript.Directive{Op: eventscript.OpAddEdge, A: 0, B: 1}))

	require.InDelta(t, 1.0, e.Closeness(0), 1e-9)
}

func TestApplyAddEdgeUnknownVertexFails(t *testing.T) {
	e := closeness.New()
	err := eventscript.Apply(e, eventscript.Directive{Op: eventscript.OpAddEdge, A: 0, B: 1})
	require.ErrorIs(t, err, closeness.ErrUnknownVertex)
}

func TestApplyRemoveNodeAndRemoveEdgeAreNoopOnAbsent(t *testing.T) {
	e := closeness.New()
	require.NoError(t, eventscript.Apply(e, eventscript.Directive{Op: eventscript.OpRemoveNode, A: 99}))
	require.NoError(t, eventscript.Apply(e, eventscript.Directive{Op: eventscript.OpRemoveEdge, A: 1, B: 2}))
	require.Equal(t, 0, e.Len())
}

func TestApplyUnknownOpErrors(t *testing.T) {
	e := closeness.New()
	err := eventscript.Apply(e, eventscript.Directive{Op: eventscript.Op(99)})
	require.ErrorIs(t, err, eventscript.ErrUnknownOp)
}

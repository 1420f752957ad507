package bench

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/closeness/closeness"
	"github.com/katalvlaran/closeness/digraph"
	"github.com/katalvlaran/closeness/eventscript"
	"github.com/katalvlaran/closeness/reference"
	"github.com/katalvlaran/closeness/report"
)

// Run replays events against both engines: the independent reference
// engine, recomputed from scratch after every event, and the
// incremental closeness.Engine, updated in place. It returns one
// report.Measurement comparing wall-clock time and final scores.
//
// NNodes and M describe the final graph reached by the incremental
// run (vertex count, and addEdge directives per vertex); NumActions is
// the length of events.
func Run(events []eventscript.Directive, tolerance float64) (report.Measurement, error) {
	incr := closeness.New()
	classicalGraph := digraph.New()

	startIncr := time.Now()
	numEdges := 0
	for _, d := range events {
		if err := eventscript.Apply(incr, d); err != nil {
			return report.Measurement{}, fmt.Errorf("bench: incremental apply: %w", err)
		}
		if d.Op == eventscript.OpAddEdge {
			numEdges++
		}
	}
	timeIncremental := time.Since(startIncr).Seconds()

	startClass := time.Now()
	var classicalScores map[digraph.VertexID]float64
	for _, d := range events {
		if err := applyClassical(classicalGraph, d); err != nil {
			return report.Measurement{}, fmt.Errorf("bench: classical apply: %w", err)
		}
		classicalScores = reference.AllCloseness(classicalGraph)
	}
	timeClassical := time.Since(startClass).Seconds()

	incrScores := incr.AllCloseness()
	correct, maxDiff := verifyCorrectness(classicalScores, incrScores, tolerance)

	var speedup float64
	if timeIncremental > 0 {
		speedup = timeClassical / timeIncremental
	}

	nNodes := incr.Len()
	m := 0
	if nNodes > 0 {
		m = numEdges / nNodes
	}

	return report.Measurement{
		NNodes:          nNodes,
		M:               m,
		NumActions:      len(events),
		TimeClassical:   timeClassical,
		TimeIncremental: timeIncremental,
		Speedup:         speedup,
		Correct:         correct,
		MaxDiff:         maxDiff,
	}, nil
}

// applyClassical mirrors eventscript.Apply against a bare digraph.Graph,
// since the reference package (by design, see its doc comment) knows
// nothing about closeness.Engine or its edge bookkeeping.
func applyClassical(g *digraph.Graph, d eventscript.Directive) error {
	switch d.Op {
	case eventscript.OpAddNode:
		g.AddVertex(d.A)
		return nil
	case eventscript.OpRemoveNode:
		g.RemoveVertex(d.A)
		return nil
	case eventscript.OpAddEdge:
		if !g.HasVertex(d.A) || !g.HasVertex(d.B) {
			return closeness.ErrUnknownVertex
		}
		_ = g.AddArc(d.A, d.B, 1)
		_ = g.AddArc(d.B, d.A, 1)
		return nil
	case eventscript.OpRemoveEdge:
		_ = g.RemoveArc(d.A, d.B)
		_ = g.RemoveArc(d.B, d.A)
		return nil
	default:
		return fmt.Errorf("bench: %w", eventscript.ErrUnknownOp)
	}
}

// verifyCorrectness mirrors benchmark_performance.py's verify_correctness:
// every classical score must be within tolerance of its incremental
// counterpart (missing incremental entries treated as 0).
func verifyCorrectness(classical, incremental map[digraph.VertexID]float64, tolerance float64) (bool, float64) {
	maxDiff := 0.0
	ok := true
	for v, want := range classical {
		got := incremental[v]
		diff := math.Abs(want - got)
		if diff > maxDiff {
			maxDiff = diff
		}
		if diff > tolerance {
			ok = false
		}
	}

	return ok, maxDiff
}

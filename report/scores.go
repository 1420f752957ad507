package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/closeness/digraph"
)

// WriteScores writes one line per vertex identifier from 0 to the
// largest id present in c, in order. Each line is the closeness value
// of that id rendered with at least 10 significant digits; identifiers
// with no entry in c (gaps, or vertices never present) are written as
// 0.0. Writing an empty map produces no output.
func WriteScores(w io.Writer, c map[digraph.VertexID]float64) error {
	if len(c) == 0 {
		return nil
	}

	var maxID digraph.VertexID
	for id := range c {
		if id > maxID {
			maxID = id
		}
	}

	for id := digraph.VertexID(0); id <= maxID; id++ {
		v, ok := c[id]
		var line string
		if !ok {
			line = "0.0" // gap: vertex never present or removed
		} else {
			line = strconv.FormatFloat(v, 'g', 10, 64)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("report: write score for vertex %d: %w", id, err)
		}
	}

	return nil
}

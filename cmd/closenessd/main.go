// Command closenessd replays an event script against the incremental
// closeness engine, or benchmarks it against the full-recompute
// reference engine.
package main

import (
	"os"

	"github.com/katalvlaran/closeness/cmd/closenessd/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

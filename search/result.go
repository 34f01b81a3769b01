package search

import (
	"math"
	"time"

	"github.com/katalvlaran/quickroute/transit"
)

// Result is the uniform record every algorithm produces for one
// (algorithm, start, destination) query. Results are immutable values owned
// by the caller; the engine keeps no reference after returning one.
type Result struct {
	// Algorithm identifies the variant that produced this result.
	Algorithm Algorithm

	// Path is the ordered stop sequence from start to destination,
	// nil when the destination is unreachable.
	Path []transit.StopID

	// Cost is the total weighted cost of Path in minutes,
	// +Inf when unreachable.
	Cost float64

	// Expanded counts the nodes finalized during the run. For Floyd–Warshall
	// it reports V³, the relaxation count of the triple loop, so the column
	// stays comparable across algorithms.
	Expanded int

	// Duration is the wall-clock time of the run.
	Duration time.Duration

	// Weight is the heuristic weight applied (Weighted A* only; 0 otherwise).
	Weight float64
}

// Reachable reports whether a path was found. An unreachable destination is
// a well-formed result, not an error.
func (r Result) Reachable() bool { return len(r.Path) > 0 }

// Hops returns the number of edges along the path (0 when unreachable or
// when start equals destination).
func (r Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// unreachable builds the explicit no-path result.
func unreachable(a Algorithm, expanded int, elapsed time.Duration) Result {
	return Result{
		Algorithm: a,
		Cost:      math.Inf(1),
		Expanded:  expanded,
		Duration:  elapsed,
	}
}

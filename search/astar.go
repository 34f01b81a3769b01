package search

import (
	"fmt"
	"time"

	"github.com/katalvlaran/quickroute/heuristic"
	"github.com/katalvlaran/quickroute/transit"
)

// runInformed covers both A* (weight fixed at 1.0) and Weighted A*
// (caller-supplied weight ≥ 1.0): f(n) = cost-so-far(n) + w·h(n).
//
// Preconditions, documented rather than enforced at runtime:
// the heuristic must be admissible (never overestimates the true remaining
// cost) and consistent (triangle inequality across edges). Under them, A*
// returns the same optimal cost as Dijkstra with no more expansions, and
// Weighted A* returns cost ≤ w × optimal. heuristic.Verify audits the
// default estimator; a custom WithHeuristic is the caller's responsibility.
func runInformed(g *transit.Graph, start, dest transit.StopID, o Options, algo Algorithm) (Result, error) {
	began := time.Now()

	h := o.Heuristic
	if h == nil {
		est, err := heuristic.New(g)
		if err != nil {
			return Result{}, fmt.Errorf("search: building default heuristic: %w", err)
		}
		h = est.Estimate
	}

	// The weight option is only meaningful for Weighted A*; plain A* pins 1.0.
	w := 1.0
	var reported float64
	if algo == WeightedAStar {
		w = o.HeuristicWeight
		reported = o.HeuristicWeight
	}

	x := newExpander(g, dest, h, w, o.MaxExpansions)
	if !x.run(start) {
		r := unreachable(algo, x.expanded, time.Since(began))
		r.Weight = reported

		return r, nil
	}

	return Result{
		Algorithm: algo,
		Path:      x.path(start),
		Cost:      x.dist[dest],
		Expanded:  x.expanded,
		Duration:  time.Since(began),
		Weight:    reported,
	}, nil
}

package search

import (
	"time"

	"github.com/katalvlaran/quickroute/transit"
)

// runDijkstra is single-source shortest path with f(n) = cost-so-far(n).
//
// Edge weights are strictly positive by graph construction, so the first
// finalization of a stop is its minimum cost and the returned path is
// minimum-total-weight whenever one exists.
func runDijkstra(g *transit.Graph, start, dest transit.StopID, o Options) (Result, error) {
	began := time.Now()

	x := newExpander(g, dest, nil, 0, o.MaxExpansions)
	if !x.run(start) {
		return unreachable(Dijkstra, x.expanded, time.Since(began)), nil
	}

	return Result{
		Algorithm: Dijkstra,
		Path:      x.path(start),
		Cost:      x.dist[dest],
		Expanded:  x.expanded,
		Duration:  time.Since(began),
	}, nil
}

package search

import (
	"time"

	"github.com/katalvlaran/quickroute/transit"
)

// runTraversal covers BFS (FIFO frontier) and DFS (LIFO frontier). Both
// ignore edge weights during expansion and stop on first visit of the
// destination; the reported cost is recomputed from the weights of the
// edges actually traversed so the result stays comparable with the
// weighted algorithms.
//
// BFS paths have the minimal edge count among all paths; DFS merely returns
// some valid path whenever one exists.
func runTraversal(g *transit.Graph, start, dest transit.StopID, o Options, algo Algorithm) (Result, error) {
	began := time.Now()

	order := fifoOrder
	if algo == DFS {
		order = lifoOrder
	}

	w := newUnweightedWalk(g, dest, order, o.MaxExpansions)
	if !w.run(start) {
		return unreachable(algo, w.expanded, time.Since(began)), nil
	}

	path := rebuildPath(w.prev, start, dest)

	return Result{
		Algorithm: algo,
		Path:      path,
		Cost:      w.pathCost(path),
		Expanded:  w.expanded,
		Duration:  time.Since(began),
	}, nil
}

package search

import (
	"fmt"

	"github.com/katalvlaran/quickroute/transit"
)

// Run executes this algorithm for one (start, destination) query against g.
//
// Shared preconditions, checked in order: options must be well-formed, g
// must be non-nil, and both endpoints must exist (ErrStopNotFound). An
// unreachable destination is not an error — it comes back as a Result with
// a nil Path and Cost = +Inf.
//
// The graph is read-only for the duration of the call and no state survives
// it, so concurrent Runs against the same graph need no synchronization.
func (a Algorithm) Run(g *transit.Graph, start, dest transit.StopID, opts ...Option) (Result, error) {
	o, err := validate(g, start, dest, opts)
	if err != nil {
		return Result{}, err
	}

	switch a {
	case Dijkstra:
		return runDijkstra(g, start, dest, o)
	case AStar, WeightedAStar:
		return runInformed(g, start, dest, o, a)
	case BFS, DFS:
		return runTraversal(g, start, dest, o, a)
	case FloydWarshall:
		return runFloydWarshall(g, start, dest, o)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
}

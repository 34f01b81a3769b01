package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/quickroute/transit"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil *transit.Graph was passed to a search.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrStopNotFound indicates the start or destination stop is absent from
	// the graph. Surfaced immediately; never retried.
	ErrStopNotFound = errors.New("search: stop not found in graph")

	// ErrBadHeuristicWeight indicates a Weighted A* weight below 1.0.
	ErrBadHeuristicWeight = errors.New("search: heuristic weight must be ≥ 1.0")

	// ErrGraphTooLarge indicates the graph's stop count exceeds the configured
	// Floyd–Warshall memory-safety threshold. Surfaced before any matrix
	// allocation is attempted.
	ErrGraphTooLarge = errors.New("search: graph exceeds all-pairs stop limit")

	// ErrUnknownAlgorithm indicates an Algorithm value outside the closed set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation indicates an invalid functional option was supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// DefaultMaxStops caps the stop count Floyd–Warshall will accept before
// refusing to allocate its O(V²) matrices. 4096 stops ≈ 128 MiB of float64
// cost matrix plus the predecessor matrix — already generous for a metro
// network snapshot.
const DefaultMaxStops = 4096

// Algorithm identifies one search variant of the closed set.
type Algorithm int

const (
	// Dijkstra is single-source shortest path, f(n) = g(n).
	Dijkstra Algorithm = iota

	// AStar is informed search, f(n) = g(n) + h(n); optimal for admissible,
	// consistent heuristics.
	AStar

	// WeightedAStar is informed search with suboptimality weighting,
	// f(n) = g(n) + w·h(n); returned cost ≤ w × optimal for admissible h.
	WeightedAStar

	// BFS is unweighted breadth-first traversal (minimal edge count).
	BFS

	// DFS is unweighted depth-first traversal (some valid path).
	DFS

	// FloydWarshall answers a query from a fresh all-pairs computation.
	FloydWarshall
)

// algorithmNames is indexed by Algorithm.
var algorithmNames = [...]string{
	Dijkstra:      "dijkstra",
	AStar:         "a-star",
	WeightedAStar: "weighted-a-star",
	BFS:           "bfs",
	DFS:           "dfs",
	FloydWarshall: "floyd-warshall",
}

// String returns the stable name of the algorithm, used in reports and the CLI.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// ParseAlgorithm maps a stable name back to its Algorithm value.
func ParseAlgorithm(name string) (Algorithm, error) {
	for a, n := range algorithmNames {
		if n == name {
			return Algorithm(a), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Algorithms returns the full closed set, in the deterministic order the
// benchmark harness iterates.
func Algorithms() []Algorithm {
	return []Algorithm{Dijkstra, AStar, WeightedAStar, BFS, DFS, FloydWarshall}
}

// Heuristic estimates the remaining cost, in minutes, from a stop to the
// destination. It must never overestimate (admissibility) for A* optimality
// and the Weighted A* suboptimality bound to hold; see package heuristic.
type Heuristic func(from, to transit.StopID) float64

// Options configures a single search run.
//
//   - Heuristic: remaining-cost estimator; informed searches build a
//     geographic one from the graph when none is supplied.
//   - HeuristicWeight: Weighted A* suboptimality factor, ≥ 1.0 (default 1.0;
//     ignored by every other variant).
//   - MaxExpansions: if > 0, the run stops after finalizing this many nodes
//     and reports the destination unreachable. This is the external budget
//     hook: the search loop has no suspension point to poll a deadline on,
//     so a caller with a wall-clock budget bounds the expansion counter.
//   - MaxStops: Floyd–Warshall memory-safety threshold (default
//     DefaultMaxStops; ignored by every other variant).
type Options struct {
	Heuristic       Heuristic
	HeuristicWeight float64
	MaxExpansions   int
	MaxStops        int

	// internal error recorded during option parsing
	err error
}

// Option configures search behavior via functional arguments. Invalid values
// are recorded and surfaced as a sentinel when the search is invoked.
type Option func(*Options)

// DefaultOptions returns Options with no heuristic override, weight 1.0,
// no expansion budget, and the default all-pairs stop limit.
func DefaultOptions() Options {
	return Options{
		HeuristicWeight: 1.0,
		MaxStops:        DefaultMaxStops,
	}
}

// WithHeuristic overrides the remaining-cost estimator used by the informed
// searches. A nil fn keeps the default.
func WithHeuristic(fn Heuristic) Option {
	return func(o *Options) {
		if fn != nil {
			o.Heuristic = fn
		}
	}
}

// WithHeuristicWeight sets the Weighted A* suboptimality factor w.
// w = 1.0 degenerates to plain A*; w < 1.0 is rejected with
// ErrBadHeuristicWeight because it voids both optimality and the bound.
func WithHeuristicWeight(w float64) Option {
	return func(o *Options) {
		if w < 1.0 {
			o.err = fmt.Errorf("%w: got %v", ErrBadHeuristicWeight, w)

			return
		}
		o.HeuristicWeight = w
	}
}

// WithMaxExpansions bounds the number of node finalizations in a run.
// n = 0 disables the bound; n < 0 is an option violation.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxExpansions = n
	}
}

// WithMaxStops sets the Floyd–Warshall stop-count threshold.
// n ≤ 0 is an option violation.
func WithMaxStops(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxStops must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxStops = n
	}
}

// buildOptions folds opts over the defaults and surfaces recorded violations.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// validate performs the shared precondition checks for every variant:
// non-nil graph, options well-formed, both endpoints present.
func validate(g *transit.Graph, start, dest transit.StopID, opts []Option) (Options, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Options{}, err
	}
	if g == nil {
		return Options{}, ErrNilGraph
	}
	if !g.HasStop(start) {
		return Options{}, fmt.Errorf("%w: start %d", ErrStopNotFound, start)
	}
	if !g.HasStop(dest) {
		return Options{}, fmt.Errorf("%w: destination %d", ErrStopNotFound, dest)
	}

	return o, nil
}

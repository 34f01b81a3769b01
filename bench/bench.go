package bench

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/quickroute/search"
	"github.com/katalvlaran/quickroute/transit"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil *transit.Graph was passed to Run.
	ErrNilGraph = errors.New("bench: graph is nil")

	// ErrNoQueries indicates an empty query list.
	ErrNoQueries = errors.New("bench: no queries supplied")

	// ErrOptionViolation indicates an invalid functional option was supplied.
	ErrOptionViolation = errors.New("bench: invalid option supplied")

	// ErrInconsistent indicates the cross-algorithm validation failed: two
	// algorithms disagreed where agreement is guaranteed, a bound was
	// exceeded, or a returned path is not a valid walk.
	ErrInconsistent = errors.New("bench: cross-algorithm consistency violated")
)

// Query is one (start, destination) pair submitted to every algorithm.
type Query struct {
	Start transit.StopID
	Dest  transit.StopID
}

// Record pairs a query with one algorithm's result for it.
type Record struct {
	Query  Query
	Result search.Result
}

// Options configures a harness run.
type Options struct {
	Weights     []float64
	Repeats     int
	Parallelism int

	err error
}

// Option configures the harness via functional arguments. Invalid values are
// recorded and surfaced when Run is invoked.
type Option func(*Options)

// DefaultOptions returns Options with one Weighted A* pass at w = 1.5,
// a single timed repetition, and sequential execution.
func DefaultOptions() Options {
	return Options{
		Weights:     []float64{1.5},
		Repeats:     1,
		Parallelism: 1,
	}
}

// WithHeuristicWeights sets the Weighted A* weights to benchmark, one pass
// per weight. Every w must be ≥ 1.0; an empty list skips Weighted A*.
func WithHeuristicWeights(ws ...float64) Option {
	return func(o *Options) {
		for _, w := range ws {
			if w < 1.0 {
				o.err = fmt.Errorf("%w: heuristic weight %v below 1.0", ErrOptionViolation, w)

				return
			}
		}
		o.Weights = ws
	}
}

// WithRepeats sets how many times each run is repeated; the reported duration
// is the mean. n < 1 is an option violation.
func WithRepeats(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: repeats must be at least 1 (%d)", ErrOptionViolation, n)

			return
		}
		o.Repeats = n
	}
}

// WithParallelism sets the number of worker goroutines. n < 1 is an option
// violation; 1 keeps execution sequential.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: parallelism must be at least 1 (%d)", ErrOptionViolation, n)

			return
		}
		o.Parallelism = n
	}
}

// job is one (query, algorithm, weight) cell of the run matrix.
type job struct {
	idx   int
	query Query
	algo  search.Algorithm
	opts  []search.Option
}

// Run executes the full algorithm × query matrix against g, validates the
// results against each other, and returns the aggregated report.
//
// The record order is deterministic regardless of parallelism: queries in
// input order, algorithms in the closed-set order, Weighted A* passes in
// weight order.
func Run(g *transit.Graph, queries []Query, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(queries) == 0 {
		return nil, ErrNoQueries
	}

	jobs := buildJobs(queries, o.Weights)
	records := make([]Record, len(jobs))
	errs := make([]error, len(jobs))

	feed := make(chan job)
	var wg sync.WaitGroup
	for w := 0; w < o.Parallelism; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range feed {
				records[j.idx], errs[j.idx] = runJob(g, j, o.Repeats)
			}
		}()
	}
	for _, j := range jobs {
		feed <- j
	}
	close(feed)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if err := validateRecords(g, queries, records); err != nil {
		return nil, err
	}

	return newReport(records), nil
}

// buildJobs expands the query list into the full run matrix.
func buildJobs(queries []Query, weights []float64) []job {
	perQuery := len(search.Algorithms()) - 1 + len(weights)
	jobs := make([]job, 0, len(queries)*perQuery)

	idx := 0
	for _, q := range queries {
		for _, a := range search.Algorithms() {
			if a == search.WeightedAStar {
				for _, w := range weights {
					jobs = append(jobs, job{
						idx:   idx,
						query: q,
						algo:  a,
						opts:  []search.Option{search.WithHeuristicWeight(w)},
					})
					idx++
				}

				continue
			}
			jobs = append(jobs, job{idx: idx, query: q, algo: a})
			idx++
		}
	}

	return jobs
}

// runJob repeats one cell of the matrix and averages the wall-clock duration.
// Everything but the timing is deterministic, so the last result stands.
func runJob(g *transit.Graph, j job, repeats int) (Record, error) {
	var (
		res   search.Result
		total time.Duration
	)
	for i := 0; i < repeats; i++ {
		r, err := j.algo.Run(g, j.query.Start, j.query.Dest, j.opts...)
		if err != nil {
			return Record{}, fmt.Errorf("bench: %s on %d→%d: %w", j.algo, j.query.Start, j.query.Dest, err)
		}
		res = r
		total += r.Duration
	}
	res.Duration = total / time.Duration(repeats)

	return Record{Query: j.query, Result: res}, nil
}

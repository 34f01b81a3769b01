// Package bench runs every algorithm of the search variant set against a
// shared list of queries and reports comparable metrics.
//
// # What the harness does
//
//  1. For each query, runs Dijkstra, A*, BFS, DFS, Floyd–Warshall, and one
//     Weighted A* pass per configured weight, all against the same frozen
//     graph.
//  2. Repeats each run a configurable number of times and reports the mean
//     wall-clock duration; paths, costs, and expansion counts are
//     deterministic, so only the timing is averaged.
//  3. Cross-validates the results: A* and Floyd–Warshall must match
//     Dijkstra's cost on every query, each Weighted A* cost must stay within
//     its w × optimal bound, and every returned path must be a valid walk
//     over existing edges. Any violation fails the whole run with
//     ErrInconsistent — a wrong answer is worse than no answer.
//
// # Options
//
//   - WithHeuristicWeights — the Weighted A* passes to include (default 1.5).
//   - WithRepeats — timed repetitions per run (default 1).
//   - WithParallelism — worker goroutines; per-run state is worker-local and
//     the graph is the only shared, read-only structure.
//
// # Errors
//
// ErrNilGraph, ErrNoQueries, ErrOptionViolation for bad input;
// ErrInconsistent when validation fails; search-layer sentinels pass
// through wrapped.
package bench

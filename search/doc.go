// Package search implements the shortest-path algorithms of the engine —
// Dijkstra, A*, Weighted A*, Floyd–Warshall, BFS, and DFS — over a frozen
// transit.Graph, with uniform instrumentation so their outputs are directly
// comparable.
//
// The algorithms form a closed set of variants (Algorithm) sharing one
// capability: Run(graph, start, destination, options) → Result. A Result
// always carries the path, its weighted cost, the number of nodes expanded,
// and the wall-clock duration, regardless of which variant produced it.
//
// Two shared expansion engines back the variants:
//
//   - Weighted expansion (Dijkstra, A*, Weighted A*): a min-heap frontier
//     keyed by f(n), lazy deletion instead of decrease-key, strict-improvement
//     relaxation, and an expansion counter incremented only when a node is
//     finalized. f(n) = g(n) for Dijkstra, g(n)+h(n) for A*, g(n)+w·h(n) for
//     Weighted A*.
//   - Unweighted expansion (BFS, DFS): a visited set and predecessor map over
//     a FIFO (BFS) or LIFO (DFS) frontier, ignoring edge weights, stopping on
//     the first visit of the destination. The reported cost is recomputed by
//     summing the weights of the edges actually traversed, so unweighted
//     results remain comparable with the weighted ones.
//
// Tie-break policy: frontier entries with equal f pop in insertion order
// (FIFO within ties). Combined with the graph's fixed neighbor ordering this
// makes every returned path deterministic and therefore testable.
//
// Unreachable destinations are not errors: the Result has a nil Path and
// Cost = +Inf, and Reachable() reports false.
//
// Complexity:
//
//   - Dijkstra / A* / Weighted A*:  O((V + E) log V) time, O(V + E) space.
//   - BFS / DFS:                    O(V + E) time, O(V) space.
//   - Floyd–Warshall:               O(V³) time, O(V²) space — the only
//     variant whose memory footprint is guarded (WithMaxStops, ErrGraphTooLarge).
//
// Concurrency: each run owns its frontier, cost, and visited state; the graph
// is the only shared structure and it is read-only. Distinct runs may execute
// on separate goroutines with no locking. There is no internal cancellation;
// bound work with WithMaxExpansions or wrap the call externally.
//
// Errors are package-level sentinels; branch with errors.Is.
package search

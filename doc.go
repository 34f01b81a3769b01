// Package quickroute is a multi-algorithm shortest-path engine for small
// weighted transit networks — stops, timed ride segments, and penalized
// transfers.
//
// 🚀 What is quickroute?
//
//	A compact routing toolkit that answers one question six ways:
//		• Dijkstra — the optimal baseline, f(n) = g(n)
//		• A* — optimal with a geographic lower-bound heuristic
//		• Weighted A* — faster, provably within w × optimal
//		• BFS — fewest hops, weights ignored
//		• DFS — some valid path, depth first
//		• Floyd–Warshall — every pair at once
//
// All six return the same uniform record (path, cost in minutes, nodes
// expanded, wall-clock duration), so their trade-offs can be compared
// head to head on the same frozen graph.
//
// ✨ Layout
//
//	transit/   — stops, edges, Builder validation, the frozen Graph
//	search/    — the algorithm set behind one Run entry point
//	heuristic/ — admissible great-circle travel-time estimator
//	bench/     — algorithm × query harness with consistency validation
//	snapshot/  — YAML persistence, re-validated on every load
//	cmd/       — the quickroute CLI (stops / route / bench)
//
// Graphs are immutable once built, so concurrent queries need no locking;
// every search owns its per-run state.
package quickroute

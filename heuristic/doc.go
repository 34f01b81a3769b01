// Package heuristic estimates the remaining travel time from a stop to a
// destination, guiding the informed searches (A*, Weighted A*).
//
// The estimate is a geometric lower bound: the great-circle distance to the
// destination divided by the fastest speed observed anywhere in the network.
// No edge sequence can cover ground faster than the fastest edge, so the
// estimate never exceeds the true remaining travel time — it is admissible
// by construction, and consistent (the triangle inequality of great-circle
// distance carries over).
//
// Admissibility is the precondition for A* optimality and for Weighted A*'s
// bounded-suboptimality guarantee. It is a documented contract, not a runtime
// check inside the search loop; Verify exists so tests can audit a
// graph/estimator pair instead of silently assuming the property.
//
// A network with no usable edge (or with stops at identical coordinates
// throughout) yields a zero estimate everywhere, degrading A* to Dijkstra —
// slower, never wrong.
package heuristic

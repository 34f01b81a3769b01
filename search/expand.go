package search

import (
	"container/heap"

	"github.com/katalvlaran/quickroute/transit"
)

// expander holds the mutable state of one weighted-expansion run. All of it
// is local to the call: nothing is shared between runs, which is what allows
// concurrent queries against the same frozen graph.
type expander struct {
	g    *transit.Graph
	dest transit.StopID

	// h is nil for Dijkstra; w scales h for Weighted A* (1.0 for plain A*).
	h Heuristic
	w float64

	// maxExpansions > 0 bounds the number of finalizations.
	maxExpansions int

	dist     map[transit.StopID]float64
	prev     map[transit.StopID]transit.StopID
	visited  map[transit.StopID]bool
	expanded int
	pq       frontier
	nextSeq  uint64
}

// newExpander prepares the per-run state for a weighted search from start.
func newExpander(g *transit.Graph, dest transit.StopID, h Heuristic, w float64, maxExp int) *expander {
	hint := g.StopCount()

	return &expander{
		g:             g,
		dest:          dest,
		h:             h,
		w:             w,
		maxExpansions: maxExp,
		dist:          make(map[transit.StopID]float64, hint),
		prev:          make(map[transit.StopID]transit.StopID, hint),
		visited:       make(map[transit.StopID]bool, hint),
		pq:            make(frontier, 0, hint),
	}
}

// fvalue computes the frontier key for a stop whose cost-so-far is gCost.
func (x *expander) fvalue(id transit.StopID, gCost float64) float64 {
	if x.h == nil {
		return gCost
	}

	return gCost + x.w*x.h(id, x.dest)
}

// push inserts id with the given f-value, stamping the insertion sequence.
func (x *expander) push(id transit.StopID, fval float64) {
	heap.Push(&x.pq, &frontierItem{id: id, f: fval, seq: x.nextSeq})
	x.nextSeq++
}

// run executes the expansion loop from start and reports whether the
// destination was finalized.
//
// Loop invariants:
//   - a popped stop already marked visited is a stale lazy-deletion entry
//     and is skipped without counting as an expansion;
//   - a stop is counted as expanded exactly once, when finalized;
//   - relaxation updates only on strict improvement, so equal-cost rivals
//     keep the first-discovered predecessor (deterministic paths).
func (x *expander) run(start transit.StopID) bool {
	x.dist[start] = 0
	heap.Init(&x.pq)
	x.push(start, x.fvalue(start, 0))

	for x.pq.Len() > 0 {
		item := heap.Pop(&x.pq).(*frontierItem)
		u := item.id

		if x.visited[u] {
			continue // stale entry, a better cost was finalized earlier
		}
		x.visited[u] = true
		x.expanded++

		if u == x.dest {
			return true
		}
		if x.maxExpansions > 0 && x.expanded >= x.maxExpansions {
			return false // budget exhausted before reaching the destination
		}

		x.relax(u)
	}

	return false
}

// relax examines each outgoing edge of u and improves neighbor costs.
func (x *expander) relax(u transit.StopID) {
	edges, err := x.g.Neighbors(u)
	if err != nil {
		// u was popped from the frontier, so it exists; unreachable branch.
		return
	}

	du := x.dist[u]
	for _, e := range edges {
		if x.visited[e.To] {
			continue
		}
		cand := du + e.Weight
		if old, seen := x.dist[e.To]; seen && cand >= old {
			continue
		}
		x.dist[e.To] = cand
		x.prev[e.To] = u
		x.push(e.To, x.fvalue(e.To, cand))
	}
}

// path rebuilds start→dest from the predecessor map after a successful run.
func (x *expander) path(start transit.StopID) []transit.StopID {
	return rebuildPath(x.prev, start, x.dest)
}

// frontierOrder selects the unweighted expansion discipline.
type frontierOrder int

const (
	fifoOrder frontierOrder = iota // BFS
	lifoOrder                      // DFS
)

// unweightedWalk is the shared frontier expansion for BFS and DFS. It ignores
// edge weights entirely, marks stops visited on first discovery, and stops as
// soon as the destination is discovered. traversedWeight records the weight
// of the edge by which each stop was discovered, so the caller can recompute
// the real path cost for comparability with the weighted algorithms.
type unweightedWalk struct {
	g     *transit.Graph
	dest  transit.StopID
	order frontierOrder

	maxExpansions int

	visited         map[transit.StopID]bool
	prev            map[transit.StopID]transit.StopID
	traversedWeight map[transit.StopID]float64
	expanded        int
}

// newUnweightedWalk prepares the per-run state.
func newUnweightedWalk(g *transit.Graph, dest transit.StopID, order frontierOrder, maxExp int) *unweightedWalk {
	hint := g.StopCount()

	return &unweightedWalk{
		g:               g,
		dest:            dest,
		order:           order,
		maxExpansions:   maxExp,
		visited:         make(map[transit.StopID]bool, hint),
		prev:            make(map[transit.StopID]transit.StopID, hint),
		traversedWeight: make(map[transit.StopID]float64, hint),
	}
}

// run expands from start and reports whether the destination was discovered.
func (w *unweightedWalk) run(start transit.StopID) bool {
	if start == w.dest {
		w.visited[start] = true
		w.expanded = 1

		return true
	}

	queue := make([]transit.StopID, 0, w.g.StopCount())
	w.visited[start] = true
	queue = append(queue, start)

	for len(queue) > 0 {
		var u transit.StopID
		if w.order == fifoOrder {
			u = queue[0]
			queue = queue[1:]
		} else {
			u = queue[len(queue)-1]
			queue = queue[:len(queue)-1]
		}
		w.expanded++
		if w.maxExpansions > 0 && w.expanded > w.maxExpansions {
			return false
		}

		edges, err := w.g.Neighbors(u)
		if err != nil {
			return false // unreachable on a built graph
		}
		for _, e := range edges {
			if w.visited[e.To] {
				continue
			}
			w.visited[e.To] = true
			w.prev[e.To] = u
			w.traversedWeight[e.To] = e.Weight
			if e.To == w.dest {
				return true
			}
			queue = append(queue, e.To)
		}
	}

	return false
}

// pathCost sums the weights of the edges actually traversed along the
// discovered path. The neighbor ordering guarantees that among parallel
// edges to the same stop the cheapest is seen first, so the recorded weight
// is the one the traversal used.
func (w *unweightedWalk) pathCost(path []transit.StopID) float64 {
	var total float64
	for _, id := range path[1:] {
		total += w.traversedWeight[id]
	}

	return total
}

// rebuildPath walks the predecessor map backwards from dest and reverses.
func rebuildPath(prev map[transit.StopID]transit.StopID, start, dest transit.StopID) []transit.StopID {
	path := []transit.StopID{dest}
	for cur := dest; cur != start; {
		p, ok := prev[cur]
		if !ok {
			return nil // no recorded route back to start
		}
		cur = p
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

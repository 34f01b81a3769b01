package transit

import "fmt"

// Graph is the frozen transit network. It is produced by Builder.Build and
// never mutated afterwards, so every method is safe for unlimited concurrent
// use without locking.
type Graph struct {
	penalty   float64
	stops     map[StopID]Stop
	ids       []StopID // sorted ascending
	adj       map[StopID][]Edge
	edgeCount int
}

// Stop returns the stop with the given ID, or ErrUnknownStop.
func (g *Graph) Stop(id StopID) (Stop, error) {
	s, ok := g.stops[id]
	if !ok {
		return Stop{}, fmt.Errorf("%w: %d", ErrUnknownStop, id)
	}

	return s, nil
}

// HasStop reports whether id is part of the network.
func (g *Graph) HasStop(id StopID) bool {
	_, ok := g.stops[id]

	return ok
}

// Neighbors returns the outgoing edges of id in a fixed, reproducible order
// (by target ID, then weight, then route). The returned slice is a copy; the
// caller may keep or reorder it freely.
func (g *Graph) Neighbors(id StopID) ([]Edge, error) {
	if _, ok := g.stops[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStop, id)
	}
	out := g.adj[id]
	cp := make([]Edge, len(out))
	copy(cp, out)

	return cp, nil
}

// Degree returns the number of outgoing edges of id (0 for unknown stops).
func (g *Graph) Degree(id StopID) int { return len(g.adj[id]) }

// StopIDs returns all stop IDs sorted ascending. The slice is a copy.
func (g *Graph) StopIDs() []StopID {
	cp := make([]StopID, len(g.ids))
	copy(cp, g.ids)

	return cp
}

// StopCount returns the number of stops.
func (g *Graph) StopCount() int { return len(g.ids) }

// EdgeCount returns the number of directed edges, parallel edges included.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// TransferPenalty returns the penalty, in minutes, carried by every transfer
// edge in this graph.
func (g *Graph) TransferPenalty() float64 { return g.penalty }

// EachEdge calls fn for every edge in the graph, iterating stops in ID order
// and each adjacency list in its fixed order. Iteration stops early if fn
// returns false.
func (g *Graph) EachEdge(fn func(Edge) bool) {
	for _, id := range g.ids {
		for _, e := range g.adj[id] {
			if !fn(e) {
				return
			}
		}
	}
}

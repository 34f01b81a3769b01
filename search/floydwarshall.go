package search

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/quickroute/transit"
)

// CostMatrix holds the all-pairs shortest-path closure of one graph:
// an N×N cost matrix (+Inf where no path, 0 on the diagonal) and the
// accompanying next-hop matrix for path reconstruction. It is immutable
// once returned and safe for concurrent reads.
type CostMatrix struct {
	ids   []transit.StopID          // row/column order, sorted by stop ID
	index map[transit.StopID]int    // stop ID → matrix index
	dist  []float64                 // flat row-major N×N costs
	next  []int32                   // flat row-major N×N next hop, -1 = none
	n     int
}

// AllPairs computes all-pairs shortest paths with Floyd–Warshall.
//
// This is the only algorithm in the engine with an O(V²) memory footprint,
// so it is guarded: a graph whose stop count exceeds Options.MaxStops fails
// with ErrGraphTooLarge before any matrix is allocated.
//
// The relaxation loop order is fixed (k → i → j) and the direct-edge
// initialization takes the cheapest of parallel edges, so the closure is
// deterministic and matches Dijkstra's costs on every pair.
//
// Complexity: O(V³) time, O(V²) space.
func AllPairs(g *transit.Graph, opts ...Option) (*CostMatrix, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	return allPairs(g, o)
}

// allPairs is the shared core behind AllPairs and the FloydWarshall variant.
func allPairs(g *transit.Graph, o Options) (*CostMatrix, error) {
	n := g.StopCount()
	if n > o.MaxStops {
		return nil, fmt.Errorf("%w: %d stops, limit %d", ErrGraphTooLarge, n, o.MaxStops)
	}

	m := &CostMatrix{
		ids:   g.StopIDs(),
		index: make(map[transit.StopID]int, n),
		dist:  make([]float64, n*n),
		next:  make([]int32, n*n),
		n:     n,
	}
	for i, id := range m.ids {
		m.index[id] = i
	}

	// Initialize: +Inf off-diagonal, 0 on the diagonal, -1 next hops.
	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		base := i * n
		for j := 0; j < n; j++ {
			if i == j {
				m.dist[base+j] = 0
				m.next[base+j] = int32(i)
			} else {
				m.dist[base+j] = inf
				m.next[base+j] = -1
			}
		}
	}

	// Seed with direct edges; the cheapest parallel edge wins.
	g.EachEdge(func(e transit.Edge) bool {
		i, j := m.index[e.From], m.index[e.To]
		if i == j {
			return true // self-loop cannot improve a shortest path
		}
		if e.Weight < m.dist[i*n+j] {
			m.dist[i*n+j] = e.Weight
			m.next[i*n+j] = int32(j)
		}

		return true
	})

	// Closure with fixed k → i → j order and +Inf short-circuits.
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik := m.dist[i*n+k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k, nothing routes via k
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj := m.dist[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < m.dist[baseI+j] {
					m.dist[baseI+j] = cand
					m.next[baseI+j] = m.next[baseI+k]
				}
			}
		}
	}

	return m, nil
}

// Size returns the matrix order (the stop count).
func (m *CostMatrix) Size() int { return m.n }

// Stops returns the stop IDs in row/column order. The slice is a copy.
func (m *CostMatrix) Stops() []transit.StopID {
	cp := make([]transit.StopID, len(m.ids))
	copy(cp, m.ids)

	return cp
}

// Cost returns the shortest-path cost between two stops, +Inf when no path
// exists, or ErrStopNotFound for unknown endpoints.
func (m *CostMatrix) Cost(from, to transit.StopID) (float64, error) {
	i, ok := m.index[from]
	if !ok {
		return 0, fmt.Errorf("%w: start %d", ErrStopNotFound, from)
	}
	j, ok := m.index[to]
	if !ok {
		return 0, fmt.Errorf("%w: destination %d", ErrStopNotFound, to)
	}

	return m.dist[i*m.n+j], nil
}

// Path reconstructs the shortest path between two stops from the next-hop
// matrix. It returns nil (and no error) when the destination is unreachable,
// mirroring the Result convention.
func (m *CostMatrix) Path(from, to transit.StopID) ([]transit.StopID, error) {
	i, ok := m.index[from]
	if !ok {
		return nil, fmt.Errorf("%w: start %d", ErrStopNotFound, from)
	}
	j, ok := m.index[to]
	if !ok {
		return nil, fmt.Errorf("%w: destination %d", ErrStopNotFound, to)
	}
	if m.next[i*m.n+j] < 0 {
		return nil, nil
	}

	path := []transit.StopID{m.ids[i]}
	for i != j {
		i = int(m.next[i*m.n+j])
		path = append(path, m.ids[i])
	}

	return path, nil
}

// runFloydWarshall answers a single query from a fresh all-pairs closure.
// Expanded reports V³ — the relaxation count of the triple loop — so the
// column reflects the work actually done and stays comparable with the
// per-query algorithms.
func runFloydWarshall(g *transit.Graph, start, dest transit.StopID, o Options) (Result, error) {
	began := time.Now()

	m, err := allPairs(g, o)
	if err != nil {
		return Result{}, err
	}

	relaxations := m.n * m.n * m.n
	path, err := m.Path(start, dest)
	if err != nil {
		return Result{}, err
	}
	if path == nil {
		return unreachable(FloydWarshall, relaxations, time.Since(began)), nil
	}

	cost, err := m.Cost(start, dest)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Algorithm: FloydWarshall,
		Path:      path,
		Cost:      cost,
		Expanded:  relaxations,
		Duration:  time.Since(began),
	}, nil
}

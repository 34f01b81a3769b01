package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quickroute/search"
	"github.com/katalvlaran/quickroute/transit"
)

func TestBFS_MinimalHopCount(t *testing.T) {
	// BFS treats every edge as unit cost, so on the triangle the one-hop
	// transfer beats the two-hop ride chain — and the reported cost is the
	// transfer's real 15 minutes, recomputed from the traversed edge.
	g := triangleGraph(t)

	res, err := search.BFS.Run(g, 1, 3)
	require.NoError(t, err)
	require.Equal(t, []transit.StopID{1, 3}, res.Path)
	require.Equal(t, 1, res.Hops())
	require.Equal(t, 15.0, res.Cost)
}

func TestBFS_HopCountIsMinimalEverywhere(t *testing.T) {
	// Cross-check against Floyd–Warshall run on a unit-weight shadow of the
	// metro graph would be overkill; instead verify BFS hops never exceed
	// the weighted-optimal path's hops, which BFS must match or beat.
	g := metroGraph(t)

	for _, q := range metroQueries() {
		bfs, err := search.BFS.Run(g, q[0], q[1])
		require.NoError(t, err)
		dij, err := search.Dijkstra.Run(g, q[0], q[1])
		require.NoError(t, err)

		require.Equal(t, dij.Reachable(), bfs.Reachable(), "query %v", q)
		if dij.Reachable() {
			require.LessOrEqual(t, bfs.Hops(), dij.Hops(), "query %v", q)
		}
	}
}

func TestBFS_CostRecomputedFromTraversedEdges(t *testing.T) {
	g := metroGraph(t)

	res, err := search.BFS.Run(g, 1, 15)
	require.NoError(t, err)
	sum := requireValidPath(t, g, res.Path, 1, 15)
	require.InDelta(t, sum, res.Cost, 1e-9)
}

func TestDFS_ReturnsSomeValidPath(t *testing.T) {
	// DFS guarantees a valid path, not a minimal one.
	g := metroGraph(t)

	for _, q := range metroQueries() {
		res, err := search.DFS.Run(g, q[0], q[1])
		require.NoError(t, err)

		if q[1] == 99 && q[0] != 99 {
			require.False(t, res.Reachable(), "query %v", q)

			continue
		}
		require.True(t, res.Reachable(), "query %v", q)
		sum := requireValidPath(t, g, res.Path, q[0], q[1])
		require.InDelta(t, sum, res.Cost, 1e-9)
	}
}

func TestDFS_Deterministic(t *testing.T) {
	g := metroGraph(t)

	first, err := search.DFS.Run(g, 1, 15)
	require.NoError(t, err)
	second, err := search.DFS.Run(g, 1, 15)
	require.NoError(t, err)

	require.Equal(t, first.Path, second.Path)
	require.Equal(t, first.Expanded, second.Expanded)
}

func TestTraversal_Unreachable(t *testing.T) {
	g := triangleGraph(t)

	for _, algo := range []search.Algorithm{search.BFS, search.DFS} {
		res, err := algo.Run(g, 1, 4)
		require.NoError(t, err)
		require.False(t, res.Reachable())
		require.Nil(t, res.Path)
		require.True(t, math.IsInf(res.Cost, 1))
	}
}

func TestTraversal_StartEqualsDestination(t *testing.T) {
	g := metroGraph(t)

	for _, algo := range []search.Algorithm{search.BFS, search.DFS} {
		res, err := algo.Run(g, 13, 13)
		require.NoError(t, err)
		require.Equal(t, []transit.StopID{13}, res.Path)
		require.Equal(t, 0.0, res.Cost)
	}
}

func TestTraversal_IgnoresWeights(t *testing.T) {
	// Make the ride chain absurdly slow: BFS must still pick the fewest
	// hops, proof that expansion order never looks at weights.
	b := transit.NewBuilder()
	for _, s := range []transit.Stop{
		{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"},
	} {
		require.NoError(t, b.AddStop(s))
	}
	b.AddRide(1, 2, 1000.0, 901)
	b.AddRide(2, 3, 1000.0, 901)
	b.AddRide(1, 3, 5000.0, 902)
	g, err := b.Build()
	require.NoError(t, err)

	res, err := search.BFS.Run(g, 1, 3)
	require.NoError(t, err)
	require.Equal(t, []transit.StopID{1, 3}, res.Path)
	require.Equal(t, 5000.0, res.Cost)
}

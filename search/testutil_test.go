package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quickroute/transit"
)

// triangleGraph is the canonical three-stop scenario:
//
//	A(1) ──5──▶ B(2) ──5──▶ C(3)
//	  └───────transfer(15)───▲
//
// The ride chain A→B→C costs 10; the direct transfer costs the full
// 15-minute penalty, so the engine must prefer the chain. Stop D(4) is
// isolated for unreachable cases.
func triangleGraph(t *testing.T) *transit.Graph {
	t.Helper()
	b := transit.NewBuilder()
	for _, s := range []transit.Stop{
		{ID: 1, Name: "A", Lat: 44.854, Lon: -93.242},
		{ID: 2, Name: "B", Lat: 44.898, Lon: -93.238},
		{ID: 3, Name: "C", Lat: 44.948, Lon: -93.250},
		{ID: 4, Name: "D", Lat: 44.700, Lon: -93.100},
	} {
		require.NoError(t, b.AddStop(s))
	}
	b.AddRide(1, 2, 5.0, 901)
	b.AddRide(2, 3, 5.0, 901)
	b.AddTransfer(1, 3)

	g, err := b.Build()
	require.NoError(t, err)

	return g
}

// metroGraph is a two-line network joined by a transfer:
//
//	Blue  (901): 1 ↔ 2 ↔ 3 ↔ 4 ↔ 5 ↔ 6        (south → north)
//	Green (902): 11 ↔ 12 ↔ 13 ↔ 14 ↔ 15       (east → west)
//	Transfer:    4 ↔ 12                         (15-minute penalty)
//	Isolated:    99
//
// Coordinates are realistic enough that the geographic heuristic has a
// non-trivial gradient along both lines.
func metroGraph(t *testing.T) *transit.Graph {
	t.Helper()
	b := transit.NewBuilder()
	for _, s := range []transit.Stop{
		{ID: 1, Name: "Mall", Lat: 44.854, Lon: -93.242},
		{ID: 2, Name: "28th Ave", Lat: 44.874, Lon: -93.240},
		{ID: 3, Name: "Lake St", Lat: 44.898, Lon: -93.238},
		{ID: 4, Name: "Midtown", Lat: 44.918, Lon: -93.236},
		{ID: 5, Name: "Cedar", Lat: 44.948, Lon: -93.250},
		{ID: 6, Name: "Target Field", Lat: 44.983, Lon: -93.277},
		{ID: 11, Name: "Raymond", Lat: 44.919, Lon: -93.200},
		{ID: 12, Name: "Midtown East", Lat: 44.9185, Lon: -93.2355},
		{ID: 13, Name: "Fairview", Lat: 44.920, Lon: -93.270},
		{ID: 14, Name: "Snelling", Lat: 44.922, Lon: -93.300},
		{ID: 15, Name: "Hamline", Lat: 44.926, Lon: -93.330},
		{ID: 99, Name: "Depot Yard", Lat: 44.700, Lon: -93.100},
	} {
		require.NoError(t, b.AddStop(s))
	}

	ride := func(a, z transit.StopID, min float64, route transit.RouteID) {
		b.AddRide(a, z, min, route)
		b.AddRide(z, a, min, route)
	}
	ride(1, 2, 4.0, 901)
	ride(2, 3, 5.0, 901)
	ride(3, 4, 4.5, 901)
	ride(4, 5, 6.0, 901)
	ride(5, 6, 7.0, 901)

	ride(11, 12, 5.0, 902)
	ride(12, 13, 5.5, 902)
	ride(13, 14, 4.0, 902)
	ride(14, 15, 5.0, 902)

	b.AddTransfer(4, 12)
	b.AddTransfer(12, 4)

	g, err := b.Build()
	require.NoError(t, err)

	return g
}

// metroQueries covers short, long, cross-line, and unreachable cases.
func metroQueries() [][2]transit.StopID {
	return [][2]transit.StopID{
		{1, 2},   // adjacent
		{1, 6},   // full Blue line
		{11, 15}, // full Green line
		{1, 15},  // cross-line, requires the transfer
		{15, 1},  // cross-line, reverse direction
		{6, 11},  // cross-line from the north end
		{3, 3},   // start equals destination
		{1, 99},  // unreachable
	}
}

// requireValidPath asserts that path is a start→dest walk over existing
// edges and that the cheapest-edge cost along it equals wantCost.
func requireValidPath(t *testing.T, g *transit.Graph, path []transit.StopID, start, dest transit.StopID) float64 {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	require.Equal(t, dest, path[len(path)-1])

	var total float64
	for i := 0; i+1 < len(path); i++ {
		edges, err := g.Neighbors(path[i])
		require.NoError(t, err)

		found := false
		for _, e := range edges {
			if e.To == path[i+1] {
				total += e.Weight // sorted neighbors: cheapest parallel edge first
				found = true

				break
			}
		}
		require.Truef(t, found, "no edge %d→%d in graph", path[i], path[i+1])
	}

	return total
}

package search_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quickroute/search"
)

func TestParseAlgorithm_RoundTrip(t *testing.T) {
	for _, a := range search.Algorithms() {
		parsed, err := search.ParseAlgorithm(a.String())
		require.NoError(t, err)
		require.Equal(t, a, parsed)
	}
}

func TestParseAlgorithm_Unknown(t *testing.T) {
	_, err := search.ParseAlgorithm("bellman-ford")
	require.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestAlgorithms_ClosedSet(t *testing.T) {
	require.Equal(t, []search.Algorithm{
		search.Dijkstra,
		search.AStar,
		search.WeightedAStar,
		search.BFS,
		search.DFS,
		search.FloydWarshall,
	}, search.Algorithms())
}

func TestRun_UnknownAlgorithmValue(t *testing.T) {
	g := triangleGraph(t)

	_, err := search.Algorithm(97).Run(g, 1, 3)
	require.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestRun_OptionViolations(t *testing.T) {
	g := triangleGraph(t)

	_, err := search.Dijkstra.Run(g, 1, 3, search.WithMaxExpansions(-1))
	require.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.FloydWarshall.Run(g, 1, 3, search.WithMaxStops(0))
	require.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestRun_SharedPreconditionsAcrossVariants(t *testing.T) {
	// Every variant funnels through the same validation: nil graph and
	// unknown endpoints fail identically regardless of algorithm.
	g := triangleGraph(t)

	for _, a := range search.Algorithms() {
		_, err := a.Run(nil, 1, 3)
		require.ErrorIs(t, err, search.ErrNilGraph, a.String())

		_, err = a.Run(g, 1, 42)
		require.ErrorIs(t, err, search.ErrStopNotFound, a.String())
	}
}

func TestRun_ResultRecordShape(t *testing.T) {
	// Every variant fills the uniform record: its own tag, a positive
	// expansion count, and a measured duration.
	g := metroGraph(t)

	for _, a := range search.Algorithms() {
		res, err := a.Run(g, 1, 15)
		require.NoError(t, err)
		require.Equal(t, a, res.Algorithm)
		require.True(t, res.Reachable(), a.String())
		require.Positive(t, res.Expanded, a.String())
		require.Positive(t, res.Duration, a.String())
	}
}

func TestRun_ConcurrentQueries(t *testing.T) {
	// Frozen graphs carry no per-run state, so parallel Runs must agree
	// with their sequential counterparts.
	g := metroGraph(t)

	want, err := search.Dijkstra.Run(g, 1, 15)
	require.NoError(t, err)

	const workers = 16
	results := make(chan search.Result, workers)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := search.Dijkstra.Run(g, 1, 15)
			results <- got
			errs <- err
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	for got := range results {
		require.Equal(t, want.Path, got.Path)
		require.Equal(t, want.Cost, got.Cost)
	}
}

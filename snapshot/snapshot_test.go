package snapshot_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quickroute/search"
	"github.com/katalvlaran/quickroute/snapshot"
	"github.com/katalvlaran/quickroute/transit"
)

func sampleGraph(t *testing.T) *transit.Graph {
	t.Helper()
	b := transit.NewBuilder()
	for _, s := range []transit.Stop{
		{ID: 1, Name: "Mall of America", Lat: 44.854, Lon: -93.242},
		{ID: 2, Name: "Lake Street", Lat: 44.898, Lon: -93.238},
		{ID: 3, Name: "Target Field", Lat: 44.983, Lon: -93.277},
	} {
		require.NoError(t, b.AddStop(s))
	}
	b.AddRide(1, 2, 5.0, 901)
	b.AddRide(2, 3, 7.5, 901)
	b.AddTransfer(1, 3)

	g, err := b.Build()
	require.NoError(t, err)

	return g
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	g := sampleGraph(t)

	data, err := snapshot.Encode(g)
	require.NoError(t, err)

	loaded, err := snapshot.Decode(data)
	require.NoError(t, err)

	require.Equal(t, g.StopIDs(), loaded.StopIDs())
	require.Equal(t, g.EdgeCount(), loaded.EdgeCount())
	require.Equal(t, g.TransferPenalty(), loaded.TransferPenalty())
	for _, id := range g.StopIDs() {
		want, err := g.Stop(id)
		require.NoError(t, err)
		got, err := loaded.Stop(id)
		require.NoError(t, err)
		require.Equal(t, want, got)

		wantEdges, err := g.Neighbors(id)
		require.NoError(t, err)
		gotEdges, err := loaded.Neighbors(id)
		require.NoError(t, err)
		require.Equal(t, wantEdges, gotEdges)
	}
}

func TestEncode_Deterministic(t *testing.T) {
	g := sampleGraph(t)

	first, err := snapshot.Encode(g)
	require.NoError(t, err)
	second, err := snapshot.Encode(g)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestDecode_SearchableAfterLoad(t *testing.T) {
	// A loaded graph behaves exactly like the original under search.
	g := sampleGraph(t)

	data, err := snapshot.Encode(g)
	require.NoError(t, err)
	loaded, err := snapshot.Decode(data)
	require.NoError(t, err)

	want, err := search.Dijkstra.Run(g, 1, 3)
	require.NoError(t, err)
	got, err := search.Dijkstra.Run(loaded, 1, 3)
	require.NoError(t, err)

	require.Equal(t, want.Path, got.Path)
	require.Equal(t, want.Cost, got.Cost)
}

func TestDecode_CustomPenaltySurvives(t *testing.T) {
	b := transit.NewBuilder(transit.WithTransferPenalty(8.0))
	require.NoError(t, b.AddStop(transit.Stop{ID: 1, Name: "A"}))
	require.NoError(t, b.AddStop(transit.Stop{ID: 2, Name: "B"}))
	b.AddTransfer(1, 2)
	g, err := b.Build()
	require.NoError(t, err)

	data, err := snapshot.Encode(g)
	require.NoError(t, err)
	loaded, err := snapshot.Decode(data)
	require.NoError(t, err)
	require.Equal(t, 8.0, loaded.TransferPenalty())
}

func TestDecode_TamperedWeightRejected(t *testing.T) {
	g := sampleGraph(t)

	data, err := snapshot.Encode(g)
	require.NoError(t, err)

	tampered := strings.Replace(string(data), "minutes: 5", "minutes: 0", 1)
	require.NotEqual(t, string(data), tampered)

	_, err = snapshot.Decode([]byte(tampered))
	require.ErrorIs(t, err, transit.ErrNonPositiveWeight)
}

func TestDecode_TamperedPenaltyRejected(t *testing.T) {
	// Rewriting one transfer's weight without touching the document-level
	// penalty breaks the builder's consistency check.
	g := sampleGraph(t)

	data, err := snapshot.Encode(g)
	require.NoError(t, err)

	tampered := strings.Replace(string(data), "minutes: 15", "minutes: 3", 1)
	require.NotEqual(t, string(data), tampered)

	_, err = snapshot.Decode([]byte(tampered))
	require.ErrorIs(t, err, transit.ErrTransferPenalty)
}

func TestDecode_DanglingEndpointRejected(t *testing.T) {
	doc := `
transfer_penalty: 15
stops:
  - {id: 1, name: A, lat: 0, lon: 0}
edges:
  - {from: 1, to: 2, minutes: 5, kind: ride, route: 901}
`
	_, err := snapshot.Decode([]byte(doc))
	require.ErrorIs(t, err, transit.ErrUnknownStop)
}

func TestDecode_UnknownKindRejected(t *testing.T) {
	doc := `
transfer_penalty: 15
stops:
  - {id: 1, name: A, lat: 0, lon: 0}
  - {id: 2, name: B, lat: 0, lon: 0}
edges:
  - {from: 1, to: 2, minutes: 5, kind: teleport, route: 901}
`
	_, err := snapshot.Decode([]byte(doc))
	require.ErrorIs(t, err, snapshot.ErrBadSnapshot)
}

func TestDecode_BrokenYAML(t *testing.T) {
	_, err := snapshot.Decode([]byte("stops: ["))
	require.ErrorIs(t, err, snapshot.ErrBadSnapshot)
}

func TestSaveLoad(t *testing.T) {
	g := sampleGraph(t)
	path := filepath.Join(t.TempDir(), "network.yaml")

	require.NoError(t, snapshot.Save(path, g))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())

	loaded, err := snapshot.Load(path)
	require.NoError(t, err)
	require.Equal(t, g.StopIDs(), loaded.StopIDs())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := snapshot.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

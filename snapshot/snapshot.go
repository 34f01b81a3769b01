package snapshot

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quickroute/transit"
)

// ErrBadSnapshot indicates the bytes are not a well-formed snapshot document:
// broken YAML or an edge kind outside {ride, transfer}. Semantic defects
// (weights, penalties, dangling stops) surface as transit sentinels instead.
var ErrBadSnapshot = errors.New("snapshot: malformed document")

// document is the YAML shape of one serialized graph.
type document struct {
	TransferPenalty float64   `yaml:"transfer_penalty"`
	Stops           []stopDoc `yaml:"stops"`
	Edges           []edgeDoc `yaml:"edges"`
}

type stopDoc struct {
	ID   int64   `yaml:"id"`
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
}

type edgeDoc struct {
	From    int64   `yaml:"from"`
	To      int64   `yaml:"to"`
	Minutes float64 `yaml:"minutes"`
	Kind    string  `yaml:"kind"`
	Route   int64   `yaml:"route"`
}

// Encode serializes g into a YAML snapshot. Stops appear in ID order and
// edges in per-stop neighbor order, so encoding the same graph twice yields
// identical bytes.
func Encode(g *transit.Graph) ([]byte, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrBadSnapshot)
	}

	doc := document{
		TransferPenalty: g.TransferPenalty(),
		Stops:           make([]stopDoc, 0, g.StopCount()),
		Edges:           make([]edgeDoc, 0, g.EdgeCount()),
	}
	for _, id := range g.StopIDs() {
		s, _ := g.Stop(id)
		doc.Stops = append(doc.Stops, stopDoc{ID: int64(s.ID), Name: s.Name, Lat: s.Lat, Lon: s.Lon})
	}
	g.EachEdge(func(e transit.Edge) bool {
		doc.Edges = append(doc.Edges, edgeDoc{
			From:    int64(e.From),
			To:      int64(e.To),
			Minutes: e.Weight,
			Kind:    e.Kind.String(),
			Route:   int64(e.Route),
		})

		return true
	})

	return yaml.Marshal(doc)
}

// Decode parses a YAML snapshot and rebuilds the graph through the builder,
// re-running the full construction validation on the loaded data.
func Decode(data []byte) (*transit.Graph, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}

	var opts []transit.BuilderOption
	if doc.TransferPenalty != 0 {
		opts = append(opts, transit.WithTransferPenalty(doc.TransferPenalty))
	}
	b := transit.NewBuilder(opts...)

	for _, s := range doc.Stops {
		if err := b.AddStop(transit.Stop{ID: transit.StopID(s.ID), Name: s.Name, Lat: s.Lat, Lon: s.Lon}); err != nil {
			return nil, err
		}
	}
	for _, e := range doc.Edges {
		kind, err := parseKind(e.Kind)
		if err != nil {
			return nil, err
		}
		b.AddEdge(transit.Edge{
			From:   transit.StopID(e.From),
			To:     transit.StopID(e.To),
			Weight: e.Minutes,
			Kind:   kind,
			Route:  transit.RouteID(e.Route),
		})
	}

	return b.Build()
}

// parseKind maps the snapshot kind string back to its EdgeKind.
func parseKind(s string) (transit.EdgeKind, error) {
	switch s {
	case "ride":
		return transit.KindRide, nil
	case "transfer":
		return transit.KindTransfer, nil
	default:
		return 0, fmt.Errorf("%w: unknown edge kind %q", ErrBadSnapshot, s)
	}
}

// Save writes the snapshot of g to path, creating or truncating the file.
func Save(path string, g *transit.Graph) error {
	data, err := Encode(g)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Load reads a snapshot file and rebuilds the graph.
func Load(path string) (*transit.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read %s: %w", path, err)
	}

	return Decode(data)
}

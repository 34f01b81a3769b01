package transit

import (
	"fmt"
	"sort"
)

// BuilderOption configures a Builder before any stops or edges are added.
type BuilderOption func(*Builder)

// WithTransferPenalty overrides the transfer penalty, in minutes.
// A value ≤ 0 is recorded and surfaced as ErrBadPenalty when Build runs;
// the Builder stays usable so option errors do not hide later ones.
func WithTransferPenalty(minutes float64) BuilderOption {
	return func(b *Builder) {
		if minutes <= 0 {
			b.optErr = fmt.Errorf("%w: got %v", ErrBadPenalty, minutes)

			return
		}
		b.penalty = minutes
	}
}

// Builder accumulates stops and edges and validates them into a frozen Graph.
// The zero value is not usable; call NewBuilder.
type Builder struct {
	penalty float64
	optErr  error

	stops map[StopID]Stop
	edges []Edge
}

// NewBuilder returns an empty Builder with the default transfer penalty.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		penalty: DefaultTransferPenalty,
		stops:   make(map[StopID]Stop),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// AddStop registers a stop. Registering the same ID twice fails with
// ErrDuplicateStop, even if the payload is identical: duplicate input is a
// data defect worth surfacing, not deduplicating.
func (b *Builder) AddStop(s Stop) error {
	if _, ok := b.stops[s.ID]; ok {
		return fmt.Errorf("%w: %d (%s)", ErrDuplicateStop, s.ID, s.Name)
	}
	b.stops[s.ID] = s

	return nil
}

// AddRide appends a directed ride edge on the given route.
// Endpoint and weight validation is deferred to Build so callers can load
// stops and edges in any order.
func (b *Builder) AddRide(from, to StopID, minutes float64, route RouteID) {
	b.edges = append(b.edges, Edge{From: from, To: to, Weight: minutes, Kind: KindRide, Route: route})
}

// AddTransfer appends a directed transfer edge carrying the configured
// penalty. Transfers between nearby stops are usually added in both
// directions; that is the caller's call, not an invariant.
func (b *Builder) AddTransfer(from, to StopID) {
	b.edges = append(b.edges, Edge{From: from, To: to, Weight: b.penalty, Kind: KindTransfer, Route: NoRoute})
}

// AddEdge appends a pre-assembled edge. Snapshot decoding uses this path so
// that a tampered transfer weight is still caught by Build rather than being
// silently rewritten to the configured penalty.
func (b *Builder) AddEdge(e Edge) {
	b.edges = append(b.edges, e)
}

// Build validates the accumulated network and freezes it into a Graph.
//
// Validation order (first failure wins):
//  1. option errors recorded at construction (ErrBadPenalty);
//  2. every edge endpoint exists (ErrUnknownStop);
//  3. every weight is strictly positive (ErrNonPositiveWeight);
//  4. every transfer carries exactly the configured penalty (ErrTransferPenalty).
//
// On success the Builder's internal state is copied, never aliased: mutating
// the Builder afterwards cannot reach the returned Graph.
//
// Complexity: O(V log V + E log E) for the deterministic orderings.
func (b *Builder) Build() (*Graph, error) {
	if b.optErr != nil {
		return nil, b.optErr
	}

	for _, e := range b.edges {
		if _, ok := b.stops[e.From]; !ok {
			return nil, fmt.Errorf("%w: edge %d→%d references missing stop %d", ErrUnknownStop, e.From, e.To, e.From)
		}
		if _, ok := b.stops[e.To]; !ok {
			return nil, fmt.Errorf("%w: edge %d→%d references missing stop %d", ErrUnknownStop, e.From, e.To, e.To)
		}
		if e.Weight <= 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%v", ErrNonPositiveWeight, e.From, e.To, e.Weight)
		}
		if e.Kind == KindTransfer && e.Weight != b.penalty {
			return nil, fmt.Errorf("%w: edge %d→%d carries %v min, configured penalty is %v min",
				ErrTransferPenalty, e.From, e.To, e.Weight, b.penalty)
		}
	}

	// Copy stops and build the sorted ID index.
	stops := make(map[StopID]Stop, len(b.stops))
	ids := make([]StopID, 0, len(b.stops))
	for id, s := range b.stops {
		stops[id] = s
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	// Group outgoing edges per stop. Within a stop the order is fixed:
	// by target ID, then weight, then route — reproducible neighbor
	// iteration is what makes tie-broken search paths deterministic.
	adj := make(map[StopID][]Edge, len(b.stops))
	for _, e := range b.edges {
		adj[e.From] = append(adj[e.From], e)
	}
	for id := range adj {
		out := adj[id]
		sort.Slice(out, func(i, j int) bool {
			if out[i].To != out[j].To {
				return out[i].To < out[j].To
			}
			if out[i].Weight != out[j].Weight {
				return out[i].Weight < out[j].Weight
			}

			return out[i].Route < out[j].Route
		})
	}

	return &Graph{
		penalty:   b.penalty,
		stops:     stops,
		ids:       ids,
		adj:       adj,
		edgeCount: len(b.edges),
	}, nil
}

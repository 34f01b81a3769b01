// Package transit core types: StopID, Stop, RouteID, EdgeKind, Edge,
// and the sentinel errors shared by Builder and Graph.
package transit

import "errors"

// Sentinel errors for graph construction and lookup.
var (
	// ErrUnknownStop indicates an edge endpoint or a lookup referenced a stop
	// that is not part of the network.
	ErrUnknownStop = errors.New("transit: unknown stop")

	// ErrDuplicateStop indicates two stops were registered with the same ID.
	ErrDuplicateStop = errors.New("transit: duplicate stop ID")

	// ErrNonPositiveWeight indicates an edge with weight ≤ 0 minutes.
	ErrNonPositiveWeight = errors.New("transit: edge weight must be positive")

	// ErrTransferPenalty indicates a transfer edge whose weight differs from
	// the configured transfer penalty.
	ErrTransferPenalty = errors.New("transit: inconsistent transfer penalty")

	// ErrBadPenalty indicates WithTransferPenalty was given a value ≤ 0.
	ErrBadPenalty = errors.New("transit: transfer penalty must be positive")
)

// DefaultTransferPenalty is the wait/walk cost, in minutes, attached to every
// transfer edge unless overridden with WithTransferPenalty. Fifteen minutes
// makes a transfer strictly worse than staying on a line whenever a direct
// ride exists.
const DefaultTransferPenalty = 15.0

// StopID uniquely identifies a stop. The total order over stops is the
// integer order of their IDs; algorithms rely on it for deterministic
// tie-breaking and for sorted iteration.
type StopID int64

// RouteID identifies the transit line a ride edge belongs to.
type RouteID int64

// NoRoute marks edges that do not belong to any line (transfers).
const NoRoute RouteID = -1

// Stop is a vertex in the transit network: a physical transit location.
// Stops are immutable values once the graph is built.
type Stop struct {
	// ID is the unique, stable identifier of the stop.
	ID StopID

	// Name is the human-readable display name.
	Name string

	// Lat and Lon are WGS84 coordinates in decimal degrees.
	Lat float64
	Lon float64
}

// EdgeKind distinguishes ride segments from transfers.
type EdgeKind int

const (
	// KindRide is a timed segment along a single route.
	KindRide EdgeKind = iota

	// KindTransfer is a route change at the same or a nearby location.
	// Its weight is always the configured transfer penalty.
	KindTransfer
)

// String returns the kind name used in snapshots and reports.
func (k EdgeKind) String() string {
	if k == KindTransfer {
		return "transfer"
	}

	return "ride"
}

// Edge is a directed, weighted connection between two stops.
// Weight is travel time in minutes and is strictly positive in any built
// Graph. Edges are immutable values.
type Edge struct {
	From   StopID
	To     StopID
	Weight float64
	Kind   EdgeKind
	Route  RouteID
}

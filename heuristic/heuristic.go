package heuristic

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/quickroute/transit"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned when New is given a nil graph.
	ErrNilGraph = errors.New("heuristic: graph is nil")

	// ErrNotAdmissible is returned by Verify when the estimator can
	// overestimate the true remaining cost somewhere in the graph.
	ErrNotAdmissible = errors.New("heuristic: estimate exceeds true remaining cost")
)

// Estimator computes a lower bound on the remaining travel time, in minutes,
// between two stops of one fixed graph. It is immutable and safe for
// concurrent use.
type Estimator struct {
	g *transit.Graph

	// kmPerMin is the fastest observed speed across all edges.
	// Zero means no edge produced a usable speed; Estimate returns 0 then.
	kmPerMin float64
}

// New builds an Estimator for g by scanning every edge once for the fastest
// observed speed (great-circle km per minute of edge weight).
//
// Transfers participate in the scan: a transfer covering real distance at
// better pace than any ride would otherwise break the lower-bound property.
//
// Complexity: O(E).
func New(g *transit.Graph) (*Estimator, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	est := &Estimator{g: g}
	g.EachEdge(func(e transit.Edge) bool {
		from, errF := g.Stop(e.From)
		to, errT := g.Stop(e.To)
		if errF != nil || errT != nil {
			// Built graphs have no dangling endpoints.
			return true
		}
		speed := transit.HaversineKm(from, to) / e.Weight
		if speed > est.kmPerMin {
			est.kmPerMin = speed
		}

		return true
	})

	return est, nil
}

// Estimate returns a lower bound, in minutes, on the travel time from one
// stop to another. Unknown stops estimate 0: zero keeps the bound valid, and
// endpoint validation is the search layer's job, not the heuristic's.
//
// Complexity: O(1).
func (h *Estimator) Estimate(from, to transit.StopID) float64 {
	if h.kmPerMin == 0 {
		return 0
	}
	a, errA := h.g.Stop(from)
	b, errB := h.g.Stop(to)
	if errA != nil || errB != nil {
		return 0
	}

	return transit.HaversineKm(a, b) / h.kmPerMin
}

// Verify audits est against every edge and every destination of g:
// consistency requires est(u,d) ≤ weight(u→v) + est(v,d) for each edge u→v,
// and est(d,d) == 0. Together these imply admissibility along every path.
//
// Verify is an offline audit (O(V·E)); run it in tests or after loading a
// snapshot, not inside a search.
func Verify(g *transit.Graph, est *Estimator) error {
	if g == nil || est == nil {
		return ErrNilGraph
	}

	const eps = 1e-9 // float slack for equal-speed edges

	for _, dest := range g.StopIDs() {
		if self := est.Estimate(dest, dest); self != 0 {
			return fmt.Errorf("%w: estimate(%d,%d)=%v, want 0", ErrNotAdmissible, dest, dest, self)
		}

		var verr error
		g.EachEdge(func(e transit.Edge) bool {
			hu := est.Estimate(e.From, dest)
			hv := est.Estimate(e.To, dest)
			if hu > e.Weight+hv+eps {
				verr = fmt.Errorf("%w: edge %d→%d (%.2f min) breaks consistency toward %d: %.4f > %.4f",
					ErrNotAdmissible, e.From, e.To, e.Weight, dest, hu, e.Weight+hv)

				return false
			}

			return true
		})
		if verr != nil {
			return verr
		}
	}

	return nil
}

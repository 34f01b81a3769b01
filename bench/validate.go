package bench

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quickroute/search"
	"github.com/katalvlaran/quickroute/transit"
)

// costEps absorbs float64 accumulation noise when comparing path costs.
const costEps = 1e-9

// validateRecords cross-checks the finished matrix:
//
//   - reachability is a graph property, so every algorithm must agree on it;
//   - A* and Floyd–Warshall costs must equal Dijkstra's;
//   - each Weighted A* cost must stay within w × Dijkstra's;
//   - every non-empty path must be a valid start→dest walk over edges that
//     exist in the graph.
func validateRecords(g *transit.Graph, queries []Query, records []Record) error {
	byQuery := make(map[Query][]Record, len(queries))
	for _, rec := range records {
		byQuery[rec.Query] = append(byQuery[rec.Query], rec)
	}

	for _, q := range queries {
		group := byQuery[q]

		var opt search.Result
		for _, rec := range group {
			if rec.Result.Algorithm == search.Dijkstra {
				opt = rec.Result

				break
			}
		}

		for _, rec := range group {
			r := rec.Result
			if r.Reachable() != opt.Reachable() {
				return fmt.Errorf("%w: %s and dijkstra disagree on reachability of %d→%d",
					ErrInconsistent, r.Algorithm, q.Start, q.Dest)
			}
			if !r.Reachable() {
				continue
			}

			switch r.Algorithm {
			case search.AStar, search.FloydWarshall:
				if math.Abs(r.Cost-opt.Cost) > costEps {
					return fmt.Errorf("%w: %s cost %v differs from dijkstra %v on %d→%d",
						ErrInconsistent, r.Algorithm, r.Cost, opt.Cost, q.Start, q.Dest)
				}
			case search.WeightedAStar:
				if r.Cost > r.Weight*opt.Cost+costEps {
					return fmt.Errorf("%w: weighted-a-star(w=%v) cost %v exceeds bound %v on %d→%d",
						ErrInconsistent, r.Weight, r.Cost, r.Weight*opt.Cost, q.Start, q.Dest)
				}
			}

			if err := validateWalk(g, q, r); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateWalk checks that r.Path is a start→dest sequence of existing edges.
func validateWalk(g *transit.Graph, q Query, r search.Result) error {
	p := r.Path
	if p[0] != q.Start || p[len(p)-1] != q.Dest {
		return fmt.Errorf("%w: %s path endpoints %d→%d do not match query %d→%d",
			ErrInconsistent, r.Algorithm, p[0], p[len(p)-1], q.Start, q.Dest)
	}

	for i := 0; i+1 < len(p); i++ {
		edges, err := g.Neighbors(p[i])
		if err != nil {
			return fmt.Errorf("%w: %s path visits unknown stop %d", ErrInconsistent, r.Algorithm, p[i])
		}
		found := false
		for _, e := range edges {
			if e.To == p[i+1] {
				found = true

				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %s path uses nonexistent edge %d→%d",
				ErrInconsistent, r.Algorithm, p[i], p[i+1])
		}
	}

	return nil
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quickroute/search"
	"github.com/katalvlaran/quickroute/transit"
)

var (
	routeFrom   int64
	routeTo     int64
	routeAlgo   string
	routeWeight float64
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Find a route between two stops",
	Long: `Runs one algorithm for a single query and prints the stop-by-stop
route with per-leg minutes, transfers called out, and a metrics line.

Example:
  quickroute route --snapshot metro.yaml --from 30 --to 48 --algo a-star`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}

		algo, err := search.ParseAlgorithm(routeAlgo)
		if err != nil {
			return err
		}

		var opts []search.Option
		if algo == search.WeightedAStar {
			opts = append(opts, search.WithHeuristicWeight(routeWeight))
		}
		res, err := algo.Run(g, transit.StopID(routeFrom), transit.StopID(routeTo), opts...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !res.Reachable() {
			fmt.Fprintf(out, "no route from %d to %d\n", routeFrom, routeTo)
			fmt.Fprintln(out, metricsLine(res))

			return nil
		}

		if err := printLegs(out, g, res.Path); err != nil {
			return err
		}
		fmt.Fprintln(out, metricsLine(res))

		return nil
	},
}

func init() {
	routeCmd.Flags().Int64Var(&routeFrom, "from", 0, "start stop ID")
	routeCmd.Flags().Int64Var(&routeTo, "to", 0, "destination stop ID")
	routeCmd.Flags().StringVar(&routeAlgo, "algo", search.Dijkstra.String(), "algorithm: dijkstra, a-star, weighted-a-star, bfs, dfs, floyd-warshall")
	routeCmd.Flags().Float64Var(&routeWeight, "weight", 1.5, "weighted-a-star suboptimality factor (≥ 1.0)")
	routeCmd.MarkFlagRequired("from")
	routeCmd.MarkFlagRequired("to")
}

// printLegs writes one line per stop, annotating each leg with its minutes
// and, for transfers, the route change.
func printLegs(out io.Writer, g *transit.Graph, path []transit.StopID) error {
	for i, id := range path {
		s, err := g.Stop(id)
		if err != nil {
			return err
		}

		if i == 0 {
			fmt.Fprintf(out, "%d  %s\n", s.ID, s.Name)

			continue
		}

		e, err := legEdge(g, path[i-1], id)
		if err != nil {
			return err
		}
		if e.Kind == transit.KindTransfer {
			fmt.Fprintf(out, "    │ transfer, %.1f min\n", e.Weight)
		} else {
			fmt.Fprintf(out, "    │ route %d, %.1f min\n", e.Route, e.Weight)
		}
		fmt.Fprintf(out, "%d  %s\n", s.ID, s.Name)
	}

	return nil
}

// legEdge returns the cheapest edge from one stop to the next on the path.
func legEdge(g *transit.Graph, from, to transit.StopID) (transit.Edge, error) {
	edges, err := g.Neighbors(from)
	if err != nil {
		return transit.Edge{}, err
	}
	for _, e := range edges {
		if e.To == to {
			return e, nil
		}
	}

	return transit.Edge{}, fmt.Errorf("route: no edge %d→%d in graph", from, to)
}

// metricsLine formats the uniform result record for the terminal.
func metricsLine(r search.Result) string {
	cost := "∞"
	if r.Reachable() {
		cost = fmt.Sprintf("%.1f min", r.Cost)
	}

	return fmt.Sprintf("algorithm=%s cost=%s hops=%d expanded=%d duration=%s",
		r.Algorithm, cost, r.Hops(), r.Expanded, r.Duration)
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quickroute/bench"
	"github.com/katalvlaran/quickroute/transit"
)

var (
	benchQueries  []string
	benchWeights  []float64
	benchRepeats  int
	benchParallel int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark every algorithm against a list of queries",
	Long: `Runs the full algorithm set for each query, cross-validates the
results, and prints the summary table.

Example:
  quickroute bench --snapshot metro.yaml --query 30:48 --query 45:25 \
    --weights 1.0,1.5,2.0 --repeats 5 --parallel 4`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}

		queries, err := parseQueries(benchQueries)
		if err != nil {
			return err
		}

		rep, err := bench.Run(g, queries,
			bench.WithHeuristicWeights(benchWeights...),
			bench.WithRepeats(benchRepeats),
			bench.WithParallelism(benchParallel),
		)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), rep.Summary())

		return nil
	},
}

func init() {
	benchCmd.Flags().StringArrayVar(&benchQueries, "query", nil, "query as from:to stop IDs (repeatable)")
	benchCmd.Flags().Float64SliceVar(&benchWeights, "weights", []float64{1.5}, "weighted-a-star weights to benchmark")
	benchCmd.Flags().IntVar(&benchRepeats, "repeats", 1, "timed repetitions per run")
	benchCmd.Flags().IntVar(&benchParallel, "parallel", 1, "worker goroutines")
	benchCmd.MarkFlagRequired("query")
}

// parseQueries turns from:to strings into bench queries.
func parseQueries(raw []string) ([]bench.Query, error) {
	queries := make([]bench.Query, 0, len(raw))
	for _, s := range raw {
		from, to, ok := strings.Cut(s, ":")
		if !ok {
			return nil, fmt.Errorf("bench: query %q is not from:to", s)
		}
		f, err := strconv.ParseInt(strings.TrimSpace(from), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bench: query %q: bad start ID: %w", s, err)
		}
		t, err := strconv.ParseInt(strings.TrimSpace(to), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bench: query %q: bad destination ID: %w", s, err)
		}
		queries = append(queries, bench.Query{Start: transit.StopID(f), Dest: transit.StopID(t)})
	}

	return queries, nil
}

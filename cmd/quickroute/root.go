package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quickroute/snapshot"
	"github.com/katalvlaran/quickroute/transit"
)

var snapshotPath string

var rootCmd = &cobra.Command{
	Use:   "quickroute",
	Short: "Shortest-path queries over a transit network snapshot",
	Long: `quickroute loads a YAML transit network snapshot and answers
shortest-path queries with a configurable algorithm, or benchmarks the
whole algorithm set against a list of queries.`,
	SilenceUsage: true,
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "quickroute:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&snapshotPath, "snapshot", "network.yaml", "path to the YAML network snapshot")

	rootCmd.AddCommand(stopsCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(benchCmd)
}

// loadGraph reads the snapshot named by the persistent flag.
func loadGraph() (*transit.Graph, error) {
	return snapshot.Load(snapshotPath)
}

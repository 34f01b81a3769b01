package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quickroute/transit"
)

var stopsCmd = &cobra.Command{
	Use:   "stops",
	Short: "List the stops in the snapshot, sorted by name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}

		stops := make([]transit.Stop, 0, g.StopCount())
		for _, id := range g.StopIDs() {
			s, err := g.Stop(id)
			if err != nil {
				return err
			}
			stops = append(stops, s)
		}
		sort.Slice(stops, func(i, j int) bool {
			if stops[i].Name != stops[j].Name {
				return stops[i].Name < stops[j].Name
			}

			return stops[i].ID < stops[j].ID
		})

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tLAT\tLON\tDEGREE")
		for _, s := range stops {
			fmt.Fprintf(tw, "%d\t%s\t%.4f\t%.4f\t%d\n", s.ID, s.Name, s.Lat, s.Lon, g.Degree(s.ID))
		}

		return tw.Flush()
	},
}

package bench

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/quickroute/search"
)

// Aggregate summarizes every run of one algorithm variant across all queries.
// Weighted A* gets one aggregate per configured weight.
type Aggregate struct {
	Label        string
	Runs         int
	MeanDuration time.Duration
	MeanExpanded float64
	MeanCost     float64 // over reachable runs only
	Unreachable  int
}

// Report is the validated outcome of one harness run.
type Report struct {
	Records    []Record
	Aggregates []Aggregate
}

// label names the variant a result belongs to, splitting Weighted A* per weight.
func label(r search.Result) string {
	if r.Algorithm == search.WeightedAStar {
		return fmt.Sprintf("%s(w=%v)", r.Algorithm, r.Weight)
	}

	return r.Algorithm.String()
}

// newReport folds the record list into per-variant aggregates, ordered by
// first appearance (queries in input order keep this deterministic).
func newReport(records []Record) *Report {
	index := make(map[string]int)
	aggs := make([]Aggregate, 0, 8)

	type sums struct {
		duration  time.Duration
		expanded  int
		cost      float64
		reachable int
	}
	totals := make([]sums, 0, 8)

	for _, rec := range records {
		l := label(rec.Result)
		i, ok := index[l]
		if !ok {
			i = len(aggs)
			index[l] = i
			aggs = append(aggs, Aggregate{Label: l})
			totals = append(totals, sums{})
		}

		aggs[i].Runs++
		totals[i].duration += rec.Result.Duration
		totals[i].expanded += rec.Result.Expanded
		if rec.Result.Reachable() {
			totals[i].cost += rec.Result.Cost
			totals[i].reachable++
		} else {
			aggs[i].Unreachable++
		}
	}

	for i := range aggs {
		n := aggs[i].Runs
		aggs[i].MeanDuration = totals[i].duration / time.Duration(n)
		aggs[i].MeanExpanded = float64(totals[i].expanded) / float64(n)
		if totals[i].reachable > 0 {
			aggs[i].MeanCost = totals[i].cost / float64(totals[i].reachable)
		}
	}

	return &Report{Records: records, Aggregates: aggs}
}

// Summary renders the aggregates as an aligned text table.
func (r *Report) Summary() string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 2, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "ALGORITHM\tRUNS\tMEAN TIME\tMEAN EXPANDED\tMEAN COST (min)\tUNREACHABLE")
	for _, a := range r.Aggregates {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.1f\t%.2f\t%d\n",
			a.Label, a.Runs, a.MeanDuration, a.MeanExpanded, a.MeanCost, a.Unreachable)
	}
	tw.Flush()

	return sb.String()
}

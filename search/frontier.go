package search

import "github.com/katalvlaran/quickroute/transit"

// frontierItem is one priority-queue entry: a stop keyed by its f-value.
// seq is the insertion sequence number; equal-f entries pop in insertion
// order (FIFO within ties), which keeps result paths deterministic.
type frontierItem struct {
	id  transit.StopID
	f   float64
	seq uint64
}

// frontier is a min-heap of *frontierItem ordered by (f, seq), driven by
// container/heap. It follows the lazy-decrease-key pattern: a shorter route
// to an already-queued stop pushes a fresh entry, and stale entries are
// skipped on pop once the stop is finalized.
type frontier []*frontierItem

// Len returns the number of entries, stale ones included.
func (f frontier) Len() int { return len(f) }

// Less orders by f-value ascending, breaking ties by insertion sequence.
func (f frontier) Less(i, j int) bool {
	if f[i].f != f[j].f {
		return f[i].f < f[j].f
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two entries.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *frontierItem.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}

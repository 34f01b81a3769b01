// Package transit defines the in-memory transit network: stops, timed
// directed connections, and the frozen Graph the search algorithms run on.
//
// A Graph is produced exclusively through a Builder. The Builder is the only
// mutation surface; Build validates the accumulated network and returns an
// immutable Graph. After Build succeeds there is no way to add, remove, or
// modify stops or edges, which is what makes concurrent read-sharing across
// parallel searches safe without any locking.
//
// Data model:
//
//   - Stop: vertex with a stable numeric ID, display name, and WGS84
//     coordinates. StopID carries a total order (plain integer order), so
//     stops are usable as ordered-container and priority-queue keys.
//   - Edge: directed connection with a strictly positive weight in minutes.
//     KindRide edges belong to a route; KindTransfer edges model a route
//     change and carry a fixed configured penalty. Parallel edges between the
//     same pair of stops are allowed (different routes, different times).
//
// Build-time invariants (violations fail Build, never a later search):
//
//   - every edge endpoint references a known stop      → ErrUnknownStop
//   - every edge weight is strictly positive           → ErrNonPositiveWeight
//   - every transfer carries exactly the configured
//     penalty                                          → ErrTransferPenalty
//   - stop IDs are unique                              → ErrDuplicateStop
//
// A zero- or negative-weight edge is a data-integrity defect: it would let a
// shortest path take a non-physical shortcut. The transfer-penalty check
// exists for the same reason — a free transfer silently bypasses every real
// transfer cost in the network.
//
// Errors are package-level sentinels; branch with errors.Is.
package transit

// Package snapshot persists a transit graph to YAML and restores it.
//
// The document is flat and human-auditable: the transfer penalty, the stop
// list, and the edge list, nothing derived. Decoding never trusts the bytes —
// every load funnels through transit.Builder, so a tampered snapshot (zero
// weight, rewritten transfer penalty, dangling endpoint) fails with the same
// sentinel the builder would raise for hand-assembled input.
//
// Only plain file bytes are handled here; transport is the caller's problem.
package snapshot

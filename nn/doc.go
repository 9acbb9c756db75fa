// Package nn provides the nearest-neighbor index the planner keeps beside
// each roadmap: insert-only, queried by k-nearest and by radius under the
// owning state space's metric.
//
// The index stores vertex ids, never states: entries reference states held
// by the roadmap's vertex arena, so the arena and the index stay in sync
// through the shared integer id (package graph).
//
// The implementation is a flat array scanned linearly with a bounded
// selection for k-nearest. Planner batches are in the low thousands per
// round and the index is rebuilt-free (insert-only), where a linear scan
// is competitive with tree structures and trivially correct; the reference
// motion planners in this codebase's lineage do the same.
//
// One Index belongs to one (roadmap, worker) pair and is NOT safe for
// concurrent use.
package nn

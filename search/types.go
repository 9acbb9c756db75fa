// This file declares the search package's sentinel errors, options and
// shared priority-queue machinery.
package search

import (
	"container/heap"
	"errors"

	"github.com/VincidaB/vox-nav/graph"
	"github.com/VincidaB/vox-nav/state"
)

// Sentinel errors for search invocation.
var (
	// ErrNilGraph indicates a nil roadmap was passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrVertexNotFound indicates a root, start or goal id outside the arena.
	ErrVertexNotFound = errors.New("search: vertex not found in graph")

	// ErrNilValidity indicates AStar was invoked without a validity oracle.
	ErrNilValidity = errors.New("search: validity oracle is nil")
)

// Options configures the heuristic precompute pass. UseAstar orders the
// pass by an admissible metric estimate toward Target instead of plain
// Dijkstra order; it requires Objective (the motion-cost functional for
// the estimate) and Target (the state the estimate points toward, which
// is the search phase's start vertex since the pass is rooted at goal).
type Options struct {
	UseAstar  bool
	Objective state.Objective
	Target    state.State
}

// Option is a functional option for the heuristic pass.
type Option func(*Options)

// WithAstarHeuristic orders the precompute pass by Dijkstra-cost plus
// obj.MotionCost(vertex, target). The estimate must be admissible for the
// resulting G values to stay lower bounds; the metric objectives in
// package state are.
func WithAstarHeuristic(obj state.Objective, target state.State) Option {
	return func(o *Options) {
		o.UseAstar = true
		o.Objective = obj
		o.Target = target
	}
}

// DefaultOptions returns the plain-Dijkstra configuration.
func DefaultOptions() Options { return Options{} }

// Result is the outcome of a collision-checked search: a sum of Found(path)
// and NotFound, never an error condition.
type Result struct {
	// Found reports whether the goal vertex was dequeued.
	Found bool

	// Path is the vertex chain start..goal when Found, nil otherwise.
	Path []graph.VertexID

	// Cost is the summed edge cost along Path when Found.
	Cost float64

	// Visited counts dequeued vertices, for introspection.
	Visited int
}

// pqItem is one lazy-decrease-key heap entry.
type pqItem struct {
	id   graph.VertexID
	key  float64 // ordering key: distance, or distance + estimate
	dist float64 // cost-to-come, used when key includes an estimate
}

// pq is a min-heap of pqItem ordered by key ascending.
type pq []*pqItem

func (q pq) Len() int            { return len(q) }
func (q pq) Less(i, j int) bool  { return q[i].key < q[j].key }
func (q pq) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *pq) Push(x interface{}) { *q = append(*q, x.(*pqItem)) }
func (q *pq) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}

var _ heap.Interface = (*pq)(nil)

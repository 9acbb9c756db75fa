package search

import (
	"container/heap"

	"github.com/VincidaB/vox-nav/graph"
)

// Heuristic runs the phase-1 precompute: a validity-ignoring single-source
// shortest-path pass rooted at root (the goal vertex), writing each
// vertex's cost-to-root into Vertex.G. Vertices unreachable through
// finite-weight edges keep G == graph.InfCost.
//
// The default order is Dijkstra; WithAstarHeuristic switches to an A*
// variant whose admissible estimate points toward the eventual search
// start. Both produce identical G values for vertices they finalize; the
// A* variant merely finalizes start-ward vertices sooner.
//
// Returns ErrNilGraph or ErrVertexNotFound on malformed input.
// Complexity: O((V + E) log V).
func Heuristic(g *graph.Graph, root graph.VertexID, opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}
	if _, err := g.Vertex(root); err != nil {
		return ErrVertexNotFound
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Reset all G values; stale bounds from a smaller graph must not leak
	// into this round's search.
	n := g.NumVertices()
	for id := 0; id < n; id++ {
		g.MustVertex(graph.VertexID(id)).G = graph.InfCost
	}

	estimate := func(graph.VertexID) float64 { return 0 }
	if cfg.UseAstar && cfg.Objective != nil && cfg.Target != nil {
		estimate = func(id graph.VertexID) float64 {
			return cfg.Objective.MotionCost(g.MustVertex(id).State, cfg.Target)
		}
	}

	dist := make([]float64, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = graph.InfCost
	}
	dist[root] = 0

	frontier := make(pq, 0, n)
	heap.Init(&frontier)
	heap.Push(&frontier, &pqItem{id: root, key: estimate(root), dist: 0})

	for frontier.Len() > 0 {
		item := heap.Pop(&frontier).(*pqItem)
		u := item.id
		if done[u] {
			continue
		}
		done[u] = true
		g.MustVertex(u).G = dist[u]

		g.Neighbors(u, func(v graph.VertexID, w float64) {
			if w >= graph.InfCost || done[v] {
				return
			}
			if nd := dist[u] + w; nd < dist[v] {
				dist[v] = nd
				heap.Push(&frontier, &pqItem{id: v, key: nd + estimate(v), dist: nd})
			}
		})
	}

	return nil
}

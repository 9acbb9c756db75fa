package search

import (
	"container/heap"

	"github.com/VincidaB/vox-nav/graph"
	"github.com/VincidaB/vox-nav/state"
)

// AStar runs the phase-2 collision-checked best-first search from start
// toward goal, using each vertex's precomputed G value (see Heuristic) as
// the heuristic.
//
// When a vertex is dequeued for the first time its state is checked
// against the validity oracle. An invalid vertex is blacklisted — its
// incident edges jump to graph.InfCost — and the search continues; start
// and goal are exempt from blacklisting. Dequeuing the goal ends the
// search successfully; an exhausted frontier yields Result{Found: false},
// which is a normal per-round outcome, not an error.
//
// Returns ErrNilGraph, ErrVertexNotFound or ErrNilValidity on malformed
// input. Complexity: O((V + E) log V).
func AStar(g *graph.Graph, start, goal graph.VertexID, validity state.Validity) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if _, err := g.Vertex(start); err != nil {
		return Result{}, ErrVertexNotFound
	}
	if _, err := g.Vertex(goal); err != nil {
		return Result{}, ErrVertexNotFound
	}
	if validity == nil {
		return Result{}, ErrNilValidity
	}

	r := &astarRunner{
		g:        g,
		start:    start,
		goal:     goal,
		validity: validity,
		dist:     make([]float64, g.NumVertices()),
		prev:     make([]graph.VertexID, g.NumVertices()),
		done:     make([]bool, g.NumVertices()),
	}
	r.init()

	return r.process(), nil
}

// astarRunner holds the mutable state of one collision-checked search.
type astarRunner struct {
	g        *graph.Graph
	start    graph.VertexID
	goal     graph.VertexID
	validity state.Validity

	dist     []float64
	prev     []graph.VertexID
	done     []bool
	frontier pq
	visited  int
}

func (r *astarRunner) init() {
	for i := range r.dist {
		r.dist[i] = graph.InfCost
		r.prev[i] = graph.VertexID(i) // self-predecessor until discovered
	}
	r.dist[r.start] = 0
	r.frontier = make(pq, 0, len(r.dist))
	heap.Init(&r.frontier)
	heap.Push(&r.frontier, &pqItem{
		id:   r.start,
		key:  r.g.MustVertex(r.start).G,
		dist: 0,
	})
}

func (r *astarRunner) process() Result {
	for r.frontier.Len() > 0 {
		item := heap.Pop(&r.frontier).(*pqItem)
		u := item.id
		if r.done[u] {
			continue
		}
		r.done[u] = true
		r.visited++

		// Lazy validity check on first visit. Start and goal singletons are
		// never blacklisted.
		if u != r.start && u != r.goal {
			vert := r.g.MustVertex(u)
			if vert.Blacklisted {
				continue
			}
			if !r.validity.IsValid(vert.State) {
				r.g.Blacklist(u)

				continue
			}
		}

		if u == r.goal {
			return Result{
				Found:   true,
				Path:    r.reconstruct(),
				Cost:    r.dist[u],
				Visited: r.visited,
			}
		}

		r.relax(u)
	}

	return Result{Visited: r.visited}
}

func (r *astarRunner) relax(u graph.VertexID) {
	r.g.Neighbors(u, func(v graph.VertexID, w float64) {
		if w >= graph.InfCost || r.done[v] {
			return
		}
		nd := r.dist[u] + w
		if nd >= r.dist[v] {
			return
		}
		r.dist[v] = nd
		r.prev[v] = u
		// Vertex.G (cost-to-goal from the precompute pass) is the
		// admissible heuristic; unreached vertices carry InfCost and are
		// pushed with an infinite key, which keeps them ordered after all
		// vertices that can still reach the goal.
		heap.Push(&r.frontier, &pqItem{
			id:   v,
			key:  nd + r.g.MustVertex(v).G,
			dist: nd,
		})
	})
}

// reconstruct walks predecessor links goal→start, prepending each vertex.
// The start vertex is its own predecessor, terminating the walk.
func (r *astarRunner) reconstruct() []graph.VertexID {
	var path []graph.VertexID
	for v := r.goal; ; v = r.prev[v] {
		path = append([]graph.VertexID{v}, path...)
		if r.prev[v] == v {
			break
		}
	}

	return path
}

// This file implements the vertex arena and weighted undirected adjacency
// used by both the geometric and the control roadmaps.
package graph

import (
	"errors"
	"math"

	"github.com/VincidaB/vox-nav/state"
)

// Sentinel errors for roadmap operations.
var (
	// ErrVertexNotFound indicates an id outside the vertex arena.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrDuplicateEdge indicates an edge that already exists between the pair.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")

	// ErrSelfLoop indicates an attempted edge from a vertex to itself.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("graph: negative edge weight")
)

// InfCost is the sentinel infinite edge weight. Incident edges of
// blacklisted vertices are set to InfCost rather than deleted, so vertex
// ids and topology stay stable across search passes.
var InfCost = math.Inf(1)

// VertexID indexes a vertex inside its owning graph's arena. IDs are local
// to one (graph, worker) pair; there is no global vertex namespace.
type VertexID int

// Vertex is a roadmap node. G caches the heuristic cost-to-come computed
// by the most recent heuristic pass (package search); Blacklisted marks a
// vertex whose state failed validity checking.
type Vertex struct {
	// State is the configuration attached to this vertex, owned by the
	// graph's arena for the graph's lifetime.
	State state.State

	// Control and ControlDuration describe the forward-simulated segment
	// that produced this vertex. Nil/zero on geometric, start and goal
	// vertices.
	Control         state.Control
	ControlDuration float64

	// ID is this vertex's index in the arena.
	ID VertexID

	// G is the heuristic cost value populated by the last heuristic
	// precompute pass.
	G float64

	// Blacklisted marks a vertex whose state failed a validity check.
	// Blacklisted vertices keep their id; their incident edges carry
	// InfCost.
	Blacklisted bool
}

// Graph is a weighted undirected roadmap over a vertex arena.
type Graph struct {
	vertices []*Vertex
	// adjacency[from][to] = weight; stored symmetrically.
	adjacency []map[VertexID]float64
	edgeCount int
}

// New returns an empty roadmap with capacity hint cap.
func New(capHint int) *Graph {
	return &Graph{
		vertices:  make([]*Vertex, 0, capHint),
		adjacency: make([]map[VertexID]float64, 0, capHint),
	}
}

// AddVertex appends a vertex owning s and returns its id. The state is
// stored as-is; callers hand over ownership.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(s state.State) VertexID {
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, &Vertex{State: s, ID: id, G: InfCost})
	g.adjacency = append(g.adjacency, make(map[VertexID]float64, 8))

	return id
}

// Vertex returns the vertex for id, or ErrVertexNotFound.
func (g *Graph) Vertex(id VertexID) (*Vertex, error) {
	if !g.has(id) {
		return nil, ErrVertexNotFound
	}

	return g.vertices[id], nil
}

// MustVertex returns the vertex for id, panicking on an out-of-range id.
// Planner internals use it where ids are produced by the same graph.
func (g *Graph) MustVertex(id VertexID) *Vertex {
	if !g.has(id) {
		panic(ErrVertexNotFound)
	}

	return g.vertices[id]
}

// NumVertices returns the arena size.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// NumEdges returns the number of undirected edges.
func (g *Graph) NumEdges() int { return g.edgeCount }

// AddEdge connects a and b with weight w. Rejects self-loops, negative
// weights, out-of-range ids and duplicate edges.
// Complexity: O(1).
func (g *Graph) AddEdge(a, b VertexID, w float64) error {
	if a == b {
		return ErrSelfLoop
	}
	if !g.has(a) || !g.has(b) {
		return ErrVertexNotFound
	}
	if w < 0 {
		return ErrNegativeWeight
	}
	if _, dup := g.adjacency[a][b]; dup {
		return ErrDuplicateEdge
	}
	g.adjacency[a][b] = w
	g.adjacency[b][a] = w
	g.edgeCount++

	return nil
}

// HasEdge reports whether an edge exists between a and b.
func (g *Graph) HasEdge(a, b VertexID) bool {
	if !g.has(a) {
		return false
	}
	_, ok := g.adjacency[a][b]

	return ok
}

// EdgeWeight returns the weight of the a—b edge, or InfCost when no such
// edge exists.
func (g *Graph) EdgeWeight(a, b VertexID) float64 {
	if !g.has(a) {
		return InfCost
	}
	if w, ok := g.adjacency[a][b]; ok {
		return w
	}

	return InfCost
}

// SetEdgeWeight overwrites the weight of an existing a—b edge.
// Returns ErrVertexNotFound when either endpoint is out of range and
// silently ignores missing edges (pruning an absent edge is a no-op).
func (g *Graph) SetEdgeWeight(a, b VertexID, w float64) error {
	if !g.has(a) || !g.has(b) {
		return ErrVertexNotFound
	}
	if _, ok := g.adjacency[a][b]; !ok {
		return nil
	}
	g.adjacency[a][b] = w
	g.adjacency[b][a] = w

	return nil
}

// Neighbors calls fn for every neighbor of id with the joining edge's
// weight. Iteration order is unspecified.
func (g *Graph) Neighbors(id VertexID, fn func(to VertexID, w float64)) {
	if !g.has(id) {
		return
	}
	for to, w := range g.adjacency[id] {
		fn(to, w)
	}
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id VertexID) int {
	if !g.has(id) {
		return 0
	}

	return len(g.adjacency[id])
}

// Blacklist marks id invalid and raises all its incident edge weights to
// InfCost. The vertex and its edges remain in place so ids held by the
// nearest-neighbor index stay valid.
func (g *Graph) Blacklist(id VertexID) {
	if !g.has(id) {
		return
	}
	g.vertices[id].Blacklisted = true
	for to := range g.adjacency[id] {
		g.adjacency[id][to] = InfCost
		g.adjacency[to][id] = InfCost
	}
}

func (g *Graph) has(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices)
}

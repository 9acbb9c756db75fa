package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VincidaB/vox-nav/state"
)

func buildTriangle(t *testing.T) (*Graph, VertexID, VertexID, VertexID) {
	t.Helper()
	g := New(4)
	a := g.AddVertex(state.State{0, 0})
	b := g.AddVertex(state.State{1, 0})
	c := g.AddVertex(state.State{0, 1})
	require.NoError(t, g.AddEdge(a, b, 1))
	require.NoError(t, g.AddEdge(b, c, 2))
	require.NoError(t, g.AddEdge(a, c, 5))

	return g, a, b, c
}

func TestGraph_AddVertex(t *testing.T) {
	g := New(0)
	a := g.AddVertex(state.State{1, 2})
	b := g.AddVertex(state.State{3, 4})

	assert.Equal(t, 2, g.NumVertices())
	assert.NotEqual(t, a, b)

	va, err := g.Vertex(a)
	require.NoError(t, err)
	assert.Equal(t, state.State{1, 2}, va.State)
	assert.Equal(t, a, va.ID)
	assert.True(t, math.IsInf(va.G, 1), "fresh vertices carry an infinite heuristic value")
	assert.False(t, va.Blacklisted)
}

func TestGraph_VertexNotFound(t *testing.T) {
	g := New(0)
	_, err := g.Vertex(VertexID(0))
	assert.ErrorIs(t, err, ErrVertexNotFound)
	_, err = g.Vertex(VertexID(-1))
	assert.ErrorIs(t, err, ErrVertexNotFound)

	assert.Panics(t, func() { g.MustVertex(VertexID(3)) })
}

func TestGraph_AddEdgeErrors(t *testing.T) {
	g := New(2)
	a := g.AddVertex(state.State{0})
	b := g.AddVertex(state.State{1})

	assert.ErrorIs(t, g.AddEdge(a, a, 1), ErrSelfLoop)
	assert.ErrorIs(t, g.AddEdge(a, VertexID(99), 1), ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge(a, b, -0.5), ErrNegativeWeight)

	require.NoError(t, g.AddEdge(a, b, 1))
	assert.ErrorIs(t, g.AddEdge(a, b, 2), ErrDuplicateEdge)
	// The symmetric direction is the same undirected edge.
	assert.ErrorIs(t, g.AddEdge(b, a, 2), ErrDuplicateEdge)
	assert.Equal(t, 1, g.NumEdges())
}

func TestGraph_EdgeWeightSymmetric(t *testing.T) {
	g, a, b, _ := buildTriangle(t)

	assert.Equal(t, 1.0, g.EdgeWeight(a, b))
	assert.Equal(t, 1.0, g.EdgeWeight(b, a))
	assert.True(t, g.HasEdge(a, b))
	assert.True(t, g.HasEdge(b, a))
}

func TestGraph_EdgeWeightMissingIsInf(t *testing.T) {
	g := New(2)
	a := g.AddVertex(state.State{0})
	b := g.AddVertex(state.State{1})

	assert.Equal(t, InfCost, g.EdgeWeight(a, b))
	assert.Equal(t, InfCost, g.EdgeWeight(a, VertexID(42)))
	assert.False(t, g.HasEdge(a, b))
}

func TestGraph_SetEdgeWeight(t *testing.T) {
	g, a, b, c := buildTriangle(t)

	require.NoError(t, g.SetEdgeWeight(a, b, InfCost))
	assert.Equal(t, InfCost, g.EdgeWeight(a, b))
	assert.Equal(t, InfCost, g.EdgeWeight(b, a))
	// Pruning keeps the edge in place; it is not deleted.
	assert.True(t, g.HasEdge(a, b))

	// Pruning an absent edge is a no-op.
	g2 := New(2)
	x := g2.AddVertex(state.State{0})
	y := g2.AddVertex(state.State{1})
	assert.NoError(t, g2.SetEdgeWeight(x, y, 3))
	assert.False(t, g2.HasEdge(x, y))

	assert.ErrorIs(t, g.SetEdgeWeight(a, VertexID(99), 1), ErrVertexNotFound)
	_ = c
}

func TestGraph_NeighborsAndDegree(t *testing.T) {
	g, a, b, c := buildTriangle(t)

	assert.Equal(t, 2, g.Degree(a))
	assert.Equal(t, 2, g.Degree(b))
	assert.Equal(t, 0, g.Degree(VertexID(99)))

	seen := map[VertexID]float64{}
	g.Neighbors(a, func(to VertexID, w float64) { seen[to] = w })
	assert.Equal(t, map[VertexID]float64{b: 1, c: 5}, seen)
}

func TestGraph_Blacklist(t *testing.T) {
	g, a, b, c := buildTriangle(t)

	g.Blacklist(b)

	assert.True(t, g.MustVertex(b).Blacklisted)
	assert.Equal(t, InfCost, g.EdgeWeight(a, b))
	assert.Equal(t, InfCost, g.EdgeWeight(b, c))
	// The untouched edge keeps its weight.
	assert.Equal(t, 5.0, g.EdgeWeight(a, c))
	// Topology survives: ids and edges stay in place.
	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 3, g.NumEdges())
	assert.True(t, g.HasEdge(a, b))

	// Out of range is a no-op.
	g.Blacklist(VertexID(99))
}

func TestGraph_Reachable(t *testing.T) {
	g, a, b, c := buildTriangle(t)
	d := g.AddVertex(state.State{9, 9}) // isolated

	got := g.Reachable(a)
	assert.Len(t, got, 3)
	assert.NotContains(t, got, d)

	// Blacklisting b prunes its edges, but a—c keeps the triangle joined.
	g.Blacklist(b)
	got = g.Reachable(a)
	assert.Contains(t, got, a)
	assert.Contains(t, got, c)
	assert.NotContains(t, got, b)

	// ReachableAll follows pruned edges too.
	all := g.ReachableAll(a)
	assert.Contains(t, all, b)

	assert.Empty(t, g.Reachable(VertexID(99)))
}

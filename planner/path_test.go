package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VincidaB/vox-nav/graph"
	"github.com/VincidaB/vox-nav/state"
)

// chainGraph builds start—mid—goal with unit edge weights.
func chainGraph(t *testing.T) (*graph.Graph, graph.VertexID, graph.VertexID, graph.VertexID) {
	t.Helper()
	g := graph.New(3)
	start := g.AddVertex(state.State{0, 0})
	mid := g.AddVertex(state.State{1, 0})
	goal := g.AddVertex(state.State{2, 0})
	require.NoError(t, g.AddEdge(start, mid, 1))
	require.NoError(t, g.AddEdge(mid, goal, 1))

	return g, start, mid, goal
}

func TestAssemblePath_BuildsTimedWaypoints(t *testing.T) {
	g, start, mid, goal := chainGraph(t)
	v := g.MustVertex(mid)
	v.Control = state.Control{0.5, 0}
	v.ControlDuration = 2

	path, ok := assemblePath(g, []graph.VertexID{start, mid, goal}, state.AlwaysValid(), start, goal)
	require.True(t, ok)
	require.Equal(t, 3, path.Len())

	assert.Nil(t, path.Waypoints[0].Control)
	assert.Equal(t, 0.0, path.Waypoints[0].Duration)
	assert.Equal(t, state.Control{0.5, 0}, path.Waypoints[1].Control)
	assert.Equal(t, 2.0, path.Waypoints[1].Duration)
	assert.Equal(t, 2.0, path.Cost)
}

func TestAssemblePath_RejectsAndBlacklistsInvalidInterior(t *testing.T) {
	g, start, mid, goal := chainGraph(t)

	midIsBlocked := state.ValidityFunc(func(s state.State) bool { return s[0] != 1 })
	path, ok := assemblePath(g, []graph.VertexID{start, mid, goal}, midIsBlocked, start, goal)

	assert.False(t, ok)
	assert.Nil(t, path)
	// The failing interior vertex is blacklisted so the next search pass
	// routes around it.
	assert.True(t, g.MustVertex(mid).Blacklisted)
	assert.Equal(t, graph.InfCost, g.EdgeWeight(start, mid))
}

func TestAssemblePath_RejectsBlacklistedVertex(t *testing.T) {
	g, start, mid, goal := chainGraph(t)
	g.Blacklist(mid)

	_, ok := assemblePath(g, []graph.VertexID{start, mid, goal}, state.AlwaysValid(), start, goal)
	assert.False(t, ok)
}

func TestAssemblePath_PrunesEdgesAtInvalidEndpoints(t *testing.T) {
	g := graph.New(2)
	start := g.AddVertex(state.State{0, 0})
	goal := g.AddVertex(state.State{2, 0})
	require.NoError(t, g.AddEdge(start, goal, 2))

	// Endpoints are never blacklisted, so rejecting their chain must cut
	// the chain's edges instead; otherwise the same degenerate path would
	// be re-found forever.
	_, ok := assemblePath(g, []graph.VertexID{start, goal}, state.NeverValid(), start, goal)
	assert.False(t, ok)
	assert.False(t, g.MustVertex(start).Blacklisted)
	assert.False(t, g.MustVertex(goal).Blacklisted)
	assert.Equal(t, graph.InfCost, g.EdgeWeight(start, goal))
}

func TestAssemblePath_RejectsPrunedEdge(t *testing.T) {
	g, start, mid, goal := chainGraph(t)
	require.NoError(t, g.SetEdgeWeight(mid, goal, graph.InfCost))

	_, ok := assemblePath(g, []graph.VertexID{start, mid, goal}, state.AlwaysValid(), start, goal)
	assert.False(t, ok)
}

func TestAssemblePath_EmptyChain(t *testing.T) {
	g, start, _, goal := chainGraph(t)
	_, ok := assemblePath(g, nil, state.AlwaysValid(), start, goal)
	assert.False(t, ok)

	_, ok = assemblePath(g, []graph.VertexID{99}, state.AlwaysValid(), start, goal)
	assert.False(t, ok)
}

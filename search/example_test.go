package search_test

import (
	"fmt"

	"github.com/VincidaB/vox-nav/graph"
	"github.com/VincidaB/vox-nav/search"
	"github.com/VincidaB/vox-nav/state"
)

// Example demonstrates the two-phase search: a heuristic precompute
// rooted at the goal, then a collision-checked pass from the start.
func Example() {
	// 1) A corridor of four vertices with a costly detour.
	g := graph.New(5)
	start := g.AddVertex(state.State{0, 0})
	a := g.AddVertex(state.State{1, 0})
	b := g.AddVertex(state.State{2, 0})
	goal := g.AddVertex(state.State{3, 0})
	detour := g.AddVertex(state.State{1.5, 2})
	_ = g.AddEdge(start, a, 1)
	_ = g.AddEdge(a, b, 1)
	_ = g.AddEdge(b, goal, 1)
	_ = g.AddEdge(start, detour, 5)
	_ = g.AddEdge(detour, goal, 5)

	// 2) Phase 1: Dijkstra from the goal writes each vertex's
	//    cost-to-goal into G.
	_ = search.Heuristic(g, goal)
	fmt.Println("start G:", g.MustVertex(start).G)

	// 3) Phase 2: collision-checked A* from the start. A validity oracle
	//    that blocks the corridor forces the detour.
	blocked := state.ValidityFunc(func(s state.State) bool {
		return s[1] != 0 || s[0] <= 0 || s[0] >= 3
	})
	res, _ := search.AStar(g, start, goal, blocked)
	fmt.Println("found:", res.Found)
	fmt.Println("cost:", res.Cost)
	fmt.Println("a blacklisted:", g.MustVertex(a).Blacklisted)

	// Output:
	// start G: 3
	// found: true
	// cost: 10
	// a blacklisted: true
}

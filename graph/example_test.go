package graph_test

import (
	"fmt"

	"github.com/VincidaB/vox-nav/graph"
	"github.com/VincidaB/vox-nav/state"
)

// ExampleGraph demonstrates building a small roadmap and pruning it
// through blacklisting.
func ExampleGraph() {
	// 1) Three vertices in the plane.
	g := graph.New(3)
	a := g.AddVertex(state.State{0, 0})
	b := g.AddVertex(state.State{1, 0})
	c := g.AddVertex(state.State{0, 1})

	// 2) Connect them into a triangle.
	_ = g.AddEdge(a, b, 1)
	_ = g.AddEdge(b, c, 2)
	_ = g.AddEdge(a, c, 5)
	fmt.Println("edges:", g.NumEdges())
	fmt.Println("a-b weight:", g.EdgeWeight(a, b))

	// 3) Blacklist b: its edges jump to infinite cost but stay in place.
	g.Blacklist(b)
	fmt.Println("a-b after blacklist:", g.EdgeWeight(a, b))
	fmt.Println("reachable from a:", len(g.Reachable(a)))

	// Output:
	// edges: 3
	// a-b weight: 1
	// a-b after blacklist: +Inf
	// reachable from a: 2
}

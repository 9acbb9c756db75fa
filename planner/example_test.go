package planner_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/golang/geo/r3"

	"github.com/VincidaB/vox-nav/occupancy"
	"github.com/VincidaB/vox-nav/planner"
	"github.com/VincidaB/vox-nav/state"
)

// Example plans around a wall in a planar world and prints the outcome.
func Example() {
	// 1) A 20×20 m world with a wall leaving a gap at y ∈ (1, 5).
	space, _ := state.NewRealVectorSpace([]float64{-10, -10}, []float64{10, 10})
	grid, _ := occupancy.NewGrid(r3.Vector{X: -10, Y: -10}, 1, 20, 20, 1)
	grid.MarkBox(r3.Vector{X: -1, Y: -10}, r3.Vector{X: -0.01, Y: 1})
	grid.MarkBox(r3.Vector{X: -1, Y: 5}, r3.Vector{X: -0.01, Y: 9.99})

	// 2) Stop after a fixed round budget so the example terminates.
	var rounds int64
	budget := func() bool { return atomic.AddInt64(&rounds, 1) > 20 }

	p, _ := planner.New(space, grid,
		planner.WithNumThreads(2),
		planner.WithBatchSize(128),
		planner.WithSeed(5),
		planner.WithCondition(budget),
	)

	// 3) Solve start → goal on opposite sides of the wall.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	sol, _ := p.Solve(ctx, state.State{-5, 0}, state.State{5, 0})

	fmt.Println("status:", sol.Status)
	fmt.Println("path found:", sol.GeometricPath != nil)

	// Output:
	// status: Solved
	// path found: true
}

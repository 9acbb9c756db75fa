// Package voxnav is an anytime kinodynamic sampling-based motion planner:
// it grows random-geometric roadmaps in parallel, searches them with a
// two-phase heuristic search, and keeps refining the best path until its
// time budget runs out.
//
// How it plans:
//
//	Each worker owns a geometric roadmap (straight-line connectivity) and,
//	when a dynamics model is configured, a control roadmap built from
//	forward-simulated motion segments. Every round a batch of samples is
//	linked in under a shrinking-radius / growing-k connection policy, a
//	validity-ignoring Dijkstra pass rooted at the goal precomputes
//	cost-to-goal values, and a collision-checked A* from the start uses
//	them as its heuristic, lazily blacklisting vertices whose states turn
//	out to collide. Once any path is known, sampling narrows to the
//	informed set that can still improve it.
//
// The packages, bottom up:
//
//	state/     — states, bounds, spaces (R^n, SE2), samplers, validity & objectives
//	graph/     — vertex arena + weighted undirected roadmap with blacklisting
//	nn/        — nearest-neighbor queries over one roadmap
//	occupancy/ — dense voxel/raster occupancy grids as validity oracles
//	dynamics/  — motion models (unicycle, bicycle, integrator) & propagation
//	search/    — heuristic precompute (Dijkstra/A*) + collision-checked A*
//	planner/   — the multi-worker anytime planner tying it all together
//	cmd/voxplan — command-line front end
//
// Quick start:
//
//	space, _ := state.NewRealVectorSpace([]float64{-10, -10}, []float64{10, 10})
//	p, _ := planner.New(space, state.AlwaysValid())
//	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
//	defer cancel()
//	sol, _ := p.Solve(ctx, state.State{-5, 0}, state.State{5, 0})
//
// Solve is anytime: call it again with the same endpoints and the planner
// keeps refining the roadmaps it already has.
package voxnav

// Package planner implements an anytime, asymptotically-optimal
// kinodynamic sampling-based motion planner in the AIT* family.
//
// The planner maintains two roadmaps per worker:
//
//   - a geometric graph, whose edges are straight-line (metric) connections
//     between sampled states, built with a shrinking-radius / growing-k
//     random-geometric-graph policy; and
//   - a control graph, whose edges are dynamically-feasible segments
//     produced by forward-simulating sampled control inputs from existing
//     vertices toward newly sampled targets. Straight-line connections
//     never appear in the control graph.
//
// Each round a worker samples a batch (informed once a solution exists),
// expands both graphs, re-roots a validity-ignoring heuristic pass at the
// goal (package search), then runs the collision-checked search from the
// start on each graph. A strictly better collision-free path replaces the
// shared best-known record under a single mutex. Rounds repeat until the
// termination condition trips — a context deadline, cancellation, or a
// caller-supplied condition — at which point Solve returns the best paths
// found, or a NoSolution status if none was.
//
// Workers never share graphs: each owns a private geometric/control pair
// with matching nearest-neighbor indexes, trading memory for a lock-free
// expansion loop. The best-path record is the only shared state.
//
// Usage:
//
//	sp, _ := state.NewRealVectorSpace([]float64{-10, -10, -10}, []float64{10, 10, 10})
//	p, _ := planner.New(sp, state.AlwaysValid(), planner.WithBatchSize(500))
//	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
//	defer cancel()
//	sol, err := p.Solve(ctx, start, goal)
//
// Error taxonomy:
//
//   - configuration errors (nil space/oracle, out-of-bounds start/goal)
//     are returned by New/Solve and are fatal to that call;
//   - per-round search exhaustion and validity failures are absorbed by
//     the loop and never surface as errors;
//   - budget exhaustion is a normal terminal state: Solve returns the best
//     paths found with Status reporting whether any exist.
package planner

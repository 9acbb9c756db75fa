// Package search implements the planner's two-phase best-first search over
// roadmaps (package graph), shared by the geometric and the control graph.
//
// Phase 1 — heuristic precompute (Heuristic):
//
//	A validity-ignoring single-source shortest-path pass rooted at the
//	goal vertex writes every vertex's cost-to-goal into Vertex.G. The
//	default strategy is Dijkstra; WithAstarHeuristic switches to an A*
//	variant guided by an admissible metric estimate toward the start.
//	Either way the resulting G values lower-bound the true collision-free
//	cost-to-goal, so phase 2 may use them as its heuristic. Rerun the
//	pass whenever the graph changes materially (a new batch).
//
// Phase 2 — collision-checked search (AStar):
//
//	Best-first search from start toward goal ordered by g + Vertex.G, now
//	consulting the validity oracle lazily: the first time a vertex is
//	dequeued its state is checked, and on failure the vertex is
//	blacklisted — incident edges jump to graph.InfCost — and the search
//	simply continues. Dequeuing the goal is the "found" condition and
//	returns immediately with the reconstructed path; running out of
//	frontier returns Found == false, which is a normal outcome ("no path
//	in this graph this round"), never an error.
//
// Path reconstruction walks predecessor links goal→start, prepending each
// vertex; the start vertex is its own predecessor, which terminates the
// walk.
//
// Both phases use a lazy-decrease-key min-heap: improved keys push
// duplicates, stale entries are skipped on pop.
//
// Errors (sentinel):
//
//   - ErrNilGraph       — a nil roadmap.
//   - ErrVertexNotFound — a root/start/goal id outside the arena.
//   - ErrNilValidity    — a nil validity oracle handed to AStar.
//
// Complexity: O((V + E) log V) time, O(V + E) space, per pass.
package search

// Package graph provides the planner's roadmap representation: an arena of
// vertices addressed by stable integer ids, joined by undirected weighted
// edges.
//
// Overview:
//
//   - Vertices are appended to an arena and never removed; their index in
//     the arena is the vertex ID, which doubles as the cross-reference key
//     into the nearest-neighbor index (package nn). Removal would
//     invalidate ids held elsewhere, so invalid vertices are blacklisted
//     instead.
//   - Edges are undirected and weighted by a non-negative scalar cost.
//     Duplicate edges between the same vertex pair are rejected.
//   - InfCost is the sentinel "impassable" weight: blacklisting a vertex
//     raises all its incident edge weights to InfCost without touching the
//     topology, so searches route around it while ids stay stable.
//   - Reachable computes the set of vertices connected to a root through
//     finite-weight edges (breadth-first), used by planner introspection
//     and the fully-blocked-world tests.
//
// One Graph belongs to exactly one planner worker; it is NOT safe for
// concurrent mutation. Workers own private graph pairs precisely so the
// hot expansion/search loop needs no locks.
//
// Errors (sentinel):
//
//   - ErrVertexNotFound  — an id outside the arena.
//   - ErrDuplicateEdge   — an edge that already exists between a pair.
//   - ErrSelfLoop        — an edge from a vertex to itself.
//   - ErrNegativeWeight  — a negative edge weight.
package graph

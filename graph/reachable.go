package graph

// Reachable returns the set of vertex ids connected to root through
// finite-weight edges, breadth-first. Edges at InfCost (pruned/blacklisted
// connections) are not traversed; the root itself is always included.
// Complexity: O(V + E).
func (g *Graph) Reachable(root VertexID) map[VertexID]struct{} {
	visited := make(map[VertexID]struct{}, len(g.vertices))
	if !g.has(root) {
		return visited
	}
	visited[root] = struct{}{}
	queue := []VertexID{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v, w := range g.adjacency[u] {
			if w >= InfCost {
				continue
			}
			if _, seen := visited[v]; seen {
				continue
			}
			visited[v] = struct{}{}
			queue = append(queue, v)
		}
	}

	return visited
}

// ReachableAll is Reachable without the finite-weight filter: it follows
// every edge, including InfCost ones. Used to enumerate vertices a search
// could ever have touched, e.g. when asserting that a fully blocked world
// blacklists everything the search reached.
func (g *Graph) ReachableAll(root VertexID) map[VertexID]struct{} {
	visited := make(map[VertexID]struct{}, len(g.vertices))
	if !g.has(root) {
		return visited
	}
	visited[root] = struct{}{}
	queue := []VertexID{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := range g.adjacency[u] {
			if _, seen := visited[v]; seen {
				continue
			}
			visited[v] = struct{}{}
			queue = append(queue, v)
		}
	}

	return visited
}

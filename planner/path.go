package planner

import (
	"github.com/VincidaB/vox-nav/graph"
	"github.com/VincidaB/vox-nav/state"
)

// assemblePath converts an ordered vertex chain into a timed path,
// re-validating it end to end first. Lazy blacklisting can invalidate a
// vertex after the search has already threaded a path through it, so a
// chain is only accepted when every vertex passes a fresh validity probe,
// nothing on it is blacklisted, and every edge still carries finite cost.
//
// A rejected chain is also pruned so the next search pass cannot re-find
// it: freshly failing vertices are blacklisted (incident edges to
// graph.InfCost); failing start or goal vertices, which are never
// blacklisted, have their chain edges raised to graph.InfCost instead.
// Every rejection therefore removes at least one vertex or edge from
// future consideration, which guarantees forward progress even in a fully
// blocked world.
func assemblePath(g *graph.Graph, chain []graph.VertexID, validity state.Validity, start, goal graph.VertexID) (*Path, bool) {
	if len(chain) == 0 {
		return nil, false
	}

	// Validation pass. Failures mutate the graph (blacklist/prune) and
	// reject the whole chain; the round then simply contributes nothing.
	valid := true
	for i, id := range chain {
		v, err := g.Vertex(id)
		if err != nil {
			return nil, false
		}
		if !v.Blacklisted && validity.IsValid(v.State) {
			continue
		}
		valid = false
		if id != start && id != goal {
			g.Blacklist(id)

			continue
		}
		// Endpoint states are exempt from blacklisting; cut the chain's
		// edges around them instead.
		if i > 0 {
			_ = g.SetEdgeWeight(chain[i-1], id, graph.InfCost)
		}
		if i+1 < len(chain) {
			_ = g.SetEdgeWeight(id, chain[i+1], graph.InfCost)
		}
	}
	if !valid {
		return nil, false
	}

	// Assembly pass.
	p := &Path{Waypoints: make([]Waypoint, 0, len(chain))}
	for i, id := range chain {
		v := g.MustVertex(id)
		wp := Waypoint{State: v.State}
		// The first waypoint is where the path starts; it carries no
		// inbound control even on the control roadmap.
		if i > 0 && v.Control != nil {
			wp.Control = v.Control
			wp.Duration = v.ControlDuration
		}
		p.Waypoints = append(p.Waypoints, wp)

		if i > 0 {
			w := g.EdgeWeight(chain[i-1], id)
			if w >= graph.InfCost {
				return nil, false
			}
			p.Cost += w
		}
	}

	return p, true
}

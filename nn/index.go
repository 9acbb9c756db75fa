package nn

import (
	"sort"

	"github.com/VincidaB/vox-nav/graph"
	"github.com/VincidaB/vox-nav/state"
)

// entry pairs a vertex id with the state it indexes. The state slice is
// shared with the roadmap arena, not copied.
type entry struct {
	id graph.VertexID
	st state.State
}

// Index is an insert-only nearest-neighbor structure over one roadmap.
type Index struct {
	space   state.Space
	entries []entry
}

// NewIndex returns an empty index measuring distance with sp's metric.
func NewIndex(sp state.Space, capHint int) *Index {
	return &Index{space: sp, entries: make([]entry, 0, capHint)}
}

// Insert registers id at st. st must outlive the index (it is the arena's
// state, not a copy).
// Complexity: O(1) amortized.
func (ix *Index) Insert(id graph.VertexID, st state.State) {
	ix.entries = append(ix.entries, entry{id: id, st: st})
}

// Len returns the number of indexed vertices.
func (ix *Index) Len() int { return len(ix.entries) }

// Neighbor is one query result: an indexed vertex id and its distance to
// the query state.
type Neighbor struct {
	ID       graph.VertexID
	Distance float64
}

// Nearest returns up to k indexed vertices closest to q, ascending by
// distance.
// Complexity: O(n log n) in the scanned entries.
func (ix *Index) Nearest(q state.State, k int) []Neighbor {
	if k <= 0 || len(ix.entries) == 0 {
		return nil
	}
	all := make([]Neighbor, len(ix.entries))
	for i, e := range ix.entries {
		all[i] = Neighbor{ID: e.id, Distance: ix.space.Distance(q, e.st)}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Distance < all[j].Distance })
	if k > len(all) {
		k = len(all)
	}

	return all[:k]
}

// InRadius returns every indexed vertex within r of q, ascending by
// distance.
// Complexity: O(n log n) in the scanned entries.
func (ix *Index) InRadius(q state.State, r float64) []Neighbor {
	if r < 0 || len(ix.entries) == 0 {
		return nil
	}
	var hits []Neighbor
	for _, e := range ix.entries {
		if d := ix.space.Distance(q, e.st); d <= r {
			hits = append(hits, Neighbor{ID: e.id, Distance: d})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })

	return hits
}

// This file implements the per-worker expansion round: batch sampling,
// geometric and control roadmap growth, goal connectivity, and the
// two-phase searches.
package planner

import (
	"math"
	"math/rand"

	"github.com/VincidaB/vox-nav/dynamics"
	"github.com/VincidaB/vox-nav/graph"
	"github.com/VincidaB/vox-nav/nn"
	"github.com/VincidaB/vox-nav/search"
	"github.com/VincidaB/vox-nav/state"
)

// worker owns one private geometric/control roadmap pair plus samplers.
// Nothing in a worker is shared; the only cross-worker state it touches is
// the planner's best-path record, through locked planner methods.
type worker struct {
	id int

	geo      *graph.Graph
	geoNN    *nn.Index
	geoStart graph.VertexID
	geoGoal  graph.VertexID

	ctrl      *graph.Graph
	ctrlNN    *nn.Index
	ctrlStart graph.VertexID
	ctrlGoal  graph.VertexID

	uniform  state.Sampler
	informed *state.InformedSampler
	csampler *dynamics.Sampler
	rng      *rand.Rand

	batch  []state.State
	rounds int64
}

// newWorker allocates a worker's graphs and indexes and seeds its random
// streams from the planner seed plus the worker id.
func newWorker(p *Planner, id int, start, goal state.State) *worker {
	seed := p.opts.Seed + int64(id)
	capHint := p.opts.BatchSize * 4

	w := &worker{
		id:    id,
		geo:   graph.New(capHint),
		geoNN: nn.NewIndex(p.space, capHint),
		rng:   rand.New(rand.NewSource(seed)),
	}

	if p.opts.UseValidSampler {
		w.uniform = state.NewValidSampler(p.space, p.validity, 0, seed)
	} else {
		w.uniform = state.NewUniformSampler(p.space, seed)
	}
	w.informed = state.NewInformedSampler(p.space, start, goal, seed)

	// Start and goal singletons exist in every graph before the first
	// expansion round.
	w.geoStart = w.geo.AddVertex(start.Clone())
	w.geoGoal = w.geo.AddVertex(goal.Clone())
	w.geoNN.Insert(w.geoStart, w.geo.MustVertex(w.geoStart).State)
	w.geoNN.Insert(w.geoGoal, w.geo.MustVertex(w.geoGoal).State)

	if p.opts.Propagator != nil {
		w.ctrl = graph.New(capHint)
		w.ctrlNN = nn.NewIndex(p.space, capHint)
		w.ctrlStart = w.ctrl.AddVertex(start.Clone())
		w.ctrlGoal = w.ctrl.AddVertex(goal.Clone())
		w.ctrlNN.Insert(w.ctrlStart, w.ctrl.MustVertex(w.ctrlStart).State)
		w.ctrlNN.Insert(w.ctrlGoal, w.ctrl.MustVertex(w.ctrlGoal).State)
		w.csampler = dynamics.NewSampler(
			p.opts.Propagator.Model(),
			p.opts.MinControlDuration,
			p.opts.MaxControlDuration,
			seed,
		)
	}

	return w
}

// round executes one sample→expand→search cycle and merges any improving
// paths into the planner's best record.
func (w *worker) round(p *Planner) {
	w.rounds++

	// Informed sampling activates once any finite solution cost exists.
	best := p.bestKnownCost()
	w.informed.SetBestCost(best)

	w.sampleBatch(p, !math.IsInf(best, 1))
	w.expandGeometric(p)
	w.ensureGoalConnectivity(p)
	if w.ctrl != nil {
		w.expandControl(p)
	}

	w.searchRoadmap(p, w.geo, w.geoStart, w.geoGoal, false)
	if w.ctrl != nil {
		w.searchRoadmap(p, w.ctrl, w.ctrlStart, w.ctrlGoal, true)
	}

	p.noteRound(w)
}

// sampleBatch refills w.batch. Informed draws replace the base sampler
// once a finite best cost exists.
func (w *worker) sampleBatch(p *Planner, informed bool) {
	if cap(w.batch) < p.opts.BatchSize {
		w.batch = make([]state.State, 0, p.opts.BatchSize)
	}
	w.batch = w.batch[:0]
	dim := p.space.Dimension()
	for i := 0; i < p.opts.BatchSize; i++ {
		s := make(state.State, dim)
		if informed {
			w.informed.Sample(s)
		} else {
			w.uniform.Sample(s)
		}
		w.batch = append(w.batch, s)
	}
}

// expandGeometric links this round's samples into the geometric roadmap
// under the RGG connection policy.
func (w *worker) expandGeometric(p *Planner) {
	// The connection policy wants the accumulated sample count; once
	// informed sampling is active, only samples that can still improve the
	// solution count toward density.
	n := w.informedVertexCount()
	k := numNeighbors(n+len(w.batch), p.space.Dimension(), p.opts.RewireFactor)
	if k > p.opts.MaxNeighbors {
		k = p.opts.MaxNeighbors
	}
	radius := connectionRadius(n+len(w.batch), p.space.Dimension(), p.space.Measure(), p.opts.RewireFactor)

	for _, s := range w.batch {
		// Near-duplicate rejection keeps the pairwise minimum distance
		// invariant.
		nearest := w.geoNN.Nearest(s, 1)
		if len(nearest) > 0 && nearest[0].Distance < p.opts.MinDistBetweenVertices {
			continue
		}

		var neighbors []nn.Neighbor
		if p.opts.UseKNearest {
			neighbors = w.geoNN.Nearest(s, k)
		} else {
			neighbors = w.geoNN.InRadius(s, radius)
		}

		id := w.geo.AddVertex(s)
		w.geoNN.Insert(id, w.geo.MustVertex(id).State)

		added := 0
		for _, nb := range neighbors {
			if added >= p.opts.MaxNeighbors {
				break
			}
			if nb.Distance < p.opts.MinDistBetweenVertices || nb.Distance > p.opts.MaxDistBetweenVertices {
				continue
			}
			if err := w.geo.AddEdge(id, nb.ID, p.obj.MotionCost(s, w.geo.MustVertex(nb.ID).State)); err == nil {
				added++
			}
		}
	}
}

// ensureGoalConnectivity re-links the goal vertex to its current nearest
// neighbors after every batch. Goal isolation is a correctness bug, so as
// a last resort the single nearest vertex is connected regardless of the
// distance cap.
func (w *worker) ensureGoalConnectivity(p *Planner) {
	goalState := w.geo.MustVertex(w.geoGoal).State
	neighbors := w.geoNN.Nearest(goalState, p.opts.MaxNeighbors+1)
	for _, nb := range neighbors {
		if nb.ID == w.geoGoal || nb.Distance > p.opts.MaxDistBetweenVertices {
			continue
		}
		_ = w.geo.AddEdge(w.geoGoal, nb.ID, p.obj.MotionCost(goalState, w.geo.MustVertex(nb.ID).State))
	}
	if w.geo.Degree(w.geoGoal) > 0 {
		return
	}
	for _, nb := range neighbors {
		if nb.ID == w.geoGoal {
			continue
		}
		_ = w.geo.AddEdge(w.geoGoal, nb.ID, p.obj.MotionCost(goalState, w.geo.MustVertex(nb.ID).State))

		return
	}
}

// expandControl grows the control roadmap: for each sampled target (or the
// goal, under goal bias), forward-simulate candidate controls from the
// nearest existing vertex and keep only fully valid segments.
func (w *worker) expandControl(p *Planner) {
	goalState := w.ctrl.MustVertex(w.ctrlGoal).State
	for _, s := range w.batch {
		target := s
		k := 1
		if w.rng.Float64() < p.opts.GoalBias {
			// Goal-directed expansion gets the full directed-sampling
			// budget.
			target = goalState
			k = p.opts.KNumberOfControls
		}

		nearest := w.ctrlNN.Nearest(target, 1)
		if len(nearest) == 0 {
			continue
		}
		src := nearest[0].ID
		srcState := w.ctrl.MustVertex(src).State

		ctrl, dur, end, ok := dynamics.BestControl(
			p.opts.Propagator, w.csampler, p.space, p.validity, srcState, target, k,
		)
		if !ok {
			// Every candidate trajectory collided or left bounds; the
			// whole expansion attempt is discarded.
			continue
		}
		if !p.space.Bounds().Contains(end) {
			continue
		}
		if dup := w.ctrlNN.Nearest(end, 1); len(dup) > 0 && dup[0].Distance < p.opts.MinDistBetweenVertices {
			continue
		}

		id := w.ctrl.AddVertex(end)
		v := w.ctrl.MustVertex(id)
		v.Control = ctrl
		v.ControlDuration = dur
		w.ctrlNN.Insert(id, v.State)
		_ = w.ctrl.AddEdge(src, id, p.obj.MotionCost(srcState, end))

		// A segment ending inside the goal region closes the roadmap to
		// the goal singleton.
		if p.space.Distance(end, goalState) <= p.opts.GoalTolerance {
			_ = w.ctrl.AddEdge(id, w.ctrlGoal, p.obj.MotionCost(end, goalState))
		}
	}
}

// searchRoadmap runs the heuristic precompute rooted at the goal followed
// by the collision-checked search from the start, then offers any
// validated improving path to the planner.
func (w *worker) searchRoadmap(p *Planner, g *graph.Graph, start, goal graph.VertexID, control bool) {
	var opts []search.Option
	if p.opts.UseAstarHeuristic {
		opts = append(opts, search.WithAstarHeuristic(p.obj, g.MustVertex(start).State))
	}
	if err := search.Heuristic(g, goal, opts...); err != nil {
		return
	}

	res, err := search.AStar(g, start, goal, p.validity)
	if err != nil || !res.Found {
		// "No path in this graph this round" contributes nothing and the
		// loop continues with a fresh batch.
		return
	}

	path, ok := assemblePath(g, res.Path, p.validity, start, goal)
	if !ok {
		return
	}
	p.offer(path, control)
}

// informedVertexCount counts geometric vertices inside the current
// informed set; with no finite best cost every vertex qualifies.
func (w *worker) informedVertexCount() int {
	n := w.geo.NumVertices()
	count := 0
	for id := 0; id < n; id++ {
		if w.informed.InInformedSet(w.geo.MustVertex(graph.VertexID(id)).State) {
			count++
		}
	}

	return count
}

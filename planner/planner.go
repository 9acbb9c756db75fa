package planner

import (
	"context"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/VincidaB/vox-nav/state"
)

// Planner is the AIT*-style anytime kinodynamic planner. Construct with
// New, run with Solve, inspect with Data, reset with Clear.
//
// A Planner is safe for sequential reuse: repeated Solve calls with the
// same start/goal keep refining the existing roadmaps (anytime behavior);
// changing start/goal or calling Clear discards them.
type Planner struct {
	space    state.Space
	validity state.Validity
	obj      state.Objective
	opts     Options

	mu           sync.Mutex
	workers      []*worker
	start        state.State
	goal         state.State
	bestGeo      *Path
	bestCtrl     *Path
	bestGeoCost  float64
	bestCtrlCost float64
	rounds       int64
}

// New validates the configuration and returns an idle planner.
// Returns ErrNilSpace or ErrNilValidity on missing collaborators; option
// constructors panic on out-of-range values before New ever runs.
func New(sp state.Space, validity state.Validity, opts ...Option) (*Planner, error) {
	if sp == nil {
		return nil, ErrNilSpace
	}
	if validity == nil {
		return nil, ErrNilValidity
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	obj := cfg.Objective
	if obj == nil {
		obj = state.NewPathLengthObjective(sp)
	}

	return &Planner{
		space:        sp,
		validity:     validity,
		obj:          obj,
		opts:         cfg,
		bestGeoCost:  math.Inf(1),
		bestCtrlCost: math.Inf(1),
	}, nil
}

// Solve runs expansion rounds until ctx is done or the configured
// condition trips, then returns the best paths found so far. Budget
// exhaustion with no path is StatusNoSolution, not an error; only
// configuration problems (bad start/goal) error out.
//
// Cancellation is cooperative: the termination condition is polled between
// rounds, so an in-progress round always completes first.
func (p *Planner) Solve(ctx context.Context, start, goal state.State) (Solution, error) {
	if err := p.checkEndpoints(start, goal); err != nil {
		return Solution{}, err
	}

	// start ≈ goal short-circuits to a degenerate zero-cost solution
	// rather than burning the budget, and is distinguishable from "found
	// nothing" by its Solved status.
	if p.space.Distance(start, goal) <= p.opts.GoalTolerance {
		return p.trivialSolution(start), nil
	}

	p.setup(start, goal)

	eg, egCtx := errgroup.WithContext(ctx)
	p.mu.Lock()
	workers := p.workers
	p.mu.Unlock()
	for _, w := range workers {
		w := w
		eg.Go(func() error {
			for {
				select {
				case <-egCtx.Done():
					return nil
				default:
				}
				if p.opts.Condition != nil && p.opts.Condition() {
					return nil
				}
				w.round(p)
			}
		})
	}
	// Workers only ever return nil; Wait is for joining.
	_ = eg.Wait()

	return p.solution(), nil
}

// Clear releases all graphs, indexes and sampled states and returns the
// planner to idle. The next Solve starts from scratch with the configured
// seed.
func (p *Planner) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.workers = nil
	p.start = nil
	p.goal = nil
	p.bestGeo = nil
	p.bestCtrl = nil
	p.bestGeoCost = math.Inf(1)
	p.bestCtrlCost = math.Inf(1)
	p.rounds = 0
}

// Data returns an introspection snapshot. Sizes are aggregated from the
// most recent completed round of each worker; call after Solve returns
// for settled numbers.
func (p *Planner) Data() Data {
	p.mu.Lock()
	defer p.mu.Unlock()

	d := Data{
		Workers:           len(p.workers),
		Rounds:            p.rounds,
		BestGeometricCost: p.bestGeoCost,
		BestControlCost:   p.bestCtrlCost,
	}
	for _, w := range p.workers {
		d.GeometricVertices += w.geo.NumVertices()
		d.GeometricEdges += w.geo.NumEdges()
		d.GeometricReachable += len(w.geo.Reachable(w.geoStart))
		if w.ctrl != nil {
			d.ControlVertices += w.ctrl.NumVertices()
			d.ControlEdges += w.ctrl.NumEdges()
			d.ControlReachable += len(w.ctrl.Reachable(w.ctrlStart))
		}
	}

	return d
}

// checkEndpoints validates start and goal against the space. Configuration
// errors are fatal to the Solve call.
func (p *Planner) checkEndpoints(start, goal state.State) error {
	if len(start) != p.space.Dimension() || len(goal) != p.space.Dimension() {
		return ErrDimensionMismatch
	}
	if !p.space.Bounds().Contains(start) {
		return ErrStartOutOfBounds
	}
	if !p.space.Bounds().Contains(goal) {
		return ErrGoalOutOfBounds
	}

	return nil
}

// setup allocates per-worker graph pairs unless a compatible setup from a
// previous Solve call is still live (same endpoints, not cleared), in
// which case refinement continues on the existing roadmaps.
func (p *Planner) setup(start, goal state.State) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.workers != nil && sameState(p.start, start) && sameState(p.goal, goal) {
		return
	}

	p.start = start.Clone()
	p.goal = goal.Clone()
	p.bestGeo = nil
	p.bestCtrl = nil
	p.bestGeoCost = math.Inf(1)
	p.bestCtrlCost = math.Inf(1)
	p.rounds = 0
	p.workers = make([]*worker, p.opts.NumThreads)
	for i := range p.workers {
		p.workers[i] = newWorker(p, i, p.start, p.goal)
	}
}

// bestKnownCost returns the smaller of the recorded best costs, +Inf when
// nothing has been found; informed sampling keys off it.
func (p *Planner) bestKnownCost() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bestGeoCost < p.bestCtrlCost {
		return p.bestGeoCost
	}

	return p.bestCtrlCost
}

// offer merges a validated path into the best record iff it strictly
// improves the recorded cost, keeping both records monotonically
// non-increasing over the run.
func (p *Planner) offer(path *Path, control bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if control {
		if path.Cost < p.bestCtrlCost {
			p.bestCtrl = path
			p.bestCtrlCost = path.Cost
			if p.opts.Logger != nil {
				p.opts.Logger.Debug("improved control path",
					"cost", path.Cost, "waypoints", len(path.Waypoints))
			}
		}

		return
	}
	if path.Cost < p.bestGeoCost {
		p.bestGeo = path
		p.bestGeoCost = path.Cost
		if p.opts.Logger != nil {
			p.opts.Logger.Debug("improved geometric path",
				"cost", path.Cost, "waypoints", len(path.Waypoints))
		}
	}
}

// noteRound bumps the shared round counter once per worker round.
func (p *Planner) noteRound(w *worker) {
	p.mu.Lock()
	p.rounds++
	rounds := p.rounds
	p.mu.Unlock()

	if p.opts.Logger != nil {
		p.opts.Logger.Debug("round complete",
			"worker", w.id,
			"round", rounds,
			"geo_vertices", w.geo.NumVertices(),
			"geo_edges", w.geo.NumEdges())
	}
}

// solution snapshots the best record into a Solution.
func (p *Planner) solution() Solution {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := Solution{
		GeometricPath: p.bestGeo,
		ControlPath:   p.bestCtrl,
	}
	if p.bestGeo != nil || p.bestCtrl != nil {
		s.Status = StatusSolved
	}

	return s
}

// trivialSolution covers start ≈ goal: a single zero-duration waypoint at
// the start with zero cost.
func (p *Planner) trivialSolution(start state.State) Solution {
	path := &Path{
		Waypoints: []Waypoint{{State: start.Clone()}},
	}
	s := Solution{Status: StatusSolved, GeometricPath: path}
	if p.opts.Propagator != nil {
		s.ControlPath = &Path{Waypoints: []Waypoint{{State: start.Clone()}}}
	}

	return s
}

func sameState(a, b state.State) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

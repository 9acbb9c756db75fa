package planner

import (
	"errors"
	"log/slog"
	"math"

	"github.com/VincidaB/vox-nav/dynamics"
	"github.com/VincidaB/vox-nav/state"
)

// Option-validation errors. Raised as panics by the option constructors,
// matching the configure-early contract of the rest of the module.
var (
	// ErrBadThreads indicates a non-positive worker count.
	ErrBadThreads = errors.New("planner: NumThreads must be positive")

	// ErrBadBatchSize indicates a non-positive batch size.
	ErrBadBatchSize = errors.New("planner: BatchSize must be positive")

	// ErrBadNeighbors indicates a non-positive neighbor cap.
	ErrBadNeighbors = errors.New("planner: MaxNeighbors must be positive")

	// ErrBadDistance indicates a negative distance parameter.
	ErrBadDistance = errors.New("planner: distance parameters must be non-negative")

	// ErrBadGoalBias indicates a goal bias outside [0, 1].
	ErrBadGoalBias = errors.New("planner: GoalBias must lie in [0,1]")

	// ErrBadRewireFactor indicates a rewire factor below 1.
	ErrBadRewireFactor = errors.New("planner: RewireFactor must be >= 1")
)

// Options holds every tunable of the planner. Zero values are never used
// directly; construct via DefaultOptions and override with functional
// options.
type Options struct {
	// NumThreads is the worker count; each worker owns a private pair of
	// graphs and nearest-neighbor indexes.
	NumThreads int

	// BatchSize is the number of samples added to each worker's graphs per
	// round.
	BatchSize int

	// MaxNeighbors caps the connections attempted per new geometric vertex.
	MaxNeighbors int

	// MinDistBetweenVertices rejects near-duplicate samples: no two
	// vertices in one graph end up closer than this.
	MinDistBetweenVertices float64

	// MaxDistBetweenVertices rejects connections longer than this. +Inf
	// disables the cap.
	MaxDistBetweenVertices float64

	// UseValidSampler draws batch samples through the validity oracle
	// (rejection sampling) instead of plain uniform draws.
	UseValidSampler bool

	// KNumberOfControls is the candidate count for directed control
	// sampling: higher is more accurate goal-directed expansion, at cost.
	KNumberOfControls int

	// GoalBias is the probability of forcing a control-graph expansion
	// round toward the goal instead of the sampled target.
	GoalBias float64

	// RewireFactor scales the RGG connection radius / neighbor count above
	// their theoretical minimum.
	RewireFactor float64

	// UseKNearest selects the k-nearest connection strategy; false selects
	// the shrinking-radius strategy.
	UseKNearest bool

	// UseAstarHeuristic orders the heuristic precompute pass as A* toward
	// the start instead of plain Dijkstra.
	UseAstarHeuristic bool

	// GoalTolerance is the distance within which a state counts as having
	// reached the goal (and within which start == goal short-circuits).
	GoalTolerance float64

	// Seed drives every random stream; worker w derives Seed + w.
	Seed int64

	// MinControlDuration/MaxControlDuration bound each forward-simulated
	// segment.
	MinControlDuration float64
	MaxControlDuration float64

	// Condition is an optional extra termination condition, polled between
	// rounds alongside the context.
	Condition ConditionFn

	// Objective weights edges and heuristics. Defaults to path length over
	// the state space.
	Objective state.Objective

	// Propagator enables the control graph. Nil leaves the planner purely
	// geometric.
	Propagator *dynamics.Propagator

	// Logger receives per-round debug summaries. Nil disables logging.
	Logger *slog.Logger
}

// Option is a functional option for the planner.
type Option func(*Options)

// DefaultOptions mirrors the reference planner's defaults.
func DefaultOptions() Options {
	return Options{
		NumThreads:             8,
		BatchSize:              1000,
		MaxNeighbors:           10,
		MinDistBetweenVertices: 0.1,
		MaxDistBetweenVertices: math.Inf(1),
		KNumberOfControls:      1,
		GoalBias:               0.05,
		RewireFactor:           1.0,
		UseKNearest:            true,
		GoalTolerance:          0.25,
		Seed:                   1,
		MinControlDuration:     0.1,
		MaxControlDuration:     1.0,
	}
}

// WithNumThreads sets the worker count. Panics on non-positive n.
func WithNumThreads(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadThreads.Error())
		}
		o.NumThreads = n
	}
}

// WithBatchSize sets the per-round sample count. Panics on non-positive n.
func WithBatchSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadBatchSize.Error())
		}
		o.BatchSize = n
	}
}

// WithMaxNeighbors caps connections per new geometric vertex. Panics on
// non-positive n.
func WithMaxNeighbors(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadNeighbors.Error())
		}
		o.MaxNeighbors = n
	}
}

// WithMinDistBetweenVertices sets the near-duplicate rejection distance.
// Panics on negative d.
func WithMinDistBetweenVertices(d float64) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadDistance.Error())
		}
		o.MinDistBetweenVertices = d
	}
}

// WithMaxDistBetweenVertices caps connection length. Panics on negative d.
func WithMaxDistBetweenVertices(d float64) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadDistance.Error())
		}
		o.MaxDistBetweenVertices = d
	}
}

// WithValidSampler routes batch sampling through the validity oracle.
func WithValidSampler() Option {
	return func(o *Options) { o.UseValidSampler = true }
}

// WithKNumberOfControls sets the directed-control candidate count. Panics
// on non-positive k.
func WithKNumberOfControls(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			panic(ErrBadBatchSize.Error())
		}
		o.KNumberOfControls = k
	}
}

// WithGoalBias sets the goal-directed expansion probability. Panics
// outside [0, 1].
func WithGoalBias(b float64) Option {
	return func(o *Options) {
		if b < 0 || b > 1 {
			panic(ErrBadGoalBias.Error())
		}
		o.GoalBias = b
	}
}

// WithRewireFactor scales the RGG connection radius/neighbor count. Panics
// below 1.
func WithRewireFactor(f float64) Option {
	return func(o *Options) {
		if f < 1 {
			panic(ErrBadRewireFactor.Error())
		}
		o.RewireFactor = f
	}
}

// WithRadiusConnection selects the shrinking-radius connection strategy
// instead of k-nearest.
func WithRadiusConnection() Option {
	return func(o *Options) { o.UseKNearest = false }
}

// WithAstarHeuristic switches the heuristic precompute from Dijkstra to
// the A* strategy.
func WithAstarHeuristic() Option {
	return func(o *Options) { o.UseAstarHeuristic = true }
}

// WithGoalTolerance sets the goal-reached distance. Panics on negative d.
func WithGoalTolerance(d float64) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadDistance.Error())
		}
		o.GoalTolerance = d
	}
}

// WithSeed fixes the random streams for reproducible runs.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithControlDuration bounds each forward-simulated segment. Panics when
// either bound is non-positive or max < min.
func WithControlDuration(min, max float64) Option {
	return func(o *Options) {
		if min <= 0 || max < min {
			panic(ErrBadDistance.Error())
		}
		o.MinControlDuration = min
		o.MaxControlDuration = max
	}
}

// WithCondition adds a termination condition polled between rounds.
func WithCondition(fn ConditionFn) Option {
	return func(o *Options) { o.Condition = fn }
}

// WithObjective overrides the optimization objective.
func WithObjective(obj state.Objective) Option {
	return func(o *Options) { o.Objective = obj }
}

// WithPropagator enables the control graph using the given forward
// dynamics.
func WithPropagator(p *dynamics.Propagator) Option {
	return func(o *Options) { o.Propagator = p }
}

// WithLogger enables per-round debug logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

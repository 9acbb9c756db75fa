// This file declares State, Control, Bounds, the Space interface, the
// validity oracle and the optimization objective, together with the
// package's sentinel errors.
package state

import (
	"errors"
	"math"

	"github.com/golang/geo/r3"
)

// Sentinel errors for state-space configuration.
var (
	// ErrZeroDimension indicates a space or bounds with zero dimensions.
	ErrZeroDimension = errors.New("state: dimension must be positive")

	// ErrBoundsMismatch indicates low/high slices of differing lengths.
	ErrBoundsMismatch = errors.New("state: low and high bounds differ in length")

	// ErrInvertedBounds indicates a lower bound strictly above its upper bound.
	ErrInvertedBounds = errors.New("state: lower bound exceeds upper bound")

	// ErrDimensionMismatch indicates a state whose width does not match its space.
	ErrDimensionMismatch = errors.New("state: state dimension does not match space")
)

// State is a point in configuration space. The layout of its components is
// defined by the Space that produced it (e.g. [x y z] for RealVectorSpace(3),
// [x y yaw] for SE2Space). States attached to graph vertices are owned by
// that graph's vertex arena for the graph's lifetime.
type State []float64

// Clone returns an independent copy of s.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)

	return out
}

// R3 returns the first three components of s as an r3.Vector, padding
// missing components with zero. Useful for world-space geometry (occupancy
// lookups, path endpoints) regardless of the owning space's dimension.
func (s State) R3() r3.Vector {
	var v r3.Vector
	if len(s) > 0 {
		v.X = s[0]
	}
	if len(s) > 1 {
		v.Y = s[1]
	}
	if len(s) > 2 {
		v.Z = s[2]
	}

	return v
}

// Control is an input vector applied to a dynamical system for some
// duration (e.g. [linear-velocity angular-velocity] for a unicycle).
type Control []float64

// Clone returns an independent copy of c.
func (c Control) Clone() Control {
	out := make(Control, len(c))
	copy(out, c)

	return out
}

// Bounds is an axis-aligned box constraining each state (or control)
// component to [Low[i], High[i]]. A component with Low[i] == High[i] is
// degenerate: legal, but it pins sampling to that value.
type Bounds struct {
	Low  []float64
	High []float64
}

// NewBounds validates and returns a Bounds over the given limits.
// Returns ErrZeroDimension, ErrBoundsMismatch or ErrInvertedBounds on
// malformed input. The slices are copied, so callers may reuse theirs.
func NewBounds(low, high []float64) (Bounds, error) {
	if len(low) == 0 {
		return Bounds{}, ErrZeroDimension
	}
	if len(low) != len(high) {
		return Bounds{}, ErrBoundsMismatch
	}
	for i := range low {
		if low[i] > high[i] {
			return Bounds{}, ErrInvertedBounds
		}
	}
	b := Bounds{
		Low:  make([]float64, len(low)),
		High: make([]float64, len(high)),
	}
	copy(b.Low, low)
	copy(b.High, high)

	return b, nil
}

// Dimension returns the number of bounded components.
func (b Bounds) Dimension() int { return len(b.Low) }

// Clamp folds every component of s back into the bounds, in place.
// Complexity: O(d).
func (b Bounds) Clamp(s State) {
	for i := range s {
		if i >= len(b.Low) {
			break
		}
		if s[i] < b.Low[i] {
			s[i] = b.Low[i]
		} else if s[i] > b.High[i] {
			s[i] = b.High[i]
		}
	}
}

// Contains reports whether every component of s lies inside the bounds.
func (b Bounds) Contains(s State) bool {
	if len(s) != len(b.Low) {
		return false
	}
	for i := range s {
		if s[i] < b.Low[i] || s[i] > b.High[i] {
			return false
		}
	}

	return true
}

// Measure returns the Lebesgue measure (hyper-volume) of the bounds.
// Degenerate components yield a zero measure.
func (b Bounds) Measure() float64 {
	m := 1.0
	for i := range b.Low {
		m *= b.High[i] - b.Low[i]
	}

	return m
}

// Space is the state-space descriptor: it owns the geometry of State.
// Implementations must be immutable after construction.
type Space interface {
	// Dimension returns the width of states produced by this space.
	Dimension() int

	// Bounds returns the sampling bounds.
	Bounds() Bounds

	// Distance returns the space's metric between a and b.
	Distance(a, b State) float64

	// Interpolate writes into out the state at fraction t ∈ [0,1] along the
	// space's geodesic from a to b. out must have length Dimension().
	Interpolate(a, b State, t float64, out State)

	// SampleUniform writes a uniform draw over Bounds into out.
	// out must have length Dimension().
	SampleUniform(rng RandSource, out State)

	// Measure returns the Lebesgue measure of the bounded space, used by
	// the RGG connection-radius computation.
	Measure() float64
}

// RandSource is the subset of *math/rand.Rand the spaces need. Narrowing
// the dependency keeps spaces trivially testable with scripted sources.
type RandSource interface {
	Float64() float64
}

// Validity is the collision oracle: IsValid reports whether a state is
// free. Backed by an occupancy representation in production; trivially
// stubbed in tests.
type Validity interface {
	IsValid(s State) bool
}

// ValidityFunc adapts a plain function to the Validity interface.
type ValidityFunc func(s State) bool

// IsValid implements Validity.
func (f ValidityFunc) IsValid(s State) bool { return f(s) }

// AlwaysValid returns an oracle that accepts every state.
func AlwaysValid() Validity {
	return ValidityFunc(func(State) bool { return true })
}

// NeverValid returns an oracle that rejects every state.
func NeverValid() Validity {
	return ValidityFunc(func(State) bool { return false })
}

// Objective is the optimization objective: MotionCost weights graph edges
// and heuristic estimates. Costs must be non-negative.
type Objective interface {
	MotionCost(a, b State) float64
}

// PathLengthObjective measures cost as the space's metric distance,
// matching path-length optimization in the reference planners.
type PathLengthObjective struct {
	space Space
}

// NewPathLengthObjective returns a path-length objective over sp.
func NewPathLengthObjective(sp Space) *PathLengthObjective {
	return &PathLengthObjective{space: sp}
}

// MotionCost implements Objective.
func (o *PathLengthObjective) MotionCost(a, b State) float64 {
	return o.space.Distance(a, b)
}

// euclidean returns the L2 distance over the first n components.
func euclidean(a, b State, n int) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum)
}

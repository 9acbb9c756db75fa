package state

import "math"

// RealVectorSpace is Euclidean R^n restricted to an axis-aligned box.
// It is the workhorse space for point-mass and elevation planning.
type RealVectorSpace struct {
	bounds Bounds
}

// NewRealVectorSpace constructs a RealVectorSpace over the given bounds.
// Returns the bounds' validation error on malformed input.
// Complexity: O(d).
func NewRealVectorSpace(low, high []float64) (*RealVectorSpace, error) {
	b, err := NewBounds(low, high)
	if err != nil {
		return nil, err
	}

	return &RealVectorSpace{bounds: b}, nil
}

// Dimension returns n.
func (sp *RealVectorSpace) Dimension() int { return sp.bounds.Dimension() }

// Bounds returns the sampling bounds.
func (sp *RealVectorSpace) Bounds() Bounds { return sp.bounds }

// Distance returns the L2 metric between a and b.
func (sp *RealVectorSpace) Distance(a, b State) float64 {
	return euclidean(a, b, sp.bounds.Dimension())
}

// Interpolate writes the straight-line interpolation at fraction t into out.
func (sp *RealVectorSpace) Interpolate(a, b State, t float64, out State) {
	for i := 0; i < sp.bounds.Dimension(); i++ {
		out[i] = a[i] + (b[i]-a[i])*t
	}
}

// SampleUniform draws each component uniformly over its bound. Degenerate
// components collapse to their single legal value.
func (sp *RealVectorSpace) SampleUniform(rng RandSource, out State) {
	for i := 0; i < sp.bounds.Dimension(); i++ {
		lo, hi := sp.bounds.Low[i], sp.bounds.High[i]
		out[i] = lo + rng.Float64()*(hi-lo)
	}
}

// Measure returns the box volume.
func (sp *RealVectorSpace) Measure() float64 { return sp.bounds.Measure() }

// SE2Space is the planar rigid-body space [x y yaw]: Euclidean position
// with a wrapped orientation component. The yaw weight balances rotation
// against translation in the metric, standing in for the turning-radius
// scaling of ReedsShepp/Dubins parameterizations.
type SE2Space struct {
	bounds    Bounds // position bounds; yaw bound fixed to [-π, π)
	yawWeight float64
}

// DefaultYawWeight balances one radian of heading change against one meter
// of translation in the SE2 metric.
const DefaultYawWeight = 1.0

// NewSE2Space constructs an SE2 space over planar position bounds
// (len(low) == len(high) == 2) with the given yaw weight. A non-positive
// yawWeight falls back to DefaultYawWeight.
func NewSE2Space(low, high []float64, yawWeight float64) (*SE2Space, error) {
	if len(low) != 2 || len(high) != 2 {
		if len(low) != len(high) {
			return nil, ErrBoundsMismatch
		}

		return nil, ErrZeroDimension
	}
	b, err := NewBounds(
		[]float64{low[0], low[1], -math.Pi},
		[]float64{high[0], high[1], math.Pi},
	)
	if err != nil {
		return nil, err
	}
	if yawWeight <= 0 {
		yawWeight = DefaultYawWeight
	}

	return &SE2Space{bounds: b, yawWeight: yawWeight}, nil
}

// Dimension returns 3 ([x y yaw]).
func (sp *SE2Space) Dimension() int { return 3 }

// Bounds returns the sampling bounds, yaw spanning [-π, π].
func (sp *SE2Space) Bounds() Bounds { return sp.bounds }

// Distance combines planar L2 distance with the weighted shortest angular
// difference of the yaw components.
func (sp *SE2Space) Distance(a, b State) float64 {
	return euclidean(a, b, 2) + sp.yawWeight*math.Abs(WrapAngle(a[2]-b[2]))
}

// Interpolate blends position linearly and yaw along the shortest arc.
func (sp *SE2Space) Interpolate(a, b State, t float64, out State) {
	out[0] = a[0] + (b[0]-a[0])*t
	out[1] = a[1] + (b[1]-a[1])*t
	out[2] = WrapAngle(a[2] + WrapAngle(b[2]-a[2])*t)
}

// SampleUniform draws position over the planar bounds and yaw over [-π, π).
func (sp *SE2Space) SampleUniform(rng RandSource, out State) {
	for i := 0; i < 2; i++ {
		lo, hi := sp.bounds.Low[i], sp.bounds.High[i]
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	out[2] = -math.Pi + rng.Float64()*2*math.Pi
}

// Measure returns planar area × 2π (the yaw extent).
func (sp *SE2Space) Measure() float64 { return sp.bounds.Measure() }

// WrapAngle folds an angle into [-π, π).
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}

	return a - math.Pi
}

package dynamics

import (
	"errors"
	"math"

	"github.com/VincidaB/vox-nav/state"
)

// Sentinel errors for model construction.
var (
	// ErrBadStepSize indicates a zero or negative integration step.
	ErrBadStepSize = errors.New("dynamics: step size must be positive")

	// ErrBadWheelbase indicates a zero or negative bicycle wheelbase.
	ErrBadWheelbase = errors.New("dynamics: wheelbase must be positive")
)

// Model defines one Euler integration step of a dynamical system.
// Implementations clamp the control into ControlBounds before applying it.
type Model interface {
	// ControlDimension returns the width of this model's control vectors.
	ControlDimension() int

	// ControlBounds returns the admissible control box.
	ControlBounds() state.Bounds

	// Step writes into out the state reached from s after applying c for
	// dt seconds. out and s may alias.
	Step(s state.State, c state.Control, dt float64, out state.State)
}

// Unicycle is the differential-drive model over [x y yaw] states with
// [linear-velocity yaw-rate] controls.
type Unicycle struct {
	bounds state.Bounds
}

// NewUnicycle returns a unicycle bounded to |v| ≤ maxSpeed and
// |yaw-rate| ≤ maxYawRate.
func NewUnicycle(maxSpeed, maxYawRate float64) (*Unicycle, error) {
	b, err := state.NewBounds(
		[]float64{-maxSpeed, -maxYawRate},
		[]float64{maxSpeed, maxYawRate},
	)
	if err != nil {
		return nil, err
	}

	return &Unicycle{bounds: b}, nil
}

// ControlDimension returns 2.
func (m *Unicycle) ControlDimension() int { return 2 }

// ControlBounds returns the [v ω] box.
func (m *Unicycle) ControlBounds() state.Bounds { return m.bounds }

// Step integrates the unicycle kinematics for dt.
func (m *Unicycle) Step(s state.State, c state.Control, dt float64, out state.State) {
	v := clamp(c[0], m.bounds.Low[0], m.bounds.High[0])
	w := clamp(c[1], m.bounds.Low[1], m.bounds.High[1])
	yaw := s[2]
	out[0] = s[0] + v*math.Cos(yaw)*dt
	out[1] = s[1] + v*math.Sin(yaw)*dt
	out[2] = state.WrapAngle(yaw + w*dt)
}

// Bicycle is the kinematic single-track (car-like) model over [x y yaw]
// states with [speed steering-angle] controls. Bounded steering makes the
// motion non-holonomic: the yaw rate is v·tan(δ)/L.
type Bicycle struct {
	bounds    state.Bounds
	wheelbase float64
}

// NewBicycle returns a bicycle model with the given wheelbase, |v| ≤
// maxSpeed and |δ| ≤ maxSteer (radians).
func NewBicycle(wheelbase, maxSpeed, maxSteer float64) (*Bicycle, error) {
	if wheelbase <= 0 {
		return nil, ErrBadWheelbase
	}
	b, err := state.NewBounds(
		[]float64{-maxSpeed, -maxSteer},
		[]float64{maxSpeed, maxSteer},
	)
	if err != nil {
		return nil, err
	}

	return &Bicycle{bounds: b, wheelbase: wheelbase}, nil
}

// ControlDimension returns 2.
func (m *Bicycle) ControlDimension() int { return 2 }

// ControlBounds returns the [v δ] box.
func (m *Bicycle) ControlBounds() state.Bounds { return m.bounds }

// Step integrates the kinematic bicycle for dt.
func (m *Bicycle) Step(s state.State, c state.Control, dt float64, out state.State) {
	v := clamp(c[0], m.bounds.Low[0], m.bounds.High[0])
	steer := clamp(c[1], m.bounds.Low[1], m.bounds.High[1])
	yaw := s[2]
	out[0] = s[0] + v*math.Cos(yaw)*dt
	out[1] = s[1] + v*math.Sin(yaw)*dt
	out[2] = state.WrapAngle(yaw + v*math.Tan(steer)/m.wheelbase*dt)
}

// Integrator is the holonomic n-dimensional velocity integrator: controls
// are per-axis velocities with a shared magnitude bound. It gives point
// bodies in RealVector spaces a control roadmap without steering
// constraints.
type Integrator struct {
	bounds state.Bounds
	dim    int
}

// NewIntegrator returns an integrator over dim axes with per-axis
// velocities bounded to |v_i| ≤ maxSpeed.
func NewIntegrator(dim int, maxSpeed float64) (*Integrator, error) {
	low := make([]float64, dim)
	high := make([]float64, dim)
	for i := range low {
		low[i] = -maxSpeed
		high[i] = maxSpeed
	}
	b, err := state.NewBounds(low, high)
	if err != nil {
		return nil, err
	}

	return &Integrator{bounds: b, dim: dim}, nil
}

// ControlDimension returns the axis count.
func (m *Integrator) ControlDimension() int { return m.dim }

// ControlBounds returns the velocity box.
func (m *Integrator) ControlBounds() state.Bounds { return m.bounds }

// Step advances each axis by its clamped velocity for dt.
func (m *Integrator) Step(s state.State, c state.Control, dt float64, out state.State) {
	for i := 0; i < m.dim; i++ {
		v := clamp(c[i], m.bounds.Low[i], m.bounds.High[i])
		out[i] = s[i] + v*dt
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

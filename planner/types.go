// This file declares the planner's sentinel errors, solution types and
// introspection data.
package planner

import (
	"errors"

	"github.com/VincidaB/vox-nav/state"
)

// Sentinel errors for planner configuration. All are fatal to the Solve
// call that triggers them.
var (
	// ErrNilSpace indicates a nil state space.
	ErrNilSpace = errors.New("planner: state space is nil")

	// ErrNilValidity indicates a nil validity oracle.
	ErrNilValidity = errors.New("planner: validity oracle is nil")

	// ErrStartOutOfBounds indicates a start state outside the space bounds.
	ErrStartOutOfBounds = errors.New("planner: start state out of bounds")

	// ErrGoalOutOfBounds indicates a goal state outside the space bounds.
	ErrGoalOutOfBounds = errors.New("planner: goal state out of bounds")

	// ErrDimensionMismatch indicates start/goal of the wrong width.
	ErrDimensionMismatch = errors.New("planner: start or goal dimension does not match space")
)

// Status reports the terminal state of a Solve call.
type Status int

const (
	// StatusNoSolution means the budget expired before any collision-free
	// path was found. A normal terminal state, not an error.
	StatusNoSolution Status = iota

	// StatusSolved means at least one collision-free path was found; the
	// best known one(s) are attached to the Solution.
	StatusSolved
)

// String returns the status name.
func (s Status) String() string {
	if s == StatusSolved {
		return "Solved"
	}

	return "NoSolution"
}

// Waypoint is one timed step of a path: reach State by applying Control
// for Duration seconds from the previous waypoint. Control is nil and
// Duration zero for geometric waypoints and for the start.
type Waypoint struct {
	State    state.State
	Control  state.Control
	Duration float64
}

// Path is an ordered, timed vertex chain with its summed edge cost.
type Path struct {
	Waypoints []Waypoint
	Cost      float64
}

// Len returns the waypoint count.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}

	return len(p.Waypoints)
}

// Solution is the outcome of one Solve call. Either path may be nil: the
// control path requires a propagator, and either search may simply not
// have reached the goal within budget.
type Solution struct {
	Status Status

	// GeometricPath is the best pure-geometric path found, if any.
	GeometricPath *Path

	// ControlPath is the best dynamically-feasible path found, if any.
	ControlPath *Path
}

// Data is a point-in-time introspection snapshot (the getPlannerData
// analog): aggregate graph sizes across workers, how much of each roadmap
// the start can still reach through finite-weight edges, and the best
// known costs.
type Data struct {
	Workers            int
	Rounds             int64
	GeometricVertices  int
	GeometricEdges     int
	GeometricReachable int
	ControlVertices    int
	ControlEdges       int
	ControlReachable   int
	BestGeometricCost  float64
	BestControlCost    float64
}

// ConditionFn is a caller-supplied termination condition, polled between
// rounds. Returning true stops the planner after the in-progress round.
type ConditionFn func() bool

package planner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VincidaB/vox-nav/dynamics"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()

	assert.Equal(t, 8, o.NumThreads)
	assert.Equal(t, 1000, o.BatchSize)
	assert.Equal(t, 10, o.MaxNeighbors)
	assert.Equal(t, 0.1, o.MinDistBetweenVertices)
	assert.True(t, math.IsInf(o.MaxDistBetweenVertices, 1))
	assert.Equal(t, 1, o.KNumberOfControls)
	assert.Equal(t, 0.05, o.GoalBias)
	assert.Equal(t, 1.0, o.RewireFactor)
	assert.True(t, o.UseKNearest)
	assert.False(t, o.UseAstarHeuristic)
	assert.False(t, o.UseValidSampler)
	assert.Nil(t, o.Propagator)
}

func TestOptions_Overrides(t *testing.T) {
	o := DefaultOptions()
	m, err := dynamics.NewIntegrator(2, 1)
	require.NoError(t, err)
	prop, err := dynamics.NewPropagator(m, 0.1)
	require.NoError(t, err)

	for _, opt := range []Option{
		WithNumThreads(2),
		WithBatchSize(64),
		WithMaxNeighbors(5),
		WithMinDistBetweenVertices(0.05),
		WithMaxDistBetweenVertices(3),
		WithValidSampler(),
		WithKNumberOfControls(7),
		WithGoalBias(0.2),
		WithRewireFactor(1.5),
		WithRadiusConnection(),
		WithAstarHeuristic(),
		WithGoalTolerance(0.5),
		WithSeed(99),
		WithControlDuration(0.2, 0.9),
		WithPropagator(prop),
	} {
		opt(&o)
	}

	assert.Equal(t, 2, o.NumThreads)
	assert.Equal(t, 64, o.BatchSize)
	assert.Equal(t, 5, o.MaxNeighbors)
	assert.Equal(t, 0.05, o.MinDistBetweenVertices)
	assert.Equal(t, 3.0, o.MaxDistBetweenVertices)
	assert.True(t, o.UseValidSampler)
	assert.Equal(t, 7, o.KNumberOfControls)
	assert.Equal(t, 0.2, o.GoalBias)
	assert.Equal(t, 1.5, o.RewireFactor)
	assert.False(t, o.UseKNearest)
	assert.True(t, o.UseAstarHeuristic)
	assert.Equal(t, 0.5, o.GoalTolerance)
	assert.Equal(t, int64(99), o.Seed)
	assert.Equal(t, 0.2, o.MinControlDuration)
	assert.Equal(t, 0.9, o.MaxControlDuration)
	assert.Same(t, prop, o.Propagator)
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	cases := map[string]func(){
		"threads":       func() { WithNumThreads(0)(&Options{}) },
		"batch":         func() { WithBatchSize(-1)(&Options{}) },
		"neighbors":     func() { WithMaxNeighbors(0)(&Options{}) },
		"min distance":  func() { WithMinDistBetweenVertices(-0.1)(&Options{}) },
		"max distance":  func() { WithMaxDistBetweenVertices(-1)(&Options{}) },
		"controls":      func() { WithKNumberOfControls(0)(&Options{}) },
		"bias low":      func() { WithGoalBias(-0.1)(&Options{}) },
		"bias high":     func() { WithGoalBias(1.1)(&Options{}) },
		"rewire":        func() { WithRewireFactor(0.9)(&Options{}) },
		"tolerance":     func() { WithGoalTolerance(-1)(&Options{}) },
		"duration min":  func() { WithControlDuration(0, 1)(&Options{}) },
		"duration flip": func() { WithControlDuration(1, 0.5)(&Options{}) },
	}
	for name, fn := range cases {
		assert.Panics(t, fn, name)
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "NoSolution", StatusNoSolution.String())
	assert.Equal(t, "Solved", StatusSolved.String())
}

func TestPath_Len(t *testing.T) {
	var p *Path
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 2, (&Path{Waypoints: make([]Waypoint, 2)}).Len())
}

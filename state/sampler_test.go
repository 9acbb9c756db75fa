package state

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformSampler_Deterministic(t *testing.T) {
	sp, err := NewRealVectorSpace([]float64{-1, -1}, []float64{1, 1})
	require.NoError(t, err)

	a := NewUniformSampler(sp, 42)
	b := NewUniformSampler(sp, 42)
	sa := make(State, 2)
	sb := make(State, 2)
	for i := 0; i < 100; i++ {
		a.Sample(sa)
		b.Sample(sb)
		require.Equal(t, sa, sb, "same seed must yield the same stream")
	}
}

func TestValidSampler_AvoidsInvalidRegion(t *testing.T) {
	sp, err := NewRealVectorSpace([]float64{-1}, []float64{1})
	require.NoError(t, err)

	positiveOnly := ValidityFunc(func(s State) bool { return s[0] > 0 })
	vs := NewValidSampler(sp, positiveOnly, 0, 1)
	out := make(State, 1)
	for i := 0; i < 500; i++ {
		vs.Sample(out)
		require.Greater(t, out[0], 0.0)
	}
}

func TestValidSampler_ExhaustionFallsBack(t *testing.T) {
	sp, err := NewRealVectorSpace([]float64{-1}, []float64{1})
	require.NoError(t, err)

	// Nothing is valid; the sampler must still terminate and leave a draw
	// inside bounds for the lazy search phase to reject later.
	vs := NewValidSampler(sp, NeverValid(), 5, 1)
	out := make(State, 1)
	vs.Sample(out)
	assert.True(t, sp.Bounds().Contains(out))
}

func TestInformedSampler_UninformedIsUniform(t *testing.T) {
	sp, err := NewRealVectorSpace([]float64{-10, -10}, []float64{10, 10})
	require.NoError(t, err)

	is := NewInformedSampler(sp, State{-5, 0}, State{5, 0}, 42)
	// With no finite best cost every state is in the informed set.
	assert.True(t, is.InInformedSet(State{9, 9}))

	out := make(State, 2)
	for i := 0; i < 100; i++ {
		is.Sample(out)
		require.True(t, sp.Bounds().Contains(out))
	}
}

func TestInformedSampler_RestrictsToEllipse(t *testing.T) {
	sp, err := NewRealVectorSpace([]float64{-10, -10}, []float64{10, 10})
	require.NoError(t, err)

	start := State{-5, 0}
	goal := State{5, 0}
	is := NewInformedSampler(sp, start, goal, 42)
	is.SetBestCost(16)

	assert.True(t, is.InInformedSet(State{0, 0}))
	assert.False(t, is.InInformedSet(State{0, 9}))

	out := make(State, 2)
	for i := 0; i < 500; i++ {
		is.Sample(out)
		total := sp.Distance(start, out) + sp.Distance(out, goal)
		require.LessOrEqual(t, total, 16.0+1e-9, "draw %v outside informed set", out)
	}
}

func TestInformedSampler_IndependentOfCallerStates(t *testing.T) {
	sp, err := NewRealVectorSpace([]float64{-10, -10}, []float64{10, 10})
	require.NoError(t, err)

	start := State{-5, 0}
	is := NewInformedSampler(sp, start, State{5, 0}, 1)
	start[0] = math.NaN() // sampler must have cloned its endpoints
	assert.True(t, is.InInformedSet(State{0, 0}))
}

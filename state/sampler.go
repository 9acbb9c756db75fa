// This file implements the batch samplers: uniform, validity-gated and
// informed path-length sampling. One sampler instance belongs to exactly
// one planner worker; none of them are safe for concurrent use.
package state

import (
	"math"
	"math/rand"
)

// Sampler draws candidate states into a caller-supplied slot.
type Sampler interface {
	// Sample writes one draw into out. out must have the space's dimension.
	Sample(out State)
}

// UniformSampler draws independently and uniformly over the space bounds.
type UniformSampler struct {
	space Space
	rng   *rand.Rand
}

// NewUniformSampler returns a uniform sampler over sp seeded with seed.
func NewUniformSampler(sp Space, seed int64) *UniformSampler {
	return &UniformSampler{space: sp, rng: rand.New(rand.NewSource(seed))}
}

// Sample implements Sampler.
func (u *UniformSampler) Sample(out State) { u.space.SampleUniform(u.rng, out) }

// DefaultValidAttempts bounds the rejection loop of ValidSampler.
const DefaultValidAttempts = 100

// ValidSampler rejection-samples until the validity oracle accepts a draw,
// falling back to the last (possibly invalid) draw once the attempt budget
// is exhausted. Lazy validity checking during search handles the fallback
// states, so exhaustion is not an error.
type ValidSampler struct {
	space    Space
	validity Validity
	attempts int
	rng      *rand.Rand
}

// NewValidSampler returns a validity-gated sampler over sp. A non-positive
// attempts falls back to DefaultValidAttempts.
func NewValidSampler(sp Space, v Validity, attempts int, seed int64) *ValidSampler {
	if attempts <= 0 {
		attempts = DefaultValidAttempts
	}

	return &ValidSampler{
		space:    sp,
		validity: v,
		attempts: attempts,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Sample implements Sampler.
func (v *ValidSampler) Sample(out State) {
	for i := 0; i < v.attempts; i++ {
		v.space.SampleUniform(v.rng, out)
		if v.validity.IsValid(out) {
			return
		}
	}
}

// InformedSampler restricts draws to the region that can still improve a
// known solution: once SetBestCost records a finite cost c, a draw s is
// kept only if Distance(start,s) + Distance(s,goal) <= c (the path-length
// informed set). With no finite cost recorded it degenerates to uniform
// sampling. Rejection-based, bounded by the same attempt budget as
// ValidSampler; the final fallback draw is clamped into bounds.
type InformedSampler struct {
	space    Space
	start    State
	goal     State
	bestCost float64
	attempts int
	rng      *rand.Rand
}

// NewInformedSampler returns an informed path-length sampler between start
// and goal over sp. Until SetBestCost is called it samples uniformly.
func NewInformedSampler(sp Space, start, goal State, seed int64) *InformedSampler {
	return &InformedSampler{
		space:    sp,
		start:    start.Clone(),
		goal:     goal.Clone(),
		bestCost: math.Inf(1),
		attempts: DefaultValidAttempts,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// SetBestCost records the cost of the best known solution. Subsequent
// draws are biased into the informed set for that cost.
func (s *InformedSampler) SetBestCost(c float64) { s.bestCost = c }

// InInformedSet reports whether st could lie on a path shorter than the
// recorded best cost.
func (s *InformedSampler) InInformedSet(st State) bool {
	return s.space.Distance(s.start, st)+s.space.Distance(st, s.goal) <= s.bestCost
}

// Sample implements Sampler.
func (s *InformedSampler) Sample(out State) {
	for i := 0; i < s.attempts; i++ {
		s.space.SampleUniform(s.rng, out)
		if s.InInformedSet(out) {
			return
		}
	}
	s.space.Bounds().Clamp(out)
}

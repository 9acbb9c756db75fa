package dynamics

import (
	"math/rand"

	"github.com/VincidaB/vox-nav/state"
)

// DefaultStepSize is the integration step used when none is configured.
const DefaultStepSize = 0.1

// Propagator forward-simulates a model with a fixed integration step.
type Propagator struct {
	model Model
	step  float64
}

// NewPropagator wraps model with integration step stepSize.
func NewPropagator(model Model, stepSize float64) (*Propagator, error) {
	if stepSize <= 0 {
		return nil, ErrBadStepSize
	}

	return &Propagator{model: model, step: stepSize}, nil
}

// Model returns the wrapped model.
func (p *Propagator) Model() Model { return p.model }

// StepSize returns the integration step.
func (p *Propagator) StepSize() float64 { return p.step }

// Propagate writes into out the state reached from s by applying c for
// duration seconds, integrating in StepSize increments (the remainder is
// integrated as a final partial step). out must not alias s.
func (p *Propagator) Propagate(s state.State, c state.Control, duration float64, out state.State) {
	copy(out, s)
	remaining := duration
	for remaining > 1e-9 {
		dt := p.step
		if remaining < dt {
			dt = remaining
		}
		p.model.Step(out, c, dt, out)
		remaining -= dt
	}
}

// PropagateValid is Propagate with per-substep validity checking: it
// reports false as soon as any intermediate state or the endpoint fails
// the oracle. On failure the content of out is unspecified and the whole
// candidate segment must be discarded — the control roadmap never keeps
// partial or clipped edges.
func (p *Propagator) PropagateValid(s state.State, c state.Control, duration float64, v state.Validity, out state.State) bool {
	copy(out, s)
	remaining := duration
	for remaining > 1e-9 {
		dt := p.step
		if remaining < dt {
			dt = remaining
		}
		p.model.Step(out, c, dt, out)
		if !v.IsValid(out) {
			return false
		}
		remaining -= dt
	}

	return true
}

// Sampler draws random (control, duration) candidates for roadmap
// expansion. Not safe for concurrent use; each planner worker owns one.
type Sampler struct {
	model       Model
	minDuration float64
	maxDuration float64
	rng         *rand.Rand
}

// NewSampler returns a control sampler for model drawing durations
// uniformly from [minDuration, maxDuration].
func NewSampler(model Model, minDuration, maxDuration float64, seed int64) *Sampler {
	if minDuration <= 0 {
		minDuration = DefaultStepSize
	}
	if maxDuration < minDuration {
		maxDuration = minDuration
	}

	return &Sampler{
		model:       model,
		minDuration: minDuration,
		maxDuration: maxDuration,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// SampleControl writes a uniform draw over the model's control bounds.
func (cs *Sampler) SampleControl(out state.Control) {
	b := cs.model.ControlBounds()
	for i := range out {
		out[i] = b.Low[i] + cs.rng.Float64()*(b.High[i]-b.Low[i])
	}
}

// SampleDuration draws a propagation duration.
func (cs *Sampler) SampleDuration() float64 {
	return cs.minDuration + cs.rng.Float64()*(cs.maxDuration-cs.minDuration)
}

// BestControl implements directed expansion: draw k (control, duration)
// candidates from cs, propagate each from s with p under validity oracle
// v, and return the valid candidate whose endpoint lands nearest target
// under sp's metric. Reports false when every candidate's trajectory was
// invalid. k ≤ 1 degenerates to a single undirected draw.
func BestControl(
	p *Propagator,
	cs *Sampler,
	sp state.Space,
	v state.Validity,
	s, target state.State,
	k int,
) (best state.Control, duration float64, end state.State, ok bool) {
	if k < 1 {
		k = 1
	}
	candidate := make(state.Control, p.model.ControlDimension())
	reached := make(state.State, len(s))
	bestDist := 0.0
	for i := 0; i < k; i++ {
		cs.SampleControl(candidate)
		d := cs.SampleDuration()
		if !p.PropagateValid(s, candidate, d, v, reached) {
			continue
		}
		dist := sp.Distance(reached, target)
		if !ok || dist < bestDist {
			ok = true
			bestDist = dist
			best = candidate.Clone()
			duration = d
			end = reached.Clone()
		}
	}

	return best, duration, end, ok
}

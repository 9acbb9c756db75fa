// Package state defines the configuration-space primitives consumed by the
// vox-nav planners: states, controls, bounded spaces, samplers, validity
// oracles and optimization objectives.
//
// Overview:
//
//   - A State is an opaque point in configuration space, stored as a flat
//     float64 slice whose layout is interpreted by the owning Space.
//   - A Space provides sampling, distance and interpolation over states,
//     plus the Lebesgue measure of its bounds (needed by the RGG
//     connection-radius formulas in package planner).
//   - Two concrete spaces ship with the module: RealVectorSpace (Euclidean
//     R^n) and SE2Space (planar position + wrapped yaw). Both satisfy the
//     same Space interface, so planner variants share one code path instead
//     of near-duplicate per-variant implementations.
//   - Samplers draw candidate states: uniform over bounds, validity-gated
//     rejection sampling, and informed path-length sampling once a solution
//     of finite cost exists.
//   - Validity is the collision oracle: IsValid(state) reports whether a
//     state is free. The planner treats it as opaque; package occupancy
//     provides a voxel-grid implementation.
//
// Error handling (sentinel):
//
//   - ErrZeroDimension    — a space or bounds with no dimensions.
//   - ErrBoundsMismatch   — low/high slices of differing length.
//   - ErrInvertedBounds   — a lower bound strictly above its upper bound.
//   - ErrDimensionMismatch — a state of the wrong width for its space.
//
// A degenerate (zero-volume) bound is NOT an error: sampling such a bound
// yields boundary-clamped states, per the planner contract.
//
// Thread safety: Space implementations are immutable after construction and
// safe for concurrent use. Samplers hold a private rand.Rand and are NOT
// safe for concurrent use; the planner allocates one sampler per worker.
package state

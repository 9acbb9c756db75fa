// Package dynamics provides forward simulation of control inputs: the
// mechanism by which the control roadmap respects vehicle dynamics instead
// of connecting samples with straight lines.
//
// A Model defines one integration step of a vehicle (unicycle, kinematic
// bicycle, or an n-dimensional velocity integrator). A Propagator wraps a
// model with a fixed integration step and offers two entry points:
//
//   - Propagate:      integrate a control for a duration.
//   - PropagateValid: integrate while checking every intermediate state
//     against a validity oracle; reports failure if any substate (or the
//     endpoint) is invalid, in which case the caller must discard the
//     whole candidate — no partial or clipped segments.
//
// Sampler draws random (control, duration) candidates inside control
// bounds, and BestControl implements directed expansion: draw k candidates
// toward a target and keep the one whose endpoint lands nearest it.
//
// Models clamp controls into their bounds before integrating, so bounded
// steering and acceleration hold by construction.
package dynamics

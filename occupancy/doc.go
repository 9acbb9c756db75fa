// Package occupancy provides a voxel-grid validity oracle: a queryable
// collision representation the planner consumes through state.Validity.
//
// A Grid discretizes an axis-aligned world region into cubic cells of a
// fixed resolution. Cells are marked occupied either individually, from a
// 2D integer raster (value ≥ threshold ⇒ occupied), or by axis-aligned
// boxes in world coordinates. IsValid(state) reports whether the state's
// position falls in a free cell; positions outside the mapped region count
// as free, matching the sparse-map convention of the occupancy pipelines
// this stands in for (unmapped space is unknown, and unknown is traversable
// at this layer — clearance policies live with the narrow-phase checker,
// which is out of scope here).
//
// Grids are immutable once sealed by handing them to a planner; the
// mutation helpers exist for scenario construction. No internal locking.
//
// Errors (sentinel):
//
//   - ErrBadResolution  — resolution is zero or negative.
//   - ErrEmptyGrid      — zero cells along any axis.
//   - ErrNonRectangular — raster rows of differing lengths.
package occupancy

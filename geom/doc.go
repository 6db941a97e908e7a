// Package geom provides integer lattice geometry for grid-walking code:
// points, axis-aligned boxes and their lattice enumerations.
//
// What:
//
//   - Point2D / Point3D: comparable value types (usable as map keys) with
//     component-wise arithmetic, Manhattan, Chebyshev and axial-hex distances.
//   - Rect2D / Rect3D: inclusive axis-aligned bounding boxes with containment,
//     intersection, expansion, padding and row-major point iteration.
//
// Conventions:
//
//   - X grows to the right, Y grows downward (screen coordinates), which is
//     what the direction package assumes for Up/Down.
//   - Box bounds are inclusive on every axis, so a box whose Min equals its
//     Max is a single cell with Width()==Height()==1.
//   - Intersection treats touching boxes (shared edge or corner) as
//     intersecting; the result is the degenerate shared slice. Callers that
//     need strict interior overlap filter the result themselves.
//
// Complexity:
//
//   - All point operations: O(1).
//   - Rect Contains/Intersection/Expand/Pad: O(1).
//   - Rect Points: O(Area) lazily, O(1) memory.
//
// Errors:
//
//   - ErrNoPoints: a bounding box was requested for an empty point list.
//   - ErrNonPositiveSize: a box was requested with width/height/depth ≤ 0.
package geom

package geom

import "errors"

// Sentinel errors for box construction.
var (
	// ErrNoPoints indicates a bounding box was requested for zero points.
	ErrNoPoints = errors.New("geom: at least one point is required")
	// ErrNonPositiveSize indicates a non-positive width, height or depth.
	ErrNonPositiveSize = errors.New("geom: box dimensions must be positive")
)

package geom

import (
	"fmt"
	"iter"
)

// Rect3D is an axis-aligned cuboid with inclusive Min and Max corners.
type Rect3D struct {
	Min, Max Point3D
}

// NewRect3D returns the box spanned by two opposite corners in any order.
func NewRect3D(a, b Point3D) Rect3D {
	return Rect3D{
		Min: Point3D{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)},
		Max: Point3D{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)},
	}
}

// BoundingRect3D returns the smallest box containing every point in pts.
// Returns ErrNoPoints if pts is empty.
func BoundingRect3D(pts ...Point3D) (Rect3D, error) {
	if len(pts) == 0 {
		return Rect3D{}, ErrNoPoints
	}
	r := Rect3D{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r = r.Expand(p)
	}

	return r, nil
}

// BoxFromSize returns the box at origin with the given inclusive extents.
func BoxFromSize(origin Point3D, width, height, depth int) (Rect3D, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return Rect3D{}, fmt.Errorf("%w: width=%d height=%d depth=%d", ErrNonPositiveSize, width, height, depth)
	}

	return Rect3D{
		Min: origin,
		Max: Point3D{origin.X + width - 1, origin.Y + height - 1, origin.Z + depth - 1},
	}, nil
}

// Width is the number of lattice columns, Max.X-Min.X+1.
func (r Rect3D) Width() int { return r.Max.X - r.Min.X + 1 }

// Height is the number of lattice rows, Max.Y-Min.Y+1.
func (r Rect3D) Height() int { return r.Max.Y - r.Min.Y + 1 }

// Depth is the number of lattice layers, Max.Z-Min.Z+1.
func (r Rect3D) Depth() int { return r.Max.Z - r.Min.Z + 1 }

// Volume is the number of lattice points in r.
func (r Rect3D) Volume() int { return r.Width() * r.Height() * r.Depth() }

// Contains reports whether p lies inside r, bounds included.
func (r Rect3D) Contains(p Point3D) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y &&
		p.Z >= r.Min.Z && p.Z <= r.Max.Z
}

// ContainsRect reports whether o lies entirely inside r.
// Checking the two extreme corners is equivalent to checking all eight.
func (r Rect3D) ContainsRect(o Rect3D) bool {
	return r.Contains(o.Min) && r.Contains(o.Max)
}

// Intersection returns the overlap of r and o, or false when they are
// disjoint on any axis. Touching faces, edges and corners count as overlap.
func (r Rect3D) Intersection(o Rect3D) (Rect3D, bool) {
	out := Rect3D{
		Min: Point3D{max(r.Min.X, o.Min.X), max(r.Min.Y, o.Min.Y), max(r.Min.Z, o.Min.Z)},
		Max: Point3D{min(r.Max.X, o.Max.X), min(r.Max.Y, o.Max.Y), min(r.Max.Z, o.Max.Z)},
	}
	if out.Min.X > out.Max.X || out.Min.Y > out.Max.Y || out.Min.Z > out.Max.Z {
		return Rect3D{}, false
	}

	return out, true
}

// Expand returns the smallest box containing r and p.
func (r Rect3D) Expand(p Point3D) Rect3D {
	return Rect3D{
		Min: Point3D{min(r.Min.X, p.X), min(r.Min.Y, p.Y), min(r.Min.Z, p.Z)},
		Max: Point3D{max(r.Max.X, p.X), max(r.Max.Y, p.Y), max(r.Max.Z, p.Z)},
	}
}

// Pad grows r by n on every side, with the same collapse rule as Rect2D.Pad.
func (r Rect3D) Pad(n int) Rect3D {
	x0, x1 := padAxis(r.Min.X, r.Max.X, n)
	y0, y1 := padAxis(r.Min.Y, r.Max.Y, n)
	z0, z1 := padAxis(r.Min.Z, r.Max.Z, n)

	return Rect3D{Min: Point3D{x0, y0, z0}, Max: Point3D{x1, y1, z1}}
}

// Points yields every lattice point of r, z outermost and x innermost.
func (r Rect3D) Points() iter.Seq[Point3D] {
	return func(yield func(Point3D) bool) {
		for z := r.Min.Z; z <= r.Max.Z; z++ {
			for y := r.Min.Y; y <= r.Max.Y; y++ {
				for x := r.Min.X; x <= r.Max.X; x++ {
					if !yield(Point3D{x, y, z}) {
						return
					}
				}
			}
		}
	}
}

// String renders r as "[(x0,y0,z0)..(x1,y1,z1)]".
func (r Rect3D) String() string {
	return fmt.Sprintf("[%v..%v]", r.Min, r.Max)
}

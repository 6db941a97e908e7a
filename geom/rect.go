package geom

import (
	"fmt"
	"iter"
)

// Rect2D is an axis-aligned box with inclusive Min and Max corners.
// Every constructor in this package guarantees Min.X ≤ Max.X and Min.Y ≤ Max.Y;
// a literal Rect2D built by hand must keep that invariant itself.
type Rect2D struct {
	Min, Max Point2D
}

// NewRect2D returns the box spanned by two opposite corners in any order.
func NewRect2D(a, b Point2D) Rect2D {
	return Rect2D{
		Min: Point2D{min(a.X, b.X), min(a.Y, b.Y)},
		Max: Point2D{max(a.X, b.X), max(a.Y, b.Y)},
	}
}

// BoundingRect2D returns the smallest box containing every point in pts.
// Returns ErrNoPoints if pts is empty.
// Complexity: O(len(pts)).
func BoundingRect2D(pts ...Point2D) (Rect2D, error) {
	if len(pts) == 0 {
		return Rect2D{}, ErrNoPoints
	}
	r := Rect2D{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r = r.Expand(p)
	}

	return r, nil
}

// RectFromSize returns the box with top-left corner origin and the given
// inclusive width and height. Returns ErrNonPositiveSize if either is ≤ 0.
func RectFromSize(origin Point2D, width, height int) (Rect2D, error) {
	if width <= 0 || height <= 0 {
		return Rect2D{}, fmt.Errorf("%w: width=%d height=%d", ErrNonPositiveSize, width, height)
	}

	return Rect2D{Min: origin, Max: Point2D{origin.X + width - 1, origin.Y + height - 1}}, nil
}

// Width is the number of lattice columns, Max.X-Min.X+1.
func (r Rect2D) Width() int { return r.Max.X - r.Min.X + 1 }

// Height is the number of lattice rows, Max.Y-Min.Y+1.
func (r Rect2D) Height() int { return r.Max.Y - r.Min.Y + 1 }

// Area is Width()*Height(), i.e. the number of lattice points in r.
func (r Rect2D) Area() int { return r.Width() * r.Height() }

// Contains reports whether p lies inside r, bounds included.
func (r Rect2D) Contains(p Point2D) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether every corner of o lies inside r.
func (r Rect2D) ContainsRect(o Rect2D) bool {
	for _, c := range o.Corners() {
		if !r.Contains(c) {
			return false
		}
	}

	return true
}

// Corners returns the four corners clockwise from Min:
// top-left, top-right, bottom-right, bottom-left.
func (r Rect2D) Corners() [4]Point2D {
	return [4]Point2D{
		r.Min,
		{r.Max.X, r.Min.Y},
		r.Max,
		{r.Min.X, r.Max.Y},
	}
}

// Intersection returns the overlap of r and o. The second result is false
// when the boxes are disjoint on any axis. Boxes that only touch along an
// edge or at a corner do intersect: the result is that shared slice.
func (r Rect2D) Intersection(o Rect2D) (Rect2D, bool) {
	out := Rect2D{
		Min: Point2D{max(r.Min.X, o.Min.X), max(r.Min.Y, o.Min.Y)},
		Max: Point2D{min(r.Max.X, o.Max.X), min(r.Max.Y, o.Max.Y)},
	}
	if out.Min.X > out.Max.X || out.Min.Y > out.Max.Y {
		return Rect2D{}, false
	}

	return out, true
}

// Overlaps reports whether r and o share at least one lattice point.
func (r Rect2D) Overlaps(o Rect2D) bool {
	_, ok := r.Intersection(o)
	return ok
}

// Union returns the smallest box containing both r and o.
func (r Rect2D) Union(o Rect2D) Rect2D {
	return r.Expand(o.Min).Expand(o.Max)
}

// Expand returns the smallest box containing r and p. It never shrinks r.
func (r Rect2D) Expand(p Point2D) Rect2D {
	return Rect2D{
		Min: Point2D{min(r.Min.X, p.X), min(r.Min.Y, p.Y)},
		Max: Point2D{max(r.Max.X, p.X), max(r.Max.Y, p.Y)},
	}
}

// Pad grows r by n on every side. A negative n shrinks it; an axis that
// would invert collapses onto its midpoint so Min ≤ Max still holds.
func (r Rect2D) Pad(n int) Rect2D {
	x0, x1 := padAxis(r.Min.X, r.Max.X, n)
	y0, y1 := padAxis(r.Min.Y, r.Max.Y, n)

	return Rect2D{Min: Point2D{x0, y0}, Max: Point2D{x1, y1}}
}

// Clamp returns the point of r nearest to p.
func (r Rect2D) Clamp(p Point2D) Point2D {
	return Point2D{
		min(max(p.X, r.Min.X), r.Max.X),
		min(max(p.Y, r.Min.Y), r.Max.Y),
	}
}

// Points yields every lattice point of r in row-major order (y outer, x inner).
// The sequence is lazy and may be ranged over any number of times.
func (r Rect2D) Points() iter.Seq[Point2D] {
	return func(yield func(Point2D) bool) {
		for y := r.Min.Y; y <= r.Max.Y; y++ {
			for x := r.Min.X; x <= r.Max.X; x++ {
				if !yield(Point2D{x, y}) {
					return
				}
			}
		}
	}
}

// String renders r as "[(x0,y0)..(x1,y1)]".
func (r Rect2D) String() string {
	return fmt.Sprintf("[%v..%v]", r.Min, r.Max)
}

func padAxis(lo, hi, n int) (int, int) {
	a, b := lo-n, hi+n
	if a > b {
		mid := lo + (hi-lo)/2
		return mid, mid
	}

	return a, b
}

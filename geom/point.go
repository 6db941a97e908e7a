package geom

import "fmt"

// Point2D is an integer lattice point (or vector) in the plane.
// It is comparable and therefore usable as a map key.
type Point2D struct {
	X, Y int
}

// Point3D is an integer lattice point (or vector) in space.
type Point3D struct {
	X, Y, Z int
}

// Origin2D and Origin3D are the zero points.
var (
	Origin2D = Point2D{}
	Origin3D = Point3D{}
)

// Pt is a short constructor for Point2D.
func Pt(x, y int) Point2D {
	return Point2D{X: x, Y: y}
}

// Pt3 is a short constructor for Point3D.
func Pt3(x, y, z int) Point3D {
	return Point3D{X: x, Y: y, Z: z}
}

// Add returns p+q component-wise.
func (p Point2D) Add(q Point2D) Point2D {
	return Point2D{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q component-wise.
func (p Point2D) Sub(q Point2D) Point2D {
	return Point2D{p.X - q.X, p.Y - q.Y}
}

// Scale returns k*p.
func (p Point2D) Scale(k int) Point2D {
	return Point2D{k * p.X, k * p.Y}
}

// Neg returns -p.
func (p Point2D) Neg() Point2D {
	return Point2D{-p.X, -p.Y}
}

// Distance returns the Manhattan (taxicab) distance between p and q.
// Complexity: O(1).
func (p Point2D) Distance(q Point2D) int {
	return AbsDiff(p.X, q.X) + AbsDiff(p.Y, q.Y)
}

// Chebyshev returns the king-move distance max(|dx|, |dy|).
func (p Point2D) Chebyshev(q Point2D) int {
	return max(AbsDiff(p.X, q.X), AbsDiff(p.Y, q.Y))
}

// HexDistance returns the number of hex steps between p and q when both are
// read as axial hex coordinates (q = X, r = Y), the system direction.Dir6 uses.
//
//	d = (|dq| + |dr| + |dq+dr|) / 2
func (p Point2D) HexDistance(q Point2D) int {
	dq, dr := q.X-p.X, q.Y-p.Y
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

// Toward returns p moved one step toward q on each axis that differs.
func (p Point2D) Toward(q Point2D) Point2D {
	return Point2D{p.X + Sign(q.X-p.X), p.Y + Sign(q.Y-p.Y)}
}

// String renders p as "(x,y)".
func (p Point2D) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p+q component-wise.
func (p Point3D) Add(q Point3D) Point3D {
	return Point3D{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p-q component-wise.
func (p Point3D) Sub(q Point3D) Point3D {
	return Point3D{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Scale returns k*p.
func (p Point3D) Scale(k int) Point3D {
	return Point3D{k * p.X, k * p.Y, k * p.Z}
}

// Neg returns -p.
func (p Point3D) Neg() Point3D {
	return Point3D{-p.X, -p.Y, -p.Z}
}

// Distance returns the Manhattan distance between p and q.
func (p Point3D) Distance(q Point3D) int {
	return AbsDiff(p.X, q.X) + AbsDiff(p.Y, q.Y) + AbsDiff(p.Z, q.Z)
}

// Chebyshev returns max(|dx|, |dy|, |dz|).
func (p Point3D) Chebyshev(q Point3D) int {
	return max(AbsDiff(p.X, q.X), AbsDiff(p.Y, q.Y), AbsDiff(p.Z, q.Z))
}

// String renders p as "(x,y,z)".
func (p Point3D) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

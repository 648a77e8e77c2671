package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point represents a 2D or 3D point or vector. Z is 0 for 2D use.
//
// Point is a value type: every method returns a new Point.
type Point struct {
	X, Y, Z float64
}

// Pt is a convenience function to create a 2D Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Pt3 is a convenience function to create a 3D Point.
func Pt3(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// vec converts the point to a gonum vector.
func (p Point) vec() r3.Vec { return r3.Vec(p) }

// fromVec converts a gonum vector to a Point.
func fromVec(v r3.Vec) Point { return Point(v) }

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return fromVec(r3.Add(p.vec(), q.vec()))
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return fromVec(r3.Sub(p.vec(), q.vec()))
}

// Scale returns the point scaled by a scalar.
func (p Point) Scale(s float64) Point {
	return fromVec(r3.Scale(s, p.vec()))
}

// ScaleXYZ returns the point scaled independently on each axis.
func (p Point) ScaleXYZ(sx, sy, sz float64) Point {
	return Point{X: p.X * sx, Y: p.Y * sy, Z: p.Z * sz}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s, Z: p.Z / s}
}

// Neg returns the negation of the point.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y, Z: -p.Z}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return r3.Dot(p.vec(), q.vec())
}

// Cross returns the 3D cross product.
func (p Point) Cross(q Point) Point {
	return fromVec(r3.Cross(p.vec(), q.vec()))
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return r3.Norm(p.vec())
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float64 {
	return r3.Norm2(p.vec())
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length.
func (p Point) Normalize() Point {
	if p.LengthSquared() == 0 {
		return Point{}
	}
	return fromVec(r3.Unit(p.vec()))
}

// Rotate returns the point rotated by angle radians around the Z axis.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
		Z: p.Z,
	}
}

// RotateAbout returns the point rotated by angle radians about an axis
// through the origin.
func (p Point) RotateAbout(angle float64, axis Point) Point {
	return fromVec(r3.Rotate(p.vec(), angle, axis.vec()))
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return p.Add(q.Sub(p).Scale(t))
}

// IsZero returns true if every component is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0 && p.Z == 0
}

// Round rounds every component to precision decimal places.
func (p Point) Round(precision int) Point {
	return Point{
		X: Round(p.X, precision),
		Y: Round(p.Y, precision),
		Z: Round(p.Z, precision),
	}
}

// IsEqualTo returns true if the points are equal after rounding to
// precision decimal places.
func (p Point) IsEqualTo(q Point, precision int) bool {
	return p.Round(precision) == q.Round(precision)
}

// IsWithinDelta returns true if every component differs by at most delta.
func (p Point) IsWithinDelta(q Point, delta float64) bool {
	return math.Abs(p.X-q.X) <= delta &&
		math.Abs(p.Y-q.Y) <= delta &&
		math.Abs(p.Z-q.Z) <= delta
}

// ToPolar returns the XY magnitude and angle of the point.
func (p Point) ToPolar() (mag, angle float64) {
	return math.Hypot(p.X, p.Y), math.Atan2(p.Y, p.X)
}

// FromPolar creates a 2D point from a magnitude and angle.
func FromPolar(mag, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{X: mag * cos, Y: mag * sin}
}

// ToSpherical returns the radius, polar angle theta (from +Z) and azimuth
// phi (from +X in the XY plane) of the point.
func (p Point) ToSpherical() (r, theta, phi float64) {
	r = p.Length()
	if r == 0 {
		return 0, 0, 0
	}
	return r, math.Acos(clamp(p.Z/r, -1, 1)), math.Atan2(p.Y, p.X)
}

// FromSpherical creates a point from spherical coordinates.
func FromSpherical(r, theta, phi float64) Point {
	sinT, cosT := math.Sincos(theta)
	sinP, cosP := math.Sincos(phi)
	return Point{
		X: r * sinT * cosP,
		Y: r * sinT * sinP,
		Z: r * cosT,
	}
}

// Component returns the coordinate for axis 0 (X), 1 (Y) or 2 (Z).
func (p Point) Component(axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// WithComponent returns a copy of p with the coordinate for axis replaced.
func (p Point) WithComponent(axis int, v float64) Point {
	switch axis {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	default:
		p.Z = v
	}
	return p
}

// Map applies fn to every coordinate.
func (p Point) Map(fn func(float64) float64) Point {
	return Point{X: fn(p.X), Y: fn(p.Y), Z: fn(p.Z)}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

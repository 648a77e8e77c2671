package geom

import "fmt"

// Plane is an infinite plane through a point with a unit normal.
//
// Two planes are equal when they are parallel and coincident, regardless of
// which point or normal sign was used to build them.
type Plane struct {
	p, n Point
}

// NewPlane creates a plane through p with normal n. The normal is
// normalized. Returns ErrDegeneratePlane for a zero normal.
func NewPlane(p, n Point) (Plane, error) {
	if RoundZero(n.Length(), DefaultPrecision) {
		return Plane{}, ErrDegeneratePlane
	}
	return Plane{p: p, n: n.Normalize()}, nil
}

// MustPlane is like NewPlane but panics on error.
func MustPlane(p, n Point) Plane {
	pl, err := NewPlane(p, n)
	if err != nil {
		panic(err)
	}
	return pl
}

// NewPlaneFromPoints creates the plane through three points. The normal
// follows the right-hand rule for p1, p2, p3.
// Returns ErrDegeneratePlane if the points are collinear.
func NewPlaneFromPoints(p1, p2, p3 Point) (Plane, error) {
	n := p2.Sub(p1).Cross(p3.Sub(p1))
	pl, err := NewPlane(p1, n)
	if err != nil {
		return Plane{}, fmt.Errorf("%w: points are collinear", err)
	}
	return pl, nil
}

// XY returns the plane z = 0 with normal +Z.
func XY() Plane { return Plane{n: Point{Z: 1}} }

// Point returns the point the plane was built through.
func (pl Plane) Point() Point { return pl.p }

// Normal returns the unit normal.
func (pl Plane) Normal() Point { return pl.n }

// DistanceToPoint returns the signed distance from the plane to p,
// positive on the side the normal points to.
func (pl Plane) DistanceToPoint(p Point) float64 {
	return pl.n.Dot(p.Sub(pl.p))
}

// HasPointOn reports whether p lies in the plane.
func (pl Plane) HasPointOn(p Point, precision int) bool {
	return RoundZero(pl.DistanceToPoint(p), precision)
}

// IsParallelTo reports whether the planes have parallel normals.
func (pl Plane) IsParallelTo(pl2 Plane, precision int) bool {
	return RoundZero(pl.n.Cross(pl2.n).Length(), precision)
}

// IsEqualTo reports whether the planes are parallel and coincident.
func (pl Plane) IsEqualTo(pl2 Plane, precision int) bool {
	return pl.IsParallelTo(pl2, precision) && pl.HasPointOn(pl2.p, precision)
}

// PointProjection returns the orthogonal projection of p onto the plane.
func (pl Plane) PointProjection(p Point) Point {
	return p.Sub(pl.n.Scale(pl.DistanceToPoint(p)))
}

// PointReflection returns p mirrored through the plane.
func (pl Plane) PointReflection(p Point) Point {
	return p.Sub(pl.n.Scale(2 * pl.DistanceToPoint(p)))
}

// LineIntersect returns where the infinite line through l meets the plane.
// ok is false when the line is parallel to the plane (including lying in
// it). Use l.HasPointOn to check the point against the line's ends.
func (pl Plane) LineIntersect(l Line, precision int) (Point, bool) {
	u := l.Direction()
	denom := pl.n.Dot(u)
	if RoundZero(denom, precision) {
		return Point{}, false
	}
	t := pl.n.Dot(pl.p.Sub(l.p1)) / denom
	return l.p1.Add(u.Scale(t)), true
}

// IntersectsWith returns the infinite line (ends 0) where two planes meet.
// ok is false when the planes are parallel.
func (pl Plane) IntersectsWith(pl2 Plane, precision int) (Line, bool) {
	u := pl.n.Cross(pl2.n)
	if RoundZero(u.Length(), precision) {
		return Line{}, false
	}
	d1 := pl.n.Dot(pl.p)
	d2 := pl2.n.Dot(pl2.p)
	uu := u.LengthSquared()
	p := pl2.n.Cross(u).Scale(d1).Add(u.Cross(pl.n).Scale(d2)).Div(uu)
	return Line{p1: p, p2: p.Add(u.Normalize()), ends: 0}, true
}

// String returns a human readable representation of the plane.
func (pl Plane) String() string {
	return fmt.Sprintf("Plane{p=%v, n=%v}", pl.p, pl.n)
}

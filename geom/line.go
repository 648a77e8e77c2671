package geom

import (
	"fmt"
	"math"
)

// Line is a line through two points.
//
// Ends sets how far the line extends:
//
//	0: infinite in both directions, p1 and p2 only give the direction
//	1: a ray starting at p1, passing through p2 to infinity
//	2: the finite segment p1 to p2
//
// Line is a value type. The setters return a new Line and every query is a
// pure function of p1, p2 and ends.
type Line struct {
	p1, p2 Point
	ends   int
}

// NewLine creates a line through p1 and p2.
// Returns ErrDegenerateLine if the points coincide at DefaultPrecision.
func NewLine(p1, p2 Point, ends int) (Line, error) {
	if ends < 0 || ends > 2 {
		return Line{}, fmt.Errorf("%w: got %d", ErrInvalidEnds, ends)
	}
	if p1.IsEqualTo(p2, DefaultPrecision) {
		return Line{}, fmt.Errorf("%w: %v", ErrDegenerateLine, p1)
	}
	return Line{p1: p1, p2: p2, ends: ends}, nil
}

// MustLine is like NewLine but panics on error.
// It is intended for lines built from constants.
func MustLine(p1, p2 Point, ends int) Line {
	l, err := NewLine(p1, p2, ends)
	if err != nil {
		panic(err)
	}
	return l
}

// NewLineFromAngle creates a 2D line starting at p1 with the given length
// and angle in radians.
func NewLineFromAngle(p1 Point, length, angle float64, ends int) (Line, error) {
	return NewLine(p1, p1.Add(FromPolar(length, angle)), ends)
}

// NewLineFromSpherical creates a 3D line starting at p1 with the given
// length, polar angle theta (from +Z) and azimuth phi.
func NewLineFromSpherical(p1 Point, length, theta, phi float64, ends int) (Line, error) {
	return NewLine(p1, p1.Add(FromSpherical(length, theta, phi)), ends)
}

// NewLineFromDirection creates a line starting at p1 along direction with
// the given length. The direction does not need to be normalized.
func NewLineFromDirection(p1, direction Point, length float64, ends int) (Line, error) {
	return NewLine(p1, p1.Add(direction.Normalize().Scale(length)), ends)
}

// P1 returns the first point.
func (l Line) P1() Point { return l.p1 }

// P2 returns the second point.
func (l Line) P2() Point { return l.p2 }

// Ends returns the ends flag.
func (l Line) Ends() int { return l.ends }

// SetP1 returns a copy of the line with p1 replaced.
func (l Line) SetP1(p Point) (Line, error) { return NewLine(p, l.p2, l.ends) }

// SetP2 returns a copy of the line with p2 replaced.
func (l Line) SetP2(p Point) (Line, error) { return NewLine(l.p1, p, l.ends) }

// SetEnds returns a copy of the line with the ends flag replaced.
func (l Line) SetEnds(ends int) (Line, error) { return NewLine(l.p1, l.p2, ends) }

// Vector returns p2 - p1.
func (l Line) Vector() Point { return l.p2.Sub(l.p1) }

// Direction returns the unit vector from p1 to p2.
func (l Line) Direction() Point { return l.Vector().Normalize() }

// Length returns the distance between p1 and p2.
func (l Line) Length() float64 { return l.p1.Distance(l.p2) }

// Angle returns the 2D angle of the line from p1 to p2.
func (l Line) Angle() float64 {
	v := l.Vector()
	return math.Atan2(v.Y, v.X)
}

// Midpoint returns the point halfway between p1 and p2.
func (l Line) Midpoint() Point { return l.p1.Lerp(l.p2, 0.5) }

// Reverse returns the line with p1 and p2 swapped.
// For a ray the result starts at the old p2.
func (l Line) Reverse() Line {
	return Line{p1: l.p2, p2: l.p1, ends: l.ends}
}

// PointAtPercent returns p1 + t*(p2 - p1).
func (l Line) PointAtPercent(t float64) Point { return l.p1.Lerp(l.p2, t) }

// PointAtLength returns the point dist along the line from p1 toward p2.
func (l Line) PointAtLength(dist float64) Point {
	return l.p1.Add(l.Direction().Scale(dist))
}

// along returns the signed distance of p's projection from p1.
func (l Line) along(p Point) float64 {
	return p.Sub(l.p1).Dot(l.Direction())
}

// DistanceToPoint returns the perpendicular distance from p to the
// infinite line.
func (l Line) DistanceToPoint(p Point) float64 {
	return p.Sub(l.p1).Cross(l.Direction()).Length()
}

// PointProjection returns the orthogonal projection of p onto the infinite
// line.
func (l Line) PointProjection(p Point) Point {
	return l.PointAtLength(l.along(p))
}

// ClipPoint returns the point on the line (within its ends) closest to p.
func (l Line) ClipPoint(p Point) Point {
	s := l.along(p)
	if l.ends >= 1 && s < 0 {
		s = 0
	}
	if l.ends == 2 && s > l.Length() {
		s = l.Length()
	}
	return l.PointAtLength(s)
}

// HasPointAlong reports whether p lies on the infinite line through p1 and
// p2, ignoring ends.
func (l Line) HasPointAlong(p Point, precision int) bool {
	return RoundZero(l.DistanceToPoint(p), precision)
}

// HasPointOn reports whether p lies on the line within its ends.
func (l Line) HasPointOn(p Point, precision int) bool {
	if !l.HasPointAlong(p, precision) {
		return false
	}
	return l.withinEnds(l.along(p), precision)
}

// withinEnds reports whether the signed distance s from p1 is inside the
// line's extent.
func (l Line) withinEnds(s float64, precision int) bool {
	if l.ends >= 1 && Round(s, precision) < 0 {
		return false
	}
	if l.ends == 2 && Round(s-l.Length(), precision) > 0 {
		return false
	}
	return true
}

// IsParallelTo reports whether the lines have the same or opposite
// direction.
func (l Line) IsParallelTo(l2 Line, precision int) bool {
	return RoundZero(l.Direction().Cross(l2.Direction()).Length(), precision)
}

// IsCollinearTo reports whether both lines lie on the same infinite line.
func (l Line) IsCollinearTo(l2 Line, precision int) bool {
	return l.IsParallelTo(l2, precision) && l.HasPointAlong(l2.p1, precision)
}

// IsEqualTo reports whether the lines describe the same set of points.
//
// Segments match with either point order, rays need the same start and
// direction, and infinite lines only need to be collinear.
func (l Line) IsEqualTo(l2 Line, precision int) bool {
	if l.ends != l2.ends {
		return false
	}
	switch l.ends {
	case 0:
		return l.IsCollinearTo(l2, precision)
	case 1:
		return l.p1.IsEqualTo(l2.p1, precision) &&
			l.Direction().IsEqualTo(l2.Direction(), precision)
	default:
		return (l.p1.IsEqualTo(l2.p1, precision) && l.p2.IsEqualTo(l2.p2, precision)) ||
			(l.p1.IsEqualTo(l2.p2, precision) && l.p2.IsEqualTo(l2.p1, precision))
	}
}

// ShadowOf projects l2's points onto this infinite line. The result keeps
// l2's ends. Returns ErrDegenerateLine when l2 is perpendicular to l.
func (l Line) ShadowOf(l2 Line) (Line, error) {
	return NewLine(l.PointProjection(l2.p1), l.PointProjection(l2.p2), l2.ends)
}

// OffsetDirection selects which side Offset moves a line to.
type OffsetDirection int

const (
	// OffsetLeft moves the line toward -X.
	OffsetLeft OffsetDirection = iota
	// OffsetRight moves the line toward +X.
	OffsetRight
	// OffsetTop moves the line toward +Y.
	OffsetTop
	// OffsetBottom moves the line toward -Y.
	OffsetBottom
	// OffsetPositive moves the line to the right of its direction: outward
	// for the edges of a counter-clockwise polygon.
	OffsetPositive
	// OffsetNegative moves the line to the left of its direction.
	OffsetNegative
)

// String returns the direction name.
func (d OffsetDirection) String() string {
	switch d {
	case OffsetLeft:
		return "left"
	case OffsetRight:
		return "right"
	case OffsetTop:
		return "top"
	case OffsetBottom:
		return "bottom"
	case OffsetPositive:
		return "positive"
	case OffsetNegative:
		return "negative"
	default:
		return fmt.Sprintf("OffsetDirection(%d)", int(d))
	}
}

// Offset returns the 2D line moved perpendicular to itself by dist.
//
// Cardinal directions pick one of the two perpendiculars from the quadrant
// of the line's normalized angle. The counter-clockwise perpendicular of a
// line in quadrant 0 points up and left, in quadrant 1 down and left, in
// quadrant 2 down and right, and in quadrant 3 up and right.
func (l Line) Offset(direction OffsetDirection, dist float64) Line {
	u := l.Direction()
	ccw := Point{X: -u.Y, Y: u.X}
	cw := Point{X: u.Y, Y: -u.X}

	var n Point
	switch direction {
	case OffsetPositive:
		n = cw
	case OffsetNegative:
		n = ccw
	default:
		n = cw
		if ccwMatches(quadrant(l.Angle()), direction) {
			n = ccw
		}
	}
	delta := n.Scale(dist)
	return Line{p1: l.p1.Add(delta), p2: l.p2.Add(delta), ends: l.ends}
}

// quadrant buckets an angle normalized to [0, 2π) into 0..3.
func quadrant(angle float64) int {
	a := NormAngle(angle)
	q := int(a / (math.Pi / 2))
	if q > 3 {
		q = 3
	}
	return q
}

// ccwMatches reports whether the counter-clockwise perpendicular is the
// requested cardinal direction for a line in quadrant q.
func ccwMatches(q int, d OffsetDirection) bool {
	switch q {
	case 0:
		return d == OffsetLeft || d == OffsetTop
	case 1:
		return d == OffsetLeft || d == OffsetBottom
	case 2:
		return d == OffsetRight || d == OffsetBottom
	default:
		return d == OffsetRight || d == OffsetTop
	}
}

// NormAngle normalizes an angle to [0, 2π).
func NormAngle(angle float64) float64 {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

// Intersection describes how two lines meet.
type Intersection struct {
	// Point is the intersection point. Only valid when HasPoint is true.
	// For collinear lines it is a point in the overlap, or the midpoint
	// between the closest ends when they do not overlap.
	Point Point

	// HasPoint is false for parallel or skew lines.
	HasPoint bool

	// Collinear is true when both lines lie on the same infinite line.
	Collinear bool

	// OnLines is true when Point is within the ends of both lines.
	OnLines bool
}

// IntersectsWith computes the intersection of two lines. The result does
// not depend on which line is the receiver.
func (l Line) IntersectsWith(l2 Line, precision int) Intersection {
	if l.IsParallelTo(l2, precision) {
		if !l.HasPointAlong(l2.p1, precision) {
			return Intersection{}
		}
		return l.collinearIntersection(l2, precision)
	}

	u1, u2 := l.Direction(), l2.Direction()
	w0 := l.p1.Sub(l2.p1)
	b := u1.Dot(u2)
	d := u1.Dot(w0)
	e := u2.Dot(w0)
	denom := 1 - b*b
	s := (b*e - d) / denom
	t := (e - b*d) / denom

	c1 := l.p1.Add(u1.Scale(s))
	c2 := l2.p1.Add(u2.Scale(t))
	if !RoundZero(c1.Distance(c2), precision) {
		// skew lines in 3D
		return Intersection{}
	}
	p := c1.Lerp(c2, 0.5)
	return Intersection{
		Point:    p,
		HasPoint: true,
		OnLines:  l.HasPointOn(p, precision) && l2.HasPointOn(p, precision),
	}
}

// interval is a line's extent as signed distances along an axis.
type interval struct {
	lo, hi       float64
	loPt, hiPt   Point
	loInf, hiInf bool
}

// extentAlong returns l2's extent along the receiver's direction.
func (l Line) extentAlong(l2 Line) interval {
	s1, s2 := l.along(l2.p1), l.along(l2.p2)
	iv := interval{lo: s1, hi: s2, loPt: l2.p1, hiPt: l2.p2}
	if s1 > s2 {
		iv = interval{lo: s2, hi: s1, loPt: l2.p2, hiPt: l2.p1}
	}
	switch l2.ends {
	case 0:
		iv.loInf, iv.hiInf = true, true
	case 1:
		// the ray runs from p1 away from p2's side
		if s2 >= s1 {
			iv.hiInf = true
		} else {
			iv.loInf = true
		}
	}
	return iv
}

func (l Line) collinearIntersection(l2 Line, precision int) Intersection {
	a := l.extentAlong(l)
	b := l.extentAlong(l2)

	// intersect the two extents; an infinite end never narrows the other
	lo, loPt, loInf := a.lo, a.loPt, a.loInf
	if !b.loInf && (a.loInf || b.lo > a.lo) {
		lo, loPt, loInf = b.lo, b.loPt, false
	}
	hi, hiPt, hiInf := a.hi, a.hiPt, a.hiInf
	if !b.hiInf && (a.hiInf || b.hi < a.hi) {
		hi, hiPt, hiInf = b.hi, b.hiPt, false
	}

	res := Intersection{HasPoint: true, Collinear: true}
	switch {
	case loInf && hiInf:
		res.Point = l.p1.Lerp(l2.p1, 0.5)
		res.OnLines = true
	case loInf:
		res.Point = hiPt
		res.OnLines = true
	case hiInf:
		res.Point = loPt
		res.OnLines = true
	case Round(hi-lo, precision) >= 0:
		res.Point = loPt.Lerp(hiPt, 0.5)
		res.OnLines = true
	default:
		// no overlap: the gap runs from the lower extent's high end to the
		// upper extent's low end, which are hiPt and loPt here
		res.Point = hiPt.Lerp(loPt, 0.5)
	}
	return res
}

// String returns a human readable representation of the line.
func (l Line) String() string {
	return fmt.Sprintf("Line{%v, %v, ends=%d}", l.p1, l.p2, l.ends)
}

package bounds

import "github.com/gogpu/motion/geom"

// LineBounds is a wall along a line in the XY plane.
//
// The allowed side is to the left of the direction p1 -> p2, which is the
// inside of a counter-clockwise polygon. A move that crosses the line within
// its ends bounces off it; the velocity component perpendicular to the line
// is reversed. A segment or ray wall can be passed around its ends.
type LineBounds struct {
	line geom.Line
}

// NewLineBounds returns a wall along l.
func NewLineBounds(l geom.Line) LineBounds {
	return LineBounds{line: l}
}

// Line returns the wall's line.
func (b LineBounds) Line() geom.Line { return b.line }

// normal returns the unit normal pointing to the allowed side.
func (b LineBounds) normal() geom.Point {
	u := b.line.Direction()
	return geom.Pt(-u.Y, u.X).Normalize()
}

// side returns the signed distance of p from the line, positive on the
// allowed side.
func (b LineBounds) side(p geom.Point) float64 {
	d := p.Sub(b.line.P1())
	d.Z = 0
	return d.Dot(b.normal())
}

// Contains reports whether p is on the allowed side, on the line, or outside
// the wall's extent.
func (b LineBounds) Contains(p geom.Point, precision int) bool {
	if geom.Round(b.side(p), precision) >= 0 {
		return true
	}
	return !b.line.HasPointOn(b.project(p), precision)
}

// project returns the projection of p onto the line in the XY plane.
func (b LineBounds) project(p geom.Point) geom.Point {
	q := b.line.PointProjection(geom.Pt(p.X, p.Y))
	q.Z = p.Z
	return q
}

// Clip moves a point that is behind the wall onto the wall.
func (b LineBounds) Clip(p geom.Point) geom.Point {
	if b.Contains(p, geom.DefaultPrecision) {
		return p
	}
	return b.project(p)
}

// Crosses returns where the move from -> to passes through the wall.
func (b LineBounds) Crosses(from, to geom.Point, precision int) (Hit, bool) {
	sf, st := b.side(from), b.side(to)
	if geom.Round(sf, precision) < 0 || geom.Round(st, precision) >= 0 {
		return Hit{}, false
	}
	h := hitAt(from, to, max(sf/(sf-st), 0))
	if !b.line.HasPointOn(geom.Pt(h.Point.X, h.Point.Y), precision) {
		return Hit{}, false
	}
	return h, true
}

// Reflect mirrors the velocity in the wall when at is on it and the
// velocity heads through it.
func (b LineBounds) Reflect(velocity, at geom.Point, precision int) geom.Point {
	if !b.line.HasPointOn(geom.Pt(at.X, at.Y), precision) {
		return velocity
	}
	n := b.normal()
	vn := velocity.Dot(n)
	if vn >= 0 {
		return velocity
	}
	return velocity.Sub(n.Scale(2 * vn))
}

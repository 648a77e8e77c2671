package bounds

import (
	"fmt"
	"math"

	"github.com/gogpu/motion/geom"
)

// RectBounds is an axis-aligned rectangle in the XY plane.
//
// A move that reaches a corner reflects off both sides at once.
type RectBounds struct {
	Left, Bottom, Right, Top float64
}

// NewRectBounds returns the rectangle spanning [left, right] x [bottom, top].
func NewRectBounds(left, bottom, right, top float64) (RectBounds, error) {
	if left > right || bottom > top {
		return RectBounds{}, fmt.Errorf("%w: rect (%v, %v)-(%v, %v)", ErrInvalidBounds, left, bottom, right, top)
	}
	return RectBounds{Left: left, Bottom: bottom, Right: right, Top: top}, nil
}

// MustRect is like NewRectBounds but panics on error.
func MustRect(left, bottom, right, top float64) RectBounds {
	r, err := NewRectBounds(left, bottom, right, top)
	if err != nil {
		panic(err)
	}
	return r
}

// Width returns the rectangle width.
func (r RectBounds) Width() float64 { return r.Right - r.Left }

// Height returns the rectangle height.
func (r RectBounds) Height() float64 { return r.Top - r.Bottom }

// Contains reports whether p is inside or on the rectangle.
func (r RectBounds) Contains(p geom.Point, precision int) bool {
	return !beyond(r.Left, p.X, precision) && !beyond(p.X, r.Right, precision) &&
		!beyond(r.Bottom, p.Y, precision) && !beyond(p.Y, r.Top, precision)
}

// Clip moves p to the nearest point in the rectangle.
func (r RectBounds) Clip(p geom.Point) geom.Point {
	p.X = math.Max(r.Left, math.Min(r.Right, p.X))
	p.Y = math.Max(r.Bottom, math.Min(r.Top, p.Y))
	return p
}

// Crosses returns the earliest point where the move from -> to leaves the
// rectangle.
func (r RectBounds) Crosses(from, to geom.Point, precision int) (Hit, bool) {
	t := math.Inf(1)
	dx, dy := to.X-from.X, to.Y-from.Y
	if dx > 0 && beyond(to.X, r.Right, precision) {
		t = math.Min(t, (r.Right-from.X)/dx)
	}
	if dx < 0 && beyond(r.Left, to.X, precision) {
		t = math.Min(t, (r.Left-from.X)/dx)
	}
	if dy > 0 && beyond(to.Y, r.Top, precision) {
		t = math.Min(t, (r.Top-from.Y)/dy)
	}
	if dy < 0 && beyond(r.Bottom, to.Y, precision) {
		t = math.Min(t, (r.Bottom-from.Y)/dy)
	}
	if math.IsInf(t, 1) {
		return Hit{}, false
	}
	h := hitAt(from, to, math.Max(t, 0))
	// snap to the side that was hit so later tests see an exact boundary
	h.Point = r.Clip(h.Point)
	return h, true
}

// Reflect reverses each velocity component that points out through a side
// at is on. At a corner both components can reverse.
func (r RectBounds) Reflect(velocity, at geom.Point, precision int) geom.Point {
	if (geom.RoundEqual(at.X, r.Right, precision) && velocity.X > 0) ||
		(geom.RoundEqual(at.X, r.Left, precision) && velocity.X < 0) {
		velocity.X = -velocity.X
	}
	if (geom.RoundEqual(at.Y, r.Top, precision) && velocity.Y > 0) ||
		(geom.RoundEqual(at.Y, r.Bottom, precision) && velocity.Y < 0) {
		velocity.Y = -velocity.Y
	}
	return velocity
}

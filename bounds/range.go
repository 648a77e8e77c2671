package bounds

import (
	"fmt"
	"math"

	"github.com/gogpu/motion/geom"
)

// RangeBounds is a one dimensional interval on the X axis. Either end may be
// infinite. Scalar kinematics store their value in X, so a RangeBounds is
// the natural boundary for a single degree of freedom.
type RangeBounds struct {
	Min, Max float64
}

// NewRangeBounds returns the interval [min, max].
func NewRangeBounds(min, max float64) (RangeBounds, error) {
	if math.IsNaN(min) || math.IsNaN(max) || min > max {
		return RangeBounds{}, fmt.Errorf("%w: range [%v, %v]", ErrInvalidBounds, min, max)
	}
	return RangeBounds{Min: min, Max: max}, nil
}

// MustRange is like NewRangeBounds but panics on error.
func MustRange(min, max float64) RangeBounds {
	r, err := NewRangeBounds(min, max)
	if err != nil {
		panic(err)
	}
	return r
}

// ContainsValue reports whether v is within the range.
func (r RangeBounds) ContainsValue(v float64, precision int) bool {
	return !beyond(v, r.Max, precision) && !beyond(r.Min, v, precision)
}

// ClipValue limits v to the range.
func (r RangeBounds) ClipValue(v float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Contains reports whether p.X is within the range.
func (r RangeBounds) Contains(p geom.Point, precision int) bool {
	return r.ContainsValue(p.X, precision)
}

// Clip limits p.X to the range.
func (r RangeBounds) Clip(p geom.Point) geom.Point {
	p.X = r.ClipValue(p.X)
	return p
}

// Crosses returns where the move from -> to leaves the range.
func (r RangeBounds) Crosses(from, to geom.Point, precision int) (Hit, bool) {
	dx := to.X - from.X
	switch {
	case beyond(to.X, r.Max, precision) && dx > 0:
		return hitAt(from, to, (r.Max-from.X)/dx), true
	case beyond(r.Min, to.X, precision) && dx < 0:
		return hitAt(from, to, (r.Min-from.X)/dx), true
	}
	return Hit{}, false
}

// Reflect reverses the X velocity when at is on an end of the range and the
// velocity points out of it.
func (r RangeBounds) Reflect(velocity, at geom.Point, precision int) geom.Point {
	if (geom.RoundEqual(at.X, r.Max, precision) && velocity.X > 0) ||
		(geom.RoundEqual(at.X, r.Min, precision) && velocity.X < 0) {
		velocity.X = -velocity.X
	}
	return velocity
}

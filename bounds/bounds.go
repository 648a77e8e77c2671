// Package bounds defines the boundaries a decelerating body can bounce off.
//
// Every boundary implements Bounds, so the kinematics kernel handles
// RangeBounds, RectBounds and LineBounds the same way: it asks where a
// straight move first crosses the boundary, moves there, and asks for the
// reflected velocity.
package bounds

import (
	"errors"

	"github.com/gogpu/motion/geom"
)

// ErrInvalidBounds is returned when a boundary's limits are out of order.
var ErrInvalidBounds = errors.New("bounds: invalid bounds")

// Bounds is a boundary a moving point is kept inside of.
//
// Implementations are immutable values and safe to share between calls.
type Bounds interface {
	// Contains reports whether p is inside or on the boundary.
	Contains(p geom.Point, precision int) bool

	// Clip moves p to the nearest allowed position.
	Clip(p geom.Point) geom.Point

	// Crosses returns the first point where the straight move from -> to
	// leaves the allowed region. from is assumed to be inside.
	Crosses(from, to geom.Point, precision int) (Hit, bool)

	// Reflect returns velocity after bouncing at boundary point at.
	// Components that are not heading out of the region are unchanged.
	Reflect(velocity, at geom.Point, precision int) geom.Point
}

// Hit is where a move meets a boundary.
type Hit struct {
	// Point is the boundary point that was reached.
	Point geom.Point

	// Distance is the straight-line distance from the move's start.
	Distance float64
}

// hitAt builds a Hit at fraction t of the move from -> to.
func hitAt(from, to geom.Point, t float64) Hit {
	p := from.Lerp(to, t)
	return Hit{Point: p, Distance: from.Distance(p)}
}

// beyond reports whether v is past limit at the given precision.
func beyond(v, limit float64, precision int) bool {
	return geom.Round(v-limit, precision) > 0
}

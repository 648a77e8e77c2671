package transform

import (
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/motion/geom"
)

func vec3(v float64) geom.Point { return geom.Point{X: v, Y: v, Z: v} }

// IsEqualShapeTo reports whether t2 has the same component kinds in the
// same order. Values are ignored.
func (t Transform) IsEqualShapeTo(t2 Transform) bool {
	return slices.Equal(t.Kinds(), t2.Kinds())
}

// IsEqualTo reports whether t2 has the same shape and the same values when
// rounded to precision. Names are not compared.
func (t Transform) IsEqualTo(t2 Transform, precision int) bool {
	if !t.IsEqualShapeTo(t2) {
		return false
	}
	for i, c := range t.def {
		if !c.Vector().IsEqualTo(t2.def[i].Vector(), precision) {
			return false
		}
	}
	return true
}

// Add returns the element-wise sum of t and t2.
func (t Transform) Add(t2 Transform) (Transform, error) {
	return t.combine(t2, geom.Point.Add)
}

// Sub returns the element-wise difference t - t2.
func (t Transform) Sub(t2 Transform) (Transform, error) {
	return t.combine(t2, geom.Point.Sub)
}

// Mul returns the element-wise product of t and t2.
func (t Transform) Mul(t2 Transform) (Transform, error) {
	return t.combine(t2, func(a, b geom.Point) geom.Point {
		return a.ScaleXYZ(b.X, b.Y, b.Z)
	})
}

func (t Transform) combine(t2 Transform, op func(a, b geom.Point) geom.Point) (Transform, error) {
	if !t.IsEqualShapeTo(t2) {
		return Transform{}, fmt.Errorf("%w: %v and %v", ErrShapeMismatch, t.Kinds(), t2.Kinds())
	}
	def := make([]Component, len(t.def))
	for i, c := range t.def {
		def[i] = c.withVector(op(c.Vector(), t2.def[i].Vector()))
	}
	return Transform{name: t.name, def: def}, nil
}

// Map returns t with fn applied to every component's values.
func (t Transform) Map(fn func(Component) geom.Point) Transform {
	def := make([]Component, len(t.def))
	for i, c := range t.def {
		def[i] = c.withVector(fn(c))
	}
	return Transform{name: t.name, def: def}
}

// Velocity returns (t - previous) / deltaTime with each component's
// magnitude limited by ClipMag(zeroThreshold, maxVelocity).
func (t Transform) Velocity(previous Transform, deltaTime float64, zeroThreshold, maxVelocity Transform) (Transform, error) {
	if !(deltaTime > 0) {
		return Transform{}, fmt.Errorf("%w: %v", ErrInvalidDeltaTime, deltaTime)
	}
	diff, err := t.Sub(previous)
	if err != nil {
		return Transform{}, err
	}
	v := diff.Map(func(c Component) geom.Point { return c.Vector().Div(deltaTime) })
	return v.ClipMag(zeroThreshold, maxVelocity)
}

// Clip clamps every value of t between the matching values of min and max.
func (t Transform) Clip(min, max Transform) (Transform, error) {
	if !t.IsEqualShapeTo(min) || !t.IsEqualShapeTo(max) {
		return Transform{}, fmt.Errorf("%w: clip limits", ErrShapeMismatch)
	}
	def := make([]Component, len(t.def))
	for i, c := range t.def {
		lo, hi := min.def[i].Vector(), max.def[i].Vector()
		v := c.Vector()
		def[i] = c.withVector(geom.Point{
			X: geom.Clamp(v.X, lo.X, hi.X),
			Y: geom.Clamp(v.Y, lo.Y, hi.Y),
			Z: geom.Clamp(v.Z, lo.Z, hi.Z),
		})
	}
	return Transform{name: t.name, def: def}, nil
}

// ClipMag limits the magnitude of every component. Values whose magnitude
// is below the zero threshold become 0 and those above the maximum are
// clipped to it with their sign kept.
//
// Scale and rotation values are clipped per axis. A translation is clipped
// as a vector, keeping its direction, against the X value of the matching
// threshold and maximum components.
func (t Transform) ClipMag(zeroThreshold, max Transform) (Transform, error) {
	if !t.IsEqualShapeTo(zeroThreshold) || !t.IsEqualShapeTo(max) {
		return Transform{}, fmt.Errorf("%w: clip limits", ErrShapeMismatch)
	}
	def := make([]Component, len(t.def))
	for i, c := range t.def {
		z, m := zeroThreshold.def[i].Vector(), max.def[i].Vector()
		v := c.Vector()
		if c.Kind() == KindTranslate {
			def[i] = c.withVector(clipVector(v, z.X, m.X))
			continue
		}
		def[i] = c.withVector(geom.Point{
			X: clipMag(v.X, z.X, m.X),
			Y: clipMag(v.Y, z.Y, m.Y),
			Z: clipMag(v.Z, z.Z, m.Z),
		})
	}
	return Transform{name: t.name, def: def}, nil
}

func clipMag(v, zero, max float64) float64 {
	mag := math.Abs(v)
	switch {
	case mag < zero:
		return 0
	case mag > max:
		return math.Copysign(max, v)
	}
	return v
}

func clipVector(v geom.Point, zero, max float64) geom.Point {
	mag := v.Length()
	switch {
	case mag < zero:
		return geom.Point{}
	case mag > max:
		return v.Scale(max / mag)
	}
	return v
}

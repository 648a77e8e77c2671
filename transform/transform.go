// Package transform implements an ordered, named sequence of scale, rotate
// and translate operations.
//
// A Transform is an immutable value: every builder method returns a new
// Transform and never shares its backing slice with the receiver. Hot
// per-frame paths that need to change values in place use a Cursor.
//
// The same shape is used for poses and velocities, so Add, Sub, Mul and
// Decelerate work on either.
//
//	pose := transform.New("ball").Scale(1, 1).Rotate(0).Translate(0, 0)
//	vel := pose.Filled(0).Cursor()
//	_ = vel.UpdateTranslation(transform.Translate{X: 5}, 0)
//	res, err := transform.DecelerateToStop(pose, vel.Transform(), params)
package transform

import (
	"fmt"
	"strings"
)

// Transform is an ordered list of components with an optional name. The
// first component is applied to a point first.
type Transform struct {
	name string
	def  []Component
}

// New returns a transform with the given name and components.
func New(name string, components ...Component) Transform {
	return Transform{name: name, def: append([]Component(nil), components...)}
}

// Name returns the transform's name.
func (t Transform) Name() string { return t.name }

// WithName returns a copy of t with a different name.
func (t Transform) WithName(name string) Transform {
	return Transform{name: name, def: t.Components()}
}

// Len returns the number of components.
func (t Transform) Len() int { return len(t.def) }

// Components returns a copy of the component list.
func (t Transform) Components() []Component {
	return append([]Component(nil), t.def...)
}

// Component returns the component at position i.
func (t Transform) Component(i int) (Component, error) {
	if i < 0 || i >= len(t.def) {
		return nil, fmt.Errorf("%w: position %d of %d", ErrNoComponent, i, len(t.def))
	}
	return t.def[i], nil
}

// Kinds returns the component kinds in order.
func (t Transform) Kinds() []Kind {
	kinds := make([]Kind, len(t.def))
	for i, c := range t.def {
		kinds[i] = c.Kind()
	}
	return kinds
}

// Append returns t with components added to the end.
func (t Transform) Append(components ...Component) Transform {
	def := make([]Component, 0, len(t.def)+len(components))
	def = append(def, t.def...)
	def = append(def, components...)
	return Transform{name: t.name, def: def}
}

// Scale appends a 2D scale. Z is left at 1.
func (t Transform) Scale(sx, sy float64) Transform {
	return t.Append(Scale{X: sx, Y: sy, Z: 1})
}

// Scale3 appends a 3D scale.
func (t Transform) Scale3(sx, sy, sz float64) Transform {
	return t.Append(Scale{X: sx, Y: sy, Z: sz})
}

// Rotate appends a 2D rotation of angle radians about Z.
func (t Transform) Rotate(angle float64) Transform {
	return t.Append(Rotate{Z: angle})
}

// Rotate3 appends rotations about X, then Y, then Z.
func (t Transform) Rotate3(rx, ry, rz float64) Transform {
	return t.Append(Rotate{X: rx, Y: ry, Z: rz})
}

// Translate appends a 2D translation.
func (t Transform) Translate(x, y float64) Transform {
	return t.Append(Translate{X: x, Y: y})
}

// Translate3 appends a 3D translation.
func (t Transform) Translate3(x, y, z float64) Transform {
	return t.Append(Translate{X: x, Y: y, Z: z})
}

// S returns the index'th scale component (0 based).
func (t Transform) S(index int) (Scale, error) {
	c, err := t.nth(KindScale, index)
	if err != nil {
		return Scale{}, err
	}
	return c.(Scale), nil
}

// R returns the index'th rotation component (0 based).
func (t Transform) R(index int) (Rotate, error) {
	c, err := t.nth(KindRotate, index)
	if err != nil {
		return Rotate{}, err
	}
	return c.(Rotate), nil
}

// T returns the index'th translation component (0 based).
func (t Transform) T(index int) (Translate, error) {
	c, err := t.nth(KindTranslate, index)
	if err != nil {
		return Translate{}, err
	}
	return c.(Translate), nil
}

func (t Transform) nth(kind Kind, index int) (Component, error) {
	pos, err := position(t.def, kind, index)
	if err != nil {
		return nil, err
	}
	return t.def[pos], nil
}

// position returns where the index'th component of kind sits in def.
func position(def []Component, kind Kind, index int) (int, error) {
	if index >= 0 {
		seen := 0
		for i, c := range def {
			if c.Kind() != kind {
				continue
			}
			if seen == index {
				return i, nil
			}
			seen++
		}
	}
	return -1, fmt.Errorf("%w: %v[%d]", ErrNoComponent, kind, index)
}

// Filled returns a transform of the same shape with every value set to v.
// It is a convenient source of thresholds and limits for Velocity and
// ClipMag.
func (t Transform) Filled(v float64) Transform {
	def := make([]Component, len(t.def))
	for i, c := range t.def {
		def[i] = c.withVector(vec3(v))
	}
	return Transform{name: t.name, def: def}
}

// String formats the transform as name[s(...), r(...), ...].
func (t Transform) String() string {
	parts := make([]string, len(t.def))
	for i, c := range t.def {
		parts[i] = fmt.Sprint(c)
	}
	return t.name + "[" + strings.Join(parts, ", ") + "]"
}

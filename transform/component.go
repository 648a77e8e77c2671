package transform

import (
	"fmt"

	"github.com/gogpu/motion/geom"
)

// Kind identifies the operation a Component performs.
type Kind byte

// Component kinds. The values double as the serialization tags.
const (
	KindScale     Kind = 's'
	KindRotate    Kind = 'r'
	KindTranslate Kind = 't'
)

// String returns the single letter tag of the kind.
func (k Kind) String() string {
	switch k {
	case KindScale, KindRotate, KindTranslate:
		return string(rune(k))
	}
	return fmt.Sprintf("Kind(%d)", byte(k))
}

// Component is one operation of a Transform: a Scale, Rotate or Translate.
// The set is closed; the unexported method keeps other packages from adding
// variants.
type Component interface {
	Kind() Kind

	// Vector returns the component's three values as a point.
	Vector() geom.Point

	withVector(v geom.Point) Component
}

// Scale multiplies coordinates by X, Y and Z.
type Scale struct {
	X, Y, Z float64
}

// Rotate rotates by X, Y and Z radians about the respective axes. A 2D
// rotation only sets Z.
type Rotate struct {
	X, Y, Z float64
}

// Translate offsets coordinates by X, Y and Z.
type Translate struct {
	X, Y, Z float64
}

func (Scale) Kind() Kind     { return KindScale }
func (Rotate) Kind() Kind    { return KindRotate }
func (Translate) Kind() Kind { return KindTranslate }

func (s Scale) Vector() geom.Point     { return geom.Point(s) }
func (r Rotate) Vector() geom.Point    { return geom.Point(r) }
func (t Translate) Vector() geom.Point { return geom.Point(t) }

func (Scale) withVector(v geom.Point) Component     { return Scale(v) }
func (Rotate) withVector(v geom.Point) Component    { return Rotate(v) }
func (Translate) withVector(v geom.Point) Component { return Translate(v) }

// NewComponent builds a component of the given kind from its values.
func NewComponent(kind Kind, v geom.Point) (Component, error) {
	switch kind {
	case KindScale:
		return Scale(v), nil
	case KindRotate:
		return Rotate(v), nil
	case KindTranslate:
		return Translate(v), nil
	}
	return nil, fmt.Errorf("%w: unknown component kind %v", geom.ErrInvalidState, kind)
}

func (s Scale) String() string     { return fmt.Sprintf("s(%g, %g, %g)", s.X, s.Y, s.Z) }
func (r Rotate) String() string    { return fmt.Sprintf("r(%g, %g, %g)", r.X, r.Y, r.Z) }
func (t Translate) String() string { return fmt.Sprintf("t(%g, %g, %g)", t.X, t.Y, t.Z) }

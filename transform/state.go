package transform

import (
	"encoding/json"
	"fmt"

	"github.com/gogpu/motion/geom"
)

// State returns the serialized form of the transform:
//
//	{"f1Type": "tf", "state": [name, ["s", x, y, z], ["r", x, y, z], ...]}
func (t Transform) State() geom.State {
	items := make([]any, 0, len(t.def)+1)
	items = append(items, t.name)
	for _, c := range t.def {
		v := c.Vector()
		items = append(items, []any{c.Kind().String(), v.X, v.Y, v.Z})
	}
	return geom.State{F1Type: geom.TagTransform, State: items}
}

// MarshalJSON encodes the transform as its State.
func (t Transform) MarshalJSON() ([]byte, error) { return json.Marshal(t.State()) }

// UnmarshalJSON accepts any form Parse accepts.
func (t *Transform) UnmarshalJSON(data []byte) error {
	v, err := Parse(data)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Parse parses a Transform, its State, a JSON encoding of either, or a
// shorthand array of components such as [["s", 1, 1], ["r", 0.5],
// ["t", 2, 0]]. An optional leading string is the name.
//
// Missing Z values default to 1 for scale and 0 otherwise; a rotation with
// a single value rotates about Z.
func Parse(v any) (Transform, error) {
	switch x := v.(type) {
	case Transform:
		return x, nil
	case []Component:
		return New("", x...), nil
	}
	v, err := geom.Decode(v)
	if err != nil {
		return Transform{}, err
	}
	if tag, items, ok := geom.Tagged(v); ok {
		if tag != geom.TagTransform {
			return Transform{}, fmt.Errorf("%w: f1Type %q, want %q", geom.ErrInvalidState, tag, geom.TagTransform)
		}
		v = items
	}
	arr, ok := v.([]any)
	if !ok {
		return Transform{}, fmt.Errorf("%w: transform needs an array of components, got %T", geom.ErrInvalidState, v)
	}
	var name string
	if len(arr) > 0 {
		if s, ok := arr[0].(string); ok {
			name = s
			arr = arr[1:]
		}
	}
	def := make([]Component, len(arr))
	for i, item := range arr {
		c, err := parseComponent(item)
		if err != nil {
			return Transform{}, fmt.Errorf("component %d: %w", i, err)
		}
		def[i] = c
	}
	return Transform{name: name, def: def}, nil
}

func parseComponent(v any) (Component, error) {
	if c, ok := v.(Component); ok {
		return c, nil
	}
	arr, ok := v.([]any)
	if !ok || len(arr) < 2 || len(arr) > 4 {
		return nil, fmt.Errorf("%w: component needs [kind, values...]", geom.ErrInvalidState)
	}
	tag, ok := arr[0].(string)
	if !ok || len(tag) != 1 {
		return nil, fmt.Errorf("%w: component kind %v", geom.ErrInvalidState, arr[0])
	}
	kind := Kind(tag[0])
	fs, err := geom.Floats(arr[1:])
	if err != nil {
		return nil, err
	}
	var p geom.Point
	switch len(fs) {
	case 1:
		if kind != KindRotate {
			return nil, fmt.Errorf("%w: %v needs at least 2 values", geom.ErrInvalidState, kind)
		}
		p.Z = fs[0]
	case 2:
		p = geom.Pt(fs[0], fs[1])
		if kind == KindScale {
			p.Z = 1
		}
	default:
		p = geom.Pt3(fs[0], fs[1], fs[2])
	}
	return NewComponent(kind, p)
}

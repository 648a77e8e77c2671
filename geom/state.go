package geom

import (
	"encoding/json"
	"fmt"
	"math"
)

// Serialization tags.
const (
	TagPoint     = "p"
	TagLine      = "l"
	TagPlane     = "pl"
	TagTransform = "tf"
)

// State is the tagged tuple form used to persist geometry:
//
//	{"f1Type": "l", "state": [[x1, y1, z1], [x2, y2, z2], ends]}
type State struct {
	F1Type string `json:"f1Type"`
	State  []any  `json:"state"`
}

// State returns the serialized form of the point.
func (p Point) State() State {
	return State{F1Type: TagPoint, State: []any{p.X, p.Y, p.Z}}
}

// State returns the serialized form of the line.
func (l Line) State() State {
	return State{F1Type: TagLine, State: []any{xyz(l.p1), xyz(l.p2), l.ends}}
}

// State returns the serialized form of the plane.
func (pl Plane) State() State {
	return State{F1Type: TagPlane, State: []any{xyz(pl.p), xyz(pl.n)}}
}

func xyz(p Point) []any { return []any{p.X, p.Y, p.Z} }

// MarshalJSON encodes the point as its State.
func (p Point) MarshalJSON() ([]byte, error) { return json.Marshal(p.State()) }

// UnmarshalJSON accepts any form ParsePoint accepts.
func (p *Point) UnmarshalJSON(data []byte) error {
	v, err := ParsePoint(data)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalJSON encodes the line as its State.
func (l Line) MarshalJSON() ([]byte, error) { return json.Marshal(l.State()) }

// UnmarshalJSON accepts any form ParseLine accepts.
func (l *Line) UnmarshalJSON(data []byte) error {
	v, err := ParseLine(data)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// MarshalJSON encodes the plane as its State.
func (pl Plane) MarshalJSON() ([]byte, error) { return json.Marshal(pl.State()) }

// UnmarshalJSON accepts any form ParsePlane accepts.
func (pl *Plane) UnmarshalJSON(data []byte) error {
	v, err := ParsePlane(data)
	if err != nil {
		return err
	}
	*pl = v
	return nil
}

// Decode turns JSON text (string, []byte or json.RawMessage) into generic
// values. Any other input is returned unchanged.
func Decode(v any) (any, error) {
	var data []byte
	switch x := v.(type) {
	case string:
		data = []byte(x)
	case []byte:
		data = x
	case json.RawMessage:
		data = x
	default:
		return v, nil
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	return out, nil
}

// Tagged extracts the tag and items of a State, a *State or a decoded JSON
// object with "f1Type" and "state" keys. ok is false for any other input.
func Tagged(v any) (tag string, items []any, ok bool) {
	switch x := v.(type) {
	case State:
		return x.F1Type, x.State, true
	case *State:
		if x == nil {
			return "", nil, false
		}
		return x.F1Type, x.State, true
	case map[string]any:
		t, tok := x["f1Type"].(string)
		s, sok := x["state"].([]any)
		if !tok || !sok {
			return "", nil, false
		}
		return t, s, true
	}
	return "", nil, false
}

// untag decodes v and, if it is tagged, checks the tag and returns its
// items. Untagged input is returned as is.
func untag(v any, want string) (any, error) {
	v, err := Decode(v)
	if err != nil {
		return nil, err
	}
	tag, items, ok := Tagged(v)
	if !ok {
		return v, nil
	}
	if tag != want {
		return nil, fmt.Errorf("%w: f1Type %q, want %q", ErrInvalidState, tag, want)
	}
	return items, nil
}

// Float converts a decoded number to float64.
func Float(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidState, err)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%w: %v (%T) is not a number", ErrInvalidState, v, v)
}

// Floats converts a decoded array of numbers to []float64.
func Floats(v any) ([]float64, error) {
	switch x := v.(type) {
	case []float64:
		return x, nil
	case []any:
		out := make([]float64, len(x))
		for i, e := range x {
			f, err := Float(e)
			if err != nil {
				return nil, err
			}
			out[i] = f
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %v (%T) is not an array", ErrInvalidState, v, v)
}

// ParsePoint parses a Point, its State, a JSON encoding of either, or a
// [x, y] or [x, y, z] array.
func ParsePoint(v any) (Point, error) {
	if p, ok := v.(Point); ok {
		return p, nil
	}
	items, err := untag(v, TagPoint)
	if err != nil {
		return Point{}, err
	}
	if p, ok := items.(Point); ok {
		return p, nil
	}
	fs, err := Floats(items)
	if err != nil {
		return Point{}, err
	}
	switch len(fs) {
	case 2:
		return Pt(fs[0], fs[1]), nil
	case 3:
		return Pt3(fs[0], fs[1], fs[2]), nil
	}
	return Point{}, fmt.Errorf("%w: point needs 2 or 3 values, got %d", ErrInvalidState, len(fs))
}

// ParseLine parses a Line, its State, a JSON encoding of either, or a
// [p1, p2] or [p1, p2, ends] array. Ends defaults to 2.
func ParseLine(v any) (Line, error) {
	switch x := v.(type) {
	case Line:
		return x, nil
	case []Point:
		arr := make([]any, len(x))
		for i, p := range x {
			arr[i] = p
		}
		v = arr
	}
	items, err := untag(v, TagLine)
	if err != nil {
		return Line{}, err
	}
	arr, ok := items.([]any)
	if !ok || len(arr) < 2 || len(arr) > 3 {
		return Line{}, fmt.Errorf("%w: line needs [p1, p2] or [p1, p2, ends]", ErrInvalidState)
	}
	p1, err := ParsePoint(arr[0])
	if err != nil {
		return Line{}, err
	}
	p2, err := ParsePoint(arr[1])
	if err != nil {
		return Line{}, err
	}
	ends := 2
	if len(arr) == 3 {
		f, err := Float(arr[2])
		if err != nil {
			return Line{}, err
		}
		if math.IsInf(f, 0) || f != math.Trunc(f) {
			return Line{}, fmt.Errorf("%w: ends %v is not an integer", ErrInvalidState, f)
		}
		ends = int(f)
	}
	return NewLine(p1, p2, ends)
}

// ParsePlane parses a Plane, its State, a JSON encoding of either, or a
// [p, n] array.
func ParsePlane(v any) (Plane, error) {
	if pl, ok := v.(Plane); ok {
		return pl, nil
	}
	items, err := untag(v, TagPlane)
	if err != nil {
		return Plane{}, err
	}
	arr, ok := items.([]any)
	if !ok || len(arr) != 2 {
		return Plane{}, fmt.Errorf("%w: plane needs [p, n]", ErrInvalidState)
	}
	p, err := ParsePoint(arr[0])
	if err != nil {
		return Plane{}, err
	}
	n, err := ParsePoint(arr[1])
	if err != nil {
		return Plane{}, err
	}
	return NewPlane(p, n)
}

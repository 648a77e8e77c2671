// Package profile loads motion profiles: named sets of deceleration
// parameters for the scale, rotation and translation components of a
// transform. Profiles are written in YAML or JSON.
//
//	name: card
//	translation:
//	  deceleration: 5
//	  bounceLoss: 0.5
//	  maxVelocity: 10
//	  bounds:
//	    rect: {left: -4.5, bottom: -1, right: 4.5, top: 1}
//	rotation:
//	  deceleration: 3
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/motion/bounds"
	"github.com/gogpu/motion/geom"
	"github.com/gogpu/motion/transform"
)

// ErrInvalidProfile is returned when a profile fails validation.
var ErrInvalidProfile = errors.New("profile: invalid profile")

// Profile describes how each kind of transform component decelerates.
type Profile struct {
	Name        string `json:"name" yaml:"name"`
	Scale       Motion `json:"scale" yaml:"scale"`
	Rotation    Motion `json:"rotation" yaml:"rotation"`
	Translation Motion `json:"translation" yaml:"translation"`

	// Precision overrides the kernel's rounding precision when positive.
	Precision int `json:"precision,omitempty" yaml:"precision,omitempty"`

	// MaxBounces overrides the kernel's bounce cap when positive.
	MaxBounces int `json:"maxBounces,omitempty" yaml:"maxBounces,omitempty"`
}

// Motion holds the parameters of one component kind.
type Motion struct {
	Deceleration  float64 `json:"deceleration" yaml:"deceleration"`
	BounceLoss    float64 `json:"bounceLoss,omitempty" yaml:"bounceLoss,omitempty"`
	ZeroThreshold float64 `json:"zeroThreshold,omitempty" yaml:"zeroThreshold,omitempty"`

	// MaxVelocity limits velocities measured with Transform.Velocity. Zero
	// means no limit.
	MaxVelocity float64 `json:"maxVelocity,omitempty" yaml:"maxVelocity,omitempty"`

	Bounds *Bounds `json:"bounds,omitempty" yaml:"bounds,omitempty"`
}

// Bounds selects exactly one boundary shape.
type Bounds struct {
	Range *Range `json:"range,omitempty" yaml:"range,omitempty"`
	Rect  *Rect  `json:"rect,omitempty" yaml:"rect,omitempty"`
	Line  *Line  `json:"line,omitempty" yaml:"line,omitempty"`
}

// Range is a bounds.RangeBounds. A missing end is unbounded.
type Range struct {
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

// Rect is a bounds.RectBounds.
type Rect struct {
	Left   float64 `json:"left" yaml:"left"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Right  float64 `json:"right" yaml:"right"`
	Top    float64 `json:"top" yaml:"top"`
}

// Line is a bounds.LineBounds. P1 and P2 hold 2 or 3 coordinates; Ends
// defaults to 2.
type Line struct {
	P1   []float64 `json:"p1" yaml:"p1"`
	P2   []float64 `json:"p2" yaml:"p2"`
	Ends *int      `json:"ends,omitempty" yaml:"ends,omitempty"`
}

// LoadJSON reads and validates a profile from JSON.
func LoadJSON(r io.Reader) (*Profile, error) {
	var p Profile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("profile: decode json: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadYAML reads and validates a profile from YAML.
func LoadYAML(r io.Reader) (*Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("profile: decode yaml: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadFile reads a profile from a .json, .yaml or .yml file.
func LoadFile(path string) (*Profile, error) {
	var load func(io.Reader) (*Profile, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		load = LoadJSON
	case ".yaml", ".yml":
		load = LoadYAML
	default:
		return nil, fmt.Errorf("%w: unknown file type %q", ErrInvalidProfile, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return load(f)
}

// Validate checks every parameter and reports all problems at once.
func (p *Profile) Validate() error {
	var errs []error
	for _, m := range []struct {
		kind string
		m    Motion
	}{
		{"scale", p.Scale},
		{"rotation", p.Rotation},
		{"translation", p.Translation},
	} {
		if err := m.m.validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", m.kind, err))
		}
	}
	if p.Precision < 0 {
		errs = append(errs, fmt.Errorf("precision %d is negative", p.Precision))
	}
	if p.MaxBounces < 0 {
		errs = append(errs, fmt.Errorf("maxBounces %d is negative", p.MaxBounces))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, errors.Join(errs...))
	}
	return nil
}

func (m Motion) validate() error {
	var errs []error
	if !(m.Deceleration >= 0) {
		errs = append(errs, fmt.Errorf("deceleration %v must be >= 0", m.Deceleration))
	}
	if !(m.BounceLoss >= 0 && m.BounceLoss <= 1) {
		errs = append(errs, fmt.Errorf("bounceLoss %v must be within [0, 1]", m.BounceLoss))
	}
	if !(m.ZeroThreshold >= 0) {
		errs = append(errs, fmt.Errorf("zeroThreshold %v must be >= 0", m.ZeroThreshold))
	}
	if !(m.MaxVelocity >= 0) {
		errs = append(errs, fmt.Errorf("maxVelocity %v must be >= 0", m.MaxVelocity))
	}
	if m.Bounds != nil {
		if _, err := m.Bounds.Build(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Build returns the boundary b describes.
func (b *Bounds) Build() (bounds.Bounds, error) {
	set := 0
	for _, ok := range []bool{b.Range != nil, b.Rect != nil, b.Line != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("bounds needs exactly one of range, rect or line, got %d", set)
	}
	switch {
	case b.Range != nil:
		lo, hi := math.Inf(-1), math.Inf(1)
		if b.Range.Min != nil {
			lo = *b.Range.Min
		}
		if b.Range.Max != nil {
			hi = *b.Range.Max
		}
		return bounds.NewRangeBounds(lo, hi)
	case b.Rect != nil:
		return bounds.NewRectBounds(b.Rect.Left, b.Rect.Bottom, b.Rect.Right, b.Rect.Top)
	}
	p1, err := geom.ParsePoint(b.Line.P1)
	if err != nil {
		return nil, fmt.Errorf("line p1: %w", err)
	}
	p2, err := geom.ParsePoint(b.Line.P2)
	if err != nil {
		return nil, fmt.Errorf("line p2: %w", err)
	}
	ends := 2
	if b.Line.Ends != nil {
		ends = *b.Line.Ends
	}
	l, err := geom.NewLine(p1, p2, ends)
	if err != nil {
		return nil, err
	}
	return bounds.NewLineBounds(l), nil
}

// For returns the motion of a component kind.
func (p *Profile) For(kind transform.Kind) Motion {
	switch kind {
	case transform.KindScale:
		return p.Scale
	case transform.KindRotate:
		return p.Rotation
	}
	return p.Translation
}

// Params builds the deceleration parameters for every component of t.
func (p *Profile) Params(t transform.Transform) (transform.DecelerateParams, error) {
	params := transform.DecelerateParams{
		Components: make(map[int]transform.ComponentParams, t.Len()),
		Precision:  p.Precision,
		MaxBounces: p.MaxBounces,
	}
	for i, kind := range t.Kinds() {
		m := p.For(kind)
		cp := transform.ComponentParams{
			Deceleration:  m.Deceleration,
			BounceLoss:    m.BounceLoss,
			ZeroThreshold: m.ZeroThreshold,
		}
		if m.Bounds != nil {
			b, err := m.Bounds.Build()
			if err != nil {
				return transform.DecelerateParams{}, fmt.Errorf("%w: %v: %w", ErrInvalidProfile, kind, err)
			}
			cp.Bounds = b
		}
		params.Components[i] = cp
	}
	return params, nil
}

// MaxVelocity returns a transform shaped like t holding each component's
// maximum velocity, for use with Transform.Velocity. Unlimited components
// hold +Inf.
func (p *Profile) MaxVelocity(t transform.Transform) transform.Transform {
	return t.Map(func(c transform.Component) geom.Point {
		v := p.For(c.Kind()).MaxVelocity
		if v == 0 {
			v = math.Inf(1)
		}
		return geom.Point{X: v, Y: v, Z: v}
	})
}

// ZeroThreshold returns a transform shaped like t holding each component's
// zero velocity threshold.
func (p *Profile) ZeroThreshold(t transform.Transform) transform.Transform {
	return t.Map(func(c transform.Component) geom.Point {
		v := p.For(c.Kind()).ZeroThreshold
		return geom.Point{X: v, Y: v, Z: v}
	})
}

// Velocity measures the velocity between two poses with this profile's
// thresholds and limits.
func (p *Profile) Velocity(current, previous transform.Transform, deltaTime float64) (transform.Transform, error) {
	return current.Velocity(previous, deltaTime, p.ZeroThreshold(current), p.MaxVelocity(current))
}

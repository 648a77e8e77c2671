package transform

import (
	"fmt"
	"math"

	"github.com/gogpu/motion/bounds"
	"github.com/gogpu/motion/geom"
	"github.com/gogpu/motion/internal/logging"
	"github.com/gogpu/motion/kinematics"
)

// ComponentParams configures how one component decelerates.
type ComponentParams struct {
	// Deceleration is the magnitude of the constant deceleration.
	Deceleration float64

	// Bounds limits the component's values. Translations are bounded as
	// points; scale and rotation axes are bounded one value at a time, so
	// a bounds.RangeBounds is the usual choice for them.
	Bounds bounds.Bounds

	// BounceLoss is the fraction of speed lost at each bounce.
	BounceLoss float64

	// ZeroThreshold is the speed at which the component counts as stopped.
	ZeroThreshold float64
}

// DecelerateParams holds the per-component parameters of Decelerate.
type DecelerateParams struct {
	// Default applies to components without an entry in Components.
	Default ComponentParams

	// Components overrides Default by position in the transform.
	Components map[int]ComponentParams

	// Precision is the rounding precision of the kernel. Zero means
	// geom.DefaultPrecision.
	Precision int

	// MaxBounces caps bounces per component. Zero means
	// kinematics.DefaultMaxBounces.
	MaxBounces int
}

// For returns the parameters of the component at position i.
func (p DecelerateParams) For(i int) ComponentParams {
	if c, ok := p.Components[i]; ok {
		return c
	}
	return p.Default
}

func (p DecelerateParams) options(i int) []kinematics.Option {
	c := p.For(i)
	opts := []kinematics.Option{
		kinematics.WithBounceLoss(c.BounceLoss),
		kinematics.WithZeroVelocityThreshold(c.ZeroThreshold),
		kinematics.WithMaxBounces(p.MaxBounces),
	}
	if c.Bounds != nil {
		opts = append(opts, kinematics.WithBounds(c.Bounds))
	}
	if p.Precision > 0 {
		opts = append(opts, kinematics.WithPrecision(p.Precision))
	}
	return opts
}

// DecelerateResult is the pose and velocity after decelerating.
type DecelerateResult struct {
	// Duration is the longest time any component was in motion.
	Duration float64

	// Velocity has the same shape as the input velocity.
	Velocity Transform

	// Transform is the new pose.
	Transform Transform

	// Stopped is true when every component has come to rest.
	Stopped bool
}

// Decelerate advances the pose t moving with velocity by deltaTime.
//
// Each component decelerates independently with its own parameters: a
// translation as a single vector, scale and rotation axis by axis.
// velocity must have the same shape as t.
func Decelerate(t, velocity Transform, params DecelerateParams, deltaTime float64) (DecelerateResult, error) {
	if math.IsNaN(deltaTime) || deltaTime < 0 {
		return DecelerateResult{}, fmt.Errorf("%w: %v", ErrInvalidDeltaTime, deltaTime)
	}
	return decelerate(t, velocity, params, deltaTime)
}

// DecelerateToStop runs Decelerate until every component is at rest. The
// duration is that of the slowest component; the others hold their final
// values once stopped.
func DecelerateToStop(t, velocity Transform, params DecelerateParams) (DecelerateResult, error) {
	return decelerate(t, velocity, params, math.Inf(1))
}

func decelerate(t, velocity Transform, params DecelerateParams, deltaTime float64) (DecelerateResult, error) {
	if !t.IsEqualShapeTo(velocity) {
		return DecelerateResult{}, fmt.Errorf("%w: pose %v, velocity %v", ErrShapeMismatch, t.Kinds(), velocity.Kinds())
	}
	res := DecelerateResult{Stopped: true}
	pose := make([]Component, len(t.def))
	vel := make([]Component, len(t.def))
	for i, c := range t.def {
		d := params.For(i).Deceleration
		opts := params.options(i)
		p, v := c.Vector(), velocity.def[i].Vector()

		var r kinematics.PointResult
		if c.Kind() == KindTranslate {
			r = step(p, v, d, deltaTime, opts)
		} else {
			r = perAxis(p, v, d, deltaTime, opts)
		}
		pose[i] = c.withVector(r.Point)
		vel[i] = velocity.def[i].withVector(r.Velocity)
		res.Duration = math.Max(res.Duration, r.Duration)
		res.Stopped = res.Stopped && r.Stopped
	}
	res.Transform = Transform{name: t.name, def: pose}
	res.Velocity = Transform{name: velocity.name, def: vel}
	logging.Logger().Debug("transform: decelerate",
		"name", t.name, "components", len(pose), "duration", res.Duration, "stopped", res.Stopped)
	return res, nil
}

func step(p, v geom.Point, d, deltaTime float64, opts []kinematics.Option) kinematics.PointResult {
	if math.IsInf(deltaTime, 1) {
		return kinematics.CalculateStopPoint(p, v, d, opts...)
	}
	return kinematics.DeceleratePoint(p, v, d, deltaTime, opts...)
}

// perAxis decelerates X, Y and Z as independent scalars. An axis with no
// velocity keeps its value; bounds never move a still axis.
func perAxis(p, v geom.Point, d, deltaTime float64, opts []kinematics.Option) kinematics.PointResult {
	out := kinematics.PointResult{Point: p, Stopped: true}
	for axis := 0; axis < 3; axis++ {
		if v.Component(axis) == 0 {
			continue
		}
		var r kinematics.ValueResult
		if math.IsInf(deltaTime, 1) {
			r = kinematics.CalculateStop(p.Component(axis), v.Component(axis), d, opts...)
		} else {
			r = kinematics.DecelerateValue(p.Component(axis), v.Component(axis), d, deltaTime, opts...)
		}
		out.Point = out.Point.WithComponent(axis, r.Value)
		out.Velocity = out.Velocity.WithComponent(axis, r.Velocity)
		out.Duration = math.Max(out.Duration, r.Duration)
		out.Stopped = out.Stopped && r.Stopped
		out.Bounces += r.Bounces
	}
	return out
}

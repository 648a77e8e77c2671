package kinematics

import (
	"math"

	"github.com/gogpu/motion/bounds"
	"github.com/gogpu/motion/geom"
	"github.com/gogpu/motion/internal/logging"
)

// PointResult is the state of a point after decelerating.
type PointResult struct {
	// Point is the final position.
	Point geom.Point

	// Velocity is the final velocity. It is zero once the body has stopped.
	Velocity geom.Point

	// Duration is the time simulated. In run-to-rest mode it is the time
	// taken to stop; in step mode it is at most the requested time.
	Duration float64

	// Stopped is true when the speed reached the zero velocity threshold.
	Stopped bool

	// Bounces counts the boundary reflections that happened.
	Bounces int
}

// ValueResult is the state of a scalar after decelerating.
type ValueResult struct {
	Value    float64
	Velocity float64
	Duration float64
	Stopped  bool
	Bounces  int
}

// DeceleratePoint advances a point moving with velocity v by deltaTime under
// a constant deceleration that opposes the velocity.
//
// The point moves in a straight line until it reaches the boundary, if any,
// where the velocity is reflected and reduced by the bounce loss. Motion
// stops when the speed drops to the zero velocity threshold; the rest of
// deltaTime is then spent at rest and is not included in Duration.
func DeceleratePoint(p, v geom.Point, deceleration, deltaTime float64, opts ...Option) PointResult {
	return decelerate(p, v, deceleration, deltaTime, buildOptions(opts))
}

// CalculateStopPoint runs DeceleratePoint until the point comes to rest and
// reports where and after how long.
//
// A zero deceleration never stops, so the result is the unchanged input
// with a zero Duration.
func CalculateStopPoint(p, v geom.Point, deceleration float64, opts ...Option) PointResult {
	return decelerate(p, v, deceleration, math.Inf(1), buildOptions(opts))
}

// DecelerateValue is the scalar form of DeceleratePoint. Boundaries see the
// value as the X coordinate of a point.
func DecelerateValue(value, velocity, deceleration, deltaTime float64, opts ...Option) ValueResult {
	return toValue(DeceleratePoint(geom.Point{X: value}, geom.Point{X: velocity}, deceleration, deltaTime, opts...))
}

// CalculateStop is the scalar form of CalculateStopPoint.
//
// For an unbounded value with initial speed v0 and deceleration d the
// duration is v0/d and the displacement v0²/(2d).
func CalculateStop(value, velocity, deceleration float64, opts ...Option) ValueResult {
	return toValue(CalculateStopPoint(geom.Point{X: value}, geom.Point{X: velocity}, deceleration, opts...))
}

func toValue(r PointResult) ValueResult {
	return ValueResult{
		Value:    r.Point.X,
		Velocity: r.Velocity.X,
		Duration: r.Duration,
		Stopped:  r.Stopped,
		Bounces:  r.Bounces,
	}
}

// decelerate is the shared kernel. limit is the time budget and is +Inf in
// run-to-rest mode.
func decelerate(p, v geom.Point, deceleration, limit float64, o options) PointResult {
	prec := o.precision
	d := math.Abs(deceleration)
	if o.bounds != nil {
		p = o.bounds.Clip(p)
	}
	res := PointResult{Point: p, Velocity: v}

	if atRest(v.Length(), o.zeroThreshold, prec) {
		res.Velocity = geom.Point{}
		res.Stopped = true
		return res
	}
	switch {
	case math.IsNaN(d), math.IsNaN(limit), limit <= 0:
		return res
	case d == 0 && math.IsInf(limit, 1):
		// would never come to rest
		return res
	case o.bounceLoss < 0 || math.IsNaN(o.bounceLoss):
		// a bounce would add energy
		return res
	}

	elapsed := 0.0
	for {
		speed := v.Length()
		if atRest(speed, o.zeroThreshold, prec) {
			v = geom.Point{}
			res.Stopped = true
			break
		}
		u := v.Div(speed)

		tStop := math.Inf(1)
		if d > 0 {
			tStop = (speed - o.zeroThreshold) / d
		}
		tRun := math.Min(tStop, limit-elapsed)
		to := p.Add(u.Scale(speed*tRun - 0.5*d*tRun*tRun))

		if o.bounds != nil {
			if hit, ok := o.bounds.Crosses(p, to, prec); ok {
				if res.Bounces >= o.maxBounces {
					logging.Logger().Warn("kinematics: bounce limit reached",
						"bounces", res.Bounces, "elapsed", elapsed)
					p = hit.Point
					v = geom.Point{}
					res.Stopped = true
					break
				}
				t := math.Min(timeToDistance(speed, d, hit.Distance, prec), tRun)
				p = hit.Point
				elapsed += t
				v = reflect(o.bounds, u.Scale(math.Max(speed-d*t, 0)), p, o.bounceLoss, prec)
				res.Bounces++
				continue
			}
		}

		stopped := tStop <= limit-elapsed
		p = to
		elapsed += tRun
		if stopped {
			v = geom.Point{}
			res.Stopped = true
		} else {
			v = u.Scale(speed - d*tRun)
		}
		break
	}

	res.Point = p
	res.Velocity = v
	res.Duration = elapsed
	logging.Logger().Debug("kinematics: decelerate",
		"duration", res.Duration, "bounces", res.Bounces, "stopped", res.Stopped)
	return res
}

// atRest reports whether speed is at or below the zero velocity threshold.
func atRest(speed, threshold float64, precision int) bool {
	return geom.Round(speed-threshold, precision) <= 0 || geom.RoundZero(speed, precision)
}

// timeToDistance returns when a body starting at speed and decelerating at
// d has covered dist: the first root of 0.5·d·t² - speed·t + dist = 0.
func timeToDistance(speed, d, dist float64, precision int) float64 {
	if t, ok := geom.SmallestNonNegativeRoot(0.5*d, -speed, dist, precision); ok {
		return t
	}
	// dist is at the very end of travel and rounding pushed the
	// discriminant negative
	return speed / d
}

// reflect bounces velocity off the boundary at p and applies the loss.
func reflect(b bounds.Bounds, velocity, p geom.Point, loss float64, precision int) geom.Point {
	if loss >= 1 {
		return geom.Point{}
	}
	return b.Reflect(velocity, p, precision).Scale(1 - loss)
}

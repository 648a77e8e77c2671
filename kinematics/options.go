package kinematics

import (
	"github.com/gogpu/motion/bounds"
	"github.com/gogpu/motion/geom"
)

// DefaultMaxBounces limits how many bounces one call simulates.
const DefaultMaxBounces = 1000

// Option configures a deceleration call.
//
// Example:
//
//	res := kinematics.CalculateStop(0, 5, 1,
//	    kinematics.WithBounds(bounds.MustRange(-4.5, 4.5)),
//	    kinematics.WithBounceLoss(0.5))
type Option func(*options)

// options holds the optional configuration of a deceleration call.
type options struct {
	bounds        bounds.Bounds
	bounceLoss    float64
	zeroThreshold float64
	precision     int
	maxBounces    int
}

// defaultOptions returns the defaults: no bounds, elastic bounces, stop at
// exactly zero velocity, 8 decimal places.
func defaultOptions() options {
	return options{
		precision:  geom.DefaultPrecision,
		maxBounces: DefaultMaxBounces,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBounds sets the boundary to bounce off. A nil boundary means no
// boundary.
func WithBounds(b bounds.Bounds) Option {
	return func(o *options) {
		o.bounds = b
	}
}

// WithBounceLoss sets the fraction of speed lost at each bounce.
// 0 is a perfectly elastic bounce; 1 or more stops the body at the boundary.
func WithBounceLoss(loss float64) Option {
	return func(o *options) {
		o.bounceLoss = loss
	}
}

// WithZeroVelocityThreshold sets the speed at or below which the body is
// considered stopped.
func WithZeroVelocityThreshold(threshold float64) Option {
	return func(o *options) {
		o.zeroThreshold = threshold
	}
}

// WithPrecision sets the number of decimal places used when comparing
// durations and positions.
func WithPrecision(precision int) Option {
	return func(o *options) {
		o.precision = precision
	}
}

// WithMaxBounces limits the number of bounces simulated in one call.
// Values below 1 keep the default.
func WithMaxBounces(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBounces = n
		}
	}
}

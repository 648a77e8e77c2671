package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/motion/bounds"
)

func TestDecelerateToStopDurationIsMax(t *testing.T) {
	pose := New("pose").Rotate(0).Translate(0, 0)
	vel := New("vel").Rotate(3).Translate(5, 0)

	res, err := DecelerateToStop(pose, vel, DecelerateParams{Default: ComponentParams{Deceleration: 1}})
	require.NoError(t, err)
	assert.InDelta(t, 5, res.Duration, 1e-9)
	assertComponents(t, New("").Rotate(4.5).Translate(12.5, 0), res.Transform)
	assert.Equal(t, vel.Filled(0).Components(), res.Velocity.Components())
	assert.True(t, res.Stopped)
	assert.Equal(t, "pose", res.Transform.Name())
	assert.Equal(t, "vel", res.Velocity.Name())
}

func TestDecelerateStep(t *testing.T) {
	pose := New("").Rotate(0).Translate(0, 0)
	vel := New("").Rotate(3).Translate(5, 0)
	params := DecelerateParams{Default: ComponentParams{Deceleration: 1}}

	// rotation stops at t=3 and holds while translation keeps moving
	res, err := Decelerate(pose, vel, params, 4)
	require.NoError(t, err)
	assert.InDelta(t, 4, res.Duration, 1e-9)
	assertComponents(t, New("").Rotate(4.5).Translate(12, 0), res.Transform, "pose")
	assertComponents(t, New("").Rotate(0).Translate(1, 0), res.Velocity, "velocity")
	assert.False(t, res.Stopped, "translation is still moving")

	_, err = Decelerate(pose, vel, params, -1)
	assert.ErrorIs(t, err, ErrInvalidDeltaTime)
}

func TestDecelerateComponentParams(t *testing.T) {
	pose := New("").Scale(1, 1).Translate(0, 0)
	vel := New("").Scale3(2, 1, 0).Translate(5, 0)
	params := DecelerateParams{
		Default: ComponentParams{Deceleration: 1},
		Components: map[int]ComponentParams{
			1: {Deceleration: 1, Bounds: bounds.MustRect(-4.5, -1, 4.5, 1)},
		},
	}

	res, err := DecelerateToStop(pose, vel, params)
	require.NoError(t, err)
	// scale axes stop independently at 2 and 1; the bounded translation
	// bounces once and stops at 5
	assertComponents(t, New("").Scale(3, 1.5).Translate(-3.5, 0), res.Transform)
	assert.InDelta(t, 5, res.Duration, 1e-9)
}

func TestDecelerateScaleRange(t *testing.T) {
	pose := New("").Scale(1, 1)
	vel := New("").Scale3(4, 0, 0)
	params := DecelerateParams{
		Default: ComponentParams{
			Deceleration: 2,
			Bounds:       bounds.MustRange(0.5, 4),
			BounceLoss:   1,
		},
	}

	res, err := DecelerateToStop(pose, vel, params)
	require.NoError(t, err)
	// X runs into the upper limit and stops there
	assertComponents(t, New("").Scale(4, 1), res.Transform)
	assert.InDelta(t, 1, res.Duration, 1e-9)
}

func TestBoundsLeaveStillAxesAlone(t *testing.T) {
	tests := []struct {
		name   string
		pose   Transform
		vel    Transform
		bounds bounds.Bounds
		want   Transform
	}{
		{
			// X and Y hold 0, outside the range
			name:   "2D rotation",
			pose:   New("").Rotate(0.5),
			vel:    New("").Rotate(1),
			bounds: bounds.MustRange(0.1, 3),
			want:   New("").Rotate(1),
		},
		{
			// Z holds 1, below the range
			name:   "2D scale",
			pose:   New("").Scale(2, 2),
			vel:    New("").Scale3(1, 0, 0),
			bounds: bounds.MustRange(1.5, 4),
			want:   New("").Scale(2.5, 2),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := DecelerateParams{Default: ComponentParams{Deceleration: 1, Bounds: tt.bounds}}

			res, err := DecelerateToStop(tt.pose, tt.vel, params)
			require.NoError(t, err)
			assertComponents(t, tt.want, res.Transform)
			assert.InDelta(t, 1, res.Duration, 1e-9)
			assert.True(t, res.Stopped)
			assertApprox(t, tt.want.Matrix(), res.Transform.Matrix(), "matrix")

			step, err := Decelerate(tt.pose, tt.vel, params, 0.5)
			require.NoError(t, err)
			before, _ := tt.pose.Component(0)
			after, _ := step.Transform.Component(0)
			v, _ := tt.vel.Component(0)
			for axis := 0; axis < 3; axis++ {
				if v.Vector().Component(axis) == 0 {
					assert.Equal(t, before.Vector().Component(axis), after.Vector().Component(axis), "axis %d moved", axis)
				}
			}
		})
	}
}

func TestParamsFor(t *testing.T) {
	p := DecelerateParams{
		Default:    ComponentParams{Deceleration: 1},
		Components: map[int]ComponentParams{2: {Deceleration: 3}},
	}
	assert.Equal(t, 1.0, p.For(0).Deceleration)
	assert.Equal(t, 3.0, p.For(2).Deceleration)
}

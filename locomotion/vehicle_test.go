package locomotion

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/roomdrive/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepVehicleThrottleRampAndFriction(t *testing.T) {
	p := DefaultVehicleParams()
	v := NewVehicleState(mgl64.Vec3{}, 0)

	for i := 0; i < 60; i++ {
		StepVehicle(&v, input.Intent{Forward: true}, p, testBounds(), tick)
		require.LessOrEqual(t, v.Throttle, p.MaxForward)
	}
	require.InDelta(t, p.Acceleration, v.Throttle, 1e-6)
	assert.Less(t, v.Position[2], 0.0)

	prev := v.Throttle
	for i := 0; i < 400 && v.Throttle != 0; i++ {
		StepVehicle(&v, input.Intent{}, p, testBounds(), tick)
		require.GreaterOrEqual(t, v.Throttle, 0.0, "coasting forward never goes negative")
		if v.Throttle != 0 {
			assert.InDelta(t, prev*p.Friction, v.Throttle, 1e-9)
		}
		prev = v.Throttle
	}
	assert.Zero(t, v.Throttle)
}

func TestStepVehicleThrottleCaps(t *testing.T) {
	p := DefaultVehicleParams()
	tests := []struct {
		name string
		in   input.Intent
		want float64
	}{
		{"forward_cap", input.Intent{Forward: true}, p.MaxForward},
		{"reverse_cap", input.Intent{Backward: true}, -p.MaxReverse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVehicleState(mgl64.Vec3{}, 0)
			for i := 0; i < 600; i++ {
				StepVehicle(&v, tt.in, p, testBounds(), tick)
			}
			assert.Equal(t, tt.want, v.Throttle)
			assert.Equal(t, math.Abs(tt.want), v.Speed)
		})
	}
}

func TestStepVehicleSteeringInertWhileStationary(t *testing.T) {
	p := DefaultVehicleParams()
	v := NewVehicleState(mgl64.Vec3{}, 0.5)
	for i := 0; i < 120; i++ {
		StepVehicle(&v, input.Intent{Left: true}, p, testBounds(), tick)
	}
	assert.Equal(t, 0.5, v.Heading)
	assert.Zero(t, v.Steering)

	v.Throttle = p.MinMotion * 0.9
	v.Steering = p.MaxSteer
	StepVehicle(&v, input.Intent{Right: true}, p, testBounds(), tick)
	assert.Equal(t, 0.5, v.Heading, "below the motion threshold steering cannot turn the body")
}

func TestStepVehicleSteeringTurnsAndRelaxes(t *testing.T) {
	p := DefaultVehicleParams()
	v := NewVehicleState(mgl64.Vec3{}, 0)
	for i := 0; i < 120; i++ {
		StepVehicle(&v, input.Intent{Forward: true, Left: true}, p, testBounds(), tick)
		require.LessOrEqual(t, math.Abs(v.Steering), p.MaxSteer)
	}
	assert.Greater(t, v.Heading, 0.0, "left steers counter-clockwise")
	assert.Less(t, v.Position[0], 0.0)
	assert.Equal(t, v.Heading, v.Yaw)

	steer := v.Steering
	StepVehicle(&v, input.Intent{Forward: true}, p, testBounds(), tick)
	assert.InDelta(t, steer*p.SteerReturn, v.Steering, 1e-9)
}

func TestStepVehicleStaysInBounds(t *testing.T) {
	p := DefaultVehicleParams()
	b := testBounds()
	v := NewVehicleState(mgl64.Vec3{}, 0)
	for i := 0; i < 1200; i++ {
		in := input.Intent{Forward: true, Right: i%300 < 100}
		StepVehicle(&v, in, p, b, tick)
		require.True(t, b.Contains(v.Position), "tick %d escaped bounds: %v", i, v.Position)
	}
}

func TestVehiclePark(t *testing.T) {
	v := NewVehicleState(mgl64.Vec3{}, 0)
	v.Throttle = 5
	v.Steering = 1
	v.Velocity = mgl64.Vec3{0, 0, -5}
	v.Park()
	assert.Zero(t, v.Throttle)
	assert.Zero(t, v.Steering)
	assert.Equal(t, mgl64.Vec3{}, v.Velocity)
}

func TestBoundsClampAndDistance(t *testing.T) {
	b := Bounds{MinX: -1, MaxX: 1, MinZ: -2, MaxZ: 2, GroundY: 0}
	got := b.Clamp(mgl64.Vec3{5, 3, -9})
	assert.Equal(t, mgl64.Vec3{1, 3, -2}, got)
	assert.True(t, b.Contains(got))
	inside := mgl64.Vec3{0.5, 1, -1.5}
	assert.Equal(t, inside, b.Clamp(inside))
	assert.False(t, b.Contains(mgl64.Vec3{1.01, 0, 0}))
	assert.InDelta(t, 5, PlanarDistance(mgl64.Vec3{0, 10, 0}, mgl64.Vec3{3, -4, 4}), 1e-12)
}

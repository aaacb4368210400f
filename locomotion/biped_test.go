package locomotion

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/roomdrive/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60.0

func testBounds() Bounds {
	return Bounds{MinX: -23, MaxX: 23, MinZ: -23, MaxZ: 23}
}

func TestStepBipedForwardTwoSeconds(t *testing.T) {
	p := DefaultBipedParams()
	s := NewActorState(mgl64.Vec3{}, OnFoot)

	for i := 0; i < 120; i++ {
		StepBiped(&s, input.Intent{Forward: true}, 0, p, testBounds(), tick)
	}

	assert.Less(t, s.Position[2], 0.0, "forward at yaw 0 moves toward -Z")
	assert.InDelta(t, 0, s.Position[0], 1e-9)
	speed := s.Velocity.Len()
	assert.GreaterOrEqual(t, speed, 0.0)
	assert.LessOrEqual(t, speed, p.WalkSpeed)
	assert.InDelta(t, s.Speed, speed, 1e-9)
	assert.InDelta(t, math.Pi, math.Abs(s.Yaw), 0.05, "actor turns to face the movement direction")
}

func TestStepBipedFacingMatchesModelYaw(t *testing.T) {
	const heading = 0.7
	p := DefaultBipedParams()
	s := NewActorState(mgl64.Vec3{}, OnFoot)
	for i := 0; i < 240; i++ {
		StepBiped(&s, input.Intent{Forward: true}, heading, p, testBounds(), tick)
	}

	assert.InDelta(t, ModelYaw(heading), s.Yaw, 1e-6)
	facing := mgl64.Vec3{math.Sin(s.Yaw), 0, math.Cos(s.Yaw)}
	assert.InDelta(t, 0, facing.Sub(forward(heading)).Len(), 1e-6, "model facing looks along the drive heading")
	assert.InDelta(t, math.Pi, math.Abs(ModelYaw(0)), 1e-12)
}

func TestStepBipedRunReachesHigherSpeed(t *testing.T) {
	p := DefaultBipedParams()
	walk := NewActorState(mgl64.Vec3{}, OnFoot)
	run := NewActorState(mgl64.Vec3{}, OnFoot)
	for i := 0; i < 60; i++ {
		StepBiped(&walk, input.Intent{Forward: true}, 0, p, testBounds(), tick)
		StepBiped(&run, input.Intent{Forward: true, Run: true}, 0, p, testBounds(), tick)
	}
	assert.Greater(t, run.Speed, walk.Speed)
	assert.LessOrEqual(t, run.Speed, p.RunSpeed)
}

func TestStepBipedIsCameraRelative(t *testing.T) {
	p := DefaultBipedParams()
	s := NewActorState(mgl64.Vec3{}, OnFoot)
	for i := 0; i < 30; i++ {
		StepBiped(&s, input.Intent{Forward: true}, math.Pi/2, p, testBounds(), tick)
	}
	assert.Less(t, s.Position[0], 0.0)
	assert.InDelta(t, 0, s.Position[2], 1e-9)
}

func TestStepBipedTurnsTheShortWay(t *testing.T) {
	p := DefaultBipedParams()
	s := NewActorState(mgl64.Vec3{}, OnFoot)
	s.Yaw = math.Pi - 0.1
	// target facing is -pi + 0.1 (moving toward -Z with a slight -X lean)
	in := input.Intent{Forward: true}
	viewYaw := 0.1
	StepBiped(&s, in, viewYaw, p, testBounds(), tick)
	assert.Greater(t, math.Abs(s.Yaw), math.Pi-0.1, "yaw must cross the +-pi seam instead of sweeping through zero")
}

func TestStepBipedStopsWithinBoundedTicks(t *testing.T) {
	p := DefaultBipedParams()
	s := NewActorState(mgl64.Vec3{}, OnFoot)
	for i := 0; i < 120; i++ {
		StepBiped(&s, input.Intent{Forward: true, Run: true}, 0, p, testBounds(), tick)
	}
	require.Greater(t, s.Speed, p.StopEpsilon)

	prev := s.Speed
	stoppedAt := -1
	for i := 0; i < 60; i++ {
		StepBiped(&s, input.Intent{}, 0, p, testBounds(), tick)
		require.LessOrEqual(t, s.Speed, prev, "speed must not increase while idle")
		prev = s.Speed
		if s.Speed == 0 {
			stoppedAt = i
			break
		}
	}
	require.NotEqual(t, -1, stoppedAt, "speed never snapped to zero")
	assert.Less(t, stoppedAt, 30)
	assert.Equal(t, mgl64.Vec3{}, s.Velocity)
}

func TestStepBipedStaysInBounds(t *testing.T) {
	p := DefaultBipedParams()
	b := testBounds()
	inputs := []input.Intent{
		{Forward: true, Run: true},
		{Right: true, Run: true},
		{Backward: true, Left: true},
		{Forward: true, Left: true, Run: true},
	}
	for _, in := range inputs {
		s := NewActorState(mgl64.Vec3{}, OnFoot)
		for i := 0; i < 600; i++ {
			StepBiped(&s, in, 0.3, p, b, tick)
			require.True(t, b.Contains(s.Position), "tick %d escaped bounds: %v", i, s.Position)
		}
	}
}

func TestStepBipedJumpArc(t *testing.T) {
	p := DefaultBipedParams()
	b := testBounds()
	s := NewActorState(mgl64.Vec3{}, OnFoot)

	StepBiped(&s, input.Intent{Jump: true, Forward: true}, 0, p, b, tick)
	require.False(t, s.Grounded)
	require.Greater(t, s.Position[1], 0.0)
	assert.Less(t, s.Position[2], 0.0, "horizontal motion continues while airborne")

	// a second request mid-air is ignored
	StepBiped(&s, input.Intent{Jump: true}, 0, p, b, tick)
	assert.Less(t, s.Velocity[1], p.JumpSpeed)

	for i := 0; i < 120 && !s.Grounded; i++ {
		StepBiped(&s, input.Intent{}, 0, p, b, tick)
	}
	assert.True(t, s.Grounded)
	assert.Equal(t, b.GroundY, s.Position[1])
	assert.Zero(t, s.Velocity[1])
}

func TestStepBipedIgnoresZeroDelta(t *testing.T) {
	s := NewActorState(mgl64.Vec3{1, 0, 1}, OnFoot)
	StepBiped(&s, input.Intent{Forward: true}, 0, DefaultBipedParams(), testBounds(), 0)
	assert.Equal(t, mgl64.Vec3{1, 0, 1}, s.Position)
	StepBiped(nil, input.Intent{Forward: true}, 0, DefaultBipedParams(), testBounds(), tick)
}

package locomotion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/roomdrive/common"
	"github.com/milk9111/roomdrive/input"
)

// BipedParams tunes the on-foot profile. Speeds are units per second;
// Acceleration, TurnSmoothing and Damping are per 60 Hz frame factors.
type BipedParams struct {
	WalkSpeed     float64
	RunSpeed      float64
	Acceleration  float64
	TurnSmoothing float64
	Damping       float64
	StopEpsilon   float64
	JumpSpeed     float64
	Gravity       float64
}

// DefaultBipedParams returns the stock walk/run tuning.
func DefaultBipedParams() BipedParams {
	return BipedParams{
		WalkSpeed:     4.8,
		RunSpeed:      9.6,
		Acceleration:  0.15,
		TurnSmoothing: 0.1,
		Damping:       0.85,
		StopEpsilon:   0.6,
		JumpSpeed:     5.5,
		Gravity:       18,
	}
}

// StepBiped advances an on-foot actor by dt seconds. Movement is relative to
// viewYaw, the camera's current yaw.
func StepBiped(s *ActorState, in input.Intent, viewYaw float64, p BipedParams, b Bounds, dt float64) {
	if s == nil || dt <= 0 {
		return
	}

	dir := mgl64.Vec3{}
	if in.Forward {
		dir[2] -= 1
	}
	if in.Backward {
		dir[2] += 1
	}
	if in.Left {
		dir[0] -= 1
	}
	if in.Right {
		dir[0] += 1
	}

	if dir.Len() > 0 {
		dir = mgl64.Rotate3DY(viewYaw).Mul3x1(dir.Normalize())

		target := p.WalkSpeed
		if in.Run {
			target = p.RunSpeed
		}
		s.Speed += (target - s.Speed) * common.Smoothing(p.Acceleration, dt)
		s.Velocity[0] = dir[0] * s.Speed
		s.Velocity[2] = dir[2] * s.Speed

		facing := math.Atan2(dir[0], dir[2])
		diff := common.WrapAngle(facing - s.Yaw)
		s.Yaw = common.WrapAngle(s.Yaw + diff*common.Smoothing(p.TurnSmoothing, dt))
	} else {
		k := common.Decay(p.Damping, dt)
		s.Speed *= k
		s.Velocity[0] *= k
		s.Velocity[2] *= k
		if s.Speed < p.StopEpsilon {
			s.Speed = 0
			s.Velocity[0] = 0
			s.Velocity[2] = 0
		}
	}

	s.Position[0] += s.Velocity[0] * dt
	s.Position[2] += s.Velocity[2] * dt

	stepVertical(s, in.Jump, p, b.GroundY, dt)

	s.Position = b.Clamp(s.Position)
}

// stepVertical runs the jump arc. It is independent of the planar motion.
func stepVertical(s *ActorState, jump bool, p BipedParams, groundY, dt float64) {
	if jump && s.Grounded {
		s.Velocity[1] = p.JumpSpeed
		s.Grounded = false
	}
	if s.Grounded {
		s.Position[1] = groundY
		s.Velocity[1] = 0
		return
	}

	s.Velocity[1] -= p.Gravity * dt
	s.Position[1] += s.Velocity[1] * dt
	if s.Position[1] <= groundY {
		s.Position[1] = groundY
		s.Velocity[1] = 0
		s.Grounded = true
	}
}

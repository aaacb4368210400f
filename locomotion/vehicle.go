package locomotion

import (
	"math"

	"github.com/milk9111/roomdrive/common"
	"github.com/milk9111/roomdrive/input"
)

// VehicleParams tunes the wheeled profile.
type VehicleParams struct {
	// MaxForward and MaxReverse cap throttle, in units per second.
	MaxForward float64
	MaxReverse float64
	// Acceleration and Brake are throttle change per second while held.
	Acceleration float64
	Brake        float64
	// Friction is the per 60 Hz frame throttle retention with no pedal held.
	Friction float64
	// StopEpsilon snaps a coasting throttle to zero.
	StopEpsilon float64
	// SteerRate is steering change per second; MaxSteer is the turn rate in
	// radians per second at full forward throttle.
	SteerRate float64
	MaxSteer  float64
	// SteerReturn is the per frame steering retention once released.
	SteerReturn float64
	// MinMotion is the |throttle| below which steering is inert.
	MinMotion float64
}

// DefaultVehicleParams returns the stock drive tuning.
func DefaultVehicleParams() VehicleParams {
	return VehicleParams{
		MaxForward:   12,
		MaxReverse:   6,
		Acceleration: 6,
		Brake:        10,
		Friction:     0.95,
		StopEpsilon:  0.05,
		SteerRate:    3,
		MaxSteer:     1.5,
		SteerReturn:  0.9,
		MinMotion:    0.6,
	}
}

// StepVehicle advances a driven vehicle by dt seconds. Forward/Backward work
// the pedals and Left/Right steer; Run and Jump are ignored.
func StepVehicle(v *VehicleState, in input.Intent, p VehicleParams, b Bounds, dt float64) {
	if v == nil || dt <= 0 {
		return
	}

	switch {
	case in.Forward && !in.Backward:
		v.Throttle = math.Min(v.Throttle+p.Acceleration*dt, p.MaxForward)
	case in.Backward && !in.Forward:
		v.Throttle = math.Max(v.Throttle-p.Brake*dt, -p.MaxReverse)
	default:
		v.Throttle *= common.Decay(p.Friction, dt)
		if math.Abs(v.Throttle) < p.StopEpsilon {
			v.Throttle = 0
		}
	}

	rolling := math.Abs(v.Throttle) > p.MinMotion

	steer := 0.0
	if in.Left {
		steer += 1
	}
	if in.Right {
		steer -= 1
	}
	if steer != 0 && rolling {
		v.Steering = common.Clamp(v.Steering+steer*p.SteerRate*dt, -p.MaxSteer, p.MaxSteer)
	} else {
		v.Steering *= common.Decay(p.SteerReturn, dt)
		if math.Abs(v.Steering) < 1e-4 {
			v.Steering = 0
		}
	}

	if rolling && p.MaxForward > 0 {
		v.Heading = common.WrapAngle(v.Heading + v.Steering*(v.Throttle/p.MaxForward)*dt)
	}
	v.Yaw = v.Heading

	v.Velocity = forward(v.Heading).Mul(v.Throttle)
	v.Speed = math.Abs(v.Throttle)
	v.Position = v.Position.Add(v.Velocity.Mul(dt))
	v.Position[1] = b.GroundY
	v.Grounded = true

	v.Position = b.Clamp(v.Position)
}

package actor

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/roomdrive/locomotion"
)

// Resetter drops any buffered input. *input.Aggregator satisfies it.
type Resetter interface {
	Reset()
}

// Switch arbitrates between the on-foot and in-vehicle profiles.
type Switch struct {
	Mode locomotion.Mode
	// Radius is the planar distance within which the vehicle can be entered.
	Radius float64
	// ExitOffset is how far to the vehicle's right the biped is placed on exit.
	ExitOffset float64

	input Resetter
}

// NewSwitch starts on foot.
func NewSwitch(radius, exitOffset float64, input Resetter) *Switch {
	return &Switch{Mode: locomotion.OnFoot, Radius: radius, ExitOffset: exitOffset, input: input}
}

// CanEnter reports whether the biped is close enough to board. The host
// uses it for the enter prompt.
func (s *Switch) CanEnter(biped, vehicle mgl64.Vec3) bool {
	if s == nil || s.Mode != locomotion.OnFoot {
		return false
	}
	return locomotion.PlanarDistance(biped, vehicle) < s.Radius
}

// Enter boards the vehicle. It returns false, changing nothing, when the
// biped is out of range or already driving.
func (s *Switch) Enter(biped *locomotion.ActorState, vehicle *locomotion.VehicleState) bool {
	if s == nil || biped == nil || vehicle == nil {
		return false
	}
	if !s.CanEnter(biped.Position, vehicle.Position) {
		return false
	}
	s.Mode = locomotion.InVehicle
	biped.Mode = locomotion.InVehicle
	biped.Speed = 0
	biped.Velocity = mgl64.Vec3{}
	s.resetInput()
	return true
}

// Exit parks the vehicle and puts the biped down beside it, facing the same
// way.
func (s *Switch) Exit(biped *locomotion.ActorState, vehicle *locomotion.VehicleState, b locomotion.Bounds) bool {
	if s == nil || biped == nil || vehicle == nil || s.Mode != locomotion.InVehicle {
		return false
	}
	vehicle.Park()

	side := mgl64.Rotate3DY(vehicle.Heading).Mul3x1(mgl64.Vec3{s.ExitOffset, 0, 0})
	pos := vehicle.Position.Add(side)
	pos[1] = b.GroundY
	biped.Position = b.Clamp(pos)
	biped.Velocity = mgl64.Vec3{}
	biped.Speed = 0
	biped.Grounded = true
	biped.Yaw = locomotion.ModelYaw(vehicle.Heading)
	biped.Mode = locomotion.OnFoot

	s.Mode = locomotion.OnFoot
	s.resetInput()
	return true
}

// Toggle enters or exits depending on the current mode.
func (s *Switch) Toggle(biped *locomotion.ActorState, vehicle *locomotion.VehicleState, b locomotion.Bounds) bool {
	if s == nil {
		return false
	}
	if s.Mode == locomotion.InVehicle {
		return s.Exit(biped, vehicle, b)
	}
	return s.Enter(biped, vehicle)
}

func (s *Switch) resetInput() {
	if s.input != nil {
		s.input.Reset()
	}
}

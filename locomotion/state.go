package locomotion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/roomdrive/common"
)

// Mode selects which kinematic profile drives the controlled actor.
type Mode int

const (
	OnFoot Mode = iota
	InVehicle
)

func (m Mode) String() string {
	switch m {
	case OnFoot:
		return "on_foot"
	case InVehicle:
		return "in_vehicle"
	default:
		return "unknown"
	}
}

// ActorState is the kinematic state of one actor. Y is up.
//
// Two yaw conventions meet here. Camera yaw and vehicle Heading are drive
// directions: 0 moves toward -Z. A biped's Yaw is its model facing,
// atan2(dir.X, dir.Z), so 0 faces +Z and walking toward -Z settles at ±pi.
// ModelYaw converts the first into the second.
type ActorState struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	// Yaw is the biped model facing. For a VehicleState it mirrors Heading.
	Yaw float64
	// Speed is the magnitude of the planar (XZ) velocity.
	Speed    float64
	Grounded bool
	Mode     Mode
}

// NewActorState returns a grounded, stationary actor at pos.
func NewActorState(pos mgl64.Vec3, mode Mode) ActorState {
	return ActorState{Position: pos, Grounded: true, Mode: mode}
}

// VehicleState extends ActorState with drive controls. Heading is the body
// orientation and is independent of any camera yaw.
type VehicleState struct {
	ActorState
	Throttle float64
	Steering float64
	Heading  float64
}

// NewVehicleState returns a parked vehicle at pos facing heading.
func NewVehicleState(pos mgl64.Vec3, heading float64) VehicleState {
	v := VehicleState{ActorState: NewActorState(pos, InVehicle), Heading: heading}
	v.Yaw = heading
	return v
}

// Park zeroes throttle and steering.
func (v *VehicleState) Park() {
	if v == nil {
		return
	}
	v.Throttle = 0
	v.Steering = 0
	v.Speed = 0
	v.Velocity = mgl64.Vec3{}
}

// Bounds is the axis-aligned play area on the XZ plane plus the ground level.
type Bounds struct {
	MinX    float64
	MaxX    float64
	MinZ    float64
	MaxZ    float64
	GroundY float64
}

func (b Bounds) bb() cp.BB {
	return cp.BB{L: b.MinX, B: b.MinZ, R: b.MaxX, T: b.MaxZ}
}

// Clamp pulls p inside the rectangle. Y is left alone.
func (b Bounds) Clamp(p mgl64.Vec3) mgl64.Vec3 {
	v := b.bb().ClampVect(&cp.Vector{X: p[0], Y: p[2]})
	return mgl64.Vec3{v.X, p[1], v.Y}
}

// Contains reports whether p lies inside the rectangle, edges included.
func (b Bounds) Contains(p mgl64.Vec3) bool {
	return b.bb().ContainsVect(cp.Vector{X: p[0], Y: p[2]})
}

// PlanarDistance is the XZ distance between two points.
func PlanarDistance(a, b mgl64.Vec3) float64 {
	return cp.Vector{X: a[0], Y: a[2]}.Distance(cp.Vector{X: b[0], Y: b[2]})
}

// ModelYaw returns the biped facing that looks along a drive heading.
func ModelYaw(heading float64) float64 {
	return common.WrapAngle(heading + math.Pi)
}

// forward returns the unit forward axis rotated by a drive heading.
func forward(yaw float64) mgl64.Vec3 {
	return mgl64.Rotate3DY(yaw).Mul3x1(mgl64.Vec3{0, 0, -1})
}

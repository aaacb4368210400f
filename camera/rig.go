package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/roomdrive/common"
)

// Profile is the chase offset for one kind of tracked entity.
type Profile struct {
	Distance   float64
	Height     float64
	LookHeight float64
}

// BipedProfile is the on-foot chase offset.
func BipedProfile() Profile {
	return Profile{Distance: 6, Height: 2.5, LookHeight: 1.2}
}

// VehicleProfile is the driving chase offset.
func VehicleProfile() Profile {
	return Profile{Distance: 8, Height: 4, LookHeight: 1}
}

// State is the user-driven part of the view.
type State struct {
	Yaw        float64
	Pitch      float64
	PitchLimit float64
}

// NewState returns a level view with pitch clamped to +-limit.
func NewState(limit float64) State {
	return State{PitchLimit: math.Abs(limit)}
}

// ApplyLook adds a look delta. Pitch never leaves +-PitchLimit so the view
// cannot flip over the top.
func (s *State) ApplyLook(dyaw, dpitch float64) {
	if s == nil {
		return
	}
	s.Yaw = common.WrapAngle(s.Yaw + dyaw)
	s.Pitch = common.Clamp(s.Pitch+dpitch, -s.PitchLimit, s.PitchLimit)
}

// Transform is what the render camera needs.
type Transform struct {
	Eye    mgl64.Vec3
	LookAt mgl64.Vec3
}

// Offset is the eye position relative to the tracked entity for a view at
// yaw and pitch. Positive pitch raises the eye.
func Offset(p Profile, yaw, pitch float64) mgl64.Vec3 {
	horiz := p.Distance * math.Cos(pitch)
	up := p.Height + p.Distance*math.Sin(pitch)
	return mgl64.Rotate3DY(yaw).Mul3x1(mgl64.Vec3{0, up, horiz})
}

// Rig is a third-person chase camera. Only the eye is smoothed; the look-at
// point follows the target directly.
type Rig struct {
	// Smoothing is the per 60 Hz frame approach factor.
	Smoothing float64

	eye  mgl64.Vec3
	last Transform
}

// NewRig places the eye at start.
func NewRig(start mgl64.Vec3, smoothing float64) *Rig {
	return &Rig{Smoothing: smoothing, eye: start, last: Transform{Eye: start}}
}

// Update moves the eye toward the chase position behind target.
func (r *Rig) Update(target mgl64.Vec3, yaw, pitch float64, p Profile, dt float64) Transform {
	if r == nil {
		return Transform{}
	}
	desired := target.Add(Offset(p, yaw, pitch))
	k := common.Smoothing(r.Smoothing, dt)
	r.eye = r.eye.Add(desired.Sub(r.eye).Mul(k))

	r.last = Transform{
		Eye:    r.eye,
		LookAt: target.Add(mgl64.Vec3{0, p.LookHeight, 0}),
	}
	return r.last
}

// Transform returns the result of the last Update.
func (r *Rig) Transform() Transform {
	if r == nil {
		return Transform{}
	}
	return r.last
}

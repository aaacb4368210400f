package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

const tick = 1.0 / 60.0

func TestOffsetFollowsYaw(t *testing.T) {
	p := Profile{Distance: 6, Height: 2.5}

	o := Offset(p, 0, 0)
	assert.InDelta(t, 0, o[0], 1e-9)
	assert.InDelta(t, 2.5, o[1], 1e-9)
	assert.InDelta(t, 6, o[2], 1e-9, "yaw 0 sits behind an actor facing -Z")

	o = Offset(p, math.Pi/2, 0)
	assert.InDelta(t, 6, o[0], 1e-9)
	assert.InDelta(t, 0, o[2], 1e-9)

	up := Offset(p, 0, math.Pi/6)
	assert.Greater(t, up[1], 2.5)
	assert.Less(t, up[2], 6.0)
}

func TestRigSmoothsEyeOnly(t *testing.T) {
	start := mgl64.Vec3{0, 5, 15}
	r := NewRig(start, 0.1)
	p := BipedProfile()
	target := mgl64.Vec3{3, 0, -2}

	tr := r.Update(target, 0, 0, p, tick)
	desired := target.Add(Offset(p, 0, 0))
	want := start.Add(desired.Sub(start).Mul(0.1))
	assert.InDelta(t, 0, tr.Eye.Sub(want).Len(), 1e-9, "eye moves a fraction toward the chase point")
	assert.Equal(t, mgl64.Vec3{3, p.LookHeight, -2}, tr.LookAt, "look-at is not smoothed")

	for i := 0; i < 300; i++ {
		tr = r.Update(target, 0, 0, p, tick)
	}
	assert.InDelta(t, 0, tr.Eye.Sub(desired).Len(), 1e-6)
	assert.Equal(t, tr, r.Transform())
}

func TestRigApproachIsMonotonic(t *testing.T) {
	r := NewRig(mgl64.Vec3{}, 0.1)
	p := VehicleProfile()
	target := mgl64.Vec3{10, 0, 10}
	desired := target.Add(Offset(p, 1, 0))

	prev := desired.Len()
	for i := 0; i < 60; i++ {
		tr := r.Update(target, 1, 0, p, tick)
		d := tr.Eye.Sub(desired).Len()
		assert.Less(t, d, prev)
		assert.Greater(t, d, 0.0, "never snapped")
		prev = d
	}
}

func TestStateApplyLookClampsPitch(t *testing.T) {
	s := NewState(math.Pi / 4)
	s.ApplyLook(0.5, 10)
	assert.InDelta(t, math.Pi/4, s.Pitch, 1e-12)
	s.ApplyLook(0, -20)
	assert.InDelta(t, -math.Pi/4, s.Pitch, 1e-12)
	assert.InDelta(t, 0.5, s.Yaw, 1e-12)

	s.ApplyLook(2*math.Pi, 0)
	assert.InDelta(t, 0.5, s.Yaw, 1e-9)
}

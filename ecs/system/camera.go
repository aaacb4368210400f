package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/roomdrive/camera"
	"github.com/milk9111/roomdrive/ecs"
	"github.com/milk9111/roomdrive/ecs/component"
)

type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update moves each camera rig toward its target. A vehicle is chased from
// behind its heading; a biped from behind the look yaw.
func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()

	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		if cam.Rig == nil {
			return
		}
		target, ok := findEntityByName(w, cam.TargetName)
		if !ok {
			return
		}
		pos, yaw, ok := trackedPose(w, target, cam.View.Yaw)
		if !ok {
			return
		}
		profile := camera.BipedProfile()
		if p, ok := ecs.Get(w, target, component.CameraProfileComponent.Kind()); ok {
			profile = p.Profile
		}
		cam.Rig.Update(pos, yaw, cam.View.Pitch, profile, dt)
	})
}

func trackedPose(w *ecs.World, e ecs.Entity, lookYaw float64) (mgl64.Vec3, float64, bool) {
	if v, ok := ecs.Get(w, e, component.VehicleComponent.Kind()); ok {
		return v.State.Position, v.State.Heading, true
	}
	if b, ok := ecs.Get(w, e, component.BipedComponent.Kind()); ok {
		return b.State.Position, lookYaw, true
	}
	return mgl64.Vec3{}, 0, false
}

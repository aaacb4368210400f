package system

import (
	"github.com/milk9111/roomdrive/ecs"
	"github.com/milk9111/roomdrive/ecs/component"
	"github.com/milk9111/roomdrive/locomotion"
)

type BipedSystem struct{}

func NewBipedSystem() *BipedSystem {
	return &BipedSystem{}
}

// Update steps every biped that is on foot, relative to the camera yaw. A
// seated biped is frozen until it exits.
func (s *BipedSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()
	bounds := levelBounds(w)
	yaw := viewYaw(w)

	ecs.ForEach2(w, component.BipedComponent.Kind(), component.InputComponent.Kind(), func(_ ecs.Entity, b *component.Biped, in *component.Input) {
		if b.State.Mode == locomotion.InVehicle {
			return
		}
		locomotion.StepBiped(&b.State, in.Intent, yaw, b.Params, bounds, dt)
	})
}

package system

import (
	"github.com/milk9111/roomdrive/ecs"
	"github.com/milk9111/roomdrive/ecs/component"
	"github.com/milk9111/roomdrive/locomotion"
)

type VehicleSystem struct{}

func NewVehicleSystem() *VehicleSystem {
	return &VehicleSystem{}
}

// Update steps every vehicle. An unoccupied vehicle sees an empty intent and
// only coasts.
func (s *VehicleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()
	bounds := levelBounds(w)

	ecs.ForEach2(w, component.VehicleComponent.Kind(), component.InputComponent.Kind(), func(_ ecs.Entity, v *component.Vehicle, in *component.Input) {
		locomotion.StepVehicle(&v.State, in.Intent, v.Params, bounds, dt)
	})
}

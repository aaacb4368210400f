package entity

import (
	"fmt"

	"github.com/milk9111/roomdrive/ecs"
	"github.com/milk9111/roomdrive/ecs/component"
	"github.com/milk9111/roomdrive/locomotion"
	"github.com/milk9111/roomdrive/prefabs"
)

// NewVehicle builds the parked, unoccupied vehicle.
func NewVehicle(w *ecs.World, tun *prefabs.Tuning) (ecs.Entity, error) {
	spec := tun.Vehicle
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: spec.Name}); err != nil {
		return 0, fmt.Errorf("vehicle: add name: %w", err)
	}
	pos := tun.Bounds().Clamp(spec.Position.Vec3())
	pos[1] = tun.World.Bounds.GroundY
	if err := ecs.Add(w, e, component.VehicleComponent.Kind(), &component.Vehicle{
		State:  locomotion.NewVehicleState(pos, spec.Heading),
		Params: tun.VehicleParams(),
	}); err != nil {
		return 0, fmt.Errorf("vehicle: add vehicle: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("vehicle: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.CameraProfileComponent.Kind(), &component.CameraProfile{Profile: tun.VehicleProfile()}); err != nil {
		return 0, fmt.Errorf("vehicle: add camera profile: %w", err)
	}
	return e, nil
}

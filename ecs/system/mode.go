package system

import (
	"github.com/milk9111/roomdrive/ecs"
	"github.com/milk9111/roomdrive/ecs/component"
	"github.com/milk9111/roomdrive/input"
	"github.com/milk9111/roomdrive/locomotion"
	"github.com/rs/zerolog"
)

// ModeChange is the payload of an ecs.EventModeChanged event.
type ModeChange struct {
	From   locomotion.Mode
	To     locomotion.Mode
	Target string
}

// ModeSystem boards and leaves the vehicle when the controlled entity's
// Interact edge fires, and keeps the enter prompt current.
type ModeSystem struct {
	log zerolog.Logger
}

func NewModeSystem(log zerolog.Logger) *ModeSystem {
	return &ModeSystem{log: log}
}

func (s *ModeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	bipedEnt, ok := ecs.First(w, component.PilotComponent.Kind())
	if !ok {
		return
	}
	pilot, _ := ecs.Get(w, bipedEnt, component.PilotComponent.Kind())
	biped, ok := ecs.Get(w, bipedEnt, component.BipedComponent.Kind())
	if !ok || pilot.Switch == nil {
		return
	}
	vehicleEnt, ok := ecs.First(w, component.VehicleComponent.Kind())
	if !ok {
		return
	}
	vehicle, _ := ecs.Get(w, vehicleEnt, component.VehicleComponent.Kind())

	sw := pilot.Switch
	pilot.Prompt = sw.CanEnter(biped.State.Position, vehicle.State.Position)

	controlled := bipedEnt
	if sw.Mode == locomotion.InVehicle {
		controlled = vehicleEnt
	}
	in, ok := ecs.Get(w, controlled, component.InputComponent.Kind())
	if !ok || !in.Intent.Interact {
		return
	}

	from := sw.Mode
	if !sw.Toggle(&biped.State, &vehicle.State, levelBounds(w)) {
		w.Events().Push(ecs.Event{
			Type:   ecs.EventEnterRejected,
			Entity: bipedEnt,
			Data:   locomotion.PlanarDistance(biped.State.Position, vehicle.State.Position),
		})
		return
	}

	next := vehicleEnt
	if sw.Mode == locomotion.OnFoot {
		next = bipedEnt
	}
	ecs.Remove(w, controlled, component.ControlledTagComponent.Kind())
	if err := ecs.Add(w, next, component.ControlledTagComponent.Kind(), &component.ControlledTag{}); err != nil {
		s.log.Error().Err(err).Stringer("entity", next).Msg("mode switch: tag controlled entity")
	}

	// the aggregator was reset by the switch; drop what this tick already copied
	for _, e := range []ecs.Entity{bipedEnt, vehicleEnt} {
		if c, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			c.Intent = input.Intent{}
		}
	}
	pilot.Prompt = false

	target := entityName(w, next)
	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		cam.TargetName = target
		if sw.Mode == locomotion.OnFoot {
			cam.View.Yaw = vehicle.State.Heading
		}
	})

	w.Events().Push(ecs.Event{
		Type:   ecs.EventModeChanged,
		Entity: next,
		Data:   ModeChange{From: from, To: sw.Mode, Target: target},
	})
}

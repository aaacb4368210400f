package entity

import (
	"fmt"

	"github.com/milk9111/roomdrive/actor"
	"github.com/milk9111/roomdrive/animation"
	"github.com/milk9111/roomdrive/ecs"
	"github.com/milk9111/roomdrive/ecs/component"
	"github.com/milk9111/roomdrive/input"
	"github.com/milk9111/roomdrive/locomotion"
	"github.com/milk9111/roomdrive/prefabs"
)

// NewActor builds the controllable biped. It starts on foot and controlled,
// and owns the mode switch, which resets agg on every enter and exit.
func NewActor(w *ecs.World, tun *prefabs.Tuning, agg *input.Aggregator) (ecs.Entity, error) {
	animator, err := newAnimator(w, tun)
	if err != nil {
		return 0, fmt.Errorf("actor: %w", err)
	}

	spec := tun.Actor
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: spec.Name}); err != nil {
		return 0, fmt.Errorf("actor: add name: %w", err)
	}
	pos := tun.Bounds().Clamp(spec.Position.Vec3())
	if err := ecs.Add(w, e, component.BipedComponent.Kind(), &component.Biped{
		State:  locomotion.NewActorState(pos, locomotion.OnFoot),
		Params: tun.BipedParams(),
	}); err != nil {
		return 0, fmt.Errorf("actor: add biped: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("actor: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.ControlledTagComponent.Kind(), &component.ControlledTag{}); err != nil {
		return 0, fmt.Errorf("actor: add controlled tag: %w", err)
	}
	sw := actor.NewSwitch(tun.World.Switch.EnterRadius, tun.World.Switch.ExitOffset, agg)
	if err := ecs.Add(w, e, component.PilotComponent.Kind(), &component.Pilot{Switch: sw}); err != nil {
		return 0, fmt.Errorf("actor: add pilot: %w", err)
	}
	if err := ecs.Add(w, e, component.AnimatorComponent.Kind(), animator); err != nil {
		return 0, fmt.Errorf("actor: add animator: %w", err)
	}
	if err := ecs.Add(w, e, component.CameraProfileComponent.Kind(), &component.CameraProfile{Profile: tun.BipedProfile()}); err != nil {
		return 0, fmt.Errorf("actor: add camera profile: %w", err)
	}
	return e, nil
}

// newAnimator resolves the clip roles. Unresolved roles are reported as an
// event and never fail the build; the selector falls back on its own.
func newAnimator(w *ecs.World, tun *prefabs.Tuning) (*component.Animator, error) {
	patterns, err := tun.Patterns()
	if err != nil {
		return nil, fmt.Errorf("compile patterns: %w", err)
	}
	mixer := animation.NewMixer(tun.ClipDefs())
	roles, rerr := animation.ResolveRoles(mixer.Clips(), patterns)
	if rerr != nil {
		w.Events().Push(ecs.Event{Type: ecs.EventRolesUnresolved, Data: rerr})
	}
	return &component.Animator{
		Selector: animation.NewSelector(roles, tun.SelectorConfig()),
		Mixer:    mixer,
		Roles:    roles,
	}, nil
}

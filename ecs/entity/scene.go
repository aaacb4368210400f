package entity

import (
	"slices"

	"github.com/milk9111/roomdrive/ecs"
	"github.com/milk9111/roomdrive/ecs/component"
	"github.com/milk9111/roomdrive/input"
	"github.com/milk9111/roomdrive/prefabs"
)

// Scene holds the entities of the one-room demo.
type Scene struct {
	Level   ecs.Entity
	Actor   ecs.Entity
	Vehicle ecs.Entity
	Camera  ecs.Entity
}

// BuildScene creates the level, the actor, the vehicle and the camera, and
// applies the input sensitivity to agg.
func BuildScene(w *ecs.World, tun *prefabs.Tuning, agg *input.Aggregator) (Scene, error) {
	var (
		s   Scene
		err error
	)
	if s.Level, err = NewLevel(w, tun); err != nil {
		return Scene{}, err
	}
	if s.Actor, err = NewActor(w, tun, agg); err != nil {
		return Scene{}, err
	}
	if s.Vehicle, err = NewVehicle(w, tun); err != nil {
		return Scene{}, err
	}
	if s.Camera, err = NewCamera(w, tun); err != nil {
		return Scene{}, err
	}
	agg.SetConfig(tun.InputConfig())
	return s, nil
}

// ApplyTuning pushes reloaded tuning into a live scene. Poses, the current
// mode and the camera target are kept; the animator is rebuilt only when the
// clip list changed.
func ApplyTuning(w *ecs.World, s Scene, prev, next *prefabs.Tuning, agg *input.Aggregator) error {
	if lb, ok := ecs.Get(w, s.Level, component.LevelBoundsComponent.Kind()); ok {
		lb.Bounds = next.Bounds()
	}

	if b, ok := ecs.Get(w, s.Actor, component.BipedComponent.Kind()); ok {
		b.Params = next.BipedParams()
		b.State.Position = next.Bounds().Clamp(b.State.Position)
	}
	if p, ok := ecs.Get(w, s.Actor, component.PilotComponent.Kind()); ok && p.Switch != nil {
		p.Switch.Radius = next.World.Switch.EnterRadius
		p.Switch.ExitOffset = next.World.Switch.ExitOffset
	}
	if a, ok := ecs.Get(w, s.Actor, component.AnimatorComponent.Kind()); ok {
		if slices.Equal(prev.ClipDefs(), next.ClipDefs()) && samePatterns(prev, next) {
			a.Selector.SetConfig(next.SelectorConfig())
		} else {
			rebuilt, err := newAnimator(w, next)
			if err != nil {
				return err
			}
			*a = *rebuilt
		}
	}
	if cp, ok := ecs.Get(w, s.Actor, component.CameraProfileComponent.Kind()); ok {
		cp.Profile = next.BipedProfile()
	}

	if v, ok := ecs.Get(w, s.Vehicle, component.VehicleComponent.Kind()); ok {
		v.Params = next.VehicleParams()
		v.State.Position = next.Bounds().Clamp(v.State.Position)
	}
	if cp, ok := ecs.Get(w, s.Vehicle, component.CameraProfileComponent.Kind()); ok {
		cp.Profile = next.VehicleProfile()
	}

	if cam, ok := ecs.Get(w, s.Camera, component.CameraComponent.Kind()); ok {
		cam.Rig.Smoothing = next.World.Camera.Smoothing
		cam.View.PitchLimit = next.World.Camera.PitchLimit
		cam.View.ApplyLook(0, 0)
	}

	agg.SetConfig(next.InputConfig())
	return nil
}

func samePatterns(a, b *prefabs.Tuning) bool {
	pa, pb := a.Actor.Animation.Patterns, b.Actor.Animation.Patterns
	if len(pa) != len(pb) {
		return false
	}
	for role, exprs := range pa {
		if !slices.Equal(exprs, pb[role]) {
			return false
		}
	}
	return true
}

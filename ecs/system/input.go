package system

import (
	"github.com/milk9111/roomdrive/ecs"
	"github.com/milk9111/roomdrive/ecs/component"
	"github.com/milk9111/roomdrive/input"
)

// InputSystem copies the aggregator snapshot onto the controlled entity and
// feeds the look delta into every camera.
type InputSystem struct {
	agg    *input.Aggregator
	locked bool
}

func NewInputSystem(agg *input.Aggregator) *InputSystem {
	return &InputSystem{agg: agg}
}

func (s *InputSystem) Update(w *ecs.World) {
	if s == nil || s.agg == nil || w == nil {
		return
	}

	intent := s.agg.CurrentIntent()
	if locked := s.agg.PointerLocked(); locked != s.locked {
		s.locked = locked
		w.Events().Push(ecs.Event{Type: ecs.EventPointerLock, Data: locked})
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, in *component.Input) {
		if ecs.Has(w, e, component.ControlledTagComponent.Kind()) {
			in.Intent = intent
			return
		}
		in.Intent = input.Intent{}
	})

	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		cam.View.ApplyLook(intent.LookYaw, intent.LookPitch)
	})
}

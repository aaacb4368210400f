package system

import (
	"github.com/milk9111/roomdrive/ecs"
	"github.com/milk9111/roomdrive/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()

	ecs.ForEach2(w, component.AnimatorComponent.Kind(), component.BipedComponent.Kind(), func(e ecs.Entity, a *component.Animator, b *component.Biped) {
		if a.Selector == nil {
			return
		}
		run := false
		if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			run = in.Intent.Run
		}
		if tr, changed := a.Selector.Update(b.State.Speed, run); changed {
			w.Events().Push(ecs.Event{Type: ecs.EventClipChanged, Entity: e, Data: tr})
		}
		a.Mixer.Advance(dt)
	})
}

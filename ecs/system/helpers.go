package system

import (
	"math"

	"github.com/milk9111/roomdrive/ecs"
	"github.com/milk9111/roomdrive/ecs/component"
	"github.com/milk9111/roomdrive/locomotion"
)

var openBounds = locomotion.Bounds{
	MinX: -math.MaxFloat64, MaxX: math.MaxFloat64,
	MinZ: -math.MaxFloat64, MaxZ: math.MaxFloat64,
}

func levelBounds(w *ecs.World) locomotion.Bounds {
	e, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return openBounds
	}
	lb, ok := ecs.Get(w, e, component.LevelBoundsComponent.Kind())
	if !ok {
		return openBounds
	}
	return lb.Bounds
}

func findEntityByName(w *ecs.World, name string) (ecs.Entity, bool) {
	var found ecs.Entity
	ecs.ForEach(w, component.NameComponent.Kind(), func(e ecs.Entity, n *component.Name) {
		if !found.Valid() && n.Value == name {
			found = e
		}
	})
	return found, found.Valid()
}

func entityName(w *ecs.World, e ecs.Entity) string {
	if n, ok := ecs.Get(w, e, component.NameComponent.Kind()); ok {
		return n.Value
	}
	return e.String()
}

func viewYaw(w *ecs.World) float64 {
	e, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return 0
	}
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok {
		return 0
	}
	return cam.View.Yaw
}

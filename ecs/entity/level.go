package entity

import (
	"fmt"

	"github.com/milk9111/roomdrive/ecs"
	"github.com/milk9111/roomdrive/ecs/component"
	"github.com/milk9111/roomdrive/prefabs"
)

func NewLevel(w *ecs.World, tun *prefabs.Tuning) (ecs.Entity, error) {
	level := ecs.CreateEntity(w)
	if err := ecs.Add(w, level, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Bounds: tun.Bounds()}); err != nil {
		return 0, fmt.Errorf("level: add bounds: %w", err)
	}
	return level, nil
}

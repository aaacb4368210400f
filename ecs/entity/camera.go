package entity

import (
	"fmt"

	"github.com/milk9111/roomdrive/camera"
	"github.com/milk9111/roomdrive/ecs"
	"github.com/milk9111/roomdrive/ecs/component"
	"github.com/milk9111/roomdrive/prefabs"
)

func NewCamera(w *ecs.World, tun *prefabs.Tuning) (ecs.Entity, error) {
	spec := tun.World.Camera
	target := spec.Target
	if target == "" {
		target = tun.Actor.Name
	}

	cam := ecs.CreateEntity(w)
	if err := ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{
		TargetName: target,
		Rig:        camera.NewRig(spec.Start.Vec3(), spec.Smoothing),
		View:       camera.NewState(spec.PitchLimit),
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	return cam, nil
}

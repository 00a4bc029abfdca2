package entity

import (
	"fmt"

	"github.com/milk9111/gridstep/ecs"
	"github.com/milk9111/gridstep/ecs/component"
	"github.com/milk9111/gridstep/prefabs"
)

// NewCamera spawns the camera entity. It also carries the world cursor.
func NewCamera(w *ecs.World, spec *prefabs.CameraSpec) (ecs.Entity, error) {
	if spec == nil {
		spec = &prefabs.CameraSpec{}
	}
	zoom := spec.Zoom
	if zoom <= 0 {
		zoom = 1
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      spec.Transform.X,
		Y:      spec.Transform.Y,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		Zoom:       zoom,
		Follow:     spec.Follow,
		Smoothness: spec.Smoothness,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	if err := ecs.Add(w, e, component.CursorComponent.Kind(), &component.Cursor{}); err != nil {
		return 0, fmt.Errorf("camera: add cursor: %w", err)
	}
	return e, nil
}

package system

import (
	"github.com/milk9111/gridstep/common"
	"github.com/milk9111/gridstep/ecs"
	"github.com/milk9111/gridstep/ecs/component"
)

// CameraSystem eases a following camera toward the player.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	if !cam.Follow {
		return
	}
	camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	smooth := cam.Smoothness
	if smooth <= 0 || smooth > 1 {
		smooth = 1
	}
	camTransform.X = common.Lerp(camTransform.X, target.X, smooth)
	camTransform.Y = common.Lerp(camTransform.Y, target.Y, smooth)
}

package system

import (
	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/ecs"
	"github.com/milk9111/wastesorter/ecs/component"
)

// CameraSystem eases the camera towards the player.
type CameraSystem struct {
	camEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if !ecs.IsAlive(w, cs.camEntity) {
		camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}
	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	targetTransform, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		return
	}

	smoothing := cam.Smoothing
	if smoothing <= 0 || smoothing > 1 {
		smoothing = 1
	}
	x := common.Lerp(camTransform.X, targetTransform.X, smoothing)
	if cam.MaxX > cam.MinX {
		x = common.Clamp(x, cam.MinX, cam.MaxX)
	}
	camTransform.X = x
}

// CameraView returns the camera centre and zoom, defaulting to the origin at
// PixelsPerUnit.
func CameraView(w *ecs.World) (x, y, zoom float64) {
	zoom = common.PixelsPerUnit
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return 0, 0, zoom
	}
	if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok && cam.Zoom > 0 {
		zoom = cam.Zoom
	}
	if t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		x, y = t.X, t.Y
	}
	return x, y, zoom
}

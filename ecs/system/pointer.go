package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gridstep/ecs"
	"github.com/milk9111/gridstep/ecs/component"
)

// PointerSystem maps the window cursor into world space through the camera
// and stores it on the camera's Cursor. Nothing changes while the cursor is
// outside the window.
type PointerSystem struct{}

func NewPointerSystem() *PointerSystem {
	return &PointerSystem{}
}

func (p *PointerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	input, ok := ecs.Single(w, component.InputComponent.Kind())
	if !ok || !input.CursorInside {
		return
	}

	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	cursor, ok := ecs.Get(w, camEntity, component.CursorComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())

	geo := CameraGeoM(camTransform, cam)
	cursor.X, cursor.Y = geo.Apply(input.CursorX-input.WindowW/2, input.CursorY-input.WindowH/2)
	cursor.Valid = true
}

// CameraGeoM is the camera's world transform: it maps a point relative to
// the screen center into world space.
func CameraGeoM(t *component.Transform, cam *component.Camera) ebiten.GeoM {
	var geo ebiten.GeoM
	zoom := 1.0
	if cam != nil && cam.Zoom > 0 {
		zoom = cam.Zoom
	}
	geo.Scale(1/zoom, 1/zoom)
	if t != nil {
		geo.Translate(t.X, t.Y)
	}
	return geo
}

// ViewGeoM maps world space onto a screen of the given size.
func ViewGeoM(t *component.Transform, cam *component.Camera, screenW, screenH float64) ebiten.GeoM {
	geo := CameraGeoM(t, cam)
	geo.Invert()
	geo.Translate(screenW/2, screenH/2)
	return geo
}

package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gridstep/ecs"
	"github.com/milk9111/gridstep/ecs/component"
	"golang.org/x/image/colornames"
)

// RenderSystem draws the grid followed by sprites, through the camera.
type RenderSystem struct {
	tileImage *ebiten.Image
}

func NewRenderSystem(tileImage *ebiten.Image) *RenderSystem {
	return &RenderSystem{tileImage: tileImage}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	screen.Fill(colornames.Midnightblue)

	var camTransform *component.Transform
	var cam *component.Camera
	if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		camTransform, _ = ecs.Get(w, camEntity, component.TransformComponent.Kind())
		cam, _ = ecs.Get(w, camEntity, component.CameraComponent.Kind())
	}
	b := screen.Bounds()
	view := ViewGeoM(camTransform, cam, float64(b.Dx()), float64(b.Dy()))

	r.drawTiles(w, screen, view)

	entities := make([]ecs.Entity, 0)
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, _ *component.Transform, s *component.Sprite) {
		if s.Image != nil {
			entities = append(entities, e)
		}
	})
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())

		imgW := float64(s.Image.Bounds().Dx())
		imgH := float64(s.Image.Bounds().Dy())
		width, height := s.Width, s.Height
		if width <= 0 {
			width = imgW
		}
		if height <= 0 {
			height = imgH
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-imgW/2, -imgH/2)
		op.GeoM.Scale(width/imgW, height/imgH)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Translate(t.X, t.Y)
		op.GeoM.Concat(view)
		screen.DrawImage(s.Image, op)
	}
}

func (r *RenderSystem) drawTiles(w *ecs.World, screen *ebiten.Image, view ebiten.GeoM) {
	if r.tileImage == nil {
		return
	}
	gm, ok := ecs.Single(w, component.GridMapComponent.Kind())
	if !ok || gm.Map == nil {
		return
	}

	size := gm.Map.TileSize()
	origin := gm.Map.Origin()
	imgW := float64(r.tileImage.Bounds().Dx())
	imgH := float64(r.tileImage.Bounds().Dy())

	for y := 0; y < gm.Map.Height(); y++ {
		for x := 0; x < gm.Map.Width(); x++ {
			tile := gm.Map.Tile(x, y)
			if tile == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(size.X/imgW, size.Y/imgH)
			op.GeoM.Translate(origin.X+float64(x)*size.X, origin.Y+float64(y)*size.Y)
			op.GeoM.Concat(view)
			if tile.Blocked() {
				op.ColorScale.ScaleWithColor(colornames.Slategray)
			}
			screen.DrawImage(r.tileImage, op)
		}
	}
}

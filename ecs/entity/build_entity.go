package entity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gridstep/assets"
	"github.com/milk9111/gridstep/ecs"
	"github.com/milk9111/gridstep/ecs/component"
	"github.com/milk9111/gridstep/prefabs"
	"github.com/milk9111/gridstep/tilemap"
)

var ErrOffGrid = errors.New("entity: grid position outside map")

// Loader resolves the assets a prefab refers to.
type Loader interface {
	Image(path string) (*ebiten.Image, error)
	Loop(path string) (component.Looper, error)
}

type assetLoader struct{}

func (assetLoader) Image(path string) (*ebiten.Image, error) {
	return assets.LoadImage(path)
}

func (assetLoader) Loop(path string) (component.Looper, error) {
	player, err := assets.LoadLoopPlayer(path)
	if err != nil {
		return nil, err
	}
	return player, nil
}

// AssetLoader reads from the embedded assets package.
var AssetLoader Loader = assetLoader{}

type buildContext struct {
	PrefabPath string
	Map        *tilemap.Map
	Loader     Loader
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":     addPlayerTag,
	"transform":      addTransform,
	"grid_position":  addGridPosition,
	"motion":         addMotion,
	"mover":          addMover,
	"sprite":         addSprite,
	"render_layer":   addRenderLayer,
	"movement_audio": addMovementAudio,
}

var componentBuildOrder = []string{
	"player_tag",
	"transform",
	"grid_position",
	"motion",
	"mover",
	"sprite",
	"render_layer",
	"movement_audio",
}

// BuildEntity creates an entity from a prefab file. When the prefab has a
// grid_position, m is required and the entity starts on that tile's center.
func BuildEntity(w *ecs.World, prefabPath string, m *tilemap.Map, loader Loader) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return buildFromSpec(w, spec, &buildContext{PrefabPath: prefabPath, Map: m, Loader: loader})
}

func buildFromSpec(w *ecs.World, spec prefabs.EntityBuildSpec, ctx *buildContext) (ecs.Entity, error) {
	if ctx == nil {
		ctx = &buildContext{}
	}
	if ctx.Loader == nil {
		ctx.Loader = AssetLoader
	}
	if ctx.PrefabPath == "" {
		ctx.PrefabPath = spec.Name
	}
	prefabPath := ctx.PrefabPath
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		if _, ok := componentRegistry[k]; !ok {
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, k)
		}
		remaining[k] = v
	}

	e := ecs.CreateEntity(w)
	names := make([]string, 0, len(remaining))
	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; ok {
			names = append(names, name)
			delete(remaining, name)
		}
	}
	rest := make([]string, 0, len(remaining))
	for name := range remaining {
		rest = append(rest, name)
	}
	sort.Strings(rest)
	names = append(names, rest...)

	for _, name := range names {
		if err := componentRegistry[name](w, e, spec.Components[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	if ecs.Has(w, e, component.GridPositionComponent.Kind()) {
		if err := PlaceOnGrid(w, e, ctx.Map); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: %w", prefabPath, err)
		}
	}

	return e, nil
}

// PlaceOnGrid snaps the entity's transform onto the center of its tile and
// resets it to idle.
func PlaceOnGrid(w *ecs.World, e ecs.Entity, m *tilemap.Map) error {
	if m == nil {
		return fmt.Errorf("place on grid: no map")
	}
	pos, ok := ecs.Get(w, e, component.GridPositionComponent.Kind())
	if !ok {
		return fmt.Errorf("place on grid: entity %v has no grid position", e)
	}
	if !m.Walkable(int(pos.X), int(pos.Y)) {
		return fmt.Errorf("%w: (%d,%d)", ErrOffGrid, pos.X, pos.Y)
	}

	center := m.TileCenter(int(pos.X), int(pos.Y))
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.SetPosition(center)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), t); err != nil {
		return err
	}
	if motion, ok := ecs.Get(w, e, component.MotionComponent.Kind()); ok {
		motion.Settle()
	}
	return nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type gridPositionSpec = prefabs.GridPositionComponentSpec

func addGridPosition(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[gridPositionSpec](raw)
	if err != nil {
		return fmt.Errorf("decode grid position spec: %w", err)
	}
	return ecs.Add(w, e, component.GridPositionComponent.Kind(), &component.GridPosition{X: spec.X, Y: spec.Y})
}

func addMotion(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.MotionComponent.Kind(), component.NewMotion())
}

type moverSpec = prefabs.MoverComponentSpec

func addMover(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[moverSpec](raw)
	if err != nil {
		return fmt.Errorf("decode mover spec: %w", err)
	}
	if spec.Speed <= 0 {
		spec.Speed = component.DefaultMoveSpeed
	}
	if spec.ArrivalEpsilon <= 0 {
		spec.ArrivalEpsilon = component.DefaultArrivalEpsilon
	}
	return ecs.Add(w, e, component.MoverComponent.Kind(), &component.Mover{
		Speed:          spec.Speed,
		ArrivalEpsilon: spec.ArrivalEpsilon,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	var sprite component.Sprite
	if spec.Image != "" {
		img, err := ctx.Loader.Image(spec.Image)
		if err != nil {
			return fmt.Errorf("load image %q: %w", spec.Image, err)
		}
		sprite.Image = img
	}

	sprite.Width = spec.Width
	sprite.Height = spec.Height
	if ctx.Map != nil {
		tile := ctx.Map.TileSize()
		if sprite.Width == 0 {
			sprite.Width = tile.X - spec.Border
		}
		if sprite.Height == 0 {
			sprite.Height = tile.Y - spec.Border
		}
	}

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type movementAudioSpec = prefabs.MovementAudioComponentSpec

func addMovementAudio(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[movementAudioSpec](raw)
	if err != nil {
		return fmt.Errorf("decode movement audio spec: %w", err)
	}
	if spec.File == "" {
		return nil
	}
	player, err := ctx.Loader.Loop(spec.File)
	if err != nil {
		return fmt.Errorf("load loop %q: %w", spec.File, err)
	}
	player.SetVolume(spec.Volume)
	player.Pause()
	return ecs.Add(w, e, component.MovementAudioComponent.Kind(), &component.MovementAudio{
		Player: player,
		Volume: spec.Volume,
	})
}

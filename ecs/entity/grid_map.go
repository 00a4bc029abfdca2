package entity

import (
	"context"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gridstep/ecs"
	"github.com/milk9111/gridstep/ecs/component"
	"github.com/milk9111/gridstep/prefabs"
	"github.com/milk9111/gridstep/tilemap"
)

// LoadMap builds the tile map a MapSpec describes, running its rules script
// when one is named.
func LoadMap(ctx context.Context, spec *prefabs.MapSpec) (*tilemap.Map, error) {
	if spec == nil {
		return nil, fmt.Errorf("map: spec is nil")
	}

	opts := tilemap.Options{
		Origin: tilemapOrigin(spec),
		TileW:  spec.TileSize.W,
		TileH:  spec.TileSize.H,
		Width:  spec.Width,
		Height: spec.Height,
	}
	if spec.Rules == "" {
		return tilemap.New(opts)
	}

	src, err := prefabs.LoadScript(spec.Rules)
	if err != nil {
		return nil, fmt.Errorf("map %q: load rules %q: %w", spec.Name, spec.Rules, err)
	}
	m, err := tilemap.LoadScript(ctx, src, opts)
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", spec.Name, err)
	}
	return m, nil
}

func tilemapOrigin(spec *prefabs.MapSpec) cp.Vector {
	if spec.Origin.Centered {
		return tilemap.CenteredOrigin(spec.Width, spec.Height, spec.TileSize.W, spec.TileSize.H)
	}
	return cp.Vector{X: spec.Origin.X, Y: spec.Origin.Y}
}

// NewGridMap spawns the map singleton.
func NewGridMap(w *ecs.World, m *tilemap.Map) (ecs.Entity, error) {
	if m == nil {
		return 0, fmt.Errorf("grid map: map is nil")
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GridMapComponent.Kind(), &component.GridMap{Map: m}); err != nil {
		return 0, fmt.Errorf("grid map: %w", err)
	}
	if err := ecs.Add(w, e, component.TileTagComponent.Kind(), &component.TileTag{}); err != nil {
		return 0, fmt.Errorf("grid map: %w", err)
	}
	return e, nil
}

package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gridstep/ecs"
	"github.com/milk9111/gridstep/ecs/component"
)

// ClickResolveSystem turns this tick's click intents into transitions toward
// the clicked tile's center for the same player entities StepSystem moves. Clicks off the grid or on a tile that cannot be
// stood on are dropped, as are clicks for entities already moving.
type ClickResolveSystem struct{}

func NewClickResolveSystem() *ClickResolveSystem {
	return &ClickResolveSystem{}
}

func (c *ClickResolveSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	intents := w.Events().Read(component.ClickIntentEvent)
	if len(intents) == 0 {
		return
	}

	gm, ok := ecs.Single(w, component.GridMapComponent.Kind())
	if !ok || gm.Map == nil {
		return
	}

	for _, evt := range intents {
		intent, ok := evt.Data.(component.ClickIntent)
		if !ok {
			continue
		}

		x, y, ok := gm.Map.Locate(cp.Vector{X: intent.X, Y: intent.Y})
		if !ok || !gm.Map.Walkable(x, y) {
			continue
		}
		target := gm.Map.TileCenter(x, y)

		ecs.ForEach3(w,
			component.PlayerTagComponent.Kind(),
			component.GridPositionComponent.Kind(),
			component.MotionComponent.Kind(),
			func(_ ecs.Entity, _ *component.PlayerTag, _ *component.GridPosition, motion *component.Motion) {
				motion.Begin(target)
			})
	}
}

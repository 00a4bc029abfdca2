package system

import (
	"math"

	"github.com/milk9111/gridstep/ecs"
	"github.com/milk9111/gridstep/ecs/component"
)

// StepSystem starts a one-tile transition from held directional input.
type StepSystem struct{}

func NewStepSystem() *StepSystem {
	return &StepSystem{}
}

func (s *StepSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	input, ok := ecs.Single(w, component.InputComponent.Kind())
	if !ok {
		return
	}
	dx, dy, ok := stepOffset(input)
	if !ok {
		return
	}

	gm, ok := ecs.Single(w, component.GridMapComponent.Kind())
	if !ok || gm.Map == nil {
		return
	}

	ecs.ForEach3(w,
		component.PlayerTagComponent.Kind(),
		component.GridPositionComponent.Kind(),
		component.MotionComponent.Kind(),
		func(_ ecs.Entity, _ *component.PlayerTag, pos *component.GridPosition, motion *component.Motion) {
			if !motion.Idle() {
				return
			}

			n, ok := gm.Map.Neighbor(int(pos.X), int(pos.Y), dx, dy)
			if !ok || n.Tile == nil || n.Tile.Blocked() {
				return
			}
			motion.Begin(gm.Map.TileCenter(n.X, n.Y))
		})
}

// stepOffset rounds held directional input to a neighbor offset. ok is false
// when nothing is held or the input rounds to no movement.
func stepOffset(input *component.Input) (int, int, bool) {
	if input == nil || !input.HasDir {
		return 0, 0, false
	}
	dx := int(math.Round(input.DirX))
	dy := int(math.Round(input.DirY))
	return dx, dy, dx != 0 || dy != 0
}

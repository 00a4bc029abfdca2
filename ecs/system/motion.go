package system

import (
	"log"

	"github.com/milk9111/gridstep/ecs"
	"github.com/milk9111/gridstep/ecs/component"
)

// MotionSystem moves transitioning entities toward their target at a fixed
// speed. Once within the arrival epsilon the entity snaps onto the target,
// goes idle and its GridPosition is recomputed from the target.
type MotionSystem struct{}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (m *MotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	gm, ok := ecs.Single(w, component.GridMapComponent.Kind())
	if !ok || gm.Map == nil {
		return
	}
	dt := w.DeltaTime()

	ecs.ForEach3(w,
		component.MotionComponent.Kind(),
		component.TransformComponent.Kind(),
		component.GridPositionComponent.Kind(),
		func(e ecs.Entity, motion *component.Motion, t *component.Transform, gridPos *component.GridPosition) {
			target, ok := motion.Target()
			if !ok {
				return
			}

			speed := component.DefaultMoveSpeed
			epsilon := component.DefaultArrivalEpsilon
			if mover, ok := ecs.Get(w, e, component.MoverComponent.Kind()); ok {
				if mover.Speed > 0 {
					speed = mover.Speed
				}
				if mover.ArrivalEpsilon > 0 {
					epsilon = mover.ArrivalEpsilon
				}
			}

			pos := t.Position()
			if d := pos.Distance(target); d > epsilon {
				step := speed * dt
				if step >= d {
					pos = target
				} else {
					pos = pos.Add(target.Sub(pos).Normalize().Mult(step))
				}
				t.SetPosition(pos)
			}
			if pos.Distance(target) > epsilon {
				return
			}

			t.SetPosition(target)
			motion.Settle()
			x, y := gm.Map.IndexFromCenter(target)
			if !gm.Map.InBounds(x, y) {
				log.Printf("motion: entity %v arrived at %v outside the grid (%d,%d); grid position left at (%d,%d)", e, target, x, y, gridPos.X, gridPos.Y)
				return
			}
			gridPos.X = uint32(x)
			gridPos.Y = uint32(y)
		})
}

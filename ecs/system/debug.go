package system

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gridstep/ecs"
	"github.com/milk9111/gridstep/ecs/component"
)

// DebugSystem copies the hovered tile index when the copy key is pressed and
// draws an overlay with timing and position readouts.
type DebugSystem struct {
	copyText func(string) error
}

func NewDebugSystem(copyText func(string) error) *DebugSystem {
	return &DebugSystem{copyText: copyText}
}

func (d *DebugSystem) Update(w *ecs.World) {
	if d == nil || d.copyText == nil || w == nil {
		return
	}

	input, ok := ecs.Single(w, component.InputComponent.Kind())
	if !ok || !input.CopyPressed {
		return
	}
	x, y, ok := hoveredTile(w)
	if !ok {
		return
	}
	if err := d.copyText(fmt.Sprintf("%d,%d", x, y)); err != nil {
		log.Printf("debug: copy tile: %v", err)
	}
}

func (d *DebugSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if d == nil || w == nil || screen == nil {
		return
	}

	msg := fmt.Sprintf("TPS: %.1f  FPS: %.1f  tick: %d", ebiten.ActualTPS(), ebiten.ActualFPS(), w.Ticks())
	if cursor, ok := ecs.Single(w, component.CursorComponent.Kind()); ok && cursor.Valid {
		msg += fmt.Sprintf("\ncursor: (%.1f, %.1f)", cursor.X, cursor.Y)
		if x, y, ok := hoveredTile(w); ok {
			msg += fmt.Sprintf(" tile: (%d, %d)", x, y)
		}
	}
	ecs.ForEach3(w,
		component.PlayerTagComponent.Kind(),
		component.GridPositionComponent.Kind(),
		component.MotionComponent.Kind(),
		func(_ ecs.Entity, _ *component.PlayerTag, pos *component.GridPosition, motion *component.Motion) {
			state := "idle"
			if target, ok := motion.Target(); ok {
				state = fmt.Sprintf("moving -> (%.1f, %.1f)", target.X, target.Y)
			}
			msg += fmt.Sprintf("\nplayer: (%d, %d) %s", pos.X, pos.Y, state)
		})
	ebitenutil.DebugPrint(screen, msg)
}

func hoveredTile(w *ecs.World) (int, int, bool) {
	cursor, ok := ecs.Single(w, component.CursorComponent.Kind())
	if !ok || !cursor.Valid {
		return 0, 0, false
	}
	gm, ok := ecs.Single(w, component.GridMapComponent.Kind())
	if !ok || gm.Map == nil {
		return 0, 0, false
	}
	return gm.Map.Locate(cp.Vector{X: cursor.X, Y: cursor.Y})
}

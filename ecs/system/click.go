package system

import (
	"github.com/milk9111/gridstep/ecs"
	"github.com/milk9111/gridstep/ecs/component"
)

// ClickSystem emits a ClickIntent on every tick the action button is down,
// not just on the press edge. Consumers ignore repeats because a moving
// entity drops new commands.
type ClickSystem struct{}

func NewClickSystem() *ClickSystem {
	return &ClickSystem{}
}

func (c *ClickSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	input, ok := ecs.Single(w, component.InputComponent.Kind())
	if !ok || !(input.ActionJustDown || input.ActionDown) {
		return
	}

	cursor, ok := ecs.Single(w, component.CursorComponent.Kind())
	if !ok || !cursor.Valid {
		return
	}

	w.Events().Push(ecs.Event{
		Type: component.ClickIntentEvent,
		Data: component.ClickIntent{X: cursor.X, Y: cursor.Y},
	})
}

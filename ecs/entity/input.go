package entity

import (
	"github.com/milk9111/gridstep/ecs"
	"github.com/milk9111/gridstep/ecs/component"
)

func NewInput(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, err
	}
	return e, nil
}

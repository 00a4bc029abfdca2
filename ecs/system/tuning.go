package system

import (
	"log"

	"github.com/milk9111/gridstep/ecs"
	"github.com/milk9111/gridstep/ecs/component"
	"github.com/milk9111/gridstep/prefabs"
)

// TuningSystem applies edits to player.yaml while the game runs. Changed
// file names arrive on changes; reads never block the tick.
type TuningSystem struct {
	changes <-chan string
	load    func() (*prefabs.PlayerSpec, error)
}

func NewTuningSystem(changes <-chan string, load func() (*prefabs.PlayerSpec, error)) *TuningSystem {
	if load == nil {
		load = prefabs.LoadPlayerSpec
	}
	return &TuningSystem{changes: changes, load: load}
}

func (ts *TuningSystem) Update(w *ecs.World) {
	if ts == nil || ts.changes == nil || w == nil {
		return
	}

	reload := false
	for drained := false; !drained; {
		select {
		case name, ok := <-ts.changes:
			if !ok {
				ts.changes = nil
				drained = true
				break
			}
			if prefabs.IsPlayerSpec(name) {
				reload = true
			}
		default:
			drained = true
		}
	}
	if !reload {
		return
	}

	spec, err := ts.load()
	if err != nil {
		log.Printf("tuning: reload player spec: %v", err)
		return
	}
	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.MoverComponent.Kind(), func(_ ecs.Entity, _ *component.PlayerTag, mover *component.Mover) {
		mover.Speed = spec.MoveSpeed
		mover.ArrivalEpsilon = spec.ArrivalEpsilon
	})
	log.Printf("tuning: player speed=%.1f epsilon=%.2f", spec.MoveSpeed, spec.ArrivalEpsilon)
}

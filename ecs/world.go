package ecs

import "github.com/milk9111/gridstep/ecs/component"

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// World owns entities, component stores, the per-tick event queue and the
// tick clock.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue

	deltaTime float64
	ticks     uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetDeltaTime sets the elapsed seconds for the tick about to run.
func (w *World) SetDeltaTime(dt float64) {
	if w == nil || dt < 0 {
		return
	}
	w.deltaTime = dt
}

// DeltaTime returns the elapsed seconds of the current tick.
func (w *World) DeltaTime() float64 {
	if w == nil {
		return 0
	}
	return w.deltaTime
}

// Ticks returns how many ticks have completed.
func (w *World) Ticks() uint64 {
	if w == nil {
		return 0
	}
	return w.ticks
}

// endTick drops this tick's events. Anything not consumed is lost.
func (w *World) endTick() {
	w.events.flush()
	w.ticks++
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		if !create {
			return nil
		}
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

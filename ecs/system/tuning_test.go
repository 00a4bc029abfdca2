package system

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gridstep/ecs"
	"github.com/milk9111/gridstep/ecs/component"
	"github.com/milk9111/gridstep/prefabs"
)

func TestTuningReloadsOnPlayerSpecChange(t *testing.T) {
	tw := newTestWorld(t, cp.Vector{}, 0, 0)
	changes := make(chan string, 4)
	loads := 0
	tuning := NewTuningSystem(changes, func() (*prefabs.PlayerSpec, error) {
		loads++
		return &prefabs.PlayerSpec{MoveSpeed: 300, ArrivalEpsilon: 0.1}, nil
	})

	changes <- "prefabs/map.yaml"
	tuning.Update(tw.w)
	if loads != 0 {
		t.Fatalf("reloaded on an unrelated change")
	}

	changes <- "prefabs/player.yaml"
	changes <- "prefabs/player.yaml"
	tuning.Update(tw.w)
	if loads != 1 {
		t.Fatalf("loads = %d, want 1", loads)
	}

	mover, _ := ecs.Get(tw.w, tw.player, component.MoverComponent.Kind())
	if mover.Speed != 300 || mover.ArrivalEpsilon != 0.1 {
		t.Fatalf("mover = %+v", *mover)
	}
}

func TestTuningKeepsValuesOnLoadError(t *testing.T) {
	tw := newTestWorld(t, cp.Vector{}, 0, 0)
	changes := make(chan string, 1)
	tuning := NewTuningSystem(changes, func() (*prefabs.PlayerSpec, error) {
		return nil, errors.New("bad yaml")
	})

	changes <- "player.yaml"
	tuning.Update(tw.w)

	mover, _ := ecs.Get(tw.w, tw.player, component.MoverComponent.Kind())
	if mover.Speed != component.DefaultMoveSpeed {
		t.Fatalf("speed = %v, want unchanged", mover.Speed)
	}
}

func TestTuningStopsOnClosedChannel(t *testing.T) {
	tw := newTestWorld(t, cp.Vector{}, 0, 0)
	changes := make(chan string)
	close(changes)
	tuning := NewTuningSystem(changes, nil)

	tuning.Update(tw.w)
	tuning.Update(tw.w)

	if tuning.changes != nil {
		t.Fatalf("expected closed channel to be dropped")
	}
}

package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gridstep/ecs"
	"github.com/milk9111/gridstep/ecs/component"
	"github.com/milk9111/gridstep/tilemap"
)

const tickDT = 1.0 / 60.0

type testWorld struct {
	w      *ecs.World
	m      *tilemap.Map
	player ecs.Entity
	input  *component.Input
	camera ecs.Entity
}

// newTestWorld builds a 4x4 grid of 50 unit tiles with its corner at origin
// and one player idle on (px, py).
func newTestWorld(t *testing.T, origin cp.Vector, px, py uint32) *testWorld {
	t.Helper()

	m, err := tilemap.New(tilemap.Options{Origin: origin, TileW: 50, TileH: 50, Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("tilemap.New: %v", err)
	}

	w := ecs.NewWorld()
	w.SetDeltaTime(tickDT)

	mapEntity := ecs.CreateEntity(w)
	mustAdd(t, w, mapEntity, component.GridMapComponent.Kind(), &component.GridMap{Map: m})

	inputEntity := ecs.CreateEntity(w)
	input := &component.Input{WindowW: 800, WindowH: 600}
	mustAdd(t, w, inputEntity, component.InputComponent.Kind(), input)

	cam := ecs.CreateEntity(w)
	mustAdd(t, w, cam, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, cam, component.CameraComponent.Kind(), &component.Camera{Zoom: 1})
	mustAdd(t, w, cam, component.CursorComponent.Kind(), &component.Cursor{})

	player := ecs.CreateEntity(w)
	center := m.TileCenter(int(px), int(py))
	mustAdd(t, w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, player, component.TransformComponent.Kind(), &component.Transform{X: center.X, Y: center.Y, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, player, component.GridPositionComponent.Kind(), &component.GridPosition{X: px, Y: py})
	mustAdd(t, w, player, component.MotionComponent.Kind(), component.NewMotion())
	mustAdd(t, w, player, component.MoverComponent.Kind(), &component.Mover{
		Speed:          component.DefaultMoveSpeed,
		ArrivalEpsilon: component.DefaultArrivalEpsilon,
	})

	return &testWorld{w: w, m: m, player: player, input: input, camera: cam}
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func (tw *testWorld) motion(t *testing.T) *component.Motion {
	t.Helper()
	m, ok := ecs.Get(tw.w, tw.player, component.MotionComponent.Kind())
	if !ok {
		t.Fatalf("player has no motion")
	}
	return m
}

func (tw *testWorld) grid(t *testing.T) *component.GridPosition {
	t.Helper()
	g, ok := ecs.Get(tw.w, tw.player, component.GridPositionComponent.Kind())
	if !ok {
		t.Fatalf("player has no grid position")
	}
	return g
}

func (tw *testWorld) transform(t *testing.T) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(tw.w, tw.player, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("player has no transform")
	}
	return tr
}

// movementScheduler runs the core systems without an input sampler; tests
// write the Input component directly.
func movementScheduler() *ecs.Scheduler {
	return ecs.NewScheduler(
		NewPointerSystem(),
		NewClickSystem(),
		NewClickResolveSystem(),
		NewStepSystem(),
		NewMotionSystem(),
	)
}

func near(a, b cp.Vector) bool {
	return a.Distance(b) < 1e-6
}

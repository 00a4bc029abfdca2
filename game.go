package main

import (
	"context"
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/gridstep/assets"
	"github.com/milk9111/gridstep/common"
	"github.com/milk9111/gridstep/ecs"
	"github.com/milk9111/gridstep/ecs/component"
	"github.com/milk9111/gridstep/ecs/entity"
	"github.com/milk9111/gridstep/ecs/system"
	"github.com/milk9111/gridstep/prefabs"
	"github.com/milk9111/gridstep/tilemap"
)

// maxDeltaTime keeps a stalled frame from launching the player across tiles.
const maxDeltaTime = 0.06

type GameOptions struct {
	Level    string
	Debug    bool
	CopyText func(string) error
	Changes  <-chan string
}

type Game struct {
	opts  GameOptions
	state GameState
	quit  bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	debug     *system.DebugSystem
	menu      *ebitenui.UI

	gridMap *tilemap.Map
	spawned bool
}

func NewGame(opts GameOptions) *Game {
	g := &Game{
		opts:  opts,
		state: StateLoading,
		world: ecs.NewWorld(),
	}
	g.menu = NewMenuUI(g.play, func() { g.quit = true })
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	switch g.state {
	case StateLoading:
		if err := g.load(); err != nil {
			return err
		}
		g.setState(StateMenu)
	case StateMenu:
		g.menu.Update()
	case StatePlaying:
		dt := 1.0 / float64(ebiten.TPS())
		if dt > maxDeltaTime {
			dt = maxDeltaTime
		}
		g.world.SetDeltaTime(dt)
		g.scheduler.Update(g.world)

		if input, ok := ecs.Single(g.world, component.InputComponent.Kind()); ok && input.MenuPressed {
			system.PauseAudio(g.world)
			g.setState(StateMenu)
		}
	}
	return nil
}

func (g *Game) load() error {
	mapSpec, err := prefabs.LoadMapSpec(g.opts.Level)
	if err != nil {
		return fmt.Errorf("load map spec: %w", err)
	}
	m, err := entity.LoadMap(context.Background(), mapSpec)
	if err != nil {
		return fmt.Errorf("load map: %w", err)
	}
	camSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return fmt.Errorf("load camera spec: %w", err)
	}
	tileImage, err := assets.LoadImage("tiles.png")
	if err != nil {
		return fmt.Errorf("load tiles: %w", err)
	}

	if _, err := entity.NewInput(g.world); err != nil {
		return fmt.Errorf("spawn input: %w", err)
	}
	if _, err := entity.NewCamera(g.world, camSpec); err != nil {
		return fmt.Errorf("spawn camera: %w", err)
	}
	if _, err := entity.NewGridMap(g.world, m); err != nil {
		return fmt.Errorf("spawn map: %w", err)
	}
	g.gridMap = m

	g.render = system.NewRenderSystem(tileImage)
	if g.opts.Debug {
		g.debug = system.NewDebugSystem(g.opts.CopyText)
	}
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(system.EbitenSampler{Width: common.BaseWidth, Height: common.BaseHeight}),
		system.NewPointerSystem(),
		system.NewClickSystem(),
		system.NewClickResolveSystem(),
		system.NewStepSystem(),
		system.NewMotionSystem(),
		system.NewAudioSystem(),
		system.NewCameraSystem(),
	)
	if g.opts.Changes != nil {
		g.scheduler.Add(system.NewTuningSystem(g.opts.Changes, nil))
	}
	if g.debug != nil {
		g.scheduler.Add(g.debug)
	}

	log.Printf("game: loaded map %q (%dx%d)", mapSpec.Name, m.Width(), m.Height())
	return nil
}

// play is the menu's Play handler. The player is spawned the first time.
func (g *Game) play() {
	if !g.spawned {
		if _, err := entity.BuildEntity(g.world, prefabs.PlayerSpecFile, g.gridMap, entity.AssetLoader); err != nil {
			log.Printf("game: spawn player: %v", err)
			return
		}
		g.spawned = true
	}
	g.setState(StatePlaying)
}

func (g *Game) setState(s GameState) {
	if g.state == s {
		return
	}
	log.Printf("game: %s -> %s", g.state, s)
	g.state = s
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state {
	case StateLoading:
		ebitenutil.DebugPrint(screen, "Loading...")
		return
	case StateMenu:
		g.render.Draw(g.world, screen)
		g.menu.Draw(screen)
	case StatePlaying:
		g.render.Draw(g.world, screen)
		g.debug.Draw(g.world, screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

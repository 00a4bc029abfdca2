package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/gridstep/ecs"
	"github.com/milk9111/gridstep/ecs/component"
)

// Sampler reads the devices once per tick.
type Sampler interface {
	Sample() component.Input
}

// EbitenSampler samples keyboard, mouse and the first gamepad. Width and
// Height are the logical screen size the cursor is reported in.
type EbitenSampler struct {
	Width  float64
	Height float64
}

func (s EbitenSampler) Sample() component.Input {
	const stickDeadzone = 0.2

	in := component.Input{WindowW: s.Width, WindowH: s.Height}

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.DirX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.DirX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.DirY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.DirY += 1
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			in.DirX = lx
			in.DirY = ly
		}
		in.MenuPressed = inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}
	in.HasDir = in.DirX != 0 || in.DirY != 0

	cx, cy := ebiten.CursorPosition()
	in.CursorX = float64(cx)
	in.CursorY = float64(cy)
	in.CursorInside = ebiten.IsFocused() && in.CursorX >= 0 && in.CursorY >= 0 && in.CursorX < s.Width && in.CursorY < s.Height

	in.ActionDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.ActionJustDown = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	in.CopyPressed = inpututil.IsKeyJustPressed(ebiten.KeyF2)
	in.MenuPressed = in.MenuPressed || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return in
}

type InputSystem struct {
	sampler Sampler
}

func NewInputSystem(sampler Sampler) *InputSystem {
	return &InputSystem{sampler: sampler}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || i.sampler == nil || w == nil {
		return
	}

	sample := i.sampler.Sample()
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = sample
	})
}

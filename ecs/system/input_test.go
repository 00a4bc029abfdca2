package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gridstep/ecs/component"
)

type fixedSampler component.Input

func (s fixedSampler) Sample() component.Input {
	return component.Input(s)
}

func TestInputSystemWritesSample(t *testing.T) {
	tw := newTestWorld(t, cp.Vector{}, 0, 0)
	sample := fixedSampler{DirX: -1, HasDir: true, CursorX: 5, CursorY: 6, CursorInside: true, WindowW: 320, WindowH: 240}

	NewInputSystem(sample).Update(tw.w)

	if *tw.input != component.Input(sample) {
		t.Fatalf("input = %+v, want %+v", *tw.input, sample)
	}
}

func TestInputSystemWithoutSampler(t *testing.T) {
	tw := newTestWorld(t, cp.Vector{}, 0, 0)
	tw.input.DirY = 1

	NewInputSystem(nil).Update(tw.w)

	if tw.input.DirY != 1 {
		t.Fatalf("input overwritten without a sampler")
	}
}

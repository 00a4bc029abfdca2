package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gridstep/ecs"
	"github.com/milk9111/gridstep/ecs/component"
)

type fakeLooper struct {
	playing bool
	volume  float64
	plays   int
	pauses  int
}

func (f *fakeLooper) Play()                 { f.playing = true; f.plays++ }
func (f *fakeLooper) Pause()                { f.playing = false; f.pauses++ }
func (f *fakeLooper) IsPlaying() bool       { return f.playing }
func (f *fakeLooper) SetVolume(vol float64) { f.volume = vol }

func TestAudioFollowsDirectionalInput(t *testing.T) {
	tw := newTestWorld(t, cp.Vector{}, 0, 0)
	loop := &fakeLooper{}
	mustAdd(t, tw.w, tw.player, component.MovementAudioComponent.Kind(), &component.MovementAudio{Player: loop, Volume: 0.3})
	audio := NewAudioSystem()

	audio.Update(tw.w)
	if loop.playing {
		t.Fatalf("playing without input")
	}

	tw.input.DirX, tw.input.HasDir = 1, true
	audio.Update(tw.w)
	audio.Update(tw.w)
	if !loop.playing || loop.plays != 1 {
		t.Fatalf("playing = %v plays = %d, want one resume", loop.playing, loop.plays)
	}
	if loop.volume != 0.3 {
		t.Fatalf("volume = %v, want 0.3", loop.volume)
	}

	tw.input.DirX, tw.input.HasDir = 0, false
	audio.Update(tw.w)
	if loop.playing || loop.pauses != 1 {
		t.Fatalf("playing = %v pauses = %d, want paused once", loop.playing, loop.pauses)
	}
}

func TestPauseAudio(t *testing.T) {
	w := ecs.NewWorld()
	loop := &fakeLooper{playing: true}
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.MovementAudioComponent.Kind(), &component.MovementAudio{Player: loop})
	silent := ecs.CreateEntity(w)
	mustAdd(t, w, silent, component.MovementAudioComponent.Kind(), &component.MovementAudio{})

	PauseAudio(w)

	if loop.playing {
		t.Fatalf("loop still playing")
	}
}

func TestAudioIgnoresInputThatDoesNotStep(t *testing.T) {
	tw := newTestWorld(t, cp.Vector{}, 0, 0)
	loop := &fakeLooper{}
	mustAdd(t, tw.w, tw.player, component.MovementAudioComponent.Kind(), &component.MovementAudio{Player: loop, Volume: 0.3})

	tw.input.DirX, tw.input.DirY, tw.input.HasDir = 0.3, -0.2, true
	NewAudioSystem().Update(tw.w)

	if loop.playing {
		t.Fatalf("loop playing for a tilt too small to step")
	}
}

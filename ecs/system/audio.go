package system

import (
	"github.com/milk9111/gridstep/ecs"
	"github.com/milk9111/gridstep/ecs/component"
)

// AudioSystem keeps the movement loop playing while a direction that would
// step the player is held.
type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	moving := false
	if input, ok := ecs.Single(w, component.InputComponent.Kind()); ok {
		_, _, moving = stepOffset(input)
	}

	ecs.ForEach(w, component.MovementAudioComponent.Kind(), func(_ ecs.Entity, sound *component.MovementAudio) {
		if sound.Player == nil {
			return
		}
		switch {
		case moving && !sound.Player.IsPlaying():
			sound.Player.SetVolume(sound.Volume)
			sound.Player.Play()
		case !moving && sound.Player.IsPlaying():
			sound.Player.Pause()
		}
	})
}

// PauseAudio silences every movement loop, e.g. when leaving play.
func PauseAudio(w *ecs.World) {
	ecs.ForEach(w, component.MovementAudioComponent.Kind(), func(_ ecs.Entity, sound *component.MovementAudio) {
		if sound.Player != nil && sound.Player.IsPlaying() {
			sound.Player.Pause()
		}
	})
}

package component

// Looper is the slice of *audio.Player the movement sound needs.
type Looper interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
}

// MovementAudio plays while directional input is held.
type MovementAudio struct {
	Player Looper
	Volume float64
}

var MovementAudioComponent = NewComponent[MovementAudio]()

package main

type GameState int

const (
	StateLoading GameState = iota
	StateMenu
	StatePlaying
)

func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

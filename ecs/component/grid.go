package component

import "github.com/milk9111/gridstep/tilemap"

// GridMap is the map singleton. The map is not modified during play.
type GridMap struct {
	Map *tilemap.Map
}

var GridMapComponent = NewComponent[GridMap]()

// GridPosition is the authoritative tile index of a movable entity. Only the
// motion system writes it, at the instant a transition completes.
type GridPosition struct {
	X uint32
	Y uint32
}

var GridPositionComponent = NewComponent[GridPosition]()

package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is drawn centered on the entity's transform, scaled to Width x Height
// world units.
type Sprite struct {
	Image  *ebiten.Image
	Width  float64
	Height float64
}

var SpriteComponent = NewComponent[Sprite]()

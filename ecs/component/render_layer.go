package component

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

const (
	LayerTiles = iota
	LayerActors
)

var RenderLayerComponent = NewComponent[RenderLayer]()

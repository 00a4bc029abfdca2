package component

// Mover tunes how an entity travels between tiles.
type Mover struct {
	Speed          float64
	ArrivalEpsilon float64
}

const (
	DefaultMoveSpeed      = 150.0
	DefaultArrivalEpsilon = 0.4
)

var MoverComponent = NewComponent[Mover]()

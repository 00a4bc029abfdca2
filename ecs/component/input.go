package component

// Input stores the raw input sample for the current tick.
type Input struct {
	// Directional movement keys. HasDir is false when nothing is held.
	DirX   float64
	DirY   float64
	HasDir bool

	// Pointer in window space.
	CursorX      float64
	CursorY      float64
	CursorInside bool
	WindowW      float64
	WindowH      float64

	// Action (click) button.
	ActionDown     bool
	ActionJustDown bool

	CopyPressed bool
	MenuPressed bool
}

var InputComponent = NewComponent[Input]()

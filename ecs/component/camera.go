package component

type Camera struct {
	Zoom       float64
	Follow     bool
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()

// Cursor is the pointer position in world space. It lives on the camera
// entity and only the pointer system writes it; Valid stays false until the
// cursor has been inside the window once.
type Cursor struct {
	X     float64
	Y     float64
	Valid bool
}

var CursorComponent = NewComponent[Cursor]()

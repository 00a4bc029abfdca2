package component

// ClickIntentEvent is the event type carrying a ClickIntent payload.
const ClickIntentEvent = "click_intent"

// ClickIntent is a pointer action in world space.
type ClickIntent struct {
	X float64
	Y float64
}

package components

// Position represents a fish's viewport position in pixels.
type Position struct {
	X, Y float64
}

// Velocity represents a fish's velocity in pixels per tick.
type Velocity struct {
	X, Y float64
}

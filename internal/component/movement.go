package component

// Position is the top-left corner of an entity in screen coordinates.
type Position struct {
	X, Y float64
}

// Velocity in pixels per second.
type Velocity struct {
	VX, VY float64
}

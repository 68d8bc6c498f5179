// component/movement.go
package component

// Position is the world position component.
type Position struct {
	X, Y float64
}

// Velocity holds an entity's base movement speed in pixels per second.
type Velocity struct {
	Speed float64
}

package component

// Velocity is measured in world units per tick. Negative Y points down.
type Velocity struct {
	X float64
	Y float64
	Z float64
}

var VelocityComponent = NewComponent[Velocity]()

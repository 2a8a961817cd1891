package component

import "github.com/jakecoffman/cp"

// Transform is the actor's center position and size. Z is carried for the
// renderer and ignored by physics.
type Transform struct {
	X      float64
	Y      float64
	Z      float64
	ScaleX float64
	ScaleY float64
}

// HalfExtents returns half the scale on each axis.
func (t Transform) HalfExtents() cp.Vector {
	return cp.Vector{X: t.ScaleX / 2, Y: t.ScaleY / 2}
}

// Box returns the axis-aligned box covered by the transform.
func (t Transform) Box() cp.BB {
	half := t.HalfExtents()
	return cp.NewBBForExtents(cp.Vector{X: t.X, Y: t.Y}, half.X, half.Y)
}

var TransformComponent = NewComponent[Transform]()

package render

import "github.com/jakecoffman/cp"

// Camera maps world space (y up, origin at the centre) onto a screen of
// Width x Height pixels (y down, origin top left).
type Camera struct {
	Width  float64
	Height float64
	Zoom   float64
	Center cp.Vector
}

func NewCamera(width, height int) Camera {
	return Camera{Width: float64(width), Height: float64(height), Zoom: 1}
}

func (c Camera) zoom() float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}

// ToScreen converts a world point to screen pixels.
func (c Camera) ToScreen(v cp.Vector) (float64, float64) {
	z := c.zoom()
	return c.Width/2 + (v.X-c.Center.X)*z, c.Height/2 - (v.Y-c.Center.Y)*z
}

// BoxToScreen returns the top left corner and size of bb in screen pixels.
func (c Camera) BoxToScreen(bb cp.BB) (x, y, w, h float64) {
	x, y = c.ToScreen(cp.Vector{X: bb.L, Y: bb.T})
	z := c.zoom()
	return x, y, (bb.R - bb.L) * z, (bb.T - bb.B) * z
}

// Visible reports whether any part of bb lands on screen.
func (c Camera) Visible(bb cp.BB) bool {
	x, y, w, h := c.BoxToScreen(bb)
	return x+w > 0 && y+h > 0 && x < c.Width && y < c.Height
}

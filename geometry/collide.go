package geometry

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Side is the face of the other box that a moving box hit.
type Side int

const (
	Left Side = iota + 1
	Right
	Top
	Bottom
	Inside
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Inside:
		return "inside"
	default:
		return "none"
	}
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func Overlaps(a, b cp.BB) bool {
	return a.L < b.R && a.R > b.L && a.B < b.T && a.T > b.B
}

// Collide classifies how box a penetrates box b. ok is false when the boxes
// do not overlap.
//
// Each axis reports a side only when a straddles exactly one edge of b;
// otherwise that axis is Inside with unbounded depth. The axis with the
// shallower penetration wins, with ties going to the horizontal axis.
func Collide(a, b cp.BB) (side Side, ok bool) {
	if !Overlaps(a, b) {
		return 0, false
	}

	xSide, xDepth := Inside, math.Inf(1)
	switch {
	case a.L < b.L && a.R > b.L && a.R < b.R:
		xSide, xDepth = Left, b.L-a.R
	case a.L > b.L && a.L < b.R && a.R > b.R:
		xSide, xDepth = Right, a.L-b.R
	}

	ySide, yDepth := Inside, math.Inf(1)
	switch {
	case a.B < b.B && a.T > b.B && a.T < b.T:
		ySide, yDepth = Bottom, b.B-a.T
	case a.B > b.B && a.B < b.T && a.T > b.T:
		ySide, yDepth = Top, a.B-b.T
	}

	if math.Abs(yDepth) < math.Abs(xDepth) {
		return ySide, true
	}
	return xSide, true
}

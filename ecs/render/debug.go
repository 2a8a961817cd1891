package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/geometry"
	"github.com/milk9111/platformer/sim"
	"golang.org/x/image/colornames"
)

const (
	debugStroke  = 1
	debugDotSize = 6
)

var (
	debugFloorColor   = colornames.Lime
	debugSupportColor = colornames.Gold
	debugActorColor   = colornames.White
	debugContactColor = colornames.Orangered
)

// DrawDebug outlines floor-capable surfaces and the actor box, marks the
// side of every contact from the last tick and prints the actor state.
func DrawDebug(s *sim.Simulation, camera Camera, screen *ebiten.Image) {
	if s == nil || screen == nil {
		return
	}
	d := &debugDrawer{screen: screen, camera: camera}
	actor := s.Actor()

	s.Registry().Each(func(h geometry.Handle, surface geometry.Surface) {
		if !surface.FloorCapable {
			return
		}
		clr := color.Color(debugFloorColor)
		if actor.Support.On(h) {
			clr = debugSupportColor
		}
		d.strokeBox(surface.Box(), clr)
	})
	d.strokeBox(actor.Box(), debugActorColor)

	for _, contact := range s.Contacts() {
		d.drawContact(actor.Box(), contact)
	}

	text := fmt.Sprintf("Tick: %d\nPos: %.1f, %.1f\nVel: %.1f, %.1f\nSupport: %s\nContacts: %s",
		s.Ticks(),
		actor.Position.X, actor.Position.Y,
		actor.Velocity.X, actor.Velocity.Y,
		actor.Support,
		contactSummary(s.Contacts()),
	)
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}

type debugDrawer struct {
	screen *ebiten.Image
	camera Camera
}

func (d *debugDrawer) strokeBox(bb cp.BB, clr color.Color) {
	x, y, w, h := d.camera.BoxToScreen(bb)
	vector.StrokeRect(d.screen, float32(x), float32(y), float32(w), float32(h), debugStroke, clr, false)
}

func (d *debugDrawer) drawDot(pos cp.Vector, clr color.Color) {
	x, y := d.camera.ToScreen(pos)
	half := float64(debugDotSize) / 2
	vector.DrawFilledRect(d.screen, float32(x-half), float32(y-half), debugDotSize, debugDotSize, clr, false)
}

// drawContact marks the edge of the actor box named by the contact side.
func (d *debugDrawer) drawContact(box cp.BB, contact system.Contact) {
	center := box.Center()
	switch contact.Side {
	case geometry.Left:
		d.drawDot(cp.Vector{X: box.R, Y: center.Y}, debugContactColor)
	case geometry.Right:
		d.drawDot(cp.Vector{X: box.L, Y: center.Y}, debugContactColor)
	case geometry.Top:
		d.drawDot(cp.Vector{X: center.X, Y: box.B}, debugContactColor)
	case geometry.Bottom:
		d.drawDot(cp.Vector{X: center.X, Y: box.T}, debugContactColor)
	default:
		d.drawDot(center, debugContactColor)
	}
}

func contactSummary(contacts []system.Contact) string {
	if len(contacts) == 0 {
		return "none"
	}
	out := ""
	for i, c := range contacts {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%d:%s", c.Surface, c.Side)
	}
	return out
}

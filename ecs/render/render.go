// Package render draws the surface registry and the actor with ebiten.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/geometry"
	"golang.org/x/image/colornames"
)

var (
	defaultSurfaceColor = colornames.Lightgrey
	defaultActorColor   = colornames.Crimson
)

// RenderSystem draws every surface in registry order, then the actor.
type RenderSystem struct {
	camera        Camera
	surfaceColors []color.Color
	actorColor    color.Color
}

// NewRenderSystem uses surfaceColors by handle; missing or nil entries fall
// back to light grey.
func NewRenderSystem(camera Camera, surfaceColors []color.Color, actorColor color.Color) *RenderSystem {
	if actorColor == nil {
		actorColor = defaultActorColor
	}
	return &RenderSystem{
		camera:        camera,
		surfaceColors: surfaceColors,
		actorColor:    actorColor,
	}
}

func (r *RenderSystem) Camera() Camera {
	return r.camera
}

func (r *RenderSystem) SetCamera(camera Camera) {
	r.camera = camera
}

func (r *RenderSystem) surfaceColor(h geometry.Handle) color.Color {
	if int(h) < len(r.surfaceColors) && r.surfaceColors[h] != nil {
		return r.surfaceColors[h]
	}
	return defaultSurfaceColor
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	w.Registry().Each(func(h geometry.Handle, s geometry.Surface) {
		r.fillBox(screen, s.Box(), r.surfaceColor(h))
	})

	for _, e := range w.Query(component.ActorTagComponent.Kind(), component.TransformComponent.Kind()) {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		r.fillBox(screen, t.Box(), r.actorColor)
	}
}

func (r *RenderSystem) fillBox(screen *ebiten.Image, bb cp.BB, clr color.Color) {
	if !r.camera.Visible(bb) {
		return
	}
	x, y, w, h := r.camera.BoxToScreen(bb)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

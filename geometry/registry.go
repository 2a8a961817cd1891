// Package geometry holds the static world surfaces and the box overlap
// classification used by the collision resolver.
package geometry

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Handle identifies a surface by its index in the registry.
type Handle int

// Surface is an axis-aligned rectangle. Surfaces that are not floor capable
// are scenery and take part in no collision logic.
type Surface struct {
	Center       cp.Vector
	Half         cp.Vector
	FloorCapable bool
}

// Box returns the bounds of the surface.
func (s Surface) Box() cp.BB {
	return cp.NewBBForExtents(s.Center, s.Half.X, s.Half.Y)
}

// Entry pairs a surface with its handle.
type Entry struct {
	Handle  Handle
	Surface Surface
}

// Registry is an append-only arena of surfaces. Handles stay valid for the
// life of the registry.
type Registry struct {
	surfaces []Surface
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a surface and returns its handle.
func (r *Registry) Add(center, half cp.Vector, floorCapable bool) Handle {
	r.surfaces = append(r.surfaces, Surface{Center: center, Half: half, FloorCapable: floorCapable})
	return Handle(len(r.surfaces) - 1)
}

// Get returns the surface for h. Handles only come from Add, so an unknown
// handle is a programming error and panics.
func (r *Registry) Get(h Handle) Surface {
	if r == nil || h < 0 || int(h) >= len(r.surfaces) {
		panic(fmt.Sprintf("geometry: unknown surface handle %d", h))
	}
	return r.surfaces[h]
}

// Len returns the number of surfaces.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.surfaces)
}

// Each calls fn for every surface in insertion order.
func (r *Registry) Each(fn func(h Handle, s Surface)) {
	if r == nil {
		return
	}
	for i, s := range r.surfaces {
		fn(Handle(i), s)
	}
}

// Entries returns a copy of every surface with its handle, in insertion order.
func (r *Registry) Entries() []Entry {
	if r == nil {
		return nil
	}
	out := make([]Entry, 0, len(r.surfaces))
	for i, s := range r.surfaces {
		out = append(out, Entry{Handle: Handle(i), Surface: s})
	}
	return out
}

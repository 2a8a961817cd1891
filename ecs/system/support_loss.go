package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/geometry"
)

// SupportLossSystem drops an actor's support once its box stops overlapping
// the supporting surface, so walking off a ledge lets gravity act again.
type SupportLossSystem struct{}

func NewSupportLossSystem() *SupportLossSystem {
	return &SupportLossSystem{}
}

func (s *SupportLossSystem) Update(w *ecs.World) {
	if w == nil || w.Registry() == nil {
		return
	}

	entities := w.Query(
		component.ActorTagComponent.Kind(),
		component.TransformComponent.Kind(),
		component.SupportComponent.Kind(),
	)
	for _, e := range entities {
		support, _ := ecs.Get(w, e, component.SupportComponent)
		if !support.Valid {
			continue
		}
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		surface := w.Registry().Get(support.Surface)
		if geometry.Overlaps(transform.Box(), surface.Box()) {
			continue
		}

		if err := ecs.Add(w, e, component.SupportComponent, component.Support{}); err != nil {
			panic("support loss system: clear support: " + err.Error())
		}
		w.Events().Push(ecs.Event{Type: EventSupportLost, Data: support.Surface})
	}
}

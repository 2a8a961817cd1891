package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/geometry"
)

const (
	EventContact     = "contact"
	EventSupportLost = "support_lost"
)

// Contact is one classified overlap between the actor and a floor-capable
// surface.
type Contact struct {
	Entity  ecs.Entity
	Surface geometry.Handle
	Side    geometry.Side
}

// ResolveCollisions classifies box against every floor-capable surface in
// registry order and applies the result to vel and support:
//
//	top     velocity Y = 0, support = surface
//	bottom  velocity Y = bounce
//	inside  support = surface
//	left/right  nothing
//
// Later surfaces overwrite earlier ones. Surfaces the box does not overlap
// leave everything untouched. The applied contacts are returned in order.
func ResolveCollisions(box cp.BB, vel *component.Velocity, support *component.Support, registry *geometry.Registry, bounce float64) []Contact {
	var contacts []Contact
	registry.Each(func(h geometry.Handle, s geometry.Surface) {
		if !s.FloorCapable {
			return
		}
		side, ok := geometry.Collide(box, s.Box())
		if !ok {
			return
		}

		switch side {
		case geometry.Top:
			vel.Y = 0
			*support = component.SupportedBy(h)
		case geometry.Bottom:
			vel.Y = bounce
		case geometry.Inside:
			*support = component.SupportedBy(h)
		}
		contacts = append(contacts, Contact{Surface: h, Side: side})
	})
	return contacts
}

// CollisionSystem resolves actor contacts against the world's registry and
// pushes one EventContact per contact.
type CollisionSystem struct {
	tuning Tuning
}

func NewCollisionSystem(tuning Tuning) *CollisionSystem {
	return &CollisionSystem{tuning: tuning}
}

func (c *CollisionSystem) Update(w *ecs.World) {
	if w == nil || w.Registry() == nil {
		return
	}

	entities := w.Query(
		component.ActorTagComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.SupportComponent.Kind(),
	)
	for _, e := range entities {
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		vel, _ := ecs.Get(w, e, component.VelocityComponent)
		support, _ := ecs.Get(w, e, component.SupportComponent)

		contacts := ResolveCollisions(transform.Box(), &vel, &support, w.Registry(), c.tuning.BounceSpeed)
		if len(contacts) == 0 {
			continue
		}

		if err := ecs.Add(w, e, component.VelocityComponent, vel); err != nil {
			panic("collision system: update velocity: " + err.Error())
		}
		if err := ecs.Add(w, e, component.SupportComponent, support); err != nil {
			panic("collision system: update support: " + err.Error())
		}
		for _, contact := range contacts {
			contact.Entity = e
			w.Events().Push(ecs.Event{Type: EventContact, Data: contact})
		}
	}
}

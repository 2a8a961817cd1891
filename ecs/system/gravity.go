package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// GravitySystem accelerates unsupported actors downward and integrates the
// vertical velocity into position.
type GravitySystem struct {
	tuning Tuning
}

func NewGravitySystem(tuning Tuning) *GravitySystem {
	return &GravitySystem{tuning: tuning}
}

func (g *GravitySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := w.Query(
		component.ActorTagComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
	)
	for _, e := range entities {
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		vel, _ := ecs.Get(w, e, component.VelocityComponent)
		support, _ := ecs.Get(w, e, component.SupportComponent)

		// The guard runs before the decrement, so one step can overshoot the
		// terminal velocity by up to a gravity step.
		if !support.Valid && vel.Y > g.tuning.TerminalVelocity {
			vel.Y -= g.tuning.Gravity
		}
		transform.Y += vel.Y

		if err := ecs.Add(w, e, component.TransformComponent, transform); err != nil {
			panic("gravity system: update transform: " + err.Error())
		}
		if err := ecs.Add(w, e, component.VelocityComponent, vel); err != nil {
			panic("gravity system: update velocity: " + err.Error())
		}
	}
}

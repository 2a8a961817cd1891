package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// MovementSystem turns the sampled controls into a horizontal step and,
// when the actor has landed somewhere, a jump.
type MovementSystem struct {
	tuning Tuning
}

func NewMovementSystem(tuning Tuning) *MovementSystem {
	return &MovementSystem{tuning: tuning}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := w.Query(
		component.ActorTagComponent.Kind(),
		component.InputComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
	)
	for _, e := range entities {
		in, _ := ecs.Get(w, e, component.InputComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		vel, _ := ecs.Get(w, e, component.VelocityComponent)
		support, _ := ecs.Get(w, e, component.SupportComponent)

		var intent component.Intent
		// Left and right add up, so holding both cancels out.
		if in.Left {
			intent.DX -= m.tuning.MoveStep
		}
		if in.Right {
			intent.DX += m.tuning.MoveStep
		}
		if in.Jump && support.Valid {
			vel.Y = m.tuning.JumpSpeed
			intent.DY += m.tuning.JumpIntent
		}

		// Only the horizontal intent moves the actor here. Vertical motion is
		// integrated from velocity by the gravity system.
		transform.X += intent.DX

		if err := ecs.Add(w, e, component.TransformComponent, transform); err != nil {
			panic("movement system: update transform: " + err.Error())
		}
		if err := ecs.Add(w, e, component.VelocityComponent, vel); err != nil {
			panic("movement system: update velocity: " + err.Error())
		}
		if err := ecs.Add(w, e, component.IntentComponent, intent); err != nil {
			panic("movement system: update intent: " + err.Error())
		}
	}
}

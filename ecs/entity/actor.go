package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// ErrActorExists is returned when a world already holds an actor.
var ErrActorExists = errors.New("entity: world already has an actor")

// ActorSpawn is the starting state of the actor.
type ActorSpawn struct {
	X        float64
	Y        float64
	Z        float64
	ScaleX   float64
	ScaleY   float64
	Velocity component.Velocity
}

// DefaultActorSpawn is a 30x30 actor at (0, -250) drifting down at 1 unit
// per tick.
func DefaultActorSpawn() ActorSpawn {
	return ActorSpawn{
		X:        0,
		Y:        -250,
		ScaleX:   30,
		ScaleY:   30,
		Velocity: component.Velocity{Y: -1},
	}
}

// NewActor creates the single actor of w. It starts with no support.
func NewActor(w *ecs.World, spawn ActorSpawn) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("actor: world is nil")
	}
	if _, ok := w.First(component.ActorTagComponent.Kind()); ok {
		return 0, ErrActorExists
	}

	e := w.CreateEntity()
	add := func(name string, err error) error {
		if err != nil {
			w.DestroyEntity(e)
			return fmt.Errorf("actor: add %s: %w", name, err)
		}
		return nil
	}

	if err := add("tag", ecs.Add(w, e, component.ActorTagComponent, component.ActorTag{})); err != nil {
		return 0, err
	}
	transform := component.Transform{X: spawn.X, Y: spawn.Y, Z: spawn.Z, ScaleX: spawn.ScaleX, ScaleY: spawn.ScaleY}
	if err := add("transform", ecs.Add(w, e, component.TransformComponent, transform)); err != nil {
		return 0, err
	}
	if err := add("velocity", ecs.Add(w, e, component.VelocityComponent, spawn.Velocity)); err != nil {
		return 0, err
	}
	if err := add("support", ecs.Add(w, e, component.SupportComponent, component.Support{})); err != nil {
		return 0, err
	}
	if err := add("input", ecs.Add(w, e, component.InputComponent, component.Input{})); err != nil {
		return 0, err
	}
	if err := add("intent", ecs.Add(w, e, component.IntentComponent, component.Intent{})); err != nil {
		return 0, err
	}
	return e, nil
}

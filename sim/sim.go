// Package sim runs the fixed-step actor simulation: input, movement, gravity
// and collision resolution against a static surface registry.
package sim

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/geometry"
	"github.com/milk9111/platformer/input"
)

var (
	ErrActorExists = entity.ErrActorExists
	ErrNoRegistry  = errors.New("sim: registry is nil")
)

// Config is the tuning and starting state of a simulation.
type Config struct {
	Tuning system.Tuning
	Spawn  entity.ActorSpawn
}

func DefaultConfig() Config {
	return Config{
		Tuning: system.DefaultTuning(),
		Spawn:  entity.DefaultActorSpawn(),
	}
}

// ActorState is a read-only copy of the actor after the last tick.
type ActorState struct {
	Position    cp.Vector
	Z           float64
	HalfExtents cp.Vector
	Velocity    cp.Vector
	Support     component.Support
}

// Box returns the actor's bounds.
func (a ActorState) Box() cp.BB {
	return cp.NewBBForExtents(a.Position, a.HalfExtents.X, a.HalfExtents.Y)
}

type Option func(*Simulation)

// WithLogger sets the logger used for per-tick debug output.
func WithLogger(logger *log.Logger) Option {
	return func(s *Simulation) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Simulation owns the world with its single actor and the ordered systems
// that make up one tick.
type Simulation struct {
	world     *ecs.World
	actor     ecs.Entity
	scheduler *ecs.Scheduler
	input     *system.InputSystem
	logger    *log.Logger

	contacts []system.Contact
	ticks    int
}

// New builds a simulation over registry. The registry must not change once
// the simulation exists.
func New(registry *geometry.Registry, sampler input.Sampler, cfg Config, opts ...Option) (*Simulation, error) {
	if registry == nil {
		return nil, ErrNoRegistry
	}

	s := &Simulation{logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}

	s.world = ecs.NewWorld()
	s.world.SetRegistry(registry)

	actor, err := entity.NewActor(s.world, cfg.Spawn)
	if err != nil {
		return nil, err
	}
	s.actor = actor

	s.input = system.NewInputSystem(sampler, s.logger)
	s.scheduler = ecs.NewScheduler(
		s.input,
		system.NewMovementSystem(cfg.Tuning),
	)
	if cfg.Tuning.DetectSupportLoss {
		s.scheduler.Add(system.NewSupportLossSystem())
	}
	s.scheduler.Add(system.NewGravitySystem(cfg.Tuning))
	s.scheduler.Add(system.NewCollisionSystem(cfg.Tuning))

	return s, nil
}

// Tick advances the simulation by one fixed step.
func (s *Simulation) Tick() {
	s.scheduler.Update(s.world)
	s.ticks++

	s.contacts = s.contacts[:0]
	for _, evt := range s.world.Events().Drain() {
		switch evt.Type {
		case system.EventContact:
			if contact, ok := evt.Data.(system.Contact); ok {
				s.contacts = append(s.contacts, contact)
			}
		case system.EventSupportLost:
			s.logger.Debug("support lost", "tick", s.ticks, "surface", evt.Data)
		}
	}

	if s.logger.GetLevel() <= log.DebugLevel {
		a := s.Actor()
		s.logger.Debug("tick",
			"n", s.ticks,
			"x", a.Position.X,
			"y", a.Position.Y,
			"vy", a.Velocity.Y,
			"support", a.Support,
			"contacts", len(s.contacts),
		)
	}
}

// Ticks returns the number of completed ticks.
func (s *Simulation) Ticks() int {
	return s.ticks
}

// Contacts returns the contacts applied during the last tick.
func (s *Simulation) Contacts() []system.Contact {
	return append([]system.Contact(nil), s.contacts...)
}

func (s *Simulation) Registry() *geometry.Registry {
	return s.world.Registry()
}

func (s *Simulation) World() *ecs.World {
	return s.world
}

// SetSampler replaces the control source used from the next tick on.
func (s *Simulation) SetSampler(sampler input.Sampler) {
	s.input.SetSampler(sampler)
}

func (s *Simulation) Actor() ActorState {
	tr, _ := ecs.Get(s.world, s.actor, component.TransformComponent)
	vel, _ := ecs.Get(s.world, s.actor, component.VelocityComponent)
	sup, _ := ecs.Get(s.world, s.actor, component.SupportComponent)
	return ActorState{
		Position:    cp.Vector{X: tr.X, Y: tr.Y},
		Z:           tr.Z,
		HalfExtents: tr.HalfExtents(),
		Velocity:    cp.Vector{X: vel.X, Y: vel.Y},
		Support:     sup,
	}
}

func (s *Simulation) SetPosition(x, y float64) {
	tr, _ := ecs.Get(s.world, s.actor, component.TransformComponent)
	tr.X, tr.Y = x, y
	if err := ecs.Add(s.world, s.actor, component.TransformComponent, tr); err != nil {
		panic("sim: set position: " + err.Error())
	}
}

func (s *Simulation) SetVelocity(vx, vy float64) {
	vel, _ := ecs.Get(s.world, s.actor, component.VelocityComponent)
	vel.X, vel.Y = vx, vy
	if err := ecs.Add(s.world, s.actor, component.VelocityComponent, vel); err != nil {
		panic("sim: set velocity: " + err.Error())
	}
}

// SetSupport overrides the actor's support. A handle unknown to the
// registry panics.
func (s *Simulation) SetSupport(support component.Support) {
	if support.Valid {
		s.world.Registry().Get(support.Surface)
	}
	if err := ecs.Add(s.world, s.actor, component.SupportComponent, support); err != nil {
		panic("sim: set support: " + err.Error())
	}
}

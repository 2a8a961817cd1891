package system

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/geometry"
	"github.com/milk9111/platformer/input"
)

type actorSetup struct {
	x, y    float64
	vel     component.Velocity
	support component.Support
	in      component.Input
}

func newTestWorld(t *testing.T, reg *geometry.Registry, s actorSetup) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	w.SetRegistry(reg)
	e := w.CreateEntity()
	mustAdd(t, ecs.Add(w, e, component.ActorTagComponent, component.ActorTag{}))
	mustAdd(t, ecs.Add(w, e, component.TransformComponent, component.Transform{X: s.x, Y: s.y, ScaleX: 30, ScaleY: 30}))
	mustAdd(t, ecs.Add(w, e, component.VelocityComponent, s.vel))
	mustAdd(t, ecs.Add(w, e, component.SupportComponent, s.support))
	mustAdd(t, ecs.Add(w, e, component.InputComponent, s.in))
	mustAdd(t, ecs.Add(w, e, component.IntentComponent, component.Intent{}))
	return w, e
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func actorState(t *testing.T, w *ecs.World, e ecs.Entity) (component.Transform, component.Velocity, component.Support) {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		t.Fatal("missing transform")
	}
	vel, ok := ecs.Get(w, e, component.VelocityComponent)
	if !ok {
		t.Fatal("missing velocity")
	}
	sup, ok := ecs.Get(w, e, component.SupportComponent)
	if !ok {
		t.Fatal("missing support")
	}
	return tr, vel, sup
}

// floorRegistry holds a scenery backdrop at handle 0 and a floor whose top
// edge sits at y=-100 at handle 1.
func floorRegistry() (*geometry.Registry, geometry.Handle) {
	reg := geometry.NewRegistry()
	reg.Add(cp.Vector{}, cp.Vector{X: 400, Y: 400}, false)
	floor := reg.Add(cp.Vector{X: 0, Y: -115}, cp.Vector{X: 100, Y: 15}, true)
	return reg, floor
}

func TestMovementSystem(t *testing.T) {
	landed := component.SupportedBy(1)
	cases := []struct {
		name       string
		in         component.Input
		support    component.Support
		wantX      float64
		wantVY     float64
		wantIntent component.Intent
	}{
		{"idle", component.Input{}, component.Support{}, 0, -1, component.Intent{}},
		{"left", component.Input{Left: true}, component.Support{}, -10, -1, component.Intent{DX: -10}},
		{"right", component.Input{Right: true}, component.Support{}, 10, -1, component.Intent{DX: 10}},
		{"both_cancel", component.Input{Left: true, Right: true}, component.Support{}, 0, -1, component.Intent{}},
		{"jump_unsupported_ignored", component.Input{Jump: true}, component.Support{}, 0, -1, component.Intent{}},
		{"jump_landed", component.Input{Jump: true}, landed, 0, 30, component.Intent{DY: 10}},
		{"jump_right_landed", component.Input{Jump: true, Right: true}, landed, 10, 30, component.Intent{DX: 10, DY: 10}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			reg, _ := floorRegistry()
			w, e := newTestWorld(t, reg, actorSetup{y: 50, vel: component.Velocity{Y: -1}, support: c.support, in: c.in})

			NewMovementSystem(DefaultTuning()).Update(w)

			tr, vel, sup := actorState(t, w, e)
			if tr.X != c.wantX {
				t.Fatalf("expected x=%v, got %v", c.wantX, tr.X)
			}
			if tr.Y != 50 {
				t.Fatalf("movement must not move y, got %v", tr.Y)
			}
			if vel.Y != c.wantVY {
				t.Fatalf("expected vy=%v, got %v", c.wantVY, vel.Y)
			}
			if sup != c.support {
				t.Fatalf("movement must not touch support, got %v", sup)
			}
			intent, _ := ecs.Get(w, e, component.IntentComponent)
			if intent != c.wantIntent {
				t.Fatalf("expected intent %+v, got %+v", c.wantIntent, intent)
			}
		})
	}
}

func TestGravitySystem(t *testing.T) {
	cases := []struct {
		name    string
		vy      float64
		support component.Support
		wantVY  float64
		wantY   float64
	}{
		{"unsupported_accelerates", -1, component.Support{}, -3, -3},
		{"at_terminal_unchanged", -15, component.Support{}, -15, -15},
		{"below_terminal_unchanged", -16, component.Support{}, -16, -16},
		{"overshoots_terminal_once", -14, component.Support{}, -16, -16},
		{"rising_slows", 30, component.Support{}, 28, 28},
		{"supported_keeps_velocity", 30, component.SupportedBy(1), 30, 30},
		{"supported_at_rest", 0, component.SupportedBy(1), 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			reg, _ := floorRegistry()
			w, e := newTestWorld(t, reg, actorSetup{vel: component.Velocity{Y: c.vy}, support: c.support})

			NewGravitySystem(DefaultTuning()).Update(w)

			tr, vel, _ := actorState(t, w, e)
			if vel.Y != c.wantVY {
				t.Fatalf("expected vy=%v, got %v", c.wantVY, vel.Y)
			}
			if tr.Y != c.wantY {
				t.Fatalf("expected y=%v, got %v", c.wantY, tr.Y)
			}
		})
	}
}

func TestCollisionSystem(t *testing.T) {
	reg, floor := floorRegistry()

	cases := []struct {
		name        string
		x, y        float64
		vy          float64
		support     component.Support
		wantVY      float64
		wantSupport component.Support
		wantSide    geometry.Side
	}{
		{"top_lands", 0, -99, -5, component.Support{}, 0, component.SupportedBy(floor), geometry.Top},
		{"bottom_bounces", 0, -135, 30, component.Support{}, -2, component.Support{}, geometry.Bottom},
		{"bottom_keeps_support", 0, -135, 30, component.SupportedBy(7), -2, component.SupportedBy(7), geometry.Bottom},
		{"left_side_ignored", -105, -115, -5, component.Support{}, -5, component.Support{}, geometry.Left},
		{"right_side_ignored", 105, -115, -5, component.Support{}, -5, component.Support{}, geometry.Right},
		{"inside_supports_without_snap", 0, -115, -5, component.Support{}, -5, component.SupportedBy(floor), geometry.Inside},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, e := newTestWorld(t, reg, actorSetup{x: c.x, y: c.y, vel: component.Velocity{Y: c.vy}, support: c.support})

			NewCollisionSystem(DefaultTuning()).Update(w)

			tr, vel, sup := actorState(t, w, e)
			if tr.X != c.x || tr.Y != c.y {
				t.Fatalf("collision must not move the actor, got (%v, %v)", tr.X, tr.Y)
			}
			if vel.Y != c.wantVY {
				t.Fatalf("expected vy=%v, got %v", c.wantVY, vel.Y)
			}
			if sup != c.wantSupport {
				t.Fatalf("expected support %v, got %v", c.wantSupport, sup)
			}

			events := w.Events().Drain()
			if len(events) != 1 || events[0].Type != EventContact {
				t.Fatalf("expected one contact event, got %+v", events)
			}
			contact := events[0].Data.(Contact)
			if contact.Side != c.wantSide || contact.Surface != floor || contact.Entity != e {
				t.Fatalf("unexpected contact %+v", contact)
			}
		})
	}
}

func TestResolveCollisionsWithoutOverlapIsNoop(t *testing.T) {
	reg, _ := floorRegistry()
	cases := []struct {
		name    string
		x, y    float64
		support component.Support
	}{
		{"above", 0, 50, component.Support{}},
		{"resting_on_edge", 0, -85, component.SupportedBy(1)},
		{"beside", 200, -115, component.SupportedBy(1)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			vel := component.Velocity{X: 3, Y: -7}
			sup := c.support
			box := component.Transform{X: c.x, Y: c.y, ScaleX: 30, ScaleY: 30}.Box()

			contacts := ResolveCollisions(box, &vel, &sup, reg, -2)
			if len(contacts) != 0 {
				t.Fatalf("expected no contacts, got %+v", contacts)
			}
			if vel != (component.Velocity{X: 3, Y: -7}) || sup != c.support {
				t.Fatalf("state changed: vel=%+v support=%v", vel, sup)
			}
		})
	}
}

func TestResolveCollisionsSkipsScenery(t *testing.T) {
	reg := geometry.NewRegistry()
	reg.Add(cp.Vector{}, cp.Vector{X: 400, Y: 400}, false)

	vel := component.Velocity{Y: -5}
	var sup component.Support
	box := component.Transform{ScaleX: 30, ScaleY: 30}.Box()
	if contacts := ResolveCollisions(box, &vel, &sup, reg, -2); len(contacts) != 0 {
		t.Fatalf("scenery must not collide, got %+v", contacts)
	}
	if sup.Valid || vel.Y != -5 {
		t.Fatalf("state changed: vel=%+v support=%v", vel, sup)
	}
}

func TestResolveCollisionsLaterSurfaceWins(t *testing.T) {
	reg := geometry.NewRegistry()
	// Both floors have their top edge at y=-100 and overlap the actor.
	first := reg.Add(cp.Vector{X: -50, Y: -115}, cp.Vector{X: 100, Y: 15}, true)
	second := reg.Add(cp.Vector{X: 50, Y: -115}, cp.Vector{X: 100, Y: 15}, true)

	vel := component.Velocity{Y: -5}
	var sup component.Support
	box := component.Transform{Y: -99, ScaleX: 30, ScaleY: 30}.Box()

	contacts := ResolveCollisions(box, &vel, &sup, reg, -2)
	if len(contacts) != 2 || contacts[0].Surface != first || contacts[1].Surface != second {
		t.Fatalf("expected contacts in registry order, got %+v", contacts)
	}
	if !sup.On(second) {
		t.Fatalf("expected support on the later surface, got %v", sup)
	}
	if vel.Y != 0 {
		t.Fatalf("expected vy=0, got %v", vel.Y)
	}
}

func TestSupportLossSystem(t *testing.T) {
	reg, floor := floorRegistry()
	cases := []struct {
		name        string
		x, y        float64
		support     component.Support
		wantSupport component.Support
		wantEvent   bool
	}{
		{"still_on_floor", 0, -99, component.SupportedBy(floor), component.SupportedBy(floor), false},
		{"walked_off_edge", 200, -99, component.SupportedBy(floor), component.Support{}, true},
		{"jumped_clear", 0, -50, component.SupportedBy(floor), component.Support{}, true},
		{"already_unsupported", 200, -99, component.Support{}, component.Support{}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, e := newTestWorld(t, reg, actorSetup{x: c.x, y: c.y, support: c.support})

			NewSupportLossSystem().Update(w)

			_, _, sup := actorState(t, w, e)
			if sup != c.wantSupport {
				t.Fatalf("expected support %v, got %v", c.wantSupport, sup)
			}
			if got := w.Events().Len() == 1; got != c.wantEvent {
				t.Fatalf("expected event=%v, got %d events", c.wantEvent, w.Events().Len())
			}
		})
	}
}

type failingPoller struct {
	input.Snapshot
}

func (failingPoller) Poll() error { return errors.New("boom") }

func TestInputSystem(t *testing.T) {
	cases := []struct {
		name    string
		sampler input.Sampler
		want    component.Input
	}{
		{"snapshot", input.Snapshot{Left: true, Jump: true}, component.Input{Left: true, Jump: true}},
		{"nil_sampler", nil, component.Input{}},
		{"poll_error_releases", failingPoller{input.Snapshot{Right: true}}, component.Input{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			reg, _ := floorRegistry()
			w, e := newTestWorld(t, reg, actorSetup{in: component.Input{Right: true}})

			NewInputSystem(c.sampler, nil).Update(w)

			got, _ := ecs.Get(w, e, component.InputComponent)
			if got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
		})
	}
}

package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/platformer/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if len(w.Entities()) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(w.Entities()))
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("destroying twice should fail")
				}
			}
		})
	}
}

func TestReusedIDGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.DestroyEntity(e)
	reused := w.CreateEntity()

	if reused.id() != e.id() {
		t.Fatalf("expected id reuse, got %d and %d", e.id(), reused.id())
	}
	if reused == e || w.IsAlive(e) {
		t.Fatalf("stale handle must not be alive")
	}
	if !reused.Valid() || Entity(0).Valid() {
		t.Fatalf("unexpected validity")
	}
}

func TestComponents(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, ints, 10) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, ints)
				if !ok || v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, ints) {
					t.Fatalf("e2 should not have the int component")
				}
			},
			teardown: func() bool { return Remove(w, e1, ints) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, strs, "a"); err != nil {
					return err
				}
				return Add(w, e2, strs, "b")
			},
			check: func(t *testing.T) {
				if !Has(w, e1, strs) || !Has(w, e2, strs) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, strs) },
		},
		{
			name:  "overwrite",
			setup: func() error { _ = Add(w, e2, ints, 1); return Add(w, e2, ints, 2) },
			check: func(t *testing.T) {
				if v, _ := Get(w, e2, ints); v != 2 {
					t.Fatalf("expected overwrite to 2, got %v", v)
				}
			},
			teardown: func() bool { return Remove(w, e2, ints) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	dead := w.CreateEntity()
	w.DestroyEntity(dead)
	if err := Add(w, dead, h, 1); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}

	var zero component.ComponentHandle[int]
	if err := Add(w, w.CreateEntity(), zero, 1); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestForEachWritesThrough(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()
	_ = Add(w, e1, h, 1)
	_ = Add(w, e3, h, 3)

	var seen []Entity
	ForEach(w, h, func(e Entity, v *int) {
		seen = append(seen, e)
		*v *= 10
	})

	if len(seen) != 2 || seen[0] != e1 || seen[1] != e3 {
		t.Fatalf("expected [e1 e3], got %v", seen)
	}
	if v, _ := Get(w, e3, h); v != 30 {
		t.Fatalf("expected write-through, got %v", v)
	}
	if Has(w, e2, h) {
		t.Fatalf("did not expect e2")
	}
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				ka := component.NewComponent[int]()
				kb := component.NewComponent[string]()
				e1 := w.CreateEntity()
				e2 := w.CreateEntity()
				e3 := w.CreateEntity()
				_ = Add(w, e1, ka, 1)
				_ = Add(w, e2, ka, 2)
				_ = Add(w, e2, kb, "b")
				_ = Add(w, e3, kb, "c")

				res := w.Query(ka.Kind(), kb.Kind())
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				ka := component.NewComponent[int]()
				e := w.CreateEntity()
				_ = Add(w, e, ka, 1)
				w.DestroyEntity(e)

				if res := w.Query(ka.Kind()); len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				ka := component.NewComponent[int]()
				kb := component.NewComponent[int]()
				_ = Add(w, w.CreateEntity(), ka, 1)

				if res := w.Query(ka.Kind(), kb.Kind()); res != nil {
					t.Fatalf("expected nil when other store missing, got %v", res)
				}
			},
		},
		{
			name: "first_is_lowest_id",
			run: func(t *testing.T) {
				w := NewWorld()
				ka := component.NewComponent[int]()
				e1 := w.CreateEntity()
				e2 := w.CreateEntity()
				_ = Add(w, e2, ka, 2)
				_ = Add(w, e1, ka, 1)

				first, ok := w.First(ka.Kind())
				if !ok || first != e1 {
					t.Fatalf("expected e1, got %v ok=%v", first, ok)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

type countingSystem struct {
	name  string
	order *[]string
}

func (c countingSystem) Update(*World) {
	*c.order = append(*c.order, c.name)
}

func TestSchedulerRunsInOrder(t *testing.T) {
	var order []string
	s := NewScheduler(countingSystem{"a", &order}, nil, countingSystem{"b", &order})
	s.Add(countingSystem{"c", &order})
	s.Update(NewWorld())

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("unexpected order %v", order)
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("expected 3 systems, got %d", len(s.Systems()))
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: "a"})
	q.Push(Event{Type: "b"})
	if q.Len() != 2 {
		t.Fatalf("expected 2 events, got %d", q.Len())
	}
	out := q.Drain()
	if len(out) != 2 || out[0].Type != "a" || q.Len() != 0 || q.Drain() != nil {
		t.Fatalf("unexpected drain %v", out)
	}
}

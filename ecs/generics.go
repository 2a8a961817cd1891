package ecs

import "github.com/milk9111/platformer/ecs/component"

// Add stores value on e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	if w == nil || !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	kind := handle.Kind()
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	v := value
	w.store(kind.ID(), true).Set(int(e.id()), &v)
	return nil
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.store(handle.Kind().ID(), false).Remove(int(e.id()))
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.store(handle.Kind().ID(), false).Has(int(e.id()))
}

// Get returns a copy of the component stored on e.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	ptr, ok := getPtr(w, e, handle)
	if !ok {
		return zero, false
	}
	return *ptr, true
}

func getPtr[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	value := w.store(handle.Kind().ID(), false).Get(int(e.id()))
	if value == nil {
		return nil, false
	}
	ptr, ok := value.(*T)
	return ptr, ok
}

// ForEach calls fn for every live entity holding the component. fn receives a
// pointer into storage, so writes through it are kept.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(e Entity, v *T)) {
	for _, e := range w.Query(handle.Kind()) {
		if ptr, ok := getPtr(w, e, handle); ok {
			fn(e, ptr)
		}
	}
}

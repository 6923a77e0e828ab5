package ecs

import (
	"fmt"
	"reflect"
)

// ComponentType is an opaque runtime token for a component type, used by the
// mask-based Query surface where types cannot be named at compile time.
type ComponentType struct {
	t reflect.Type
}

// TypeOf returns the ComponentType token for T.
func TypeOf[T any]() ComponentType {
	return ComponentType{t: typeOf[T]()}
}

func (c ComponentType) String() string {
	return c.t.String()
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// poolFor returns the typed pool for T, creating and registering it on first
// use.
func poolFor[T any](r *Registry) (*pool[T], uint32) {
	t := typeOf[T]()
	if slot, ok := r.slotFor(t); ok {
		return slot.pool.(*pool[T]), slot.bit
	}
	p := &pool[T]{}
	slot := r.registerPool(t, p)
	return p, slot.bit
}

// lookupPool returns the typed pool for T without creating one.
func lookupPool[T any](r *Registry) (*pool[T], uint32, bool) {
	slot, ok := r.slotFor(typeOf[T]())
	if !ok {
		return nil, 0, false
	}
	return slot.pool.(*pool[T]), slot.bit, true
}

// Add attaches a component of type T to a live entity and returns a pointer
// to the stored value. Adding to a dead entity, or adding a second T to an
// entity that already owns one, is a contract violation and panics.
//
// The returned pointer is invalidated by the next Add or Remove touching the
// same pool; re-fetch with Get after mutating.
func Add[T any](r *Registry, e Entity, value T) *T {
	if !r.IsAlive(e) {
		panic(fmt.Sprintf("ecs: Add[%T] on dead entity %d", value, e))
	}
	p, bit := poolFor[T](r)
	stored := p.Emplace(e.Index(), value)
	r.markOwned(e.Index(), bit)
	return stored
}

// Has reports whether the entity owns a component of type T.
func Has[T any](r *Registry, e Entity) bool {
	p, _, ok := lookupPool[T](r)
	return ok && p.Has(e.Index())
}

// Get returns a pointer to the entity's T. The entity must be alive and own
// a T; anything else is a contract violation and panics. Callers unsure on
// either count guard with IsAlive/Has or use GetOrAdd.
func Get[T any](r *Registry, e Entity) *T {
	var zero T
	if !r.IsAlive(e) {
		panic(fmt.Sprintf("ecs: Get[%T] on dead entity %d", zero, e))
	}
	p, _, ok := lookupPool[T](r)
	if !ok || !p.Has(e.Index()) {
		panic(fmt.Sprintf("ecs: entity %d does not own a %T", e, zero))
	}
	return p.Get(e.Index())
}

// Remove detaches the entity's T. No-op if the entity is dead or owns no T.
func Remove[T any](r *Registry, e Entity) {
	if !r.IsAlive(e) {
		return
	}
	p, bit, ok := lookupPool[T](r)
	if !ok || !p.Has(e.Index()) {
		return
	}
	p.Remove(e.Index())
	r.unmarkOwned(e.Index(), bit)
}

// GetOrAdd returns the entity's existing T, or attaches a zero-valued one
// and returns that. The entity must be alive.
func GetOrAdd[T any](r *Registry, e Entity) *T {
	if Has[T](r, e) {
		return Get[T](r, e)
	}
	var zero T
	return Add(r, e, zero)
}

// SizeOf is the number of live components of type T. Zero when the pool has
// never been created.
func SizeOf[T any](r *Registry) int {
	p, _, ok := lookupPool[T](r)
	if !ok {
		return 0
	}
	return p.Size()
}

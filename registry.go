package ecs

import (
	"fmt"
	"reflect"

	"github.com/TheBitDrifter/mask"
	"go.uber.org/zap"
)

// maxComponentTypes caps how many distinct component types one Registry can
// register, bounded by the bits available in a component mask.
const maxComponentTypes = 64

// poolSlot pairs a type-erased pool with the mask bit assigned to its
// component type.
type poolSlot struct {
	pool Pool
	bit  uint32
}

// Registry is the central world object: it owns the slot table, the live
// entity list, and one lazily created pool per component type. It is the
// sole mutation surface for entity and component state.
//
// The Registry is not safe for concurrent use. Callers running it from
// multiple goroutines must serialize every call, reads included, since reads
// walk dense arrays that mutations restructure.
type Registry struct {
	generations []uint32    // generations[entityIndex], bumped on destroy
	masks       []mask.Mask // masks[entityIndex], one bit per owned type
	freeList    []uint32    // recycled entity indices, FIFO
	alive       []Entity

	pools   map[reflect.Type]poolSlot
	nextBit uint32

	locked  bool
	opQueue opQueue

	log *zap.Logger
}

func newRegistry(opts ...Option) *Registry {
	r := &Registry{
		pools:   make(map[reflect.Type]poolSlot),
		opQueue: newOpQueue(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CreateEntity returns a fresh live entity, recycling a freed slot when one
// is available. Exhausting the 20-bit index space is a contract violation
// and panics; worlds that large must shard across registries.
func (r *Registry) CreateEntity() Entity {
	var entityIndex uint32
	if len(r.freeList) > 0 {
		entityIndex = r.freeList[0]
		r.freeList = r.freeList[1:]
	} else {
		entityIndex = uint32(len(r.generations))
		// The all-ones index stays reserved so no live handle can ever
		// equal the InvalidEntity sentinel.
		if entityIndex >= entityIndexMask {
			panic(fmt.Sprintf("ecs: entity index space exhausted (%d slots)", entityIndexMask))
		}
		r.generations = append(r.generations, 0)
		r.masks = append(r.masks, mask.Mask{})
	}
	e := MakeEntity(entityIndex, r.generations[entityIndex])
	r.alive = append(r.alive, e)
	return e
}

// DestroyEntity strips the entity from every pool, bumps its slot's
// generation so the handle goes stale, and returns the slot to the free
// list. No-op if the handle is not alive, so destroying twice is safe.
func (r *Registry) DestroyEntity(e Entity) {
	if !r.IsAlive(e) {
		return
	}
	entityIndex := e.Index()
	for _, slot := range r.pools {
		slot.pool.Remove(entityIndex)
	}
	r.masks[entityIndex] = mask.Mask{}
	r.generations[entityIndex] = (r.generations[entityIndex] + 1) & entityGenMask
	r.freeList = append(r.freeList, entityIndex)
	for i, a := range r.alive {
		if a == e {
			r.alive = append(r.alive[:i], r.alive[i+1:]...)
			break
		}
	}
}

// IsAlive reports whether the handle's generation matches the one currently
// stored for its slot.
func (r *Registry) IsAlive(e Entity) bool {
	entityIndex := e.Index()
	return entityIndex < uint32(len(r.generations)) &&
		e.Generation() == r.generations[entityIndex]
}

// Entities returns the live entity list. Order is unspecified. The slice
// aliases registry storage; callers must not mutate it and must not hold it
// across lifecycle calls.
func (r *Registry) Entities() []Entity {
	return r.alive
}

// EntityCount is the number of live entities.
func (r *Registry) EntityCount() int {
	return len(r.alive)
}

// Clear destroys every entity and wipes every pool in one pass. Component
// types stay registered, so pools and mask bits survive for reuse. After
// Clear the Registry behaves as freshly constructed.
func (r *Registry) Clear() {
	r.log.Debug("registry cleared",
		zap.Int("entities", len(r.alive)),
		zap.Int("pools", len(r.pools)),
	)
	r.alive = nil
	r.generations = nil
	r.masks = nil
	r.freeList = nil
	for _, slot := range r.pools {
		slot.pool.Clear()
	}
	r.locked = false
	r.opQueue.reset()
}

// Locked reports whether the registry is in its iteration-locked state.
func (r *Registry) Locked() bool {
	return r.locked
}

// Lock switches the Enqueue functions into buffering mode. Callers lock
// around Each/View/Cursor runs that need to mutate the iterated types, then
// Unlock to flush.
func (r *Registry) Lock() {
	r.locked = true
}

// Unlock leaves the locked state and applies all buffered operations in
// create, component-op, destroy order.
func (r *Registry) Unlock() {
	r.locked = false
	r.flushOperationQueue()
}

// slotFor returns the pool slot registered for the component type, if any.
func (r *Registry) slotFor(t reflect.Type) (poolSlot, bool) {
	slot, ok := r.pools[t]
	return slot, ok
}

// registerPool assigns the next mask bit to the component type and records
// its pool. First-use registration only; the bit assignment is permanent
// for the life of the Registry.
func (r *Registry) registerPool(t reflect.Type, p Pool) poolSlot {
	if r.nextBit >= maxComponentTypes {
		panic(fmt.Sprintf("ecs: component type limit reached (%d)", maxComponentTypes))
	}
	slot := poolSlot{pool: p, bit: r.nextBit}
	r.pools[t] = slot
	r.nextBit++
	r.log.Debug("component pool created",
		zap.String("component", t.String()),
		zap.Uint32("bit", slot.bit),
	)
	return slot
}

// markOwned records component ownership in the slot's mask.
func (r *Registry) markOwned(entityIndex, bit uint32) {
	r.masks[entityIndex].Mark(bit)
}

// unmarkOwned clears component ownership from the slot's mask.
func (r *Registry) unmarkOwned(entityIndex, bit uint32) {
	if entityIndex < uint32(len(r.masks)) {
		r.masks[entityIndex].Unmark(bit)
	}
}

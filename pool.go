package ecs

import (
	"fmt"
	"iter"
)

// empty marks an unoccupied sparse slot.
const empty = ^uint32(0)

var _ Pool = &pool[struct{}]{}

// pool is sparse-set storage for a single component type.
//
// sparse is indexed by entity index and holds the dense position or empty.
// dense and data are parallel, tightly packed arrays: dense[i] is the entity
// index owning data[i]. The structural invariant is sparse[dense[i]] == i
// for every i in [0, len(dense)); every mutation below preserves it.
type pool[T any] struct {
	sparse []uint32
	dense  []uint32
	data   []T
}

// Has reports whether the entity index owns a component in this pool.
func (p *pool[T]) Has(entityIndex uint32) bool {
	return entityIndex < uint32(len(p.sparse)) && p.sparse[entityIndex] != empty
}

// Emplace stores a component for the entity index at the end of the dense
// array and records the sparse mapping. Double-adding is a contract
// violation and panics; callers guard with Has or use GetOrAdd.
func (p *pool[T]) Emplace(entityIndex uint32, value T) *T {
	for uint32(len(p.sparse)) <= entityIndex {
		p.sparse = append(p.sparse, empty)
	}
	if p.sparse[entityIndex] != empty {
		panic(fmt.Sprintf("ecs: entity index %d already owns a %T", entityIndex, value))
	}
	denseIndex := uint32(len(p.dense))
	p.sparse[entityIndex] = denseIndex
	p.dense = append(p.dense, entityIndex)
	p.data = append(p.data, value)
	return &p.data[denseIndex]
}

// Get returns the component owned by the entity index. Calling Get for an
// index that owns nothing here is a contract violation and panics.
//
// The returned pointer is a short-lived borrow: the next Emplace or Remove
// on this pool may relocate the element, so re-fetch after any mutation.
func (p *pool[T]) Get(entityIndex uint32) *T {
	if !p.Has(entityIndex) {
		var zero T
		panic(fmt.Sprintf("ecs: entity index %d does not own a %T", entityIndex, zero))
	}
	return &p.data[p.sparse[entityIndex]]
}

// Remove drops the component owned by the entity index, moving the last
// dense element into the freed slot so the arrays stay packed. No-op if the
// index owns nothing here.
func (p *pool[T]) Remove(entityIndex uint32) {
	if !p.Has(entityIndex) {
		return
	}
	denseIndex := p.sparse[entityIndex]
	last := uint32(len(p.dense)) - 1

	if denseIndex != last {
		movedIndex := p.dense[last]
		p.dense[denseIndex] = movedIndex
		p.data[denseIndex] = p.data[last]
		p.sparse[movedIndex] = denseIndex
	}

	var zero T
	p.data[last] = zero // release anything the component references
	p.dense = p.dense[:last]
	p.data = p.data[:last]
	p.sparse[entityIndex] = empty
}

// Clear drops all stored components and resets the sparse map.
func (p *pool[T]) Clear() {
	p.sparse = nil
	p.dense = nil
	p.data = nil
}

// Size is the number of live components in the pool.
func (p *pool[T]) Size() int {
	return len(p.dense)
}

// EntityIndices yields the owning entity indices in dense order. Dense order
// depends on the pool's insertion/removal history, not on entity creation
// order.
func (p *pool[T]) EntityIndices() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for _, entityIndex := range p.dense {
			if !yield(entityIndex) {
				return
			}
		}
	}
}

// Components exposes the packed component array for raw iteration. The
// slice aliases pool storage and is invalidated by any mutation.
func (p *pool[T]) Components() []T {
	return p.data
}

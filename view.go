package ecs

import (
	"github.com/TheBitDrifter/mask"
	iter_util "github.com/TheBitDrifter/util/iter"
)

// Each invokes fn for every entity owning a T, in dense order. The pool's
// index list is snapshotted before the loop, so entities gaining a T inside
// fn are not visited in this call, and entities losing theirs (including by
// destruction) are skipped by a per-index membership re-check.
//
// Removing T or destroying entities inside fn is safe for the iteration
// itself but mutates pool storage; see the deferred Enqueue functions for
// batching such changes.
func Each[T any](r *Registry, fn func(Entity, *T)) {
	p, _, ok := lookupPool[T](r)
	if !ok || p.Size() == 0 {
		return
	}
	snapshot := iter_util.Collect(p.EntityIndices())
	for _, entityIndex := range snapshot {
		if !p.Has(entityIndex) {
			continue
		}
		fn(MakeEntity(entityIndex, r.generations[entityIndex]), p.Get(entityIndex))
	}
}

// View2 invokes fn for every entity owning both T1 and T2. The pool with
// the fewest live components drives the iteration; on a size tie the
// earlier type parameter wins. If either type has never been used the
// result set is empty.
//
// Adding or removing T1/T2 inside fn may skip or double-visit entities;
// defer such mutations with the Enqueue functions and flush after.
func View2[T1, T2 any](r *Registry, fn func(Entity, *T1, *T2)) {
	p1, bit1, ok := lookupPool[T1](r)
	if !ok {
		return
	}
	p2, bit2, ok := lookupPool[T2](r)
	if !ok {
		return
	}
	var required mask.Mask
	required.Mark(bit1)
	required.Mark(bit2)

	driver := smallestPool(p1, p2)
	for _, entityIndex := range iter_util.Collect(driver.EntityIndices()) {
		if !r.ownsAll(entityIndex, required) {
			continue
		}
		fn(MakeEntity(entityIndex, r.generations[entityIndex]),
			p1.Get(entityIndex), p2.Get(entityIndex))
	}
}

// View3 is View2 over three component types.
func View3[T1, T2, T3 any](r *Registry, fn func(Entity, *T1, *T2, *T3)) {
	p1, bit1, ok := lookupPool[T1](r)
	if !ok {
		return
	}
	p2, bit2, ok := lookupPool[T2](r)
	if !ok {
		return
	}
	p3, bit3, ok := lookupPool[T3](r)
	if !ok {
		return
	}
	var required mask.Mask
	required.Mark(bit1)
	required.Mark(bit2)
	required.Mark(bit3)

	driver := smallestPool(p1, p2, p3)
	for _, entityIndex := range iter_util.Collect(driver.EntityIndices()) {
		if !r.ownsAll(entityIndex, required) {
			continue
		}
		fn(MakeEntity(entityIndex, r.generations[entityIndex]),
			p1.Get(entityIndex), p2.Get(entityIndex), p3.Get(entityIndex))
	}
}

// View4 is View2 over four component types.
func View4[T1, T2, T3, T4 any](r *Registry, fn func(Entity, *T1, *T2, *T3, *T4)) {
	p1, bit1, ok := lookupPool[T1](r)
	if !ok {
		return
	}
	p2, bit2, ok := lookupPool[T2](r)
	if !ok {
		return
	}
	p3, bit3, ok := lookupPool[T3](r)
	if !ok {
		return
	}
	p4, bit4, ok := lookupPool[T4](r)
	if !ok {
		return
	}
	var required mask.Mask
	required.Mark(bit1)
	required.Mark(bit2)
	required.Mark(bit3)
	required.Mark(bit4)

	driver := smallestPool(p1, p2, p3, p4)
	for _, entityIndex := range iter_util.Collect(driver.EntityIndices()) {
		if !r.ownsAll(entityIndex, required) {
			continue
		}
		fn(MakeEntity(entityIndex, r.generations[entityIndex]),
			p1.Get(entityIndex), p2.Get(entityIndex),
			p3.Get(entityIndex), p4.Get(entityIndex))
	}
}

// ownsAll reports whether the slot's mask currently covers every required
// bit. This covers both the intersection test and the mid-iteration
// aliveness re-check: destroying an entity zeroes its mask.
func (r *Registry) ownsAll(entityIndex uint32, required mask.Mask) bool {
	return entityIndex < uint32(len(r.masks)) &&
		r.masks[entityIndex].ContainsAll(required)
}

// smallestPool picks the pool with the fewest live components; earlier
// arguments win ties.
func smallestPool(pools ...Pool) Pool {
	result := pools[0]
	for _, p := range pools[1:] {
		if p.Size() < result.Size() {
			result = p
		}
	}
	return result
}

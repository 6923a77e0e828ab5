package ecs

import (
	"go.uber.org/zap"
)

// The deferred-operation queue is how callers honor the query mutation
// contract: Lock around an Each/View/Cursor run, Enqueue the structural
// changes the callbacks decide on, Unlock to flush. While the registry is
// unlocked every Enqueue function applies immediately.

type createOp struct {
	count int
	init  func(*Registry, Entity)
}

type componentOp struct {
	entity Entity
	apply  func(*Registry)
}

type opQueue struct {
	createOps      []createOp
	componentOps   []componentOp
	destroyOps     []Entity
	pendingDestroy map[Entity]struct{}
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[Entity]struct{}),
	}
}

func (q *opQueue) reset() {
	q.createOps = q.createOps[:0]
	q.componentOps = q.componentOps[:0]
	q.destroyOps = q.destroyOps[:0]
	clear(q.pendingDestroy)
}

// EnqueueCreate creates count entities, invoking init (when non-nil) on each
// so callers can attach components. Buffered while the registry is locked.
func (r *Registry) EnqueueCreate(count int, init func(*Registry, Entity)) {
	if !r.locked {
		applyCreate(r, createOp{count: count, init: init})
		return
	}
	r.opQueue.createOps = append(r.opQueue.createOps, createOp{count: count, init: init})
}

// EnqueueDestroy destroys the entity, buffered while locked. A pending
// destroy wins over that entity's pending component operations: they are
// dropped at flush.
func (r *Registry) EnqueueDestroy(e Entity) {
	if !r.locked {
		r.DestroyEntity(e)
		return
	}
	if _, queued := r.opQueue.pendingDestroy[e]; queued {
		return
	}
	r.opQueue.pendingDestroy[e] = struct{}{}
	r.opQueue.destroyOps = append(r.opQueue.destroyOps, e)
}

// EnqueueAdd sets the entity's T to value, attaching one if absent.
// Buffered while the registry is locked; a no-op if the entity is dead by
// the time the operation applies.
func EnqueueAdd[T any](r *Registry, e Entity, value T) {
	apply := func(r *Registry) {
		if !r.IsAlive(e) {
			return
		}
		*GetOrAdd[T](r, e) = value
	}
	if !r.locked {
		apply(r)
		return
	}
	if _, doomed := r.opQueue.pendingDestroy[e]; doomed {
		return
	}
	r.opQueue.componentOps = append(r.opQueue.componentOps, componentOp{entity: e, apply: apply})
}

// EnqueueRemove detaches the entity's T, buffered while the registry is
// locked. No-op if the component or entity is gone when it applies.
func EnqueueRemove[T any](r *Registry, e Entity) {
	apply := func(r *Registry) {
		Remove[T](r, e)
	}
	if !r.locked {
		apply(r)
		return
	}
	if _, doomed := r.opQueue.pendingDestroy[e]; doomed {
		return
	}
	r.opQueue.componentOps = append(r.opQueue.componentOps, componentOp{entity: e, apply: apply})
}

func applyCreate(r *Registry, op createOp) {
	for i := 0; i < op.count; i++ {
		e := r.CreateEntity()
		if op.init != nil {
			op.init(r, e)
		}
	}
}

// flushOperationQueue applies buffered operations in create, component-op,
// destroy order, then clears the queue. Component operations whose entity
// is dead or pending destroy are dropped.
func (r *Registry) flushOperationQueue() {
	q := &r.opQueue
	if len(q.createOps) == 0 && len(q.componentOps) == 0 && len(q.destroyOps) == 0 {
		return
	}
	r.log.Debug("flushing deferred operations",
		zap.Int("creates", len(q.createOps)),
		zap.Int("componentOps", len(q.componentOps)),
		zap.Int("destroys", len(q.destroyOps)),
	)

	for _, op := range q.createOps {
		applyCreate(r, op)
	}

	for _, op := range q.componentOps {
		if _, doomed := q.pendingDestroy[op.entity]; doomed {
			continue
		}
		op.apply(r)
	}

	for _, e := range q.destroyOps {
		r.DestroyEntity(e)
	}

	q.reset()
}

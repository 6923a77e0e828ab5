package ecs

import (
	"iter"

	"github.com/TheBitDrifter/mask"
)

// Pool is the type-erased contract every component pool satisfies. It is
// the only surface the Registry needs to manage pools of component types it
// cannot enumerate: destroying an entity strips it from every Pool, clearing
// the world wipes every Pool, and queries drive off the smallest Pool.
type Pool interface {
	// Remove drops the component owned by the given entity index.
	// No-op if the index owns nothing in this pool.
	Remove(entityIndex uint32)

	// Clear drops every stored component and resets the sparse map.
	Clear()

	// Size is the number of live components in the pool.
	Size() int

	// EntityIndices yields the owning entity indices in dense order.
	// The sequence is invalidated by any mutation of the pool; snapshot it
	// before iterating across mutations.
	EntityIndices() iter.Seq[uint32]
}

// System is a per-frame logic unit operating on a Registry. Ordering among
// systems is owned by whoever holds the system list, not by this package.
type System interface {
	Init(*Registry)
	Update(reg *Registry, dt float64)
	Shutdown(*Registry)

	Enabled() bool
	SetEnabled(bool)
}

// Query builds a composite filter over component masks. Unlike the typed
// View functions, a Query works with ComponentType tokens, so callers that
// cannot name component types at compile time (scripting bridges, debug
// tooling) can still intersect them.
type Query interface {
	QueryNode
	And(items ...interface{}) QueryNode
	Or(items ...interface{}) QueryNode
	Not(items ...interface{}) QueryNode
}

// QueryNode evaluates one node of a query tree against an entity's
// component mask.
type QueryNode interface {
	Evaluate(m mask.Mask, reg *Registry) bool
}

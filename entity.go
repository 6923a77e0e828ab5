package ecs

// Entity is a packed 32-bit handle: the low 20 bits hold the slot index, the
// high 12 bits hold the generation counter for that slot. When a slot is
// recycled its generation is bumped, so handles minted before the destroy go
// stale and IsAlive reports false without any scanning.
//
// The generation wraps after 4096 recycles of the same slot; a stale handle
// surviving an exact wrap is an accepted risk, not a fault.
type Entity uint32

const (
	entityIndexBits = 20
	entityGenBits   = 12

	entityIndexMask = 1<<entityIndexBits - 1
	entityGenMask   = 1<<entityGenBits - 1
)

// InvalidEntity is the reserved all-ones sentinel. The registry never mints
// it: the final slot index is withheld so no index/generation combination can
// collide with the sentinel.
const InvalidEntity Entity = 1<<32 - 1

// MakeEntity composes a handle from a raw slot index and a generation.
// Both values are truncated to their bit widths.
func MakeEntity(index, generation uint32) Entity {
	return Entity((generation&entityGenMask)<<entityIndexBits | index&entityIndexMask)
}

// Index extracts the raw slot index.
func (e Entity) Index() uint32 {
	return uint32(e) & entityIndexMask
}

// Generation extracts the generation counter.
func (e Entity) Generation() uint32 {
	return uint32(e) >> entityIndexBits & entityGenMask
}

// Valid reports whether e is anything other than the InvalidEntity sentinel.
// A valid handle may still be stale; use Registry.IsAlive for that.
func (e Entity) Valid() bool {
	return e != InvalidEntity
}

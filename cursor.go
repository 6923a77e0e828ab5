package ecs

import (
	"iter"
)

// Cursor walks the live entities matching a query node. It snapshots the
// alive list on first advance and re-checks aliveness and the query per
// entity, so entities destroyed mid-walk are skipped and entities created
// mid-walk are never visited.
type Cursor struct {
	query QueryNode
	reg   *Registry

	snapshot    []Entity
	position    int
	current     Entity
	initialized bool
}

func newCursor(query QueryNode, reg *Registry) *Cursor {
	return &Cursor{
		query: query,
		reg:   reg,
	}
}

// Next advances to the next matching entity, returning false when the
// snapshot is exhausted. Exhaustion resets the cursor for reuse.
func (c *Cursor) Next() bool {
	if !c.initialized {
		c.initialize()
	}
	for c.position < len(c.snapshot) {
		e := c.snapshot[c.position]
		c.position++
		if !c.reg.IsAlive(e) {
			continue
		}
		if !c.query.Evaluate(c.reg.masks[e.Index()], c.reg) {
			continue
		}
		c.current = e
		return true
	}
	c.Reset()
	return false
}

// Entity is the entity the cursor currently points at. Only meaningful
// after Next returned true.
func (c *Cursor) Entity() Entity {
	return c.current
}

// Entities yields every matching entity as a single-use sequence.
func (c *Cursor) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for c.Next() {
			if !yield(c.current) {
				c.Reset()
				return
			}
		}
	}
}

// TotalMatched counts the matching entities without consuming the cursor's
// own iteration state.
func (c *Cursor) TotalMatched() int {
	total := 0
	for _, e := range c.reg.alive {
		if c.query.Evaluate(c.reg.masks[e.Index()], c.reg) {
			total++
		}
	}
	return total
}

func (c *Cursor) initialize() {
	c.snapshot = make([]Entity, len(c.reg.alive))
	copy(c.snapshot, c.reg.alive)
	c.position = 0
	c.initialized = true
}

// Reset discards the snapshot so the next advance takes a fresh one.
func (c *Cursor) Reset() {
	c.snapshot = nil
	c.position = 0
	c.current = InvalidEntity
	c.initialized = false
}

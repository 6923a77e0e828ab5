/*
Package ecs provides a sparse-set Entity-Component-System runtime for games
and simulations.

Entities are generation-checked 32-bit handles; components are plain data
records stored one pool per type, with the dense arrays packed for
cache-friendly iteration. Add, remove, and lookup are O(1) via the
sparse-set mapping, and destroying an entity strips it from every pool and
invalidates every outstanding handle to it.

Core Concepts:

  - Entity: a packed index+generation handle identifying a game object.
  - Component: a data record attached to at most one entity per type.
  - Registry: owns the slot table and all pools; the sole mutation surface.
  - View/Each: intersection and single-type queries over live entities.
  - System: a thin contract for per-frame logic units driven by the scene.

Basic Usage:

	reg := ecs.Factory.NewRegistry()

	player := reg.CreateEntity()
	ecs.Add(reg, player, ecs.NewTransform())
	ecs.Add(reg, player, ecs.Velocity{Linear: ecs.Vec3{Z: 5}})

	ecs.View2(reg, func(e ecs.Entity, t *ecs.Transform, v *ecs.Velocity) {
		t.Position = t.Position.Add(v.Linear.Scale(dt))
	})

	reg.DestroyEntity(player) // removes all components, stales the handle

The registry is not thread-safe; serialize all access externally. Mutating
an iterated component type inside a View callback is unsafe — Lock the
registry, use the Enqueue functions from the callback, and Unlock to flush:

	reg.Lock()
	ecs.Each(reg, func(e ecs.Entity, l *ecs.Lifetime) {
		l.Remaining -= dt
		if l.Remaining <= 0 {
			reg.EnqueueDestroy(e)
		}
	})
	reg.Unlock()
*/
package ecs

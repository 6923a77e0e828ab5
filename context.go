package ecs

// Context carries the cross-cutting references a binding layer (scripting,
// debug console) needs: the active registry and the locally controlled
// player entity. Binding registration takes a *Context instead of stashing
// these in package-level variables, so swapping worlds is a single pointer
// swap and headless setups simply bind a context with no player.
type Context struct {
	reg         *Registry
	localPlayer Entity
}

// NewContext binds a registry. reg may be nil for a not-yet-loaded world;
// Ready reports false until SetRegistry provides one.
func NewContext(reg *Registry) *Context {
	return &Context{
		reg:         reg,
		localPlayer: InvalidEntity,
	}
}

// Ready reports whether a registry is bound. Bindings treat a not-ready
// context as "everything is a no-op", matching the registry's own policy
// for dead handles.
func (c *Context) Ready() bool {
	return c.reg != nil
}

// Registry returns the bound registry, nil when not ready.
func (c *Context) Registry() *Registry {
	return c.reg
}

// SetRegistry rebinds the context to another world. The local player does
// not carry over; it belongs to the previous registry's handle space.
func (c *Context) SetRegistry(reg *Registry) {
	c.reg = reg
	c.localPlayer = InvalidEntity
}

// LocalPlayer is the locally controlled player entity, InvalidEntity when
// none has been designated.
func (c *Context) LocalPlayer() Entity {
	return c.localPlayer
}

// SetLocalPlayer designates the locally controlled player entity.
func (c *Context) SetLocalPlayer(e Entity) {
	c.localPlayer = e
}

// IsAlive is the handle check bindings use on values they did not mint
// themselves. False when the context is not ready.
func (c *Context) IsAlive(e Entity) bool {
	return c.reg != nil && c.reg.IsAlive(e)
}

package ecs

// Built-in engine components. All are plain data records so they can live
// directly in the dense pool arrays without indirection; game code is free
// to define its own component types anywhere, no registration needed — the
// registry discovers them on first use.

// Vec3 is a three-component float vector.
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Quat is a rotation quaternion.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity is the no-rotation quaternion.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// Transform is world-space position, orientation, and non-uniform scale.
type Transform struct {
	Position Vec3
	Rotation Quat
	Scale    Vec3
}

// NewTransform returns a Transform with identity rotation and unit scale.
// The zero Transform has zero scale, which is rarely what callers want.
func NewTransform() Transform {
	return Transform{
		Rotation: QuatIdentity(),
		Scale:    Vec3{1, 1, 1},
	}
}

// Velocity is linear and angular velocity in units per second.
type Velocity struct {
	Linear  Vec3
	Angular Vec3 // Euler rates, radians/s
}

// SphereCollider registers the entity with the physics collaborator, which
// reads and writes back Transform.Position after collision resolution.
type SphereCollider struct {
	Radius        float32
	PhysicsHandle int // handle minted by the physics subsystem, -1 when unregistered
	Trigger       bool
	Static        bool
}

// Tag is a human-readable name for debug UIs and script lookups.
type Tag struct {
	Name string
}

// Group attaches an integer group/layer/team id, cheaper to compare than a
// Tag string.
type Group struct {
	ID uint32
}

// Health is a simple damage model. Systems should check Dead after applying
// damage.
type Health struct {
	Current float32
	Max     float32
}

func (h Health) Dead() bool {
	return h.Current <= 0
}

// Normalized is Current as a fraction of Max, zero when Max is zero.
func (h Health) Normalized() float32 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

func (h *Health) ApplyDamage(dmg float32) {
	h.Current -= dmg
	if h.Current < 0 {
		h.Current = 0
	}
}

func (h *Health) Heal(hp float32) {
	h.Current += hp
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Lifetime is a countdown in seconds; a lifetime system decrements it each
// frame and enqueues a destroy when it reaches zero.
type Lifetime struct {
	Remaining float32
}

// Network marks an entity as a replicated peer.
type Network struct {
	PeerID uint8
	Local  bool // true for the locally controlled entity
}

// AudioEmitter is a point audio source at the entity's transform. An audio
// collaborator reads Transform.Position each frame to position the source.
type AudioEmitter struct {
	SoundKey    string
	Volume      float32
	Pitch       float32
	MaxDistance float32
	Loop        bool
	Playing     bool
	AutoPlay    bool
}

// Script names the script class driving this entity and the interpreter's
// reference to its instance (-1 when unbound).
type Script struct {
	ClassName string
	Ref       int
	Active    bool
}

// Player marks the locally controlled player entity. Never attached
// automatically; the binding layer adds it explicitly via its context.
type Player struct {
	SpeedMultiplier float32
	JumpMultiplier  float32
	SourceBhop      bool
}

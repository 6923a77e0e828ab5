package ecs

var _ System = &BaseSystem{}

// BaseSystem is the embeddable default implementation of System: no-op
// Init/Update/Shutdown and an enabled flag that starts on. Concrete systems
// embed it and override what they need.
//
//	type movementSystem struct {
//		ecs.BaseSystem
//	}
//
//	func (s *movementSystem) Update(reg *ecs.Registry, dt float64) {
//		ecs.View2(reg, func(_ ecs.Entity, t *ecs.Transform, v *ecs.Velocity) {
//			t.Position = t.Position.Add(v.Linear.Scale(float32(dt)))
//		})
//	}
type BaseSystem struct {
	disabled bool
}

func (b *BaseSystem) Init(*Registry) {}

func (b *BaseSystem) Update(*Registry, float64) {}

func (b *BaseSystem) Shutdown(*Registry) {}

// Enabled reports whether the owning scene should run this system's Update.
func (b *BaseSystem) Enabled() bool {
	return !b.disabled
}

// SetEnabled pauses or resumes the system without removing it from its list.
func (b *BaseSystem) SetEnabled(enabled bool) {
	b.disabled = !enabled
}

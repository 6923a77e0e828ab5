package ecs

import "testing"

type Velocity2 struct {
	DX, DY float64
}

// TestGenerationalSafety tests that destroyed handles stay stale across slot reuse
func TestGenerationalSafety(t *testing.T) {
	reg := Factory.NewRegistry()

	e := reg.CreateEntity()
	if !reg.IsAlive(e) {
		t.Fatal("fresh entity not alive")
	}

	reg.DestroyEntity(e)
	if reg.IsAlive(e) {
		t.Fatal("destroyed entity still alive")
	}

	// The freed slot is recycled; the new handle must differ.
	e2 := reg.CreateEntity()
	if e2.Index() != e.Index() {
		t.Fatalf("expected slot reuse: new index %d, old index %d", e2.Index(), e.Index())
	}
	if e2 == e {
		t.Error("recycled handle equals the stale one")
	}
	if !reg.IsAlive(e2) {
		t.Error("recycled entity not alive")
	}
	if reg.IsAlive(e) {
		t.Error("stale handle alive after slot reuse")
	}
}

// TestIdempotentDestroy tests that a second destroy is a no-op
func TestIdempotentDestroy(t *testing.T) {
	reg := Factory.NewRegistry()

	e := reg.CreateEntity()
	other := reg.CreateEntity()
	Add(reg, other, Position{X: 1})

	reg.DestroyEntity(e)
	gen := reg.generations[e.Index()]
	freeLen := len(reg.freeList)

	reg.DestroyEntity(e)

	if reg.generations[e.Index()] != gen {
		t.Error("second destroy bumped the generation again")
	}
	if len(reg.freeList) != freeLen {
		t.Error("second destroy re-queued the slot")
	}
	if reg.EntityCount() != 1 {
		t.Errorf("EntityCount() = %d, want 1", reg.EntityCount())
	}
	if !Has[Position](reg, other) {
		t.Error("unrelated entity lost its component")
	}
}

// TestDestroyStripsAllPools tests the destruction cascade across pools
func TestDestroyStripsAllPools(t *testing.T) {
	reg := Factory.NewRegistry()

	e := reg.CreateEntity()
	keeper := reg.CreateEntity()

	Add(reg, e, Position{X: 1})
	Add(reg, e, Velocity2{DX: 2})
	Add(reg, e, Tag{Name: "doomed"})
	Add(reg, keeper, Position{X: 9})

	reg.DestroyEntity(e)

	if Has[Position](reg, e) || Has[Velocity2](reg, e) || Has[Tag](reg, e) {
		t.Error("destroyed entity still owns components")
	}
	if SizeOf[Position](reg) != 1 {
		t.Errorf("Position pool size = %d, want 1", SizeOf[Position](reg))
	}
	if SizeOf[Velocity2](reg) != 0 || SizeOf[Tag](reg) != 0 {
		t.Error("pools not emptied by destroy")
	}
	if got := Get[Position](reg, keeper).X; got != 9 {
		t.Errorf("survivor Position.X = %v, want 9", got)
	}
}

// TestFreeListIsFIFO tests that slots recycle oldest-first
func TestFreeListIsFIFO(t *testing.T) {
	reg := Factory.NewRegistry()

	var entities []Entity
	for i := 0; i < 4; i++ {
		entities = append(entities, reg.CreateEntity())
	}
	reg.DestroyEntity(entities[1])
	reg.DestroyEntity(entities[3])

	first := reg.CreateEntity()
	second := reg.CreateEntity()

	if first.Index() != entities[1].Index() {
		t.Errorf("first recycled index = %d, want %d", first.Index(), entities[1].Index())
	}
	if second.Index() != entities[3].Index() {
		t.Errorf("second recycled index = %d, want %d", second.Index(), entities[3].Index())
	}
}

// TestComponentAccess tests the typed CRUD surface
func TestComponentAccess(t *testing.T) {
	reg := Factory.NewRegistry()
	e := reg.CreateEntity()

	if Has[Position](reg, e) {
		t.Error("Has true before any pool exists")
	}

	pos := Add(reg, e, Position{X: 3, Y: 4})
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("Add returned %+v, want {3 4}", *pos)
	}

	pos.X = 5
	if got := Get[Position](reg, e).X; got != 5 {
		t.Errorf("mutation through Add pointer not visible via Get: %v", got)
	}

	Remove[Position](reg, e)
	if Has[Position](reg, e) {
		t.Error("Has true after Remove")
	}
	Remove[Position](reg, e) // absent: no-op

	v := GetOrAdd[Velocity2](reg, e)
	if v.DX != 0 {
		t.Errorf("GetOrAdd default = %+v, want zero value", *v)
	}
	v.DX = 7
	if got := GetOrAdd[Velocity2](reg, e); got.DX != 7 {
		t.Error("GetOrAdd did not return the existing component")
	}
}

// TestComponentContractViolations tests the panic policy on misuse
func TestComponentContractViolations(t *testing.T) {
	tests := []struct {
		name string
		call func(reg *Registry, e Entity)
	}{
		{
			name: "double add",
			call: func(reg *Registry, e Entity) {
				Add(reg, e, Position{})
				Add(reg, e, Position{})
			},
		},
		{
			name: "add to dead entity",
			call: func(reg *Registry, e Entity) {
				reg.DestroyEntity(e)
				Add(reg, e, Position{})
			},
		},
		{
			name: "get missing component",
			call: func(reg *Registry, e Entity) {
				Get[Position](reg, e)
			},
		},
		{
			name: "get on dead entity",
			call: func(reg *Registry, e Entity) {
				Add(reg, e, Position{})
				reg.DestroyEntity(e)
				Get[Position](reg, e)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := Factory.NewRegistry()
			e := reg.CreateEntity()
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.call(reg, e)
		})
	}
}

// TestRegistryClear tests whole-world teardown
func TestRegistryClear(t *testing.T) {
	reg := Factory.NewRegistry()

	var entities []Entity
	for i := 0; i < 5; i++ {
		e := reg.CreateEntity()
		Add(reg, e, Position{X: float64(i)})
		entities = append(entities, e)
	}
	reg.DestroyEntity(entities[2])

	reg.Clear()

	if reg.EntityCount() != 0 {
		t.Errorf("EntityCount() = %d after Clear, want 0", reg.EntityCount())
	}
	if SizeOf[Position](reg) != 0 {
		t.Error("pool not emptied by Clear")
	}
	for _, e := range entities {
		if reg.IsAlive(e) {
			t.Errorf("entity %v alive after Clear", e)
		}
	}

	// Behaves as freshly constructed.
	e := reg.CreateEntity()
	if e.Index() != 0 || e.Generation() != 0 {
		t.Errorf("first post-Clear entity = idx %d gen %d, want 0/0", e.Index(), e.Generation())
	}
	Add(reg, e, Position{X: 1})
	if !Has[Position](reg, e) {
		t.Error("component CRUD broken after Clear")
	}
}

// TestGenerationWraps tests the 12-bit generation wraparound on heavy reuse
func TestGenerationWraps(t *testing.T) {
	reg := Factory.NewRegistry()

	e := reg.CreateEntity()
	idx := e.Index()

	// One full wrap plus one: the slot's generation ends at 1.
	cycles := entityGenMask + 2
	for i := 0; i < cycles; i++ {
		reg.DestroyEntity(e)
		e = reg.CreateEntity()
		if e.Index() != idx {
			t.Fatalf("cycle %d reused index %d, want %d", i, e.Index(), idx)
		}
	}

	if e.Generation() != uint32(cycles%(entityGenMask+1)) {
		t.Errorf("generation = %d after %d recycles, want %d",
			e.Generation(), cycles, cycles%(entityGenMask+1))
	}
	if !reg.IsAlive(e) {
		t.Error("current handle not alive after wraparound")
	}
}

package entity

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gravitar/internal/component"
	"go-gravitar/internal/types"
	"go-gravitar/internal/utils"
)

func TestCreateNeverReturnsNullEntity(t *testing.T) {
	e := NewECS()
	id := e.Create()
	assert.False(t, id.IsNull())
	assert.True(t, e.Alive(id))
	assert.Equal(t, 1, e.Len())
}

func TestDestroyInvalidatesStaleHandle(t *testing.T) {
	e := NewECS()
	first := e.Create()
	e.Healths.Set(first, component.Health{Value: 3})
	e.Destroy(first)

	assert.False(t, e.Alive(first))
	assert.Nil(t, e.Healths.Get(first))

	second := e.Create()
	assert.Equal(t, first.Index(), second.Index(), "slot should be recycled")
	assert.NotEqual(t, first, second, "generation must differ")
	assert.False(t, e.Alive(first))

	// destroying the stale handle must not touch the new entity
	e.Healths.Set(second, component.Health{Value: 1})
	e.Destroy(first)
	assert.True(t, e.Alive(second))
	assert.Equal(t, 1, e.Healths.Get(second).Value)
}

func TestSetReplacesExistingComponent(t *testing.T) {
	e := NewECS()
	id := e.Create()
	e.Healths.Set(id, component.Health{Value: 3})
	h := e.Healths.Set(id, component.Health{Value: 5})

	assert.Equal(t, 5, h.Value)
	assert.Equal(t, 1, e.Healths.Len())
	assert.Same(t, h, e.Healths.Get(id))
}

func TestSetOnDeadEntityPanics(t *testing.T) {
	e := NewECS()
	id := e.Create()
	e.Destroy(id)
	assert.Panics(t, func() { e.Players.Add(id) })
}

func TestMustGetPanicsWhenMissing(t *testing.T) {
	e := NewECS()
	id := e.Create()
	assert.Panics(t, func() { e.Fuels.MustGet(id) })
}

func TestPointersSurviveStoreGrowth(t *testing.T) {
	e := NewECS()
	id := e.Create()
	h := e.Healths.Set(id, component.Health{Value: 1})
	for i := 0; i < 100; i++ {
		e.Healths.Set(e.Create(), component.Health{Value: i})
	}
	h.Value = 42
	assert.Equal(t, 42, e.Healths.Get(id).Value)
}

func TestViewRequiresAllComponents(t *testing.T) {
	e := NewECS()
	both := e.Create()
	e.Players.Add(both)
	e.Healths.Set(both, component.Health{Value: 1})

	onlyHealth := e.Create()
	e.Healths.Set(onlyHealth, component.Health{Value: 1})

	ids := e.View(e.Players, e.Healths).Entities()
	assert.Equal(t, []types.EntityID{both}, ids)
}

func TestViewIteratesInInsertionOrder(t *testing.T) {
	e := NewECS()
	var want []types.EntityID
	for i := 0; i < 5; i++ {
		id := e.Create()
		e.Planets.Add(id)
		want = append(want, id)
	}
	assert.Equal(t, want, e.View(e.Planets).Entities())

	first, ok := e.View(e.Planets).First()
	require.True(t, ok)
	assert.Equal(t, want[0], first)
}

func TestViewIsRestartable(t *testing.T) {
	e := NewECS()
	for i := 0; i < 3; i++ {
		e.Bullets.Add(e.Create())
	}
	v := e.View(e.Bullets)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 3, v.Len())
}

func TestDestroyedEntityLeavesViewsAndGroups(t *testing.T) {
	e := NewECS()
	group := e.Group(e.Bullets, e.HitRadii)

	a, b := e.Create(), e.Create()
	for _, id := range []types.EntityID{a, b} {
		e.Bullets.Add(id)
		e.HitRadii.Set(id, component.HitRadius{Value: 2})
	}
	require.Equal(t, 2, group.Len())

	e.Destroy(a)
	assert.Equal(t, []types.EntityID{b}, group.Entities())
	assert.Equal(t, []types.EntityID{b}, e.View(e.Bullets, e.HitRadii).Entities())
}

func TestGroupIsSharedPerSignature(t *testing.T) {
	e := NewECS()
	assert.Same(t, e.Group(e.Velocities, e.Renderables), e.Group(e.Velocities, e.Renderables))
	assert.NotSame(t, e.Group(e.Velocities, e.Renderables), e.Group(e.Renderables, e.Velocities))
}

func TestMutationDuringIterationPanics(t *testing.T) {
	e := NewECS()
	id := e.Create()
	e.Bullets.Add(id)

	assert.Panics(t, func() {
		e.View(e.Bullets).Each(func(id types.EntityID) {
			e.Destroy(id)
		})
	})
	// the iteration guard is released even after a panic
	assert.NotPanics(t, func() { e.Destroy(id) })
	assert.False(t, e.Alive(id))
}

func TestCollectThenDestroy(t *testing.T) {
	e := NewECS()
	for i := 0; i < 4; i++ {
		id := e.Create()
		e.Bunkers.Add(id)
		e.Healths.Set(id, component.Health{Value: i % 2})
	}

	var dead []types.EntityID
	e.View(e.Bunkers, e.Healths).Each(func(id types.EntityID) {
		if e.Healths.Get(id).IsDead() {
			dead = append(dead, id)
		}
	})
	e.Destroy(dead...)

	assert.Equal(t, 2, e.Bunkers.Len())
}

func TestCreateFromCopiesTransferableComponents(t *testing.T) {
	src := NewECS()
	player := src.Create()
	src.Players.Add(player)
	src.Healths.Set(player, component.Health{Value: 2})
	src.Fuels.Set(player, component.Fuel{Value: 10})
	src.Velocities.Set(player, component.Velocity{X: 1})
	src.HitRadii.Set(player, component.HitRadius{Value: 8})
	src.ReloadTimes.Set(player, component.NewReloadTime(1))
	src.SceneRefs.Set(player, component.SceneRef{Scene: 7})
	src.TractorBeams.Set(player, component.TractorBeam{Entity: player})
	src.Bunkers.Add(player)
	r := component.NewCircle(8, color.RGBA{})
	r.SetPosition(utils.Vec2{X: 5, Y: 6})
	src.Renderables.Set(player, r)

	dst := NewECS()
	clone := dst.CreateFrom(player, src)

	assert.True(t, dst.Players.Has(clone))
	assert.Equal(t, 2, dst.Healths.Get(clone).Value)
	assert.Equal(t, 10.0, dst.Fuels.Get(clone).Value)
	assert.Equal(t, 1.0, dst.Velocities.Get(clone).X)
	assert.Equal(t, 8.0, dst.HitRadii.Get(clone).Value)
	assert.True(t, dst.ReloadTimes.Has(clone))
	assert.Equal(t, utils.Vec2{X: 5, Y: 6}, dst.Renderables.Get(clone).Position())

	assert.False(t, dst.SceneRefs.Has(clone))
	assert.False(t, dst.TractorBeams.Has(clone))
	assert.False(t, dst.Bunkers.Has(clone))

	// no live component instance is shared between the stores
	dst.Healths.Get(clone).Value = 0
	dst.Renderables.Get(clone).Move(utils.Vec2{X: 1})
	assert.Equal(t, 2, src.Healths.Get(player).Value)
	assert.Equal(t, utils.Vec2{X: 5, Y: 6}, src.Renderables.Get(player).Position())
}

func TestClearDestroysEverything(t *testing.T) {
	e := NewECS()
	a := e.Create()
	e.Players.Add(a)
	e.Destroy(e.Create())
	e.Create()

	e.Clear()
	assert.Equal(t, 0, e.Len())
	assert.Equal(t, 0, e.Players.Len())
}

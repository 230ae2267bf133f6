// internal/entity/ecs.go
package entity

import (
	"go-gravitar/internal/component"
	"go-gravitar/internal/types"
)

// ECS owns every entity of one scene and all of their components. Each
// component type lives in its own store field.
type ECS struct {
	pool      *Pool
	revision  uint64
	iterating int
	stores    []Membership
	groups    map[uint64]*Group

	Velocities   *Store[component.Velocity]
	Healths      *Store[component.Health]
	Fuels        *Store[component.Fuel]
	HitRadii     *Store[component.HitRadius]
	ReloadTimes  *Store[component.ReloadTime]
	Renderables  *Store[component.Renderable]
	SceneRefs    *Store[component.SceneRef]
	TractorBeams *Store[component.TractorBeam]

	Players  *Store[component.Player]
	Bunkers  *Store[component.Bunker]
	Bullets  *Store[component.Bullet]
	Terrains *Store[component.Terrain]
	Planets  *Store[component.Planet]
	Grounds  *Store[component.Ground]
}

func NewECS() *ECS {
	e := &ECS{
		pool:   NewPool(),
		groups: make(map[uint64]*Group),
	}
	e.Velocities = newStore[component.Velocity](e, "velocity")
	e.Healths = newStore[component.Health](e, "health")
	e.Fuels = newStore[component.Fuel](e, "fuel")
	e.HitRadii = newStore[component.HitRadius](e, "hit-radius")
	e.ReloadTimes = newStore[component.ReloadTime](e, "reload-time")
	e.Renderables = newStore[component.Renderable](e, "renderable")
	e.SceneRefs = newStore[component.SceneRef](e, "scene-ref")
	e.TractorBeams = newStore[component.TractorBeam](e, "tractor-beam")
	e.Players = newStore[component.Player](e, "player")
	e.Bunkers = newStore[component.Bunker](e, "bunker")
	e.Bullets = newStore[component.Bullet](e, "bullet")
	e.Terrains = newStore[component.Terrain](e, "terrain")
	e.Planets = newStore[component.Planet](e, "planet")
	e.Grounds = newStore[component.Ground](e, "ground")
	return e
}

// Create returns a fresh entity without components.
func (e *ECS) Create() types.EntityID {
	return e.pool.Create()
}

// CreateFrom clones src of another store into e. Only the transferable
// components are copied: the player tag, health, fuel, velocity, hit radius,
// reload time and the renderable, which is attached last. Scene refs, tractor
// beams and scene-local tags stay behind.
func (e *ECS) CreateFrom(src types.EntityID, from *ECS) types.EntityID {
	id := e.Create()
	if from.Players.Has(src) {
		e.Players.Add(id)
	}
	cloneInto(e.Healths, from.Healths, src, id)
	cloneInto(e.Fuels, from.Fuels, src, id)
	cloneInto(e.Velocities, from.Velocities, src, id)
	cloneInto(e.HitRadii, from.HitRadii, src, id)
	cloneInto(e.ReloadTimes, from.ReloadTimes, src, id)
	cloneInto(e.Renderables, from.Renderables, src, id)
	return id
}

func cloneInto[T any](dst, src *Store[T], from, to types.EntityID) {
	if c := src.Get(from); c != nil {
		dst.Set(to, *c)
	}
}

func (e *ECS) Alive(id types.EntityID) bool {
	return e.pool.Alive(id)
}

// Destroy removes every component of the given entities and invalidates their
// handles. Stale handles are ignored.
func (e *ECS) Destroy(ids ...types.EntityID) {
	for _, id := range ids {
		if !e.pool.Alive(id) {
			continue
		}
		e.touch()
		for _, s := range e.stores {
			s.remove(id)
		}
		e.pool.Destroy(id)
	}
}

// Clear destroys every live entity.
func (e *ECS) Clear() {
	var ids []types.EntityID
	e.pool.Each(func(id types.EntityID) { ids = append(ids, id) })
	e.Destroy(ids...)
}

// Len returns the number of live entities.
func (e *ECS) Len() int {
	return e.pool.Len()
}

func (e *ECS) touch() {
	if e.iterating > 0 {
		panic("entity: component membership changed while a view is being iterated")
	}
	e.revision++
}

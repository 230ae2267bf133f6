package entity

import (
	"iter"
	"strings"

	"github.com/cespare/xxhash/v2"

	"go-gravitar/internal/types"
)

// View is a lazy sequence of the entities that own every listed component.
// It can be iterated any number of times. Changing component membership while
// an iteration is running panics; collect the ids and mutate afterwards.
type View struct {
	ecs    *ECS
	stores []Membership
}

func (e *ECS) View(stores ...Membership) View {
	return View{ecs: e, stores: stores}
}

func (v View) driver() Membership {
	if len(v.stores) == 0 {
		return nil
	}
	d := v.stores[0]
	for _, s := range v.stores[1:] {
		if s.Len() < d.Len() {
			d = s
		}
	}
	return d
}

func (v View) matches(id types.EntityID) bool {
	for _, s := range v.stores {
		if !s.Has(id) {
			return false
		}
	}
	return true
}

func (v View) Each(fn func(types.EntityID)) {
	for id := range v.All() {
		fn(id)
	}
}

func (v View) All() iter.Seq[types.EntityID] {
	return func(yield func(types.EntityID) bool) {
		d := v.driver()
		if d == nil {
			return
		}
		v.ecs.iterating++
		defer func() { v.ecs.iterating-- }()

		for _, id := range d.entities() {
			if v.matches(id) && !yield(id) {
				return
			}
		}
	}
}

// Entities returns a snapshot that stays valid across mutations.
func (v View) Entities() []types.EntityID {
	var ids []types.EntityID
	for id := range v.All() {
		ids = append(ids, id)
	}
	return ids
}

func (v View) First() (types.EntityID, bool) {
	for id := range v.All() {
		return id, true
	}
	return types.NullEntity, false
}

func (v View) Len() int {
	n := 0
	for range v.All() {
		n++
	}
	return n
}

// Group is a View over a fixed component combination whose result is cached
// until the store composition changes.
type Group struct {
	view     View
	cached   []types.EntityID
	revision uint64
	fresh    bool
}

// Group returns the group for the given stores, creating it on first use.
// Scenes declare their groups once in their constructor.
func (e *ECS) Group(stores ...Membership) *Group {
	names := make([]string, len(stores))
	for i, s := range stores {
		names[i] = s.Name()
	}
	key := xxhash.Sum64String(strings.Join(names, "+"))
	if g, ok := e.groups[key]; ok {
		return g
	}
	g := &Group{view: e.View(stores...)}
	e.groups[key] = g
	return g
}

func (g *Group) refresh() {
	if g.fresh && g.revision == g.view.ecs.revision {
		return
	}
	g.cached = g.view.Entities()
	g.revision = g.view.ecs.revision
	g.fresh = true
}

func (g *Group) All() iter.Seq[types.EntityID] {
	return func(yield func(types.EntityID) bool) {
		g.refresh()
		ecs := g.view.ecs
		ecs.iterating++
		defer func() { ecs.iterating-- }()

		for _, id := range g.cached {
			if !yield(id) {
				return
			}
		}
	}
}

func (g *Group) Each(fn func(types.EntityID)) {
	for id := range g.All() {
		fn(id)
	}
}

func (g *Group) Entities() []types.EntityID {
	g.refresh()
	return append([]types.EntityID(nil), g.cached...)
}

func (g *Group) First() (types.EntityID, bool) {
	for id := range g.All() {
		return id, true
	}
	return types.NullEntity, false
}

func (g *Group) Len() int {
	g.refresh()
	return len(g.cached)
}

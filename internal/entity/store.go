package entity

import (
	"fmt"

	"go-gravitar/internal/types"
)

// Membership is what views and groups need from a component store.
type Membership interface {
	Has(id types.EntityID) bool
	Len() int
	Name() string
	entities() []types.EntityID
	remove(id types.EntityID) bool
}

// Store keeps one component type for the entities of a single ECS. Entities
// are kept in dense insertion order (swap-remove on delete) so iteration is
// deterministic, and components are boxed so pointers stay valid while the
// store grows.
type Store[T any] struct {
	owner  *ECS
	name   string
	sparse map[types.EntityID]int
	dense  []types.EntityID
	data   []*T
}

func newStore[T any](owner *ECS, name string) *Store[T] {
	s := &Store[T]{
		owner:  owner,
		name:   name,
		sparse: make(map[types.EntityID]int),
	}
	owner.stores = append(owner.stores, s)
	return s
}

// Set attaches value to id, replacing any component of the same type, and
// returns a pointer to the stored copy.
func (s *Store[T]) Set(id types.EntityID, value T) *T {
	if !s.owner.Alive(id) {
		panic(fmt.Sprintf("entity: set %s on dead entity %d", s.name, id))
	}
	if i, ok := s.sparse[id]; ok {
		*s.data[i] = value
		return s.data[i]
	}
	s.owner.touch()
	c := new(T)
	*c = value
	s.sparse[id] = len(s.dense)
	s.dense = append(s.dense, id)
	s.data = append(s.data, c)
	return c
}

// Add attaches the zero value of T; used for tags.
func (s *Store[T]) Add(id types.EntityID) *T {
	var zero T
	return s.Set(id, zero)
}

// Get returns the component of id or nil.
func (s *Store[T]) Get(id types.EntityID) *T {
	if i, ok := s.sparse[id]; ok {
		return s.data[i]
	}
	return nil
}

func (s *Store[T]) TryGet(id types.EntityID) (*T, bool) {
	c := s.Get(id)
	return c, c != nil
}

// MustGet is Get for callers that hold the invariant that the component is
// present; a violation is a programming error.
func (s *Store[T]) MustGet(id types.EntityID) *T {
	c := s.Get(id)
	if c == nil {
		panic(fmt.Sprintf("entity: %d has no %s", id, s.name))
	}
	return c
}

func (s *Store[T]) Has(id types.EntityID) bool {
	_, ok := s.sparse[id]
	return ok
}

func (s *Store[T]) Remove(id types.EntityID) {
	if s.Has(id) {
		s.owner.touch()
		s.remove(id)
	}
}

func (s *Store[T]) Len() int     { return len(s.dense) }
func (s *Store[T]) Name() string { return s.name }

func (s *Store[T]) entities() []types.EntityID { return s.dense }

func (s *Store[T]) remove(id types.EntityID) bool {
	i, ok := s.sparse[id]
	if !ok {
		return false
	}
	last := len(s.dense) - 1
	if i != last {
		s.dense[i] = s.dense[last]
		s.data[i] = s.data[last]
		s.sparse[s.dense[i]] = i
	}
	s.dense[last] = types.NullEntity
	s.data[last] = nil
	s.dense = s.dense[:last]
	s.data = s.data[:last]
	delete(s.sparse, id)
	return true
}

package ecs

import (
	"fmt"
	"reflect"
)

// componentArray is the type-erased view of a PackedArray the store needs for
// bulk cleanup when an entity is destroyed.
type componentArray interface {
	EntityDestroyed(e Entity)
	Has(e Entity) bool
	Len() int
}

// ComponentStore owns one PackedArray per registered component type.
type ComponentStore struct {
	capacity int
	types    map[reflect.Type]ComponentType
	names    []string
	arrays   []componentArray // indexed by ComponentType
}

func NewComponentStore(capacity int) *ComponentStore {
	return &ComponentStore{
		capacity: capacity,
		types:    make(map[reflect.Type]ComponentType, MaxComponents),
		arrays:   make([]componentArray, 0, MaxComponents),
	}
}

// Registered returns the number of component types assigned so far.
func (s *ComponentStore) Registered() int { return len(s.arrays) }

// Name returns the Go type name registered under t.
func (s *ComponentStore) Name(t ComponentType) string {
	if int(t) >= len(s.names) {
		return fmt.Sprintf("component#%d", t)
	}
	return s.names[t]
}

// EntityDestroyed purges e from every array that holds it.
func (s *ComponentStore) EntityDestroyed(e Entity) {
	for _, a := range s.arrays {
		if a.Has(e) {
			a.EntityDestroyed(e)
		}
	}
}

// RegisterType assigns the next type id to T and creates its array.
func RegisterType[T any](s *ComponentStore) (ComponentType, error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if _, ok := s.types[rt]; ok {
		return 0, fmt.Errorf("register component %s: %w", rt, ErrDuplicateRegistration)
	}
	if len(s.arrays) >= MaxComponents {
		return 0, fmt.Errorf("register component %s: %w", rt, ErrTooManyTypes)
	}
	t := ComponentType(len(s.arrays))
	s.types[rt] = t
	s.names = append(s.names, rt.String())
	s.arrays = append(s.arrays, NewPackedArray[T](s.capacity))
	return t, nil
}

// TypeOf returns the id assigned to T.
func TypeOf[T any](s *ComponentStore) (ComponentType, error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	t, ok := s.types[rt]
	if !ok {
		return 0, fmt.Errorf("component %s: %w", rt, ErrUnregisteredType)
	}
	return t, nil
}

// ArrayOf returns T's packed array.
func ArrayOf[T any](s *ComponentStore) (*PackedArray[T], ComponentType, error) {
	t, err := TypeOf[T](s)
	if err != nil {
		return nil, 0, err
	}
	return s.arrays[t].(*PackedArray[T]), t, nil
}

// Add stores v for e.
func Add[T any](s *ComponentStore, e Entity, v T) (ComponentType, error) {
	a, t, err := ArrayOf[T](s)
	if err != nil {
		return 0, err
	}
	if !a.Insert(e, v) {
		if int(e) >= s.capacity {
			return 0, fmt.Errorf("add %s to %d: %w", s.Name(t), e, ErrInvalidEntity)
		}
		return 0, fmt.Errorf("add %s to %d: %w", s.Name(t), e, ErrDuplicateComponent)
	}
	return t, nil
}

// Remove drops e's value of type T.
func Remove[T any](s *ComponentStore, e Entity) (ComponentType, error) {
	a, t, err := ArrayOf[T](s)
	if err != nil {
		return 0, err
	}
	if !a.Remove(e) {
		return 0, fmt.Errorf("remove %s from %d: %w", s.Name(t), e, ErrComponentNotFound)
	}
	return t, nil
}

// Get returns a borrowed pointer to e's value of type T.
func Get[T any](s *ComponentStore, e Entity) (*T, error) {
	a, t, err := ArrayOf[T](s)
	if err != nil {
		return nil, err
	}
	v := a.Get(e)
	if v == nil {
		return nil, fmt.Errorf("get %s of %d: %w", s.Name(t), e, ErrComponentNotFound)
	}
	return v, nil
}

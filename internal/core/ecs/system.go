package ecs

import (
	"fmt"
	"reflect"
)

// EntitySet is the maintained member set of a system. Embed it in a system
// struct to make the struct satisfy System.
type EntitySet struct {
	dense []Entity
	index map[Entity]int
}

// Entities returns the members. The slice is owned by the set and changes on
// the next structural mutation of the world.
func (s *EntitySet) Entities() []Entity { return s.dense }

func (s *EntitySet) Len() int { return len(s.dense) }

func (s *EntitySet) Contains(e Entity) bool {
	_, ok := s.index[e]
	return ok
}

func (s *EntitySet) insert(e Entity) {
	if s.index == nil {
		s.index = make(map[Entity]int)
	}
	if _, ok := s.index[e]; ok {
		return
	}
	s.index[e] = len(s.dense)
	s.dense = append(s.dense, e)
}

func (s *EntitySet) remove(e Entity) {
	i, ok := s.index[e]
	if !ok {
		return
	}
	last := len(s.dense) - 1
	if i != last {
		moved := s.dense[last]
		s.dense[i] = moved
		s.index[moved] = i
	}
	s.dense = s.dense[:last]
	delete(s.index, e)
}

func (s *EntitySet) entitySet() *EntitySet { return s }

// System is implemented by any struct that embeds EntitySet.
type System interface {
	entitySet() *EntitySet
}

type systemEntry struct {
	name      string
	system    System
	signature Signature
}

// SystemRegistry holds one instance per system type and keeps each
// instance's member set equal to the live entities whose signature contains
// the system's required signature.
type SystemRegistry struct {
	byType  map[reflect.Type]*systemEntry
	ordered []*systemEntry
}

func NewSystemRegistry() *SystemRegistry {
	return &SystemRegistry{
		byType: make(map[reflect.Type]*systemEntry),
	}
}

// register stores s with an empty requirement, so it starts out holding every
// live entity until a signature is set.
func (r *SystemRegistry) register(s System, entities *EntityRegistry) error {
	rt := reflect.TypeOf(s)
	if _, ok := r.byType[rt]; ok {
		return fmt.Errorf("register system %s: %w", rt, ErrDuplicateRegistration)
	}
	e := &systemEntry{name: rt.String(), system: s}
	r.byType[rt] = e
	r.ordered = append(r.ordered, e)
	r.setSignature(e, 0, entities)
	return nil
}

func (r *SystemRegistry) entry(rt reflect.Type) (*systemEntry, error) {
	e, ok := r.byType[rt]
	if !ok {
		return nil, fmt.Errorf("system %s: %w", rt, ErrUnregisteredType)
	}
	return e, nil
}

// Systems returns the registered instances in registration order.
func (r *SystemRegistry) Systems() []System {
	out := make([]System, len(r.ordered))
	for i, e := range r.ordered {
		out[i] = e.system
	}
	return out
}

// EntityCreated adds a fresh (empty-signature) entity to every system that
// requires nothing.
func (r *SystemRegistry) EntityCreated(e Entity) {
	for _, s := range r.ordered {
		if s.signature.Empty() {
			s.system.entitySet().insert(e)
		}
	}
}

// EntitySignatureChanged updates membership after e's signature went from
// old to sig. Only systems that require one of the flipped types can change
// membership, so the others are skipped.
func (r *SystemRegistry) EntitySignatureChanged(e Entity, old, sig Signature) {
	delta := old ^ sig
	for _, s := range r.ordered {
		if !s.signature.Intersects(delta) {
			continue
		}
		set := s.system.entitySet()
		if sig.Contains(s.signature) {
			set.insert(e)
		} else {
			set.remove(e)
		}
	}
}

// EntityDestroyed removes e from every system.
func (r *SystemRegistry) EntityDestroyed(e Entity) {
	for _, s := range r.ordered {
		s.system.entitySet().remove(e)
	}
}

// setSignature sets a system's requirement and rebuilds its members from
// every live entity.
func (r *SystemRegistry) setSignature(s *systemEntry, sig Signature, entities *EntityRegistry) {
	s.signature = sig
	set := s.system.entitySet()
	set.dense = set.dense[:0]
	clear(set.index)
	entities.Each(func(e Entity, es Signature) {
		if es.Contains(sig) {
			set.insert(e)
		}
	})
}

package ecs

import "fmt"

// DefaultMaxEntities is the entity capacity of a world built without WithMaxEntities.
const DefaultMaxEntities = 8192

// Entity is an identifier in [0, max entities). It carries no data itself.
type Entity uint32

// EntityRegistry issues and recycles entity ids and stores one signature per id.
//
// Free ids form a FIFO ring: destroyed ids go to the tail, so a recycled id is
// reissued only after every other free id has been handed out once.
type EntityRegistry struct {
	signatures []Signature
	alive      []bool
	free       []Entity // ring buffer
	head       int
	freeCount  int
	living     int
}

func NewEntityRegistry(capacity int) *EntityRegistry {
	r := &EntityRegistry{
		signatures: make([]Signature, capacity),
		alive:      make([]bool, capacity),
		free:       make([]Entity, capacity),
		freeCount:  capacity,
	}
	for i := range r.free {
		r.free[i] = Entity(i)
	}
	return r
}

// Capacity returns the size of the id universe.
func (r *EntityRegistry) Capacity() int { return len(r.free) }

// Living returns the number of live entities.
func (r *EntityRegistry) Living() int { return r.living }

func (r *EntityRegistry) Create() (Entity, error) {
	if r.freeCount == 0 {
		return 0, fmt.Errorf("create entity: %d live: %w", r.living, ErrCapacityExceeded)
	}
	e := r.free[r.head]
	r.head = (r.head + 1) % len(r.free)
	r.freeCount--

	r.signatures[e] = 0
	r.alive[e] = true
	r.living++
	return e, nil
}

func (r *EntityRegistry) Destroy(e Entity) error {
	if !r.Alive(e) {
		return fmt.Errorf("destroy entity %d: %w", e, ErrInvalidEntity)
	}
	r.signatures[e] = 0
	r.alive[e] = false
	r.living--

	tail := (r.head + r.freeCount) % len(r.free)
	r.free[tail] = e
	r.freeCount++
	return nil
}

// Alive reports whether e is in range and currently issued.
func (r *EntityRegistry) Alive(e Entity) bool {
	return int(e) < len(r.alive) && r.alive[e]
}

func (r *EntityRegistry) SetSignature(e Entity, sig Signature) error {
	if int(e) >= len(r.signatures) {
		return fmt.Errorf("set signature of %d: %w", e, ErrInvalidEntity)
	}
	r.signatures[e] = sig
	return nil
}

func (r *EntityRegistry) Signature(e Entity) (Signature, error) {
	if int(e) >= len(r.signatures) {
		return 0, fmt.Errorf("get signature of %d: %w", e, ErrInvalidEntity)
	}
	return r.signatures[e], nil
}

// Each calls fn for every live entity in ascending id order.
func (r *EntityRegistry) Each(fn func(Entity, Signature)) {
	for i, ok := range r.alive {
		if ok {
			fn(Entity(i), r.signatures[i])
		}
	}
}

package ecs

// PackedArray stores every value of one component type contiguously.
// entityToIndex and indexToEntity are kept in lock-step; removing a value
// moves the last element into the freed slot.
type PackedArray[T any] struct {
	dense         []T
	indexToEntity []Entity
	entityToIndex []int32 // -1 = absent
}

func NewPackedArray[T any](capacity int) *PackedArray[T] {
	a := &PackedArray[T]{
		dense:         make([]T, 0, min(capacity, 256)),
		indexToEntity: make([]Entity, 0, min(capacity, 256)),
		entityToIndex: make([]int32, capacity),
	}
	for i := range a.entityToIndex {
		a.entityToIndex[i] = -1
	}
	return a
}

func (a *PackedArray[T]) Has(e Entity) bool {
	return int(e) < len(a.entityToIndex) && a.entityToIndex[e] >= 0
}

// Insert appends v for e. Returns false if e already has a value or is out of range.
func (a *PackedArray[T]) Insert(e Entity, v T) bool {
	if int(e) >= len(a.entityToIndex) || a.entityToIndex[e] >= 0 {
		return false
	}
	a.entityToIndex[e] = int32(len(a.dense))
	a.dense = append(a.dense, v)
	a.indexToEntity = append(a.indexToEntity, e)
	return true
}

// Remove drops e's value in O(1). Returns false if e has none.
func (a *PackedArray[T]) Remove(e Entity) bool {
	if !a.Has(e) {
		return false
	}
	removed := a.entityToIndex[e]
	last := int32(len(a.dense) - 1)
	if removed != last {
		moved := a.indexToEntity[last]
		a.dense[removed] = a.dense[last]
		a.indexToEntity[removed] = moved
		a.entityToIndex[moved] = removed
	}
	var zero T
	a.dense[last] = zero
	a.dense = a.dense[:last]
	a.indexToEntity = a.indexToEntity[:last]
	a.entityToIndex[e] = -1
	return true
}

// Get returns a pointer into the dense slice, or nil. The pointer is only
// valid until the next Insert or Remove on this array.
func (a *PackedArray[T]) Get(e Entity) *T {
	if !a.Has(e) {
		return nil
	}
	return &a.dense[a.entityToIndex[e]]
}

func (a *PackedArray[T]) Len() int { return len(a.dense) }

// Values is the dense slice. Index i belongs to Entities()[i].
func (a *PackedArray[T]) Values() []T { return a.dense }

func (a *PackedArray[T]) Entities() []Entity { return a.indexToEntity }

// EntityDestroyed removes e's value if present.
func (a *PackedArray[T]) EntityDestroyed(e Entity) {
	a.Remove(e)
}

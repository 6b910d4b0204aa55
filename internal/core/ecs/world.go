package ecs

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/quadgo/engine/internal/core/event"
	"go.uber.org/zap"
)

// World is the top-level ECS container. It owns the entity registry, the
// component store, the system registry and the event bus, and is the only
// thing that touches more than one of them: signature changes reach the
// entity registry and every interested system within the same call.
//
// Single-goroutine access only (game loop).
type World struct {
	id           uuid.UUID
	entities     *EntityRegistry
	components   *ComponentStore
	systems      *SystemRegistry
	bus          *event.Bus
	log          *zap.Logger
	destroyQueue []Entity
}

type options struct {
	maxEntities int
	bus         *event.Bus
}

// Option configures NewWorld.
type Option func(*options)

// WithMaxEntities sets the entity capacity. Values below 1 are ignored.
func WithMaxEntities(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxEntities = n
		}
	}
}

// WithBus makes the world publish on an existing bus instead of its own.
func WithBus(b *event.Bus) Option {
	return func(o *options) { o.bus = b }
}

func NewWorld(log *zap.Logger, opts ...Option) *World {
	o := options{maxEntities: DefaultMaxEntities}
	for _, opt := range opts {
		opt(&o)
	}
	if o.bus == nil {
		o.bus = event.NewBus()
	}
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.New()
	return &World{
		id:           id,
		entities:     NewEntityRegistry(o.maxEntities),
		components:   NewComponentStore(o.maxEntities),
		systems:      NewSystemRegistry(),
		bus:          o.bus,
		log:          log.With(zap.String("world", id.String())),
		destroyQueue: make([]Entity, 0, 64),
	}
}

func (w *World) ID() uuid.UUID       { return w.id }
func (w *World) Bus() *event.Bus     { return w.bus }
func (w *World) Log() *zap.Logger    { return w.log }
func (w *World) Capacity() int       { return w.entities.Capacity() }
func (w *World) Living() int         { return w.entities.Living() }
func (w *World) Alive(e Entity) bool { return w.entities.Alive(e) }
func (w *World) Systems() []System   { return w.systems.Systems() }
func (w *World) ComponentTypes() int { return w.components.Registered() }

// SignatureOf returns the component signature of a live entity.
func (w *World) SignatureOf(e Entity) (Signature, error) {
	if !w.entities.Alive(e) {
		return 0, fmt.Errorf("signature of %d: %w", e, ErrInvalidEntity)
	}
	return w.entities.Signature(e)
}

func (w *World) CreateEntity() (Entity, error) {
	e, err := w.entities.Create()
	if err != nil {
		return 0, err
	}
	w.systems.EntityCreated(e)
	w.log.Debug("entity created", zap.Uint32("entity", uint32(e)))
	return e, nil
}

// DestroyEntity releases the id, then purges component data, then system
// membership.
func (w *World) DestroyEntity(e Entity) error {
	if err := w.entities.Destroy(e); err != nil {
		return err
	}
	w.components.EntityDestroyed(e)
	w.systems.EntityDestroyed(e)
	w.log.Debug("entity destroyed", zap.Uint32("entity", uint32(e)))
	return nil
}

// MarkForDestruction queues an entity for FlushDestroyQueue, so systems can
// request destruction while ranging over their members.
func (w *World) MarkForDestruction(e Entity) {
	w.destroyQueue = append(w.destroyQueue, e)
}

// FlushDestroyQueue destroys every queued entity. Entities queued twice or
// already destroyed are skipped.
func (w *World) FlushDestroyQueue() int {
	n := 0
	for _, e := range w.destroyQueue {
		if !w.entities.Alive(e) {
			continue
		}
		if err := w.DestroyEntity(e); err == nil {
			n++
		}
	}
	w.destroyQueue = w.destroyQueue[:0]
	return n
}

// changeSignature writes the flipped bit back and notifies systems.
func (w *World) changeSignature(e Entity, t ComponentType, set bool) {
	old, _ := w.entities.Signature(e)
	sig := old.Clear(t)
	if set {
		sig = old.Set(t)
	}
	_ = w.entities.SetSignature(e, sig)
	w.systems.EntitySignatureChanged(e, old, sig)
}

// RegisterComponent assigns T a component type id.
func RegisterComponent[T any](w *World) (ComponentType, error) {
	t, err := RegisterType[T](w.components)
	if err != nil {
		return 0, err
	}
	w.log.Debug("component registered",
		zap.String("type", w.components.Name(t)),
		zap.Uint8("id", uint8(t)),
	)
	return t, nil
}

// ComponentTypeOf returns the id assigned to T.
func ComponentTypeOf[T any](w *World) (ComponentType, error) {
	return TypeOf[T](w.components)
}

// AddComponent attaches v to e and updates signature and system membership.
// On error nothing changes.
func AddComponent[T any](w *World, e Entity, v T) error {
	if !w.entities.Alive(e) {
		return fmt.Errorf("add component to %d: %w", e, ErrInvalidEntity)
	}
	t, err := Add(w.components, e, v)
	if err != nil {
		return err
	}
	w.changeSignature(e, t, true)
	return nil
}

// RemoveComponent detaches T from e and updates signature and membership.
func RemoveComponent[T any](w *World, e Entity) error {
	if !w.entities.Alive(e) {
		return fmt.Errorf("remove component from %d: %w", e, ErrInvalidEntity)
	}
	t, err := Remove[T](w.components, e)
	if err != nil {
		return err
	}
	w.changeSignature(e, t, false)
	return nil
}

// GetComponent returns a borrowed pointer to e's T. Do not keep it across
// AddComponent, RemoveComponent or DestroyEntity calls: compaction moves values.
func GetComponent[T any](w *World, e Entity) (*T, error) {
	if !w.entities.Alive(e) {
		return nil, fmt.Errorf("get component of %d: %w", e, ErrInvalidEntity)
	}
	return Get[T](w.components, e)
}

// HasComponent reports whether e is live and owns a T.
func HasComponent[T any](w *World, e Entity) bool {
	a, _, err := ArrayOf[T](w.components)
	return err == nil && w.entities.Alive(e) && a.Has(e)
}

// Dense returns T's packed values and the entity owning each slot.
func Dense[T any](w *World) ([]T, []Entity, error) {
	a, _, err := ArrayOf[T](w.components)
	if err != nil {
		return nil, nil, err
	}
	return a.Values(), a.Entities(), nil
}

// RegisterSystem stores s as the one instance of its type and returns it.
func RegisterSystem[S System](w *World, s S) (S, error) {
	if err := w.systems.register(s, w.entities); err != nil {
		var zero S
		return zero, err
	}
	w.log.Debug("system registered", zap.String("system", reflect.TypeOf(s).String()))
	return s, nil
}

// SetSystemSignature sets the components S requires. Setting it after
// entities exist re-scans every live entity, so membership is correct
// immediately.
func SetSystemSignature[S System](w *World, sig Signature) error {
	e, err := w.systems.entry(reflect.TypeOf((*S)(nil)).Elem())
	if err != nil {
		return err
	}
	w.systems.setSignature(e, sig, w.entities)
	w.log.Debug("system signature set",
		zap.String("system", e.name),
		zap.Stringer("signature", sig),
		zap.Int("members", e.system.entitySet().Len()),
	)
	return nil
}

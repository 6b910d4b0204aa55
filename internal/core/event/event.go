package event

import (
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrParamNotFound     = errors.New("event: param not found")
	ErrParamTypeMismatch = errors.New("event: param type mismatch")
)

// ID identifies an event kind. ParamID identifies one payload field.
type (
	ID      uint32
	ParamID uint32
)

// Name hashes a stable event name into an ID (32-bit FNV-1a).
func Name(s string) ID { return ID(hash(s)) }

// Param hashes a stable parameter name into a ParamID.
func Param(s string) ParamID { return ParamID(hash(s)) }

func hash(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindUint
	KindFloat
	KindBool
	KindText
	KindKeys
	KindVec2
)

var kindNames = [...]string{"invalid", "int", "uint", "float", "bool", "text", "keys", "vec2"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Value is a closed tagged union of the payload types events may carry.
type Value struct {
	kind Kind
	i    int64
	u    uint64
	f    float64
	b    bool
	s    string
	keys KeySet
	vec2 mgl32.Vec2
}

func (v Value) Kind() Kind { return v.kind }

// MaxKeys is the size of the keyboard snapshot bitset.
const MaxKeys = 512

// KeySet is a fixed-size bitset of pressed keys, indexed by key code.
type KeySet [MaxKeys / 64]uint64

func (k *KeySet) Set(key int, down bool) {
	if key < 0 || key >= MaxKeys {
		return
	}
	if down {
		k[key>>6] |= 1 << (uint(key) & 63)
	} else {
		k[key>>6] &^= 1 << (uint(key) & 63)
	}
}

func (k KeySet) Pressed(key int) bool {
	if key < 0 || key >= MaxKeys {
		return false
	}
	return k[key>>6]&(1<<(uint(key)&63)) != 0
}

// Event is an id plus a typed payload. Events are built, published and dropped.
type Event struct {
	id     ID
	params map[ParamID]Value
}

func New(id ID) *Event {
	return &Event{id: id}
}

func (e *Event) ID() ID { return e.id }

func (e *Event) set(p ParamID, v Value) *Event {
	if e.params == nil {
		e.params = make(map[ParamID]Value, 4)
	}
	e.params[p] = v
	return e
}

func (e *Event) SetInt(p ParamID, v int64) *Event     { return e.set(p, Value{kind: KindInt, i: v}) }
func (e *Event) SetUint(p ParamID, v uint64) *Event   { return e.set(p, Value{kind: KindUint, u: v}) }
func (e *Event) SetFloat(p ParamID, v float64) *Event { return e.set(p, Value{kind: KindFloat, f: v}) }
func (e *Event) SetBool(p ParamID, v bool) *Event     { return e.set(p, Value{kind: KindBool, b: v}) }
func (e *Event) SetText(p ParamID, v string) *Event   { return e.set(p, Value{kind: KindText, s: v}) }
func (e *Event) SetKeys(p ParamID, v KeySet) *Event   { return e.set(p, Value{kind: KindKeys, keys: v}) }
func (e *Event) SetVec2(p ParamID, v mgl32.Vec2) *Event {
	return e.set(p, Value{kind: KindVec2, vec2: v})
}

// Has reports whether p was set.
func (e *Event) Has(p ParamID) bool {
	_, ok := e.params[p]
	return ok
}

// Value returns the raw tagged value for p.
func (e *Event) Value(p ParamID) (Value, error) {
	v, ok := e.params[p]
	if !ok {
		return Value{}, fmt.Errorf("event %d param %d: %w", e.id, p, ErrParamNotFound)
	}
	return v, nil
}

func (e *Event) lookup(p ParamID, want Kind) (Value, error) {
	v, err := e.Value(p)
	if err != nil {
		return v, err
	}
	if v.kind != want {
		return v, fmt.Errorf("event %d param %d: stored %s, read as %s: %w",
			e.id, p, v.kind, want, ErrParamTypeMismatch)
	}
	return v, nil
}

func (e *Event) Int(p ParamID) (int64, error) {
	v, err := e.lookup(p, KindInt)
	return v.i, err
}

func (e *Event) Uint(p ParamID) (uint64, error) {
	v, err := e.lookup(p, KindUint)
	return v.u, err
}

func (e *Event) Float(p ParamID) (float64, error) {
	v, err := e.lookup(p, KindFloat)
	return v.f, err
}

func (e *Event) Bool(p ParamID) (bool, error) {
	v, err := e.lookup(p, KindBool)
	return v.b, err
}

func (e *Event) Text(p ParamID) (string, error) {
	v, err := e.lookup(p, KindText)
	return v.s, err
}

func (e *Event) Keys(p ParamID) (KeySet, error) {
	v, err := e.lookup(p, KindKeys)
	return v.keys, err
}

func (e *Event) Vec2(p ParamID) (mgl32.Vec2, error) {
	v, err := e.lookup(p, KindVec2)
	return v.vec2, err
}

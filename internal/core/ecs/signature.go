package ecs

import (
	"math/bits"
	"strconv"
	"strings"
)

// MaxComponents is the number of distinct component types a world can hold.
// It matches the width of Signature.
const MaxComponents = 64

// ComponentType is the small integer id assigned to a registered component type.
type ComponentType uint8

// Signature is a set of component types, one bit per ComponentType.
type Signature uint64

// SignatureOf builds a signature with the given types set.
func SignatureOf(types ...ComponentType) Signature {
	var s Signature
	for _, t := range types {
		s = s.Set(t)
	}
	return s
}

func (s Signature) Set(t ComponentType) Signature   { return s | 1<<t }
func (s Signature) Clear(t ComponentType) Signature { return s &^ (1 << t) }
func (s Signature) Has(t ComponentType) bool        { return s&(1<<t) != 0 }

// Contains reports whether every type in sub is also in s.
func (s Signature) Contains(sub Signature) bool { return s&sub == sub }

// Intersects reports whether s and o share at least one type.
func (s Signature) Intersects(o Signature) bool { return s&o != 0 }

func (s Signature) Empty() bool { return s == 0 }
func (s Signature) Len() int    { return bits.OnesCount64(uint64(s)) }

// String renders the set as {0,3,5}.
func (s Signature) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(strconv.Itoa(bits.TrailingZeros64(rest)))
	}
	b.WriteByte('}')
	return b.String()
}


package hash

import (
	"math/bits"
	"strings"
)

// A Set Indicates one or more hash types.
type Set int

// NewHashSet will create a new hash set with the hash types supplied
func NewHashSet(t ...Type) Set {
	h := Set(None)
	return h.Add(t...)
}

// Add one or more hash types to the set.
// Returns the modified hash set.
func (h *Set) Add(t ...Type) Set {
	for _, v := range t {
		*h |= Set(v)
	}
	return *h
}

// Contains returns true if t is in the set
func (h Set) Contains(t Type) bool {
	return int(h)&int(t) != 0
}

// Overlap returns the overlapping hash types
func (h Set) Overlap(t Set) Set {
	return Set(int(h) & int(t))
}

// SubsetOf will return true if all types of h
// is present in the set c
func (h Set) SubsetOf(c Set) bool {
	return int(h)|int(c) == int(c)
}

// GetOne returns the first hash type in the set, or None.
func (h Set) GetOne() Type {
	if h == 0 {
		return None
	}
	return Type(1 << bits.TrailingZeros(uint(h)))
}

// Array returns an array of all hash types in the set
func (h Set) Array() (ht []Type) {
	for v := uint(h); v != 0; v &= v - 1 {
		ht = append(ht, Type(1<<bits.TrailingZeros(v)))
	}
	return ht
}

// Count returns the number of hash types in the set
func (h Set) Count() int {
	return bits.OnesCount(uint(h))
}

// String returns a string representation of the hash set.
// The function will panic if it contains an unknown type.
func (h Set) String() string {
	a := h.Array()
	var r []string
	for _, v := range a {
		r = append(r, v.String())
	}
	return "[" + strings.Join(r, ", ") + "]"
}

package typeutil

import (
	"math/bits"
	"strings"
)

// TypeSet is a finite set of tags. It supports the standard set operations, and since the enumeration is small and
// closed it is represented as a bitmask: the zero value is the empty set and TypeSets are comparable with ==.
type TypeSet uint32

// Predefined families of tags.
var (
	// IntegralTypes contains the tags of whole numbers.
	IntegralTypes = NewTypeSet(TypeByte, TypeShort, TypeInt, TypeLong, TypeBigInteger)
	// NumericTypes contains the tags of every number, integral or not.
	NumericTypes = IntegralTypes.Union(NewTypeSet(TypeFloat, TypeDouble, TypeBigDecimal))
	// MutableTypes contains the tags whose payload is shared by reference and must be copied by Clone.
	MutableTypes = NewTypeSet(TypeByteArray)
	// AllTypes contains every member of the enumeration.
	AllTypes = NewTypeSet(Types()...)
)

// NewTypeSet constructs a set containing the provided tags. Tags outside the enumeration are ignored.
func NewTypeSet(types ...Type) TypeSet {
	var result TypeSet
	for _, t := range types {
		result = result.Add(t)
	}
	return result
}

// Add returns a set containing the members of s and t.
func (s TypeSet) Add(t Type) TypeSet {
	if !t.Valid() {
		return s
	}
	return s | 1<<uint(t)
}

// Contains returns true if and only if t is a member of s.
func (s TypeSet) Contains(t Type) bool {
	return t.Valid() && s&(1<<uint(t)) != 0
}

// ContainsSet returns true if and only if every member of other is a member of s.
func (s TypeSet) ContainsSet(other TypeSet) bool {
	return s&other == other
}

// Equals returns true if and only if s and other have the same members.
func (s TypeSet) Equals(other TypeSet) bool {
	return s == other
}

// Union returns the tags found in s or other.
func (s TypeSet) Union(other TypeSet) TypeSet {
	return s | other
}

// Intersect returns the tags found in both s and other.
func (s TypeSet) Intersect(other TypeSet) TypeSet {
	return s & other
}

// Difference returns the tags of s which are not found in other.
func (s TypeSet) Difference(other TypeSet) TypeSet {
	return s &^ other
}

// Len returns the number of members of s.
func (s TypeSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Types returns the members of s in declaration order.
func (s TypeSet) Types() []Type {
	result := make([]Type, 0, s.Len())
	for _, t := range Types() {
		if s.Contains(t) {
			result = append(result, t)
		}
	}
	return result
}

// String formats s as a bracketed list of tag names.
func (s TypeSet) String() string {
	names := make([]string, 0, s.Len())
	for _, t := range s.Types() {
		names = append(names, t.String())
	}
	return "[" + strings.Join(names, " ") + "]"
}

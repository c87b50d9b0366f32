package depot

import (
	"slices"

	"github.com/TheBitDrifter/mask"
)

// Signature is the sorted, deduplicated set of component ids that identifies an
// archetype.
type Signature []ComponentID

// NewSignature builds a canonical signature from ids in any order.
func NewSignature(ids ...ComponentID) Signature {
	sig := slices.Clone(ids)
	slices.Sort(sig)
	return slices.Compact(sig)
}

// Xor returns a new signature with c added if absent, removed if present.
func (s Signature) Xor(c ComponentID) Signature {
	i, found := slices.BinarySearch(s, c)
	if found {
		out := make(Signature, 0, len(s)-1)
		out = append(out, s[:i]...)
		return append(out, s[i+1:]...)
	}
	out := make(Signature, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, c)
	return append(out, s[i:]...)
}

func (s Signature) Contains(c ComponentID) bool {
	_, found := slices.BinarySearch(s, c)
	return found
}

// inRange reports whether every id fits the signature bitset.
func (s Signature) inRange() bool {
	return len(s) == 0 || int(s[len(s)-1]) < MaxComponents
}

// IndexOf returns the position of c, which is also its column index.
func (s Signature) IndexOf(c ComponentID) (int, bool) {
	return slices.BinarySearch(s, c)
}

func (s Signature) Equal(other Signature) bool {
	return slices.Equal(s, other)
}

// Mask returns the signature as a bitset. Ids at or above MaxComponents are
// fatal.
func (s Signature) Mask() mask.Mask {
	var m mask.Mask
	for _, c := range s {
		if int(c) >= MaxComponents {
			fatal(ComponentRangeError{ID: c}, "build signature mask")
		}
		m.Mark(uint32(c))
	}
	return m
}

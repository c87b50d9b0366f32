package depot

import "github.com/RoaringBitmap/roaring/v2"

// componentArchetypes lists the archetypes holding one component and the column
// the component occupies in each.
type componentArchetypes struct {
	archetypes *roaring.Bitmap
	columns    map[ArchetypeID]int
}

type componentIndex struct {
	byComponent map[ComponentID]*componentArchetypes
}

func newComponentIndex() componentIndex {
	return componentIndex{byComponent: make(map[ComponentID]*componentArchetypes)}
}

// register indexes every component of a. Registering twice is a no-op.
func (x *componentIndex) register(a *archetype) {
	for column, c := range a.signature {
		entry, ok := x.byComponent[c]
		if !ok {
			entry = &componentArchetypes{
				archetypes: roaring.New(),
				columns:    make(map[ArchetypeID]int),
			}
			x.byComponent[c] = entry
		}
		entry.archetypes.Add(uint32(a.id))
		entry.columns[a.id] = column
	}
}

func (x *componentIndex) column(c ComponentID, a ArchetypeID) (int, bool) {
	entry, ok := x.byComponent[c]
	if !ok {
		return 0, false
	}
	column, ok := entry.columns[a]
	return column, ok
}

// intersect returns the archetypes that hold every component in ids.
func (x *componentIndex) intersect(ids []ComponentID) *roaring.Bitmap {
	var result *roaring.Bitmap
	for _, c := range ids {
		entry, ok := x.byComponent[c]
		if !ok {
			return roaring.New()
		}
		if result == nil {
			result = entry.archetypes.Clone()
		} else {
			result.And(entry.archetypes)
		}
		if result.IsEmpty() {
			return result
		}
	}
	if result == nil {
		return roaring.New()
	}
	return result
}

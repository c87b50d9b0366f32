package depot

import (
	"iter"
	"slices"

	"github.com/TheBitDrifter/mask"
)

var _ Archetype = &archetype{}

// archetype is one columnar table. columns is index-aligned with signature and
// every column has exactly len(entities) rows.
type archetype struct {
	id        ArchetypeID
	signature Signature
	mask      mask.Mask
	columns   []column
	entities  []EntityID
	edges     map[ComponentID]ArchetypeID
}

func newArchetype(registry *Registry, id ArchetypeID, signature Signature, capacity int) *archetype {
	columns := make([]column, len(signature))
	for i, c := range signature {
		columns[i] = registry.newColumn(c, capacity)
	}
	return &archetype{
		id:        id,
		signature: signature,
		mask:      signature.Mask(),
		columns:   columns,
		entities:  make([]EntityID, 0, capacity),
		edges:     make(map[ComponentID]ArchetypeID),
	}
}

func (a *archetype) ID() ArchetypeID {
	return a.id
}

func (a *archetype) Signature() Signature {
	return slices.Clone(a.signature)
}

func (a *archetype) Mask() mask.Mask {
	return a.mask
}

func (a *archetype) Len() int {
	return len(a.entities)
}

func (a *archetype) Entities() iter.Seq2[int, EntityID] {
	return slices.All(a.entities)
}

func (a *archetype) Edge(c ComponentID) (ArchetypeID, bool) {
	id, ok := a.edges[c]
	return id, ok
}

func (a *archetype) has(c ComponentID) bool {
	return a.signature.Contains(c)
}

// pushRow appends row, which must follow signature order, and returns its index.
func (a *archetype) pushRow(entity EntityID, row []any) int {
	for i, col := range a.columns {
		col.push(row[i])
	}
	a.entities = append(a.entities, entity)
	return len(a.entities) - 1
}

// removeRow takes row out of the table. It returns the removed values in
// signature order and the entities that were relocated, in their new row order
// starting at row.
func (a *archetype) removeRow(row int, policy RemovePolicy) ([]any, []EntityID) {
	values := make([]any, len(a.columns))
	if policy == RemoveSwap {
		last := len(a.entities) - 1
		for i, col := range a.columns {
			values[i] = col.swapRemove(row)
		}
		var moved []EntityID
		if row != last {
			a.entities[row] = a.entities[last]
			moved = []EntityID{a.entities[row]}
		}
		a.entities = a.entities[:last]
		return values, moved
	}

	for i, col := range a.columns {
		values[i] = col.remove(row)
	}
	a.entities = slices.Delete(a.entities, row, row+1)
	return values, slices.Clone(a.entities[row:])
}

package depot

import (
	"iter"
	"reflect"

	"github.com/TheBitDrifter/mask"
)

// EntityID identifies an entity for the lifetime of a storage. IDs are handed out
// in increasing order and never reused.
type EntityID uint64

// ComponentID is the small integer a Registry assigns to a component type.
type ComponentID uint32

// ArchetypeID indexes an archetype inside a storage. The unit archetype is 0.
type ArchetypeID uint32

// UnitArchetype is the archetype of entities without components.
const UnitArchetype ArchetypeID = 0

type Storage interface {
	Spawn() EntityID
	SpawnMany(n int) []EntityID
	Delete(id EntityID)
	Contains(id EntityID) bool
	HasComponent(id EntityID, c Component) bool
	ArchetypeOf(id EntityID) Archetype

	Query(ids ...ComponentID) iter.Seq[EntityID]
	QueryComponents(components ...Component) iter.Seq[EntityID]

	Registry() *Registry
	Archetypes() iter.Seq[Archetype]
	LookupArchetype(sig Signature) (Archetype, bool)
	EntityCount() int
	ArchetypeCount() int

	Locked() bool
	AddLock(bit uint32)
	RemoveLock(bit uint32)
	EnqueueDelete(id EntityID)
}

// Component is a component type usable in queries. It is implemented by
// AccessibleComponent.
type Component interface {
	Type() reflect.Type
	lookup(r *Registry) (ComponentID, bool)
}

// Archetype is a read-only view of one archetype table.
type Archetype interface {
	ID() ArchetypeID
	Signature() Signature
	Mask() mask.Mask
	Len() int
	Entities() iter.Seq2[int, EntityID]
	Edge(c ComponentID) (ArchetypeID, bool)
}

type Query interface {
	QueryNode
	And(items ...interface{}) QueryNode
	Or(items ...interface{}) QueryNode
	Not(items ...interface{}) QueryNode
}

type QueryNode interface {
	Evaluate(archetype Archetype, storage Storage) bool
}

type iCursor interface {
	Entities() iter.Seq2[int, EntityID]
	Next() bool
}

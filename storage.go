package depot

import (
	"iter"
	"slices"

	"github.com/TheBitDrifter/mask"
	"github.com/rs/zerolog"
)

var _ Storage = &storage{}

type storage struct {
	config   Config
	logger   zerolog.Logger
	registry *Registry
	graph    *archetypeGraph
	entities entityIndex
	index    componentIndex
	locks    mask.Mask
	opQueue  opQueue
}

func newStorage(opts ...Option) *storage {
	sto := &storage{
		config: DefaultConfig(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(sto)
	}
	if sto.registry == nil {
		sto.registry = NewRegistry()
	}
	if sto.logger.GetLevel() != zerolog.Disabled {
		// Validated by WithConfig.
		level, _ := sto.config.Level()
		sto.logger = sto.logger.Level(level)
	}
	sto.graph = newArchetypeGraph(sto.registry, sto.config.RowCapacity, &sto.logger)
	sto.entities = newEntityIndex()
	sto.index = newComponentIndex()
	sto.opQueue = newOpQueue()
	return sto
}

// asStorage unwraps the concrete storage behind the generic helpers.
func asStorage(sto Storage) *storage {
	s, ok := sto.(*storage)
	if !ok {
		panic("depot: storage was not created by depot.Factory")
	}
	return s
}

// Spawn adds an entity without components. Spawning is allowed while locked.
func (s *storage) Spawn() EntityID {
	id := s.entities.allocate()
	row := s.graph.unit().pushRow(id, nil)
	s.entities.set(id, entityRecord{archetype: UnitArchetype, row: row})
	return id
}

func (s *storage) SpawnMany(n int) []EntityID {
	ids := make([]EntityID, n)
	for i := range ids {
		ids[i] = s.Spawn()
	}
	return ids
}

// Delete removes the entity and all its components. The id is never handed out
// again.
func (s *storage) Delete(id EntityID) {
	if s.Locked() {
		fatal(LockedStorageError{}, "delete entity")
	}
	s.delete(id)
}

func (s *storage) delete(id EntityID) {
	rec := s.record(id, "delete entity")
	_, moved := s.graph.get(rec.archetype).removeRow(rec.row, s.config.RemovePolicy)
	s.entities.remove(id)
	s.entities.patch(moved, rec.row)

	s.logger.Debug().
		Uint64("entity_id", uint64(id)).
		Uint32("archetype_id", uint32(rec.archetype)).
		Int("relocated", len(moved)).
		Msg("deleted entity")
}

func (s *storage) Contains(id EntityID) bool {
	_, ok := s.entities.get(id)
	return ok
}

func (s *storage) HasComponent(id EntityID, c Component) bool {
	rec := s.record(id, "check component")
	cid, ok := c.lookup(s.registry)
	return ok && s.graph.get(rec.archetype).has(cid)
}

func (s *storage) ArchetypeOf(id EntityID) Archetype {
	rec := s.record(id, "find archetype")
	return s.graph.get(rec.archetype)
}

// record resolves a live entity. Unknown ids are a caller bug and fatal.
func (s *storage) record(id EntityID, op string) entityRecord {
	rec, ok := s.entities.get(id)
	if !ok {
		fatal(InvalidEntityError{ID: id}, op)
	}
	return rec
}

// bind moves the entity to signature+c with value in c's column.
func (s *storage) bind(id EntityID, c ComponentID, value any) {
	if s.Locked() {
		fatal(LockedStorageError{}, "bind component")
	}
	rec := s.record(id, "bind component")
	src := s.graph.get(rec.archetype)
	if src.has(c) {
		fatal(ComponentExistsError{Entity: id, Type: s.registry.TypeOf(c)}, "bind component")
	}

	row, moved := src.removeRow(rec.row, s.config.RemovePolicy)
	s.entities.patch(moved, rec.row)

	dest := s.extend(src.id, c)
	column, _ := dest.signature.IndexOf(c)
	row = slices.Insert(row, column, value)
	s.entities.set(id, entityRecord{archetype: dest.id, row: dest.pushRow(id, row)})
}

// unbind moves the entity to signature-c and returns the removed value.
func (s *storage) unbind(id EntityID, c ComponentID) any {
	if s.Locked() {
		fatal(LockedStorageError{}, "unbind component")
	}
	rec := s.record(id, "unbind component")
	src := s.graph.get(rec.archetype)
	column, ok := src.signature.IndexOf(c)
	if !ok {
		fatal(ComponentNotFoundError{Entity: id, Type: s.registry.TypeOf(c)}, "unbind component")
	}

	row, moved := src.removeRow(rec.row, s.config.RemovePolicy)
	s.entities.patch(moved, rec.row)

	value := row[column]
	row = slices.Delete(row, column, column+1)
	dest := s.extend(src.id, c)
	s.entities.set(id, entityRecord{archetype: dest.id, row: dest.pushRow(id, row)})
	return value
}

func (s *storage) extend(source ArchetypeID, c ComponentID) *archetype {
	id, created := s.graph.extend(source, c)
	dest := s.graph.get(id)
	if created {
		s.index.register(dest)
	}
	return dest
}

// cell resolves the column and row holding component c of an entity.
func (s *storage) cell(id EntityID, c ComponentID) (column, int, bool) {
	rec := s.record(id, "access component")
	col, ok := s.index.column(c, rec.archetype)
	if !ok {
		return nil, 0, false
	}
	return s.graph.get(rec.archetype).columns[col], rec.row, true
}

// Query yields every entity whose archetype holds all of ids, archetype by
// archetype in id order and row order within each. Matching archetypes are
// resolved when Query is called. Mutating the storage while ranging over the
// result is undefined; lock it and enqueue changes instead.
func (s *storage) Query(ids ...ComponentID) iter.Seq[EntityID] {
	if len(ids) == 0 {
		fatal(EmptyQueryError{}, "query")
	}
	return s.entitiesOf(s.index.intersect(ids).ToArray())
}

// QueryComponents is Query by component type. A type that was never registered
// matches nothing.
func (s *storage) QueryComponents(components ...Component) iter.Seq[EntityID] {
	if len(components) == 0 {
		fatal(EmptyQueryError{}, "query")
	}
	ids, ok := lookupIDs(s.registry, components)
	if !ok {
		return func(func(EntityID) bool) {}
	}
	return s.Query(ids...)
}

func (s *storage) entitiesOf(archetypes []uint32) iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		for _, id := range archetypes {
			for _, e := range s.graph.get(ArchetypeID(id)).entities {
				if !yield(e) {
					return
				}
			}
		}
	}
}

func (s *storage) Registry() *Registry {
	return s.registry
}

func (s *storage) Archetypes() iter.Seq[Archetype] {
	return func(yield func(Archetype) bool) {
		for _, a := range s.graph.asSlice {
			if !yield(a) {
				return
			}
		}
	}
}

func (s *storage) LookupArchetype(sig Signature) (Archetype, bool) {
	sig = NewSignature(sig...)
	if !sig.inRange() {
		return nil, false
	}
	id, ok := s.graph.lookup(sig)
	if !ok {
		return nil, false
	}
	return s.graph.get(id), true
}

func (s *storage) EntityCount() int {
	return s.entities.len()
}

func (s *storage) ArchetypeCount() int {
	return s.graph.len()
}

func (s *storage) Locked() bool {
	var unlocked mask.Mask
	return s.locks != unlocked
}

// AddLock sets one lock bit. While any bit is set, Delete, Bind and Unbind are
// fatal and the Enqueue variants defer their work. Bits at or above
// MaxComponents are fatal.
func (s *storage) AddLock(bit uint32) {
	checkLockBit(bit, "add lock")
	s.locks.Mark(bit)
}

// RemoveLock clears one lock bit and flushes queued operations once no bit is
// left.
func (s *storage) RemoveLock(bit uint32) {
	checkLockBit(bit, "remove lock")
	s.locks.Unmark(bit)
	if !s.Locked() {
		s.processOperationQueue()
	}
}

func checkLockBit(bit uint32, op string) {
	if int(bit) >= MaxComponents {
		fatal(LockRangeError{Bit: bit}, op)
	}
}

func (s *storage) EnqueueDelete(id EntityID) {
	if !s.Locked() {
		s.Delete(id)
		return
	}
	s.record(id, "enqueue delete")
	s.opQueue.enqueueDelete(id)
}

func (s *storage) enqueueComponentOp(typ operationType, id EntityID, c ComponentID, value any) {
	if !s.Locked() {
		s.apply(operation{typ: typ, entity: id, component: c, value: value})
		return
	}
	s.record(id, "enqueue component operation")
	s.opQueue.enqueueComponentOp(typ, id, c, value)
}

func lookupIDs(registry *Registry, components []Component) ([]ComponentID, bool) {
	ids := make([]ComponentID, len(components))
	for i, c := range components {
		id, ok := c.lookup(registry)
		if !ok {
			return nil, false
		}
		ids[i] = id
	}
	return ids, true
}

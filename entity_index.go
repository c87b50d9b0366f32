package depot

type entityRecord struct {
	archetype ArchetypeID
	row       int
}

// entityIndex maps live entities to their row. It is the only place rewritten
// when rows move.
type entityIndex struct {
	nextID  EntityID
	records map[EntityID]entityRecord
}

func newEntityIndex() entityIndex {
	return entityIndex{records: make(map[EntityID]entityRecord)}
}

func (x *entityIndex) allocate() EntityID {
	id := x.nextID
	x.nextID++
	return id
}

func (x *entityIndex) get(id EntityID) (entityRecord, bool) {
	rec, ok := x.records[id]
	return rec, ok
}

func (x *entityIndex) set(id EntityID, rec entityRecord) {
	x.records[id] = rec
}

func (x *entityIndex) remove(id EntityID) {
	delete(x.records, id)
}

// patch records that moved[i] now lives at row from+i of its archetype.
func (x *entityIndex) patch(moved []EntityID, from int) {
	for i, id := range moved {
		rec := x.records[id]
		rec.row = from + i
		x.records[id] = rec
	}
}

func (x *entityIndex) len() int {
	return len(x.records)
}

package depot

import "iter"

var _ iCursor = &Cursor{}

// Cursor walks the entities of every archetype matching a QueryNode, giving
// row-direct component access through AccessibleComponent.GetFromCursor.
type Cursor struct {
	// The query to filter archetypes
	query QueryNode

	// The storage to iterate over
	storage Storage

	// Current iteration state
	currentArchetype *archetype
	storageIndex     int
	entityIndex      int
	remaining        int

	// Initialization state
	initialized     bool
	matchedStorages []*archetype
}

func newCursor(query QueryNode, storage Storage) *Cursor {
	return &Cursor{
		query:   query,
		storage: storage,
	}
}

// Next advances to the next matching entity. It resets the cursor and returns
// false once every match was visited.
func (c *Cursor) Next() bool {
	if c.entityIndex < c.remaining {
		c.entityIndex++
		return true
	}
	return c.advance()
}

func (c *Cursor) advance() bool {
	c.initialize()
	if c.currentArchetype != nil {
		c.storageIndex++
		c.entityIndex = 0
	}
	for c.storageIndex < len(c.matchedStorages) {
		c.currentArchetype = c.matchedStorages[c.storageIndex]
		c.remaining = c.currentArchetype.Len()

		if c.entityIndex < c.remaining {
			c.entityIndex++
			return true
		}
		c.storageIndex++
		c.entityIndex = 0
	}
	c.Reset()
	return false
}

// Entities yields row index and entity id for every match.
func (c *Cursor) Entities() iter.Seq2[int, EntityID] {
	return func(yield func(int, EntityID) bool) {
		c.Reset()
		for c.Next() {
			if !yield(c.entityIndex-1, c.CurrentEntity()) {
				c.Reset()
				return
			}
		}
	}
}

func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	c.matchedStorages = make([]*archetype, 0)

	// Find all matching archetypes
	for _, arch := range asStorage(c.storage).graph.asSlice {
		if c.query.Evaluate(arch, c.storage) {
			c.matchedStorages = append(c.matchedStorages, arch)
		}
	}
	c.storageIndex = 0
	c.entityIndex = 0
	c.remaining = 0
	c.initialized = true
}

func (c *Cursor) Reset() {
	c.storageIndex = 0
	c.entityIndex = 0
	c.remaining = 0
	c.currentArchetype = nil
	c.matchedStorages = nil
	c.initialized = false
}

// CurrentEntity returns the entity at the cursor position.
func (c *Cursor) CurrentEntity() EntityID {
	return c.currentArchetype.entities[c.entityIndex-1]
}

// CurrentArchetype returns the archetype at the cursor position.
func (c *Cursor) CurrentArchetype() Archetype {
	return c.currentArchetype
}

func (c *Cursor) RemainingInArchetype() int {
	return c.remaining - c.entityIndex
}

func (c *Cursor) TotalMatched() int {
	if !c.initialized {
		c.initialize()
	}
	total := 0
	for _, arch := range c.matchedStorages {
		total += arch.Len()
	}
	return total
}

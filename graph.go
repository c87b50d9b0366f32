package depot

import (
	"github.com/TheBitDrifter/mask"
	"github.com/rs/zerolog"
)

// archetypeGraph is the arena of every archetype ever created. Archetypes are
// linked by symmetric edges: a.edges[c] == b implies b.edges[c] == a, and
// b.signature == a.signature.Xor(c).
type archetypeGraph struct {
	registry         *Registry
	asSlice          []*archetype
	idsGroupedByMask map[mask.Mask]ArchetypeID
	rowCapacity      int
	logger           *zerolog.Logger
}

func newArchetypeGraph(registry *Registry, rowCapacity int, logger *zerolog.Logger) *archetypeGraph {
	g := &archetypeGraph{
		registry:         registry,
		idsGroupedByMask: make(map[mask.Mask]ArchetypeID),
		rowCapacity:      rowCapacity,
		logger:           logger,
	}
	g.add(Signature{})
	return g
}

func (g *archetypeGraph) get(id ArchetypeID) *archetype {
	return g.asSlice[id]
}

func (g *archetypeGraph) unit() *archetype {
	return g.asSlice[UnitArchetype]
}

func (g *archetypeGraph) len() int {
	return len(g.asSlice)
}

// extend returns the archetype for source.signature XOR c, creating it when no
// archetype has that signature yet. created reports whether a new one was made.
func (g *archetypeGraph) extend(source ArchetypeID, c ComponentID) (id ArchetypeID, created bool) {
	src := g.get(source)
	if next, ok := src.edges[c]; ok {
		return next, false
	}

	signature := src.signature.Xor(c)
	id, found := g.idsGroupedByMask[signature.Mask()]
	if !found {
		id = g.add(signature).id
		created = true
	}
	src.edges[c] = id
	g.get(id).edges[c] = source
	return id, created
}

// lookup follows one edge per component from the unit archetype. An edge is only
// present once that transition has been used, so a miss falls back to the mask
// index.
func (g *archetypeGraph) lookup(signature Signature) (ArchetypeID, bool) {
	current := g.unit()
	for _, c := range signature {
		next, ok := current.edges[c]
		if !ok {
			id, found := g.idsGroupedByMask[signature.Mask()]
			return id, found
		}
		current = g.get(next)
	}
	return current.id, true
}

func (g *archetypeGraph) add(signature Signature) *archetype {
	id := ArchetypeID(len(g.asSlice))
	created := newArchetype(g.registry, id, signature, g.rowCapacity)
	g.asSlice = append(g.asSlice, created)
	g.idsGroupedByMask[created.mask] = id

	if e := g.logger.Debug(); e.Enabled() {
		names := make([]string, len(signature))
		for i, c := range signature {
			names[i] = g.registry.Name(c)
		}
		e.Uint32("archetype_id", uint32(id)).
			Strs("components", names).
			Msg("created archetype")
	}
	return created
}

package depot

import (
	"reflect"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reflectArray(n int) reflect.Type {
	return reflect.ArrayOf(n, reflect.TypeFor[byte]())
}

func newTestGraph(t *testing.T, components int) *archetypeGraph {
	t.Helper()
	r := NewRegistry()
	for i := 0; i < components; i++ {
		switch i % 3 {
		case 0:
			r.register(reflectArray(i), func(capacity int) column { return newTypedColumn[int](capacity) })
		case 1:
			r.register(reflectArray(i), func(capacity int) column { return newTypedColumn[string](capacity) })
		default:
			r.register(reflectArray(i), func(capacity int) column { return newTypedColumn[float32](capacity) })
		}
	}
	logger := zerolog.Nop()
	return newArchetypeGraph(r, 0, &logger)
}

func TestUnitArchetypeOnInit(t *testing.T) {
	g := newTestGraph(t, 0)
	require.Equal(t, 1, g.len())
	assert.Equal(t, UnitArchetype, g.unit().id)
	assert.Empty(t, g.unit().signature)
}

func TestExtendArchetype(t *testing.T) {
	g := newTestGraph(t, 3)
	a1, created := g.extend(UnitArchetype, 0)
	assert.True(t, created)
	a2, created := g.extend(a1, 2)
	assert.True(t, created)

	next, ok := g.get(a1).edges[2]
	assert.True(t, ok)
	assert.Equal(t, a2, next)
	next, ok = g.get(a1).edges[0]
	assert.True(t, ok)
	assert.Equal(t, UnitArchetype, next)
	_, ok = g.get(a2).edges[0]
	assert.False(t, ok)

	again, created := g.extend(a1, 2)
	assert.False(t, created)
	assert.Equal(t, a2, again)
	assert.Equal(t, Signature{0, 2}, g.get(a2).signature)
	assert.Len(t, g.get(a2).columns, 2)
}

func TestExtendRemovesComponent(t *testing.T) {
	g := newTestGraph(t, 3)
	a1, _ := g.extend(UnitArchetype, 1)
	a2, _ := g.extend(a1, 2)

	back, created := g.extend(a2, 2)
	assert.False(t, created)
	assert.Equal(t, a1, back)

	// {1,2} minus 1 is {2}, which no path has produced yet.
	only2, created := g.extend(a2, 1)
	assert.True(t, created)
	assert.Equal(t, Signature{2}, g.get(only2).signature)
}

func TestExtendReusesArchetypeReachedByAnotherPath(t *testing.T) {
	g := newTestGraph(t, 2)
	withA, _ := g.extend(UnitArchetype, 0)
	both, _ := g.extend(withA, 1)

	withB, _ := g.extend(UnitArchetype, 1)
	other, created := g.extend(withB, 0)

	assert.False(t, created)
	assert.Equal(t, both, other)
	assert.Equal(t, 4, g.len())
	back, ok := g.get(both).edges[0]
	require.True(t, ok)
	assert.Equal(t, withB, back)
}

func TestLookup(t *testing.T) {
	g := newTestGraph(t, 3)
	g.extend(UnitArchetype, 2)

	id, ok := g.lookup(Signature{})
	assert.True(t, ok)
	assert.Equal(t, UnitArchetype, id)
	_, ok = g.lookup(Signature{2})
	assert.True(t, ok)
	_, ok = g.lookup(Signature{0, 1})
	assert.False(t, ok)
}

func TestLookupFindsArchetypeOffCanonicalPath(t *testing.T) {
	g := newTestGraph(t, 2)
	withB, _ := g.extend(UnitArchetype, 1)
	both, _ := g.extend(withB, 0)

	// The unit archetype has no edge for 0, so the edge walk misses.
	_, ok := g.unit().edges[0]
	require.False(t, ok)

	id, ok := g.lookup(Signature{0, 1})
	assert.True(t, ok)
	assert.Equal(t, both, id)
}

func TestLookupAgreesWithExtend(t *testing.T) {
	g := newTestGraph(t, 6)
	current := UnitArchetype
	for _, c := range []ComponentID{4, 1, 5, 1, 0, 3, 4, 2} {
		current, _ = g.extend(current, c)
		dest := g.get(current)
		id, ok := g.lookup(dest.signature)
		require.True(t, ok)
		require.Equal(t, current, id)
	}

	for _, a := range g.asSlice {
		for c, other := range a.edges {
			assert.Equal(t, a.id, g.get(other).edges[c], "edges must be symmetric")
			assert.True(t, g.get(other).signature.Equal(a.signature.Xor(c)))
		}
	}
}

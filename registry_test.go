package depot

import (
	"reflect"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryAssignsIDsInFirstSeenOrder(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, ComponentID(0), IDFor[uint](r))
	assert.Equal(t, ComponentID(1), IDFor[struct {
		A float32
		B uint
	}](r))
	assert.Equal(t, ComponentID(0), IDFor[uint](r))
	assert.Equal(t, 2, r.Len())
}

func TestTryIDForDoesNotRegister(t *testing.T) {
	r := NewRegistry()
	_, ok := TryIDFor[Position](r)
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())

	id := IDFor[Position](r)
	got, ok := TryIDFor[Position](r)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestRegistryDistinguishesNamedTypes(t *testing.T) {
	type Celsius float64
	type Fahrenheit float64

	r := NewRegistry()
	a := IDFor[Celsius](r)
	b := IDFor[Fahrenheit](r)
	c := IDFor[float64](r)
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, b, c)
	assert.Equal(t, reflect.TypeFor[Fahrenheit](), r.TypeOf(b))
	assert.Equal(t, "float64", r.Name(c))
	assert.Nil(t, r.TypeOf(99))
	assert.Equal(t, "<unregistered>", r.Name(99))
}

func TestRegistriesAreIndependent(t *testing.T) {
	r1, r2 := NewRegistry(), NewRegistry()
	IDFor[Velocity](r1)
	assert.Equal(t, ComponentID(1), IDFor[Position](r1))
	assert.Equal(t, ComponentID(0), IDFor[Position](r2))
}

func TestRegistryLimit(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < MaxComponents; i++ {
		r.register(reflectArray(i), func(capacity int) column {
			return newTypedColumn[byte](capacity)
		})
	}
	requireFatal[TooManyComponentsError](t, func() { IDFor[Position](r) })
}

func TestStorageComponentLimit(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < MaxComponents-1; i++ {
		r.register(reflectArray(i), func(capacity int) column {
			return newTypedColumn[byte](capacity)
		})
	}
	sto := Factory.NewStorage(WithRegistry(r))
	e := sto.Spawn()

	// The first and the last id that fit the signature bitset.
	asStorage(sto).bind(e, 0, nil)
	Bind(sto, e, Position{X: 1})
	last, _ := TryIDFor[Position](r)
	require.Equal(t, ComponentID(MaxComponents-1), last)
	assert.True(t, Has[Position](sto, e))
	assert.Equal(t, Signature{0, last}, sto.ArchetypeOf(e).Signature())
	assert.Equal(t, []EntityID{e}, slices.Collect(sto.Query(last)))

	cursor := Factory.NewCursor(Factory.NewQuery().And(FactoryNewComponent[Position]()), sto)
	assert.Equal(t, 1, cursor.TotalMatched())

	err := requireFatal[TooManyComponentsError](t, func() { Bind(sto, e, Velocity{}) })
	assert.Equal(t, reflect.TypeFor[Velocity](), err.Type)
	assert.Equal(t, MaxComponents, r.Len())
	assert.False(t, Has[Velocity](sto, e))
}

func TestSignatureOutsideBitsetIsFatal(t *testing.T) {
	tooBig := ComponentID(MaxComponents)
	err := requireFatal[ComponentRangeError](t, func() { NewSignature(1, tooBig).Mask() })
	assert.Equal(t, tooBig, err.ID)

	sto := Factory.NewStorage()
	_, ok := sto.LookupArchetype(Signature{tooBig})
	assert.False(t, ok)
}

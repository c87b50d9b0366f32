package depot

import (
	"reflect"

	"github.com/TheBitDrifter/mask"
)

// MaxComponents bounds the number of component types one Registry can hold. It
// is the width of mask.Mask: 64 by default, wider with the m256, m512 or m1024
// build tags.
const MaxComponents = int(mask.MaxBits)

// Registry assigns ComponentIDs to component types in first-seen order.
// Each Storage owns one; IDs are never freed.
type Registry struct {
	ids   map[reflect.Type]ComponentID
	infos []componentInfo
}

type componentInfo struct {
	typ       reflect.Type
	newColumn func(capacity int) column
}

func NewRegistry() *Registry {
	return &Registry{
		ids: make(map[reflect.Type]ComponentID),
	}
}

// IDFor returns the id of T, registering T first if needed.
func IDFor[T any](r *Registry) ComponentID {
	typ := reflect.TypeFor[T]()
	if id, ok := r.ids[typ]; ok {
		return id
	}
	return r.register(typ, func(capacity int) column {
		return newTypedColumn[T](capacity)
	})
}

// TryIDFor looks T up without registering it.
func TryIDFor[T any](r *Registry) (ComponentID, bool) {
	id, ok := r.ids[reflect.TypeFor[T]()]
	return id, ok
}

func (r *Registry) register(typ reflect.Type, newColumn func(int) column) ComponentID {
	if len(r.infos) >= MaxComponents {
		fatal(TooManyComponentsError{Type: typ}, "register component")
	}
	id := ComponentID(len(r.infos))
	r.ids[typ] = id
	r.infos = append(r.infos, componentInfo{typ: typ, newColumn: newColumn})
	return id
}

// Len returns the number of registered component types.
func (r *Registry) Len() int {
	return len(r.infos)
}

// TypeOf returns the type registered under id, or nil.
func (r *Registry) TypeOf(id ComponentID) reflect.Type {
	if int(id) >= len(r.infos) {
		return nil
	}
	return r.infos[id].typ
}

func (r *Registry) Name(id ComponentID) string {
	typ := r.TypeOf(id)
	if typ == nil {
		return "<unregistered>"
	}
	return typ.String()
}

func (r *Registry) newColumn(id ComponentID, capacity int) column {
	return r.infos[id].newColumn(capacity)
}

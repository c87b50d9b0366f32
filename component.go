package depot

import "reflect"

// Bind attaches value to the entity. Binding a component the entity already has
// is fatal; update existing values through GetMut.
func Bind[T any](sto Storage, id EntityID, value T) {
	s := asStorage(sto)
	s.bind(id, IDFor[T](s.registry), value)
}

// Unbind detaches T from the entity and returns its last value. The entity must
// carry T.
func Unbind[T any](sto Storage, id EntityID) T {
	s := asStorage(sto)
	c, ok := TryIDFor[T](s.registry)
	if !ok {
		s.record(id, "unbind component")
		fatal(ComponentNotFoundError{Entity: id, Type: reflect.TypeFor[T]()}, "unbind component")
	}
	value, _ := s.unbind(id, c).(T)
	return value
}

// Has reports whether the entity carries T. Unknown ids are fatal.
func Has[T any](sto Storage, id EntityID) bool {
	return sto.HasComponent(id, AccessibleComponent[T]{})
}

// Get returns a copy of the entity's T.
func Get[T any](sto Storage, id EntityID) (T, bool) {
	ptr, ok := GetMut[T](sto, id)
	if !ok {
		var zero T
		return zero, false
	}
	return *ptr, true
}

// GetMut returns a pointer into the entity's T cell. The pointer is invalidated
// by the next Bind, Unbind or Delete on the storage.
func GetMut[T any](sto Storage, id EntityID) (*T, bool) {
	s := asStorage(sto)
	c, registered := TryIDFor[T](s.registry)
	if !registered {
		s.record(id, "access component")
		return nil, false
	}
	col, row, ok := s.cell(id, c)
	if !ok {
		return nil, false
	}
	return cellAt[T](col, row), true
}

// EnqueueBind binds now, or once the storage is unlocked.
func EnqueueBind[T any](sto Storage, id EntityID, value T) {
	s := asStorage(sto)
	s.enqueueComponentOp(opAddComponent, id, IDFor[T](s.registry), value)
}

// EnqueueUnbind unbinds now, or once the storage is unlocked. Like Unbind, a
// type that was never registered is fatal.
func EnqueueUnbind[T any](sto Storage, id EntityID) {
	s := asStorage(sto)
	c, ok := TryIDFor[T](s.registry)
	if !ok {
		s.record(id, "enqueue unbind component")
		fatal(ComponentNotFoundError{Entity: id, Type: reflect.TypeFor[T]()}, "enqueue unbind component")
	}
	s.enqueueComponentOp(opRemoveComponent, id, c, nil)
}

// QueryIDs translates components into ids for Storage.Query without registering
// anything. ok is false if a component was never registered, in which case no
// entity can match.
func QueryIDs(sto Storage, components ...Component) (ids []ComponentID, ok bool) {
	return lookupIDs(sto.Registry(), components)
}

// AccessibleComponent is a typed handle on component type T. It carries no
// state, so one handle works with every storage.
type AccessibleComponent[T any] struct{}

var _ Component = AccessibleComponent[int]{}

func FactoryNewComponent[T any]() AccessibleComponent[T] {
	return AccessibleComponent[T]{}
}

func (c AccessibleComponent[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

func (c AccessibleComponent[T]) lookup(r *Registry) (ComponentID, bool) {
	return TryIDFor[T](r)
}

// ID returns the id of T in the storage's registry, registering T if needed.
func (c AccessibleComponent[T]) ID(sto Storage) ComponentID {
	return IDFor[T](sto.Registry())
}

func (c AccessibleComponent[T]) Bind(sto Storage, id EntityID, value T) {
	Bind(sto, id, value)
}

func (c AccessibleComponent[T]) Unbind(sto Storage, id EntityID) T {
	return Unbind[T](sto, id)
}

func (c AccessibleComponent[T]) Has(sto Storage, id EntityID) bool {
	return Has[T](sto, id)
}

// GetFromEntity returns the entity's T, or nil if it has none.
func (c AccessibleComponent[T]) GetFromEntity(sto Storage, id EntityID) *T {
	ptr, _ := GetMut[T](sto, id)
	return ptr
}

// GetFromCursor retrieves the component of the entity at the cursor position.
// The cursor's archetype must hold T.
func (c AccessibleComponent[T]) GetFromCursor(cursor *Cursor) *T {
	if cursor.currentArchetype == nil {
		fatal(CursorPositionError{}, "get from cursor")
	}
	ok, ptr := c.GetFromCursorSafe(cursor)
	if !ok {
		fatal(ComponentNotFoundError{Entity: cursor.CurrentEntity(), Type: c.Type()}, "get from cursor")
	}
	return ptr
}

// GetFromCursorSafe is GetFromCursor reporting whether the archetype holds T.
// It reports false when the cursor is not positioned on an entity.
func (c AccessibleComponent[T]) GetFromCursorSafe(cursor *Cursor) (bool, *T) {
	if cursor.currentArchetype == nil {
		return false, nil
	}
	s := asStorage(cursor.storage)
	id, ok := TryIDFor[T](s.registry)
	if !ok {
		return false, nil
	}
	col, ok := s.index.column(id, cursor.currentArchetype.id)
	if !ok {
		return false, nil
	}
	return true, cellAt[T](cursor.currentArchetype.columns[col], cursor.entityIndex-1)
}

// CheckCursor reports whether the archetype at the cursor position holds T.
func (c AccessibleComponent[T]) CheckCursor(cursor *Cursor) bool {
	if cursor.currentArchetype == nil {
		return false
	}
	id, ok := TryIDFor[T](cursor.storage.Registry())
	return ok && cursor.currentArchetype.has(id)
}

func (c AccessibleComponent[T]) EnqueueBind(sto Storage, id EntityID, value T) {
	EnqueueBind(sto, id, value)
}

func (c AccessibleComponent[T]) EnqueueUnbind(sto Storage, id EntityID) {
	EnqueueUnbind[T](sto, id)
}

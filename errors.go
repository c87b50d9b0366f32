package depot

import (
	"fmt"
	"reflect"

	"github.com/rotisserie/eris"
)

type InvalidEntityError struct {
	ID EntityID
}

func (e InvalidEntityError) Error() string {
	return fmt.Sprintf("invalid entity id: %d", e.ID)
}

type ComponentExistsError struct {
	Entity EntityID
	Type   reflect.Type
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component already bound to entity %d: %v (use GetMut to update it)", e.Entity, e.Type)
}

type ComponentNotFoundError struct {
	Entity EntityID
	Type   reflect.Type
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component not bound to entity %d: %v", e.Entity, e.Type)
}

// TypeMismatchError means a column was accessed with the wrong type. It points at
// broken column bookkeeping, never at caller misuse.
type TypeMismatchError struct {
	Want reflect.Type
	Got  reflect.Type
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("column type mismatch: want %v, got %v", e.Want, e.Got)
}

type EmptyQueryError struct{}

func (e EmptyQueryError) Error() string {
	return "query must name at least one component"
}

type LockedStorageError struct{}

func (e LockedStorageError) Error() string {
	return "storage is currently locked"
}

type TooManyComponentsError struct {
	Type reflect.Type
}

func (e TooManyComponentsError) Error() string {
	return fmt.Sprintf("cannot register %v: registry is limited to %d component types", e.Type, MaxComponents)
}

// ComponentRangeError means a component id does not fit the signature bitset.
type ComponentRangeError struct {
	ID ComponentID
}

func (e ComponentRangeError) Error() string {
	return fmt.Sprintf("component id %d out of range: ids must be below %d", e.ID, MaxComponents)
}

type LockRangeError struct {
	Bit uint32
}

func (e LockRangeError) Error() string {
	return fmt.Sprintf("lock bit %d out of range: bits must be below %d", e.Bit, MaxComponents)
}

type CursorPositionError struct{}

func (e CursorPositionError) Error() string {
	return "cursor is not positioned on an entity: call Next first"
}

// fatal panics with err wrapped in an eris error carrying the stack.
// eris.Cause on the recovered value returns err.
func fatal(err error, msg string) {
	panic(eris.Wrap(err, msg))
}

package depot

import (
	"reflect"
	"slices"
)

// column is one type-erased component column of an archetype. Values cross the
// interface boxed as any; typed access goes through cellAt.
type column interface {
	len() int
	elemType() reflect.Type
	push(v any)
	remove(row int) any
	swapRemove(row int) any
	get(row int) any
}

type typedColumn[T any] struct {
	values []T
}

var _ column = &typedColumn[int]{}

func newTypedColumn[T any](capacity int) *typedColumn[T] {
	return &typedColumn[T]{values: make([]T, 0, capacity)}
}

func (c *typedColumn[T]) len() int {
	return len(c.values)
}

func (c *typedColumn[T]) elemType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (c *typedColumn[T]) push(v any) {
	// A nil box can only come from an interface-typed component.
	if v == nil {
		var zero T
		c.values = append(c.values, zero)
		return
	}
	value, ok := v.(T)
	if !ok {
		fatal(TypeMismatchError{Want: c.elemType(), Got: reflect.TypeOf(v)}, "push into column")
	}
	c.values = append(c.values, value)
}

// remove deletes row and shifts every later row down by one.
func (c *typedColumn[T]) remove(row int) any {
	v := c.values[row]
	c.values = slices.Delete(c.values, row, row+1)
	return v
}

// swapRemove moves the last row into row.
func (c *typedColumn[T]) swapRemove(row int) any {
	last := len(c.values) - 1
	v := c.values[row]
	c.values[row] = c.values[last]
	var zero T
	c.values[last] = zero
	c.values = c.values[:last]
	return v
}

func (c *typedColumn[T]) get(row int) any {
	return c.values[row]
}

// cellAt is the checked downcast from a type-erased column to a typed cell.
func cellAt[T any](col column, row int) *T {
	typed, ok := col.(*typedColumn[T])
	if !ok {
		fatal(TypeMismatchError{Want: reflect.TypeFor[T](), Got: col.elemType()}, "access column cell")
	}
	return &typed.values[row]
}

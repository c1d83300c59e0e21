package state

import (
	"reflect"

	"github.com/samber/oops"
)

type cell[T any] struct {
	value  T
	active *View[T]
}

// Cell is a cloneable handle to one shared mutable value of type T.
//
// Every clone (and every plain copy) of a Cell aliases the same backing
// value. Mutation goes through an exclusive View; at most one View may be
// live per backing value, checked at runtime. Cells are not safe for
// concurrent use.
type Cell[T any] struct {
	c *cell[T]
}

// NewCell wraps value in a fresh backing store.
func NewCell[T any](value T) Cell[T] {
	return Cell[T]{c: &cell[T]{value: value}}
}

// Clone returns a handle aliasing the same backing value.
func (c Cell[T]) Clone() Cell[T] {
	return c
}

// Valid reports whether the handle refers to a backing value.
func (c Cell[T]) Valid() bool {
	return c.c != nil
}

// Same reports whether both handles alias the same backing value.
func (c Cell[T]) Same(other Cell[T]) bool {
	return c.c != nil && c.c == other.c
}

// Borrowed reports whether an exclusive view is currently live.
func (c Cell[T]) Borrowed() bool {
	return c.c != nil && c.c.active != nil
}

// TryBorrow returns an exclusive view, or an error wrapping
// ErrExclusiveAccess when another view on the same value is still live.
func (c Cell[T]) TryBorrow() (*View[T], error) {
	if c.c == nil {
		return nil, oops.Code(CodeNilCell).
			With("type", typeName(reflect.TypeFor[T]())).
			Wrap(ErrNilCell)
	}
	if c.c.active != nil {
		return nil, alreadyBorrowed(reflect.TypeFor[T]())
	}
	v := &View[T]{c: c.c}
	c.c.active = v
	return v, nil
}

// Borrow returns an exclusive view over the value. It panics if a view is
// already live: overlapping mutable access is a bug in the caller.
func (c Cell[T]) Borrow() *View[T] {
	v, err := c.TryBorrow()
	if err != nil {
		panic(err)
	}
	return v
}

// With borrows the value for the duration of fn. The view is released when
// fn returns or panics.
func (c Cell[T]) With(fn func(*T)) {
	v := c.Borrow()
	defer v.Release()
	fn(v.Value())
}

// View is a scoped exclusive borrow of a Cell's value. Only the *View
// returned by Borrow is live; copies of it are not.
type View[T any] struct {
	c *cell[T]
}

// Value returns the borrowed value. The pointer must not be retained past
// Release.
func (v *View[T]) Value() *T {
	if v.c == nil || v.c.active != v {
		panic(oops.Code(CodeReleasedView).
			With("type", typeName(reflect.TypeFor[T]())).
			Wrap(ErrViewReleased))
	}
	return &v.c.value
}

// Release ends the borrow. Calling it more than once, or on a copy of the
// live view, is a no-op.
func (v *View[T]) Release() {
	if v.c == nil {
		return
	}
	if v.c.active == v {
		v.c.active = nil
	}
	v.c = nil
}

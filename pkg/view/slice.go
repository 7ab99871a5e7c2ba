package view

import "unsafe"

// Slice is a plain sequence backed by a Go slice.
// It is Traversable but not a View, so adaptors borrow it.
type Slice[T any] []T

// Of returns the given values as a Slice without copying them.
func Of[T any](values ...T) Slice[T] {
	return Slice[T](values)
}

func (s Slice[T]) Begin() Cursor[T] {
	return &sliceCursor[T]{s: s}
}

func (s Slice[T]) End() Cursor[T] {
	return &sliceCursor[T]{s: s, i: len(s)}
}

func (s Slice[T]) Len() int {
	return len(s)
}

type sliceCursor[T any] struct {
	s []T
	i int
}

func (c *sliceCursor[T]) Value() (T, error) {
	if c.i >= len(c.s) {
		var zero T
		return zero, outOfRange("slice", "value")
	}
	return c.s[c.i], nil
}

func (c *sliceCursor[T]) Next() error {
	if c.i >= len(c.s) {
		return outOfRange("slice", "next")
	}
	c.i++
	return nil
}

// Equal reports whether both cursors are at the same position of the same slice.
func (c *sliceCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*sliceCursor[T])
	return ok && o.i == c.i && len(o.s) == len(c.s) &&
		unsafe.SliceData(o.s) == unsafe.SliceData(c.s)
}

func (c *sliceCursor[T]) Clone() Cursor[T] {
	cp := *c
	return &cp
}

// Package view provides lazily evaluated, composable views over sequences.
//
// A view is a non-materializing handle exposing a begin and an end Cursor.
// Views are chained with Pipe and Adaptor values such as Filter; elements
// are produced one at a time while the outermost view is traversed.
//
// This file contains the capability classifier: Cursor, Traversable and View.
package view

// Cursor is a forward-only position over a sequence.
type Cursor[T any] interface {
	// Value returns the element at the cursor. It returns ErrOutOfRange on an end cursor.
	Value() (T, error)
	// Next advances the cursor in place. It returns ErrOutOfRange at the end.
	Next() error
	// Equal reports whether both cursors denote the same position.
	Equal(other Cursor[T]) bool
	// Clone returns an independent cursor at the same position.
	Clone() Cursor[T]
}

// Traversable is anything exposing a begin and an end cursor.
type Traversable[T any] interface {
	Begin() Cursor[T]
	End() Cursor[T]
}

// View is a Traversable that can be relocated and is tagged as a view by embedding Base.
type View[T any] interface {
	Traversable[T]
	// Move transfers the state into a new View and leaves the receiver empty.
	Move() View[T]
	isView()
}

// Base tags a type as a view. Adaptors defined outside this package embed it.
type Base struct{}

func (Base) isView() {}

// IsTraversable reports whether x exposes begin and end cursors over T.
func IsTraversable[T any](x any) bool {
	_, ok := x.(Traversable[T])
	return ok
}

// IsView reports whether x is a View over T.
func IsView[T any](x any) bool {
	_, ok := x.(View[T])
	return ok
}

// PostNext advances c and returns a clone of its previous position.
func PostNext[T any](c Cursor[T]) (Cursor[T], error) {
	prev := c.Clone()
	if err := c.Next(); err != nil {
		return nil, err
	}
	return prev, nil
}

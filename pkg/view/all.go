// Package view provides lazily evaluated, composable views over sequences.
//
// This file contains AllView, the adoption view.
package view

// AllView turns a Traversable into a View.
//
// A borrowed AllView references a caller-owned source which must outlive the
// view and keep its length. An owning AllView holds an upstream View that was
// relocated into it.
type AllView[T any] struct {
	Base
	src   Traversable[T]
	owned View[T]

	// derived from the current storage on first use, reset on Move and Swap
	begin, end Cursor[T]
}

// Borrow returns a view referencing src. Nothing is copied.
func Borrow[T any](src Traversable[T]) *AllView[T] {
	return &AllView[T]{src: src}
}

// Own returns a view that takes ownership of v. v is left empty.
func Own[T any](v View[T]) *AllView[T] {
	return &AllView[T]{owned: v.Move()}
}

// All owns src if it is already a View and borrows it otherwise.
func All[T any](src Traversable[T]) *AllView[T] {
	if v, ok := src.(View[T]); ok {
		return Own(v)
	}
	return Borrow(src)
}

// Underlying returns the borrowed source or the owned view, or nil once moved out.
func (a *AllView[T]) Underlying() Traversable[T] {
	if a.owned != nil {
		return a.owned
	}
	return a.src
}

// Borrowed reports whether the view references a caller-owned source.
func (a *AllView[T]) Borrowed() bool {
	return a.owned == nil && a.src != nil
}

func (a *AllView[T]) Begin() Cursor[T] {
	if a.begin == nil {
		if s := a.Underlying(); s != nil {
			a.begin = s.Begin()
		} else {
			a.begin = emptyCursor[T]{}
		}
	}
	return a.begin.Clone()
}

// End does not touch Begin of the storage, so an owned filter stays unevaluated.
func (a *AllView[T]) End() Cursor[T] {
	if a.end == nil {
		if s := a.Underlying(); s != nil {
			a.end = s.End()
		} else {
			a.end = emptyCursor[T]{}
		}
	}
	return a.end.Clone()
}

func (a *AllView[T]) reset() {
	a.begin, a.end = nil, nil
}

// Len returns the length of a borrowed source that knows it.
// The owning variant reports false.
func (a *AllView[T]) Len() (int, bool) {
	if !a.Borrowed() {
		return 0, false
	}
	if l, ok := a.src.(interface{ Len() int }); ok {
		return l.Len(), true
	}
	return 0, false
}

// Move relocates the storage into a new AllView. Cursors of both views are
// re-derived from their own storage.
func (a *AllView[T]) Move() View[T] {
	moved := &AllView[T]{src: a.src, owned: a.owned}
	a.src, a.owned = nil, nil
	a.reset()
	return moved
}

// Swap exchanges the storage of a and other.
func (a *AllView[T]) Swap(other *AllView[T]) {
	a.src, other.src = other.src, a.src
	a.owned, other.owned = other.owned, a.owned
	a.reset()
	other.reset()
}

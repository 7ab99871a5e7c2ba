// Package view provides lazily evaluated, composable views over sequences.
//
// This file contains Adaptor and Pipe.
package view

// Adaptor is a deferred, reusable constructor of a view. It captures its
// configuration and is applied to a source later, usually through Pipe.
type Adaptor[T any] func(src Traversable[T]) View[T]

// Apply returns the adaptor applied to src.
func (a Adaptor[T]) Apply(src Traversable[T]) View[T] {
	return a(src)
}

// Then returns an Adaptor applying a and then next.
func (a Adaptor[T]) Then(next Adaptor[T]) Adaptor[T] {
	return func(src Traversable[T]) View[T] {
		return next(a(src))
	}
}

// Filter returns an Adaptor producing a FilterView with pred.
// A plain source is borrowed; a View is relocated into the FilterView.
func Filter[T any](pred func(T) bool) Adaptor[T] {
	return func(src Traversable[T]) View[T] {
		return NewFilterView(adopt(src), pred)
	}
}

func adopt[T any](src Traversable[T]) View[T] {
	if v, ok := src.(View[T]); ok {
		return v
	}
	return Borrow(src)
}

// Pipe applies adaptors to src from left to right. Each stage owns the view of
// the previous one. Without adaptors it returns All(src).
func Pipe[T any](src Traversable[T], adaptors ...Adaptor[T]) View[T] {
	if len(adaptors) == 0 {
		return All(src)
	}
	v := adaptors[0](src)
	for _, a := range adaptors[1:] {
		v = a(v)
	}
	return v
}

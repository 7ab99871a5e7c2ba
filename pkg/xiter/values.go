// Package xiter provides adapters between views and Go 1.23+ iter.Seq, including Values.
//
// This file contains Values and Checked, which drive a view with range-over-func.
package xiter

import (
	"iter"

	"github.com/norio-nomura/ranges/pkg/view"
)

// Values returns an iter.Seq[T] over the elements of v.
// Every range starts from a fresh v.Begin(). Iteration stops silently if a cursor fails; use Checked to observe that.
func Values[T any](v view.Traversable[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x, err := range Checked(v) {
			if err != nil || !yield(x) {
				return
			}
		}
	}
}

// Checked returns an iter.Seq2 yielding each element of v with a nil error.
// If a cursor fails, the error is yielded once with the zero value and iteration ends.
func Checked[T any](v view.Traversable[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		end := v.End()
		for c := v.Begin(); !c.Equal(end); {
			x, err := c.Value()
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(x, nil) {
				return
			}
			if err := c.Next(); err != nil {
				yield(zero, err)
				return
			}
		}
	}
}

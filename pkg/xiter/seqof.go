// Package xiter provides adapters between views and Go 1.23+ iter.Seq, including SeqOf.
//
// This file contains SeqOf, which creates a sequence from variadic arguments.
package xiter

import (
	"iter"

	"github.com/norio-nomura/ranges/pkg/view"
)

// SeqOf returns an iter.Seq[T] that yields all the given values in order.
// The values are borrowed through a view, not copied.
func SeqOf[T any](vals ...T) iter.Seq[T] {
	return Values[T](view.Of(vals...))
}

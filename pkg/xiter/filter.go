// Package xiter provides adapters between views and Go 1.23+ iter.Seq, including Filter.
//
// This file contains Filter-related adapters.
package xiter

import (
	"iter"
)

// Filter returns a new iter.Seq[T] that yields only the elements of seq accepted by every pred.
// Predicates are tested in order and testing stops at the first rejection, as in a chain of filter views.
func Filter[T any](seq iter.Seq[T], preds ...func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
	next:
		for v := range seq {
			for _, pred := range preds {
				if !pred(v) {
					continue next
				}
			}
			if !yield(v) {
				return
			}
		}
	}
}

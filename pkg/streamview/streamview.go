// Package streamview adapts views to the pull iterators of go-exp/streams.
package streamview

import (
	"context"

	"github.com/brendoncarroll/go-exp/streams"

	"github.com/norio-nomura/ranges/pkg/view"
)

var _ streams.Iterator[int] = &Iterator[int]{}

// Iterator pulls the elements of a view one at a time.
type Iterator[T any] struct {
	v        view.Traversable[T]
	cur, end view.Cursor[T]
	advance  bool
}

// New returns an Iterator over v. v is not touched until the first call to Next.
func New[T any](v view.Traversable[T]) *Iterator[T] {
	return &Iterator[T]{v: v}
}

// Next writes the next element to dst. It returns streams.EOS() after the
// last element and ctx.Err() once ctx is done.
func (it *Iterator[T]) Next(ctx context.Context, dst *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if it.cur == nil {
		it.cur, it.end = it.v.Begin(), it.v.End()
	}
	if it.advance {
		if err := it.cur.Next(); err != nil {
			return err
		}
		it.advance = false
	}
	if it.cur.Equal(it.end) {
		return streams.EOS()
	}
	x, err := it.cur.Value()
	if err != nil {
		return err
	}
	it.advance = true
	*dst = x
	return nil
}

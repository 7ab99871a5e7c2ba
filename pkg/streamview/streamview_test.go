package streamview

import (
	"context"
	"testing"

	"github.com/brendoncarroll/go-exp/streams"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gotest.tools/v3/assert"

	"github.com/norio-nomura/ranges/pkg/view"
)

func isEven(n int) bool { return n%2 == 0 }

func TestIterator_Collect(t *testing.T) {
	ctx := context.Background()
	v := view.Pipe(view.Iota(1, 11), view.Filter(isEven))
	got, err := streams.Collect[int](ctx, New(v), 100)
	assert.NilError(t, err)
	assert.DeepEqual(t, got, []int{2, 4, 6, 8, 10})
}

func TestIterator_EOS(t *testing.T) {
	ctx := context.Background()
	it := New[int](view.Of(1))
	var x int
	assert.NilError(t, it.Next(ctx, &x))
	assert.Equal(t, x, 1)
	for range 2 {
		err := it.Next(ctx, &x)
		assert.Assert(t, streams.IsEOS(err))
	}
	assert.Equal(t, x, 1)
}

func TestIterator_Empty(t *testing.T) {
	ctx := context.Background()
	v := view.Pipe(view.Of(1, 3), view.Filter(isEven))
	got, err := streams.Collect[int](ctx, New(v), 100)
	assert.NilError(t, err)
	assert.DeepEqual(t, got, []int{}, cmpopts.EquateEmpty())
}

func TestIterator_Lazy(t *testing.T) {
	calls := 0
	v := view.Pipe(view.Of(1, 2), view.Filter(func(n int) bool {
		calls++
		return true
	}))
	it := New(v)
	assert.Equal(t, calls, 0)
	var x int
	assert.NilError(t, it.Next(context.Background(), &x))
	assert.Equal(t, calls, 1)
}

func TestIterator_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	it := New[int](view.IotaFrom(0))
	var x int
	assert.NilError(t, it.Next(ctx, &x))
	cancel()
	assert.ErrorIs(t, it.Next(ctx, &x), context.Canceled)
}

func TestIterator_ForEach(t *testing.T) {
	ctx := context.Background()
	v := view.Pipe(view.Of("a", "bb", "ccc"), view.Filter(func(s string) bool { return len(s) > 1 }))
	var got []string
	err := streams.ForEach[string](ctx, New(v), func(s string) error {
		got = append(got, s)
		return nil
	})
	assert.NilError(t, err)
	assert.DeepEqual(t, got, []string{"bb", "ccc"})
}

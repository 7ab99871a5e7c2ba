package view

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"gotest.tools/v3/assert"
)

func isEven(n int) bool { return n%2 == 0 }

// counting wraps pred and counts its evaluations.
func counting(pred func(int) bool) (func(int) bool, *int) {
	calls := new(int)
	return func(n int) bool {
		*calls++
		return pred(n)
	}, calls
}

func collect(t *testing.T, v Traversable[int]) []int {
	t.Helper()
	got, err := Collect(v)
	assert.NilError(t, err)
	return got
}

func TestFilter_Int(t *testing.T) {
	v := Pipe(Of(1, 2, 3, 4, 5, 6), Filter(isEven))
	assert.DeepEqual(t, collect(t, v), []int{2, 4, 6})
}

func TestFilter_Empty(t *testing.T) {
	v := Pipe(Of[int](), Filter(isEven))
	assert.Assert(t, v.Begin().Equal(v.End()))
	assert.DeepEqual(t, collect(t, v), []int{}, cmpopts.EquateEmpty())
}

func TestFilter_AllFalse(t *testing.T) {
	v := Pipe(Of(1, 3, 5), Filter(func(int) bool { return false }))
	assert.Assert(t, v.Begin().Equal(v.End()))
}

func TestFilter_AllTrue(t *testing.T) {
	v := Pipe(Of(1, 2, 3), Filter(func(int) bool { return true }))
	assert.DeepEqual(t, collect(t, v), []int{1, 2, 3})
}

func TestFilter_Lazy(t *testing.T) {
	p1, calls1 := counting(isEven)
	p2, calls2 := counting(func(n int) bool { return n > 10 })
	v := Pipe(Iota(1, 21), Filter(p1), Filter(p2))
	_ = v.End()
	assert.Equal(t, *calls1, 0)
	assert.Equal(t, *calls2, 0)

	got, err := v.Begin().Value()
	assert.NilError(t, err)
	assert.Equal(t, got, 12)
	assert.Assert(t, *calls1 > 0)
	assert.Assert(t, *calls2 > 0)
}

func TestFilter_BeginIdempotent(t *testing.T) {
	pred, calls := counting(func(n int) bool { return n > 3 })
	v := Pipe(Of(1, 2, 3, 4, 5), Filter(pred))
	first := v.Begin()
	afterFirst := *calls
	second := v.Begin()
	assert.Equal(t, *calls, afterFirst)
	assert.Assert(t, first.Equal(second))
	got, err := second.Value()
	assert.NilError(t, err)
	assert.Equal(t, got, 4)
}

func TestFilter_SkipWorkIsBounded(t *testing.T) {
	pred, calls := counting(func(n int) bool { return n%7 == 0 })
	v := Pipe(Iota(0, 100), Filter(pred))
	n, err := Count(v)
	assert.NilError(t, err)
	assert.Equal(t, n, 15)
	assert.Equal(t, *calls, 100)
}

func TestFilter_ChainEqualsConjunction(t *testing.T) {
	preds := []func(int) bool{
		isEven,
		func(n int) bool { return n > 10 },
		func(n int) bool { return n%3 == 0 },
		func(n int) bool { return n < 0 },
		func(int) bool { return true },
	}
	source := []int{5, -4, 12, 18, 7, 30, 0, 11, 24, -6, 9}
	for _, p1 := range preds {
		for _, p2 := range preds {
			chained := collect(t, Pipe(Of(source...), Filter(p1), Filter(p2)))
			both := collect(t, Pipe(Of(source...), Filter(func(n int) bool { return p1(n) && p2(n) })))
			assert.DeepEqual(t, chained, both, cmpopts.EquateEmpty())

			var want []int
			for _, n := range source {
				if p1(n) && p2(n) {
					want = append(want, n)
				}
			}
			assert.DeepEqual(t, chained, want, cmpopts.EquateEmpty())
		}
	}
}

func TestFilter_Idempotent(t *testing.T) {
	source := Of(3, 8, 1, 4, 4, 10, 7)
	once := collect(t, Pipe(source, Filter(isEven)))
	twice := collect(t, Pipe(source, Filter(isEven), Filter(isEven)))
	assert.DeepEqual(t, twice, once)
}

func TestFilter_Scenario(t *testing.T) {
	stages := []Adaptor[int]{
		Filter(isEven),
		Filter(func(n int) bool { return n > 10 }),
		Filter(func(n int) bool { return n < 16 }),
		Filter(func(n int) bool { return n == 14 }),
	}
	v := Pipe(Iota(1, 21), stages...)
	assert.DeepEqual(t, collect(t, v), []int{14})

	stages = append(stages, Filter(func(n int) bool { return n == 1 }))
	v = Pipe(Iota(1, 21), stages...)
	assert.Assert(t, v.Begin().Equal(v.End()))
}

func TestFilter_EightStages(t *testing.T) {
	eq := func(want int) Adaptor[int] { return Filter(func(n int) bool { return n == want }) }
	v := Pipe(Iota(1, 21),
		Filter(isEven),
		Filter(func(n int) bool { return n > 10 }),
		Filter(func(n int) bool { return n < 16 }),
		eq(14), eq(14), eq(1), eq(14), eq(14),
	)
	n, err := Count(v)
	assert.NilError(t, err)
	assert.Equal(t, n, 0)
}

func TestFilter_OutOfRange(t *testing.T) {
	v := Pipe(Of(1, 2), Filter(isEven))
	c := v.Begin()
	assert.NilError(t, c.Next())
	assert.Assert(t, c.Equal(v.End()))

	_, err := c.Value()
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, c.Next(), ErrOutOfRange)
	_, err = v.End().Value()
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFilter_PostNext(t *testing.T) {
	v := Pipe(Of(1, 2, 3, 4, 5, 6), Filter(isEven))
	pre := v.Begin()
	post := v.Begin()
	for !pre.Equal(v.End()) {
		prev, err := PostNext(post)
		assert.NilError(t, err)
		want, err := pre.Value()
		assert.NilError(t, err)
		got, err := prev.Value()
		assert.NilError(t, err)
		assert.Equal(t, got, want)

		assert.NilError(t, pre.Next())
		assert.Assert(t, pre.Equal(post))
	}
	_, err := PostNext(post)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFilter_EqualRawUpstream(t *testing.T) {
	fv := NewFilterView[int](Borrow[int](Of(1, 3)), isEven)
	c := fv.Begin()
	assert.Assert(t, c.Equal(fv.Underlying().End()))
	assert.Assert(t, !c.Equal(fv.Underlying().Begin()))
}

func TestFilter_MoveBeforeTraversal(t *testing.T) {
	fv := NewFilterView[int](Borrow[int](Of(1, 2, 3, 4)), isEven)
	moved := fv.Move()
	assert.DeepEqual(t, collect(t, moved), []int{2, 4})
	assert.Assert(t, fv.Begin().Equal(fv.End()))
	assert.Assert(t, fv.Underlying() == nil)
}

func TestFilter_MoveMidChain(t *testing.T) {
	source := Of(4, 11, 12, 13, 14, 20)
	inner := Pipe(source, Filter(isEven))
	relocated := inner.Move()
	outer := Pipe[int](relocated, Filter(func(n int) bool { return n > 10 }))

	direct := Pipe(source, Filter(isEven), Filter(func(n int) bool { return n > 10 }))
	assert.DeepEqual(t, collect(t, outer), collect(t, direct))
	assert.DeepEqual(t, collect(t, outer), []int{12, 14, 20})
}

func TestFilter_Swap(t *testing.T) {
	a := NewFilterView[int](Borrow[int](Of(1, 2, 3, 4)), isEven)
	b := NewFilterView[int](Borrow[int](Of(5, 6, 7)), func(n int) bool { return n > 5 })
	assert.DeepEqual(t, collect(t, a), []int{2, 4})

	a.Swap(b)
	assert.DeepEqual(t, collect(t, a), []int{6, 7})
	assert.DeepEqual(t, collect(t, b), []int{2, 4})
}

func TestFilter_CursorSurvivesMove(t *testing.T) {
	fv := NewFilterView[int](Borrow[int](Of(1, 2, 3, 4, 5, 6)), isEven)
	c := fv.Begin()
	moved := fv.Move()

	var got []int
	for end := moved.End(); !c.Equal(end); {
		n, err := c.Value()
		assert.NilError(t, err)
		got = append(got, n)
		assert.NilError(t, c.Next())
	}
	assert.DeepEqual(t, got, []int{2, 4, 6})
}

// 再走査できることを確認するためのテスト
func TestFilter_Retraverse(t *testing.T) {
	v := Pipe(Of(1, 2, 3, 4), Filter(isEven))
	got1 := collect(t, v)
	got2 := collect(t, v)
	assert.DeepEqual(t, got1, []int{2, 4})
	assert.DeepEqual(t, got2, got1)
}

func TestFilter_Unbounded(t *testing.T) {
	v := Pipe(IotaFrom(1), Filter(func(n int) bool { return n%5 == 0 }))
	var got []int
	for c := v.Begin(); len(got) < 4; {
		n, err := c.Value()
		assert.NilError(t, err)
		got = append(got, n)
		assert.NilError(t, c.Next())
	}
	assert.DeepEqual(t, got, []int{5, 10, 15, 20})
	assert.Assert(t, !v.Begin().Equal(v.End()))
}

var errBroken = errors.New("broken source")

// brokenSource fails to dereference the element at index bad.
type brokenSource struct {
	n, bad int
}

func (s brokenSource) Begin() Cursor[int] { return &brokenCursor{s: s} }
func (s brokenSource) End() Cursor[int]   { return &brokenCursor{s: s, i: s.n} }

type brokenCursor struct {
	s brokenSource
	i int
}

func (c *brokenCursor) Value() (int, error) {
	if c.i == c.s.bad {
		return 0, errBroken
	}
	return c.i, nil
}

func (c *brokenCursor) Next() error {
	c.i++
	return nil
}

func (c *brokenCursor) Equal(other Cursor[int]) bool {
	o, ok := other.(*brokenCursor)
	return ok && o.i == c.i
}

func (c *brokenCursor) Clone() Cursor[int] {
	cp := *c
	return &cp
}

func TestFilter_UpstreamError(t *testing.T) {
	v := Pipe[int](brokenSource{n: 6, bad: 3}, Filter(func(n int) bool { return n > 1 }))
	var got []int
	err := ForEach(v, func(n int) error {
		got = append(got, n)
		return nil
	})
	assert.ErrorIs(t, err, errBroken)
	assert.DeepEqual(t, got, []int{2})
}

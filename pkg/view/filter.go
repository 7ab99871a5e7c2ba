// Package view provides lazily evaluated, composable views over sequences.
//
// This file contains FilterView and its cursor.
package view

// filterCore is the state a FilterView owns. Cursors refer to it instead of
// to the FilterView, so relocating or swapping views never leaves them stale.
type filterCore[T any] struct {
	up    View[T]
	upEnd Cursor[T]
	pred  func(T) bool
}

func (core *filterCore[T]) cursor(it Cursor[T]) *FilterCursor[T] {
	return &FilterCursor[T]{it: it, owner: core}
}

// FilterView yields only the elements of its upstream view for which pred returns true.
type FilterView[T any] struct {
	Base
	core *filterCore[T]

	begin *FilterCursor[T] // nil until the first Begin
	end   *FilterCursor[T]
}

// NewFilterView relocates up into a new FilterView. pred is not evaluated
// until the view is traversed.
func NewFilterView[T any](up View[T], pred func(T) bool) *FilterView[T] {
	up = up.Move()
	f := &FilterView[T]{core: &filterCore[T]{up: up, upEnd: up.End(), pred: pred}}
	f.rebind()
	return f
}

// Underlying returns the owned upstream view, or nil once moved out.
func (f *FilterView[T]) Underlying() View[T] {
	if f.core == nil {
		return nil
	}
	return f.core.up
}

// Begin returns a cursor at the first accepted element. The skip to that
// element happens on the first call and is cached.
func (f *FilterView[T]) Begin() Cursor[T] {
	if f.core == nil {
		return emptyCursor[T]{}
	}
	if f.begin == nil {
		c := f.core.cursor(f.core.up.Begin())
		c.skip()
		f.begin = c
	}
	return f.begin.Clone()
}

func (f *FilterView[T]) End() Cursor[T] {
	if f.core == nil {
		return emptyCursor[T]{}
	}
	return f.end.Clone()
}

// rebind rebuilds the cached cursors against the core f currently holds.
func (f *FilterView[T]) rebind() {
	f.begin = nil
	if f.core == nil {
		f.end = nil
		return
	}
	f.end = f.core.cursor(f.core.upEnd.Clone())
}

// Move relocates the upstream view and predicate into a new FilterView.
func (f *FilterView[T]) Move() View[T] {
	moved := &FilterView[T]{core: f.core}
	f.core = nil
	moved.rebind()
	f.rebind()
	return moved
}

// Swap exchanges the state of f and other.
func (f *FilterView[T]) Swap(other *FilterView[T]) {
	f.core, other.core = other.core, f.core
	f.rebind()
	other.rebind()
}

// FilterCursor is a position in a FilterView: an upstream cursor plus the
// owner handle holding the predicate and the upstream end.
type FilterCursor[T any] struct {
	it    Cursor[T]
	owner *filterCore[T]
	err   error // sticky upstream failure
}

func (c *FilterCursor[T]) done() bool {
	return c.it.Equal(c.owner.upEnd)
}

// skip moves forward until pred accepts the current element or the upstream ends.
func (c *FilterCursor[T]) skip() {
	for !c.done() {
		v, err := c.it.Value()
		if err != nil {
			c.err = err
			return
		}
		if c.owner.pred(v) {
			return
		}
		if err := c.it.Next(); err != nil {
			c.err = err
			return
		}
	}
}

func (c *FilterCursor[T]) Value() (T, error) {
	if c.err != nil {
		var zero T
		return zero, c.err
	}
	if c.done() {
		var zero T
		return zero, outOfRange("filter", "value")
	}
	return c.it.Value()
}

func (c *FilterCursor[T]) Next() error {
	if c.err != nil {
		return c.err
	}
	if c.done() {
		return outOfRange("filter", "next")
	}
	if err := c.it.Next(); err != nil {
		c.err = err
		return err
	}
	c.skip()
	return c.err
}

// Equal compares upstream positions. other may be a FilterCursor or a raw upstream cursor.
func (c *FilterCursor[T]) Equal(other Cursor[T]) bool {
	if o, ok := other.(*FilterCursor[T]); ok {
		return c.it.Equal(o.it)
	}
	return c.it.Equal(other)
}

func (c *FilterCursor[T]) Clone() Cursor[T] {
	return &FilterCursor[T]{it: c.it.Clone(), owner: c.owner, err: c.err}
}

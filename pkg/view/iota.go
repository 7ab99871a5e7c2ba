package view

import "golang.org/x/exp/constraints"

// IotaRange is a sequence of consecutive integers computed on demand.
type IotaRange[T constraints.Integer] struct {
	lo, hi  T
	bounded bool
}

// Iota returns the half-open range [lo, hi). It is empty if hi <= lo.
func Iota[T constraints.Integer](lo, hi T) IotaRange[T] {
	if hi < lo {
		hi = lo
	}
	return IotaRange[T]{lo: lo, hi: hi, bounded: true}
}

// IotaFrom returns lo, lo+1, ... without an end. Traversal must be cut short by the caller.
func IotaFrom[T constraints.Integer](lo T) IotaRange[T] {
	return IotaRange[T]{lo: lo}
}

func (r IotaRange[T]) Begin() Cursor[T] {
	return &iotaCursor[T]{n: r.lo, r: r}
}

func (r IotaRange[T]) End() Cursor[T] {
	if r.bounded {
		return &iotaCursor[T]{n: r.hi, r: r}
	}
	return &iotaCursor[T]{r: r, sentinel: true}
}

type iotaCursor[T constraints.Integer] struct {
	n        T
	r        IotaRange[T]
	sentinel bool
}

func (c *iotaCursor[T]) done() bool {
	return c.sentinel || (c.r.bounded && c.n >= c.r.hi)
}

func (c *iotaCursor[T]) Value() (T, error) {
	if c.done() {
		return 0, outOfRange("iota", "value")
	}
	return c.n, nil
}

func (c *iotaCursor[T]) Next() error {
	if c.done() {
		return outOfRange("iota", "next")
	}
	c.n++
	return nil
}

func (c *iotaCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*iotaCursor[T])
	if !ok {
		return false
	}
	if c.sentinel || o.sentinel {
		return c.sentinel == o.sentinel
	}
	return c.n == o.n
}

func (c *iotaCursor[T]) Clone() Cursor[T] {
	cp := *c
	return &cp
}

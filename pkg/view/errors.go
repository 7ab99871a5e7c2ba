package view

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an end cursor is dereferenced or advanced.
var ErrOutOfRange = errors.New("cursor out of range")

func outOfRange(where, op string) error {
	return fmt.Errorf("%s: %s: %w", where, op, ErrOutOfRange)
}

// emptyCursor is both the begin and the end of a view whose state was moved out.
type emptyCursor[T any] struct{}

func (emptyCursor[T]) Value() (T, error) {
	var zero T
	return zero, outOfRange("empty view", "value")
}

func (emptyCursor[T]) Next() error {
	return outOfRange("empty view", "next")
}

func (emptyCursor[T]) Equal(other Cursor[T]) bool {
	_, ok := other.(emptyCursor[T])
	return ok
}

func (c emptyCursor[T]) Clone() Cursor[T] {
	return c
}

package view

// ForEach calls fn for every element of v, in order.
// It stops at the first error from a cursor or from fn.
func ForEach[T any](v Traversable[T], fn func(T) error) error {
	end := v.End()
	for c := v.Begin(); !c.Equal(end); {
		x, err := c.Value()
		if err != nil {
			return err
		}
		if err := fn(x); err != nil {
			return err
		}
		if err := c.Next(); err != nil {
			return err
		}
	}
	return nil
}

// Collect returns the elements of v in a new slice.
func Collect[T any](v Traversable[T]) ([]T, error) {
	var out []T
	err := ForEach(v, func(x T) error {
		out = append(out, x)
		return nil
	})
	return out, err
}

// Count returns the number of elements of v.
func Count[T any](v Traversable[T]) (int, error) {
	n := 0
	err := ForEach(v, func(T) error {
		n++
		return nil
	})
	return n, err
}

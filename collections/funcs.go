package collections

import "github.com/hasbyte1/go-ap/arr"

// This file contains the package-level, fully typed forms of application.
// They transform a Collection[func(T) U] into a Collection[U], which a
// method cannot express.

// Ap calls every function in c with x and returns a new Collection[U] of
// the results, in order. nil functions are not called and leave the zero
// value of U in their slot.
//
//	out := collections.Ap(collections.New(
//	    func(n int) int { return n + 1 },
//	    func(n int) int { return n * 2 },
//	), 10) // → [11, 20]
func Ap[T, U any](c *Collection[func(T) U], x T) *Collection[U] {
	return &Collection[U]{items: arr.Ap(c.items, x)}
}

// TryAp calls every function in c with x, stopping at the first error.
// The error is an [*arr.IndexError] naming the failing position; no partial
// collection is returned.
func TryAp[T, U any](c *Collection[func(T) (U, error)], x T) (*Collection[U], error) {
	out, err := arr.TryAp(c.items, x)
	if err != nil {
		return nil, err
	}
	return &Collection[U]{items: out}, nil
}

package collections

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-ap/arr"
)

// Collection is a generic, immutable-by-default wrapper around a slice of T.
//
// A Collection of functions can be applied to a shared argument. Every
// operation returns a *new* Collection, leaving the receiver unchanged, so a
// collection of functions can be applied many times and from several
// goroutines without locking.
//
// # Creating a collection
//
//	c := collections.New(strings.ToUpper, strings.ToLower)
//	c := collections.From([]func(int) int{double, square})
//	c := collections.Empty[func(int) int]()
//
// # Applying
//
// Go generics do not allow methods to introduce new type parameters, so the
// fully typed form is the package-level [Ap]; the method [Collection.Ap]
// works on any element type and checks each element as it is reached:
//
//	out := collections.Ap(c, 10)     // *Collection[int]
//	res, err := c.Ap(10)             // *arr.Sparse[any], error
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// Get returns the item at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (c *Collection[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// Each calls fn(item, index) for every item.
func (c *Collection[T]) Each(fn func(T, int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// String returns a JSON representation of the collection, falling back to
// fmt formatting for items JSON cannot encode (functions, for one).
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Application
// ─────────────────────────────────────────────────────────────────────────────

// Ap calls every item of c with the single shared argument in args and
// returns the position-aligned results. It is [arr.Apply] with c as the
// receiver: nil items are holes, and an item that cannot be called with the
// argument stops the scan with an error wrapping [arr.ErrInvalidElement].
// Supplying no argument returns [arr.ErrMissingArgument].
//
//	res, _ := collections.New[any](strings.ToUpper, strings.TrimSpace).Ap(" go ")
//	// res → [" GO " "go"]
func (c *Collection[T]) Ap(args ...any) (*arr.Sparse[any], error) {
	return arr.Apply(c.items, args...)
}

package arr

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Sparse is a position-aligned result that remembers which slots were
// filled. A slot whose function was a hole stays absent, which keeps it
// distinguishable from a function that returned the zero value.
type Sparse[T any] struct {
	items   []T
	present []bool
}

func newSparse[T any](n int) *Sparse[T] {
	return &Sparse[T]{
		items:   make([]T, n),
		present: make([]bool, n),
	}
}

func (s *Sparse[T]) set(i int, v T) {
	s.items[i] = v
	s.present[i] = true
}

// Len returns the number of slots, holes included.
func (s *Sparse[T]) Len() int { return len(s.items) }

// Has reports whether slot i holds a value.
func (s *Sparse[T]) Has(i int) bool {
	return i >= 0 && i < len(s.present) && s.present[i]
}

// Get returns the value at i together with a presence flag.
// Returns the zero value and false for holes and out-of-range indices.
func (s *Sparse[T]) Get(i int) (T, bool) {
	var zero T
	if !s.Has(i) {
		return zero, false
	}
	return s.items[i], true
}

// Present returns the number of filled slots.
func (s *Sparse[T]) Present() int {
	n := 0
	for _, ok := range s.present {
		if ok {
			n++
		}
	}
	return n
}

// Holes returns the indices of the absent slots in ascending order.
func (s *Sparse[T]) Holes() []int {
	out := make([]int, 0)
	for i, ok := range s.present {
		if !ok {
			out = append(out, i)
		}
	}
	return out
}

// Values returns a copy of every slot. Holes hold the zero value of T.
func (s *Sparse[T]) Values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Compact returns the filled slots in order, dropping holes.
func (s *Sparse[T]) Compact() []T {
	out := make([]T, 0, len(s.items))
	s.Each(func(v T, _ int) { out = append(out, v) })
	return out
}

// Each calls fn(value, index) for every filled slot, skipping holes.
func (s *Sparse[T]) Each(fn func(T, int)) {
	for i, v := range s.items {
		if s.present[i] {
			fn(v, i)
		}
	}
}

// String renders the slots like fmt does for slices, with holes shown as
// <hole>: "[11 <hole> 7]".
func (s *Sparse[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		if s.present[i] {
			fmt.Fprint(&b, v)
		} else {
			b.WriteString("<hole>")
		}
	}
	b.WriteByte(']')
	return b.String()
}

// MarshalJSON encodes the slots as a JSON array with holes as null.
func (s *Sparse[T]) MarshalJSON() ([]byte, error) {
	out := make([]any, len(s.items))
	for i, v := range s.items {
		if s.present[i] {
			out[i] = v
		}
	}
	return json.Marshal(out)
}

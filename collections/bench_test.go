package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-ap/collections"
)

// makeFns creates a Collection of n unary functions for benchmarks.
func makeFns(n int) *collections.Collection[func(int) int] {
	fns := make([]func(int) int, n)
	for i := range fns {
		fns[i] = func(x int) int { return x * i }
	}
	return collections.From(fns)
}

func BenchmarkApFunc(b *testing.B) {
	c := makeFns(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Ap(c, i)
	}
}

func BenchmarkCollectionAp(b *testing.B) {
	c := makeFns(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Ap(i)
	}
}

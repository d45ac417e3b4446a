// Package collections provides a generic, fluent Collection type whose
// items can be applied to a shared argument, one result per item.
//
// # Overview
//
// The central type is [Collection][T], a generic wrapper around a slice of
// T. When T is a function type the collection can be applied:
//
//	fns := collections.New(
//	    func(n int) int { return n + 1 },
//	    func(n int) int { return n * 2 },
//	    func(n int) int { return n - 3 },
//	)
//	collections.Ap(fns, 10).All() // → [11 20 7]
//
// # Immutability
//
// Application returns a *new* Collection, leaving the original unchanged.
// The same collection of functions can be applied to many arguments.
//
// # Typed and dynamic forms
//
// Package-level [Ap] and [TryAp] are fully typed. The method
// [Collection.Ap] accepts any element type and reports elements that are
// not unary functions with [arr.ErrInvalidElement]; see package arr for the
// full rules.
package collections

// Package arr provides standalone helpers that apply a slice of functions to
// one shared argument, producing one result per function, position-aligned.
//
// # Typed helpers
//
// The generic helpers operate on plain []func(T) U values — no wrapper type
// required:
//
//	out := arr.Ap([]func(int) int{
//	    func(n int) int { return n + 1 },
//	    func(n int) int { return n * 2 },
//	    func(n int) int { return n - 3 },
//	}, 10) // → [11 20 7]
//
// [TryAp] does the same for functions that can fail and stops at the first
// error.
//
// # Holes
//
// Go slices have no holes, so a nil function plays that role: it is never
// called and its slot is left absent. [Ap] leaves the zero value there;
// [ApSparse] and [Apply] return a [Sparse] that keeps track of which slots
// were filled:
//
//	fns := make([]func(int) int, 3)
//	fns[0] = func(n int) int { return n }
//	fns[2] = func(n int) int { return -n }
//	arr.ApSparse(fns, 4) // → [4 <hole> -4]
//
// # Dynamic receivers
//
// [Apply] takes any slice or array, such as []any, and checks each element
// as it reaches it:
//
//	res, err := arr.Apply([]any{strings.ToUpper, "not a function"}, "go")
//	// err wraps arr.ErrInvalidElement at index 1; strings.ToUpper already ran
package arr

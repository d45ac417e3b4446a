package arr

// ─────────────────────────────────────────────────────────────────────────────
// Typed application
// ─────────────────────────────────────────────────────────────────────────────

// Ap calls every function in fns with x and returns the results in the same
// order: out[i] == fns[i](x).
//
// Functions are called once each, in ascending index order. A nil function
// is a hole: it is not called and its slot keeps the zero value of U. Use
// [ApSparse] when a hole must stay distinguishable from a zero result.
// A panic raised by a function stops the scan and propagates to the caller.
//
//	arr.Ap([]func(int) int{
//	    func(n int) int { return n + 1 },
//	    func(n int) int { return n * 2 },
//	}, 10) // → [11 20]
func Ap[T, U any](fns []func(T) U, x T) []U {
	out := make([]U, len(fns))
	for i, fn := range fns {
		if fn == nil {
			continue
		}
		out[i] = fn(x)
	}
	return out
}

// ApSparse is like [Ap] but records nil functions as holes in the result.
func ApSparse[T, U any](fns []func(T) U, x T) *Sparse[U] {
	out := newSparse[U](len(fns))
	for i, fn := range fns {
		if fn == nil {
			continue
		}
		out.set(i, fn(x))
	}
	return out
}

// TryAp calls every function in fns with x, stopping at the first error.
//
// The error is returned wrapped in an [*IndexError] naming the failing
// index, and no partial result is returned. Functions after the failing
// one are not called. nil functions are holes, as in [Ap].
func TryAp[T, U any](fns []func(T) (U, error), x T) ([]U, error) {
	out := make([]U, len(fns))
	for i, fn := range fns {
		if fn == nil {
			continue
		}
		v, err := fn(x)
		if err != nil {
			return nil, &IndexError{Index: i, Err: err}
		}
		out[i] = v
	}
	return out, nil
}

package arr

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeFor[error]()

// Apply is the dynamic form of [Ap]. It accepts any slice or array as the
// receiver and calls each of its elements with the single shared argument
// in args.
//
// Validation happens in this order:
//   - receiver must be a slice or array, otherwise [ErrInvalidReceiver];
//     a nil slice is a valid, empty receiver;
//   - exactly one argument must be given, otherwise [ErrMissingArgument] or
//     [ErrTooManyArguments]; an explicit nil is a valid argument.
//
// Both checks run before any element is called. Elements are then visited
// in ascending index order:
//   - nil interfaces and nil functions are holes: nothing is called and the
//     slot stays absent in the result;
//   - a function with one parameter that accepts the argument, returning
//     nothing, one value, or a value and an error, is called once;
//   - anything else stops the scan with an [*IndexError] wrapping
//     [ErrInvalidElement]. Elements before it have already been called,
//     elements after it are not.
//
// A non-nil error returned by an element stops the scan the same way,
// wrapped in an [*IndexError]. On any error the result is nil.
//
//	res, err := arr.Apply([]any{
//	    func(n int) int { return n + 1 },
//	    func(n int) int { return n * 2 },
//	    func(n int) int { return n - 3 },
//	}, 10) // res → [11 20 7]
func Apply(receiver any, args ...any) (*Sparse[any], error) {
	rv := reflect.ValueOf(receiver)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidReceiver, receiver)
	}

	switch {
	case len(args) == 0:
		return nil, ErrMissingArgument
	case len(args) > 1:
		return nil, fmt.Errorf("%w: got %d, want 1", ErrTooManyArguments, len(args))
	}
	x := args[0]

	n := rv.Len()
	out := newSparse[any](n)
	for i := 0; i < n; i++ {
		elem := rv.Index(i)
		if elem.Kind() == reflect.Interface {
			if elem.IsNil() {
				continue
			}
			elem = elem.Elem()
		}
		if elem.Kind() == reflect.Func && elem.IsNil() {
			continue
		}
		v, err := invoke(i, elem, x)
		if err != nil {
			return nil, err
		}
		out.set(i, v)
	}
	return out, nil
}

// invoke calls fn with x. fn must be a valid, non-nil value.
func invoke(i int, fn reflect.Value, x any) (any, error) {
	if f, ok := fn.Interface().(func(any) any); ok {
		return f(x), nil
	}
	if fn.Kind() != reflect.Func {
		return nil, invalidElement(i, fn.Interface())
	}

	ft := fn.Type()
	if ft.NumIn() != 1 || !unaryResult(ft) {
		return nil, invalidElement(i, fn.Interface())
	}
	param := ft.In(0)
	if ft.IsVariadic() {
		param = param.Elem()
	}
	arg, ok := argumentFor(param, x)
	if !ok {
		return nil, invalidElement(i, fn.Interface())
	}

	res := fn.Call([]reflect.Value{arg})
	switch len(res) {
	case 0:
		return nil, nil
	case 1:
		return res[0].Interface(), nil
	}
	if !res[1].IsNil() {
		return nil, &IndexError{Index: i, Err: res[1].Interface().(error)}
	}
	return res[0].Interface(), nil
}

// unaryResult reports whether ft returns (), (R) or (R, error).
func unaryResult(ft reflect.Type) bool {
	switch ft.NumOut() {
	case 0, 1:
		return true
	case 2:
		return ft.Out(1) == errorType
	}
	return false
}

// argumentFor converts x into a value assignable to a parameter of type t.
func argumentFor(t reflect.Type, x any) (reflect.Value, bool) {
	if x == nil {
		switch t.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(x)
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, false
	}
	return v, true
}

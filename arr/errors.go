package arr

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by [Apply] and the typed Ap helpers.
//
// Use [errors.Is] for comparisons:
//
//	_, err := arr.Apply(fns, 10)
//	if errors.Is(err, arr.ErrInvalidElement) {
//	    // an element of fns could not be called with 10
//	}
var (
	// ErrInvalidReceiver is returned when the receiver is not a slice or
	// an array.
	ErrInvalidReceiver = errors.New("arr: receiver is not a slice or array")

	// ErrMissingArgument is returned when no shared argument is supplied.
	ErrMissingArgument = errors.New("arr: missing argument")

	// ErrTooManyArguments is returned when more than one shared argument is
	// supplied.
	ErrTooManyArguments = errors.New("arr: too many arguments")

	// ErrInvalidElement is returned when the element at the index being
	// processed cannot be called with the shared argument.
	ErrInvalidElement = errors.New("arr: element is not a unary function")
)

// IndexError records the receiver index at which a scan stopped.
//
// It wraps either [ErrInvalidElement] or the error returned by the function
// at Index, so both [errors.Is] and [errors.As] work:
//
//	var ie *arr.IndexError
//	if errors.As(err, &ie) {
//	    log.Printf("failed at %d", ie.Index)
//	}
type IndexError struct {
	Index int
	Err   error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("arr: index %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error.
func (e *IndexError) Unwrap() error { return e.Err }

func invalidElement(index int, elem any) error {
	return &IndexError{
		Index: index,
		Err:   fmt.Errorf("%w: %T", ErrInvalidElement, elem),
	}
}

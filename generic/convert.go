package generic

import (
	"errors"
	"fmt"
)

// FromError converts err into an Error. An Error is returned as is and the
// options are ignored. Anything else is converted along its errors.Unwrap
// chain: each wrapped error becomes a record whose type is the Go type of the
// wrapped error, linked as the previous of the record of its wrapper. The
// conversion stops at the first wrapped value that already is an Error, which
// becomes the previous as is.
//
// Options only apply to the outermost record. Their skip arguments are
// counted from an internal call to New: the caller of FromError is at skip 2.
func FromError(err error, options ...Option) Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		return e
	}
	var previous Error
	var wrapped []error
	for current := err; current != nil; current = errors.Unwrap(current) {
		if e, ok := current.(Error); ok {
			previous = e
			break
		}
		wrapped = append(wrapped, current)
	}
	for index := len(wrapped) - 1; index > 0; index-- {
		previous = fromError(wrapped[index], previous)
	}
	return fromError(wrapped[0], previous, options...)
}

func fromError(err error, previous Error, options ...Option) Error {
	defaults := []Option{WithType(fmt.Sprintf("%T", err))}
	if previous != nil {
		defaults = append(defaults, WithPrevious(previous))
	}
	return New(err.Error(), append(defaults, options...)...)
}

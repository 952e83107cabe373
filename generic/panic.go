package generic

import "fmt"

// PanicType is the type of the records created by FromPanic.
const PanicType = "panic"

// FromPanic converts a value returned by recover into an Error with
// SeverityCritical and the stack trace of the recovering goroutine, which still
// holds the frames that panicked. It must be called from the deferred function:
//
//	defer func() {
//		if recovered := recover(); recovered != nil {
//			err = generic.FromPanic(recovered)
//		}
//	}()
//
// An Error is returned as is. Another error is converted with FromError and
// becomes the previous, any other value is kept in the context under
// "recovered".
func FromPanic(recovered any, options ...Option) Error {
	if recovered == nil {
		return nil
	}
	if e, ok := recovered.(Error); ok {
		return e
	}
	defaults := []Option{
		WithType(PanicType),
		WithSeverity(SeverityCritical),
		WithStackTrace(1, DefaultTraceOptions, 0),
	}
	if err, ok := recovered.(error); ok {
		defaults = append(defaults, WithPrevious(FromError(err)))
	} else {
		defaults = append(defaults, WithContext(map[string]any{"recovered": recovered}))
	}
	return New(fmt.Sprint("panicked: ", recovered), append(defaults, options...)...)
}

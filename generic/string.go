package generic

// type check
var _ error = String("")

// String is a string-based constant error. Errors returned by this package are
// String values and can be matched with errors.Is:
//
//	if _, err := record.GetErrors(); errors.Is(err, generic.ErrCyclicChain) {
//		...
//	}
type String string

func (e String) Error() string {
	return string(e)
}

const (
	// ErrCyclicChain is returned by the chain traversals when a record is
	// reached twice while following GetPrevious.
	ErrCyclicChain = String("generic: cyclic error chain")

	// ErrIncomparable is returned by the chain traversals when an Error of
	// the chain is a value that cannot be compared, such as a struct holding
	// a slice.
	ErrIncomparable = String("generic: incomparable error in chain")

	// ErrTraceOption is returned when a stack capture is requested with
	// option bits this package does not know.
	ErrTraceOption = String("generic: unsupported trace option")

	// ErrTraceLimit is returned when a stack capture is requested with a
	// negative frame limit.
	ErrTraceLimit = String("generic: negative trace limit")

	// ErrSeverity is returned when a severity name cannot be parsed.
	ErrSeverity = String("generic: unknown severity")
)

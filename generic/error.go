package generic

import "maps"

// DefaultType is the type of every record created without a textual type.
const DefaultType = "GENERIC"

// Error describes a single application error: what happened, where, how bad it
// is, what caused it and whatever else helps troubleshooting it.
//
// GetPrevious links an Error to the error that caused it. The link does not
// own its target: the same Error may be the previous of many others. Chains
// must be acyclic, the traversals return ErrCyclicChain otherwise.
//
// Implementations other than the one returned by New must be comparable, since
// the traversals track the records they already visited. They return
// ErrIncomparable otherwise.
type Error interface {
	error

	// GetMessage returns the human readable message.
	GetMessage() string

	// GetCode returns the numeric code, 0 if none was given.
	GetCode() int

	// GetSeverity returns how bad the error is.
	GetSeverity() Severity

	// GetFile returns the source file the error originated from, if known.
	GetFile() string

	// GetLine returns the line in GetFile, 0 if unknown.
	GetLine() int

	// GetType returns the classification tag, DefaultType if none was given.
	GetType() string

	// GetPrevious returns the error that caused this one, or nil.
	GetPrevious() Error

	// GetFirst returns the oldest error of the chain ending at this one.
	GetFirst() (Error, error)

	// GetErrors returns every error of the chain ending at this one, oldest
	// first and this one last.
	GetErrors() ([]Error, error)

	// GetTrace returns the stack trace of this error, capturing it on the
	// first call if none was given.
	GetTrace(options TraceOption, limit int) (StackFrames, error)

	// AddContext merges values into the troubleshooting context. Existing
	// keys are overwritten, nothing is ever removed.
	AddContext(context map[string]any)

	// GetContext returns a copy of the troubleshooting context.
	GetContext() map[string]any
}

// type check
var _ Error = (*record)(nil)

// record is the Error returned by New. Everything but context and a lazily
// captured trace is fixed at construction. There is no internal locking: a
// record shared between goroutines must have AddContext and the first GetTrace
// synchronized by its owner.
type record struct {
	message  string
	code     int
	severity Severity
	file     string
	line     int
	kind     string
	previous Error
	trace    StackFrames
	context  map[string]any
}

// New creates an Error with the given message. Without options the record has
// code 0, SeverityError, no file, line 0, DefaultType, no previous, no trace
// and an empty context.
func New(message string, options ...Option) Error {
	b := builder{
		record: record{
			message:  message,
			severity: SeverityError,
		},
		rawType: DefaultType,
	}
	for _, option := range options {
		option(&b)
	}
	e := b.record
	e.kind = normalizeType(b.rawType)
	for _, context := range b.contexts {
		e.AddContext(context)
	}
	return &e
}

func (e *record) Error() string {
	if e.message == "" {
		return e.kind
	}
	return e.kind + ": " + e.message
}

// Unwrap exposes the previous error to errors.Is and errors.As.
func (e *record) Unwrap() error {
	if e.previous == nil {
		return nil
	}
	return e.previous
}

func (e *record) GetMessage() string {
	return e.message
}

func (e *record) GetCode() int {
	return e.code
}

func (e *record) GetSeverity() Severity {
	return e.severity
}

func (e *record) GetFile() string {
	return e.file
}

func (e *record) GetLine() int {
	return e.line
}

func (e *record) GetType() string {
	return e.kind
}

func (e *record) GetPrevious() Error {
	return e.previous
}

func (e *record) GetFirst() (Error, error) {
	return First(e)
}

func (e *record) GetErrors() ([]Error, error) {
	return Errors(e)
}

// GetTrace returns the trace given at construction. If there is none, the
// stack is captured once, starting at the caller of GetTrace, and kept: later
// calls return the same trace whatever their arguments.
//
// A lazily captured trace describes where the trace was first asked for, not
// where the error was created. Use WithStackTrace to capture at construction.
func (e *record) GetTrace(options TraceOption, limit int) (StackFrames, error) {
	if len(e.trace) == 0 {
		trace, err := CaptureStackTrace(1, options, limit)
		if err != nil {
			return nil, err
		}
		e.trace = trace
	}
	return e.trace, nil
}

func (e *record) AddContext(context map[string]any) {
	if len(context) == 0 {
		return
	}
	if e.context == nil {
		e.context = make(map[string]any, len(context))
	}
	maps.Copy(e.context, context)
}

func (e *record) GetContext() map[string]any {
	return maps.Clone(e.context)
}

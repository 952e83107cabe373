package generic

import (
	"reflect"
	"runtime"
)

// Option configures the record being created by New.
type Option func(*builder)

type builder struct {
	record
	rawType  any
	contexts []map[string]any
}

func WithCode(code int) Option {
	return func(b *builder) { b.code = code }
}

func WithSeverity(severity Severity) Option {
	return func(b *builder) { b.severity = severity }
}

func WithFile(file string) Option {
	return func(b *builder) { b.file = file }
}

func WithLine(line int) Option {
	return func(b *builder) { b.line = line }
}

// WithType sets the classification tag. Only values whose kind is string are
// kept, including named string types. Anything else becomes DefaultType.
func WithType(value any) Option {
	return func(b *builder) { b.rawType = value }
}

// WithPrevious sets the error that caused the one being created.
func WithPrevious(previous Error) Option {
	return func(b *builder) { b.previous = previous }
}

// WithTrace sets the stack trace. A non-empty trace is returned as is by
// GetTrace and never replaced by a capture.
func WithTrace(trace StackFrames) Option {
	return func(b *builder) { b.trace = trace }
}

// WithContext adds initial context. It is merged with AddContext after every
// option was applied, so later WithContext values win on conflicting keys.
func WithContext(context map[string]any) Option {
	return func(b *builder) {
		if len(context) > 0 {
			b.contexts = append(b.contexts, context)
		}
	}
}

// WithCaller sets file and line to the position of a caller. A skip of 0 is
// the caller of New, 1 is its caller, and so on.
func WithCaller(skip int) Option {
	return func(b *builder) {
		if _, file, line, ok := runtime.Caller(skip + 2); ok {
			b.file = file
			b.line = line
		}
	}
}

// WithStackTrace captures the stack trace while the error is being created. A
// skip of 0 starts the trace at the caller of New. If the capture fails, the
// record is left without trace and GetTrace will try again.
func WithStackTrace(skip int, options TraceOption, limit int) Option {
	return func(b *builder) {
		if trace, err := CaptureStackTrace(skip+2, options, limit); err == nil {
			b.trace = trace
		}
	}
}

func normalizeType(value any) string {
	switch value := value.(type) {
	case string:
		return value
	case nil:
		return DefaultType
	}
	if reflected := reflect.ValueOf(value); reflected.Kind() == reflect.String {
		return reflected.String()
	}
	return DefaultType
}

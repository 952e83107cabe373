//go:build !no_zerolog

package generic

import "github.com/rs/zerolog"

// Level maps the severity to a zerolog level. SeverityNotice logs at info,
// SeverityCritical at fatal (use Logger.WithLevel, which does not exit).
func (s Severity) Level() zerolog.Level {
	switch s {
	case SeverityDebug:
		return zerolog.DebugLevel
	case SeverityInfo, SeverityNotice:
		return zerolog.InfoLevel
	case SeverityWarning:
		return zerolog.WarnLevel
	case SeverityError:
		return zerolog.ErrorLevel
	case SeverityCritical:
		return zerolog.FatalLevel
	default:
		return zerolog.NoLevel
	}
}

func (e String) MarshalZerologObject(event *zerolog.Event) {
	event.Str("error", string(e))
}

// MarshalZerologObject never captures a trace: stack_trace is only written if
// the record already has one. The earlier errors of the chain are written
// oldest first under previous, each without its own chain.
func (e *record) MarshalZerologObject(event *zerolog.Event) {
	marshalError(event, e)
	if e.previous == nil {
		return
	}
	chain, err := e.GetErrors()
	if err != nil {
		event.Str("chain_error", err.Error())
		return
	}
	event.Array("previous", chainArray(chain[:len(chain)-1]))
}

func marshalError(event *zerolog.Event, e Error) {
	event.Str("message", e.GetMessage()).
		Str("type", e.GetType()).
		Int("code", e.GetCode()).
		Stringer("severity", e.GetSeverity())
	if file := e.GetFile(); file != "" {
		event.Str("file", file).Int("line", e.GetLine())
	}
	if context := e.GetContext(); len(context) > 0 {
		event.Dict("context", zerolog.Dict().Fields(context))
	}
	if r, ok := e.(*record); ok && len(r.trace) > 0 {
		event.Array("stack_trace", r.trace)
	}
}

type chainArray []Error

func (c chainArray) MarshalZerologArray(array *zerolog.Array) {
	for _, e := range c {
		array.Object(chainMember{e})
	}
}

type chainMember struct {
	Error
}

func (m chainMember) MarshalZerologObject(event *zerolog.Event) {
	marshalError(event, m.Error)
}

func (f StackFrame) MarshalZerologObject(event *zerolog.Event) {
	event.Str("function", f.Function).Str("file", f.File).Int("line", f.Line)
}

func (s StackFrames) MarshalZerologArray(array *zerolog.Array) {
	for _, frame := range s {
		array.Object(frame)
	}
}

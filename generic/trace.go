package generic

import (
	"encoding"
	"fmt"
	"path"
	"runtime"
	"strconv"
	"strings"

	"github.com/thanhminhmr/go-generic-error/helper"
)

type StackFrame struct {
	Function string
	File     string
	Line     int
}

type StackFrames []StackFrame

// TraceOption is a set of flags controlling how a stack trace is captured.
type TraceOption uint8

const (
	// TraceIgnoreRuntime drops the frames of the Go runtime package, such as
	// runtime.goexit at the bottom of every goroutine.
	TraceIgnoreRuntime TraceOption = 1 << iota

	// TraceTrimPath keeps only the base name of the source file of each frame.
	TraceTrimPath

	traceOptionMask = TraceIgnoreRuntime | TraceTrimPath
)

// DefaultTraceOptions is what the configuration falls back to.
const DefaultTraceOptions = TraceIgnoreRuntime

var (
	_ encoding.TextMarshaler   = (*TraceOption)(nil)
	_ encoding.TextUnmarshaler = (*TraceOption)(nil)
)

var traceOptionNames = []struct {
	option TraceOption
	name   string
}{
	{TraceIgnoreRuntime, "ignore_runtime"},
	{TraceTrimPath, "trim_path"},
}

// String returns the comma separated names of the flags. Unknown bits are
// rendered in hexadecimal.
func (o TraceOption) String() string {
	var names []string
	for _, entry := range traceOptionNames {
		if o&entry.option != 0 {
			names = append(names, entry.name)
		}
	}
	if unknown := o &^ traceOptionMask; unknown != 0 {
		names = append(names, "0x"+strconv.FormatUint(uint64(unknown), 16))
	}
	return strings.Join(names, ",")
}

func (o TraceOption) MarshalText() ([]byte, error) {
	if o&^traceOptionMask != 0 {
		return nil, fmt.Errorf("%w: %s", ErrTraceOption, o)
	}
	return []byte(o.String()), nil
}

// UnmarshalText parses a comma separated list of flag names. Empty input and
// "none" give no flag at all.
func (o *TraceOption) UnmarshalText(text []byte) error {
	var parsed TraceOption
	for _, name := range strings.Split(string(text), ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || name == "none" {
			continue
		}
		found := false
		for _, entry := range traceOptionNames {
			if entry.name == name {
				parsed |= entry.option
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %q", ErrTraceOption, name)
		}
	}
	*o = parsed
	return nil
}

// frameCache maps a program counter to its resolved frames. One program
// counter resolves to several frames when calls were inlined into it.
var frameCache helper.SyncMap[uintptr, []StackFrame]

// CaptureStackTrace captures the current call stack. A skip of 0 starts the
// trace at the caller of CaptureStackTrace, 1 at the caller's caller, and so
// on. A limit of 0 keeps every frame, a positive limit keeps at most that many
// frames after options were applied.
func CaptureStackTrace(skip int, options TraceOption, limit int) (StackFrames, error) {
	if options&^traceOptionMask != 0 {
		return nil, fmt.Errorf("%w: %s", ErrTraceOption, options)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrTraceLimit, limit)
	}
	programCounters := callers(skip + 1)
	trace := make(StackFrames, 0, len(programCounters))
	for _, programCounter := range programCounters {
		for _, frame := range frameCache.GetOrCompute(programCounter, resolveFrames) {
			if options&TraceIgnoreRuntime != 0 && strings.HasPrefix(frame.Function, "runtime.") {
				continue
			}
			if options&TraceTrimPath != 0 {
				frame.File = path.Base(frame.File)
			}
			trace = append(trace, frame)
			if limit > 0 && len(trace) == limit {
				return trace, nil
			}
		}
	}
	return trace, nil
}

// callers returns the program counters of the stack, skip 0 being the caller
// of callers. The buffer grows until the whole stack fits.
func callers(skip int) []uintptr {
	programCounters := make([]uintptr, 32)
	for {
		length := runtime.Callers(skip+2, programCounters)
		if length < len(programCounters) {
			return programCounters[:length]
		}
		programCounters = make([]uintptr, len(programCounters)*2)
	}
}

func resolveFrames(programCounter uintptr) []StackFrame {
	var resolved []StackFrame
	frames := runtime.CallersFrames([]uintptr{programCounter})
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			resolved = append(resolved, StackFrame{
				Function: frame.Function,
				File:     frame.File,
				Line:     frame.Line,
			})
		}
		if !more {
			return resolved
		}
	}
}

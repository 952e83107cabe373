package generic

import (
	"encoding"
	"fmt"
	"strconv"
	"strings"
)

// Severity tells how bad an error is. The zero value is SeverityDebug, records
// created by New default to SeverityError.
type Severity int8

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityNotice
	SeverityWarning
	SeverityError
	SeverityCritical
)

var (
	_ encoding.TextMarshaler   = (*Severity)(nil)
	_ encoding.TextUnmarshaler = (*Severity)(nil)
)

var severityNames = [...]string{
	SeverityDebug:    "debug",
	SeverityInfo:     "info",
	SeverityNotice:   "notice",
	SeverityWarning:  "warning",
	SeverityError:    "error",
	SeverityCritical: "critical",
}

// ParseSeverity accepts the names returned by Severity.String, ignoring case
// and surrounding spaces. "warn" is accepted as an alias of "warning".
func ParseSeverity(s string) (Severity, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warn" {
		return SeverityWarning, nil
	}
	for severity, name := range severityNames {
		if name == s {
			return Severity(severity), nil
		}
	}
	return SeverityError, fmt.Errorf("%w: %q", ErrSeverity, s)
}

// Valid reports whether s is one of the declared severities.
func (s Severity) Valid() bool {
	return s >= SeverityDebug && s <= SeverityCritical
}

func (s Severity) String() string {
	if s.Valid() {
		return severityNames[s]
	}
	return "severity(" + strconv.Itoa(int(s)) + ")"
}

func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrSeverity, s)
	}
	return []byte(severityNames[s]), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

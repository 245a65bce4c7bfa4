package resolver

import (
	"fmt"
	"strings"
)

// NotFoundError reports that a backend was consulted successfully but does
// not hold the requested variable.
type NotFoundError struct {
	Backend string
	Name    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: variable %q not found", e.Backend, e.Name)
}

// ReadError reports that the env file could not be opened. It is distinct
// from NotFoundError so callers can tell a missing file from a missing key.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("env file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError reports a line that does not match the KEY=VALUE shape. It only
// escapes the file backend when strict parsing is enabled; the default
// tolerant mode skips the line and keeps going.
type ParseError struct {
	Path string
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: malformed line %q", e.Path, e.Line, e.Text)
}

// IOError reports that the interactive prompt could not read a line, either
// because the input stream ended or because the read itself failed.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading input: %v", e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ResolutionError is the aggregate failure for the All chain: every backend
// was tried and none produced a value. Causes holds the per-backend failures
// in attempt order.
type ResolutionError struct {
	Name   string
	Causes []error
}

func (e *ResolutionError) Error() string {
	if len(e.Causes) == 0 {
		return fmt.Sprintf("could not resolve %q", e.Name)
	}
	parts := make([]string, 0, len(e.Causes))
	for _, cause := range e.Causes {
		parts = append(parts, cause.Error())
	}
	return fmt.Sprintf("could not resolve %q: %s", e.Name, strings.Join(parts, "; "))
}

// Unwrap exposes the per-backend causes to errors.Is and errors.As.
func (e *ResolutionError) Unwrap() []error { return e.Causes }

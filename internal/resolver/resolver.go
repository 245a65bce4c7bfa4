package resolver

import (
	"errors"
	"fmt"

	"envseek/pkg/logging"
)

// SearchType selects which backend(s) a Resolver consults and in what order.
type SearchType int

const (
	// All runs the fallback chain file -> system -> input, first success wins.
	// It is the implicit default when a caller supplies no selector.
	All SearchType = iota
	// File consults only the env file.
	File
	// System consults only the process environment.
	System
	// Input always prompts on the terminal.
	Input
)

// String makes SearchType satisfy the fmt.Stringer interface.
func (s SearchType) String() string {
	switch s {
	case All:
		return "all"
	case File:
		return "file"
	case System:
		return "system"
	case Input:
		return "input"
	default:
		return "unknown"
	}
}

// ParseSearchType converts a selector name from the CLI flag or config file
// to a SearchType.
func ParseSearchType(s string) (SearchType, error) {
	switch s {
	case "all", "":
		return All, nil
	case "file":
		return File, nil
	case "system", "env":
		return System, nil
	case "input":
		return Input, nil
	default:
		return All, fmt.Errorf("unknown source %q (want file, system, input or all)", s)
	}
}

// DefaultOrder is the fallback chain used by the All selector unless
// overridden with WithOrder.
var DefaultOrder = []SearchType{File, System, Input}

// Resolver resolves variable names against its backends according to a
// SearchType selector. The zero value is not usable; construct with New.
type Resolver struct {
	file   Backend
	system Backend
	input  Backend
	order  []SearchType
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithFileBackend replaces the file backend.
func WithFileBackend(b Backend) Option {
	return func(r *Resolver) { r.file = b }
}

// WithSystemBackend replaces the system backend.
func WithSystemBackend(b Backend) Option {
	return func(r *Resolver) { r.system = b }
}

// WithInputBackend replaces the input backend.
func WithInputBackend(b Backend) Option {
	return func(r *Resolver) { r.input = b }
}

// WithOrder replaces the fallback chain tried by the All selector. The
// single-backend selectors are unaffected. Unknown or duplicate entries are
// the caller's mistake and are consulted as given.
func WithOrder(order []SearchType) Option {
	return func(r *Resolver) {
		if len(order) > 0 {
			r.order = order
		}
	}
}

// New returns a Resolver with the three real backends and the default
// fallback chain, customized by opts.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		file:   NewFileBackend(),
		system: SystemBackend{},
		input:  NewInputBackend(),
		order:  DefaultOrder,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get resolves name with a fresh default Resolver and the All chain. It is
// the convenience form for callers that do not care about selectors.
func Get(name string) (string, error) {
	return New().Resolve(All, name)
}

// Backend returns the backend a single-backend selector maps to, or nil for
// All and unknown selectors.
func (r *Resolver) Backend(selector SearchType) Backend {
	switch selector {
	case File:
		return r.file
	case System:
		return r.system
	case Input:
		return r.input
	default:
		return nil
	}
}

// Resolve looks up name according to selector. For the single-backend
// selectors the backend's result is returned unchanged, so a caller that
// pinned File sees a ReadError rather than an aggregate failure. For All the
// fallback chain runs until a backend succeeds; if every backend fails the
// result is a ResolutionError carrying each cause in attempt order.
func (r *Resolver) Resolve(selector SearchType, name string) (string, error) {
	if selector == All {
		return r.resolveAll(name)
	}
	backend := r.Backend(selector)
	if backend == nil {
		return "", fmt.Errorf("unknown selector %d", selector)
	}
	return r.lookup(backend, name)
}

func (r *Resolver) resolveAll(name string) (string, error) {
	var causes []error
	for _, selector := range r.order {
		backend := r.Backend(selector)
		if backend == nil {
			return "", fmt.Errorf("unknown selector %d in fallback chain", selector)
		}
		value, err := r.lookup(backend, name)
		if err == nil {
			return value, nil
		}
		if !fallsThrough(err) {
			// IOError from the prompt: nothing follows it in the chain, so
			// the failure propagates as-is.
			return "", err
		}
		causes = append(causes, err)
	}
	return "", &ResolutionError{Name: name, Causes: causes}
}

func (r *Resolver) lookup(backend Backend, name string) (string, error) {
	value, err := backend.Lookup(name)
	if err != nil {
		logging.Debug("resolver", "backend %s: %v", backend.Name(), err)
		return "", err
	}
	logging.Debug("resolver", "backend %s resolved %s", backend.Name(), name)
	return value, nil
}

// fallsThrough reports whether err lets the All chain move on to the next
// backend. Key and file absence do; parse failures in strict mode do too,
// since the env file is only one of several sources. A terminal read failure
// does not.
func fallsThrough(err error) bool {
	var (
		notFound *NotFoundError
		readErr  *ReadError
		parseErr *ParseError
	)
	return errors.As(err, &notFound) || errors.As(err, &readErr) || errors.As(err, &parseErr)
}

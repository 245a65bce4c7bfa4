package resolver

// Backend is a single source of variable values.
type Backend interface {
	// Lookup retrieves the value for name. A miss is reported as a typed
	// error (NotFoundError, ReadError, IOError) rather than an empty string,
	// so the resolver can decide whether to fall through to the next backend.
	Lookup(name string) (string, error)

	// Name returns the backend's short name ("file", "system", "input"),
	// used in error messages and logs.
	Name() string
}

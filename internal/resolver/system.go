package resolver

import "os"

// SystemBackend answers lookups from the process's inherited environment
// table. Keys are matched exactly, with no case or whitespace normalization.
type SystemBackend struct{}

func (SystemBackend) Name() string { return "system" }

func (b SystemBackend) Lookup(name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", &NotFoundError{Backend: b.Name(), Name: name}
	}
	return value, nil
}

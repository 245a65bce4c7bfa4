package resolver

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"envseek/pkg/logging"
)

// For mocking in tests
var osGetwd = os.Getwd

const envFileName = ".env"

// DefaultLocator returns the path of the .env file next to the nearest go.mod,
// searching upward from the working directory. Anchoring on the module root
// keeps the lookup stable no matter which subdirectory the process is launched
// from. When no go.mod is found the working directory itself is used.
func DefaultLocator() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	for dir := wd; ; {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, envFileName), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return filepath.Join(wd, envFileName), nil
}

// FileBackend answers lookups from a line-oriented KEY=VALUE file. The file
// is re-read and re-parsed on every call so external edits are observed
// without a reload API.
type FileBackend struct {
	// Locate returns the path of the env file. Defaults to DefaultLocator.
	Locate func() (string, error)

	// Strict aborts the parse with a ParseError on the first malformed line.
	// When false (the default) malformed lines are logged and skipped.
	Strict bool
}

// NewFileBackend returns a FileBackend using the default module-root locator.
func NewFileBackend() *FileBackend {
	return &FileBackend{Locate: DefaultLocator}
}

// NewFileBackendAt returns a FileBackend pinned to an explicit file path.
func NewFileBackendAt(path string) *FileBackend {
	return &FileBackend{Locate: func() (string, error) { return path, nil }}
}

func (b *FileBackend) Name() string { return "file" }

// Lookup parses the env file and returns the value for name. A missing file
// yields a ReadError; a missing key yields a NotFoundError.
func (b *FileBackend) Lookup(name string) (string, error) {
	locate := b.Locate
	if locate == nil {
		locate = DefaultLocator
	}
	path, err := locate()
	if err != nil {
		return "", &ReadError{Path: envFileName, Err: err}
	}

	f, err := os.Open(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	entries, err := parseEnv(path, f, b.Strict)
	if err != nil {
		return "", err
	}

	value, ok := entries[name]
	if !ok {
		return "", &NotFoundError{Backend: b.Name(), Name: name}
	}
	return value, nil
}

// parseEnv reads KEY=VALUE lines from r. Blank lines and lines whose first
// non-blank rune is '#' are skipped. The first '=' splits key from value, so
// values may themselves contain '='. Keys and values are trimmed; a repeated
// key keeps the last value. In strict mode a malformed line aborts the parse.
func parseEnv(path string, r io.Reader, strict bool) (map[string]string, error) {
	entries := make(map[string]string)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.Index(line, "=")
		if idx <= 0 {
			// No '=' at all, or an empty key.
			if strict {
				return nil, &ParseError{Path: path, Line: lineNo, Text: line}
			}
			logging.Warn("resolver", "skipping malformed line %d in %s: %q", lineNo, path, line)
			continue
		}

		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		if value == "" {
			// An empty value means the variable is unset, not that it
			// resolves to "".
			continue
		}
		entries[key] = unquote(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return entries, nil
}

// unquote strips exactly one pair of surrounding double quotes. Quotes are
// otherwise literal; no escape processing happens.
func unquote(value string) string {
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value[1 : len(value)-1]
	}
	return value
}

package siteerr

import (
	"errors"
	"fmt"
)

var (
	// ErrIO is returned when a source file cannot be read.
	ErrIO = errors.New("io error")

	// ErrThemeParse is returned when a theme descriptor is malformed.
	ErrThemeParse = errors.New("theme parse error")

	// ErrConfigSchema is returned when configuration input violates the schema.
	ErrConfigSchema = errors.New("config schema error")
)

// SchemaError describes a schema violation at a specific path.
type SchemaError struct {
	Path   string
	Reason string
}

// Schema creates a SchemaError for the given path.
func Schema(path, format string, args ...any) *SchemaError {
	return &SchemaError{
		Path:   path,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", ErrConfigSchema, e.Reason)
	}

	return fmt.Sprintf("%s: %s: %s", ErrConfigSchema, e.Path, e.Reason)
}

// Unwrap allows errors.Is(err, ErrConfigSchema).
func (e *SchemaError) Unwrap() error {
	return ErrConfigSchema
}

// Paths returns the paths of every SchemaError found in err, including errors
// combined with errors.Join.
func Paths(err error) []string {
	var paths []string

	collectPaths(err, &paths)

	return paths
}

func collectPaths(err error, paths *[]string) {
	switch typed := err.(type) { //nolint:errorlint // walks the chain by hand to reach every joined error.
	case nil:
		return
	case *SchemaError:
		*paths = append(*paths, typed.Path)
	case interface{ Unwrap() []error }:
		for _, inner := range typed.Unwrap() {
			collectPaths(inner, paths)
		}
	case interface{ Unwrap() error }:
		collectPaths(typed.Unwrap(), paths)
	}
}

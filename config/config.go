package config

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrFetch marks failures while reading raw configuration data.
	ErrFetch = errors.New("reading data error")

	// ErrParse marks failures while decoding configuration data.
	ErrParse = errors.New("parsing error")

	// ErrValidate marks failures reported by a Validator.
	ErrValidate = errors.New("validating error")
)

// Parser defines an interface for parsing configuration data into a target structure.
//
// The path parameter specifies a navigation path within the configuration data
// using colon (:) as the separator for nested keys. For example:
//   - "expressiveCode:styleOverrides" navigates to doc["expressiveCode"]["styleOverrides"]
//   - "" (empty path) means parse the entire document
//
// Parser implementations are responsible for path navigation internally.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that reads, parses, sets defaults, and validates configuration data.
// Errors wrap ErrFetch, ErrParse or ErrValidate so callers can tell the stages apart.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*T, error) {
		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetch, err)
		}

		err = parser.Parse(data, target, path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Debug("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrValidate, err)
			}
		}

		return target, nil
	}
}

// Load runs the Provider pipeline once with the given parser and fetcher.
func Load[T any](target *T, path string, parser Parser, fetcher DataFetcher) (*T, error) {
	return Provider(target, path)(parser, fetcher)
}

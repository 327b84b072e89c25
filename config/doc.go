// Package config provides the fetch, parse, default and validate pipeline used
// to read site files and theme descriptors.
//
// The package uses an interface-based design with four extension points:
//   - Parser: deserializes raw data into a struct, with path navigation support
//   - DataFetcher: retrieves raw data (file, in-memory, etc.)
//   - Validator: validates the struct after parsing
//   - Defaulter: applies default values before validation
//
// Each stage failure is wrapped with ErrFetch, ErrParse or ErrValidate so a
// caller can map it onto its own error taxonomy. The theme package, for
// instance, reports ErrFetch as an IO error and the other two as theme parse
// errors.
//
// # Path Navigation
//
// Paths use colon (:) as the separator:
//
//	"expressiveCode:styleOverrides" -> doc["expressiveCode"]["styleOverrides"]
//	""                              -> entire document
//
// # Example
//
//	desc, err := config.Load(&theme.Descriptor{}, "", jsoncparser.NewParser(), fetcher)
package config

// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml for YAML parsing with native
// PathString support for path navigation. Colon-separated paths
// (e.g., "expressiveCode:styleOverrides") are converted to YAML path format
// (e.g., "$.expressiveCode.styleOverrides") internally.
//
// Usage:
//
//	parser := yaml.NewParser(yaml.WithStrict())
//	var doc site.Document
//	err := parser.Parse(data, &doc, "")
//
// In strict mode keys without a matching struct field are rejected, which
// catches typos such as "sidbar" in site files.
package yaml

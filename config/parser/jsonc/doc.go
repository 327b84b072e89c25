// Package jsonc provides a JSONC parser implementation for the config package.
//
// JSONC is JSON extended with // line comments, /* block comments */ and
// trailing commas. VS Code colour themes are commonly authored this way. The
// input is normalized to plain JSON with github.com/tidwall/jsonc and then
// decoded with encoding/json.
//
// Paths use the same colon-separated form as the YAML parser:
//
//	parser := jsonc.NewParser()
//	var colors map[string]string
//	err := parser.Parse(data, &colors, "colors")
package jsonc

// Package nav resolves the declarative sidebar description of a site into
// an ordered tree of typed nodes.
//
// The raw description is literal nested data, as produced by decoding a
// YAML, TOML or JSON site file into generic values. Each entry is a map whose
// kind is decided by the marker keys it carries:
//
//	items / children   -> Group (children are resolved recursively)
//	autogenerate       -> AutogenGroup (autogenerate.directory is required)
//	link / target      -> Link
//
// Build resolves markers once. Downstream code switches on Node.Kind or on the
// concrete type and never looks at raw marker keys again. Entries with no
// marker, with markers of more than one kind, or with unknown keys are
// rejected with a siteerr.SchemaError naming the offending path, for example
// "sidebar[3].items[3].items[2]".
package nav

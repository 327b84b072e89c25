// Package siteerr defines the error taxonomy shared by the site configuration
// packages.
//
// Three sentinel categories exist and are checked with errors.Is:
//   - ErrIO: a theme or site file could not be read
//   - ErrThemeParse: theme content is malformed or misses a required field
//   - ErrConfigSchema: a navigation node or SiteConfig field is invalid
//
// SchemaError carries the path of the offending element (for example
// "sidebar[3].items[1]") and unwraps to ErrConfigSchema.
package siteerr

// Package cli implements the sitecfg command line: composing, validating,
// inspecting and serving site configurations.
//
// # Exit Codes
//
//	ExitOK      = 0  // Success
//	ExitGeneral = 1  // Usage and unclassified errors
//	ExitSchema  = 2  // Site file or sidebar violates the schema
//	ExitIO      = 3  // A site or theme file could not be read
//	ExitTheme   = 4  // A theme file is not a valid descriptor
package cli

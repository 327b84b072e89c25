// Package toml provides a TOML parser implementation for the config package,
// built on github.com/BurntSushi/toml.
//
// Path navigation decodes each level into toml.Primitive values, so only the
// selected section is ever decoded into the target.
package toml

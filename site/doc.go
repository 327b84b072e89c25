// Package site composes the validated, render-ready configuration of a
// documentation site.
//
// Compose assembles the outputs of the theme, nav and plugin packages with
// the scalar metadata of the site (title, description, social links, head
// tags, stylesheets) into a SiteConfig and enforces the cross-field
// invariants. It either returns a complete SiteConfig or fails; there is no
// partially valid result. A SiteConfig is immutable: accessors return copies,
// so a single value may be shared by any number of concurrent readers.
//
// Load does the whole job from a site file (YAML, TOML or JSONC) and Module
// exposes it to an fx application, where a composition failure aborts
// startup.
package site

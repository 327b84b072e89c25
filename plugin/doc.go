// Package plugin provides the code-block hooks used by the rendering pipeline.
//
// A Plugin exposes a single Transform over code-block metadata. The built-in
// language-class plugin tags a block with a normalized "language-<name>"
// class; aliases are resolved through the chroma lexer registry, so "js" and
// "javascript" produce the same class. Transform never alters the code text
// and is idempotent.
//
// Registry keeps plugins in registration order and ignores a second
// registration of the same name. Extension adapts a Registry to goldmark so
// fenced code blocks carry the attached metadata as node attributes.
package plugin

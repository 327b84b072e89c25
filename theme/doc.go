// Package theme loads the syntax-highlighting theme descriptors used for
// code blocks.
//
// Descriptors are VS Code colour themes (JSON with comments). A site needs
// exactly two of them: index 0 is the dark theme, the default rendering
// mode, and index 1 is the light theme. Loading is all-or-nothing: Load
// either returns a fully validated Descriptor or an error wrapping
// siteerr.ErrIO (unreadable file) or siteerr.ErrThemeParse (malformed
// content).
package theme

// Package metrics exposes Prometheus collectors for site composition and for
// the HTTP listener that serves the composed configuration.
package metrics

// Package middleware provides the HTTP middleware the configuration listener
// wraps its handler in: panic recovery, request IDs, access logging and gzip.
package middleware

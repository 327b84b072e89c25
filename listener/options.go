package listener

import "time"

// Option defines a function type for configuring an HTTP listener.
type Option func(*Config)

// WithAddress sets the address for the HTTP listener.
func WithAddress(addr string) Option {
	return func(cfg *Config) {
		cfg.Address = addr
	}
}

// WithTimeouts sets the read-header, write and idle timeouts. Zero values
// keep the defaults.
func WithTimeouts(readHeader, write, idle time.Duration) Option {
	return func(cfg *Config) {
		cfg.ReadHeaderTimeout = readHeader
		cfg.WriteTimeout = write
		cfg.IdleTimeout = idle
	}
}

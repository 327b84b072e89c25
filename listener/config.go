// Package listener provides an HTTP listener module for the Fx DI container.
package listener

import (
	"errors"
	"fmt"
	"net"
	"time"
)

// Defaults for the HTTP listener.
const (
	DefaultAddress           = ":8080"
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultWriteTimeout      = 30 * time.Second
	DefaultIdleTimeout       = 2 * time.Minute
)

// ErrEmptyAddress is returned when the address is empty.
var ErrEmptyAddress = errors.New("address must not be empty")

// ErrInvalidAddress is returned when the address is not a host:port pair.
var ErrInvalidAddress = errors.New("invalid address")

// ErrNegativeTimeout is returned when a timeout is below zero.
var ErrNegativeTimeout = errors.New("timeout must not be negative")

// ErrListenFailed is returned when the server fails to listen on the configured address.
var ErrListenFailed = errors.New("failed to listen")

// ErrShutdownFailed is returned when the server fails to shut down gracefully.
var ErrShutdownFailed = errors.New("shutdown failed")

// ErrEmptyName is returned when the listener name is empty.
var ErrEmptyName = errors.New("listener name must not be empty")

// ErrNilHandler is returned when a nil http.Handler is provided.
var ErrNilHandler = errors.New("handler must not be nil")

// Config holds the configuration for an HTTP listener. It can be loaded from
// a YAML section through config.Provider.
type Config struct {
	Address           string        `yaml:"address"`
	ReadHeaderTimeout time.Duration `yaml:"readHeaderTimeout"`
	WriteTimeout      time.Duration `yaml:"writeTimeout"`
	IdleTimeout       time.Duration `yaml:"idleTimeout"`
}

// SetDefaults fills unset fields and reports whether anything changed.
func (c *Config) SetDefaults() bool {
	changed := false

	if c.Address == "" {
		c.Address = DefaultAddress
		changed = true
	}

	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = DefaultReadHeaderTimeout
		changed = true
	}

	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
		changed = true
	}

	if c.IdleTimeout == 0 {
		c.IdleTimeout = DefaultIdleTimeout
		changed = true
	}

	return changed
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Address == "" {
		return ErrEmptyAddress
	}

	if _, _, err := net.SplitHostPort(c.Address); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidAddress, c.Address, err)
	}

	for name, timeout := range map[string]time.Duration{
		"readHeaderTimeout": c.ReadHeaderTimeout,
		"writeTimeout":      c.WriteTimeout,
		"idleTimeout":       c.IdleTimeout,
	} {
		if timeout < 0 {
			return fmt.Errorf("%s: %w", name, ErrNegativeTimeout)
		}
	}

	return nil
}

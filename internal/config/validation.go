package config

import (
	"errors"
	"fmt"
)

// ErrValidation is the base error for configuration validation failures.
var ErrValidation = errors.New("invalid configuration")

// Universes lists the supported universe names.
var Universes = []string{"lattice", "residue"}

// Validate checks the configuration for values the rest of the program
// cannot work with. It should be called after loading to fail fast at
// startup.
func (c *Config) Validate() error {
	if !validUniverse(c.Search.Universe) {
		return fmt.Errorf("%w: unknown universe %q (want one of %v)",
			ErrValidation, c.Search.Universe, Universes)
	}
	if c.Search.Size < 0 {
		return fmt.Errorf("%w: search size must be non-negative, got %d",
			ErrValidation, c.Search.Size)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrValidation, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrValidation, c.Logging.Format)
	}
	return nil
}

func validUniverse(name string) bool {
	for _, u := range Universes {
		if u == name {
			return true
		}
	}
	return false
}

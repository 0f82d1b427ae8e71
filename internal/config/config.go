// Package config provides configuration structures and loading for mincover.
package config

// Config represents the complete application configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search" mapstructure:"search"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// SearchConfig represents the enumeration settings.
type SearchConfig struct {
	Universe string `yaml:"universe" mapstructure:"universe"` // lattice or residue
	Size     int    `yaml:"size" mapstructure:"size"`         // covering size n
	Verbose  bool   `yaml:"verbose" mapstructure:"verbose"`   // per-covering notifications
	Pruning  bool   `yaml:"pruning" mapstructure:"pruning"`   // maximal-component prune
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Universe: "lattice",
			Size:     3,
			Verbose:  false,
			Pruning:  true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(universe string, size int, logLevel, logFormat string, verbose, noPrune bool) {
	if universe != "" {
		c.Search.Universe = universe
	}
	if size > 0 {
		c.Search.Size = size
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if verbose {
		c.Search.Verbose = true
	}
	if noPrune {
		c.Search.Pruning = false
	}
}

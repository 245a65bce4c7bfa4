package config

import (
	"fmt"

	"envseek/internal/resolver"
)

// Config is the top-level configuration structure for envseek.
type Config struct {
	// EnvFile pins the env file to an explicit path. Empty means locate it
	// next to the nearest go.mod.
	EnvFile string `yaml:"envFile,omitempty" env:"FILE"`

	// Order is the fallback chain tried by the "all" selector. Entries are
	// backend names; "all" itself is not allowed.
	Order []string `yaml:"order,omitempty" env:"ORDER" envSeparator:","`

	// StrictParse aborts env file parsing on the first malformed line
	// instead of skipping it.
	StrictParse bool `yaml:"strictParse,omitempty" env:"STRICT"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel,omitempty" env:"LOG_LEVEL"`
}

// Validate checks that every entry of Order names a single backend.
func (c Config) Validate() error {
	for _, entry := range c.Order {
		st, err := resolver.ParseSearchType(entry)
		if err != nil {
			return fmt.Errorf("invalid order entry: %w", err)
		}
		if st == resolver.All {
			return fmt.Errorf("invalid order entry %q: order must name single backends", entry)
		}
	}
	return nil
}

// SearchOrder converts Order to resolver selectors. Call Validate first;
// unparseable entries are skipped here.
func (c Config) SearchOrder() []resolver.SearchType {
	order := make([]resolver.SearchType, 0, len(c.Order))
	for _, entry := range c.Order {
		st, err := resolver.ParseSearchType(entry)
		if err != nil || st == resolver.All {
			continue
		}
		order = append(order, st)
	}
	return order
}

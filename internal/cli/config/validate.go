package config

import (
	"fmt"
	"slices"

	"github.com/leapstack-labs/sqldoc/pkg/dialect"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Dialect == "" {
		return fmt.Errorf("dialect is required")
	}
	if _, ok := dialect.Get(c.Dialect); !ok {
		return fmt.Errorf("unknown dialect %q (known: %v)", c.Dialect, dialect.List())
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("unknown output format %q (known: %v)", c.Format, Formats)
	}
	if c.JunctionCoverage < 0 || c.JunctionCoverage > 1 {
		return fmt.Errorf("junction_coverage must be in [0, 1], got %g", c.JunctionCoverage)
	}
	return nil
}

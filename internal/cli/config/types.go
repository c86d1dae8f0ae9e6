// Package config provides configuration management for the sqldoc CLI.
//
// Configuration is layered: defaults, then an optional sqldoc.yaml file,
// then SQLDOC_-prefixed environment variables, then command-line flags.
package config

// Default configuration values.
const (
	DefaultDialect   = "ansi"
	DefaultOutputDir = "docs"
	DefaultTitle     = "Database Schema"
	DefaultFormat    = "markdown"
)

// Formats lists the supported output formats.
var Formats = []string{"markdown", "mermaid", "json", "all"}

// Config holds all CLI configuration options.
type Config struct {
	Dialect          string   `koanf:"dialect"`
	Inputs           []string `koanf:"inputs"`
	OutputDir        string   `koanf:"output_dir"`
	Title            string   `koanf:"title"`
	Format           string   `koanf:"format"`
	Diagram          bool     `koanf:"diagram"`
	Indexes          bool     `koanf:"indexes"`
	Strict           bool     `koanf:"strict"`
	JunctionCoverage float64  `koanf:"junction_coverage"`
	JunctionNames    bool     `koanf:"junction_names"`
	Verbose          bool     `koanf:"verbose"`
}

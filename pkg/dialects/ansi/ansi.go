// Package ansi provides the standard (ANSI) SQL dialect definition.
package ansi

import (
	"github.com/leapstack-labs/sqldoc/pkg/dialect"
)

func init() {
	dialect.Register(ANSI, "standard", "sql")
}

// ANSI is the standard SQL dialect. Double quotes delimit identifiers;
// backticks are accepted for compatibility with common schema dumps.
var ANSI = &dialect.Dialect{
	Name:       "ansi",
	QuoteChars: []byte{'"', '`'},
	IdentQuote: '"',
	Fold:       dialect.FoldLower,
}

// Package sqlite provides the SQLite dialect definition.
package sqlite

import (
	"github.com/leapstack-labs/sqldoc/pkg/dialect"
)

func init() {
	dialect.Register(SQLite, "sqlite3")
}

// SQLite is the SQLite dialect. SQLite accepts double quotes, backticks,
// and SQL Server style brackets for identifiers.
var SQLite = &dialect.Dialect{
	Name:       "sqlite",
	QuoteChars: []byte{'"', '`', '['},
	IdentQuote: '"',
	Fold:       dialect.FoldLower,
	TypeAliases: map[string]string{
		"REAL": "DOUBLE",
	},
	SupportsAutoIncrement: true,
}

// Package postgres provides the PostgreSQL dialect definition.
// Pure data, no driver dependencies.
package postgres

import (
	"github.com/leapstack-labs/sqldoc/pkg/dialect"
)

func init() {
	dialect.Register(Postgres, "postgresql", "pg")
}

// Postgres is the PostgreSQL dialect. SERIAL pseudo-types alias to their
// integer base type and imply auto-increment.
var Postgres = &dialect.Dialect{
	Name:       "postgres",
	QuoteChars: []byte{'"', '`'},
	IdentQuote: '"',
	Fold:       dialect.FoldLower,
	TypeAliases: map[string]string{
		"SERIAL":      "INTEGER",
		"BIGSERIAL":   "BIGINT",
		"SMALLSERIAL": "SMALLINT",
		"INT4":        "INTEGER",
		"INT8":        "BIGINT",
		"INT2":        "SMALLINT",
		"FLOAT8":      "DOUBLE",
		"FLOAT4":      "FLOAT",
		"NUMERIC":     "DECIMAL",
		"BYTEA":       "BLOB",
		"TIMESTAMPTZ": "TIMESTAMP",
	},
	SerialTypes: map[string]bool{
		"SERIAL":      true,
		"BIGSERIAL":   true,
		"SMALLSERIAL": true,
	},
	SupportsAutoIncrement: true,
}

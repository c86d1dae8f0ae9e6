// Package oracle provides the Oracle dialect definition.
package oracle

import (
	"github.com/leapstack-labs/sqldoc/pkg/dialect"
)

func init() {
	dialect.Register(Oracle)
}

// Oracle is the Oracle dialect. Unquoted identifiers fold to uppercase.
var Oracle = &dialect.Dialect{
	Name:       "oracle",
	QuoteChars: []byte{'"'},
	IdentQuote: '"',
	Fold:       dialect.FoldUpper,
	TypeAliases: map[string]string{
		"NUMBER":        "DECIMAL",
		"VARCHAR2":      "VARCHAR",
		"NVARCHAR2":     "VARCHAR",
		"CLOB":          "TEXT",
		"NCLOB":         "TEXT",
		"BINARY_FLOAT":  "FLOAT",
		"BINARY_DOUBLE": "DOUBLE",
		"RAW":           "BLOB",
	},
}

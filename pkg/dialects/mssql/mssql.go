// Package mssql provides the SQL Server dialect definition.
package mssql

import (
	"github.com/leapstack-labs/sqldoc/pkg/dialect"
	"github.com/leapstack-labs/sqldoc/pkg/token"
)

func init() {
	dialect.Register(MSSQL, "sqlserver")
}

// MSSQL is the SQL Server dialect. Brackets delimit identifiers and
// IDENTITY is the auto-increment keyword.
var MSSQL = &dialect.Dialect{
	Name:       "mssql",
	QuoteChars: []byte{'[', '"'},
	IdentQuote: '[',
	Fold:       dialect.FoldNone,
	Keywords: map[string]token.TokenType{
		"identity": token.AUTO_INCREMENT,
	},
	TypeAliases: map[string]string{
		"UNIQUEIDENTIFIER": "UUID",
		"BIT":              "BOOLEAN",
		"NVARCHAR":         "VARCHAR",
		"NCHAR":            "CHAR",
		"NTEXT":            "TEXT",
		"DATETIME2":        "DATETIME",
		"MONEY":            "DECIMAL",
		"IMAGE":            "BLOB",
	},
	SupportsAutoIncrement: true,
}

// Package mysql provides the MySQL/MariaDB dialect definition.
package mysql

import (
	"github.com/leapstack-labs/sqldoc/pkg/dialect"
)

func init() {
	dialect.Register(MySQL, "mariadb")
}

// MySQL is the MySQL dialect. Backticks are the native identifier quote;
// double quotes are accepted as well since most dumps enable ANSI_QUOTES.
var MySQL = &dialect.Dialect{
	Name:       "mysql",
	QuoteChars: []byte{'`', '"'},
	IdentQuote: '`',
	Fold:       dialect.FoldNone,
	TypeAliases: map[string]string{
		"MEDIUMINT":  "INTEGER",
		"MEDIUMTEXT": "TEXT",
		"LONGTEXT":   "TEXT",
		"TINYTEXT":   "TEXT",
		"LONGBLOB":   "BLOB",
		"MEDIUMBLOB": "BLOB",
		"TINYBLOB":   "BLOB",
	},
	SupportsAutoIncrement: true,
}

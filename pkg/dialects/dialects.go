// Package dialects registers all builtin SQL dialects.
// Import for side effects:
//
//	import _ "github.com/leapstack-labs/sqldoc/pkg/dialects"
package dialects

import (
	_ "github.com/leapstack-labs/sqldoc/pkg/dialects/ansi"
	_ "github.com/leapstack-labs/sqldoc/pkg/dialects/mssql"
	_ "github.com/leapstack-labs/sqldoc/pkg/dialects/mysql"
	_ "github.com/leapstack-labs/sqldoc/pkg/dialects/oracle"
	_ "github.com/leapstack-labs/sqldoc/pkg/dialects/postgres"
	_ "github.com/leapstack-labs/sqldoc/pkg/dialects/sqlite"
)

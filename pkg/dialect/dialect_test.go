package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqldoc/pkg/dialect"
	"github.com/leapstack-labs/sqldoc/pkg/dialects/mssql"
	"github.com/leapstack-labs/sqldoc/pkg/dialects/mysql"
	"github.com/leapstack-labs/sqldoc/pkg/dialects/oracle"
	"github.com/leapstack-labs/sqldoc/pkg/dialects/postgres"
	"github.com/leapstack-labs/sqldoc/pkg/token"

	// Import dialect packages to register them
	_ "github.com/leapstack-labs/sqldoc/pkg/dialects/ansi"
	_ "github.com/leapstack-labs/sqldoc/pkg/dialects/sqlite"
)

func TestRegistryGet(t *testing.T) {
	tests := []struct {
		lookup string
		want   string
	}{
		{"postgres", "postgres"},
		{"postgresql", "postgres"},
		{"pg", "postgres"},
		{"POSTGRES", "postgres"},
		{"mysql", "mysql"},
		{"mariadb", "mysql"},
		{"sqlite3", "sqlite"},
		{"sqlserver", "mssql"},
		{"standard", "ansi"},
	}

	for _, tt := range tests {
		t.Run(tt.lookup, func(t *testing.T) {
			d, ok := dialect.Get(tt.lookup)
			require.True(t, ok)
			assert.Equal(t, tt.want, d.Name)
		})
	}

	_, ok := dialect.Get("dbase")
	assert.False(t, ok)
}

func TestRegistryList(t *testing.T) {
	names := dialect.List()
	assert.Contains(t, names, "ansi")
	assert.Contains(t, names, "postgres")
	assert.Contains(t, names, "mysql")
	assert.Contains(t, names, "sqlite")
	assert.Contains(t, names, "mssql")
	assert.Contains(t, names, "oracle")
	// Canonical names only, no aliases.
	assert.NotContains(t, names, "pg")
	assert.NotContains(t, names, "mariadb")
}

func TestRegistryAliases(t *testing.T) {
	aliases := dialect.Aliases("postgres")
	assert.Contains(t, aliases, "pg")
	assert.Contains(t, aliases, "postgresql")
	assert.NotContains(t, aliases, "postgres")
}

func TestNormalizeIdent(t *testing.T) {
	assert.Equal(t, "users", postgres.Postgres.NormalizeIdent("Users", false))
	assert.Equal(t, "Users", postgres.Postgres.NormalizeIdent("Users", true))
	assert.Equal(t, "USERS", oracle.Oracle.NormalizeIdent("Users", false))
	assert.Equal(t, "Users", mysql.MySQL.NormalizeIdent("Users", false))
}

func TestQuoteChars(t *testing.T) {
	assert.True(t, postgres.Postgres.IsQuoteChar('"'))
	assert.False(t, postgres.Postgres.IsQuoteChar('['))
	assert.True(t, mysql.MySQL.IsQuoteChar('`'))
	assert.True(t, mssql.MSSQL.IsQuoteChar('['))
	assert.Equal(t, byte(']'), mssql.MSSQL.CloseQuote('['))
	assert.Equal(t, byte('"'), postgres.Postgres.CloseQuote('"'))
}

func TestResolveTypeName(t *testing.T) {
	canonical, serial := postgres.Postgres.ResolveTypeName("serial")
	assert.True(t, serial)
	assert.Equal(t, "INTEGER", canonical)

	canonical, serial = postgres.Postgres.ResolveTypeName("BIGSERIAL")
	assert.True(t, serial)
	assert.Equal(t, "BIGINT", canonical)

	canonical, serial = postgres.Postgres.ResolveTypeName("varchar")
	assert.False(t, serial)
	assert.Equal(t, "VARCHAR", canonical)

	canonical, _ = oracle.Oracle.ResolveTypeName("VARCHAR2")
	assert.Equal(t, "VARCHAR", canonical)

	canonical, _ = oracle.Oracle.ResolveTypeName("NUMBER")
	assert.Equal(t, "DECIMAL", canonical)
}

func TestDialectKeywords(t *testing.T) {
	tok, ok := mssql.MSSQL.LookupKeyword("identity")
	require.True(t, ok)
	assert.Equal(t, token.AUTO_INCREMENT, tok)

	_, ok = postgres.Postgres.LookupKeyword("identity")
	assert.False(t, ok)
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"order"`, postgres.Postgres.QuoteIdent("order"))
	assert.Equal(t, "`order`", mysql.MySQL.QuoteIdent("order"))
	assert.Equal(t, `"say ""hi"""`, postgres.Postgres.QuoteIdent(`say "hi"`))
}

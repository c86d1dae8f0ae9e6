package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqldoc/pkg/ast"
	"github.com/leapstack-labs/sqldoc/pkg/dialect"
	"github.com/leapstack-labs/sqldoc/pkg/dialects/ansi"
	"github.com/leapstack-labs/sqldoc/pkg/dialects/mssql"
	"github.com/leapstack-labs/sqldoc/pkg/dialects/postgres"
	"github.com/leapstack-labs/sqldoc/pkg/parser"
)

// parseOne parses a single statement and fails the test otherwise.
func parseOne(t *testing.T, sql string, d *dialect.Dialect) ast.Statement {
	t.Helper()
	stmts, err := parser.Parse(sql, d)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	return stmts[0]
}

// ---------- CREATE TABLE Tests ----------

func TestParseCreateTable(t *testing.T) {
	sql := `CREATE TABLE users (
		id INT PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		name VARCHAR(100),
		active BOOLEAN DEFAULT TRUE,
		balance DECIMAL(10, 2) DEFAULT 0
	)`

	stmt, ok := parseOne(t, sql, ansi.ANSI).(*ast.CreateTableStmt)
	require.True(t, ok)
	assert.Equal(t, "users", stmt.Name.Object())
	assert.False(t, stmt.IfNotExists)
	require.Len(t, stmt.Columns, 5)

	id := stmt.Columns[0]
	assert.Equal(t, "id", id.Name)
	assert.Equal(t, ast.IntegerType{Size: 32}, id.Type)
	assert.True(t, id.IsPrimaryKey())
	assert.False(t, id.IsNullable())

	email := stmt.Columns[1]
	assert.Equal(t, ast.VarcharType{Length: 255}, email.Type)
	assert.False(t, email.IsNullable())
	assert.Contains(t, email.Constraints, ast.Unique{})

	name := stmt.Columns[2]
	assert.True(t, name.IsNullable())

	active := stmt.Columns[3]
	assert.Contains(t, active.Constraints, ast.DefaultValue{Value: "TRUE"})

	balance := stmt.Columns[4]
	assert.Equal(t, ast.DecimalType{Precision: 10, Scale: 2}, balance.Type)
	assert.Contains(t, balance.Constraints, ast.DefaultValue{Value: "0"})
}

func TestParseCreateTableIfNotExists(t *testing.T) {
	stmt, ok := parseOne(t, "CREATE TABLE IF NOT EXISTS t (id INT)", ansi.ANSI).(*ast.CreateTableStmt)
	require.True(t, ok)
	assert.True(t, stmt.IfNotExists)
	assert.Equal(t, "t", stmt.Name.Object())
}

func TestParseCreateTableSchemaQualified(t *testing.T) {
	stmt, ok := parseOne(t, "CREATE TABLE public.users (id INT)", postgres.Postgres).(*ast.CreateTableStmt)
	require.True(t, ok)
	assert.Equal(t, "public", stmt.Name.Schema())
	assert.Equal(t, "users", stmt.Name.Object())
}

func TestParseTableConstraints(t *testing.T) {
	sql := `CREATE TABLE order_items (
		order_id INT,
		product_id INT,
		qty INT NOT NULL,
		PRIMARY KEY (order_id, product_id),
		CONSTRAINT fk_order FOREIGN KEY (order_id) REFERENCES orders (id),
		FOREIGN KEY (product_id) REFERENCES products (id),
		UNIQUE (order_id, product_id),
		CHECK (qty > 0)
	)`

	stmt, ok := parseOne(t, sql, ansi.ANSI).(*ast.CreateTableStmt)
	require.True(t, ok)
	require.Len(t, stmt.Constraints, 5)

	pk, ok := stmt.Constraints[0].(ast.PrimaryKeyConstraint)
	require.True(t, ok)
	assert.Equal(t, []string{"order_id", "product_id"}, pk.Columns)

	fk, ok := stmt.Constraints[1].(ast.ForeignKeyConstraint)
	require.True(t, ok)
	assert.Equal(t, "fk_order", fk.Name)
	assert.Equal(t, []string{"order_id"}, fk.Columns)
	assert.Equal(t, "orders", fk.RefTable)
	assert.Equal(t, []string{"id"}, fk.RefColumns)

	fk2, ok := stmt.Constraints[2].(ast.ForeignKeyConstraint)
	require.True(t, ok)
	assert.Empty(t, fk2.Name)

	uq, ok := stmt.Constraints[3].(ast.UniqueConstraint)
	require.True(t, ok)
	assert.Equal(t, []string{"order_id", "product_id"}, uq.Columns)

	_, ok = stmt.Constraints[4].(ast.CheckConstraint)
	assert.True(t, ok)
}

func TestParseColumnReferences(t *testing.T) {
	sql := "CREATE TABLE posts (id INT PRIMARY KEY, user_id INT REFERENCES users(id))"
	stmt, ok := parseOne(t, sql, ansi.ANSI).(*ast.CreateTableStmt)
	require.True(t, ok)

	fk, ok := stmt.Columns[1].ForeignKey()
	require.True(t, ok)
	assert.Equal(t, "users", fk.Table)
	assert.Equal(t, "id", fk.Column)
}

func TestParseSerialColumn(t *testing.T) {
	sql := "CREATE TABLE users (id SERIAL PRIMARY KEY, name TEXT)"
	stmt, ok := parseOne(t, sql, postgres.Postgres).(*ast.CreateTableStmt)
	require.True(t, ok)

	id := stmt.Columns[0]
	assert.Equal(t, ast.IntegerType{Size: 32}, id.Type)
	assert.Contains(t, id.Constraints, ast.AutoIncrement{})
	assert.False(t, id.IsNullable())
	assert.True(t, id.IsPrimaryKey())
}

func TestParseIdentityColumn(t *testing.T) {
	sql := "CREATE TABLE users (id INT IDENTITY(1, 1) PRIMARY KEY)"
	stmt, ok := parseOne(t, sql, mssql.MSSQL).(*ast.CreateTableStmt)
	require.True(t, ok)
	assert.Contains(t, stmt.Columns[0].Constraints, ast.AutoIncrement{})
}

func TestParseDefaultValues(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{"string", "CREATE TABLE t (c TEXT DEFAULT 'guest')", "'guest'"},
		{"int", "CREATE TABLE t (c INT DEFAULT 42)", "42"},
		{"negative", "CREATE TABLE t (c INT DEFAULT -1)", "-1"},
		{"float", "CREATE TABLE t (c FLOAT DEFAULT 2.5)", "2.5"},
		{"true", "CREATE TABLE t (c BOOLEAN DEFAULT true)", "TRUE"},
		{"null", "CREATE TABLE t (c TEXT DEFAULT NULL)", "NULL"},
		{"function", "CREATE TABLE t (c TIMESTAMP DEFAULT CURRENT_TIMESTAMP)", "CURRENT_TIMESTAMP"},
		{"function call", "CREATE TABLE t (c TIMESTAMP DEFAULT now())", "NOW()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, ok := parseOne(t, tt.sql, ansi.ANSI).(*ast.CreateTableStmt)
			require.True(t, ok)
			assert.Contains(t, stmt.Columns[0].Constraints, ast.DefaultValue{Value: tt.want})
		})
	}
}

func TestParseDataTypes(t *testing.T) {
	tests := []struct {
		typeSQL string
		want    ast.DataType
	}{
		{"INT", ast.IntegerType{Size: 32}},
		{"INTEGER", ast.IntegerType{Size: 32}},
		{"INT(11)", ast.IntegerType{Size: 11}},
		{"INT UNSIGNED", ast.IntegerType{Size: 32, Unsigned: true}},
		{"BIGINT", ast.BigIntType{}},
		{"SMALLINT", ast.SmallIntType{}},
		{"TINYINT UNSIGNED", ast.TinyIntType{Unsigned: true}},
		{"VARCHAR(255)", ast.VarcharType{Length: 255}},
		{"CHAR(2)", ast.CharType{Length: 2}},
		{"TEXT", ast.TextType{}},
		{"BOOLEAN", ast.BooleanType{}},
		{"FLOAT", ast.FloatType{}},
		{"DOUBLE", ast.DoubleType{}},
		{"DOUBLE PRECISION", ast.DoubleType{}},
		{"DECIMAL(10, 2)", ast.DecimalType{Precision: 10, Scale: 2}},
		{"NUMERIC(8)", ast.DecimalType{Precision: 8}},
		{"DATE", ast.DateType{}},
		{"TIMESTAMP", ast.TimestampType{}},
		{"JSON", ast.JSONType{}},
		{"UUID", ast.UUIDType{}},
		{"BLOB", ast.BlobType{}},
		{"GEOGRAPHY", ast.CustomType{Name: "GEOGRAPHY"}},
	}

	for _, tt := range tests {
		t.Run(tt.typeSQL, func(t *testing.T) {
			stmt, ok := parseOne(t, "CREATE TABLE t (c "+tt.typeSQL+")", ansi.ANSI).(*ast.CreateTableStmt)
			require.True(t, ok)
			assert.Equal(t, tt.want, stmt.Columns[0].Type)
		})
	}
}

func TestIdentifierFolding(t *testing.T) {
	// Unquoted identifiers fold per dialect; quoted ones are verbatim.
	stmt, ok := parseOne(t, `CREATE TABLE Users ("Full Name" TEXT, Email TEXT)`, postgres.Postgres).(*ast.CreateTableStmt)
	require.True(t, ok)
	assert.Equal(t, "users", stmt.Name.Object())
	assert.Equal(t, "Full Name", stmt.Columns[0].Name)
	assert.Equal(t, "email", stmt.Columns[1].Name)
}

// ---------- CREATE INDEX / ALTER / DROP Tests ----------

func TestParseCreateIndex(t *testing.T) {
	stmt, ok := parseOne(t, "CREATE INDEX idx_email ON users (email)", ansi.ANSI).(*ast.CreateIndexStmt)
	require.True(t, ok)
	assert.Equal(t, "idx_email", stmt.Name)
	assert.Equal(t, "users", stmt.Table.Object())
	assert.Equal(t, []string{"email"}, stmt.Columns)
	assert.False(t, stmt.Unique)

	stmt, ok = parseOne(t, "CREATE UNIQUE INDEX idx_u ON users (email, name)", ansi.ANSI).(*ast.CreateIndexStmt)
	require.True(t, ok)
	assert.True(t, stmt.Unique)
	assert.Equal(t, []string{"email", "name"}, stmt.Columns)
}

func TestParseAlterTable(t *testing.T) {
	stmt, ok := parseOne(t, "ALTER TABLE users ADD COLUMN age INT NOT NULL", ansi.ANSI).(*ast.AlterTableStmt)
	require.True(t, ok)
	add, ok := stmt.Action.(ast.AddColumn)
	require.True(t, ok)
	assert.Equal(t, "age", add.Column.Name)
	assert.False(t, add.Column.IsNullable())

	stmt, ok = parseOne(t, "ALTER TABLE users DROP COLUMN age", ansi.ANSI).(*ast.AlterTableStmt)
	require.True(t, ok)
	drop, ok := stmt.Action.(ast.DropColumn)
	require.True(t, ok)
	assert.Equal(t, "age", drop.Name)

	stmt, ok = parseOne(t, "ALTER TABLE users RENAME TO members", ansi.ANSI).(*ast.AlterTableStmt)
	require.True(t, ok)
	ren, ok := stmt.Action.(ast.RenameTo)
	require.True(t, ok)
	assert.Equal(t, "members", ren.NewName.Object())
}

func TestParseDropTable(t *testing.T) {
	stmt, ok := parseOne(t, "DROP TABLE IF EXISTS users", ansi.ANSI).(*ast.DropTableStmt)
	require.True(t, ok)
	assert.True(t, stmt.IfExists)
	assert.Equal(t, "users", stmt.Name.Object())
}

// ---------- Script Tests ----------

func TestParseMultipleStatements(t *testing.T) {
	sql := `CREATE TABLE a (id INT);
CREATE TABLE b (id INT);
;
CREATE TABLE c (id INT)`

	stmts, err := parser.Parse(sql, ansi.ANSI)
	require.NoError(t, err)
	assert.Len(t, stmts, 3)
}

// ---------- Error Tests ----------

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{"unknown statement", "GRANT ALL ON users"},
		{"unsupported create", "CREATE VIEW v AS SELECT 1"},
		{"missing paren", "CREATE TABLE t (id INT"},
		{"unknown column constraint", "CREATE TABLE t (id INT WIBBLE)"},
		{"missing semicolon", "CREATE TABLE a (id INT) CREATE TABLE b (id INT)"},
		{"dangling constraint name", "CREATE TABLE t (id INT, CONSTRAINT c1)"},
		{"bad data type args", "CREATE TABLE t (c VARCHAR(abc))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.sql, ansi.ANSI)
			require.Error(t, err)

			var parseErr *parser.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.True(t, parseErr.Pos.IsValid(), "errors carry a position")
		})
	}
}

func TestErrorPositionAfterQuotedToken(t *testing.T) {
	// An error at end of input points just past the last token's source
	// text. The quotes around café are part of that text even though
	// the token's literal drops them, and é is one column, not two.
	_, err := parser.Parse(`ALTER TABLE "café"`, ansi.ANSI)
	require.Error(t, err)

	var parseErr *parser.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 1, parseErr.Pos.Line)
	assert.Equal(t, 19, parseErr.Pos.Column)
}

func TestParseFailFast(t *testing.T) {
	// The first syntax error aborts the call; later statements are not
	// attempted and no partial result is returned.
	sql := "CREATE TABLE broken (; CREATE TABLE fine (id INT);"
	stmts, err := parser.Parse(sql, ansi.ANSI)
	require.Error(t, err)
	assert.Nil(t, stmts)
}

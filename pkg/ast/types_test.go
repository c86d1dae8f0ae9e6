package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqldoc/pkg/ast"
)

func TestQualifiedNameRoundTrip(t *testing.T) {
	tests := []struct {
		text  string
		parts int
	}{
		{"users", 1},
		{"public.users", 2},
		{"db.public.users", 3},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			qn, err := ast.ParseQualifiedName(tt.text)
			require.NoError(t, err)
			assert.Len(t, qn.Parts, tt.parts)
			assert.Equal(t, tt.text, qn.String())

			again, err := ast.ParseQualifiedName(qn.String())
			require.NoError(t, err)
			assert.True(t, qn.Equal(again))
		})
	}
}

func TestQualifiedNameEmptySegment(t *testing.T) {
	for _, text := range []string{"", ".users", "public.", "public..users"} {
		t.Run(text, func(t *testing.T) {
			_, err := ast.ParseQualifiedName(text)
			assert.Error(t, err)
		})
	}
}

func TestQualifiedNameParts(t *testing.T) {
	qn := ast.Name("public", "users")
	assert.Equal(t, "users", qn.Object())
	assert.Equal(t, "public", qn.Schema())

	bare := ast.Name("users")
	assert.Equal(t, "users", bare.Object())
	assert.Empty(t, bare.Schema())
}

func TestColumnMetadataDefaults(t *testing.T) {
	col := ast.NewColumnMetadata("email", "VARCHAR(255)")
	assert.True(t, col.Nullable, "columns are nullable until marked otherwise")
	assert.Equal(t, "email", col.Name)
	assert.Equal(t, "VARCHAR(255)", col.DataType)
}

func TestColumnDefinitionNullability(t *testing.T) {
	tests := []struct {
		name        string
		constraints []ast.ColumnConstraint
		nullable    bool
	}{
		{"no constraints", nil, true},
		{"not null", []ast.ColumnConstraint{ast.NotNull{}}, false},
		{"primary key", []ast.ColumnConstraint{ast.PrimaryKey{}}, false},
		{"explicit null", []ast.ColumnConstraint{ast.Null{}}, true},
		{"unique only", []ast.ColumnConstraint{ast.Unique{}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := ast.ColumnDefinition{
				Name:        "c",
				Type:        ast.IntegerType{Size: 32},
				Constraints: tt.constraints,
			}
			assert.Equal(t, tt.nullable, col.IsNullable())
		})
	}
}

func TestColumnDefinitionForeignKey(t *testing.T) {
	col := ast.ColumnDefinition{
		Name: "user_id",
		Type: ast.IntegerType{Size: 32},
		Constraints: []ast.ColumnConstraint{
			ast.NotNull{},
			ast.ForeignKeyRef{Table: "users", Column: "id"},
		},
	}
	fk, ok := col.ForeignKey()
	require.True(t, ok)
	assert.Equal(t, "users", fk.Table)
	assert.Equal(t, "id", fk.Column)

	plain := ast.ColumnDefinition{Name: "id", Type: ast.IntegerType{Size: 32}}
	_, ok = plain.ForeignKey()
	assert.False(t, ok)
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dt   ast.DataType
		want string
	}{
		{ast.IntegerType{Size: 32}, "INTEGER"},
		{ast.IntegerType{Size: 32, Unsigned: true}, "INTEGER UNSIGNED"},
		{ast.IntegerType{Size: 11}, "INTEGER(11)"},
		{ast.BigIntType{}, "BIGINT"},
		{ast.VarcharType{Length: 255}, "VARCHAR(255)"},
		{ast.CharType{Length: 2}, "CHAR(2)"},
		{ast.DecimalType{Precision: 10, Scale: 2}, "DECIMAL(10,2)"},
		{ast.BooleanType{}, "BOOLEAN"},
		{ast.TimestampType{}, "TIMESTAMP"},
		{ast.CustomType{Name: "GEOGRAPHY"}, "GEOGRAPHY"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dt.String())
		})
	}
}

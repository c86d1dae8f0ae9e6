package token_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqldoc/pkg/token"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident string
		want  token.TokenType
	}{
		{"select", token.SELECT},
		{"from", token.FROM},
		{"create", token.CREATE},
		{"table", token.TABLE},
		{"auto_increment", token.AUTO_INCREMENT},
		{"autoincrement", token.AUTO_INCREMENT},
		{"true", token.BOOL},
		{"false", token.BOOL},
		{"null", token.NULL},
		{"users", token.IDENT},
		{"user_id", token.IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			assert.Equal(t, tt.want, token.LookupIdent(tt.ident))
		})
	}
}

func TestKeywordsAllResolve(t *testing.T) {
	kws := token.Keywords()
	require.NotEmpty(t, kws)

	for _, kw := range kws {
		got := token.LookupIdent(kw)
		assert.NotEqual(t, token.IDENT, got, "keyword %q should not lex as a plain identifier", kw)

		// The lookup contract is lowercase in; different spellings of the
		// same word map to one type.
		assert.Equal(t, got, token.LookupIdent(strings.ToLower(kw)))
	}
}

func TestTypeClassification(t *testing.T) {
	assert.True(t, token.IsKeyword(token.SELECT))
	assert.True(t, token.IsKeyword(token.WITH))
	assert.False(t, token.IsKeyword(token.IDENT))
	assert.False(t, token.IsKeyword(token.INT))

	assert.True(t, token.IsLiteral(token.INT))
	assert.True(t, token.IsLiteral(token.FLOAT))
	assert.True(t, token.IsLiteral(token.STRING))
	assert.True(t, token.IsLiteral(token.BOOL))
	assert.True(t, token.IsLiteral(token.NULL))
	assert.False(t, token.IsLiteral(token.IDENT))

	assert.True(t, token.IsOperator(token.PLUS))
	assert.True(t, token.IsOperator(token.SHR))
	assert.False(t, token.IsOperator(token.LPAREN))
}

func TestPosition(t *testing.T) {
	assert.False(t, token.Position{}.IsValid())
	assert.True(t, token.Position{Line: 1, Column: 1}.IsValid())

	span := token.Span{
		Start: token.Position{Line: 1, Column: 1, Offset: 0},
		End:   token.Position{Line: 1, Column: 7, Offset: 6},
	}
	assert.True(t, span.IsValid())
	assert.True(t, span.Contains(2))
	assert.False(t, span.Contains(10))
}

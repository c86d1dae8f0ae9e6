// Package dialect defines SQL dialects as data values consulted by the
// lexer and parser. A dialect carries keyword mappings, identifier quoting
// rules, and type-name aliases; it has no behavior of its own.
package dialect

import (
	"strings"

	"github.com/leapstack-labs/sqldoc/pkg/token"
)

// FoldCase is the case-folding policy applied to unquoted identifiers.
type FoldCase int

const (
	// FoldLower folds unquoted identifiers to lowercase (PostgreSQL style).
	FoldLower FoldCase = iota
	// FoldUpper folds unquoted identifiers to uppercase (Oracle style).
	FoldUpper
	// FoldNone preserves the written case.
	FoldNone
)

// Dialect describes the lexical and naming rules of one SQL flavor.
type Dialect struct {
	// Name is the canonical dialect name (lowercase).
	Name string

	// QuoteChars are the characters that open a quoted identifier.
	// A '[' entry implies the ']' closer (SQL Server brackets).
	QuoteChars []byte

	// IdentQuote is the preferred quote character when formatting names.
	IdentQuote byte

	// Fold is the case-folding policy for unquoted identifiers.
	Fold FoldCase

	// Keywords maps extra lowercase reserved words onto builtin token
	// types, e.g. "identity" onto token.AUTO_INCREMENT for SQL Server.
	Keywords map[string]token.TokenType

	// TypeAliases maps uppercase dialect type names to the canonical
	// type names the parser understands, e.g. "SERIAL" to "INTEGER".
	TypeAliases map[string]string

	// SerialTypes are uppercase type names that imply auto-increment
	// on top of their aliased canonical type (SERIAL, BIGSERIAL).
	SerialTypes map[string]bool

	// SupportsAutoIncrement reports whether the dialect has a column
	// auto-increment notion at all.
	SupportsAutoIncrement bool
}

// IsQuoteChar returns true if ch opens a quoted identifier in this dialect.
func (d *Dialect) IsQuoteChar(ch byte) bool {
	for _, q := range d.QuoteChars {
		if q == ch {
			return true
		}
	}
	return false
}

// CloseQuote returns the closing delimiter for the given opening quote.
func (d *Dialect) CloseQuote(open byte) byte {
	if open == '[' {
		return ']'
	}
	return open
}

// LookupKeyword returns the token type for a dialect-specific reserved
// word. The name must already be lowercased.
func (d *Dialect) LookupKeyword(name string) (token.TokenType, bool) {
	t, ok := d.Keywords[name]
	return t, ok
}

// NormalizeIdent applies the dialect's case-folding policy to an
// identifier. Quoted identifiers are always preserved verbatim.
func (d *Dialect) NormalizeIdent(name string, quoted bool) string {
	if quoted {
		return name
	}
	switch d.Fold {
	case FoldLower:
		return strings.ToLower(name)
	case FoldUpper:
		return strings.ToUpper(name)
	default:
		return name
	}
}

// ResolveTypeName maps a dialect type name to its canonical form and
// reports whether the type implies auto-increment. Unknown names pass
// through unchanged.
func (d *Dialect) ResolveTypeName(name string) (canonical string, serial bool) {
	upper := strings.ToUpper(name)
	if alias, ok := d.TypeAliases[upper]; ok {
		return alias, d.SerialTypes[upper]
	}
	return upper, d.SerialTypes[upper]
}

// QuoteIdent wraps a name in the dialect's preferred identifier quotes,
// doubling embedded quote characters.
func (d *Dialect) QuoteIdent(name string) string {
	open := d.IdentQuote
	if open == 0 {
		open = '"'
	}
	closer := d.CloseQuote(open)
	escaped := strings.ReplaceAll(name, string(closer), string(closer)+string(closer))
	return string(open) + escaped + string(closer)
}

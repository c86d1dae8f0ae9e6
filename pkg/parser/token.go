package parser

import "github.com/leapstack-labs/sqldoc/pkg/token"

// Re-export the token value types so callers of this package rarely need
// to import pkg/token directly.
type (
	// Token is a lexical token.
	Token = token.Token
	// TokenType is the type of a lexical token.
	TokenType = token.TokenType
	// Position is a location in the source text.
	Position = token.Position
)

// Package token defines the lexical token types shared by the lexer and parser.
//
// The token set is closed: keywords, identifiers, literals, operators, and
// punctuation are all enumerated here. Dialects may map additional reserved
// words onto these types (e.g. IDENTITY onto AUTO_INCREMENT) but never mint
// new ones.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Identifiers and literals
	IDENT  // users, order_id
	QIDENT // "users", `order`
	INT    // 123
	FLOAT  // 45.67
	STRING // 'hello'
	BOOL   // TRUE, FALSE
	NULL   // NULL

	// Operators
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	PERCENT // %
	DPIPE   // ||
	EQ      // =
	NE      // != or <>
	LT      // <
	GT      // >
	LE      // <=
	GE      // >=
	AMP     // &
	PIPE    // |
	CARET   // ^
	TILDE   // ~
	SHL     // <<
	SHR     // >>

	// Punctuation
	DOT       // .
	COMMA     // ,
	SEMICOLON // ;
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]
	COLON     // :
	DCOLON    // ::
	QUESTION  // ?
	AT        // @

	// Keywords (alphabetical)
	ADD
	ALL
	ALTER
	AND
	AS
	ASC
	AUTO_INCREMENT //nolint:revive // SQL keyword spelling
	BETWEEN
	BY
	CASE
	CAST
	CHECK
	COLUMN
	CONSTRAINT
	CREATE
	CROSS
	DEFAULT
	DELETE
	DESC
	DISTINCT
	DROP
	ELSE
	END
	EXCEPT
	EXISTS
	FOREIGN
	FROM
	FULL
	GROUP
	HAVING
	IF
	ILIKE
	IN
	INDEX
	INNER
	INSERT
	INTERSECT
	INTO
	IS
	JOIN
	KEY
	LEFT
	LIKE
	LIMIT
	MODIFY
	NOT
	OFFSET
	ON
	OR
	ORDER
	OUTER
	PRIMARY
	RECURSIVE
	REFERENCES
	RENAME
	RIGHT
	SELECT
	SET
	SIGNED
	TABLE
	THEN
	TO
	UNION
	UNIQUE
	UNSIGNED
	UPDATE
	USING
	VALUES
	WHEN
	WHERE
	WITH
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// tokenNames maps token types to their string representations.
var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	QIDENT: "QIDENT",
	INT:    "INT",
	FLOAT:  "FLOAT",
	STRING: "STRING",
	BOOL:   "BOOL",
	NULL:   "NULL",

	PLUS:    "+",
	MINUS:   "-",
	STAR:    "*",
	SLASH:   "/",
	PERCENT: "%",
	DPIPE:   "||",
	EQ:      "=",
	NE:      "!=",
	LT:      "<",
	GT:      ">",
	LE:      "<=",
	GE:      ">=",
	AMP:     "&",
	PIPE:    "|",
	CARET:   "^",
	TILDE:   "~",
	SHL:     "<<",
	SHR:     ">>",

	DOT:       ".",
	COMMA:     ",",
	SEMICOLON: ";",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACKET:  "[",
	RBRACKET:  "]",
	COLON:     ":",
	DCOLON:    "::",
	QUESTION:  "?",
	AT:        "@",

	ADD:            "ADD",
	ALL:            "ALL",
	ALTER:          "ALTER",
	AND:            "AND",
	AS:             "AS",
	ASC:            "ASC",
	AUTO_INCREMENT: "AUTO_INCREMENT",
	BETWEEN:        "BETWEEN",
	BY:             "BY",
	CASE:           "CASE",
	CAST:           "CAST",
	CHECK:          "CHECK",
	COLUMN:         "COLUMN",
	CONSTRAINT:     "CONSTRAINT",
	CREATE:         "CREATE",
	CROSS:          "CROSS",
	DEFAULT:        "DEFAULT",
	DELETE:         "DELETE",
	DESC:           "DESC",
	DISTINCT:       "DISTINCT",
	DROP:           "DROP",
	ELSE:           "ELSE",
	END:            "END",
	EXCEPT:         "EXCEPT",
	EXISTS:         "EXISTS",
	FOREIGN:        "FOREIGN",
	FROM:           "FROM",
	FULL:           "FULL",
	GROUP:          "GROUP",
	HAVING:         "HAVING",
	IF:             "IF",
	ILIKE:          "ILIKE",
	IN:             "IN",
	INDEX:          "INDEX",
	INNER:          "INNER",
	INSERT:         "INSERT",
	INTERSECT:      "INTERSECT",
	INTO:           "INTO",
	IS:             "IS",
	JOIN:           "JOIN",
	KEY:            "KEY",
	LEFT:           "LEFT",
	LIKE:           "LIKE",
	LIMIT:          "LIMIT",
	MODIFY:         "MODIFY",
	NOT:            "NOT",
	OFFSET:         "OFFSET",
	ON:             "ON",
	OR:             "OR",
	ORDER:          "ORDER",
	OUTER:          "OUTER",
	PRIMARY:        "PRIMARY",
	RECURSIVE:      "RECURSIVE",
	REFERENCES:     "REFERENCES",
	RENAME:         "RENAME",
	RIGHT:          "RIGHT",
	SELECT:         "SELECT",
	SET:            "SET",
	SIGNED:         "SIGNED",
	TABLE:          "TABLE",
	THEN:           "THEN",
	TO:             "TO",
	UNION:          "UNION",
	UNIQUE:         "UNIQUE",
	UNSIGNED:       "UNSIGNED",
	UPDATE:         "UPDATE",
	USING:          "USING",
	VALUES:         "VALUES",
	WHEN:           "WHEN",
	WHERE:          "WHERE",
	WITH:           "WITH",
}

// keywords maps lowercase keyword strings to their token types.
// TRUE, FALSE, and NULL are reserved words but lex as literal tokens.
var keywords = map[string]TokenType{
	"add":            ADD,
	"all":            ALL,
	"alter":          ALTER,
	"and":            AND,
	"as":             AS,
	"asc":            ASC,
	"auto_increment": AUTO_INCREMENT,
	"autoincrement":  AUTO_INCREMENT,
	"between":        BETWEEN,
	"by":             BY,
	"case":           CASE,
	"cast":           CAST,
	"check":          CHECK,
	"column":         COLUMN,
	"constraint":     CONSTRAINT,
	"create":         CREATE,
	"cross":          CROSS,
	"default":        DEFAULT,
	"delete":         DELETE,
	"desc":           DESC,
	"distinct":       DISTINCT,
	"drop":           DROP,
	"else":           ELSE,
	"end":            END,
	"except":         EXCEPT,
	"exists":         EXISTS,
	"false":          BOOL,
	"foreign":        FOREIGN,
	"from":           FROM,
	"full":           FULL,
	"group":          GROUP,
	"having":         HAVING,
	"if":             IF,
	"ilike":          ILIKE,
	"in":             IN,
	"index":          INDEX,
	"inner":          INNER,
	"insert":         INSERT,
	"intersect":      INTERSECT,
	"into":           INTO,
	"is":             IS,
	"join":           JOIN,
	"key":            KEY,
	"left":           LEFT,
	"like":           LIKE,
	"limit":          LIMIT,
	"modify":         MODIFY,
	"not":            NOT,
	"null":           NULL,
	"offset":         OFFSET,
	"on":             ON,
	"or":             OR,
	"order":          ORDER,
	"outer":          OUTER,
	"primary":        PRIMARY,
	"recursive":      RECURSIVE,
	"references":     REFERENCES,
	"rename":         RENAME,
	"right":          RIGHT,
	"select":         SELECT,
	"set":            SET,
	"signed":         SIGNED,
	"table":          TABLE,
	"then":           THEN,
	"to":             TO,
	"true":           BOOL,
	"union":          UNION,
	"unique":         UNIQUE,
	"unsigned":       UNSIGNED,
	"update":         UPDATE,
	"using":          USING,
	"values":         VALUES,
	"when":           WHEN,
	"where":          WHERE,
	"with":           WITH,
}

// LookupIdent returns the token type for the given identifier.
// The lookup is case-insensitive; callers pass the lowercased form.
// If the identifier is not a reserved word, IDENT is returned.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Keywords returns the lowercase spellings of every reserved word,
// including literal keywords (true/false/null). Used by tests and tooling.
func Keywords() []string {
	names := make([]string, 0, len(keywords))
	for name := range keywords {
		names = append(names, name)
	}
	return names
}

// IsKeyword returns true if the token type is a keyword.
func IsKeyword(t TokenType) bool {
	return t >= ADD && t <= WITH
}

// IsLiteral returns true if the token type is a literal value.
func IsLiteral(t TokenType) bool {
	return t >= INT && t <= NULL
}

// IsOperator returns true if the token type is an operator.
func IsOperator(t TokenType) bool {
	return t >= PLUS && t <= SHR
}

// Token represents a lexical token with position information. Pos is
// the token's first character; End is the position just after its last
// source character, so quotes stripped from Literal still count.
// For literal tokens, the matching decoded field is set:
// Int for INT, Float for FLOAT, Bool for BOOL. STRING, IDENT, and
// QIDENT carry their (unquoted) text in Literal.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
	End     Position

	Int   int64
	Float float64
	Bool  bool
}

// Span returns the source range the token covers.
func (t Token) Span() Span {
	return Span{Start: t.Pos, End: t.End}
}

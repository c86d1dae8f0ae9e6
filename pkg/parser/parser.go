// Package parser provides SQL lexing and parsing with dialect-aware
// quoting and keyword rules.
//
// # Usage
//
//	d, _ := dialect.Get("postgres")
//	stmts, err := parser.Parse(sql, d)
//	if err != nil {
//	    // handle error
//	}
//
// # Grammar Overview
//
// The parser implements a recursive descent parser for the SQL subset
// needed to document schemas:
//
//	script        → statement (";" statement)* [";"]
//	statement     → create_table | create_index | alter_table | drop_table
//	              | select_stmt | insert_stmt | update_stmt | delete_stmt
//	create_table  → CREATE TABLE [IF NOT EXISTS] name "(" table_item ("," table_item)* ")"
//	select_stmt   → [WITH cte_list] select_core
//	                [(UNION|INTERSECT|EXCEPT) [ALL] select_core]*
//
// See each file for detailed grammar rules for that section. Parsing is
// fail-fast: the first syntax error aborts the whole call, and later
// statements in the same source are not attempted.
package parser

import (
	"fmt"

	"github.com/leapstack-labs/sqldoc/pkg/ast"
	"github.com/leapstack-labs/sqldoc/pkg/dialect"
	"github.com/leapstack-labs/sqldoc/pkg/token"
)

// Parser parses a token sequence into AST statements.
type Parser struct {
	tokens  []Token
	idx     int
	eof     Token
	dialect *dialect.Dialect // required
}

// NewParser creates a parser over an already-lexed token sequence.
func NewParser(tokens []Token, d *dialect.Dialect) *Parser {
	eof := Token{Type: token.EOF, Pos: Position{Line: 1, Column: 1}}
	if n := len(tokens); n > 0 {
		// The lexer's end position covers quoting and escapes that the
		// literal alone cannot recover.
		eof.Pos = tokens[n-1].End
	}
	eof.End = eof.Pos
	return &Parser{tokens: tokens, eof: eof, dialect: d}
}

// Parse lexes and parses SQL source into statements.
func Parse(sql string, d *dialect.Dialect) ([]ast.Statement, error) {
	if d == nil {
		return nil, dialect.ErrDialectRequired
	}
	tokens, err := Tokenize(sql, d)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens, d)
}

// ParseTokens parses an already-lexed token sequence into statements.
func ParseTokens(tokens []Token, d *dialect.Dialect) ([]ast.Statement, error) {
	if d == nil {
		return nil, dialect.ErrDialectRequired
	}
	p := NewParser(tokens, d)
	return p.ParseStatements()
}

// Dialect returns the parser's dialect.
func (p *Parser) Dialect() *dialect.Dialect {
	return p.dialect
}

// ParseStatements parses all statements in the token sequence.
// Statements are separated by semicolons; the trailing semicolon is
// optional.
func (p *Parser) ParseStatements() ([]ast.Statement, error) {
	var stmts []ast.Statement
	for !p.check(token.EOF) {
		if p.match(token.SEMICOLON) {
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if !p.match(token.SEMICOLON) && !p.check(token.EOF) {
			return nil, p.unexpected(token.SEMICOLON)
		}
	}
	return stmts, nil
}

// parseStatement dispatches on the leading keyword.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.token().Type {
	case token.SELECT, token.WITH:
		return p.parseSelect()
	case token.INSERT:
		return p.parseInsert()
	case token.UPDATE:
		return p.parseUpdate()
	case token.DELETE:
		return p.parseDelete()
	case token.CREATE:
		return p.parseCreate()
	case token.ALTER:
		return p.parseAlterTable()
	case token.DROP:
		return p.parseDropTable()
	default:
		return nil, p.errorf(ErrExpectedStatement, p.token().Type)
	}
}

// ---------- Token Helpers ----------

// token returns the current token.
func (p *Parser) token() Token {
	if p.idx >= len(p.tokens) {
		return p.eof
	}
	return p.tokens[p.idx]
}

// peek returns the lookahead token.
func (p *Parser) peek() Token {
	if p.idx+1 >= len(p.tokens) {
		return p.eof
	}
	return p.tokens[p.idx+1]
}

// peek2 returns the second lookahead token.
func (p *Parser) peek2() Token {
	if p.idx+2 >= len(p.tokens) {
		return p.eof
	}
	return p.tokens[p.idx+2]
}

// next advances to the next token.
func (p *Parser) next() {
	if p.idx < len(p.tokens) {
		p.idx++
	}
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t TokenType) bool {
	return p.token().Type == t
}

// checkPeek returns true if the peek token is of the given type.
func (p *Parser) checkPeek(t TokenType) bool {
	return p.peek().Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t TokenType) bool {
	if p.check(t) {
		p.next()
		return true
	}
	return false
}

// expect consumes the current token if it matches, otherwise returns an
// error at the current position.
func (p *Parser) expect(t TokenType) error {
	if p.check(t) {
		p.next()
		return nil
	}
	return p.unexpected(t)
}

// unexpected builds an unexpected-token error for the current token.
func (p *Parser) unexpected(want TokenType) error {
	return p.errorf(ErrUnexpectedToken, p.token().Type, want)
}

// errorf builds a ParseError at the current token's position.
func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{
		Pos:     p.token().Pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// ---------- Identifier Helpers ----------

// parseIdentifier consumes an identifier or quoted identifier and returns
// its normalized text. Unquoted identifiers are case-folded per dialect.
func (p *Parser) parseIdentifier() (string, error) {
	tok := p.token()
	switch tok.Type {
	case token.IDENT:
		p.next()
		return p.dialect.NormalizeIdent(tok.Literal, false), nil
	case token.QIDENT:
		p.next()
		return tok.Literal, nil
	default:
		return "", p.errorf(ErrExpectedIdentifier, tok.Type)
	}
}

// parseIdentifierPart consumes one identifier part preserving quoting info.
func (p *Parser) parseIdentifierPart() (ast.Identifier, error) {
	tok := p.token()
	switch tok.Type {
	case token.IDENT:
		p.next()
		return ast.Identifier{Name: p.dialect.NormalizeIdent(tok.Literal, false)}, nil
	case token.QIDENT:
		p.next()
		return ast.Identifier{Name: tok.Literal, Quoted: true}, nil
	default:
		return ast.Identifier{}, p.errorf(ErrExpectedIdentifier, tok.Type)
	}
}

// parseQualifiedName consumes a dotted name: ident ("." ident)*.
func (p *Parser) parseQualifiedName() (ast.QualifiedName, error) {
	part, err := p.parseIdentifierPart()
	if err != nil {
		return ast.QualifiedName{}, err
	}
	qn := ast.QualifiedName{Parts: []ast.Identifier{part}}
	for p.match(token.DOT) {
		part, err = p.parseIdentifierPart()
		if err != nil {
			return ast.QualifiedName{}, err
		}
		qn.Parts = append(qn.Parts, part)
	}
	return qn, nil
}

// parseIdentifierList consumes a comma-separated identifier list.
func (p *Parser) parseIdentifierList() ([]string, error) {
	var names []string
	for {
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		if !p.match(token.COMMA) {
			return names, nil
		}
	}
}

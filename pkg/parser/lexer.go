package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/sqldoc/pkg/dialect"
	"github.com/leapstack-labs/sqldoc/pkg/token"
)

// Lexer tokenizes SQL input under a dialect's quoting and keyword rules.
// One Lexer instance processes exactly one source text; the first lexical
// error fails the whole call with no partial token list.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	dialect *dialect.Dialect
}

// NewLexer creates a new Lexer for the given input and dialect.
func NewLexer(input string, d *dialect.Dialect) *Lexer {
	l := &Lexer{
		input:   input,
		line:    1,
		col:     0,
		dialect: d,
	}
	l.readChar()
	return l
}

// Tokenize scans the whole input and returns its tokens, without a
// trailing EOF marker. Any lexical error aborts the scan.
func Tokenize(input string, d *dialect.Dialect) ([]Token, error) {
	if d == nil {
		return nil, dialect.ErrDialectRequired
	}
	l := NewLexer(input, d)
	var tokens []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// readChar advances to the next byte. Columns count characters, not
// bytes, so UTF-8 continuation bytes do not advance the column.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	switch {
	case l.ch == '\n':
		l.line++
		l.col = 0
	case l.ch&0xC0 != 0x80:
		l.col++
	}
}

// readRune advances over the whole character at the current position.
func (l *Lexer) readRune() {
	if l.ch < utf8.RuneSelf {
		l.readChar()
		return
	}
	_, size := utf8.DecodeRuneInString(l.input[l.pos:])
	for i := 0; i < size; i++ {
		l.readChar()
	}
}

// runeAt returns the full character at the current position.
func (l *Lexer) runeAt() rune {
	if l.ch < utf8.RuneSelf {
		return rune(l.ch)
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

// letterAt reports whether a letter begins at the current position.
// Multibyte input is decoded before classifying.
func (l *Lexer) letterAt() bool {
	return unicode.IsLetter(l.runeAt())
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() Position {
	return Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

func (l *Lexer) errorf(pos Position, format string, args ...any) error {
	return &LexError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// next returns the next token or the first lexical error. The token's
// End marks the position just after its source text, closing quotes
// included.
func (l *Lexer) next() (Token, error) {
	tok, err := l.scan()
	if err != nil {
		return Token{}, err
	}
	tok.End = l.currentPos()
	return tok, nil
}

// scan reads the next raw token.
func (l *Lexer) scan() (Token, error) {
	if err := l.skipWhitespaceAndComments(); err != nil {
		return Token{}, err
	}

	pos := l.currentPos()

	switch {
	case l.ch == 0:
		return Token{Type: token.EOF, Pos: pos}, nil
	case l.dialect.IsQuoteChar(l.ch):
		return l.readQuotedIdentifier(pos)
	case l.ch == '\'':
		return l.readString(pos)
	case isDigit(l.ch):
		return l.readNumber(pos)
	case l.letterAt() || l.ch == '_':
		return l.readIdentifier(pos), nil
	}

	var tok Token
	tok.Pos = pos

	switch l.ch {
	case '+':
		tok = l.newToken(token.PLUS, "+", pos)
	case '-':
		tok = l.newToken(token.MINUS, "-", pos)
	case '*':
		tok = l.newToken(token.STAR, "*", pos)
	case '/':
		tok = l.newToken(token.SLASH, "/", pos)
	case '%':
		tok = l.newToken(token.PERCENT, "%", pos)
	case '=':
		tok = l.newToken(token.EQ, "=", pos)
	case '&':
		tok = l.newToken(token.AMP, "&", pos)
	case '^':
		tok = l.newToken(token.CARET, "^", pos)
	case '~':
		tok = l.newToken(token.TILDE, "~", pos)
	case '<':
		switch l.peekChar() {
		case '=':
			l.readChar()
			tok = l.newToken(token.LE, "<=", pos)
		case '>':
			l.readChar()
			tok = l.newToken(token.NE, "<>", pos)
		case '<':
			l.readChar()
			tok = l.newToken(token.SHL, "<<", pos)
		default:
			tok = l.newToken(token.LT, "<", pos)
		}
	case '>':
		switch l.peekChar() {
		case '=':
			l.readChar()
			tok = l.newToken(token.GE, ">=", pos)
		case '>':
			l.readChar()
			tok = l.newToken(token.SHR, ">>", pos)
		default:
			tok = l.newToken(token.GT, ">", pos)
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.newToken(token.NE, "!=", pos)
		} else {
			return Token{}, l.errorf(pos, ErrUnexpectedChar, string(l.ch))
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			tok = l.newToken(token.DPIPE, "||", pos)
		} else {
			tok = l.newToken(token.PIPE, "|", pos)
		}
	case ':':
		if l.peekChar() == ':' {
			l.readChar()
			tok = l.newToken(token.DCOLON, "::", pos)
		} else {
			tok = l.newToken(token.COLON, ":", pos)
		}
	case '.':
		tok = l.newToken(token.DOT, ".", pos)
	case ',':
		tok = l.newToken(token.COMMA, ",", pos)
	case ';':
		tok = l.newToken(token.SEMICOLON, ";", pos)
	case '(':
		tok = l.newToken(token.LPAREN, "(", pos)
	case ')':
		tok = l.newToken(token.RPAREN, ")", pos)
	case '[':
		tok = l.newToken(token.LBRACKET, "[", pos)
	case ']':
		tok = l.newToken(token.RBRACKET, "]", pos)
	case '?':
		tok = l.newToken(token.QUESTION, "?", pos)
	case '@':
		tok = l.newToken(token.AT, "@", pos)
	default:
		return Token{}, l.errorf(pos, ErrUnexpectedChar, string(l.runeAt()))
	}

	l.readChar()
	return tok, nil
}

// newToken creates a token at the given position without advancing.
func (l *Lexer) newToken(t TokenType, literal string, pos Position) Token {
	return Token{Type: t, Literal: literal, Pos: pos}
}

// skipWhitespaceAndComments skips whitespace, line comments, and block
// comments. Position keeps advancing through skipped text.
func (l *Lexer) skipWhitespaceAndComments() error {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}

		if l.ch == '-' && l.peekChar() == '-' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}

		if l.ch == '/' && l.peekChar() == '*' {
			pos := l.currentPos()
			l.readChar() // skip '/'
			l.readChar() // skip '*'
			terminated := false
			for l.ch != 0 {
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar() // skip '*'
					l.readChar() // skip '/'
					terminated = true
					break
				}
				l.readChar()
			}
			if !terminated {
				return l.errorf(pos, ErrUnterminatedComment)
			}
			continue
		}

		return nil
	}
}

// readIdentifier reads an unquoted identifier or keyword.
func (l *Lexer) readIdentifier(pos Position) Token {
	start := l.pos
	for l.letterAt() || isDigit(l.ch) || l.ch == '_' {
		l.readRune()
	}
	literal := l.input[start:l.pos]
	lower := strings.ToLower(literal)

	t := token.LookupIdent(lower)
	if t == token.IDENT {
		if dynTok, ok := l.dialect.LookupKeyword(lower); ok {
			t = dynTok
		}
	}

	tok := Token{Type: t, Literal: literal, Pos: pos}
	if t == token.BOOL {
		tok.Bool = lower == "true"
	}
	return tok
}

// readQuotedIdentifier reads a quoted identifier. Doubling the closing
// delimiter escapes it; brackets have no escape form. The token carries
// only the unquoted text.
func (l *Lexer) readQuotedIdentifier(pos Position) (Token, error) {
	open := l.ch
	closer := l.dialect.CloseQuote(open)
	l.readChar() // skip opening quote

	var result strings.Builder
	for {
		switch l.ch {
		case 0, '\n', '\r':
			return Token{}, l.errorf(pos, ErrUnterminatedQuotedIdent)
		case closer:
			if closer != ']' && l.peekChar() == closer {
				result.WriteByte(closer)
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar() // skip closing quote
			return Token{Type: token.QIDENT, Literal: result.String(), Pos: pos}, nil
		default:
			result.WriteByte(l.ch)
			l.readChar()
		}
	}
}

// readString reads a single-quoted string literal. A doubled quote is an
// escaped quote: 'it''s' reads as it's.
func (l *Lexer) readString(pos Position) (Token, error) {
	l.readChar() // skip opening quote

	var result strings.Builder
	for {
		switch l.ch {
		case 0, '\n', '\r':
			return Token{}, l.errorf(pos, ErrUnterminatedString)
		case '\'':
			if l.peekChar() == '\'' {
				result.WriteByte('\'')
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar() // skip closing quote
			return Token{Type: token.STRING, Literal: result.String(), Pos: pos}, nil
		default:
			result.WriteByte(l.ch)
			l.readChar()
		}
	}
}

// readNumber reads an integer or decimal literal. A decimal point switches
// the token from INT to FLOAT.
func (l *Lexer) readNumber(pos Position) (Token, error) {
	start := l.pos
	isFloat := false

	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		isFloat = true
		l.readChar() // skip '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	literal := l.input[start:l.pos]
	if isFloat {
		value, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return Token{}, l.errorf(pos, ErrInvalidNumber, literal)
		}
		return Token{Type: token.FLOAT, Literal: literal, Pos: pos, Float: value}, nil
	}

	value, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		return Token{}, l.errorf(pos, ErrInvalidNumber, literal)
	}
	return Token{Type: token.INT, Literal: literal, Pos: pos, Int: value}, nil
}

// isDigit returns true if ch is a digit.
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

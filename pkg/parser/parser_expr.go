package parser

// Expression parsing using precedence climbing.
//
// Grammar:
//
//	expr     → or_expr
//	or_expr  → and_expr (OR and_expr)*
//	and_expr → not_expr (AND not_expr)*
//	not_expr → NOT not_expr | cmp_expr
//	cmp_expr → bit_expr (("=" | "!=" | "<>" | "<" | ">" | "<=" | ">="
//	           | IS [NOT] NULL | [NOT] IN | [NOT] BETWEEN | [NOT] LIKE/ILIKE) ...)*
//	bit_expr → add_expr (("|" | "^" | "&" | "<<" | ">>") add_expr)*
//	add_expr → mul_expr (("+" | "-" | "||") mul_expr)*
//	mul_expr → unary (("*" | "/" | "%") unary)*
//	unary    → ("-" | "~") unary | postfix
//	postfix  → primary ("::" data_type)*
//	primary  → literal | "?" | "(" expr ")" | CASE ... END
//	         | CAST "(" expr AS data_type ")" | func_call | column_ref

import (
	"github.com/leapstack-labs/sqldoc/pkg/ast"
	"github.com/leapstack-labs/sqldoc/pkg/token"
)

// Operator precedence levels, loosest first.
const (
	precNone = iota
	precOr
	precAnd
	precComparison
	precBitOr
	precBitAnd
	precShift
	precAdditive
	precMultiplicative
)

// infixPrecedence returns the binding strength of an infix operator, or
// precNone if the token is not an infix operator.
func infixPrecedence(t TokenType) int {
	switch t {
	case token.OR:
		return precOr
	case token.AND:
		return precAnd
	case token.EQ, token.NE, token.LT, token.GT, token.LE, token.GE:
		return precComparison
	case token.PIPE, token.CARET:
		return precBitOr
	case token.AMP:
		return precBitAnd
	case token.SHL, token.SHR:
		return precShift
	case token.PLUS, token.MINUS, token.DPIPE:
		return precAdditive
	case token.STAR, token.SLASH, token.PERCENT:
		return precMultiplicative
	default:
		return precNone
	}
}

// parseExpression parses a full expression.
func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseBinaryExpr(precOr)
}

// parseExpressionList parses a comma-separated expression list.
func (p *Parser) parseExpressionList() ([]ast.Expr, error) {
	var exprs []ast.Expr
	for {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		if !p.match(token.COMMA) {
			return exprs, nil
		}
	}
}

func (p *Parser) parseBinaryExpr(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		t := p.token().Type

		// IS / IN / BETWEEN / LIKE bind at comparison strength, with an
		// optional leading NOT for the latter three.
		if minPrec <= precComparison {
			switch {
			case t == token.IS:
				left, err = p.parseIsNull(left)
			case t == token.IN:
				left, err = p.parseIn(left, false)
			case t == token.BETWEEN:
				left, err = p.parseBetween(left, false)
			case t == token.LIKE, t == token.ILIKE:
				left, err = p.parseLike(left, false)
			case t == token.NOT:
				switch p.peek().Type {
				case token.IN:
					p.next()
					left, err = p.parseIn(left, true)
				case token.BETWEEN:
					p.next()
					left, err = p.parseBetween(left, true)
				case token.LIKE, token.ILIKE:
					p.next()
					left, err = p.parseLike(left, true)
				default:
					return left, nil
				}
			default:
				goto infix
			}
			if err != nil {
				return nil, err
			}
			continue
		}

	infix:
		prec := infixPrecedence(t)
		if prec == precNone || prec < minPrec {
			return left, nil
		}
		p.next()
		right, err := p.parseBinaryExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Left: left, Op: t, Right: right}
	}
}

func (p *Parser) parseIsNull(operand ast.Expr) (ast.Expr, error) {
	p.next() // IS
	negated := p.match(token.NOT)
	if err := p.expect(token.NULL); err != nil {
		return nil, err
	}
	return ast.IsNullExpr{Operand: operand, Negated: negated}, nil
}

func (p *Parser) parseIn(operand ast.Expr, negated bool) (ast.Expr, error) {
	p.next() // IN
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	list, err := p.parseExpressionList()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return ast.InExpr{Operand: operand, List: list, Negated: negated}, nil
}

func (p *Parser) parseBetween(operand ast.Expr, negated bool) (ast.Expr, error) {
	p.next() // BETWEEN
	// Bounds bind tighter than AND so the separator stays visible.
	low, err := p.parseBinaryExpr(precBitOr)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.AND); err != nil {
		return nil, err
	}
	high, err := p.parseBinaryExpr(precBitOr)
	if err != nil {
		return nil, err
	}
	return ast.BetweenExpr{Operand: operand, Low: low, High: high, Negated: negated}, nil
}

func (p *Parser) parseLike(operand ast.Expr, negated bool) (ast.Expr, error) {
	caseInsensitive := p.token().Type == token.ILIKE
	p.next() // LIKE or ILIKE
	pattern, err := p.parseBinaryExpr(precBitOr)
	if err != nil {
		return nil, err
	}
	return ast.LikeExpr{
		Operand:         operand,
		Pattern:         pattern,
		Negated:         negated,
		CaseInsensitive: caseInsensitive,
	}, nil
}

func (p *Parser) parseUnaryExpr() (ast.Expr, error) {
	switch p.token().Type {
	case token.NOT:
		p.next()
		operand, err := p.parseBinaryExpr(precComparison)
		if err != nil {
			return nil, err
		}
		return ast.UnaryExpr{Op: token.NOT, Operand: operand}, nil
	case token.MINUS:
		p.next()
		operand, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		return ast.UnaryExpr{Op: token.MINUS, Operand: operand}, nil
	case token.TILDE:
		p.next()
		operand, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		return ast.UnaryExpr{Op: token.TILDE, Operand: operand}, nil
	default:
		return p.parsePostfixExpr()
	}
}

// parsePostfixExpr parses a primary expression with any :: casts.
func (p *Parser) parsePostfixExpr() (ast.Expr, error) {
	expr, err := p.parsePrimaryExpr()
	if err != nil {
		return nil, err
	}
	for p.match(token.DCOLON) {
		dataType, _, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		expr = ast.CastExpr{Operand: expr, Type: dataType}
	}
	return expr, nil
}

func (p *Parser) parsePrimaryExpr() (ast.Expr, error) {
	tok := p.token()
	switch tok.Type {
	case token.INT:
		p.next()
		return ast.IntegerLit{Value: tok.Int}, nil
	case token.FLOAT:
		p.next()
		return ast.FloatLit{Value: tok.Float}, nil
	case token.STRING:
		p.next()
		return ast.StringLit{Value: tok.Literal}, nil
	case token.BOOL:
		p.next()
		return ast.BoolLit{Value: tok.Bool}, nil
	case token.NULL:
		p.next()
		return ast.NullLit{}, nil
	case token.QUESTION:
		p.next()
		return ast.Placeholder{}, nil
	case token.LPAREN:
		p.next()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case token.CASE:
		return p.parseCaseExpr()
	case token.CAST:
		return p.parseCastExpr()
	case token.IDENT:
		if p.checkPeek(token.LPAREN) {
			return p.parseFuncCall()
		}
		return p.parseColumnRef()
	case token.QIDENT:
		return p.parseColumnRef()
	default:
		return nil, p.errorf(ErrExpectedExpression, tok.Type)
	}
}

func (p *Parser) parseColumnRef() (ast.Expr, error) {
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	return ast.ColumnRef{Name: name}, nil
}

func (p *Parser) parseFuncCall() (ast.Expr, error) {
	name := p.token().Literal
	p.next() // function name
	p.next() // (

	call := ast.FuncCall{Name: name}

	switch {
	case p.match(token.STAR):
		call.Star = true
	case p.check(token.RPAREN):
		// no arguments
	default:
		call.Distinct = p.match(token.DISTINCT)
		args, err := p.parseExpressionList()
		if err != nil {
			return nil, err
		}
		call.Args = args
	}

	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return call, nil
}

func (p *Parser) parseCaseExpr() (ast.Expr, error) {
	p.next() // CASE

	var caseExpr ast.CaseExpr
	if !p.check(token.WHEN) {
		operand, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		caseExpr.Operand = operand
	}

	for p.match(token.WHEN) {
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.THEN); err != nil {
			return nil, err
		}
		result, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		caseExpr.Whens = append(caseExpr.Whens, ast.WhenClause{Cond: cond, Result: result})
	}
	if len(caseExpr.Whens) == 0 {
		return nil, p.unexpected(token.WHEN)
	}

	if p.match(token.ELSE) {
		elseExpr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		caseExpr.Else = elseExpr
	}

	if err := p.expect(token.END); err != nil {
		return nil, err
	}
	return caseExpr, nil
}

func (p *Parser) parseCastExpr() (ast.Expr, error) {
	p.next() // CAST
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	operand, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.AS); err != nil {
		return nil, err
	}
	dataType, _, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return ast.CastExpr{Operand: operand, Type: dataType}, nil
}

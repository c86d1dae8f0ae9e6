package parser

// DML parsing.
//
// Grammar:
//
//	select_stmt  → [WITH cte_list] select_core
//	               ((UNION|INTERSECT|EXCEPT) [ALL] select_core)*
//	select_core  → SELECT [DISTINCT] select_list
//	               [FROM table_ref ("," table_ref)* join*]
//	               [WHERE expr] [GROUP BY expr_list] [HAVING expr]
//	               [ORDER BY order_item ("," order_item)*]
//	               [LIMIT INT] [OFFSET INT]
//	select_list  → select_item ("," select_item)*
//	select_item  → "*" | identifier "." "*" | expr [[AS] identifier]
//	join         → (JOIN | INNER JOIN | LEFT [OUTER] JOIN | RIGHT [OUTER] JOIN
//	               | FULL [OUTER] JOIN | CROSS JOIN) table_ref
//	               [ON expr | USING "(" ident_list ")"]
//	insert_stmt  → INSERT INTO qualified_name ["(" ident_list ")"]
//	               VALUES "(" expr_list ")" ("," "(" expr_list ")")*
//	update_stmt  → UPDATE qualified_name SET identifier "=" expr
//	               ("," identifier "=" expr)* [WHERE expr]
//	delete_stmt  → DELETE FROM qualified_name [WHERE expr]

import (
	"github.com/leapstack-labs/sqldoc/pkg/ast"
	"github.com/leapstack-labs/sqldoc/pkg/token"
)

func (p *Parser) parseSelect() (*ast.SelectStmt, error) {
	stmt, err := p.parseSelectCore()
	if err != nil {
		return nil, err
	}

	for {
		var kind ast.SetOpKind
		switch p.token().Type {
		case token.UNION:
			kind = ast.SetUnion
		case token.INTERSECT:
			kind = ast.SetIntersect
		case token.EXCEPT:
			kind = ast.SetExcept
		default:
			return stmt, nil
		}
		p.next()
		all := p.match(token.ALL)
		query, err := p.parseSelectCore()
		if err != nil {
			return nil, err
		}
		stmt.Compound = append(stmt.Compound, ast.SetOp{Kind: kind, All: all, Query: query})
	}
}

func (p *Parser) parseSelectCore() (*ast.SelectStmt, error) {
	stmt := &ast.SelectStmt{}

	if p.check(token.WITH) {
		with, err := p.parseWithClause()
		if err != nil {
			return nil, err
		}
		stmt.With = with
	}

	if err := p.expect(token.SELECT); err != nil {
		return nil, err
	}
	stmt.Distinct = p.match(token.DISTINCT)

	items, err := p.parseSelectList()
	if err != nil {
		return nil, err
	}
	stmt.Items = items

	if p.match(token.FROM) {
		from, joins, err := p.parseFromClause()
		if err != nil {
			return nil, err
		}
		stmt.From = from
		stmt.Joins = joins
	}

	if p.match(token.WHERE) {
		where, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}

	if p.check(token.GROUP) {
		p.next()
		if err := p.expect(token.BY); err != nil {
			return nil, err
		}
		groupBy, err := p.parseExpressionList()
		if err != nil {
			return nil, err
		}
		stmt.GroupBy = groupBy
	}

	if p.match(token.HAVING) {
		having, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Having = having
	}

	if p.check(token.ORDER) {
		p.next()
		if err := p.expect(token.BY); err != nil {
			return nil, err
		}
		orderBy, err := p.parseOrderByList()
		if err != nil {
			return nil, err
		}
		stmt.OrderBy = orderBy
	}

	if p.match(token.LIMIT) {
		limit, err := p.parseIntValue()
		if err != nil {
			return nil, err
		}
		stmt.Limit = &limit
	}

	if p.match(token.OFFSET) {
		offset, err := p.parseIntValue()
		if err != nil {
			return nil, err
		}
		stmt.Offset = &offset
	}

	return stmt, nil
}

func (p *Parser) parseWithClause() ([]ast.CTE, error) {
	if err := p.expect(token.WITH); err != nil {
		return nil, err
	}

	var ctes []ast.CTE
	for {
		var cte ast.CTE
		cte.Recursive = p.match(token.RECURSIVE)

		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		cte.Name = name

		if p.check(token.LPAREN) && p.checkPeek(token.IDENT) {
			cols, err := p.parseParenIdentifierList()
			if err != nil {
				return nil, err
			}
			cte.Columns = cols
		}

		if err := p.expect(token.AS); err != nil {
			return nil, err
		}
		if err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		query, err := p.parseSelect()
		if err != nil {
			return nil, err
		}
		cte.Query = query
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}

		ctes = append(ctes, cte)
		if !p.match(token.COMMA) {
			return ctes, nil
		}
	}
}

func (p *Parser) parseSelectList() ([]ast.SelectItem, error) {
	var items []ast.SelectItem
	for {
		item, err := p.parseSelectItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.match(token.COMMA) {
			return items, nil
		}
	}
}

func (p *Parser) parseSelectItem() (ast.SelectItem, error) {
	if p.match(token.STAR) {
		return ast.StarItem{}, nil
	}

	// t.* needs two tokens of lookahead before committing to an expression.
	if (p.check(token.IDENT) || p.check(token.QIDENT)) &&
		p.checkPeek(token.DOT) && p.peek2().Type == token.STAR {
		qualifier, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		p.next() // .
		p.next() // *
		return ast.QualifiedStarItem{Qualifier: qualifier}, nil
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	item := ast.ExprItem{Expr: expr}
	if p.match(token.AS) {
		alias, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		item.Alias = alias
	} else if p.check(token.IDENT) || p.check(token.QIDENT) {
		// Bare alias without AS.
		alias, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		item.Alias = alias
	}
	return item, nil
}

func (p *Parser) parseFromClause() ([]ast.TableRef, []ast.JoinClause, error) {
	ref, err := p.parseTableRef()
	if err != nil {
		return nil, nil, err
	}
	from := []ast.TableRef{ref}

	for p.match(token.COMMA) {
		ref, err = p.parseTableRef()
		if err != nil {
			return nil, nil, err
		}
		from = append(from, ref)
	}

	var joins []ast.JoinClause
	for p.isJoinKeyword(p.token().Type) {
		join, err := p.parseJoin()
		if err != nil {
			return nil, nil, err
		}
		joins = append(joins, join)
	}
	return from, joins, nil
}

func (p *Parser) isJoinKeyword(t TokenType) bool {
	switch t {
	case token.JOIN, token.INNER, token.LEFT, token.RIGHT, token.FULL, token.CROSS:
		return true
	}
	return false
}

func (p *Parser) parseJoin() (ast.JoinClause, error) {
	var join ast.JoinClause

	switch p.token().Type {
	case token.INNER:
		p.next()
		join.Kind = ast.JoinInner
	case token.LEFT:
		p.next()
		p.match(token.OUTER)
		join.Kind = ast.JoinLeft
	case token.RIGHT:
		p.next()
		p.match(token.OUTER)
		join.Kind = ast.JoinRight
	case token.FULL:
		p.next()
		p.match(token.OUTER)
		join.Kind = ast.JoinFull
	case token.CROSS:
		p.next()
		join.Kind = ast.JoinCross
	default:
		join.Kind = ast.JoinInner
	}
	if err := p.expect(token.JOIN); err != nil {
		return join, err
	}

	table, err := p.parseTableRef()
	if err != nil {
		return join, err
	}
	join.Table = table

	switch {
	case p.match(token.ON):
		cond, err := p.parseExpression()
		if err != nil {
			return join, err
		}
		join.On = cond
	case p.match(token.USING):
		cols, err := p.parseParenIdentifierList()
		if err != nil {
			return join, err
		}
		join.Using = cols
	}
	return join, nil
}

func (p *Parser) parseTableRef() (ast.TableRef, error) {
	var ref ast.TableRef

	name, err := p.parseQualifiedName()
	if err != nil {
		return ref, err
	}
	ref.Name = name

	if p.match(token.AS) {
		alias, err := p.parseIdentifier()
		if err != nil {
			return ref, err
		}
		ref.Alias = alias
	} else if p.check(token.IDENT) || p.check(token.QIDENT) {
		alias, err := p.parseIdentifier()
		if err != nil {
			return ref, err
		}
		ref.Alias = alias
	}
	return ref, nil
}

func (p *Parser) parseOrderByList() ([]ast.OrderByItem, error) {
	var items []ast.OrderByItem
	for {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		item := ast.OrderByItem{Expr: expr}
		switch p.token().Type {
		case token.ASC:
			p.next()
		case token.DESC:
			p.next()
			item.Desc = true
		}
		items = append(items, item)
		if !p.match(token.COMMA) {
			return items, nil
		}
	}
}

func (p *Parser) parseIntValue() (int64, error) {
	if !p.check(token.INT) {
		return 0, p.unexpected(token.INT)
	}
	value := p.token().Int
	p.next()
	return value, nil
}

func (p *Parser) parseInsert() (*ast.InsertStmt, error) {
	if err := p.expect(token.INSERT); err != nil {
		return nil, err
	}
	if err := p.expect(token.INTO); err != nil {
		return nil, err
	}

	table, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	stmt := &ast.InsertStmt{Table: table}

	if p.check(token.LPAREN) {
		cols, err := p.parseParenIdentifierList()
		if err != nil {
			return nil, err
		}
		stmt.Columns = cols
	}

	if err := p.expect(token.VALUES); err != nil {
		return nil, err
	}
	for {
		if err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		row, err := p.parseExpressionList()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		stmt.Rows = append(stmt.Rows, row)
		if !p.match(token.COMMA) {
			return stmt, nil
		}
	}
}

func (p *Parser) parseUpdate() (*ast.UpdateStmt, error) {
	if err := p.expect(token.UPDATE); err != nil {
		return nil, err
	}

	table, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	stmt := &ast.UpdateStmt{Table: table}

	if err := p.expect(token.SET); err != nil {
		return nil, err
	}
	for {
		column, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.EQ); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Assignments = append(stmt.Assignments, ast.Assignment{Column: column, Value: value})
		if !p.match(token.COMMA) {
			break
		}
	}

	if p.match(token.WHERE) {
		where, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}
	return stmt, nil
}

func (p *Parser) parseDelete() (*ast.DeleteStmt, error) {
	if err := p.expect(token.DELETE); err != nil {
		return nil, err
	}
	if err := p.expect(token.FROM); err != nil {
		return nil, err
	}

	table, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	stmt := &ast.DeleteStmt{Table: table}

	if p.match(token.WHERE) {
		where, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}
	return stmt, nil
}

package parser

// DDL parsing.
//
// Grammar:
//
//	create_table   → CREATE TABLE [IF NOT EXISTS] qualified_name
//	                 "(" table_item ("," table_item)* ")"
//	table_item     → table_constraint | column_def
//	column_def     → identifier data_type column_constraint*
//	data_type      → identifier ["(" INT ["," INT] ")"] [UNSIGNED | SIGNED]
//	column_constraint
//	               → PRIMARY KEY | NOT NULL | NULL | UNIQUE | AUTO_INCREMENT
//	               | DEFAULT literal | REFERENCES identifier "(" identifier ")"
//	               | CHECK "(" expr ")"
//	table_constraint
//	               → [CONSTRAINT identifier]
//	                 ( PRIMARY KEY "(" ident_list ")"
//	                 | FOREIGN KEY "(" ident_list ")" REFERENCES identifier "(" ident_list ")"
//	                 | UNIQUE "(" ident_list ")"
//	                 | CHECK "(" expr ")" )
//	create_index   → CREATE [UNIQUE] INDEX identifier ON qualified_name "(" ident_list ")"
//	alter_table    → ALTER TABLE qualified_name
//	                 ( ADD [COLUMN] column_def | DROP [COLUMN] identifier | RENAME TO qualified_name )
//	drop_table     → DROP TABLE [IF EXISTS] qualified_name

import (
	"strings"

	"github.com/leapstack-labs/sqldoc/pkg/ast"
	"github.com/leapstack-labs/sqldoc/pkg/token"
)

// parseCreate dispatches CREATE TABLE vs CREATE [UNIQUE] INDEX.
func (p *Parser) parseCreate() (ast.Statement, error) {
	if err := p.expect(token.CREATE); err != nil {
		return nil, err
	}
	switch p.token().Type {
	case token.TABLE:
		p.next()
		return p.parseCreateTable()
	case token.UNIQUE, token.INDEX:
		return p.parseCreateIndex()
	default:
		return nil, p.unexpected(token.TABLE)
	}
}

func (p *Parser) parseCreateTable() (*ast.CreateTableStmt, error) {
	stmt := &ast.CreateTableStmt{}

	if p.check(token.IF) {
		p.next()
		if err := p.expect(token.NOT); err != nil {
			return nil, err
		}
		if err := p.expect(token.EXISTS); err != nil {
			return nil, err
		}
		stmt.IfNotExists = true
	}

	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	stmt.Name = name

	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	for {
		if p.match(token.RPAREN) {
			return stmt, nil
		}

		if con, ok, err := p.parseTableConstraint(); err != nil {
			return nil, err
		} else if ok {
			stmt.Constraints = append(stmt.Constraints, con)
		} else {
			col, err := p.parseColumnDefinition()
			if err != nil {
				return nil, err
			}
			stmt.Columns = append(stmt.Columns, col)
		}

		if p.match(token.COMMA) {
			continue
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return stmt, nil
	}
}

// parseTableConstraint parses a table-level constraint if one starts at
// the current token. Returns ok=false when the current token starts a
// column definition instead.
func (p *Parser) parseTableConstraint() (ast.TableConstraint, bool, error) {
	var name string
	if p.check(token.CONSTRAINT) {
		p.next()
		n, err := p.parseIdentifier()
		if err != nil {
			return nil, false, err
		}
		name = n
	}

	switch p.token().Type {
	case token.PRIMARY:
		p.next()
		if err := p.expect(token.KEY); err != nil {
			return nil, false, err
		}
		cols, err := p.parseParenIdentifierList()
		if err != nil {
			return nil, false, err
		}
		return ast.PrimaryKeyConstraint{Columns: cols}, true, nil

	case token.FOREIGN:
		p.next()
		if err := p.expect(token.KEY); err != nil {
			return nil, false, err
		}
		cols, err := p.parseParenIdentifierList()
		if err != nil {
			return nil, false, err
		}
		if err := p.expect(token.REFERENCES); err != nil {
			return nil, false, err
		}
		refTable, err := p.parseIdentifier()
		if err != nil {
			return nil, false, err
		}
		refCols, err := p.parseParenIdentifierList()
		if err != nil {
			return nil, false, err
		}
		return ast.ForeignKeyConstraint{
			Name:       name,
			Columns:    cols,
			RefTable:   refTable,
			RefColumns: refCols,
		}, true, nil

	case token.UNIQUE:
		// UNIQUE (cols) is a table constraint; UNIQUE on its own would be
		// a column constraint, but a column definition never starts with it.
		p.next()
		cols, err := p.parseParenIdentifierList()
		if err != nil {
			return nil, false, err
		}
		return ast.UniqueConstraint{Name: name, Columns: cols}, true, nil

	case token.CHECK:
		p.next()
		if err := p.expect(token.LPAREN); err != nil {
			return nil, false, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, false, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, false, err
		}
		return ast.CheckConstraint{Name: name, Expr: expr}, true, nil
	}

	if name != "" {
		return nil, false, p.errorf("expected constraint after CONSTRAINT %s", name)
	}
	return nil, false, nil
}

func (p *Parser) parseParenIdentifierList() ([]string, error) {
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cols, err := p.parseIdentifierList()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return cols, nil
}

func (p *Parser) parseColumnDefinition() (ast.ColumnDefinition, error) {
	var col ast.ColumnDefinition

	name, err := p.parseIdentifier()
	if err != nil {
		return col, err
	}
	col.Name = name

	dataType, serial, err := p.parseDataType()
	if err != nil {
		return col, err
	}
	col.Type = dataType
	if serial {
		// SERIAL-style types imply auto-increment and NOT NULL.
		col.Constraints = append(col.Constraints, ast.AutoIncrement{}, ast.NotNull{})
	}

	cons, err := p.parseColumnConstraints()
	if err != nil {
		return col, err
	}
	col.Constraints = append(col.Constraints, cons...)
	return col, nil
}

// parseDataType consumes a type name with optional parenthesized
// arguments and an optional UNSIGNED/SIGNED suffix. The dialect's type
// aliases are applied before dispatch; serial reports types that imply
// auto-increment (e.g. SERIAL).
func (p *Parser) parseDataType() (ast.DataType, bool, error) {
	tok := p.token()
	if tok.Type != token.IDENT {
		return nil, false, p.errorf(ErrExpectedDataType, tok.Type)
	}
	p.next()

	canonical, serial := p.dialect.ResolveTypeName(tok.Literal)

	// DOUBLE PRECISION reads as two words.
	if canonical == "DOUBLE" && p.check(token.IDENT) &&
		strings.EqualFold(p.token().Literal, "precision") {
		p.next()
	}

	var arg1, arg2 int
	if p.match(token.LPAREN) {
		if !p.check(token.INT) {
			return nil, false, p.unexpected(token.INT)
		}
		arg1 = int(p.token().Int)
		p.next()
		if p.match(token.COMMA) {
			if !p.check(token.INT) {
				return nil, false, p.unexpected(token.INT)
			}
			arg2 = int(p.token().Int)
			p.next()
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, false, err
		}
	}

	unsigned := false
	switch p.token().Type {
	case token.UNSIGNED:
		unsigned = true
		p.next()
	case token.SIGNED:
		p.next()
	}

	switch canonical {
	case "INT", "INTEGER":
		size := 32
		if arg1 != 0 {
			size = arg1
		}
		return ast.IntegerType{Size: size, Unsigned: unsigned}, serial, nil
	case "BIGINT":
		return ast.BigIntType{Unsigned: unsigned}, serial, nil
	case "SMALLINT":
		return ast.SmallIntType{Unsigned: unsigned}, serial, nil
	case "TINYINT":
		return ast.TinyIntType{Unsigned: unsigned}, serial, nil
	case "VARCHAR":
		return ast.VarcharType{Length: arg1}, serial, nil
	case "CHAR", "CHARACTER":
		return ast.CharType{Length: arg1}, serial, nil
	case "TEXT":
		return ast.TextType{}, serial, nil
	case "BOOLEAN", "BOOL":
		return ast.BooleanType{}, serial, nil
	case "FLOAT":
		return ast.FloatType{Precision: arg1}, serial, nil
	case "DOUBLE":
		return ast.DoubleType{}, serial, nil
	case "DECIMAL", "NUMERIC":
		return ast.DecimalType{Precision: arg1, Scale: arg2}, serial, nil
	case "DATE":
		return ast.DateType{}, serial, nil
	case "TIME":
		return ast.TimeType{}, serial, nil
	case "DATETIME":
		return ast.DateTimeType{}, serial, nil
	case "TIMESTAMP":
		return ast.TimestampType{}, serial, nil
	case "JSON", "JSONB":
		return ast.JSONType{}, serial, nil
	case "UUID":
		return ast.UUIDType{}, serial, nil
	case "BLOB", "BINARY", "VARBINARY":
		return ast.BlobType{}, serial, nil
	default:
		return ast.CustomType{Name: canonical}, serial, nil
	}
}

func (p *Parser) parseColumnConstraints() ([]ast.ColumnConstraint, error) {
	var cons []ast.ColumnConstraint
	for {
		switch p.token().Type {
		case token.NOT:
			p.next()
			if err := p.expect(token.NULL); err != nil {
				return nil, err
			}
			cons = append(cons, ast.NotNull{})

		case token.NULL:
			p.next()
			cons = append(cons, ast.Null{})

		case token.PRIMARY:
			p.next()
			if err := p.expect(token.KEY); err != nil {
				return nil, err
			}
			cons = append(cons, ast.PrimaryKey{})

		case token.UNIQUE:
			p.next()
			cons = append(cons, ast.Unique{})

		case token.AUTO_INCREMENT:
			p.next()
			// IDENTITY(seed, increment) carries arguments.
			if p.match(token.LPAREN) {
				if err := p.expect(token.INT); err != nil {
					return nil, err
				}
				if p.match(token.COMMA) {
					if err := p.expect(token.INT); err != nil {
						return nil, err
					}
				}
				if err := p.expect(token.RPAREN); err != nil {
					return nil, err
				}
			}
			cons = append(cons, ast.AutoIncrement{})

		case token.DEFAULT:
			p.next()
			value, err := p.parseDefaultValue()
			if err != nil {
				return nil, err
			}
			cons = append(cons, ast.DefaultValue{Value: value})

		case token.REFERENCES:
			p.next()
			refTable, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.LPAREN); err != nil {
				return nil, err
			}
			refColumn, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			cons = append(cons, ast.ForeignKeyRef{Table: refTable, Column: refColumn})

		case token.CHECK:
			p.next()
			if err := p.expect(token.LPAREN); err != nil {
				return nil, err
			}
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			cons = append(cons, ast.CheckClause{Expr: expr})

		default:
			return cons, nil
		}
	}
}

// parseDefaultValue reads a DEFAULT literal and returns its rendered
// text form ('text', 42, 4.5, TRUE, NULL, CURRENT_TIMESTAMP).
func (p *Parser) parseDefaultValue() (string, error) {
	tok := p.token()
	switch tok.Type {
	case token.STRING:
		p.next()
		return "'" + tok.Literal + "'", nil
	case token.INT, token.FLOAT:
		p.next()
		return tok.Literal, nil
	case token.MINUS:
		p.next()
		num := p.token()
		if num.Type != token.INT && num.Type != token.FLOAT {
			return "", p.unexpected(token.INT)
		}
		p.next()
		return "-" + num.Literal, nil
	case token.BOOL:
		p.next()
		return strings.ToUpper(tok.Literal), nil
	case token.NULL:
		p.next()
		return "NULL", nil
	case token.IDENT:
		// Function-style defaults such as CURRENT_TIMESTAMP or NOW().
		p.next()
		name := strings.ToUpper(tok.Literal)
		if p.match(token.LPAREN) {
			if err := p.expect(token.RPAREN); err != nil {
				return "", err
			}
			name += "()"
		}
		return name, nil
	default:
		return "", p.errorf("expected default value, found %s", tok.Type)
	}
}

func (p *Parser) parseCreateIndex() (*ast.CreateIndexStmt, error) {
	stmt := &ast.CreateIndexStmt{}
	if p.match(token.UNIQUE) {
		stmt.Unique = true
	}
	if err := p.expect(token.INDEX); err != nil {
		return nil, err
	}

	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	stmt.Name = name

	if err := p.expect(token.ON); err != nil {
		return nil, err
	}
	table, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	stmt.Table = table

	cols, err := p.parseParenIdentifierList()
	if err != nil {
		return nil, err
	}
	stmt.Columns = cols
	return stmt, nil
}

func (p *Parser) parseAlterTable() (*ast.AlterTableStmt, error) {
	if err := p.expect(token.ALTER); err != nil {
		return nil, err
	}
	if err := p.expect(token.TABLE); err != nil {
		return nil, err
	}

	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	stmt := &ast.AlterTableStmt{Name: name}

	switch p.token().Type {
	case token.ADD:
		p.next()
		p.match(token.COLUMN)
		col, err := p.parseColumnDefinition()
		if err != nil {
			return nil, err
		}
		stmt.Action = ast.AddColumn{Column: col}

	case token.DROP:
		p.next()
		p.match(token.COLUMN)
		colName, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		stmt.Action = ast.DropColumn{Name: colName}

	case token.RENAME:
		p.next()
		if err := p.expect(token.TO); err != nil {
			return nil, err
		}
		newName, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		stmt.Action = ast.RenameTo{NewName: newName}

	default:
		return nil, p.errorf("expected ADD, DROP, or RENAME, found %s", p.token().Type)
	}

	return stmt, nil
}

func (p *Parser) parseDropTable() (*ast.DropTableStmt, error) {
	if err := p.expect(token.DROP); err != nil {
		return nil, err
	}
	if err := p.expect(token.TABLE); err != nil {
		return nil, err
	}

	stmt := &ast.DropTableStmt{}
	if p.check(token.IF) {
		p.next()
		if err := p.expect(token.EXISTS); err != nil {
			return nil, err
		}
		stmt.IfExists = true
	}

	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	stmt.Name = name
	return stmt, nil
}

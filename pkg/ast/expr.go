package ast

import "github.com/leapstack-labs/sqldoc/pkg/token"

// Expr is an expression node. The variant set is closed.
type Expr interface {
	exprNode()
}

// ColumnRef is a possibly qualified column reference.
type ColumnRef struct {
	Name QualifiedName
}

// IntegerLit is an integer literal.
type IntegerLit struct {
	Value int64
}

// FloatLit is a floating point literal.
type FloatLit struct {
	Value float64
}

// StringLit is a string literal (unquoted text).
type StringLit struct {
	Value string
}

// BoolLit is a TRUE/FALSE literal.
type BoolLit struct {
	Value bool
}

// NullLit is the NULL literal.
type NullLit struct{}

// Placeholder is a ? parameter marker.
type Placeholder struct{}

// BinaryExpr applies a binary operator. Op is the operator's token type
// (arithmetic, comparison, logical, bitwise, or concat).
type BinaryExpr struct {
	Left  Expr
	Op    token.TokenType
	Right Expr
}

// UnaryExpr applies a prefix operator (-, NOT, ~).
type UnaryExpr struct {
	Op      token.TokenType
	Operand Expr
}

// IsNullExpr is an IS [NOT] NULL test.
type IsNullExpr struct {
	Operand Expr
	Negated bool
}

// InExpr is an [NOT] IN (list) test.
type InExpr struct {
	Operand Expr
	List    []Expr
	Negated bool
}

// BetweenExpr is a [NOT] BETWEEN low AND high test.
type BetweenExpr struct {
	Operand Expr
	Low     Expr
	High    Expr
	Negated bool
}

// LikeExpr is a [NOT] LIKE/ILIKE pattern test.
type LikeExpr struct {
	Operand         Expr
	Pattern         Expr
	Negated         bool
	CaseInsensitive bool
}

// FuncCall is a function invocation. Star is set for COUNT(*).
type FuncCall struct {
	Name     string
	Args     []Expr
	Distinct bool
	Star     bool
}

// WhenClause is one WHEN ... THEN ... arm of a CASE expression.
type WhenClause struct {
	Cond   Expr
	Result Expr
}

// CaseExpr is a CASE expression. Operand is nil for searched CASE.
type CaseExpr struct {
	Operand Expr
	Whens   []WhenClause
	Else    Expr
}

// CastExpr is a CAST(expr AS type) or expr::type conversion.
type CastExpr struct {
	Operand Expr
	Type    DataType
}

func (ColumnRef) exprNode()   {}
func (IntegerLit) exprNode()  {}
func (FloatLit) exprNode()    {}
func (StringLit) exprNode()   {}
func (BoolLit) exprNode()     {}
func (NullLit) exprNode()     {}
func (Placeholder) exprNode() {}
func (BinaryExpr) exprNode()  {}
func (UnaryExpr) exprNode()   {}
func (IsNullExpr) exprNode()  {}
func (InExpr) exprNode()      {}
func (BetweenExpr) exprNode() {}
func (LikeExpr) exprNode()    {}
func (FuncCall) exprNode()    {}
func (CaseExpr) exprNode()    {}
func (CastExpr) exprNode()    {}

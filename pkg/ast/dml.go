package ast

// SelectStmt is a SELECT statement.
type SelectStmt struct {
	With     []CTE
	Distinct bool
	Items    []SelectItem
	From     []TableRef
	Joins    []JoinClause
	Where    Expr
	GroupBy  []Expr
	Having   Expr
	OrderBy  []OrderByItem
	Limit    *int64
	Offset   *int64
	Compound []SetOp
}

// InsertStmt is an INSERT ... VALUES statement.
type InsertStmt struct {
	Table   QualifiedName
	Columns []string
	Rows    [][]Expr
}

// UpdateStmt is an UPDATE statement.
type UpdateStmt struct {
	Table       QualifiedName
	Assignments []Assignment
	Where       Expr
}

// DeleteStmt is a DELETE statement.
type DeleteStmt struct {
	Table QualifiedName
	Where Expr
}

func (*SelectStmt) stmtNode() {}
func (*InsertStmt) stmtNode() {}
func (*UpdateStmt) stmtNode() {}
func (*DeleteStmt) stmtNode() {}

func (*SelectStmt) dmlNode() {}
func (*InsertStmt) dmlNode() {}
func (*UpdateStmt) dmlNode() {}
func (*DeleteStmt) dmlNode() {}

// CTE is one common table expression in a WITH clause.
type CTE struct {
	Name      string
	Columns   []string
	Recursive bool
	Query     *SelectStmt
}

// SelectItem is one entry in a select list.
type SelectItem interface {
	selectItemNode()
}

// ExprItem is an expression with an optional alias.
type ExprItem struct {
	Expr  Expr
	Alias string
}

// StarItem is a bare * select item.
type StarItem struct{}

// QualifiedStarItem is a t.* select item.
type QualifiedStarItem struct {
	Qualifier string
}

func (ExprItem) selectItemNode()          {}
func (StarItem) selectItemNode()          {}
func (QualifiedStarItem) selectItemNode() {}

// TableRef is a table reference in a FROM clause.
type TableRef struct {
	Name  QualifiedName
	Alias string
}

// JoinKind distinguishes the join flavors.
type JoinKind int

const (
	JoinInner JoinKind = iota
	JoinLeft
	JoinRight
	JoinFull
	JoinCross
)

// String returns the SQL keyword form of the join kind.
func (k JoinKind) String() string {
	switch k {
	case JoinLeft:
		return "LEFT JOIN"
	case JoinRight:
		return "RIGHT JOIN"
	case JoinFull:
		return "FULL JOIN"
	case JoinCross:
		return "CROSS JOIN"
	default:
		return "INNER JOIN"
	}
}

// JoinClause is one JOIN in a FROM chain. Exactly one of On or Using is
// set when a condition is present.
type JoinClause struct {
	Kind  JoinKind
	Table TableRef
	On    Expr
	Using []string
}

// OrderByItem is one ORDER BY entry.
type OrderByItem struct {
	Expr Expr
	Desc bool
}

// SetOpKind distinguishes compound query operators.
type SetOpKind int

const (
	SetUnion SetOpKind = iota
	SetIntersect
	SetExcept
)

// SetOp is a UNION/INTERSECT/EXCEPT tail on a SELECT.
type SetOp struct {
	Kind  SetOpKind
	All   bool
	Query *SelectStmt
}

// Assignment is one column = value pair in an UPDATE SET list.
type Assignment struct {
	Column string
	Value  Expr
}

package ast

// CreateTableStmt is a CREATE TABLE statement.
type CreateTableStmt struct {
	Name        QualifiedName
	IfNotExists bool
	Columns     []ColumnDefinition
	Constraints []TableConstraint
}

// AlterTableStmt is an ALTER TABLE statement with a single action.
type AlterTableStmt struct {
	Name   QualifiedName
	Action AlterAction
}

// DropTableStmt is a DROP TABLE statement.
type DropTableStmt struct {
	Name     QualifiedName
	IfExists bool
}

// CreateIndexStmt is a CREATE [UNIQUE] INDEX statement.
type CreateIndexStmt struct {
	Name    string
	Table   QualifiedName
	Columns []string
	Unique  bool
}

func (*CreateTableStmt) stmtNode() {}
func (*AlterTableStmt) stmtNode()  {}
func (*DropTableStmt) stmtNode()   {}
func (*CreateIndexStmt) stmtNode() {}

func (*CreateTableStmt) ddlNode() {}
func (*AlterTableStmt) ddlNode()  {}
func (*DropTableStmt) ddlNode()   {}
func (*CreateIndexStmt) ddlNode() {}

// ColumnDefinition is one column in a CREATE TABLE statement.
type ColumnDefinition struct {
	Name        string
	Type        DataType
	Constraints []ColumnConstraint
}

// IsPrimaryKey reports whether the column carries a PRIMARY KEY constraint.
func (c ColumnDefinition) IsPrimaryKey() bool {
	for _, con := range c.Constraints {
		if _, ok := con.(PrimaryKey); ok {
			return true
		}
	}
	return false
}

// IsNullable reports whether the column accepts NULL. Columns are nullable
// unless marked NOT NULL or PRIMARY KEY.
func (c ColumnDefinition) IsNullable() bool {
	for _, con := range c.Constraints {
		switch con.(type) {
		case NotNull, PrimaryKey:
			return false
		}
	}
	return true
}

// ForeignKey returns the column's foreign-key constraint, if any.
func (c ColumnDefinition) ForeignKey() (ForeignKeyRef, bool) {
	for _, con := range c.Constraints {
		if fk, ok := con.(ForeignKeyRef); ok {
			return fk, true
		}
	}
	return ForeignKeyRef{}, false
}

// ColumnConstraint is a constraint attached to a single column.
type ColumnConstraint interface {
	colConstraintNode()
}

// PrimaryKey marks the column as (part of) the primary key.
type PrimaryKey struct{}

// AutoIncrement marks the column as auto-incrementing.
type AutoIncrement struct{}

// NotNull forbids NULL values.
type NotNull struct{}

// Null explicitly permits NULL values (the default).
type Null struct{}

// Unique requires distinct values.
type Unique struct{}

// ForeignKeyRef references a column in another table.
type ForeignKeyRef struct {
	Table  string
	Column string
}

// DefaultValue carries the rendered text form of a DEFAULT literal,
// e.g. 'guest', 0, NULL, TRUE.
type DefaultValue struct {
	Value string
}

// CheckClause is an inline CHECK constraint.
type CheckClause struct {
	Expr Expr
}

func (PrimaryKey) colConstraintNode()    {}
func (AutoIncrement) colConstraintNode() {}
func (NotNull) colConstraintNode()       {}
func (Null) colConstraintNode()          {}
func (Unique) colConstraintNode()        {}
func (ForeignKeyRef) colConstraintNode() {}
func (DefaultValue) colConstraintNode()  {}
func (CheckClause) colConstraintNode()   {}

// TableConstraint is a table-level constraint in a CREATE TABLE statement.
type TableConstraint interface {
	tableConstraintNode()
}

// PrimaryKeyConstraint is a table-level PRIMARY KEY (cols) constraint.
type PrimaryKeyConstraint struct {
	Columns []string
}

// ForeignKeyConstraint is a table-level FOREIGN KEY ... REFERENCES constraint.
type ForeignKeyConstraint struct {
	Name       string
	Columns    []string
	RefTable   string
	RefColumns []string
}

// UniqueConstraint is a table-level UNIQUE (cols) constraint.
type UniqueConstraint struct {
	Name    string
	Columns []string
}

// CheckConstraint is a table-level CHECK constraint.
type CheckConstraint struct {
	Name string
	Expr Expr
}

func (PrimaryKeyConstraint) tableConstraintNode() {}
func (ForeignKeyConstraint) tableConstraintNode() {}
func (UniqueConstraint) tableConstraintNode()     {}
func (CheckConstraint) tableConstraintNode()      {}

// AlterAction is the single action of an ALTER TABLE statement.
type AlterAction interface {
	alterActionNode()
}

// AddColumn adds a column to the table.
type AddColumn struct {
	Column ColumnDefinition
}

// DropColumn removes a column from the table.
type DropColumn struct {
	Name string
}

// RenameTo renames the table.
type RenameTo struct {
	NewName QualifiedName
}

func (AddColumn) alterActionNode()  {}
func (DropColumn) alterActionNode() {}
func (RenameTo) alterActionNode()   {}

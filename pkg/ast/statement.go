// Package ast defines the abstract syntax tree for the supported SQL
// subset. Statement kinds are closed variant sets implemented with marker
// methods, so consumers can type-switch exhaustively.
package ast

// Statement is a single parsed SQL statement, either DDL or DML.
type Statement interface {
	stmtNode()
}

// DDLStatement is a schema-defining statement (CREATE/ALTER/DROP).
type DDLStatement interface {
	Statement
	ddlNode()
}

// DMLStatement is a data-access statement (SELECT/INSERT/UPDATE/DELETE).
type DMLStatement interface {
	Statement
	dmlNode()
}

package model

import "fmt"

// ErrorKind classifies a model error.
type ErrorKind int32

const (
	// UnresolvedReference marks a foreign key whose target table is not
	// in the statement set.
	UnresolvedReference ErrorKind = iota
	// UnknownColumn marks a constraint or index naming a column the
	// table does not have.
	UnknownColumn
	// DuplicateEntity marks a second CREATE TABLE for an existing table
	// without IF NOT EXISTS.
	DuplicateEntity
	// UnknownEntity marks an ALTER TABLE or CREATE INDEX against a table
	// not in the statement set.
	UnknownEntity
)

func (k ErrorKind) String() string {
	switch k {
	case UnresolvedReference:
		return "unresolved reference"
	case UnknownColumn:
		return "unknown column"
	case DuplicateEntity:
		return "duplicate entity"
	case UnknownEntity:
		return "unknown entity"
	default:
		return "model error"
	}
}

// Error is a semantic error collected during model building. Model errors
// never abort the build; they ride alongside the partial model.
type Error struct {
	Kind    ErrorKind
	Context string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Context)
}

func (b *builder) errorf(kind ErrorKind, format string, args ...any) {
	b.model.Errors = append(b.model.Errors, &Error{
		Kind:    kind,
		Context: fmt.Sprintf(format, args...),
	})
}

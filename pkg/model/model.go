// Package model builds an entity-relationship domain model from parsed
// DDL statements.
//
// The builder consumes the full statement set for a schema in one pass:
// CREATE TABLE statements become entities, primary-key and unique
// constraints become indexes, and foreign keys become directed edges that
// are classified into relationships. Junction tables are detected and
// collapsed into many-to-many relationships between the entities they
// associate.
//
// Unlike the parser, the builder collects semantic errors instead of
// failing fast: a schema with one dangling foreign key still produces a
// model for everything else.
package model

import (
	"errors"
	"slices"
)

// Cardinality classifies a relationship between two entities.
type Cardinality int32

const (
	OneToOne Cardinality = iota
	OneToMany
	ManyToMany
)

func (c Cardinality) String() string {
	switch c {
	case OneToOne:
		return "one-to-one"
	case OneToMany:
		return "one-to-many"
	case ManyToMany:
		return "many-to-many"
	default:
		return "unknown"
	}
}

// ConstraintKind classifies an entity constraint.
type ConstraintKind int32

const (
	ConstraintPrimaryKey ConstraintKind = iota
	ConstraintForeignKey
	ConstraintUnique
	ConstraintCheck
)

func (k ConstraintKind) String() string {
	switch k {
	case ConstraintPrimaryKey:
		return "PRIMARY KEY"
	case ConstraintForeignKey:
		return "FOREIGN KEY"
	case ConstraintUnique:
		return "UNIQUE"
	case ConstraintCheck:
		return "CHECK"
	default:
		return "unknown"
	}
}

// Field is one column of an entity.
type Field struct {
	Name          string
	DataType      string
	Nullable      bool
	PrimaryKey    bool
	AutoIncrement bool
	Unique        bool
	Default       string
}

// Constraint is a named constraint on an entity. Columns are in
// declaration order. RefTable and RefColumns are set only for foreign
// keys.
type Constraint struct {
	Kind       ConstraintKind
	Name       string
	Columns    []string
	RefTable   string
	RefColumns []string
}

// Index is a derived or explicit index on an entity.
type Index struct {
	Name    string
	Columns []string
	Unique  bool
}

// Entity is one table of the schema.
type Entity struct {
	Name        string
	Schema      string
	Fields      []Field
	Constraints []Constraint
	Indexes     []Index
}

// Field returns the entity's field with the given name.
func (e *Entity) Field(name string) (*Field, bool) {
	for i := range e.Fields {
		if e.Fields[i].Name == name {
			return &e.Fields[i], true
		}
	}
	return nil, false
}

// PrimaryKeyColumns returns the entity's primary-key columns in
// declaration order.
func (e *Entity) PrimaryKeyColumns() []string {
	var cols []string
	for _, f := range e.Fields {
		if f.PrimaryKey {
			cols = append(cols, f.Name)
		}
	}
	return cols
}

// HasUniqueColumns reports whether the given column set is unique on the
// entity, via the primary key, a unique field, or a unique index.
func (e *Entity) HasUniqueColumns(cols []string) bool {
	if len(cols) == 0 {
		return false
	}
	if sameColumnSet(e.PrimaryKeyColumns(), cols) {
		return true
	}
	if len(cols) == 1 {
		if f, ok := e.Field(cols[0]); ok && f.Unique {
			return true
		}
	}
	for _, idx := range e.Indexes {
		if idx.Unique && sameColumnSet(idx.Columns, cols) {
			return true
		}
	}
	return false
}

// Relationship connects two entities by name. Entities are referenced by
// name, never by pointer; resolve with Model.Entity at consumption time.
// For one-to-one and one-to-many, From is the referenced ("one") side and
// Columns holds the referencing foreign-key columns on To. For
// many-to-many, ViaJunction names the junction entity and Columns is
// empty.
type Relationship struct {
	From        string
	To          string
	Cardinality Cardinality
	ViaJunction string
	Columns     []string
}

// Model is the built domain model. Entities and relationships follow
// input statement order, then declaration order, so output is
// reproducible for the same input.
type Model struct {
	Entities      []Entity
	Relationships []Relationship
	Errors        []*Error
}

// Entity returns the entity with the given (unqualified) name.
func (m *Model) Entity(name string) (*Entity, bool) {
	for i := range m.Entities {
		if m.Entities[i].Name == name {
			return &m.Entities[i], true
		}
	}
	return nil, false
}

// Err returns all collected model errors joined into one error, or nil.
func (m *Model) Err() error {
	errs := make([]error, len(m.Errors))
	for i, e := range m.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// sameColumnSet reports whether a and b contain the same columns,
// ignoring order.
func sameColumnSet(a, b []string) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}
	as := slices.Clone(a)
	bs := slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}

package ast

import (
	"fmt"
	"strings"
)

// Identifier is a single name part. Quoted identifiers preserve their
// written case; unquoted identifiers are stored in dialect-folded form.
type Identifier struct {
	Name   string
	Quoted bool
}

// QualifiedName is an ordered, non-empty sequence of identifier parts,
// e.g. public.users.
type QualifiedName struct {
	Parts []Identifier
}

// Name builds an unquoted QualifiedName from the given parts.
func Name(parts ...string) QualifiedName {
	qn := QualifiedName{Parts: make([]Identifier, len(parts))}
	for i, p := range parts {
		qn.Parts[i] = Identifier{Name: p}
	}
	return qn
}

// ParseQualifiedName parses dot-separated text into a QualifiedName.
// An empty segment (leading, trailing, or doubled dot) is an error.
func ParseQualifiedName(text string) (QualifiedName, error) {
	segments := strings.Split(text, ".")
	qn := QualifiedName{Parts: make([]Identifier, 0, len(segments))}
	for _, seg := range segments {
		if seg == "" {
			return QualifiedName{}, fmt.Errorf("empty identifier segment in %q", text)
		}
		qn.Parts = append(qn.Parts, Identifier{Name: seg})
	}
	return qn, nil
}

// String returns the dot-joined text form. ParseQualifiedName(qn.String())
// round-trips for any name built from non-empty parts.
func (qn QualifiedName) String() string {
	parts := make([]string, len(qn.Parts))
	for i, p := range qn.Parts {
		parts[i] = p.Name
	}
	return strings.Join(parts, ".")
}

// Object returns the final (object) part of the name.
func (qn QualifiedName) Object() string {
	if len(qn.Parts) == 0 {
		return ""
	}
	return qn.Parts[len(qn.Parts)-1].Name
}

// Schema returns the part before the object name, if present.
func (qn QualifiedName) Schema() string {
	if len(qn.Parts) < 2 {
		return ""
	}
	return qn.Parts[len(qn.Parts)-2].Name
}

// Equal reports whether two names have the same parts.
func (qn QualifiedName) Equal(other QualifiedName) bool {
	if len(qn.Parts) != len(other.Parts) {
		return false
	}
	for i, p := range qn.Parts {
		if p.Name != other.Parts[i].Name {
			return false
		}
	}
	return true
}

// TableMetadata is a simplified, string-typed view of a table for callers
// that do not need the full DDL AST (ad hoc construction, dialects that
// only report type names as free text).
type TableMetadata struct {
	Name    string
	Schema  string
	Columns []ColumnMetadata
}

// ColumnMetadata is the string-typed view of a column. Columns are
// nullable until explicitly marked otherwise, mirroring SQL's default.
type ColumnMetadata struct {
	Name     string
	DataType string
	Nullable bool
	Default  string
}

// NewColumnMetadata creates a ColumnMetadata with the SQL default of
// nullable = true.
func NewColumnMetadata(name, dataType string) ColumnMetadata {
	return ColumnMetadata{
		Name:     name,
		DataType: dataType,
		Nullable: true,
	}
}

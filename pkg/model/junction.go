package model

import (
	"slices"
	"strings"
)

// JunctionPolicy decides when a table with two foreign keys counts as a
// junction (association) table. The primary rule is key coverage: the
// fraction of the table's primary-key columns that are themselves
// foreign-key columns must reach MinKeyCoverage. With NameHints enabled,
// a table whose name follows an association naming convention is
// accepted even when its key coverage falls short.
//
// The default requires the whole primary key to come from the foreign
// keys and ignores names. Schemas that add a surrogate id column to
// their junction tables can lower the threshold, e.g. 0.5 to accept a
// majority, or turn on NameHints.
type JunctionPolicy struct {
	// MinKeyCoverage is the required fraction of primary-key columns
	// covered by foreign-key columns, in (0, 1]. Values outside the
	// range fall back to 1.
	MinKeyCoverage float64

	// NameHints also accepts tables whose name suggests an association
	// table (see NameSuggestsJunction).
	NameHints bool
}

// DefaultJunctionPolicy requires every primary-key column to be a
// foreign-key column.
func DefaultJunctionPolicy() JunctionPolicy {
	return JunctionPolicy{MinKeyCoverage: 1}
}

// junctionNameMarkers are substrings conventionally found in association
// table names.
var junctionNameMarkers = []string{"_to_", "_and_", "junction", "link", "bridge", "xref"}

// NameSuggestsJunction reports whether the table name follows an
// association-table naming convention, e.g. users_to_tags or role_link.
func NameSuggestsJunction(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range junctionNameMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Accepts reports whether the entity qualifies as a junction under this
// policy, given its foreign-key columns.
func (p JunctionPolicy) Accepts(entity *Entity, fkColumns []string) bool {
	if p.Covers(entity, fkColumns) {
		return true
	}
	return p.NameHints && NameSuggestsJunction(entity.Name)
}

// Covers reports whether the entity's primary key is sufficiently covered
// by the given foreign-key columns. Entities without a primary key are
// never junctions.
func (p JunctionPolicy) Covers(entity *Entity, fkColumns []string) bool {
	pk := entity.PrimaryKeyColumns()
	if len(pk) == 0 {
		return false
	}

	threshold := p.MinKeyCoverage
	if threshold <= 0 || threshold > 1 {
		threshold = 1
	}

	covered := 0
	for _, col := range pk {
		if slices.Contains(fkColumns, col) {
			covered++
		}
	}
	return float64(covered)/float64(len(pk)) >= threshold
}

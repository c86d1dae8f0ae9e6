package model

import (
	"strings"

	"github.com/leapstack-labs/sqldoc/pkg/ast"
)

// builder accumulates entities across the statement set, then derives
// relationships once the whole schema is known. Junction inference is a
// whole-schema analysis, so nothing is classified until the final pass.
type builder struct {
	policy JunctionPolicy
	model  *Model
	index  map[string]int // entity name -> position in model.Entities
}

// Build builds a domain model from parsed statements using the default
// junction policy. DML statements and DROP TABLE are accepted but
// contribute nothing.
func Build(stmts []ast.Statement) *Model {
	return BuildWithPolicy(stmts, DefaultJunctionPolicy())
}

// BuildWithPolicy builds a domain model with an explicit junction policy.
func BuildWithPolicy(stmts []ast.Statement, policy JunctionPolicy) *Model {
	b := &builder{
		policy: policy,
		model:  &Model{},
		index:  make(map[string]int),
	}
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.CreateTableStmt:
			b.createTable(s)
		case *ast.CreateIndexStmt:
			b.createIndex(s)
		case *ast.AlterTableStmt:
			b.alterTable(s)
		}
	}
	b.buildRelationships()
	return b.model
}

// entity returns the tracked entity with the given name.
func (b *builder) entity(name string) (*Entity, bool) {
	i, ok := b.index[name]
	if !ok {
		return nil, false
	}
	return &b.model.Entities[i], true
}

// ---------- Statement Handling ----------

func (b *builder) createTable(stmt *ast.CreateTableStmt) {
	name := stmt.Name.Object()
	if _, ok := b.index[name]; ok {
		// First definition wins either way.
		if !stmt.IfNotExists {
			b.errorf(DuplicateEntity, "table %s is defined more than once", name)
		}
		return
	}

	entity := Entity{Name: name, Schema: stmt.Name.Schema()}
	for _, col := range stmt.Columns {
		b.addColumn(&entity, col)
	}
	for _, con := range stmt.Constraints {
		b.addTableConstraint(&entity, con)
	}
	b.finalizePrimaryKey(&entity)

	b.index[name] = len(b.model.Entities)
	b.model.Entities = append(b.model.Entities, entity)
}

func (b *builder) createIndex(stmt *ast.CreateIndexStmt) {
	name := stmt.Table.Object()
	entity, ok := b.entity(name)
	if !ok {
		b.errorf(UnknownEntity, "index %s targets unknown table %s", stmt.Name, name)
		return
	}
	for _, col := range stmt.Columns {
		if _, ok := entity.Field(col); !ok {
			b.errorf(UnknownColumn, "index %s names column %s not defined on table %s",
				stmt.Name, col, name)
		}
	}
	entity.Indexes = append(entity.Indexes, Index{
		Name:    stmt.Name,
		Columns: stmt.Columns,
		Unique:  stmt.Unique,
	})
}

func (b *builder) alterTable(stmt *ast.AlterTableStmt) {
	name := stmt.Name.Object()
	entity, ok := b.entity(name)
	if !ok {
		b.errorf(UnknownEntity, "ALTER TABLE targets unknown table %s", name)
		return
	}

	switch action := stmt.Action.(type) {
	case ast.AddColumn:
		b.addColumn(entity, action.Column)
		if action.Column.IsPrimaryKey() {
			b.refreshPrimaryKey(entity)
		}
	case ast.DropColumn:
		b.dropColumn(entity, action.Name)
	case ast.RenameTo:
		newName := action.NewName.Object()
		delete(b.index, entity.Name)
		b.index[newName] = b.indexOf(entity)
		entity.Name = newName
		if schema := action.NewName.Schema(); schema != "" {
			entity.Schema = schema
		}
	}
}

func (b *builder) indexOf(entity *Entity) int {
	for i := range b.model.Entities {
		if &b.model.Entities[i] == entity {
			return i
		}
	}
	return -1
}

// ---------- Columns and Constraints ----------

func (b *builder) addColumn(entity *Entity, col ast.ColumnDefinition) {
	field := Field{
		Name:       col.Name,
		DataType:   col.Type.String(),
		Nullable:   col.IsNullable(),
		PrimaryKey: col.IsPrimaryKey(),
	}
	for _, con := range col.Constraints {
		switch c := con.(type) {
		case ast.AutoIncrement:
			field.AutoIncrement = true
		case ast.Unique:
			field.Unique = true
			entity.Constraints = append(entity.Constraints, Constraint{
				Kind:    ConstraintUnique,
				Columns: []string{col.Name},
			})
		case ast.DefaultValue:
			field.Default = c.Value
		case ast.ForeignKeyRef:
			entity.Constraints = append(entity.Constraints, Constraint{
				Kind:       ConstraintForeignKey,
				Columns:    []string{col.Name},
				RefTable:   c.Table,
				RefColumns: []string{c.Column},
			})
		case ast.CheckClause:
			entity.Constraints = append(entity.Constraints, Constraint{
				Kind:    ConstraintCheck,
				Columns: []string{col.Name},
			})
		}
	}
	entity.Fields = append(entity.Fields, field)
}

func (b *builder) addTableConstraint(entity *Entity, con ast.TableConstraint) {
	switch c := con.(type) {
	case ast.PrimaryKeyConstraint:
		b.markPrimaryKey(entity, c.Columns)
	case ast.ForeignKeyConstraint:
		b.checkColumns(entity, c.Columns, "foreign key")
		entity.Constraints = append(entity.Constraints, Constraint{
			Kind:       ConstraintForeignKey,
			Name:       c.Name,
			Columns:    c.Columns,
			RefTable:   c.RefTable,
			RefColumns: c.RefColumns,
		})
	case ast.UniqueConstraint:
		b.checkColumns(entity, c.Columns, "unique constraint")
		if len(c.Columns) == 1 {
			if f, ok := entity.Field(c.Columns[0]); ok {
				f.Unique = true
			}
		}
		entity.Constraints = append(entity.Constraints, Constraint{
			Kind:    ConstraintUnique,
			Name:    c.Name,
			Columns: c.Columns,
		})
	case ast.CheckConstraint:
		entity.Constraints = append(entity.Constraints, Constraint{
			Kind: ConstraintCheck,
			Name: c.Name,
		})
	}
}

func (b *builder) markPrimaryKey(entity *Entity, cols []string) {
	for _, col := range cols {
		f, ok := entity.Field(col)
		if !ok {
			b.errorf(UnknownColumn, "primary key names column %s not defined on table %s",
				col, entity.Name)
			continue
		}
		f.PrimaryKey = true
		f.Nullable = false
	}
}

func (b *builder) checkColumns(entity *Entity, cols []string, what string) {
	for _, col := range cols {
		if _, ok := entity.Field(col); !ok {
			b.errorf(UnknownColumn, "%s names column %s not defined on table %s",
				what, col, entity.Name)
		}
	}
}

// finalizePrimaryKey records the primary key, gathered from inline and
// table-level declarations, as one leading constraint and one index, and
// derives indexes for unique constraints.
func (b *builder) finalizePrimaryKey(entity *Entity) {
	for _, con := range entity.Constraints {
		if con.Kind != ConstraintUnique {
			continue
		}
		name := con.Name
		if name == "" {
			name = entity.Name + "_" + strings.Join(con.Columns, "_") + "_key"
		}
		entity.Indexes = append(entity.Indexes, Index{
			Name:    name,
			Columns: con.Columns,
			Unique:  true,
		})
	}

	pk := entity.PrimaryKeyColumns()
	if len(pk) == 0 {
		return
	}
	entity.Constraints = append([]Constraint{{
		Kind:    ConstraintPrimaryKey,
		Columns: pk,
	}}, entity.Constraints...)
	entity.Indexes = append([]Index{{
		Name:    entity.Name + "_pkey",
		Columns: pk,
		Unique:  true,
	}}, entity.Indexes...)
}

// refreshPrimaryKey recomputes the primary-key constraint and index after
// an ALTER TABLE changes key membership.
func (b *builder) refreshPrimaryKey(entity *Entity) {
	kept := entity.Constraints[:0]
	for _, con := range entity.Constraints {
		if con.Kind != ConstraintPrimaryKey {
			kept = append(kept, con)
		}
	}
	entity.Constraints = kept

	keptIdx := entity.Indexes[:0]
	for _, idx := range entity.Indexes {
		if idx.Name != entity.Name+"_pkey" {
			keptIdx = append(keptIdx, idx)
		}
	}
	entity.Indexes = keptIdx

	pk := entity.PrimaryKeyColumns()
	if len(pk) == 0 {
		return
	}
	entity.Constraints = append([]Constraint{{
		Kind:    ConstraintPrimaryKey,
		Columns: pk,
	}}, entity.Constraints...)
	entity.Indexes = append([]Index{{
		Name:    entity.Name + "_pkey",
		Columns: pk,
		Unique:  true,
	}}, entity.Indexes...)
}

func (b *builder) dropColumn(entity *Entity, name string) {
	found := false
	fields := entity.Fields[:0]
	for _, f := range entity.Fields {
		if f.Name == name {
			found = true
			continue
		}
		fields = append(fields, f)
	}
	entity.Fields = fields
	if !found {
		b.errorf(UnknownColumn, "DROP COLUMN names column %s not defined on table %s",
			name, entity.Name)
		return
	}

	cons := entity.Constraints[:0]
	for _, con := range entity.Constraints {
		if !containsColumn(con.Columns, name) {
			cons = append(cons, con)
		}
	}
	entity.Constraints = cons

	idxs := entity.Indexes[:0]
	for _, idx := range entity.Indexes {
		if !containsColumn(idx.Columns, name) {
			idxs = append(idxs, idx)
		}
	}
	entity.Indexes = idxs
}

func containsColumn(cols []string, name string) bool {
	for _, c := range cols {
		if c == name {
			return true
		}
	}
	return false
}

// ---------- Relationships ----------

// fkEdge is a resolved foreign-key edge from one entity to another.
type fkEdge struct {
	columns []string // referencing columns on the owning entity
	to      string   // referenced entity name
}

func (b *builder) buildRelationships() {
	for i := range b.model.Entities {
		entity := &b.model.Entities[i]
		edges := b.resolveEdges(entity)

		if b.isJunction(entity, edges) {
			b.model.Relationships = append(b.model.Relationships, Relationship{
				From:        edges[0].to,
				To:          edges[1].to,
				Cardinality: ManyToMany,
				ViaJunction: entity.Name,
			})
			continue
		}

		for _, edge := range edges {
			card := OneToMany
			if entity.HasUniqueColumns(edge.columns) {
				card = OneToOne
			}
			b.model.Relationships = append(b.model.Relationships, Relationship{
				From:        edge.to,
				To:          entity.Name,
				Cardinality: card,
				Columns:     edge.columns,
			})
		}
	}
}

// resolveEdges collects the entity's foreign-key edges, dropping and
// reporting those whose target table is unknown.
func (b *builder) resolveEdges(entity *Entity) []fkEdge {
	var edges []fkEdge
	for _, con := range entity.Constraints {
		if con.Kind != ConstraintForeignKey {
			continue
		}
		target, ok := b.entity(con.RefTable)
		if !ok {
			b.errorf(UnresolvedReference, "table %s: foreign key references unknown table %s",
				entity.Name, con.RefTable)
			continue
		}
		for _, col := range con.RefColumns {
			if _, ok := target.Field(col); !ok {
				b.errorf(UnknownColumn, "table %s: foreign key references unknown column %s.%s",
					entity.Name, con.RefTable, col)
			}
		}
		edges = append(edges, fkEdge{columns: con.Columns, to: target.Name})
	}
	return edges
}

// isJunction reports whether the entity associates exactly two distinct
// entities and satisfies the junction policy.
func (b *builder) isJunction(entity *Entity, edges []fkEdge) bool {
	if len(edges) != 2 || edges[0].to == edges[1].to {
		return false
	}
	var fkCols []string
	for _, edge := range edges {
		fkCols = append(fkCols, edge.columns...)
	}
	return b.policy.Accepts(entity, fkCols)
}

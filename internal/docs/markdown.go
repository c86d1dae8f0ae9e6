// Package docs renders a built domain model into documentation artifacts:
// a markdown reference, a Mermaid ER diagram, and a JSON manifest.
package docs

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/sqldoc/pkg/model"
)

// MarkdownOptions controls the markdown renderer.
type MarkdownOptions struct {
	Title          string
	IncludeDiagram bool
	IncludeIndexes bool
}

// DefaultMarkdownOptions renders everything under a generic title.
func DefaultMarkdownOptions() MarkdownOptions {
	return MarkdownOptions{
		Title:          "Database Schema",
		IncludeDiagram: true,
		IncludeIndexes: true,
	}
}

// RenderMarkdown writes the model as a markdown document: one section per
// entity with a column table, constraint and index listings, a
// relationships section, and optionally an embedded Mermaid diagram.
func RenderMarkdown(w io.Writer, m *model.Model, opts MarkdownOptions) error {
	if _, err := fmt.Fprintf(w, "# %s\n\n", opts.Title); err != nil {
		return err
	}

	for i := range m.Entities {
		if err := renderEntity(w, &m.Entities[i], opts); err != nil {
			return err
		}
	}

	if len(m.Relationships) > 0 {
		if err := renderRelationships(w, m); err != nil {
			return err
		}
	}

	if opts.IncludeDiagram && len(m.Entities) > 0 {
		if _, err := fmt.Fprintln(w, "## Diagram"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "\n```mermaid"); err != nil {
			return err
		}
		if err := RenderMermaid(w, m); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "```"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if len(m.Errors) > 0 {
		if _, err := fmt.Fprintln(w, "## Issues"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		for _, e := range m.Errors {
			if _, err := fmt.Fprintf(w, "- %s\n", e.Error()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func renderEntity(w io.Writer, entity *model.Entity, opts MarkdownOptions) error {
	name := entity.Name
	if entity.Schema != "" {
		name = entity.Schema + "." + name
	}
	if _, err := fmt.Fprintf(w, "## %s\n\n", name); err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Column", "Type", "Nullable", "Default", "Attributes"})
	for _, f := range entity.Fields {
		t.AppendRow(table.Row{
			f.Name,
			f.DataType,
			yesNo(f.Nullable),
			f.Default,
			strings.Join(fieldAttributes(entity, f), ", "),
		})
	}
	t.RenderMarkdown()
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	if len(entity.Constraints) > 0 {
		if _, err := fmt.Fprintln(w, "Constraints:"); err != nil {
			return err
		}
		for _, con := range entity.Constraints {
			if _, err := fmt.Fprintf(w, "- %s\n", describeConstraint(con)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if opts.IncludeIndexes && len(entity.Indexes) > 0 {
		if _, err := fmt.Fprintln(w, "Indexes:"); err != nil {
			return err
		}
		for _, idx := range entity.Indexes {
			marker := ""
			if idx.Unique {
				marker = " (unique)"
			}
			if _, err := fmt.Fprintf(w, "- `%s` on %s%s\n",
				idx.Name, strings.Join(idx.Columns, ", "), marker); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func renderRelationships(w io.Writer, m *model.Model) error {
	if _, err := fmt.Fprintln(w, "## Relationships"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, rel := range m.Relationships {
		if _, err := fmt.Fprintf(w, "- %s\n", DescribeRelationship(rel)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// DescribeRelationship returns a one-line description of a relationship.
func DescribeRelationship(rel model.Relationship) string {
	switch rel.Cardinality {
	case model.ManyToMany:
		return fmt.Sprintf("`%s` <-> `%s` (many-to-many via `%s`)",
			rel.From, rel.To, rel.ViaJunction)
	case model.OneToOne:
		return fmt.Sprintf("`%s` -> `%s` (one-to-one on %s)",
			rel.From, rel.To, strings.Join(rel.Columns, ", "))
	default:
		return fmt.Sprintf("`%s` -> `%s` (one-to-many on %s)",
			rel.From, rel.To, strings.Join(rel.Columns, ", "))
	}
}

func fieldAttributes(entity *model.Entity, f model.Field) []string {
	var attrs []string
	if f.PrimaryKey {
		attrs = append(attrs, "PK")
	}
	if isForeignKeyColumn(entity, f.Name) {
		attrs = append(attrs, "FK")
	}
	if f.Unique {
		attrs = append(attrs, "unique")
	}
	if f.AutoIncrement {
		attrs = append(attrs, "auto-increment")
	}
	return attrs
}

func isForeignKeyColumn(entity *model.Entity, name string) bool {
	for _, con := range entity.Constraints {
		if con.Kind != model.ConstraintForeignKey {
			continue
		}
		for _, col := range con.Columns {
			if col == name {
				return true
			}
		}
	}
	return false
}

func describeConstraint(con model.Constraint) string {
	var sb strings.Builder
	if con.Name != "" {
		sb.WriteString("`" + con.Name + "` ")
	}
	sb.WriteString(con.Kind.String())
	if len(con.Columns) > 0 {
		sb.WriteString(" (" + strings.Join(con.Columns, ", ") + ")")
	}
	if con.Kind == model.ConstraintForeignKey {
		sb.WriteString(" -> " + con.RefTable)
		if len(con.RefColumns) > 0 {
			sb.WriteString(" (" + strings.Join(con.RefColumns, ", ") + ")")
		}
	}
	return sb.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

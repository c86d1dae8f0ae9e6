package docs

import (
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/sqldoc/pkg/model"
)

// RenderMermaid writes the model as a Mermaid erDiagram: one attribute
// block per entity followed by one line per relationship.
func RenderMermaid(w io.Writer, m *model.Model) error {
	if _, err := fmt.Fprintln(w, "erDiagram"); err != nil {
		return err
	}

	for i := range m.Entities {
		entity := &m.Entities[i]
		if _, err := fmt.Fprintf(w, "    %s {\n", entity.Name); err != nil {
			return err
		}
		for _, f := range entity.Fields {
			keys := attributeKeys(entity, f)
			if _, err := fmt.Fprintf(w, "        %s %s%s\n",
				mermaidType(f.DataType), f.Name, keys); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    }"); err != nil {
			return err
		}
	}

	for _, rel := range m.Relationships {
		var connector, label string
		switch rel.Cardinality {
		case model.ManyToMany:
			connector = "}o--o{"
			label = rel.ViaJunction
		case model.OneToOne:
			connector = "||--||"
			label = strings.Join(rel.Columns, ", ")
		default:
			connector = "||--o{"
			label = strings.Join(rel.Columns, ", ")
		}
		if _, err := fmt.Fprintf(w, "    %s %s %s : %q\n",
			rel.From, connector, rel.To, label); err != nil {
			return err
		}
	}
	return nil
}

// attributeKeys renders Mermaid key markers (PK, FK, UK) for a field.
func attributeKeys(entity *model.Entity, f model.Field) string {
	var keys []string
	if f.PrimaryKey {
		keys = append(keys, "PK")
	}
	if isForeignKeyColumn(entity, f.Name) {
		keys = append(keys, "FK")
	}
	if f.Unique {
		keys = append(keys, "UK")
	}
	if len(keys) == 0 {
		return ""
	}
	return " " + strings.Join(keys, ",")
}

// mermaidType rewrites a SQL type so Mermaid accepts it as an attribute
// type: no spaces, no commas.
func mermaidType(dataType string) string {
	s := strings.ReplaceAll(dataType, " ", "_")
	return strings.ReplaceAll(s, ",", "_")
}

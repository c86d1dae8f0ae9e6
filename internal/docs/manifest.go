package docs

import (
	"encoding/json"
	"io"

	"github.com/leapstack-labs/sqldoc/pkg/model"
)

// Manifest is the machine-readable form of a built model.
type Manifest struct {
	Entities      []manifestEntity       `json:"entities"`
	Relationships []manifestRelationship `json:"relationships"`
	Errors        []string               `json:"errors,omitempty"`
}

type manifestEntity struct {
	Name        string               `json:"name"`
	Schema      string               `json:"schema,omitempty"`
	Fields      []manifestField      `json:"fields"`
	Constraints []manifestConstraint `json:"constraints,omitempty"`
	Indexes     []manifestIndex      `json:"indexes,omitempty"`
}

type manifestField struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	Nullable      bool   `json:"nullable"`
	PrimaryKey    bool   `json:"primaryKey,omitempty"`
	AutoIncrement bool   `json:"autoIncrement,omitempty"`
	Unique        bool   `json:"unique,omitempty"`
	Default       string `json:"default,omitempty"`
}

type manifestConstraint struct {
	Kind       string   `json:"kind"`
	Name       string   `json:"name,omitempty"`
	Columns    []string `json:"columns,omitempty"`
	RefTable   string   `json:"refTable,omitempty"`
	RefColumns []string `json:"refColumns,omitempty"`
}

type manifestIndex struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Unique  bool     `json:"unique"`
}

type manifestRelationship struct {
	From        string   `json:"from"`
	To          string   `json:"to"`
	Cardinality string   `json:"cardinality"`
	ViaJunction string   `json:"viaJunction,omitempty"`
	Columns     []string `json:"columns,omitempty"`
}

// NewManifest converts a model into its manifest form.
func NewManifest(m *model.Model) Manifest {
	manifest := Manifest{}
	for _, e := range m.Entities {
		me := manifestEntity{Name: e.Name, Schema: e.Schema}
		for _, f := range e.Fields {
			me.Fields = append(me.Fields, manifestField{
				Name:          f.Name,
				Type:          f.DataType,
				Nullable:      f.Nullable,
				PrimaryKey:    f.PrimaryKey,
				AutoIncrement: f.AutoIncrement,
				Unique:        f.Unique,
				Default:       f.Default,
			})
		}
		for _, con := range e.Constraints {
			me.Constraints = append(me.Constraints, manifestConstraint{
				Kind:       con.Kind.String(),
				Name:       con.Name,
				Columns:    con.Columns,
				RefTable:   con.RefTable,
				RefColumns: con.RefColumns,
			})
		}
		for _, idx := range e.Indexes {
			me.Indexes = append(me.Indexes, manifestIndex{
				Name:    idx.Name,
				Columns: idx.Columns,
				Unique:  idx.Unique,
			})
		}
		manifest.Entities = append(manifest.Entities, me)
	}
	for _, rel := range m.Relationships {
		manifest.Relationships = append(manifest.Relationships, manifestRelationship{
			From:        rel.From,
			To:          rel.To,
			Cardinality: rel.Cardinality.String(),
			ViaJunction: rel.ViaJunction,
			Columns:     rel.Columns,
		})
	}
	for _, e := range m.Errors {
		manifest.Errors = append(manifest.Errors, e.Error())
	}
	return manifest
}

// RenderManifest writes the model as indented JSON.
func RenderManifest(w io.Writer, m *model.Model) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewManifest(m))
}

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqldoc/pkg/dialects/ansi"
	"github.com/leapstack-labs/sqldoc/pkg/model"
	"github.com/leapstack-labs/sqldoc/pkg/parser"
)

const junctionSchema = `
	CREATE TABLE users (id INT PRIMARY KEY, name TEXT);
	CREATE TABLE tags (id INT PRIMARY KEY, label TEXT);
	CREATE TABLE user_tags (
		user_id INT REFERENCES users(id),
		tag_id INT REFERENCES tags(id),
		PRIMARY KEY (user_id, tag_id)
	);
`

func TestJunctionDetection(t *testing.T) {
	m := build(t, junctionSchema)
	require.NoError(t, m.Err())

	// The junction collapses into exactly one many-to-many edge; its two
	// foreign keys never surface as one-to-many relationships.
	require.Len(t, m.Relationships, 1)
	rel := m.Relationships[0]
	assert.Equal(t, model.ManyToMany, rel.Cardinality)
	assert.Equal(t, "users", rel.From)
	assert.Equal(t, "tags", rel.To)
	assert.Equal(t, "user_tags", rel.ViaJunction)
	assert.Empty(t, rel.Columns)
}

func TestJunctionEntityStillPresent(t *testing.T) {
	m := build(t, junctionSchema)

	// Collapsing the relationship does not hide the table itself.
	junction := mustEntity(t, m, "user_tags")
	assert.Equal(t, []string{"user_id", "tag_id"}, junction.PrimaryKeyColumns())
}

func TestJunctionRequiresDistinctTargets(t *testing.T) {
	m := build(t, `
		CREATE TABLE users (id INT PRIMARY KEY);
		CREATE TABLE follows (
			follower_id INT REFERENCES users(id),
			followee_id INT REFERENCES users(id),
			PRIMARY KEY (follower_id, followee_id)
		);
	`)

	// Both edges point at the same entity, so this is not a junction.
	require.Len(t, m.Relationships, 2)
	for _, rel := range m.Relationships {
		assert.Equal(t, model.OneToMany, rel.Cardinality)
		assert.Empty(t, rel.ViaJunction)
	}
}

func TestJunctionRequiresExactlyTwoEdges(t *testing.T) {
	m := build(t, `
		CREATE TABLE users (id INT PRIMARY KEY);
		CREATE TABLE projects (id INT PRIMARY KEY);
		CREATE TABLE roles (id INT PRIMARY KEY);
		CREATE TABLE memberships (
			user_id INT REFERENCES users(id),
			project_id INT REFERENCES projects(id),
			role_id INT REFERENCES roles(id),
			PRIMARY KEY (user_id, project_id, role_id)
		);
	`)

	require.Len(t, m.Relationships, 3)
	for _, rel := range m.Relationships {
		assert.Equal(t, model.OneToMany, rel.Cardinality)
	}
}

func TestJunctionRejectedWithSurrogateKey(t *testing.T) {
	// A surrogate id means the foreign keys cover none of the primary key,
	// so the default policy keeps the two one-to-many edges.
	m := build(t, `
		CREATE TABLE users (id INT PRIMARY KEY);
		CREATE TABLE tags (id INT PRIMARY KEY);
		CREATE TABLE user_tags (
			id INT PRIMARY KEY,
			user_id INT REFERENCES users(id),
			tag_id INT REFERENCES tags(id)
		);
	`)

	require.Len(t, m.Relationships, 2)
	for _, rel := range m.Relationships {
		assert.Equal(t, model.OneToMany, rel.Cardinality)
	}
}

func TestJunctionPolicyThreshold(t *testing.T) {
	// Half the primary key comes from the foreign keys. The default policy
	// rejects that; a halved threshold accepts it.
	schema := `
		CREATE TABLE users (id INT PRIMARY KEY);
		CREATE TABLE tags (id INT PRIMARY KEY);
		CREATE TABLE user_tags (
			user_id INT REFERENCES users(id),
			tag_id INT REFERENCES tags(id),
			granted_at TIMESTAMP,
			PRIMARY KEY (user_id, granted_at)
		);
	`
	stmts, err := parser.Parse(schema, ansi.ANSI)
	require.NoError(t, err)

	strict := model.BuildWithPolicy(stmts, model.DefaultJunctionPolicy())
	assert.Len(t, strict.Relationships, 2)

	relaxed := model.BuildWithPolicy(stmts, model.JunctionPolicy{MinKeyCoverage: 0.5})
	require.Len(t, relaxed.Relationships, 1)
	assert.Equal(t, model.ManyToMany, relaxed.Relationships[0].Cardinality)
}

func TestJunctionIdempotence(t *testing.T) {
	// Rebuilding the same statements yields the same relationships.
	stmts, err := parser.Parse(junctionSchema, ansi.ANSI)
	require.NoError(t, err)

	first := model.Build(stmts)
	second := model.Build(stmts)
	assert.Equal(t, first.Relationships, second.Relationships)
	assert.Equal(t, first.Entities, second.Entities)
}

func TestJunctionNameHints(t *testing.T) {
	// A surrogate-keyed association table is rejected on key coverage but
	// accepted once naming hints are on.
	schema := `
		CREATE TABLE users (id INT PRIMARY KEY);
		CREATE TABLE tags (id INT PRIMARY KEY);
		CREATE TABLE users_to_tags (
			id INT PRIMARY KEY,
			user_id INT REFERENCES users(id),
			tag_id INT REFERENCES tags(id)
		);
	`
	stmts, err := parser.Parse(schema, ansi.ANSI)
	require.NoError(t, err)

	plain := model.Build(stmts)
	assert.Len(t, plain.Relationships, 2)

	hinted := model.BuildWithPolicy(stmts, model.JunctionPolicy{MinKeyCoverage: 1, NameHints: true})
	require.Len(t, hinted.Relationships, 1)
	assert.Equal(t, model.ManyToMany, hinted.Relationships[0].Cardinality)
	assert.Equal(t, "users_to_tags", hinted.Relationships[0].ViaJunction)
}

func TestNameSuggestsJunction(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"users_to_tags", true},
		{"students_and_courses", true},
		{"role_link", true},
		{"ProductXref", true},
		{"users", false},
		{"user_tags", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.NameSuggestsJunction(tt.name))
		})
	}
}

func TestCoversDirect(t *testing.T) {
	entity := &model.Entity{
		Name: "user_tags",
		Fields: []model.Field{
			{Name: "user_id", PrimaryKey: true},
			{Name: "tag_id", PrimaryKey: true},
		},
	}

	policy := model.DefaultJunctionPolicy()
	assert.True(t, policy.Covers(entity, []string{"user_id", "tag_id"}))
	assert.False(t, policy.Covers(entity, []string{"user_id"}))

	// Out-of-range thresholds fall back to full coverage.
	wild := model.JunctionPolicy{MinKeyCoverage: 7}
	assert.False(t, wild.Covers(entity, []string{"user_id"}))

	noKey := &model.Entity{Name: "log", Fields: []model.Field{{Name: "line"}}}
	assert.False(t, policy.Covers(noKey, []string{"line"}))
}

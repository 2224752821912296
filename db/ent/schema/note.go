package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Note rows are append-only; a job accumulates one row per note rather than
// overwriting a single text field.
type Note struct{ ent.Schema }

func (Note) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_notes"},
	}
}

func (Note) Fields() []ent.Field {
	return []ent.Field{
		field.Int("job_id"),
		field.Int64("author_id"),
		field.String("author_role"),
		field.String("note").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
	}
}

func (Note) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("notes").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (Note) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id"),
	}
}

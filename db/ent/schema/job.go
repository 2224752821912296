package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/joseph-ayodele/mowbot/constants"
	"github.com/joseph-ayodele/mowbot/db/ent/schema/utils"
)

type Job struct{ ent.Schema }

func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}

func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("site_name").NotEmpty().Unique(),
		// reference data from the site directory; read-mostly
		field.String("quote").Optional().Nillable(),
		field.String("address").Optional().Nillable(),
		field.String("order_no").Optional().Nillable(),
		field.String("order_period").Optional().Nillable(),
		field.String("area").Optional().Nillable(),
		field.String("summer_schedule").Optional().Nillable(),
		field.String("winter_schedule").Optional().Nillable(),
		field.String("contact").Optional().Nillable(),
		field.String("gate_code").Optional().Nillable(),
		field.String("map_link").Optional().Nillable(),
		// lifecycle
		field.Int64("assigned_to").Optional().Nillable(),
		field.String("status").
			Default(string(constants.JobStatusPending)).
			Validate(utils.EnumValidator(constants.Statuses...)),
		field.Time("start_time").Optional().Nillable(),
		field.Time("finish_time").Optional().Nillable(),
		// photo references, each encoding job id + upload date (see photos pkg)
		field.Strings("photos").Optional(),
		field.String("scheduled_date").Optional().Nillable(),
		field.String("priority").Default("normal"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("notes", Note.Type),
	}
}

func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assigned_to"),
		index.Fields("status"),
		index.Fields("site_name"),
	}
}

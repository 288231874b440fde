package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type StaffMember struct{ ent.Schema }

func (StaffMember) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "staff_members"},
	}
}

func (StaffMember) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("provider_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("role").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (StaffMember) Edges() []ent.Edge {
	return nil
}

func (StaffMember) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider_id"),
	}
}

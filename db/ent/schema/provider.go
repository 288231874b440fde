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

type Provider struct{ ent.Schema }

func (Provider) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "providers"},
	}
}

func (Provider) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}).Unique(),
		field.String("business_name").NotEmpty(),
		field.String("email").NotEmpty(),
		field.String("description").Optional().Nillable(),
		field.Float("latitude"),
		field.Float("longitude"),
		// Completion markers maintained by eligibility reconciliation.
		// A provider is matchable only when all three are set.
		field.Time("price_list_completed_at").Optional().Nillable(),
		field.Time("profile_completed_at").Optional().Nillable(),
		field.Time("staff_completed_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Provider) Edges() []ent.Edge {
	return nil
}

func (Provider) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}

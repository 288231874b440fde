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

type StudioPhoto struct{ ent.Schema }

func (StudioPhoto) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "studio_photos"},
	}
}

func (StudioPhoto) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("provider_id", uuid.UUID{}),
		field.String("path").NotEmpty(),
		field.Time("created_at").Default(time.Now),
	}
}

func (StudioPhoto) Edges() []ent.Edge {
	return nil
}

func (StudioPhoto) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider_id"),
	}
}

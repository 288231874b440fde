package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// CustomItem is a provider-authored treatment outside the shared catalog.
// Custom items always appear in the effective price list.
type CustomItem struct{ ent.Schema }

func (CustomItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "custom_items"},
	}
}

func (CustomItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("provider_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("description").Optional().Nillable(),
		field.Float("price").
			SchemaType(map[string]string{dialect.Postgres: "numeric(10,2)"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (CustomItem) Edges() []ent.Edge {
	return nil
}

func (CustomItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider_id"),
	}
}

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

// ProviderOverride is one provider's price and activation flag for a catalog
// item. An item enters the provider's effective price list only when the
// override is active and priced.
type ProviderOverride struct{ ent.Schema }

func (ProviderOverride) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "provider_overrides"},
	}
}

func (ProviderOverride) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("provider_id", uuid.UUID{}),
		field.Int("catalog_item_id"),
		field.Float("price").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(10,2)"}),
		field.Bool("active").Default(false),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ProviderOverride) Edges() []ent.Edge {
	return nil
}

func (ProviderOverride) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider_id", "catalog_item_id").Unique(),
	}
}

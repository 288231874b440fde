package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/smilematch/quotes/constants"
	"github.com/smilematch/quotes/db/ent/schema/utils"
)

type CounterOffer struct{ ent.Schema }

func (CounterOffer) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "counter_offers"},
	}
}

func (CounterOffer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("quote_id", uuid.UUID{}),
		field.UUID("provider_id", uuid.UUID{}),
		field.JSON("payload", json.RawMessage{}).
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.String("status").
			Default(string(constants.OfferSent)).
			Validate(utils.EnumValidator(constants.OfferStatuses...)),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (CounterOffer) Edges() []ent.Edge {
	return nil
}

func (CounterOffer) Indexes() []ent.Index {
	return []ent.Index{
		// One offer per clinic per quote.
		index.Fields("quote_id", "provider_id").Unique(),
		index.Fields("provider_id", "status"),
	}
}

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

type QuoteRecord struct{ ent.Schema }

func (QuoteRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "quote_records"},
	}
}

func (QuoteRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("patient_id", uuid.UUID{}),
		field.String("file_path").NotEmpty(),
		field.String("original_filename").NotEmpty(),
		field.String("status").
			Default(string(constants.QuoteUploaded)).
			Validate(utils.EnumValidator(constants.QuoteStatuses...)),
		field.JSON("payload", json.RawMessage{}).
			Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (QuoteRecord) Edges() []ent.Edge {
	return nil
}

func (QuoteRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
		index.Fields("status"),
	}
}

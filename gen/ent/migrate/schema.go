// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CatalogItemsColumns holds the columns for the "catalog_items" table.
	CatalogItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CatalogItemsTable holds the schema information for the "catalog_items" table.
	CatalogItemsTable = &schema.Table{
		Name:       "catalog_items",
		Columns:    CatalogItemsColumns,
		PrimaryKey: []*schema.Column{CatalogItemsColumns[0]},
	}
	// CounterOffersColumns holds the columns for the "counter_offers" table.
	CounterOffersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "quote_id", Type: field.TypeUUID},
		{Name: "provider_id", Type: field.TypeUUID},
		{Name: "payload", Type: field.TypeJSON, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "status", Type: field.TypeString, Default: "sent"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CounterOffersTable holds the schema information for the "counter_offers" table.
	CounterOffersTable = &schema.Table{
		Name:       "counter_offers",
		Columns:    CounterOffersColumns,
		PrimaryKey: []*schema.Column{CounterOffersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "counteroffer_quote_id_provider_id",
				Unique:  true,
				Columns: []*schema.Column{CounterOffersColumns[1], CounterOffersColumns[2]},
			},
			{
				Name:    "counteroffer_provider_id_status",
				Unique:  false,
				Columns: []*schema.Column{CounterOffersColumns[2], CounterOffersColumns[4]},
			},
		},
	}
	// CustomItemsColumns holds the columns for the "custom_items" table.
	CustomItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "provider_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(10,2)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CustomItemsTable holds the schema information for the "custom_items" table.
	CustomItemsTable = &schema.Table{
		Name:       "custom_items",
		Columns:    CustomItemsColumns,
		PrimaryKey: []*schema.Column{CustomItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "customitem_provider_id",
				Unique:  false,
				Columns: []*schema.Column{CustomItemsColumns[1]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeString},
		{Name: "message", Type: field.TypeString},
		{Name: "action_url", Type: field.TypeString, Nullable: true},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_kind",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[2]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "latitude", Type: field.TypeFloat64},
		{Name: "longitude", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patient_user_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[1]},
			},
		},
	}
	// ProvidersColumns holds the columns for the "providers" table.
	ProvidersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "business_name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "latitude", Type: field.TypeFloat64},
		{Name: "longitude", Type: field.TypeFloat64},
		{Name: "price_list_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "profile_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "staff_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProvidersTable holds the schema information for the "providers" table.
	ProvidersTable = &schema.Table{
		Name:       "providers",
		Columns:    ProvidersColumns,
		PrimaryKey: []*schema.Column{ProvidersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "provider_user_id",
				Unique:  false,
				Columns: []*schema.Column{ProvidersColumns[1]},
			},
		},
	}
	// ProviderOverridesColumns holds the columns for the "provider_overrides" table.
	ProviderOverridesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider_id", Type: field.TypeUUID},
		{Name: "catalog_item_id", Type: field.TypeInt},
		{Name: "price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(10,2)"}},
		{Name: "active", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProviderOverridesTable holds the schema information for the "provider_overrides" table.
	ProviderOverridesTable = &schema.Table{
		Name:       "provider_overrides",
		Columns:    ProviderOverridesColumns,
		PrimaryKey: []*schema.Column{ProviderOverridesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "provideroverride_provider_id_catalog_item_id",
				Unique:  true,
				Columns: []*schema.Column{ProviderOverridesColumns[1], ProviderOverridesColumns[2]},
			},
		},
	}
	// QuoteRecordsColumns holds the columns for the "quote_records" table.
	QuoteRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "file_path", Type: field.TypeString},
		{Name: "original_filename", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "uploaded"},
		{Name: "payload", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// QuoteRecordsTable holds the schema information for the "quote_records" table.
	QuoteRecordsTable = &schema.Table{
		Name:       "quote_records",
		Columns:    QuoteRecordsColumns,
		PrimaryKey: []*schema.Column{QuoteRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quoterecord_patient_id",
				Unique:  false,
				Columns: []*schema.Column{QuoteRecordsColumns[1]},
			},
			{
				Name:    "quoterecord_status",
				Unique:  false,
				Columns: []*schema.Column{QuoteRecordsColumns[4]},
			},
		},
	}
	// StaffMembersColumns holds the columns for the "staff_members" table.
	StaffMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "provider_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StaffMembersTable holds the schema information for the "staff_members" table.
	StaffMembersTable = &schema.Table{
		Name:       "staff_members",
		Columns:    StaffMembersColumns,
		PrimaryKey: []*schema.Column{StaffMembersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "staffmember_provider_id",
				Unique:  false,
				Columns: []*schema.Column{StaffMembersColumns[1]},
			},
		},
	}
	// StudioPhotosColumns holds the columns for the "studio_photos" table.
	StudioPhotosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "provider_id", Type: field.TypeUUID},
		{Name: "path", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StudioPhotosTable holds the schema information for the "studio_photos" table.
	StudioPhotosTable = &schema.Table{
		Name:       "studio_photos",
		Columns:    StudioPhotosColumns,
		PrimaryKey: []*schema.Column{StudioPhotosColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studiophoto_provider_id",
				Unique:  false,
				Columns: []*schema.Column{StudioPhotosColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CatalogItemsTable,
		CounterOffersTable,
		CustomItemsTable,
		NotificationsTable,
		PatientsTable,
		ProvidersTable,
		ProviderOverridesTable,
		QuoteRecordsTable,
		StaffMembersTable,
		StudioPhotosTable,
	}
)

func init() {
	CatalogItemsTable.Annotation = &entsql.Annotation{
		Table: "catalog_items",
	}
	CounterOffersTable.Annotation = &entsql.Annotation{
		Table: "counter_offers",
	}
	CustomItemsTable.Annotation = &entsql.Annotation{
		Table: "custom_items",
	}
	NotificationsTable.Annotation = &entsql.Annotation{
		Table: "notifications",
	}
	PatientsTable.Annotation = &entsql.Annotation{
		Table: "patients",
	}
	ProvidersTable.Annotation = &entsql.Annotation{
		Table: "providers",
	}
	ProviderOverridesTable.Annotation = &entsql.Annotation{
		Table: "provider_overrides",
	}
	QuoteRecordsTable.Annotation = &entsql.Annotation{
		Table: "quote_records",
	}
	StaffMembersTable.Annotation = &entsql.Annotation{
		Table: "staff_members",
	}
	StudioPhotosTable.Annotation = &entsql.Annotation{
		Table: "studio_photos",
	}
}

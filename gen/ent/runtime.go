// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/smilematch/quotes/db/ent/schema"
	"github.com/smilematch/quotes/gen/ent/catalogitem"
	"github.com/smilematch/quotes/gen/ent/counteroffer"
	"github.com/smilematch/quotes/gen/ent/customitem"
	"github.com/smilematch/quotes/gen/ent/notification"
	"github.com/smilematch/quotes/gen/ent/patient"
	"github.com/smilematch/quotes/gen/ent/provider"
	"github.com/smilematch/quotes/gen/ent/provideroverride"
	"github.com/smilematch/quotes/gen/ent/quoterecord"
	"github.com/smilematch/quotes/gen/ent/staffmember"
	"github.com/smilematch/quotes/gen/ent/studiophoto"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	catalogitemFields := schema.CatalogItem{}.Fields()
	_ = catalogitemFields
	// catalogitemDescName is the schema descriptor for name field.
	catalogitemDescName := catalogitemFields[0].Descriptor()
	// catalogitem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	catalogitem.NameValidator = catalogitemDescName.Validators[0].(func(string) error)
	// catalogitemDescActive is the schema descriptor for active field.
	catalogitemDescActive := catalogitemFields[2].Descriptor()
	// catalogitem.DefaultActive holds the default value on creation for the active field.
	catalogitem.DefaultActive = catalogitemDescActive.Default.(bool)
	// catalogitemDescCreatedAt is the schema descriptor for created_at field.
	catalogitemDescCreatedAt := catalogitemFields[3].Descriptor()
	// catalogitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	catalogitem.DefaultCreatedAt = catalogitemDescCreatedAt.Default.(func() time.Time)
	// catalogitemDescUpdatedAt is the schema descriptor for updated_at field.
	catalogitemDescUpdatedAt := catalogitemFields[4].Descriptor()
	// catalogitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	catalogitem.DefaultUpdatedAt = catalogitemDescUpdatedAt.Default.(func() time.Time)
	// catalogitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	catalogitem.UpdateDefaultUpdatedAt = catalogitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	counterofferFields := schema.CounterOffer{}.Fields()
	_ = counterofferFields
	// counterofferDescStatus is the schema descriptor for status field.
	counterofferDescStatus := counterofferFields[4].Descriptor()
	// counteroffer.DefaultStatus holds the default value on creation for the status field.
	counteroffer.DefaultStatus = counterofferDescStatus.Default.(string)
	// counteroffer.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	counteroffer.StatusValidator = counterofferDescStatus.Validators[0].(func(string) error)
	// counterofferDescCreatedAt is the schema descriptor for created_at field.
	counterofferDescCreatedAt := counterofferFields[5].Descriptor()
	// counteroffer.DefaultCreatedAt holds the default value on creation for the created_at field.
	counteroffer.DefaultCreatedAt = counterofferDescCreatedAt.Default.(func() time.Time)
	// counterofferDescUpdatedAt is the schema descriptor for updated_at field.
	counterofferDescUpdatedAt := counterofferFields[6].Descriptor()
	// counteroffer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	counteroffer.DefaultUpdatedAt = counterofferDescUpdatedAt.Default.(func() time.Time)
	// counteroffer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	counteroffer.UpdateDefaultUpdatedAt = counterofferDescUpdatedAt.UpdateDefault.(func() time.Time)
	// counterofferDescID is the schema descriptor for id field.
	counterofferDescID := counterofferFields[0].Descriptor()
	// counteroffer.DefaultID holds the default value on creation for the id field.
	counteroffer.DefaultID = counterofferDescID.Default.(func() uuid.UUID)
	customitemFields := schema.CustomItem{}.Fields()
	_ = customitemFields
	// customitemDescName is the schema descriptor for name field.
	customitemDescName := customitemFields[2].Descriptor()
	// customitem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	customitem.NameValidator = customitemDescName.Validators[0].(func(string) error)
	// customitemDescCreatedAt is the schema descriptor for created_at field.
	customitemDescCreatedAt := customitemFields[5].Descriptor()
	// customitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	customitem.DefaultCreatedAt = customitemDescCreatedAt.Default.(func() time.Time)
	// customitemDescUpdatedAt is the schema descriptor for updated_at field.
	customitemDescUpdatedAt := customitemFields[6].Descriptor()
	// customitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	customitem.DefaultUpdatedAt = customitemDescUpdatedAt.Default.(func() time.Time)
	// customitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	customitem.UpdateDefaultUpdatedAt = customitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// customitemDescID is the schema descriptor for id field.
	customitemDescID := customitemFields[0].Descriptor()
	// customitem.DefaultID holds the default value on creation for the id field.
	customitem.DefaultID = customitemDescID.Default.(func() uuid.UUID)
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescKind is the schema descriptor for kind field.
	notificationDescKind := notificationFields[2].Descriptor()
	// notification.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	notification.KindValidator = notificationDescKind.Validators[0].(func(string) error)
	// notificationDescMessage is the schema descriptor for message field.
	notificationDescMessage := notificationFields[3].Descriptor()
	// notification.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	notification.MessageValidator = notificationDescMessage.Validators[0].(func(string) error)
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationFields[6].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationFields[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescName is the schema descriptor for name field.
	patientDescName := patientFields[2].Descriptor()
	// patient.NameValidator is a validator for the "name" field. It is called by the builders before save.
	patient.NameValidator = patientDescName.Validators[0].(func(string) error)
	// patientDescEmail is the schema descriptor for email field.
	patientDescEmail := patientFields[3].Descriptor()
	// patient.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	patient.EmailValidator = patientDescEmail.Validators[0].(func(string) error)
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientFields[6].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientFields[7].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientFields[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	providerFields := schema.Provider{}.Fields()
	_ = providerFields
	// providerDescBusinessName is the schema descriptor for business_name field.
	providerDescBusinessName := providerFields[2].Descriptor()
	// provider.BusinessNameValidator is a validator for the "business_name" field. It is called by the builders before save.
	provider.BusinessNameValidator = providerDescBusinessName.Validators[0].(func(string) error)
	// providerDescEmail is the schema descriptor for email field.
	providerDescEmail := providerFields[3].Descriptor()
	// provider.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	provider.EmailValidator = providerDescEmail.Validators[0].(func(string) error)
	// providerDescCreatedAt is the schema descriptor for created_at field.
	providerDescCreatedAt := providerFields[10].Descriptor()
	// provider.DefaultCreatedAt holds the default value on creation for the created_at field.
	provider.DefaultCreatedAt = providerDescCreatedAt.Default.(func() time.Time)
	// providerDescUpdatedAt is the schema descriptor for updated_at field.
	providerDescUpdatedAt := providerFields[11].Descriptor()
	// provider.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	provider.DefaultUpdatedAt = providerDescUpdatedAt.Default.(func() time.Time)
	// provider.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	provider.UpdateDefaultUpdatedAt = providerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// providerDescID is the schema descriptor for id field.
	providerDescID := providerFields[0].Descriptor()
	// provider.DefaultID holds the default value on creation for the id field.
	provider.DefaultID = providerDescID.Default.(func() uuid.UUID)
	provideroverrideFields := schema.ProviderOverride{}.Fields()
	_ = provideroverrideFields
	// provideroverrideDescActive is the schema descriptor for active field.
	provideroverrideDescActive := provideroverrideFields[3].Descriptor()
	// provideroverride.DefaultActive holds the default value on creation for the active field.
	provideroverride.DefaultActive = provideroverrideDescActive.Default.(bool)
	// provideroverrideDescCreatedAt is the schema descriptor for created_at field.
	provideroverrideDescCreatedAt := provideroverrideFields[4].Descriptor()
	// provideroverride.DefaultCreatedAt holds the default value on creation for the created_at field.
	provideroverride.DefaultCreatedAt = provideroverrideDescCreatedAt.Default.(func() time.Time)
	// provideroverrideDescUpdatedAt is the schema descriptor for updated_at field.
	provideroverrideDescUpdatedAt := provideroverrideFields[5].Descriptor()
	// provideroverride.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	provideroverride.DefaultUpdatedAt = provideroverrideDescUpdatedAt.Default.(func() time.Time)
	// provideroverride.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	provideroverride.UpdateDefaultUpdatedAt = provideroverrideDescUpdatedAt.UpdateDefault.(func() time.Time)
	quoterecordFields := schema.QuoteRecord{}.Fields()
	_ = quoterecordFields
	// quoterecordDescFilePath is the schema descriptor for file_path field.
	quoterecordDescFilePath := quoterecordFields[2].Descriptor()
	// quoterecord.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	quoterecord.FilePathValidator = quoterecordDescFilePath.Validators[0].(func(string) error)
	// quoterecordDescOriginalFilename is the schema descriptor for original_filename field.
	quoterecordDescOriginalFilename := quoterecordFields[3].Descriptor()
	// quoterecord.OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	quoterecord.OriginalFilenameValidator = quoterecordDescOriginalFilename.Validators[0].(func(string) error)
	// quoterecordDescStatus is the schema descriptor for status field.
	quoterecordDescStatus := quoterecordFields[4].Descriptor()
	// quoterecord.DefaultStatus holds the default value on creation for the status field.
	quoterecord.DefaultStatus = quoterecordDescStatus.Default.(string)
	// quoterecord.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	quoterecord.StatusValidator = quoterecordDescStatus.Validators[0].(func(string) error)
	// quoterecordDescCreatedAt is the schema descriptor for created_at field.
	quoterecordDescCreatedAt := quoterecordFields[7].Descriptor()
	// quoterecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	quoterecord.DefaultCreatedAt = quoterecordDescCreatedAt.Default.(func() time.Time)
	// quoterecordDescUpdatedAt is the schema descriptor for updated_at field.
	quoterecordDescUpdatedAt := quoterecordFields[8].Descriptor()
	// quoterecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	quoterecord.DefaultUpdatedAt = quoterecordDescUpdatedAt.Default.(func() time.Time)
	// quoterecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	quoterecord.UpdateDefaultUpdatedAt = quoterecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// quoterecordDescID is the schema descriptor for id field.
	quoterecordDescID := quoterecordFields[0].Descriptor()
	// quoterecord.DefaultID holds the default value on creation for the id field.
	quoterecord.DefaultID = quoterecordDescID.Default.(func() uuid.UUID)
	staffmemberFields := schema.StaffMember{}.Fields()
	_ = staffmemberFields
	// staffmemberDescName is the schema descriptor for name field.
	staffmemberDescName := staffmemberFields[2].Descriptor()
	// staffmember.NameValidator is a validator for the "name" field. It is called by the builders before save.
	staffmember.NameValidator = staffmemberDescName.Validators[0].(func(string) error)
	// staffmemberDescCreatedAt is the schema descriptor for created_at field.
	staffmemberDescCreatedAt := staffmemberFields[4].Descriptor()
	// staffmember.DefaultCreatedAt holds the default value on creation for the created_at field.
	staffmember.DefaultCreatedAt = staffmemberDescCreatedAt.Default.(func() time.Time)
	// staffmemberDescUpdatedAt is the schema descriptor for updated_at field.
	staffmemberDescUpdatedAt := staffmemberFields[5].Descriptor()
	// staffmember.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	staffmember.DefaultUpdatedAt = staffmemberDescUpdatedAt.Default.(func() time.Time)
	// staffmember.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	staffmember.UpdateDefaultUpdatedAt = staffmemberDescUpdatedAt.UpdateDefault.(func() time.Time)
	// staffmemberDescID is the schema descriptor for id field.
	staffmemberDescID := staffmemberFields[0].Descriptor()
	// staffmember.DefaultID holds the default value on creation for the id field.
	staffmember.DefaultID = staffmemberDescID.Default.(func() uuid.UUID)
	studiophotoFields := schema.StudioPhoto{}.Fields()
	_ = studiophotoFields
	// studiophotoDescPath is the schema descriptor for path field.
	studiophotoDescPath := studiophotoFields[2].Descriptor()
	// studiophoto.PathValidator is a validator for the "path" field. It is called by the builders before save.
	studiophoto.PathValidator = studiophotoDescPath.Validators[0].(func(string) error)
	// studiophotoDescCreatedAt is the schema descriptor for created_at field.
	studiophotoDescCreatedAt := studiophotoFields[3].Descriptor()
	// studiophoto.DefaultCreatedAt holds the default value on creation for the created_at field.
	studiophoto.DefaultCreatedAt = studiophotoDescCreatedAt.Default.(func() time.Time)
	// studiophotoDescID is the schema descriptor for id field.
	studiophotoDescID := studiophotoFields[0].Descriptor()
	// studiophoto.DefaultID holds the default value on creation for the id field.
	studiophoto.DefaultID = studiophotoDescID.Default.(func() uuid.UUID)
}

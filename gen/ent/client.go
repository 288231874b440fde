// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/smilematch/quotes/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
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

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CatalogItem is the client for interacting with the CatalogItem builders.
	CatalogItem *CatalogItemClient
	// CounterOffer is the client for interacting with the CounterOffer builders.
	CounterOffer *CounterOfferClient
	// CustomItem is the client for interacting with the CustomItem builders.
	CustomItem *CustomItemClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// Patient is the client for interacting with the Patient builders.
	Patient *PatientClient
	// Provider is the client for interacting with the Provider builders.
	Provider *ProviderClient
	// ProviderOverride is the client for interacting with the ProviderOverride builders.
	ProviderOverride *ProviderOverrideClient
	// QuoteRecord is the client for interacting with the QuoteRecord builders.
	QuoteRecord *QuoteRecordClient
	// StaffMember is the client for interacting with the StaffMember builders.
	StaffMember *StaffMemberClient
	// StudioPhoto is the client for interacting with the StudioPhoto builders.
	StudioPhoto *StudioPhotoClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CatalogItem = NewCatalogItemClient(c.config)
	c.CounterOffer = NewCounterOfferClient(c.config)
	c.CustomItem = NewCustomItemClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.Patient = NewPatientClient(c.config)
	c.Provider = NewProviderClient(c.config)
	c.ProviderOverride = NewProviderOverrideClient(c.config)
	c.QuoteRecord = NewQuoteRecordClient(c.config)
	c.StaffMember = NewStaffMemberClient(c.config)
	c.StudioPhoto = NewStudioPhotoClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		CatalogItem:      NewCatalogItemClient(cfg),
		CounterOffer:     NewCounterOfferClient(cfg),
		CustomItem:       NewCustomItemClient(cfg),
		Notification:     NewNotificationClient(cfg),
		Patient:          NewPatientClient(cfg),
		Provider:         NewProviderClient(cfg),
		ProviderOverride: NewProviderOverrideClient(cfg),
		QuoteRecord:      NewQuoteRecordClient(cfg),
		StaffMember:      NewStaffMemberClient(cfg),
		StudioPhoto:      NewStudioPhotoClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		CatalogItem:      NewCatalogItemClient(cfg),
		CounterOffer:     NewCounterOfferClient(cfg),
		CustomItem:       NewCustomItemClient(cfg),
		Notification:     NewNotificationClient(cfg),
		Patient:          NewPatientClient(cfg),
		Provider:         NewProviderClient(cfg),
		ProviderOverride: NewProviderOverrideClient(cfg),
		QuoteRecord:      NewQuoteRecordClient(cfg),
		StaffMember:      NewStaffMemberClient(cfg),
		StudioPhoto:      NewStudioPhotoClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CatalogItem.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.CatalogItem, c.CounterOffer, c.CustomItem, c.Notification, c.Patient,
		c.Provider, c.ProviderOverride, c.QuoteRecord, c.StaffMember, c.StudioPhoto,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CatalogItem, c.CounterOffer, c.CustomItem, c.Notification, c.Patient,
		c.Provider, c.ProviderOverride, c.QuoteRecord, c.StaffMember, c.StudioPhoto,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CatalogItemMutation:
		return c.CatalogItem.mutate(ctx, m)
	case *CounterOfferMutation:
		return c.CounterOffer.mutate(ctx, m)
	case *CustomItemMutation:
		return c.CustomItem.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *PatientMutation:
		return c.Patient.mutate(ctx, m)
	case *ProviderMutation:
		return c.Provider.mutate(ctx, m)
	case *ProviderOverrideMutation:
		return c.ProviderOverride.mutate(ctx, m)
	case *QuoteRecordMutation:
		return c.QuoteRecord.mutate(ctx, m)
	case *StaffMemberMutation:
		return c.StaffMember.mutate(ctx, m)
	case *StudioPhotoMutation:
		return c.StudioPhoto.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CatalogItemClient is a client for the CatalogItem schema.
type CatalogItemClient struct {
	config
}

// NewCatalogItemClient returns a client for the CatalogItem from the given config.
func NewCatalogItemClient(c config) *CatalogItemClient {
	return &CatalogItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `catalogitem.Hooks(f(g(h())))`.
func (c *CatalogItemClient) Use(hooks ...Hook) {
	c.hooks.CatalogItem = append(c.hooks.CatalogItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `catalogitem.Intercept(f(g(h())))`.
func (c *CatalogItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.CatalogItem = append(c.inters.CatalogItem, interceptors...)
}

// Create returns a builder for creating a CatalogItem entity.
func (c *CatalogItemClient) Create() *CatalogItemCreate {
	mutation := newCatalogItemMutation(c.config, OpCreate)
	return &CatalogItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CatalogItem entities.
func (c *CatalogItemClient) CreateBulk(builders ...*CatalogItemCreate) *CatalogItemCreateBulk {
	return &CatalogItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CatalogItemClient) MapCreateBulk(slice any, setFunc func(*CatalogItemCreate, int)) *CatalogItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CatalogItemCreateBulk{err: fmt.Errorf("calling to CatalogItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CatalogItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CatalogItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CatalogItem.
func (c *CatalogItemClient) Update() *CatalogItemUpdate {
	mutation := newCatalogItemMutation(c.config, OpUpdate)
	return &CatalogItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CatalogItemClient) UpdateOne(_m *CatalogItem) *CatalogItemUpdateOne {
	mutation := newCatalogItemMutation(c.config, OpUpdateOne, withCatalogItem(_m))
	return &CatalogItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CatalogItemClient) UpdateOneID(id int) *CatalogItemUpdateOne {
	mutation := newCatalogItemMutation(c.config, OpUpdateOne, withCatalogItemID(id))
	return &CatalogItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CatalogItem.
func (c *CatalogItemClient) Delete() *CatalogItemDelete {
	mutation := newCatalogItemMutation(c.config, OpDelete)
	return &CatalogItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CatalogItemClient) DeleteOne(_m *CatalogItem) *CatalogItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CatalogItemClient) DeleteOneID(id int) *CatalogItemDeleteOne {
	builder := c.Delete().Where(catalogitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CatalogItemDeleteOne{builder}
}

// Query returns a query builder for CatalogItem.
func (c *CatalogItemClient) Query() *CatalogItemQuery {
	return &CatalogItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCatalogItem},
		inters: c.Interceptors(),
	}
}

// Get returns a CatalogItem entity by its id.
func (c *CatalogItemClient) Get(ctx context.Context, id int) (*CatalogItem, error) {
	return c.Query().Where(catalogitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CatalogItemClient) GetX(ctx context.Context, id int) *CatalogItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CatalogItemClient) Hooks() []Hook {
	return c.hooks.CatalogItem
}

// Interceptors returns the client interceptors.
func (c *CatalogItemClient) Interceptors() []Interceptor {
	return c.inters.CatalogItem
}

func (c *CatalogItemClient) mutate(ctx context.Context, m *CatalogItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CatalogItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CatalogItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CatalogItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CatalogItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CatalogItem mutation op: %q", m.Op())
	}
}

// CounterOfferClient is a client for the CounterOffer schema.
type CounterOfferClient struct {
	config
}

// NewCounterOfferClient returns a client for the CounterOffer from the given config.
func NewCounterOfferClient(c config) *CounterOfferClient {
	return &CounterOfferClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `counteroffer.Hooks(f(g(h())))`.
func (c *CounterOfferClient) Use(hooks ...Hook) {
	c.hooks.CounterOffer = append(c.hooks.CounterOffer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `counteroffer.Intercept(f(g(h())))`.
func (c *CounterOfferClient) Intercept(interceptors ...Interceptor) {
	c.inters.CounterOffer = append(c.inters.CounterOffer, interceptors...)
}

// Create returns a builder for creating a CounterOffer entity.
func (c *CounterOfferClient) Create() *CounterOfferCreate {
	mutation := newCounterOfferMutation(c.config, OpCreate)
	return &CounterOfferCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CounterOffer entities.
func (c *CounterOfferClient) CreateBulk(builders ...*CounterOfferCreate) *CounterOfferCreateBulk {
	return &CounterOfferCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CounterOfferClient) MapCreateBulk(slice any, setFunc func(*CounterOfferCreate, int)) *CounterOfferCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CounterOfferCreateBulk{err: fmt.Errorf("calling to CounterOfferClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CounterOfferCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CounterOfferCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CounterOffer.
func (c *CounterOfferClient) Update() *CounterOfferUpdate {
	mutation := newCounterOfferMutation(c.config, OpUpdate)
	return &CounterOfferUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CounterOfferClient) UpdateOne(_m *CounterOffer) *CounterOfferUpdateOne {
	mutation := newCounterOfferMutation(c.config, OpUpdateOne, withCounterOffer(_m))
	return &CounterOfferUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CounterOfferClient) UpdateOneID(id uuid.UUID) *CounterOfferUpdateOne {
	mutation := newCounterOfferMutation(c.config, OpUpdateOne, withCounterOfferID(id))
	return &CounterOfferUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CounterOffer.
func (c *CounterOfferClient) Delete() *CounterOfferDelete {
	mutation := newCounterOfferMutation(c.config, OpDelete)
	return &CounterOfferDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CounterOfferClient) DeleteOne(_m *CounterOffer) *CounterOfferDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CounterOfferClient) DeleteOneID(id uuid.UUID) *CounterOfferDeleteOne {
	builder := c.Delete().Where(counteroffer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CounterOfferDeleteOne{builder}
}

// Query returns a query builder for CounterOffer.
func (c *CounterOfferClient) Query() *CounterOfferQuery {
	return &CounterOfferQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCounterOffer},
		inters: c.Interceptors(),
	}
}

// Get returns a CounterOffer entity by its id.
func (c *CounterOfferClient) Get(ctx context.Context, id uuid.UUID) (*CounterOffer, error) {
	return c.Query().Where(counteroffer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CounterOfferClient) GetX(ctx context.Context, id uuid.UUID) *CounterOffer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CounterOfferClient) Hooks() []Hook {
	return c.hooks.CounterOffer
}

// Interceptors returns the client interceptors.
func (c *CounterOfferClient) Interceptors() []Interceptor {
	return c.inters.CounterOffer
}

func (c *CounterOfferClient) mutate(ctx context.Context, m *CounterOfferMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CounterOfferCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CounterOfferUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CounterOfferUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CounterOfferDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CounterOffer mutation op: %q", m.Op())
	}
}

// CustomItemClient is a client for the CustomItem schema.
type CustomItemClient struct {
	config
}

// NewCustomItemClient returns a client for the CustomItem from the given config.
func NewCustomItemClient(c config) *CustomItemClient {
	return &CustomItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `customitem.Hooks(f(g(h())))`.
func (c *CustomItemClient) Use(hooks ...Hook) {
	c.hooks.CustomItem = append(c.hooks.CustomItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `customitem.Intercept(f(g(h())))`.
func (c *CustomItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.CustomItem = append(c.inters.CustomItem, interceptors...)
}

// Create returns a builder for creating a CustomItem entity.
func (c *CustomItemClient) Create() *CustomItemCreate {
	mutation := newCustomItemMutation(c.config, OpCreate)
	return &CustomItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CustomItem entities.
func (c *CustomItemClient) CreateBulk(builders ...*CustomItemCreate) *CustomItemCreateBulk {
	return &CustomItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CustomItemClient) MapCreateBulk(slice any, setFunc func(*CustomItemCreate, int)) *CustomItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CustomItemCreateBulk{err: fmt.Errorf("calling to CustomItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CustomItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CustomItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CustomItem.
func (c *CustomItemClient) Update() *CustomItemUpdate {
	mutation := newCustomItemMutation(c.config, OpUpdate)
	return &CustomItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CustomItemClient) UpdateOne(_m *CustomItem) *CustomItemUpdateOne {
	mutation := newCustomItemMutation(c.config, OpUpdateOne, withCustomItem(_m))
	return &CustomItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CustomItemClient) UpdateOneID(id uuid.UUID) *CustomItemUpdateOne {
	mutation := newCustomItemMutation(c.config, OpUpdateOne, withCustomItemID(id))
	return &CustomItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CustomItem.
func (c *CustomItemClient) Delete() *CustomItemDelete {
	mutation := newCustomItemMutation(c.config, OpDelete)
	return &CustomItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CustomItemClient) DeleteOne(_m *CustomItem) *CustomItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CustomItemClient) DeleteOneID(id uuid.UUID) *CustomItemDeleteOne {
	builder := c.Delete().Where(customitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CustomItemDeleteOne{builder}
}

// Query returns a query builder for CustomItem.
func (c *CustomItemClient) Query() *CustomItemQuery {
	return &CustomItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCustomItem},
		inters: c.Interceptors(),
	}
}

// Get returns a CustomItem entity by its id.
func (c *CustomItemClient) Get(ctx context.Context, id uuid.UUID) (*CustomItem, error) {
	return c.Query().Where(customitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CustomItemClient) GetX(ctx context.Context, id uuid.UUID) *CustomItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CustomItemClient) Hooks() []Hook {
	return c.hooks.CustomItem
}

// Interceptors returns the client interceptors.
func (c *CustomItemClient) Interceptors() []Interceptor {
	return c.inters.CustomItem
}

func (c *CustomItemClient) mutate(ctx context.Context, m *CustomItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CustomItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CustomItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CustomItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CustomItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CustomItem mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id uuid.UUID) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id uuid.UUID) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id uuid.UUID) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id uuid.UUID) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Notification mutation op: %q", m.Op())
	}
}

// PatientClient is a client for the Patient schema.
type PatientClient struct {
	config
}

// NewPatientClient returns a client for the Patient from the given config.
func NewPatientClient(c config) *PatientClient {
	return &PatientClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patient.Hooks(f(g(h())))`.
func (c *PatientClient) Use(hooks ...Hook) {
	c.hooks.Patient = append(c.hooks.Patient, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patient.Intercept(f(g(h())))`.
func (c *PatientClient) Intercept(interceptors ...Interceptor) {
	c.inters.Patient = append(c.inters.Patient, interceptors...)
}

// Create returns a builder for creating a Patient entity.
func (c *PatientClient) Create() *PatientCreate {
	mutation := newPatientMutation(c.config, OpCreate)
	return &PatientCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Patient entities.
func (c *PatientClient) CreateBulk(builders ...*PatientCreate) *PatientCreateBulk {
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientClient) MapCreateBulk(slice any, setFunc func(*PatientCreate, int)) *PatientCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientCreateBulk{err: fmt.Errorf("calling to PatientClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Patient.
func (c *PatientClient) Update() *PatientUpdate {
	mutation := newPatientMutation(c.config, OpUpdate)
	return &PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientClient) UpdateOne(_m *Patient) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatient(_m))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientClient) UpdateOneID(id uuid.UUID) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatientID(id))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Patient.
func (c *PatientClient) Delete() *PatientDelete {
	mutation := newPatientMutation(c.config, OpDelete)
	return &PatientDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientClient) DeleteOne(_m *Patient) *PatientDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientClient) DeleteOneID(id uuid.UUID) *PatientDeleteOne {
	builder := c.Delete().Where(patient.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientDeleteOne{builder}
}

// Query returns a query builder for Patient.
func (c *PatientClient) Query() *PatientQuery {
	return &PatientQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatient},
		inters: c.Interceptors(),
	}
}

// Get returns a Patient entity by its id.
func (c *PatientClient) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return c.Query().Where(patient.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientClient) GetX(ctx context.Context, id uuid.UUID) *Patient {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PatientClient) Hooks() []Hook {
	return c.hooks.Patient
}

// Interceptors returns the client interceptors.
func (c *PatientClient) Interceptors() []Interceptor {
	return c.inters.Patient
}

func (c *PatientClient) mutate(ctx context.Context, m *PatientMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Patient mutation op: %q", m.Op())
	}
}

// ProviderClient is a client for the Provider schema.
type ProviderClient struct {
	config
}

// NewProviderClient returns a client for the Provider from the given config.
func NewProviderClient(c config) *ProviderClient {
	return &ProviderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `provider.Hooks(f(g(h())))`.
func (c *ProviderClient) Use(hooks ...Hook) {
	c.hooks.Provider = append(c.hooks.Provider, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `provider.Intercept(f(g(h())))`.
func (c *ProviderClient) Intercept(interceptors ...Interceptor) {
	c.inters.Provider = append(c.inters.Provider, interceptors...)
}

// Create returns a builder for creating a Provider entity.
func (c *ProviderClient) Create() *ProviderCreate {
	mutation := newProviderMutation(c.config, OpCreate)
	return &ProviderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Provider entities.
func (c *ProviderClient) CreateBulk(builders ...*ProviderCreate) *ProviderCreateBulk {
	return &ProviderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProviderClient) MapCreateBulk(slice any, setFunc func(*ProviderCreate, int)) *ProviderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProviderCreateBulk{err: fmt.Errorf("calling to ProviderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProviderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProviderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Provider.
func (c *ProviderClient) Update() *ProviderUpdate {
	mutation := newProviderMutation(c.config, OpUpdate)
	return &ProviderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProviderClient) UpdateOne(_m *Provider) *ProviderUpdateOne {
	mutation := newProviderMutation(c.config, OpUpdateOne, withProvider(_m))
	return &ProviderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProviderClient) UpdateOneID(id uuid.UUID) *ProviderUpdateOne {
	mutation := newProviderMutation(c.config, OpUpdateOne, withProviderID(id))
	return &ProviderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Provider.
func (c *ProviderClient) Delete() *ProviderDelete {
	mutation := newProviderMutation(c.config, OpDelete)
	return &ProviderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProviderClient) DeleteOne(_m *Provider) *ProviderDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProviderClient) DeleteOneID(id uuid.UUID) *ProviderDeleteOne {
	builder := c.Delete().Where(provider.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProviderDeleteOne{builder}
}

// Query returns a query builder for Provider.
func (c *ProviderClient) Query() *ProviderQuery {
	return &ProviderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProvider},
		inters: c.Interceptors(),
	}
}

// Get returns a Provider entity by its id.
func (c *ProviderClient) Get(ctx context.Context, id uuid.UUID) (*Provider, error) {
	return c.Query().Where(provider.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProviderClient) GetX(ctx context.Context, id uuid.UUID) *Provider {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProviderClient) Hooks() []Hook {
	return c.hooks.Provider
}

// Interceptors returns the client interceptors.
func (c *ProviderClient) Interceptors() []Interceptor {
	return c.inters.Provider
}

func (c *ProviderClient) mutate(ctx context.Context, m *ProviderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProviderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProviderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProviderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProviderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Provider mutation op: %q", m.Op())
	}
}

// ProviderOverrideClient is a client for the ProviderOverride schema.
type ProviderOverrideClient struct {
	config
}

// NewProviderOverrideClient returns a client for the ProviderOverride from the given config.
func NewProviderOverrideClient(c config) *ProviderOverrideClient {
	return &ProviderOverrideClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `provideroverride.Hooks(f(g(h())))`.
func (c *ProviderOverrideClient) Use(hooks ...Hook) {
	c.hooks.ProviderOverride = append(c.hooks.ProviderOverride, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `provideroverride.Intercept(f(g(h())))`.
func (c *ProviderOverrideClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProviderOverride = append(c.inters.ProviderOverride, interceptors...)
}

// Create returns a builder for creating a ProviderOverride entity.
func (c *ProviderOverrideClient) Create() *ProviderOverrideCreate {
	mutation := newProviderOverrideMutation(c.config, OpCreate)
	return &ProviderOverrideCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProviderOverride entities.
func (c *ProviderOverrideClient) CreateBulk(builders ...*ProviderOverrideCreate) *ProviderOverrideCreateBulk {
	return &ProviderOverrideCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProviderOverrideClient) MapCreateBulk(slice any, setFunc func(*ProviderOverrideCreate, int)) *ProviderOverrideCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProviderOverrideCreateBulk{err: fmt.Errorf("calling to ProviderOverrideClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProviderOverrideCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProviderOverrideCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProviderOverride.
func (c *ProviderOverrideClient) Update() *ProviderOverrideUpdate {
	mutation := newProviderOverrideMutation(c.config, OpUpdate)
	return &ProviderOverrideUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProviderOverrideClient) UpdateOne(_m *ProviderOverride) *ProviderOverrideUpdateOne {
	mutation := newProviderOverrideMutation(c.config, OpUpdateOne, withProviderOverride(_m))
	return &ProviderOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProviderOverrideClient) UpdateOneID(id int) *ProviderOverrideUpdateOne {
	mutation := newProviderOverrideMutation(c.config, OpUpdateOne, withProviderOverrideID(id))
	return &ProviderOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProviderOverride.
func (c *ProviderOverrideClient) Delete() *ProviderOverrideDelete {
	mutation := newProviderOverrideMutation(c.config, OpDelete)
	return &ProviderOverrideDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProviderOverrideClient) DeleteOne(_m *ProviderOverride) *ProviderOverrideDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProviderOverrideClient) DeleteOneID(id int) *ProviderOverrideDeleteOne {
	builder := c.Delete().Where(provideroverride.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProviderOverrideDeleteOne{builder}
}

// Query returns a query builder for ProviderOverride.
func (c *ProviderOverrideClient) Query() *ProviderOverrideQuery {
	return &ProviderOverrideQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProviderOverride},
		inters: c.Interceptors(),
	}
}

// Get returns a ProviderOverride entity by its id.
func (c *ProviderOverrideClient) Get(ctx context.Context, id int) (*ProviderOverride, error) {
	return c.Query().Where(provideroverride.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProviderOverrideClient) GetX(ctx context.Context, id int) *ProviderOverride {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProviderOverrideClient) Hooks() []Hook {
	return c.hooks.ProviderOverride
}

// Interceptors returns the client interceptors.
func (c *ProviderOverrideClient) Interceptors() []Interceptor {
	return c.inters.ProviderOverride
}

func (c *ProviderOverrideClient) mutate(ctx context.Context, m *ProviderOverrideMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProviderOverrideCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProviderOverrideUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProviderOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProviderOverrideDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProviderOverride mutation op: %q", m.Op())
	}
}

// QuoteRecordClient is a client for the QuoteRecord schema.
type QuoteRecordClient struct {
	config
}

// NewQuoteRecordClient returns a client for the QuoteRecord from the given config.
func NewQuoteRecordClient(c config) *QuoteRecordClient {
	return &QuoteRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quoterecord.Hooks(f(g(h())))`.
func (c *QuoteRecordClient) Use(hooks ...Hook) {
	c.hooks.QuoteRecord = append(c.hooks.QuoteRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quoterecord.Intercept(f(g(h())))`.
func (c *QuoteRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuoteRecord = append(c.inters.QuoteRecord, interceptors...)
}

// Create returns a builder for creating a QuoteRecord entity.
func (c *QuoteRecordClient) Create() *QuoteRecordCreate {
	mutation := newQuoteRecordMutation(c.config, OpCreate)
	return &QuoteRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuoteRecord entities.
func (c *QuoteRecordClient) CreateBulk(builders ...*QuoteRecordCreate) *QuoteRecordCreateBulk {
	return &QuoteRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuoteRecordClient) MapCreateBulk(slice any, setFunc func(*QuoteRecordCreate, int)) *QuoteRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuoteRecordCreateBulk{err: fmt.Errorf("calling to QuoteRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuoteRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuoteRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuoteRecord.
func (c *QuoteRecordClient) Update() *QuoteRecordUpdate {
	mutation := newQuoteRecordMutation(c.config, OpUpdate)
	return &QuoteRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuoteRecordClient) UpdateOne(_m *QuoteRecord) *QuoteRecordUpdateOne {
	mutation := newQuoteRecordMutation(c.config, OpUpdateOne, withQuoteRecord(_m))
	return &QuoteRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuoteRecordClient) UpdateOneID(id uuid.UUID) *QuoteRecordUpdateOne {
	mutation := newQuoteRecordMutation(c.config, OpUpdateOne, withQuoteRecordID(id))
	return &QuoteRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuoteRecord.
func (c *QuoteRecordClient) Delete() *QuoteRecordDelete {
	mutation := newQuoteRecordMutation(c.config, OpDelete)
	return &QuoteRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuoteRecordClient) DeleteOne(_m *QuoteRecord) *QuoteRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuoteRecordClient) DeleteOneID(id uuid.UUID) *QuoteRecordDeleteOne {
	builder := c.Delete().Where(quoterecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuoteRecordDeleteOne{builder}
}

// Query returns a query builder for QuoteRecord.
func (c *QuoteRecordClient) Query() *QuoteRecordQuery {
	return &QuoteRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuoteRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a QuoteRecord entity by its id.
func (c *QuoteRecordClient) Get(ctx context.Context, id uuid.UUID) (*QuoteRecord, error) {
	return c.Query().Where(quoterecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuoteRecordClient) GetX(ctx context.Context, id uuid.UUID) *QuoteRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuoteRecordClient) Hooks() []Hook {
	return c.hooks.QuoteRecord
}

// Interceptors returns the client interceptors.
func (c *QuoteRecordClient) Interceptors() []Interceptor {
	return c.inters.QuoteRecord
}

func (c *QuoteRecordClient) mutate(ctx context.Context, m *QuoteRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuoteRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuoteRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuoteRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuoteRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuoteRecord mutation op: %q", m.Op())
	}
}

// StaffMemberClient is a client for the StaffMember schema.
type StaffMemberClient struct {
	config
}

// NewStaffMemberClient returns a client for the StaffMember from the given config.
func NewStaffMemberClient(c config) *StaffMemberClient {
	return &StaffMemberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `staffmember.Hooks(f(g(h())))`.
func (c *StaffMemberClient) Use(hooks ...Hook) {
	c.hooks.StaffMember = append(c.hooks.StaffMember, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `staffmember.Intercept(f(g(h())))`.
func (c *StaffMemberClient) Intercept(interceptors ...Interceptor) {
	c.inters.StaffMember = append(c.inters.StaffMember, interceptors...)
}

// Create returns a builder for creating a StaffMember entity.
func (c *StaffMemberClient) Create() *StaffMemberCreate {
	mutation := newStaffMemberMutation(c.config, OpCreate)
	return &StaffMemberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StaffMember entities.
func (c *StaffMemberClient) CreateBulk(builders ...*StaffMemberCreate) *StaffMemberCreateBulk {
	return &StaffMemberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StaffMemberClient) MapCreateBulk(slice any, setFunc func(*StaffMemberCreate, int)) *StaffMemberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StaffMemberCreateBulk{err: fmt.Errorf("calling to StaffMemberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StaffMemberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StaffMemberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StaffMember.
func (c *StaffMemberClient) Update() *StaffMemberUpdate {
	mutation := newStaffMemberMutation(c.config, OpUpdate)
	return &StaffMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StaffMemberClient) UpdateOne(_m *StaffMember) *StaffMemberUpdateOne {
	mutation := newStaffMemberMutation(c.config, OpUpdateOne, withStaffMember(_m))
	return &StaffMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StaffMemberClient) UpdateOneID(id uuid.UUID) *StaffMemberUpdateOne {
	mutation := newStaffMemberMutation(c.config, OpUpdateOne, withStaffMemberID(id))
	return &StaffMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StaffMember.
func (c *StaffMemberClient) Delete() *StaffMemberDelete {
	mutation := newStaffMemberMutation(c.config, OpDelete)
	return &StaffMemberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StaffMemberClient) DeleteOne(_m *StaffMember) *StaffMemberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StaffMemberClient) DeleteOneID(id uuid.UUID) *StaffMemberDeleteOne {
	builder := c.Delete().Where(staffmember.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StaffMemberDeleteOne{builder}
}

// Query returns a query builder for StaffMember.
func (c *StaffMemberClient) Query() *StaffMemberQuery {
	return &StaffMemberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStaffMember},
		inters: c.Interceptors(),
	}
}

// Get returns a StaffMember entity by its id.
func (c *StaffMemberClient) Get(ctx context.Context, id uuid.UUID) (*StaffMember, error) {
	return c.Query().Where(staffmember.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StaffMemberClient) GetX(ctx context.Context, id uuid.UUID) *StaffMember {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StaffMemberClient) Hooks() []Hook {
	return c.hooks.StaffMember
}

// Interceptors returns the client interceptors.
func (c *StaffMemberClient) Interceptors() []Interceptor {
	return c.inters.StaffMember
}

func (c *StaffMemberClient) mutate(ctx context.Context, m *StaffMemberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StaffMemberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StaffMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StaffMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StaffMemberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StaffMember mutation op: %q", m.Op())
	}
}

// StudioPhotoClient is a client for the StudioPhoto schema.
type StudioPhotoClient struct {
	config
}

// NewStudioPhotoClient returns a client for the StudioPhoto from the given config.
func NewStudioPhotoClient(c config) *StudioPhotoClient {
	return &StudioPhotoClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studiophoto.Hooks(f(g(h())))`.
func (c *StudioPhotoClient) Use(hooks ...Hook) {
	c.hooks.StudioPhoto = append(c.hooks.StudioPhoto, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studiophoto.Intercept(f(g(h())))`.
func (c *StudioPhotoClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudioPhoto = append(c.inters.StudioPhoto, interceptors...)
}

// Create returns a builder for creating a StudioPhoto entity.
func (c *StudioPhotoClient) Create() *StudioPhotoCreate {
	mutation := newStudioPhotoMutation(c.config, OpCreate)
	return &StudioPhotoCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudioPhoto entities.
func (c *StudioPhotoClient) CreateBulk(builders ...*StudioPhotoCreate) *StudioPhotoCreateBulk {
	return &StudioPhotoCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudioPhotoClient) MapCreateBulk(slice any, setFunc func(*StudioPhotoCreate, int)) *StudioPhotoCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudioPhotoCreateBulk{err: fmt.Errorf("calling to StudioPhotoClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudioPhotoCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudioPhotoCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudioPhoto.
func (c *StudioPhotoClient) Update() *StudioPhotoUpdate {
	mutation := newStudioPhotoMutation(c.config, OpUpdate)
	return &StudioPhotoUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudioPhotoClient) UpdateOne(_m *StudioPhoto) *StudioPhotoUpdateOne {
	mutation := newStudioPhotoMutation(c.config, OpUpdateOne, withStudioPhoto(_m))
	return &StudioPhotoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudioPhotoClient) UpdateOneID(id uuid.UUID) *StudioPhotoUpdateOne {
	mutation := newStudioPhotoMutation(c.config, OpUpdateOne, withStudioPhotoID(id))
	return &StudioPhotoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudioPhoto.
func (c *StudioPhotoClient) Delete() *StudioPhotoDelete {
	mutation := newStudioPhotoMutation(c.config, OpDelete)
	return &StudioPhotoDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudioPhotoClient) DeleteOne(_m *StudioPhoto) *StudioPhotoDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudioPhotoClient) DeleteOneID(id uuid.UUID) *StudioPhotoDeleteOne {
	builder := c.Delete().Where(studiophoto.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudioPhotoDeleteOne{builder}
}

// Query returns a query builder for StudioPhoto.
func (c *StudioPhotoClient) Query() *StudioPhotoQuery {
	return &StudioPhotoQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudioPhoto},
		inters: c.Interceptors(),
	}
}

// Get returns a StudioPhoto entity by its id.
func (c *StudioPhotoClient) Get(ctx context.Context, id uuid.UUID) (*StudioPhoto, error) {
	return c.Query().Where(studiophoto.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudioPhotoClient) GetX(ctx context.Context, id uuid.UUID) *StudioPhoto {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudioPhotoClient) Hooks() []Hook {
	return c.hooks.StudioPhoto
}

// Interceptors returns the client interceptors.
func (c *StudioPhotoClient) Interceptors() []Interceptor {
	return c.inters.StudioPhoto
}

func (c *StudioPhotoClient) mutate(ctx context.Context, m *StudioPhotoMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudioPhotoCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudioPhotoUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudioPhotoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudioPhotoDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudioPhoto mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CatalogItem, CounterOffer, CustomItem, Notification, Patient, Provider,
		ProviderOverride, QuoteRecord, StaffMember, StudioPhoto []ent.Hook
	}
	inters struct {
		CatalogItem, CounterOffer, CustomItem, Notification, Patient, Provider,
		ProviderOverride, QuoteRecord, StaffMember, StudioPhoto []ent.Interceptor
	}
)

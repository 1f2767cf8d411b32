// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"NovedadesAPI/ent/migrate"

	"NovedadesAPI/ent/article"
	"NovedadesAPI/ent/law"
	"NovedadesAPI/ent/legalreference"
	"NovedadesAPI/ent/report"
	"NovedadesAPI/ent/reportimage"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Article is the client for interacting with the Article builders.
	Article *ArticleClient
	// Law is the client for interacting with the Law builders.
	Law *LawClient
	// LegalReference is the client for interacting with the LegalReference builders.
	LegalReference *LegalReferenceClient
	// Report is the client for interacting with the Report builders.
	Report *ReportClient
	// ReportImage is the client for interacting with the ReportImage builders.
	ReportImage *ReportImageClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Article = NewArticleClient(c.config)
	c.Law = NewLawClient(c.config)
	c.LegalReference = NewLegalReferenceClient(c.config)
	c.Report = NewReportClient(c.config)
	c.ReportImage = NewReportImageClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		Article:        NewArticleClient(cfg),
		Law:            NewLawClient(cfg),
		LegalReference: NewLegalReferenceClient(cfg),
		Report:         NewReportClient(cfg),
		ReportImage:    NewReportImageClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		Article:        NewArticleClient(cfg),
		Law:            NewLawClient(cfg),
		LegalReference: NewLegalReferenceClient(cfg),
		Report:         NewReportClient(cfg),
		ReportImage:    NewReportImageClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Article.
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
	c.Article.Use(hooks...)
	c.Law.Use(hooks...)
	c.LegalReference.Use(hooks...)
	c.Report.Use(hooks...)
	c.ReportImage.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Article.Intercept(interceptors...)
	c.Law.Intercept(interceptors...)
	c.LegalReference.Intercept(interceptors...)
	c.Report.Intercept(interceptors...)
	c.ReportImage.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ArticleMutation:
		return c.Article.mutate(ctx, m)
	case *LawMutation:
		return c.Law.mutate(ctx, m)
	case *LegalReferenceMutation:
		return c.LegalReference.mutate(ctx, m)
	case *ReportMutation:
		return c.Report.mutate(ctx, m)
	case *ReportImageMutation:
		return c.ReportImage.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ArticleClient is a client for the Article schema.
type ArticleClient struct {
	config
}

// NewArticleClient returns a client for the Article from the given config.
func NewArticleClient(c config) *ArticleClient {
	return &ArticleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `article.Hooks(f(g(h())))`.
func (c *ArticleClient) Use(hooks ...Hook) {
	c.hooks.Article = append(c.hooks.Article, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `article.Intercept(f(g(h())))`.
func (c *ArticleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Article = append(c.inters.Article, interceptors...)
}

// Create returns a builder for creating a Article entity.
func (c *ArticleClient) Create() *ArticleCreate {
	mutation := newArticleMutation(c.config, OpCreate)
	return &ArticleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Article entities.
func (c *ArticleClient) CreateBulk(builders ...*ArticleCreate) *ArticleCreateBulk {
	return &ArticleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArticleClient) MapCreateBulk(slice any, setFunc func(*ArticleCreate, int)) *ArticleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArticleCreateBulk{err: fmt.Errorf("calling to ArticleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArticleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArticleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Article.
func (c *ArticleClient) Update() *ArticleUpdate {
	mutation := newArticleMutation(c.config, OpUpdate)
	return &ArticleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArticleClient) UpdateOne(_m *Article) *ArticleUpdateOne {
	mutation := newArticleMutation(c.config, OpUpdateOne, withArticle(_m))
	return &ArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArticleClient) UpdateOneID(id uuid.UUID) *ArticleUpdateOne {
	mutation := newArticleMutation(c.config, OpUpdateOne, withArticleID(id))
	return &ArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Article.
func (c *ArticleClient) Delete() *ArticleDelete {
	mutation := newArticleMutation(c.config, OpDelete)
	return &ArticleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArticleClient) DeleteOne(_m *Article) *ArticleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArticleClient) DeleteOneID(id uuid.UUID) *ArticleDeleteOne {
	builder := c.Delete().Where(article.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArticleDeleteOne{builder}
}

// Query returns a query builder for Article.
func (c *ArticleClient) Query() *ArticleQuery {
	return &ArticleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArticle},
		inters: c.Interceptors(),
	}
}

// Get returns a Article entity by its id.
func (c *ArticleClient) Get(ctx context.Context, id uuid.UUID) (*Article, error) {
	return c.Query().Where(article.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArticleClient) GetX(ctx context.Context, id uuid.UUID) *Article {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLey queries the ley edge of a Article.
func (c *ArticleClient) QueryLey(_m *Article) *LawQuery {
	query := (&LawClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(article.Table, article.FieldID, id),
			sqlgraph.To(law.Table, law.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, article.LeyTable, article.LeyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ArticleClient) Hooks() []Hook {
	return c.hooks.Article
}

// Interceptors returns the client interceptors.
func (c *ArticleClient) Interceptors() []Interceptor {
	return c.inters.Article
}

func (c *ArticleClient) mutate(ctx context.Context, m *ArticleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArticleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArticleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArticleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Article mutation op: %q", m.Op())
	}
}

// LawClient is a client for the Law schema.
type LawClient struct {
	config
}

// NewLawClient returns a client for the Law from the given config.
func NewLawClient(c config) *LawClient {
	return &LawClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `law.Hooks(f(g(h())))`.
func (c *LawClient) Use(hooks ...Hook) {
	c.hooks.Law = append(c.hooks.Law, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `law.Intercept(f(g(h())))`.
func (c *LawClient) Intercept(interceptors ...Interceptor) {
	c.inters.Law = append(c.inters.Law, interceptors...)
}

// Create returns a builder for creating a Law entity.
func (c *LawClient) Create() *LawCreate {
	mutation := newLawMutation(c.config, OpCreate)
	return &LawCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Law entities.
func (c *LawClient) CreateBulk(builders ...*LawCreate) *LawCreateBulk {
	return &LawCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LawClient) MapCreateBulk(slice any, setFunc func(*LawCreate, int)) *LawCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LawCreateBulk{err: fmt.Errorf("calling to LawClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LawCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LawCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Law.
func (c *LawClient) Update() *LawUpdate {
	mutation := newLawMutation(c.config, OpUpdate)
	return &LawUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LawClient) UpdateOne(_m *Law) *LawUpdateOne {
	mutation := newLawMutation(c.config, OpUpdateOne, withLaw(_m))
	return &LawUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LawClient) UpdateOneID(id uuid.UUID) *LawUpdateOne {
	mutation := newLawMutation(c.config, OpUpdateOne, withLawID(id))
	return &LawUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Law.
func (c *LawClient) Delete() *LawDelete {
	mutation := newLawMutation(c.config, OpDelete)
	return &LawDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LawClient) DeleteOne(_m *Law) *LawDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LawClient) DeleteOneID(id uuid.UUID) *LawDeleteOne {
	builder := c.Delete().Where(law.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LawDeleteOne{builder}
}

// Query returns a query builder for Law.
func (c *LawClient) Query() *LawQuery {
	return &LawQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLaw},
		inters: c.Interceptors(),
	}
}

// Get returns a Law entity by its id.
func (c *LawClient) Get(ctx context.Context, id uuid.UUID) (*Law, error) {
	return c.Query().Where(law.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LawClient) GetX(ctx context.Context, id uuid.UUID) *Law {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryArticulos queries the articulos edge of a Law.
func (c *LawClient) QueryArticulos(_m *Law) *ArticleQuery {
	query := (&ArticleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(law.Table, law.FieldID, id),
			sqlgraph.To(article.Table, article.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, law.ArticulosTable, law.ArticulosColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LawClient) Hooks() []Hook {
	return c.hooks.Law
}

// Interceptors returns the client interceptors.
func (c *LawClient) Interceptors() []Interceptor {
	return c.inters.Law
}

func (c *LawClient) mutate(ctx context.Context, m *LawMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LawCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LawUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LawUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LawDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Law mutation op: %q", m.Op())
	}
}

// LegalReferenceClient is a client for the LegalReference schema.
type LegalReferenceClient struct {
	config
}

// NewLegalReferenceClient returns a client for the LegalReference from the given config.
func NewLegalReferenceClient(c config) *LegalReferenceClient {
	return &LegalReferenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `legalreference.Hooks(f(g(h())))`.
func (c *LegalReferenceClient) Use(hooks ...Hook) {
	c.hooks.LegalReference = append(c.hooks.LegalReference, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `legalreference.Intercept(f(g(h())))`.
func (c *LegalReferenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.LegalReference = append(c.inters.LegalReference, interceptors...)
}

// Create returns a builder for creating a LegalReference entity.
func (c *LegalReferenceClient) Create() *LegalReferenceCreate {
	mutation := newLegalReferenceMutation(c.config, OpCreate)
	return &LegalReferenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LegalReference entities.
func (c *LegalReferenceClient) CreateBulk(builders ...*LegalReferenceCreate) *LegalReferenceCreateBulk {
	return &LegalReferenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LegalReferenceClient) MapCreateBulk(slice any, setFunc func(*LegalReferenceCreate, int)) *LegalReferenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LegalReferenceCreateBulk{err: fmt.Errorf("calling to LegalReferenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LegalReferenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LegalReferenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LegalReference.
func (c *LegalReferenceClient) Update() *LegalReferenceUpdate {
	mutation := newLegalReferenceMutation(c.config, OpUpdate)
	return &LegalReferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LegalReferenceClient) UpdateOne(_m *LegalReference) *LegalReferenceUpdateOne {
	mutation := newLegalReferenceMutation(c.config, OpUpdateOne, withLegalReference(_m))
	return &LegalReferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LegalReferenceClient) UpdateOneID(id uuid.UUID) *LegalReferenceUpdateOne {
	mutation := newLegalReferenceMutation(c.config, OpUpdateOne, withLegalReferenceID(id))
	return &LegalReferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LegalReference.
func (c *LegalReferenceClient) Delete() *LegalReferenceDelete {
	mutation := newLegalReferenceMutation(c.config, OpDelete)
	return &LegalReferenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LegalReferenceClient) DeleteOne(_m *LegalReference) *LegalReferenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LegalReferenceClient) DeleteOneID(id uuid.UUID) *LegalReferenceDeleteOne {
	builder := c.Delete().Where(legalreference.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LegalReferenceDeleteOne{builder}
}

// Query returns a query builder for LegalReference.
func (c *LegalReferenceClient) Query() *LegalReferenceQuery {
	return &LegalReferenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLegalReference},
		inters: c.Interceptors(),
	}
}

// Get returns a LegalReference entity by its id.
func (c *LegalReferenceClient) Get(ctx context.Context, id uuid.UUID) (*LegalReference, error) {
	return c.Query().Where(legalreference.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LegalReferenceClient) GetX(ctx context.Context, id uuid.UUID) *LegalReference {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a LegalReference.
func (c *LegalReferenceClient) QueryReport(_m *LegalReference) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(legalreference.Table, legalreference.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, legalreference.ReportTable, legalreference.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLey queries the ley edge of a LegalReference.
func (c *LegalReferenceClient) QueryLey(_m *LegalReference) *LawQuery {
	query := (&LawClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(legalreference.Table, legalreference.FieldID, id),
			sqlgraph.To(law.Table, law.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, legalreference.LeyTable, legalreference.LeyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryArticulo queries the articulo edge of a LegalReference.
func (c *LegalReferenceClient) QueryArticulo(_m *LegalReference) *ArticleQuery {
	query := (&ArticleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(legalreference.Table, legalreference.FieldID, id),
			sqlgraph.To(article.Table, article.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, legalreference.ArticuloTable, legalreference.ArticuloColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LegalReferenceClient) Hooks() []Hook {
	return c.hooks.LegalReference
}

// Interceptors returns the client interceptors.
func (c *LegalReferenceClient) Interceptors() []Interceptor {
	return c.inters.LegalReference
}

func (c *LegalReferenceClient) mutate(ctx context.Context, m *LegalReferenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LegalReferenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LegalReferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LegalReferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LegalReferenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LegalReference mutation op: %q", m.Op())
	}
}

// ReportClient is a client for the Report schema.
type ReportClient struct {
	config
}

// NewReportClient returns a client for the Report from the given config.
func NewReportClient(c config) *ReportClient {
	return &ReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `report.Hooks(f(g(h())))`.
func (c *ReportClient) Use(hooks ...Hook) {
	c.hooks.Report = append(c.hooks.Report, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `report.Intercept(f(g(h())))`.
func (c *ReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.Report = append(c.inters.Report, interceptors...)
}

// Create returns a builder for creating a Report entity.
func (c *ReportClient) Create() *ReportCreate {
	mutation := newReportMutation(c.config, OpCreate)
	return &ReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Report entities.
func (c *ReportClient) CreateBulk(builders ...*ReportCreate) *ReportCreateBulk {
	return &ReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReportClient) MapCreateBulk(slice any, setFunc func(*ReportCreate, int)) *ReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReportCreateBulk{err: fmt.Errorf("calling to ReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Report.
func (c *ReportClient) Update() *ReportUpdate {
	mutation := newReportMutation(c.config, OpUpdate)
	return &ReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReportClient) UpdateOne(_m *Report) *ReportUpdateOne {
	mutation := newReportMutation(c.config, OpUpdateOne, withReport(_m))
	return &ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReportClient) UpdateOneID(id uuid.UUID) *ReportUpdateOne {
	mutation := newReportMutation(c.config, OpUpdateOne, withReportID(id))
	return &ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Report.
func (c *ReportClient) Delete() *ReportDelete {
	mutation := newReportMutation(c.config, OpDelete)
	return &ReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReportClient) DeleteOne(_m *Report) *ReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReportClient) DeleteOneID(id uuid.UUID) *ReportDeleteOne {
	builder := c.Delete().Where(report.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReportDeleteOne{builder}
}

// Query returns a query builder for Report.
func (c *ReportClient) Query() *ReportQuery {
	return &ReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReport},
		inters: c.Interceptors(),
	}
}

// Get returns a Report entity by its id.
func (c *ReportClient) Get(ctx context.Context, id uuid.UUID) (*Report, error) {
	return c.Query().Where(report.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReportClient) GetX(ctx context.Context, id uuid.UUID) *Report {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryImagenes queries the imagenes edge of a Report.
func (c *ReportClient) QueryImagenes(_m *Report) *ReportImageQuery {
	query := (&ReportImageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(reportimage.Table, reportimage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.ImagenesTable, report.ImagenesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReferencias queries the referencias edge of a Report.
func (c *ReportClient) QueryReferencias(_m *Report) *LegalReferenceQuery {
	query := (&LegalReferenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(legalreference.Table, legalreference.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.ReferenciasTable, report.ReferenciasColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReportClient) Hooks() []Hook {
	return c.hooks.Report
}

// Interceptors returns the client interceptors.
func (c *ReportClient) Interceptors() []Interceptor {
	return c.inters.Report
}

func (c *ReportClient) mutate(ctx context.Context, m *ReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Report mutation op: %q", m.Op())
	}
}

// ReportImageClient is a client for the ReportImage schema.
type ReportImageClient struct {
	config
}

// NewReportImageClient returns a client for the ReportImage from the given config.
func NewReportImageClient(c config) *ReportImageClient {
	return &ReportImageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reportimage.Hooks(f(g(h())))`.
func (c *ReportImageClient) Use(hooks ...Hook) {
	c.hooks.ReportImage = append(c.hooks.ReportImage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reportimage.Intercept(f(g(h())))`.
func (c *ReportImageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReportImage = append(c.inters.ReportImage, interceptors...)
}

// Create returns a builder for creating a ReportImage entity.
func (c *ReportImageClient) Create() *ReportImageCreate {
	mutation := newReportImageMutation(c.config, OpCreate)
	return &ReportImageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReportImage entities.
func (c *ReportImageClient) CreateBulk(builders ...*ReportImageCreate) *ReportImageCreateBulk {
	return &ReportImageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReportImageClient) MapCreateBulk(slice any, setFunc func(*ReportImageCreate, int)) *ReportImageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReportImageCreateBulk{err: fmt.Errorf("calling to ReportImageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReportImageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReportImageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReportImage.
func (c *ReportImageClient) Update() *ReportImageUpdate {
	mutation := newReportImageMutation(c.config, OpUpdate)
	return &ReportImageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReportImageClient) UpdateOne(_m *ReportImage) *ReportImageUpdateOne {
	mutation := newReportImageMutation(c.config, OpUpdateOne, withReportImage(_m))
	return &ReportImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReportImageClient) UpdateOneID(id uuid.UUID) *ReportImageUpdateOne {
	mutation := newReportImageMutation(c.config, OpUpdateOne, withReportImageID(id))
	return &ReportImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReportImage.
func (c *ReportImageClient) Delete() *ReportImageDelete {
	mutation := newReportImageMutation(c.config, OpDelete)
	return &ReportImageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReportImageClient) DeleteOne(_m *ReportImage) *ReportImageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReportImageClient) DeleteOneID(id uuid.UUID) *ReportImageDeleteOne {
	builder := c.Delete().Where(reportimage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReportImageDeleteOne{builder}
}

// Query returns a query builder for ReportImage.
func (c *ReportImageClient) Query() *ReportImageQuery {
	return &ReportImageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReportImage},
		inters: c.Interceptors(),
	}
}

// Get returns a ReportImage entity by its id.
func (c *ReportImageClient) Get(ctx context.Context, id uuid.UUID) (*ReportImage, error) {
	return c.Query().Where(reportimage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReportImageClient) GetX(ctx context.Context, id uuid.UUID) *ReportImage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a ReportImage.
func (c *ReportImageClient) QueryReport(_m *ReportImage) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reportimage.Table, reportimage.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, reportimage.ReportTable, reportimage.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReportImageClient) Hooks() []Hook {
	return c.hooks.ReportImage
}

// Interceptors returns the client interceptors.
func (c *ReportImageClient) Interceptors() []Interceptor {
	return c.inters.ReportImage
}

func (c *ReportImageClient) mutate(ctx context.Context, m *ReportImageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReportImageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReportImageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReportImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReportImageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReportImage mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Article, Law, LegalReference, Report, ReportImage []ent.Hook
	}
	inters struct {
		Article, Law, LegalReference, Report, ReportImage []ent.Interceptor
	}
)

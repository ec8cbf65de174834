// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/mattin-ai/mattin/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mattin-ai/mattin/gen/ent/agent"
	"github.com/mattin-ai/mattin/gen/ent/extractionjob"
	"github.com/mattin-ai/mattin/gen/ent/schemadefinition"
	"github.com/mattin-ai/mattin/gen/ent/schemafield"
	"github.com/mattin-ai/mattin/gen/ent/silo"
	"github.com/mattin-ai/mattin/gen/ent/toolserver"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// ExtractionJob is the client for interacting with the ExtractionJob builders.
	ExtractionJob *ExtractionJobClient
	// SchemaDefinition is the client for interacting with the SchemaDefinition builders.
	SchemaDefinition *SchemaDefinitionClient
	// SchemaField is the client for interacting with the SchemaField builders.
	SchemaField *SchemaFieldClient
	// Silo is the client for interacting with the Silo builders.
	Silo *SiloClient
	// ToolServer is the client for interacting with the ToolServer builders.
	ToolServer *ToolServerClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.ExtractionJob = NewExtractionJobClient(c.config)
	c.SchemaDefinition = NewSchemaDefinitionClient(c.config)
	c.SchemaField = NewSchemaFieldClient(c.config)
	c.Silo = NewSiloClient(c.config)
	c.ToolServer = NewToolServerClient(c.config)
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
		Agent:            NewAgentClient(cfg),
		ExtractionJob:    NewExtractionJobClient(cfg),
		SchemaDefinition: NewSchemaDefinitionClient(cfg),
		SchemaField:      NewSchemaFieldClient(cfg),
		Silo:             NewSiloClient(cfg),
		ToolServer:       NewToolServerClient(cfg),
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
		Agent:            NewAgentClient(cfg),
		ExtractionJob:    NewExtractionJobClient(cfg),
		SchemaDefinition: NewSchemaDefinitionClient(cfg),
		SchemaField:      NewSchemaFieldClient(cfg),
		Silo:             NewSiloClient(cfg),
		ToolServer:       NewToolServerClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
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
		c.Agent, c.ExtractionJob, c.SchemaDefinition, c.SchemaField, c.Silo,
		c.ToolServer,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Agent, c.ExtractionJob, c.SchemaDefinition, c.SchemaField, c.Silo,
		c.ToolServer,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *ExtractionJobMutation:
		return c.ExtractionJob.mutate(ctx, m)
	case *SchemaDefinitionMutation:
		return c.SchemaDefinition.mutate(ctx, m)
	case *SchemaFieldMutation:
		return c.SchemaField.mutate(ctx, m)
	case *SiloMutation:
		return c.Silo.mutate(ctx, m)
	case *ToolServerMutation:
		return c.ToolServer.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id int) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id int) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id int) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id int) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOutputSchema queries the output_schema edge of a Agent.
func (c *AgentClient) QueryOutputSchema(_m *Agent) *SchemaDefinitionQuery {
	query := (&SchemaDefinitionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(schemadefinition.Table, schemadefinition.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, agent.OutputSchemaTable, agent.OutputSchemaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Agent.
func (c *AgentClient) QueryJobs(_m *Agent) *ExtractionJobQuery {
	query := (&ExtractionJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(extractionjob.Table, extractionjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.JobsTable, agent.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySilos queries the silos edge of a Agent.
func (c *AgentClient) QuerySilos(_m *Agent) *SiloQuery {
	query := (&SiloClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(silo.Table, silo.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, agent.SilosTable, agent.SilosPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryToolServers queries the tool_servers edge of a Agent.
func (c *AgentClient) QueryToolServers(_m *Agent) *ToolServerQuery {
	query := (&ToolServerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(toolserver.Table, toolserver.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, agent.ToolServersTable, agent.ToolServersPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// ExtractionJobClient is a client for the ExtractionJob schema.
type ExtractionJobClient struct {
	config
}

// NewExtractionJobClient returns a client for the ExtractionJob from the given config.
func NewExtractionJobClient(c config) *ExtractionJobClient {
	return &ExtractionJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractionjob.Hooks(f(g(h())))`.
func (c *ExtractionJobClient) Use(hooks ...Hook) {
	c.hooks.ExtractionJob = append(c.hooks.ExtractionJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractionjob.Intercept(f(g(h())))`.
func (c *ExtractionJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionJob = append(c.inters.ExtractionJob, interceptors...)
}

// Create returns a builder for creating a ExtractionJob entity.
func (c *ExtractionJobClient) Create() *ExtractionJobCreate {
	mutation := newExtractionJobMutation(c.config, OpCreate)
	return &ExtractionJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionJob entities.
func (c *ExtractionJobClient) CreateBulk(builders ...*ExtractionJobCreate) *ExtractionJobCreateBulk {
	return &ExtractionJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionJobClient) MapCreateBulk(slice any, setFunc func(*ExtractionJobCreate, int)) *ExtractionJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionJobCreateBulk{err: fmt.Errorf("calling to ExtractionJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionJob.
func (c *ExtractionJobClient) Update() *ExtractionJobUpdate {
	mutation := newExtractionJobMutation(c.config, OpUpdate)
	return &ExtractionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionJobClient) UpdateOne(_m *ExtractionJob) *ExtractionJobUpdateOne {
	mutation := newExtractionJobMutation(c.config, OpUpdateOne, withExtractionJob(_m))
	return &ExtractionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionJobClient) UpdateOneID(id uuid.UUID) *ExtractionJobUpdateOne {
	mutation := newExtractionJobMutation(c.config, OpUpdateOne, withExtractionJobID(id))
	return &ExtractionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionJob.
func (c *ExtractionJobClient) Delete() *ExtractionJobDelete {
	mutation := newExtractionJobMutation(c.config, OpDelete)
	return &ExtractionJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionJobClient) DeleteOne(_m *ExtractionJob) *ExtractionJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionJobClient) DeleteOneID(id uuid.UUID) *ExtractionJobDeleteOne {
	builder := c.Delete().Where(extractionjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionJobDeleteOne{builder}
}

// Query returns a query builder for ExtractionJob.
func (c *ExtractionJobClient) Query() *ExtractionJobQuery {
	return &ExtractionJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionJob entity by its id.
func (c *ExtractionJobClient) Get(ctx context.Context, id uuid.UUID) (*ExtractionJob, error) {
	return c.Query().Where(extractionjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionJobClient) GetX(ctx context.Context, id uuid.UUID) *ExtractionJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a ExtractionJob.
func (c *ExtractionJobClient) QueryAgent(_m *ExtractionJob) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionjob.Table, extractionjob.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractionjob.AgentTable, extractionjob.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionJobClient) Hooks() []Hook {
	return c.hooks.ExtractionJob
}

// Interceptors returns the client interceptors.
func (c *ExtractionJobClient) Interceptors() []Interceptor {
	return c.inters.ExtractionJob
}

func (c *ExtractionJobClient) mutate(ctx context.Context, m *ExtractionJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionJob mutation op: %q", m.Op())
	}
}

// SchemaDefinitionClient is a client for the SchemaDefinition schema.
type SchemaDefinitionClient struct {
	config
}

// NewSchemaDefinitionClient returns a client for the SchemaDefinition from the given config.
func NewSchemaDefinitionClient(c config) *SchemaDefinitionClient {
	return &SchemaDefinitionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `schemadefinition.Hooks(f(g(h())))`.
func (c *SchemaDefinitionClient) Use(hooks ...Hook) {
	c.hooks.SchemaDefinition = append(c.hooks.SchemaDefinition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `schemadefinition.Intercept(f(g(h())))`.
func (c *SchemaDefinitionClient) Intercept(interceptors ...Interceptor) {
	c.inters.SchemaDefinition = append(c.inters.SchemaDefinition, interceptors...)
}

// Create returns a builder for creating a SchemaDefinition entity.
func (c *SchemaDefinitionClient) Create() *SchemaDefinitionCreate {
	mutation := newSchemaDefinitionMutation(c.config, OpCreate)
	return &SchemaDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SchemaDefinition entities.
func (c *SchemaDefinitionClient) CreateBulk(builders ...*SchemaDefinitionCreate) *SchemaDefinitionCreateBulk {
	return &SchemaDefinitionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SchemaDefinitionClient) MapCreateBulk(slice any, setFunc func(*SchemaDefinitionCreate, int)) *SchemaDefinitionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SchemaDefinitionCreateBulk{err: fmt.Errorf("calling to SchemaDefinitionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SchemaDefinitionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SchemaDefinitionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SchemaDefinition.
func (c *SchemaDefinitionClient) Update() *SchemaDefinitionUpdate {
	mutation := newSchemaDefinitionMutation(c.config, OpUpdate)
	return &SchemaDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SchemaDefinitionClient) UpdateOne(_m *SchemaDefinition) *SchemaDefinitionUpdateOne {
	mutation := newSchemaDefinitionMutation(c.config, OpUpdateOne, withSchemaDefinition(_m))
	return &SchemaDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SchemaDefinitionClient) UpdateOneID(id int) *SchemaDefinitionUpdateOne {
	mutation := newSchemaDefinitionMutation(c.config, OpUpdateOne, withSchemaDefinitionID(id))
	return &SchemaDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SchemaDefinition.
func (c *SchemaDefinitionClient) Delete() *SchemaDefinitionDelete {
	mutation := newSchemaDefinitionMutation(c.config, OpDelete)
	return &SchemaDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SchemaDefinitionClient) DeleteOne(_m *SchemaDefinition) *SchemaDefinitionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SchemaDefinitionClient) DeleteOneID(id int) *SchemaDefinitionDeleteOne {
	builder := c.Delete().Where(schemadefinition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SchemaDefinitionDeleteOne{builder}
}

// Query returns a query builder for SchemaDefinition.
func (c *SchemaDefinitionClient) Query() *SchemaDefinitionQuery {
	return &SchemaDefinitionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSchemaDefinition},
		inters: c.Interceptors(),
	}
}

// Get returns a SchemaDefinition entity by its id.
func (c *SchemaDefinitionClient) Get(ctx context.Context, id int) (*SchemaDefinition, error) {
	return c.Query().Where(schemadefinition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SchemaDefinitionClient) GetX(ctx context.Context, id int) *SchemaDefinition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFields queries the fields edge of a SchemaDefinition.
func (c *SchemaDefinitionClient) QueryFields(_m *SchemaDefinition) *SchemaFieldQuery {
	query := (&SchemaFieldClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(schemadefinition.Table, schemadefinition.FieldID, id),
			sqlgraph.To(schemafield.Table, schemafield.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, schemadefinition.FieldsTable, schemadefinition.FieldsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgents queries the agents edge of a SchemaDefinition.
func (c *SchemaDefinitionClient) QueryAgents(_m *SchemaDefinition) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(schemadefinition.Table, schemadefinition.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, schemadefinition.AgentsTable, schemadefinition.AgentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SchemaDefinitionClient) Hooks() []Hook {
	return c.hooks.SchemaDefinition
}

// Interceptors returns the client interceptors.
func (c *SchemaDefinitionClient) Interceptors() []Interceptor {
	return c.inters.SchemaDefinition
}

func (c *SchemaDefinitionClient) mutate(ctx context.Context, m *SchemaDefinitionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SchemaDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SchemaDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SchemaDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SchemaDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SchemaDefinition mutation op: %q", m.Op())
	}
}

// SchemaFieldClient is a client for the SchemaField schema.
type SchemaFieldClient struct {
	config
}

// NewSchemaFieldClient returns a client for the SchemaField from the given config.
func NewSchemaFieldClient(c config) *SchemaFieldClient {
	return &SchemaFieldClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `schemafield.Hooks(f(g(h())))`.
func (c *SchemaFieldClient) Use(hooks ...Hook) {
	c.hooks.SchemaField = append(c.hooks.SchemaField, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `schemafield.Intercept(f(g(h())))`.
func (c *SchemaFieldClient) Intercept(interceptors ...Interceptor) {
	c.inters.SchemaField = append(c.inters.SchemaField, interceptors...)
}

// Create returns a builder for creating a SchemaField entity.
func (c *SchemaFieldClient) Create() *SchemaFieldCreate {
	mutation := newSchemaFieldMutation(c.config, OpCreate)
	return &SchemaFieldCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SchemaField entities.
func (c *SchemaFieldClient) CreateBulk(builders ...*SchemaFieldCreate) *SchemaFieldCreateBulk {
	return &SchemaFieldCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SchemaFieldClient) MapCreateBulk(slice any, setFunc func(*SchemaFieldCreate, int)) *SchemaFieldCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SchemaFieldCreateBulk{err: fmt.Errorf("calling to SchemaFieldClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SchemaFieldCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SchemaFieldCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SchemaField.
func (c *SchemaFieldClient) Update() *SchemaFieldUpdate {
	mutation := newSchemaFieldMutation(c.config, OpUpdate)
	return &SchemaFieldUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SchemaFieldClient) UpdateOne(_m *SchemaField) *SchemaFieldUpdateOne {
	mutation := newSchemaFieldMutation(c.config, OpUpdateOne, withSchemaField(_m))
	return &SchemaFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SchemaFieldClient) UpdateOneID(id int) *SchemaFieldUpdateOne {
	mutation := newSchemaFieldMutation(c.config, OpUpdateOne, withSchemaFieldID(id))
	return &SchemaFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SchemaField.
func (c *SchemaFieldClient) Delete() *SchemaFieldDelete {
	mutation := newSchemaFieldMutation(c.config, OpDelete)
	return &SchemaFieldDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SchemaFieldClient) DeleteOne(_m *SchemaField) *SchemaFieldDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SchemaFieldClient) DeleteOneID(id int) *SchemaFieldDeleteOne {
	builder := c.Delete().Where(schemafield.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SchemaFieldDeleteOne{builder}
}

// Query returns a query builder for SchemaField.
func (c *SchemaFieldClient) Query() *SchemaFieldQuery {
	return &SchemaFieldQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSchemaField},
		inters: c.Interceptors(),
	}
}

// Get returns a SchemaField entity by its id.
func (c *SchemaFieldClient) Get(ctx context.Context, id int) (*SchemaField, error) {
	return c.Query().Where(schemafield.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SchemaFieldClient) GetX(ctx context.Context, id int) *SchemaField {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDefinition queries the definition edge of a SchemaField.
func (c *SchemaFieldClient) QueryDefinition(_m *SchemaField) *SchemaDefinitionQuery {
	query := (&SchemaDefinitionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(schemafield.Table, schemafield.FieldID, id),
			sqlgraph.To(schemadefinition.Table, schemadefinition.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, schemafield.DefinitionTable, schemafield.DefinitionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryNestedSchema queries the nested_schema edge of a SchemaField.
func (c *SchemaFieldClient) QueryNestedSchema(_m *SchemaField) *SchemaDefinitionQuery {
	query := (&SchemaDefinitionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(schemafield.Table, schemafield.FieldID, id),
			sqlgraph.To(schemadefinition.Table, schemadefinition.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, schemafield.NestedSchemaTable, schemafield.NestedSchemaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SchemaFieldClient) Hooks() []Hook {
	return c.hooks.SchemaField
}

// Interceptors returns the client interceptors.
func (c *SchemaFieldClient) Interceptors() []Interceptor {
	return c.inters.SchemaField
}

func (c *SchemaFieldClient) mutate(ctx context.Context, m *SchemaFieldMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SchemaFieldCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SchemaFieldUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SchemaFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SchemaFieldDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SchemaField mutation op: %q", m.Op())
	}
}

// SiloClient is a client for the Silo schema.
type SiloClient struct {
	config
}

// NewSiloClient returns a client for the Silo from the given config.
func NewSiloClient(c config) *SiloClient {
	return &SiloClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `silo.Hooks(f(g(h())))`.
func (c *SiloClient) Use(hooks ...Hook) {
	c.hooks.Silo = append(c.hooks.Silo, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `silo.Intercept(f(g(h())))`.
func (c *SiloClient) Intercept(interceptors ...Interceptor) {
	c.inters.Silo = append(c.inters.Silo, interceptors...)
}

// Create returns a builder for creating a Silo entity.
func (c *SiloClient) Create() *SiloCreate {
	mutation := newSiloMutation(c.config, OpCreate)
	return &SiloCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Silo entities.
func (c *SiloClient) CreateBulk(builders ...*SiloCreate) *SiloCreateBulk {
	return &SiloCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SiloClient) MapCreateBulk(slice any, setFunc func(*SiloCreate, int)) *SiloCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SiloCreateBulk{err: fmt.Errorf("calling to SiloClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SiloCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SiloCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Silo.
func (c *SiloClient) Update() *SiloUpdate {
	mutation := newSiloMutation(c.config, OpUpdate)
	return &SiloUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SiloClient) UpdateOne(_m *Silo) *SiloUpdateOne {
	mutation := newSiloMutation(c.config, OpUpdateOne, withSilo(_m))
	return &SiloUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SiloClient) UpdateOneID(id int) *SiloUpdateOne {
	mutation := newSiloMutation(c.config, OpUpdateOne, withSiloID(id))
	return &SiloUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Silo.
func (c *SiloClient) Delete() *SiloDelete {
	mutation := newSiloMutation(c.config, OpDelete)
	return &SiloDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SiloClient) DeleteOne(_m *Silo) *SiloDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SiloClient) DeleteOneID(id int) *SiloDeleteOne {
	builder := c.Delete().Where(silo.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SiloDeleteOne{builder}
}

// Query returns a query builder for Silo.
func (c *SiloClient) Query() *SiloQuery {
	return &SiloQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSilo},
		inters: c.Interceptors(),
	}
}

// Get returns a Silo entity by its id.
func (c *SiloClient) Get(ctx context.Context, id int) (*Silo, error) {
	return c.Query().Where(silo.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SiloClient) GetX(ctx context.Context, id int) *Silo {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgents queries the agents edge of a Silo.
func (c *SiloClient) QueryAgents(_m *Silo) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(silo.Table, silo.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, silo.AgentsTable, silo.AgentsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SiloClient) Hooks() []Hook {
	return c.hooks.Silo
}

// Interceptors returns the client interceptors.
func (c *SiloClient) Interceptors() []Interceptor {
	return c.inters.Silo
}

func (c *SiloClient) mutate(ctx context.Context, m *SiloMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SiloCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SiloUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SiloUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SiloDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Silo mutation op: %q", m.Op())
	}
}

// ToolServerClient is a client for the ToolServer schema.
type ToolServerClient struct {
	config
}

// NewToolServerClient returns a client for the ToolServer from the given config.
func NewToolServerClient(c config) *ToolServerClient {
	return &ToolServerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `toolserver.Hooks(f(g(h())))`.
func (c *ToolServerClient) Use(hooks ...Hook) {
	c.hooks.ToolServer = append(c.hooks.ToolServer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `toolserver.Intercept(f(g(h())))`.
func (c *ToolServerClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToolServer = append(c.inters.ToolServer, interceptors...)
}

// Create returns a builder for creating a ToolServer entity.
func (c *ToolServerClient) Create() *ToolServerCreate {
	mutation := newToolServerMutation(c.config, OpCreate)
	return &ToolServerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToolServer entities.
func (c *ToolServerClient) CreateBulk(builders ...*ToolServerCreate) *ToolServerCreateBulk {
	return &ToolServerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolServerClient) MapCreateBulk(slice any, setFunc func(*ToolServerCreate, int)) *ToolServerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolServerCreateBulk{err: fmt.Errorf("calling to ToolServerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolServerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolServerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToolServer.
func (c *ToolServerClient) Update() *ToolServerUpdate {
	mutation := newToolServerMutation(c.config, OpUpdate)
	return &ToolServerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolServerClient) UpdateOne(_m *ToolServer) *ToolServerUpdateOne {
	mutation := newToolServerMutation(c.config, OpUpdateOne, withToolServer(_m))
	return &ToolServerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolServerClient) UpdateOneID(id int) *ToolServerUpdateOne {
	mutation := newToolServerMutation(c.config, OpUpdateOne, withToolServerID(id))
	return &ToolServerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToolServer.
func (c *ToolServerClient) Delete() *ToolServerDelete {
	mutation := newToolServerMutation(c.config, OpDelete)
	return &ToolServerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolServerClient) DeleteOne(_m *ToolServer) *ToolServerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolServerClient) DeleteOneID(id int) *ToolServerDeleteOne {
	builder := c.Delete().Where(toolserver.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolServerDeleteOne{builder}
}

// Query returns a query builder for ToolServer.
func (c *ToolServerClient) Query() *ToolServerQuery {
	return &ToolServerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToolServer},
		inters: c.Interceptors(),
	}
}

// Get returns a ToolServer entity by its id.
func (c *ToolServerClient) Get(ctx context.Context, id int) (*ToolServer, error) {
	return c.Query().Where(toolserver.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolServerClient) GetX(ctx context.Context, id int) *ToolServer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgents queries the agents edge of a ToolServer.
func (c *ToolServerClient) QueryAgents(_m *ToolServer) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(toolserver.Table, toolserver.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, toolserver.AgentsTable, toolserver.AgentsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ToolServerClient) Hooks() []Hook {
	return c.hooks.ToolServer
}

// Interceptors returns the client interceptors.
func (c *ToolServerClient) Interceptors() []Interceptor {
	return c.inters.ToolServer
}

func (c *ToolServerClient) mutate(ctx context.Context, m *ToolServerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolServerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolServerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolServerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolServerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToolServer mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, ExtractionJob, SchemaDefinition, SchemaField, Silo, ToolServer []ent.Hook
	}
	inters struct {
		Agent, ExtractionJob, SchemaDefinition, SchemaField, Silo,
		ToolServer []ent.Interceptor
	}
)

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/parleyhq/parley/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/parleyhq/parley/ent/agentperformance"
	"github.com/parleyhq/parley/ent/discussion"
	"github.com/parleyhq/parley/ent/message"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentPerformance is the client for interacting with the AgentPerformance builders.
	AgentPerformance *AgentPerformanceClient
	// Discussion is the client for interacting with the Discussion builders.
	Discussion *DiscussionClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentPerformance = NewAgentPerformanceClient(c.config)
	c.Discussion = NewDiscussionClient(c.config)
	c.Message = NewMessageClient(c.config)
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
		AgentPerformance: NewAgentPerformanceClient(cfg),
		Discussion:       NewDiscussionClient(cfg),
		Message:          NewMessageClient(cfg),
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
		AgentPerformance: NewAgentPerformanceClient(cfg),
		Discussion:       NewDiscussionClient(cfg),
		Message:          NewMessageClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentPerformance.
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
	c.AgentPerformance.Use(hooks...)
	c.Discussion.Use(hooks...)
	c.Message.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AgentPerformance.Intercept(interceptors...)
	c.Discussion.Intercept(interceptors...)
	c.Message.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentPerformanceMutation:
		return c.AgentPerformance.mutate(ctx, m)
	case *DiscussionMutation:
		return c.Discussion.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentPerformanceClient is a client for the AgentPerformance schema.
type AgentPerformanceClient struct {
	config
}

// NewAgentPerformanceClient returns a client for the AgentPerformance from the given config.
func NewAgentPerformanceClient(c config) *AgentPerformanceClient {
	return &AgentPerformanceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentperformance.Hooks(f(g(h())))`.
func (c *AgentPerformanceClient) Use(hooks ...Hook) {
	c.hooks.AgentPerformance = append(c.hooks.AgentPerformance, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentperformance.Intercept(f(g(h())))`.
func (c *AgentPerformanceClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentPerformance = append(c.inters.AgentPerformance, interceptors...)
}

// Create returns a builder for creating a AgentPerformance entity.
func (c *AgentPerformanceClient) Create() *AgentPerformanceCreate {
	mutation := newAgentPerformanceMutation(c.config, OpCreate)
	return &AgentPerformanceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentPerformance entities.
func (c *AgentPerformanceClient) CreateBulk(builders ...*AgentPerformanceCreate) *AgentPerformanceCreateBulk {
	return &AgentPerformanceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentPerformanceClient) MapCreateBulk(slice any, setFunc func(*AgentPerformanceCreate, int)) *AgentPerformanceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentPerformanceCreateBulk{err: fmt.Errorf("calling to AgentPerformanceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentPerformanceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentPerformanceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentPerformance.
func (c *AgentPerformanceClient) Update() *AgentPerformanceUpdate {
	mutation := newAgentPerformanceMutation(c.config, OpUpdate)
	return &AgentPerformanceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentPerformanceClient) UpdateOne(_m *AgentPerformance) *AgentPerformanceUpdateOne {
	mutation := newAgentPerformanceMutation(c.config, OpUpdateOne, withAgentPerformance(_m))
	return &AgentPerformanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentPerformanceClient) UpdateOneID(id int) *AgentPerformanceUpdateOne {
	mutation := newAgentPerformanceMutation(c.config, OpUpdateOne, withAgentPerformanceID(id))
	return &AgentPerformanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentPerformance.
func (c *AgentPerformanceClient) Delete() *AgentPerformanceDelete {
	mutation := newAgentPerformanceMutation(c.config, OpDelete)
	return &AgentPerformanceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentPerformanceClient) DeleteOne(_m *AgentPerformance) *AgentPerformanceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentPerformanceClient) DeleteOneID(id int) *AgentPerformanceDeleteOne {
	builder := c.Delete().Where(agentperformance.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentPerformanceDeleteOne{builder}
}

// Query returns a query builder for AgentPerformance.
func (c *AgentPerformanceClient) Query() *AgentPerformanceQuery {
	return &AgentPerformanceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentPerformance},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentPerformance entity by its id.
func (c *AgentPerformanceClient) Get(ctx context.Context, id int) (*AgentPerformance, error) {
	return c.Query().Where(agentperformance.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentPerformanceClient) GetX(ctx context.Context, id int) *AgentPerformance {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDiscussion queries the discussion edge of a AgentPerformance.
func (c *AgentPerformanceClient) QueryDiscussion(_m *AgentPerformance) *DiscussionQuery {
	query := (&DiscussionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentperformance.Table, agentperformance.FieldID, id),
			sqlgraph.To(discussion.Table, discussion.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentperformance.DiscussionTable, agentperformance.DiscussionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentPerformanceClient) Hooks() []Hook {
	return c.hooks.AgentPerformance
}

// Interceptors returns the client interceptors.
func (c *AgentPerformanceClient) Interceptors() []Interceptor {
	return c.inters.AgentPerformance
}

func (c *AgentPerformanceClient) mutate(ctx context.Context, m *AgentPerformanceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentPerformanceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentPerformanceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentPerformanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentPerformanceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentPerformance mutation op: %q", m.Op())
	}
}

// DiscussionClient is a client for the Discussion schema.
type DiscussionClient struct {
	config
}

// NewDiscussionClient returns a client for the Discussion from the given config.
func NewDiscussionClient(c config) *DiscussionClient {
	return &DiscussionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `discussion.Hooks(f(g(h())))`.
func (c *DiscussionClient) Use(hooks ...Hook) {
	c.hooks.Discussion = append(c.hooks.Discussion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `discussion.Intercept(f(g(h())))`.
func (c *DiscussionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Discussion = append(c.inters.Discussion, interceptors...)
}

// Create returns a builder for creating a Discussion entity.
func (c *DiscussionClient) Create() *DiscussionCreate {
	mutation := newDiscussionMutation(c.config, OpCreate)
	return &DiscussionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Discussion entities.
func (c *DiscussionClient) CreateBulk(builders ...*DiscussionCreate) *DiscussionCreateBulk {
	return &DiscussionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DiscussionClient) MapCreateBulk(slice any, setFunc func(*DiscussionCreate, int)) *DiscussionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DiscussionCreateBulk{err: fmt.Errorf("calling to DiscussionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DiscussionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DiscussionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Discussion.
func (c *DiscussionClient) Update() *DiscussionUpdate {
	mutation := newDiscussionMutation(c.config, OpUpdate)
	return &DiscussionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DiscussionClient) UpdateOne(_m *Discussion) *DiscussionUpdateOne {
	mutation := newDiscussionMutation(c.config, OpUpdateOne, withDiscussion(_m))
	return &DiscussionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DiscussionClient) UpdateOneID(id string) *DiscussionUpdateOne {
	mutation := newDiscussionMutation(c.config, OpUpdateOne, withDiscussionID(id))
	return &DiscussionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Discussion.
func (c *DiscussionClient) Delete() *DiscussionDelete {
	mutation := newDiscussionMutation(c.config, OpDelete)
	return &DiscussionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DiscussionClient) DeleteOne(_m *Discussion) *DiscussionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DiscussionClient) DeleteOneID(id string) *DiscussionDeleteOne {
	builder := c.Delete().Where(discussion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DiscussionDeleteOne{builder}
}

// Query returns a query builder for Discussion.
func (c *DiscussionClient) Query() *DiscussionQuery {
	return &DiscussionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDiscussion},
		inters: c.Interceptors(),
	}
}

// Get returns a Discussion entity by its id.
func (c *DiscussionClient) Get(ctx context.Context, id string) (*Discussion, error) {
	return c.Query().Where(discussion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DiscussionClient) GetX(ctx context.Context, id string) *Discussion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessages queries the messages edge of a Discussion.
func (c *DiscussionClient) QueryMessages(_m *Discussion) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(discussion.Table, discussion.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, discussion.MessagesTable, discussion.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPerformances queries the performances edge of a Discussion.
func (c *DiscussionClient) QueryPerformances(_m *Discussion) *AgentPerformanceQuery {
	query := (&AgentPerformanceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(discussion.Table, discussion.FieldID, id),
			sqlgraph.To(agentperformance.Table, agentperformance.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, discussion.PerformancesTable, discussion.PerformancesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DiscussionClient) Hooks() []Hook {
	return c.hooks.Discussion
}

// Interceptors returns the client interceptors.
func (c *DiscussionClient) Interceptors() []Interceptor {
	return c.inters.Discussion
}

func (c *DiscussionClient) mutate(ctx context.Context, m *DiscussionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DiscussionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DiscussionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DiscussionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DiscussionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Discussion mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id string) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id string) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id string) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id string) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDiscussion queries the discussion edge of a Message.
func (c *MessageClient) QueryDiscussion(_m *Message) *DiscussionQuery {
	query := (&DiscussionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(discussion.Table, discussion.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, message.DiscussionTable, message.DiscussionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentPerformance, Discussion, Message []ent.Hook
	}
	inters struct {
		AgentPerformance, Discussion, Message []ent.Interceptor
	}
)

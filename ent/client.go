// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/dialectic-dev/dialectic/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/dialectic-dev/dialectic/ent/agentcontribution"
	"github.com/dialectic-dev/dialectic/ent/blackboardrecord"
	"github.com/dialectic-dev/dialectic/ent/blackboardsnapshot"
	"github.com/dialectic-dev/dialectic/ent/cemeteryentry"
	"github.com/dialectic-dev/dialectic/ent/claimsummary"
	"github.com/dialectic-dev/dialectic/ent/claimtransition"
	"github.com/dialectic-dev/dialectic/ent/event"
	"github.com/dialectic-dev/dialectic/ent/frontieridea"
	"github.com/dialectic-dev/dialectic/ent/llmcost"
	"github.com/dialectic-dev/dialectic/ent/trajectorypoint"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentContribution is the client for interacting with the AgentContribution builders.
	AgentContribution *AgentContributionClient
	// BlackboardRecord is the client for interacting with the BlackboardRecord builders.
	BlackboardRecord *BlackboardRecordClient
	// BlackboardSnapshot is the client for interacting with the BlackboardSnapshot builders.
	BlackboardSnapshot *BlackboardSnapshotClient
	// CemeteryEntry is the client for interacting with the CemeteryEntry builders.
	CemeteryEntry *CemeteryEntryClient
	// ClaimSummary is the client for interacting with the ClaimSummary builders.
	ClaimSummary *ClaimSummaryClient
	// ClaimTransition is the client for interacting with the ClaimTransition builders.
	ClaimTransition *ClaimTransitionClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// FrontierIdea is the client for interacting with the FrontierIdea builders.
	FrontierIdea *FrontierIdeaClient
	// LLMCost is the client for interacting with the LLMCost builders.
	LLMCost *LLMCostClient
	// TrajectoryPoint is the client for interacting with the TrajectoryPoint builders.
	TrajectoryPoint *TrajectoryPointClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentContribution = NewAgentContributionClient(c.config)
	c.BlackboardRecord = NewBlackboardRecordClient(c.config)
	c.BlackboardSnapshot = NewBlackboardSnapshotClient(c.config)
	c.CemeteryEntry = NewCemeteryEntryClient(c.config)
	c.ClaimSummary = NewClaimSummaryClient(c.config)
	c.ClaimTransition = NewClaimTransitionClient(c.config)
	c.Event = NewEventClient(c.config)
	c.FrontierIdea = NewFrontierIdeaClient(c.config)
	c.LLMCost = NewLLMCostClient(c.config)
	c.TrajectoryPoint = NewTrajectoryPointClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		AgentContribution:  NewAgentContributionClient(cfg),
		BlackboardRecord:   NewBlackboardRecordClient(cfg),
		BlackboardSnapshot: NewBlackboardSnapshotClient(cfg),
		CemeteryEntry:      NewCemeteryEntryClient(cfg),
		ClaimSummary:       NewClaimSummaryClient(cfg),
		ClaimTransition:    NewClaimTransitionClient(cfg),
		Event:              NewEventClient(cfg),
		FrontierIdea:       NewFrontierIdeaClient(cfg),
		LLMCost:            NewLLMCostClient(cfg),
		TrajectoryPoint:    NewTrajectoryPointClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		AgentContribution:  NewAgentContributionClient(cfg),
		BlackboardRecord:   NewBlackboardRecordClient(cfg),
		BlackboardSnapshot: NewBlackboardSnapshotClient(cfg),
		CemeteryEntry:      NewCemeteryEntryClient(cfg),
		ClaimSummary:       NewClaimSummaryClient(cfg),
		ClaimTransition:    NewClaimTransitionClient(cfg),
		Event:              NewEventClient(cfg),
		FrontierIdea:       NewFrontierIdeaClient(cfg),
		LLMCost:            NewLLMCostClient(cfg),
		TrajectoryPoint:    NewTrajectoryPointClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentContribution.
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
		c.AgentContribution, c.BlackboardRecord, c.BlackboardSnapshot, c.CemeteryEntry,
		c.ClaimSummary, c.ClaimTransition, c.Event, c.FrontierIdea, c.LLMCost,
		c.TrajectoryPoint,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentContribution, c.BlackboardRecord, c.BlackboardSnapshot, c.CemeteryEntry,
		c.ClaimSummary, c.ClaimTransition, c.Event, c.FrontierIdea, c.LLMCost,
		c.TrajectoryPoint,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentContributionMutation:
		return c.AgentContribution.mutate(ctx, m)
	case *BlackboardRecordMutation:
		return c.BlackboardRecord.mutate(ctx, m)
	case *BlackboardSnapshotMutation:
		return c.BlackboardSnapshot.mutate(ctx, m)
	case *CemeteryEntryMutation:
		return c.CemeteryEntry.mutate(ctx, m)
	case *ClaimSummaryMutation:
		return c.ClaimSummary.mutate(ctx, m)
	case *ClaimTransitionMutation:
		return c.ClaimTransition.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *FrontierIdeaMutation:
		return c.FrontierIdea.mutate(ctx, m)
	case *LLMCostMutation:
		return c.LLMCost.mutate(ctx, m)
	case *TrajectoryPointMutation:
		return c.TrajectoryPoint.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentContributionClient is a client for the AgentContribution schema.
type AgentContributionClient struct {
	config
}

// NewAgentContributionClient returns a client for the AgentContribution from the given config.
func NewAgentContributionClient(c config) *AgentContributionClient {
	return &AgentContributionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentcontribution.Hooks(f(g(h())))`.
func (c *AgentContributionClient) Use(hooks ...Hook) {
	c.hooks.AgentContribution = append(c.hooks.AgentContribution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentcontribution.Intercept(f(g(h())))`.
func (c *AgentContributionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentContribution = append(c.inters.AgentContribution, interceptors...)
}

// Create returns a builder for creating a AgentContribution entity.
func (c *AgentContributionClient) Create() *AgentContributionCreate {
	mutation := newAgentContributionMutation(c.config, OpCreate)
	return &AgentContributionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentContribution entities.
func (c *AgentContributionClient) CreateBulk(builders ...*AgentContributionCreate) *AgentContributionCreateBulk {
	return &AgentContributionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentContributionClient) MapCreateBulk(slice any, setFunc func(*AgentContributionCreate, int)) *AgentContributionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentContributionCreateBulk{err: fmt.Errorf("calling to AgentContributionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentContributionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentContributionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentContribution.
func (c *AgentContributionClient) Update() *AgentContributionUpdate {
	mutation := newAgentContributionMutation(c.config, OpUpdate)
	return &AgentContributionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentContributionClient) UpdateOne(_m *AgentContribution) *AgentContributionUpdateOne {
	mutation := newAgentContributionMutation(c.config, OpUpdateOne, withAgentContribution(_m))
	return &AgentContributionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentContributionClient) UpdateOneID(id string) *AgentContributionUpdateOne {
	mutation := newAgentContributionMutation(c.config, OpUpdateOne, withAgentContributionID(id))
	return &AgentContributionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentContribution.
func (c *AgentContributionClient) Delete() *AgentContributionDelete {
	mutation := newAgentContributionMutation(c.config, OpDelete)
	return &AgentContributionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentContributionClient) DeleteOne(_m *AgentContribution) *AgentContributionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentContributionClient) DeleteOneID(id string) *AgentContributionDeleteOne {
	builder := c.Delete().Where(agentcontribution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentContributionDeleteOne{builder}
}

// Query returns a query builder for AgentContribution.
func (c *AgentContributionClient) Query() *AgentContributionQuery {
	return &AgentContributionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentContribution},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentContribution entity by its id.
func (c *AgentContributionClient) Get(ctx context.Context, id string) (*AgentContribution, error) {
	return c.Query().Where(agentcontribution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentContributionClient) GetX(ctx context.Context, id string) *AgentContribution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentContributionClient) Hooks() []Hook {
	return c.hooks.AgentContribution
}

// Interceptors returns the client interceptors.
func (c *AgentContributionClient) Interceptors() []Interceptor {
	return c.inters.AgentContribution
}

func (c *AgentContributionClient) mutate(ctx context.Context, m *AgentContributionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentContributionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentContributionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentContributionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentContributionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentContribution mutation op: %q", m.Op())
	}
}

// BlackboardRecordClient is a client for the BlackboardRecord schema.
type BlackboardRecordClient struct {
	config
}

// NewBlackboardRecordClient returns a client for the BlackboardRecord from the given config.
func NewBlackboardRecordClient(c config) *BlackboardRecordClient {
	return &BlackboardRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blackboardrecord.Hooks(f(g(h())))`.
func (c *BlackboardRecordClient) Use(hooks ...Hook) {
	c.hooks.BlackboardRecord = append(c.hooks.BlackboardRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blackboardrecord.Intercept(f(g(h())))`.
func (c *BlackboardRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.BlackboardRecord = append(c.inters.BlackboardRecord, interceptors...)
}

// Create returns a builder for creating a BlackboardRecord entity.
func (c *BlackboardRecordClient) Create() *BlackboardRecordCreate {
	mutation := newBlackboardRecordMutation(c.config, OpCreate)
	return &BlackboardRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BlackboardRecord entities.
func (c *BlackboardRecordClient) CreateBulk(builders ...*BlackboardRecordCreate) *BlackboardRecordCreateBulk {
	return &BlackboardRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlackboardRecordClient) MapCreateBulk(slice any, setFunc func(*BlackboardRecordCreate, int)) *BlackboardRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlackboardRecordCreateBulk{err: fmt.Errorf("calling to BlackboardRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlackboardRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlackboardRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BlackboardRecord.
func (c *BlackboardRecordClient) Update() *BlackboardRecordUpdate {
	mutation := newBlackboardRecordMutation(c.config, OpUpdate)
	return &BlackboardRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlackboardRecordClient) UpdateOne(_m *BlackboardRecord) *BlackboardRecordUpdateOne {
	mutation := newBlackboardRecordMutation(c.config, OpUpdateOne, withBlackboardRecord(_m))
	return &BlackboardRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlackboardRecordClient) UpdateOneID(id string) *BlackboardRecordUpdateOne {
	mutation := newBlackboardRecordMutation(c.config, OpUpdateOne, withBlackboardRecordID(id))
	return &BlackboardRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BlackboardRecord.
func (c *BlackboardRecordClient) Delete() *BlackboardRecordDelete {
	mutation := newBlackboardRecordMutation(c.config, OpDelete)
	return &BlackboardRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlackboardRecordClient) DeleteOne(_m *BlackboardRecord) *BlackboardRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlackboardRecordClient) DeleteOneID(id string) *BlackboardRecordDeleteOne {
	builder := c.Delete().Where(blackboardrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlackboardRecordDeleteOne{builder}
}

// Query returns a query builder for BlackboardRecord.
func (c *BlackboardRecordClient) Query() *BlackboardRecordQuery {
	return &BlackboardRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlackboardRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a BlackboardRecord entity by its id.
func (c *BlackboardRecordClient) Get(ctx context.Context, id string) (*BlackboardRecord, error) {
	return c.Query().Where(blackboardrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlackboardRecordClient) GetX(ctx context.Context, id string) *BlackboardRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BlackboardRecordClient) Hooks() []Hook {
	return c.hooks.BlackboardRecord
}

// Interceptors returns the client interceptors.
func (c *BlackboardRecordClient) Interceptors() []Interceptor {
	return c.inters.BlackboardRecord
}

func (c *BlackboardRecordClient) mutate(ctx context.Context, m *BlackboardRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlackboardRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlackboardRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlackboardRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlackboardRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BlackboardRecord mutation op: %q", m.Op())
	}
}

// BlackboardSnapshotClient is a client for the BlackboardSnapshot schema.
type BlackboardSnapshotClient struct {
	config
}

// NewBlackboardSnapshotClient returns a client for the BlackboardSnapshot from the given config.
func NewBlackboardSnapshotClient(c config) *BlackboardSnapshotClient {
	return &BlackboardSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blackboardsnapshot.Hooks(f(g(h())))`.
func (c *BlackboardSnapshotClient) Use(hooks ...Hook) {
	c.hooks.BlackboardSnapshot = append(c.hooks.BlackboardSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blackboardsnapshot.Intercept(f(g(h())))`.
func (c *BlackboardSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.BlackboardSnapshot = append(c.inters.BlackboardSnapshot, interceptors...)
}

// Create returns a builder for creating a BlackboardSnapshot entity.
func (c *BlackboardSnapshotClient) Create() *BlackboardSnapshotCreate {
	mutation := newBlackboardSnapshotMutation(c.config, OpCreate)
	return &BlackboardSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BlackboardSnapshot entities.
func (c *BlackboardSnapshotClient) CreateBulk(builders ...*BlackboardSnapshotCreate) *BlackboardSnapshotCreateBulk {
	return &BlackboardSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlackboardSnapshotClient) MapCreateBulk(slice any, setFunc func(*BlackboardSnapshotCreate, int)) *BlackboardSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlackboardSnapshotCreateBulk{err: fmt.Errorf("calling to BlackboardSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlackboardSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlackboardSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BlackboardSnapshot.
func (c *BlackboardSnapshotClient) Update() *BlackboardSnapshotUpdate {
	mutation := newBlackboardSnapshotMutation(c.config, OpUpdate)
	return &BlackboardSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlackboardSnapshotClient) UpdateOne(_m *BlackboardSnapshot) *BlackboardSnapshotUpdateOne {
	mutation := newBlackboardSnapshotMutation(c.config, OpUpdateOne, withBlackboardSnapshot(_m))
	return &BlackboardSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlackboardSnapshotClient) UpdateOneID(id int) *BlackboardSnapshotUpdateOne {
	mutation := newBlackboardSnapshotMutation(c.config, OpUpdateOne, withBlackboardSnapshotID(id))
	return &BlackboardSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BlackboardSnapshot.
func (c *BlackboardSnapshotClient) Delete() *BlackboardSnapshotDelete {
	mutation := newBlackboardSnapshotMutation(c.config, OpDelete)
	return &BlackboardSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlackboardSnapshotClient) DeleteOne(_m *BlackboardSnapshot) *BlackboardSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlackboardSnapshotClient) DeleteOneID(id int) *BlackboardSnapshotDeleteOne {
	builder := c.Delete().Where(blackboardsnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlackboardSnapshotDeleteOne{builder}
}

// Query returns a query builder for BlackboardSnapshot.
func (c *BlackboardSnapshotClient) Query() *BlackboardSnapshotQuery {
	return &BlackboardSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlackboardSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a BlackboardSnapshot entity by its id.
func (c *BlackboardSnapshotClient) Get(ctx context.Context, id int) (*BlackboardSnapshot, error) {
	return c.Query().Where(blackboardsnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlackboardSnapshotClient) GetX(ctx context.Context, id int) *BlackboardSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BlackboardSnapshotClient) Hooks() []Hook {
	return c.hooks.BlackboardSnapshot
}

// Interceptors returns the client interceptors.
func (c *BlackboardSnapshotClient) Interceptors() []Interceptor {
	return c.inters.BlackboardSnapshot
}

func (c *BlackboardSnapshotClient) mutate(ctx context.Context, m *BlackboardSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlackboardSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlackboardSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlackboardSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlackboardSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BlackboardSnapshot mutation op: %q", m.Op())
	}
}

// CemeteryEntryClient is a client for the CemeteryEntry schema.
type CemeteryEntryClient struct {
	config
}

// NewCemeteryEntryClient returns a client for the CemeteryEntry from the given config.
func NewCemeteryEntryClient(c config) *CemeteryEntryClient {
	return &CemeteryEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cemeteryentry.Hooks(f(g(h())))`.
func (c *CemeteryEntryClient) Use(hooks ...Hook) {
	c.hooks.CemeteryEntry = append(c.hooks.CemeteryEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cemeteryentry.Intercept(f(g(h())))`.
func (c *CemeteryEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.CemeteryEntry = append(c.inters.CemeteryEntry, interceptors...)
}

// Create returns a builder for creating a CemeteryEntry entity.
func (c *CemeteryEntryClient) Create() *CemeteryEntryCreate {
	mutation := newCemeteryEntryMutation(c.config, OpCreate)
	return &CemeteryEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CemeteryEntry entities.
func (c *CemeteryEntryClient) CreateBulk(builders ...*CemeteryEntryCreate) *CemeteryEntryCreateBulk {
	return &CemeteryEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CemeteryEntryClient) MapCreateBulk(slice any, setFunc func(*CemeteryEntryCreate, int)) *CemeteryEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CemeteryEntryCreateBulk{err: fmt.Errorf("calling to CemeteryEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CemeteryEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CemeteryEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CemeteryEntry.
func (c *CemeteryEntryClient) Update() *CemeteryEntryUpdate {
	mutation := newCemeteryEntryMutation(c.config, OpUpdate)
	return &CemeteryEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CemeteryEntryClient) UpdateOne(_m *CemeteryEntry) *CemeteryEntryUpdateOne {
	mutation := newCemeteryEntryMutation(c.config, OpUpdateOne, withCemeteryEntry(_m))
	return &CemeteryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CemeteryEntryClient) UpdateOneID(id int) *CemeteryEntryUpdateOne {
	mutation := newCemeteryEntryMutation(c.config, OpUpdateOne, withCemeteryEntryID(id))
	return &CemeteryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CemeteryEntry.
func (c *CemeteryEntryClient) Delete() *CemeteryEntryDelete {
	mutation := newCemeteryEntryMutation(c.config, OpDelete)
	return &CemeteryEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CemeteryEntryClient) DeleteOne(_m *CemeteryEntry) *CemeteryEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CemeteryEntryClient) DeleteOneID(id int) *CemeteryEntryDeleteOne {
	builder := c.Delete().Where(cemeteryentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CemeteryEntryDeleteOne{builder}
}

// Query returns a query builder for CemeteryEntry.
func (c *CemeteryEntryClient) Query() *CemeteryEntryQuery {
	return &CemeteryEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCemeteryEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a CemeteryEntry entity by its id.
func (c *CemeteryEntryClient) Get(ctx context.Context, id int) (*CemeteryEntry, error) {
	return c.Query().Where(cemeteryentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CemeteryEntryClient) GetX(ctx context.Context, id int) *CemeteryEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CemeteryEntryClient) Hooks() []Hook {
	return c.hooks.CemeteryEntry
}

// Interceptors returns the client interceptors.
func (c *CemeteryEntryClient) Interceptors() []Interceptor {
	return c.inters.CemeteryEntry
}

func (c *CemeteryEntryClient) mutate(ctx context.Context, m *CemeteryEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CemeteryEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CemeteryEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CemeteryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CemeteryEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CemeteryEntry mutation op: %q", m.Op())
	}
}

// ClaimSummaryClient is a client for the ClaimSummary schema.
type ClaimSummaryClient struct {
	config
}

// NewClaimSummaryClient returns a client for the ClaimSummary from the given config.
func NewClaimSummaryClient(c config) *ClaimSummaryClient {
	return &ClaimSummaryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `claimsummary.Hooks(f(g(h())))`.
func (c *ClaimSummaryClient) Use(hooks ...Hook) {
	c.hooks.ClaimSummary = append(c.hooks.ClaimSummary, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `claimsummary.Intercept(f(g(h())))`.
func (c *ClaimSummaryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClaimSummary = append(c.inters.ClaimSummary, interceptors...)
}

// Create returns a builder for creating a ClaimSummary entity.
func (c *ClaimSummaryClient) Create() *ClaimSummaryCreate {
	mutation := newClaimSummaryMutation(c.config, OpCreate)
	return &ClaimSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClaimSummary entities.
func (c *ClaimSummaryClient) CreateBulk(builders ...*ClaimSummaryCreate) *ClaimSummaryCreateBulk {
	return &ClaimSummaryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClaimSummaryClient) MapCreateBulk(slice any, setFunc func(*ClaimSummaryCreate, int)) *ClaimSummaryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClaimSummaryCreateBulk{err: fmt.Errorf("calling to ClaimSummaryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClaimSummaryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClaimSummaryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClaimSummary.
func (c *ClaimSummaryClient) Update() *ClaimSummaryUpdate {
	mutation := newClaimSummaryMutation(c.config, OpUpdate)
	return &ClaimSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClaimSummaryClient) UpdateOne(_m *ClaimSummary) *ClaimSummaryUpdateOne {
	mutation := newClaimSummaryMutation(c.config, OpUpdateOne, withClaimSummary(_m))
	return &ClaimSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClaimSummaryClient) UpdateOneID(id int) *ClaimSummaryUpdateOne {
	mutation := newClaimSummaryMutation(c.config, OpUpdateOne, withClaimSummaryID(id))
	return &ClaimSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClaimSummary.
func (c *ClaimSummaryClient) Delete() *ClaimSummaryDelete {
	mutation := newClaimSummaryMutation(c.config, OpDelete)
	return &ClaimSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClaimSummaryClient) DeleteOne(_m *ClaimSummary) *ClaimSummaryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClaimSummaryClient) DeleteOneID(id int) *ClaimSummaryDeleteOne {
	builder := c.Delete().Where(claimsummary.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClaimSummaryDeleteOne{builder}
}

// Query returns a query builder for ClaimSummary.
func (c *ClaimSummaryClient) Query() *ClaimSummaryQuery {
	return &ClaimSummaryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClaimSummary},
		inters: c.Interceptors(),
	}
}

// Get returns a ClaimSummary entity by its id.
func (c *ClaimSummaryClient) Get(ctx context.Context, id int) (*ClaimSummary, error) {
	return c.Query().Where(claimsummary.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClaimSummaryClient) GetX(ctx context.Context, id int) *ClaimSummary {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClaimSummaryClient) Hooks() []Hook {
	return c.hooks.ClaimSummary
}

// Interceptors returns the client interceptors.
func (c *ClaimSummaryClient) Interceptors() []Interceptor {
	return c.inters.ClaimSummary
}

func (c *ClaimSummaryClient) mutate(ctx context.Context, m *ClaimSummaryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClaimSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClaimSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClaimSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClaimSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ClaimSummary mutation op: %q", m.Op())
	}
}

// ClaimTransitionClient is a client for the ClaimTransition schema.
type ClaimTransitionClient struct {
	config
}

// NewClaimTransitionClient returns a client for the ClaimTransition from the given config.
func NewClaimTransitionClient(c config) *ClaimTransitionClient {
	return &ClaimTransitionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `claimtransition.Hooks(f(g(h())))`.
func (c *ClaimTransitionClient) Use(hooks ...Hook) {
	c.hooks.ClaimTransition = append(c.hooks.ClaimTransition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `claimtransition.Intercept(f(g(h())))`.
func (c *ClaimTransitionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClaimTransition = append(c.inters.ClaimTransition, interceptors...)
}

// Create returns a builder for creating a ClaimTransition entity.
func (c *ClaimTransitionClient) Create() *ClaimTransitionCreate {
	mutation := newClaimTransitionMutation(c.config, OpCreate)
	return &ClaimTransitionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClaimTransition entities.
func (c *ClaimTransitionClient) CreateBulk(builders ...*ClaimTransitionCreate) *ClaimTransitionCreateBulk {
	return &ClaimTransitionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClaimTransitionClient) MapCreateBulk(slice any, setFunc func(*ClaimTransitionCreate, int)) *ClaimTransitionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClaimTransitionCreateBulk{err: fmt.Errorf("calling to ClaimTransitionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClaimTransitionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClaimTransitionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClaimTransition.
func (c *ClaimTransitionClient) Update() *ClaimTransitionUpdate {
	mutation := newClaimTransitionMutation(c.config, OpUpdate)
	return &ClaimTransitionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClaimTransitionClient) UpdateOne(_m *ClaimTransition) *ClaimTransitionUpdateOne {
	mutation := newClaimTransitionMutation(c.config, OpUpdateOne, withClaimTransition(_m))
	return &ClaimTransitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClaimTransitionClient) UpdateOneID(id int) *ClaimTransitionUpdateOne {
	mutation := newClaimTransitionMutation(c.config, OpUpdateOne, withClaimTransitionID(id))
	return &ClaimTransitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClaimTransition.
func (c *ClaimTransitionClient) Delete() *ClaimTransitionDelete {
	mutation := newClaimTransitionMutation(c.config, OpDelete)
	return &ClaimTransitionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClaimTransitionClient) DeleteOne(_m *ClaimTransition) *ClaimTransitionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClaimTransitionClient) DeleteOneID(id int) *ClaimTransitionDeleteOne {
	builder := c.Delete().Where(claimtransition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClaimTransitionDeleteOne{builder}
}

// Query returns a query builder for ClaimTransition.
func (c *ClaimTransitionClient) Query() *ClaimTransitionQuery {
	return &ClaimTransitionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClaimTransition},
		inters: c.Interceptors(),
	}
}

// Get returns a ClaimTransition entity by its id.
func (c *ClaimTransitionClient) Get(ctx context.Context, id int) (*ClaimTransition, error) {
	return c.Query().Where(claimtransition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClaimTransitionClient) GetX(ctx context.Context, id int) *ClaimTransition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClaimTransitionClient) Hooks() []Hook {
	return c.hooks.ClaimTransition
}

// Interceptors returns the client interceptors.
func (c *ClaimTransitionClient) Interceptors() []Interceptor {
	return c.inters.ClaimTransition
}

func (c *ClaimTransitionClient) mutate(ctx context.Context, m *ClaimTransitionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClaimTransitionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClaimTransitionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClaimTransitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClaimTransitionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ClaimTransition mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// FrontierIdeaClient is a client for the FrontierIdea schema.
type FrontierIdeaClient struct {
	config
}

// NewFrontierIdeaClient returns a client for the FrontierIdea from the given config.
func NewFrontierIdeaClient(c config) *FrontierIdeaClient {
	return &FrontierIdeaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `frontieridea.Hooks(f(g(h())))`.
func (c *FrontierIdeaClient) Use(hooks ...Hook) {
	c.hooks.FrontierIdea = append(c.hooks.FrontierIdea, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `frontieridea.Intercept(f(g(h())))`.
func (c *FrontierIdeaClient) Intercept(interceptors ...Interceptor) {
	c.inters.FrontierIdea = append(c.inters.FrontierIdea, interceptors...)
}

// Create returns a builder for creating a FrontierIdea entity.
func (c *FrontierIdeaClient) Create() *FrontierIdeaCreate {
	mutation := newFrontierIdeaMutation(c.config, OpCreate)
	return &FrontierIdeaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FrontierIdea entities.
func (c *FrontierIdeaClient) CreateBulk(builders ...*FrontierIdeaCreate) *FrontierIdeaCreateBulk {
	return &FrontierIdeaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FrontierIdeaClient) MapCreateBulk(slice any, setFunc func(*FrontierIdeaCreate, int)) *FrontierIdeaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FrontierIdeaCreateBulk{err: fmt.Errorf("calling to FrontierIdeaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FrontierIdeaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FrontierIdeaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FrontierIdea.
func (c *FrontierIdeaClient) Update() *FrontierIdeaUpdate {
	mutation := newFrontierIdeaMutation(c.config, OpUpdate)
	return &FrontierIdeaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FrontierIdeaClient) UpdateOne(_m *FrontierIdea) *FrontierIdeaUpdateOne {
	mutation := newFrontierIdeaMutation(c.config, OpUpdateOne, withFrontierIdea(_m))
	return &FrontierIdeaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FrontierIdeaClient) UpdateOneID(id int) *FrontierIdeaUpdateOne {
	mutation := newFrontierIdeaMutation(c.config, OpUpdateOne, withFrontierIdeaID(id))
	return &FrontierIdeaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FrontierIdea.
func (c *FrontierIdeaClient) Delete() *FrontierIdeaDelete {
	mutation := newFrontierIdeaMutation(c.config, OpDelete)
	return &FrontierIdeaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FrontierIdeaClient) DeleteOne(_m *FrontierIdea) *FrontierIdeaDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FrontierIdeaClient) DeleteOneID(id int) *FrontierIdeaDeleteOne {
	builder := c.Delete().Where(frontieridea.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FrontierIdeaDeleteOne{builder}
}

// Query returns a query builder for FrontierIdea.
func (c *FrontierIdeaClient) Query() *FrontierIdeaQuery {
	return &FrontierIdeaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFrontierIdea},
		inters: c.Interceptors(),
	}
}

// Get returns a FrontierIdea entity by its id.
func (c *FrontierIdeaClient) Get(ctx context.Context, id int) (*FrontierIdea, error) {
	return c.Query().Where(frontieridea.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FrontierIdeaClient) GetX(ctx context.Context, id int) *FrontierIdea {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FrontierIdeaClient) Hooks() []Hook {
	return c.hooks.FrontierIdea
}

// Interceptors returns the client interceptors.
func (c *FrontierIdeaClient) Interceptors() []Interceptor {
	return c.inters.FrontierIdea
}

func (c *FrontierIdeaClient) mutate(ctx context.Context, m *FrontierIdeaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FrontierIdeaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FrontierIdeaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FrontierIdeaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FrontierIdeaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FrontierIdea mutation op: %q", m.Op())
	}
}

// LLMCostClient is a client for the LLMCost schema.
type LLMCostClient struct {
	config
}

// NewLLMCostClient returns a client for the LLMCost from the given config.
func NewLLMCostClient(c config) *LLMCostClient {
	return &LLMCostClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmcost.Hooks(f(g(h())))`.
func (c *LLMCostClient) Use(hooks ...Hook) {
	c.hooks.LLMCost = append(c.hooks.LLMCost, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmcost.Intercept(f(g(h())))`.
func (c *LLMCostClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMCost = append(c.inters.LLMCost, interceptors...)
}

// Create returns a builder for creating a LLMCost entity.
func (c *LLMCostClient) Create() *LLMCostCreate {
	mutation := newLLMCostMutation(c.config, OpCreate)
	return &LLMCostCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMCost entities.
func (c *LLMCostClient) CreateBulk(builders ...*LLMCostCreate) *LLMCostCreateBulk {
	return &LLMCostCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMCostClient) MapCreateBulk(slice any, setFunc func(*LLMCostCreate, int)) *LLMCostCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMCostCreateBulk{err: fmt.Errorf("calling to LLMCostClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMCostCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMCostCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMCost.
func (c *LLMCostClient) Update() *LLMCostUpdate {
	mutation := newLLMCostMutation(c.config, OpUpdate)
	return &LLMCostUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMCostClient) UpdateOne(_m *LLMCost) *LLMCostUpdateOne {
	mutation := newLLMCostMutation(c.config, OpUpdateOne, withLLMCost(_m))
	return &LLMCostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMCostClient) UpdateOneID(id int) *LLMCostUpdateOne {
	mutation := newLLMCostMutation(c.config, OpUpdateOne, withLLMCostID(id))
	return &LLMCostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMCost.
func (c *LLMCostClient) Delete() *LLMCostDelete {
	mutation := newLLMCostMutation(c.config, OpDelete)
	return &LLMCostDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMCostClient) DeleteOne(_m *LLMCost) *LLMCostDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMCostClient) DeleteOneID(id int) *LLMCostDeleteOne {
	builder := c.Delete().Where(llmcost.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMCostDeleteOne{builder}
}

// Query returns a query builder for LLMCost.
func (c *LLMCostClient) Query() *LLMCostQuery {
	return &LLMCostQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMCost},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMCost entity by its id.
func (c *LLMCostClient) Get(ctx context.Context, id int) (*LLMCost, error) {
	return c.Query().Where(llmcost.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMCostClient) GetX(ctx context.Context, id int) *LLMCost {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMCostClient) Hooks() []Hook {
	return c.hooks.LLMCost
}

// Interceptors returns the client interceptors.
func (c *LLMCostClient) Interceptors() []Interceptor {
	return c.inters.LLMCost
}

func (c *LLMCostClient) mutate(ctx context.Context, m *LLMCostMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMCostCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMCostUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMCostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMCostDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMCost mutation op: %q", m.Op())
	}
}

// TrajectoryPointClient is a client for the TrajectoryPoint schema.
type TrajectoryPointClient struct {
	config
}

// NewTrajectoryPointClient returns a client for the TrajectoryPoint from the given config.
func NewTrajectoryPointClient(c config) *TrajectoryPointClient {
	return &TrajectoryPointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trajectorypoint.Hooks(f(g(h())))`.
func (c *TrajectoryPointClient) Use(hooks ...Hook) {
	c.hooks.TrajectoryPoint = append(c.hooks.TrajectoryPoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trajectorypoint.Intercept(f(g(h())))`.
func (c *TrajectoryPointClient) Intercept(interceptors ...Interceptor) {
	c.inters.TrajectoryPoint = append(c.inters.TrajectoryPoint, interceptors...)
}

// Create returns a builder for creating a TrajectoryPoint entity.
func (c *TrajectoryPointClient) Create() *TrajectoryPointCreate {
	mutation := newTrajectoryPointMutation(c.config, OpCreate)
	return &TrajectoryPointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TrajectoryPoint entities.
func (c *TrajectoryPointClient) CreateBulk(builders ...*TrajectoryPointCreate) *TrajectoryPointCreateBulk {
	return &TrajectoryPointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrajectoryPointClient) MapCreateBulk(slice any, setFunc func(*TrajectoryPointCreate, int)) *TrajectoryPointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrajectoryPointCreateBulk{err: fmt.Errorf("calling to TrajectoryPointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrajectoryPointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrajectoryPointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TrajectoryPoint.
func (c *TrajectoryPointClient) Update() *TrajectoryPointUpdate {
	mutation := newTrajectoryPointMutation(c.config, OpUpdate)
	return &TrajectoryPointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrajectoryPointClient) UpdateOne(_m *TrajectoryPoint) *TrajectoryPointUpdateOne {
	mutation := newTrajectoryPointMutation(c.config, OpUpdateOne, withTrajectoryPoint(_m))
	return &TrajectoryPointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrajectoryPointClient) UpdateOneID(id int) *TrajectoryPointUpdateOne {
	mutation := newTrajectoryPointMutation(c.config, OpUpdateOne, withTrajectoryPointID(id))
	return &TrajectoryPointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TrajectoryPoint.
func (c *TrajectoryPointClient) Delete() *TrajectoryPointDelete {
	mutation := newTrajectoryPointMutation(c.config, OpDelete)
	return &TrajectoryPointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrajectoryPointClient) DeleteOne(_m *TrajectoryPoint) *TrajectoryPointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrajectoryPointClient) DeleteOneID(id int) *TrajectoryPointDeleteOne {
	builder := c.Delete().Where(trajectorypoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrajectoryPointDeleteOne{builder}
}

// Query returns a query builder for TrajectoryPoint.
func (c *TrajectoryPointClient) Query() *TrajectoryPointQuery {
	return &TrajectoryPointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrajectoryPoint},
		inters: c.Interceptors(),
	}
}

// Get returns a TrajectoryPoint entity by its id.
func (c *TrajectoryPointClient) Get(ctx context.Context, id int) (*TrajectoryPoint, error) {
	return c.Query().Where(trajectorypoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrajectoryPointClient) GetX(ctx context.Context, id int) *TrajectoryPoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TrajectoryPointClient) Hooks() []Hook {
	return c.hooks.TrajectoryPoint
}

// Interceptors returns the client interceptors.
func (c *TrajectoryPointClient) Interceptors() []Interceptor {
	return c.inters.TrajectoryPoint
}

func (c *TrajectoryPointClient) mutate(ctx context.Context, m *TrajectoryPointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrajectoryPointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrajectoryPointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrajectoryPointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrajectoryPointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TrajectoryPoint mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentContribution, BlackboardRecord, BlackboardSnapshot, CemeteryEntry,
		ClaimSummary, ClaimTransition, Event, FrontierIdea, LLMCost,
		TrajectoryPoint []ent.Hook
	}
	inters struct {
		AgentContribution, BlackboardRecord, BlackboardSnapshot, CemeteryEntry,
		ClaimSummary, ClaimTransition, Event, FrontierIdea, LLMCost,
		TrajectoryPoint []ent.Interceptor
	}
)

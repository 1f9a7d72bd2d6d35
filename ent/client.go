// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/quarryhq/quarry/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/quarryhq/quarry/ent/agentexecution"
	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/completionblock"
	"github.com/quarryhq/quarry/ent/contextsnapshot"
	"github.com/quarryhq/quarry/ent/event"
	"github.com/quarryhq/quarry/ent/executionscore"
	"github.com/quarryhq/quarry/ent/instruction"
	"github.com/quarryhq/quarry/ent/plandecision"
	"github.com/quarryhq/quarry/ent/report"
	"github.com/quarryhq/quarry/ent/tableusage"
	"github.com/quarryhq/quarry/ent/toolexecution"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentExecution is the client for interacting with the AgentExecution builders.
	AgentExecution *AgentExecutionClient
	// Completion is the client for interacting with the Completion builders.
	Completion *CompletionClient
	// CompletionBlock is the client for interacting with the CompletionBlock builders.
	CompletionBlock *CompletionBlockClient
	// ContextSnapshot is the client for interacting with the ContextSnapshot builders.
	ContextSnapshot *ContextSnapshotClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// ExecutionScore is the client for interacting with the ExecutionScore builders.
	ExecutionScore *ExecutionScoreClient
	// Instruction is the client for interacting with the Instruction builders.
	Instruction *InstructionClient
	// PlanDecision is the client for interacting with the PlanDecision builders.
	PlanDecision *PlanDecisionClient
	// Report is the client for interacting with the Report builders.
	Report *ReportClient
	// TableUsage is the client for interacting with the TableUsage builders.
	TableUsage *TableUsageClient
	// ToolExecution is the client for interacting with the ToolExecution builders.
	ToolExecution *ToolExecutionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentExecution = NewAgentExecutionClient(c.config)
	c.Completion = NewCompletionClient(c.config)
	c.CompletionBlock = NewCompletionBlockClient(c.config)
	c.ContextSnapshot = NewContextSnapshotClient(c.config)
	c.Event = NewEventClient(c.config)
	c.ExecutionScore = NewExecutionScoreClient(c.config)
	c.Instruction = NewInstructionClient(c.config)
	c.PlanDecision = NewPlanDecisionClient(c.config)
	c.Report = NewReportClient(c.config)
	c.TableUsage = NewTableUsageClient(c.config)
	c.ToolExecution = NewToolExecutionClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		AgentExecution:  NewAgentExecutionClient(cfg),
		Completion:      NewCompletionClient(cfg),
		CompletionBlock: NewCompletionBlockClient(cfg),
		ContextSnapshot: NewContextSnapshotClient(cfg),
		Event:           NewEventClient(cfg),
		ExecutionScore:  NewExecutionScoreClient(cfg),
		Instruction:     NewInstructionClient(cfg),
		PlanDecision:    NewPlanDecisionClient(cfg),
		Report:          NewReportClient(cfg),
		TableUsage:      NewTableUsageClient(cfg),
		ToolExecution:   NewToolExecutionClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		AgentExecution:  NewAgentExecutionClient(cfg),
		Completion:      NewCompletionClient(cfg),
		CompletionBlock: NewCompletionBlockClient(cfg),
		ContextSnapshot: NewContextSnapshotClient(cfg),
		Event:           NewEventClient(cfg),
		ExecutionScore:  NewExecutionScoreClient(cfg),
		Instruction:     NewInstructionClient(cfg),
		PlanDecision:    NewPlanDecisionClient(cfg),
		Report:          NewReportClient(cfg),
		TableUsage:      NewTableUsageClient(cfg),
		ToolExecution:   NewToolExecutionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentExecution.
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
		c.AgentExecution, c.Completion, c.CompletionBlock, c.ContextSnapshot, c.Event,
		c.ExecutionScore, c.Instruction, c.PlanDecision, c.Report, c.TableUsage,
		c.ToolExecution,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentExecution, c.Completion, c.CompletionBlock, c.ContextSnapshot, c.Event,
		c.ExecutionScore, c.Instruction, c.PlanDecision, c.Report, c.TableUsage,
		c.ToolExecution,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentExecutionMutation:
		return c.AgentExecution.mutate(ctx, m)
	case *CompletionMutation:
		return c.Completion.mutate(ctx, m)
	case *CompletionBlockMutation:
		return c.CompletionBlock.mutate(ctx, m)
	case *ContextSnapshotMutation:
		return c.ContextSnapshot.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *ExecutionScoreMutation:
		return c.ExecutionScore.mutate(ctx, m)
	case *InstructionMutation:
		return c.Instruction.mutate(ctx, m)
	case *PlanDecisionMutation:
		return c.PlanDecision.mutate(ctx, m)
	case *ReportMutation:
		return c.Report.mutate(ctx, m)
	case *TableUsageMutation:
		return c.TableUsage.mutate(ctx, m)
	case *ToolExecutionMutation:
		return c.ToolExecution.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentExecutionClient is a client for the AgentExecution schema.
type AgentExecutionClient struct {
	config
}

// NewAgentExecutionClient returns a client for the AgentExecution from the given config.
func NewAgentExecutionClient(c config) *AgentExecutionClient {
	return &AgentExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentexecution.Hooks(f(g(h())))`.
func (c *AgentExecutionClient) Use(hooks ...Hook) {
	c.hooks.AgentExecution = append(c.hooks.AgentExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentexecution.Intercept(f(g(h())))`.
func (c *AgentExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentExecution = append(c.inters.AgentExecution, interceptors...)
}

// Create returns a builder for creating a AgentExecution entity.
func (c *AgentExecutionClient) Create() *AgentExecutionCreate {
	mutation := newAgentExecutionMutation(c.config, OpCreate)
	return &AgentExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentExecution entities.
func (c *AgentExecutionClient) CreateBulk(builders ...*AgentExecutionCreate) *AgentExecutionCreateBulk {
	return &AgentExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentExecutionClient) MapCreateBulk(slice any, setFunc func(*AgentExecutionCreate, int)) *AgentExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentExecutionCreateBulk{err: fmt.Errorf("calling to AgentExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentExecution.
func (c *AgentExecutionClient) Update() *AgentExecutionUpdate {
	mutation := newAgentExecutionMutation(c.config, OpUpdate)
	return &AgentExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentExecutionClient) UpdateOne(_m *AgentExecution) *AgentExecutionUpdateOne {
	mutation := newAgentExecutionMutation(c.config, OpUpdateOne, withAgentExecution(_m))
	return &AgentExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentExecutionClient) UpdateOneID(id string) *AgentExecutionUpdateOne {
	mutation := newAgentExecutionMutation(c.config, OpUpdateOne, withAgentExecutionID(id))
	return &AgentExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentExecution.
func (c *AgentExecutionClient) Delete() *AgentExecutionDelete {
	mutation := newAgentExecutionMutation(c.config, OpDelete)
	return &AgentExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentExecutionClient) DeleteOne(_m *AgentExecution) *AgentExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentExecutionClient) DeleteOneID(id string) *AgentExecutionDeleteOne {
	builder := c.Delete().Where(agentexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentExecutionDeleteOne{builder}
}

// Query returns a query builder for AgentExecution.
func (c *AgentExecutionClient) Query() *AgentExecutionQuery {
	return &AgentExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentExecution entity by its id.
func (c *AgentExecutionClient) Get(ctx context.Context, id string) (*AgentExecution, error) {
	return c.Query().Where(agentexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentExecutionClient) GetX(ctx context.Context, id string) *AgentExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompletion queries the completion edge of a AgentExecution.
func (c *AgentExecutionClient) QueryCompletion(_m *AgentExecution) *CompletionQuery {
	query := (&CompletionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, id),
			sqlgraph.To(completion.Table, completion.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentexecution.CompletionTable, agentexecution.CompletionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReport queries the report edge of a AgentExecution.
func (c *AgentExecutionClient) QueryReport(_m *AgentExecution) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentexecution.ReportTable, agentexecution.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPlanDecisions queries the plan_decisions edge of a AgentExecution.
func (c *AgentExecutionClient) QueryPlanDecisions(_m *AgentExecution) *PlanDecisionQuery {
	query := (&PlanDecisionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, id),
			sqlgraph.To(plandecision.Table, plandecision.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentexecution.PlanDecisionsTable, agentexecution.PlanDecisionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryToolExecutions queries the tool_executions edge of a AgentExecution.
func (c *AgentExecutionClient) QueryToolExecutions(_m *AgentExecution) *ToolExecutionQuery {
	query := (&ToolExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, id),
			sqlgraph.To(toolexecution.Table, toolexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentexecution.ToolExecutionsTable, agentexecution.ToolExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBlocks queries the blocks edge of a AgentExecution.
func (c *AgentExecutionClient) QueryBlocks(_m *AgentExecution) *CompletionBlockQuery {
	query := (&CompletionBlockClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, id),
			sqlgraph.To(completionblock.Table, completionblock.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentexecution.BlocksTable, agentexecution.BlocksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySnapshots queries the snapshots edge of a AgentExecution.
func (c *AgentExecutionClient) QuerySnapshots(_m *AgentExecution) *ContextSnapshotQuery {
	query := (&ContextSnapshotClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, id),
			sqlgraph.To(contextsnapshot.Table, contextsnapshot.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentexecution.SnapshotsTable, agentexecution.SnapshotsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryScores queries the scores edge of a AgentExecution.
func (c *AgentExecutionClient) QueryScores(_m *AgentExecution) *ExecutionScoreQuery {
	query := (&ExecutionScoreClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, id),
			sqlgraph.To(executionscore.Table, executionscore.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentexecution.ScoresTable, agentexecution.ScoresColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentExecutionClient) Hooks() []Hook {
	return c.hooks.AgentExecution
}

// Interceptors returns the client interceptors.
func (c *AgentExecutionClient) Interceptors() []Interceptor {
	return c.inters.AgentExecution
}

func (c *AgentExecutionClient) mutate(ctx context.Context, m *AgentExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentExecution mutation op: %q", m.Op())
	}
}

// CompletionClient is a client for the Completion schema.
type CompletionClient struct {
	config
}

// NewCompletionClient returns a client for the Completion from the given config.
func NewCompletionClient(c config) *CompletionClient {
	return &CompletionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `completion.Hooks(f(g(h())))`.
func (c *CompletionClient) Use(hooks ...Hook) {
	c.hooks.Completion = append(c.hooks.Completion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `completion.Intercept(f(g(h())))`.
func (c *CompletionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Completion = append(c.inters.Completion, interceptors...)
}

// Create returns a builder for creating a Completion entity.
func (c *CompletionClient) Create() *CompletionCreate {
	mutation := newCompletionMutation(c.config, OpCreate)
	return &CompletionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Completion entities.
func (c *CompletionClient) CreateBulk(builders ...*CompletionCreate) *CompletionCreateBulk {
	return &CompletionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompletionClient) MapCreateBulk(slice any, setFunc func(*CompletionCreate, int)) *CompletionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompletionCreateBulk{err: fmt.Errorf("calling to CompletionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompletionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompletionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Completion.
func (c *CompletionClient) Update() *CompletionUpdate {
	mutation := newCompletionMutation(c.config, OpUpdate)
	return &CompletionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompletionClient) UpdateOne(_m *Completion) *CompletionUpdateOne {
	mutation := newCompletionMutation(c.config, OpUpdateOne, withCompletion(_m))
	return &CompletionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompletionClient) UpdateOneID(id string) *CompletionUpdateOne {
	mutation := newCompletionMutation(c.config, OpUpdateOne, withCompletionID(id))
	return &CompletionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Completion.
func (c *CompletionClient) Delete() *CompletionDelete {
	mutation := newCompletionMutation(c.config, OpDelete)
	return &CompletionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompletionClient) DeleteOne(_m *Completion) *CompletionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompletionClient) DeleteOneID(id string) *CompletionDeleteOne {
	builder := c.Delete().Where(completion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompletionDeleteOne{builder}
}

// Query returns a query builder for Completion.
func (c *CompletionClient) Query() *CompletionQuery {
	return &CompletionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompletion},
		inters: c.Interceptors(),
	}
}

// Get returns a Completion entity by its id.
func (c *CompletionClient) Get(ctx context.Context, id string) (*Completion, error) {
	return c.Query().Where(completion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompletionClient) GetX(ctx context.Context, id string) *Completion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a Completion.
func (c *CompletionClient) QueryReport(_m *Completion) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(completion.Table, completion.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, completion.ReportTable, completion.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgentExecutions queries the agent_executions edge of a Completion.
func (c *CompletionClient) QueryAgentExecutions(_m *Completion) *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(completion.Table, completion.FieldID, id),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, completion.AgentExecutionsTable, completion.AgentExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBlocks queries the blocks edge of a Completion.
func (c *CompletionClient) QueryBlocks(_m *Completion) *CompletionBlockQuery {
	query := (&CompletionBlockClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(completion.Table, completion.FieldID, id),
			sqlgraph.To(completionblock.Table, completionblock.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, completion.BlocksTable, completion.BlocksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CompletionClient) Hooks() []Hook {
	return c.hooks.Completion
}

// Interceptors returns the client interceptors.
func (c *CompletionClient) Interceptors() []Interceptor {
	return c.inters.Completion
}

func (c *CompletionClient) mutate(ctx context.Context, m *CompletionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompletionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompletionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompletionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompletionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Completion mutation op: %q", m.Op())
	}
}

// CompletionBlockClient is a client for the CompletionBlock schema.
type CompletionBlockClient struct {
	config
}

// NewCompletionBlockClient returns a client for the CompletionBlock from the given config.
func NewCompletionBlockClient(c config) *CompletionBlockClient {
	return &CompletionBlockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `completionblock.Hooks(f(g(h())))`.
func (c *CompletionBlockClient) Use(hooks ...Hook) {
	c.hooks.CompletionBlock = append(c.hooks.CompletionBlock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `completionblock.Intercept(f(g(h())))`.
func (c *CompletionBlockClient) Intercept(interceptors ...Interceptor) {
	c.inters.CompletionBlock = append(c.inters.CompletionBlock, interceptors...)
}

// Create returns a builder for creating a CompletionBlock entity.
func (c *CompletionBlockClient) Create() *CompletionBlockCreate {
	mutation := newCompletionBlockMutation(c.config, OpCreate)
	return &CompletionBlockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CompletionBlock entities.
func (c *CompletionBlockClient) CreateBulk(builders ...*CompletionBlockCreate) *CompletionBlockCreateBulk {
	return &CompletionBlockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompletionBlockClient) MapCreateBulk(slice any, setFunc func(*CompletionBlockCreate, int)) *CompletionBlockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompletionBlockCreateBulk{err: fmt.Errorf("calling to CompletionBlockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompletionBlockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompletionBlockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CompletionBlock.
func (c *CompletionBlockClient) Update() *CompletionBlockUpdate {
	mutation := newCompletionBlockMutation(c.config, OpUpdate)
	return &CompletionBlockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompletionBlockClient) UpdateOne(_m *CompletionBlock) *CompletionBlockUpdateOne {
	mutation := newCompletionBlockMutation(c.config, OpUpdateOne, withCompletionBlock(_m))
	return &CompletionBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompletionBlockClient) UpdateOneID(id string) *CompletionBlockUpdateOne {
	mutation := newCompletionBlockMutation(c.config, OpUpdateOne, withCompletionBlockID(id))
	return &CompletionBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CompletionBlock.
func (c *CompletionBlockClient) Delete() *CompletionBlockDelete {
	mutation := newCompletionBlockMutation(c.config, OpDelete)
	return &CompletionBlockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompletionBlockClient) DeleteOne(_m *CompletionBlock) *CompletionBlockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompletionBlockClient) DeleteOneID(id string) *CompletionBlockDeleteOne {
	builder := c.Delete().Where(completionblock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompletionBlockDeleteOne{builder}
}

// Query returns a query builder for CompletionBlock.
func (c *CompletionBlockClient) Query() *CompletionBlockQuery {
	return &CompletionBlockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompletionBlock},
		inters: c.Interceptors(),
	}
}

// Get returns a CompletionBlock entity by its id.
func (c *CompletionBlockClient) Get(ctx context.Context, id string) (*CompletionBlock, error) {
	return c.Query().Where(completionblock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompletionBlockClient) GetX(ctx context.Context, id string) *CompletionBlock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompletion queries the completion edge of a CompletionBlock.
func (c *CompletionBlockClient) QueryCompletion(_m *CompletionBlock) *CompletionQuery {
	query := (&CompletionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(completionblock.Table, completionblock.FieldID, id),
			sqlgraph.To(completion.Table, completion.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, completionblock.CompletionTable, completionblock.CompletionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgentExecution queries the agent_execution edge of a CompletionBlock.
func (c *CompletionBlockClient) QueryAgentExecution(_m *CompletionBlock) *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(completionblock.Table, completionblock.FieldID, id),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, completionblock.AgentExecutionTable, completionblock.AgentExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CompletionBlockClient) Hooks() []Hook {
	return c.hooks.CompletionBlock
}

// Interceptors returns the client interceptors.
func (c *CompletionBlockClient) Interceptors() []Interceptor {
	return c.inters.CompletionBlock
}

func (c *CompletionBlockClient) mutate(ctx context.Context, m *CompletionBlockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompletionBlockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompletionBlockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompletionBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompletionBlockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CompletionBlock mutation op: %q", m.Op())
	}
}

// ContextSnapshotClient is a client for the ContextSnapshot schema.
type ContextSnapshotClient struct {
	config
}

// NewContextSnapshotClient returns a client for the ContextSnapshot from the given config.
func NewContextSnapshotClient(c config) *ContextSnapshotClient {
	return &ContextSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contextsnapshot.Hooks(f(g(h())))`.
func (c *ContextSnapshotClient) Use(hooks ...Hook) {
	c.hooks.ContextSnapshot = append(c.hooks.ContextSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contextsnapshot.Intercept(f(g(h())))`.
func (c *ContextSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContextSnapshot = append(c.inters.ContextSnapshot, interceptors...)
}

// Create returns a builder for creating a ContextSnapshot entity.
func (c *ContextSnapshotClient) Create() *ContextSnapshotCreate {
	mutation := newContextSnapshotMutation(c.config, OpCreate)
	return &ContextSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContextSnapshot entities.
func (c *ContextSnapshotClient) CreateBulk(builders ...*ContextSnapshotCreate) *ContextSnapshotCreateBulk {
	return &ContextSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContextSnapshotClient) MapCreateBulk(slice any, setFunc func(*ContextSnapshotCreate, int)) *ContextSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContextSnapshotCreateBulk{err: fmt.Errorf("calling to ContextSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContextSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContextSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContextSnapshot.
func (c *ContextSnapshotClient) Update() *ContextSnapshotUpdate {
	mutation := newContextSnapshotMutation(c.config, OpUpdate)
	return &ContextSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContextSnapshotClient) UpdateOne(_m *ContextSnapshot) *ContextSnapshotUpdateOne {
	mutation := newContextSnapshotMutation(c.config, OpUpdateOne, withContextSnapshot(_m))
	return &ContextSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContextSnapshotClient) UpdateOneID(id string) *ContextSnapshotUpdateOne {
	mutation := newContextSnapshotMutation(c.config, OpUpdateOne, withContextSnapshotID(id))
	return &ContextSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContextSnapshot.
func (c *ContextSnapshotClient) Delete() *ContextSnapshotDelete {
	mutation := newContextSnapshotMutation(c.config, OpDelete)
	return &ContextSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContextSnapshotClient) DeleteOne(_m *ContextSnapshot) *ContextSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContextSnapshotClient) DeleteOneID(id string) *ContextSnapshotDeleteOne {
	builder := c.Delete().Where(contextsnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContextSnapshotDeleteOne{builder}
}

// Query returns a query builder for ContextSnapshot.
func (c *ContextSnapshotClient) Query() *ContextSnapshotQuery {
	return &ContextSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContextSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a ContextSnapshot entity by its id.
func (c *ContextSnapshotClient) Get(ctx context.Context, id string) (*ContextSnapshot, error) {
	return c.Query().Where(contextsnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContextSnapshotClient) GetX(ctx context.Context, id string) *ContextSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgentExecution queries the agent_execution edge of a ContextSnapshot.
func (c *ContextSnapshotClient) QueryAgentExecution(_m *ContextSnapshot) *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contextsnapshot.Table, contextsnapshot.FieldID, id),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contextsnapshot.AgentExecutionTable, contextsnapshot.AgentExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContextSnapshotClient) Hooks() []Hook {
	return c.hooks.ContextSnapshot
}

// Interceptors returns the client interceptors.
func (c *ContextSnapshotClient) Interceptors() []Interceptor {
	return c.inters.ContextSnapshot
}

func (c *ContextSnapshotClient) mutate(ctx context.Context, m *ContextSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContextSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContextSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContextSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContextSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContextSnapshot mutation op: %q", m.Op())
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

// ExecutionScoreClient is a client for the ExecutionScore schema.
type ExecutionScoreClient struct {
	config
}

// NewExecutionScoreClient returns a client for the ExecutionScore from the given config.
func NewExecutionScoreClient(c config) *ExecutionScoreClient {
	return &ExecutionScoreClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `executionscore.Hooks(f(g(h())))`.
func (c *ExecutionScoreClient) Use(hooks ...Hook) {
	c.hooks.ExecutionScore = append(c.hooks.ExecutionScore, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `executionscore.Intercept(f(g(h())))`.
func (c *ExecutionScoreClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExecutionScore = append(c.inters.ExecutionScore, interceptors...)
}

// Create returns a builder for creating a ExecutionScore entity.
func (c *ExecutionScoreClient) Create() *ExecutionScoreCreate {
	mutation := newExecutionScoreMutation(c.config, OpCreate)
	return &ExecutionScoreCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExecutionScore entities.
func (c *ExecutionScoreClient) CreateBulk(builders ...*ExecutionScoreCreate) *ExecutionScoreCreateBulk {
	return &ExecutionScoreCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionScoreClient) MapCreateBulk(slice any, setFunc func(*ExecutionScoreCreate, int)) *ExecutionScoreCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionScoreCreateBulk{err: fmt.Errorf("calling to ExecutionScoreClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionScoreCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionScoreCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExecutionScore.
func (c *ExecutionScoreClient) Update() *ExecutionScoreUpdate {
	mutation := newExecutionScoreMutation(c.config, OpUpdate)
	return &ExecutionScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionScoreClient) UpdateOne(_m *ExecutionScore) *ExecutionScoreUpdateOne {
	mutation := newExecutionScoreMutation(c.config, OpUpdateOne, withExecutionScore(_m))
	return &ExecutionScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionScoreClient) UpdateOneID(id string) *ExecutionScoreUpdateOne {
	mutation := newExecutionScoreMutation(c.config, OpUpdateOne, withExecutionScoreID(id))
	return &ExecutionScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExecutionScore.
func (c *ExecutionScoreClient) Delete() *ExecutionScoreDelete {
	mutation := newExecutionScoreMutation(c.config, OpDelete)
	return &ExecutionScoreDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionScoreClient) DeleteOne(_m *ExecutionScore) *ExecutionScoreDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionScoreClient) DeleteOneID(id string) *ExecutionScoreDeleteOne {
	builder := c.Delete().Where(executionscore.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionScoreDeleteOne{builder}
}

// Query returns a query builder for ExecutionScore.
func (c *ExecutionScoreClient) Query() *ExecutionScoreQuery {
	return &ExecutionScoreQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecutionScore},
		inters: c.Interceptors(),
	}
}

// Get returns a ExecutionScore entity by its id.
func (c *ExecutionScoreClient) Get(ctx context.Context, id string) (*ExecutionScore, error) {
	return c.Query().Where(executionscore.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionScoreClient) GetX(ctx context.Context, id string) *ExecutionScore {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgentExecution queries the agent_execution edge of a ExecutionScore.
func (c *ExecutionScoreClient) QueryAgentExecution(_m *ExecutionScore) *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(executionscore.Table, executionscore.FieldID, id),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, executionscore.AgentExecutionTable, executionscore.AgentExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExecutionScoreClient) Hooks() []Hook {
	return c.hooks.ExecutionScore
}

// Interceptors returns the client interceptors.
func (c *ExecutionScoreClient) Interceptors() []Interceptor {
	return c.inters.ExecutionScore
}

func (c *ExecutionScoreClient) mutate(ctx context.Context, m *ExecutionScoreMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionScoreCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionScoreDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExecutionScore mutation op: %q", m.Op())
	}
}

// InstructionClient is a client for the Instruction schema.
type InstructionClient struct {
	config
}

// NewInstructionClient returns a client for the Instruction from the given config.
func NewInstructionClient(c config) *InstructionClient {
	return &InstructionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `instruction.Hooks(f(g(h())))`.
func (c *InstructionClient) Use(hooks ...Hook) {
	c.hooks.Instruction = append(c.hooks.Instruction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `instruction.Intercept(f(g(h())))`.
func (c *InstructionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Instruction = append(c.inters.Instruction, interceptors...)
}

// Create returns a builder for creating a Instruction entity.
func (c *InstructionClient) Create() *InstructionCreate {
	mutation := newInstructionMutation(c.config, OpCreate)
	return &InstructionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Instruction entities.
func (c *InstructionClient) CreateBulk(builders ...*InstructionCreate) *InstructionCreateBulk {
	return &InstructionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InstructionClient) MapCreateBulk(slice any, setFunc func(*InstructionCreate, int)) *InstructionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InstructionCreateBulk{err: fmt.Errorf("calling to InstructionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InstructionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InstructionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Instruction.
func (c *InstructionClient) Update() *InstructionUpdate {
	mutation := newInstructionMutation(c.config, OpUpdate)
	return &InstructionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InstructionClient) UpdateOne(_m *Instruction) *InstructionUpdateOne {
	mutation := newInstructionMutation(c.config, OpUpdateOne, withInstruction(_m))
	return &InstructionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InstructionClient) UpdateOneID(id string) *InstructionUpdateOne {
	mutation := newInstructionMutation(c.config, OpUpdateOne, withInstructionID(id))
	return &InstructionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Instruction.
func (c *InstructionClient) Delete() *InstructionDelete {
	mutation := newInstructionMutation(c.config, OpDelete)
	return &InstructionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InstructionClient) DeleteOne(_m *Instruction) *InstructionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InstructionClient) DeleteOneID(id string) *InstructionDeleteOne {
	builder := c.Delete().Where(instruction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InstructionDeleteOne{builder}
}

// Query returns a query builder for Instruction.
func (c *InstructionClient) Query() *InstructionQuery {
	return &InstructionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInstruction},
		inters: c.Interceptors(),
	}
}

// Get returns a Instruction entity by its id.
func (c *InstructionClient) Get(ctx context.Context, id string) (*Instruction, error) {
	return c.Query().Where(instruction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InstructionClient) GetX(ctx context.Context, id string) *Instruction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InstructionClient) Hooks() []Hook {
	return c.hooks.Instruction
}

// Interceptors returns the client interceptors.
func (c *InstructionClient) Interceptors() []Interceptor {
	return c.inters.Instruction
}

func (c *InstructionClient) mutate(ctx context.Context, m *InstructionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InstructionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InstructionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InstructionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InstructionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Instruction mutation op: %q", m.Op())
	}
}

// PlanDecisionClient is a client for the PlanDecision schema.
type PlanDecisionClient struct {
	config
}

// NewPlanDecisionClient returns a client for the PlanDecision from the given config.
func NewPlanDecisionClient(c config) *PlanDecisionClient {
	return &PlanDecisionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `plandecision.Hooks(f(g(h())))`.
func (c *PlanDecisionClient) Use(hooks ...Hook) {
	c.hooks.PlanDecision = append(c.hooks.PlanDecision, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `plandecision.Intercept(f(g(h())))`.
func (c *PlanDecisionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlanDecision = append(c.inters.PlanDecision, interceptors...)
}

// Create returns a builder for creating a PlanDecision entity.
func (c *PlanDecisionClient) Create() *PlanDecisionCreate {
	mutation := newPlanDecisionMutation(c.config, OpCreate)
	return &PlanDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlanDecision entities.
func (c *PlanDecisionClient) CreateBulk(builders ...*PlanDecisionCreate) *PlanDecisionCreateBulk {
	return &PlanDecisionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlanDecisionClient) MapCreateBulk(slice any, setFunc func(*PlanDecisionCreate, int)) *PlanDecisionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlanDecisionCreateBulk{err: fmt.Errorf("calling to PlanDecisionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlanDecisionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlanDecisionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlanDecision.
func (c *PlanDecisionClient) Update() *PlanDecisionUpdate {
	mutation := newPlanDecisionMutation(c.config, OpUpdate)
	return &PlanDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlanDecisionClient) UpdateOne(_m *PlanDecision) *PlanDecisionUpdateOne {
	mutation := newPlanDecisionMutation(c.config, OpUpdateOne, withPlanDecision(_m))
	return &PlanDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlanDecisionClient) UpdateOneID(id string) *PlanDecisionUpdateOne {
	mutation := newPlanDecisionMutation(c.config, OpUpdateOne, withPlanDecisionID(id))
	return &PlanDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlanDecision.
func (c *PlanDecisionClient) Delete() *PlanDecisionDelete {
	mutation := newPlanDecisionMutation(c.config, OpDelete)
	return &PlanDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlanDecisionClient) DeleteOne(_m *PlanDecision) *PlanDecisionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlanDecisionClient) DeleteOneID(id string) *PlanDecisionDeleteOne {
	builder := c.Delete().Where(plandecision.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlanDecisionDeleteOne{builder}
}

// Query returns a query builder for PlanDecision.
func (c *PlanDecisionClient) Query() *PlanDecisionQuery {
	return &PlanDecisionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlanDecision},
		inters: c.Interceptors(),
	}
}

// Get returns a PlanDecision entity by its id.
func (c *PlanDecisionClient) Get(ctx context.Context, id string) (*PlanDecision, error) {
	return c.Query().Where(plandecision.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlanDecisionClient) GetX(ctx context.Context, id string) *PlanDecision {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgentExecution queries the agent_execution edge of a PlanDecision.
func (c *PlanDecisionClient) QueryAgentExecution(_m *PlanDecision) *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(plandecision.Table, plandecision.FieldID, id),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, plandecision.AgentExecutionTable, plandecision.AgentExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryToolExecutions queries the tool_executions edge of a PlanDecision.
func (c *PlanDecisionClient) QueryToolExecutions(_m *PlanDecision) *ToolExecutionQuery {
	query := (&ToolExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(plandecision.Table, plandecision.FieldID, id),
			sqlgraph.To(toolexecution.Table, toolexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, plandecision.ToolExecutionsTable, plandecision.ToolExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PlanDecisionClient) Hooks() []Hook {
	return c.hooks.PlanDecision
}

// Interceptors returns the client interceptors.
func (c *PlanDecisionClient) Interceptors() []Interceptor {
	return c.inters.PlanDecision
}

func (c *PlanDecisionClient) mutate(ctx context.Context, m *PlanDecisionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlanDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlanDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlanDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlanDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PlanDecision mutation op: %q", m.Op())
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
func (c *ReportClient) UpdateOneID(id string) *ReportUpdateOne {
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
func (c *ReportClient) DeleteOneID(id string) *ReportDeleteOne {
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
func (c *ReportClient) Get(ctx context.Context, id string) (*Report, error) {
	return c.Query().Where(report.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReportClient) GetX(ctx context.Context, id string) *Report {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompletions queries the completions edge of a Report.
func (c *ReportClient) QueryCompletions(_m *Report) *CompletionQuery {
	query := (&CompletionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(completion.Table, completion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.CompletionsTable, report.CompletionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgentExecutions queries the agent_executions edge of a Report.
func (c *ReportClient) QueryAgentExecutions(_m *Report) *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.AgentExecutionsTable, report.AgentExecutionsColumn),
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

// TableUsageClient is a client for the TableUsage schema.
type TableUsageClient struct {
	config
}

// NewTableUsageClient returns a client for the TableUsage from the given config.
func NewTableUsageClient(c config) *TableUsageClient {
	return &TableUsageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tableusage.Hooks(f(g(h())))`.
func (c *TableUsageClient) Use(hooks ...Hook) {
	c.hooks.TableUsage = append(c.hooks.TableUsage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tableusage.Intercept(f(g(h())))`.
func (c *TableUsageClient) Intercept(interceptors ...Interceptor) {
	c.inters.TableUsage = append(c.inters.TableUsage, interceptors...)
}

// Create returns a builder for creating a TableUsage entity.
func (c *TableUsageClient) Create() *TableUsageCreate {
	mutation := newTableUsageMutation(c.config, OpCreate)
	return &TableUsageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TableUsage entities.
func (c *TableUsageClient) CreateBulk(builders ...*TableUsageCreate) *TableUsageCreateBulk {
	return &TableUsageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TableUsageClient) MapCreateBulk(slice any, setFunc func(*TableUsageCreate, int)) *TableUsageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TableUsageCreateBulk{err: fmt.Errorf("calling to TableUsageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TableUsageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TableUsageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TableUsage.
func (c *TableUsageClient) Update() *TableUsageUpdate {
	mutation := newTableUsageMutation(c.config, OpUpdate)
	return &TableUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TableUsageClient) UpdateOne(_m *TableUsage) *TableUsageUpdateOne {
	mutation := newTableUsageMutation(c.config, OpUpdateOne, withTableUsage(_m))
	return &TableUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TableUsageClient) UpdateOneID(id string) *TableUsageUpdateOne {
	mutation := newTableUsageMutation(c.config, OpUpdateOne, withTableUsageID(id))
	return &TableUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TableUsage.
func (c *TableUsageClient) Delete() *TableUsageDelete {
	mutation := newTableUsageMutation(c.config, OpDelete)
	return &TableUsageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TableUsageClient) DeleteOne(_m *TableUsage) *TableUsageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TableUsageClient) DeleteOneID(id string) *TableUsageDeleteOne {
	builder := c.Delete().Where(tableusage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TableUsageDeleteOne{builder}
}

// Query returns a query builder for TableUsage.
func (c *TableUsageClient) Query() *TableUsageQuery {
	return &TableUsageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTableUsage},
		inters: c.Interceptors(),
	}
}

// Get returns a TableUsage entity by its id.
func (c *TableUsageClient) Get(ctx context.Context, id string) (*TableUsage, error) {
	return c.Query().Where(tableusage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TableUsageClient) GetX(ctx context.Context, id string) *TableUsage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TableUsageClient) Hooks() []Hook {
	return c.hooks.TableUsage
}

// Interceptors returns the client interceptors.
func (c *TableUsageClient) Interceptors() []Interceptor {
	return c.inters.TableUsage
}

func (c *TableUsageClient) mutate(ctx context.Context, m *TableUsageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TableUsageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TableUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TableUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TableUsageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TableUsage mutation op: %q", m.Op())
	}
}

// ToolExecutionClient is a client for the ToolExecution schema.
type ToolExecutionClient struct {
	config
}

// NewToolExecutionClient returns a client for the ToolExecution from the given config.
func NewToolExecutionClient(c config) *ToolExecutionClient {
	return &ToolExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `toolexecution.Hooks(f(g(h())))`.
func (c *ToolExecutionClient) Use(hooks ...Hook) {
	c.hooks.ToolExecution = append(c.hooks.ToolExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `toolexecution.Intercept(f(g(h())))`.
func (c *ToolExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToolExecution = append(c.inters.ToolExecution, interceptors...)
}

// Create returns a builder for creating a ToolExecution entity.
func (c *ToolExecutionClient) Create() *ToolExecutionCreate {
	mutation := newToolExecutionMutation(c.config, OpCreate)
	return &ToolExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToolExecution entities.
func (c *ToolExecutionClient) CreateBulk(builders ...*ToolExecutionCreate) *ToolExecutionCreateBulk {
	return &ToolExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolExecutionClient) MapCreateBulk(slice any, setFunc func(*ToolExecutionCreate, int)) *ToolExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolExecutionCreateBulk{err: fmt.Errorf("calling to ToolExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToolExecution.
func (c *ToolExecutionClient) Update() *ToolExecutionUpdate {
	mutation := newToolExecutionMutation(c.config, OpUpdate)
	return &ToolExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolExecutionClient) UpdateOne(_m *ToolExecution) *ToolExecutionUpdateOne {
	mutation := newToolExecutionMutation(c.config, OpUpdateOne, withToolExecution(_m))
	return &ToolExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolExecutionClient) UpdateOneID(id string) *ToolExecutionUpdateOne {
	mutation := newToolExecutionMutation(c.config, OpUpdateOne, withToolExecutionID(id))
	return &ToolExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToolExecution.
func (c *ToolExecutionClient) Delete() *ToolExecutionDelete {
	mutation := newToolExecutionMutation(c.config, OpDelete)
	return &ToolExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolExecutionClient) DeleteOne(_m *ToolExecution) *ToolExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolExecutionClient) DeleteOneID(id string) *ToolExecutionDeleteOne {
	builder := c.Delete().Where(toolexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolExecutionDeleteOne{builder}
}

// Query returns a query builder for ToolExecution.
func (c *ToolExecutionClient) Query() *ToolExecutionQuery {
	return &ToolExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToolExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a ToolExecution entity by its id.
func (c *ToolExecutionClient) Get(ctx context.Context, id string) (*ToolExecution, error) {
	return c.Query().Where(toolexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolExecutionClient) GetX(ctx context.Context, id string) *ToolExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgentExecution queries the agent_execution edge of a ToolExecution.
func (c *ToolExecutionClient) QueryAgentExecution(_m *ToolExecution) *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(toolexecution.Table, toolexecution.FieldID, id),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, toolexecution.AgentExecutionTable, toolexecution.AgentExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPlanDecision queries the plan_decision edge of a ToolExecution.
func (c *ToolExecutionClient) QueryPlanDecision(_m *ToolExecution) *PlanDecisionQuery {
	query := (&PlanDecisionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(toolexecution.Table, toolexecution.FieldID, id),
			sqlgraph.To(plandecision.Table, plandecision.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, toolexecution.PlanDecisionTable, toolexecution.PlanDecisionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ToolExecutionClient) Hooks() []Hook {
	return c.hooks.ToolExecution
}

// Interceptors returns the client interceptors.
func (c *ToolExecutionClient) Interceptors() []Interceptor {
	return c.inters.ToolExecution
}

func (c *ToolExecutionClient) mutate(ctx context.Context, m *ToolExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToolExecution mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentExecution, Completion, CompletionBlock, ContextSnapshot, Event,
		ExecutionScore, Instruction, PlanDecision, Report, TableUsage,
		ToolExecution []ent.Hook
	}
	inters struct {
		AgentExecution, Completion, CompletionBlock, ContextSnapshot, Event,
		ExecutionScore, Instruction, PlanDecision, Report, TableUsage,
		ToolExecution []ent.Interceptor
	}
)

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/avalder/pathwise/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/avalder/pathwise/ent/learningpath"
	"github.com/avalder/pathwise/ent/llmrequestevent"
	"github.com/avalder/pathwise/ent/masteryrecord"
	"github.com/avalder/pathwise/ent/quizattemptevent"
	"github.com/avalder/pathwise/ent/reviewevent"
	"github.com/avalder/pathwise/ent/subjectprogress"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// LearningPath is the client for interacting with the LearningPath builders.
	LearningPath *LearningPathClient
	// MasteryRecord is the client for interacting with the MasteryRecord builders.
	MasteryRecord *MasteryRecordClient
	// QuizAttemptEvent is the client for interacting with the QuizAttemptEvent builders.
	QuizAttemptEvent *QuizAttemptEventClient
	// ReviewEvent is the client for interacting with the ReviewEvent builders.
	ReviewEvent *ReviewEventClient
	// SubjectProgress is the client for interacting with the SubjectProgress builders.
	SubjectProgress *SubjectProgressClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.LearningPath = NewLearningPathClient(c.config)
	c.MasteryRecord = NewMasteryRecordClient(c.config)
	c.QuizAttemptEvent = NewQuizAttemptEventClient(c.config)
	c.ReviewEvent = NewReviewEventClient(c.config)
	c.SubjectProgress = NewSubjectProgressClient(c.config)
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
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		LearningPath:     NewLearningPathClient(cfg),
		MasteryRecord:    NewMasteryRecordClient(cfg),
		QuizAttemptEvent: NewQuizAttemptEventClient(cfg),
		ReviewEvent:      NewReviewEventClient(cfg),
		SubjectProgress:  NewSubjectProgressClient(cfg),
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
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		LearningPath:     NewLearningPathClient(cfg),
		MasteryRecord:    NewMasteryRecordClient(cfg),
		QuizAttemptEvent: NewQuizAttemptEventClient(cfg),
		ReviewEvent:      NewReviewEventClient(cfg),
		SubjectProgress:  NewSubjectProgressClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LLMRequestEvent.
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
		c.LLMRequestEvent, c.LearningPath, c.MasteryRecord, c.QuizAttemptEvent,
		c.ReviewEvent, c.SubjectProgress,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.LLMRequestEvent, c.LearningPath, c.MasteryRecord, c.QuizAttemptEvent,
		c.ReviewEvent, c.SubjectProgress,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *LearningPathMutation:
		return c.LearningPath.mutate(ctx, m)
	case *MasteryRecordMutation:
		return c.MasteryRecord.mutate(ctx, m)
	case *QuizAttemptEventMutation:
		return c.QuizAttemptEvent.mutate(ctx, m)
	case *ReviewEventMutation:
		return c.ReviewEvent.mutate(ctx, m)
	case *SubjectProgressMutation:
		return c.SubjectProgress.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// LearningPathClient is a client for the LearningPath schema.
type LearningPathClient struct {
	config
}

// NewLearningPathClient returns a client for the LearningPath from the given config.
func NewLearningPathClient(c config) *LearningPathClient {
	return &LearningPathClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learningpath.Hooks(f(g(h())))`.
func (c *LearningPathClient) Use(hooks ...Hook) {
	c.hooks.LearningPath = append(c.hooks.LearningPath, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learningpath.Intercept(f(g(h())))`.
func (c *LearningPathClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearningPath = append(c.inters.LearningPath, interceptors...)
}

// Create returns a builder for creating a LearningPath entity.
func (c *LearningPathClient) Create() *LearningPathCreate {
	mutation := newLearningPathMutation(c.config, OpCreate)
	return &LearningPathCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearningPath entities.
func (c *LearningPathClient) CreateBulk(builders ...*LearningPathCreate) *LearningPathCreateBulk {
	return &LearningPathCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearningPathClient) MapCreateBulk(slice any, setFunc func(*LearningPathCreate, int)) *LearningPathCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearningPathCreateBulk{err: fmt.Errorf("calling to LearningPathClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearningPathCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearningPathCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearningPath.
func (c *LearningPathClient) Update() *LearningPathUpdate {
	mutation := newLearningPathMutation(c.config, OpUpdate)
	return &LearningPathUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearningPathClient) UpdateOne(_m *LearningPath) *LearningPathUpdateOne {
	mutation := newLearningPathMutation(c.config, OpUpdateOne, withLearningPath(_m))
	return &LearningPathUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearningPathClient) UpdateOneID(id int) *LearningPathUpdateOne {
	mutation := newLearningPathMutation(c.config, OpUpdateOne, withLearningPathID(id))
	return &LearningPathUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearningPath.
func (c *LearningPathClient) Delete() *LearningPathDelete {
	mutation := newLearningPathMutation(c.config, OpDelete)
	return &LearningPathDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearningPathClient) DeleteOne(_m *LearningPath) *LearningPathDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearningPathClient) DeleteOneID(id int) *LearningPathDeleteOne {
	builder := c.Delete().Where(learningpath.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearningPathDeleteOne{builder}
}

// Query returns a query builder for LearningPath.
func (c *LearningPathClient) Query() *LearningPathQuery {
	return &LearningPathQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearningPath},
		inters: c.Interceptors(),
	}
}

// Get returns a LearningPath entity by its id.
func (c *LearningPathClient) Get(ctx context.Context, id int) (*LearningPath, error) {
	return c.Query().Where(learningpath.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearningPathClient) GetX(ctx context.Context, id int) *LearningPath {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearningPathClient) Hooks() []Hook {
	return c.hooks.LearningPath
}

// Interceptors returns the client interceptors.
func (c *LearningPathClient) Interceptors() []Interceptor {
	return c.inters.LearningPath
}

func (c *LearningPathClient) mutate(ctx context.Context, m *LearningPathMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearningPathCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearningPathUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearningPathUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearningPathDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearningPath mutation op: %q", m.Op())
	}
}

// MasteryRecordClient is a client for the MasteryRecord schema.
type MasteryRecordClient struct {
	config
}

// NewMasteryRecordClient returns a client for the MasteryRecord from the given config.
func NewMasteryRecordClient(c config) *MasteryRecordClient {
	return &MasteryRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `masteryrecord.Hooks(f(g(h())))`.
func (c *MasteryRecordClient) Use(hooks ...Hook) {
	c.hooks.MasteryRecord = append(c.hooks.MasteryRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `masteryrecord.Intercept(f(g(h())))`.
func (c *MasteryRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.MasteryRecord = append(c.inters.MasteryRecord, interceptors...)
}

// Create returns a builder for creating a MasteryRecord entity.
func (c *MasteryRecordClient) Create() *MasteryRecordCreate {
	mutation := newMasteryRecordMutation(c.config, OpCreate)
	return &MasteryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MasteryRecord entities.
func (c *MasteryRecordClient) CreateBulk(builders ...*MasteryRecordCreate) *MasteryRecordCreateBulk {
	return &MasteryRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MasteryRecordClient) MapCreateBulk(slice any, setFunc func(*MasteryRecordCreate, int)) *MasteryRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MasteryRecordCreateBulk{err: fmt.Errorf("calling to MasteryRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MasteryRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MasteryRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MasteryRecord.
func (c *MasteryRecordClient) Update() *MasteryRecordUpdate {
	mutation := newMasteryRecordMutation(c.config, OpUpdate)
	return &MasteryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MasteryRecordClient) UpdateOne(_m *MasteryRecord) *MasteryRecordUpdateOne {
	mutation := newMasteryRecordMutation(c.config, OpUpdateOne, withMasteryRecord(_m))
	return &MasteryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MasteryRecordClient) UpdateOneID(id int) *MasteryRecordUpdateOne {
	mutation := newMasteryRecordMutation(c.config, OpUpdateOne, withMasteryRecordID(id))
	return &MasteryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MasteryRecord.
func (c *MasteryRecordClient) Delete() *MasteryRecordDelete {
	mutation := newMasteryRecordMutation(c.config, OpDelete)
	return &MasteryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MasteryRecordClient) DeleteOne(_m *MasteryRecord) *MasteryRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MasteryRecordClient) DeleteOneID(id int) *MasteryRecordDeleteOne {
	builder := c.Delete().Where(masteryrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MasteryRecordDeleteOne{builder}
}

// Query returns a query builder for MasteryRecord.
func (c *MasteryRecordClient) Query() *MasteryRecordQuery {
	return &MasteryRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMasteryRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a MasteryRecord entity by its id.
func (c *MasteryRecordClient) Get(ctx context.Context, id int) (*MasteryRecord, error) {
	return c.Query().Where(masteryrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MasteryRecordClient) GetX(ctx context.Context, id int) *MasteryRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MasteryRecordClient) Hooks() []Hook {
	return c.hooks.MasteryRecord
}

// Interceptors returns the client interceptors.
func (c *MasteryRecordClient) Interceptors() []Interceptor {
	return c.inters.MasteryRecord
}

func (c *MasteryRecordClient) mutate(ctx context.Context, m *MasteryRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MasteryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MasteryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MasteryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MasteryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MasteryRecord mutation op: %q", m.Op())
	}
}

// QuizAttemptEventClient is a client for the QuizAttemptEvent schema.
type QuizAttemptEventClient struct {
	config
}

// NewQuizAttemptEventClient returns a client for the QuizAttemptEvent from the given config.
func NewQuizAttemptEventClient(c config) *QuizAttemptEventClient {
	return &QuizAttemptEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizattemptevent.Hooks(f(g(h())))`.
func (c *QuizAttemptEventClient) Use(hooks ...Hook) {
	c.hooks.QuizAttemptEvent = append(c.hooks.QuizAttemptEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizattemptevent.Intercept(f(g(h())))`.
func (c *QuizAttemptEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizAttemptEvent = append(c.inters.QuizAttemptEvent, interceptors...)
}

// Create returns a builder for creating a QuizAttemptEvent entity.
func (c *QuizAttemptEventClient) Create() *QuizAttemptEventCreate {
	mutation := newQuizAttemptEventMutation(c.config, OpCreate)
	return &QuizAttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizAttemptEvent entities.
func (c *QuizAttemptEventClient) CreateBulk(builders ...*QuizAttemptEventCreate) *QuizAttemptEventCreateBulk {
	return &QuizAttemptEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizAttemptEventClient) MapCreateBulk(slice any, setFunc func(*QuizAttemptEventCreate, int)) *QuizAttemptEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizAttemptEventCreateBulk{err: fmt.Errorf("calling to QuizAttemptEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizAttemptEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizAttemptEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizAttemptEvent.
func (c *QuizAttemptEventClient) Update() *QuizAttemptEventUpdate {
	mutation := newQuizAttemptEventMutation(c.config, OpUpdate)
	return &QuizAttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizAttemptEventClient) UpdateOne(_m *QuizAttemptEvent) *QuizAttemptEventUpdateOne {
	mutation := newQuizAttemptEventMutation(c.config, OpUpdateOne, withQuizAttemptEvent(_m))
	return &QuizAttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizAttemptEventClient) UpdateOneID(id int) *QuizAttemptEventUpdateOne {
	mutation := newQuizAttemptEventMutation(c.config, OpUpdateOne, withQuizAttemptEventID(id))
	return &QuizAttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizAttemptEvent.
func (c *QuizAttemptEventClient) Delete() *QuizAttemptEventDelete {
	mutation := newQuizAttemptEventMutation(c.config, OpDelete)
	return &QuizAttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizAttemptEventClient) DeleteOne(_m *QuizAttemptEvent) *QuizAttemptEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizAttemptEventClient) DeleteOneID(id int) *QuizAttemptEventDeleteOne {
	builder := c.Delete().Where(quizattemptevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizAttemptEventDeleteOne{builder}
}

// Query returns a query builder for QuizAttemptEvent.
func (c *QuizAttemptEventClient) Query() *QuizAttemptEventQuery {
	return &QuizAttemptEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizAttemptEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizAttemptEvent entity by its id.
func (c *QuizAttemptEventClient) Get(ctx context.Context, id int) (*QuizAttemptEvent, error) {
	return c.Query().Where(quizattemptevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizAttemptEventClient) GetX(ctx context.Context, id int) *QuizAttemptEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizAttemptEventClient) Hooks() []Hook {
	return c.hooks.QuizAttemptEvent
}

// Interceptors returns the client interceptors.
func (c *QuizAttemptEventClient) Interceptors() []Interceptor {
	return c.inters.QuizAttemptEvent
}

func (c *QuizAttemptEventClient) mutate(ctx context.Context, m *QuizAttemptEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizAttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizAttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizAttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizAttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizAttemptEvent mutation op: %q", m.Op())
	}
}

// ReviewEventClient is a client for the ReviewEvent schema.
type ReviewEventClient struct {
	config
}

// NewReviewEventClient returns a client for the ReviewEvent from the given config.
func NewReviewEventClient(c config) *ReviewEventClient {
	return &ReviewEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewevent.Hooks(f(g(h())))`.
func (c *ReviewEventClient) Use(hooks ...Hook) {
	c.hooks.ReviewEvent = append(c.hooks.ReviewEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewevent.Intercept(f(g(h())))`.
func (c *ReviewEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewEvent = append(c.inters.ReviewEvent, interceptors...)
}

// Create returns a builder for creating a ReviewEvent entity.
func (c *ReviewEventClient) Create() *ReviewEventCreate {
	mutation := newReviewEventMutation(c.config, OpCreate)
	return &ReviewEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewEvent entities.
func (c *ReviewEventClient) CreateBulk(builders ...*ReviewEventCreate) *ReviewEventCreateBulk {
	return &ReviewEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewEventClient) MapCreateBulk(slice any, setFunc func(*ReviewEventCreate, int)) *ReviewEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewEventCreateBulk{err: fmt.Errorf("calling to ReviewEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewEvent.
func (c *ReviewEventClient) Update() *ReviewEventUpdate {
	mutation := newReviewEventMutation(c.config, OpUpdate)
	return &ReviewEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewEventClient) UpdateOne(_m *ReviewEvent) *ReviewEventUpdateOne {
	mutation := newReviewEventMutation(c.config, OpUpdateOne, withReviewEvent(_m))
	return &ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewEventClient) UpdateOneID(id int) *ReviewEventUpdateOne {
	mutation := newReviewEventMutation(c.config, OpUpdateOne, withReviewEventID(id))
	return &ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewEvent.
func (c *ReviewEventClient) Delete() *ReviewEventDelete {
	mutation := newReviewEventMutation(c.config, OpDelete)
	return &ReviewEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewEventClient) DeleteOne(_m *ReviewEvent) *ReviewEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewEventClient) DeleteOneID(id int) *ReviewEventDeleteOne {
	builder := c.Delete().Where(reviewevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewEventDeleteOne{builder}
}

// Query returns a query builder for ReviewEvent.
func (c *ReviewEventClient) Query() *ReviewEventQuery {
	return &ReviewEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewEvent entity by its id.
func (c *ReviewEventClient) Get(ctx context.Context, id int) (*ReviewEvent, error) {
	return c.Query().Where(reviewevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewEventClient) GetX(ctx context.Context, id int) *ReviewEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewEventClient) Hooks() []Hook {
	return c.hooks.ReviewEvent
}

// Interceptors returns the client interceptors.
func (c *ReviewEventClient) Interceptors() []Interceptor {
	return c.inters.ReviewEvent
}

func (c *ReviewEventClient) mutate(ctx context.Context, m *ReviewEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewEvent mutation op: %q", m.Op())
	}
}

// SubjectProgressClient is a client for the SubjectProgress schema.
type SubjectProgressClient struct {
	config
}

// NewSubjectProgressClient returns a client for the SubjectProgress from the given config.
func NewSubjectProgressClient(c config) *SubjectProgressClient {
	return &SubjectProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subjectprogress.Hooks(f(g(h())))`.
func (c *SubjectProgressClient) Use(hooks ...Hook) {
	c.hooks.SubjectProgress = append(c.hooks.SubjectProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subjectprogress.Intercept(f(g(h())))`.
func (c *SubjectProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubjectProgress = append(c.inters.SubjectProgress, interceptors...)
}

// Create returns a builder for creating a SubjectProgress entity.
func (c *SubjectProgressClient) Create() *SubjectProgressCreate {
	mutation := newSubjectProgressMutation(c.config, OpCreate)
	return &SubjectProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubjectProgress entities.
func (c *SubjectProgressClient) CreateBulk(builders ...*SubjectProgressCreate) *SubjectProgressCreateBulk {
	return &SubjectProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubjectProgressClient) MapCreateBulk(slice any, setFunc func(*SubjectProgressCreate, int)) *SubjectProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubjectProgressCreateBulk{err: fmt.Errorf("calling to SubjectProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubjectProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubjectProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubjectProgress.
func (c *SubjectProgressClient) Update() *SubjectProgressUpdate {
	mutation := newSubjectProgressMutation(c.config, OpUpdate)
	return &SubjectProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubjectProgressClient) UpdateOne(_m *SubjectProgress) *SubjectProgressUpdateOne {
	mutation := newSubjectProgressMutation(c.config, OpUpdateOne, withSubjectProgress(_m))
	return &SubjectProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubjectProgressClient) UpdateOneID(id int) *SubjectProgressUpdateOne {
	mutation := newSubjectProgressMutation(c.config, OpUpdateOne, withSubjectProgressID(id))
	return &SubjectProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubjectProgress.
func (c *SubjectProgressClient) Delete() *SubjectProgressDelete {
	mutation := newSubjectProgressMutation(c.config, OpDelete)
	return &SubjectProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubjectProgressClient) DeleteOne(_m *SubjectProgress) *SubjectProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubjectProgressClient) DeleteOneID(id int) *SubjectProgressDeleteOne {
	builder := c.Delete().Where(subjectprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubjectProgressDeleteOne{builder}
}

// Query returns a query builder for SubjectProgress.
func (c *SubjectProgressClient) Query() *SubjectProgressQuery {
	return &SubjectProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubjectProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a SubjectProgress entity by its id.
func (c *SubjectProgressClient) Get(ctx context.Context, id int) (*SubjectProgress, error) {
	return c.Query().Where(subjectprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubjectProgressClient) GetX(ctx context.Context, id int) *SubjectProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubjectProgressClient) Hooks() []Hook {
	return c.hooks.SubjectProgress
}

// Interceptors returns the client interceptors.
func (c *SubjectProgressClient) Interceptors() []Interceptor {
	return c.inters.SubjectProgress
}

func (c *SubjectProgressClient) mutate(ctx context.Context, m *SubjectProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubjectProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubjectProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubjectProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubjectProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubjectProgress mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LLMRequestEvent, LearningPath, MasteryRecord, QuizAttemptEvent, ReviewEvent,
		SubjectProgress []ent.Hook
	}
	inters struct {
		LLMRequestEvent, LearningPath, MasteryRecord, QuizAttemptEvent, ReviewEvent,
		SubjectProgress []ent.Interceptor
	}
)

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/venn-social/vennd/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/venn-social/vennd/ent/circle"
	"github.com/venn-social/vennd/ent/collisionevent"
	"github.com/venn-social/vennd/ent/interviewmission"
	"github.com/venn-social/vennd/ent/match"
	"github.com/venn-social/vennd/ent/user"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Circle is the client for interacting with the Circle builders.
	Circle *CircleClient
	// CollisionEvent is the client for interacting with the CollisionEvent builders.
	CollisionEvent *CollisionEventClient
	// InterviewMission is the client for interacting with the InterviewMission builders.
	InterviewMission *InterviewMissionClient
	// Match is the client for interacting with the Match builders.
	Match *MatchClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Circle = NewCircleClient(c.config)
	c.CollisionEvent = NewCollisionEventClient(c.config)
	c.InterviewMission = NewInterviewMissionClient(c.config)
	c.Match = NewMatchClient(c.config)
	c.User = NewUserClient(c.config)
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
		Circle:           NewCircleClient(cfg),
		CollisionEvent:   NewCollisionEventClient(cfg),
		InterviewMission: NewInterviewMissionClient(cfg),
		Match:            NewMatchClient(cfg),
		User:             NewUserClient(cfg),
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
		Circle:           NewCircleClient(cfg),
		CollisionEvent:   NewCollisionEventClient(cfg),
		InterviewMission: NewInterviewMissionClient(cfg),
		Match:            NewMatchClient(cfg),
		User:             NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Circle.
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
	c.Circle.Use(hooks...)
	c.CollisionEvent.Use(hooks...)
	c.InterviewMission.Use(hooks...)
	c.Match.Use(hooks...)
	c.User.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Circle.Intercept(interceptors...)
	c.CollisionEvent.Intercept(interceptors...)
	c.InterviewMission.Intercept(interceptors...)
	c.Match.Intercept(interceptors...)
	c.User.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CircleMutation:
		return c.Circle.mutate(ctx, m)
	case *CollisionEventMutation:
		return c.CollisionEvent.mutate(ctx, m)
	case *InterviewMissionMutation:
		return c.InterviewMission.mutate(ctx, m)
	case *MatchMutation:
		return c.Match.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CircleClient is a client for the Circle schema.
type CircleClient struct {
	config
}

// NewCircleClient returns a client for the Circle from the given config.
func NewCircleClient(c config) *CircleClient {
	return &CircleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `circle.Hooks(f(g(h())))`.
func (c *CircleClient) Use(hooks ...Hook) {
	c.hooks.Circle = append(c.hooks.Circle, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `circle.Intercept(f(g(h())))`.
func (c *CircleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Circle = append(c.inters.Circle, interceptors...)
}

// Create returns a builder for creating a Circle entity.
func (c *CircleClient) Create() *CircleCreate {
	mutation := newCircleMutation(c.config, OpCreate)
	return &CircleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Circle entities.
func (c *CircleClient) CreateBulk(builders ...*CircleCreate) *CircleCreateBulk {
	return &CircleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CircleClient) MapCreateBulk(slice any, setFunc func(*CircleCreate, int)) *CircleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CircleCreateBulk{err: fmt.Errorf("calling to CircleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CircleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CircleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Circle.
func (c *CircleClient) Update() *CircleUpdate {
	mutation := newCircleMutation(c.config, OpUpdate)
	return &CircleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CircleClient) UpdateOne(_m *Circle) *CircleUpdateOne {
	mutation := newCircleMutation(c.config, OpUpdateOne, withCircle(_m))
	return &CircleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CircleClient) UpdateOneID(id string) *CircleUpdateOne {
	mutation := newCircleMutation(c.config, OpUpdateOne, withCircleID(id))
	return &CircleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Circle.
func (c *CircleClient) Delete() *CircleDelete {
	mutation := newCircleMutation(c.config, OpDelete)
	return &CircleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CircleClient) DeleteOne(_m *Circle) *CircleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CircleClient) DeleteOneID(id string) *CircleDeleteOne {
	builder := c.Delete().Where(circle.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CircleDeleteOne{builder}
}

// Query returns a query builder for Circle.
func (c *CircleClient) Query() *CircleQuery {
	return &CircleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCircle},
		inters: c.Interceptors(),
	}
}

// Get returns a Circle entity by its id.
func (c *CircleClient) Get(ctx context.Context, id string) (*Circle, error) {
	return c.Query().Where(circle.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CircleClient) GetX(ctx context.Context, id string) *Circle {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a Circle.
func (c *CircleClient) QueryOwner(_m *Circle) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(circle.Table, circle.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, circle.OwnerTable, circle.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CircleClient) Hooks() []Hook {
	return c.hooks.Circle
}

// Interceptors returns the client interceptors.
func (c *CircleClient) Interceptors() []Interceptor {
	return c.inters.Circle
}

func (c *CircleClient) mutate(ctx context.Context, m *CircleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CircleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CircleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CircleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CircleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Circle mutation op: %q", m.Op())
	}
}

// CollisionEventClient is a client for the CollisionEvent schema.
type CollisionEventClient struct {
	config
}

// NewCollisionEventClient returns a client for the CollisionEvent from the given config.
func NewCollisionEventClient(c config) *CollisionEventClient {
	return &CollisionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `collisionevent.Hooks(f(g(h())))`.
func (c *CollisionEventClient) Use(hooks ...Hook) {
	c.hooks.CollisionEvent = append(c.hooks.CollisionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `collisionevent.Intercept(f(g(h())))`.
func (c *CollisionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.CollisionEvent = append(c.inters.CollisionEvent, interceptors...)
}

// Create returns a builder for creating a CollisionEvent entity.
func (c *CollisionEventClient) Create() *CollisionEventCreate {
	mutation := newCollisionEventMutation(c.config, OpCreate)
	return &CollisionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CollisionEvent entities.
func (c *CollisionEventClient) CreateBulk(builders ...*CollisionEventCreate) *CollisionEventCreateBulk {
	return &CollisionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CollisionEventClient) MapCreateBulk(slice any, setFunc func(*CollisionEventCreate, int)) *CollisionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CollisionEventCreateBulk{err: fmt.Errorf("calling to CollisionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CollisionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CollisionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CollisionEvent.
func (c *CollisionEventClient) Update() *CollisionEventUpdate {
	mutation := newCollisionEventMutation(c.config, OpUpdate)
	return &CollisionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CollisionEventClient) UpdateOne(_m *CollisionEvent) *CollisionEventUpdateOne {
	mutation := newCollisionEventMutation(c.config, OpUpdateOne, withCollisionEvent(_m))
	return &CollisionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CollisionEventClient) UpdateOneID(id string) *CollisionEventUpdateOne {
	mutation := newCollisionEventMutation(c.config, OpUpdateOne, withCollisionEventID(id))
	return &CollisionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CollisionEvent.
func (c *CollisionEventClient) Delete() *CollisionEventDelete {
	mutation := newCollisionEventMutation(c.config, OpDelete)
	return &CollisionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CollisionEventClient) DeleteOne(_m *CollisionEvent) *CollisionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CollisionEventClient) DeleteOneID(id string) *CollisionEventDeleteOne {
	builder := c.Delete().Where(collisionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CollisionEventDeleteOne{builder}
}

// Query returns a query builder for CollisionEvent.
func (c *CollisionEventClient) Query() *CollisionEventQuery {
	return &CollisionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCollisionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a CollisionEvent entity by its id.
func (c *CollisionEventClient) Get(ctx context.Context, id string) (*CollisionEvent, error) {
	return c.Query().Where(collisionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CollisionEventClient) GetX(ctx context.Context, id string) *CollisionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMissions queries the missions edge of a CollisionEvent.
func (c *CollisionEventClient) QueryMissions(_m *CollisionEvent) *InterviewMissionQuery {
	query := (&InterviewMissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(collisionevent.Table, collisionevent.FieldID, id),
			sqlgraph.To(interviewmission.Table, interviewmission.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, collisionevent.MissionsTable, collisionevent.MissionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CollisionEventClient) Hooks() []Hook {
	return c.hooks.CollisionEvent
}

// Interceptors returns the client interceptors.
func (c *CollisionEventClient) Interceptors() []Interceptor {
	return c.inters.CollisionEvent
}

func (c *CollisionEventClient) mutate(ctx context.Context, m *CollisionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CollisionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CollisionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CollisionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CollisionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CollisionEvent mutation op: %q", m.Op())
	}
}

// InterviewMissionClient is a client for the InterviewMission schema.
type InterviewMissionClient struct {
	config
}

// NewInterviewMissionClient returns a client for the InterviewMission from the given config.
func NewInterviewMissionClient(c config) *InterviewMissionClient {
	return &InterviewMissionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interviewmission.Hooks(f(g(h())))`.
func (c *InterviewMissionClient) Use(hooks ...Hook) {
	c.hooks.InterviewMission = append(c.hooks.InterviewMission, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interviewmission.Intercept(f(g(h())))`.
func (c *InterviewMissionClient) Intercept(interceptors ...Interceptor) {
	c.inters.InterviewMission = append(c.inters.InterviewMission, interceptors...)
}

// Create returns a builder for creating a InterviewMission entity.
func (c *InterviewMissionClient) Create() *InterviewMissionCreate {
	mutation := newInterviewMissionMutation(c.config, OpCreate)
	return &InterviewMissionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InterviewMission entities.
func (c *InterviewMissionClient) CreateBulk(builders ...*InterviewMissionCreate) *InterviewMissionCreateBulk {
	return &InterviewMissionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InterviewMissionClient) MapCreateBulk(slice any, setFunc func(*InterviewMissionCreate, int)) *InterviewMissionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InterviewMissionCreateBulk{err: fmt.Errorf("calling to InterviewMissionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InterviewMissionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InterviewMissionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InterviewMission.
func (c *InterviewMissionClient) Update() *InterviewMissionUpdate {
	mutation := newInterviewMissionMutation(c.config, OpUpdate)
	return &InterviewMissionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InterviewMissionClient) UpdateOne(_m *InterviewMission) *InterviewMissionUpdateOne {
	mutation := newInterviewMissionMutation(c.config, OpUpdateOne, withInterviewMission(_m))
	return &InterviewMissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InterviewMissionClient) UpdateOneID(id string) *InterviewMissionUpdateOne {
	mutation := newInterviewMissionMutation(c.config, OpUpdateOne, withInterviewMissionID(id))
	return &InterviewMissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InterviewMission.
func (c *InterviewMissionClient) Delete() *InterviewMissionDelete {
	mutation := newInterviewMissionMutation(c.config, OpDelete)
	return &InterviewMissionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InterviewMissionClient) DeleteOne(_m *InterviewMission) *InterviewMissionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InterviewMissionClient) DeleteOneID(id string) *InterviewMissionDeleteOne {
	builder := c.Delete().Where(interviewmission.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InterviewMissionDeleteOne{builder}
}

// Query returns a query builder for InterviewMission.
func (c *InterviewMissionClient) Query() *InterviewMissionQuery {
	return &InterviewMissionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInterviewMission},
		inters: c.Interceptors(),
	}
}

// Get returns a InterviewMission entity by its id.
func (c *InterviewMissionClient) Get(ctx context.Context, id string) (*InterviewMission, error) {
	return c.Query().Where(interviewmission.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InterviewMissionClient) GetX(ctx context.Context, id string) *InterviewMission {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCollisionEvent queries the collision_event edge of a InterviewMission.
func (c *InterviewMissionClient) QueryCollisionEvent(_m *InterviewMission) *CollisionEventQuery {
	query := (&CollisionEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(interviewmission.Table, interviewmission.FieldID, id),
			sqlgraph.To(collisionevent.Table, collisionevent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, interviewmission.CollisionEventTable, interviewmission.CollisionEventColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMatch queries the match edge of a InterviewMission.
func (c *InterviewMissionClient) QueryMatch(_m *InterviewMission) *MatchQuery {
	query := (&MatchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(interviewmission.Table, interviewmission.FieldID, id),
			sqlgraph.To(match.Table, match.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, interviewmission.MatchTable, interviewmission.MatchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InterviewMissionClient) Hooks() []Hook {
	return c.hooks.InterviewMission
}

// Interceptors returns the client interceptors.
func (c *InterviewMissionClient) Interceptors() []Interceptor {
	return c.inters.InterviewMission
}

func (c *InterviewMissionClient) mutate(ctx context.Context, m *InterviewMissionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InterviewMissionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InterviewMissionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InterviewMissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InterviewMissionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InterviewMission mutation op: %q", m.Op())
	}
}

// MatchClient is a client for the Match schema.
type MatchClient struct {
	config
}

// NewMatchClient returns a client for the Match from the given config.
func NewMatchClient(c config) *MatchClient {
	return &MatchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `match.Hooks(f(g(h())))`.
func (c *MatchClient) Use(hooks ...Hook) {
	c.hooks.Match = append(c.hooks.Match, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `match.Intercept(f(g(h())))`.
func (c *MatchClient) Intercept(interceptors ...Interceptor) {
	c.inters.Match = append(c.inters.Match, interceptors...)
}

// Create returns a builder for creating a Match entity.
func (c *MatchClient) Create() *MatchCreate {
	mutation := newMatchMutation(c.config, OpCreate)
	return &MatchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Match entities.
func (c *MatchClient) CreateBulk(builders ...*MatchCreate) *MatchCreateBulk {
	return &MatchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MatchClient) MapCreateBulk(slice any, setFunc func(*MatchCreate, int)) *MatchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MatchCreateBulk{err: fmt.Errorf("calling to MatchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MatchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MatchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Match.
func (c *MatchClient) Update() *MatchUpdate {
	mutation := newMatchMutation(c.config, OpUpdate)
	return &MatchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MatchClient) UpdateOne(_m *Match) *MatchUpdateOne {
	mutation := newMatchMutation(c.config, OpUpdateOne, withMatch(_m))
	return &MatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MatchClient) UpdateOneID(id string) *MatchUpdateOne {
	mutation := newMatchMutation(c.config, OpUpdateOne, withMatchID(id))
	return &MatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Match.
func (c *MatchClient) Delete() *MatchDelete {
	mutation := newMatchMutation(c.config, OpDelete)
	return &MatchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MatchClient) DeleteOne(_m *Match) *MatchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MatchClient) DeleteOneID(id string) *MatchDeleteOne {
	builder := c.Delete().Where(match.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MatchDeleteOne{builder}
}

// Query returns a query builder for Match.
func (c *MatchClient) Query() *MatchQuery {
	return &MatchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMatch},
		inters: c.Interceptors(),
	}
}

// Get returns a Match entity by its id.
func (c *MatchClient) Get(ctx context.Context, id string) (*Match, error) {
	return c.Query().Where(match.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MatchClient) GetX(ctx context.Context, id string) *Match {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMission queries the mission edge of a Match.
func (c *MatchClient) QueryMission(_m *Match) *InterviewMissionQuery {
	query := (&InterviewMissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(match.Table, match.FieldID, id),
			sqlgraph.To(interviewmission.Table, interviewmission.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, match.MissionTable, match.MissionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MatchClient) Hooks() []Hook {
	return c.hooks.Match
}

// Interceptors returns the client interceptors.
func (c *MatchClient) Interceptors() []Interceptor {
	return c.inters.Match
}

func (c *MatchClient) mutate(ctx context.Context, m *MatchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MatchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MatchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MatchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Match mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCircles queries the circles edge of a User.
func (c *UserClient) QueryCircles(_m *User) *CircleQuery {
	query := (&CircleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(circle.Table, circle.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.CirclesTable, user.CirclesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Circle, CollisionEvent, InterviewMission, Match, User []ent.Hook
	}
	inters struct {
		Circle, CollisionEvent, InterviewMission, Match, User []ent.Interceptor
	}
)

// ExecContext allows calling the underlying ExecContext method of the driver if it is supported by it.
// See, database/sql#DB.ExecContext for more information.
func (c *config) ExecContext(ctx context.Context, query string, args ...any) (stdsql.Result, error) {
	ex, ok := c.driver.(interface {
		ExecContext(context.Context, string, ...any) (stdsql.Result, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.ExecContext is not supported")
	}
	return ex.ExecContext(ctx, query, args...)
}

// QueryContext allows calling the underlying QueryContext method of the driver if it is supported by it.
// See, database/sql#DB.QueryContext for more information.
func (c *config) QueryContext(ctx context.Context, query string, args ...any) (*stdsql.Rows, error) {
	q, ok := c.driver.(interface {
		QueryContext(context.Context, string, ...any) (*stdsql.Rows, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.QueryContext is not supported")
	}
	return q.QueryContext(ctx, query, args...)
}

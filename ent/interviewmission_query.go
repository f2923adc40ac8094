// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/venn-social/vennd/ent/collisionevent"
	"github.com/venn-social/vennd/ent/interviewmission"
	"github.com/venn-social/vennd/ent/match"
	"github.com/venn-social/vennd/ent/predicate"
)

// InterviewMissionQuery is the builder for querying InterviewMission entities.
type InterviewMissionQuery struct {
	config
	ctx                *QueryContext
	order              []interviewmission.OrderOption
	inters             []Interceptor
	predicates         []predicate.InterviewMission
	withCollisionEvent *CollisionEventQuery
	withMatch          *MatchQuery
	modifiers          []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the InterviewMissionQuery builder.
func (_q *InterviewMissionQuery) Where(ps ...predicate.InterviewMission) *InterviewMissionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *InterviewMissionQuery) Limit(limit int) *InterviewMissionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *InterviewMissionQuery) Offset(offset int) *InterviewMissionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *InterviewMissionQuery) Unique(unique bool) *InterviewMissionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *InterviewMissionQuery) Order(o ...interviewmission.OrderOption) *InterviewMissionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCollisionEvent chains the current query on the "collision_event" edge.
func (_q *InterviewMissionQuery) QueryCollisionEvent() *CollisionEventQuery {
	query := (&CollisionEventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(interviewmission.Table, interviewmission.FieldID, selector),
			sqlgraph.To(collisionevent.Table, collisionevent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, interviewmission.CollisionEventTable, interviewmission.CollisionEventColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMatch chains the current query on the "match" edge.
func (_q *InterviewMissionQuery) QueryMatch() *MatchQuery {
	query := (&MatchClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(interviewmission.Table, interviewmission.FieldID, selector),
			sqlgraph.To(match.Table, match.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, interviewmission.MatchTable, interviewmission.MatchColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first InterviewMission entity from the query.
// Returns a *NotFoundError when no InterviewMission was found.
func (_q *InterviewMissionQuery) First(ctx context.Context) (*InterviewMission, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{interviewmission.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *InterviewMissionQuery) FirstX(ctx context.Context) *InterviewMission {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first InterviewMission ID from the query.
// Returns a *NotFoundError when no InterviewMission ID was found.
func (_q *InterviewMissionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{interviewmission.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *InterviewMissionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single InterviewMission entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one InterviewMission entity is found.
// Returns a *NotFoundError when no InterviewMission entities are found.
func (_q *InterviewMissionQuery) Only(ctx context.Context) (*InterviewMission, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{interviewmission.Label}
	default:
		return nil, &NotSingularError{interviewmission.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *InterviewMissionQuery) OnlyX(ctx context.Context) *InterviewMission {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only InterviewMission ID in the query.
// Returns a *NotSingularError when more than one InterviewMission ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *InterviewMissionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{interviewmission.Label}
	default:
		err = &NotSingularError{interviewmission.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *InterviewMissionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of InterviewMissions.
func (_q *InterviewMissionQuery) All(ctx context.Context) ([]*InterviewMission, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*InterviewMission, *InterviewMissionQuery]()
	return withInterceptors[[]*InterviewMission](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *InterviewMissionQuery) AllX(ctx context.Context) []*InterviewMission {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of InterviewMission IDs.
func (_q *InterviewMissionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(interviewmission.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *InterviewMissionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *InterviewMissionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*InterviewMissionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *InterviewMissionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *InterviewMissionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *InterviewMissionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the InterviewMissionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *InterviewMissionQuery) Clone() *InterviewMissionQuery {
	if _q == nil {
		return nil
	}
	return &InterviewMissionQuery{
		config:             _q.config,
		ctx:                _q.ctx.Clone(),
		order:              append([]interviewmission.OrderOption{}, _q.order...),
		inters:             append([]Interceptor{}, _q.inters...),
		predicates:         append([]predicate.InterviewMission{}, _q.predicates...),
		withCollisionEvent: _q.withCollisionEvent.Clone(),
		withMatch:          _q.withMatch.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCollisionEvent tells the query-builder to eager-load the nodes that are connected to
// the "collision_event" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InterviewMissionQuery) WithCollisionEvent(opts ...func(*CollisionEventQuery)) *InterviewMissionQuery {
	query := (&CollisionEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCollisionEvent = query
	return _q
}

// WithMatch tells the query-builder to eager-load the nodes that are connected to
// the "match" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InterviewMissionQuery) WithMatch(opts ...func(*MatchQuery)) *InterviewMissionQuery {
	query := (&MatchClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMatch = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CollisionEventID string `json:"collision_event_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.InterviewMission.Query().
//		GroupBy(interviewmission.FieldCollisionEventID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *InterviewMissionQuery) GroupBy(field string, fields ...string) *InterviewMissionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &InterviewMissionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = interviewmission.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CollisionEventID string `json:"collision_event_id,omitempty"`
//	}
//
//	client.InterviewMission.Query().
//		Select(interviewmission.FieldCollisionEventID).
//		Scan(ctx, &v)
func (_q *InterviewMissionQuery) Select(fields ...string) *InterviewMissionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &InterviewMissionSelect{InterviewMissionQuery: _q}
	sbuild.label = interviewmission.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a InterviewMissionSelect configured with the given aggregations.
func (_q *InterviewMissionQuery) Aggregate(fns ...AggregateFunc) *InterviewMissionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *InterviewMissionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !interviewmission.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *InterviewMissionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*InterviewMission, error) {
	var (
		nodes       = []*InterviewMission{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withCollisionEvent != nil,
			_q.withMatch != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*InterviewMission).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &InterviewMission{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withCollisionEvent; query != nil {
		if err := _q.loadCollisionEvent(ctx, query, nodes, nil,
			func(n *InterviewMission, e *CollisionEvent) { n.Edges.CollisionEvent = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMatch; query != nil {
		if err := _q.loadMatch(ctx, query, nodes, nil,
			func(n *InterviewMission, e *Match) { n.Edges.Match = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *InterviewMissionQuery) loadCollisionEvent(ctx context.Context, query *CollisionEventQuery, nodes []*InterviewMission, init func(*InterviewMission), assign func(*InterviewMission, *CollisionEvent)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*InterviewMission)
	for i := range nodes {
		fk := nodes[i].CollisionEventID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(collisionevent.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "collision_event_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *InterviewMissionQuery) loadMatch(ctx context.Context, query *MatchQuery, nodes []*InterviewMission, init func(*InterviewMission), assign func(*InterviewMission, *Match)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*InterviewMission)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(match.FieldMissionID)
	}
	query.Where(predicate.Match(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(interviewmission.MatchColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.MissionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "mission_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *InterviewMissionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *InterviewMissionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(interviewmission.Table, interviewmission.Columns, sqlgraph.NewFieldSpec(interviewmission.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interviewmission.FieldID)
		for i := range fields {
			if fields[i] != interviewmission.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCollisionEvent != nil {
			_spec.Node.AddColumnOnce(interviewmission.FieldCollisionEventID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *InterviewMissionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(interviewmission.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = interviewmission.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *InterviewMissionQuery) ForUpdate(opts ...sql.LockOption) *InterviewMissionQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *InterviewMissionQuery) ForShare(opts ...sql.LockOption) *InterviewMissionQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// InterviewMissionGroupBy is the group-by builder for InterviewMission entities.
type InterviewMissionGroupBy struct {
	selector
	build *InterviewMissionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *InterviewMissionGroupBy) Aggregate(fns ...AggregateFunc) *InterviewMissionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *InterviewMissionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InterviewMissionQuery, *InterviewMissionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *InterviewMissionGroupBy) sqlScan(ctx context.Context, root *InterviewMissionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// InterviewMissionSelect is the builder for selecting fields of InterviewMission entities.
type InterviewMissionSelect struct {
	*InterviewMissionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *InterviewMissionSelect) Aggregate(fns ...AggregateFunc) *InterviewMissionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *InterviewMissionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InterviewMissionQuery, *InterviewMissionSelect](ctx, _s.InterviewMissionQuery, _s, _s.inters, v)
}

func (_s *InterviewMissionSelect) sqlScan(ctx context.Context, root *InterviewMissionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

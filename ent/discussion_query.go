// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/parleyhq/parley/ent/agentperformance"
	"github.com/parleyhq/parley/ent/discussion"
	"github.com/parleyhq/parley/ent/message"
	"github.com/parleyhq/parley/ent/predicate"
)

// DiscussionQuery is the builder for querying Discussion entities.
type DiscussionQuery struct {
	config
	ctx              *QueryContext
	order            []discussion.OrderOption
	inters           []Interceptor
	predicates       []predicate.Discussion
	withMessages     *MessageQuery
	withPerformances *AgentPerformanceQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DiscussionQuery builder.
func (_q *DiscussionQuery) Where(ps ...predicate.Discussion) *DiscussionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DiscussionQuery) Limit(limit int) *DiscussionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DiscussionQuery) Offset(offset int) *DiscussionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DiscussionQuery) Unique(unique bool) *DiscussionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DiscussionQuery) Order(o ...discussion.OrderOption) *DiscussionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryMessages chains the current query on the "messages" edge.
func (_q *DiscussionQuery) QueryMessages() *MessageQuery {
	query := (&MessageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(discussion.Table, discussion.FieldID, selector),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, discussion.MessagesTable, discussion.MessagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPerformances chains the current query on the "performances" edge.
func (_q *DiscussionQuery) QueryPerformances() *AgentPerformanceQuery {
	query := (&AgentPerformanceClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(discussion.Table, discussion.FieldID, selector),
			sqlgraph.To(agentperformance.Table, agentperformance.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, discussion.PerformancesTable, discussion.PerformancesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Discussion entity from the query.
// Returns a *NotFoundError when no Discussion was found.
func (_q *DiscussionQuery) First(ctx context.Context) (*Discussion, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{discussion.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DiscussionQuery) FirstX(ctx context.Context) *Discussion {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Discussion ID from the query.
// Returns a *NotFoundError when no Discussion ID was found.
func (_q *DiscussionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{discussion.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DiscussionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Discussion entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Discussion entity is found.
// Returns a *NotFoundError when no Discussion entities are found.
func (_q *DiscussionQuery) Only(ctx context.Context) (*Discussion, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{discussion.Label}
	default:
		return nil, &NotSingularError{discussion.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DiscussionQuery) OnlyX(ctx context.Context) *Discussion {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Discussion ID in the query.
// Returns a *NotSingularError when more than one Discussion ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DiscussionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{discussion.Label}
	default:
		err = &NotSingularError{discussion.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DiscussionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Discussions.
func (_q *DiscussionQuery) All(ctx context.Context) ([]*Discussion, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Discussion, *DiscussionQuery]()
	return withInterceptors[[]*Discussion](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DiscussionQuery) AllX(ctx context.Context) []*Discussion {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Discussion IDs.
func (_q *DiscussionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(discussion.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DiscussionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DiscussionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DiscussionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DiscussionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DiscussionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *DiscussionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DiscussionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DiscussionQuery) Clone() *DiscussionQuery {
	if _q == nil {
		return nil
	}
	return &DiscussionQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]discussion.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.Discussion{}, _q.predicates...),
		withMessages:     _q.withMessages.Clone(),
		withPerformances: _q.withPerformances.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithMessages tells the query-builder to eager-load the nodes that are connected to
// the "messages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DiscussionQuery) WithMessages(opts ...func(*MessageQuery)) *DiscussionQuery {
	query := (&MessageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMessages = query
	return _q
}

// WithPerformances tells the query-builder to eager-load the nodes that are connected to
// the "performances" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DiscussionQuery) WithPerformances(opts ...func(*AgentPerformanceQuery)) *DiscussionQuery {
	query := (&AgentPerformanceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPerformances = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Topic string `json:"topic,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Discussion.Query().
//		GroupBy(discussion.FieldTopic).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DiscussionQuery) GroupBy(field string, fields ...string) *DiscussionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DiscussionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = discussion.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Topic string `json:"topic,omitempty"`
//	}
//
//	client.Discussion.Query().
//		Select(discussion.FieldTopic).
//		Scan(ctx, &v)
func (_q *DiscussionQuery) Select(fields ...string) *DiscussionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DiscussionSelect{DiscussionQuery: _q}
	sbuild.label = discussion.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DiscussionSelect configured with the given aggregations.
func (_q *DiscussionQuery) Aggregate(fns ...AggregateFunc) *DiscussionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DiscussionQuery) prepareQuery(ctx context.Context) error {
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
		if !discussion.ValidColumn(f) {
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

func (_q *DiscussionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Discussion, error) {
	var (
		nodes       = []*Discussion{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withMessages != nil,
			_q.withPerformances != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Discussion).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Discussion{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
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
	if query := _q.withMessages; query != nil {
		if err := _q.loadMessages(ctx, query, nodes,
			func(n *Discussion) { n.Edges.Messages = []*Message{} },
			func(n *Discussion, e *Message) { n.Edges.Messages = append(n.Edges.Messages, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPerformances; query != nil {
		if err := _q.loadPerformances(ctx, query, nodes,
			func(n *Discussion) { n.Edges.Performances = []*AgentPerformance{} },
			func(n *Discussion, e *AgentPerformance) { n.Edges.Performances = append(n.Edges.Performances, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DiscussionQuery) loadMessages(ctx context.Context, query *MessageQuery, nodes []*Discussion, init func(*Discussion), assign func(*Discussion, *Message)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Discussion)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(message.FieldDiscussionID)
	}
	query.Where(predicate.Message(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(discussion.MessagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DiscussionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "discussion_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DiscussionQuery) loadPerformances(ctx context.Context, query *AgentPerformanceQuery, nodes []*Discussion, init func(*Discussion), assign func(*Discussion, *AgentPerformance)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Discussion)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(agentperformance.FieldDiscussionID)
	}
	query.Where(predicate.AgentPerformance(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(discussion.PerformancesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DiscussionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "discussion_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DiscussionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DiscussionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(discussion.Table, discussion.Columns, sqlgraph.NewFieldSpec(discussion.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, discussion.FieldID)
		for i := range fields {
			if fields[i] != discussion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *DiscussionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(discussion.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = discussion.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
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

// DiscussionGroupBy is the group-by builder for Discussion entities.
type DiscussionGroupBy struct {
	selector
	build *DiscussionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DiscussionGroupBy) Aggregate(fns ...AggregateFunc) *DiscussionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DiscussionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DiscussionQuery, *DiscussionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DiscussionGroupBy) sqlScan(ctx context.Context, root *DiscussionQuery, v any) error {
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

// DiscussionSelect is the builder for selecting fields of Discussion entities.
type DiscussionSelect struct {
	*DiscussionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DiscussionSelect) Aggregate(fns ...AggregateFunc) *DiscussionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DiscussionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DiscussionQuery, *DiscussionSelect](ctx, _s.DiscussionQuery, _s, _s.inters, v)
}

func (_s *DiscussionSelect) sqlScan(ctx context.Context, root *DiscussionQuery, v any) error {
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

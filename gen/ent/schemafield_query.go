// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mattin-ai/mattin/gen/ent/predicate"
	"github.com/mattin-ai/mattin/gen/ent/schemadefinition"
	"github.com/mattin-ai/mattin/gen/ent/schemafield"
)

// SchemaFieldQuery is the builder for querying SchemaField entities.
type SchemaFieldQuery struct {
	config
	ctx              *QueryContext
	order            []schemafield.OrderOption
	inters           []Interceptor
	predicates       []predicate.SchemaField
	withDefinition   *SchemaDefinitionQuery
	withNestedSchema *SchemaDefinitionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SchemaFieldQuery builder.
func (_q *SchemaFieldQuery) Where(ps ...predicate.SchemaField) *SchemaFieldQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SchemaFieldQuery) Limit(limit int) *SchemaFieldQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SchemaFieldQuery) Offset(offset int) *SchemaFieldQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SchemaFieldQuery) Unique(unique bool) *SchemaFieldQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SchemaFieldQuery) Order(o ...schemafield.OrderOption) *SchemaFieldQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDefinition chains the current query on the "definition" edge.
func (_q *SchemaFieldQuery) QueryDefinition() *SchemaDefinitionQuery {
	query := (&SchemaDefinitionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(schemafield.Table, schemafield.FieldID, selector),
			sqlgraph.To(schemadefinition.Table, schemadefinition.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, schemafield.DefinitionTable, schemafield.DefinitionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryNestedSchema chains the current query on the "nested_schema" edge.
func (_q *SchemaFieldQuery) QueryNestedSchema() *SchemaDefinitionQuery {
	query := (&SchemaDefinitionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(schemafield.Table, schemafield.FieldID, selector),
			sqlgraph.To(schemadefinition.Table, schemadefinition.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, schemafield.NestedSchemaTable, schemafield.NestedSchemaColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first SchemaField entity from the query.
// Returns a *NotFoundError when no SchemaField was found.
func (_q *SchemaFieldQuery) First(ctx context.Context) (*SchemaField, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{schemafield.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SchemaFieldQuery) FirstX(ctx context.Context) *SchemaField {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SchemaField ID from the query.
// Returns a *NotFoundError when no SchemaField ID was found.
func (_q *SchemaFieldQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{schemafield.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SchemaFieldQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SchemaField entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SchemaField entity is found.
// Returns a *NotFoundError when no SchemaField entities are found.
func (_q *SchemaFieldQuery) Only(ctx context.Context) (*SchemaField, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{schemafield.Label}
	default:
		return nil, &NotSingularError{schemafield.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SchemaFieldQuery) OnlyX(ctx context.Context) *SchemaField {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SchemaField ID in the query.
// Returns a *NotSingularError when more than one SchemaField ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SchemaFieldQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{schemafield.Label}
	default:
		err = &NotSingularError{schemafield.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SchemaFieldQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SchemaFields.
func (_q *SchemaFieldQuery) All(ctx context.Context) ([]*SchemaField, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SchemaField, *SchemaFieldQuery]()
	return withInterceptors[[]*SchemaField](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SchemaFieldQuery) AllX(ctx context.Context) []*SchemaField {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SchemaField IDs.
func (_q *SchemaFieldQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(schemafield.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SchemaFieldQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SchemaFieldQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SchemaFieldQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SchemaFieldQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SchemaFieldQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *SchemaFieldQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SchemaFieldQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SchemaFieldQuery) Clone() *SchemaFieldQuery {
	if _q == nil {
		return nil
	}
	return &SchemaFieldQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]schemafield.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.SchemaField{}, _q.predicates...),
		withDefinition:   _q.withDefinition.Clone(),
		withNestedSchema: _q.withNestedSchema.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDefinition tells the query-builder to eager-load the nodes that are connected to
// the "definition" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SchemaFieldQuery) WithDefinition(opts ...func(*SchemaDefinitionQuery)) *SchemaFieldQuery {
	query := (&SchemaDefinitionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDefinition = query
	return _q
}

// WithNestedSchema tells the query-builder to eager-load the nodes that are connected to
// the "nested_schema" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SchemaFieldQuery) WithNestedSchema(opts ...func(*SchemaDefinitionQuery)) *SchemaFieldQuery {
	query := (&SchemaDefinitionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withNestedSchema = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		DefinitionID int `json:"definition_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SchemaField.Query().
//		GroupBy(schemafield.FieldDefinitionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SchemaFieldQuery) GroupBy(field string, fields ...string) *SchemaFieldGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SchemaFieldGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = schemafield.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		DefinitionID int `json:"definition_id,omitempty"`
//	}
//
//	client.SchemaField.Query().
//		Select(schemafield.FieldDefinitionID).
//		Scan(ctx, &v)
func (_q *SchemaFieldQuery) Select(fields ...string) *SchemaFieldSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SchemaFieldSelect{SchemaFieldQuery: _q}
	sbuild.label = schemafield.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SchemaFieldSelect configured with the given aggregations.
func (_q *SchemaFieldQuery) Aggregate(fns ...AggregateFunc) *SchemaFieldSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SchemaFieldQuery) prepareQuery(ctx context.Context) error {
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
		if !schemafield.ValidColumn(f) {
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

func (_q *SchemaFieldQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SchemaField, error) {
	var (
		nodes       = []*SchemaField{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withDefinition != nil,
			_q.withNestedSchema != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SchemaField).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SchemaField{config: _q.config}
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
	if query := _q.withDefinition; query != nil {
		if err := _q.loadDefinition(ctx, query, nodes, nil,
			func(n *SchemaField, e *SchemaDefinition) { n.Edges.Definition = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withNestedSchema; query != nil {
		if err := _q.loadNestedSchema(ctx, query, nodes, nil,
			func(n *SchemaField, e *SchemaDefinition) { n.Edges.NestedSchema = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SchemaFieldQuery) loadDefinition(ctx context.Context, query *SchemaDefinitionQuery, nodes []*SchemaField, init func(*SchemaField), assign func(*SchemaField, *SchemaDefinition)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*SchemaField)
	for i := range nodes {
		fk := nodes[i].DefinitionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(schemadefinition.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "definition_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *SchemaFieldQuery) loadNestedSchema(ctx context.Context, query *SchemaDefinitionQuery, nodes []*SchemaField, init func(*SchemaField), assign func(*SchemaField, *SchemaDefinition)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*SchemaField)
	for i := range nodes {
		if nodes[i].NestedSchemaID == nil {
			continue
		}
		fk := *nodes[i].NestedSchemaID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(schemadefinition.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "nested_schema_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *SchemaFieldQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SchemaFieldQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(schemafield.Table, schemafield.Columns, sqlgraph.NewFieldSpec(schemafield.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schemafield.FieldID)
		for i := range fields {
			if fields[i] != schemafield.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withDefinition != nil {
			_spec.Node.AddColumnOnce(schemafield.FieldDefinitionID)
		}
		if _q.withNestedSchema != nil {
			_spec.Node.AddColumnOnce(schemafield.FieldNestedSchemaID)
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

func (_q *SchemaFieldQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(schemafield.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = schemafield.Columns
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

// SchemaFieldGroupBy is the group-by builder for SchemaField entities.
type SchemaFieldGroupBy struct {
	selector
	build *SchemaFieldQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SchemaFieldGroupBy) Aggregate(fns ...AggregateFunc) *SchemaFieldGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SchemaFieldGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SchemaFieldQuery, *SchemaFieldGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SchemaFieldGroupBy) sqlScan(ctx context.Context, root *SchemaFieldQuery, v any) error {
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

// SchemaFieldSelect is the builder for selecting fields of SchemaField entities.
type SchemaFieldSelect struct {
	*SchemaFieldQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SchemaFieldSelect) Aggregate(fns ...AggregateFunc) *SchemaFieldSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SchemaFieldSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SchemaFieldQuery, *SchemaFieldSelect](ctx, _s.SchemaFieldQuery, _s, _s.inters, v)
}

func (_s *SchemaFieldSelect) sqlScan(ctx context.Context, root *SchemaFieldQuery, v any) error {
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

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"NovedadesAPI/ent/article"
	"NovedadesAPI/ent/law"
	"NovedadesAPI/ent/legalreference"
	"NovedadesAPI/ent/predicate"
	"NovedadesAPI/ent/report"
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// LegalReferenceQuery is the builder for querying LegalReference entities.
type LegalReferenceQuery struct {
	config
	ctx          *QueryContext
	order        []legalreference.OrderOption
	inters       []Interceptor
	predicates   []predicate.LegalReference
	withReport   *ReportQuery
	withLey      *LawQuery
	withArticulo *ArticleQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LegalReferenceQuery builder.
func (_q *LegalReferenceQuery) Where(ps ...predicate.LegalReference) *LegalReferenceQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *LegalReferenceQuery) Limit(limit int) *LegalReferenceQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *LegalReferenceQuery) Offset(offset int) *LegalReferenceQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *LegalReferenceQuery) Unique(unique bool) *LegalReferenceQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *LegalReferenceQuery) Order(o ...legalreference.OrderOption) *LegalReferenceQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryReport chains the current query on the "report" edge.
func (_q *LegalReferenceQuery) QueryReport() *ReportQuery {
	query := (&ReportClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(legalreference.Table, legalreference.FieldID, selector),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, legalreference.ReportTable, legalreference.ReportColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLey chains the current query on the "ley" edge.
func (_q *LegalReferenceQuery) QueryLey() *LawQuery {
	query := (&LawClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(legalreference.Table, legalreference.FieldID, selector),
			sqlgraph.To(law.Table, law.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, legalreference.LeyTable, legalreference.LeyColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryArticulo chains the current query on the "articulo" edge.
func (_q *LegalReferenceQuery) QueryArticulo() *ArticleQuery {
	query := (&ArticleClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(legalreference.Table, legalreference.FieldID, selector),
			sqlgraph.To(article.Table, article.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, legalreference.ArticuloTable, legalreference.ArticuloColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first LegalReference entity from the query.
// Returns a *NotFoundError when no LegalReference was found.
func (_q *LegalReferenceQuery) First(ctx context.Context) (*LegalReference, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{legalreference.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *LegalReferenceQuery) FirstX(ctx context.Context) *LegalReference {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first LegalReference ID from the query.
// Returns a *NotFoundError when no LegalReference ID was found.
func (_q *LegalReferenceQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{legalreference.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *LegalReferenceQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single LegalReference entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one LegalReference entity is found.
// Returns a *NotFoundError when no LegalReference entities are found.
func (_q *LegalReferenceQuery) Only(ctx context.Context) (*LegalReference, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{legalreference.Label}
	default:
		return nil, &NotSingularError{legalreference.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *LegalReferenceQuery) OnlyX(ctx context.Context) *LegalReference {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only LegalReference ID in the query.
// Returns a *NotSingularError when more than one LegalReference ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *LegalReferenceQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{legalreference.Label}
	default:
		err = &NotSingularError{legalreference.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *LegalReferenceQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of LegalReferences.
func (_q *LegalReferenceQuery) All(ctx context.Context) ([]*LegalReference, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*LegalReference, *LegalReferenceQuery]()
	return withInterceptors[[]*LegalReference](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *LegalReferenceQuery) AllX(ctx context.Context) []*LegalReference {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of LegalReference IDs.
func (_q *LegalReferenceQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(legalreference.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *LegalReferenceQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *LegalReferenceQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*LegalReferenceQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *LegalReferenceQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *LegalReferenceQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *LegalReferenceQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LegalReferenceQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *LegalReferenceQuery) Clone() *LegalReferenceQuery {
	if _q == nil {
		return nil
	}
	return &LegalReferenceQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]legalreference.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.LegalReference{}, _q.predicates...),
		withReport:   _q.withReport.Clone(),
		withLey:      _q.withLey.Clone(),
		withArticulo: _q.withArticulo.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithReport tells the query-builder to eager-load the nodes that are connected to
// the "report" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LegalReferenceQuery) WithReport(opts ...func(*ReportQuery)) *LegalReferenceQuery {
	query := (&ReportClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withReport = query
	return _q
}

// WithLey tells the query-builder to eager-load the nodes that are connected to
// the "ley" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LegalReferenceQuery) WithLey(opts ...func(*LawQuery)) *LegalReferenceQuery {
	query := (&LawClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLey = query
	return _q
}

// WithArticulo tells the query-builder to eager-load the nodes that are connected to
// the "articulo" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LegalReferenceQuery) WithArticulo(opts ...func(*ArticleQuery)) *LegalReferenceQuery {
	query := (&ArticleClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withArticulo = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.LegalReference.Query().
//		GroupBy(legalreference.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *LegalReferenceQuery) GroupBy(field string, fields ...string) *LegalReferenceGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LegalReferenceGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = legalreference.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.LegalReference.Query().
//		Select(legalreference.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *LegalReferenceQuery) Select(fields ...string) *LegalReferenceSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &LegalReferenceSelect{LegalReferenceQuery: _q}
	sbuild.label = legalreference.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LegalReferenceSelect configured with the given aggregations.
func (_q *LegalReferenceQuery) Aggregate(fns ...AggregateFunc) *LegalReferenceSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *LegalReferenceQuery) prepareQuery(ctx context.Context) error {
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
		if !legalreference.ValidColumn(f) {
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

func (_q *LegalReferenceQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*LegalReference, error) {
	var (
		nodes       = []*LegalReference{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withReport != nil,
			_q.withLey != nil,
			_q.withArticulo != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*LegalReference).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &LegalReference{config: _q.config}
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
	if query := _q.withReport; query != nil {
		if err := _q.loadReport(ctx, query, nodes, nil,
			func(n *LegalReference, e *Report) { n.Edges.Report = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLey; query != nil {
		if err := _q.loadLey(ctx, query, nodes, nil,
			func(n *LegalReference, e *Law) { n.Edges.Ley = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withArticulo; query != nil {
		if err := _q.loadArticulo(ctx, query, nodes, nil,
			func(n *LegalReference, e *Article) { n.Edges.Articulo = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *LegalReferenceQuery) loadReport(ctx context.Context, query *ReportQuery, nodes []*LegalReference, init func(*LegalReference), assign func(*LegalReference, *Report)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*LegalReference)
	for i := range nodes {
		fk := nodes[i].ReportID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(report.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "report_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *LegalReferenceQuery) loadLey(ctx context.Context, query *LawQuery, nodes []*LegalReference, init func(*LegalReference), assign func(*LegalReference, *Law)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*LegalReference)
	for i := range nodes {
		fk := nodes[i].LeyID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(law.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "ley_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *LegalReferenceQuery) loadArticulo(ctx context.Context, query *ArticleQuery, nodes []*LegalReference, init func(*LegalReference), assign func(*LegalReference, *Article)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*LegalReference)
	for i := range nodes {
		if nodes[i].ArticuloID == nil {
			continue
		}
		fk := *nodes[i].ArticuloID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(article.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "articulo_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *LegalReferenceQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *LegalReferenceQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(legalreference.Table, legalreference.Columns, sqlgraph.NewFieldSpec(legalreference.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, legalreference.FieldID)
		for i := range fields {
			if fields[i] != legalreference.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withReport != nil {
			_spec.Node.AddColumnOnce(legalreference.FieldReportID)
		}
		if _q.withLey != nil {
			_spec.Node.AddColumnOnce(legalreference.FieldLeyID)
		}
		if _q.withArticulo != nil {
			_spec.Node.AddColumnOnce(legalreference.FieldArticuloID)
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

func (_q *LegalReferenceQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(legalreference.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = legalreference.Columns
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

// LegalReferenceGroupBy is the group-by builder for LegalReference entities.
type LegalReferenceGroupBy struct {
	selector
	build *LegalReferenceQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *LegalReferenceGroupBy) Aggregate(fns ...AggregateFunc) *LegalReferenceGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *LegalReferenceGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LegalReferenceQuery, *LegalReferenceGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *LegalReferenceGroupBy) sqlScan(ctx context.Context, root *LegalReferenceQuery, v any) error {
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

// LegalReferenceSelect is the builder for selecting fields of LegalReference entities.
type LegalReferenceSelect struct {
	*LegalReferenceQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *LegalReferenceSelect) Aggregate(fns ...AggregateFunc) *LegalReferenceSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *LegalReferenceSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LegalReferenceQuery, *LegalReferenceSelect](ctx, _s.LegalReferenceQuery, _s, _s.inters, v)
}

func (_s *LegalReferenceSelect) sqlScan(ctx context.Context, root *LegalReferenceQuery, v any) error {
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

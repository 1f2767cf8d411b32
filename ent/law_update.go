// Code generated by ent, DO NOT EDIT.

package ent

import (
	"NovedadesAPI/ent/article"
	"NovedadesAPI/ent/law"
	"NovedadesAPI/ent/predicate"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// LawUpdate is the builder for updating Law entities.
type LawUpdate struct {
	config
	hooks    []Hook
	mutation *LawMutation
}

// Where appends a list predicates to the LawUpdate builder.
func (_u *LawUpdate) Where(ps ...predicate.Law) *LawUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LawUpdate) SetUpdatedAt(v time.Time) *LawUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNombre sets the "nombre" field.
func (_u *LawUpdate) SetNombre(v string) *LawUpdate {
	_u.mutation.SetNombre(v)
	return _u
}

// SetNillableNombre sets the "nombre" field if the given value is not nil.
func (_u *LawUpdate) SetNillableNombre(v *string) *LawUpdate {
	if v != nil {
		_u.SetNombre(*v)
	}
	return _u
}

// SetDescripcion sets the "descripcion" field.
func (_u *LawUpdate) SetDescripcion(v string) *LawUpdate {
	_u.mutation.SetDescripcion(v)
	return _u
}

// SetNillableDescripcion sets the "descripcion" field if the given value is not nil.
func (_u *LawUpdate) SetNillableDescripcion(v *string) *LawUpdate {
	if v != nil {
		_u.SetDescripcion(*v)
	}
	return _u
}

// ClearDescripcion clears the value of the "descripcion" field.
func (_u *LawUpdate) ClearDescripcion() *LawUpdate {
	_u.mutation.ClearDescripcion()
	return _u
}

// AddArticuloIDs adds the "articulos" edge to the Article entity by IDs.
func (_u *LawUpdate) AddArticuloIDs(ids ...uuid.UUID) *LawUpdate {
	_u.mutation.AddArticuloIDs(ids...)
	return _u
}

// AddArticulos adds the "articulos" edges to the Article entity.
func (_u *LawUpdate) AddArticulos(v ...*Article) *LawUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArticuloIDs(ids...)
}

// Mutation returns the LawMutation object of the builder.
func (_u *LawUpdate) Mutation() *LawMutation {
	return _u.mutation
}

// ClearArticulos clears all "articulos" edges to the Article entity.
func (_u *LawUpdate) ClearArticulos() *LawUpdate {
	_u.mutation.ClearArticulos()
	return _u
}

// RemoveArticuloIDs removes the "articulos" edge to Article entities by IDs.
func (_u *LawUpdate) RemoveArticuloIDs(ids ...uuid.UUID) *LawUpdate {
	_u.mutation.RemoveArticuloIDs(ids...)
	return _u
}

// RemoveArticulos removes "articulos" edges to Article entities.
func (_u *LawUpdate) RemoveArticulos(v ...*Article) *LawUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArticuloIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LawUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LawUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LawUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LawUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LawUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := law.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LawUpdate) check() error {
	if v, ok := _u.mutation.Nombre(); ok {
		if err := law.NombreValidator(v); err != nil {
			return &ValidationError{Name: "nombre", err: fmt.Errorf(`ent: validator failed for field "Law.nombre": %w`, err)}
		}
	}
	return nil
}

func (_u *LawUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(law.Table, law.Columns, sqlgraph.NewFieldSpec(law.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(law.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Nombre(); ok {
		_spec.SetField(law.FieldNombre, field.TypeString, value)
	}
	if value, ok := _u.mutation.Descripcion(); ok {
		_spec.SetField(law.FieldDescripcion, field.TypeString, value)
	}
	if _u.mutation.DescripcionCleared() {
		_spec.ClearField(law.FieldDescripcion, field.TypeString)
	}
	if _u.mutation.ArticulosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   law.ArticulosTable,
			Columns: []string{law.ArticulosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(article.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArticulosIDs(); len(nodes) > 0 && !_u.mutation.ArticulosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   law.ArticulosTable,
			Columns: []string{law.ArticulosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(article.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArticulosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   law.ArticulosTable,
			Columns: []string{law.ArticulosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(article.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{law.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LawUpdateOne is the builder for updating a single Law entity.
type LawUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LawMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LawUpdateOne) SetUpdatedAt(v time.Time) *LawUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNombre sets the "nombre" field.
func (_u *LawUpdateOne) SetNombre(v string) *LawUpdateOne {
	_u.mutation.SetNombre(v)
	return _u
}

// SetNillableNombre sets the "nombre" field if the given value is not nil.
func (_u *LawUpdateOne) SetNillableNombre(v *string) *LawUpdateOne {
	if v != nil {
		_u.SetNombre(*v)
	}
	return _u
}

// SetDescripcion sets the "descripcion" field.
func (_u *LawUpdateOne) SetDescripcion(v string) *LawUpdateOne {
	_u.mutation.SetDescripcion(v)
	return _u
}

// SetNillableDescripcion sets the "descripcion" field if the given value is not nil.
func (_u *LawUpdateOne) SetNillableDescripcion(v *string) *LawUpdateOne {
	if v != nil {
		_u.SetDescripcion(*v)
	}
	return _u
}

// ClearDescripcion clears the value of the "descripcion" field.
func (_u *LawUpdateOne) ClearDescripcion() *LawUpdateOne {
	_u.mutation.ClearDescripcion()
	return _u
}

// AddArticuloIDs adds the "articulos" edge to the Article entity by IDs.
func (_u *LawUpdateOne) AddArticuloIDs(ids ...uuid.UUID) *LawUpdateOne {
	_u.mutation.AddArticuloIDs(ids...)
	return _u
}

// AddArticulos adds the "articulos" edges to the Article entity.
func (_u *LawUpdateOne) AddArticulos(v ...*Article) *LawUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArticuloIDs(ids...)
}

// Mutation returns the LawMutation object of the builder.
func (_u *LawUpdateOne) Mutation() *LawMutation {
	return _u.mutation
}

// ClearArticulos clears all "articulos" edges to the Article entity.
func (_u *LawUpdateOne) ClearArticulos() *LawUpdateOne {
	_u.mutation.ClearArticulos()
	return _u
}

// RemoveArticuloIDs removes the "articulos" edge to Article entities by IDs.
func (_u *LawUpdateOne) RemoveArticuloIDs(ids ...uuid.UUID) *LawUpdateOne {
	_u.mutation.RemoveArticuloIDs(ids...)
	return _u
}

// RemoveArticulos removes "articulos" edges to Article entities.
func (_u *LawUpdateOne) RemoveArticulos(v ...*Article) *LawUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArticuloIDs(ids...)
}

// Where appends a list predicates to the LawUpdate builder.
func (_u *LawUpdateOne) Where(ps ...predicate.Law) *LawUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LawUpdateOne) Select(field string, fields ...string) *LawUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Law entity.
func (_u *LawUpdateOne) Save(ctx context.Context) (*Law, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LawUpdateOne) SaveX(ctx context.Context) *Law {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LawUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LawUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LawUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := law.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LawUpdateOne) check() error {
	if v, ok := _u.mutation.Nombre(); ok {
		if err := law.NombreValidator(v); err != nil {
			return &ValidationError{Name: "nombre", err: fmt.Errorf(`ent: validator failed for field "Law.nombre": %w`, err)}
		}
	}
	return nil
}

func (_u *LawUpdateOne) sqlSave(ctx context.Context) (_node *Law, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(law.Table, law.Columns, sqlgraph.NewFieldSpec(law.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Law.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, law.FieldID)
		for _, f := range fields {
			if !law.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != law.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(law.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Nombre(); ok {
		_spec.SetField(law.FieldNombre, field.TypeString, value)
	}
	if value, ok := _u.mutation.Descripcion(); ok {
		_spec.SetField(law.FieldDescripcion, field.TypeString, value)
	}
	if _u.mutation.DescripcionCleared() {
		_spec.ClearField(law.FieldDescripcion, field.TypeString)
	}
	if _u.mutation.ArticulosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   law.ArticulosTable,
			Columns: []string{law.ArticulosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(article.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArticulosIDs(); len(nodes) > 0 && !_u.mutation.ArticulosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   law.ArticulosTable,
			Columns: []string{law.ArticulosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(article.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArticulosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   law.ArticulosTable,
			Columns: []string{law.ArticulosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(article.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Law{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{law.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

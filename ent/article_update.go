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

// ArticleUpdate is the builder for updating Article entities.
type ArticleUpdate struct {
	config
	hooks    []Hook
	mutation *ArticleMutation
}

// Where appends a list predicates to the ArticleUpdate builder.
func (_u *ArticleUpdate) Where(ps ...predicate.Article) *ArticleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ArticleUpdate) SetUpdatedAt(v time.Time) *ArticleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLeyID sets the "ley_id" field.
func (_u *ArticleUpdate) SetLeyID(v uuid.UUID) *ArticleUpdate {
	_u.mutation.SetLeyID(v)
	return _u
}

// SetNillableLeyID sets the "ley_id" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableLeyID(v *uuid.UUID) *ArticleUpdate {
	if v != nil {
		_u.SetLeyID(*v)
	}
	return _u
}

// SetNumero sets the "numero" field.
func (_u *ArticleUpdate) SetNumero(v string) *ArticleUpdate {
	_u.mutation.SetNumero(v)
	return _u
}

// SetNillableNumero sets the "numero" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableNumero(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetNumero(*v)
	}
	return _u
}

// SetContenido sets the "contenido" field.
func (_u *ArticleUpdate) SetContenido(v string) *ArticleUpdate {
	_u.mutation.SetContenido(v)
	return _u
}

// SetNillableContenido sets the "contenido" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableContenido(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetContenido(*v)
	}
	return _u
}

// ClearContenido clears the value of the "contenido" field.
func (_u *ArticleUpdate) ClearContenido() *ArticleUpdate {
	_u.mutation.ClearContenido()
	return _u
}

// SetLey sets the "ley" edge to the Law entity.
func (_u *ArticleUpdate) SetLey(v *Law) *ArticleUpdate {
	return _u.SetLeyID(v.ID)
}

// Mutation returns the ArticleMutation object of the builder.
func (_u *ArticleUpdate) Mutation() *ArticleMutation {
	return _u.mutation
}

// ClearLey clears the "ley" edge to the Law entity.
func (_u *ArticleUpdate) ClearLey() *ArticleUpdate {
	_u.mutation.ClearLey()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArticleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArticleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArticleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArticleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ArticleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := article.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArticleUpdate) check() error {
	if v, ok := _u.mutation.Numero(); ok {
		if err := article.NumeroValidator(v); err != nil {
			return &ValidationError{Name: "numero", err: fmt.Errorf(`ent: validator failed for field "Article.numero": %w`, err)}
		}
	}
	if _u.mutation.LeyCleared() && len(_u.mutation.LeyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Article.ley"`)
	}
	return nil
}

func (_u *ArticleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(article.Table, article.Columns, sqlgraph.NewFieldSpec(article.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(article.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Numero(); ok {
		_spec.SetField(article.FieldNumero, field.TypeString, value)
	}
	if value, ok := _u.mutation.Contenido(); ok {
		_spec.SetField(article.FieldContenido, field.TypeString, value)
	}
	if _u.mutation.ContenidoCleared() {
		_spec.ClearField(article.FieldContenido, field.TypeString)
	}
	if _u.mutation.LeyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   article.LeyTable,
			Columns: []string{article.LeyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(law.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   article.LeyTable,
			Columns: []string{article.LeyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(law.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{article.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArticleUpdateOne is the builder for updating a single Article entity.
type ArticleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArticleMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ArticleUpdateOne) SetUpdatedAt(v time.Time) *ArticleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLeyID sets the "ley_id" field.
func (_u *ArticleUpdateOne) SetLeyID(v uuid.UUID) *ArticleUpdateOne {
	_u.mutation.SetLeyID(v)
	return _u
}

// SetNillableLeyID sets the "ley_id" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableLeyID(v *uuid.UUID) *ArticleUpdateOne {
	if v != nil {
		_u.SetLeyID(*v)
	}
	return _u
}

// SetNumero sets the "numero" field.
func (_u *ArticleUpdateOne) SetNumero(v string) *ArticleUpdateOne {
	_u.mutation.SetNumero(v)
	return _u
}

// SetNillableNumero sets the "numero" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableNumero(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetNumero(*v)
	}
	return _u
}

// SetContenido sets the "contenido" field.
func (_u *ArticleUpdateOne) SetContenido(v string) *ArticleUpdateOne {
	_u.mutation.SetContenido(v)
	return _u
}

// SetNillableContenido sets the "contenido" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableContenido(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetContenido(*v)
	}
	return _u
}

// ClearContenido clears the value of the "contenido" field.
func (_u *ArticleUpdateOne) ClearContenido() *ArticleUpdateOne {
	_u.mutation.ClearContenido()
	return _u
}

// SetLey sets the "ley" edge to the Law entity.
func (_u *ArticleUpdateOne) SetLey(v *Law) *ArticleUpdateOne {
	return _u.SetLeyID(v.ID)
}

// Mutation returns the ArticleMutation object of the builder.
func (_u *ArticleUpdateOne) Mutation() *ArticleMutation {
	return _u.mutation
}

// ClearLey clears the "ley" edge to the Law entity.
func (_u *ArticleUpdateOne) ClearLey() *ArticleUpdateOne {
	_u.mutation.ClearLey()
	return _u
}

// Where appends a list predicates to the ArticleUpdate builder.
func (_u *ArticleUpdateOne) Where(ps ...predicate.Article) *ArticleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArticleUpdateOne) Select(field string, fields ...string) *ArticleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Article entity.
func (_u *ArticleUpdateOne) Save(ctx context.Context) (*Article, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArticleUpdateOne) SaveX(ctx context.Context) *Article {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArticleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArticleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ArticleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := article.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArticleUpdateOne) check() error {
	if v, ok := _u.mutation.Numero(); ok {
		if err := article.NumeroValidator(v); err != nil {
			return &ValidationError{Name: "numero", err: fmt.Errorf(`ent: validator failed for field "Article.numero": %w`, err)}
		}
	}
	if _u.mutation.LeyCleared() && len(_u.mutation.LeyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Article.ley"`)
	}
	return nil
}

func (_u *ArticleUpdateOne) sqlSave(ctx context.Context) (_node *Article, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(article.Table, article.Columns, sqlgraph.NewFieldSpec(article.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Article.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, article.FieldID)
		for _, f := range fields {
			if !article.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != article.FieldID {
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
		_spec.SetField(article.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Numero(); ok {
		_spec.SetField(article.FieldNumero, field.TypeString, value)
	}
	if value, ok := _u.mutation.Contenido(); ok {
		_spec.SetField(article.FieldContenido, field.TypeString, value)
	}
	if _u.mutation.ContenidoCleared() {
		_spec.ClearField(article.FieldContenido, field.TypeString)
	}
	if _u.mutation.LeyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   article.LeyTable,
			Columns: []string{article.LeyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(law.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   article.LeyTable,
			Columns: []string{article.LeyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(law.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Article{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{article.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

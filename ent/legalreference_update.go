// Code generated by ent, DO NOT EDIT.

package ent

import (
	"NovedadesAPI/ent/article"
	"NovedadesAPI/ent/law"
	"NovedadesAPI/ent/legalreference"
	"NovedadesAPI/ent/predicate"
	"NovedadesAPI/ent/report"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// LegalReferenceUpdate is the builder for updating LegalReference entities.
type LegalReferenceUpdate struct {
	config
	hooks    []Hook
	mutation *LegalReferenceMutation
}

// Where appends a list predicates to the LegalReferenceUpdate builder.
func (_u *LegalReferenceUpdate) Where(ps ...predicate.LegalReference) *LegalReferenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LegalReferenceUpdate) SetUpdatedAt(v time.Time) *LegalReferenceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *LegalReferenceUpdate) SetReportID(v uuid.UUID) *LegalReferenceUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *LegalReferenceUpdate) SetNillableReportID(v *uuid.UUID) *LegalReferenceUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetLeyID sets the "ley_id" field.
func (_u *LegalReferenceUpdate) SetLeyID(v uuid.UUID) *LegalReferenceUpdate {
	_u.mutation.SetLeyID(v)
	return _u
}

// SetNillableLeyID sets the "ley_id" field if the given value is not nil.
func (_u *LegalReferenceUpdate) SetNillableLeyID(v *uuid.UUID) *LegalReferenceUpdate {
	if v != nil {
		_u.SetLeyID(*v)
	}
	return _u
}

// SetArticuloID sets the "articulo_id" field.
func (_u *LegalReferenceUpdate) SetArticuloID(v uuid.UUID) *LegalReferenceUpdate {
	_u.mutation.SetArticuloID(v)
	return _u
}

// SetNillableArticuloID sets the "articulo_id" field if the given value is not nil.
func (_u *LegalReferenceUpdate) SetNillableArticuloID(v *uuid.UUID) *LegalReferenceUpdate {
	if v != nil {
		_u.SetArticuloID(*v)
	}
	return _u
}

// ClearArticuloID clears the value of the "articulo_id" field.
func (_u *LegalReferenceUpdate) ClearArticuloID() *LegalReferenceUpdate {
	_u.mutation.ClearArticuloID()
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *LegalReferenceUpdate) SetReport(v *Report) *LegalReferenceUpdate {
	return _u.SetReportID(v.ID)
}

// SetLey sets the "ley" edge to the Law entity.
func (_u *LegalReferenceUpdate) SetLey(v *Law) *LegalReferenceUpdate {
	return _u.SetLeyID(v.ID)
}

// SetArticulo sets the "articulo" edge to the Article entity.
func (_u *LegalReferenceUpdate) SetArticulo(v *Article) *LegalReferenceUpdate {
	return _u.SetArticuloID(v.ID)
}

// Mutation returns the LegalReferenceMutation object of the builder.
func (_u *LegalReferenceUpdate) Mutation() *LegalReferenceMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *LegalReferenceUpdate) ClearReport() *LegalReferenceUpdate {
	_u.mutation.ClearReport()
	return _u
}

// ClearLey clears the "ley" edge to the Law entity.
func (_u *LegalReferenceUpdate) ClearLey() *LegalReferenceUpdate {
	_u.mutation.ClearLey()
	return _u
}

// ClearArticulo clears the "articulo" edge to the Article entity.
func (_u *LegalReferenceUpdate) ClearArticulo() *LegalReferenceUpdate {
	_u.mutation.ClearArticulo()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LegalReferenceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LegalReferenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LegalReferenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LegalReferenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LegalReferenceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := legalreference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LegalReferenceUpdate) check() error {
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LegalReference.report"`)
	}
	if _u.mutation.LeyCleared() && len(_u.mutation.LeyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LegalReference.ley"`)
	}
	return nil
}

func (_u *LegalReferenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(legalreference.Table, legalreference.Columns, sqlgraph.NewFieldSpec(legalreference.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(legalreference.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   legalreference.ReportTable,
			Columns: []string{legalreference.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   legalreference.ReportTable,
			Columns: []string{legalreference.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   legalreference.LeyTable,
			Columns: []string{legalreference.LeyColumn},
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
			Inverse: false,
			Table:   legalreference.LeyTable,
			Columns: []string{legalreference.LeyColumn},
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
	if _u.mutation.ArticuloCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   legalreference.ArticuloTable,
			Columns: []string{legalreference.ArticuloColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(article.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArticuloIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   legalreference.ArticuloTable,
			Columns: []string{legalreference.ArticuloColumn},
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
			err = &NotFoundError{legalreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LegalReferenceUpdateOne is the builder for updating a single LegalReference entity.
type LegalReferenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LegalReferenceMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LegalReferenceUpdateOne) SetUpdatedAt(v time.Time) *LegalReferenceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *LegalReferenceUpdateOne) SetReportID(v uuid.UUID) *LegalReferenceUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *LegalReferenceUpdateOne) SetNillableReportID(v *uuid.UUID) *LegalReferenceUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetLeyID sets the "ley_id" field.
func (_u *LegalReferenceUpdateOne) SetLeyID(v uuid.UUID) *LegalReferenceUpdateOne {
	_u.mutation.SetLeyID(v)
	return _u
}

// SetNillableLeyID sets the "ley_id" field if the given value is not nil.
func (_u *LegalReferenceUpdateOne) SetNillableLeyID(v *uuid.UUID) *LegalReferenceUpdateOne {
	if v != nil {
		_u.SetLeyID(*v)
	}
	return _u
}

// SetArticuloID sets the "articulo_id" field.
func (_u *LegalReferenceUpdateOne) SetArticuloID(v uuid.UUID) *LegalReferenceUpdateOne {
	_u.mutation.SetArticuloID(v)
	return _u
}

// SetNillableArticuloID sets the "articulo_id" field if the given value is not nil.
func (_u *LegalReferenceUpdateOne) SetNillableArticuloID(v *uuid.UUID) *LegalReferenceUpdateOne {
	if v != nil {
		_u.SetArticuloID(*v)
	}
	return _u
}

// ClearArticuloID clears the value of the "articulo_id" field.
func (_u *LegalReferenceUpdateOne) ClearArticuloID() *LegalReferenceUpdateOne {
	_u.mutation.ClearArticuloID()
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *LegalReferenceUpdateOne) SetReport(v *Report) *LegalReferenceUpdateOne {
	return _u.SetReportID(v.ID)
}

// SetLey sets the "ley" edge to the Law entity.
func (_u *LegalReferenceUpdateOne) SetLey(v *Law) *LegalReferenceUpdateOne {
	return _u.SetLeyID(v.ID)
}

// SetArticulo sets the "articulo" edge to the Article entity.
func (_u *LegalReferenceUpdateOne) SetArticulo(v *Article) *LegalReferenceUpdateOne {
	return _u.SetArticuloID(v.ID)
}

// Mutation returns the LegalReferenceMutation object of the builder.
func (_u *LegalReferenceUpdateOne) Mutation() *LegalReferenceMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *LegalReferenceUpdateOne) ClearReport() *LegalReferenceUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// ClearLey clears the "ley" edge to the Law entity.
func (_u *LegalReferenceUpdateOne) ClearLey() *LegalReferenceUpdateOne {
	_u.mutation.ClearLey()
	return _u
}

// ClearArticulo clears the "articulo" edge to the Article entity.
func (_u *LegalReferenceUpdateOne) ClearArticulo() *LegalReferenceUpdateOne {
	_u.mutation.ClearArticulo()
	return _u
}

// Where appends a list predicates to the LegalReferenceUpdate builder.
func (_u *LegalReferenceUpdateOne) Where(ps ...predicate.LegalReference) *LegalReferenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LegalReferenceUpdateOne) Select(field string, fields ...string) *LegalReferenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LegalReference entity.
func (_u *LegalReferenceUpdateOne) Save(ctx context.Context) (*LegalReference, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LegalReferenceUpdateOne) SaveX(ctx context.Context) *LegalReference {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LegalReferenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LegalReferenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LegalReferenceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := legalreference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LegalReferenceUpdateOne) check() error {
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LegalReference.report"`)
	}
	if _u.mutation.LeyCleared() && len(_u.mutation.LeyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LegalReference.ley"`)
	}
	return nil
}

func (_u *LegalReferenceUpdateOne) sqlSave(ctx context.Context) (_node *LegalReference, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(legalreference.Table, legalreference.Columns, sqlgraph.NewFieldSpec(legalreference.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LegalReference.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, legalreference.FieldID)
		for _, f := range fields {
			if !legalreference.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != legalreference.FieldID {
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
		_spec.SetField(legalreference.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   legalreference.ReportTable,
			Columns: []string{legalreference.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   legalreference.ReportTable,
			Columns: []string{legalreference.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   legalreference.LeyTable,
			Columns: []string{legalreference.LeyColumn},
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
			Inverse: false,
			Table:   legalreference.LeyTable,
			Columns: []string{legalreference.LeyColumn},
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
	if _u.mutation.ArticuloCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   legalreference.ArticuloTable,
			Columns: []string{legalreference.ArticuloColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(article.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArticuloIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   legalreference.ArticuloTable,
			Columns: []string{legalreference.ArticuloColumn},
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
	_node = &LegalReference{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{legalreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

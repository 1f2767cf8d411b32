// Code generated by ent, DO NOT EDIT.

package ent

import (
	"NovedadesAPI/ent/predicate"
	"NovedadesAPI/ent/report"
	"NovedadesAPI/ent/reportimage"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ReportImageUpdate is the builder for updating ReportImage entities.
type ReportImageUpdate struct {
	config
	hooks    []Hook
	mutation *ReportImageMutation
}

// Where appends a list predicates to the ReportImageUpdate builder.
func (_u *ReportImageUpdate) Where(ps ...predicate.ReportImage) *ReportImageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportImageUpdate) SetUpdatedAt(v time.Time) *ReportImageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *ReportImageUpdate) SetReportID(v uuid.UUID) *ReportImageUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *ReportImageUpdate) SetNillableReportID(v *uuid.UUID) *ReportImageUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ReportImageUpdate) SetFileName(v string) *ReportImageUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ReportImageUpdate) SetNillableFileName(v *string) *ReportImageUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetOriginalName sets the "original_name" field.
func (_u *ReportImageUpdate) SetOriginalName(v string) *ReportImageUpdate {
	_u.mutation.SetOriginalName(v)
	return _u
}

// SetNillableOriginalName sets the "original_name" field if the given value is not nil.
func (_u *ReportImageUpdate) SetNillableOriginalName(v *string) *ReportImageUpdate {
	if v != nil {
		_u.SetOriginalName(*v)
	}
	return _u
}

// SetOrden sets the "orden" field.
func (_u *ReportImageUpdate) SetOrden(v int) *ReportImageUpdate {
	_u.mutation.ResetOrden()
	_u.mutation.SetOrden(v)
	return _u
}

// SetNillableOrden sets the "orden" field if the given value is not nil.
func (_u *ReportImageUpdate) SetNillableOrden(v *int) *ReportImageUpdate {
	if v != nil {
		_u.SetOrden(*v)
	}
	return _u
}

// AddOrden adds value to the "orden" field.
func (_u *ReportImageUpdate) AddOrden(v int) *ReportImageUpdate {
	_u.mutation.AddOrden(v)
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *ReportImageUpdate) SetReport(v *Report) *ReportImageUpdate {
	return _u.SetReportID(v.ID)
}

// Mutation returns the ReportImageMutation object of the builder.
func (_u *ReportImageUpdate) Mutation() *ReportImageMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *ReportImageUpdate) ClearReport() *ReportImageUpdate {
	_u.mutation.ClearReport()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportImageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportImageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportImageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportImageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportImageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reportimage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportImageUpdate) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := reportimage.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ReportImage.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalName(); ok {
		if err := reportimage.OriginalNameValidator(v); err != nil {
			return &ValidationError{Name: "original_name", err: fmt.Errorf(`ent: validator failed for field "ReportImage.original_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Orden(); ok {
		if err := reportimage.OrdenValidator(v); err != nil {
			return &ValidationError{Name: "orden", err: fmt.Errorf(`ent: validator failed for field "ReportImage.orden": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReportImage.report"`)
	}
	return nil
}

func (_u *ReportImageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportimage.Table, reportimage.Columns, sqlgraph.NewFieldSpec(reportimage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reportimage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(reportimage.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalName(); ok {
		_spec.SetField(reportimage.FieldOriginalName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Orden(); ok {
		_spec.SetField(reportimage.FieldOrden, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrden(); ok {
		_spec.AddField(reportimage.FieldOrden, field.TypeInt, value)
	}
	if _u.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportimage.ReportTable,
			Columns: []string{reportimage.ReportColumn},
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
			Table:   reportimage.ReportTable,
			Columns: []string{reportimage.ReportColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportImageUpdateOne is the builder for updating a single ReportImage entity.
type ReportImageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportImageMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportImageUpdateOne) SetUpdatedAt(v time.Time) *ReportImageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *ReportImageUpdateOne) SetReportID(v uuid.UUID) *ReportImageUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *ReportImageUpdateOne) SetNillableReportID(v *uuid.UUID) *ReportImageUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ReportImageUpdateOne) SetFileName(v string) *ReportImageUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ReportImageUpdateOne) SetNillableFileName(v *string) *ReportImageUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetOriginalName sets the "original_name" field.
func (_u *ReportImageUpdateOne) SetOriginalName(v string) *ReportImageUpdateOne {
	_u.mutation.SetOriginalName(v)
	return _u
}

// SetNillableOriginalName sets the "original_name" field if the given value is not nil.
func (_u *ReportImageUpdateOne) SetNillableOriginalName(v *string) *ReportImageUpdateOne {
	if v != nil {
		_u.SetOriginalName(*v)
	}
	return _u
}

// SetOrden sets the "orden" field.
func (_u *ReportImageUpdateOne) SetOrden(v int) *ReportImageUpdateOne {
	_u.mutation.ResetOrden()
	_u.mutation.SetOrden(v)
	return _u
}

// SetNillableOrden sets the "orden" field if the given value is not nil.
func (_u *ReportImageUpdateOne) SetNillableOrden(v *int) *ReportImageUpdateOne {
	if v != nil {
		_u.SetOrden(*v)
	}
	return _u
}

// AddOrden adds value to the "orden" field.
func (_u *ReportImageUpdateOne) AddOrden(v int) *ReportImageUpdateOne {
	_u.mutation.AddOrden(v)
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *ReportImageUpdateOne) SetReport(v *Report) *ReportImageUpdateOne {
	return _u.SetReportID(v.ID)
}

// Mutation returns the ReportImageMutation object of the builder.
func (_u *ReportImageUpdateOne) Mutation() *ReportImageMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *ReportImageUpdateOne) ClearReport() *ReportImageUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// Where appends a list predicates to the ReportImageUpdate builder.
func (_u *ReportImageUpdateOne) Where(ps ...predicate.ReportImage) *ReportImageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportImageUpdateOne) Select(field string, fields ...string) *ReportImageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReportImage entity.
func (_u *ReportImageUpdateOne) Save(ctx context.Context) (*ReportImage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportImageUpdateOne) SaveX(ctx context.Context) *ReportImage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportImageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportImageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportImageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reportimage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportImageUpdateOne) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := reportimage.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ReportImage.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalName(); ok {
		if err := reportimage.OriginalNameValidator(v); err != nil {
			return &ValidationError{Name: "original_name", err: fmt.Errorf(`ent: validator failed for field "ReportImage.original_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Orden(); ok {
		if err := reportimage.OrdenValidator(v); err != nil {
			return &ValidationError{Name: "orden", err: fmt.Errorf(`ent: validator failed for field "ReportImage.orden": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReportImage.report"`)
	}
	return nil
}

func (_u *ReportImageUpdateOne) sqlSave(ctx context.Context) (_node *ReportImage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportimage.Table, reportimage.Columns, sqlgraph.NewFieldSpec(reportimage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReportImage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportimage.FieldID)
		for _, f := range fields {
			if !reportimage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reportimage.FieldID {
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
		_spec.SetField(reportimage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(reportimage.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalName(); ok {
		_spec.SetField(reportimage.FieldOriginalName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Orden(); ok {
		_spec.SetField(reportimage.FieldOrden, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrden(); ok {
		_spec.AddField(reportimage.FieldOrden, field.TypeInt, value)
	}
	if _u.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportimage.ReportTable,
			Columns: []string{reportimage.ReportColumn},
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
			Table:   reportimage.ReportTable,
			Columns: []string{reportimage.ReportColumn},
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
	_node = &ReportImage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

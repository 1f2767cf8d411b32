// Code generated by ent, DO NOT EDIT.

package ent

import (
	"NovedadesAPI/ent/report"
	"NovedadesAPI/ent/reportimage"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ReportImageCreate is the builder for creating a ReportImage entity.
type ReportImageCreate struct {
	config
	mutation *ReportImageMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReportImageCreate) SetCreatedAt(v time.Time) *ReportImageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReportImageCreate) SetNillableCreatedAt(v *time.Time) *ReportImageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReportImageCreate) SetUpdatedAt(v time.Time) *ReportImageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReportImageCreate) SetNillableUpdatedAt(v *time.Time) *ReportImageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetReportID sets the "report_id" field.
func (_c *ReportImageCreate) SetReportID(v uuid.UUID) *ReportImageCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *ReportImageCreate) SetFileName(v string) *ReportImageCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetOriginalName sets the "original_name" field.
func (_c *ReportImageCreate) SetOriginalName(v string) *ReportImageCreate {
	_c.mutation.SetOriginalName(v)
	return _c
}

// SetOrden sets the "orden" field.
func (_c *ReportImageCreate) SetOrden(v int) *ReportImageCreate {
	_c.mutation.SetOrden(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ReportImageCreate) SetID(v uuid.UUID) *ReportImageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReportImageCreate) SetNillableID(v *uuid.UUID) *ReportImageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReport sets the "report" edge to the Report entity.
func (_c *ReportImageCreate) SetReport(v *Report) *ReportImageCreate {
	return _c.SetReportID(v.ID)
}

// Mutation returns the ReportImageMutation object of the builder.
func (_c *ReportImageCreate) Mutation() *ReportImageMutation {
	return _c.mutation
}

// Save creates the ReportImage in the database.
func (_c *ReportImageCreate) Save(ctx context.Context) (*ReportImage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportImageCreate) SaveX(ctx context.Context) *ReportImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportImageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportImageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportImageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reportimage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reportimage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := reportimage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportImageCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReportImage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ReportImage.updated_at"`)}
	}
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "ReportImage.report_id"`)}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "ReportImage.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := reportimage.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ReportImage.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalName(); !ok {
		return &ValidationError{Name: "original_name", err: errors.New(`ent: missing required field "ReportImage.original_name"`)}
	}
	if v, ok := _c.mutation.OriginalName(); ok {
		if err := reportimage.OriginalNameValidator(v); err != nil {
			return &ValidationError{Name: "original_name", err: fmt.Errorf(`ent: validator failed for field "ReportImage.original_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Orden(); !ok {
		return &ValidationError{Name: "orden", err: errors.New(`ent: missing required field "ReportImage.orden"`)}
	}
	if v, ok := _c.mutation.Orden(); ok {
		if err := reportimage.OrdenValidator(v); err != nil {
			return &ValidationError{Name: "orden", err: fmt.Errorf(`ent: validator failed for field "ReportImage.orden": %w`, err)}
		}
	}
	if len(_c.mutation.ReportIDs()) == 0 {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "ReportImage.report"`)}
	}
	return nil
}

func (_c *ReportImageCreate) sqlSave(ctx context.Context) (*ReportImage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReportImageCreate) createSpec() (*ReportImage, *sqlgraph.CreateSpec) {
	var (
		_node = &ReportImage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reportimage.Table, sqlgraph.NewFieldSpec(reportimage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reportimage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reportimage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(reportimage.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.OriginalName(); ok {
		_spec.SetField(reportimage.FieldOriginalName, field.TypeString, value)
		_node.OriginalName = value
	}
	if value, ok := _c.mutation.Orden(); ok {
		_spec.SetField(reportimage.FieldOrden, field.TypeInt, value)
		_node.Orden = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
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
		_node.ReportID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReportImageCreateBulk is the builder for creating many ReportImage entities in bulk.
type ReportImageCreateBulk struct {
	config
	err      error
	builders []*ReportImageCreate
}

// Save creates the ReportImage entities in the database.
func (_c *ReportImageCreateBulk) Save(ctx context.Context) ([]*ReportImage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReportImage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportImageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReportImageCreateBulk) SaveX(ctx context.Context) []*ReportImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportImageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportImageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

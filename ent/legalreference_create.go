// Code generated by ent, DO NOT EDIT.

package ent

import (
	"NovedadesAPI/ent/article"
	"NovedadesAPI/ent/law"
	"NovedadesAPI/ent/legalreference"
	"NovedadesAPI/ent/report"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// LegalReferenceCreate is the builder for creating a LegalReference entity.
type LegalReferenceCreate struct {
	config
	mutation *LegalReferenceMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *LegalReferenceCreate) SetCreatedAt(v time.Time) *LegalReferenceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LegalReferenceCreate) SetNillableCreatedAt(v *time.Time) *LegalReferenceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LegalReferenceCreate) SetUpdatedAt(v time.Time) *LegalReferenceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LegalReferenceCreate) SetNillableUpdatedAt(v *time.Time) *LegalReferenceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetReportID sets the "report_id" field.
func (_c *LegalReferenceCreate) SetReportID(v uuid.UUID) *LegalReferenceCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetLeyID sets the "ley_id" field.
func (_c *LegalReferenceCreate) SetLeyID(v uuid.UUID) *LegalReferenceCreate {
	_c.mutation.SetLeyID(v)
	return _c
}

// SetArticuloID sets the "articulo_id" field.
func (_c *LegalReferenceCreate) SetArticuloID(v uuid.UUID) *LegalReferenceCreate {
	_c.mutation.SetArticuloID(v)
	return _c
}

// SetNillableArticuloID sets the "articulo_id" field if the given value is not nil.
func (_c *LegalReferenceCreate) SetNillableArticuloID(v *uuid.UUID) *LegalReferenceCreate {
	if v != nil {
		_c.SetArticuloID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LegalReferenceCreate) SetID(v uuid.UUID) *LegalReferenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LegalReferenceCreate) SetNillableID(v *uuid.UUID) *LegalReferenceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReport sets the "report" edge to the Report entity.
func (_c *LegalReferenceCreate) SetReport(v *Report) *LegalReferenceCreate {
	return _c.SetReportID(v.ID)
}

// SetLey sets the "ley" edge to the Law entity.
func (_c *LegalReferenceCreate) SetLey(v *Law) *LegalReferenceCreate {
	return _c.SetLeyID(v.ID)
}

// SetArticulo sets the "articulo" edge to the Article entity.
func (_c *LegalReferenceCreate) SetArticulo(v *Article) *LegalReferenceCreate {
	return _c.SetArticuloID(v.ID)
}

// Mutation returns the LegalReferenceMutation object of the builder.
func (_c *LegalReferenceCreate) Mutation() *LegalReferenceMutation {
	return _c.mutation
}

// Save creates the LegalReference in the database.
func (_c *LegalReferenceCreate) Save(ctx context.Context) (*LegalReference, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LegalReferenceCreate) SaveX(ctx context.Context) *LegalReference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LegalReferenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LegalReferenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LegalReferenceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := legalreference.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := legalreference.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := legalreference.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LegalReferenceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LegalReference.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LegalReference.updated_at"`)}
	}
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "LegalReference.report_id"`)}
	}
	if _, ok := _c.mutation.LeyID(); !ok {
		return &ValidationError{Name: "ley_id", err: errors.New(`ent: missing required field "LegalReference.ley_id"`)}
	}
	if len(_c.mutation.ReportIDs()) == 0 {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "LegalReference.report"`)}
	}
	if len(_c.mutation.LeyIDs()) == 0 {
		return &ValidationError{Name: "ley", err: errors.New(`ent: missing required edge "LegalReference.ley"`)}
	}
	return nil
}

func (_c *LegalReferenceCreate) sqlSave(ctx context.Context) (*LegalReference, error) {
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

func (_c *LegalReferenceCreate) createSpec() (*LegalReference, *sqlgraph.CreateSpec) {
	var (
		_node = &LegalReference{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(legalreference.Table, sqlgraph.NewFieldSpec(legalreference.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(legalreference.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(legalreference.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
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
		_node.ReportID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LeyIDs(); len(nodes) > 0 {
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
		_node.LeyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ArticuloIDs(); len(nodes) > 0 {
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
		_node.ArticuloID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LegalReferenceCreateBulk is the builder for creating many LegalReference entities in bulk.
type LegalReferenceCreateBulk struct {
	config
	err      error
	builders []*LegalReferenceCreate
}

// Save creates the LegalReference entities in the database.
func (_c *LegalReferenceCreateBulk) Save(ctx context.Context) ([]*LegalReference, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LegalReference, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LegalReferenceMutation)
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
func (_c *LegalReferenceCreateBulk) SaveX(ctx context.Context) []*LegalReference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LegalReferenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LegalReferenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

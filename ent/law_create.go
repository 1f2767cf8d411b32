// Code generated by ent, DO NOT EDIT.

package ent

import (
	"NovedadesAPI/ent/article"
	"NovedadesAPI/ent/law"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// LawCreate is the builder for creating a Law entity.
type LawCreate struct {
	config
	mutation *LawMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *LawCreate) SetCreatedAt(v time.Time) *LawCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LawCreate) SetNillableCreatedAt(v *time.Time) *LawCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LawCreate) SetUpdatedAt(v time.Time) *LawCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LawCreate) SetNillableUpdatedAt(v *time.Time) *LawCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetNombre sets the "nombre" field.
func (_c *LawCreate) SetNombre(v string) *LawCreate {
	_c.mutation.SetNombre(v)
	return _c
}

// SetDescripcion sets the "descripcion" field.
func (_c *LawCreate) SetDescripcion(v string) *LawCreate {
	_c.mutation.SetDescripcion(v)
	return _c
}

// SetNillableDescripcion sets the "descripcion" field if the given value is not nil.
func (_c *LawCreate) SetNillableDescripcion(v *string) *LawCreate {
	if v != nil {
		_c.SetDescripcion(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LawCreate) SetID(v uuid.UUID) *LawCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LawCreate) SetNillableID(v *uuid.UUID) *LawCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddArticuloIDs adds the "articulos" edge to the Article entity by IDs.
func (_c *LawCreate) AddArticuloIDs(ids ...uuid.UUID) *LawCreate {
	_c.mutation.AddArticuloIDs(ids...)
	return _c
}

// AddArticulos adds the "articulos" edges to the Article entity.
func (_c *LawCreate) AddArticulos(v ...*Article) *LawCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddArticuloIDs(ids...)
}

// Mutation returns the LawMutation object of the builder.
func (_c *LawCreate) Mutation() *LawMutation {
	return _c.mutation
}

// Save creates the Law in the database.
func (_c *LawCreate) Save(ctx context.Context) (*Law, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LawCreate) SaveX(ctx context.Context) *Law {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LawCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LawCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LawCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := law.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := law.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := law.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LawCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Law.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Law.updated_at"`)}
	}
	if _, ok := _c.mutation.Nombre(); !ok {
		return &ValidationError{Name: "nombre", err: errors.New(`ent: missing required field "Law.nombre"`)}
	}
	if v, ok := _c.mutation.Nombre(); ok {
		if err := law.NombreValidator(v); err != nil {
			return &ValidationError{Name: "nombre", err: fmt.Errorf(`ent: validator failed for field "Law.nombre": %w`, err)}
		}
	}
	return nil
}

func (_c *LawCreate) sqlSave(ctx context.Context) (*Law, error) {
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

func (_c *LawCreate) createSpec() (*Law, *sqlgraph.CreateSpec) {
	var (
		_node = &Law{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(law.Table, sqlgraph.NewFieldSpec(law.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(law.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(law.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Nombre(); ok {
		_spec.SetField(law.FieldNombre, field.TypeString, value)
		_node.Nombre = value
	}
	if value, ok := _c.mutation.Descripcion(); ok {
		_spec.SetField(law.FieldDescripcion, field.TypeString, value)
		_node.Descripcion = value
	}
	if nodes := _c.mutation.ArticulosIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LawCreateBulk is the builder for creating many Law entities in bulk.
type LawCreateBulk struct {
	config
	err      error
	builders []*LawCreate
}

// Save creates the Law entities in the database.
func (_c *LawCreateBulk) Save(ctx context.Context) ([]*Law, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Law, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LawMutation)
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
func (_c *LawCreateBulk) SaveX(ctx context.Context) []*Law {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LawCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LawCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

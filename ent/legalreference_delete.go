// Code generated by ent, DO NOT EDIT.

package ent

import (
	"NovedadesAPI/ent/legalreference"
	"NovedadesAPI/ent/predicate"
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// LegalReferenceDelete is the builder for deleting a LegalReference entity.
type LegalReferenceDelete struct {
	config
	hooks    []Hook
	mutation *LegalReferenceMutation
}

// Where appends a list predicates to the LegalReferenceDelete builder.
func (_d *LegalReferenceDelete) Where(ps ...predicate.LegalReference) *LegalReferenceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LegalReferenceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LegalReferenceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LegalReferenceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(legalreference.Table, sqlgraph.NewFieldSpec(legalreference.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// LegalReferenceDeleteOne is the builder for deleting a single LegalReference entity.
type LegalReferenceDeleteOne struct {
	_d *LegalReferenceDelete
}

// Where appends a list predicates to the LegalReferenceDelete builder.
func (_d *LegalReferenceDeleteOne) Where(ps ...predicate.LegalReference) *LegalReferenceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LegalReferenceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{legalreference.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LegalReferenceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

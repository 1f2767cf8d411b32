// Code generated by ent, DO NOT EDIT.

package law

import (
	"NovedadesAPI/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Law {
	return predicate.Law(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Law {
	return predicate.Law(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Law {
	return predicate.Law(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Law {
	return predicate.Law(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Law {
	return predicate.Law(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Law {
	return predicate.Law(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Law {
	return predicate.Law(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Law {
	return predicate.Law(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Law {
	return predicate.Law(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Law {
	return predicate.Law(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Law {
	return predicate.Law(sql.FieldEQ(FieldUpdatedAt, v))
}

// Nombre applies equality check predicate on the "nombre" field. It's identical to NombreEQ.
func Nombre(v string) predicate.Law {
	return predicate.Law(sql.FieldEQ(FieldNombre, v))
}

// Descripcion applies equality check predicate on the "descripcion" field. It's identical to DescripcionEQ.
func Descripcion(v string) predicate.Law {
	return predicate.Law(sql.FieldEQ(FieldDescripcion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Law {
	return predicate.Law(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Law {
	return predicate.Law(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Law {
	return predicate.Law(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Law {
	return predicate.Law(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Law {
	return predicate.Law(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Law {
	return predicate.Law(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Law {
	return predicate.Law(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Law {
	return predicate.Law(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Law {
	return predicate.Law(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Law {
	return predicate.Law(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Law {
	return predicate.Law(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Law {
	return predicate.Law(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Law {
	return predicate.Law(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Law {
	return predicate.Law(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Law {
	return predicate.Law(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Law {
	return predicate.Law(sql.FieldLTE(FieldUpdatedAt, v))
}

// NombreEQ applies the EQ predicate on the "nombre" field.
func NombreEQ(v string) predicate.Law {
	return predicate.Law(sql.FieldEQ(FieldNombre, v))
}

// NombreNEQ applies the NEQ predicate on the "nombre" field.
func NombreNEQ(v string) predicate.Law {
	return predicate.Law(sql.FieldNEQ(FieldNombre, v))
}

// NombreIn applies the In predicate on the "nombre" field.
func NombreIn(vs ...string) predicate.Law {
	return predicate.Law(sql.FieldIn(FieldNombre, vs...))
}

// NombreNotIn applies the NotIn predicate on the "nombre" field.
func NombreNotIn(vs ...string) predicate.Law {
	return predicate.Law(sql.FieldNotIn(FieldNombre, vs...))
}

// NombreGT applies the GT predicate on the "nombre" field.
func NombreGT(v string) predicate.Law {
	return predicate.Law(sql.FieldGT(FieldNombre, v))
}

// NombreGTE applies the GTE predicate on the "nombre" field.
func NombreGTE(v string) predicate.Law {
	return predicate.Law(sql.FieldGTE(FieldNombre, v))
}

// NombreLT applies the LT predicate on the "nombre" field.
func NombreLT(v string) predicate.Law {
	return predicate.Law(sql.FieldLT(FieldNombre, v))
}

// NombreLTE applies the LTE predicate on the "nombre" field.
func NombreLTE(v string) predicate.Law {
	return predicate.Law(sql.FieldLTE(FieldNombre, v))
}

// NombreContains applies the Contains predicate on the "nombre" field.
func NombreContains(v string) predicate.Law {
	return predicate.Law(sql.FieldContains(FieldNombre, v))
}

// NombreHasPrefix applies the HasPrefix predicate on the "nombre" field.
func NombreHasPrefix(v string) predicate.Law {
	return predicate.Law(sql.FieldHasPrefix(FieldNombre, v))
}

// NombreHasSuffix applies the HasSuffix predicate on the "nombre" field.
func NombreHasSuffix(v string) predicate.Law {
	return predicate.Law(sql.FieldHasSuffix(FieldNombre, v))
}

// NombreEqualFold applies the EqualFold predicate on the "nombre" field.
func NombreEqualFold(v string) predicate.Law {
	return predicate.Law(sql.FieldEqualFold(FieldNombre, v))
}

// NombreContainsFold applies the ContainsFold predicate on the "nombre" field.
func NombreContainsFold(v string) predicate.Law {
	return predicate.Law(sql.FieldContainsFold(FieldNombre, v))
}

// DescripcionEQ applies the EQ predicate on the "descripcion" field.
func DescripcionEQ(v string) predicate.Law {
	return predicate.Law(sql.FieldEQ(FieldDescripcion, v))
}

// DescripcionNEQ applies the NEQ predicate on the "descripcion" field.
func DescripcionNEQ(v string) predicate.Law {
	return predicate.Law(sql.FieldNEQ(FieldDescripcion, v))
}

// DescripcionIn applies the In predicate on the "descripcion" field.
func DescripcionIn(vs ...string) predicate.Law {
	return predicate.Law(sql.FieldIn(FieldDescripcion, vs...))
}

// DescripcionNotIn applies the NotIn predicate on the "descripcion" field.
func DescripcionNotIn(vs ...string) predicate.Law {
	return predicate.Law(sql.FieldNotIn(FieldDescripcion, vs...))
}

// DescripcionGT applies the GT predicate on the "descripcion" field.
func DescripcionGT(v string) predicate.Law {
	return predicate.Law(sql.FieldGT(FieldDescripcion, v))
}

// DescripcionGTE applies the GTE predicate on the "descripcion" field.
func DescripcionGTE(v string) predicate.Law {
	return predicate.Law(sql.FieldGTE(FieldDescripcion, v))
}

// DescripcionLT applies the LT predicate on the "descripcion" field.
func DescripcionLT(v string) predicate.Law {
	return predicate.Law(sql.FieldLT(FieldDescripcion, v))
}

// DescripcionLTE applies the LTE predicate on the "descripcion" field.
func DescripcionLTE(v string) predicate.Law {
	return predicate.Law(sql.FieldLTE(FieldDescripcion, v))
}

// DescripcionContains applies the Contains predicate on the "descripcion" field.
func DescripcionContains(v string) predicate.Law {
	return predicate.Law(sql.FieldContains(FieldDescripcion, v))
}

// DescripcionHasPrefix applies the HasPrefix predicate on the "descripcion" field.
func DescripcionHasPrefix(v string) predicate.Law {
	return predicate.Law(sql.FieldHasPrefix(FieldDescripcion, v))
}

// DescripcionHasSuffix applies the HasSuffix predicate on the "descripcion" field.
func DescripcionHasSuffix(v string) predicate.Law {
	return predicate.Law(sql.FieldHasSuffix(FieldDescripcion, v))
}

// DescripcionIsNil applies the IsNil predicate on the "descripcion" field.
func DescripcionIsNil() predicate.Law {
	return predicate.Law(sql.FieldIsNull(FieldDescripcion))
}

// DescripcionNotNil applies the NotNil predicate on the "descripcion" field.
func DescripcionNotNil() predicate.Law {
	return predicate.Law(sql.FieldNotNull(FieldDescripcion))
}

// DescripcionEqualFold applies the EqualFold predicate on the "descripcion" field.
func DescripcionEqualFold(v string) predicate.Law {
	return predicate.Law(sql.FieldEqualFold(FieldDescripcion, v))
}

// DescripcionContainsFold applies the ContainsFold predicate on the "descripcion" field.
func DescripcionContainsFold(v string) predicate.Law {
	return predicate.Law(sql.FieldContainsFold(FieldDescripcion, v))
}

// HasArticulos applies the HasEdge predicate on the "articulos" edge.
func HasArticulos() predicate.Law {
	return predicate.Law(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ArticulosTable, ArticulosColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArticulosWith applies the HasEdge predicate on the "articulos" edge with a given conditions (other predicates).
func HasArticulosWith(preds ...predicate.Article) predicate.Law {
	return predicate.Law(func(s *sql.Selector) {
		step := newArticulosStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Law) predicate.Law {
	return predicate.Law(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Law) predicate.Law {
	return predicate.Law(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Law) predicate.Law {
	return predicate.Law(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package article

import (
	"NovedadesAPI/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldUpdatedAt, v))
}

// LeyID applies equality check predicate on the "ley_id" field. It's identical to LeyIDEQ.
func LeyID(v uuid.UUID) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldLeyID, v))
}

// Numero applies equality check predicate on the "numero" field. It's identical to NumeroEQ.
func Numero(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldNumero, v))
}

// Contenido applies equality check predicate on the "contenido" field. It's identical to ContenidoEQ.
func Contenido(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldContenido, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldUpdatedAt, v))
}

// LeyIDEQ applies the EQ predicate on the "ley_id" field.
func LeyIDEQ(v uuid.UUID) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldLeyID, v))
}

// LeyIDNEQ applies the NEQ predicate on the "ley_id" field.
func LeyIDNEQ(v uuid.UUID) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldLeyID, v))
}

// LeyIDIn applies the In predicate on the "ley_id" field.
func LeyIDIn(vs ...uuid.UUID) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldLeyID, vs...))
}

// LeyIDNotIn applies the NotIn predicate on the "ley_id" field.
func LeyIDNotIn(vs ...uuid.UUID) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldLeyID, vs...))
}

// NumeroEQ applies the EQ predicate on the "numero" field.
func NumeroEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldNumero, v))
}

// NumeroNEQ applies the NEQ predicate on the "numero" field.
func NumeroNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldNumero, v))
}

// NumeroIn applies the In predicate on the "numero" field.
func NumeroIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldNumero, vs...))
}

// NumeroNotIn applies the NotIn predicate on the "numero" field.
func NumeroNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldNumero, vs...))
}

// NumeroGT applies the GT predicate on the "numero" field.
func NumeroGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldNumero, v))
}

// NumeroGTE applies the GTE predicate on the "numero" field.
func NumeroGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldNumero, v))
}

// NumeroLT applies the LT predicate on the "numero" field.
func NumeroLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldNumero, v))
}

// NumeroLTE applies the LTE predicate on the "numero" field.
func NumeroLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldNumero, v))
}

// NumeroContains applies the Contains predicate on the "numero" field.
func NumeroContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldNumero, v))
}

// NumeroHasPrefix applies the HasPrefix predicate on the "numero" field.
func NumeroHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldNumero, v))
}

// NumeroHasSuffix applies the HasSuffix predicate on the "numero" field.
func NumeroHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldNumero, v))
}

// NumeroEqualFold applies the EqualFold predicate on the "numero" field.
func NumeroEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldNumero, v))
}

// NumeroContainsFold applies the ContainsFold predicate on the "numero" field.
func NumeroContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldNumero, v))
}

// ContenidoEQ applies the EQ predicate on the "contenido" field.
func ContenidoEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldContenido, v))
}

// ContenidoNEQ applies the NEQ predicate on the "contenido" field.
func ContenidoNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldContenido, v))
}

// ContenidoIn applies the In predicate on the "contenido" field.
func ContenidoIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldContenido, vs...))
}

// ContenidoNotIn applies the NotIn predicate on the "contenido" field.
func ContenidoNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldContenido, vs...))
}

// ContenidoGT applies the GT predicate on the "contenido" field.
func ContenidoGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldContenido, v))
}

// ContenidoGTE applies the GTE predicate on the "contenido" field.
func ContenidoGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldContenido, v))
}

// ContenidoLT applies the LT predicate on the "contenido" field.
func ContenidoLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldContenido, v))
}

// ContenidoLTE applies the LTE predicate on the "contenido" field.
func ContenidoLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldContenido, v))
}

// ContenidoContains applies the Contains predicate on the "contenido" field.
func ContenidoContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldContenido, v))
}

// ContenidoHasPrefix applies the HasPrefix predicate on the "contenido" field.
func ContenidoHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldContenido, v))
}

// ContenidoHasSuffix applies the HasSuffix predicate on the "contenido" field.
func ContenidoHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldContenido, v))
}

// ContenidoIsNil applies the IsNil predicate on the "contenido" field.
func ContenidoIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldContenido))
}

// ContenidoNotNil applies the NotNil predicate on the "contenido" field.
func ContenidoNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldContenido))
}

// ContenidoEqualFold applies the EqualFold predicate on the "contenido" field.
func ContenidoEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldContenido, v))
}

// ContenidoContainsFold applies the ContainsFold predicate on the "contenido" field.
func ContenidoContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldContenido, v))
}

// HasLey applies the HasEdge predicate on the "ley" edge.
func HasLey() predicate.Article {
	return predicate.Article(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LeyTable, LeyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLeyWith applies the HasEdge predicate on the "ley" edge with a given conditions (other predicates).
func HasLeyWith(preds ...predicate.Law) predicate.Article {
	return predicate.Article(func(s *sql.Selector) {
		step := newLeyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Article) predicate.Article {
	return predicate.Article(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Article) predicate.Article {
	return predicate.Article(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Article) predicate.Article {
	return predicate.Article(sql.NotPredicates(p))
}

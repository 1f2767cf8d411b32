// Code generated by ent, DO NOT EDIT.

package legalreference

import (
	"NovedadesAPI/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldEQ(FieldUpdatedAt, v))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldEQ(FieldReportID, v))
}

// LeyID applies equality check predicate on the "ley_id" field. It's identical to LeyIDEQ.
func LeyID(v uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldEQ(FieldLeyID, v))
}

// ArticuloID applies equality check predicate on the "articulo_id" field. It's identical to ArticuloIDEQ.
func ArticuloID(v uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldEQ(FieldArticuloID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldLTE(FieldUpdatedAt, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldNotIn(FieldReportID, vs...))
}

// LeyIDEQ applies the EQ predicate on the "ley_id" field.
func LeyIDEQ(v uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldEQ(FieldLeyID, v))
}

// LeyIDNEQ applies the NEQ predicate on the "ley_id" field.
func LeyIDNEQ(v uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldNEQ(FieldLeyID, v))
}

// LeyIDIn applies the In predicate on the "ley_id" field.
func LeyIDIn(vs ...uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldIn(FieldLeyID, vs...))
}

// LeyIDNotIn applies the NotIn predicate on the "ley_id" field.
func LeyIDNotIn(vs ...uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldNotIn(FieldLeyID, vs...))
}

// ArticuloIDEQ applies the EQ predicate on the "articulo_id" field.
func ArticuloIDEQ(v uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldEQ(FieldArticuloID, v))
}

// ArticuloIDNEQ applies the NEQ predicate on the "articulo_id" field.
func ArticuloIDNEQ(v uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldNEQ(FieldArticuloID, v))
}

// ArticuloIDIn applies the In predicate on the "articulo_id" field.
func ArticuloIDIn(vs ...uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldIn(FieldArticuloID, vs...))
}

// ArticuloIDNotIn applies the NotIn predicate on the "articulo_id" field.
func ArticuloIDNotIn(vs ...uuid.UUID) predicate.LegalReference {
	return predicate.LegalReference(sql.FieldNotIn(FieldArticuloID, vs...))
}

// ArticuloIDIsNil applies the IsNil predicate on the "articulo_id" field.
func ArticuloIDIsNil() predicate.LegalReference {
	return predicate.LegalReference(sql.FieldIsNull(FieldArticuloID))
}

// ArticuloIDNotNil applies the NotNil predicate on the "articulo_id" field.
func ArticuloIDNotNil() predicate.LegalReference {
	return predicate.LegalReference(sql.FieldNotNull(FieldArticuloID))
}

// HasReport applies the HasEdge predicate on the "report" edge.
func HasReport() predicate.LegalReference {
	return predicate.LegalReference(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportWith applies the HasEdge predicate on the "report" edge with a given conditions (other predicates).
func HasReportWith(preds ...predicate.Report) predicate.LegalReference {
	return predicate.LegalReference(func(s *sql.Selector) {
		step := newReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLey applies the HasEdge predicate on the "ley" edge.
func HasLey() predicate.LegalReference {
	return predicate.LegalReference(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, LeyTable, LeyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLeyWith applies the HasEdge predicate on the "ley" edge with a given conditions (other predicates).
func HasLeyWith(preds ...predicate.Law) predicate.LegalReference {
	return predicate.LegalReference(func(s *sql.Selector) {
		step := newLeyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasArticulo applies the HasEdge predicate on the "articulo" edge.
func HasArticulo() predicate.LegalReference {
	return predicate.LegalReference(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, ArticuloTable, ArticuloColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArticuloWith applies the HasEdge predicate on the "articulo" edge with a given conditions (other predicates).
func HasArticuloWith(preds ...predicate.Article) predicate.LegalReference {
	return predicate.LegalReference(func(s *sql.Selector) {
		step := newArticuloStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LegalReference) predicate.LegalReference {
	return predicate.LegalReference(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LegalReference) predicate.LegalReference {
	return predicate.LegalReference(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LegalReference) predicate.LegalReference {
	return predicate.LegalReference(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package reportimage

import (
	"NovedadesAPI/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldEQ(FieldUpdatedAt, v))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v uuid.UUID) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldEQ(FieldReportID, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldEQ(FieldFileName, v))
}

// OriginalName applies equality check predicate on the "original_name" field. It's identical to OriginalNameEQ.
func OriginalName(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldEQ(FieldOriginalName, v))
}

// Orden applies equality check predicate on the "orden" field. It's identical to OrdenEQ.
func Orden(v int) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldEQ(FieldOrden, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldLTE(FieldUpdatedAt, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v uuid.UUID) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v uuid.UUID) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...uuid.UUID) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...uuid.UUID) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldNotIn(FieldReportID, vs...))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldContainsFold(FieldFileName, v))
}

// OriginalNameEQ applies the EQ predicate on the "original_name" field.
func OriginalNameEQ(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldEQ(FieldOriginalName, v))
}

// OriginalNameNEQ applies the NEQ predicate on the "original_name" field.
func OriginalNameNEQ(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldNEQ(FieldOriginalName, v))
}

// OriginalNameIn applies the In predicate on the "original_name" field.
func OriginalNameIn(vs ...string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldIn(FieldOriginalName, vs...))
}

// OriginalNameNotIn applies the NotIn predicate on the "original_name" field.
func OriginalNameNotIn(vs ...string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldNotIn(FieldOriginalName, vs...))
}

// OriginalNameGT applies the GT predicate on the "original_name" field.
func OriginalNameGT(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldGT(FieldOriginalName, v))
}

// OriginalNameGTE applies the GTE predicate on the "original_name" field.
func OriginalNameGTE(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldGTE(FieldOriginalName, v))
}

// OriginalNameLT applies the LT predicate on the "original_name" field.
func OriginalNameLT(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldLT(FieldOriginalName, v))
}

// OriginalNameLTE applies the LTE predicate on the "original_name" field.
func OriginalNameLTE(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldLTE(FieldOriginalName, v))
}

// OriginalNameContains applies the Contains predicate on the "original_name" field.
func OriginalNameContains(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldContains(FieldOriginalName, v))
}

// OriginalNameHasPrefix applies the HasPrefix predicate on the "original_name" field.
func OriginalNameHasPrefix(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldHasPrefix(FieldOriginalName, v))
}

// OriginalNameHasSuffix applies the HasSuffix predicate on the "original_name" field.
func OriginalNameHasSuffix(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldHasSuffix(FieldOriginalName, v))
}

// OriginalNameEqualFold applies the EqualFold predicate on the "original_name" field.
func OriginalNameEqualFold(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldEqualFold(FieldOriginalName, v))
}

// OriginalNameContainsFold applies the ContainsFold predicate on the "original_name" field.
func OriginalNameContainsFold(v string) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldContainsFold(FieldOriginalName, v))
}

// OrdenEQ applies the EQ predicate on the "orden" field.
func OrdenEQ(v int) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldEQ(FieldOrden, v))
}

// OrdenNEQ applies the NEQ predicate on the "orden" field.
func OrdenNEQ(v int) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldNEQ(FieldOrden, v))
}

// OrdenIn applies the In predicate on the "orden" field.
func OrdenIn(vs ...int) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldIn(FieldOrden, vs...))
}

// OrdenNotIn applies the NotIn predicate on the "orden" field.
func OrdenNotIn(vs ...int) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldNotIn(FieldOrden, vs...))
}

// OrdenGT applies the GT predicate on the "orden" field.
func OrdenGT(v int) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldGT(FieldOrden, v))
}

// OrdenGTE applies the GTE predicate on the "orden" field.
func OrdenGTE(v int) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldGTE(FieldOrden, v))
}

// OrdenLT applies the LT predicate on the "orden" field.
func OrdenLT(v int) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldLT(FieldOrden, v))
}

// OrdenLTE applies the LTE predicate on the "orden" field.
func OrdenLTE(v int) predicate.ReportImage {
	return predicate.ReportImage(sql.FieldLTE(FieldOrden, v))
}

// HasReport applies the HasEdge predicate on the "report" edge.
func HasReport() predicate.ReportImage {
	return predicate.ReportImage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportWith applies the HasEdge predicate on the "report" edge with a given conditions (other predicates).
func HasReportWith(preds ...predicate.Report) predicate.ReportImage {
	return predicate.ReportImage(func(s *sql.Selector) {
		step := newReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReportImage) predicate.ReportImage {
	return predicate.ReportImage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReportImage) predicate.ReportImage {
	return predicate.ReportImage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReportImage) predicate.ReportImage {
	return predicate.ReportImage(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package legalreference

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the legalreference type in the database.
	Label = "legal_reference"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldLeyID holds the string denoting the ley_id field in the database.
	FieldLeyID = "ley_id"
	// FieldArticuloID holds the string denoting the articulo_id field in the database.
	FieldArticuloID = "articulo_id"
	// EdgeReport holds the string denoting the report edge name in mutations.
	EdgeReport = "report"
	// EdgeLey holds the string denoting the ley edge name in mutations.
	EdgeLey = "ley"
	// EdgeArticulo holds the string denoting the articulo edge name in mutations.
	EdgeArticulo = "articulo"
	// Table holds the table name of the legalreference in the database.
	Table = "legal_references"
	// ReportTable is the table that holds the report relation/edge.
	ReportTable = "legal_references"
	// ReportInverseTable is the table name for the Report entity.
	// It exists in this package in order to avoid circular dependency with the "report" package.
	ReportInverseTable = "reports"
	// ReportColumn is the table column denoting the report relation/edge.
	ReportColumn = "report_id"
	// LeyTable is the table that holds the ley relation/edge.
	LeyTable = "legal_references"
	// LeyInverseTable is the table name for the Law entity.
	// It exists in this package in order to avoid circular dependency with the "law" package.
	LeyInverseTable = "laws"
	// LeyColumn is the table column denoting the ley relation/edge.
	LeyColumn = "ley_id"
	// ArticuloTable is the table that holds the articulo relation/edge.
	ArticuloTable = "legal_references"
	// ArticuloInverseTable is the table name for the Article entity.
	// It exists in this package in order to avoid circular dependency with the "article" package.
	ArticuloInverseTable = "articles"
	// ArticuloColumn is the table column denoting the articulo relation/edge.
	ArticuloColumn = "articulo_id"
)

// Columns holds all SQL columns for legalreference fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldReportID,
	FieldLeyID,
	FieldArticuloID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the LegalReference queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByReportID orders the results by the report_id field.
func ByReportID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportID, opts...).ToFunc()
}

// ByLeyID orders the results by the ley_id field.
func ByLeyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeyID, opts...).ToFunc()
}

// ByArticuloID orders the results by the articulo_id field.
func ByArticuloID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticuloID, opts...).ToFunc()
}

// ByReportField orders the results by report field.
func ByReportField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReportStep(), sql.OrderByField(field, opts...))
	}
}

// ByLeyField orders the results by ley field.
func ByLeyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeyStep(), sql.OrderByField(field, opts...))
	}
}

// ByArticuloField orders the results by articulo field.
func ByArticuloField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArticuloStep(), sql.OrderByField(field, opts...))
	}
}
func newReportStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReportInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
	)
}
func newLeyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeyInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, LeyTable, LeyColumn),
	)
}
func newArticuloStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArticuloInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, ArticuloTable, ArticuloColumn),
	)
}

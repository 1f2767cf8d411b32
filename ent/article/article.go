// Code generated by ent, DO NOT EDIT.

package article

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the article type in the database.
	Label = "article"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldLeyID holds the string denoting the ley_id field in the database.
	FieldLeyID = "ley_id"
	// FieldNumero holds the string denoting the numero field in the database.
	FieldNumero = "numero"
	// FieldContenido holds the string denoting the contenido field in the database.
	FieldContenido = "contenido"
	// EdgeLey holds the string denoting the ley edge name in mutations.
	EdgeLey = "ley"
	// Table holds the table name of the article in the database.
	Table = "articles"
	// LeyTable is the table that holds the ley relation/edge.
	LeyTable = "articles"
	// LeyInverseTable is the table name for the Law entity.
	// It exists in this package in order to avoid circular dependency with the "law" package.
	LeyInverseTable = "laws"
	// LeyColumn is the table column denoting the ley relation/edge.
	LeyColumn = "ley_id"
)

// Columns holds all SQL columns for article fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldLeyID,
	FieldNumero,
	FieldContenido,
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
	// NumeroValidator is a validator for the "numero" field. It is called by the builders before save.
	NumeroValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Article queries.
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

// ByLeyID orders the results by the ley_id field.
func ByLeyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeyID, opts...).ToFunc()
}

// ByNumero orders the results by the numero field.
func ByNumero(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumero, opts...).ToFunc()
}

// ByContenido orders the results by the contenido field.
func ByContenido(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContenido, opts...).ToFunc()
}

// ByLeyField orders the results by ley field.
func ByLeyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeyStep(), sql.OrderByField(field, opts...))
	}
}
func newLeyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeyInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LeyTable, LeyColumn),
	)
}

// Code generated by ent, DO NOT EDIT.

package law

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the law type in the database.
	Label = "law"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldNombre holds the string denoting the nombre field in the database.
	FieldNombre = "nombre"
	// FieldDescripcion holds the string denoting the descripcion field in the database.
	FieldDescripcion = "descripcion"
	// EdgeArticulos holds the string denoting the articulos edge name in mutations.
	EdgeArticulos = "articulos"
	// Table holds the table name of the law in the database.
	Table = "laws"
	// ArticulosTable is the table that holds the articulos relation/edge.
	ArticulosTable = "articles"
	// ArticulosInverseTable is the table name for the Article entity.
	// It exists in this package in order to avoid circular dependency with the "article" package.
	ArticulosInverseTable = "articles"
	// ArticulosColumn is the table column denoting the articulos relation/edge.
	ArticulosColumn = "ley_id"
)

// Columns holds all SQL columns for law fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldNombre,
	FieldDescripcion,
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
	// NombreValidator is a validator for the "nombre" field. It is called by the builders before save.
	NombreValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Law queries.
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

// ByNombre orders the results by the nombre field.
func ByNombre(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNombre, opts...).ToFunc()
}

// ByDescripcion orders the results by the descripcion field.
func ByDescripcion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescripcion, opts...).ToFunc()
}

// ByArticulosCount orders the results by articulos count.
func ByArticulosCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newArticulosStep(), opts...)
	}
}

// ByArticulos orders the results by articulos terms.
func ByArticulos(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArticulosStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newArticulosStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArticulosInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ArticulosTable, ArticulosColumn),
	)
}

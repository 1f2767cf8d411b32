// Code generated by ent, DO NOT EDIT.

package ent

import (
	"NovedadesAPI/ent/law"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Law is the model entity for the Law schema.
type Law struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Nombre holds the value of the "nombre" field.
	Nombre string `json:"nombre,omitempty"`
	// Descripcion holds the value of the "descripcion" field.
	Descripcion string `json:"descripcion,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LawQuery when eager-loading is set.
	Edges        LawEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LawEdges holds the relations/edges for other nodes in the graph.
type LawEdges struct {
	// Articulos holds the value of the articulos edge.
	Articulos []*Article `json:"articulos,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ArticulosOrErr returns the Articulos value or an error if the edge
// was not loaded in eager-loading.
func (e LawEdges) ArticulosOrErr() ([]*Article, error) {
	if e.loadedTypes[0] {
		return e.Articulos, nil
	}
	return nil, &NotLoadedError{edge: "articulos"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Law) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case law.FieldNombre, law.FieldDescripcion:
			values[i] = new(sql.NullString)
		case law.FieldCreatedAt, law.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case law.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Law fields.
func (_m *Law) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case law.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case law.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case law.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case law.FieldNombre:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nombre", values[i])
			} else if value.Valid {
				_m.Nombre = value.String
			}
		case law.FieldDescripcion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field descripcion", values[i])
			} else if value.Valid {
				_m.Descripcion = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Law.
// This includes values selected through modifiers, order, etc.
func (_m *Law) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryArticulos queries the "articulos" edge of the Law entity.
func (_m *Law) QueryArticulos() *ArticleQuery {
	return NewLawClient(_m.config).QueryArticulos(_m)
}

// Update returns a builder for updating this Law.
// Note that you need to call Law.Unwrap() before calling this method if this Law
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Law) Update() *LawUpdateOne {
	return NewLawClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Law entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Law) Unwrap() *Law {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Law is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Law) String() string {
	var builder strings.Builder
	builder.WriteString("Law(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("nombre=")
	builder.WriteString(_m.Nombre)
	builder.WriteString(", ")
	builder.WriteString("descripcion=")
	builder.WriteString(_m.Descripcion)
	builder.WriteByte(')')
	return builder.String()
}

// Laws is a parsable slice of Law.
type Laws []*Law

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"NovedadesAPI/ent/article"
	"NovedadesAPI/ent/law"
	"NovedadesAPI/ent/legalreference"
	"NovedadesAPI/ent/report"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// LegalReference is the model entity for the LegalReference schema.
type LegalReference struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID uuid.UUID `json:"report_id,omitempty"`
	// LeyID holds the value of the "ley_id" field.
	LeyID uuid.UUID `json:"ley_id,omitempty"`
	// ArticuloID holds the value of the "articulo_id" field.
	ArticuloID *uuid.UUID `json:"articulo_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LegalReferenceQuery when eager-loading is set.
	Edges        LegalReferenceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LegalReferenceEdges holds the relations/edges for other nodes in the graph.
type LegalReferenceEdges struct {
	// Report holds the value of the report edge.
	Report *Report `json:"report,omitempty"`
	// Ley holds the value of the ley edge.
	Ley *Law `json:"ley,omitempty"`
	// Articulo holds the value of the articulo edge.
	Articulo *Article `json:"articulo,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LegalReferenceEdges) ReportOrErr() (*Report, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: report.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// LeyOrErr returns the Ley value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LegalReferenceEdges) LeyOrErr() (*Law, error) {
	if e.Ley != nil {
		return e.Ley, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: law.Label}
	}
	return nil, &NotLoadedError{edge: "ley"}
}

// ArticuloOrErr returns the Articulo value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LegalReferenceEdges) ArticuloOrErr() (*Article, error) {
	if e.Articulo != nil {
		return e.Articulo, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: article.Label}
	}
	return nil, &NotLoadedError{edge: "articulo"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LegalReference) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case legalreference.FieldArticuloID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case legalreference.FieldCreatedAt, legalreference.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case legalreference.FieldID, legalreference.FieldReportID, legalreference.FieldLeyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LegalReference fields.
func (_m *LegalReference) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case legalreference.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case legalreference.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case legalreference.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case legalreference.FieldReportID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value != nil {
				_m.ReportID = *value
			}
		case legalreference.FieldLeyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field ley_id", values[i])
			} else if value != nil {
				_m.LeyID = *value
			}
		case legalreference.FieldArticuloID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field articulo_id", values[i])
			} else if value.Valid {
				_m.ArticuloID = new(uuid.UUID)
				*_m.ArticuloID = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LegalReference.
// This includes values selected through modifiers, order, etc.
func (_m *LegalReference) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the LegalReference entity.
func (_m *LegalReference) QueryReport() *ReportQuery {
	return NewLegalReferenceClient(_m.config).QueryReport(_m)
}

// QueryLey queries the "ley" edge of the LegalReference entity.
func (_m *LegalReference) QueryLey() *LawQuery {
	return NewLegalReferenceClient(_m.config).QueryLey(_m)
}

// QueryArticulo queries the "articulo" edge of the LegalReference entity.
func (_m *LegalReference) QueryArticulo() *ArticleQuery {
	return NewLegalReferenceClient(_m.config).QueryArticulo(_m)
}

// Update returns a builder for updating this LegalReference.
// Note that you need to call LegalReference.Unwrap() before calling this method if this LegalReference
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LegalReference) Update() *LegalReferenceUpdateOne {
	return NewLegalReferenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LegalReference entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LegalReference) Unwrap() *LegalReference {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LegalReference is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LegalReference) String() string {
	var builder strings.Builder
	builder.WriteString("LegalReference(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("report_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReportID))
	builder.WriteString(", ")
	builder.WriteString("ley_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeyID))
	builder.WriteString(", ")
	if v := _m.ArticuloID; v != nil {
		builder.WriteString("articulo_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// LegalReferences is a parsable slice of LegalReference.
type LegalReferences []*LegalReference

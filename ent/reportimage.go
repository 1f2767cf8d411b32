// Code generated by ent, DO NOT EDIT.

package ent

import (
	"NovedadesAPI/ent/report"
	"NovedadesAPI/ent/reportimage"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ReportImage is the model entity for the ReportImage schema.
type ReportImage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID uuid.UUID `json:"report_id,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// OriginalName holds the value of the "original_name" field.
	OriginalName string `json:"original_name,omitempty"`
	// Orden holds the value of the "orden" field.
	Orden int `json:"orden,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReportImageQuery when eager-loading is set.
	Edges        ReportImageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReportImageEdges holds the relations/edges for other nodes in the graph.
type ReportImageEdges struct {
	// Report holds the value of the report edge.
	Report *Report `json:"report,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReportImageEdges) ReportOrErr() (*Report, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: report.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReportImage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reportimage.FieldOrden:
			values[i] = new(sql.NullInt64)
		case reportimage.FieldFileName, reportimage.FieldOriginalName:
			values[i] = new(sql.NullString)
		case reportimage.FieldCreatedAt, reportimage.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case reportimage.FieldID, reportimage.FieldReportID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReportImage fields.
func (_m *ReportImage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reportimage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case reportimage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case reportimage.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case reportimage.FieldReportID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value != nil {
				_m.ReportID = *value
			}
		case reportimage.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case reportimage.FieldOriginalName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_name", values[i])
			} else if value.Valid {
				_m.OriginalName = value.String
			}
		case reportimage.FieldOrden:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field orden", values[i])
			} else if value.Valid {
				_m.Orden = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReportImage.
// This includes values selected through modifiers, order, etc.
func (_m *ReportImage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the ReportImage entity.
func (_m *ReportImage) QueryReport() *ReportQuery {
	return NewReportImageClient(_m.config).QueryReport(_m)
}

// Update returns a builder for updating this ReportImage.
// Note that you need to call ReportImage.Unwrap() before calling this method if this ReportImage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReportImage) Update() *ReportImageUpdateOne {
	return NewReportImageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReportImage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReportImage) Unwrap() *ReportImage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReportImage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReportImage) String() string {
	var builder strings.Builder
	builder.WriteString("ReportImage(")
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
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	builder.WriteString("original_name=")
	builder.WriteString(_m.OriginalName)
	builder.WriteString(", ")
	builder.WriteString("orden=")
	builder.WriteString(fmt.Sprintf("%v", _m.Orden))
	builder.WriteByte(')')
	return builder.String()
}

// ReportImages is a parsable slice of ReportImage.
type ReportImages []*ReportImage

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"NovedadesAPI/ent/report"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Report is the model entity for the Report schema.
type Report struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// UsuarioID holds the value of the "usuario_id" field.
	UsuarioID *string `json:"usuario_id,omitempty"`
	// Zona holds the value of the "zona" field.
	Zona string `json:"zona,omitempty"`
	// Distrito holds the value of the "distrito" field.
	Distrito string `json:"distrito,omitempty"`
	// Circuito holds the value of the "circuito" field.
	Circuito string `json:"circuito,omitempty"`
	// Direccion holds the value of the "direccion" field.
	Direccion string `json:"direccion,omitempty"`
	// HorarioJornada holds the value of the "horario_jornada" field.
	HorarioJornada string `json:"horario_jornada,omitempty"`
	// HoraReporte holds the value of the "hora_reporte" field.
	HoraReporte string `json:"hora_reporte,omitempty"`
	// Fecha holds the value of the "fecha" field.
	Fecha string `json:"fecha,omitempty"`
	// Novedad holds the value of the "novedad" field.
	Novedad string `json:"novedad,omitempty"`
	// ParteInformante holds the value of the "parte_informante" field.
	ParteInformante string `json:"parte_informante,omitempty"`
	// Tipo holds the value of the "tipo" field.
	Tipo report.Tipo `json:"tipo,omitempty"`
	// Estado holds the value of the "estado" field.
	Estado report.Estado `json:"estado,omitempty"`
	// Ubicacion holds the value of the "ubicacion" field.
	Ubicacion *string `json:"ubicacion,omitempty"`
	// DocumentoPdf holds the value of the "documento_pdf" field.
	DocumentoPdf *string `json:"documento_pdf,omitempty"`
	// DocumentoDocx holds the value of the "documento_docx" field.
	DocumentoDocx *string `json:"documento_docx,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReportQuery when eager-loading is set.
	Edges        ReportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReportEdges holds the relations/edges for other nodes in the graph.
type ReportEdges struct {
	// Imagenes holds the value of the imagenes edge.
	Imagenes []*ReportImage `json:"imagenes,omitempty"`
	// Referencias holds the value of the referencias edge.
	Referencias []*LegalReference `json:"referencias,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ImagenesOrErr returns the Imagenes value or an error if the edge
// was not loaded in eager-loading.
func (e ReportEdges) ImagenesOrErr() ([]*ReportImage, error) {
	if e.loadedTypes[0] {
		return e.Imagenes, nil
	}
	return nil, &NotLoadedError{edge: "imagenes"}
}

// ReferenciasOrErr returns the Referencias value or an error if the edge
// was not loaded in eager-loading.
func (e ReportEdges) ReferenciasOrErr() ([]*LegalReference, error) {
	if e.loadedTypes[1] {
		return e.Referencias, nil
	}
	return nil, &NotLoadedError{edge: "referencias"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Report) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case report.FieldVersion:
			values[i] = new(sql.NullInt64)
		case report.FieldUsuarioID, report.FieldZona, report.FieldDistrito, report.FieldCircuito, report.FieldDireccion, report.FieldHorarioJornada, report.FieldHoraReporte, report.FieldFecha, report.FieldNovedad, report.FieldParteInformante, report.FieldTipo, report.FieldEstado, report.FieldUbicacion, report.FieldDocumentoPdf, report.FieldDocumentoDocx:
			values[i] = new(sql.NullString)
		case report.FieldCreatedAt, report.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case report.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Report fields.
func (_m *Report) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case report.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case report.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case report.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case report.FieldUsuarioID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field usuario_id", values[i])
			} else if value.Valid {
				_m.UsuarioID = new(string)
				*_m.UsuarioID = value.String
			}
		case report.FieldZona:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field zona", values[i])
			} else if value.Valid {
				_m.Zona = value.String
			}
		case report.FieldDistrito:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field distrito", values[i])
			} else if value.Valid {
				_m.Distrito = value.String
			}
		case report.FieldCircuito:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field circuito", values[i])
			} else if value.Valid {
				_m.Circuito = value.String
			}
		case report.FieldDireccion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field direccion", values[i])
			} else if value.Valid {
				_m.Direccion = value.String
			}
		case report.FieldHorarioJornada:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field horario_jornada", values[i])
			} else if value.Valid {
				_m.HorarioJornada = value.String
			}
		case report.FieldHoraReporte:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hora_reporte", values[i])
			} else if value.Valid {
				_m.HoraReporte = value.String
			}
		case report.FieldFecha:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fecha", values[i])
			} else if value.Valid {
				_m.Fecha = value.String
			}
		case report.FieldNovedad:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field novedad", values[i])
			} else if value.Valid {
				_m.Novedad = value.String
			}
		case report.FieldParteInformante:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parte_informante", values[i])
			} else if value.Valid {
				_m.ParteInformante = value.String
			}
		case report.FieldTipo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tipo", values[i])
			} else if value.Valid {
				_m.Tipo = report.Tipo(value.String)
			}
		case report.FieldEstado:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field estado", values[i])
			} else if value.Valid {
				_m.Estado = report.Estado(value.String)
			}
		case report.FieldUbicacion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ubicacion", values[i])
			} else if value.Valid {
				_m.Ubicacion = new(string)
				*_m.Ubicacion = value.String
			}
		case report.FieldDocumentoPdf:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field documento_pdf", values[i])
			} else if value.Valid {
				_m.DocumentoPdf = new(string)
				*_m.DocumentoPdf = value.String
			}
		case report.FieldDocumentoDocx:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field documento_docx", values[i])
			} else if value.Valid {
				_m.DocumentoDocx = new(string)
				*_m.DocumentoDocx = value.String
			}
		case report.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Report.
// This includes values selected through modifiers, order, etc.
func (_m *Report) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryImagenes queries the "imagenes" edge of the Report entity.
func (_m *Report) QueryImagenes() *ReportImageQuery {
	return NewReportClient(_m.config).QueryImagenes(_m)
}

// QueryReferencias queries the "referencias" edge of the Report entity.
func (_m *Report) QueryReferencias() *LegalReferenceQuery {
	return NewReportClient(_m.config).QueryReferencias(_m)
}

// Update returns a builder for updating this Report.
// Note that you need to call Report.Unwrap() before calling this method if this Report
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Report) Update() *ReportUpdateOne {
	return NewReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Report entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Report) Unwrap() *Report {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Report is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Report) String() string {
	var builder strings.Builder
	builder.WriteString("Report(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.UsuarioID; v != nil {
		builder.WriteString("usuario_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("zona=")
	builder.WriteString(_m.Zona)
	builder.WriteString(", ")
	builder.WriteString("distrito=")
	builder.WriteString(_m.Distrito)
	builder.WriteString(", ")
	builder.WriteString("circuito=")
	builder.WriteString(_m.Circuito)
	builder.WriteString(", ")
	builder.WriteString("direccion=")
	builder.WriteString(_m.Direccion)
	builder.WriteString(", ")
	builder.WriteString("horario_jornada=")
	builder.WriteString(_m.HorarioJornada)
	builder.WriteString(", ")
	builder.WriteString("hora_reporte=")
	builder.WriteString(_m.HoraReporte)
	builder.WriteString(", ")
	builder.WriteString("fecha=")
	builder.WriteString(_m.Fecha)
	builder.WriteString(", ")
	builder.WriteString("novedad=")
	builder.WriteString(_m.Novedad)
	builder.WriteString(", ")
	builder.WriteString("parte_informante=")
	builder.WriteString(_m.ParteInformante)
	builder.WriteString(", ")
	builder.WriteString("tipo=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tipo))
	builder.WriteString(", ")
	builder.WriteString("estado=")
	builder.WriteString(fmt.Sprintf("%v", _m.Estado))
	builder.WriteString(", ")
	if v := _m.Ubicacion; v != nil {
		builder.WriteString("ubicacion=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DocumentoPdf; v != nil {
		builder.WriteString("documento_pdf=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DocumentoDocx; v != nil {
		builder.WriteString("documento_docx=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteByte(')')
	return builder.String()
}

// Reports is a parsable slice of Report.
type Reports []*Report

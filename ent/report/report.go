// Code generated by ent, DO NOT EDIT.

package report

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the report type in the database.
	Label = "report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUsuarioID holds the string denoting the usuario_id field in the database.
	FieldUsuarioID = "usuario_id"
	// FieldZona holds the string denoting the zona field in the database.
	FieldZona = "zona"
	// FieldDistrito holds the string denoting the distrito field in the database.
	FieldDistrito = "distrito"
	// FieldCircuito holds the string denoting the circuito field in the database.
	FieldCircuito = "circuito"
	// FieldDireccion holds the string denoting the direccion field in the database.
	FieldDireccion = "direccion"
	// FieldHorarioJornada holds the string denoting the horario_jornada field in the database.
	FieldHorarioJornada = "horario_jornada"
	// FieldHoraReporte holds the string denoting the hora_reporte field in the database.
	FieldHoraReporte = "hora_reporte"
	// FieldFecha holds the string denoting the fecha field in the database.
	FieldFecha = "fecha"
	// FieldNovedad holds the string denoting the novedad field in the database.
	FieldNovedad = "novedad"
	// FieldParteInformante holds the string denoting the parte_informante field in the database.
	FieldParteInformante = "parte_informante"
	// FieldTipo holds the string denoting the tipo field in the database.
	FieldTipo = "tipo"
	// FieldEstado holds the string denoting the estado field in the database.
	FieldEstado = "estado"
	// FieldUbicacion holds the string denoting the ubicacion field in the database.
	FieldUbicacion = "ubicacion"
	// FieldDocumentoPdf holds the string denoting the documento_pdf field in the database.
	FieldDocumentoPdf = "documento_pdf"
	// FieldDocumentoDocx holds the string denoting the documento_docx field in the database.
	FieldDocumentoDocx = "documento_docx"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// EdgeImagenes holds the string denoting the imagenes edge name in mutations.
	EdgeImagenes = "imagenes"
	// EdgeReferencias holds the string denoting the referencias edge name in mutations.
	EdgeReferencias = "referencias"
	// Table holds the table name of the report in the database.
	Table = "reports"
	// ImagenesTable is the table that holds the imagenes relation/edge.
	ImagenesTable = "report_images"
	// ImagenesInverseTable is the table name for the ReportImage entity.
	// It exists in this package in order to avoid circular dependency with the "reportimage" package.
	ImagenesInverseTable = "report_images"
	// ImagenesColumn is the table column denoting the imagenes relation/edge.
	ImagenesColumn = "report_id"
	// ReferenciasTable is the table that holds the referencias relation/edge.
	ReferenciasTable = "legal_references"
	// ReferenciasInverseTable is the table name for the LegalReference entity.
	// It exists in this package in order to avoid circular dependency with the "legalreference" package.
	ReferenciasInverseTable = "legal_references"
	// ReferenciasColumn is the table column denoting the referencias relation/edge.
	ReferenciasColumn = "report_id"
)

// Columns holds all SQL columns for report fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUsuarioID,
	FieldZona,
	FieldDistrito,
	FieldCircuito,
	FieldDireccion,
	FieldHorarioJornada,
	FieldHoraReporte,
	FieldFecha,
	FieldNovedad,
	FieldParteInformante,
	FieldTipo,
	FieldEstado,
	FieldUbicacion,
	FieldDocumentoPdf,
	FieldDocumentoDocx,
	FieldVersion,
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
	// UsuarioIDValidator is a validator for the "usuario_id" field. It is called by the builders before save.
	UsuarioIDValidator func(string) error
	// ZonaValidator is a validator for the "zona" field. It is called by the builders before save.
	ZonaValidator func(string) error
	// DistritoValidator is a validator for the "distrito" field. It is called by the builders before save.
	DistritoValidator func(string) error
	// CircuitoValidator is a validator for the "circuito" field. It is called by the builders before save.
	CircuitoValidator func(string) error
	// DireccionValidator is a validator for the "direccion" field. It is called by the builders before save.
	DireccionValidator func(string) error
	// HorarioJornadaValidator is a validator for the "horario_jornada" field. It is called by the builders before save.
	HorarioJornadaValidator func(string) error
	// HoraReporteValidator is a validator for the "hora_reporte" field. It is called by the builders before save.
	HoraReporteValidator func(string) error
	// FechaValidator is a validator for the "fecha" field. It is called by the builders before save.
	FechaValidator func(string) error
	// NovedadValidator is a validator for the "novedad" field. It is called by the builders before save.
	NovedadValidator func(string) error
	// ParteInformanteValidator is a validator for the "parte_informante" field. It is called by the builders before save.
	ParteInformanteValidator func(string) error
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// VersionValidator is a validator for the "version" field. It is called by the builders before save.
	VersionValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Tipo defines the type for the "tipo" enum field.
type Tipo string

// TipoJefeManzana is the default value of the Tipo enum.
const DefaultTipo = TipoJefeManzana

// Tipo values.
const (
	TipoJefeManzana Tipo = "jefe_manzana"
	TipoCiudadano   Tipo = "ciudadano"
	TipoUniformado  Tipo = "uniformado"
)

func (t Tipo) String() string {
	return string(t)
}

// TipoValidator is a validator for the "tipo" field enum values. It is called by the builders before save.
func TipoValidator(t Tipo) error {
	switch t {
	case TipoJefeManzana, TipoCiudadano, TipoUniformado:
		return nil
	default:
		return fmt.Errorf("report: invalid enum value for tipo field: %q", t)
	}
}

// Estado defines the type for the "estado" enum field.
type Estado string

// EstadoPendiente is the default value of the Estado enum.
const DefaultEstado = EstadoPendiente

// Estado values.
const (
	EstadoPendiente  Estado = "pendiente"
	EstadoCompletado Estado = "completado"
)

func (e Estado) String() string {
	return string(e)
}

// EstadoValidator is a validator for the "estado" field enum values. It is called by the builders before save.
func EstadoValidator(e Estado) error {
	switch e {
	case EstadoPendiente, EstadoCompletado:
		return nil
	default:
		return fmt.Errorf("report: invalid enum value for estado field: %q", e)
	}
}

// OrderOption defines the ordering options for the Report queries.
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

// ByUsuarioID orders the results by the usuario_id field.
func ByUsuarioID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsuarioID, opts...).ToFunc()
}

// ByZona orders the results by the zona field.
func ByZona(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZona, opts...).ToFunc()
}

// ByDistrito orders the results by the distrito field.
func ByDistrito(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistrito, opts...).ToFunc()
}

// ByCircuito orders the results by the circuito field.
func ByCircuito(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCircuito, opts...).ToFunc()
}

// ByDireccion orders the results by the direccion field.
func ByDireccion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDireccion, opts...).ToFunc()
}

// ByHorarioJornada orders the results by the horario_jornada field.
func ByHorarioJornada(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHorarioJornada, opts...).ToFunc()
}

// ByHoraReporte orders the results by the hora_reporte field.
func ByHoraReporte(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHoraReporte, opts...).ToFunc()
}

// ByFecha orders the results by the fecha field.
func ByFecha(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFecha, opts...).ToFunc()
}

// ByNovedad orders the results by the novedad field.
func ByNovedad(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNovedad, opts...).ToFunc()
}

// ByParteInformante orders the results by the parte_informante field.
func ByParteInformante(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParteInformante, opts...).ToFunc()
}

// ByTipo orders the results by the tipo field.
func ByTipo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTipo, opts...).ToFunc()
}

// ByEstado orders the results by the estado field.
func ByEstado(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstado, opts...).ToFunc()
}

// ByUbicacion orders the results by the ubicacion field.
func ByUbicacion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUbicacion, opts...).ToFunc()
}

// ByDocumentoPdf orders the results by the documento_pdf field.
func ByDocumentoPdf(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentoPdf, opts...).ToFunc()
}

// ByDocumentoDocx orders the results by the documento_docx field.
func ByDocumentoDocx(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentoDocx, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByImagenesCount orders the results by imagenes count.
func ByImagenesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newImagenesStep(), opts...)
	}
}

// ByImagenes orders the results by imagenes terms.
func ByImagenes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newImagenesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByReferenciasCount orders the results by referencias count.
func ByReferenciasCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReferenciasStep(), opts...)
	}
}

// ByReferencias orders the results by referencias terms.
func ByReferencias(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReferenciasStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newImagenesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ImagenesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ImagenesTable, ImagenesColumn),
	)
}
func newReferenciasStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReferenciasInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReferenciasTable, ReferenciasColumn),
	)
}

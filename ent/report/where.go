// Code generated by ent, DO NOT EDIT.

package report

import (
	"NovedadesAPI/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUpdatedAt, v))
}

// UsuarioID applies equality check predicate on the "usuario_id" field. It's identical to UsuarioIDEQ.
func UsuarioID(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUsuarioID, v))
}

// Zona applies equality check predicate on the "zona" field. It's identical to ZonaEQ.
func Zona(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldZona, v))
}

// Distrito applies equality check predicate on the "distrito" field. It's identical to DistritoEQ.
func Distrito(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDistrito, v))
}

// Circuito applies equality check predicate on the "circuito" field. It's identical to CircuitoEQ.
func Circuito(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCircuito, v))
}

// Direccion applies equality check predicate on the "direccion" field. It's identical to DireccionEQ.
func Direccion(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDireccion, v))
}

// HorarioJornada applies equality check predicate on the "horario_jornada" field. It's identical to HorarioJornadaEQ.
func HorarioJornada(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldHorarioJornada, v))
}

// HoraReporte applies equality check predicate on the "hora_reporte" field. It's identical to HoraReporteEQ.
func HoraReporte(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldHoraReporte, v))
}

// Fecha applies equality check predicate on the "fecha" field. It's identical to FechaEQ.
func Fecha(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldFecha, v))
}

// Novedad applies equality check predicate on the "novedad" field. It's identical to NovedadEQ.
func Novedad(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldNovedad, v))
}

// ParteInformante applies equality check predicate on the "parte_informante" field. It's identical to ParteInformanteEQ.
func ParteInformante(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldParteInformante, v))
}

// Ubicacion applies equality check predicate on the "ubicacion" field. It's identical to UbicacionEQ.
func Ubicacion(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUbicacion, v))
}

// DocumentoPdf applies equality check predicate on the "documento_pdf" field. It's identical to DocumentoPdfEQ.
func DocumentoPdf(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDocumentoPdf, v))
}

// DocumentoDocx applies equality check predicate on the "documento_docx" field. It's identical to DocumentoDocxEQ.
func DocumentoDocx(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDocumentoDocx, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldUpdatedAt, v))
}

// UsuarioIDEQ applies the EQ predicate on the "usuario_id" field.
func UsuarioIDEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUsuarioID, v))
}

// UsuarioIDNEQ applies the NEQ predicate on the "usuario_id" field.
func UsuarioIDNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldUsuarioID, v))
}

// UsuarioIDIn applies the In predicate on the "usuario_id" field.
func UsuarioIDIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldUsuarioID, vs...))
}

// UsuarioIDNotIn applies the NotIn predicate on the "usuario_id" field.
func UsuarioIDNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldUsuarioID, vs...))
}

// UsuarioIDGT applies the GT predicate on the "usuario_id" field.
func UsuarioIDGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldUsuarioID, v))
}

// UsuarioIDGTE applies the GTE predicate on the "usuario_id" field.
func UsuarioIDGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldUsuarioID, v))
}

// UsuarioIDLT applies the LT predicate on the "usuario_id" field.
func UsuarioIDLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldUsuarioID, v))
}

// UsuarioIDLTE applies the LTE predicate on the "usuario_id" field.
func UsuarioIDLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldUsuarioID, v))
}

// UsuarioIDContains applies the Contains predicate on the "usuario_id" field.
func UsuarioIDContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldUsuarioID, v))
}

// UsuarioIDHasPrefix applies the HasPrefix predicate on the "usuario_id" field.
func UsuarioIDHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldUsuarioID, v))
}

// UsuarioIDHasSuffix applies the HasSuffix predicate on the "usuario_id" field.
func UsuarioIDHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldUsuarioID, v))
}

// UsuarioIDIsNil applies the IsNil predicate on the "usuario_id" field.
func UsuarioIDIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldUsuarioID))
}

// UsuarioIDNotNil applies the NotNil predicate on the "usuario_id" field.
func UsuarioIDNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldUsuarioID))
}

// UsuarioIDEqualFold applies the EqualFold predicate on the "usuario_id" field.
func UsuarioIDEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldUsuarioID, v))
}

// UsuarioIDContainsFold applies the ContainsFold predicate on the "usuario_id" field.
func UsuarioIDContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldUsuarioID, v))
}

// ZonaEQ applies the EQ predicate on the "zona" field.
func ZonaEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldZona, v))
}

// ZonaNEQ applies the NEQ predicate on the "zona" field.
func ZonaNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldZona, v))
}

// ZonaIn applies the In predicate on the "zona" field.
func ZonaIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldZona, vs...))
}

// ZonaNotIn applies the NotIn predicate on the "zona" field.
func ZonaNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldZona, vs...))
}

// ZonaGT applies the GT predicate on the "zona" field.
func ZonaGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldZona, v))
}

// ZonaGTE applies the GTE predicate on the "zona" field.
func ZonaGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldZona, v))
}

// ZonaLT applies the LT predicate on the "zona" field.
func ZonaLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldZona, v))
}

// ZonaLTE applies the LTE predicate on the "zona" field.
func ZonaLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldZona, v))
}

// ZonaContains applies the Contains predicate on the "zona" field.
func ZonaContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldZona, v))
}

// ZonaHasPrefix applies the HasPrefix predicate on the "zona" field.
func ZonaHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldZona, v))
}

// ZonaHasSuffix applies the HasSuffix predicate on the "zona" field.
func ZonaHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldZona, v))
}

// ZonaEqualFold applies the EqualFold predicate on the "zona" field.
func ZonaEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldZona, v))
}

// ZonaContainsFold applies the ContainsFold predicate on the "zona" field.
func ZonaContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldZona, v))
}

// DistritoEQ applies the EQ predicate on the "distrito" field.
func DistritoEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDistrito, v))
}

// DistritoNEQ applies the NEQ predicate on the "distrito" field.
func DistritoNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldDistrito, v))
}

// DistritoIn applies the In predicate on the "distrito" field.
func DistritoIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldDistrito, vs...))
}

// DistritoNotIn applies the NotIn predicate on the "distrito" field.
func DistritoNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldDistrito, vs...))
}

// DistritoGT applies the GT predicate on the "distrito" field.
func DistritoGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldDistrito, v))
}

// DistritoGTE applies the GTE predicate on the "distrito" field.
func DistritoGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldDistrito, v))
}

// DistritoLT applies the LT predicate on the "distrito" field.
func DistritoLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldDistrito, v))
}

// DistritoLTE applies the LTE predicate on the "distrito" field.
func DistritoLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldDistrito, v))
}

// DistritoContains applies the Contains predicate on the "distrito" field.
func DistritoContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldDistrito, v))
}

// DistritoHasPrefix applies the HasPrefix predicate on the "distrito" field.
func DistritoHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldDistrito, v))
}

// DistritoHasSuffix applies the HasSuffix predicate on the "distrito" field.
func DistritoHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldDistrito, v))
}

// DistritoEqualFold applies the EqualFold predicate on the "distrito" field.
func DistritoEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldDistrito, v))
}

// DistritoContainsFold applies the ContainsFold predicate on the "distrito" field.
func DistritoContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldDistrito, v))
}

// CircuitoEQ applies the EQ predicate on the "circuito" field.
func CircuitoEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCircuito, v))
}

// CircuitoNEQ applies the NEQ predicate on the "circuito" field.
func CircuitoNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldCircuito, v))
}

// CircuitoIn applies the In predicate on the "circuito" field.
func CircuitoIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldCircuito, vs...))
}

// CircuitoNotIn applies the NotIn predicate on the "circuito" field.
func CircuitoNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldCircuito, vs...))
}

// CircuitoGT applies the GT predicate on the "circuito" field.
func CircuitoGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldCircuito, v))
}

// CircuitoGTE applies the GTE predicate on the "circuito" field.
func CircuitoGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldCircuito, v))
}

// CircuitoLT applies the LT predicate on the "circuito" field.
func CircuitoLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldCircuito, v))
}

// CircuitoLTE applies the LTE predicate on the "circuito" field.
func CircuitoLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldCircuito, v))
}

// CircuitoContains applies the Contains predicate on the "circuito" field.
func CircuitoContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldCircuito, v))
}

// CircuitoHasPrefix applies the HasPrefix predicate on the "circuito" field.
func CircuitoHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldCircuito, v))
}

// CircuitoHasSuffix applies the HasSuffix predicate on the "circuito" field.
func CircuitoHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldCircuito, v))
}

// CircuitoEqualFold applies the EqualFold predicate on the "circuito" field.
func CircuitoEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldCircuito, v))
}

// CircuitoContainsFold applies the ContainsFold predicate on the "circuito" field.
func CircuitoContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldCircuito, v))
}

// DireccionEQ applies the EQ predicate on the "direccion" field.
func DireccionEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDireccion, v))
}

// DireccionNEQ applies the NEQ predicate on the "direccion" field.
func DireccionNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldDireccion, v))
}

// DireccionIn applies the In predicate on the "direccion" field.
func DireccionIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldDireccion, vs...))
}

// DireccionNotIn applies the NotIn predicate on the "direccion" field.
func DireccionNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldDireccion, vs...))
}

// DireccionGT applies the GT predicate on the "direccion" field.
func DireccionGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldDireccion, v))
}

// DireccionGTE applies the GTE predicate on the "direccion" field.
func DireccionGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldDireccion, v))
}

// DireccionLT applies the LT predicate on the "direccion" field.
func DireccionLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldDireccion, v))
}

// DireccionLTE applies the LTE predicate on the "direccion" field.
func DireccionLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldDireccion, v))
}

// DireccionContains applies the Contains predicate on the "direccion" field.
func DireccionContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldDireccion, v))
}

// DireccionHasPrefix applies the HasPrefix predicate on the "direccion" field.
func DireccionHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldDireccion, v))
}

// DireccionHasSuffix applies the HasSuffix predicate on the "direccion" field.
func DireccionHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldDireccion, v))
}

// DireccionEqualFold applies the EqualFold predicate on the "direccion" field.
func DireccionEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldDireccion, v))
}

// DireccionContainsFold applies the ContainsFold predicate on the "direccion" field.
func DireccionContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldDireccion, v))
}

// HorarioJornadaEQ applies the EQ predicate on the "horario_jornada" field.
func HorarioJornadaEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldHorarioJornada, v))
}

// HorarioJornadaNEQ applies the NEQ predicate on the "horario_jornada" field.
func HorarioJornadaNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldHorarioJornada, v))
}

// HorarioJornadaIn applies the In predicate on the "horario_jornada" field.
func HorarioJornadaIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldHorarioJornada, vs...))
}

// HorarioJornadaNotIn applies the NotIn predicate on the "horario_jornada" field.
func HorarioJornadaNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldHorarioJornada, vs...))
}

// HorarioJornadaGT applies the GT predicate on the "horario_jornada" field.
func HorarioJornadaGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldHorarioJornada, v))
}

// HorarioJornadaGTE applies the GTE predicate on the "horario_jornada" field.
func HorarioJornadaGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldHorarioJornada, v))
}

// HorarioJornadaLT applies the LT predicate on the "horario_jornada" field.
func HorarioJornadaLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldHorarioJornada, v))
}

// HorarioJornadaLTE applies the LTE predicate on the "horario_jornada" field.
func HorarioJornadaLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldHorarioJornada, v))
}

// HorarioJornadaContains applies the Contains predicate on the "horario_jornada" field.
func HorarioJornadaContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldHorarioJornada, v))
}

// HorarioJornadaHasPrefix applies the HasPrefix predicate on the "horario_jornada" field.
func HorarioJornadaHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldHorarioJornada, v))
}

// HorarioJornadaHasSuffix applies the HasSuffix predicate on the "horario_jornada" field.
func HorarioJornadaHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldHorarioJornada, v))
}

// HorarioJornadaEqualFold applies the EqualFold predicate on the "horario_jornada" field.
func HorarioJornadaEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldHorarioJornada, v))
}

// HorarioJornadaContainsFold applies the ContainsFold predicate on the "horario_jornada" field.
func HorarioJornadaContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldHorarioJornada, v))
}

// HoraReporteEQ applies the EQ predicate on the "hora_reporte" field.
func HoraReporteEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldHoraReporte, v))
}

// HoraReporteNEQ applies the NEQ predicate on the "hora_reporte" field.
func HoraReporteNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldHoraReporte, v))
}

// HoraReporteIn applies the In predicate on the "hora_reporte" field.
func HoraReporteIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldHoraReporte, vs...))
}

// HoraReporteNotIn applies the NotIn predicate on the "hora_reporte" field.
func HoraReporteNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldHoraReporte, vs...))
}

// HoraReporteGT applies the GT predicate on the "hora_reporte" field.
func HoraReporteGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldHoraReporte, v))
}

// HoraReporteGTE applies the GTE predicate on the "hora_reporte" field.
func HoraReporteGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldHoraReporte, v))
}

// HoraReporteLT applies the LT predicate on the "hora_reporte" field.
func HoraReporteLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldHoraReporte, v))
}

// HoraReporteLTE applies the LTE predicate on the "hora_reporte" field.
func HoraReporteLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldHoraReporte, v))
}

// HoraReporteContains applies the Contains predicate on the "hora_reporte" field.
func HoraReporteContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldHoraReporte, v))
}

// HoraReporteHasPrefix applies the HasPrefix predicate on the "hora_reporte" field.
func HoraReporteHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldHoraReporte, v))
}

// HoraReporteHasSuffix applies the HasSuffix predicate on the "hora_reporte" field.
func HoraReporteHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldHoraReporte, v))
}

// HoraReporteEqualFold applies the EqualFold predicate on the "hora_reporte" field.
func HoraReporteEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldHoraReporte, v))
}

// HoraReporteContainsFold applies the ContainsFold predicate on the "hora_reporte" field.
func HoraReporteContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldHoraReporte, v))
}

// FechaEQ applies the EQ predicate on the "fecha" field.
func FechaEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldFecha, v))
}

// FechaNEQ applies the NEQ predicate on the "fecha" field.
func FechaNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldFecha, v))
}

// FechaIn applies the In predicate on the "fecha" field.
func FechaIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldFecha, vs...))
}

// FechaNotIn applies the NotIn predicate on the "fecha" field.
func FechaNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldFecha, vs...))
}

// FechaGT applies the GT predicate on the "fecha" field.
func FechaGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldFecha, v))
}

// FechaGTE applies the GTE predicate on the "fecha" field.
func FechaGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldFecha, v))
}

// FechaLT applies the LT predicate on the "fecha" field.
func FechaLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldFecha, v))
}

// FechaLTE applies the LTE predicate on the "fecha" field.
func FechaLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldFecha, v))
}

// FechaContains applies the Contains predicate on the "fecha" field.
func FechaContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldFecha, v))
}

// FechaHasPrefix applies the HasPrefix predicate on the "fecha" field.
func FechaHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldFecha, v))
}

// FechaHasSuffix applies the HasSuffix predicate on the "fecha" field.
func FechaHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldFecha, v))
}

// FechaEqualFold applies the EqualFold predicate on the "fecha" field.
func FechaEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldFecha, v))
}

// FechaContainsFold applies the ContainsFold predicate on the "fecha" field.
func FechaContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldFecha, v))
}

// NovedadEQ applies the EQ predicate on the "novedad" field.
func NovedadEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldNovedad, v))
}

// NovedadNEQ applies the NEQ predicate on the "novedad" field.
func NovedadNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldNovedad, v))
}

// NovedadIn applies the In predicate on the "novedad" field.
func NovedadIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldNovedad, vs...))
}

// NovedadNotIn applies the NotIn predicate on the "novedad" field.
func NovedadNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldNovedad, vs...))
}

// NovedadGT applies the GT predicate on the "novedad" field.
func NovedadGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldNovedad, v))
}

// NovedadGTE applies the GTE predicate on the "novedad" field.
func NovedadGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldNovedad, v))
}

// NovedadLT applies the LT predicate on the "novedad" field.
func NovedadLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldNovedad, v))
}

// NovedadLTE applies the LTE predicate on the "novedad" field.
func NovedadLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldNovedad, v))
}

// NovedadContains applies the Contains predicate on the "novedad" field.
func NovedadContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldNovedad, v))
}

// NovedadHasPrefix applies the HasPrefix predicate on the "novedad" field.
func NovedadHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldNovedad, v))
}

// NovedadHasSuffix applies the HasSuffix predicate on the "novedad" field.
func NovedadHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldNovedad, v))
}

// NovedadEqualFold applies the EqualFold predicate on the "novedad" field.
func NovedadEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldNovedad, v))
}

// NovedadContainsFold applies the ContainsFold predicate on the "novedad" field.
func NovedadContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldNovedad, v))
}

// ParteInformanteEQ applies the EQ predicate on the "parte_informante" field.
func ParteInformanteEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldParteInformante, v))
}

// ParteInformanteNEQ applies the NEQ predicate on the "parte_informante" field.
func ParteInformanteNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldParteInformante, v))
}

// ParteInformanteIn applies the In predicate on the "parte_informante" field.
func ParteInformanteIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldParteInformante, vs...))
}

// ParteInformanteNotIn applies the NotIn predicate on the "parte_informante" field.
func ParteInformanteNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldParteInformante, vs...))
}

// ParteInformanteGT applies the GT predicate on the "parte_informante" field.
func ParteInformanteGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldParteInformante, v))
}

// ParteInformanteGTE applies the GTE predicate on the "parte_informante" field.
func ParteInformanteGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldParteInformante, v))
}

// ParteInformanteLT applies the LT predicate on the "parte_informante" field.
func ParteInformanteLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldParteInformante, v))
}

// ParteInformanteLTE applies the LTE predicate on the "parte_informante" field.
func ParteInformanteLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldParteInformante, v))
}

// ParteInformanteContains applies the Contains predicate on the "parte_informante" field.
func ParteInformanteContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldParteInformante, v))
}

// ParteInformanteHasPrefix applies the HasPrefix predicate on the "parte_informante" field.
func ParteInformanteHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldParteInformante, v))
}

// ParteInformanteHasSuffix applies the HasSuffix predicate on the "parte_informante" field.
func ParteInformanteHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldParteInformante, v))
}

// ParteInformanteIsNil applies the IsNil predicate on the "parte_informante" field.
func ParteInformanteIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldParteInformante))
}

// ParteInformanteNotNil applies the NotNil predicate on the "parte_informante" field.
func ParteInformanteNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldParteInformante))
}

// ParteInformanteEqualFold applies the EqualFold predicate on the "parte_informante" field.
func ParteInformanteEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldParteInformante, v))
}

// ParteInformanteContainsFold applies the ContainsFold predicate on the "parte_informante" field.
func ParteInformanteContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldParteInformante, v))
}

// TipoEQ applies the EQ predicate on the "tipo" field.
func TipoEQ(v Tipo) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTipo, v))
}

// TipoNEQ applies the NEQ predicate on the "tipo" field.
func TipoNEQ(v Tipo) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldTipo, v))
}

// TipoIn applies the In predicate on the "tipo" field.
func TipoIn(vs ...Tipo) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldTipo, vs...))
}

// TipoNotIn applies the NotIn predicate on the "tipo" field.
func TipoNotIn(vs ...Tipo) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldTipo, vs...))
}

// EstadoEQ applies the EQ predicate on the "estado" field.
func EstadoEQ(v Estado) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldEstado, v))
}

// EstadoNEQ applies the NEQ predicate on the "estado" field.
func EstadoNEQ(v Estado) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldEstado, v))
}

// EstadoIn applies the In predicate on the "estado" field.
func EstadoIn(vs ...Estado) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldEstado, vs...))
}

// EstadoNotIn applies the NotIn predicate on the "estado" field.
func EstadoNotIn(vs ...Estado) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldEstado, vs...))
}

// UbicacionEQ applies the EQ predicate on the "ubicacion" field.
func UbicacionEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUbicacion, v))
}

// UbicacionNEQ applies the NEQ predicate on the "ubicacion" field.
func UbicacionNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldUbicacion, v))
}

// UbicacionIn applies the In predicate on the "ubicacion" field.
func UbicacionIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldUbicacion, vs...))
}

// UbicacionNotIn applies the NotIn predicate on the "ubicacion" field.
func UbicacionNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldUbicacion, vs...))
}

// UbicacionGT applies the GT predicate on the "ubicacion" field.
func UbicacionGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldUbicacion, v))
}

// UbicacionGTE applies the GTE predicate on the "ubicacion" field.
func UbicacionGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldUbicacion, v))
}

// UbicacionLT applies the LT predicate on the "ubicacion" field.
func UbicacionLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldUbicacion, v))
}

// UbicacionLTE applies the LTE predicate on the "ubicacion" field.
func UbicacionLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldUbicacion, v))
}

// UbicacionContains applies the Contains predicate on the "ubicacion" field.
func UbicacionContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldUbicacion, v))
}

// UbicacionHasPrefix applies the HasPrefix predicate on the "ubicacion" field.
func UbicacionHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldUbicacion, v))
}

// UbicacionHasSuffix applies the HasSuffix predicate on the "ubicacion" field.
func UbicacionHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldUbicacion, v))
}

// UbicacionIsNil applies the IsNil predicate on the "ubicacion" field.
func UbicacionIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldUbicacion))
}

// UbicacionNotNil applies the NotNil predicate on the "ubicacion" field.
func UbicacionNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldUbicacion))
}

// UbicacionEqualFold applies the EqualFold predicate on the "ubicacion" field.
func UbicacionEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldUbicacion, v))
}

// UbicacionContainsFold applies the ContainsFold predicate on the "ubicacion" field.
func UbicacionContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldUbicacion, v))
}

// DocumentoPdfEQ applies the EQ predicate on the "documento_pdf" field.
func DocumentoPdfEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDocumentoPdf, v))
}

// DocumentoPdfNEQ applies the NEQ predicate on the "documento_pdf" field.
func DocumentoPdfNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldDocumentoPdf, v))
}

// DocumentoPdfIn applies the In predicate on the "documento_pdf" field.
func DocumentoPdfIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldDocumentoPdf, vs...))
}

// DocumentoPdfNotIn applies the NotIn predicate on the "documento_pdf" field.
func DocumentoPdfNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldDocumentoPdf, vs...))
}

// DocumentoPdfGT applies the GT predicate on the "documento_pdf" field.
func DocumentoPdfGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldDocumentoPdf, v))
}

// DocumentoPdfGTE applies the GTE predicate on the "documento_pdf" field.
func DocumentoPdfGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldDocumentoPdf, v))
}

// DocumentoPdfLT applies the LT predicate on the "documento_pdf" field.
func DocumentoPdfLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldDocumentoPdf, v))
}

// DocumentoPdfLTE applies the LTE predicate on the "documento_pdf" field.
func DocumentoPdfLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldDocumentoPdf, v))
}

// DocumentoPdfContains applies the Contains predicate on the "documento_pdf" field.
func DocumentoPdfContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldDocumentoPdf, v))
}

// DocumentoPdfHasPrefix applies the HasPrefix predicate on the "documento_pdf" field.
func DocumentoPdfHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldDocumentoPdf, v))
}

// DocumentoPdfHasSuffix applies the HasSuffix predicate on the "documento_pdf" field.
func DocumentoPdfHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldDocumentoPdf, v))
}

// DocumentoPdfIsNil applies the IsNil predicate on the "documento_pdf" field.
func DocumentoPdfIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldDocumentoPdf))
}

// DocumentoPdfNotNil applies the NotNil predicate on the "documento_pdf" field.
func DocumentoPdfNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldDocumentoPdf))
}

// DocumentoPdfEqualFold applies the EqualFold predicate on the "documento_pdf" field.
func DocumentoPdfEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldDocumentoPdf, v))
}

// DocumentoPdfContainsFold applies the ContainsFold predicate on the "documento_pdf" field.
func DocumentoPdfContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldDocumentoPdf, v))
}

// DocumentoDocxEQ applies the EQ predicate on the "documento_docx" field.
func DocumentoDocxEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDocumentoDocx, v))
}

// DocumentoDocxNEQ applies the NEQ predicate on the "documento_docx" field.
func DocumentoDocxNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldDocumentoDocx, v))
}

// DocumentoDocxIn applies the In predicate on the "documento_docx" field.
func DocumentoDocxIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldDocumentoDocx, vs...))
}

// DocumentoDocxNotIn applies the NotIn predicate on the "documento_docx" field.
func DocumentoDocxNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldDocumentoDocx, vs...))
}

// DocumentoDocxGT applies the GT predicate on the "documento_docx" field.
func DocumentoDocxGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldDocumentoDocx, v))
}

// DocumentoDocxGTE applies the GTE predicate on the "documento_docx" field.
func DocumentoDocxGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldDocumentoDocx, v))
}

// DocumentoDocxLT applies the LT predicate on the "documento_docx" field.
func DocumentoDocxLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldDocumentoDocx, v))
}

// DocumentoDocxLTE applies the LTE predicate on the "documento_docx" field.
func DocumentoDocxLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldDocumentoDocx, v))
}

// DocumentoDocxContains applies the Contains predicate on the "documento_docx" field.
func DocumentoDocxContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldDocumentoDocx, v))
}

// DocumentoDocxHasPrefix applies the HasPrefix predicate on the "documento_docx" field.
func DocumentoDocxHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldDocumentoDocx, v))
}

// DocumentoDocxHasSuffix applies the HasSuffix predicate on the "documento_docx" field.
func DocumentoDocxHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldDocumentoDocx, v))
}

// DocumentoDocxIsNil applies the IsNil predicate on the "documento_docx" field.
func DocumentoDocxIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldDocumentoDocx))
}

// DocumentoDocxNotNil applies the NotNil predicate on the "documento_docx" field.
func DocumentoDocxNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldDocumentoDocx))
}

// DocumentoDocxEqualFold applies the EqualFold predicate on the "documento_docx" field.
func DocumentoDocxEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldDocumentoDocx, v))
}

// DocumentoDocxContainsFold applies the ContainsFold predicate on the "documento_docx" field.
func DocumentoDocxContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldDocumentoDocx, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldVersion, v))
}

// HasImagenes applies the HasEdge predicate on the "imagenes" edge.
func HasImagenes() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ImagenesTable, ImagenesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasImagenesWith applies the HasEdge predicate on the "imagenes" edge with a given conditions (other predicates).
func HasImagenesWith(preds ...predicate.ReportImage) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newImagenesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReferencias applies the HasEdge predicate on the "referencias" edge.
func HasReferencias() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReferenciasTable, ReferenciasColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReferenciasWith applies the HasEdge predicate on the "referencias" edge with a given conditions (other predicates).
func HasReferenciasWith(preds ...predicate.LegalReference) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newReferenciasStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Report) predicate.Report {
	return predicate.Report(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Report) predicate.Report {
	return predicate.Report(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Report) predicate.Report {
	return predicate.Report(sql.NotPredicates(p))
}

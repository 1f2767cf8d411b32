// Code generated by ent, DO NOT EDIT.

package ent

import (
	"NovedadesAPI/ent/legalreference"
	"NovedadesAPI/ent/predicate"
	"NovedadesAPI/ent/report"
	"NovedadesAPI/ent/reportimage"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ReportUpdate is the builder for updating Report entities.
type ReportUpdate struct {
	config
	hooks    []Hook
	mutation *ReportMutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdate) Where(ps ...predicate.Report) *ReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportUpdate) SetUpdatedAt(v time.Time) *ReportUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetZona sets the "zona" field.
func (_u *ReportUpdate) SetZona(v string) *ReportUpdate {
	_u.mutation.SetZona(v)
	return _u
}

// SetNillableZona sets the "zona" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableZona(v *string) *ReportUpdate {
	if v != nil {
		_u.SetZona(*v)
	}
	return _u
}

// SetDistrito sets the "distrito" field.
func (_u *ReportUpdate) SetDistrito(v string) *ReportUpdate {
	_u.mutation.SetDistrito(v)
	return _u
}

// SetNillableDistrito sets the "distrito" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableDistrito(v *string) *ReportUpdate {
	if v != nil {
		_u.SetDistrito(*v)
	}
	return _u
}

// SetCircuito sets the "circuito" field.
func (_u *ReportUpdate) SetCircuito(v string) *ReportUpdate {
	_u.mutation.SetCircuito(v)
	return _u
}

// SetNillableCircuito sets the "circuito" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableCircuito(v *string) *ReportUpdate {
	if v != nil {
		_u.SetCircuito(*v)
	}
	return _u
}

// SetDireccion sets the "direccion" field.
func (_u *ReportUpdate) SetDireccion(v string) *ReportUpdate {
	_u.mutation.SetDireccion(v)
	return _u
}

// SetNillableDireccion sets the "direccion" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableDireccion(v *string) *ReportUpdate {
	if v != nil {
		_u.SetDireccion(*v)
	}
	return _u
}

// SetHorarioJornada sets the "horario_jornada" field.
func (_u *ReportUpdate) SetHorarioJornada(v string) *ReportUpdate {
	_u.mutation.SetHorarioJornada(v)
	return _u
}

// SetNillableHorarioJornada sets the "horario_jornada" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableHorarioJornada(v *string) *ReportUpdate {
	if v != nil {
		_u.SetHorarioJornada(*v)
	}
	return _u
}

// SetHoraReporte sets the "hora_reporte" field.
func (_u *ReportUpdate) SetHoraReporte(v string) *ReportUpdate {
	_u.mutation.SetHoraReporte(v)
	return _u
}

// SetNillableHoraReporte sets the "hora_reporte" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableHoraReporte(v *string) *ReportUpdate {
	if v != nil {
		_u.SetHoraReporte(*v)
	}
	return _u
}

// SetFecha sets the "fecha" field.
func (_u *ReportUpdate) SetFecha(v string) *ReportUpdate {
	_u.mutation.SetFecha(v)
	return _u
}

// SetNillableFecha sets the "fecha" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableFecha(v *string) *ReportUpdate {
	if v != nil {
		_u.SetFecha(*v)
	}
	return _u
}

// SetNovedad sets the "novedad" field.
func (_u *ReportUpdate) SetNovedad(v string) *ReportUpdate {
	_u.mutation.SetNovedad(v)
	return _u
}

// SetNillableNovedad sets the "novedad" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableNovedad(v *string) *ReportUpdate {
	if v != nil {
		_u.SetNovedad(*v)
	}
	return _u
}

// SetParteInformante sets the "parte_informante" field.
func (_u *ReportUpdate) SetParteInformante(v string) *ReportUpdate {
	_u.mutation.SetParteInformante(v)
	return _u
}

// SetNillableParteInformante sets the "parte_informante" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableParteInformante(v *string) *ReportUpdate {
	if v != nil {
		_u.SetParteInformante(*v)
	}
	return _u
}

// ClearParteInformante clears the value of the "parte_informante" field.
func (_u *ReportUpdate) ClearParteInformante() *ReportUpdate {
	_u.mutation.ClearParteInformante()
	return _u
}

// SetTipo sets the "tipo" field.
func (_u *ReportUpdate) SetTipo(v report.Tipo) *ReportUpdate {
	_u.mutation.SetTipo(v)
	return _u
}

// SetNillableTipo sets the "tipo" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableTipo(v *report.Tipo) *ReportUpdate {
	if v != nil {
		_u.SetTipo(*v)
	}
	return _u
}

// SetEstado sets the "estado" field.
func (_u *ReportUpdate) SetEstado(v report.Estado) *ReportUpdate {
	_u.mutation.SetEstado(v)
	return _u
}

// SetNillableEstado sets the "estado" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableEstado(v *report.Estado) *ReportUpdate {
	if v != nil {
		_u.SetEstado(*v)
	}
	return _u
}

// SetUbicacion sets the "ubicacion" field.
func (_u *ReportUpdate) SetUbicacion(v string) *ReportUpdate {
	_u.mutation.SetUbicacion(v)
	return _u
}

// SetNillableUbicacion sets the "ubicacion" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableUbicacion(v *string) *ReportUpdate {
	if v != nil {
		_u.SetUbicacion(*v)
	}
	return _u
}

// ClearUbicacion clears the value of the "ubicacion" field.
func (_u *ReportUpdate) ClearUbicacion() *ReportUpdate {
	_u.mutation.ClearUbicacion()
	return _u
}

// SetDocumentoPdf sets the "documento_pdf" field.
func (_u *ReportUpdate) SetDocumentoPdf(v string) *ReportUpdate {
	_u.mutation.SetDocumentoPdf(v)
	return _u
}

// SetNillableDocumentoPdf sets the "documento_pdf" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableDocumentoPdf(v *string) *ReportUpdate {
	if v != nil {
		_u.SetDocumentoPdf(*v)
	}
	return _u
}

// ClearDocumentoPdf clears the value of the "documento_pdf" field.
func (_u *ReportUpdate) ClearDocumentoPdf() *ReportUpdate {
	_u.mutation.ClearDocumentoPdf()
	return _u
}

// SetDocumentoDocx sets the "documento_docx" field.
func (_u *ReportUpdate) SetDocumentoDocx(v string) *ReportUpdate {
	_u.mutation.SetDocumentoDocx(v)
	return _u
}

// SetNillableDocumentoDocx sets the "documento_docx" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableDocumentoDocx(v *string) *ReportUpdate {
	if v != nil {
		_u.SetDocumentoDocx(*v)
	}
	return _u
}

// ClearDocumentoDocx clears the value of the "documento_docx" field.
func (_u *ReportUpdate) ClearDocumentoDocx() *ReportUpdate {
	_u.mutation.ClearDocumentoDocx()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ReportUpdate) SetVersion(v int) *ReportUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableVersion(v *int) *ReportUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ReportUpdate) AddVersion(v int) *ReportUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// AddImageneIDs adds the "imagenes" edge to the ReportImage entity by IDs.
func (_u *ReportUpdate) AddImageneIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.AddImageneIDs(ids...)
	return _u
}

// AddImagenes adds the "imagenes" edges to the ReportImage entity.
func (_u *ReportUpdate) AddImagenes(v ...*ReportImage) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImageneIDs(ids...)
}

// AddReferenciaIDs adds the "referencias" edge to the LegalReference entity by IDs.
func (_u *ReportUpdate) AddReferenciaIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.AddReferenciaIDs(ids...)
	return _u
}

// AddReferencias adds the "referencias" edges to the LegalReference entity.
func (_u *ReportUpdate) AddReferencias(v ...*LegalReference) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReferenciaIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdate) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearImagenes clears all "imagenes" edges to the ReportImage entity.
func (_u *ReportUpdate) ClearImagenes() *ReportUpdate {
	_u.mutation.ClearImagenes()
	return _u
}

// RemoveImageneIDs removes the "imagenes" edge to ReportImage entities by IDs.
func (_u *ReportUpdate) RemoveImageneIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.RemoveImageneIDs(ids...)
	return _u
}

// RemoveImagenes removes "imagenes" edges to ReportImage entities.
func (_u *ReportUpdate) RemoveImagenes(v ...*ReportImage) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImageneIDs(ids...)
}

// ClearReferencias clears all "referencias" edges to the LegalReference entity.
func (_u *ReportUpdate) ClearReferencias() *ReportUpdate {
	_u.mutation.ClearReferencias()
	return _u
}

// RemoveReferenciaIDs removes the "referencias" edge to LegalReference entities by IDs.
func (_u *ReportUpdate) RemoveReferenciaIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.RemoveReferenciaIDs(ids...)
	return _u
}

// RemoveReferencias removes "referencias" edges to LegalReference entities.
func (_u *ReportUpdate) RemoveReferencias(v ...*LegalReference) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReferenciaIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := report.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdate) check() error {
	if v, ok := _u.mutation.Zona(); ok {
		if err := report.ZonaValidator(v); err != nil {
			return &ValidationError{Name: "zona", err: fmt.Errorf(`ent: validator failed for field "Report.zona": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Distrito(); ok {
		if err := report.DistritoValidator(v); err != nil {
			return &ValidationError{Name: "distrito", err: fmt.Errorf(`ent: validator failed for field "Report.distrito": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Circuito(); ok {
		if err := report.CircuitoValidator(v); err != nil {
			return &ValidationError{Name: "circuito", err: fmt.Errorf(`ent: validator failed for field "Report.circuito": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Direccion(); ok {
		if err := report.DireccionValidator(v); err != nil {
			return &ValidationError{Name: "direccion", err: fmt.Errorf(`ent: validator failed for field "Report.direccion": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HorarioJornada(); ok {
		if err := report.HorarioJornadaValidator(v); err != nil {
			return &ValidationError{Name: "horario_jornada", err: fmt.Errorf(`ent: validator failed for field "Report.horario_jornada": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HoraReporte(); ok {
		if err := report.HoraReporteValidator(v); err != nil {
			return &ValidationError{Name: "hora_reporte", err: fmt.Errorf(`ent: validator failed for field "Report.hora_reporte": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fecha(); ok {
		if err := report.FechaValidator(v); err != nil {
			return &ValidationError{Name: "fecha", err: fmt.Errorf(`ent: validator failed for field "Report.fecha": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Novedad(); ok {
		if err := report.NovedadValidator(v); err != nil {
			return &ValidationError{Name: "novedad", err: fmt.Errorf(`ent: validator failed for field "Report.novedad": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ParteInformante(); ok {
		if err := report.ParteInformanteValidator(v); err != nil {
			return &ValidationError{Name: "parte_informante", err: fmt.Errorf(`ent: validator failed for field "Report.parte_informante": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tipo(); ok {
		if err := report.TipoValidator(v); err != nil {
			return &ValidationError{Name: "tipo", err: fmt.Errorf(`ent: validator failed for field "Report.tipo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Estado(); ok {
		if err := report.EstadoValidator(v); err != nil {
			return &ValidationError{Name: "estado", err: fmt.Errorf(`ent: validator failed for field "Report.estado": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := report.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Report.version": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UsuarioIDCleared() {
		_spec.ClearField(report.FieldUsuarioID, field.TypeString)
	}
	if value, ok := _u.mutation.Zona(); ok {
		_spec.SetField(report.FieldZona, field.TypeString, value)
	}
	if value, ok := _u.mutation.Distrito(); ok {
		_spec.SetField(report.FieldDistrito, field.TypeString, value)
	}
	if value, ok := _u.mutation.Circuito(); ok {
		_spec.SetField(report.FieldCircuito, field.TypeString, value)
	}
	if value, ok := _u.mutation.Direccion(); ok {
		_spec.SetField(report.FieldDireccion, field.TypeString, value)
	}
	if value, ok := _u.mutation.HorarioJornada(); ok {
		_spec.SetField(report.FieldHorarioJornada, field.TypeString, value)
	}
	if value, ok := _u.mutation.HoraReporte(); ok {
		_spec.SetField(report.FieldHoraReporte, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fecha(); ok {
		_spec.SetField(report.FieldFecha, field.TypeString, value)
	}
	if value, ok := _u.mutation.Novedad(); ok {
		_spec.SetField(report.FieldNovedad, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParteInformante(); ok {
		_spec.SetField(report.FieldParteInformante, field.TypeString, value)
	}
	if _u.mutation.ParteInformanteCleared() {
		_spec.ClearField(report.FieldParteInformante, field.TypeString)
	}
	if value, ok := _u.mutation.Tipo(); ok {
		_spec.SetField(report.FieldTipo, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Estado(); ok {
		_spec.SetField(report.FieldEstado, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Ubicacion(); ok {
		_spec.SetField(report.FieldUbicacion, field.TypeString, value)
	}
	if _u.mutation.UbicacionCleared() {
		_spec.ClearField(report.FieldUbicacion, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentoPdf(); ok {
		_spec.SetField(report.FieldDocumentoPdf, field.TypeString, value)
	}
	if _u.mutation.DocumentoPdfCleared() {
		_spec.ClearField(report.FieldDocumentoPdf, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentoDocx(); ok {
		_spec.SetField(report.FieldDocumentoDocx, field.TypeString, value)
	}
	if _u.mutation.DocumentoDocxCleared() {
		_spec.ClearField(report.FieldDocumentoDocx, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(report.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(report.FieldVersion, field.TypeInt, value)
	}
	if _u.mutation.ImagenesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ImagenesTable,
			Columns: []string{report.ImagenesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportimage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImagenesIDs(); len(nodes) > 0 && !_u.mutation.ImagenesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ImagenesTable,
			Columns: []string{report.ImagenesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportimage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImagenesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ImagenesTable,
			Columns: []string{report.ImagenesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportimage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReferenciasCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ReferenciasTable,
			Columns: []string{report.ReferenciasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(legalreference.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReferenciasIDs(); len(nodes) > 0 && !_u.mutation.ReferenciasCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ReferenciasTable,
			Columns: []string{report.ReferenciasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(legalreference.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReferenciasIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ReferenciasTable,
			Columns: []string{report.ReferenciasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(legalreference.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportUpdateOne is the builder for updating a single Report entity.
type ReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportUpdateOne) SetUpdatedAt(v time.Time) *ReportUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetZona sets the "zona" field.
func (_u *ReportUpdateOne) SetZona(v string) *ReportUpdateOne {
	_u.mutation.SetZona(v)
	return _u
}

// SetNillableZona sets the "zona" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableZona(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetZona(*v)
	}
	return _u
}

// SetDistrito sets the "distrito" field.
func (_u *ReportUpdateOne) SetDistrito(v string) *ReportUpdateOne {
	_u.mutation.SetDistrito(v)
	return _u
}

// SetNillableDistrito sets the "distrito" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableDistrito(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetDistrito(*v)
	}
	return _u
}

// SetCircuito sets the "circuito" field.
func (_u *ReportUpdateOne) SetCircuito(v string) *ReportUpdateOne {
	_u.mutation.SetCircuito(v)
	return _u
}

// SetNillableCircuito sets the "circuito" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableCircuito(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetCircuito(*v)
	}
	return _u
}

// SetDireccion sets the "direccion" field.
func (_u *ReportUpdateOne) SetDireccion(v string) *ReportUpdateOne {
	_u.mutation.SetDireccion(v)
	return _u
}

// SetNillableDireccion sets the "direccion" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableDireccion(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetDireccion(*v)
	}
	return _u
}

// SetHorarioJornada sets the "horario_jornada" field.
func (_u *ReportUpdateOne) SetHorarioJornada(v string) *ReportUpdateOne {
	_u.mutation.SetHorarioJornada(v)
	return _u
}

// SetNillableHorarioJornada sets the "horario_jornada" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableHorarioJornada(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetHorarioJornada(*v)
	}
	return _u
}

// SetHoraReporte sets the "hora_reporte" field.
func (_u *ReportUpdateOne) SetHoraReporte(v string) *ReportUpdateOne {
	_u.mutation.SetHoraReporte(v)
	return _u
}

// SetNillableHoraReporte sets the "hora_reporte" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableHoraReporte(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetHoraReporte(*v)
	}
	return _u
}

// SetFecha sets the "fecha" field.
func (_u *ReportUpdateOne) SetFecha(v string) *ReportUpdateOne {
	_u.mutation.SetFecha(v)
	return _u
}

// SetNillableFecha sets the "fecha" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableFecha(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetFecha(*v)
	}
	return _u
}

// SetNovedad sets the "novedad" field.
func (_u *ReportUpdateOne) SetNovedad(v string) *ReportUpdateOne {
	_u.mutation.SetNovedad(v)
	return _u
}

// SetNillableNovedad sets the "novedad" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableNovedad(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetNovedad(*v)
	}
	return _u
}

// SetParteInformante sets the "parte_informante" field.
func (_u *ReportUpdateOne) SetParteInformante(v string) *ReportUpdateOne {
	_u.mutation.SetParteInformante(v)
	return _u
}

// SetNillableParteInformante sets the "parte_informante" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableParteInformante(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetParteInformante(*v)
	}
	return _u
}

// ClearParteInformante clears the value of the "parte_informante" field.
func (_u *ReportUpdateOne) ClearParteInformante() *ReportUpdateOne {
	_u.mutation.ClearParteInformante()
	return _u
}

// SetTipo sets the "tipo" field.
func (_u *ReportUpdateOne) SetTipo(v report.Tipo) *ReportUpdateOne {
	_u.mutation.SetTipo(v)
	return _u
}

// SetNillableTipo sets the "tipo" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableTipo(v *report.Tipo) *ReportUpdateOne {
	if v != nil {
		_u.SetTipo(*v)
	}
	return _u
}

// SetEstado sets the "estado" field.
func (_u *ReportUpdateOne) SetEstado(v report.Estado) *ReportUpdateOne {
	_u.mutation.SetEstado(v)
	return _u
}

// SetNillableEstado sets the "estado" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableEstado(v *report.Estado) *ReportUpdateOne {
	if v != nil {
		_u.SetEstado(*v)
	}
	return _u
}

// SetUbicacion sets the "ubicacion" field.
func (_u *ReportUpdateOne) SetUbicacion(v string) *ReportUpdateOne {
	_u.mutation.SetUbicacion(v)
	return _u
}

// SetNillableUbicacion sets the "ubicacion" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableUbicacion(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetUbicacion(*v)
	}
	return _u
}

// ClearUbicacion clears the value of the "ubicacion" field.
func (_u *ReportUpdateOne) ClearUbicacion() *ReportUpdateOne {
	_u.mutation.ClearUbicacion()
	return _u
}

// SetDocumentoPdf sets the "documento_pdf" field.
func (_u *ReportUpdateOne) SetDocumentoPdf(v string) *ReportUpdateOne {
	_u.mutation.SetDocumentoPdf(v)
	return _u
}

// SetNillableDocumentoPdf sets the "documento_pdf" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableDocumentoPdf(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetDocumentoPdf(*v)
	}
	return _u
}

// ClearDocumentoPdf clears the value of the "documento_pdf" field.
func (_u *ReportUpdateOne) ClearDocumentoPdf() *ReportUpdateOne {
	_u.mutation.ClearDocumentoPdf()
	return _u
}

// SetDocumentoDocx sets the "documento_docx" field.
func (_u *ReportUpdateOne) SetDocumentoDocx(v string) *ReportUpdateOne {
	_u.mutation.SetDocumentoDocx(v)
	return _u
}

// SetNillableDocumentoDocx sets the "documento_docx" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableDocumentoDocx(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetDocumentoDocx(*v)
	}
	return _u
}

// ClearDocumentoDocx clears the value of the "documento_docx" field.
func (_u *ReportUpdateOne) ClearDocumentoDocx() *ReportUpdateOne {
	_u.mutation.ClearDocumentoDocx()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ReportUpdateOne) SetVersion(v int) *ReportUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableVersion(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ReportUpdateOne) AddVersion(v int) *ReportUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// AddImageneIDs adds the "imagenes" edge to the ReportImage entity by IDs.
func (_u *ReportUpdateOne) AddImageneIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.AddImageneIDs(ids...)
	return _u
}

// AddImagenes adds the "imagenes" edges to the ReportImage entity.
func (_u *ReportUpdateOne) AddImagenes(v ...*ReportImage) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImageneIDs(ids...)
}

// AddReferenciaIDs adds the "referencias" edge to the LegalReference entity by IDs.
func (_u *ReportUpdateOne) AddReferenciaIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.AddReferenciaIDs(ids...)
	return _u
}

// AddReferencias adds the "referencias" edges to the LegalReference entity.
func (_u *ReportUpdateOne) AddReferencias(v ...*LegalReference) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReferenciaIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdateOne) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearImagenes clears all "imagenes" edges to the ReportImage entity.
func (_u *ReportUpdateOne) ClearImagenes() *ReportUpdateOne {
	_u.mutation.ClearImagenes()
	return _u
}

// RemoveImageneIDs removes the "imagenes" edge to ReportImage entities by IDs.
func (_u *ReportUpdateOne) RemoveImageneIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.RemoveImageneIDs(ids...)
	return _u
}

// RemoveImagenes removes "imagenes" edges to ReportImage entities.
func (_u *ReportUpdateOne) RemoveImagenes(v ...*ReportImage) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImageneIDs(ids...)
}

// ClearReferencias clears all "referencias" edges to the LegalReference entity.
func (_u *ReportUpdateOne) ClearReferencias() *ReportUpdateOne {
	_u.mutation.ClearReferencias()
	return _u
}

// RemoveReferenciaIDs removes the "referencias" edge to LegalReference entities by IDs.
func (_u *ReportUpdateOne) RemoveReferenciaIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.RemoveReferenciaIDs(ids...)
	return _u
}

// RemoveReferencias removes "referencias" edges to LegalReference entities.
func (_u *ReportUpdateOne) RemoveReferencias(v ...*LegalReference) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReferenciaIDs(ids...)
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdateOne) Where(ps ...predicate.Report) *ReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportUpdateOne) Select(field string, fields ...string) *ReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Report entity.
func (_u *ReportUpdateOne) Save(ctx context.Context) (*Report, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdateOne) SaveX(ctx context.Context) *Report {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := report.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdateOne) check() error {
	if v, ok := _u.mutation.Zona(); ok {
		if err := report.ZonaValidator(v); err != nil {
			return &ValidationError{Name: "zona", err: fmt.Errorf(`ent: validator failed for field "Report.zona": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Distrito(); ok {
		if err := report.DistritoValidator(v); err != nil {
			return &ValidationError{Name: "distrito", err: fmt.Errorf(`ent: validator failed for field "Report.distrito": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Circuito(); ok {
		if err := report.CircuitoValidator(v); err != nil {
			return &ValidationError{Name: "circuito", err: fmt.Errorf(`ent: validator failed for field "Report.circuito": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Direccion(); ok {
		if err := report.DireccionValidator(v); err != nil {
			return &ValidationError{Name: "direccion", err: fmt.Errorf(`ent: validator failed for field "Report.direccion": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HorarioJornada(); ok {
		if err := report.HorarioJornadaValidator(v); err != nil {
			return &ValidationError{Name: "horario_jornada", err: fmt.Errorf(`ent: validator failed for field "Report.horario_jornada": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HoraReporte(); ok {
		if err := report.HoraReporteValidator(v); err != nil {
			return &ValidationError{Name: "hora_reporte", err: fmt.Errorf(`ent: validator failed for field "Report.hora_reporte": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fecha(); ok {
		if err := report.FechaValidator(v); err != nil {
			return &ValidationError{Name: "fecha", err: fmt.Errorf(`ent: validator failed for field "Report.fecha": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Novedad(); ok {
		if err := report.NovedadValidator(v); err != nil {
			return &ValidationError{Name: "novedad", err: fmt.Errorf(`ent: validator failed for field "Report.novedad": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ParteInformante(); ok {
		if err := report.ParteInformanteValidator(v); err != nil {
			return &ValidationError{Name: "parte_informante", err: fmt.Errorf(`ent: validator failed for field "Report.parte_informante": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tipo(); ok {
		if err := report.TipoValidator(v); err != nil {
			return &ValidationError{Name: "tipo", err: fmt.Errorf(`ent: validator failed for field "Report.tipo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Estado(); ok {
		if err := report.EstadoValidator(v); err != nil {
			return &ValidationError{Name: "estado", err: fmt.Errorf(`ent: validator failed for field "Report.estado": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := report.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Report.version": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportUpdateOne) sqlSave(ctx context.Context) (_node *Report, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Report.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, report.FieldID)
		for _, f := range fields {
			if !report.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != report.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UsuarioIDCleared() {
		_spec.ClearField(report.FieldUsuarioID, field.TypeString)
	}
	if value, ok := _u.mutation.Zona(); ok {
		_spec.SetField(report.FieldZona, field.TypeString, value)
	}
	if value, ok := _u.mutation.Distrito(); ok {
		_spec.SetField(report.FieldDistrito, field.TypeString, value)
	}
	if value, ok := _u.mutation.Circuito(); ok {
		_spec.SetField(report.FieldCircuito, field.TypeString, value)
	}
	if value, ok := _u.mutation.Direccion(); ok {
		_spec.SetField(report.FieldDireccion, field.TypeString, value)
	}
	if value, ok := _u.mutation.HorarioJornada(); ok {
		_spec.SetField(report.FieldHorarioJornada, field.TypeString, value)
	}
	if value, ok := _u.mutation.HoraReporte(); ok {
		_spec.SetField(report.FieldHoraReporte, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fecha(); ok {
		_spec.SetField(report.FieldFecha, field.TypeString, value)
	}
	if value, ok := _u.mutation.Novedad(); ok {
		_spec.SetField(report.FieldNovedad, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParteInformante(); ok {
		_spec.SetField(report.FieldParteInformante, field.TypeString, value)
	}
	if _u.mutation.ParteInformanteCleared() {
		_spec.ClearField(report.FieldParteInformante, field.TypeString)
	}
	if value, ok := _u.mutation.Tipo(); ok {
		_spec.SetField(report.FieldTipo, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Estado(); ok {
		_spec.SetField(report.FieldEstado, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Ubicacion(); ok {
		_spec.SetField(report.FieldUbicacion, field.TypeString, value)
	}
	if _u.mutation.UbicacionCleared() {
		_spec.ClearField(report.FieldUbicacion, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentoPdf(); ok {
		_spec.SetField(report.FieldDocumentoPdf, field.TypeString, value)
	}
	if _u.mutation.DocumentoPdfCleared() {
		_spec.ClearField(report.FieldDocumentoPdf, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentoDocx(); ok {
		_spec.SetField(report.FieldDocumentoDocx, field.TypeString, value)
	}
	if _u.mutation.DocumentoDocxCleared() {
		_spec.ClearField(report.FieldDocumentoDocx, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(report.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(report.FieldVersion, field.TypeInt, value)
	}
	if _u.mutation.ImagenesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ImagenesTable,
			Columns: []string{report.ImagenesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportimage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImagenesIDs(); len(nodes) > 0 && !_u.mutation.ImagenesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ImagenesTable,
			Columns: []string{report.ImagenesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportimage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImagenesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ImagenesTable,
			Columns: []string{report.ImagenesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportimage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReferenciasCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ReferenciasTable,
			Columns: []string{report.ReferenciasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(legalreference.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReferenciasIDs(); len(nodes) > 0 && !_u.mutation.ReferenciasCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ReferenciasTable,
			Columns: []string{report.ReferenciasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(legalreference.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReferenciasIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ReferenciasTable,
			Columns: []string{report.ReferenciasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(legalreference.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Report{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"NovedadesAPI/ent/legalreference"
	"NovedadesAPI/ent/report"
	"NovedadesAPI/ent/reportimage"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ReportCreate is the builder for creating a Report entity.
type ReportCreate struct {
	config
	mutation *ReportMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReportCreate) SetCreatedAt(v time.Time) *ReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReportCreate) SetNillableCreatedAt(v *time.Time) *ReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReportCreate) SetUpdatedAt(v time.Time) *ReportCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReportCreate) SetNillableUpdatedAt(v *time.Time) *ReportCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUsuarioID sets the "usuario_id" field.
func (_c *ReportCreate) SetUsuarioID(v string) *ReportCreate {
	_c.mutation.SetUsuarioID(v)
	return _c
}

// SetNillableUsuarioID sets the "usuario_id" field if the given value is not nil.
func (_c *ReportCreate) SetNillableUsuarioID(v *string) *ReportCreate {
	if v != nil {
		_c.SetUsuarioID(*v)
	}
	return _c
}

// SetZona sets the "zona" field.
func (_c *ReportCreate) SetZona(v string) *ReportCreate {
	_c.mutation.SetZona(v)
	return _c
}

// SetDistrito sets the "distrito" field.
func (_c *ReportCreate) SetDistrito(v string) *ReportCreate {
	_c.mutation.SetDistrito(v)
	return _c
}

// SetCircuito sets the "circuito" field.
func (_c *ReportCreate) SetCircuito(v string) *ReportCreate {
	_c.mutation.SetCircuito(v)
	return _c
}

// SetDireccion sets the "direccion" field.
func (_c *ReportCreate) SetDireccion(v string) *ReportCreate {
	_c.mutation.SetDireccion(v)
	return _c
}

// SetHorarioJornada sets the "horario_jornada" field.
func (_c *ReportCreate) SetHorarioJornada(v string) *ReportCreate {
	_c.mutation.SetHorarioJornada(v)
	return _c
}

// SetHoraReporte sets the "hora_reporte" field.
func (_c *ReportCreate) SetHoraReporte(v string) *ReportCreate {
	_c.mutation.SetHoraReporte(v)
	return _c
}

// SetFecha sets the "fecha" field.
func (_c *ReportCreate) SetFecha(v string) *ReportCreate {
	_c.mutation.SetFecha(v)
	return _c
}

// SetNovedad sets the "novedad" field.
func (_c *ReportCreate) SetNovedad(v string) *ReportCreate {
	_c.mutation.SetNovedad(v)
	return _c
}

// SetParteInformante sets the "parte_informante" field.
func (_c *ReportCreate) SetParteInformante(v string) *ReportCreate {
	_c.mutation.SetParteInformante(v)
	return _c
}

// SetNillableParteInformante sets the "parte_informante" field if the given value is not nil.
func (_c *ReportCreate) SetNillableParteInformante(v *string) *ReportCreate {
	if v != nil {
		_c.SetParteInformante(*v)
	}
	return _c
}

// SetTipo sets the "tipo" field.
func (_c *ReportCreate) SetTipo(v report.Tipo) *ReportCreate {
	_c.mutation.SetTipo(v)
	return _c
}

// SetNillableTipo sets the "tipo" field if the given value is not nil.
func (_c *ReportCreate) SetNillableTipo(v *report.Tipo) *ReportCreate {
	if v != nil {
		_c.SetTipo(*v)
	}
	return _c
}

// SetEstado sets the "estado" field.
func (_c *ReportCreate) SetEstado(v report.Estado) *ReportCreate {
	_c.mutation.SetEstado(v)
	return _c
}

// SetNillableEstado sets the "estado" field if the given value is not nil.
func (_c *ReportCreate) SetNillableEstado(v *report.Estado) *ReportCreate {
	if v != nil {
		_c.SetEstado(*v)
	}
	return _c
}

// SetUbicacion sets the "ubicacion" field.
func (_c *ReportCreate) SetUbicacion(v string) *ReportCreate {
	_c.mutation.SetUbicacion(v)
	return _c
}

// SetNillableUbicacion sets the "ubicacion" field if the given value is not nil.
func (_c *ReportCreate) SetNillableUbicacion(v *string) *ReportCreate {
	if v != nil {
		_c.SetUbicacion(*v)
	}
	return _c
}

// SetDocumentoPdf sets the "documento_pdf" field.
func (_c *ReportCreate) SetDocumentoPdf(v string) *ReportCreate {
	_c.mutation.SetDocumentoPdf(v)
	return _c
}

// SetNillableDocumentoPdf sets the "documento_pdf" field if the given value is not nil.
func (_c *ReportCreate) SetNillableDocumentoPdf(v *string) *ReportCreate {
	if v != nil {
		_c.SetDocumentoPdf(*v)
	}
	return _c
}

// SetDocumentoDocx sets the "documento_docx" field.
func (_c *ReportCreate) SetDocumentoDocx(v string) *ReportCreate {
	_c.mutation.SetDocumentoDocx(v)
	return _c
}

// SetNillableDocumentoDocx sets the "documento_docx" field if the given value is not nil.
func (_c *ReportCreate) SetNillableDocumentoDocx(v *string) *ReportCreate {
	if v != nil {
		_c.SetDocumentoDocx(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *ReportCreate) SetVersion(v int) *ReportCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ReportCreate) SetNillableVersion(v *int) *ReportCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReportCreate) SetID(v uuid.UUID) *ReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReportCreate) SetNillableID(v *uuid.UUID) *ReportCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddImageneIDs adds the "imagenes" edge to the ReportImage entity by IDs.
func (_c *ReportCreate) AddImageneIDs(ids ...uuid.UUID) *ReportCreate {
	_c.mutation.AddImageneIDs(ids...)
	return _c
}

// AddImagenes adds the "imagenes" edges to the ReportImage entity.
func (_c *ReportCreate) AddImagenes(v ...*ReportImage) *ReportCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddImageneIDs(ids...)
}

// AddReferenciaIDs adds the "referencias" edge to the LegalReference entity by IDs.
func (_c *ReportCreate) AddReferenciaIDs(ids ...uuid.UUID) *ReportCreate {
	_c.mutation.AddReferenciaIDs(ids...)
	return _c
}

// AddReferencias adds the "referencias" edges to the LegalReference entity.
func (_c *ReportCreate) AddReferencias(v ...*LegalReference) *ReportCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReferenciaIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_c *ReportCreate) Mutation() *ReportMutation {
	return _c.mutation
}

// Save creates the Report in the database.
func (_c *ReportCreate) Save(ctx context.Context) (*Report, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportCreate) SaveX(ctx context.Context) *Report {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := report.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := report.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Tipo(); !ok {
		v := report.DefaultTipo
		_c.mutation.SetTipo(v)
	}
	if _, ok := _c.mutation.Estado(); !ok {
		v := report.DefaultEstado
		_c.mutation.SetEstado(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := report.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := report.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Report.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Report.updated_at"`)}
	}
	if v, ok := _c.mutation.UsuarioID(); ok {
		if err := report.UsuarioIDValidator(v); err != nil {
			return &ValidationError{Name: "usuario_id", err: fmt.Errorf(`ent: validator failed for field "Report.usuario_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Zona(); !ok {
		return &ValidationError{Name: "zona", err: errors.New(`ent: missing required field "Report.zona"`)}
	}
	if v, ok := _c.mutation.Zona(); ok {
		if err := report.ZonaValidator(v); err != nil {
			return &ValidationError{Name: "zona", err: fmt.Errorf(`ent: validator failed for field "Report.zona": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Distrito(); !ok {
		return &ValidationError{Name: "distrito", err: errors.New(`ent: missing required field "Report.distrito"`)}
	}
	if v, ok := _c.mutation.Distrito(); ok {
		if err := report.DistritoValidator(v); err != nil {
			return &ValidationError{Name: "distrito", err: fmt.Errorf(`ent: validator failed for field "Report.distrito": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Circuito(); !ok {
		return &ValidationError{Name: "circuito", err: errors.New(`ent: missing required field "Report.circuito"`)}
	}
	if v, ok := _c.mutation.Circuito(); ok {
		if err := report.CircuitoValidator(v); err != nil {
			return &ValidationError{Name: "circuito", err: fmt.Errorf(`ent: validator failed for field "Report.circuito": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Direccion(); !ok {
		return &ValidationError{Name: "direccion", err: errors.New(`ent: missing required field "Report.direccion"`)}
	}
	if v, ok := _c.mutation.Direccion(); ok {
		if err := report.DireccionValidator(v); err != nil {
			return &ValidationError{Name: "direccion", err: fmt.Errorf(`ent: validator failed for field "Report.direccion": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HorarioJornada(); !ok {
		return &ValidationError{Name: "horario_jornada", err: errors.New(`ent: missing required field "Report.horario_jornada"`)}
	}
	if v, ok := _c.mutation.HorarioJornada(); ok {
		if err := report.HorarioJornadaValidator(v); err != nil {
			return &ValidationError{Name: "horario_jornada", err: fmt.Errorf(`ent: validator failed for field "Report.horario_jornada": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HoraReporte(); !ok {
		return &ValidationError{Name: "hora_reporte", err: errors.New(`ent: missing required field "Report.hora_reporte"`)}
	}
	if v, ok := _c.mutation.HoraReporte(); ok {
		if err := report.HoraReporteValidator(v); err != nil {
			return &ValidationError{Name: "hora_reporte", err: fmt.Errorf(`ent: validator failed for field "Report.hora_reporte": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Fecha(); !ok {
		return &ValidationError{Name: "fecha", err: errors.New(`ent: missing required field "Report.fecha"`)}
	}
	if v, ok := _c.mutation.Fecha(); ok {
		if err := report.FechaValidator(v); err != nil {
			return &ValidationError{Name: "fecha", err: fmt.Errorf(`ent: validator failed for field "Report.fecha": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Novedad(); !ok {
		return &ValidationError{Name: "novedad", err: errors.New(`ent: missing required field "Report.novedad"`)}
	}
	if v, ok := _c.mutation.Novedad(); ok {
		if err := report.NovedadValidator(v); err != nil {
			return &ValidationError{Name: "novedad", err: fmt.Errorf(`ent: validator failed for field "Report.novedad": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ParteInformante(); ok {
		if err := report.ParteInformanteValidator(v); err != nil {
			return &ValidationError{Name: "parte_informante", err: fmt.Errorf(`ent: validator failed for field "Report.parte_informante": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tipo(); !ok {
		return &ValidationError{Name: "tipo", err: errors.New(`ent: missing required field "Report.tipo"`)}
	}
	if v, ok := _c.mutation.Tipo(); ok {
		if err := report.TipoValidator(v); err != nil {
			return &ValidationError{Name: "tipo", err: fmt.Errorf(`ent: validator failed for field "Report.tipo": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Estado(); !ok {
		return &ValidationError{Name: "estado", err: errors.New(`ent: missing required field "Report.estado"`)}
	}
	if v, ok := _c.mutation.Estado(); ok {
		if err := report.EstadoValidator(v); err != nil {
			return &ValidationError{Name: "estado", err: fmt.Errorf(`ent: validator failed for field "Report.estado": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Report.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := report.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Report.version": %w`, err)}
		}
	}
	return nil
}

func (_c *ReportCreate) sqlSave(ctx context.Context) (*Report, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReportCreate) createSpec() (*Report, *sqlgraph.CreateSpec) {
	var (
		_node = &Report{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(report.Table, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(report.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UsuarioID(); ok {
		_spec.SetField(report.FieldUsuarioID, field.TypeString, value)
		_node.UsuarioID = &value
	}
	if value, ok := _c.mutation.Zona(); ok {
		_spec.SetField(report.FieldZona, field.TypeString, value)
		_node.Zona = value
	}
	if value, ok := _c.mutation.Distrito(); ok {
		_spec.SetField(report.FieldDistrito, field.TypeString, value)
		_node.Distrito = value
	}
	if value, ok := _c.mutation.Circuito(); ok {
		_spec.SetField(report.FieldCircuito, field.TypeString, value)
		_node.Circuito = value
	}
	if value, ok := _c.mutation.Direccion(); ok {
		_spec.SetField(report.FieldDireccion, field.TypeString, value)
		_node.Direccion = value
	}
	if value, ok := _c.mutation.HorarioJornada(); ok {
		_spec.SetField(report.FieldHorarioJornada, field.TypeString, value)
		_node.HorarioJornada = value
	}
	if value, ok := _c.mutation.HoraReporte(); ok {
		_spec.SetField(report.FieldHoraReporte, field.TypeString, value)
		_node.HoraReporte = value
	}
	if value, ok := _c.mutation.Fecha(); ok {
		_spec.SetField(report.FieldFecha, field.TypeString, value)
		_node.Fecha = value
	}
	if value, ok := _c.mutation.Novedad(); ok {
		_spec.SetField(report.FieldNovedad, field.TypeString, value)
		_node.Novedad = value
	}
	if value, ok := _c.mutation.ParteInformante(); ok {
		_spec.SetField(report.FieldParteInformante, field.TypeString, value)
		_node.ParteInformante = value
	}
	if value, ok := _c.mutation.Tipo(); ok {
		_spec.SetField(report.FieldTipo, field.TypeEnum, value)
		_node.Tipo = value
	}
	if value, ok := _c.mutation.Estado(); ok {
		_spec.SetField(report.FieldEstado, field.TypeEnum, value)
		_node.Estado = value
	}
	if value, ok := _c.mutation.Ubicacion(); ok {
		_spec.SetField(report.FieldUbicacion, field.TypeString, value)
		_node.Ubicacion = &value
	}
	if value, ok := _c.mutation.DocumentoPdf(); ok {
		_spec.SetField(report.FieldDocumentoPdf, field.TypeString, value)
		_node.DocumentoPdf = &value
	}
	if value, ok := _c.mutation.DocumentoDocx(); ok {
		_spec.SetField(report.FieldDocumentoDocx, field.TypeString, value)
		_node.DocumentoDocx = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(report.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if nodes := _c.mutation.ImagenesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReferenciasIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReportCreateBulk is the builder for creating many Report entities in bulk.
type ReportCreateBulk struct {
	config
	err      error
	builders []*ReportCreate
}

// Save creates the Report entities in the database.
func (_c *ReportCreateBulk) Save(ctx context.Context) ([]*Report, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Report, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReportCreateBulk) SaveX(ctx context.Context) []*Report {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

package repository

import (
	"NovedadesAPI/ent"
	"NovedadesAPI/ent/report"
	"NovedadesAPI/ent/reportimage"
	"NovedadesAPI/internal/geo"
	"NovedadesAPI/internal/model"
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

type ReportRepository struct {
	client *ent.Client
}

func NewReportRepository(client *ent.Client) *ReportRepository {
	return &ReportRepository{
		client: client,
	}
}

// CreateReportRecord carries the validated fields for a new row. The row
// always starts in estado pendiente.
type CreateReportRecord struct {
	UsuarioID       *string
	Zona            string
	Distrito        string
	Circuito        string
	Direccion       string
	HorarioJornada  string
	HoraReporte     string
	Fecha           string
	Novedad         string
	ParteInformante string
	Tipo            string
	Ubicacion       *string
}

func (r *ReportRepository) Create(ctx context.Context, rec CreateReportRecord) (*ent.Report, error) {
	create := r.client.Report.Create().
		SetNillableUsuarioID(rec.UsuarioID).
		SetZona(rec.Zona).
		SetDistrito(rec.Distrito).
		SetCircuito(rec.Circuito).
		SetDireccion(rec.Direccion).
		SetHorarioJornada(rec.HorarioJornada).
		SetHoraReporte(rec.HoraReporte).
		SetFecha(rec.Fecha).
		SetNovedad(rec.Novedad).
		SetParteInformante(rec.ParteInformante).
		SetNillableUbicacion(rec.Ubicacion)

	if rec.Tipo != "" {
		create.SetTipo(report.Tipo(rec.Tipo))
	}

	return create.Save(ctx)
}

func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Report, error) {
	return r.client.Report.Get(ctx, id)
}

// GetWithRelations loads the report together with its ordered images and
// its legal references joined to law and article.
func (r *ReportRepository) GetWithRelations(ctx context.Context, id uuid.UUID) (*ent.Report, error) {
	return r.client.Report.Query().
		Where(report.ID(id)).
		WithImagenes(func(q *ent.ReportImageQuery) {
			q.Order(ent.Asc(reportimage.FieldOrden))
		}).
		WithReferencias(func(q *ent.LegalReferenceQuery) {
			q.WithLey().WithArticulo()
		}).
		Only(ctx)
}

// UpdateReportRecord is a partial patch. Nil means "leave unchanged";
// for Ubicacion an empty string clears the point.
type UpdateReportRecord struct {
	Zona            *string
	Distrito        *string
	Circuito        *string
	Direccion       *string
	HorarioJornada  *string
	HoraReporte     *string
	Fecha           *string
	Novedad         *string
	ParteInformante *string
	Tipo            *string
	Ubicacion       *string
	// BumpVersion re-arms the render pipeline: version increments and the
	// report drops back to pendiente until new artifacts land.
	BumpVersion bool
}

func (r *ReportRepository) Update(ctx context.Context, id uuid.UUID, rec UpdateReportRecord) (*ent.Report, error) {
	update := r.client.Report.UpdateOneID(id).
		SetNillableZona(rec.Zona).
		SetNillableDistrito(rec.Distrito).
		SetNillableCircuito(rec.Circuito).
		SetNillableDireccion(rec.Direccion).
		SetNillableHorarioJornada(rec.HorarioJornada).
		SetNillableHoraReporte(rec.HoraReporte).
		SetNillableFecha(rec.Fecha).
		SetNillableNovedad(rec.Novedad).
		SetNillableParteInformante(rec.ParteInformante)

	if rec.Tipo != nil {
		update.SetTipo(report.Tipo(*rec.Tipo))
	}
	if rec.Ubicacion != nil {
		if *rec.Ubicacion == "" {
			update.ClearUbicacion()
		} else {
			update.SetUbicacion(*rec.Ubicacion)
		}
	}
	if rec.BumpVersion {
		update.AddVersion(1).
			SetEstado(report.EstadoPendiente).
			ClearDocumentoPdf().
			ClearDocumentoDocx()
	}

	return update.Save(ctx)
}

// AttachArtifacts completes the lifecycle for one version. The version
// guard keeps a stale render from overwriting a newer submission; the
// bool result reports whether the row was actually advanced.
func (r *ReportRepository) AttachArtifacts(ctx context.Context, id uuid.UUID, version int, pdfKey, docxKey string) (bool, error) {
	n, err := r.client.Report.Update().
		Where(report.ID(id), report.VersionEQ(version)).
		SetDocumentoPdf(pdfKey).
		SetDocumentoDocx(docxKey).
		SetEstado(report.EstadoCompletado).
		Save(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Report.DeleteOneID(id).Exec(ctx)
}

func (r *ReportRepository) AddImage(ctx context.Context, reportID uuid.UUID, fileName, originalName string, orden int) (*ent.ReportImage, error) {
	return r.client.ReportImage.Create().
		SetReportID(reportID).
		SetFileName(fileName).
		SetOriginalName(originalName).
		SetOrden(orden).
		Save(ctx)
}

func (r *ReportRepository) ListImages(ctx context.Context, reportID uuid.UUID) ([]*ent.ReportImage, error) {
	return r.client.ReportImage.Query().
		Where(reportimage.ReportID(reportID)).
		Order(ent.Asc(reportimage.FieldOrden)).
		All(ctx)
}

func (r *ReportRepository) DeleteImages(ctx context.Context, reportID uuid.UUID) (int, error) {
	return r.client.ReportImage.Delete().
		Where(reportimage.ReportID(reportID)).
		Exec(ctx)
}

// ListStalePending finds reports whose deferred render never landed, so
// the sweep can re-enqueue them.
func (r *ReportRepository) ListStalePending(ctx context.Context, cutoff time.Time) ([]*ent.Report, error) {
	return r.client.Report.Query().
		Where(
			report.EstadoEQ(report.EstadoPendiente),
			report.UpdatedAtLT(cutoff),
		).
		All(ctx)
}

func (r *ReportRepository) ownerScope(owner *model.AuthUser) []predicateOption {
	if owner.IsAdmin() {
		return nil
	}
	if owner == nil {
		return []predicateOption{func(q *ent.ReportQuery) *ent.ReportQuery {
			return q.Where(report.UsuarioIDIsNil())
		}}
	}
	id := owner.ID
	return []predicateOption{func(q *ent.ReportQuery) *ent.ReportQuery {
		return q.Where(report.UsuarioIDEQ(id))
	}}
}

type predicateOption func(*ent.ReportQuery) *ent.ReportQuery

func (r *ReportRepository) ListByOwner(ctx context.Context, owner *model.AuthUser, offset, limit int) ([]*ent.Report, int, error) {
	query := r.client.Report.Query()
	for _, scope := range r.ownerScope(owner) {
		query = scope(query)
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	rows, err := query.
		Order(ent.Desc(report.FieldCreatedAt), ent.Desc(report.FieldID)).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Search applies equality and date-range filters in SQL; the optional
// proximity filter decodes stored points and runs in-process, so it works
// on every dialect the schema migrates to.
func (r *ReportRepository) Search(ctx context.Context, owner *model.AuthUser, f model.SearchReportFilter) ([]*ent.Report, int, error) {
	query := r.client.Report.Query()
	for _, scope := range r.ownerScope(owner) {
		query = scope(query)
	}

	if f.Zona != "" {
		query = query.Where(report.ZonaEQ(f.Zona))
	}
	if f.Distrito != "" {
		query = query.Where(report.DistritoEQ(f.Distrito))
	}
	if f.Circuito != "" {
		query = query.Where(report.CircuitoEQ(f.Circuito))
	}
	if f.Estado != "" {
		query = query.Where(report.EstadoEQ(report.Estado(f.Estado)))
	}
	if f.FechaDesde != "" {
		query = query.Where(report.FechaGTE(f.FechaDesde))
	}
	if f.FechaHasta != "" {
		query = query.Where(report.FechaLTE(f.FechaHasta))
	}

	query = query.Order(ent.Desc(report.FieldCreatedAt), ent.Desc(report.FieldID))

	if f.Lat != nil && f.Lng != nil && f.RadioKm != nil {
		rows, err := query.All(ctx)
		if err != nil {
			return nil, 0, err
		}
		near := filterNearby(rows, geo.Point{Lat: *f.Lat, Lng: *f.Lng}, *f.RadioKm)
		total := len(near)
		return paginate(near, f.Offset, f.Limit), total, nil
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	rows, err := query.Offset(f.Offset).Limit(f.Limit).All(ctx)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// filterNearby keeps rows whose stored point lies within radiusKm of
// center. Rows without a point, or with one the codec cannot decode,
// never match.
func filterNearby(rows []*ent.Report, center geo.Point, radiusKm float64) []*ent.Report {
	var near []*ent.Report
	for _, row := range rows {
		if row.Ubicacion == nil {
			continue
		}
		p, err := geo.Decode(*row.Ubicacion)
		if err != nil {
			continue
		}
		if geo.DistanceKm(center, p) <= radiusKm {
			near = append(near, row)
		}
	}
	return near
}

func paginate(rows []*ent.Report, offset, limit int) []*ent.Report {
	if offset >= len(rows) {
		return nil
	}
	rows = rows[offset:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}

// Stats counts reports grouped by zona, distrito, and month of fecha.
func (r *ReportRepository) Stats(ctx context.Context, owner *model.AuthUser) (*model.ReportStatsDTO, error) {
	query := r.client.Report.Query()
	for _, scope := range r.ownerScope(owner) {
		query = scope(query)
	}

	rows, err := query.
		Select(report.FieldZona, report.FieldDistrito, report.FieldFecha).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return statsFrom(rows), nil
}

// statsFrom counts rows by zona, by distrito, and by the YYYY-MM prefix
// of fecha. Rows whose fecha is too short to carry a month are skipped
// from the month buckets only.
func statsFrom(rows []*ent.Report) *model.ReportStatsDTO {
	byZona := map[string]int{}
	byDistrito := map[string]int{}
	byMes := map[string]int{}
	for _, row := range rows {
		byZona[row.Zona]++
		byDistrito[row.Distrito]++
		if len(row.Fecha) >= 7 {
			byMes[row.Fecha[:7]]++
		}
	}

	return &model.ReportStatsDTO{
		PorZona:     buckets(byZona),
		PorDistrito: buckets(byDistrito),
		PorMes:      buckets(byMes),
	}
}

func buckets(counts map[string]int) []model.CountBucket {
	out := make([]model.CountBucket, 0, len(counts))
	for key, total := range counts {
		out = append(out, model.CountBucket{Clave: key, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Clave < out[j].Clave })
	return out
}

package service

import (
	"NovedadesAPI/ent"
	"NovedadesAPI/ent/report"
	"NovedadesAPI/internal/model"
	"NovedadesAPI/internal/queue"
	"NovedadesAPI/internal/repository"
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// In-memory collaborator fakes. They mimic the repository semantics the
// services rely on: version bumping, the artifact version guard, and
// idempotent legal links.

type fakeReportStore struct {
	mu          sync.Mutex
	reports     map[uuid.UUID]*ent.Report
	images      map[uuid.UUID][]*ent.ReportImage
	links       map[uuid.UUID][]*ent.LegalReference
	lastCreated time.Time
}

func newFakeReportStore() *fakeReportStore {
	return &fakeReportStore{
		reports: make(map[uuid.UUID]*ent.Report),
		images:  make(map[uuid.UUID][]*ent.ReportImage),
		links:   make(map[uuid.UUID][]*ent.LegalReference),
	}
}

func (f *fakeReportStore) Create(_ context.Context, rec repository.CreateReportRecord) (*ent.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Strictly increasing creation times keep list ordering deterministic
	// even when two creates land in the same clock tick.
	now := time.Now().UTC()
	if !now.After(f.lastCreated) {
		now = f.lastCreated.Add(time.Microsecond)
	}
	f.lastCreated = now

	rep := &ent.Report{
		ID:              uuid.New(),
		UsuarioID:       rec.UsuarioID,
		Zona:            rec.Zona,
		Distrito:        rec.Distrito,
		Circuito:        rec.Circuito,
		Direccion:       rec.Direccion,
		HorarioJornada:  rec.HorarioJornada,
		HoraReporte:     rec.HoraReporte,
		Fecha:           rec.Fecha,
		Novedad:         rec.Novedad,
		ParteInformante: rec.ParteInformante,
		Tipo:            report.TipoCiudadano,
		Estado:          report.EstadoPendiente,
		Ubicacion:       rec.Ubicacion,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if rec.Tipo != "" {
		rep.Tipo = report.Tipo(rec.Tipo)
	}
	f.reports[rep.ID] = rep
	return copyReport(rep), nil
}

func (f *fakeReportStore) GetByID(_ context.Context, id uuid.UUID) (*ent.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rep, ok := f.reports[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	return copyReport(rep), nil
}

func (f *fakeReportStore) GetWithRelations(ctx context.Context, id uuid.UUID) (*ent.Report, error) {
	rep, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	rep.Edges.Imagenes = append([]*ent.ReportImage(nil), f.images[id]...)
	rep.Edges.Referencias = append([]*ent.LegalReference(nil), f.links[id]...)
	return rep, nil
}

func (f *fakeReportStore) Update(_ context.Context, id uuid.UUID, rec repository.UpdateReportRecord) (*ent.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rep, ok := f.reports[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&rep.Zona, rec.Zona)
	apply(&rep.Distrito, rec.Distrito)
	apply(&rep.Circuito, rec.Circuito)
	apply(&rep.Direccion, rec.Direccion)
	apply(&rep.HorarioJornada, rec.HorarioJornada)
	apply(&rep.HoraReporte, rec.HoraReporte)
	apply(&rep.Fecha, rec.Fecha)
	apply(&rep.Novedad, rec.Novedad)
	apply(&rep.ParteInformante, rec.ParteInformante)
	if rec.Tipo != nil {
		rep.Tipo = report.Tipo(*rec.Tipo)
	}
	if rec.Ubicacion != nil {
		if *rec.Ubicacion == "" {
			rep.Ubicacion = nil
		} else {
			u := *rec.Ubicacion
			rep.Ubicacion = &u
		}
	}
	if rec.BumpVersion {
		rep.Version++
		rep.Estado = report.EstadoPendiente
		rep.DocumentoPdf = nil
		rep.DocumentoDocx = nil
	}
	rep.UpdatedAt = time.Now().UTC()
	return copyReport(rep), nil
}

func (f *fakeReportStore) AttachArtifacts(_ context.Context, id uuid.UUID, version int, pdfKey, docxKey string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rep, ok := f.reports[id]
	if !ok || rep.Version != version {
		return false, nil
	}
	rep.DocumentoPdf = &pdfKey
	rep.DocumentoDocx = &docxKey
	rep.Estado = report.EstadoCompletado
	return true, nil
}

func (f *fakeReportStore) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.reports[id]; !ok {
		return &ent.NotFoundError{}
	}
	delete(f.reports, id)
	return nil
}

func (f *fakeReportStore) AddImage(_ context.Context, reportID uuid.UUID, fileName, originalName string, orden int) (*ent.ReportImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	img := &ent.ReportImage{
		ID:           uuid.New(),
		ReportID:     reportID,
		FileName:     fileName,
		OriginalName: originalName,
		Orden:        orden,
	}
	f.images[reportID] = append(f.images[reportID], img)
	return img, nil
}

func (f *fakeReportStore) ListImages(_ context.Context, reportID uuid.UUID) ([]*ent.ReportImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*ent.ReportImage(nil), f.images[reportID]...), nil
}

func (f *fakeReportStore) DeleteImages(_ context.Context, reportID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := len(f.images[reportID])
	delete(f.images, reportID)
	return n, nil
}

func (f *fakeReportStore) ListByOwner(_ context.Context, _ *model.AuthUser, _, _ int) ([]*ent.Report, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rows []*ent.Report
	for _, rep := range f.reports {
		rows = append(rows, copyReport(rep))
	}
	return rows, len(rows), nil
}

// Search mirrors the repository semantics: equality filters, fecha
// range, creation-descending order, then offset/limit over the total.
func (f *fakeReportStore) Search(_ context.Context, _ *model.AuthUser, filter model.SearchReportFilter) ([]*ent.Report, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var rows []*ent.Report
	for _, rep := range f.reports {
		if filter.Zona != "" && rep.Zona != filter.Zona {
			continue
		}
		if filter.Distrito != "" && rep.Distrito != filter.Distrito {
			continue
		}
		if filter.Circuito != "" && rep.Circuito != filter.Circuito {
			continue
		}
		if filter.Estado != "" && string(rep.Estado) != filter.Estado {
			continue
		}
		if filter.FechaDesde != "" && rep.Fecha < filter.FechaDesde {
			continue
		}
		if filter.FechaHasta != "" && rep.Fecha > filter.FechaHasta {
			continue
		}
		rows = append(rows, copyReport(rep))
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})

	total := len(rows)
	if filter.Offset >= len(rows) {
		return nil, total, nil
	}
	rows = rows[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(rows) {
		rows = rows[:filter.Limit]
	}
	return rows, total, nil
}

func (f *fakeReportStore) Stats(_ context.Context, _ *model.AuthUser) (*model.ReportStatsDTO, error) {
	return &model.ReportStatsDTO{}, nil
}

func (f *fakeReportStore) ListStalePending(_ context.Context, cutoff time.Time) ([]*ent.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rows []*ent.Report
	for _, rep := range f.reports {
		if rep.Estado == report.EstadoPendiente && rep.UpdatedAt.Before(cutoff) {
			rows = append(rows, copyReport(rep))
		}
	}
	return rows, nil
}

func copyReport(rep *ent.Report) *ent.Report {
	cp := *rep
	cp.Edges = ent.ReportEdges{}
	return &cp
}

type linkKey struct {
	reportID uuid.UUID
	leyID    uuid.UUID
	articulo string
}

type fakeLegalStore struct {
	mu       sync.Mutex
	store    *fakeReportStore
	lawNames map[uuid.UUID]string
	articles map[uuid.UUID]uuid.UUID // articuloID -> leyID
	seen     map[linkKey]bool
}

func newFakeLegalStore(store *fakeReportStore) *fakeLegalStore {
	return &fakeLegalStore{
		store:    store,
		lawNames: make(map[uuid.UUID]string),
		articles: make(map[uuid.UUID]uuid.UUID),
		seen:     make(map[linkKey]bool),
	}
}

func (f *fakeLegalStore) key(reportID, leyID uuid.UUID, articuloID *uuid.UUID) linkKey {
	k := linkKey{reportID: reportID, leyID: leyID}
	if articuloID != nil {
		k.articulo = articuloID.String()
	}
	return k
}

func (f *fakeLegalStore) ArticleBelongsToLaw(_ context.Context, articuloID, leyID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	owner, ok := f.articles[articuloID]
	return ok && owner == leyID, nil
}

func (f *fakeLegalStore) Link(_ context.Context, reportID, leyID uuid.UUID, articuloID *uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := f.key(reportID, leyID, articuloID)
	if f.seen[k] {
		return false, nil
	}
	f.seen[k] = true

	link := &ent.LegalReference{
		ID:        uuid.New(),
		ReportID:  reportID,
		LeyID:     leyID,
		CreatedAt: time.Now().UTC(),
	}
	if nombre, ok := f.lawNames[leyID]; ok {
		link.Edges.Ley = &ent.Law{ID: leyID, Nombre: nombre}
	}
	if articuloID != nil {
		link.ArticuloID = articuloID
	}
	f.store.mu.Lock()
	f.store.links[reportID] = append(f.store.links[reportID], link)
	f.store.mu.Unlock()
	return true, nil
}

func (f *fakeLegalStore) Unlink(_ context.Context, reportID, leyID uuid.UUID, articuloID *uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := f.key(reportID, leyID, articuloID)
	if !f.seen[k] {
		return 0, nil
	}
	delete(f.seen, k)
	return 1, nil
}

func (f *fakeLegalStore) ListForReport(_ context.Context, reportID uuid.UUID) ([]*ent.LegalReference, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return append([]*ent.LegalReference(nil), f.store.links[reportID]...), nil
}

func (f *fakeLegalStore) DeleteByReport(_ context.Context, reportID uuid.UUID) (int, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	n := len(f.store.links[reportID])
	delete(f.store.links, reportID)
	return n, nil
}

type fakeLawStore struct {
	legal *fakeLegalStore
}

func (f *fakeLawStore) List(_ context.Context) ([]*ent.Law, error) {
	return nil, nil
}

func (f *fakeLawStore) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	f.legal.mu.Lock()
	defer f.legal.mu.Unlock()
	_, ok := f.legal.lawNames[id]
	return ok, nil
}

func (f *fakeLawStore) GetByID(_ context.Context, id uuid.UUID) (*ent.Law, error) {
	f.legal.mu.Lock()
	defer f.legal.mu.Unlock()
	name, ok := f.legal.lawNames[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	return &ent.Law{ID: id, Nombre: name}, nil
}

type fakeGateway struct {
	mu        sync.Mutex
	objects   map[string][]byte
	failNames map[string]bool // fail Put when the key contains this substring
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		objects:   make(map[string][]byte),
		failNames: make(map[string]bool),
	}
}

func (f *fakeGateway) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for name := range f.failNames {
		if strings.Contains(key, name) {
			return "", errors.New("upload refused")
		}
	}
	f.objects[key] = data
	return key, nil
}

func (f *fakeGateway) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[key]
	if !ok {
		return nil, errors.New("object not found")
	}
	return data, nil
}

func (f *fakeGateway) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func (f *fakeGateway) Exists(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[key]
	return ok, nil
}

func (f *fakeGateway) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

type fakeQueue struct {
	mu    sync.Mutex
	tasks []queue.RenderTask
}

func (f *fakeQueue) Enqueue(_ context.Context, task queue.RenderTask) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, task)
	return nil
}

func (f *fakeQueue) all() []queue.RenderTask {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]queue.RenderTask(nil), f.tasks...)
}

type fakeCaptcha struct {
	fail   bool
	tokens []string
}

func (f *fakeCaptcha) Verify(token, _ string) error {
	f.tokens = append(f.tokens, token)
	if f.fail {
		return errors.New("captcha rejected")
	}
	return nil
}

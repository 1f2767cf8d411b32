package service

import (
	"NovedadesAPI/ent/report"
	"NovedadesAPI/internal/config"
	"NovedadesAPI/internal/helper"
	"NovedadesAPI/internal/model"
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store   *fakeReportStore
	legal   *fakeLegalStore
	laws    *fakeLawStore
	gateway *fakeGateway
	tasks   *fakeQueue
	captcha *fakeCaptcha
	cfg     *config.AppConfig
	svc     *ReportService
}

func newTestEnv() *testEnv {
	store := newFakeReportStore()
	legal := newFakeLegalStore(store)
	laws := &fakeLawStore{legal: legal}
	gateway := newFakeGateway()
	tasks := &fakeQueue{}
	captcha := &fakeCaptcha{}
	cfg := &config.AppConfig{
		MaxImagesPerReport: 10,
		MaxImageSizeMB:     5,
	}
	svc := NewReportService(store, legal, laws, gateway, tasks, captcha, cfg, config.NewValidator())
	return &testEnv{
		store:   store,
		legal:   legal,
		laws:    laws,
		gateway: gateway,
		tasks:   tasks,
		captcha: captcha,
		cfg:     cfg,
		svc:     svc,
	}
}

func validCreateRequest() model.CreateReportRequest {
	return model.CreateReportRequest{
		Zona:           "Zona 9",
		Distrito:       "Eugenio Espejo",
		Circuito:       "La Mariscal",
		Direccion:      "Av. Amazonas y Colón",
		HorarioJornada: "07:00-15:00",
		HoraReporte:    "14:30",
		Fecha:          "2026-08-21",
		Novedad:        "Riña en la vía pública, dos personas aprehendidas.",
		Tipo:           "uniformado",
	}
}

func (e *testEnv) addLaw(nombre string) uuid.UUID {
	id := uuid.New()
	e.legal.mu.Lock()
	e.legal.lawNames[id] = nombre
	e.legal.mu.Unlock()
	return id
}

func (e *testEnv) addArticle(leyID uuid.UUID) uuid.UUID {
	id := uuid.New()
	e.legal.mu.Lock()
	e.legal.articles[id] = leyID
	e.legal.mu.Unlock()
	return id
}

func TestCreateReportValidationListsAllMissingFields(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.CreateReport(context.Background(), nil, "10.0.0.1", model.CreateReportRequest{}, nil)
	require.Error(t, err)

	var appErr *helper.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Contains(t, appErr.Details, "zona")
	assert.Contains(t, appErr.Details, "novedad")
	assert.Contains(t, appErr.Details, "hora_reporte")
	assert.Len(t, appErr.Details, 8)
	assert.Empty(t, env.tasks.all(), "no task for a rejected submission")
}

func TestCreateReportStoresImagesContiguously(t *testing.T) {
	env := newTestEnv()
	env.gateway.failNames["b.jpg"] = true

	images := []model.ImageUpload{
		{Data: []byte("aaa"), OriginalName: "a.jpg", ContentType: "image/jpeg"},
		{Data: []byte("bbb"), OriginalName: "b.jpg", ContentType: "image/jpeg"},
		{Data: []byte("ccc"), OriginalName: "c.jpg", ContentType: "image/jpeg"},
	}

	resp, err := env.svc.CreateReport(context.Background(), nil, "10.0.0.1", validCreateRequest(), images)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Resumen.ImagenesIntentadas)
	assert.Equal(t, 2, resp.Resumen.ImagenesGuardadas)

	saved, err := env.store.ListImages(context.Background(), resp.Report.ID)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, "a.jpg", saved[0].OriginalName)
	assert.Equal(t, 1, saved[0].Orden)
	assert.Equal(t, "c.jpg", saved[1].OriginalName)
	assert.Equal(t, 2, saved[1].Orden, "orden stays contiguous across the skipped upload")
}

func TestCreateReportSkipsBadLegalReferences(t *testing.T) {
	env := newTestEnv()
	leyID := env.addLaw("COIP")
	otherLey := env.addLaw("Código Civil")
	articuloID := env.addArticle(leyID)

	req := validCreateRequest()
	req.Referencias = []model.LegalReferenceInput{
		{LeyID: leyID, ArticuloID: &articuloID},
		{LeyID: uuid.New()},                        // unknown law
		{LeyID: otherLey, ArticuloID: &articuloID}, // article belongs to another law
		{LeyID: leyID, ArticuloID: &articuloID},    // duplicate
	}

	resp, err := env.svc.CreateReport(context.Background(), nil, "10.0.0.1", req, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Resumen.ReferenciasIntentadas)
	assert.Equal(t, 1, resp.Resumen.ReferenciasGuardadas)

	links, err := env.legal.ListForReport(context.Background(), resp.Report.ID)
	require.NoError(t, err)
	assert.Len(t, links, 1)
}

func TestCreateReportEnqueuesRenderTask(t *testing.T) {
	env := newTestEnv()

	resp, err := env.svc.CreateReport(context.Background(), nil, "10.0.0.1", validCreateRequest(), nil)
	require.NoError(t, err)

	assert.Equal(t, string(report.EstadoPendiente), resp.Report.Estado)
	assert.Empty(t, resp.Report.DocumentoPDF)

	tasks := env.tasks.all()
	require.Len(t, tasks, 1)
	assert.Equal(t, resp.Report.ID, tasks[0].ReportID)
	assert.Equal(t, 1, tasks[0].Version)
}

func TestCreateReportAnonymousRequiresCaptcha(t *testing.T) {
	env := newTestEnv()
	env.cfg.TurnstileSecretKey = "secret"
	env.captcha.fail = true

	_, err := env.svc.CreateReport(context.Background(), nil, "10.0.0.1", validCreateRequest(), nil)
	var appErr *helper.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)

	// Authenticated submitters bypass the captcha entirely.
	auth := &model.AuthUser{ID: "user-1"}
	_, err = env.svc.CreateReport(context.Background(), auth, "10.0.0.1", validCreateRequest(), nil)
	require.NoError(t, err)
	assert.Len(t, env.captcha.tokens, 1)
}

func TestCreateReportCoordinateHandling(t *testing.T) {
	env := newTestEnv()

	req := validCreateRequest()
	req.Coordenadas = "not a location"
	resp, err := env.svc.CreateReport(context.Background(), nil, "10.0.0.1", req, nil)
	require.NoError(t, err, "unparseable coordinates are dropped, not fatal")
	assert.Empty(t, resp.Report.Coordenadas)

	req = validCreateRequest()
	req.Coordenadas = "-0.22, -78.51"
	resp, err = env.svc.CreateReport(context.Background(), nil, "10.0.0.1", req, nil)
	require.NoError(t, err)
	assert.Equal(t, "-0.22, -78.51", resp.Report.Coordenadas)

	row, err := env.store.GetByID(context.Background(), resp.Report.ID)
	require.NoError(t, err)
	require.NotNil(t, row.Ubicacion)
	assert.Equal(t, "POINT(-78.51 -0.22)", *row.Ubicacion)
}

func TestUpdateReportContentChangeReArmsPipeline(t *testing.T) {
	env := newTestEnv()
	auth := &model.AuthUser{ID: "user-1"}

	resp, err := env.svc.CreateReport(context.Background(), auth, "10.0.0.1", validCreateRequest(), nil)
	require.NoError(t, err)

	// Simulate a completed first render.
	advanced, err := env.store.AttachArtifacts(context.Background(), resp.Report.ID, 1, "k.pdf", "k.docx")
	require.NoError(t, err)
	require.True(t, advanced)

	novedad := "Actualización: una persona liberada con citación."
	updated, err := env.svc.UpdateReport(context.Background(), auth, resp.Report.ID, model.UpdateReportRequest{
		Novedad: &novedad,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, string(report.EstadoPendiente), updated.Estado)
	assert.Empty(t, updated.DocumentoPDF, "stale artifacts are detached on content change")

	tasks := env.tasks.all()
	require.Len(t, tasks, 2)
	assert.Equal(t, 2, tasks[1].Version)
}

func TestUpdateReportMetadataOnlyKeepsVersion(t *testing.T) {
	env := newTestEnv()
	auth := &model.AuthUser{ID: "user-1"}

	resp, err := env.svc.CreateReport(context.Background(), auth, "10.0.0.1", validCreateRequest(), nil)
	require.NoError(t, err)

	hora := "15:45"
	updated, err := env.svc.UpdateReport(context.Background(), auth, resp.Report.ID, model.UpdateReportRequest{
		HoraReporte: &hora,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, updated.Version)
	assert.Equal(t, "15:45", updated.HoraReporte)
	assert.Len(t, env.tasks.all(), 1, "metadata patches do not re-enqueue")
}

func TestDeleteReportCleansUpAssets(t *testing.T) {
	env := newTestEnv()
	auth := &model.AuthUser{ID: "user-1"}

	images := []model.ImageUpload{{Data: []byte("aaa"), OriginalName: "a.jpg", ContentType: "image/jpeg"}}
	resp, err := env.svc.CreateReport(context.Background(), auth, "10.0.0.1", validCreateRequest(), images)
	require.NoError(t, err)

	_, err = env.store.AttachArtifacts(context.Background(), resp.Report.ID, 1, "documents/k.pdf", "documents/k.docx")
	require.NoError(t, err)
	env.gateway.objects["documents/k.pdf"] = []byte("pdf")
	env.gateway.objects["documents/k.docx"] = []byte("docx")

	require.NoError(t, env.svc.DeleteReport(context.Background(), auth, resp.Report.ID))

	assert.Empty(t, env.gateway.objects, "images and artifacts removed from the gateway")
	_, err = env.store.GetByID(context.Background(), resp.Report.ID)
	assert.Error(t, err)
}

func TestSearchReportsByZona(t *testing.T) {
	env := newTestEnv()

	zonas := []string{"Norte", "Sur", "Norte", "Sur", "Norte"}
	for i, zona := range zonas {
		req := validCreateRequest()
		req.Zona = zona
		req.Novedad = fmt.Sprintf("Novedad %d", i+1)
		_, err := env.svc.CreateReport(context.Background(), nil, "10.0.0.1", req, nil)
		require.NoError(t, err)
	}

	rows, total, err := env.svc.SearchReports(context.Background(), nil, model.SearchReportFilter{Zona: "Norte"})
	require.NoError(t, err)

	assert.Equal(t, 3, total)
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, "Norte", row.Zona)
	}

	// Newest first.
	assert.Equal(t, "Novedad 5", rows[0].Novedad)
	assert.Equal(t, "Novedad 3", rows[1].Novedad)
	assert.Equal(t, "Novedad 1", rows[2].Novedad)

	// Pagination runs over the filtered total, not the whole table.
	page, total, err := env.svc.SearchReports(context.Background(), nil, model.SearchReportFilter{Zona: "Norte", Offset: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 1)
	assert.Equal(t, "Novedad 1", page[0].Novedad)

	none, total, err := env.svc.SearchReports(context.Background(), nil, model.SearchReportFilter{Zona: "Oriente"})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, none)
}

func TestReportAuthorization(t *testing.T) {
	env := newTestEnv()
	owner := &model.AuthUser{ID: "user-1"}
	stranger := &model.AuthUser{ID: "user-2"}
	admin := &model.AuthUser{ID: "root", Role: model.RoleAdmin}

	owned, err := env.svc.CreateReport(context.Background(), owner, "10.0.0.1", validCreateRequest(), nil)
	require.NoError(t, err)
	anon, err := env.svc.CreateReport(context.Background(), nil, "10.0.0.1", validCreateRequest(), nil)
	require.NoError(t, err)

	_, err = env.svc.GetReport(context.Background(), stranger, owned.Report.ID)
	var appErr *helper.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.Code)

	_, err = env.svc.GetReport(context.Background(), owner, owned.Report.ID)
	assert.NoError(t, err)
	_, err = env.svc.GetReport(context.Background(), admin, owned.Report.ID)
	assert.NoError(t, err)

	// Anonymous reports are readable by anyone but writable only by admins.
	_, err = env.svc.GetReport(context.Background(), nil, anon.Report.ID)
	assert.NoError(t, err)
	err = env.svc.DeleteReport(context.Background(), stranger, anon.Report.ID)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.Code)
	assert.NoError(t, env.svc.DeleteReport(context.Background(), admin, anon.Report.ID))
}

package service

import (
	"NovedadesAPI/ent/report"
	"NovedadesAPI/internal/document"
	"NovedadesAPI/internal/queue"
	"NovedadesAPI/internal/repository"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderEnv() (*testEnv, *RenderService) {
	env := newTestEnv()
	svc := NewRenderService(env.store, env.gateway, document.NewPDFRenderer(), document.NewDocxRenderer())
	return env, svc
}

func seedPendingReport(t *testing.T, env *testEnv) uuid.UUID {
	t.Helper()
	wkt := "POINT(-78.51 -0.22)"
	rep, err := env.store.Create(context.Background(), repository.CreateReportRecord{
		Zona:           "Zona 9",
		Distrito:       "Eugenio Espejo",
		Circuito:       "La Mariscal",
		Direccion:      "Av. Amazonas y Colón",
		HorarioJornada: "07:00-15:00",
		HoraReporte:    "14:30",
		Fecha:          "2026-08-21",
		Novedad:        "Riña en la vía pública.",
		Tipo:           "uniformado",
		Ubicacion:      &wkt,
	})
	require.NoError(t, err)
	return rep.ID
}

func TestProcessRendersBothFormatsAndCompletes(t *testing.T) {
	env, svc := newRenderEnv()
	id := seedPendingReport(t, env)

	_, err := env.store.AddImage(context.Background(), id, "reports/x/1-foto.jpg", "foto.jpg", 1)
	require.NoError(t, err)
	leyID := env.addLaw("COIP")
	_, err = env.legal.Link(context.Background(), id, leyID, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Process(context.Background(), queue.RenderTask{ReportID: id, Version: 1}))

	row, err := env.store.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, report.EstadoCompletado, row.Estado)
	require.NotNil(t, row.DocumentoPdf)
	require.NotNil(t, row.DocumentoDocx)
	assert.Equal(t, fmt.Sprintf("documents/reports/%s/report-%s.pdf", id, id), *row.DocumentoPdf)
	assert.Equal(t, fmt.Sprintf("documents/reports/%s/report-%s.docx", id, id), *row.DocumentoDocx)

	pdfData, err := env.gateway.Get(context.Background(), *row.DocumentoPdf)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdfData[:4]))

	docxData, err := env.gateway.Get(context.Background(), *row.DocumentoDocx)
	require.NoError(t, err)
	assert.Equal(t, "PK", string(docxData[:2]))
}

func TestProcessDropsStaleVersion(t *testing.T) {
	env, svc := newRenderEnv()
	id := seedPendingReport(t, env)

	novedad := "Texto nuevo que invalida la versión anterior."
	_, err := env.store.Update(context.Background(), id, repository.UpdateReportRecord{
		Novedad:     &novedad,
		BumpVersion: true,
	})
	require.NoError(t, err)

	// The queued task still references version 1; the row moved on to 2.
	require.NoError(t, svc.Process(context.Background(), queue.RenderTask{ReportID: id, Version: 1}))

	row, err := env.store.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, report.EstadoPendiente, row.Estado)
	assert.Nil(t, row.DocumentoPdf)
	assert.Empty(t, env.gateway.objects, "stale tasks must not upload anything")
}

func TestProcessSkipsAlreadyCompleted(t *testing.T) {
	env, svc := newRenderEnv()
	id := seedPendingReport(t, env)

	advanced, err := env.store.AttachArtifacts(context.Background(), id, 1, "k.pdf", "k.docx")
	require.NoError(t, err)
	require.True(t, advanced)

	require.NoError(t, svc.Process(context.Background(), queue.RenderTask{ReportID: id, Version: 1}))
	assert.Empty(t, env.gateway.objects, "re-delivered task for a completed report is a no-op")
}

func TestProcessDropsMissingReport(t *testing.T) {
	_, svc := newRenderEnv()
	err := svc.Process(context.Background(), queue.RenderTask{ReportID: uuid.New(), Version: 1})
	assert.NoError(t, err, "a deleted report consumes its task silently")
}

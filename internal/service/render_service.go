package service

import (
	"NovedadesAPI/ent"
	"NovedadesAPI/ent/report"
	"NovedadesAPI/internal/document"
	"NovedadesAPI/internal/geo"
	"NovedadesAPI/internal/helper"
	"NovedadesAPI/internal/queue"
	"NovedadesAPI/internal/sanitize"
	"context"
	"fmt"
	"log/slog"
)

const reportDocumentTitle = "Parte de Novedades"

// RenderService executes the deferred phase of the report lifecycle: it
// materializes the PDF and DOCX artifacts for a queued task and attaches
// them to the row. A failed run leaves the report in estado pendiente so
// the sweep re-enqueues it later.
type RenderService struct {
	store   ReportStore
	gateway AssetGateway
	pdf     document.Renderer
	docx    document.Renderer
}

func NewRenderService(store ReportStore, gateway AssetGateway, pdf, docx document.Renderer) *RenderService {
	return &RenderService{
		store:   store,
		gateway: gateway,
		pdf:     pdf,
		docx:    docx,
	}
}

func (s *RenderService) Process(ctx context.Context, task queue.RenderTask) error {
	rep, err := s.store.GetWithRelations(ctx, task.ReportID)
	if err != nil {
		if ent.IsNotFound(err) {
			slog.Info("Report gone before render, dropping task", "reportID", task.ReportID)
			return nil
		}
		slog.Error("Failed to load report for rendering", "reportID", task.ReportID, "error", err)
		return err
	}

	// Version is the idempotency key: a bumped row already has (or will
	// get) a newer task, and a completed row already has its artifacts.
	if rep.Version != task.Version {
		slog.Info("Dropping stale render task", "reportID", task.ReportID, "taskVersion", task.Version, "rowVersion", rep.Version)
		return nil
	}
	if rep.Estado == report.EstadoCompletado {
		slog.Info("Report already rendered, dropping task", "reportID", task.ReportID, "version", task.Version)
		return nil
	}

	doc := sanitize.Sanitize(reportProjection(rep))
	sections := document.ReportSections(doc)

	pdfKey, err := s.renderAndStore(ctx, rep, s.pdf, sections)
	if err != nil {
		return err
	}
	docxKey, err := s.renderAndStore(ctx, rep, s.docx, sections)
	if err != nil {
		return err
	}

	advanced, err := s.store.AttachArtifacts(ctx, rep.ID, task.Version, pdfKey, docxKey)
	if err != nil {
		slog.Error("Failed to attach rendered artifacts", "reportID", rep.ID, "version", task.Version, "error", err)
		return err
	}
	if !advanced {
		slog.Info("Report changed during render, artifacts superseded", "reportID", rep.ID, "version", task.Version)
		return nil
	}

	slog.Info("Report rendered", "reportID", rep.ID, "version", task.Version, "pdf", pdfKey, "docx", docxKey)
	return nil
}

func (s *RenderService) renderAndStore(ctx context.Context, rep *ent.Report, renderer document.Renderer, sections []document.Section) (string, error) {
	data, err := renderer.Render(reportDocumentTitle, sections)
	if err != nil {
		slog.Error("Failed to render report document", "reportID", rep.ID, "format", renderer.Ext(), "error", err)
		return "", err
	}

	key := helper.DocumentKey(rep.ID, renderer.Ext())
	if _, err := s.gateway.Put(ctx, key, data, renderer.ContentType()); err != nil {
		slog.Error("Failed to store rendered document", "reportID", rep.ID, "key", key, "error", err)
		return "", err
	}
	return key, nil
}

// reportProjection flattens the row and its relations into the document
// tree the sanitizer prunes. Keys follow the submission field names so
// the section builder can decide inclusion uniformly.
func reportProjection(rep *ent.Report) sanitize.Value {
	m := sanitize.NewMap().
		Set("zona", sanitize.String(rep.Zona)).
		Set("distrito", sanitize.String(rep.Distrito)).
		Set("circuito", sanitize.String(rep.Circuito)).
		Set("direccion", sanitize.String(rep.Direccion)).
		Set("horario_jornada", sanitize.String(rep.HorarioJornada)).
		Set("hora_reporte", sanitize.String(rep.HoraReporte)).
		Set("fecha", sanitize.String(rep.Fecha)).
		Set("tipo", sanitize.String(tipoLabel(rep.Tipo))).
		Set("parte_informante", sanitize.String(rep.ParteInformante)).
		Set("coordenadas", sanitize.String(coordinatesDisplay(rep.Ubicacion))).
		Set("novedad", sanitize.String(rep.Novedad))

	var imagenes []sanitize.Value
	for _, img := range rep.Edges.Imagenes {
		imagenes = append(imagenes, sanitize.String(img.OriginalName))
	}
	m.Set("imagenes", sanitize.List(imagenes...))

	var referencias []sanitize.Value
	for _, ref := range rep.Edges.Referencias {
		referencias = append(referencias, sanitize.String(legalReferenceLine(ref)))
	}
	m.Set("referencias_legales", sanitize.List(referencias...))

	return sanitize.MapOf(m)
}

func coordinatesDisplay(ubicacion *string) string {
	if ubicacion == nil {
		return ""
	}
	p, err := geo.Decode(*ubicacion)
	if err != nil {
		return ""
	}
	return p.Display()
}

var tipoLabels = map[report.Tipo]string{
	report.TipoJefeManzana: "Jefe de manzana",
	report.TipoCiudadano:   "Ciudadano",
	report.TipoUniformado:  "Uniformado",
}

func tipoLabel(t report.Tipo) string {
	if label, ok := tipoLabels[t]; ok {
		return label
	}
	return string(t)
}

func legalReferenceLine(ref *ent.LegalReference) string {
	if ref.Edges.Ley == nil {
		return ""
	}
	if ref.Edges.Articulo != nil {
		return fmt.Sprintf("%s, Art. %s", ref.Edges.Ley.Nombre, ref.Edges.Articulo.Numero)
	}
	return ref.Edges.Ley.Nombre
}

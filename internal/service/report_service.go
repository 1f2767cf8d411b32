package service

import (
	"NovedadesAPI/ent"
	"NovedadesAPI/internal/config"
	"NovedadesAPI/internal/geo"
	"NovedadesAPI/internal/helper"
	"NovedadesAPI/internal/model"
	"NovedadesAPI/internal/queue"
	"NovedadesAPI/internal/repository"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ReportService orchestrates the report lifecycle: the synchronous
// creation phase answered to the client, and the hand-off to the
// deferred render phase through the task queue.
type ReportService struct {
	store     ReportStore
	legal     LegalStore
	laws      LawStore
	storage   AssetGateway
	tasks     TaskQueue
	captcha   CaptchaVerifier
	cfg       *config.AppConfig
	validator *validator.Validate
}

func NewReportService(
	store ReportStore,
	legal LegalStore,
	laws LawStore,
	storage AssetGateway,
	tasks TaskQueue,
	captcha CaptchaVerifier,
	cfg *config.AppConfig,
	validate *validator.Validate,
) *ReportService {
	return &ReportService{
		store:     store,
		legal:     legal,
		laws:      laws,
		storage:   storage,
		tasks:     tasks,
		captcha:   captcha,
		cfg:       cfg,
		validator: validate,
	}
}

var requiredFieldNames = map[string]string{
	"Zona":           "zona",
	"Distrito":       "distrito",
	"Circuito":       "circuito",
	"Direccion":      "direccion",
	"HorarioJornada": "horario_jornada",
	"HoraReporte":    "hora_reporte",
	"Fecha":          "fecha",
	"Novedad":        "novedad",
	"Tipo":           "tipo",
}

func (s *ReportService) CreateReport(ctx context.Context, auth *model.AuthUser, clientIP string, req model.CreateReportRequest, images []model.ImageUpload) (*model.CreateReportResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		var fields []string
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if name, known := requiredFieldNames[fe.Field()]; known {
					fields = append(fields, name)
				} else {
					fields = append(fields, strings.ToLower(fe.Field()))
				}
			}
		}
		slog.Warn("Report validation failed", "fields", fields)
		return nil, helper.NewValidationError(fields)
	}

	if auth == nil && s.captcha != nil && s.cfg.TurnstileSecretKey != "" {
		if err := s.captcha.Verify(req.CaptchaToken, clientIP); err != nil {
			slog.Warn("Captcha verification failed for anonymous submission", "error", err)
			return nil, helper.NewBadRequestError("Verificación de captcha fallida")
		}
	}

	rec := repository.CreateReportRecord{
		Zona:            strings.TrimSpace(req.Zona),
		Distrito:        strings.TrimSpace(req.Distrito),
		Circuito:        strings.TrimSpace(req.Circuito),
		Direccion:       strings.TrimSpace(req.Direccion),
		HorarioJornada:  strings.TrimSpace(req.HorarioJornada),
		HoraReporte:     strings.TrimSpace(req.HoraReporte),
		Fecha:           strings.TrimSpace(req.Fecha),
		Novedad:         strings.TrimSpace(req.Novedad),
		ParteInformante: strings.TrimSpace(req.ParteInformante),
		Tipo:            req.Tipo,
	}
	if auth != nil {
		id := auth.ID
		rec.UsuarioID = &id
	}

	// A coordinate the codec cannot parse is dropped, never fatal.
	if req.Coordenadas != "" {
		if point, err := geo.Decode(req.Coordenadas); err == nil {
			if wkt, err := geo.Encode(point.Lat, point.Lng); err == nil {
				rec.Ubicacion = &wkt
			}
		} else {
			slog.Warn("Dropping unparseable coordinates", "raw", req.Coordenadas, "error", err)
		}
	}

	created, err := s.store.Create(ctx, rec)
	if err != nil {
		slog.Error("Failed to create report row", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	summary := model.CreateSummary{}
	summary.ImagenesGuardadas = s.storeImages(ctx, created.ID, images, &summary)
	s.linkReferences(ctx, created.ID, req.Referencias, &summary)

	// From here on the client no longer waits: rendering is the worker's
	// job. A failed enqueue is recovered by the sweep.
	if err := s.tasks.Enqueue(ctx, queue.RenderTask{ReportID: created.ID, Version: created.Version}); err != nil {
		slog.Error("Failed to enqueue render task", "reportID", created.ID, "error", err)
	}

	full, err := s.store.GetWithRelations(ctx, created.ID)
	if err != nil {
		full = created
	}

	return &model.CreateReportResponse{
		Report:  s.toDTO(full),
		Resumen: summary,
	}, nil
}

// storeImages uploads attachments concurrently, then records the
// successes in attachment order with a contiguous 1-based orden.
func (s *ReportService) storeImages(ctx context.Context, reportID uuid.UUID, images []model.ImageUpload, summary *model.CreateSummary) int {
	if len(images) > s.cfg.MaxImagesPerReport {
		slog.Warn("Attachment count over cap, extra images dropped",
			"reportID", reportID, "got", len(images), "cap", s.cfg.MaxImagesPerReport)
		images = images[:s.cfg.MaxImagesPerReport]
	}
	summary.ImagenesIntentadas = len(images)

	type uploadResult struct {
		key          string
		originalName string
		ok           bool
	}
	results := make([]uploadResult, len(images))

	var wg sync.WaitGroup
	for i, img := range images {
		wg.Add(1)
		go func(i int, img model.ImageUpload) {
			defer wg.Done()
			key := helper.ImageKey(reportID, img.OriginalName)
			locator, err := s.storage.Put(ctx, key, img.Data, img.ContentType)
			if err != nil {
				slog.Warn("Failed to upload report image, skipping",
					"reportID", reportID, "name", img.OriginalName, "error", err)
				return
			}
			results[i] = uploadResult{key: locator, originalName: img.OriginalName, ok: true}
		}(i, img)
	}
	wg.Wait()

	saved := 0
	for _, res := range results {
		if !res.ok {
			continue
		}
		if _, err := s.store.AddImage(ctx, reportID, res.key, res.originalName, saved+1); err != nil {
			slog.Warn("Failed to record report image, skipping",
				"reportID", reportID, "key", res.key, "error", err)
			continue
		}
		saved++
	}
	return saved
}

// linkReferences verifies and links each requested legal reference,
// skipping unknown laws, mismatched articles, and duplicates.
func (s *ReportService) linkReferences(ctx context.Context, reportID uuid.UUID, refs []model.LegalReferenceInput, summary *model.CreateSummary) {
	summary.ReferenciasIntentadas = len(refs)
	for _, ref := range refs {
		exists, err := s.laws.Exists(ctx, ref.LeyID)
		if err != nil || !exists {
			slog.Warn("Skipping legal reference with unknown law",
				"reportID", reportID, "leyID", ref.LeyID, "error", err)
			continue
		}
		if ref.ArticuloID != nil {
			belongs, err := s.legal.ArticleBelongsToLaw(ctx, *ref.ArticuloID, ref.LeyID)
			if err != nil || !belongs {
				slog.Warn("Skipping legal reference with mismatched article",
					"reportID", reportID, "leyID", ref.LeyID, "articuloID", *ref.ArticuloID, "error", err)
				continue
			}
		}
		created, err := s.legal.Link(ctx, reportID, ref.LeyID, ref.ArticuloID)
		if err != nil {
			slog.Warn("Skipping legal reference after link failure",
				"reportID", reportID, "leyID", ref.LeyID, "error", err)
			continue
		}
		if created {
			summary.ReferenciasGuardadas++
		}
	}
}

func (s *ReportService) GetReport(ctx context.Context, auth *model.AuthUser, id uuid.UUID) (*model.ReportDTO, error) {
	rep, err := s.store.GetWithRelations(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewNotFoundError("Reporte no encontrado")
		}
		slog.Error("Failed to fetch report", "reportID", id, "error", err)
		return nil, helper.NewInternalServerError("")
	}
	if err := s.authorizeRead(auth, rep); err != nil {
		return nil, err
	}

	dto := s.toDTO(rep)
	return &dto, nil
}

func (s *ReportService) ListReports(ctx context.Context, auth *model.AuthUser, offset, limit int) ([]model.ReportDTO, int, error) {
	rows, total, err := s.store.ListByOwner(ctx, auth, offset, normalizeLimit(limit))
	if err != nil {
		slog.Error("Failed to list reports", "error", err)
		return nil, 0, helper.NewInternalServerError("")
	}
	return s.toDTOs(rows), total, nil
}

func (s *ReportService) SearchReports(ctx context.Context, auth *model.AuthUser, f model.SearchReportFilter) ([]model.ReportDTO, int, error) {
	f.Limit = normalizeLimit(f.Limit)
	rows, total, err := s.store.Search(ctx, auth, f)
	if err != nil {
		slog.Error("Failed to search reports", "error", err)
		return nil, 0, helper.NewInternalServerError("")
	}
	return s.toDTOs(rows), total, nil
}

func (s *ReportService) Stats(ctx context.Context, auth *model.AuthUser) (*model.ReportStatsDTO, error) {
	stats, err := s.store.Stats(ctx, auth)
	if err != nil {
		slog.Error("Failed to aggregate report stats", "error", err)
		return nil, helper.NewInternalServerError("")
	}
	return stats, nil
}

// contentFields are the patch keys that invalidate rendered artifacts.
func patchTouchesContent(req model.UpdateReportRequest) bool {
	return req.Novedad != nil || req.Zona != nil || req.Distrito != nil ||
		req.Circuito != nil || req.Direccion != nil
}

func (s *ReportService) UpdateReport(ctx context.Context, auth *model.AuthUser, id uuid.UUID, req model.UpdateReportRequest) (*model.ReportDTO, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Report patch validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	rep, err := s.store.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewNotFoundError("Reporte no encontrado")
		}
		slog.Error("Failed to fetch report for update", "reportID", id, "error", err)
		return nil, helper.NewInternalServerError("")
	}
	if err := s.authorizeWrite(auth, rep); err != nil {
		return nil, err
	}

	rec := repository.UpdateReportRecord{
		Zona:            req.Zona,
		Distrito:        req.Distrito,
		Circuito:        req.Circuito,
		Direccion:       req.Direccion,
		HorarioJornada:  req.HorarioJornada,
		HoraReporte:     req.HoraReporte,
		Fecha:           req.Fecha,
		Novedad:         req.Novedad,
		ParteInformante: req.ParteInformante,
		Tipo:            req.Tipo,
		BumpVersion:     patchTouchesContent(req),
	}

	if req.Coordenadas != nil {
		if *req.Coordenadas == "" {
			empty := ""
			rec.Ubicacion = &empty
		} else if point, err := geo.Decode(*req.Coordenadas); err == nil {
			if wkt, err := geo.Encode(point.Lat, point.Lng); err == nil {
				rec.Ubicacion = &wkt
			}
		} else {
			slog.Warn("Dropping unparseable coordinates in patch", "raw", *req.Coordenadas, "error", err)
		}
	}

	updated, err := s.store.Update(ctx, id, rec)
	if err != nil {
		slog.Error("Failed to update report", "reportID", id, "error", err)
		return nil, helper.NewInternalServerError("")
	}

	if rec.BumpVersion {
		if err := s.tasks.Enqueue(ctx, queue.RenderTask{ReportID: updated.ID, Version: updated.Version}); err != nil {
			slog.Error("Failed to enqueue re-render task", "reportID", updated.ID, "error", err)
		}
	}

	full, err := s.store.GetWithRelations(ctx, updated.ID)
	if err != nil {
		full = updated
	}
	dto := s.toDTO(full)
	return &dto, nil
}

// DeleteReport tears the report down in dependency order: images from
// the gateway and the store, legal links, both artifacts, then the row.
// Individual failures are collected into one warning, never an abort.
func (s *ReportService) DeleteReport(ctx context.Context, auth *model.AuthUser, id uuid.UUID) error {
	rep, err := s.store.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return helper.NewNotFoundError("Reporte no encontrado")
		}
		slog.Error("Failed to fetch report for delete", "reportID", id, "error", err)
		return helper.NewInternalServerError("")
	}
	if err := s.authorizeWrite(auth, rep); err != nil {
		return err
	}

	var warnings []string

	images, err := s.store.ListImages(ctx, id)
	if err != nil {
		warnings = append(warnings, "list images: "+err.Error())
	}
	for _, img := range images {
		if err := s.storage.Delete(ctx, img.FileName); err != nil {
			warnings = append(warnings, "delete image object "+img.FileName+": "+err.Error())
		}
	}
	if _, err := s.store.DeleteImages(ctx, id); err != nil {
		warnings = append(warnings, "delete image rows: "+err.Error())
	}

	if _, err := s.legal.DeleteByReport(ctx, id); err != nil {
		warnings = append(warnings, "delete legal references: "+err.Error())
	}

	for _, key := range []*string{rep.DocumentoPdf, rep.DocumentoDocx} {
		if key == nil || *key == "" {
			continue
		}
		if err := s.storage.Delete(ctx, *key); err != nil {
			warnings = append(warnings, "delete artifact "+*key+": "+err.Error())
		}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		slog.Error("Failed to delete report row", "reportID", id, "error", err)
		return helper.NewInternalServerError("")
	}

	if len(warnings) > 0 {
		slog.Warn("Report deleted with partial cleanup failures",
			"reportID", id, "warnings", strings.Join(warnings, "; "))
	}
	return nil
}

func (s *ReportService) LinkLegalReference(ctx context.Context, auth *model.AuthUser, reportID uuid.UUID, req model.LinkLegalReferenceRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return helper.NewBadRequestError("")
	}

	rep, err := s.store.GetByID(ctx, reportID)
	if err != nil {
		if ent.IsNotFound(err) {
			return helper.NewNotFoundError("Reporte no encontrado")
		}
		return helper.NewInternalServerError("")
	}
	if err := s.authorizeWrite(auth, rep); err != nil {
		return err
	}

	exists, err := s.laws.Exists(ctx, req.LeyID)
	if err != nil {
		return helper.NewInternalServerError("")
	}
	if !exists {
		return helper.NewNotFoundError("Ley no encontrada")
	}
	if req.ArticuloID != nil {
		belongs, err := s.legal.ArticleBelongsToLaw(ctx, *req.ArticuloID, req.LeyID)
		if err != nil {
			return helper.NewInternalServerError("")
		}
		if !belongs {
			return helper.NewNotFoundError("Artículo no pertenece a la ley")
		}
	}

	if _, err := s.legal.Link(ctx, reportID, req.LeyID, req.ArticuloID); err != nil {
		slog.Error("Failed to link legal reference", "reportID", reportID, "error", err)
		return helper.NewInternalServerError("")
	}
	return nil
}

func (s *ReportService) UnlinkLegalReference(ctx context.Context, auth *model.AuthUser, reportID, leyID uuid.UUID, articuloID *uuid.UUID) error {
	rep, err := s.store.GetByID(ctx, reportID)
	if err != nil {
		if ent.IsNotFound(err) {
			return helper.NewNotFoundError("Reporte no encontrado")
		}
		return helper.NewInternalServerError("")
	}
	if err := s.authorizeWrite(auth, rep); err != nil {
		return err
	}

	if _, err := s.legal.Unlink(ctx, reportID, leyID, articuloID); err != nil {
		slog.Error("Failed to unlink legal reference", "reportID", reportID, "error", err)
		return helper.NewInternalServerError("")
	}
	return nil
}

func (s *ReportService) ListLegalReferences(ctx context.Context, auth *model.AuthUser, reportID uuid.UUID) ([]model.LegalReferenceDTO, error) {
	rep, err := s.store.GetByID(ctx, reportID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewNotFoundError("Reporte no encontrado")
		}
		return nil, helper.NewInternalServerError("")
	}
	if err := s.authorizeRead(auth, rep); err != nil {
		return nil, err
	}

	links, err := s.legal.ListForReport(ctx, reportID)
	if err != nil {
		slog.Error("Failed to list legal references", "reportID", reportID, "error", err)
		return nil, helper.NewInternalServerError("")
	}
	return toLegalDTOs(links), nil
}

// Reports submitted anonymously are readable by anyone; owned reports
// only by their owner or an admin.
func (s *ReportService) authorizeRead(auth *model.AuthUser, rep *ent.Report) error {
	if rep.UsuarioID == nil || auth.IsAdmin() {
		return nil
	}
	if auth != nil && auth.ID == *rep.UsuarioID {
		return nil
	}
	return helper.NewForbiddenError("")
}

func (s *ReportService) authorizeWrite(auth *model.AuthUser, rep *ent.Report) error {
	if auth.IsAdmin() {
		return nil
	}
	if auth != nil && rep.UsuarioID != nil && auth.ID == *rep.UsuarioID {
		return nil
	}
	return helper.NewForbiddenError("")
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}

func (s *ReportService) toDTOs(rows []*ent.Report) []model.ReportDTO {
	out := make([]model.ReportDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.toDTO(row))
	}
	return out
}

func (s *ReportService) toDTO(rep *ent.Report) model.ReportDTO {
	dto := model.ReportDTO{
		ID:              rep.ID,
		UsuarioID:       helper.PublicUserID,
		Zona:            rep.Zona,
		Distrito:        rep.Distrito,
		Circuito:        rep.Circuito,
		Direccion:       rep.Direccion,
		HorarioJornada:  rep.HorarioJornada,
		HoraReporte:     rep.HoraReporte,
		Fecha:           rep.Fecha,
		Novedad:         rep.Novedad,
		ParteInformante: rep.ParteInformante,
		Tipo:            string(rep.Tipo),
		Estado:          string(rep.Estado),
		Version:         rep.Version,
		CreatedAt:       rep.CreatedAt,
		UpdatedAt:       rep.UpdatedAt,
	}
	if rep.UsuarioID != nil {
		dto.UsuarioID = *rep.UsuarioID
	}
	if rep.Ubicacion != nil {
		if point, err := geo.Decode(*rep.Ubicacion); err == nil {
			dto.Coordenadas = point.Display()
		}
	}
	if rep.DocumentoPdf != nil {
		dto.DocumentoPDF = s.storage.PublicURL(*rep.DocumentoPdf)
	}
	if rep.DocumentoDocx != nil {
		dto.DocumentoDocx = s.storage.PublicURL(*rep.DocumentoDocx)
	}
	for _, img := range rep.Edges.Imagenes {
		dto.Imagenes = append(dto.Imagenes, model.ReportImageDTO{
			ID:           img.ID,
			FileName:     img.FileName,
			OriginalName: img.OriginalName,
			Orden:        img.Orden,
			URL:          s.storage.PublicURL(img.FileName),
		})
	}
	dto.Referencias = toLegalDTOs(rep.Edges.Referencias)
	return dto
}

func toLegalDTOs(links []*ent.LegalReference) []model.LegalReferenceDTO {
	out := make([]model.LegalReferenceDTO, 0, len(links))
	for _, link := range links {
		dto := model.LegalReferenceDTO{
			ID:        link.ID,
			LeyID:     link.LeyID,
			CreatedAt: link.CreatedAt,
		}
		if link.Edges.Ley != nil {
			dto.LeyNombre = link.Edges.Ley.Nombre
		}
		if link.ArticuloID != nil {
			dto.ArticuloID = link.ArticuloID
		}
		if link.Edges.Articulo != nil {
			dto.ArticuloNumero = link.Edges.Articulo.Numero
		}
		out = append(out, dto)
	}
	return out
}

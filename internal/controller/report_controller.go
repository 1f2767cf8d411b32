package controller

import (
	"NovedadesAPI/internal/config"
	"NovedadesAPI/internal/helper"
	"NovedadesAPI/internal/model"
	"NovedadesAPI/internal/service"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ReportController struct {
	reportService *service.ReportService
	cfg           *config.AppConfig
}

func NewReportController(reportService *service.ReportService, cfg *config.AppConfig) *ReportController {
	return &ReportController{
		reportService: reportService,
		cfg:           cfg,
	}
}

// CreateReport accepts a multipart form: the report fields, an optional
// "referencias" JSON array, and up to the configured number of images
// under "imagenes". Oversized or non-image attachments are skipped, not
// fatal.
func (c *ReportController) CreateReport(w http.ResponseWriter, r *http.Request) {
	maxBytes := c.cfg.MaxImageSizeMB*int64(c.cfg.MaxImagesPerReport)<<20 + 1<<20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		slog.Warn("Failed to parse multipart submission", "error", err)
		helper.WriteError(w, helper.NewBadRequestError("El cuerpo debe ser multipart/form-data"))
		return
	}

	req := model.CreateReportRequest{
		Zona:            r.FormValue("zona"),
		Distrito:        r.FormValue("distrito"),
		Circuito:        r.FormValue("circuito"),
		Direccion:       r.FormValue("direccion"),
		HorarioJornada:  r.FormValue("horario_jornada"),
		HoraReporte:     r.FormValue("hora_reporte"),
		Fecha:           r.FormValue("fecha"),
		Novedad:         r.FormValue("novedad"),
		ParteInformante: r.FormValue("parte_informante"),
		Tipo:            r.FormValue("tipo"),
		Coordenadas:     r.FormValue("coordenadas"),
		CaptchaToken:    r.FormValue("captcha_token"),
	}

	if raw := r.FormValue("referencias"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Referencias); err != nil {
			helper.WriteError(w, helper.NewBadRequestError("El campo referencias debe ser un arreglo JSON"))
			return
		}
	}

	images := c.readImages(r)

	resp, err := c.reportService.CreateReport(
		r.Context(),
		helper.AuthUserFromContext(r.Context()),
		helper.ClientIPFromContext(r.Context()),
		req,
		images,
	)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteCreated(w, resp)
}

func (c *ReportController) readImages(r *http.Request) []model.ImageUpload {
	if r.MultipartForm == nil {
		return nil
	}

	var images []model.ImageUpload
	for _, header := range r.MultipartForm.File["imagenes"] {
		if header.Size > c.cfg.MaxImageSizeMB<<20 {
			slog.Warn("Skipping oversized image", "name", header.Filename, "size", header.Size)
			continue
		}

		file, err := header.Open()
		if err != nil {
			slog.Warn("Skipping unreadable image", "name", header.Filename, "error", err)
			continue
		}

		contentType, err := helper.DetectFileContentType(file)
		if err != nil || !strings.HasPrefix(contentType, "image/") {
			slog.Warn("Skipping non-image attachment", "name", header.Filename, "contentType", contentType)
			file.Close()
			continue
		}

		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			slog.Warn("Skipping image after read failure", "name", header.Filename, "error", err)
			continue
		}

		images = append(images, model.ImageUpload{
			Data:         data,
			OriginalName: header.Filename,
			ContentType:  contentType,
		})
	}
	return images
}

func (c *ReportController) GetReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "reportID"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Identificador inválido"))
		return
	}

	dto, err := c.reportService.GetReport(r.Context(), helper.AuthUserFromContext(r.Context()), id)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, dto)
}

func (c *ReportController) ListReports(w http.ResponseWriter, r *http.Request) {
	offset := queryInt(r, "offset", 0)
	limit := queryInt(r, "limit", 20)

	reports, total, err := c.reportService.ListReports(r.Context(), helper.AuthUserFromContext(r.Context()), offset, limit)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccessWithPagination(w, reports, total, offset, limit)
}

func (c *ReportController) SearchReports(w http.ResponseWriter, r *http.Request) {
	filter := model.SearchReportFilter{
		Zona:       r.URL.Query().Get("zona"),
		Distrito:   r.URL.Query().Get("distrito"),
		Circuito:   r.URL.Query().Get("circuito"),
		Estado:     r.URL.Query().Get("estado"),
		FechaDesde: r.URL.Query().Get("fecha_desde"),
		FechaHasta: r.URL.Query().Get("fecha_hasta"),
		Offset:     queryInt(r, "offset", 0),
		Limit:      queryInt(r, "limit", 20),
	}

	lat, latOK := queryFloat(r, "lat")
	lng, lngOK := queryFloat(r, "lng")
	radio, radioOK := queryFloat(r, "radio_km")
	if latOK != lngOK || (radioOK && !latOK) {
		helper.WriteError(w, helper.NewBadRequestError("La búsqueda por cercanía requiere lat, lng y radio_km"))
		return
	}
	if latOK && lngOK {
		if !radioOK {
			radio = 1
		}
		filter.Lat, filter.Lng, filter.RadioKm = &lat, &lng, &radio
	}

	reports, total, err := c.reportService.SearchReports(r.Context(), helper.AuthUserFromContext(r.Context()), filter)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccessWithPagination(w, reports, total, filter.Offset, filter.Limit)
}

func (c *ReportController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.reportService.Stats(r.Context(), helper.AuthUserFromContext(r.Context()))
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, stats)
}

func (c *ReportController) UpdateReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "reportID"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Identificador inválido"))
		return
	}

	var req model.UpdateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.WriteError(w, helper.NewBadRequestError(""))
		return
	}

	dto, err := c.reportService.UpdateReport(r.Context(), helper.AuthUserFromContext(r.Context()), id, req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, dto)
}

func (c *ReportController) DeleteReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "reportID"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Identificador inválido"))
		return
	}

	if err := c.reportService.DeleteReport(r.Context(), helper.AuthUserFromContext(r.Context()), id); err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, nil)
}

func (c *ReportController) LinkLegalReference(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "reportID"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Identificador inválido"))
		return
	}

	var req model.LinkLegalReferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.WriteError(w, helper.NewBadRequestError(""))
		return
	}

	if err := c.reportService.LinkLegalReference(r.Context(), helper.AuthUserFromContext(r.Context()), id, req); err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, nil)
}

func (c *ReportController) UnlinkLegalReference(w http.ResponseWriter, r *http.Request) {
	reportID, err := uuid.Parse(chi.URLParam(r, "reportID"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Identificador inválido"))
		return
	}
	leyID, err := uuid.Parse(chi.URLParam(r, "leyID"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Identificador de ley inválido"))
		return
	}

	var articuloID *uuid.UUID
	if raw := r.URL.Query().Get("articulo_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			helper.WriteError(w, helper.NewBadRequestError("Identificador de artículo inválido"))
			return
		}
		articuloID = &parsed
	}

	if err := c.reportService.UnlinkLegalReference(r.Context(), helper.AuthUserFromContext(r.Context()), reportID, leyID, articuloID); err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, nil)
}

func (c *ReportController) ListLegalReferences(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "reportID"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Identificador inválido"))
		return
	}

	refs, err := c.reportService.ListLegalReferences(r.Context(), helper.AuthUserFromContext(r.Context()), id)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, refs)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

func queryFloat(r *http.Request, key string) (float64, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

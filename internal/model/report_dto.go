package model

import (
	"time"

	"github.com/google/uuid"
)

type CreateReportRequest struct {
	Zona            string `form:"zona" validate:"required"`
	Distrito        string `form:"distrito" validate:"required"`
	Circuito        string `form:"circuito" validate:"required"`
	Direccion       string `form:"direccion" validate:"required"`
	HorarioJornada  string `form:"horario_jornada" validate:"required"`
	HoraReporte     string `form:"hora_reporte" validate:"required"`
	Fecha           string `form:"fecha" validate:"required"`
	Novedad         string `form:"novedad" validate:"required"`
	ParteInformante string `form:"parte_informante"`
	Tipo            string `form:"tipo" validate:"omitempty,oneof=jefe_manzana ciudadano uniformado"`
	// Free-form "lat,lng" (or any shape the codec tolerates); a value the
	// codec cannot parse is dropped, never an error.
	Coordenadas  string                `form:"coordenadas"`
	Referencias  []LegalReferenceInput `form:"-"`
	CaptchaToken string                `form:"captcha_token"`
}

type LegalReferenceInput struct {
	LeyID      uuid.UUID  `json:"ley_id" validate:"required"`
	ArticuloID *uuid.UUID `json:"articulo_id"`
}

// UpdateReportRequest is a partial patch; identity, submitter, and
// creation time are not patchable.
type UpdateReportRequest struct {
	Zona            *string `json:"zona" validate:"omitempty,min=1"`
	Distrito        *string `json:"distrito" validate:"omitempty,min=1"`
	Circuito        *string `json:"circuito" validate:"omitempty,min=1"`
	Direccion       *string `json:"direccion" validate:"omitempty,min=1"`
	HorarioJornada  *string `json:"horario_jornada" validate:"omitempty,min=1"`
	HoraReporte     *string `json:"hora_reporte" validate:"omitempty,min=1"`
	Fecha           *string `json:"fecha" validate:"omitempty,min=1"`
	Novedad         *string `json:"novedad" validate:"omitempty,min=1"`
	ParteInformante *string `json:"parte_informante"`
	Tipo            *string `json:"tipo" validate:"omitempty,oneof=jefe_manzana ciudadano uniformado"`
	Coordenadas     *string `json:"coordenadas"`
}

// ImageUpload is one attachment already read from the request. Size and
// media-type caps are enforced by the ingress layer.
type ImageUpload struct {
	Data         []byte
	OriginalName string
	ContentType  string
}

type ReportImageDTO struct {
	ID           uuid.UUID `json:"id"`
	FileName     string    `json:"file_name"`
	OriginalName string    `json:"original_name"`
	Orden        int       `json:"orden"`
	URL          string    `json:"url"`
}

type ReportDTO struct {
	ID              uuid.UUID            `json:"id"`
	UsuarioID       string               `json:"usuario_id"`
	Zona            string               `json:"zona"`
	Distrito        string               `json:"distrito"`
	Circuito        string               `json:"circuito"`
	Direccion       string               `json:"direccion"`
	HorarioJornada  string               `json:"horario_jornada"`
	HoraReporte     string               `json:"hora_reporte"`
	Fecha           string               `json:"fecha"`
	Novedad         string               `json:"novedad"`
	ParteInformante string               `json:"parte_informante,omitempty"`
	Tipo            string               `json:"tipo"`
	Estado          string               `json:"estado"`
	Coordenadas     string               `json:"coordenadas,omitempty"`
	DocumentoPDF    string               `json:"documento_pdf,omitempty"`
	DocumentoDocx   string               `json:"documento_docx,omitempty"`
	Version         int                  `json:"version"`
	Imagenes        []ReportImageDTO     `json:"imagenes,omitempty"`
	Referencias     []LegalReferenceDTO  `json:"referencias,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// CreateSummary reports attempted versus succeeded counts for the
// per-item phases of a submission.
type CreateSummary struct {
	ImagenesIntentadas    int `json:"imagenes_intentadas"`
	ImagenesGuardadas     int `json:"imagenes_guardadas"`
	ReferenciasIntentadas int `json:"referencias_intentadas"`
	ReferenciasGuardadas  int `json:"referencias_guardadas"`
}

type CreateReportResponse struct {
	Report  ReportDTO     `json:"reporte"`
	Resumen CreateSummary `json:"resumen"`
}

type SearchReportFilter struct {
	Zona       string
	Distrito   string
	Circuito   string
	Estado     string
	FechaDesde string
	FechaHasta string
	Lat        *float64
	Lng        *float64
	RadioKm    *float64
	Offset     int
	Limit      int
}

type CountBucket struct {
	Clave string `json:"clave"`
	Total int    `json:"total"`
}

type ReportStatsDTO struct {
	PorZona     []CountBucket `json:"por_zona"`
	PorDistrito []CountBucket `json:"por_distrito"`
	PorMes      []CountBucket `json:"por_mes"`
}

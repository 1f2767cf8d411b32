package service

import (
	"NovedadesAPI/internal/document"
	"NovedadesAPI/internal/helper"
	"NovedadesAPI/internal/model"
	"NovedadesAPI/internal/sanitize"
	"context"
	"log/slog"
	"strings"
)

const curriculumDocumentTitle = "Hoja de Vida"

// CurriculumService renders a curriculum document from a raw JSON body.
// Unlike reports this path is fully synchronous and stateless: parse,
// sanitize, render, stream back.
type CurriculumService struct {
	pdf  document.Renderer
	docx document.Renderer
}

func NewCurriculumService(pdf, docx document.Renderer) *CurriculumService {
	return &CurriculumService{
		pdf:  pdf,
		docx: docx,
	}
}

func (s *CurriculumService) Generate(ctx context.Context, raw []byte, format string) (*model.CurriculumFile, error) {
	renderer, err := s.rendererFor(format)
	if err != nil {
		return nil, err
	}

	value, err := sanitize.FromJSON(raw)
	if err != nil {
		slog.Warn("Rejected malformed curriculum body", "error", err)
		return nil, helper.NewBadRequestError("El cuerpo debe ser un documento JSON válido")
	}
	if value.Kind() != sanitize.KindMap {
		return nil, helper.NewBadRequestError("El cuerpo debe ser un objeto JSON")
	}

	doc := sanitize.Sanitize(value)
	sections := document.CurriculumSections(doc)
	if len(sections) == 0 {
		return nil, helper.NewBadRequestError("El documento no contiene campos con contenido")
	}

	data, err := renderer.Render(curriculumDocumentTitle, sections)
	if err != nil {
		slog.Error("Failed to render curriculum", "format", renderer.Ext(), "error", err)
		return nil, helper.NewInternalServerError("")
	}

	return &model.CurriculumFile{
		Data:        data,
		ContentType: renderer.ContentType(),
		FileName:    curriculumFileName(doc, renderer.Ext()),
	}, nil
}

func (s *CurriculumService) rendererFor(format string) (document.Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "pdf":
		return s.pdf, nil
	case "docx":
		return s.docx, nil
	default:
		return nil, helper.NewBadRequestError("Formato no soportado, use pdf o docx")
	}
}

func curriculumFileName(doc *sanitize.Map, ext string) string {
	base := "hoja_de_vida"
	if v, ok := doc.Get("nombre"); ok && v.Kind() == sanitize.KindString {
		if slug := slugify(v.StringVal()); slug != "" {
			base = base + "_" + slug
		}
	}
	return base + "." + ext
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "_")
}

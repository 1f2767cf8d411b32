package service

import (
	"NovedadesAPI/ent"
	"NovedadesAPI/internal/helper"
	"NovedadesAPI/internal/model"
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LawService exposes the read-only legal catalog that submission forms
// draw laws and articles from.
type LawService struct {
	laws LawStore
}

func NewLawService(laws LawStore) *LawService {
	return &LawService{
		laws: laws,
	}
}

func (s *LawService) ListLaws(ctx context.Context) ([]model.LawDTO, error) {
	rows, err := s.laws.List(ctx)
	if err != nil {
		slog.Error("Failed to list laws", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	out := make([]model.LawDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, toLawDTO(row))
	}
	return out, nil
}

func (s *LawService) GetLaw(ctx context.Context, id uuid.UUID) (*model.LawDTO, error) {
	row, err := s.laws.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewNotFoundError("Ley no encontrada")
		}
		slog.Error("Failed to get law", "lawID", id, "error", err)
		return nil, helper.NewInternalServerError("")
	}

	dto := toLawDTO(row)
	return &dto, nil
}

func toLawDTO(row *ent.Law) model.LawDTO {
	dto := model.LawDTO{
		ID:          row.ID,
		Nombre:      row.Nombre,
		Descripcion: row.Descripcion,
	}
	for _, art := range row.Edges.Articulos {
		dto.Articulos = append(dto.Articulos, model.ArticleDTO{
			ID:        art.ID,
			Numero:    art.Numero,
			Contenido: art.Contenido,
		})
	}
	return dto
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type LinkLegalReferenceRequest struct {
	LeyID      uuid.UUID  `json:"ley_id" validate:"required"`
	ArticuloID *uuid.UUID `json:"articulo_id"`
}

type LegalReferenceDTO struct {
	ID             uuid.UUID  `json:"id"`
	LeyID          uuid.UUID  `json:"ley_id"`
	LeyNombre      string     `json:"ley_nombre"`
	ArticuloID     *uuid.UUID `json:"articulo_id,omitempty"`
	ArticuloNumero string     `json:"articulo_numero,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type ArticleDTO struct {
	ID        uuid.UUID `json:"id"`
	Numero    string    `json:"numero"`
	Contenido string    `json:"contenido,omitempty"`
}

type LawDTO struct {
	ID          uuid.UUID    `json:"id"`
	Nombre      string       `json:"nombre"`
	Descripcion string       `json:"descripcion,omitempty"`
	Articulos   []ArticleDTO `json:"articulos,omitempty"`
}

package controller

import (
	"NovedadesAPI/internal/helper"
	"NovedadesAPI/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type LawController struct {
	lawService *service.LawService
}

func NewLawController(lawService *service.LawService) *LawController {
	return &LawController{
		lawService: lawService,
	}
}

func (c *LawController) ListLaws(w http.ResponseWriter, r *http.Request) {
	laws, err := c.lawService.ListLaws(r.Context())
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, laws)
}

func (c *LawController) GetLaw(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "lawID"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Identificador inválido"))
		return
	}

	law, err := c.lawService.GetLaw(r.Context(), id)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, law)
}

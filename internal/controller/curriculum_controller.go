package controller

import (
	"NovedadesAPI/internal/helper"
	"NovedadesAPI/internal/service"
	"io"
	"net/http"
)

const maxCurriculumBodyBytes = 1 << 20

type CurriculumController struct {
	curriculumService *service.CurriculumService
}

func NewCurriculumController(curriculumService *service.CurriculumService) *CurriculumController {
	return &CurriculumController{
		curriculumService: curriculumService,
	}
}

// GenerateCurriculum renders the posted JSON body as a downloadable
// document. The "formato" query selects pdf (default) or docx.
func (c *CurriculumController) GenerateCurriculum(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxCurriculumBodyBytes))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("No se pudo leer el cuerpo de la solicitud"))
		return
	}

	file, err := c.curriculumService.Generate(r.Context(), body, r.URL.Query().Get("formato"))
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteBinary(w, file.ContentType, file.FileName, file.Data)
}
